package main

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/goliatone/go-formstate/pkg/prompt"
)

// app carries the state shared by every command. Tests swap the streams and
// the prompt driver.
type app struct {
	config  *viper.Viper
	cfgFile string
	verbose bool

	in     io.Reader
	out    io.Writer
	errOut io.Writer
	driver prompt.PromptDriver
	logger *slog.Logger
}

func newApp() *app {
	return &app{
		config: viper.New(),
		in:     os.Stdin,
		out:    os.Stdout,
		errOut: os.Stderr,
	}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "formstate",
		Short: "Inspect, fill and reconcile schema driven forms",
		Long: `formstate loads form schemas from YAML or JSON files, fills them
interactively or from JSON, and maps server validation errors back onto the
fields that produced them.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.initConfig(); err != nil {
				return err
			}
			a.setupLogging()
			return nil
		},
		SilenceUsage: true,
	}
	root.SetIn(a.in)
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.formstate.yaml)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	flags.Bool("strict-names", false, "require output names to match field keys")
	_ = a.config.BindPFlag("strict_names", flags.Lookup("strict-names"))

	root.AddCommand(
		a.validateCmd(),
		a.fillCmd(),
		a.reconcileCmd(),
		a.openapiCmd(),
	)
	return root
}

// initConfig loads configuration from the config file and environment.
func (a *app) initConfig() error {
	a.config.SetDefault("format", formatJSON)
	a.config.SetDefault("prefix", "")

	if a.cfgFile != "" {
		a.config.SetConfigFile(a.cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			a.config.AddConfigPath(home)
		}
		a.config.SetConfigType("yaml")
		a.config.SetConfigName(".formstate")
	}

	a.config.SetEnvPrefix("FORMSTATE")
	a.config.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.config.AutomaticEnv()

	if err := a.config.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile != "" || !errors.As(err, &notFound) {
			return err
		}
	}
	return nil
}

func (a *app) setupLogging() {
	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{
		Level: level,
	}))
	if used := a.config.ConfigFileUsed(); used != "" {
		a.logger.Debug("using config file", "file", used)
	}
}
