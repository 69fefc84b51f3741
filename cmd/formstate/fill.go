package main

import (
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formstate/pkg/cleaninput"
	"github.com/goliatone/go-formstate/pkg/prompt"
)

type fillOptions struct {
	initial    string
	noPrompt   bool
	strictHTML bool
	changed    bool
}

func (a *app) fillCmd() *cobra.Command {
	var opts fillOptions
	cmd := &cobra.Command{
		Use:   "fill <schema>",
		Short: "Fill a form interactively and print its output data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := a.loadStore(ctx, args[0])
			if err != nil {
				return err
			}

			var cleanOpts []cleaninput.Option
			if opts.strictHTML {
				cleanOpts = append(cleanOpts, cleaninput.WithStrictHTML())
			}
			initial, err := readInitial(opts.initial, cleanOpts...)
			if err != nil {
				return err
			}
			if initial != nil {
				store.Initialise(initial)
			}

			if !opts.noPrompt {
				if err := prompt.Fill(ctx, store, a.promptDriver(), prompt.WithLogger(a.logger)); err != nil {
					return err
				}
			}

			data := store.Data()
			if opts.changed {
				changed := make(map[string]any)
				for _, key := range store.Changed() {
					field, err := store.Field(key)
					if err != nil {
						return err
					}
					changed[field.Name] = data[field.Name]
				}
				data = changed
			}
			return writeData(cmd.OutOrStdout(), a.config.GetString("format"), data, a.config.GetString("prefix"))
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.initial, "initial", "", "JSON file with initial values")
	flags.BoolVar(&opts.noPrompt, "no-prompt", false, "skip interactive prompts")
	flags.BoolVar(&opts.strictHTML, "strict-html", false, "strip markup from initial values")
	flags.BoolVar(&opts.changed, "changed", false, "print only fields that differ from their initial values")
	flags.String("format", formatJSON, "output format: json, query or yaml")
	flags.String("prefix", "", "key prefix for query output")
	_ = a.config.BindPFlag("format", flags.Lookup("format"))
	_ = a.config.BindPFlag("prefix", flags.Lookup("prefix"))
	return cmd
}

func (a *app) promptDriver() prompt.PromptDriver {
	if a.driver != nil {
		return a.driver
	}
	return prompt.NewSurveyDriver(survey.WithStdio(os.Stdin, os.Stdout, a.errOut))
}
