package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	pkgformstate "github.com/goliatone/go-formstate/pkg/formstate"
)

type reconcileReport struct {
	Fields map[string][]pkgformstate.FormError `json:"fields"`
	Root   []pkgformstate.FormError            `json:"root"`
}

func (a *app) reconcileCmd() *cobra.Command {
	var initial string
	cmd := &cobra.Command{
		Use:   "reconcile <schema> <error.json>",
		Short: "Map a server validation error onto form fields",
		Long: `reconcile applies a server validation error payload to the form and
prints the resulting field and root errors. It exits non-zero when any error
was reported.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.loadStore(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			values, err := readInitial(initial)
			if err != nil {
				return err
			}
			if values != nil {
				store.Initialise(values)
			}

			raw, err := os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("read server error: %w", err)
			}
			serverErr, err := pkgformstate.DecodeServerValidationError(raw)
			if err != nil {
				return err
			}
			store.ApplyServerValidationError(serverErr)
			a.logger.Debug("applied server validation error", "violations", len(serverErr.Violations))

			report := reconcileReport{Fields: store.Errors(), Root: store.RootErrors()}
			if err := writeJSON(cmd.OutOrStdout(), report); err != nil {
				return err
			}
			if store.HasErrors() {
				return errFormInvalid
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&initial, "initial", "", "JSON file with initial values")
	return cmd
}
