package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <schema>",
		Short: "Check that a schema file loads and builds a store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := a.loadDefinition(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			store, err := def.NewStore(a.storeOptions()...)
			if err != nil {
				return err
			}
			title := def.Title
			if title == "" {
				title = args[0]
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: %d fields ok\n", title, len(store.Keys()))
			return err
		},
	}
}
