package main

import (
	"errors"

	"github.com/spf13/cobra"

	formstate "github.com/goliatone/go-formstate"
	"github.com/goliatone/go-formstate/pkg/schemafile"
)

func (a *app) openapiCmd() *cobra.Command {
	var operationID string
	cmd := &cobra.Command{
		Use:   "openapi <document>",
		Short: "Derive a schema file from an OpenAPI operation request body",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if operationID == "" {
				return errors.New("--operation is required")
			}
			src, err := parseSource(args[0])
			if err != nil {
				return err
			}
			op, err := formstate.LoadOperation(cmd.Context(), a.loader(), src, operationID)
			if err != nil {
				return err
			}
			a.logger.Debug("derived fields", "operation", op.ID, "fields", len(op.Fields))

			def := &schemafile.Definition{
				Title:       op.Summary,
				Description: op.Description,
				Schema:      op.Fields,
			}
			raw, err := schemafile.Encode(def, op.Transformers)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(raw)
			return err
		},
	}
	cmd.Flags().StringVar(&operationID, "operation", "", "operationId to convert")
	return cmd
}
