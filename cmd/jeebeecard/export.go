package main

import (
	"fmt"

	"github.com/jeebeez/jeebeecard/internal/services"
	"github.com/spf13/cobra"
)

func newExportCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every stored list as one document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := services.NewExportService(a.flashcards, a.favorites, a.levels)
			switch format {
			case "json":
				doc, err := svc.ExportJSON(cmd.Context())
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(doc))
				return err
			case "yaml":
				return svc.ExportYAML(cmd.Context(), cmd.OutOrStdout())
			default:
				return fmt.Errorf("unsupported format %q (want json or yaml)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format: json or yaml")
	return cmd
}
