package main

import (
	"fmt"

	"github.com/jeebeez/jeebeecard/internal/services"
	"github.com/spf13/cobra"
)

func newLevelsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "levels",
		Short: "List and manage study levels",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List default and user-created levels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := services.NewLevelService(a.levels).Catalog(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, level := range catalog {
				kind := "user"
				if level.Default {
					kind = "default"
				}
				fmt.Fprintf(out, "%s\t%s\n", kind, level.Name)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add <name>",
		Short: "Add a user level",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := services.NewLevelService(a.levels).AddUserLevel(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d user levels\n", len(names))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <name>",
		Short: "Delete every user level with this name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := services.NewLevelService(a.levels).DeleteUserLevel(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d user levels\n", len(names))
			return nil
		},
	})

	return cmd
}
