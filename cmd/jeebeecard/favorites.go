package main

import (
	"fmt"

	"github.com/jeebeez/jeebeecard/internal/services"
	"github.com/spf13/cobra"
)

func newFavoritesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "favorites",
		Aliases: []string{"marked"},
		Short:   "Review marked words",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List marked words",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			words, err := services.NewFavoritesService(a.favorites).ListFavorites(cmd.Context())
			if err != nil {
				return err
			}
			for _, w := range words {
				fmt.Fprintln(cmd.OutOrStdout(), w)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "mark <word>",
		Short: "Mark a word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			words, err := services.NewFavoritesService(a.favorites).Mark(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d marked words\n", len(words))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "unmark <word>",
		Short: "Unmark a word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			words, err := services.NewFavoritesService(a.favorites).Unmark(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d marked words\n", len(words))
			return nil
		},
	})

	return cmd
}
