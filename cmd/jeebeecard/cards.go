package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/jeebeez/jeebeecard/internal/models"
	"github.com/jeebeez/jeebeecard/internal/services"
	"github.com/jeebeez/jeebeecard/internal/study"
	"github.com/spf13/cobra"
)

// cliLevel labels decks opened from the command line. The flashcard list is
// shared by every level so the name only shows up in logs.
const cliLevel = "cli"

func newCardsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cards",
		Short: "List and manage flashcards",
	}
	cmd.AddCommand(newCardsListCmd(a))
	cmd.AddCommand(newCardsAddCmd(a))
	cmd.AddCommand(newCardsDeleteCmd(a))
	return cmd
}

func newCardsListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every flashcard with its index",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deck, err := services.NewDeckService(a.flashcards, a.favorites).Open(cmd.Context(), cliLevel)
			if err != nil {
				return err
			}
			if deck.Empty() {
				fmt.Fprintln(cmd.OutOrStdout(), "No Flashcards! Add one.")
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "#\tWORD\tPRIMARY\tSECONDARY\tMARKED")
			for i, card := range deck.Cards {
				marked := ""
				if deck.WithView(study.View{Cursor: i}).IsFavorite() {
					marked = "*"
				}
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", i, card.Word, card.MeaningPrimary, card.MeaningSecondary, marked)
			}
			return tw.Flush()
		},
	}
}

func newCardsAddCmd(a *app) *cobra.Command {
	var card models.Flashcard

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Append a flashcard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := services.NewDeckService(a.flashcards, a.favorites)
			deck, err := svc.Open(cmd.Context(), cliLevel)
			if err != nil {
				return err
			}
			if !card.Complete() {
				return fmt.Errorf("--word, --primary and --secondary are all required")
			}
			deck, err = svc.AddCard(cmd.Context(), deck, card)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added %q at index %d\n", card.Word, deck.Cursor)
			return nil
		},
	}

	cmd.Flags().StringVar(&card.Word, "word", "", "The word to learn")
	cmd.Flags().StringVar(&card.MeaningPrimary, "primary", "", "Meaning in the primary language")
	cmd.Flags().StringVar(&card.MeaningSecondary, "secondary", "", "Meaning in the secondary language")
	return cmd
}

func newCardsDeleteCmd(a *app) *cobra.Command {
	var index int

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete the flashcard at --index",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := services.NewDeckService(a.flashcards, a.favorites)
			deck, err := svc.Open(cmd.Context(), cliLevel)
			if err != nil {
				return err
			}
			if index < 0 || index >= len(deck.Cards) {
				return fmt.Errorf("index %d out of range (deck has %d cards)", index, len(deck.Cards))
			}

			deck = deck.WithView(study.View{Cursor: index})
			word := deck.Cards[index].Word
			deck, err = svc.DeleteCurrentCard(cmd.Context(), deck)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %q, %d cards left\n", word, len(deck.Cards))
			return nil
		},
	}

	cmd.Flags().IntVar(&index, "index", 0, "Zero-based index of the card to delete")
	_ = cmd.MarkFlagRequired("index")
	return cmd
}
