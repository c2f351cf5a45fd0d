package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newGamesCmd(app func() *App, opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "games",
		Short: "List the game catalog and what is unlocked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			games := app().Players.Games()

			return NewOutput(cmd.OutOrStdout(), opts.Output).Print(games, func(w io.Writer) {
				for _, g := range games {
					state := "locked"
					if g.IsUnlocked {
						state = "unlocked"
					}
					play := ""
					if g.Command != "" {
						play = " (spin " + g.Command + ")"
					}
					fmt.Fprintf(w, "%2d  %-18s %-8s needs %6d points%s\n", g.ID, g.Title, state, g.UnlockScore, play)
				}
			})
		},
	}
}

func newAchievementsCmd(app func() *App, opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "achievements",
		Short: "List achievements derived from current points",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list := app().Players.Achievements()

			return NewOutput(cmd.OutOrStdout(), opts.Output).Print(list, func(w io.Writer) {
				for _, a := range list {
					mark := "[ ]"
					if a.IsUnlocked {
						mark = "[x]"
					}
					fmt.Fprintf(w, "%s %-20s %s\n", mark, a.Title, a.Description)
				}
			})
		},
	}
}
