package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"casslot/internal/service"
)

func newSpinCmd(app func() *App, opts *Options) *cobra.Command {
	var (
		color   string
		animate bool
	)

	cmd := &cobra.Command{
		Use:       "spin <reels|colorwheel|gridmatch>",
		Short:     "Play one round of a mini-game",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"reels", "colorwheel", "gridmatch"},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cmd.OutOrStdout(), opts.Output)

			spinOpts := service.SpinOptions{}
			if cmd.Flags().Changed("color") {
				spinOpts.Params = map[string]any{"color": colorParam(color)}
			}
			if animate && !out.JSON() {
				spinOpts.OnFrame = func(tick int, frame any) {
					out.Printf("%v\n", frame)
				}
			}

			res, err := app().Spins.Spin(cmd.Context(), args[0], spinOpts)
			if err != nil {
				return err
			}

			return out.Print(res, func(w io.Writer) {
				fmt.Fprintln(w, res.Outcome.Description)
				if res.Outcome.Won() {
					fmt.Fprintf(w, "+%d points, +%d coins\n", res.Outcome.Win, res.CoinsAwarded)
				}
				for _, id := range res.Unlocked {
					fmt.Fprintf(w, "Unlocked game %d\n", id)
				}
				fmt.Fprintf(w, "Points: %d  Coins: %d\n", res.State.Points, res.State.Coins)
			})
		},
	}

	cmd.Flags().StringVar(&color, "color", "", "Color Spin selection: 0-5 or a color name")
	cmd.Flags().BoolVar(&animate, "animate", false, "Show the reveal frames before the result")

	return cmd
}

// colorParam passes numeric selections as ints and anything else as a name.
func colorParam(s string) any {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return s
}
