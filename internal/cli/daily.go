package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"casslot/internal/service"
)

func newDailyCmd(app func() *App, opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "daily",
		Short: "Show the daily reward countdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st := app().Daily.Status()
			return NewOutput(cmd.OutOrStdout(), opts.Output).Print(st, func(w io.Writer) {
				fmt.Fprintf(w, "Daily reward: %s\n", formatDaily(st))
			})
		},
	}

	cmd.AddCommand(newDailyClaimCmd(app, opts))
	return cmd
}

func newDailyClaimCmd(app func() *App, opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "claim",
		Short: "Claim the daily coin reward",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			st, err := a.Daily.Claim(cmd.Context())
			if errors.Is(err, service.ErrDailyAlreadyClaimed) {
				return fmt.Errorf("%w: come back in %s", err, formatRemaining(st.Remaining))
			}
			if err != nil {
				return err
			}

			coins := a.Players.Snapshot().Coins
			view := struct {
				Reward int64 `json:"reward"`
				Coins  int64 `json:"coins"`
				service.DailyStatus
			}{a.Daily.Reward(), coins, st}

			return NewOutput(cmd.OutOrStdout(), opts.Output).Print(view, func(w io.Writer) {
				fmt.Fprintf(w, "Claimed %d coins. Coins: %d\n", view.Reward, view.Coins)
			})
		},
	}
}
