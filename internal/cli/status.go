package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"casslot/internal/model"
	"casslot/internal/service"
)

type statusView struct {
	*model.PlayerState
	Daily service.DailyStatus `json:"daily"`
}

func newStatusCmd(app func() *App, opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show points, coins and unlocked games",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			view := statusView{PlayerState: a.Players.Snapshot(), Daily: a.Daily.Status()}

			return NewOutput(cmd.OutOrStdout(), opts.Output).Print(view, func(w io.Writer) {
				fmt.Fprintf(w, "Points:   %d\n", view.Points)
				fmt.Fprintf(w, "Coins:    %d\n", view.Coins)
				fmt.Fprintf(w, "Unlocked: %v\n", view.UnlockedGameIDs)
				fmt.Fprintf(w, "Daily:    %s\n", formatDaily(view.Daily))
			})
		},
	}
}

func formatDaily(st service.DailyStatus) string {
	if st.CanClaim {
		return "ready to claim"
	}
	return "next claim in " + formatRemaining(st.Remaining)
}

// formatRemaining renders a countdown as HH:MM:SS.
func formatRemaining(d time.Duration) string {
	d = d.Round(time.Second)
	h := int(d / time.Hour)
	m := int(d%time.Hour) / int(time.Minute)
	s := int(d%time.Minute) / int(time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
