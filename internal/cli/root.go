package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// Loader builds the App for one invocation from the config directory.
type Loader func(ctx context.Context, configDir string) (*App, error)

// Options are the global flags shared by every command.
type Options struct {
	ConfigDir string
	Output    string
}

// NewRootCmd creates the root command. The App is built by load before any
// subcommand runs; closing it is left to whoever owns load.
func NewRootCmd(load Loader) *cobra.Command {
	opts := &Options{ConfigDir: "config", Output: "text"}
	var app *App

	rootCmd := &cobra.Command{
		Use:   "casslot",
		Short: "Arcade hub: mini-games, daily rewards and a coin shop",
		Long: `casslot keeps a single player's points and coins, unlocks games as
points accumulate, and runs the Number Slots, Color Spin and Lucky Lines
mini-games against the stored record.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.Output != "text" && opts.Output != "json" {
				return fmt.Errorf("unknown output format %q", opts.Output)
			}
			var err error
			app, err = load(cmd.Context(), opts.ConfigDir)
			return err
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.ConfigDir, "config", opts.ConfigDir, "Directory holding config.yaml")
	rootCmd.PersistentFlags().StringVarP(&opts.Output, "output", "o", opts.Output, "Output format: text, json")

	appFn := func() *App { return app }
	rootCmd.AddCommand(newStatusCmd(appFn, opts))
	rootCmd.AddCommand(newGamesCmd(appFn, opts))
	rootCmd.AddCommand(newAchievementsCmd(appFn, opts))
	rootCmd.AddCommand(newSpinCmd(appFn, opts))
	rootCmd.AddCommand(newDailyCmd(appFn, opts))
	rootCmd.AddCommand(newShopCmd(appFn, opts))

	return rootCmd
}
