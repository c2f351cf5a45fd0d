package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"casslot/internal/model"
	"casslot/internal/shop"
)

func newShopCmd(app func() *App, opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shop",
		Short: "Browse and buy shop items",
	}

	cmd.AddCommand(newShopListCmd(app, opts))
	cmd.AddCommand(newShopBuyCmd(app, opts))
	return cmd
}

func newShopListCmd(app func() *App, opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List shop items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			items := a.Shop.Items()
			coins := a.Players.Snapshot().Coins

			return NewOutput(cmd.OutOrStdout(), opts.Output).Print(items, func(w io.Writer) {
				for _, it := range items {
					afford := " "
					if it.Affordable(coins) {
						afford = "*"
					}
					fmt.Fprintf(w, "%s %-16s %-16s %7d  %s\n", afford, it.Type, it.Title, it.Price, it.Description)
				}
				fmt.Fprintf(w, "Coins: %d\n", coins)
			})
		},
	}
}

func newShopBuyCmd(app func() *App, opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "buy <item>",
		Short: "Buy a shop item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			coins, err := app().Shop.Purchase(cmd.Context(), shop.ItemType(args[0]))
			if errors.Is(err, model.ErrInsufficientFunds) {
				return fmt.Errorf("%w: you have %d coins", err, coins)
			}
			if err != nil {
				return err
			}

			item, _ := shop.GetItem(shop.ItemType(args[0]))
			view := struct {
				Item  shop.ItemConfig `json:"item"`
				Coins int64           `json:"coins"`
			}{item, coins}

			return NewOutput(cmd.OutOrStdout(), opts.Output).Print(view, func(w io.Writer) {
				fmt.Fprintf(w, "Bought %s for %d coins. Coins: %d\n", item.Title, item.Price, coins)
			})
		},
	}
}
