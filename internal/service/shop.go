package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"casslot/internal/shop"
)

// ShopService sells catalog items for coins.
type ShopService struct {
	players *PlayerService
}

// NewShopService creates a new ShopService instance.
func NewShopService(players *PlayerService) *ShopService {
	return &ShopService{players: players}
}

// Items returns all available shop items.
func (s *ShopService) Items() []shop.ItemConfig {
	return shop.GetAllItems()
}

// Purchase debits the item price. It returns the balance after the debit,
// or model.ErrInsufficientFunds with no change.
func (s *ShopService) Purchase(ctx context.Context, itemType shop.ItemType) (int64, error) {
	item, ok := shop.GetItem(itemType)
	if !ok {
		return 0, ErrItemNotFound
	}

	if err := s.players.DebitCoins(ctx, item.Price); err != nil {
		return s.players.Snapshot().Coins, err
	}

	coins := s.players.Snapshot().Coins
	log.Info().
		Str("item", string(item.Type)).
		Int64("price", item.Price).
		Int64("coins", coins).
		Msg("Shop item purchased")
	return coins, nil
}
