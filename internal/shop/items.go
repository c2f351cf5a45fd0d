// Package shop provides the static catalog of purchasable bonuses.
package shop

// ItemType identifies a shop item.
type ItemType string

// Item types
const (
	ItemDoubleChance  ItemType = "double_chance"
	ItemUnlockSkin    ItemType = "unlock_skin"
	ItemJackpotBoost  ItemType = "jackpot_boost"
	ItemLuckyCharm    ItemType = "lucky_charm"
	ItemMegaBonus     ItemType = "mega_bonus"
	ItemSecretGameKey ItemType = "secret_game_key"
)

// ItemConfig holds the configuration for a shop item.
// Buying an item only debits coins; no effect is granted.
type ItemConfig struct {
	Type        ItemType
	Title       string
	Description string
	Price       int64
}

// ShopItems contains all available shop items keyed by type.
var ShopItems = map[ItemType]ItemConfig{
	ItemDoubleChance: {
		Type:        ItemDoubleChance,
		Title:       "2x Chance",
		Description: "Double chance for 10 min",
		Price:       5000,
	},
	ItemUnlockSkin: {
		Type:        ItemUnlockSkin,
		Title:       "Unlock Skin",
		Description: "Change game theme",
		Price:       6000,
	},
	ItemJackpotBoost: {
		Type:        ItemJackpotBoost,
		Title:       "Jackpot Boost",
		Description: "Increase jackpot chance",
		Price:       8000,
	},
	ItemLuckyCharm: {
		Type:        ItemLuckyCharm,
		Title:       "Lucky Charm",
		Description: "Slightly improve odds",
		Price:       10000,
	},
	ItemMegaBonus: {
		Type:        ItemMegaBonus,
		Title:       "Mega Bonus",
		Description: "Get bonus multipliers",
		Price:       12500,
	},
	ItemSecretGameKey: {
		Type:        ItemSecretGameKey,
		Title:       "Secret Game Key",
		Description: "Unlock hidden game",
		Price:       100000,
	},
}

// displayOrder is the order items are listed in.
var displayOrder = []ItemType{
	ItemDoubleChance,
	ItemUnlockSkin,
	ItemJackpotBoost,
	ItemLuckyCharm,
	ItemMegaBonus,
	ItemSecretGameKey,
}

// GetAllItems returns all shop items in display order.
func GetAllItems() []ItemConfig {
	items := make([]ItemConfig, 0, len(displayOrder))
	for _, itemType := range displayOrder {
		if item, ok := ShopItems[itemType]; ok {
			items = append(items, item)
		}
	}
	return items
}

// GetItem returns the item config for a given type.
func GetItem(itemType ItemType) (ItemConfig, bool) {
	item, ok := ShopItems[itemType]
	return item, ok
}

// Affordable reports whether a balance covers the item price.
func (c ItemConfig) Affordable(coins int64) bool {
	return coins >= c.Price
}
