// Package progression holds the game catalog, the unlock rule and the
// derived achievement list.
package progression

// Game is a static catalog entry.
type Game struct {
	ID          int
	Title       string
	Description string
	UnlockScore int64
	// Command names the playable mini-game; empty for games not yet playable.
	Command string
}

// Catalog lists every game in display order.
var Catalog = []Game{
	{ID: 1, Title: "Number Slots", Description: "Classic number slots game.", UnlockScore: 0, Command: "reels"},
	{ID: 2, Title: "Color Spin", Description: "Spin the colorful wheel.", UnlockScore: 0, Command: "colorwheel"},
	{ID: 3, Title: "Lucky Lines", Description: "Match symbols on lines.", UnlockScore: 0, Command: "gridmatch"},
	{ID: 4, Title: "Coin Toss", Description: "Heads or tails with thrilling wins.", UnlockScore: 50000},
	{ID: 5, Title: "Number Guess", Description: "Guess the number and win.", UnlockScore: 70000},
	{ID: 6, Title: "Simple Match", Description: "Match symbols and collect rewards.", UnlockScore: 90000},
	{ID: 7, Title: "Plinko Drop", Description: "Drop the ball and win big prizes.", UnlockScore: 110000},
	{ID: 8, Title: "Spin Wheel Deluxe", Description: "Enhanced spinning wheel bonus game.", UnlockScore: 130000},
	{ID: 9, Title: "Jackpot Madness", Description: "Chance to hit the jackpot.", UnlockScore: 150000},
	{ID: 10, Title: "Mystery Box", Description: "Unlock surprises and bonuses.", UnlockScore: 170000},
}

// FindGame returns the catalog entry with the given id.
func FindGame(catalog []Game, id int) (Game, bool) {
	for _, g := range catalog {
		if g.ID == id {
			return g, true
		}
	}
	return Game{}, false
}
