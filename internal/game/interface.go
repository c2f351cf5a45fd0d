// Package game defines the mini-game interface, the registry and the
// cosmetic reveal ticker shared by all arcade games.
package game

import (
	"context"

	"casslot/internal/pkg/random"
)

// Outcome is the settled result of one round.
type Outcome struct {
	RoundID     string         // assigned by the caller that settles the round
	GameID      int            // catalog id of the game
	Win         int64          // points won, 0 for a loss
	Description string         // human-readable summary
	Details     map[string]any // game-specific values such as symbols or colors
}

// Won reports whether the round paid out.
func (o *Outcome) Won() bool {
	return o.Win > 0
}

// MiniGame is implemented by every playable arcade game.
// Adding a game only requires implementing this interface and registering it.
type MiniGame interface {
	// ID returns the catalog id the game is unlocked under.
	ID() int

	// Name returns the display name (e.g. "Number Slots").
	Name() string

	// Command returns the command that triggers this game (e.g. "reels").
	Command() string

	// Description returns a brief description of the game.
	Description() string

	// ValidateParams checks game-specific parameters before a round starts.
	ValidateParams(params map[string]any) error

	// Play draws the final outcome from rng. It is pure apart from the draws
	// and never touches the player's balance.
	Play(ctx context.Context, rng random.Random, params map[string]any) (*Outcome, error)

	// Frame returns one cosmetic frame for the reveal sequence. Frames have no
	// bearing on the outcome.
	Frame(rng random.Random) any
}
