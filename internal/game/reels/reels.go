// Package reels implements the "Number Slots" three-reel game.
package reels

import (
	"context"
	"fmt"

	"casslot/internal/game"
	"casslot/internal/pkg/random"
)

// GameID is the catalog id of Number Slots.
const GameID = 1

// Draw parameters.
const (
	MinSymbol     = 1
	MaxSymbol     = 9
	ChancePercent = 20
	MinWin        = 50
	MaxWin        = 150
)

// Draw holds every random value one round consumes.
type Draw struct {
	Reels  [3]int // visual reels before the win check
	Lucky  bool   // coin flip
	Chance bool   // d100 <= ChancePercent
	Symbol int    // symbol shown on all reels when the round wins
	Win    int64  // prize when the round wins
}

// Result is the settled face of the machine.
type Result struct {
	Reels [3]int
	Win   int64
}

// Resolve settles a draw. Either trigger wins: the reels all show Symbol and
// Win is paid. Otherwise the visual reels stand and nothing is paid, even if
// they happen to match.
func Resolve(d Draw) Result {
	if d.Lucky || d.Chance {
		return Result{Reels: [3]int{d.Symbol, d.Symbol, d.Symbol}, Win: d.Win}
	}
	return Result{Reels: d.Reels}
}

// NewDraw consumes the round's draws from rng: three reels, the coin flip,
// the d100, then a symbol and prize only if a trigger fired.
func NewDraw(rng random.Random) Draw {
	var d Draw
	d.Reels = spinReels(rng)
	d.Lucky = random.Bool(rng)
	d.Chance = random.Percent(rng, ChancePercent)
	if d.Lucky || d.Chance {
		d.Symbol = random.IntRange(rng, MinSymbol, MaxSymbol)
		d.Win = int64(random.IntRange(rng, MinWin, MaxWin))
	}
	return d
}

func spinReels(rng random.Random) [3]int {
	var r [3]int
	for i := range r {
		r[i] = random.IntRange(rng, MinSymbol, MaxSymbol)
	}
	return r
}

// Game implements game.MiniGame.
type Game struct{}

var _ game.MiniGame = (*Game)(nil)

// New creates the Number Slots game.
func New() *Game {
	return &Game{}
}

func (g *Game) ID() int             { return GameID }
func (g *Game) Name() string        { return "Number Slots" }
func (g *Game) Command() string     { return "reels" }
func (g *Game) Description() string { return "Classic number slots game." }

// ValidateParams accepts anything; the game takes no parameters.
func (g *Game) ValidateParams(params map[string]any) error {
	return nil
}

// Play draws and settles one round.
func (g *Game) Play(ctx context.Context, rng random.Random, params map[string]any) (*game.Outcome, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	d := NewDraw(rng)
	res := Resolve(d)

	display := fmt.Sprintf("[%d] [%d] [%d]", res.Reels[0], res.Reels[1], res.Reels[2])
	description := display + " no win"
	if res.Win > 0 {
		description = fmt.Sprintf("%s you won %d points", display, res.Win)
	}

	return &game.Outcome{
		GameID:      GameID,
		Win:         res.Win,
		Description: description,
		Details: map[string]any{
			"reels":  res.Reels,
			"lucky":  d.Lucky,
			"chance": d.Chance,
		},
	}, nil
}

// Frame returns three random reels for the spin animation.
func (g *Game) Frame(rng random.Random) any {
	return spinReels(rng)
}
