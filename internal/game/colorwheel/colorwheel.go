// Package colorwheel implements the "Color Spin" wheel game.
package colorwheel

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"casslot/internal/game"
	"casslot/internal/pkg/random"
)

// GameID is the catalog id of Color Spin.
const GameID = 2

const (
	// WinAmount is paid when the wheel lands on the selected color.
	WinAmount = 200

	// BoostPercent is the chance a miss is turned into a hit.
	BoostPercent = 35
)

// Colors are the wheel segments, indexed 0..5.
var Colors = []string{"Red", "Green", "Blue", "Yellow", "Purple", "Orange"}

// Errors for color wheel game
var (
	ErrMissingColor = errors.New("a color selection is required")
	ErrInvalidColor = fmt.Errorf("color must be between 0 and %d", len(Colors)-1)
)

// Draw holds the random values one round consumes.
type Draw struct {
	Landed int  // segment the wheel stopped on
	Boost  bool // d100 <= BoostPercent; only drawn on a miss
}

// Resolve settles a round: a miss becomes a hit when boosted.
// Returns the final segment and the win.
func Resolve(selected int, d Draw) (final int, win int64) {
	final = d.Landed
	if final != selected && d.Boost {
		final = selected
	}
	if final == selected {
		return final, WinAmount
	}
	return final, 0
}

// NewDraw spins the wheel and rolls the boost if the spin missed selected.
func NewDraw(rng random.Random, selected int) Draw {
	d := Draw{Landed: rng.Intn(len(Colors))}
	if d.Landed != selected {
		d.Boost = random.Percent(rng, BoostPercent)
	}
	return d
}

// ColorName returns the display name for a segment.
func ColorName(i int) string {
	if i < 0 || i >= len(Colors) {
		return "Unknown"
	}
	return Colors[i]
}

// Game implements game.MiniGame.
type Game struct{}

var _ game.MiniGame = (*Game)(nil)

// New creates the Color Spin game.
func New() *Game {
	return &Game{}
}

func (g *Game) ID() int             { return GameID }
func (g *Game) Name() string        { return "Color Spin" }
func (g *Game) Command() string     { return "colorwheel" }
func (g *Game) Description() string { return "Spin the colorful wheel." }

// ValidateParams requires params["color"] to name a segment.
func (g *Game) ValidateParams(params map[string]any) error {
	_, err := extractColor(params)
	return err
}

// Play spins the wheel for the selected color.
func (g *Game) Play(ctx context.Context, rng random.Random, params map[string]any) (*game.Outcome, error) {
	selected, err := extractColor(params)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	d := NewDraw(rng, selected)
	final, win := Resolve(selected, d)

	description := fmt.Sprintf("picked %s, wheel stopped on %s", ColorName(selected), ColorName(final))
	if win > 0 {
		description += fmt.Sprintf(", you won %d points", win)
	}

	return &game.Outcome{
		GameID:      GameID,
		Win:         win,
		Description: description,
		Details: map[string]any{
			"selected": selected,
			"landed":   d.Landed,
			"final":    final,
			"boosted":  final != d.Landed,
		},
	}, nil
}

// Frame returns a random segment for the spin animation.
func (g *Game) Frame(rng random.Random) any {
	return rng.Intn(len(Colors))
}

// extractColor reads the selection as an index or a color name.
func extractColor(params map[string]any) (int, error) {
	if params == nil {
		return 0, ErrMissingColor
	}

	v, ok := params["color"]
	if !ok {
		return 0, ErrMissingColor
	}

	var color int
	switch val := v.(type) {
	case int:
		color = val
	case int64:
		color = int(val)
	case float64:
		if val != float64(int(val)) {
			return 0, ErrInvalidColor
		}
		color = int(val)
	case string:
		idx := -1
		for i, name := range Colors {
			if strings.EqualFold(name, val) {
				idx = i
				break
			}
		}
		if idx < 0 {
			return 0, ErrInvalidColor
		}
		color = idx
	default:
		return 0, ErrMissingColor
	}

	if color < 0 || color >= len(Colors) {
		return 0, ErrInvalidColor
	}

	return color, nil
}
