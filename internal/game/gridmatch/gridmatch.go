// Package gridmatch implements the "Lucky Lines" 3x3 symbol grid.
package gridmatch

import (
	"context"
	"fmt"
	"strings"

	"casslot/internal/game"
	"casslot/internal/pkg/random"
)

// GameID is the catalog id of Lucky Lines.
const GameID = 3

const (
	// Size is the grid edge length.
	Size = 3

	// RowWin is paid for every row of three equal symbols.
	RowWin = 100
)

// Symbols are the grid faces, numbered 1..len(Symbols).
var Symbols = []string{"Star", "Circle", "Diamond", "Hexagon", "Heart", "Sparkles"}

// Grid is indexed [row][column].
type Grid [Size][Size]int

// Evaluate pays RowWin for each uniform row and returns the winning row
// indexes. Columns and diagonals do not pay.
func Evaluate(g Grid) (win int64, rows []int) {
	for i, row := range g {
		uniform := true
		for _, s := range row[1:] {
			if s != row[0] {
				uniform = false
				break
			}
		}
		if uniform {
			win += RowWin
			rows = append(rows, i)
		}
	}
	return win, rows
}

// NewGrid fills a grid row by row with uniform symbols.
func NewGrid(rng random.Random) Grid {
	var g Grid
	for r := range g {
		for c := range g[r] {
			g[r][c] = random.IntRange(rng, 1, len(Symbols))
		}
	}
	return g
}

// String renders the grid one row per line.
func (g Grid) String() string {
	var b strings.Builder
	for r, row := range g {
		if r > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%d %d %d", row[0], row[1], row[2])
	}
	return b.String()
}

// Game implements game.MiniGame.
type Game struct{}

var _ game.MiniGame = (*Game)(nil)

// New creates the Lucky Lines game.
func New() *Game {
	return &Game{}
}

func (g *Game) ID() int             { return GameID }
func (g *Game) Name() string        { return "Lucky Lines" }
func (g *Game) Command() string     { return "gridmatch" }
func (g *Game) Description() string { return "Match symbols on lines." }

// ValidateParams accepts anything; the game takes no parameters.
func (g *Game) ValidateParams(params map[string]any) error {
	return nil
}

// Play fills the grid and pays its rows.
func (g *Game) Play(ctx context.Context, rng random.Random, params map[string]any) (*game.Outcome, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	grid := NewGrid(rng)
	win, rows := Evaluate(grid)

	description := "no matching lines"
	if win > 0 {
		description = fmt.Sprintf("%d matching line(s), you won %d points", len(rows), win)
	}

	return &game.Outcome{
		GameID:      GameID,
		Win:         win,
		Description: description,
		Details: map[string]any{
			"grid": grid,
			"rows": rows,
		},
	}, nil
}

// Frame returns a random grid for the spin animation.
func (g *Game) Frame(rng random.Random) any {
	return NewGrid(rng)
}
