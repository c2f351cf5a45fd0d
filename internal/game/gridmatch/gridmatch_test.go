package gridmatch

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"casslot/internal/pkg/mocks"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name     string
		grid     Grid
		wantWin  int64
		wantRows []int
	}{
		{
			name:    "no lines",
			grid:    Grid{{1, 2, 3}, {4, 5, 6}, {1, 2, 3}},
			wantWin: 0,
		},
		{
			name:     "two rows",
			grid:     Grid{{2, 2, 2}, {3, 4, 5}, {6, 6, 6}},
			wantWin:  200,
			wantRows: []int{0, 2},
		},
		{
			name:     "all rows",
			grid:     Grid{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}},
			wantWin:  300,
			wantRows: []int{0, 1, 2},
		},
		{
			name:    "columns do not pay",
			grid:    Grid{{1, 2, 3}, {1, 2, 3}, {1, 2, 3}},
			wantWin: 0,
		},
		{
			name:    "diagonals do not pay",
			grid:    Grid{{4, 1, 2}, {3, 4, 1}, {2, 3, 4}},
			wantWin: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			win, rows := Evaluate(tt.grid)
			assert.Equal(t, tt.wantWin, win)
			assert.Equal(t, tt.wantRows, rows)
		})
	}
}

func TestPlay_ForcedGrid(t *testing.T) {
	// row-major draws for {{2,2,2},{3,4,5},{6,6,6}}
	rng := mocks.NewMockRandom(1, 1, 1, 2, 3, 4, 5, 5, 5)

	out, err := New().Play(context.Background(), rng, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(200), out.Win)
	assert.Equal(t, GameID, out.GameID)
	assert.Equal(t, Grid{{2, 2, 2}, {3, 4, 5}, {6, 6, 6}}, out.Details["grid"])
	assert.Equal(t, []int{0, 2}, out.Details["rows"])
}

// Win is always 100 times the number of uniform rows, between 0 and 300.
func TestEvaluate_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var g Grid
		for r := range g {
			for c := range g[r] {
				g[r][c] = rapid.IntRange(1, len(Symbols)).Draw(t, "cell")
			}
		}

		win, rows := Evaluate(g)
		if win != int64(len(rows))*RowWin {
			t.Fatalf("win %d does not match %d rows", win, len(rows))
		}
		if win < 0 || win > Size*RowWin {
			t.Fatalf("win %d out of range", win)
		}
		for _, r := range rows {
			if g[r][0] != g[r][1] || g[r][1] != g[r][2] {
				t.Fatalf("row %d is not uniform: %v", r, g[r])
			}
		}
	})
}

func TestGrid_String(t *testing.T) {
	g := Grid{{1, 2, 3}, {4, 5, 6}, {1, 1, 1}}
	assert.Equal(t, "1 2 3\n4 5 6\n1 1 1", g.String())
}
