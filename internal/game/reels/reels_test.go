package reels

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"casslot/internal/pkg/mocks"
	"casslot/internal/pkg/random"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		draw Draw
		want Result
	}{
		{
			name: "no trigger keeps visual reels and pays nothing",
			draw: Draw{Reels: [3]int{2, 5, 9}},
			want: Result{Reels: [3]int{2, 5, 9}},
		},
		{
			name: "matching reels without trigger still pay nothing",
			draw: Draw{Reels: [3]int{4, 4, 4}},
			want: Result{Reels: [3]int{4, 4, 4}},
		},
		{
			name: "lucky flip",
			draw: Draw{Reels: [3]int{1, 2, 3}, Lucky: true, Symbol: 7, Win: 120},
			want: Result{Reels: [3]int{7, 7, 7}, Win: 120},
		},
		{
			name: "chance roll",
			draw: Draw{Reels: [3]int{1, 2, 3}, Chance: true, Symbol: 3, Win: 50},
			want: Result{Reels: [3]int{3, 3, 3}, Win: 50},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.draw))
		})
	}
}

func TestPlay_LuckyFlipWins(t *testing.T) {
	// reels 2,5,9; lucky=1; d100=100 (no chance); symbol 7; win 50+70
	rng := mocks.NewMockRandom(1, 4, 8, 1, 99, 6, 70)

	out, err := New().Play(context.Background(), rng, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(120), out.Win)
	assert.Equal(t, GameID, out.GameID)
	assert.Equal(t, [3]int{7, 7, 7}, out.Details["reels"])
	assert.Equal(t, true, out.Details["lucky"])
	assert.Equal(t, false, out.Details["chance"])
	assert.Equal(t, 0, rng.Remaining())
}

func TestPlay_NoTriggerLoses(t *testing.T) {
	// reels 3,3,3; lucky=0; d100=21
	rng := mocks.NewMockRandom(2, 2, 2, 0, 20)

	out, err := New().Play(context.Background(), rng, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(0), out.Win)
	assert.False(t, out.Won())
	assert.Equal(t, [3]int{3, 3, 3}, out.Details["reels"])
}

func TestPlay_ChanceBoundary(t *testing.T) {
	// d100 == 20 fires
	rng := mocks.NewMockRandom(0, 0, 0, 0, 19, 8, 100)

	out, err := New().Play(context.Background(), rng, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(150), out.Win)
	assert.Equal(t, [3]int{9, 9, 9}, out.Details["reels"])
}

func TestPlay_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rng := mocks.NewMockRandom(1, 2, 3)
	_, err := New().Play(ctx, rng, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 3, rng.Remaining(), "no draws on a cancelled round")
}

// Every win is zero or inside the prize range, and a win always shows three equal reels.
func TestPlay_WinRangeProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		values := rapid.SliceOfN(rapid.IntRange(0, 1000), 7, 7).Draw(t, "values")

		out, err := New().Play(context.Background(), mocks.NewMockRandom(values...), nil)
		if err != nil {
			t.Fatalf("play: %v", err)
		}

		reels := out.Details["reels"].([3]int)
		for _, s := range reels {
			if s < MinSymbol || s > MaxSymbol {
				t.Fatalf("symbol %d out of range", s)
			}
		}
		if out.Win == 0 {
			return
		}
		if out.Win < MinWin || out.Win > MaxWin {
			t.Fatalf("win %d out of range", out.Win)
		}
		if reels[0] != reels[1] || reels[1] != reels[2] {
			t.Fatalf("winning reels %v not uniform", reels)
		}
	})
}

// With a fair generator roughly 60% of rounds win.
func TestPlay_WinRate(t *testing.T) {
	if testing.Short() {
		t.Skip("statistical test")
	}

	g := New()
	rng := random.New()
	const rounds = 20000
	wins := 0
	for i := 0; i < rounds; i++ {
		out, err := g.Play(context.Background(), rng, nil)
		require.NoError(t, err)
		if out.Won() {
			wins++
		}
	}
	assert.InDelta(t, 0.60, float64(wins)/rounds, 0.03)
}

func TestFrame(t *testing.T) {
	f := New().Frame(mocks.NewMockRandom(0, 4, 8)).([3]int)
	assert.Equal(t, [3]int{1, 5, 9}, f)
}
