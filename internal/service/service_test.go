package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"casslot/internal/config"
	"casslot/internal/game"
	"casslot/internal/game/colorwheel"
	"casslot/internal/game/gridmatch"
	"casslot/internal/game/reels"
	"casslot/internal/pkg/lock"
	"casslot/internal/pkg/mocks"
	"casslot/internal/repository"
	"casslot/internal/storage"
	"casslot/internal/storage/memory"
)

const (
	stateKey = "userData"
	claimKey = "lastDailyClaim"
)

// countingKV counts writes and can be told to fail them.
type countingKV struct {
	storage.KV

	mu      sync.Mutex
	sets    int
	keys    []string
	failSet error
}

func (c *countingKV) Set(ctx context.Context, key string, value []byte) error {
	c.mu.Lock()
	c.sets++
	c.keys = append(c.keys, key)
	fail := c.failSet
	c.mu.Unlock()
	if fail != nil {
		return fail
	}
	return c.KV.Set(ctx, key, value)
}

// Keys returns the written keys in write order.
func (c *countingKV) Keys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.keys...)
}

func (c *countingKV) Sets() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sets
}

type testEnv struct {
	kv      *countingKV
	locks   *lock.KeyLock
	players *PlayerService
	clock   *mocks.MockClock
	rng     *mocks.MockRandom
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	kv := &countingKV{KV: memory.New()}
	locks := lock.NewKeyLock()
	return &testEnv{
		kv:      kv,
		locks:   locks,
		players: NewPlayerService(repository.NewPlayerRepository(kv, stateKey), locks),
		clock:   mocks.NewMockClock(time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)),
		rng:     mocks.NewMockRandom(),
	}
}

func (e *testEnv) storedState(t *testing.T) *repository.PlayerRepository {
	t.Helper()
	return repository.NewPlayerRepository(e.kv.KV, stateKey)
}

func (e *testEnv) daily(cfg config.DailyConfig) *DailyService {
	return NewDailyService(e.players, repository.NewClaimRepository(e.kv, claimKey), e.clock, e.locks, cfg)
}

func (e *testEnv) spin(t *testing.T, anim config.SpinConfig, extra ...game.MiniGame) *SpinService {
	t.Helper()

	games := append([]game.MiniGame{reels.New(), colorwheel.New(), gridmatch.New()}, extra...)
	registry, err := game.NewRegistry(games...)
	require.NoError(t, err)
	return NewSpinService(registry, e.players, e.locks, e.rng, anim)
}

func defaultDaily() config.DailyConfig {
	return config.DailyConfig{Reward: 100, CooldownHours: 24}
}
