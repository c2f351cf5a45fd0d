package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"casslot/internal/config"
	"casslot/internal/model"
	"casslot/internal/pkg/mocks"
	"casslot/internal/service"
	"casslot/internal/storage/memory"
	"casslot/internal/storage/redis"
)

func testConfig() *config.Config {
	return &config.Config{
		Storage: config.StorageConfig{Driver: config.DriverMemory, StateKey: "userData", ClaimKey: "lastDailyClaim"},
		Daily:   config.DailyConfig{Reward: 100, CooldownHours: 24},
	}
}

type harness struct {
	kv    *memory.Storage
	rng   *mocks.MockRandom
	clock *mocks.MockClock
}

func newHarness() *harness {
	return &harness{
		kv:    memory.New(),
		rng:   mocks.NewMockRandom(),
		clock: mocks.NewMockClock(time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)),
	}
}

// run executes one invocation against the shared backend, as separate
// process launches would.
func (h *harness) run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	load := func(ctx context.Context, configDir string) (*App, error) {
		return NewApp(ctx, testConfig(), h.kv, Deps{Random: h.rng, Clock: h.clock})
	}

	var out bytes.Buffer
	cmd := NewRootCmd(load)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestStatus_FreshPlayer(t *testing.T) {
	h := newHarness()

	out, err := h.run(t, "status")
	require.NoError(t, err)

	assert.Contains(t, out, "Points:   0")
	assert.Contains(t, out, "Coins:    1000")
	assert.Contains(t, out, "Unlocked: [1 2 3]")
	assert.Contains(t, out, "ready to claim")
}

func TestGames_ListsCatalog(t *testing.T) {
	out, err := newHarness().run(t, "games")
	require.NoError(t, err)

	assert.Contains(t, out, "Number Slots")
	assert.Contains(t, out, "Mystery Box")
	assert.Contains(t, out, "spin colorwheel")
}

func TestAchievements(t *testing.T) {
	out, err := newHarness().run(t, "achievements")
	require.NoError(t, err)
	assert.Contains(t, out, "[ ] First Win")
}

func TestSpin_ColorWheelWinPersists(t *testing.T) {
	h := newHarness()
	h.rng.QueueIntn(2)

	out, err := h.run(t, "spin", "colorwheel", "--color", "blue")
	require.NoError(t, err)
	assert.Contains(t, out, "+200 points, +20 coins")

	out, err = h.run(t, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Points:   200")
	assert.Contains(t, out, "Coins:    1020")
}

func TestSpin_Animate(t *testing.T) {
	h := newHarness()
	h.rng.QueueIntn(1, 1, 1, 2, 3, 4, 5, 5, 5)

	load := func(ctx context.Context, configDir string) (*App, error) {
		cfg := testConfig()
		cfg.Spin.GridMatch = config.AnimationConfig{Ticks: 2}
		return NewApp(ctx, cfg, h.kv, Deps{Random: h.rng, Clock: h.clock})
	}
	var out bytes.Buffer
	cmd := NewRootCmd(load)
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"spin", "gridmatch", "--animate"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "2 matching line(s), you won 200 points")
}

func TestSpin_Errors(t *testing.T) {
	h := newHarness()

	_, err := h.run(t, "spin", "colorwheel")
	assert.Error(t, err)

	_, err = h.run(t, "spin", "plinko")
	assert.ErrorIs(t, err, service.ErrGameNotFound)
}

func TestDaily_ClaimOnce(t *testing.T) {
	h := newHarness()

	out, err := h.run(t, "daily", "claim")
	require.NoError(t, err)
	assert.Contains(t, out, "Claimed 100 coins. Coins: 1100")

	h.clock.Advance(90 * time.Minute)
	_, err = h.run(t, "daily", "claim")
	assert.ErrorIs(t, err, service.ErrDailyAlreadyClaimed)
	assert.Contains(t, err.Error(), "22:30:00")

	out, err = h.run(t, "daily")
	require.NoError(t, err)
	assert.Contains(t, out, "next claim in 22:30:00")
}

func TestShop_BuyInsufficient(t *testing.T) {
	h := newHarness()

	_, err := h.run(t, "shop", "buy", "double_chance")
	assert.ErrorIs(t, err, model.ErrInsufficientFunds)

	out, err := h.run(t, "shop", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Secret Game Key")
	assert.Contains(t, out, "Coins: 1000")
}

func TestShop_BuyUnknown(t *testing.T) {
	_, err := newHarness().run(t, "shop", "buy", "handcuff")
	assert.ErrorIs(t, err, service.ErrItemNotFound)
}

func TestStatus_JSON(t *testing.T) {
	out, err := newHarness().run(t, "status", "-o", "json")
	require.NoError(t, err)

	var got struct {
		Points          int64 `json:"points"`
		Coins           int64 `json:"coins"`
		UnlockedGameIDs []int `json:"unlockedGameIDs"`
		Daily           struct {
			CanClaim bool `json:"canClaim"`
		} `json:"daily"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, int64(1000), got.Coins)
	assert.Equal(t, []int{1, 2, 3}, got.UnlockedGameIDs)
	assert.True(t, got.Daily.CanClaim)
}

func TestRoot_RejectsUnknownOutput(t *testing.T) {
	_, err := newHarness().run(t, "status", "-o", "yaml")
	assert.Error(t, err)
}

func TestOpenStorage(t *testing.T) {
	ctx := context.Background()

	kv, err := OpenStorage(ctx, config.StorageConfig{Driver: config.DriverMemory})
	require.NoError(t, err)
	require.NoError(t, kv.Close())

	kv, err = OpenStorage(ctx, config.StorageConfig{
		Driver: config.DriverSQLite,
		SQLite: config.SQLiteConfig{Path: filepath.Join(t.TempDir(), "casslot.db")},
	})
	require.NoError(t, err)
	require.NoError(t, kv.Set(ctx, "k", []byte("v")))
	require.NoError(t, kv.Close())

	_, err = OpenStorage(ctx, config.StorageConfig{Driver: "floppy"})
	assert.Error(t, err)
}

func TestOpenStorage_Redis(t *testing.T) {
	ctx := context.Background()
	mini := miniredis.RunT(t)

	kv, err := OpenStorage(ctx, config.StorageConfig{
		Driver: config.DriverRedis,
		Redis:  config.RedisConfig{URL: "redis://" + mini.Addr()},
	})
	require.NoError(t, err)
	defer kv.Close()

	require.NoError(t, kv.Set(ctx, "userData", []byte("v")))
	assert.True(t, mini.Exists("casslot:userData"), "default key prefix applied")
}

func TestRedisConfig_FillsDefaults(t *testing.T) {
	assert.Equal(t, redis.DefaultConfig(), redisConfig(config.RedisConfig{}))

	rc := redisConfig(config.RedisConfig{URL: "redis://cache:6379", PoolSize: 3, KeyPrefix: "arcade"})
	assert.Equal(t, redis.Config{URL: "redis://cache:6379", PoolSize: 3, KeyPrefix: "arcade"}, rc)
}
