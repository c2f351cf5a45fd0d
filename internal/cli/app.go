// Package cli is the cobra command tree over the arcade services.
package cli

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"casslot/internal/config"
	"casslot/internal/game"
	"casslot/internal/game/colorwheel"
	"casslot/internal/game/gridmatch"
	"casslot/internal/game/reels"
	"casslot/internal/pkg/clock"
	"casslot/internal/pkg/lock"
	"casslot/internal/pkg/random"
	"casslot/internal/repository"
	"casslot/internal/service"
	"casslot/internal/storage"
	"casslot/internal/storage/memory"
	"casslot/internal/storage/postgres"
	"casslot/internal/storage/redis"
	"casslot/internal/storage/sqlite"
)

// App bundles the services one command invocation works with.
type App struct {
	Players *service.PlayerService
	Spins   *service.SpinService
	Daily   *service.DailyService
	Shop    *service.ShopService

	kv storage.KV
}

// Deps are the replaceable sources an App draws from.
type Deps struct {
	Random random.Random
	Clock  clock.Clock
}

// NewApp wires the services over kv and loads the stored state.
func NewApp(ctx context.Context, cfg *config.Config, kv storage.KV, deps Deps) (*App, error) {
	if deps.Random == nil {
		deps.Random = random.New()
	}
	if deps.Clock == nil {
		deps.Clock = clock.New()
	}

	registry, err := game.NewRegistry(reels.New(), colorwheel.New(), gridmatch.New())
	if err != nil {
		return nil, fmt.Errorf("failed to register games: %w", err)
	}

	locks := lock.NewKeyLock()
	players := service.NewPlayerService(repository.NewPlayerRepository(kv, cfg.Storage.StateKey), locks)
	daily := service.NewDailyService(
		players,
		repository.NewClaimRepository(kv, cfg.Storage.ClaimKey),
		deps.Clock,
		locks,
		cfg.Daily,
	)

	players.Load(ctx)
	daily.Load(ctx)

	log.Debug().
		Int("game_count", registry.Count()).
		Strs("games", registry.Commands()).
		Msg("Games registered")

	return &App{
		Players: players,
		Spins:   service.NewSpinService(registry, players, locks, deps.Random, cfg.Spin),
		Daily:   daily,
		Shop:    service.NewShopService(players),
		kv:      kv,
	}, nil
}

// Close releases the storage backend.
func (a *App) Close() error {
	return a.kv.Close()
}

// OpenStorage opens the backend named by cfg.Driver.
func OpenStorage(ctx context.Context, cfg config.StorageConfig) (storage.KV, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		return memory.New(), nil
	case config.DriverSQLite:
		return sqlite.Open(cfg.SQLite.Path)
	case config.DriverPostgres:
		return postgres.Open(ctx, &cfg.Database)
	case config.DriverRedis:
		return redis.New(ctx, redisConfig(cfg.Redis))
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
}

// redisConfig fills unset fields from redis.DefaultConfig.
func redisConfig(c config.RedisConfig) redis.Config {
	rc := redis.DefaultConfig()
	if c.URL != "" {
		rc.URL = c.URL
	}
	if c.PoolSize > 0 {
		rc.PoolSize = c.PoolSize
	}
	if c.KeyPrefix != "" {
		rc.KeyPrefix = c.KeyPrefix
	}
	return rc
}
