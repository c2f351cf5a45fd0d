// Package postgres provides a PostgreSQL-backed KV store.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"casslot/internal/config"
	"casslot/internal/pkg/db"
	"casslot/internal/storage"
)

// Storage implements storage.KV over a kv_store table.
type Storage struct {
	pool  *pgxpool.Pool
	owned *db.Pool
}

var _ storage.KV = (*Storage)(nil)

// Open connects using cfg, runs migrations and returns a store owning the pool.
func Open(ctx context.Context, cfg *config.DatabaseConfig) (*Storage, error) {
	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}
	s := &Storage{pool: pool.Pool, owned: pool}
	if err := s.Migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

// NewWithPool wraps an existing pool; Close leaves the pool open.
func NewWithPool(pool *pgxpool.Pool) *Storage {
	return &Storage{pool: pool}
}

// Migrate creates the key-value table.
func (s *Storage) Migrate(ctx context.Context) error {
	log.Info().Msg("Running database migrations...")

	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS kv_store (
			key TEXT PRIMARY KEY,
			value BYTEA NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create kv_store: %w", err)
	}

	log.Info().Msg("kv_store table ready")
	return nil
}

func (s *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	const query = `SELECT value FROM kv_store WHERE key = $1`

	var value []byte
	if err := s.pool.QueryRow(ctx, query, key).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to read %q: %w", key, err)
	}
	return value, nil
}

func (s *Storage) Set(ctx context.Context, key string, value []byte) error {
	const query = `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`
	if _, err := s.pool.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to write %q: %w", key, err)
	}
	return nil
}

// Close closes the pool if this store opened it.
func (s *Storage) Close() error {
	if s.owned != nil {
		s.owned.Close()
	}
	return nil
}
