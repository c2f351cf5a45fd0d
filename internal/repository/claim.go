package repository

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"casslot/internal/model"
	"casslot/internal/storage"
)

// ClaimRepository stores the last daily-reward claim as a bare timestamp,
// independent of the player record.
type ClaimRepository struct {
	kv  storage.KV
	key string
}

// NewClaimRepository creates a ClaimRepository storing under key.
func NewClaimRepository(kv storage.KV, key string) *ClaimRepository {
	return &ClaimRepository{kv: kv, key: key}
}

// Load returns the last claim time. ok is false when nothing usable is stored.
func (r *ClaimRepository) Load(ctx context.Context) (last time.Time, ok bool) {
	data, err := r.kv.Get(ctx, r.key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Warn().Err(&model.StorageError{Op: "read", Key: r.key, Err: err}).Msg("Ignoring unreadable daily claim")
		}
		return time.Time{}, false
	}

	t, err := time.Parse(time.RFC3339Nano, string(data))
	if err != nil {
		log.Warn().Err(&model.StorageError{Op: "decode", Key: r.key, Err: err}).Msg("Ignoring corrupt daily claim")
		return time.Time{}, false
	}
	return t, true
}

// Save writes the claim time in UTC.
func (r *ClaimRepository) Save(ctx context.Context, t time.Time) error {
	data := []byte(t.UTC().Format(time.RFC3339Nano))
	if err := r.kv.Set(ctx, r.key, data); err != nil {
		return &model.StorageError{Op: "write", Key: r.key, Err: err}
	}
	return nil
}
