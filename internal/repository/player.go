// Package repository persists the player record and the daily-claim
// timestamp on top of a storage.KV backend.
package repository

import (
	"context"
	"errors"

	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog/log"

	"casslot/internal/model"
	"casslot/internal/storage"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PlayerRepository loads and saves the PlayerState record under a fixed key.
type PlayerRepository struct {
	kv  storage.KV
	key string
}

// NewPlayerRepository creates a PlayerRepository storing under key.
func NewPlayerRepository(kv storage.KV, key string) *PlayerRepository {
	return &PlayerRepository{kv: kv, key: key}
}

// Load returns the stored record, or the first-run defaults when the record
// is missing, unreadable, undecodable or violates the economy invariants.
// It never fails.
func (r *PlayerRepository) Load(ctx context.Context) *model.PlayerState {
	data, err := r.kv.Get(ctx, r.key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Warn().Err(&model.StorageError{Op: "read", Key: r.key, Err: err}).Msg("Falling back to default player state")
		}
		return model.NewPlayerState()
	}

	state, err := decodePlayerState(data)
	if err != nil {
		log.Warn().Err(&model.StorageError{Op: "decode", Key: r.key, Err: err}).Msg("Falling back to default player state")
		return model.NewPlayerState()
	}
	if !state.Valid() {
		log.Warn().
			Int64("points", state.Points).
			Int64("coins", state.Coins).
			Msg("Stored player state is invalid, falling back to defaults")
		return model.NewPlayerState()
	}

	state.Normalize()
	return state
}

// storedPlayerState mirrors model.PlayerState with every field required.
// A key that is absent or null leaves its pointer nil.
type storedPlayerState struct {
	Points              *int64         `json:"points"`
	Coins               *int64         `json:"coins"`
	UnlockedGameIDs     *[]int         `json:"unlockedGameIDs"`
	ActiveBonuses       *[]model.Bonus `json:"activeBonuses"`
	ClaimedAchievements *[]int         `json:"claimedAchievements"`
}

var errIncompleteRecord = errors.New("player record is null or missing fields")

func decodePlayerState(data []byte) (*model.PlayerState, error) {
	var stored storedPlayerState
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, err
	}
	if stored.Points == nil || stored.Coins == nil || stored.UnlockedGameIDs == nil ||
		stored.ActiveBonuses == nil || stored.ClaimedAchievements == nil {
		return nil, errIncompleteRecord
	}
	return &model.PlayerState{
		Points:              *stored.Points,
		Coins:               *stored.Coins,
		UnlockedGameIDs:     *stored.UnlockedGameIDs,
		ActiveBonuses:       *stored.ActiveBonuses,
		ClaimedAchievements: *stored.ClaimedAchievements,
	}, nil
}

// Save encodes and writes the record. Failures are returned as *model.StorageError.
func (r *PlayerRepository) Save(ctx context.Context, state *model.PlayerState) error {
	snapshot := state.Clone()

	data, err := json.Marshal(snapshot)
	if err != nil {
		return &model.StorageError{Op: "encode", Key: r.key, Err: err}
	}
	if err := r.kv.Set(ctx, r.key, data); err != nil {
		return &model.StorageError{Op: "write", Key: r.key, Err: err}
	}
	return nil
}
