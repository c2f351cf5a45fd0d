package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"casslot/internal/model"
	"casslot/internal/pkg/lock"
	"casslot/internal/progression"
	"casslot/internal/repository"
)

// PlayerService owns the in-memory PlayerState and writes it back after
// every mutation. Write failures are logged and the in-memory state is kept.
type PlayerService struct {
	repo    *repository.PlayerRepository
	locks   *lock.KeyLock
	catalog []progression.Game
	state   *model.PlayerState
}

// NewPlayerService creates a PlayerService holding the first-run defaults
// until Load is called.
func NewPlayerService(repo *repository.PlayerRepository, locks *lock.KeyLock) *PlayerService {
	return &PlayerService{
		repo:    repo,
		locks:   locks,
		catalog: progression.Catalog,
		state:   model.NewPlayerState(),
	}
}

// Load reads the stored record and applies the unlock rule once, persisting
// only if that unlocked something.
func (s *PlayerService) Load(ctx context.Context) *model.PlayerState {
	s.locks.Lock(lock.KeyLedger)
	defer s.locks.Unlock(lock.KeyLedger)

	s.state = s.repo.Load(ctx)
	if newly := s.applyProgression(); len(newly) > 0 {
		log.Info().Ints("games", newly).Msg("Unlocked games on load")
		s.persist(ctx)
	}
	return s.state.Clone()
}

// Snapshot returns a copy of the current state.
func (s *PlayerService) Snapshot() *model.PlayerState {
	s.locks.Lock(lock.KeyLedger)
	defer s.locks.Unlock(lock.KeyLedger)
	return s.state.Clone()
}

// AddPoints credits points, runs the unlock rule and persists.
// Returns the ids of games unlocked by this call.
func (s *PlayerService) AddPoints(ctx context.Context, amount int64) ([]int, error) {
	if amount <= 0 {
		return nil, model.ErrInvalidAmount
	}

	s.locks.Lock(lock.KeyLedger)
	defer s.locks.Unlock(lock.KeyLedger)

	s.state.Points += amount
	newly := s.applyProgression()
	s.persist(ctx)

	log.Debug().
		Int64("amount", amount).
		Int64("points", s.state.Points).
		Ints("unlocked", newly).
		Msg("Points added")
	return newly, nil
}

// AddCoins credits coins and persists. A zero amount is a no-op.
func (s *PlayerService) AddCoins(ctx context.Context, amount int64) error {
	if amount < 0 {
		return model.ErrInvalidAmount
	}
	if amount == 0 {
		return nil
	}

	return s.locks.WithLock(lock.KeyLedger, func() error {
		s.state.Coins += amount
		s.persist(ctx)

		log.Debug().Int64("amount", amount).Int64("coins", s.state.Coins).Msg("Coins added")
		return nil
	})
}

// DebitCoins removes coins if the balance covers amount. Otherwise it
// returns model.ErrInsufficientFunds and leaves the state untouched.
func (s *PlayerService) DebitCoins(ctx context.Context, amount int64) error {
	if amount <= 0 {
		return model.ErrInvalidAmount
	}

	return s.locks.WithLock(lock.KeyLedger, func() error {
		if s.state.Coins < amount {
			return model.ErrInsufficientFunds
		}
		s.state.Coins -= amount
		s.persist(ctx)

		log.Debug().Int64("amount", amount).Int64("coins", s.state.Coins).Msg("Coins debited")
		return nil
	})
}

// Games returns the catalog with each game's unlock state.
func (s *PlayerService) Games() []progression.GameStatus {
	snap := s.Snapshot()
	return progression.Statuses(s.catalog, snap.UnlockedGameIDs)
}

// Achievements returns the achievement list derived from current points.
func (s *PlayerService) Achievements() []progression.Achievement {
	snap := s.Snapshot()
	return progression.EvaluateAchievements(progression.Achievements, snap.Points)
}

// CatalogGame returns the catalog entry with the given id.
func (s *PlayerService) CatalogGame(id int) (progression.Game, bool) {
	return progression.FindGame(s.catalog, id)
}

// IsUnlocked reports whether the game id is in the unlocked set.
func (s *PlayerService) IsUnlocked(gameID int) bool {
	s.locks.Lock(lock.KeyLedger)
	defer s.locks.Unlock(lock.KeyLedger)
	return s.state.HasUnlocked(gameID)
}

// applyProgression must be called with the ledger lock held.
func (s *PlayerService) applyProgression() []int {
	unlocked, newly := progression.Unlock(s.catalog, s.state.Points, s.state.UnlockedGameIDs)
	s.state.UnlockedGameIDs = unlocked
	return newly
}

// persist must be called with the ledger lock held.
func (s *PlayerService) persist(ctx context.Context) {
	if err := s.repo.Save(ctx, s.state); err != nil {
		log.Error().Err(err).Msg("Failed to persist player state, keeping in-memory copy")
	}
}
