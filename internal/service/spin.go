package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"casslot/internal/config"
	"casslot/internal/game"
	"casslot/internal/model"
	"casslot/internal/pkg/lock"
	"casslot/internal/pkg/random"
)

// CoinDivisor converts a points win into the coins awarded with it.
const CoinDivisor = 10

// SpinOptions configures one spin.
type SpinOptions struct {
	Params map[string]any

	// OnFrame receives the cosmetic reveal frames. Nil skips the reveal.
	OnFrame func(tick int, frame any)
}

// SpinResult is a settled round and its effect on the player.
type SpinResult struct {
	Outcome      *game.Outcome
	CoinsAwarded int64
	Unlocked     []int
	State        *model.PlayerState
}

// SpinService runs mini-game rounds and applies their wins.
type SpinService struct {
	registry  *game.Registry
	players   *PlayerService
	locks     *lock.KeyLock
	rng       random.Random
	frames    random.Random
	animation config.SpinConfig
}

// NewSpinService creates a SpinService. Outcomes are drawn from rng; reveal
// frames come from a separate source so they never shift outcome draws.
func NewSpinService(
	registry *game.Registry,
	players *PlayerService,
	locks *lock.KeyLock,
	rng random.Random,
	animation config.SpinConfig,
) *SpinService {
	return &SpinService{
		registry:  registry,
		players:   players,
		locks:     locks,
		rng:       rng,
		frames:    random.New(),
		animation: animation,
	}
}

// Games returns the registered mini-games.
func (s *SpinService) Games() []game.MiniGame {
	return s.registry.List()
}

// Spin plays one round of the game registered under command. Only one spin
// runs at a time; an overlapping call fails with ErrSpinInProgress. If ctx
// ends during the reveal the round is abandoned without touching the state.
func (s *SpinService) Spin(ctx context.Context, command string, opts SpinOptions) (*SpinResult, error) {
	g, ok := s.registry.Get(command)
	if !ok {
		return nil, ErrGameNotFound
	}
	entry, ok := s.players.CatalogGame(g.ID())
	if !ok {
		log.Warn().Str("game", command).Int("id", g.ID()).Msg("Registered game has no catalog entry")
		return nil, ErrGameNotFound
	}
	if !s.players.IsUnlocked(g.ID()) {
		return nil, ErrGameLocked
	}
	if err := g.ValidateParams(opts.Params); err != nil {
		return nil, err
	}

	if !s.locks.TryLock(lock.KeySpin) {
		return nil, ErrSpinInProgress
	}
	defer s.locks.Unlock(lock.KeySpin)

	if opts.OnFrame != nil {
		anim := s.animation.ForGame(command)
		err := game.Animate(ctx, anim.Ticks, anim.Interval, func(tick int) {
			opts.OnFrame(tick, g.Frame(s.frames))
		})
		if err != nil {
			log.Debug().Err(err).Str("game", command).Msg("Spin abandoned during reveal")
			return nil, err
		}
	}

	outcome, err := g.Play(ctx, s.rng, opts.Params)
	if err != nil {
		return nil, err
	}
	outcome.RoundID = uuid.NewString()

	result := &SpinResult{Outcome: outcome}
	if outcome.Won() {
		unlocked, err := s.players.AddPoints(ctx, outcome.Win)
		if err != nil {
			return nil, err
		}
		result.Unlocked = unlocked
		result.CoinsAwarded = outcome.Win / CoinDivisor
		if err := s.players.AddCoins(ctx, result.CoinsAwarded); err != nil {
			return nil, err
		}
	}
	result.State = s.players.Snapshot()

	log.Info().
		Str("round_id", outcome.RoundID).
		Str("game", command).
		Str("title", entry.Title).
		Int64("win", outcome.Win).
		Int64("coins_awarded", result.CoinsAwarded).
		Ints("unlocked", result.Unlocked).
		Msg("Spin settled")
	return result, nil
}
