package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"casslot/internal/config"
	"casslot/internal/model"
	"casslot/internal/pkg/clock"
	"casslot/internal/pkg/lock"
	"casslot/internal/repository"
)

// DailyStatus describes the daily reward clock at one instant.
type DailyStatus struct {
	CanClaim  bool          `json:"canClaim"`
	Remaining time.Duration `json:"remaining"` // zero when CanClaim
	LastClaim time.Time     `json:"lastClaim"` // zero if never claimed
	NextClaim time.Time     `json:"nextClaim"` // zero if never claimed
}

// DailyService grants a fixed coin reward once per rolling cooldown window.
type DailyService struct {
	players  *PlayerService
	claims   *repository.ClaimRepository
	clock    clock.Clock
	locks    *lock.KeyLock
	reward   int64
	cooldown time.Duration

	last    time.Time
	claimed bool
}

// NewDailyService creates a DailyService. Call Load before use.
func NewDailyService(
	players *PlayerService,
	claims *repository.ClaimRepository,
	clk clock.Clock,
	locks *lock.KeyLock,
	cfg config.DailyConfig,
) *DailyService {
	return &DailyService{
		players:  players,
		claims:   claims,
		clock:    clk,
		locks:    locks,
		reward:   cfg.Reward,
		cooldown: cfg.Cooldown(),
	}
}

// Load reads the stored last-claim timestamp.
func (s *DailyService) Load(ctx context.Context) {
	s.locks.Lock(lock.KeyDaily)
	defer s.locks.Unlock(lock.KeyDaily)
	s.last, s.claimed = s.claims.Load(ctx)
}

// Reward returns the coins granted per claim.
func (s *DailyService) Reward() int64 {
	return s.reward
}

// Status reports whether a claim is possible now.
func (s *DailyService) Status() DailyStatus {
	s.locks.Lock(lock.KeyDaily)
	defer s.locks.Unlock(lock.KeyDaily)
	return s.status(s.clock.Now())
}

// Claim grants the reward and records the claim time. While cooling down it
// returns ErrDailyAlreadyClaimed with the current status.
func (s *DailyService) Claim(ctx context.Context) (DailyStatus, error) {
	s.locks.Lock(lock.KeyDaily)
	defer s.locks.Unlock(lock.KeyDaily)

	now := s.clock.Now()
	st := s.status(now)
	if !st.CanClaim {
		return st, ErrDailyAlreadyClaimed
	}

	if s.reward < 0 {
		return st, model.ErrInvalidAmount
	}

	// The claim time is written before the coins so an interrupted claim
	// can lose the reward but never grant it twice.
	s.last, s.claimed = now, true
	if err := s.claims.Save(ctx, now); err != nil {
		log.Error().Err(err).Msg("Failed to persist daily claim time, keeping in-memory copy")
	}
	if err := s.players.AddCoins(ctx, s.reward); err != nil {
		return s.status(now), err
	}

	log.Info().Int64("reward", s.reward).Time("claimed_at", now).Msg("Daily reward claimed")
	return s.status(now), nil
}

func (s *DailyService) status(now time.Time) DailyStatus {
	if !s.claimed {
		return DailyStatus{CanClaim: true}
	}
	can, remaining := Eligibility(s.last, now, s.cooldown)
	return DailyStatus{
		CanClaim:  can,
		Remaining: remaining,
		LastClaim: s.last,
		NextClaim: s.last.Add(s.cooldown),
	}
}

// Eligibility applies the rolling window: a claim is allowed once cooldown
// has fully elapsed since last. A last claim in the future counts as just
// made, so remaining never exceeds cooldown.
func Eligibility(last, now time.Time, cooldown time.Duration) (bool, time.Duration) {
	elapsed := now.Sub(last)
	if elapsed >= cooldown {
		return true, 0
	}
	if elapsed < 0 {
		return false, cooldown
	}
	return false, cooldown - elapsed
}
