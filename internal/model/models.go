// Package model defines the persisted records of the arcade hub.
package model

import (
	"slices"
	"time"
)

// Default values for a player record created on first launch.
const (
	DefaultPoints       = 0
	DefaultCoins        = 1000
	DefaultUnlockedGame = 1
)

// PlayerState is the single persisted record describing the player's economy.
// JSON keys match the record written by earlier releases of the app.
type PlayerState struct {
	Points              int64   `json:"points"`
	Coins               int64   `json:"coins"`
	UnlockedGameIDs     []int   `json:"unlockedGameIDs"`
	ActiveBonuses       []Bonus `json:"activeBonuses"`
	ClaimedAchievements []int   `json:"claimedAchievements"`
}

// Bonus is an entitlement record. Nothing activates or consumes bonuses yet;
// the field is kept so existing records survive a load/save cycle.
type Bonus struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	IsActive    bool       `json:"isActive"`
	ExpiresAt   *time.Time `json:"expiresAt,omitempty"`
}

// NewPlayerState returns the first-run player record.
func NewPlayerState() *PlayerState {
	return &PlayerState{
		Points:              DefaultPoints,
		Coins:               DefaultCoins,
		UnlockedGameIDs:     []int{DefaultUnlockedGame},
		ActiveBonuses:       []Bonus{},
		ClaimedAchievements: []int{},
	}
}

// Valid reports whether the record satisfies the economy invariants.
func (s *PlayerState) Valid() bool {
	return s != nil && s.Points >= 0 && s.Coins >= 0
}

// Normalize replaces nil collections with empty ones so they encode as [].
func (s *PlayerState) Normalize() {
	if s.UnlockedGameIDs == nil {
		s.UnlockedGameIDs = []int{}
	}
	if s.ActiveBonuses == nil {
		s.ActiveBonuses = []Bonus{}
	}
	if s.ClaimedAchievements == nil {
		s.ClaimedAchievements = []int{}
	}
}

// HasUnlocked reports whether the game id is in the unlocked set.
func (s *PlayerState) HasUnlocked(gameID int) bool {
	return slices.Contains(s.UnlockedGameIDs, gameID)
}

// Clone returns a deep copy of the record.
func (s *PlayerState) Clone() *PlayerState {
	c := &PlayerState{
		Points:              s.Points,
		Coins:               s.Coins,
		UnlockedGameIDs:     slices.Clone(s.UnlockedGameIDs),
		ClaimedAchievements: slices.Clone(s.ClaimedAchievements),
		ActiveBonuses:       make([]Bonus, len(s.ActiveBonuses)),
	}
	for i, b := range s.ActiveBonuses {
		if b.ExpiresAt != nil {
			t := *b.ExpiresAt
			b.ExpiresAt = &t
		}
		c.ActiveBonuses[i] = b
	}
	c.Normalize()
	return c
}
