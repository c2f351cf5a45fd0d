// Package service provides the player ledger, spin controller, daily reward
// clock and shop on top of the repository layer.
package service

import "errors"

// Errors surfaced to the host.
var (
	ErrGameNotFound        = errors.New("game not found")
	ErrGameLocked          = errors.New("game is locked")
	ErrSpinInProgress      = errors.New("a spin is already in progress")
	ErrDailyAlreadyClaimed = errors.New("daily reward already claimed")
	ErrItemNotFound        = errors.New("shop item not found")
)
