package model

import (
	"errors"
	"fmt"
)

// Economy errors surfaced to the player.
var (
	ErrInsufficientFunds = errors.New("insufficient coins")
	ErrInvalidAmount     = errors.New("amount must be positive")
)

// StorageError reports a failed encode, decode or write of a persisted value.
// Callers treat it as non-fatal and keep their in-memory state.
type StorageError struct {
	Op  string // "encode", "decode", "read" or "write"
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
