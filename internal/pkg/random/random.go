// Package random provides the uniform draws used by the mini-games.
package random

import (
	"crypto/rand"
	"math/big"
)

// Random provides random number generation that can be mocked for testing.
type Random interface {
	// Intn returns a uniform random int in [0, n).
	Intn(n int) int
}

// CryptoRandom implements Random using crypto/rand.
type CryptoRandom struct{}

// New creates a new CryptoRandom.
func New() *CryptoRandom {
	return &CryptoRandom{}
}

// Intn returns a cryptographically random int in [0, n).
func (r *CryptoRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	result, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand does not fail on supported platforms
		return 0
	}
	return int(result.Int64())
}

// IntRange returns a uniform random int in [lo, hi].
func IntRange(r Random, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}

// Percent reports whether a d100 roll lands at or below p.
func Percent(r Random, p int) bool {
	return IntRange(r, 1, 100) <= p
}

// Bool returns a fair coin flip.
func Bool(r Random) bool {
	return r.Intn(2) == 1
}
