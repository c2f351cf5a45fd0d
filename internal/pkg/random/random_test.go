package random

import (
	"testing"

	"pgregory.net/rapid"
)

func TestCryptoRandom_IntnRange(t *testing.T) {
	r := New()
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 1000).Draw(t, "n")
		v := r.Intn(n)
		if v < 0 || v >= n {
			t.Fatalf("Intn(%d) = %d, want [0,%d)", n, v, n)
		}
	})
}

func TestCryptoRandom_NonPositive(t *testing.T) {
	r := New()
	if got := r.Intn(0); got != 0 {
		t.Errorf("Intn(0) = %d, want 0", got)
	}
	if got := r.Intn(-3); got != 0 {
		t.Errorf("Intn(-3) = %d, want 0", got)
	}
}

func TestIntRange_Bounds(t *testing.T) {
	r := New()
	rapid.Check(t, func(t *rapid.T) {
		lo := rapid.IntRange(-50, 50).Draw(t, "lo")
		hi := rapid.IntRange(lo, lo+200).Draw(t, "hi")
		v := IntRange(r, lo, hi)
		if v < lo || v > hi {
			t.Fatalf("IntRange(%d,%d) = %d", lo, hi, v)
		}
	})
}

func TestIntRange_Inverted(t *testing.T) {
	if got := IntRange(New(), 5, 1); got != 5 {
		t.Errorf("IntRange(5,1) = %d, want 5", got)
	}
}
