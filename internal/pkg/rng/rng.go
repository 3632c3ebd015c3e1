// Package rng turns rpg-toolkit dice rolls into the bounded draws the game
// rules use: inclusive integer ranges and two-decimal amounts.
package rng

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/yinpa-bot/yinpa/internal/errors"
)

// Source draws uniform values from a dice.Roller
type Source struct {
	roller dice.Roller
}

// New wraps a roller. A nil roller falls back to dice.DefaultRoller.
func New(roller dice.Roller) *Source {
	if roller == nil {
		roller = dice.DefaultRoller
	}
	return &Source{roller: roller}
}

// IntBetween returns a uniform integer in [lo, hi]. Reversed bounds are
// swapped rather than rejected.
func (s *Source) IntBetween(lo, hi int) (int, error) {
	if lo > hi {
		lo, hi = hi, lo
	}
	// a single-sided die always rolls 1
	face, err := s.roller.Roll(hi - lo + 1)
	if err != nil {
		return 0, errors.Wrap(err, "failed to roll")
	}
	return lo + face - 1, nil
}

// Cents returns a uniform amount between lo and hi at two-decimal resolution.
// Both bounds are truncated to whole hundredths before drawing.
func (s *Source) Cents(lo, hi float64) (float64, error) {
	v, err := s.IntBetween(int(lo*100), int(hi*100))
	if err != nil {
		return 0, err
	}
	return float64(v) / 100, nil
}

// Spread returns a uniform amount in [base, base*magnification] at
// two-decimal resolution.
func (s *Source) Spread(base, magnification float64) (float64, error) {
	return s.Cents(base, base*magnification)
}

// Symmetric returns a uniform amount in [-magnitude, +magnitude] at
// two-decimal resolution.
func (s *Source) Symmetric(magnitude float64) (float64, error) {
	v, err := s.IntBetween(0, int(magnitude*2*100))
	if err != nil {
		return 0, err
	}
	return float64(v)/100 - magnitude, nil
}
