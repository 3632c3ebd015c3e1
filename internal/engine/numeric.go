package engine

import (
	"fmt"
	"time"

	"github.com/yinpa-bot/yinpa/internal/config"
	"github.com/yinpa-bot/yinpa/internal/pkg/rng"
)

// volumeThreshold is the sensitivity at or below which nothing is produced
const volumeThreshold = 150

// RegenerateHP returns the HP after regeneration and the timestamp to store
// with it. One point is restored per whole recovery unit elapsed since last,
// up to the configured maximum. The partial unit is carried over by
// advancing last only by the whole units consumed.
func RegenerateHP(stored int, last, now time.Time, t config.Tuning) (int, time.Time) {
	if !now.After(last) {
		return stored, last
	}
	units := int(now.Sub(last) / t.HPRecoveryUnit)
	if units == 0 {
		return stored, last
	}
	hp := stored + units
	if hp >= t.MaxHP {
		return t.MaxHP, now
	}
	return hp, last.Add(time.Duration(units) * t.HPRecoveryUnit)
}

// SensitivityToVolume maps a total sensitivity and an elapsed time to the
// volume an interaction produces.
//
// Sensitivity is spent in demarcation sized blocks, the first block worth
// demarcation/3, the next demarcation/4 and so on, with the remainder worth
// remainder/divisor at the divisor reached. All divisions truncate. The base
// volume (calculated + elapsed/16) / 16 is then scaled by a uniform draw
// between 50% and 200% at two-decimal resolution.
func SensitivityToVolume(src *rng.Source, sensitivity, elapsed float64, t config.Tuning) (float64, error) {
	if sensitivity <= volumeThreshold || elapsed <= t.MinPersistence {
		return 0, nil
	}

	remaining := int(sensitivity)
	calculated := 0
	for divisor := 3; ; divisor++ {
		if remaining < t.SensitivityDemarcation {
			calculated += remaining / divisor
			break
		}
		remaining -= t.SensitivityDemarcation
		calculated += t.SensitivityDemarcation / divisor
	}

	base := (float64(calculated) + elapsed/16) / 16
	return src.Cents(base/2, base*2)
}

// ElapsedTime draws the duration of an interaction: uniform between
// base*hpFraction and base at two-decimal resolution.
func ElapsedTime(src *rng.Source, base, hpFraction float64) (float64, error) {
	return src.Cents(base*hpFraction, base)
}

// LimitAbsolute pushes v away from zero so |v| >= floor, keeping its sign.
// Zero is treated as negative.
func LimitAbsolute(v, floor float64) float64 {
	if v > 0 && v < floor {
		return floor
	}
	if v <= 0 && v > -floor {
		return -floor
	}
	return v
}

// ChestSizeToCup converts a chest size to its cup label
func ChestSizeToCup(size float64) string {
	if size < 10 {
		return "None"
	}
	if size < 12 {
		return "AA"
	}
	cup := 'A' + rune(int((size-10)/2)) - 1
	if cup > 'Z' {
		return fmt.Sprintf("Z+%d", cup-'Z')
	}
	return string(cup)
}
