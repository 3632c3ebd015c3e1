package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yinpa-bot/yinpa/internal/config"
	"github.com/yinpa-bot/yinpa/internal/engine"
	"github.com/yinpa-bot/yinpa/internal/pkg/rng"
)

func TestRegenerateHP(t *testing.T) {
	tuning := config.DefaultTuning()
	last := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		stored   int
		elapsed  time.Duration
		wantHP   int
		wantLast time.Time
	}{
		{name: "less than one unit", stored: 100, elapsed: 4 * time.Second, wantHP: 100, wantLast: last},
		{name: "exact units", stored: 100, elapsed: 15 * time.Second, wantHP: 103, wantLast: last.Add(15 * time.Second)},
		{name: "partial unit carried", stored: 100, elapsed: 12 * time.Second, wantHP: 102, wantLast: last.Add(10 * time.Second)},
		{name: "clamped at max", stored: 990, elapsed: time.Hour, wantHP: 1000, wantLast: last.Add(time.Hour)},
		{name: "negative hp recovers", stored: -500, elapsed: 50 * time.Second, wantHP: -490, wantLast: last.Add(50 * time.Second)},
		{name: "clock behind", stored: 100, elapsed: -time.Minute, wantHP: 100, wantLast: last},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			hp, stamp := engine.RegenerateHP(tc.stored, last, last.Add(tc.elapsed), tuning)
			assert.Equal(t, tc.wantHP, hp)
			assert.Equal(t, tc.wantLast, stamp)
		})
	}
}

func TestSensitivityToVolume_Zero(t *testing.T) {
	tuning := config.DefaultTuning()
	src := scripted(rng.Max)

	for _, tc := range []struct{ s, elapsed float64 }{
		{0, 100}, {150, 100}, {300, 0}, {300, 2.5},
	} {
		v, err := engine.SensitivityToVolume(src, tc.s, tc.elapsed, tuning)
		require.NoError(t, err)
		assert.Zero(t, v, "sensitivity %v elapsed %v", tc.s, tc.elapsed)
	}
}

func TestSensitivityToVolume_Formula(t *testing.T) {
	tuning := config.DefaultTuning()

	// 300 -> 200/3 + 100/4 = 91; base = (91 + 20/16) / 16 = 5.765625
	low, err := engine.SensitivityToVolume(scripted(rng.Min), 300, 20, tuning)
	require.NoError(t, err)
	assert.InDelta(t, 2.88, low, 1e-9)

	high, err := engine.SensitivityToVolume(scripted(rng.Max), 300, 20, tuning)
	require.NoError(t, err)
	assert.InDelta(t, 11.53, high, 1e-9)
}

func TestSensitivityToVolume_Monotonic(t *testing.T) {
	tuning := config.DefaultTuning()

	prev := 0.0
	for _, s := range []float64{151, 200, 300, 600, 1000, 5000, 9000} {
		v, err := engine.SensitivityToVolume(scripted(rng.Min), s, 60, tuning)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, prev, "sensitivity %v", s)
		prev = v
	}
}

func TestElapsedTime(t *testing.T) {
	low, err := engine.ElapsedTime(scripted(rng.Min), 100, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 50.0, low, 1e-9)

	high, err := engine.ElapsedTime(scripted(rng.Max), 100, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 100.0, high, 1e-9)
}

func TestLimitAbsolute(t *testing.T) {
	assert.Equal(t, 6.0, engine.LimitAbsolute(3, 6))
	assert.Equal(t, -6.0, engine.LimitAbsolute(-3, 6))
	assert.Equal(t, -6.0, engine.LimitAbsolute(0, 6))
	assert.Equal(t, 10.0, engine.LimitAbsolute(10, 6))
	assert.Equal(t, -10.0, engine.LimitAbsolute(-10, 6))
}

func TestChestSizeToCup(t *testing.T) {
	assert.Equal(t, "None", engine.ChestSizeToCup(9.9))
	assert.Equal(t, "AA", engine.ChestSizeToCup(11))
	assert.Equal(t, "A", engine.ChestSizeToCup(12))
	assert.Equal(t, "B", engine.ChestSizeToCup(14.5))
	assert.Equal(t, "Z", engine.ChestSizeToCup(62))
	assert.Equal(t, "Z+1", engine.ChestSizeToCup(64))
}
