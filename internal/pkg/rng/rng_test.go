package rng_test

import (
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yinpa-bot/yinpa/internal/pkg/rng"
)

var _ dice.Roller = (*rng.Scripted)(nil)

func TestIntBetween_Bounds(t *testing.T) {
	lo, err := rng.New(rng.NewScripted(rng.Min)).IntBetween(30, 120)
	require.NoError(t, err)
	assert.Equal(t, 30, lo)

	hi, err := rng.New(rng.NewScripted(rng.Max)).IntBetween(30, 120)
	require.NoError(t, err)
	assert.Equal(t, 120, hi)

	mid, err := rng.New(rng.NewScripted(11)).IntBetween(30, 120)
	require.NoError(t, err)
	assert.Equal(t, 40, mid)
}

func TestIntBetween_SwapsReversedBounds(t *testing.T) {
	v, err := rng.New(rng.NewScripted(rng.Min)).IntBetween(10, -10)
	require.NoError(t, err)
	assert.Equal(t, -10, v)
}

func TestIntBetween_SingleValue(t *testing.T) {
	v, err := rng.New(rng.NewScripted(rng.Max)).IntBetween(7, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestSpread(t *testing.T) {
	v, err := rng.New(rng.NewScripted(rng.Max)).Spread(1.0, 4)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, v, 1e-9)

	v, err = rng.New(rng.NewScripted(rng.Min)).Spread(0.25, 4)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, v, 1e-9)
}

func TestSymmetric(t *testing.T) {
	v, err := rng.New(rng.NewScripted(rng.Min)).Symmetric(2.0)
	require.NoError(t, err)
	assert.InDelta(t, -2.0, v, 1e-9)

	v, err = rng.New(rng.NewScripted(rng.Max)).Symmetric(2.0)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, v, 1e-9)
}

func TestDefaultRollerStaysInRange(t *testing.T) {
	src := rng.New(nil)
	for i := 0; i < 200; i++ {
		v, err := src.IntBetween(-3, 3)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, -3)
		assert.LessOrEqual(t, v, 3)
	}
}

func TestScripted_RepeatsLastFace(t *testing.T) {
	r := rng.NewScripted(2, 5)
	faces, err := r.RollN(4, 6)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 5, 5, 5}, faces)
}
