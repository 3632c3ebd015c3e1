package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yinpa-bot/yinpa/internal/catalog"
	"github.com/yinpa-bot/yinpa/internal/config"
	"github.com/yinpa-bot/yinpa/internal/engine"
	"github.com/yinpa-bot/yinpa/internal/errors"
	"github.com/yinpa-bot/yinpa/internal/pkg/rng"
)

func TestRollLength_Single(t *testing.T) {
	tuning := config.DefaultTuning()

	testCases := []struct {
		name        string
		length      float64
		face        int
		wantLength  float64
		wantPart    catalog.PartID
		wantChanged bool
	}{
		{name: "grows", length: 1, face: rng.Max, wantLength: 3, wantPart: catalog.PartPhallus},
		{name: "crosses zero", length: 1, face: rng.Min, wantLength: -1, wantPart: catalog.PartPhallus, wantChanged: true},
		{name: "lands on zero", length: 2, face: rng.Min, wantLength: -0.01, wantPart: catalog.PartPhallus, wantChanged: true},
		{name: "female deepens", length: -1, face: rng.Min, wantLength: -3, wantPart: catalog.PartVagina},
		{name: "female crosses", length: -1, face: rng.Max, wantLength: 1, wantPart: catalog.PartVagina, wantChanged: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			u := newUser(t, 1, catalog.SexSingle, tc.length)

			out, err := engine.RollLength(scripted(tc.face), tuning, u, false)
			require.NoError(t, err)

			assert.InDelta(t, tc.wantLength, u.Length, 1e-9)
			assert.Equal(t, tc.wantPart, out.Part)
			assert.Equal(t, tc.wantChanged, out.SexChanged)
		})
	}
}

func TestRollLength_DoubleStaysOnItsSide(t *testing.T) {
	tuning := config.DefaultTuning()

	u := newUser(t, 1, catalog.SexDouble, 1)
	out, err := engine.RollLength(scripted(rng.Min), tuning, u, false)
	require.NoError(t, err)
	assert.InDelta(t, 0.01, u.Length, 1e-9)
	assert.Equal(t, catalog.PartPhallus, out.Part)
	assert.False(t, out.SexChanged)

	u.Length2 = -1
	out, err = engine.RollLength(scripted(rng.Max), tuning, u, true)
	require.NoError(t, err)
	assert.InDelta(t, -0.01, u.Length2, 1e-9)
	assert.Equal(t, catalog.PartVagina, out.Part)
}

func TestRollLength_NoneRejected(t *testing.T) {
	u := newUser(t, 1, catalog.SexNone, 1)
	_, err := engine.RollLength(scripted(rng.Max), config.DefaultTuning(), u, false)
	assert.True(t, errors.IsInvalidOperation(err))
}

func TestRollChest(t *testing.T) {
	tuning := config.DefaultTuning()

	u := newUser(t, 1, catalog.SexSingle, -1)
	u.ChestSize = 1
	out, err := engine.RollChest(scripted(rng.Min), tuning, u)
	require.NoError(t, err)
	assert.InDelta(t, -1.5, out.Delta, 1e-9)
	assert.Zero(t, u.ChestSize)

	out, err = engine.RollChest(scripted(rng.Max), tuning, u)
	require.NoError(t, err)
	assert.InDelta(t, 1.5, out.Delta, 1e-9)
	assert.InDelta(t, 1.5, u.ChestSize, 1e-9)

	male := newUser(t, 2, catalog.SexSingle, 5)
	_, err = engine.RollChest(scripted(rng.Max), tuning, male)
	assert.True(t, errors.IsInvalidOperation(err))

	none := newUser(t, 3, catalog.SexNone, 5)
	_, err = engine.RollChest(scripted(rng.Max), tuning, none)
	assert.NoError(t, err)
}
