package engine_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yinpa-bot/yinpa/internal/catalog"
	"github.com/yinpa-bot/yinpa/internal/entities"
	"github.com/yinpa-bot/yinpa/internal/pkg/rng"
)

func newUser(t *testing.T, id int64, sex catalog.Sex, length float64) *entities.User {
	t.Helper()
	u := &entities.User{
		ID:          id,
		Name:        "user",
		Sex:         sex,
		Race:        catalog.RaceHuman,
		HP:          1000,
		Persistence: 100,
		Length:      length,
		Length2:     -4,
		ChestSize:   12,
		Inventory:   entities.Inventory{},
	}
	require.NoError(t, u.BackfillBodyParts())
	return u
}

func scripted(faces ...int) *rng.Source {
	return rng.New(rng.NewScripted(faces...))
}
