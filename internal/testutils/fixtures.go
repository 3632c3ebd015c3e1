package testutils

import (
	"time"

	"github.com/yinpa-bot/yinpa/internal/catalog"
	"github.com/yinpa-bot/yinpa/internal/entities"
)

// TestNow is the fixed instant fixtures are stamped with
var TestNow = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

// CreateTestUser creates a single-sex human with a full part map. Positive
// length makes a male, negative a female.
func CreateTestUser(id int64, name string, length float64) *entities.User {
	u := &entities.User{
		ID:           id,
		Name:         name,
		Sex:          catalog.SexSingle,
		Race:         catalog.RaceHuman,
		HP:           1000,
		LastHPUpdate: TestNow,
		Persistence:  300,
		Length:       length,
		Length2:      -5,
		ChestSize:    12,
		Inventory:    entities.Inventory{},
	}
	if err := u.BackfillBodyParts(); err != nil {
		panic(err)
	}
	return u
}

// CreateTestDoubleUser creates a double-sex user of the given race
func CreateTestDoubleUser(id int64, name string, race catalog.RaceID) *entities.User {
	u := CreateTestUser(id, name, 6)
	u.Sex = catalog.SexDouble
	u.Race = race
	u.Length2 = -7
	if err := u.BackfillBodyParts(); err != nil {
		panic(err)
	}
	return u
}
