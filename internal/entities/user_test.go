package entities_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/yinpa-bot/yinpa/internal/catalog"
	"github.com/yinpa-bot/yinpa/internal/entities"
)

type UserTestSuite struct {
	suite.Suite
	now time.Time
}

func TestUserSuite(t *testing.T) {
	suite.Run(t, new(UserTestSuite))
}

func (s *UserTestSuite) SetupTest() {
	s.now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
}

func (s *UserTestSuite) newUser(sex catalog.Sex, race catalog.RaceID, length, length2 float64) *entities.User {
	u := &entities.User{ID: 1, Name: "alice", Sex: sex, Race: race, Length: length, Length2: length2}
	s.Require().NoError(u.BackfillBodyParts())
	return u
}

func (s *UserTestSuite) TestSetHPClampsAndRefreshesTimestamp() {
	u := &entities.User{HP: 10}

	u.SetHP(5000, s.now, -1000, 1000)
	s.Equal(1000, u.HP)
	s.Equal(s.now, u.LastHPUpdate)

	u.SetHP(-5000, s.now.Add(time.Minute), -1000, 1000)
	s.Equal(-1000, u.HP)
	s.Equal(s.now.Add(time.Minute), u.LastHPUpdate)
}

func (s *UserTestSuite) TestBackfillBodyParts() {
	human := s.newUser(catalog.SexSingle, catalog.RaceHuman, 5, 0)
	s.Len(human.BodyParts, 24)
	s.NotContains(human.BodyParts, catalog.PartTail)

	dragon := s.newUser(catalog.SexSingle, 8, 5, 0)
	s.Len(dragon.BodyParts, 26)
	s.Contains(dragon.BodyParts, catalog.PartTail)
	s.Contains(dragon.BodyParts, catalog.PartWing)
}

func (s *UserTestSuite) TestBackfillKeepsExistingState() {
	u := &entities.User{
		Race: catalog.RaceHuman,
		BodyParts: map[catalog.PartID]*entities.BodyPartState{
			catalog.PartEars: {PartID: catalog.PartEars, Sensitivity: 42},
		},
	}
	s.Require().NoError(u.BackfillBodyParts())
	s.InDelta(42, u.BodyParts[catalog.PartEars].Sensitivity, 1e-9)
}

func (s *UserTestSuite) TestBackfillUnknownRace() {
	u := &entities.User{Race: 99}
	s.Error(u.BackfillBodyParts())
}

func (s *UserTestSuite) TestHasBodyPart() {
	phallus, err := catalog.BodyPartByID(catalog.PartPhallus)
	s.Require().NoError(err)
	vagina, err := catalog.BodyPartByID(catalog.PartVagina)
	s.Require().NoError(err)
	tail, err := catalog.BodyPartByID(catalog.PartTail)
	s.Require().NoError(err)
	head, err := catalog.BodyPartByID(catalog.PartHead)
	s.Require().NoError(err)

	male := s.newUser(catalog.SexSingle, catalog.RaceHuman, 5, 0)
	s.True(male.HasBodyPart(phallus))
	s.False(male.HasBodyPart(vagina))
	s.False(male.HasBodyPart(tail))
	s.True(male.HasBodyPart(head))

	female := s.newUser(catalog.SexSingle, catalog.RaceHuman, -5, 0)
	s.False(female.HasBodyPart(phallus))
	s.True(female.HasBodyPart(vagina))

	double := s.newUser(catalog.SexDouble, catalog.RaceHuman, 5, -5)
	s.True(double.HasBodyPart(phallus))
	s.True(double.HasBodyPart(vagina))

	none := s.newUser(catalog.SexNone, catalog.RaceHuman, 5, 0)
	s.False(none.HasBodyPart(phallus))
	s.True(none.HasBodyPart(head))
}

func (s *UserTestSuite) TestRefreshPromiscuity() {
	u := &entities.User{
		EmitVolume: 300, ReceiveVolume: 200,
		EmitCount: 2, ReceiveCount: 2,
		ActiveTime: 90, PassiveTime: 30,
	}
	s.InDelta(4.0, u.RefreshPromiscuity(), 1e-9)
	s.InDelta(4.0, u.Promiscuity, 1e-9)
}

func (s *UserTestSuite) TestCloneIsDeep() {
	u := s.newUser(catalog.SexSingle, catalog.RaceHuman, 5, 0)
	u.Inventory = entities.Inventory{catalog.ItemHPPotion: 1}

	c := u.Clone()
	c.BodyParts[catalog.PartHead].Sensitivity = 99
	c.Inventory[catalog.ItemHPPotion] = 5

	s.Zero(u.BodyParts[catalog.PartHead].Sensitivity)
	s.Equal(1, u.Inventory.Count(catalog.ItemHPPotion))
}

func (s *UserTestSuite) TestNormalize() {
	u := &entities.User{Length: 0.1 + 0.2, ChestSize: 1.23456}
	u.Normalize()
	s.Equal(0.3, u.Length)
	s.Equal(1.2346, u.ChestSize)
}

func (s *UserTestSuite) TestCoreEntity() {
	u := &entities.User{ID: 123456789}
	s.Equal("123456789", u.GetID())
	s.Equal(entities.EntityTypeUser, u.GetType())
	s.Equal("user:123456789", entities.EntityKey(u))
	s.Equal(entities.EntityKey(u), entities.EntityKey(entities.UserRef(u.ID)))
}

func (s *UserTestSuite) TestTierBonus() {
	state := &entities.BodyPartState{}
	*state.TierBonus(catalog.StrengthSevere) += 2
	*state.TierBonus(catalog.StrengthSoft) += 1
	s.InDelta(2, state.SevereBonus, 1e-9)
	s.InDelta(1, state.SoftBonus, 1e-9)
	s.Zero(state.NormalBonus)
}
