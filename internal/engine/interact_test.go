package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/yinpa-bot/yinpa/internal/catalog"
	"github.com/yinpa-bot/yinpa/internal/config"
	"github.com/yinpa-bot/yinpa/internal/engine"
	"github.com/yinpa-bot/yinpa/internal/entities"
	"github.com/yinpa-bot/yinpa/internal/errors"
	"github.com/yinpa-bot/yinpa/internal/pkg/rng"
)

type InteractTestSuite struct {
	suite.Suite
	tuning    config.Tuning
	now       time.Time
	initiator *entities.User
	target    *entities.User
}

func TestInteractSuite(t *testing.T) {
	suite.Run(t, new(InteractTestSuite))
}

func (s *InteractTestSuite) SetupTest() {
	s.tuning = config.DefaultTuning()
	s.now = time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

	s.initiator = newUser(s.T(), 1, catalog.SexSingle, 5)
	s.initiator.Persistence = 300
	s.target = newUser(s.T(), 2, catalog.SexSingle, -5)
	s.target.Persistence = 100
}

func (s *InteractTestSuite) interact(src *rng.Source, action, part string, strength catalog.Strength) (*engine.InteractOutcome, error) {
	return engine.Interact(src, s.tuning, engine.InteractInput{
		Initiator:  s.initiator,
		Target:     s.target,
		ActionName: action,
		PartName:   part,
		Strength:   strength,
		Now:        s.now,
	})
}

func (s *InteractTestSuite) TestTargetGovernedAction() {
	// ears: 190 -> 63; base = (63 + 100/16) / 16, top of range 8.65
	out, err := s.interact(scripted(rng.Max, rng.Max), "stroke", "ears", catalog.StrengthNormal)
	s.Require().NoError(err)

	s.False(out.Overdraft)
	s.True(out.TargetEmitted)
	s.Equal(catalog.ActionStroke, out.Action.ID)
	s.Equal(catalog.PartEars, out.Part.ID)
	s.InDelta(100.0, out.ElapsedTime, 1e-9)
	s.InDelta(8.65, out.Volume, 1e-9)
	s.Equal(8, out.TargetHPLost)

	s.Equal(850, s.initiator.HP)
	s.Equal(s.now, s.initiator.LastHPUpdate)
	s.Equal(992, s.target.HP)
	s.Equal(s.now, s.target.LastHPUpdate)

	s.Equal(1, s.target.EmitCount)
	s.InDelta(8.65, s.target.EmitVolume, 1e-9)
	s.Zero(s.target.ReceiveCount)
	s.Zero(s.initiator.EmitCount)
	s.InDelta(100.0, s.initiator.ActiveTime, 1e-9)
	s.InDelta(100.0, s.target.PassiveTime, 1e-9)

	ears := s.target.BodyParts[catalog.PartEars]
	s.InDelta(2.0, ears.NormalBonus, 1e-9)
	s.InDelta(0.02, ears.Sensitivity, 1e-9)
}

func (s *InteractTestSuite) TestInitiatorGovernedActionUsesTempDuration() {
	s.initiator.TempDuration = 50

	// vagina: 600 -> 66 + 50 + 40 = 156; base = (156 + 350/16) / 16, bottom of range 5.55
	out, err := s.interact(scripted(rng.Min, rng.Min), "insert", "vagina", catalog.StrengthNormal)
	s.Require().NoError(err)

	s.False(out.TargetEmitted)
	s.InDelta(350.0, out.ElapsedTime, 1e-9)
	s.InDelta(5.55, out.Volume, 1e-9)
	s.Equal(5, out.TargetHPLost)
	s.Zero(s.initiator.TempDuration)

	s.Equal(1, s.target.ReceiveCount)
	s.InDelta(5.55, s.target.ReceiveVolume, 1e-9)
	s.Equal(1, s.initiator.EmitCount)
	s.InDelta(5.55, s.initiator.EmitVolume, 1e-9)
	s.Zero(s.target.EmitCount)
}

func (s *InteractTestSuite) TestTempSensitivityConsumed() {
	s.target.TempSensitivity = 8000

	out, err := s.interact(scripted(rng.Max), "stroke", "head", catalog.StrengthNormal)
	s.Require().NoError(err)
	s.Positive(out.Volume)
	s.Zero(s.target.TempSensitivity)
}

func (s *InteractTestSuite) TestNormalResolvesToBaseStrength() {
	out, err := s.interact(scripted(rng.Max), "whip", "buttocks", catalog.StrengthNormal)
	s.Require().NoError(err)

	s.Equal(catalog.StrengthSevere, out.Strength)
	buttocks := s.target.BodyParts[catalog.PartButtocks]
	s.InDelta(2.0, buttocks.SevereBonus, 1e-9)
	s.Zero(buttocks.NormalBonus)
}

func (s *InteractTestSuite) TestTargetHPLossCappedAtCost() {
	s.target.TempSensitivity = 100000
	s.target.Persistence = 20000

	out, err := s.interact(scripted(rng.Max, rng.Max), "stroke", "head", catalog.StrengthNormal)
	s.Require().NoError(err)
	s.Greater(out.Volume, 150.0)
	s.Equal(150, out.TargetHPLost)
	s.Equal(850, s.target.HP)
}

func (s *InteractTestSuite) TestOverdraft() {
	s.initiator.HP = 100
	s.initiator.Persistence = 10

	out, err := s.interact(scripted(rng.Max), "stroke", "head", catalog.StrengthNormal)
	s.Require().NoError(err)

	s.True(out.Overdraft)
	s.InDelta(0.1, out.ReducedLength, 1e-9)
	s.InDelta(8.5, s.initiator.Persistence, 1e-9)
	s.InDelta(4.9, s.initiator.Length, 1e-9)
	s.Equal(-50, s.initiator.HP)
}

func (s *InteractTestSuite) TestOverdraftWithoutLength() {
	s.initiator.HP = 100
	s.initiator.Persistence = 10
	s.initiator.Length = -5

	out, err := s.interact(scripted(rng.Max), "stroke", "head", catalog.StrengthNormal)
	s.Require().NoError(err)

	s.True(out.Overdraft)
	s.Zero(out.ReducedLength)
	s.InDelta(-5.0, s.initiator.Length, 1e-9)
}

func (s *InteractTestSuite) TestFailuresLeaveStateUntouched() {
	testCases := []struct {
		name     string
		setup    func()
		action   string
		part     string
		check    func(error) bool
		resource string
	}{
		{
			name:     "below hard floor",
			setup:    func() { s.initiator.HP = -1001 },
			action:   "stroke",
			part:     "head",
			check:    errors.IsInsufficientResource,
			resource: errors.ResourceHP,
		},
		{
			name: "overdraft exhausts persistence",
			setup: func() {
				s.initiator.HP = 100
				s.initiator.Persistence = 3
			},
			action:   "stroke",
			part:     "head",
			check:    errors.IsInsufficientResource,
			resource: errors.ResourcePersistence,
		},
		{
			name:     "persistence below minimum",
			setup:    func() { s.initiator.Persistence = 2 },
			action:   "stroke",
			part:     "head",
			check:    errors.IsInsufficientResource,
			resource: errors.ResourcePersistence,
		},
		{name: "unknown action", action: "tickle", part: "head", check: errors.IsNotFound},
		{name: "unknown part", action: "stroke", part: "elbow", check: errors.IsNotFound},
		{name: "missing part", action: "stroke", part: "phallus", check: errors.IsInvalidOperation},
		{name: "unsupported action", action: "insert", part: "head", check: errors.IsInvalidOperation},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			if tc.setup != nil {
				tc.setup()
			}
			initiatorBefore := s.initiator.Clone()
			targetBefore := s.target.Clone()

			_, err := s.interact(scripted(rng.Max), tc.action, tc.part, catalog.StrengthNormal)
			s.Require().Error(err)
			s.True(tc.check(err), "unexpected error: %v", err)
			if tc.resource != "" {
				s.Equal(tc.resource, errors.Resource(err))
			}
			s.Equal(initiatorBefore, s.initiator)
			s.Equal(targetBefore, s.target)
		})
	}
}

func (s *InteractTestSuite) TestSelfTarget() {
	_, err := engine.Interact(scripted(rng.Max), s.tuning, engine.InteractInput{
		Initiator:  s.initiator,
		Target:     s.initiator,
		ActionName: "stroke",
		PartName:   "head",
		Now:        s.now,
	})
	s.True(errors.IsInvalidOperation(err))
}

func (s *InteractTestSuite) TestEmptyPartUsesActionDefault() {
	out, err := s.interact(scripted(rng.Max, rng.Max), "lick", "", catalog.StrengthNormal)
	s.Require().NoError(err)
	s.Equal(catalog.PartEars, out.Part.ID)

	// the target is female, so finger's default part exists
	out, err = s.interact(scripted(rng.Max, rng.Max), "finger", "", catalog.StrengthNormal)
	s.Require().NoError(err)
	s.Equal(catalog.PartVagina, out.Part.ID)
}
