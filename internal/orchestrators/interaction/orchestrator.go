// Package interaction implements the actions users take on each other and
// on themselves.
package interaction

//go:generate mockgen -destination=mock/mock_service.go -package=interactionmock github.com/yinpa-bot/yinpa/internal/orchestrators/interaction Service

import (
	"context"
	"log/slog"

	"github.com/yinpa-bot/yinpa/internal/config"
	"github.com/yinpa-bot/yinpa/internal/engine"
	"github.com/yinpa-bot/yinpa/internal/entities"
	"github.com/yinpa-bot/yinpa/internal/errors"
	"github.com/yinpa-bot/yinpa/internal/orchestrators/player"
	"github.com/yinpa-bot/yinpa/internal/pkg/clock"
	"github.com/yinpa-bot/yinpa/internal/pkg/idgen"
	"github.com/yinpa-bot/yinpa/internal/pkg/rng"
	"github.com/yinpa-bot/yinpa/internal/repositories/user"
)

// Service defines the interface for interaction operations
type Service interface {
	Act(ctx context.Context, input *ActInput) (*ActOutput, error)
	Solo(ctx context.Context, input *SoloInput) (*SoloOutput, error)
	Snatch(ctx context.Context, input *SnatchInput) (*SnatchOutput, error)
	RollLength(ctx context.Context, input *RollLengthInput) (*RollOutput, error)
	RollChest(ctx context.Context, input *RollChestInput) (*RollOutput, error)
}

// Config holds the dependencies for the interaction orchestrator
type Config struct {
	Players     player.Service
	UserRepo    user.Repository
	Clock       clock.Clock
	IDGenerator idgen.Generator
	Random      *rng.Source
	Tuning      config.Tuning
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Players == nil {
		vb.RequiredField("Players")
	}
	if c.UserRepo == nil {
		vb.RequiredField("UserRepo")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Random == nil {
		vb.RequiredField("Random")
	}
	if err := vb.Build(); err != nil {
		return err
	}

	return c.Tuning.Validate()
}

type orchestrator struct {
	players  player.Service
	userRepo user.Repository
	clock    clock.Clock
	idGen    idgen.Generator
	random   *rng.Source
	tuning   config.Tuning
}

// NewOrchestrator creates a new interaction orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		players:  cfg.Players,
		userRepo: cfg.UserRepo,
		clock:    cfg.Clock,
		idGen:    cfg.IDGenerator,
		random:   cfg.Random,
		tuning:   cfg.Tuning,
	}, nil
}

// Act runs the primary interaction and records it in the action log.
// The initiator is saved before the target; a failure between the two
// writes leaves the initiator's cost applied without the target's loss.
func (o *orchestrator) Act(ctx context.Context, input *ActInput) (*ActOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.InitiatorID == input.TargetID {
		return nil, o.rejected(ctx, "act", input.InitiatorID,
			errors.InvalidOperation("cannot target yourself"))
	}

	initiator, target, err := o.loadPair(ctx, input.InitiatorID, input.TargetID)
	if err != nil {
		return nil, err
	}

	now := o.clock.Now()
	outcome, err := engine.Interact(o.random, o.tuning, engine.InteractInput{
		Initiator:  initiator,
		Target:     target,
		ActionName: input.ActionName,
		PartName:   input.PartName,
		Strength:   input.Strength,
		Now:        now,
	})
	if err != nil {
		return nil, o.rejected(ctx, "act", input.InitiatorID, err)
	}

	if err := o.savePair(ctx, initiator, target); err != nil {
		return nil, err
	}

	entry := &entities.ActionLogEntry{
		ID:           o.idGen.Generate(),
		InitiatorID:  initiator.ID,
		ActionID:     outcome.Action.ID,
		TargetID:     target.ID,
		TargetPartID: outcome.Part.ID,
		Context:      input.Context,
		Volume:       outcome.Volume,
		ElapsedTime:  outcome.ElapsedTime,
		CreatedAt:    now,
	}
	if _, err := o.userRepo.AppendLog(ctx, user.AppendLogInput{Entry: entry}); err != nil {
		return nil, errors.Wrapf(err, "failed to record action of user %d", initiator.ID)
	}

	slog.InfoContext(ctx, "action completed",
		"user", entities.EntityKey(initiator),
		"target", entities.EntityKey(target),
		"action_id", outcome.Action.ID,
		"part_id", outcome.Part.ID,
		"strength", outcome.Strength.String(),
		"volume", outcome.Volume,
		"elapsed", outcome.ElapsedTime,
		"overdraft", outcome.Overdraft)

	return &ActOutput{
		Initiator: initiator,
		Target:    target,
		Outcome:   outcome,
		LogID:     entry.ID,
	}, nil
}

// Solo runs a self-directed session
func (o *orchestrator) Solo(ctx context.Context, input *SoloInput) (*SoloOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	u, err := o.load(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	outcome, err := engine.Solo(o.random, o.tuning, u, input.PartName, o.clock.Now())
	if err != nil {
		return nil, o.rejected(ctx, "solo", input.UserID, err)
	}

	if _, err := o.userRepo.Save(ctx, user.SaveInput{User: u}); err != nil {
		return nil, errors.Wrapf(err, "failed to save user %d", u.ID)
	}

	slog.InfoContext(ctx, "solo completed",
		"user_id", u.ID,
		"part_id", outcome.Part.ID,
		"change", outcome.Change,
		"sex_changed", outcome.SexChanged)

	return &SoloOutput{User: u, Outcome: outcome}, nil
}

// Snatch moves length or chest size from the target to the initiator
func (o *orchestrator) Snatch(ctx context.Context, input *SnatchInput) (*SnatchOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.InitiatorID == input.TargetID {
		return nil, o.rejected(ctx, "snatch", input.InitiatorID,
			errors.InvalidOperation("cannot snatch from yourself"))
	}

	initiator, target, err := o.loadPair(ctx, input.InitiatorID, input.TargetID)
	if err != nil {
		return nil, err
	}

	outcome, err := engine.Snatch(o.random, o.tuning, initiator, target, input.Category)
	if err != nil {
		return nil, o.rejected(ctx, "snatch", input.InitiatorID, err)
	}

	if err := o.savePair(ctx, initiator, target); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "snatch completed",
		"user", entities.EntityKey(initiator),
		"target", entities.EntityKey(target),
		"part_id", outcome.Part,
		"amount", outcome.Amount,
		"target_sex_changed", outcome.TargetSexChanged)

	return &SnatchOutput{Initiator: initiator, Target: target, Outcome: outcome}, nil
}

// RollLength moves a length by a random amount
func (o *orchestrator) RollLength(ctx context.Context, input *RollLengthInput) (*RollOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return o.roll(ctx, "roll_length", input.UserID, func(u *entities.User) (*engine.RollOutcome, error) {
		return engine.RollLength(o.random, o.tuning, u, input.Depth)
	})
}

// RollChest moves chest size by a random amount
func (o *orchestrator) RollChest(ctx context.Context, input *RollChestInput) (*RollOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return o.roll(ctx, "roll_chest", input.UserID, func(u *entities.User) (*engine.RollOutcome, error) {
		return engine.RollChest(o.random, o.tuning, u)
	})
}

func (o *orchestrator) roll(ctx context.Context, op string, userID int64,
	apply func(*entities.User) (*engine.RollOutcome, error)) (*RollOutput, error) {
	u, err := o.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	outcome, err := apply(u)
	if err != nil {
		return nil, o.rejected(ctx, op, userID, err)
	}

	if _, err := o.userRepo.Save(ctx, user.SaveInput{User: u}); err != nil {
		return nil, errors.Wrapf(err, "failed to save user %d", u.ID)
	}

	slog.InfoContext(ctx, "roll completed",
		"op", op,
		"user_id", u.ID,
		"delta", outcome.Delta,
		"sex_changed", outcome.SexChanged)

	return &RollOutput{User: u, Outcome: outcome}, nil
}

func (o *orchestrator) load(ctx context.Context, id int64) (*entities.User, error) {
	out, err := o.players.Get(ctx, &player.GetInput{ID: id})
	if err != nil {
		return nil, err
	}
	return out.User, nil
}

func (o *orchestrator) loadPair(ctx context.Context, initiatorID, targetID int64) (*entities.User, *entities.User, error) {
	initiator, err := o.load(ctx, initiatorID)
	if err != nil {
		return nil, nil, err
	}
	target, err := o.load(ctx, targetID)
	if err != nil {
		return nil, nil, err
	}
	return initiator, target, nil
}

func (o *orchestrator) savePair(ctx context.Context, initiator, target *entities.User) error {
	if _, err := o.userRepo.Save(ctx, user.SaveInput{User: initiator}); err != nil {
		return errors.Wrapf(err, "failed to save user %d", initiator.ID)
	}
	if _, err := o.userRepo.Save(ctx, user.SaveInput{User: target}); err != nil {
		slog.ErrorContext(ctx, "target save failed after initiator was saved",
			"user", entities.EntityKey(initiator),
			"target", entities.EntityKey(target),
			"error", err)
		return errors.Wrapf(err, "failed to save user %d", target.ID)
	}
	return nil
}

// rejected logs a player-caused failure and passes the error through
func (o *orchestrator) rejected(ctx context.Context, op string, userID int64, err error) error {
	if errors.GetCode(err).UserFacing() {
		slog.WarnContext(ctx, "request rejected",
			"op", op,
			"user", entities.EntityKey(entities.UserRef(userID)),
			"code", errors.GetCode(err).String(),
			"error", errors.GetMessage(err))
	}
	return err
}
