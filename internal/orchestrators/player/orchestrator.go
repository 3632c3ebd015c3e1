// Package player implements the user lifecycle: joining, loading with HP
// regeneration, renaming, leaving and leaderboards.
package player

//go:generate mockgen -destination=mock/mock_service.go -package=playermock github.com/yinpa-bot/yinpa/internal/orchestrators/player Service

import (
	"context"
	"log/slog"
	"math"
	"strings"

	"github.com/yinpa-bot/yinpa/internal/catalog"
	"github.com/yinpa-bot/yinpa/internal/config"
	"github.com/yinpa-bot/yinpa/internal/engine"
	"github.com/yinpa-bot/yinpa/internal/entities"
	"github.com/yinpa-bot/yinpa/internal/errors"
	"github.com/yinpa-bot/yinpa/internal/pkg/clock"
	"github.com/yinpa-bot/yinpa/internal/pkg/rng"
	"github.com/yinpa-bot/yinpa/internal/repositories/user"
)

const (
	// perturbationCount is how many random sensitivity nudges a new user gets
	perturbationCount = 10
	// perturbationRange bounds each nudge to [-range, +range]
	perturbationRange = 50
	// minInitialLength keeps a new user's lengths away from zero
	minInitialLength = 6.0
)

// Service defines the interface for user lifecycle operations
type Service interface {
	Join(ctx context.Context, input *JoinInput) (*JoinOutput, error)
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)
	GetByName(ctx context.Context, input *GetByNameInput) (*GetByNameOutput, error)
	Leave(ctx context.Context, input *LeaveInput) (*LeaveOutput, error)
	Rename(ctx context.Context, input *RenameInput) (*RenameOutput, error)
	Random(ctx context.Context, input *RandomInput) (*RandomOutput, error)
	Leaderboard(ctx context.Context, input *LeaderboardInput) (*LeaderboardOutput, error)
}

// Config holds the dependencies for the player orchestrator
type Config struct {
	UserRepo user.Repository
	Clock    clock.Clock
	Random   *rng.Source
	Tuning   config.Tuning
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.UserRepo == nil {
		vb.RequiredField("UserRepo")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
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
	userRepo user.Repository
	clock    clock.Clock
	random   *rng.Source
	tuning   config.Tuning
}

// NewOrchestrator creates a new player orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		userRepo: cfg.UserRepo,
		clock:    cfg.Clock,
		random:   cfg.Random,
		tuning:   cfg.Tuning,
	}, nil
}

// Join creates a user with randomized starting attributes
func (o *orchestrator) Join(ctx context.Context, input *JoinInput) (*JoinOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	name := strings.TrimSpace(input.Name)
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Name", name, vb)
	errors.ValidateMaxRunes("Name", name, o.tuning.MaxNameLength, vb)
	errors.ValidateNotIn("Name", name, o.tuning.ReservedNames, vb)
	if !input.Sex.Valid() {
		vb.Fieldf("Sex", "unknown sex %d", input.Sex)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	race, err := o.resolveRace(input.RaceName)
	if err != nil {
		return nil, err
	}

	_, err = o.userRepo.Get(ctx, user.GetInput{ID: input.ID})
	if err == nil {
		return nil, errors.AlreadyExistsf("user %d has already joined", input.ID).
			WithMeta(errors.MetaUserID, input.ID)
	}
	if !errors.IsNotFound(err) {
		return nil, errors.Wrapf(err, "failed to check user %d", input.ID)
	}

	taken, err := o.userRepo.NameExists(ctx, user.NameExistsInput{Name: name, ExcludingID: input.ID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check name %s", name)
	}
	if taken.Exists {
		return nil, errors.AlreadyExistsf("name %s is taken", name)
	}

	u, err := o.newUser(input.ID, name, input.Sex, race.ID)
	if err != nil {
		return nil, err
	}

	if _, err := o.userRepo.Save(ctx, user.SaveInput{User: u}); err != nil {
		return nil, errors.Wrapf(err, "failed to save user %d", u.ID)
	}

	slog.InfoContext(ctx, "user joined",
		"user_id", u.ID,
		"name", u.Name,
		"sex", u.Sex.String(),
		"race", race.Key)

	return &JoinOutput{User: u}, nil
}

func (o *orchestrator) resolveRace(name string) (catalog.Race, error) {
	if strings.TrimSpace(name) == "" {
		return catalog.RaceByID(catalog.RaceHuman)
	}
	return catalog.RaceByName(strings.TrimSpace(name))
}

func (o *orchestrator) newUser(id int64, name string, sex catalog.Sex, race catalog.RaceID) (*entities.User, error) {
	persistence, err := o.random.IntBetween(100, 600)
	if err != nil {
		return nil, err
	}
	length, err := o.initialLength()
	if err != nil {
		return nil, err
	}
	length2, err := o.initialLength()
	if err != nil {
		return nil, err
	}
	chest, err := o.random.IntBetween(80, 220)
	if err != nil {
		return nil, err
	}

	if sex == catalog.SexDouble {
		length = math.Abs(length)
		length2 = -math.Abs(length2)
	}

	u := &entities.User{
		ID:          id,
		Name:        name,
		Sex:         sex,
		Race:        race,
		Persistence: float64(persistence),
		Length:      length,
		Length2:     length2,
		ChestSize:   float64(chest) / 10,
		Inventory:   entities.Inventory{},
	}
	u.SetHP(o.tuning.MaxHP, o.clock.Now(), o.tuning.MinHP, o.tuning.MaxHP)
	if err := u.BackfillBodyParts(); err != nil {
		return nil, err
	}

	parts := u.OrderedParts()
	for range perturbationCount {
		change, err := o.random.IntBetween(0, 2*perturbationRange)
		if err != nil {
			return nil, err
		}
		idx, err := o.random.IntBetween(0, len(parts)-1)
		if err != nil {
			return nil, err
		}
		parts[idx].Sensitivity += float64(change - perturbationRange)
	}

	return u, nil
}

func (o *orchestrator) initialLength() (float64, error) {
	v, err := o.random.IntBetween(0, 400)
	if err != nil {
		return 0, err
	}
	return engine.LimitAbsolute(float64(v)/10-20, minInitialLength), nil
}

// Get loads a user and persists any HP regenerated since the last update
func (o *orchestrator) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.userRepo.Get(ctx, user.GetInput{ID: input.ID})
	if err != nil {
		return nil, err
	}

	restored, err := o.regenerate(ctx, out.User)
	if err != nil {
		return nil, err
	}
	return &GetOutput{User: out.User, Regenerated: restored}, nil
}

// GetByName loads a user by display name, regenerating like Get
func (o *orchestrator) GetByName(ctx context.Context, input *GetByNameInput) (*GetByNameOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.userRepo.GetByName(ctx, user.GetByNameInput{Name: strings.TrimSpace(input.Name)})
	if err != nil {
		return nil, err
	}
	if _, err := o.regenerate(ctx, out.User); err != nil {
		return nil, err
	}
	return &GetByNameOutput{User: out.User}, nil
}

func (o *orchestrator) regenerate(ctx context.Context, u *entities.User) (int, error) {
	hp, last := engine.RegenerateHP(u.HP, u.LastHPUpdate, o.clock.Now(), o.tuning)
	if hp == u.HP && last.Equal(u.LastHPUpdate) {
		return 0, nil
	}

	restored := hp - u.HP
	u.HP = hp
	u.LastHPUpdate = last
	if _, err := o.userRepo.Save(ctx, user.SaveInput{User: u}); err != nil {
		return 0, errors.Wrapf(err, "failed to save regenerated hp for user %d", u.ID)
	}

	slog.DebugContext(ctx, "regenerated hp",
		"user_id", u.ID,
		"restored", restored,
		"hp", u.HP)
	return restored, nil
}

// Leave removes a user and everything stored with them
func (o *orchestrator) Leave(ctx context.Context, input *LeaveInput) (*LeaveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.userRepo.Delete(ctx, user.DeleteInput{ID: input.ID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete user %d", input.ID)
	}
	if !out.Deleted {
		return nil, errors.UserNotFound(input.ID)
	}

	slog.InfoContext(ctx, "user left", "user_id", input.ID)
	return &LeaveOutput{Removed: true}, nil
}

// Rename changes a user's display name, keeping names unique
func (o *orchestrator) Rename(ctx context.Context, input *RenameInput) (*RenameOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	name := strings.TrimSpace(input.Name)
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Name", name, vb)
	errors.ValidateMaxRunes("Name", name, o.tuning.MaxNameLength, vb)
	errors.ValidateNotIn("Name", name, o.tuning.ReservedNames, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	got, err := o.Get(ctx, &GetInput{ID: input.ID})
	if err != nil {
		return nil, err
	}

	taken, err := o.userRepo.NameExists(ctx, user.NameExistsInput{Name: name, ExcludingID: input.ID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check name %s", name)
	}
	if taken.Exists {
		return nil, errors.AlreadyExistsf("name %s is taken", name)
	}

	u := got.User
	oldName := u.Name
	u.Name = name
	if _, err := o.userRepo.Save(ctx, user.SaveInput{User: u}); err != nil {
		return nil, errors.Wrapf(err, "failed to save user %d", u.ID)
	}

	slog.InfoContext(ctx, "user renamed",
		"user_id", u.ID,
		"old_name", oldName,
		"name", name)

	return &RenameOutput{User: u, OldName: oldName}, nil
}

// Random picks a random joined user
func (o *orchestrator) Random(ctx context.Context, _ *RandomInput) (*RandomOutput, error) {
	out, err := o.userRepo.GetRandom(ctx, user.GetRandomInput{})
	if err != nil {
		return nil, err
	}
	if _, err := o.regenerate(ctx, out.User); err != nil {
		return nil, err
	}
	return &RandomOutput{User: out.User}, nil
}
