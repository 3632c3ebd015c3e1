// Package inventory implements buying and consuming catalog items.
package inventory

//go:generate mockgen -destination=mock/mock_service.go -package=inventorymock github.com/yinpa-bot/yinpa/internal/orchestrators/inventory Service
//go:generate mockgen -destination=mock/mock_payment_authorizer.go -package=inventorymock github.com/yinpa-bot/yinpa/internal/orchestrators/inventory PaymentAuthorizer

import (
	"context"
	"log/slog"
	"math"

	"github.com/yinpa-bot/yinpa/internal/catalog"
	"github.com/yinpa-bot/yinpa/internal/config"
	"github.com/yinpa-bot/yinpa/internal/engine"
	"github.com/yinpa-bot/yinpa/internal/entities"
	"github.com/yinpa-bot/yinpa/internal/errors"
	"github.com/yinpa-bot/yinpa/internal/orchestrators/player"
	"github.com/yinpa-bot/yinpa/internal/pkg/clock"
	"github.com/yinpa-bot/yinpa/internal/repositories/user"
)

// Service defines the interface for item operations
type Service interface {
	Buy(ctx context.Context, input *BuyInput) (*BuyOutput, error)
	Use(ctx context.Context, input *UseInput) (*UseOutput, error)
}

// PaymentAuthorizer charges an external balance. It returns false when the
// user cannot pay.
type PaymentAuthorizer interface {
	Authorize(ctx context.Context, userID int64, amount int) (bool, error)
}

// Config holds the dependencies for the inventory orchestrator
type Config struct {
	Players  player.Service
	UserRepo user.Repository
	Clock    clock.Clock
	Tuning   config.Tuning
	// Payments is optional; without it purchases are free
	Payments PaymentAuthorizer
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
	if err := vb.Build(); err != nil {
		return err
	}

	return c.Tuning.Validate()
}

type orchestrator struct {
	players  player.Service
	userRepo user.Repository
	clock    clock.Clock
	tuning   config.Tuning
	payments PaymentAuthorizer
}

// NewOrchestrator creates a new inventory orchestrator with the provided dependencies
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
		tuning:   cfg.Tuning,
		payments: cfg.Payments,
	}, nil
}

func validateRequest(itemName string, count int) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("itemName", itemName, vb)
	errors.ValidatePositive("count", count, vb)
	return vb.Build()
}

// Buy adds count units of an item to the user's inventory after the
// payment authorizer accepts the total price
func (o *orchestrator) Buy(ctx context.Context, input *BuyInput) (*BuyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateRequest(input.ItemName, input.Count); err != nil {
		return nil, err
	}

	item, err := catalog.ItemByName(input.ItemName)
	if err != nil {
		return nil, err
	}
	if item.Price > 0 && input.Count > math.MaxInt/item.Price {
		return nil, errors.InvalidArgumentf("count %d is too large", input.Count)
	}

	got, err := o.players.Get(ctx, &player.GetInput{ID: input.UserID})
	if err != nil {
		return nil, err
	}
	u := got.User
	if input.Count > math.MaxInt-u.Inventory.Count(item.ID) {
		return nil, errors.InvalidArgumentf("count %d is too large", input.Count)
	}

	total := item.Price * input.Count
	if o.payments != nil {
		ok, err := o.payments.Authorize(ctx, u.ID, total)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to authorize payment for user %d", u.ID)
		}
		if !ok {
			slog.WarnContext(ctx, "payment declined",
				"user_id", u.ID,
				"item", item.Key,
				"amount", total)
			return nil, errors.InsufficientResourcef(o.tuning.CurrencyName,
				"not enough %s: %d required", o.tuning.CurrencyName, total).
				WithMeta(errors.MetaRequired, total)
		}
	}

	if u.Inventory == nil {
		u.Inventory = entities.Inventory{}
	}
	u.Inventory[item.ID] += input.Count

	if _, err := o.userRepo.Save(ctx, user.SaveInput{User: u}); err != nil {
		// the charge has already gone through at this point
		slog.ErrorContext(ctx, "purchase charged but not saved",
			"user_id", u.ID,
			"item", item.Key,
			"count", input.Count,
			"amount", total,
			"error", err)
		return nil, errors.Wrapf(err, "failed to save user %d", u.ID)
	}

	slog.InfoContext(ctx, "item purchased",
		"user_id", u.ID,
		"item", item.Key,
		"count", input.Count,
		"amount", total)

	return &BuyOutput{
		User:    u,
		Item:    item,
		Charged: total,
		Owned:   u.Inventory.Count(item.ID),
	}, nil
}

// Use consumes count units of an item, applying its effects once per unit
// to the records its scope names. Effects run against copies so a rejected
// unit leaves both records as they were.
func (o *orchestrator) Use(ctx context.Context, input *UseInput) (*UseOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateRequest(input.ItemName, input.Count); err != nil {
		return nil, err
	}

	item, err := catalog.ItemByName(input.ItemName)
	if err != nil {
		return nil, err
	}
	if item.Scope == catalog.ScopeTarget && input.TargetID == 0 {
		return nil, errors.InvalidOperationf("%s needs a target", item.Key)
	}

	got, err := o.players.Get(ctx, &player.GetInput{ID: input.UserID})
	if err != nil {
		return nil, err
	}
	owner := got.User

	owned := owner.Inventory.Count(item.ID)
	if owned < input.Count {
		return nil, errors.InsufficientResourcef(errors.ResourceItem,
			"not enough %s: have %d, need %d", item.Key, owned, input.Count).
			WithMeta(errors.MetaAvailable, owned).
			WithMeta(errors.MetaRequired, input.Count)
	}

	self := owner.Clone()
	var other *entities.User
	if item.Scope != catalog.ScopeSelf && input.TargetID != 0 && input.TargetID != owner.ID {
		got, err := o.players.Get(ctx, &player.GetInput{ID: input.TargetID})
		if err != nil {
			return nil, err
		}
		other = got.User.Clone()
	}

	affected := recipients(item.Scope, self, other, input.TargetID != 0)
	now := o.clock.Now()
	for range input.Count {
		for _, r := range affected {
			if err := engine.ApplyItem(r, item, o.tuning, now); err != nil {
				return nil, err
			}
		}
	}

	self.Inventory[item.ID] = owned - input.Count
	if self.Inventory[item.ID] == 0 {
		delete(self.Inventory, item.ID)
	}

	if _, err := o.userRepo.Save(ctx, user.SaveInput{User: self}); err != nil {
		return nil, errors.Wrapf(err, "failed to save user %d", self.ID)
	}
	if other != nil {
		if _, err := o.userRepo.Save(ctx, user.SaveInput{User: other}); err != nil {
			slog.ErrorContext(ctx, "target save failed after user was saved",
				"user_id", self.ID,
				"target_id", other.ID,
				"error", err)
			return nil, errors.Wrapf(err, "failed to save user %d", other.ID)
		}
	}

	slog.InfoContext(ctx, "item used",
		"user_id", self.ID,
		"target_id", input.TargetID,
		"item", item.Key,
		"count", input.Count)

	return &UseOutput{
		User:      self,
		Target:    other,
		Item:      item,
		Remaining: self.Inventory.Count(item.ID),
	}, nil
}

// recipients lists the records an item acts on. When the user targets
// themselves other is nil and self stands in for the target.
func recipients(scope catalog.Scope, self, other *entities.User, targeted bool) []*entities.User {
	target := self
	if other != nil {
		target = other
	}

	switch scope {
	case catalog.ScopeTarget:
		return []*entities.User{target}
	case catalog.ScopeBoth:
		if targeted && target != self {
			return []*entities.User{target, self}
		}
		return []*entities.User{self}
	default:
		return []*entities.User{self}
	}
}
