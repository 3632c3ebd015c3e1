package engine

import (
	"github.com/yinpa-bot/yinpa/internal/catalog"
	"github.com/yinpa-bot/yinpa/internal/config"
	"github.com/yinpa-bot/yinpa/internal/entities"
	"github.com/yinpa-bot/yinpa/internal/errors"
	"github.com/yinpa-bot/yinpa/internal/pkg/rng"
)

// SnatchCategory selects which attribute a snatch takes
type SnatchCategory int

// Snatch categories
const (
	SnatchLength SnatchCategory = iota
	SnatchChest
)

// ambiguousZero replaces an exact zero length so polarity stays readable
const ambiguousZero = 0.01

// SnatchOutcome is what a snatch moved
type SnatchOutcome struct {
	Category         SnatchCategory
	Part             catalog.PartID
	Amount           float64
	TargetSexChanged bool
	InitiatorGained  bool
}

// Snatch takes length or chest size from target and gives it to initiator
// when initiator can hold it.
func Snatch(src *rng.Source, t config.Tuning, initiator, target *entities.User, category SnatchCategory) (*SnatchOutcome, error) {
	if initiator.ID == target.ID {
		return nil, errors.InvalidOperation("cannot snatch from yourself")
	}

	out := &SnatchOutcome{Category: category}
	switch category {
	case SnatchLength:
		if target.Length <= 0 || target.Sex == catalog.SexNone {
			return nil, errors.InvalidOperationf("%s does not have that part", target.Name)
		}
		amount, err := src.Spread(t.SnatchLengthBase, t.SnatchLengthMagnification)
		if err != nil {
			return nil, err
		}
		out.Part = catalog.PartPhallus
		out.Amount = amount

		target.Length -= amount
		if target.Sex == catalog.SexSingle && target.Length <= 0 {
			out.TargetSexChanged = true
			if target.Length == 0 {
				target.Length = -ambiguousZero
			}
		}
		if (initiator.Sex == catalog.SexSingle && initiator.Length >= 0) || initiator.Sex == catalog.SexDouble {
			initiator.Length += amount
			out.InitiatorGained = true
		}

	case SnatchChest:
		if target.Length > 0 && target.Sex != catalog.SexNone {
			return nil, errors.InvalidOperationf("%s does not have that part", target.Name)
		}
		if target.ChestSize <= 0 {
			return nil, errors.InvalidOperationf("%s has nothing left to snatch", target.Name)
		}
		amount, err := src.Spread(t.SnatchChestBase, t.SnatchChestMagnification)
		if err != nil {
			return nil, err
		}
		out.Part = catalog.PartChest
		out.Amount = amount

		target.ChestSize = max(0, target.ChestSize-amount)
		if initiator.Length <= 0 || initiator.Sex == catalog.SexNone {
			initiator.ChestSize += amount
			out.InitiatorGained = true
		}

	default:
		return nil, errors.InvalidArgumentf("unknown snatch category %d", category)
	}

	initiator.ChestSize = max(0, initiator.ChestSize)
	target.ChestSize = max(0, target.ChestSize)
	return out, nil
}
