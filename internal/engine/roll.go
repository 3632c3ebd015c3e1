package engine

import (
	"github.com/yinpa-bot/yinpa/internal/catalog"
	"github.com/yinpa-bot/yinpa/internal/config"
	"github.com/yinpa-bot/yinpa/internal/entities"
	"github.com/yinpa-bot/yinpa/internal/errors"
	"github.com/yinpa-bot/yinpa/internal/pkg/rng"
)

// RollOutcome is what a roll changed
type RollOutcome struct {
	Part       catalog.PartID
	Delta      float64
	SexChanged bool
}

// RollLength moves a length by a random amount. For double-sex users depth
// selects Length2 instead of Length; each stays on its own side of zero.
func RollLength(src *rng.Source, t config.Tuning, u *entities.User, depth bool) (*RollOutcome, error) {
	if u.Sex == catalog.SexNone {
		return nil, errors.InvalidOperation("users without a sex cannot do this")
	}
	delta, err := src.Symmetric(t.RollLengthMagnitude)
	if err != nil {
		return nil, err
	}

	out := &RollOutcome{Delta: delta}
	if u.Sex == catalog.SexDouble {
		if depth {
			out.Part = catalog.PartVagina
			u.Length2 += delta
			if u.Length2 >= 0 {
				u.Length2 = -ambiguousZero
			}
		} else {
			out.Part = catalog.PartPhallus
			u.Length += delta
			if u.Length <= 0 {
				u.Length = ambiguousZero
			}
		}
		return out, nil
	}

	wasMale := u.Length > 0
	u.Length += delta
	if u.Length == 0 {
		u.Length = -ambiguousZero
	}
	out.SexChanged = wasMale != (u.Length > 0)
	out.Part = catalog.PartVagina
	if wasMale {
		out.Part = catalog.PartPhallus
	}
	return out, nil
}

// RollChest moves chest size by a random amount, never below zero
func RollChest(src *rng.Source, t config.Tuning, u *entities.User) (*RollOutcome, error) {
	if u.IsMale() {
		return nil, errors.InvalidOperation("chest is not available right now")
	}
	delta, err := src.Symmetric(t.RollChestMagnitude)
	if err != nil {
		return nil, err
	}
	u.ChestSize = max(0, u.ChestSize+delta)
	return &RollOutcome{Part: catalog.PartChest, Delta: delta}, nil
}
