package engine

import (
	"slices"
	"time"

	"github.com/yinpa-bot/yinpa/internal/catalog"
	"github.com/yinpa-bot/yinpa/internal/config"
	"github.com/yinpa-bot/yinpa/internal/entities"
	"github.com/yinpa-bot/yinpa/internal/errors"
	"github.com/yinpa-bot/yinpa/internal/pkg/rng"
)

var (
	soloChestParts  = []catalog.PartID{catalog.PartChest, catalog.PartNipple}
	soloLengthParts = []catalog.PartID{catalog.PartPhallus, catalog.PartGlans}
	soloDepthParts  = []catalog.PartID{catalog.PartVagina, catalog.PartClitoris}
)

// SoloOutcome is what a solo session changed
type SoloOutcome struct {
	Part   catalog.BodyPart
	Action catalog.ActionID

	// Change is the signed amount applied to the chosen attribute
	Change          float64
	HPCost          int
	SensitivityGain float64

	Chest      bool
	Length2    bool
	SexChanged bool
}

// SoloCost is the HP a solo session costs
func SoloCost(t config.Tuning) int {
	return t.CostPerAction / 3
}

// Solo runs a self-directed session on partName, or on the part implied by
// the user's anatomy when partName is empty.
func Solo(src *rng.Source, t config.Tuning, u *entities.User, partName string, now time.Time) (*SoloOutcome, error) {
	if u.Sex == catalog.SexNone {
		return nil, errors.InvalidOperation("users without a sex cannot do this")
	}
	cost := SoloCost(t)
	if u.HP < cost {
		return nil, errors.InsufficientResourcef(errors.ResourceHP, "not enough hp: %d / %d", u.HP, cost).
			WithMeta(errors.MetaAvailable, u.HP).
			WithMeta(errors.MetaRequired, cost)
	}

	part, err := soloPart(u, partName)
	if err != nil {
		return nil, err
	}

	lengthDraw, err := src.Spread(t.SoloLengthBase, t.SoloMagnification)
	if err != nil {
		return nil, err
	}
	chestDraw, err := src.Spread(t.SoloChestBase, t.SoloMagnification)
	if err != nil {
		return nil, err
	}
	sensitivityDraw, err := src.Spread(t.SoloSensitivityBase, t.SoloMagnification)
	if err != nil {
		return nil, err
	}

	out := &SoloOutcome{Part: part, HPCost: cost, SensitivityGain: sensitivityDraw}
	wasMale := u.Length > 0
	u.SetHP(u.HP-cost, now, t.MinHP, t.MaxHP)

	switch {
	case slices.Contains(soloChestParts, part.ID):
		u.ChestSize += chestDraw
		out.Change = chestDraw
		out.Action = catalog.ActionPinch
		out.Chest = true
	case slices.Contains(soloLengthParts, part.ID):
		u.Length += lengthDraw
		out.Change = lengthDraw
		out.Action = catalog.ActionRub
	default:
		out.Action = catalog.ActionFinger
		out.Change = -lengthDraw
		if u.Sex == catalog.SexDouble {
			u.Length2 -= lengthDraw
			out.Length2 = true
		} else {
			u.Length -= lengthDraw
		}
	}

	state, ok := u.BodyParts[part.ID]
	if !ok {
		if u.BodyParts == nil {
			u.BodyParts = make(map[catalog.PartID]*entities.BodyPartState)
		}
		state = &entities.BodyPartState{PartID: part.ID}
		u.BodyParts[part.ID] = state
	}
	state.Sensitivity += sensitivityDraw
	out.SexChanged = u.Sex == catalog.SexSingle && wasMale != (u.Length > 0)

	return out, nil
}

func soloPart(u *entities.User, partName string) (catalog.BodyPart, error) {
	if partName == "" {
		id := catalog.PartPhallus
		if u.Sex == catalog.SexSingle && u.Length <= 0 {
			id = catalog.PartVagina
		}
		return catalog.BodyPartByID(id)
	}

	part, err := catalog.BodyPartByName(partName)
	if err != nil {
		return catalog.BodyPart{}, err
	}
	supported := slices.Contains(soloChestParts, part.ID) ||
		slices.Contains(soloLengthParts, part.ID) ||
		slices.Contains(soloDepthParts, part.ID)
	if !supported {
		return catalog.BodyPart{}, errors.InvalidOperationf("solo is not possible on %s", partName)
	}
	return part, nil
}
