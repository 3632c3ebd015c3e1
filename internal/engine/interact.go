package engine

import (
	"time"

	"github.com/yinpa-bot/yinpa/internal/catalog"
	"github.com/yinpa-bot/yinpa/internal/config"
	"github.com/yinpa-bot/yinpa/internal/entities"
	"github.com/yinpa-bot/yinpa/internal/errors"
	"github.com/yinpa-bot/yinpa/internal/pkg/rng"
)

// InteractInput describes one user acting on another. An empty PartName
// targets the action's default part.
type InteractInput struct {
	Initiator  *entities.User
	Target     *entities.User
	ActionName string
	PartName   string
	Strength   catalog.Strength
	Now        time.Time
}

// InteractOutcome is what an interaction changed
type InteractOutcome struct {
	Action   catalog.Action
	Part     catalog.BodyPart
	Strength catalog.Strength

	Overdraft     bool
	ReducedLength float64
	ElapsedTime   float64
	Volume        float64
	TargetHPLost  int

	// TargetEmitted is set when the target's persistence governed the
	// interaction; otherwise the initiator injected into the target.
	TargetEmitted bool
}

// Interact runs the primary two-user interaction. The users must already be
// loaded (and regenerated) and must be different records.
func Interact(src *rng.Source, t config.Tuning, in InteractInput) (*InteractOutcome, error) {
	initiator, target := in.Initiator, in.Target
	if initiator == nil || target == nil {
		return nil, errors.InvalidArgument("initiator and target are required")
	}
	if initiator.ID == target.ID {
		return nil, errors.InvalidOperation("cannot target yourself")
	}

	out := &InteractOutcome{}

	hpBefore := initiator.HP
	persistence := initiator.Persistence
	length := initiator.Length
	if hpBefore < t.CostPerAction {
		if hpBefore < t.MinHP {
			return nil, errors.InsufficientResourcef(errors.ResourceHP,
				"hp too low to act: %d", hpBefore).
				WithMeta(errors.MetaAvailable, hpBefore).
				WithMeta(errors.MetaRequired, t.MinHP)
		}
		out.Overdraft = true
		persistence -= t.OverdraftPersistencePenalty
		if length > 0 {
			length -= t.OverdraftLengthPenalty
			out.ReducedLength = t.OverdraftLengthPenalty
		}
	}
	if persistence < t.MinPersistence {
		return nil, errors.InsufficientResourcef(errors.ResourcePersistence,
			"too exhausted to take part: persistence %.2f s, need %.2f s", persistence, t.MinPersistence).
			WithMeta(errors.MetaAvailable, persistence).
			WithMeta(errors.MetaRequired, t.MinPersistence)
	}

	action, err := catalog.ActionByName(in.ActionName)
	if err != nil {
		return nil, err
	}
	var part catalog.BodyPart
	if in.PartName == "" {
		part, err = catalog.BodyPartByID(action.DefaultPart)
	} else {
		part, err = catalog.BodyPartByName(in.PartName)
	}
	if err != nil {
		return nil, err
	}
	if !target.HasBodyPart(part) {
		return nil, errors.InvalidOperationf("%s does not have %s", target.Name, part.Key)
	}
	if !part.Supports(action) {
		return nil, errors.InvalidOperationf("cannot %s the %s", action.Key, part.Key)
	}
	out.Action = action
	out.Part = part
	out.Strength = action.ResolveStrength(in.Strength)

	state := target.BodyParts[part.ID]
	bonus := state.TierBonus(out.Strength)
	sensitivity := float64(part.BaseSensitivity) + state.Sensitivity + *bonus

	var base, hpFraction float64
	if action.UseInitiatorPersistence {
		base = persistence + initiator.TempDuration
		hpFraction = float64(hpBefore) / float64(t.MaxHP)
	} else {
		base = target.Persistence + target.TempDuration
		hpFraction = float64(target.HP) / float64(t.MaxHP)
		out.TargetEmitted = true
	}

	// every draw happens before the first write
	if out.ElapsedTime, err = ElapsedTime(src, base, hpFraction); err != nil {
		return nil, err
	}
	if out.Volume, err = SensitivityToVolume(src, sensitivity+target.TempSensitivity, out.ElapsedTime, t); err != nil {
		return nil, err
	}
	out.TargetHPLost = min(int(min(out.Volume, float64(t.MaxHP)/2)), t.CostPerAction)

	initiator.Persistence = persistence
	initiator.Length = length
	initiator.SetHP(hpBefore-t.CostPerAction, in.Now, t.MinHP, t.MaxHP)

	*bonus += t.StrengthSensitivityPerAction
	state.Sensitivity += t.SensitivityPerAction

	if action.UseInitiatorPersistence {
		initiator.TempDuration = 0
	} else {
		target.TempDuration = 0
	}
	target.TempSensitivity = 0
	target.SetHP(target.HP-out.TargetHPLost, in.Now, t.MinHP, t.MaxHP)

	if out.TargetEmitted {
		target.EmitCount++
		target.EmitVolume += out.Volume
	} else {
		target.ReceiveCount++
		target.ReceiveVolume += out.Volume
		initiator.EmitCount++
		initiator.EmitVolume += out.Volume
	}
	initiator.ActiveTime += out.ElapsedTime
	target.PassiveTime += out.ElapsedTime

	return out, nil
}
