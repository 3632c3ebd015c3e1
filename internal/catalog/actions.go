package catalog

import "slices"

// ActionID identifies an action
type ActionID int

// Action ids
const (
	ActionStroke ActionID = iota
	ActionRub
	ActionPinch
	ActionPat
	ActionLick
	ActionSuck
	ActionFinger
	ActionInsert
	ActionHit
	ActionWhip
	ActionCandle
)

// Action is a static action definition
type Action struct {
	ID               ActionID
	Key              string
	Names            []string
	SensitivityBonus float64

	// Universal actions work on every part; the rest need the part to list them
	Universal    bool
	BaseStrength Strength

	// UseInitiatorPersistence makes the initiator's persistence govern the
	// elapsed time instead of the target's
	UseInitiatorPersistence bool

	DefaultPart PartID
}

func (a Action) clone() Action {
	a.Names = slices.Clone(a.Names)
	return a
}

var actions = []Action{
	{ID: ActionStroke, Key: "stroke", Names: []string{"摸", "摸摸", "抚摸", "抚"}, SensitivityBonus: 0,
		Universal: true, BaseStrength: StrengthNormal, DefaultPart: PartHead},
	{ID: ActionRub, Key: "rub", Names: []string{"撸", "揉搓", "揉"}, SensitivityBonus: 10,
		Universal: true, BaseStrength: StrengthNormal, DefaultPart: PartHead},
	{ID: ActionPinch, Key: "pinch", Names: []string{"捏", "捏捏"}, SensitivityBonus: 15,
		Universal: true, BaseStrength: StrengthNormal, DefaultPart: PartFace},
	{ID: ActionPat, Key: "pat", Names: []string{"拍", "拍打"}, SensitivityBonus: 5.5,
		Universal: true, BaseStrength: StrengthNormal, DefaultPart: PartButtocks},
	{ID: ActionLick, Key: "lick", Names: []string{"舔", "舔舐"}, SensitivityBonus: 20,
		Universal: true, BaseStrength: StrengthNormal, DefaultPart: PartEars},
	{ID: ActionSuck, Key: "suck", Names: []string{"吸", "嗦", "吸吮", "吮吸"}, SensitivityBonus: 30,
		Universal: true, BaseStrength: StrengthNormal, DefaultPart: PartNipple},
	{ID: ActionFinger, Key: "finger", Names: []string{"抠"}, SensitivityBonus: 50,
		BaseStrength: StrengthNormal, DefaultPart: PartVagina},
	{ID: ActionInsert, Key: "insert", Names: []string{"透", "插", "草", "操", "日"}, SensitivityBonus: 100,
		BaseStrength: StrengthNormal, UseInitiatorPersistence: true, DefaultPart: NoPart},
	{ID: ActionHit, Key: "hit", Names: []string{"打", "击打", "打击"}, SensitivityBonus: 5.5,
		Universal: true, BaseStrength: StrengthSevere, DefaultPart: PartButtocks},
	{ID: ActionWhip, Key: "whip", Names: []string{"鞭打", "抽打"}, SensitivityBonus: 50,
		Universal: true, BaseStrength: StrengthSevere, DefaultPart: PartButtocks},
	{ID: ActionCandle, Key: "candle", Names: []string{"滴蜡"}, SensitivityBonus: 45,
		Universal: true, BaseStrength: StrengthSevere, DefaultPart: PartButtocks},
}

// Actions returns every action in id order
func Actions() []Action {
	out := make([]Action, len(actions))
	for i, a := range actions {
		out[i] = a.clone()
	}
	return out
}

// ActionByID looks up an action by id
func ActionByID(id ActionID) (Action, error) {
	for _, a := range actions {
		if a.ID == id {
			return a.clone(), nil
		}
	}
	return Action{}, notFoundID("action", int(id))
}

// ActionByName looks up an action by any alias or its key
func ActionByName(name string) (Action, error) {
	for _, a := range actions {
		if matchesName(a.Key, name) || slices.ContainsFunc(a.Names, func(n string) bool { return matchesName(n, name) }) {
			return a.clone(), nil
		}
	}
	var aliases []string
	for _, a := range actions {
		aliases = append(aliases, a.Key)
		aliases = append(aliases, a.Names...)
	}
	return Action{}, notFound("action", name, aliases)
}

// ResolveStrength maps Normal to the action's base tier
func (a Action) ResolveStrength(s Strength) Strength {
	if s == StrengthNormal {
		return a.BaseStrength
	}
	return s
}
