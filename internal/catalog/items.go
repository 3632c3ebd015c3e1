package catalog

import "slices"

// ItemID identifies an item
type ItemID int

// Item ids
const (
	ItemHPPotion ItemID = iota
	ItemToMale
	ItemToFemale
	ItemLonger
	ItemDeeper
	ItemLarger
	ItemSmaller
	ItemStaminaPotion
	ItemAphrodisiac
)

// Scope says whose record an item acts on
type Scope int

// Item scopes
const (
	ScopeSelf Scope = iota
	ScopeTarget
	ScopeBoth
)

// String returns the scope name
func (s Scope) String() string {
	switch s {
	case ScopeSelf:
		return "self"
	case ScopeTarget:
		return "target"
	default:
		return "both"
	}
}

// Attribute names a numeric user attribute an item can change
type Attribute string

// Item attributes
const (
	AttrHP              Attribute = "hp"
	AttrLength          Attribute = "length"
	AttrChestSize       Attribute = "chest_size"
	AttrTempDuration    Attribute = "temp_use_time"
	AttrTempSensitivity Attribute = "temp_sensitive"
)

// EffectMode says how an effect value is applied
type EffectMode int

// Effect modes
const (
	// EffectAdd adds Value to the attribute
	EffectAdd EffectMode = iota
	// EffectReplace overwrites the attribute with Value
	EffectReplace
	// EffectFill sets the attribute to its configured maximum
	EffectFill
)

// Effect is one attribute change applied per consumed unit
type Effect struct {
	Attribute Attribute
	Value     float64
	Mode      EffectMode
}

// Item is a static item definition
type Item struct {
	ID          ItemID
	Key         string
	Names       []string
	Description string
	Price       int
	Scope       Scope
	Effects     []Effect
	RequiredSex []Sex

	// MaleOnly and FemaleOnly gate on length polarity for single-sex users
	MaleOnly   bool
	FemaleOnly bool
}

// AllowsSex reports whether a user of sex s may use the item
func (it Item) AllowsSex(s Sex) bool {
	return hasSex(it.RequiredSex, s)
}

func (it Item) clone() Item {
	it.Names = slices.Clone(it.Names)
	it.Effects = slices.Clone(it.Effects)
	it.RequiredSex = slices.Clone(it.RequiredSex)
	return it
}

var (
	anySex    = []Sex{SexNone, SexSingle, SexDouble}
	singleSex = []Sex{SexSingle}
)

var items = []Item{
	{ID: ItemHPPotion, Key: "hp_potion",
		Names:       []string{"体力恢复", "体力回复", "体力恢复药水", "体力回复药水", "体力恢复药", "体力回复药"},
		Description: "Restores HP to full", Price: 50, Scope: ScopeSelf, RequiredSex: anySex,
		Effects: []Effect{{Attribute: AttrHP, Mode: EffectFill}}},
	{ID: ItemToMale, Key: "to_male", Names: []string{"变男", "变成男生", "男生药"},
		Description: "Single sex, female only: length becomes 8 cm", Price: 500, Scope: ScopeSelf,
		RequiredSex: singleSex, FemaleOnly: true,
		Effects: []Effect{{Attribute: AttrLength, Value: 8, Mode: EffectReplace}}},
	{ID: ItemToFemale, Key: "to_female", Names: []string{"变女", "变成女生", "女生药", "日本生可乐"},
		Description: "Single sex, male only: depth becomes 8 cm", Price: 500, Scope: ScopeSelf,
		RequiredSex: singleSex, MaleOnly: true,
		Effects: []Effect{{Attribute: AttrLength, Value: -8, Mode: EffectReplace}}},
	{ID: ItemLonger, Key: "longer", Names: []string{"变长", "长度增加", "增长", "增长药"},
		Description: "Length grows by 5 cm", Price: 3000, Scope: ScopeSelf,
		RequiredSex: []Sex{SexSingle, SexDouble}, MaleOnly: true,
		Effects: []Effect{{Attribute: AttrLength, Value: 5, Mode: EffectAdd}}},
	{ID: ItemDeeper, Key: "deeper", Names: []string{"变深", "深度增加", "增深药"},
		Description: "Depth grows by 5 cm", Price: 3000, Scope: ScopeSelf,
		RequiredSex: []Sex{SexSingle, SexDouble}, FemaleOnly: true,
		Effects: []Effect{{Attribute: AttrLength, Value: -5, Mode: EffectAdd}}},
	{ID: ItemLarger, Key: "larger", Names: []string{"欧派增大", "丰胸", "丰胸药", "欧派变大"},
		Description: "Chest size grows by 2 cm", Price: 1000, Scope: ScopeSelf,
		RequiredSex: []Sex{SexSingle, SexDouble}, FemaleOnly: true,
		Effects: []Effect{{Attribute: AttrChestSize, Value: 2, Mode: EffectAdd}}},
	{ID: ItemSmaller, Key: "smaller", Names: []string{"欧派变小", "欧派减小"},
		Description: "Chest size shrinks by 2 cm", Price: 1000, Scope: ScopeSelf,
		RequiredSex: []Sex{SexSingle, SexDouble}, FemaleOnly: true,
		Effects: []Effect{{Attribute: AttrChestSize, Value: -2, Mode: EffectAdd}}},
	{ID: ItemStaminaPotion, Key: "stamina_potion", Names: []string{"持久药"},
		Description: "Adds 1800 s of persistence to your next action", Price: 80, Scope: ScopeSelf,
		RequiredSex: anySex,
		Effects:     []Effect{{Attribute: AttrTempDuration, Value: 1800, Mode: EffectAdd}}},
	{ID: ItemAphrodisiac, Key: "aphrodisiac", Names: []string{"催情药"},
		Description: "Adds 8000 sensitivity to the target's next action", Price: 80, Scope: ScopeTarget,
		RequiredSex: anySex,
		Effects:     []Effect{{Attribute: AttrTempSensitivity, Value: 8000, Mode: EffectAdd}}},
}

// Items returns every item in id order
func Items() []Item {
	out := make([]Item, len(items))
	for i, it := range items {
		out[i] = it.clone()
	}
	return out
}

// ItemByID looks up an item by id
func ItemByID(id ItemID) (Item, error) {
	for _, it := range items {
		if it.ID == id {
			return it.clone(), nil
		}
	}
	return Item{}, notFoundID("item", int(id))
}

// ItemByName looks up an item by any alias or its key
func ItemByName(name string) (Item, error) {
	for _, it := range items {
		if matchesName(it.Key, name) || slices.ContainsFunc(it.Names, func(n string) bool { return matchesName(n, name) }) {
			return it.clone(), nil
		}
	}
	var aliases []string
	for _, it := range items {
		aliases = append(aliases, it.Key)
		aliases = append(aliases, it.Names...)
	}
	return Item{}, notFound("item", name, aliases)
}
