package catalog

import (
	"fmt"
	"slices"
)

// RaceID identifies a race
type RaceID int

// RaceHuman is the race with no optional parts
const RaceHuman RaceID = 0

// Race is a static race definition
type Race struct {
	ID    RaceID
	Key   string
	Names []string

	// OptionalParts are the optional body parts this race grants
	OptionalParts []PartID

	// SensitiveParts are reserved for a race sensitivity multiplier and are
	// not applied by the rules yet
	SensitiveParts []PartID
}

// Name returns the primary display name
func (r Race) Name() string {
	return r.Names[0]
}

// HasOptionalPart reports whether the race grants part id
func (r Race) HasOptionalPart(id PartID) bool {
	return slices.Contains(r.OptionalParts, id)
}

func (r Race) clone() Race {
	r.Names = slices.Clone(r.Names)
	r.OptionalParts = slices.Clone(r.OptionalParts)
	r.SensitiveParts = slices.Clone(r.SensitiveParts)
	return r
}

func parts(ids ...PartID) []PartID { return ids }

var races = []Race{
	{ID: 0, Key: "human", Names: []string{"人类"}},
	{ID: 1, Key: "umamusume", Names: []string{"马娘"}, OptionalParts: parts(PartTail),
		SensitiveParts: parts(PartEars, PartTail, PartNeck)},
	{ID: 2, Key: "catgirl", Names: []string{"猫娘"}, OptionalParts: parts(PartTail),
		SensitiveParts: parts(PartEars, PartTail)},
	{ID: 3, Key: "doggirl", Names: []string{"狗娘"}, OptionalParts: parts(PartTail),
		SensitiveParts: parts(PartEars, PartTail)},
	{ID: 4, Key: "mousegirl", Names: []string{"鼠娘"}, OptionalParts: parts(PartTail),
		SensitiveParts: parts(PartEars)},
	{ID: 5, Key: "cowgirl", Names: []string{"牛娘"}, OptionalParts: parts(PartTail, PartHorn),
		SensitiveParts: parts(PartAbdomen)},
	{ID: 6, Key: "tigergirl", Names: []string{"虎娘"}, OptionalParts: parts(PartTail),
		SensitiveParts: parts(PartEars, PartTail)},
	{ID: 7, Key: "bunnygirl", Names: []string{"兔娘"}, OptionalParts: parts(PartTail),
		SensitiveParts: parts(PartEars, PartTail)},
	{ID: 8, Key: "dragongirl", Names: []string{"龙娘"}, OptionalParts: parts(PartTail, PartWing),
		SensitiveParts: parts(PartEars, PartTail, PartWing)},
	{ID: 9, Key: "snakegirl", Names: []string{"蛇娘"}, OptionalParts: parts(PartTail),
		SensitiveParts: parts(PartTail)},
	{ID: 10, Key: "sheepgirl", Names: []string{"羊娘"}, OptionalParts: parts(PartTail),
		SensitiveParts: parts(PartEars, PartTail)},
	{ID: 11, Key: "monkeygirl", Names: []string{"猴娘"}, OptionalParts: parts(PartTail),
		SensitiveParts: parts(PartEars, PartTail)},
	{ID: 12, Key: "chickengirl", Names: []string{"鸡娘"}, OptionalParts: parts(PartTail, PartWing),
		SensitiveParts: parts(PartEars, PartWing)},
	{ID: 13, Key: "piggirl", Names: []string{"猪娘"}, OptionalParts: parts(PartTail)},
	{ID: 14, Key: "elf", Names: []string{"精灵"}, OptionalParts: parts(PartWing),
		SensitiveParts: parts(PartEars, PartWing)},
	{ID: 15, Key: "angel", Names: []string{"天使"}, OptionalParts: parts(PartHalo, PartWing, PartNeck)},
	{ID: 16, Key: "succubus", Names: []string{"魅魔"}, OptionalParts: parts(PartTail, PartHorn, PartMark),
		SensitiveParts: parts(PartMark, PartTail, PartButtocks, PartChest, PartNipple, PartPhallus,
			PartGlans, PartVagina, PartClitoris)},
	{ID: 17, Key: "fairy", Names: []string{"妖精"}, OptionalParts: parts(PartTail, PartWing)},
	{ID: 18, Key: "vampire", Names: []string{"吸血鬼"}, OptionalParts: parts(PartWing, PartHorn, PartTail),
		SensitiveParts: parts(PartTail, PartMouth, PartNeck)},
	{ID: 19, Key: "mermaid", Names: []string{"人鱼"}, OptionalParts: parts(PartTail),
		SensitiveParts: parts(PartTail, PartChest)},
	{ID: 20, Key: "werewolf", Names: []string{"狼人"}, OptionalParts: parts(PartTail),
		SensitiveParts: parts(PartTail)},
	{ID: 21, Key: "fumeshroom", Names: []string{"大喷菇"}, SensitiveParts: parts(PartHead)},
	{ID: 22, Key: "shipgirl", Names: []string{"舰娘"}, OptionalParts: parts(PartEquipment),
		SensitiveParts: parts(PartEquipment)},
	{ID: 23, Key: "gungirl", Names: []string{"枪娘"}, OptionalParts: parts(PartEquipment),
		SensitiveParts: parts(PartEquipment)},
	{ID: 24, Key: "penguingirl", Names: []string{"企鹅娘"}},
	{ID: 25, Key: "mechagirl", Names: []string{"机娘"}, OptionalParts: parts(PartEquipment),
		SensitiveParts: parts(PartEquipment)},
	{ID: 26, Key: "fox", Names: []string{"狐狸"}, OptionalParts: parts(PartTail),
		SensitiveParts: parts(PartEars, PartTail)},
	{ID: 27, Key: "yokai", Names: []string{"妖怪"}, OptionalParts: parts(PartTail, PartWing)},
	{ID: 28, Key: "tentaclegirl", Names: []string{"触手娘"}, OptionalParts: parts(PartTentacle)},
}

// Races returns every race in id order
func Races() []Race {
	out := make([]Race, len(races))
	for i, r := range races {
		out[i] = r.clone()
	}
	return out
}

// RaceByID looks up a race by id
func RaceByID(id RaceID) (Race, error) {
	for _, r := range races {
		if r.ID == id {
			return r.clone(), nil
		}
	}
	return Race{}, notFoundID("race", int(id))
}

// RaceByName looks up a race by display name or key
func RaceByName(name string) (Race, error) {
	for _, r := range races {
		if matchesName(r.Key, name) || slices.ContainsFunc(r.Names, func(n string) bool { return matchesName(n, name) }) {
			return r.clone(), nil
		}
	}
	var aliases []string
	for _, r := range races {
		aliases = append(aliases, r.Key)
		aliases = append(aliases, r.Names...)
	}
	return Race{}, notFound("race", name, aliases)
}

func init() {
	for i, p := range bodyParts {
		if _, dup := bodyPartIndex[p.ID]; dup {
			panic(fmt.Sprintf("catalog: duplicate body part id %d", p.ID))
		}
		bodyPartIndex[p.ID] = i
	}
	for _, r := range races {
		for _, id := range append(slices.Clone(r.OptionalParts), r.SensitiveParts...) {
			if _, ok := bodyPartIndex[id]; !ok {
				panic(fmt.Sprintf("catalog: race %s references unknown body part %d", r.Key, id))
			}
		}
	}
	for _, a := range actions {
		if a.DefaultPart == NoPart {
			continue
		}
		if _, ok := bodyPartIndex[a.DefaultPart]; !ok {
			panic(fmt.Sprintf("catalog: action %s defaults to unknown body part %d", a.Key, a.DefaultPart))
		}
	}
}
