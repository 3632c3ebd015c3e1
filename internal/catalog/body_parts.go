package catalog

import "slices"

// PartID identifies a body part
type PartID int

// Body part ids. Sub-parts carry their parent's id as a prefix.
const (
	PartHead      PartID = 0
	PartEars      PartID = 1
	PartEyes      PartID = 2
	PartFace      PartID = 3
	PartNose      PartID = 4
	PartMouth     PartID = 5
	PartNeck      PartID = 6
	PartShoulder  PartID = 7
	PartArm       PartID = 8
	PartHands     PartID = 9
	PartChest     PartID = 10
	PartNipple    PartID = 101
	PartAbdomen   PartID = 11
	PartBack      PartID = 12
	PartPhallus   PartID = 13
	PartGlans     PartID = 132
	PartTesticles PartID = 133
	PartVagina    PartID = 131
	PartClitoris  PartID = 1311
	PartButtocks  PartID = 14
	PartAnus      PartID = 141
	PartThigh     PartID = 15
	PartShank     PartID = 16
	PartFoot      PartID = 17
	PartTail      PartID = 18
	PartWing      PartID = 19
	PartHalo      PartID = 20
	PartEquipment PartID = 21
	PartMark      PartID = 22
	PartHorn      PartID = 23
	PartTentacle  PartID = 24

	// NoPart marks an action without a default target part
	NoPart PartID = -1
)

// BodyPart is a static body part definition
type BodyPart struct {
	ID              PartID
	Key             string
	Names           []string
	BaseSensitivity int

	// Optional parts exist only on races that grant them
	Optional bool

	// RequiredSex is empty when any sex has the part
	RequiredSex []Sex

	// RequiredSign lists accepted length polarities; empty means no check
	RequiredSign []Sign

	// SupportedActions lists the non-universal actions allowed here
	SupportedActions []ActionID

	CanShoot  bool
	CanInject bool
}

// Supports reports whether an action may be performed on the part
func (p BodyPart) Supports(a Action) bool {
	if a.Universal {
		return true
	}
	return slices.Contains(p.SupportedActions, a.ID)
}

// AllowsSex reports whether a user of sex s can have the part at all
func (p BodyPart) AllowsSex(s Sex) bool {
	return len(p.RequiredSex) == 0 || hasSex(p.RequiredSex, s)
}

func (p BodyPart) clone() BodyPart {
	p.Names = slices.Clone(p.Names)
	p.RequiredSex = slices.Clone(p.RequiredSex)
	p.RequiredSign = slices.Clone(p.RequiredSign)
	p.SupportedActions = slices.Clone(p.SupportedActions)
	return p
}

var (
	withLength = []Sex{SexSingle, SexDouble}
	positive   = []Sign{SignPositive}
	negative   = []Sign{SignNegative}
)

// bodyParts is in display order; new users are seeded in this order
var bodyParts = []BodyPart{
	{ID: PartHead, Key: "head", Names: []string{"头"}, BaseSensitivity: 50},
	{ID: PartEars, Key: "ears", Names: []string{"耳朵", "耳"}, BaseSensitivity: 190},
	{ID: PartEyes, Key: "eyes", Names: []string{"眼睛"}, BaseSensitivity: 40},
	{ID: PartFace, Key: "face", Names: []string{"脸", "脸颊"}, BaseSensitivity: 60},
	{ID: PartNose, Key: "nose", Names: []string{"鼻子", "鼻"}, BaseSensitivity: 55},
	{ID: PartMouth, Key: "mouth", Names: []string{"嘴", "嘴巴"}, BaseSensitivity: 70, CanInject: true},
	{ID: PartNeck, Key: "neck", Names: []string{"脖子", "脖", "颈"}, BaseSensitivity: 180},
	{ID: PartShoulder, Key: "shoulder", Names: []string{"肩膀", "肩", "肩部"}, BaseSensitivity: 75},
	{ID: PartArm, Key: "arm", Names: []string{"手臂", "臂"}, BaseSensitivity: 60},
	{ID: PartHands, Key: "hands", Names: []string{"手", "手掌"}, BaseSensitivity: 40},
	{ID: PartChest, Key: "chest", Names: []string{"欧派", "胸", "胸部", "熊", "凶", "奶子", "柰子"},
		BaseSensitivity: 500, CanShoot: true},
	{ID: PartNipple, Key: "nipple", Names: []string{"奇酷比", "乳头", "奶头", "乃头"},
		BaseSensitivity: 600, CanShoot: true},
	{ID: PartAbdomen, Key: "abdomen", Names: []string{"腹部", "腹", "肚子", "肚肚"}, BaseSensitivity: 100},
	{ID: PartBack, Key: "back", Names: []string{"背", "背部"}, BaseSensitivity: 80},
	{ID: PartPhallus, Key: "phallus", Names: []string{"牛牛", "牛子", "牛至", "滨州", "宾州", "宾周"},
		BaseSensitivity: 600, RequiredSex: withLength, RequiredSign: positive, CanShoot: true},
	{ID: PartGlans, Key: "glans", Names: []string{"闺头", "鬼头", "龟头", "春袋"},
		BaseSensitivity: 800, RequiredSex: withLength, RequiredSign: positive, CanShoot: true},
	{ID: PartTesticles, Key: "testicles", Names: []string{"高玩", "蛋蛋", "蛋", "睾丸", "搞完"},
		BaseSensitivity: 500, RequiredSex: withLength, RequiredSign: positive},
	{ID: PartVagina, Key: "vagina", Names: []string{"小学", "欧芒果", "小穴", "嗨", "芒果"},
		BaseSensitivity: 600, RequiredSex: withLength, RequiredSign: negative,
		SupportedActions: []ActionID{ActionFinger, ActionInsert}, CanShoot: true, CanInject: true},
	{ID: PartClitoris, Key: "clitoris", Names: []string{"欢乐豆", "小豆豆"},
		BaseSensitivity: 850, RequiredSex: withLength, RequiredSign: negative,
		SupportedActions: []ActionID{ActionFinger}, CanShoot: true, CanInject: true},
	{ID: PartButtocks, Key: "buttocks", Names: []string{"屁股", "臀", "臀部", "皮谷"},
		BaseSensitivity: 500, CanShoot: true, CanInject: true},
	{ID: PartAnus, Key: "anus", Names: []string{"后门", "皮炎", "屁眼", "肛门"}, BaseSensitivity: 550,
		SupportedActions: []ActionID{ActionFinger, ActionInsert}, CanShoot: true, CanInject: true},
	{ID: PartThigh, Key: "thigh", Names: []string{"大腿", "腿"}, BaseSensitivity: 100},
	{ID: PartShank, Key: "shank", Names: []string{"小腿"}, BaseSensitivity: 70},
	{ID: PartFoot, Key: "foot", Names: []string{"脚", "足"}, BaseSensitivity: 100},
	{ID: PartTail, Key: "tail", Names: []string{"尾巴", "尾部", "尾"}, BaseSensitivity: 200, Optional: true, CanShoot: true},
	{ID: PartWing, Key: "wing", Names: []string{"翅膀"}, BaseSensitivity: 70, Optional: true},
	{ID: PartHalo, Key: "halo", Names: []string{"光环"}, BaseSensitivity: 70, Optional: true},
	{ID: PartEquipment, Key: "equipment", Names: []string{"装备", "舰装"}, BaseSensitivity: 70, Optional: true, CanInject: true},
	{ID: PartMark, Key: "mark", Names: []string{"淫纹"}, BaseSensitivity: 350, Optional: true, CanShoot: true},
	{ID: PartHorn, Key: "horn", Names: []string{"角"}, BaseSensitivity: 20, Optional: true},
	{ID: PartTentacle, Key: "tentacle", Names: []string{"触手"}, BaseSensitivity: 300, Optional: true, CanShoot: true},
}

var bodyPartIndex = make(map[PartID]int, len(bodyParts))

// BodyParts returns every body part in display order
func BodyParts() []BodyPart {
	out := make([]BodyPart, len(bodyParts))
	for i, p := range bodyParts {
		out[i] = p.clone()
	}
	return out
}

// BodyPartByID looks up a body part by id
func BodyPartByID(id PartID) (BodyPart, error) {
	i, ok := bodyPartIndex[id]
	if !ok {
		return BodyPart{}, notFoundID("body part", int(id))
	}
	return bodyParts[i].clone(), nil
}

// BodyPartByName looks up a body part by any alias or its key
func BodyPartByName(name string) (BodyPart, error) {
	for _, p := range bodyParts {
		if matchesName(p.Key, name) || slices.ContainsFunc(p.Names, func(n string) bool { return matchesName(n, name) }) {
			return p.clone(), nil
		}
	}
	return BodyPart{}, notFound("body part", name, bodyPartAliases())
}

func bodyPartAliases() []string {
	var out []string
	for _, p := range bodyParts {
		out = append(out, p.Key)
		out = append(out, p.Names...)
	}
	return out
}
