package entities

import (
	"math"
	"strconv"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/yinpa-bot/yinpa/internal/catalog"
)

// EntityTypeUser is the core.Entity type of a User
const EntityTypeUser = "user"

// User is one participant's full game state
type User struct {
	ID   int64          `json:"id"`
	Name string         `json:"name"`
	Sex  catalog.Sex    `json:"sex"`
	Race catalog.RaceID `json:"race"`

	HP           int       `json:"hp"`
	LastHPUpdate time.Time `json:"last_hp_update"`
	Persistence  float64   `json:"persistence"` // seconds

	// Length is signed: positive is length, negative is depth. Length2 is
	// the depth of a double-sex user and stays negative.
	Length    float64 `json:"length"`
	Length2   float64 `json:"length2"`
	ChestSize float64 `json:"chest_size"`

	EmitCount     int     `json:"emit_count"`
	EmitVolume    float64 `json:"emit_volume"`
	ReceiveCount  int     `json:"receive_count"`
	ReceiveVolume float64 `json:"receive_volume"`
	ActiveTime    float64 `json:"active_time"`
	PassiveTime   float64 `json:"passive_time"`
	Promiscuity   float64 `json:"promiscuity"`

	Inventory Inventory                         `json:"inventory"`
	BodyParts map[catalog.PartID]*BodyPartState `json:"body_parts,omitempty"`

	// Consumed and zeroed by the next action that reads them
	TempSensitivity float64 `json:"temp_sensitivity"`
	TempDuration    float64 `json:"temp_duration"`
}

// BodyPartState is a user's accumulated sensitivity on one part
type BodyPartState struct {
	PartID      catalog.PartID `json:"part_id"`
	Sensitivity float64        `json:"sensitivity"`
	SoftBonus   float64        `json:"soft_bonus"`
	NormalBonus float64        `json:"normal_bonus"`
	SevereBonus float64        `json:"severe_bonus"`
}

// TierBonus returns a pointer to the bonus tracked for a strength tier
func (s *BodyPartState) TierBonus(tier catalog.Strength) *float64 {
	switch tier {
	case catalog.StrengthSoft:
		return &s.SoftBonus
	case catalog.StrengthSevere:
		return &s.SevereBonus
	default:
		return &s.NormalBonus
	}
}

var (
	_ core.Entity = (*User)(nil)
	_ core.Entity = UserRef(0)
)

// GetID returns the decimal user id
func (u *User) GetID() string {
	return UserRef(u.ID).GetID()
}

// GetType returns the entity type
func (u *User) GetType() string {
	return EntityTypeUser
}

// UserRef identifies a user by id without loading the record
type UserRef int64

// GetID returns the decimal user id
func (r UserRef) GetID() string {
	return strconv.FormatInt(int64(r), 10)
}

// GetType returns the entity type
func (r UserRef) GetType() string {
	return EntityTypeUser
}

// EntityKey renders an entity as "type:id", the form used for storage keys
// and log attributes
func EntityKey(e core.Entity) string {
	return e.GetType() + ":" + e.GetID()
}

// SetHP writes HP clamped to [minHP, maxHP] and restarts the regeneration
// clock at now.
func (u *User) SetHP(hp int, now time.Time, minHP, maxHP int) {
	u.HP = max(minHP, min(hp, maxHP))
	u.LastHPUpdate = now
}

// IsMale reports a single-sex user with positive length
func (u *User) IsMale() bool {
	return u.Sex == catalog.SexSingle && u.Length > 0
}

// HasBodyPart reports whether the user currently has part: it must be in
// the user's part map, allowed for their sex, and match a required length
// polarity on either length when one is listed.
func (u *User) HasBodyPart(part catalog.BodyPart) bool {
	if _, ok := u.BodyParts[part.ID]; !ok {
		return false
	}
	if !part.AllowsSex(u.Sex) {
		return false
	}
	if len(part.RequiredSign) == 0 {
		return true
	}
	for _, sign := range part.RequiredSign {
		switch u.Sex {
		case catalog.SexDouble:
			if sign.Matches(u.Length) || sign.Matches(u.Length2) {
				return true
			}
		case catalog.SexSingle:
			if sign.Matches(u.Length) {
				return true
			}
		default:
			return false
		}
	}
	return false
}

// BackfillBodyParts adds a fresh state for every mandatory part and every
// optional part the user's race grants. Existing states are kept.
func (u *User) BackfillBodyParts() error {
	race, err := catalog.RaceByID(u.Race)
	if err != nil {
		return err
	}
	if u.BodyParts == nil {
		u.BodyParts = make(map[catalog.PartID]*BodyPartState)
	}
	for _, part := range catalog.BodyParts() {
		if _, ok := u.BodyParts[part.ID]; ok {
			continue
		}
		if part.Optional && !race.HasOptionalPart(part.ID) {
			continue
		}
		u.BodyParts[part.ID] = &BodyPartState{PartID: part.ID}
	}
	return nil
}

// OrderedParts returns the user's part states in catalog order
func (u *User) OrderedParts() []*BodyPartState {
	out := make([]*BodyPartState, 0, len(u.BodyParts))
	for _, part := range catalog.BodyParts() {
		if state, ok := u.BodyParts[part.ID]; ok {
			out = append(out, state)
		}
	}
	return out
}

// RefreshPromiscuity recomputes the derived promiscuity score
func (u *User) RefreshPromiscuity() float64 {
	u.Promiscuity = (u.EmitVolume+u.ReceiveVolume)/1000*float64(u.EmitCount+u.ReceiveCount) +
		(u.ActiveTime+u.PassiveTime)/60
	return u.Promiscuity
}

// Normalize rounds stored floats to four decimals and refreshes derived
// fields. Stores call it before writing.
func (u *User) Normalize() {
	for _, f := range []*float64{
		&u.Persistence, &u.Length, &u.Length2, &u.ChestSize,
		&u.EmitVolume, &u.ReceiveVolume, &u.ActiveTime, &u.PassiveTime,
		&u.TempSensitivity, &u.TempDuration,
	} {
		*f = Round4(*f)
	}
	for _, s := range u.BodyParts {
		s.Sensitivity = Round4(s.Sensitivity)
	}
	u.RefreshPromiscuity()
	u.Promiscuity = Round4(u.Promiscuity)
}

// Clone returns a deep copy
func (u *User) Clone() *User {
	c := *u
	c.Inventory = u.Inventory.Clone()
	if u.BodyParts != nil {
		c.BodyParts = make(map[catalog.PartID]*BodyPartState, len(u.BodyParts))
		for id, s := range u.BodyParts {
			cp := *s
			c.BodyParts[id] = &cp
		}
	}
	return &c
}

// Round4 rounds to four decimal places
func Round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
