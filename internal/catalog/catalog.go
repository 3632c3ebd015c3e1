// Package catalog holds the static registries the game rules are written
// against: body parts, actions, races and items.
//
// Entries are plain values keyed by a stable integer id and looked up by id
// or by any accepted alias. Nothing in this package mutates after init;
// accessors hand out copies so callers cannot reach the registry's slices.
package catalog

import (
	"fmt"
	"slices"
	"strings"
)

// Sex is the coarse anatomy category of a user
type Sex int

// Sex categories
const (
	SexNone Sex = iota
	SexSingle
	SexDouble
)

// String returns the category name
func (s Sex) String() string {
	switch s {
	case SexNone:
		return "none"
	case SexSingle:
		return "single"
	case SexDouble:
		return "double"
	default:
		return fmt.Sprintf("Sex(%d)", int(s))
	}
}

// Valid reports whether s is a known category
func (s Sex) Valid() bool {
	return s >= SexNone && s <= SexDouble
}

// Sign is a required polarity of a length attribute relative to zero
type Sign int

// Length polarities
const (
	SignNegative Sign = -1
	SignZero     Sign = 0
	SignPositive Sign = 1
)

// Matches reports whether v has this polarity
func (s Sign) Matches(v float64) bool {
	switch s {
	case SignPositive:
		return v > 0
	case SignNegative:
		return v < 0
	default:
		return v == 0
	}
}

// Strength is how hard an action is performed
type Strength int

// Strength tiers. Normal resolves to the action's base tier.
const (
	StrengthSoft Strength = iota
	StrengthNormal
	StrengthSevere
)

// String returns the tier name
func (s Strength) String() string {
	switch s {
	case StrengthSoft:
		return "soft"
	case StrengthNormal:
		return "normal"
	case StrengthSevere:
		return "severe"
	default:
		return fmt.Sprintf("Strength(%d)", int(s))
	}
}

// ParseSex maps a category name to its Sex. Empty means single.
func ParseSex(name string) (Sex, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "single", "单":
		return SexSingle, nil
	case "double", "双":
		return SexDouble, nil
	case "none", "无":
		return SexNone, nil
	default:
		return SexSingle, notFound("sex", name, []string{"single", "double", "none"})
	}
}

// ParseStrength maps a tier name to its Strength
func ParseStrength(name string) (Strength, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "normal", "medium":
		return StrengthNormal, nil
	case "soft", "gentle", "轻轻地":
		return StrengthSoft, nil
	case "severe", "hard", "狠狠地":
		return StrengthSevere, nil
	default:
		return StrengthNormal, notFound("strength", name, []string{"soft", "normal", "severe"})
	}
}

func hasSex(list []Sex, s Sex) bool {
	return slices.Contains(list, s)
}

// matchesName compares a query against one alias. Latin aliases match
// case-insensitively.
func matchesName(alias, query string) bool {
	return alias == query || strings.EqualFold(alias, query)
}
