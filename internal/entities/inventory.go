package entities

import (
	"encoding/json"
	"maps"

	"github.com/yinpa-bot/yinpa/internal/catalog"
	"github.com/yinpa-bot/yinpa/internal/errors"
)

// Inventory maps item ids to owned counts
type Inventory map[catalog.ItemID]int

// Count returns how many of an item are owned
func (inv Inventory) Count(id catalog.ItemID) int {
	return inv[id]
}

// Clone returns a copy; nil stays nil
func (inv Inventory) Clone() Inventory {
	return maps.Clone(inv)
}

// Encode renders the inventory in its compact text form, e.g. {"0":2}
func (inv Inventory) Encode() (string, error) {
	if len(inv) == 0 {
		return "{}", nil
	}
	data, err := json.Marshal(inv)
	if err != nil {
		return "", errors.Wrap(err, "failed to encode inventory")
	}
	return string(data), nil
}

// DecodeInventory parses the compact text form. Unknown item ids are
// rejected so a stale record cannot hold items the catalog no longer has.
func DecodeInventory(text string) (Inventory, error) {
	inv := Inventory{}
	if text == "" {
		return inv, nil
	}
	if err := json.Unmarshal([]byte(text), &inv); err != nil {
		return nil, errors.Wrap(err, "failed to decode inventory")
	}
	for id := range inv {
		if _, err := catalog.ItemByID(id); err != nil {
			return nil, errors.Wrapf(err, "failed to decode inventory")
		}
	}
	return inv, nil
}
