package main

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/yinpa-bot/yinpa/internal/catalog"
	"github.com/yinpa-bot/yinpa/internal/engine"
	"github.com/yinpa-bot/yinpa/internal/entities"
	"github.com/yinpa-bot/yinpa/internal/errors"
)

func printUser(w io.Writer, u *entities.User) {
	race := "unknown"
	if r, err := catalog.RaceByID(u.Race); err == nil {
		race = r.Name()
	}

	fmt.Fprintf(w, "%s (%d)\n", u.Name, u.ID)
	fmt.Fprintf(w, "  sex: %s  race: %s\n", u.Sex, race)
	fmt.Fprintf(w, "  hp: %d  persistence: %.2f s\n", u.HP, u.Persistence)

	switch u.Sex {
	case catalog.SexSingle:
		if u.IsMale() {
			fmt.Fprintf(w, "  length: %.2f cm\n", u.Length)
		} else {
			fmt.Fprintf(w, "  depth: %.2f cm\n", -u.Length)
		}
	case catalog.SexDouble:
		fmt.Fprintf(w, "  length: %.2f cm  depth: %.2f cm\n", u.Length, -u.Length2)
	}
	if !u.IsMale() {
		fmt.Fprintf(w, "  chest: %.2f cm (%s)\n", u.ChestSize, engine.ChestSizeToCup(u.ChestSize))
	}

	fmt.Fprintf(w, "  emitted: %d times, %.2f ml\n", u.EmitCount, u.EmitVolume)
	fmt.Fprintf(w, "  received: %d times, %.2f ml\n", u.ReceiveCount, u.ReceiveVolume)
	fmt.Fprintf(w, "  active: %.0f s  passive: %.0f s\n", u.ActiveTime, u.PassiveTime)
	fmt.Fprintf(w, "  promiscuity: %.4f\n", u.Promiscuity)

	if u.TempDuration != 0 || u.TempSensitivity != 0 {
		fmt.Fprintf(w, "  pending boosts: +%.0f s, +%.0f sensitivity\n", u.TempDuration, u.TempSensitivity)
	}
	if inv := formatInventory(u.Inventory); inv != "" {
		fmt.Fprintf(w, "  items: %s\n", inv)
	}
}

func formatInventory(inv entities.Inventory) string {
	ids := make([]catalog.ItemID, 0, len(inv))
	for id, n := range inv {
		if n > 0 {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)

	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		name := fmt.Sprintf("item %d", id)
		if it, err := catalog.ItemByID(id); err == nil {
			name = it.Key
		}
		parts = append(parts, fmt.Sprintf("%s x%d", name, inv[id]))
	}
	return strings.Join(parts, ", ")
}

// describeError renders user-facing errors as their message plus any hint
func describeError(err error) string {
	if !errors.GetCode(err).UserFacing() {
		return err.Error()
	}

	msg := errors.GetMessage(err)
	meta := errors.GetMeta(err)
	if s, ok := meta[errors.MetaSuggestion].(string); ok && s != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", s)
	}
	if resource := errors.Resource(err); resource != "" {
		if need, ok := meta[errors.MetaRequired]; ok {
			msg += fmt.Sprintf(" [%s required: %v]", resource, need)
		}
	}
	return msg
}
