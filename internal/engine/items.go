package engine

import (
	"time"

	"github.com/yinpa-bot/yinpa/internal/catalog"
	"github.com/yinpa-bot/yinpa/internal/config"
	"github.com/yinpa-bot/yinpa/internal/entities"
	"github.com/yinpa-bot/yinpa/internal/errors"
)

// CheckItemEligible reports whether u may use item
func CheckItemEligible(u *entities.User, item catalog.Item) error {
	if !item.AllowsSex(u.Sex) {
		return errors.InvalidOperationf("%s cannot use %s", u.Name, item.Key)
	}
	if u.Sex != catalog.SexSingle {
		return nil
	}
	if item.MaleOnly && u.Length <= 0 {
		return errors.InvalidOperationf("%s cannot use %s: male only", u.Name, item.Key)
	}
	if item.FemaleOnly && u.Length >= 0 {
		return errors.InvalidOperationf("%s cannot use %s: female only", u.Name, item.Key)
	}
	return nil
}

// ApplyItem checks eligibility and applies one unit of item to u
func ApplyItem(u *entities.User, item catalog.Item, t config.Tuning, now time.Time) error {
	if err := CheckItemEligible(u, item); err != nil {
		return err
	}
	for _, effect := range item.Effects {
		if effect.Attribute == catalog.AttrHP {
			continue
		}
		if _, err := floatAttribute(u, effect.Attribute); err != nil {
			return err
		}
	}

	for _, effect := range item.Effects {
		if effect.Attribute == catalog.AttrHP {
			switch effect.Mode {
			case catalog.EffectFill:
				u.SetHP(t.MaxHP, now, t.MinHP, t.MaxHP)
			case catalog.EffectReplace:
				u.SetHP(int(effect.Value), now, t.MinHP, t.MaxHP)
			default:
				u.SetHP(u.HP+int(effect.Value), now, t.MinHP, t.MaxHP)
			}
			continue
		}

		field, _ := floatAttribute(u, effect.Attribute)
		if effect.Mode == catalog.EffectReplace {
			*field = effect.Value
		} else {
			*field += effect.Value
		}
	}
	u.ChestSize = max(0, u.ChestSize)
	return nil
}

func floatAttribute(u *entities.User, attr catalog.Attribute) (*float64, error) {
	switch attr {
	case catalog.AttrLength:
		return &u.Length, nil
	case catalog.AttrChestSize:
		return &u.ChestSize, nil
	case catalog.AttrTempDuration:
		return &u.TempDuration, nil
	case catalog.AttrTempSensitivity:
		return &u.TempSensitivity, nil
	default:
		return nil, errors.Internalf("item attribute %q is not supported", attr)
	}
}
