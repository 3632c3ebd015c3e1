package interaction

import (
	"github.com/yinpa-bot/yinpa/internal/catalog"
	"github.com/yinpa-bot/yinpa/internal/engine"
	"github.com/yinpa-bot/yinpa/internal/entities"
)

// ActInput defines the request for one user acting on another
type ActInput struct {
	InitiatorID int64
	TargetID    int64
	ActionName  string
	PartName    string
	Strength    catalog.Strength
	// Context tags the log entry, e.g. the originating channel
	Context string
}

// ActOutput defines the response for an action
type ActOutput struct {
	Initiator *entities.User
	Target    *entities.User
	Outcome   *engine.InteractOutcome
	LogID     string
}

// SoloInput defines the request for a solo session
type SoloInput struct {
	UserID int64
	// PartName is optional; empty picks the part from the user's anatomy
	PartName string
}

// SoloOutput defines the response for a solo session
type SoloOutput struct {
	User    *entities.User
	Outcome *engine.SoloOutcome
}

// SnatchInput defines the request for taking an attribute from a target
type SnatchInput struct {
	InitiatorID int64
	TargetID    int64
	Category    engine.SnatchCategory
}

// SnatchOutput defines the response for a snatch
type SnatchOutput struct {
	Initiator *entities.User
	Target    *entities.User
	Outcome   *engine.SnatchOutcome
}

// RollLengthInput defines the request for a length roll
type RollLengthInput struct {
	UserID int64
	// Depth rolls the second length of a double-sex user
	Depth bool
}

// RollChestInput defines the request for a chest roll
type RollChestInput struct {
	UserID int64
}

// RollOutput defines the response for either roll
type RollOutput struct {
	User    *entities.User
	Outcome *engine.RollOutcome
}
