package entities

import (
	"time"

	"github.com/yinpa-bot/yinpa/internal/catalog"
)

// ActionLogEntry is the immutable record of one completed interaction
type ActionLogEntry struct {
	ID           string           `json:"id"`
	InitiatorID  int64            `json:"initiator_id"`
	ActionID     catalog.ActionID `json:"action_id"`
	TargetID     int64            `json:"target_id"`
	TargetPartID catalog.PartID   `json:"target_part_id"`
	Context      string           `json:"context,omitempty"` // originating channel
	Volume       float64          `json:"volume"`
	ElapsedTime  float64          `json:"elapsed_time"`
	CreatedAt    time.Time        `json:"created_at"`
}
