package player

import (
	"github.com/yinpa-bot/yinpa/internal/catalog"
	"github.com/yinpa-bot/yinpa/internal/entities"
)

// JoinInput defines the request for creating a user
type JoinInput struct {
	ID   int64
	Name string
	Sex  catalog.Sex
	// RaceName is any race alias; empty joins as a human
	RaceName string
}

// JoinOutput defines the response for creating a user
type JoinOutput struct {
	User *entities.User
}

// GetInput defines the request for loading a user by id
type GetInput struct {
	ID int64
}

// GetOutput defines the response for loading a user by id
type GetOutput struct {
	User *entities.User
	// Regenerated is the HP restored by this read
	Regenerated int
}

// GetByNameInput defines the request for loading a user by name
type GetByNameInput struct {
	Name string
}

// GetByNameOutput defines the response for loading a user by name
type GetByNameOutput struct {
	User *entities.User
}

// LeaveInput defines the request for removing a user
type LeaveInput struct {
	ID int64
}

// LeaveOutput defines the response for removing a user
type LeaveOutput struct {
	Removed bool
}

// RenameInput defines the request for renaming a user
type RenameInput struct {
	ID   int64
	Name string
}

// RenameOutput defines the response for renaming a user
type RenameOutput struct {
	User    *entities.User
	OldName string
}

// RandomInput defines the request for picking a random user
type RandomInput struct{}

// RandomOutput defines the response for picking a random user
type RandomOutput struct {
	User *entities.User
}

// Metric names one leaderboard
type Metric string

// Leaderboard metrics
const (
	MetricLength        Metric = "length"
	MetricDepth         Metric = "depth"
	MetricChest         Metric = "chest"
	MetricPersistence   Metric = "persistence"
	MetricPromiscuity   Metric = "promiscuity"
	MetricEmitVolume    Metric = "emit_volume"
	MetricReceiveVolume Metric = "receive_volume"
	MetricEmitCount     Metric = "emit_count"
	MetricReceiveCount  Metric = "receive_count"
	MetricActiveTime    Metric = "active_time"
	MetricPassiveTime   Metric = "passive_time"
)

// LeaderboardInput defines the request for computing leaderboards
type LeaderboardInput struct {
	ViewerID int64
	// Limit is the size of each board; two-sided boards split it between
	// their top and bottom. Zero means DefaultLeaderboardLimit.
	Limit int
	// RestrictTo limits ranking to these user ids when not empty
	RestrictTo []int64
}

// LeaderboardOutput defines the response for computing leaderboards
type LeaderboardOutput struct {
	Boards []*Board
	// Viewer is nil when the viewer has not joined
	Viewer *entities.User
}

// Board is one ranked metric
type Board struct {
	Metric Metric
	// Total is how many users were eligible for this metric
	Total int
	Top   []Entry
	// Bottom is the tail of a two-sided board, still in board order
	Bottom []Entry
	// ViewerRank is 1 + the number of eligible users strictly better than
	// the viewer; zero when the viewer is not eligible.
	ViewerRank int
}

// Entry is one user's value on a board
type Entry struct {
	UserID int64
	Name   string
	Value  float64
}
