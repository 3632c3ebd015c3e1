// Package user provides the interface for user persistence
package user

//go:generate mockgen -destination=mock/mock_repository.go -package=usermock github.com/yinpa-bot/yinpa/internal/repositories/user Repository

import (
	"context"

	"github.com/yinpa-bot/yinpa/internal/entities"
)

// Repository defines the interface for user persistence. Implementations
// store whole snapshots: Save overwrites every attribute and part state.
type Repository interface {
	// Get retrieves a user by id with body parts backfilled for their race
	// Returns errors.NotFound if the user has not joined
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// GetByName retrieves a user by exact display name
	// Returns errors.InvalidArgument for an empty name
	// Returns errors.NotFound if no user has that name
	GetByName(ctx context.Context, input GetByNameInput) (*GetByNameOutput, error)

	// Save creates or overwrites a user and keeps the name index current
	// Returns errors.InvalidArgument for a nil user or empty name
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// NameExists reports whether a name is taken by a user other than
	// ExcludingID. Zero excludes nobody.
	NameExists(ctx context.Context, input NameExistsInput) (*NameExistsOutput, error)

	// Delete removes a user with their part states, name index entry and
	// the action log entries they initiated. Deleted is false when the user
	// did not exist.
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// AppendLog records one completed interaction
	// Returns errors.InvalidArgument for a nil entry
	AppendLog(ctx context.Context, input AppendLogInput) (*AppendLogOutput, error)

	// ListLogs returns the most recent entries initiated by a user, oldest first
	ListLogs(ctx context.Context, input ListLogsInput) (*ListLogsOutput, error)

	// ListAll returns every user ordered by id. Part states are only loaded
	// when WithParts is set.
	ListAll(ctx context.Context, input ListAllInput) (*ListAllOutput, error)

	// GetRandom returns one user picked uniformly
	// Returns errors.NotFound when nobody has joined
	GetRandom(ctx context.Context, input GetRandomInput) (*GetRandomOutput, error)
}

// GetInput defines the input for getting a user
type GetInput struct {
	ID int64
}

// GetOutput defines the output for getting a user
type GetOutput struct {
	User *entities.User
}

// GetByNameInput defines the input for getting a user by name
type GetByNameInput struct {
	Name string
}

// GetByNameOutput defines the output for getting a user by name
type GetByNameOutput struct {
	User *entities.User
}

// SaveInput defines the input for saving a user
type SaveInput struct {
	User *entities.User
}

// SaveOutput defines the output for saving a user
type SaveOutput struct {
	User *entities.User
}

// NameExistsInput defines the input for a name check
type NameExistsInput struct {
	Name        string
	ExcludingID int64
}

// NameExistsOutput defines the output for a name check
type NameExistsOutput struct {
	Exists bool
}

// DeleteInput defines the input for deleting a user
type DeleteInput struct {
	ID int64
}

// DeleteOutput defines the output for deleting a user
type DeleteOutput struct {
	Deleted bool
}

// AppendLogInput defines the input for appending an action log entry
type AppendLogInput struct {
	Entry *entities.ActionLogEntry
}

// AppendLogOutput defines the output for appending an action log entry
type AppendLogOutput struct{}

// ListLogsInput defines the input for listing a user's action log
type ListLogsInput struct {
	InitiatorID int64
	// Limit caps the number of entries; zero returns all
	Limit int
}

// ListLogsOutput defines the output for listing a user's action log
type ListLogsOutput struct {
	Entries []*entities.ActionLogEntry
}

// ListAllInput defines the input for listing users
type ListAllInput struct {
	WithParts bool
}

// ListAllOutput defines the output for listing users
type ListAllOutput struct {
	Users []*entities.User
}

// GetRandomInput defines the input for picking a random user
type GetRandomInput struct{}

// GetRandomOutput defines the output for picking a random user
type GetRandomOutput struct {
	User *entities.User
}
