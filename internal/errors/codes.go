package errors

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK               Code = "OK"
	CodeInvalidArgument  Code = "INVALID_ARGUMENT"
	CodeNotFound         Code = "NOT_FOUND"
	CodeAlreadyExists    Code = "ALREADY_EXISTS"
	CodeInternal         Code = "INTERNAL"
	CodeUnavailable      Code = "UNAVAILABLE"
	CodeCanceled         Code = "CANCELED"
	CodeDeadlineExceeded Code = "DEADLINE_EXCEEDED"

	// CodeInvalidOperation marks a request that is well formed but not allowed
	// in the current game state: self-targeting, a body part the target does
	// not have, an action the part does not support, an ineligible item.
	CodeInvalidOperation Code = "INVALID_OPERATION"

	// CodeInsufficientResource marks a shortfall of HP, persistence,
	// inventory or external currency.
	CodeInsufficientResource Code = "INSUFFICIENT_RESOURCE"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// UserFacing reports whether errors with this code describe a game-state
// condition the player can act on, as opposed to an infrastructure failure.
func (c Code) UserFacing() bool {
	switch c {
	case CodeInvalidArgument, CodeNotFound, CodeAlreadyExists,
		CodeInvalidOperation, CodeInsufficientResource:
		return true
	default:
		return false
	}
}
