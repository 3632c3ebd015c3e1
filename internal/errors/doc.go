// Package errors provides the structured error type used across the yinpa engine.
//
// Every failure the engine reports is an *Error carrying a Code, a
// user-facing Message and optional metadata. The game rules only ever raise
// three kinds of conditions:
//
//   - NotFound: unknown user id or name, unknown catalog alias or id
//   - InvalidOperation: a rule forbids the request in the current state
//   - InsufficientResource: HP, persistence, inventory or currency shortfall
//
// InvalidArgument and AlreadyExists cover malformed input and duplicate
// registrations; Internal wraps storage failures.
//
// # Basic Usage
//
//	err := errors.InvalidOperation("cannot target yourself")
//	err := errors.InsufficientResourcef(errors.ResourceHP, "hp too low: %d", hp)
//
// Wrapping keeps the original code:
//
//	if err := repo.Save(ctx, input); err != nil {
//	    return nil, errors.Wrap(err, "failed to save target")
//	}
//
// # Error Checking
//
//	if errors.IsInsufficientResource(err) {
//	    fmt.Println("out of", errors.Resource(err))
//	}
//
// None of these conditions are retried by the engine: every failure is
// deterministic given the stored state, and a failed precondition never
// leaves a partial write behind.
package errors

// Resources named in InsufficientResource metadata
const (
	ResourceHP          = "hp"
	ResourcePersistence = "persistence"
	ResourceItem        = "item"
)
