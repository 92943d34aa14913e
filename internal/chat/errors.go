package chat

import "errors"

// Sentinel errors for the conversation service. Handlers map these onto HTTP
// status codes; everything else is treated as a store failure.
var (
	// ErrNotFound means the conversation, counterpart user, or tagged item
	// does not exist.
	ErrNotFound = errors.New("not found")

	// ErrForbidden means the caller is not a participant of the conversation
	// (or the roles do not permit the operation).
	ErrForbidden = errors.New("forbidden")

	// ErrValidation means the input is malformed: empty content, missing tag
	// fields, out-of-range pagination, and so on.
	ErrValidation = errors.New("validation failed")

	// ErrConflict is the transient duplicate-pair error raised by the store
	// under concurrent conversation creation. The service recovers from it by
	// retrying the lookup; it should never reach a caller.
	ErrConflict = errors.New("conversation already exists")

	// ErrStoreUnavailable wraps underlying persistence failures. Not retried
	// here; retry policy belongs to the transport or infra layer.
	ErrStoreUnavailable = errors.New("store unavailable")
)
