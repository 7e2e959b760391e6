package services

import "errors"

// Domain error kinds. Services return these (usually wrapped with context via
// fmt.Errorf and %w); handlers translate them to HTTP responses. Persistence
// failures are mapped to the nearest kind before they surface.
var (
	// ErrConflict signals a uniqueness violation on create
	ErrConflict = errors.New("already exists")
	// ErrNotFound signals that the target id does not exist
	ErrNotFound = errors.New("not found")
	// ErrForbidden signals an insufficient role for the operation
	ErrForbidden = errors.New("insufficient permissions")
	// ErrExternalService signals that an external collaborator (captcha,
	// storage) was unreachable or rejected the call
	ErrExternalService = errors.New("external service failure")
)
