package movement

import "errors"

// Directive validation errors.
var (
	// ErrInvalidDirective indicates a malformed or contradictory movement
	// directive. The cursor set is left untouched.
	ErrInvalidDirective = errors.New("movement: invalid directive")

	// ErrNilLayout indicates Resolve was called without a layout.
	ErrNilLayout = errors.New("movement: layout is required")

	// ErrNilCursors indicates Resolve was called without a cursor set.
	ErrNilCursors = errors.New("movement: cursor set is required")
)
