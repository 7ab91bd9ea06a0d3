package tensor

import "errors"

// Sentinel errors shared by the tensor, sparse and linalg packages.
// Callers match them with errors.Is; context is added with fmt.Errorf("...: %w", ErrX).
var (
	// ErrOutOfBounds reports a coordinate, axis or index outside its valid range,
	// or a coordinate list whose length differs from the rank.
	ErrOutOfBounds = errors.New("tensor: index out of bounds")

	// ErrInvalidRange reports a malformed range: zero step, a negative step with
	// start < end, or rebinding a range to a different dimension.
	ErrInvalidRange = errors.New("tensor: invalid range")

	// ErrSizeMismatch reports operands whose element counts differ.
	ErrSizeMismatch = errors.New("tensor: size mismatch")

	// ErrDegenerateInput reports an empty operand where at least one element is required.
	ErrDegenerateInput = errors.New("tensor: degenerate input")

	// ErrInvalidShape reports a negative axis size or an operand of the wrong rank.
	ErrInvalidShape = errors.New("tensor: invalid shape")
)
