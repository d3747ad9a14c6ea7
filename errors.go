package algodft

import "github.com/cwbudde/algo-dft/internal/fftypes"

// Sentinel errors returned by constructors and validators, and carried by
// the panics of transforms whose preconditions were violated.
var (
	// ErrInvalidLength is reported when a transform length or matrix height
	// is not a positive power of two.
	ErrInvalidLength = fftypes.ErrInvalidLength

	// ErrTwoAdicity is reported when the field has no root of unity of the
	// required order.
	ErrTwoAdicity = fftypes.ErrTwoAdicity

	// ErrInvalidShape is returned when a matrix buffer and width disagree.
	ErrInvalidShape = fftypes.ErrInvalidShape

	// ErrLengthMismatch is returned when operands must agree in size.
	ErrLengthMismatch = fftypes.ErrLengthMismatch

	// ErrUnknownStrategy is returned by New and ParseStrategy.
	ErrUnknownStrategy = fftypes.ErrUnknownStrategy

	// ErrUnknownField is returned when a field name cannot be resolved.
	ErrUnknownField = fftypes.ErrUnknownField
)
