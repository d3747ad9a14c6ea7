package fftypes

import "errors"

// Sentinel errors shared by all packages. The public package re-exports them.
var (
	// ErrInvalidLength is returned (or panicked with) when a transform length
	// or matrix height is not a positive power of two.
	ErrInvalidLength = errors.New("algodft: invalid DFT length")

	// ErrTwoAdicity is returned when the field has no root of unity of the
	// requested power-of-two order.
	ErrTwoAdicity = errors.New("algodft: insufficient two-adicity")

	// ErrInvalidShape is returned when matrix dimensions do not describe a
	// dense buffer (width < 1, height < 1, or len(values) != height*width).
	ErrInvalidShape = errors.New("algodft: invalid matrix shape")

	// ErrLengthMismatch is returned when two operands must agree in size but don't.
	ErrLengthMismatch = errors.New("algodft: length mismatch")

	// ErrUnknownStrategy is returned for strategy values or names no
	// constructor knows about.
	ErrUnknownStrategy = errors.New("algodft: unknown strategy")

	// ErrUnknownField is returned when a field name cannot be resolved.
	ErrUnknownField = errors.New("algodft: unknown field")
)
