package algodft

import "github.com/cwbudde/algo-dft/internal/matrix"

// NewMatrix wraps values (row-major, not copied) as a matrix of the given
// width. Returns ErrInvalidShape unless width >= 1 and len(values) is a
// positive multiple of width.
func NewMatrix[E any](values []E, width int) (*Matrix[E], error) {
	return matrix.New(values, width)
}

// MatrixFromColumns builds a matrix whose column j is cols[j].
// Returns ErrLengthMismatch if the columns differ in length.
func MatrixFromColumns[E any](cols ...[]E) (*Matrix[E], error) {
	return matrix.FromColumns(cols...)
}

// HConcat places b to the right of a. Returns ErrLengthMismatch if the
// heights differ.
func HConcat[E any](a, b *Matrix[E]) (*Matrix[E], error) {
	return matrix.HConcat(a, b)
}

// MatricesEqual reports whether a and b have the same shape and elements.
func MatricesEqual[E any](f Field[E], a, b *Matrix[E]) bool {
	return matrix.Equal(a, b, f.Equal)
}
