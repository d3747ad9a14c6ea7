// Package matrix provides the dense row-major buffer the batched DFTs operate on.
//
// Row i of an R×C matrix occupies Values[i*C : (i+1)*C]. Rows are domain
// points; columns are independent polynomials.
package matrix

import (
	"fmt"

	"github.com/cwbudde/algo-dft/internal/fftypes"
)

// RowMajor is a dense height×width matrix stored row by row.
type RowMajor[E any] struct {
	Values []E
	width  int
}

// New wraps values as a matrix of the given width. The slice is not copied.
func New[E any](values []E, width int) (*RowMajor[E], error) {
	if width < 1 || len(values) == 0 || len(values)%width != 0 {
		return nil, fmt.Errorf("%w: %d values, width %d", fftypes.ErrInvalidShape, len(values), width)
	}

	return &RowMajor[E]{Values: values, width: width}, nil
}

// MustNew is like New but panics on an invalid shape.
func MustNew[E any](values []E, width int) *RowMajor[E] {
	m, err := New(values, width)
	if err != nil {
		panic(err)
	}

	return m
}

// Zero allocates a height×width matrix filled with zero.
func Zero[E any](height, width int, zero E) (*RowMajor[E], error) {
	if height < 1 || width < 1 {
		return nil, fmt.Errorf("%w: %dx%d", fftypes.ErrInvalidShape, height, width)
	}

	values := make([]E, height*width)
	for i := range values {
		values[i] = zero
	}

	return &RowMajor[E]{Values: values, width: width}, nil
}

// FromColumns builds a matrix whose column j is cols[j]. All columns must
// have the same non-zero length.
func FromColumns[E any](cols ...[]E) (*RowMajor[E], error) {
	if len(cols) == 0 || len(cols[0]) == 0 {
		return nil, fmt.Errorf("%w: no columns", fftypes.ErrInvalidShape)
	}

	height, width := len(cols[0]), len(cols)
	values := make([]E, height*width)

	for j, col := range cols {
		if len(col) != height {
			return nil, fmt.Errorf("%w: column %d has %d rows, want %d",
				fftypes.ErrLengthMismatch, j, len(col), height)
		}

		for i, v := range col {
			values[i*width+j] = v
		}
	}

	return &RowMajor[E]{Values: values, width: width}, nil
}

func (m *RowMajor[E]) Width() int { return m.width }

func (m *RowMajor[E]) Height() int { return len(m.Values) / m.width }

// Row returns row i as a slice sharing the matrix storage.
func (m *RowMajor[E]) Row(i int) []E {
	return m.Values[i*m.width : (i+1)*m.width : (i+1)*m.width]
}

func (m *RowMajor[E]) At(i, j int) E { return m.Values[i*m.width+j] }

func (m *RowMajor[E]) Set(i, j int, v E) { m.Values[i*m.width+j] = v }

// Column copies column j out of the matrix.
func (m *RowMajor[E]) Column(j int) []E {
	h := m.Height()
	col := make([]E, h)

	for i := range h {
		col[i] = m.Values[i*m.width+j]
	}

	return col
}

// Clone returns a deep copy.
func (m *RowMajor[E]) Clone() *RowMajor[E] {
	return &RowMajor[E]{Values: append([]E(nil), m.Values...), width: m.width}
}

// RowChunks splits the matrix into consecutive views of rowsPerChunk rows
// (the last chunk may be shorter). Views share storage with m and never
// overlap, so each may be written by a different goroutine.
func (m *RowMajor[E]) RowChunks(rowsPerChunk int) []*RowMajor[E] {
	if rowsPerChunk < 1 {
		rowsPerChunk = 1
	}

	h := m.Height()
	chunks := make([]*RowMajor[E], 0, (h+rowsPerChunk-1)/rowsPerChunk)

	for start := 0; start < h; start += rowsPerChunk {
		end := min(start+rowsPerChunk, h)
		lo, hi := start*m.width, end*m.width
		chunks = append(chunks, &RowMajor[E]{Values: m.Values[lo:hi:hi], width: m.width})
	}

	return chunks
}

// Equal reports whether a and b have the same shape and eq holds element-wise.
func Equal[E any](a, b *RowMajor[E], eq func(x, y E) bool) bool {
	if a.width != b.width || len(a.Values) != len(b.Values) {
		return false
	}

	for i := range a.Values {
		if !eq(a.Values[i], b.Values[i]) {
			return false
		}
	}

	return true
}

// HConcat places b to the right of a. Both must have the same height.
func HConcat[E any](a, b *RowMajor[E]) (*RowMajor[E], error) {
	h := a.Height()
	if b.Height() != h {
		return nil, fmt.Errorf("%w: heights %d and %d", fftypes.ErrLengthMismatch, h, b.Height())
	}

	width := a.width + b.width
	values := make([]E, 0, h*width)

	for i := range h {
		values = append(values, a.Row(i)...)
		values = append(values, b.Row(i)...)
	}

	return &RowMajor[E]{Values: values, width: width}, nil
}

// PadRows returns a copy of m extended to height rows, the new rows set to zero.
func (m *RowMajor[E]) PadRows(height int, zero E) (*RowMajor[E], error) {
	if height < m.Height() {
		return nil, fmt.Errorf("%w: cannot pad %d rows down to %d", fftypes.ErrInvalidShape, m.Height(), height)
	}

	padded, err := Zero(height, m.width, zero)
	if err != nil {
		return nil, err
	}

	copy(padded.Values, m.Values)

	return padded, nil
}

// String renders small matrices for debugging.
func (m *RowMajor[E]) String() string {
	return fmt.Sprintf("RowMajor[%dx%d]%v", m.Height(), m.width, m.Values)
}
