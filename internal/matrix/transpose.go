package matrix

// transposeBlock is the tile edge for the blocked transpose.
const transposeBlock = 32

// Transpose returns a new width×height matrix with rows and columns swapped.
func (m *RowMajor[E]) Transpose() *RowMajor[E] {
	h := m.Height()
	out := &RowMajor[E]{Values: make([]E, len(m.Values)), width: h}
	m.TransposeStrip(out, 0, h)

	return out
}

// TransposeStrip writes source rows [rowStart, rowEnd) of m into dst, which
// must be the width×height transpose target. Strips with disjoint row ranges
// write disjoint columns of dst and may run concurrently.
func (m *RowMajor[E]) TransposeStrip(dst *RowMajor[E], rowStart, rowEnd int) {
	w := m.width
	dw := dst.width
	src, out := m.Values, dst.Values

	for i0 := rowStart; i0 < rowEnd; i0 += transposeBlock {
		i1 := min(i0+transposeBlock, rowEnd)

		for j0 := 0; j0 < w; j0 += transposeBlock {
			j1 := min(j0+transposeBlock, w)

			for i := i0; i < i1; i++ {
				row := src[i*w : (i+1)*w]
				for j := j0; j < j1; j++ {
					out[j*dw+i] = row[j]
				}
			}
		}
	}
}

// NewTransposeTarget allocates the buffer Transpose would write into.
func (m *RowMajor[E]) NewTransposeTarget() *RowMajor[E] {
	return &RowMajor[E]{Values: make([]E, len(m.Values)), width: m.Height()}
}
