package parallel

import "github.com/cwbudde/algo-dft/internal/matrix"

// transposeStripRows is how many source rows one transpose unit handles.
const transposeStripRows = 64

// minParallelTranspose is the element count below which Transpose stays on
// the calling goroutine.
const minParallelTranspose = 64 * 64

// Transpose returns m transposed, splitting the source into horizontal
// strips run through exec. Each strip fills a disjoint set of target columns.
func Transpose[E any](exec Executor, m *matrix.RowMajor[E]) *matrix.RowMajor[E] {
	h := m.Height()
	if exec.Workers() <= 1 || len(m.Values) < minParallelTranspose || h <= transposeStripRows {
		return m.Transpose()
	}

	dst := m.NewTransposeTarget()
	strips := (h + transposeStripRows - 1) / transposeStripRows

	exec.Run(strips, func(s int) {
		start := s * transposeStripRows
		m.TransposeStrip(dst, start, min(start+transposeStripRows, h))
	})

	return dst
}
