package algodft

import (
	"github.com/cwbudde/algo-dft/internal/fft"
)

// NaiveDFT evaluates every column directly in O(R^2). It is the reference
// the fast strategies are tested against.
type NaiveDFT[E any] struct {
	f Field[E]
}

// NewNaive returns the O(R^2) reference implementation.
func NewNaive[E any](f Field[E]) *NaiveDFT[E] {
	return &NaiveDFT[E]{f: f}
}

func (d *NaiveDFT[E]) Field() Field[E] { return d.f }

func (d *NaiveDFT[E]) Strategy() Strategy { return StrategyNaive }

func (d *NaiveDFT[E]) DFT(vec []E) []E { return fft.Naive(d.f, vec) }

func (d *NaiveDFT[E]) DFTBatch(mat *Matrix[E]) *Matrix[E] {
	out := mat.Clone()
	h, w := mat.Height(), mat.Width()

	for c := range w {
		col := fft.Naive(d.f, mat.Column(c))
		for r := range h {
			out.Values[r*w+c] = col[r]
		}
	}

	return out
}
