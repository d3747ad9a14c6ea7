package algodft

import (
	"github.com/cwbudde/algo-dft/internal/fft"
)

// Radix2Dit runs the sequential radix-2 DIT kernel on one column at a time,
// gathering each strided column into a scratch vector and scattering the
// result back.
type Radix2Dit[E any] struct {
	f      Field[E]
	kernel *fft.Radix2[E]
}

// NewRadix2Dit returns the single-goroutine radix-2 DIT strategy.
func NewRadix2Dit[E any](f Field[E]) *Radix2Dit[E] {
	return &Radix2Dit[E]{f: f, kernel: fft.NewRadix2(f)}
}

func (d *Radix2Dit[E]) Field() Field[E] { return d.f }

func (d *Radix2Dit[E]) Strategy() Strategy { return StrategyRadix2Dit }

func (d *Radix2Dit[E]) DFT(vec []E) []E {
	out := append([]E(nil), vec...)
	d.kernel.Transform(out)

	return out
}

func (d *Radix2Dit[E]) DFTBatch(mat *Matrix[E]) *Matrix[E] {
	out := mat.Clone()
	h, w := out.Height(), out.Width()

	if w == 1 {
		d.kernel.Transform(out.Values)
		return out
	}

	buffer := make([]E, h)

	for c := range w {
		for r := range h {
			buffer[r] = out.Values[r*w+c]
		}

		d.kernel.Transform(buffer)

		for r := range h {
			out.Values[r*w+c] = buffer[r]
		}
	}

	return out
}
