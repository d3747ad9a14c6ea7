package fft

import (
	"fmt"
	"sync"

	"github.com/cwbudde/algo-dft/internal/fftypes"
	"github.com/cwbudde/algo-dft/internal/field"
	m "github.com/cwbudde/algo-dft/internal/math"
)

// Radix2 is the sequential radix-2 decimation-in-time kernel.
//
// Transform computes out[k] = sum_j in[j] * w^(j*k) where w is
// f.TwoAdicGenerator(log2(n)). Twiddles are cached per size; a Radix2 is safe
// for concurrent use.
type Radix2[E any] struct {
	f field.Field[E]

	mu       sync.RWMutex
	twiddles map[int][]E
}

// NewRadix2 returns a kernel over f.
func NewRadix2[E any](f field.Field[E]) *Radix2[E] {
	return &Radix2[E]{f: f, twiddles: make(map[int][]E)}
}

// Twiddles returns w^0 .. w^(n/2-1) for the canonical 2^logN-th root w.
// The returned slice is shared and must not be modified.
func (r *Radix2[E]) Twiddles(logN int) []E {
	r.mu.RLock()
	tw, ok := r.twiddles[logN]
	r.mu.RUnlock()

	if ok {
		return tw
	}

	half := (1 << logN) >> 1
	tw = field.Powers(r.f, r.f.TwoAdicGenerator(logN), half)

	r.mu.Lock()
	if cached, ok := r.twiddles[logN]; ok {
		tw = cached
	} else {
		r.twiddles[logN] = tw
	}
	r.mu.Unlock()

	return tw
}

// Transform replaces v with its DFT. len(v) must be a power of two within the
// field's two-adicity; otherwise Transform panics with ErrInvalidLength or
// ErrTwoAdicity.
func (r *Radix2[E]) Transform(v []E) {
	n := len(v)
	if !m.IsPowerOf2(n) {
		panic(fmt.Errorf("%w: %d is not a power of two", fftypes.ErrInvalidLength, n))
	}

	if n == 1 {
		return
	}

	logN := m.Log2(n)
	tw := r.Twiddles(logN)
	f := r.f

	m.ReverseSliceIndexBits(v)

	for half := 1; half < n; half <<= 1 {
		step := n / (2 * half)

		for start := 0; start < n; start += 2 * half {
			lo := v[start : start+half]
			hi := v[start+half : start+2*half]

			for j := range half {
				t := hi[j]
				if j != 0 {
					t = f.Mul(tw[j*step], t)
				}

				u := lo[j]
				lo[j] = f.Add(u, t)
				hi[j] = f.Sub(u, t)
			}
		}
	}
}

// Naive evaluates the DFT of v directly in O(n^2). It has the same length
// requirements and root ordering as Radix2.Transform and returns a new slice.
func Naive[E any](f field.Field[E], v []E) []E {
	n := len(v)
	if !m.IsPowerOf2(n) {
		panic(fmt.Errorf("%w: %d is not a power of two", fftypes.ErrInvalidLength, n))
	}

	w := f.TwoAdicGenerator(m.Log2(n))
	out := make([]E, n)
	wk := f.One()

	for k := range n {
		acc := f.Zero()
		x := f.One()

		for _, c := range v {
			acc = f.Add(acc, f.Mul(c, x))
			x = f.Mul(x, wk)
		}

		out[k] = acc
		wk = f.Mul(wk, w)
	}

	return out
}
