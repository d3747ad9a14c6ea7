package algodft

import (
	"fmt"

	"github.com/cwbudde/algo-dft/internal/cpu"
	"github.com/cwbudde/algo-dft/internal/fftypes"
	m "github.com/cwbudde/algo-dft/internal/math"
	"github.com/cwbudde/algo-dft/internal/parallel"
)

// BatchedDFT transforms every column of a matrix independently.
//
// All implementations agree exactly: for a height-R input, column c of the
// result is the DFT of input column c over the powers of
// Field().TwoAdicGenerator(log2 R). R must be a power of two within the
// field's two-adicity; violations panic (see CheckDomain). The input is never
// modified and the result has the input's shape.
type BatchedDFT[E any] interface {
	Field() Field[E]
	Strategy() Strategy
	// DFT transforms a single vector and returns a new slice.
	DFT(vec []E) []E
	// DFTBatch transforms every column of mat.
	DFTBatch(mat *Matrix[E]) *Matrix[E]
}

// Options configures New.
type Options struct {
	// Strategy picks the implementation. StrategyAuto chooses
	// StrategyParallelTranspose when more than one worker is available and
	// StrategyRadix2Dit otherwise.
	Strategy Strategy

	// Workers bounds the parallel strategy's concurrency. Zero means
	// runtime.GOMAXPROCS.
	Workers int
}

// DefaultOptions returns the options New uses for a zero Options value.
func DefaultOptions() Options {
	return Options{Strategy: StrategyAuto}
}

// New builds the BatchedDFT selected by opts over f.
func New[E any](f Field[E], opts Options) (BatchedDFT[E], error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = cpu.DefaultWorkers()
	}

	strategy := opts.Strategy
	if strategy == StrategyAuto {
		strategy = StrategyRadix2Dit
		if workers > 1 {
			strategy = StrategyParallelTranspose
		}
	}

	switch strategy {
	case StrategyNaive:
		return NewNaive(f), nil
	case StrategyRadix2Dit:
		return NewRadix2Dit(f), nil
	case StrategyParallelTranspose:
		return NewRadix2DitParallelTranspose(f, parallel.NewPool(workers)), nil
	default:
		return nil, fmt.Errorf("%w: %d", fftypes.ErrUnknownStrategy, uint32(opts.Strategy))
	}
}

// CheckDomain reports whether a height-R batch over f satisfies the
// transform preconditions. Transforms themselves do not validate; callers
// holding untrusted shapes should call this first.
func CheckDomain[E any](f Field[E], height int) error {
	if !m.IsPowerOf2(height) {
		return fmt.Errorf("%w: height %d is not a power of two", ErrInvalidLength, height)
	}

	if bits := m.Log2(height); bits > f.TwoAdicity() {
		return fmt.Errorf("%w: %s supports at most 2^%d points, need 2^%d",
			ErrTwoAdicity, f.Name(), f.TwoAdicity(), bits)
	}

	return nil
}
