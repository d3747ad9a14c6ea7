package algodft

import (
	"github.com/cwbudde/algo-dft/internal/fftypes"
	"github.com/cwbudde/algo-dft/internal/field"
	"github.com/cwbudde/algo-dft/internal/matrix"
)

// Field is the arithmetic contract every transform is generic over.
// The canonical definition is in internal/field.
type Field[E any] = field.Field[E]

// Matrix is a dense row-major matrix: rows are domain points, columns are
// independent polynomials. The canonical definition is in internal/matrix.
type Matrix[E any] = matrix.RowMajor[E]

// Strategy selects a BatchedDFT implementation at construction time.
// The canonical definition is in internal/fftypes.
type Strategy = fftypes.Strategy

const (
	StrategyAuto              = fftypes.StrategyAuto
	StrategyNaive             = fftypes.StrategyNaive
	StrategyRadix2Dit         = fftypes.StrategyRadix2Dit
	StrategyParallelTranspose = fftypes.StrategyParallelTranspose
)

// ParseStrategy resolves a strategy name such as "parallel-transpose".
func ParseStrategy(name string) (Strategy, error) {
	return fftypes.ParseStrategy(name)
}

// Strategies lists the concrete strategies New can build.
func Strategies() []Strategy {
	return fftypes.Strategies()
}
