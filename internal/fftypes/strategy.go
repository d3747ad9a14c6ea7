package fftypes

import (
	"fmt"
	"strings"
)

// Strategy selects which batched DFT implementation a constructor builds.
type Strategy uint32

const (
	StrategyAuto              Strategy = iota
	StrategyNaive                      // O(n^2) direct evaluation, reference only
	StrategyRadix2Dit                  // sequential radix-2 DIT, strided per column
	StrategyParallelTranspose          // transpose, parallel radix-2 DIT per row, transpose back
)

var strategyNames = [...]string{
	StrategyAuto:              "auto",
	StrategyNaive:             "naive",
	StrategyRadix2Dit:         "radix2-dit",
	StrategyParallelTranspose: "parallel-transpose",
}

// String returns the name used by ParseStrategy.
func (s Strategy) String() string {
	if int(s) < len(strategyNames) {
		return strategyNames[s]
	}

	return "unknown"
}

// Strategies lists every concrete strategy, excluding StrategyAuto.
func Strategies() []Strategy {
	return []Strategy{StrategyNaive, StrategyRadix2Dit, StrategyParallelTranspose}
}

// ParseStrategy maps a strategy name back to its value.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseStrategy(name string) (Strategy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range strategyNames {
		if n == name {
			return Strategy(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}
