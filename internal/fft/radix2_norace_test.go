//go:build !race

package fft

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-dft/internal/field"
)

// TestRadix2Transform_ZeroAllocations verifies that once the twiddles for a
// size are cached, an in-place transform does not allocate.
//
// Excluded from race builds: the race detector's instrumentation allocates.
//
//nolint:paralleltest
func TestRadix2Transform_ZeroAllocations(t *testing.T) {
	// Note: t.Parallel() cannot be used here because testing.AllocsPerRun
	// panics when called during a parallel test.
	f := field.Goldilocks()
	k := NewRadix2(f)
	v := vector(f, 1024, 3)

	// Warm up the twiddle cache.
	k.Transform(v)

	allocs := testing.AllocsPerRun(100, func() {
		k.Transform(v)
	})

	require.Zero(t, allocs, "Transform allocated %f times per run", allocs)
}
