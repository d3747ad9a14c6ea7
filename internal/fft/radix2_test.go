package fft

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-dft/internal/fftypes"
	"github.com/cwbudde/algo-dft/internal/field"
)

func vector[E any](f field.Field[E], n int, seed uint64) []E {
	v := make([]E, n)
	for i := range v {
		v[i] = f.FromUint64(seed*1_000_003 + uint64(i)*7919 + 1)
	}

	return v
}

func requireSliceEqual[E any](t *testing.T, f field.Field[E], want, got []E) {
	t.Helper()
	require.Len(t, got, len(want))

	for i := range want {
		require.True(t, f.Equal(want[i], got[i]), "index %d: want %s got %s", i, f.String(want[i]), f.String(got[i]))
	}
}

func checkMatchesNaive[E any](t *testing.T, f field.Field[E]) {
	t.Helper()

	k := NewRadix2(f)
	for logN := 0; logN <= 9; logN++ {
		t.Run(fmt.Sprintf("%s/n=%d", f.Name(), 1<<logN), func(t *testing.T) {
			v := vector(f, 1<<logN, uint64(logN))
			want := Naive(f, v)

			got := append([]E(nil), v...)
			k.Transform(got)
			requireSliceEqual(t, f, want, got)
		})
	}
}

func TestRadix2MatchesNaive(t *testing.T) {
	t.Parallel()

	checkMatchesNaive(t, field.Goldilocks())
	checkMatchesNaive(t, field.BN254())
	checkMatchesNaive(t, field.BLS12381())
}

func TestRadix2Impulse(t *testing.T) {
	t.Parallel()

	f := field.Goldilocks()
	v := make([]field.GoldilocksElement, 64)
	v[0] = f.One()

	NewRadix2(f).Transform(v)

	for i := range v {
		require.True(t, f.Equal(v[i], f.One()), "bin %d", i)
	}
}

func TestRadix2RejectsNonPowerOfTwo(t *testing.T) {
	t.Parallel()

	f := field.Goldilocks()
	k := NewRadix2(f)

	for _, n := range []int{0, 3, 6, 12} {
		func() {
			defer func() {
				err, ok := recover().(error)
				require.True(t, ok, "n=%d did not panic with an error", n)
				require.True(t, errors.Is(err, fftypes.ErrInvalidLength))
			}()

			k.Transform(make([]field.GoldilocksElement, n))
		}()
	}
}

func TestTwiddlesConcurrentAccess(t *testing.T) {
	t.Parallel()

	f := field.BN254()
	k := NewRadix2(f)

	var (
		wg   sync.WaitGroup
		outs [8][]field.BN254Element
	)

	for g := range outs {
		wg.Add(1)

		go func() {
			defer wg.Done()

			v := vector(f, 256, uint64(g))
			k.Transform(v)
			outs[g] = v
		}()
	}

	wg.Wait()

	for g, got := range outs {
		requireSliceEqual(t, f, Naive(f, vector(f, 256, uint64(g))), got)
	}

	tw := k.Twiddles(8)
	require.Len(t, tw, 128)
	require.True(t, f.Equal(tw[0], f.One()))
	require.True(t, f.Equal(tw[1], f.TwoAdicGenerator(8)))
}
