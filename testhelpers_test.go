package algodft

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-dft/internal/sample"
)

// Shared test helpers used across multiple test files.

func randomMatrix[E any](t *testing.T, f Field[E], seed uint64, height, width int) *Matrix[E] {
	t.Helper()

	mat, err := sample.Matrix(f, seed, height, width)
	require.NoError(t, err)

	return mat
}

func requireMatrixEqual[E any](t *testing.T, f Field[E], want, got *Matrix[E]) {
	t.Helper()

	requireMatrixEqualf(t, f, want, got, "")
}

func requireMatrixEqualf[E any](t *testing.T, f Field[E], want, got *Matrix[E], format string, args ...any) {
	t.Helper()

	msg := fmt.Sprintf(format, args...)

	require.Equal(t, want.Height(), got.Height(), msg)
	require.Equal(t, want.Width(), got.Width(), msg)

	for i := range want.Values {
		if !f.Equal(want.Values[i], got.Values[i]) {
			r, c := i/want.Width(), i%want.Width()
			require.Failf(t, "matrices differ",
				"at (%d,%d): want %s got %s %s", r, c, f.String(want.Values[i]), f.String(got.Values[i]), msg)
		}
	}
}

// strategiesFor builds every concrete strategy over f.
func strategiesFor[E any](t *testing.T, f Field[E]) []BatchedDFT[E] {
	t.Helper()

	out := make([]BatchedDFT[E], 0, len(Strategies()))

	for _, s := range Strategies() {
		d, err := New(f, Options{Strategy: s, Workers: 4})
		require.NoError(t, err)
		require.Equal(t, s, d.Strategy())

		out = append(out, d)
	}

	return out
}

// evalPoly evaluates the polynomial with the given coefficients at x.
func evalPoly[E any](f Field[E], coeffs []E, x E) E {
	acc := f.Zero()
	for i := len(coeffs) - 1; i >= 0; i-- {
		acc = f.Add(f.Mul(acc, x), coeffs[i])
	}

	return acc
}

// naiveEvaluate returns the matrix whose row k holds every column's
// polynomial evaluated at shift·w^k, where w generates the order-n subgroup.
func naiveEvaluate[E any](t *testing.T, f Field[E], coeffs *Matrix[E], n int, shift E) *Matrix[E] {
	t.Helper()

	logN := 0
	for 1<<logN < n {
		logN++
	}

	w := f.TwoAdicGenerator(logN)
	out := make([]E, 0, n*coeffs.Width())
	x := shift

	for range n {
		for c := range coeffs.Width() {
			out = append(out, evalPoly(f, coeffs.Column(c), x))
		}

		x = f.Mul(x, w)
	}

	mat, err := NewMatrix(out, coeffs.Width())
	require.NoError(t, err)

	return mat
}

func mustRecoverError(t *testing.T, fn func()) (err error) {
	t.Helper()

	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")

		e, ok := r.(error)
		require.True(t, ok, "panic value %T is not an error", r)

		err = e
	}()

	fn()

	return nil
}
