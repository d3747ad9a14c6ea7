package algodft

import (
	"fmt"

	"github.com/cwbudde/algo-dft/internal/field"
	m "github.com/cwbudde/algo-dft/internal/math"
)

// The functions below build inverse, coset and low-degree-extension
// transforms on top of any BatchedDFT, using DFTBatch only as an opaque
// column-wise transform.

// IDFT returns the inverse DFT of vec.
func IDFT[E any](d BatchedDFT[E], vec []E) []E {
	f := d.Field()
	out := d.DFT(vec)
	reverseTail(out)

	scale := f.Inverse(f.FromUint64(uint64(len(out))))
	for i := range out {
		out[i] = f.Mul(out[i], scale)
	}

	return out
}

// IDFTBatch returns the inverse DFT of every column: the forward transform,
// rows 1..R-1 reversed, then everything scaled by 1/R.
func IDFTBatch[E any](d BatchedDFT[E], mat *Matrix[E]) *Matrix[E] {
	f := d.Field()
	out := d.DFTBatch(mat)
	h := out.Height()

	for i := 1; i < h-i; i++ {
		a, b := out.Row(i), out.Row(h-i)
		for j := range a {
			a[j], b[j] = b[j], a[j]
		}
	}

	scale := f.Inverse(f.FromUint64(uint64(h)))
	for i := range out.Values {
		out.Values[i] = f.Mul(out.Values[i], scale)
	}

	return out
}

// CosetDFTBatch evaluates every column, read as coefficients, on the coset
// shift·H where H is the order-R subgroup: row i is scaled by shift^i and
// the result transformed.
func CosetDFTBatch[E any](d BatchedDFT[E], mat *Matrix[E], shift E) *Matrix[E] {
	scaled := mat.Clone()
	scaleRowsByPowers(d.Field(), scaled, shift)

	return d.DFTBatch(scaled)
}

// CosetIDFTBatch inverts CosetDFTBatch.
func CosetIDFTBatch[E any](d BatchedDFT[E], mat *Matrix[E], shift E) *Matrix[E] {
	f := d.Field()
	out := IDFTBatch(d, mat)
	scaleRowsByPowers(f, out, f.Inverse(shift))

	return out
}

// LDEBatch treats each column as evaluations over the order-R subgroup and
// returns its evaluations over the order R·2^addedBits subgroup.
func LDEBatch[E any](d BatchedDFT[E], mat *Matrix[E], addedBits int) (*Matrix[E], error) {
	coeffs, err := padCoefficients(d, mat, addedBits)
	if err != nil {
		return nil, err
	}

	return d.DFTBatch(coeffs), nil
}

// CosetLDEBatch is LDEBatch evaluated on the coset shift·H' of the larger
// subgroup H'.
func CosetLDEBatch[E any](d BatchedDFT[E], mat *Matrix[E], addedBits int, shift E) (*Matrix[E], error) {
	coeffs, err := padCoefficients(d, mat, addedBits)
	if err != nil {
		return nil, err
	}

	return CosetDFTBatch(d, coeffs, shift), nil
}

func padCoefficients[E any](d BatchedDFT[E], mat *Matrix[E], addedBits int) (*Matrix[E], error) {
	f := d.Field()
	h := mat.Height()

	if addedBits < 0 {
		return nil, fmt.Errorf("%w: negative added bits %d", ErrInvalidLength, addedBits)
	}

	if err := CheckDomain(f, h<<addedBits); err != nil {
		return nil, err
	}

	return IDFTBatch(d, mat).PadRows(h<<addedBits, f.Zero())
}

func scaleRowsByPowers[E any](f Field[E], mat *Matrix[E], shift E) {
	powers := field.Powers(f, shift, mat.Height())
	for i, p := range powers {
		row := mat.Row(i)
		for j := range row {
			row[j] = f.Mul(row[j], p)
		}
	}
}

func reverseTail[E any](v []E) {
	if !m.IsPowerOf2(len(v)) {
		return
	}

	for i, j := 1, len(v)-1; i < j; i, j = i+1, j-1 {
		v[i], v[j] = v[j], v[i]
	}
}
