// Package field defines the arithmetic contract the DFT code is written
// against and provides gnark-crypto backed prime fields that satisfy it.
package field

import "math/big"

// Field is the arithmetic of a prime field with a two-adic multiplicative
// subgroup. Elements are plain values; all operations return new values and
// never alias their arguments, so a Field may be shared across goroutines.
type Field[E any] interface {
	// Name is the lowercase identifier used by Lookup and the CLI.
	Name() string

	Zero() E
	One() E
	// FromUint64 maps v into the field, reducing modulo p.
	FromUint64(v uint64) E

	Add(a, b E) E
	Sub(a, b E) E
	Mul(a, b E) E
	Neg(a E) E
	Square(a E) E
	// Inverse returns a^-1, or zero for a == 0.
	Inverse(a E) E
	// Exp returns a^e for e >= 0.
	Exp(a E, e uint64) E

	Equal(a, b E) bool
	IsZero(a E) bool
	String(a E) string

	// Modulus returns a copy of the characteristic p.
	Modulus() *big.Int
	// TwoAdicity is the largest s such that 2^s divides p-1.
	TwoAdicity() int
	// Generator is a generator of the full multiplicative group, used as the
	// default coset shift.
	Generator() E
	// TwoAdicGenerator returns the canonical primitive 2^bits-th root of
	// unity. It panics with ErrTwoAdicity when bits is out of [0, TwoAdicity].
	TwoAdicGenerator(bits int) E
}

// Powers returns [1, base, base^2, ..., base^(n-1)].
func Powers[E any](f Field[E], base E, n int) []E {
	out := make([]E, n)
	if n == 0 {
		return out
	}

	cur := f.One()
	for i := range out {
		out[i] = cur
		cur = f.Mul(cur, base)
	}

	return out
}
