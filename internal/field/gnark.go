package field

import (
	"fmt"
	"math/big"

	bls12381fr "github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	bn254fr "github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/field/babybear"
	"github.com/consensys/gnark-crypto/field/goldilocks"

	"github.com/cwbudde/algo-dft/internal/fftypes"
)

// Element types of the bundled fields.
type (
	BabyBearElement   = babybear.Element
	GoldilocksElement = goldilocks.Element
	BN254Element      = bn254fr.Element
	BLS12381Element   = bls12381fr.Element
)

// arith is the subset of Field needed to derive the two-adic parameters.
type arith[E any] interface {
	One() E
	FromUint64(v uint64) E
	Mul(a, b E) E
	Square(a E) E
}

// params holds the per-field constants shared by the concrete adapters.
// rootsOfUnity[k] is the canonical primitive 2^k-th root of unity.
type params[E any] struct {
	name         string
	modulus      *big.Int
	twoAdicity   int
	generator    E
	rootsOfUnity []E
}

func newParams[E any](f arith[E], name string, modulus *big.Int, generator uint64) *params[E] {
	p := &params[E]{
		name:    name,
		modulus: new(big.Int).Set(modulus),
	}

	pMinus1 := new(big.Int).Sub(p.modulus, big.NewInt(1))
	p.twoAdicity = int(pMinus1.TrailingZeroBits())
	p.generator = f.FromUint64(generator)

	// g^((p-1)/2^s) has order exactly 2^s because g generates the whole group.
	oddPart := new(big.Int).Rsh(pMinus1, uint(p.twoAdicity))

	p.rootsOfUnity = make([]E, p.twoAdicity+1)
	p.rootsOfUnity[p.twoAdicity] = expBig(f, p.generator, oddPart)

	for k := p.twoAdicity - 1; k >= 0; k-- {
		p.rootsOfUnity[k] = f.Square(p.rootsOfUnity[k+1])
	}

	return p
}

func (p *params[E]) Name() string { return p.name }

func (p *params[E]) Modulus() *big.Int { return new(big.Int).Set(p.modulus) }

func (p *params[E]) TwoAdicity() int { return p.twoAdicity }

func (p *params[E]) Generator() E { return p.generator }

func (p *params[E]) TwoAdicGenerator(bits int) E {
	if bits < 0 || bits > p.twoAdicity {
		panic(fmt.Errorf("%w: %s has no root of unity of order 2^%d (two-adicity %d)",
			fftypes.ErrTwoAdicity, p.name, bits, p.twoAdicity))
	}

	return p.rootsOfUnity[bits]
}

func expUint64[E any](f arith[E], a E, e uint64) E {
	result := f.One()
	for e > 0 {
		if e&1 == 1 {
			result = f.Mul(result, a)
		}

		a = f.Square(a)
		e >>= 1
	}

	return result
}

func expBig[E any](f arith[E], a E, e *big.Int) E {
	result := f.One()
	for i := e.BitLen() - 1; i >= 0; i-- {
		result = f.Square(result)
		if e.Bit(i) == 1 {
			result = f.Mul(result, a)
		}
	}

	return result
}

// babyBearField adapts babybear.Element. SetUint64 reduces modulo p.
type babyBearField struct {
	*params[babybear.Element]
}

func newBabyBear() *babyBearField {
	f := &babyBearField{}
	f.params = newParams[babybear.Element](f, NameBabyBear, babybear.Modulus(), 31)

	return f
}

func (babyBearField) Zero() (z babybear.Element) { return z }

func (babyBearField) One() babybear.Element { return babybear.One() }

func (babyBearField) FromUint64(v uint64) (z babybear.Element) {
	z.SetUint64(v)
	return z
}

func (babyBearField) Add(a, b babybear.Element) (z babybear.Element) {
	z.Add(&a, &b)
	return z
}

func (babyBearField) Sub(a, b babybear.Element) (z babybear.Element) {
	z.Sub(&a, &b)
	return z
}

func (babyBearField) Mul(a, b babybear.Element) (z babybear.Element) {
	z.Mul(&a, &b)
	return z
}

func (babyBearField) Neg(a babybear.Element) (z babybear.Element) {
	z.Neg(&a)
	return z
}

func (babyBearField) Square(a babybear.Element) (z babybear.Element) {
	z.Square(&a)
	return z
}

func (babyBearField) Inverse(a babybear.Element) (z babybear.Element) {
	z.Inverse(&a)
	return z
}

func (f babyBearField) Exp(a babybear.Element, e uint64) babybear.Element {
	return expUint64[babybear.Element](f, a, e)
}

func (babyBearField) Equal(a, b babybear.Element) bool { return a.Equal(&b) }

func (babyBearField) IsZero(a babybear.Element) bool { return a.IsZero() }

func (babyBearField) String(a babybear.Element) string { return a.String() }

// goldilocksField adapts goldilocks.Element.
type goldilocksField struct {
	*params[goldilocks.Element]
}

func newGoldilocks() *goldilocksField {
	f := &goldilocksField{}
	f.params = newParams[goldilocks.Element](f, NameGoldilocks, goldilocks.Modulus(), 7)

	return f
}

func (goldilocksField) Zero() (z goldilocks.Element) { return z }

func (goldilocksField) One() goldilocks.Element { return goldilocks.One() }

// goldilocksModulus is 2^64 - 2^32 + 1.
const goldilocksModulus uint64 = 0xffffffff00000001

func (goldilocksField) FromUint64(v uint64) (z goldilocks.Element) {
	if v >= goldilocksModulus {
		v -= goldilocksModulus
	}

	z.SetUint64(v)

	return z
}

func (goldilocksField) Add(a, b goldilocks.Element) (z goldilocks.Element) {
	z.Add(&a, &b)
	return z
}

func (goldilocksField) Sub(a, b goldilocks.Element) (z goldilocks.Element) {
	z.Sub(&a, &b)
	return z
}

func (goldilocksField) Mul(a, b goldilocks.Element) (z goldilocks.Element) {
	z.Mul(&a, &b)
	return z
}

func (goldilocksField) Neg(a goldilocks.Element) (z goldilocks.Element) {
	z.Neg(&a)
	return z
}

func (goldilocksField) Square(a goldilocks.Element) (z goldilocks.Element) {
	z.Square(&a)
	return z
}

func (goldilocksField) Inverse(a goldilocks.Element) (z goldilocks.Element) {
	z.Inverse(&a)
	return z
}

func (f goldilocksField) Exp(a goldilocks.Element, e uint64) goldilocks.Element {
	return expUint64[goldilocks.Element](f, a, e)
}

func (goldilocksField) Equal(a, b goldilocks.Element) bool { return a.Equal(&b) }

func (goldilocksField) IsZero(a goldilocks.Element) bool { return a.IsZero() }

func (goldilocksField) String(a goldilocks.Element) string { return a.String() }

// bn254Field adapts the BN254 scalar field element.
type bn254Field struct {
	*params[bn254fr.Element]
}

func newBN254() *bn254Field {
	f := &bn254Field{}
	f.params = newParams[bn254fr.Element](f, NameBN254, bn254fr.Modulus(), 5)

	return f
}

func (bn254Field) Zero() (z bn254fr.Element) { return z }

func (bn254Field) One() bn254fr.Element { return bn254fr.One() }

func (bn254Field) FromUint64(v uint64) (z bn254fr.Element) {
	z.SetUint64(v)
	return z
}

func (bn254Field) Add(a, b bn254fr.Element) (z bn254fr.Element) {
	z.Add(&a, &b)
	return z
}

func (bn254Field) Sub(a, b bn254fr.Element) (z bn254fr.Element) {
	z.Sub(&a, &b)
	return z
}

func (bn254Field) Mul(a, b bn254fr.Element) (z bn254fr.Element) {
	z.Mul(&a, &b)
	return z
}

func (bn254Field) Neg(a bn254fr.Element) (z bn254fr.Element) {
	z.Neg(&a)
	return z
}

func (bn254Field) Square(a bn254fr.Element) (z bn254fr.Element) {
	z.Square(&a)
	return z
}

func (bn254Field) Inverse(a bn254fr.Element) (z bn254fr.Element) {
	z.Inverse(&a)
	return z
}

func (f bn254Field) Exp(a bn254fr.Element, e uint64) bn254fr.Element {
	return expUint64[bn254fr.Element](f, a, e)
}

func (bn254Field) Equal(a, b bn254fr.Element) bool { return a.Equal(&b) }

func (bn254Field) IsZero(a bn254fr.Element) bool { return a.IsZero() }

func (bn254Field) String(a bn254fr.Element) string { return a.String() }

// bls12381Field adapts the BLS12-381 scalar field element.
type bls12381Field struct {
	*params[bls12381fr.Element]
}

func newBLS12381() *bls12381Field {
	f := &bls12381Field{}
	f.params = newParams[bls12381fr.Element](f, NameBLS12381, bls12381fr.Modulus(), 7)

	return f
}

func (bls12381Field) Zero() (z bls12381fr.Element) { return z }

func (bls12381Field) One() bls12381fr.Element { return bls12381fr.One() }

func (bls12381Field) FromUint64(v uint64) (z bls12381fr.Element) {
	z.SetUint64(v)
	return z
}

func (bls12381Field) Add(a, b bls12381fr.Element) (z bls12381fr.Element) {
	z.Add(&a, &b)
	return z
}

func (bls12381Field) Sub(a, b bls12381fr.Element) (z bls12381fr.Element) {
	z.Sub(&a, &b)
	return z
}

func (bls12381Field) Mul(a, b bls12381fr.Element) (z bls12381fr.Element) {
	z.Mul(&a, &b)
	return z
}

func (bls12381Field) Neg(a bls12381fr.Element) (z bls12381fr.Element) {
	z.Neg(&a)
	return z
}

func (bls12381Field) Square(a bls12381fr.Element) (z bls12381fr.Element) {
	z.Square(&a)
	return z
}

func (bls12381Field) Inverse(a bls12381fr.Element) (z bls12381fr.Element) {
	z.Inverse(&a)
	return z
}

func (f bls12381Field) Exp(a bls12381fr.Element, e uint64) bls12381fr.Element {
	return expUint64[bls12381fr.Element](f, a, e)
}

func (bls12381Field) Equal(a, b bls12381fr.Element) bool { return a.Equal(&b) }

func (bls12381Field) IsZero(a bls12381fr.Element) bool { return a.IsZero() }

func (bls12381Field) String(a bls12381fr.Element) string { return a.String() }
