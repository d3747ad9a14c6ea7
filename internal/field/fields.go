package field

import (
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/cwbudde/algo-dft/internal/fftypes"
)

// Names accepted by Lookup.
const (
	NameBabyBear   = "babybear"
	NameGoldilocks = "goldilocks"
	NameBN254      = "bn254"
	NameBLS12381   = "bls12-381"
)

var (
	babyBearOnce sync.Once
	babyBearF    Field[BabyBearElement]

	goldilocksOnce sync.Once
	goldilocksF    Field[GoldilocksElement]

	bn254Once sync.Once
	bn254F    Field[BN254Element]

	bls12381Once sync.Once
	bls12381F    Field[BLS12381Element]
)

// BabyBear returns the 31-bit field of order 2^31 - 2^27 + 1 (two-adicity 27).
func BabyBear() Field[BabyBearElement] {
	babyBearOnce.Do(func() {
		babyBearF = newBabyBear()
	})

	return babyBearF
}

// Goldilocks returns the field of order 2^64 - 2^32 + 1 (two-adicity 32).
func Goldilocks() Field[GoldilocksElement] {
	goldilocksOnce.Do(func() {
		goldilocksF = newGoldilocks()
	})

	return goldilocksF
}

// BN254 returns the scalar field of the BN254 curve (two-adicity 28).
func BN254() Field[BN254Element] {
	bn254Once.Do(func() {
		bn254F = newBN254()
	})

	return bn254F
}

// BLS12381 returns the scalar field of the BLS12-381 curve (two-adicity 32).
func BLS12381() Field[BLS12381Element] {
	bls12381Once.Do(func() {
		bls12381F = newBLS12381()
	})

	return bls12381F
}

// Info describes a field without exposing its element type.
type Info struct {
	Name       string
	Modulus    *big.Int
	TwoAdicity int
}

// Names lists the bundled fields in a stable order.
func Names() []string {
	return []string{NameBabyBear, NameGoldilocks, NameBN254, NameBLS12381}
}

// Lookup returns the parameters of a bundled field by name.
func Lookup(name string) (Info, error) {
	var f interface {
		Name() string
		Modulus() *big.Int
		TwoAdicity() int
	}

	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameBabyBear, "baby-bear":
		f = BabyBear()
	case NameGoldilocks:
		f = Goldilocks()
	case NameBN254:
		f = BN254()
	case NameBLS12381, "bls12381":
		f = BLS12381()
	default:
		return Info{}, fmt.Errorf("%w: %q", fftypes.ErrUnknownField, name)
	}

	return Info{
		Name:       f.Name(),
		Modulus:    f.Modulus(),
		TwoAdicity: f.TwoAdicity(),
	}, nil
}
