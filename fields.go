package algodft

import "github.com/cwbudde/algo-dft/internal/field"

// Element types of the bundled fields, all backed by gnark-crypto.
type (
	BabyBearElement   = field.BabyBearElement
	GoldilocksElement = field.GoldilocksElement
	BN254Element      = field.BN254Element
	BLS12381Element   = field.BLS12381Element
)

// FieldInfo describes a bundled field without its element type.
type FieldInfo = field.Info

// BabyBear returns the 31-bit field 2^31 - 2^27 + 1 (two-adicity 27).
func BabyBear() Field[BabyBearElement] { return field.BabyBear() }

// Goldilocks returns the 64-bit field 2^64 - 2^32 + 1 (two-adicity 32).
func Goldilocks() Field[GoldilocksElement] { return field.Goldilocks() }

// BN254 returns the BN254 scalar field (two-adicity 28).
func BN254() Field[BN254Element] { return field.BN254() }

// BLS12381 returns the BLS12-381 scalar field (two-adicity 32).
func BLS12381() Field[BLS12381Element] { return field.BLS12381() }

// FieldNames lists the bundled fields.
func FieldNames() []string { return field.Names() }

// LookupField returns the parameters of a bundled field by name.
func LookupField(name string) (FieldInfo, error) { return field.Lookup(name) }
