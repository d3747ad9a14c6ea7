package math

import "math/bits"

// IsPowerOf2 reports whether n is a positive power of two.
func IsPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// Log2 returns the base-2 logarithm of n (assuming n is a power of 2).
func Log2(n int) int {
	if n <= 1 {
		return 0
	}

	return bits.Len(uint(n)) - 1
}

// ReverseBits reverses the lower 'bits' bits of x.
// Example: ReverseBits(6, 3) = ReverseBits(0b110, 3) = 0b011 = 3.
func ReverseBits(x, nbits int) int {
	if nbits <= 0 {
		return 0
	}

	return int(bits.Reverse64(uint64(x)) >> (64 - uint(nbits)))
}

// ReverseSliceIndexBits permutes v in place so that v[i] and v[rev(i)] swap.
// len(v) must be a power of two; other lengths are left untouched.
func ReverseSliceIndexBits[E any](v []E) {
	n := len(v)
	if !IsPowerOf2(n) || n <= 2 {
		return
	}

	nbits := Log2(n)
	for i := range n {
		j := ReverseBits(i, nbits)
		if j > i {
			v[i], v[j] = v[j], v[i]
		}
	}
}
