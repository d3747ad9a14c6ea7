// Package sample derives reproducible field vectors and matrices from a seed.
package sample

import (
	"encoding/binary"
	"fmt"

	"github.com/zeebo/blake3"

	"github.com/cwbudde/algo-dft/internal/field"
	"github.com/cwbudde/algo-dft/internal/matrix"
)

const domainTag = "algo-dft/sample/v1"

// Stream is a blake3 XOF keyed by a seed and a label.
type Stream struct {
	d   *blake3.Digest
	buf [8]byte
}

// NewStream starts the stream for (seed, label). Equal inputs give equal output.
func NewStream(seed uint64, label string) *Stream {
	h := blake3.New()

	var s [8]byte
	binary.LittleEndian.PutUint64(s[:], seed)

	// Hasher writes never fail.
	_, _ = h.Write([]byte(domainTag))
	_, _ = h.Write(s[:])
	_, _ = h.Write([]byte(label))

	return &Stream{d: h.Digest()}
}

// Uint64 reads the next 8 bytes of the stream.
func (s *Stream) Uint64() uint64 {
	if _, err := s.d.Read(s.buf[:]); err != nil {
		panic(fmt.Sprintf("sample: blake3 digest read: %v", err))
	}

	return binary.LittleEndian.Uint64(s.buf[:])
}

// Vector returns n field elements drawn from the stream.
func Vector[E any](f field.Field[E], s *Stream, n int) []E {
	v := make([]E, n)
	for i := range v {
		v[i] = f.FromUint64(s.Uint64())
	}

	return v
}

// Matrix returns a height×width matrix of elements derived from seed.
func Matrix[E any](f field.Field[E], seed uint64, height, width int) (*matrix.RowMajor[E], error) {
	if height < 1 || width < 1 {
		return matrix.New[E](nil, width)
	}

	s := NewStream(seed, fmt.Sprintf("%s/%dx%d", f.Name(), height, width))

	return matrix.New(Vector(f, s, height*width), width)
}
