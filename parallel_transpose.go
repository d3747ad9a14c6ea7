package algodft

import (
	"github.com/cwbudde/algo-dft/internal/fft"
	"github.com/cwbudde/algo-dft/internal/parallel"
)

// Radix2DitParallelTranspose computes a batched DFT by transposing the
// matrix so every column becomes a contiguous row, transforming the rows in
// parallel with the sequential radix-2 DIT kernel, and transposing back.
//
// Each row task owns exactly one contiguous row of the transposed buffer and
// a private scratch copy of it; no two tasks share memory.
type Radix2DitParallelTranspose[E any] struct {
	f      Field[E]
	kernel *fft.Radix2[E]
	exec   parallel.Executor
}

// NewRadix2DitParallelTranspose returns the parallel-transpose strategy
// running its row transforms on exec.
func NewRadix2DitParallelTranspose[E any](f Field[E], exec parallel.Executor) *Radix2DitParallelTranspose[E] {
	return &Radix2DitParallelTranspose[E]{f: f, kernel: fft.NewRadix2(f), exec: exec}
}

func (d *Radix2DitParallelTranspose[E]) Field() Field[E] { return d.f }

func (d *Radix2DitParallelTranspose[E]) Strategy() Strategy { return StrategyParallelTranspose }

// Workers reports the executor's concurrency bound.
func (d *Radix2DitParallelTranspose[E]) Workers() int { return d.exec.Workers() }

func (d *Radix2DitParallelTranspose[E]) DFT(vec []E) []E {
	out := append([]E(nil), vec...)
	d.kernel.Transform(out)

	return out
}

// DFTBatch transforms every column of mat. A panic in any row transform
// (non power-of-two height, insufficient two-adicity) aborts the whole call
// once all rows have joined.
func (d *Radix2DitParallelTranspose[E]) DFTBatch(mat *Matrix[E]) *Matrix[E] {
	// C×R working buffer: row c is input column c.
	transposed := parallel.Transpose(d.exec, mat)

	rows := transposed.RowChunks(1)
	d.exec.Run(len(rows), func(i int) {
		row := rows[i].Values
		scratch := append([]E(nil), row...)
		d.kernel.Transform(scratch)
		copy(row, scratch)
	})

	return parallel.Transpose(d.exec, transposed)
}
