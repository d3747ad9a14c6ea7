// Package parallel runs independent units of work with fork-join semantics.
package parallel

import (
	"errors"
	"fmt"
	"runtime/debug"

	"golang.org/x/sync/errgroup"
)

// Executor runs task(0) .. task(n-1) and returns only after all of them
// finished. Units must touch disjoint memory; an Executor adds no locking.
//
// If a unit panics, the remaining units still run to completion and Run then
// panics on the caller's goroutine with a *TaskPanic for the first failure.
type Executor interface {
	Run(n int, task func(i int))
	// Workers is the maximum number of units in flight.
	Workers() int
}

// TaskPanic carries a panic out of a worker goroutine.
type TaskPanic struct {
	Index int
	Value any
	Stack []byte
}

func (p *TaskPanic) Error() string {
	return fmt.Sprintf("parallel: task %d panicked: %v", p.Index, p.Value)
}

// Unwrap exposes a panicked error value to errors.Is / errors.As.
func (p *TaskPanic) Unwrap() error {
	if err, ok := p.Value.(error); ok {
		return err
	}

	return nil
}

// Pool is an Executor that starts one goroutine per unit and bounds
// concurrency at a fixed number of workers.
type Pool struct {
	workers int
}

// NewPool returns a Pool running at most workers units at once. workers < 1
// is treated as 1.
func NewPool(workers int) *Pool {
	if workers < 1 {
		workers = 1
	}

	return &Pool{workers: workers}
}

func (p *Pool) Workers() int { return p.workers }

func (p *Pool) Run(n int, task func(i int)) {
	if n <= 0 {
		return
	}

	if n == 1 || p.workers == 1 {
		Serial{}.Run(n, task)
		return
	}

	var g errgroup.Group
	g.SetLimit(p.workers)

	for i := range n {
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = &TaskPanic{Index: i, Value: r, Stack: debug.Stack()}
				}
			}()

			task(i)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		var tp *TaskPanic
		if errors.As(err, &tp) {
			panic(tp)
		}

		panic(err)
	}
}

// Serial is an Executor that runs every unit on the calling goroutine.
type Serial struct{}

func (Serial) Workers() int { return 1 }

func (Serial) Run(n int, task func(i int)) {
	for i := range n {
		runUnit(i, task)
	}
}

func runUnit(i int, task func(i int)) {
	defer func() {
		if r := recover(); r != nil {
			if tp, ok := r.(*TaskPanic); ok {
				panic(tp)
			}

			panic(&TaskPanic{Index: i, Value: r, Stack: debug.Stack()})
		}
	}()

	task(i)
}
