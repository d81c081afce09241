// File: genseq/sequence.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package genseq

// Step advances a generator from one state to the next value and the
// state to resume from, or reports that the sequence has ended.
type Step[S, T any] func(state S) (value T, next S, ok bool)

// Sequence is a finite, lazily-produced stream of values. It mirrors
// Generator.hpp's pull model (next/value/operator bool) without a
// backing coroutine: each Next() call runs exactly one Step.
type Sequence[S, T any] struct {
	step    Step[S, T]
	state   S
	cur     T
	has     bool
	started bool
	done    bool
}

// New constructs a Sequence that begins at initial and advances via step.
// The sequence starts in the "not yet produced a value" position, mirroring
// Generator.hpp's initial_suspend: the first Next() call produces the
// first value.
func New[S, T any](initial S, step Step[S, T]) *Sequence[S, T] {
	return &Sequence[S, T]{step: step, state: initial}
}

// Next advances the sequence by one element. It returns false once the
// underlying Step reports exhaustion; a Sequence that returns false from
// Next never produces another value.
func (s *Sequence[S, T]) Next() bool {
	if s.done {
		s.has = false
		return false
	}
	v, next, ok := s.step(s.state)
	s.started = true
	if !ok {
		s.done = true
		s.has = false
		return false
	}
	s.cur = v
	s.state = next
	s.has = true
	return true
}

// Value returns the element produced by the most recent successful Next.
// Calling it before any Next, or after Next returned false, panics —
// matching Generator.hpp's value()/operator* throwing on a spent or
// unstarted generator.
func (s *Sequence[S, T]) Value() T {
	if !s.has {
		panic("genseq: Value called without a current element")
	}
	return s.cur
}

// Collect drains the sequence (or its first n elements, whichever comes
// first) into a slice. n <= 0 means unbounded — callers must only pass
// n <= 0 for a sequence known to terminate.
func Collect[S, T any](s *Sequence[S, T], n int) []T {
	out := make([]T, 0)
	for (n <= 0 || len(out) < n) && s.Next() {
		out = append(out, s.Value())
	}
	return out
}

// Fibonacci returns a Sequence over the classic Fibonacci recurrence
// starting at 0, 1, ... — grounded on spec.md's S5 scenario.
func Fibonacci() *Sequence[[2]int, int] {
	return New([2]int{0, 1}, func(state [2]int) (int, [2]int, bool) {
		return state[0], [2]int{state[1], state[0] + state[1]}, true
	})
}
