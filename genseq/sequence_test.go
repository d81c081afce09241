// File: genseq/sequence_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package genseq

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFibonacci_FirstEight(t *testing.T) {
	got := Collect(Fibonacci(), 8)
	require.Equal(t, []int{0, 1, 1, 2, 3, 5, 8, 13}, got)
}

func TestSequence_TerminatesCleanly(t *testing.T) {
	n := 0
	seq := New(0, func(state int) (int, int, bool) {
		if state >= 3 {
			return 0, 0, false
		}
		return state, state + 1, true
	})
	var out []int
	for seq.Next() {
		out = append(out, seq.Value())
		n++
	}
	require.Equal(t, []int{0, 1, 2}, out)
	require.Equal(t, 3, n)
	require.False(t, seq.Next(), "sequence must stay exhausted once done")
}

func TestSequence_ValuePanicsBeforeFirstNext(t *testing.T) {
	seq := New(0, func(state int) (int, int, bool) { return state, state + 1, true })
	require.Panics(t, func() { seq.Value() })
}
