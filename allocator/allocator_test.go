// File: allocator/allocator_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package allocator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAllocator_RoundTripReuse(t *testing.T) {
	a := New()
	buf := a.Allocate(100)
	require.Len(t, buf, 100)
	require.Equal(t, 128, cap(buf))
	a.Deallocate(buf)

	buf2 := a.Allocate(120)
	require.Len(t, buf2, 120)
	require.Equal(t, 128, cap(buf2))
}

func TestAllocator_OversizeBypassesPooling(t *testing.T) {
	a := New()
	buf := a.Allocate(1 << 20)
	require.Len(t, buf, 1<<20)
	a.Deallocate(buf) // must not panic
}
