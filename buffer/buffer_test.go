// File: buffer/buffer_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package buffer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBuffer_AppendRetrieve(t *testing.T) {
	b := New()
	b.Append([]byte("hello"))
	require.Equal(t, 5, b.ReadableBytes())
	require.Equal(t, "hello", string(b.Peek()))
	b.Retrieve(2)
	require.Equal(t, "llo", string(b.Peek()))
}

func TestByteBuffer_PrependWithinHeadroom(t *testing.T) {
	b := New()
	b.Append([]byte("world"))
	b.Prepend([]byte("hi"))
	require.Equal(t, "hiworld", string(b.Peek()))
}

func TestByteBuffer_GrowsPastInitialCapacity(t *testing.T) {
	b := New()
	big := make([]byte, initialSize*4)
	for i := range big {
		big[i] = byte(i)
	}
	b.Append(big)
	require.Equal(t, len(big), b.ReadableBytes())
	require.Equal(t, big, b.Peek())
}

func TestByteBuffer_RetrieveAllResetsToPrependBoundary(t *testing.T) {
	b := New()
	b.Append([]byte("data"))
	s := b.RetrieveAllString()
	require.Equal(t, "data", s)
	require.Equal(t, 0, b.ReadableBytes())
	require.Equal(t, cheapPrepend, b.PrependableBytes())
}

func TestByteBuffer_EnsureWritableReclaimsBeforeGrowing(t *testing.T) {
	b := New()
	b.Append([]byte("abc"))
	b.Retrieve(2)
	capBefore := len(b.data)
	b.Append(make([]byte, initialSize-1))
	require.Equal(t, capBefore, len(b.data))
}
