// File: buffer/buffer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// ByteBuffer generalizes the teacher's NUMA-segmented slab buffer
// (core/buffer/bufferpool_linux.go) into a single growable per-connection
// buffer (compacted in place before it grows) with a real prepend region,
// grounded on the classic
// read-into-writable-tail-plus-stack-extra idiom also seen across the
// pack's netpoll examples.

package buffer

const (
	cheapPrepend = 8
	extraBufSize = 64 * 1024
	initialSize  = 1024
)

// ByteBuffer is a growable byte buffer with a cheap-prepend region ahead
// of the readable bytes, matching spec.md §6's external I/O buffer
// contract.
type ByteBuffer struct {
	data        []byte
	readerIndex int
	writerIndex int
}

// New creates a ByteBuffer with cheapPrepend bytes of headroom reserved
// ahead of the (initially empty) readable region.
func New() *ByteBuffer {
	return &ByteBuffer{
		data:        make([]byte, cheapPrepend+initialSize),
		readerIndex: cheapPrepend,
		writerIndex: cheapPrepend,
	}
}

// ReadableBytes is the number of bytes available to Peek/Retrieve.
func (b *ByteBuffer) ReadableBytes() int { return b.writerIndex - b.readerIndex }

// WritableBytes is the number of bytes available past the write cursor
// without growing the backing array.
func (b *ByteBuffer) WritableBytes() int { return len(b.data) - b.writerIndex }

// PrependableBytes is the headroom available to Prepend.
func (b *ByteBuffer) PrependableBytes() int { return b.readerIndex }

// Peek returns the readable slice without consuming it. The slice is
// only valid until the next mutating call.
func (b *ByteBuffer) Peek() []byte { return b.data[b.readerIndex:b.writerIndex] }

// Retrieve advances the read cursor by n, consuming n readable bytes. n
// must not exceed ReadableBytes().
func (b *ByteBuffer) Retrieve(n int) {
	if n >= b.ReadableBytes() {
		b.readerIndex = cheapPrepend
		b.writerIndex = cheapPrepend
		return
	}
	b.readerIndex += n
}

// RetrieveAllString drains every readable byte as a string.
func (b *ByteBuffer) RetrieveAllString() string {
	s := string(b.Peek())
	b.Retrieve(b.ReadableBytes())
	return s
}

// Append copies p onto the writable tail, growing the backing array if
// necessary.
func (b *ByteBuffer) Append(p []byte) {
	b.ensureWritable(len(p))
	n := copy(b.data[b.writerIndex:], p)
	b.writerIndex += n
}

// Prepend writes p immediately before the readable region. len(p) must
// not exceed PrependableBytes(); this matches spec.md's "cheap prepend"
// contract — callers needing more headroom than cheapPrepend bytes must
// reserve it up front by constructing with a larger initial prepend, not
// supported by this minimal implementation.
func (b *ByteBuffer) Prepend(p []byte) {
	if len(p) > b.PrependableBytes() {
		panic("buffer: Prepend exceeds available headroom")
	}
	b.readerIndex -= len(p)
	copy(b.data[b.readerIndex:], p)
}

func (b *ByteBuffer) ensureWritable(n int) {
	if b.WritableBytes() >= n {
		return
	}
	if b.PrependableBytes()-cheapPrepend+b.WritableBytes() >= n {
		// Reclaim space by sliding the readable region down to just
		// after the cheap-prepend boundary instead of growing.
		readable := b.ReadableBytes()
		copy(b.data[cheapPrepend:], b.data[b.readerIndex:b.writerIndex])
		b.readerIndex = cheapPrepend
		b.writerIndex = cheapPrepend + readable
		return
	}
	newCap := len(b.data)*2 + n
	grown := make([]byte, newCap)
	copy(grown, b.data[:b.writerIndex])
	b.data = grown
}
