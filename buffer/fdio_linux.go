//go:build linux
// +build linux

// File: buffer/fdio_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package buffer

import (
	"golang.org/x/sys/unix"
)

// ReadFd performs a scatter read: into the buffer's writable tail plus a
// 64 KiB stack extra, so a single readiness-driven read can drain more
// than the buffer currently has capacity for. On success it appends
// whatever landed in the extra segment onto the buffer and returns the
// total bytes read (0 meaning EOF). On EAGAIN/EWOULDBLOCK it returns
// (-1, nil) and sets *savedErrno to unix.EAGAIN; any other error returns
// (-1, err).
func (b *ByteBuffer) ReadFd(fd int, savedErrno *int) (int, error) {
	var extra [extraBufSize]byte
	tail := b.data[b.writerIndex:]
	iovs := [][]byte{tail, extra[:]}

	n, err := unix.Readv(fd, iovs)
	if err != nil {
		if errno, ok := err.(unix.Errno); ok && (errno == unix.EAGAIN || errno == unix.EWOULDBLOCK) {
			*savedErrno = int(unix.EAGAIN)
			return -1, nil
		}
		return -1, err
	}
	if n <= len(tail) {
		b.writerIndex += n
		return n, nil
	}
	b.writerIndex += len(tail)
	b.Append(extra[:n-len(tail)])
	return n, nil
}

// WriteFd performs exactly one write over the buffer's readable slice.
// On success it retrieves the bytes written and returns the count. On
// EAGAIN/EWOULDBLOCK it returns (-1, nil) and sets *savedErrno.
func (b *ByteBuffer) WriteFd(fd int, savedErrno *int) (int, error) {
	if b.ReadableBytes() == 0 {
		return 0, nil
	}
	n, err := unix.Write(fd, b.Peek())
	if err != nil {
		if errno, ok := err.(unix.Errno); ok && (errno == unix.EAGAIN || errno == unix.EWOULDBLOCK) {
			*savedErrno = int(unix.EAGAIN)
			return -1, nil
		}
		return -1, err
	}
	b.Retrieve(n)
	return n, nil
}
