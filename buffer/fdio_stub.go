//go:build !linux
// +build !linux

// File: buffer/fdio_stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package buffer

import "errors"

var errUnsupportedPlatform = errors.New("buffer: fd I/O not supported on this platform")

func (b *ByteBuffer) ReadFd(fd int, savedErrno *int) (int, error) {
	return -1, errUnsupportedPlatform
}

func (b *ByteBuffer) WriteFd(fd int, savedErrno *int) (int, error) {
	return -1, errUnsupportedPlatform
}
