//go:build !linux
// +build !linux

// File: netio/stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package netio

import (
	"errors"

	"github.com/momentics/reactorcore/buffer"
	"github.com/momentics/reactorcore/ioctx"
	"github.com/momentics/reactorcore/task"
)

var errUnsupportedPlatform = errors.New("netio: unsupported platform")

// Acceptor is a non-functional stand-in on platforms other than Linux.
type Acceptor struct{}

// Listen always fails off Linux — epoll-backed reactors are Linux-only
// per spec.md §1's stated scope.
func Listen(ctx *ioctx.IoContext, addr string) (*Acceptor, error) {
	return nil, errUnsupportedPlatform
}

func (a *Acceptor) Fd() int { return -1 }

func (a *Acceptor) Addr() (string, error) { return "", errUnsupportedPlatform }

func (a *Acceptor) AsyncAccept(tc *task.Context) (*Socket, error) {
	return nil, errUnsupportedPlatform
}

func (a *Acceptor) Close() error { return errUnsupportedPlatform }

// Socket is a non-functional stand-in on platforms other than Linux.
type Socket struct{}

func Dial(ctx *ioctx.IoContext, tc *task.Context, addr string) (*Socket, error) {
	return nil, errUnsupportedPlatform
}

func (s *Socket) Fd() int { return -1 }

func (s *Socket) AsyncRead(tc *task.Context, buf *buffer.ByteBuffer) (int, error) {
	return 0, errUnsupportedPlatform
}

func (s *Socket) AsyncWrite(tc *task.Context, buf *buffer.ByteBuffer) (int, error) {
	return 0, errUnsupportedPlatform
}

func (s *Socket) Close() error { return errUnsupportedPlatform }
