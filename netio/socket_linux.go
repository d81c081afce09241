//go:build linux
// +build linux

// File: netio/socket_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package netio

import (
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/momentics/reactorcore/api"
	"github.com/momentics/reactorcore/buffer"
	"github.com/momentics/reactorcore/ioctx"
	"github.com/momentics/reactorcore/rterr"
	"github.com/momentics/reactorcore/task"
)

// Socket is a non-blocking connected TCP fd registered with an IoContext.
// The constructor registers the fd at interest mask 0; Close removes it.
type Socket struct {
	fd  int
	ctx *ioctx.IoContext
}

func newSocket(ctx *ioctx.IoContext, fd int) (*Socket, error) {
	if err := ctx.AddFd(fd, 0); err != nil {
		unix.Close(fd)
		return nil, err
	}
	return &Socket{fd: fd, ctx: ctx}, nil
}

// Dial opens a non-blocking connection to addr, suspending on write-
// readiness while the connect is in flight (EINPROGRESS), then checking
// SO_ERROR to see whether it actually succeeded.
func Dial(ctx *ioctx.IoContext, tc *task.Context, addr string) (*Socket, error) {
	sa, err := resolveIPv4(addr)
	if err != nil {
		return nil, err
	}
	fd, err := unix.Socket(unix.AF_INET, unix.SOCK_STREAM|unix.SOCK_NONBLOCK|unix.SOCK_CLOEXEC, 0)
	if err != nil {
		return nil, rterr.Wrap(rterr.IoError, "socket", err)
	}

	err = unix.Connect(fd, sa)
	if err != nil && err != unix.EINPROGRESS {
		unix.Close(fd)
		return nil, rterr.Wrap(rterr.IoError, "connect", err)
	}
	if err == unix.EINPROGRESS {
		if err := ctx.AddFd(fd, 0); err != nil {
			unix.Close(fd)
			return nil, err
		}
		if _, err := ctx.AwaitFd(tc, fd, api.Write); err != nil {
			ctx.RemoveFd(fd)
			unix.Close(fd)
			return nil, err
		}
		soErr, gerr := unix.GetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_ERROR)
		if gerr != nil {
			ctx.RemoveFd(fd)
			unix.Close(fd)
			return nil, rterr.Wrap(rterr.IoError, "getsockopt(SO_ERROR)", gerr)
		}
		if soErr != 0 {
			ctx.RemoveFd(fd)
			unix.Close(fd)
			return nil, rterr.Wrap(rterr.IoError, "connect", unix.Errno(soErr))
		}
		return &Socket{fd: fd, ctx: ctx}, nil
	}
	return newSocket(ctx, fd)
}

// Fd returns the raw connected file descriptor.
func (s *Socket) Fd() int { return s.fd }

// AsyncRead reads into buf, suspending on read-readiness whenever the
// non-blocking read would otherwise return EAGAIN. It returns the byte
// count (0 meaning EOF, matching spec.md §4.5).
func (s *Socket) AsyncRead(tc *task.Context, buf *buffer.ByteBuffer) (int, error) {
	for {
		var errno int
		n, err := buf.ReadFd(s.fd, &errno)
		if err != nil {
			return 0, rterr.Wrap(rterr.IoError, fmt.Sprintf("read(fd=%d)", s.fd), err)
		}
		if n >= 0 {
			return n, nil
		}
		mask := s.ctx.GetEvents(s.fd) | api.Read
		if _, err := s.ctx.AwaitFd(tc, s.fd, mask); err != nil {
			return 0, err
		}
	}
}

// AsyncWrite writes every readable byte in buf, suspending on write-
// readiness as needed. It short-circuits immediately if buf has nothing
// readable.
func (s *Socket) AsyncWrite(tc *task.Context, buf *buffer.ByteBuffer) (int, error) {
	if buf.ReadableBytes() == 0 {
		return 0, nil
	}
	total := 0
	for buf.ReadableBytes() > 0 {
		var errno int
		n, err := buf.WriteFd(s.fd, &errno)
		if err != nil {
			return total, rterr.Wrap(rterr.IoError, fmt.Sprintf("write(fd=%d)", s.fd), err)
		}
		if n < 0 {
			mask := s.ctx.GetEvents(s.fd) | api.Write
			if _, err := s.ctx.AwaitFd(tc, s.fd, mask); err != nil {
				return total, err
			}
			continue
		}
		total += n
	}
	return total, nil
}

// Close deregisters and closes the connection.
func (s *Socket) Close() error {
	_ = s.ctx.RemoveFd(s.fd)
	return unix.Close(s.fd)
}
