//go:build linux
// +build linux

// File: netio/acceptor_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package netio

import (
	"fmt"
	"net"
	"strconv"

	"golang.org/x/sys/unix"

	"github.com/momentics/reactorcore/api"
	"github.com/momentics/reactorcore/ioctx"
	"github.com/momentics/reactorcore/rterr"
	"github.com/momentics/reactorcore/task"
)

// Acceptor is a non-blocking IPv4 TCP listening socket registered with an
// IoContext. spec.md §6: SO_REUSEADDR, O_NONBLOCK, listen backlog =
// system max.
type Acceptor struct {
	fd  int
	ctx *ioctx.IoContext
}

// Listen binds and listens on addr ("host:port") and registers the
// listening fd with ctx at interest mask 0 (registered, no pending
// events — the same convention as Socket's constructor).
func Listen(ctx *ioctx.IoContext, addr string) (*Acceptor, error) {
	sa, err := resolveIPv4(addr)
	if err != nil {
		return nil, err
	}

	fd, err := unix.Socket(unix.AF_INET, unix.SOCK_STREAM|unix.SOCK_NONBLOCK|unix.SOCK_CLOEXEC, 0)
	if err != nil {
		return nil, rterr.Wrap(rterr.IoError, "socket", err)
	}
	if err := unix.SetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_REUSEADDR, 1); err != nil {
		unix.Close(fd)
		return nil, rterr.Wrap(rterr.IoError, "setsockopt(SO_REUSEADDR)", err)
	}
	if err := unix.Bind(fd, sa); err != nil {
		unix.Close(fd)
		return nil, rterr.Wrap(rterr.IoError, "bind", err)
	}
	if err := unix.Listen(fd, unix.SOMAXCONN); err != nil {
		unix.Close(fd)
		return nil, rterr.Wrap(rterr.IoError, "listen", err)
	}
	if err := ctx.AddFd(fd, 0); err != nil {
		unix.Close(fd)
		return nil, err
	}
	return &Acceptor{fd: fd, ctx: ctx}, nil
}

// Fd returns the raw listening file descriptor.
func (a *Acceptor) Fd() int { return a.fd }

// Addr returns the "host:port" the listening socket is actually bound to,
// resolving the ephemeral port assigned when Listen was called with port
// 0 — used by tests and by callers that bind to an OS-chosen port.
func (a *Acceptor) Addr() (string, error) {
	sa, err := unix.Getsockname(a.fd)
	if err != nil {
		return "", rterr.Wrap(rterr.IoError, "getsockname", err)
	}
	sa4, ok := sa.(*unix.SockaddrInet4)
	if !ok {
		return "", rterr.Wrap(rterr.IoError, "getsockname", fmt.Errorf("unexpected sockaddr type %T", sa))
	}
	ip := net.IP(sa4.Addr[:])
	return net.JoinHostPort(ip.String(), strconv.Itoa(sa4.Port)), nil
}

// AsyncAccept loops: attempt a non-blocking accept4; on EAGAIN, suspend
// on read-readiness and retry; any other errno is an IoError.
func (a *Acceptor) AsyncAccept(tc *task.Context) (*Socket, error) {
	for {
		nfd, _, err := unix.Accept4(a.fd, unix.SOCK_NONBLOCK|unix.SOCK_CLOEXEC)
		if err == nil {
			return newSocket(a.ctx, nfd)
		}
		if err == unix.EAGAIN || err == unix.EWOULDBLOCK {
			if _, err := a.ctx.AwaitFd(tc, a.fd, api.Read); err != nil {
				return nil, err
			}
			continue
		}
		return nil, rterr.Wrap(rterr.IoError, fmt.Sprintf("accept(fd=%d)", a.fd), err)
	}
}

// Close deregisters and closes the listening fd.
func (a *Acceptor) Close() error {
	_ = a.ctx.RemoveFd(a.fd)
	return unix.Close(a.fd)
}
