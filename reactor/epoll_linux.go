//go:build linux
// +build linux

// File: reactor/epoll_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linux epoll(7) implementation of EventPoller.

package reactor

import (
	"fmt"
	"sync"

	"golang.org/x/sys/unix"

	"github.com/momentics/reactorcore/api"
)

// EpollPoller implements EventPoller over Linux epoll.
type EpollPoller struct {
	epfd int

	mu       sync.Mutex
	edge     bool
	registry map[int]api.Mask
}

// Option configures an EpollPoller at construction.
type Option func(*EpollPoller)

// WithEdgeTriggered selects edge-triggered (EPOLLET) notification instead
// of the default level-triggered mode. IoContext.Run works correctly
// either way because a waiter always re-tries its syscall and re-suspends
// on EAGAIN (spec.md §4.4); edge-triggered only changes how many wakeups a
// sustained-readiness fd produces.
func WithEdgeTriggered() Option {
	return func(p *EpollPoller) { p.edge = true }
}

// New constructs an EpollPoller.
func New(opts ...Option) (*EpollPoller, error) {
	epfd, err := unix.EpollCreate1(unix.EPOLL_CLOEXEC)
	if err != nil {
		return nil, fmt.Errorf("epoll_create1: %w", err)
	}
	p := &EpollPoller{epfd: epfd, registry: make(map[int]api.Mask)}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

func toEpollEvents(m api.Mask, edge bool) uint32 {
	var ev uint32
	if m.Has(api.Read) {
		ev |= unix.EPOLLIN
	}
	if m.Has(api.Write) {
		ev |= unix.EPOLLOUT
	}
	if edge {
		ev |= unix.EPOLLET
	}
	return ev
}

func fromEpollEvents(ev uint32) api.Mask {
	var m api.Mask
	if ev&unix.EPOLLIN != 0 {
		m |= api.Read
	}
	if ev&unix.EPOLLOUT != 0 {
		m |= api.Write
	}
	if ev&(unix.EPOLLHUP|unix.EPOLLRDHUP) != 0 {
		m |= api.Hangup
	}
	if ev&unix.EPOLLERR != 0 {
		m |= api.Error
	}
	return m
}

func (p *EpollPoller) Add(fd int, mask api.Mask) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.registry[fd]; ok {
		return errAlreadyRegistered(fd)
	}
	ev := &unix.EpollEvent{Events: toEpollEvents(mask, p.edge), Fd: int32(fd)}
	if err := unix.EpollCtl(p.epfd, unix.EPOLL_CTL_ADD, fd, ev); err != nil {
		return fmt.Errorf("epoll_ctl(ADD, fd=%d): %w", fd, err)
	}
	p.registry[fd] = mask
	return nil
}

func (p *EpollPoller) Modify(fd int, mask api.Mask) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.registry[fd]; !ok {
		return errNotRegistered("poller.Modify", fd)
	}
	ev := &unix.EpollEvent{Events: toEpollEvents(mask, p.edge), Fd: int32(fd)}
	if err := unix.EpollCtl(p.epfd, unix.EPOLL_CTL_MOD, fd, ev); err != nil {
		return fmt.Errorf("epoll_ctl(MOD, fd=%d): %w", fd, err)
	}
	p.registry[fd] = mask
	return nil
}

func (p *EpollPoller) Remove(fd int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.registry[fd]; !ok {
		return errNotRegistered("poller.Remove", fd)
	}
	if err := unix.EpollCtl(p.epfd, unix.EPOLL_CTL_DEL, fd, nil); err != nil {
		return fmt.Errorf("epoll_ctl(DEL, fd=%d): %w", fd, err)
	}
	delete(p.registry, fd)
	return nil
}

func (p *EpollPoller) Wait(out []ReadyEvent, timeoutMs int) (int, error) {
	raw := make([]unix.EpollEvent, len(out))
	n, err := unix.EpollWait(p.epfd, raw, timeoutMs)
	if err != nil {
		if err == unix.EINTR {
			return -1, ErrInterrupted
		}
		return 0, fmt.Errorf("epoll_wait: %w", err)
	}
	for i := 0; i < n; i++ {
		out[i] = ReadyEvent{Fd: int(raw[i].Fd), Events: fromEpollEvents(raw[i].Events)}
	}
	return n, nil
}

func (p *EpollPoller) Close() error {
	return unix.Close(p.epfd)
}
