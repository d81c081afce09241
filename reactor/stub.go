//go:build !linux
// +build !linux

// File: reactor/stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Stub EventPoller for platforms without an epoll(7)-equivalent backend
// wired up yet. Every operation reports ErrUnsupportedPlatform so the
// module still builds off Linux; it cannot drive an IoContext there.

package reactor

import "github.com/momentics/reactorcore/api"

// EpollPoller is the stub EventPoller on non-Linux platforms.
type EpollPoller struct{}

// Option configures an EpollPoller at construction; unused on this
// platform, kept so call sites compile unconditionally.
type Option func(*EpollPoller)

// WithEdgeTriggered is a no-op on this platform.
func WithEdgeTriggered() Option { return func(*EpollPoller) {} }

// New always fails on non-Linux platforms.
func New(opts ...Option) (*EpollPoller, error) {
	return nil, ErrUnsupportedPlatform
}

func (p *EpollPoller) Add(fd int, mask api.Mask) error    { return ErrUnsupportedPlatform }
func (p *EpollPoller) Modify(fd int, mask api.Mask) error { return ErrUnsupportedPlatform }
func (p *EpollPoller) Remove(fd int) error                { return ErrUnsupportedPlatform }
func (p *EpollPoller) Wait(out []ReadyEvent, timeoutMs int) (int, error) {
	return 0, ErrUnsupportedPlatform
}
func (p *EpollPoller) Close() error { return nil }
