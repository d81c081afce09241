// File: reactor/poller.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package reactor

import (
	"github.com/momentics/reactorcore/api"
)

// ReadyEvent is one readiness notification returned by Wait.
type ReadyEvent struct {
	Fd     int
	Events api.Mask
}

// EventPoller translates abstract interest updates to kernel calls and
// drains ready events. Add/Modify/Remove are safe to call concurrently
// with each other and with a concurrent Wait; the underlying facility is
// required to support one concurrent waiter plus concurrent ctl calls.
type EventPoller interface {
	// Add registers fd with the given interest mask. Fails with a
	// PollerError-kind error if fd is already registered.
	Add(fd int, mask api.Mask) error

	// Modify changes the interest mask for an already-registered fd.
	// Fails if fd is not registered.
	Modify(fd int, mask api.Mask) error

	// Remove deregisters fd. Fails if fd is not registered.
	Remove(fd int) error

	// Wait blocks up to timeoutMs milliseconds (negative means infinite)
	// and writes ready events into out, returning how many were written.
	// A return of (0, nil) means the wait timed out with nothing ready.
	// ErrInterrupted signals a transient signal interruption; callers
	// must treat it as "resume the outer loop".
	Wait(out []ReadyEvent, timeoutMs int) (int, error)

	// Close releases the underlying polling handle.
	Close() error
}
