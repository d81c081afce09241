// File: reactor/errors.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package reactor

import (
	"fmt"

	"github.com/momentics/reactorcore/rterr"
)

// ErrInterrupted is returned by Wait when the underlying syscall was
// interrupted by a signal (EINTR). Callers resume the outer loop.
var ErrInterrupted = rterr.Wrap(rterr.Interrupted, "poller.Wait", nil)

// ErrUnsupportedPlatform is returned by every operation on platforms
// without an EventPoller backend.
var ErrUnsupportedPlatform = rterr.Wrap(rterr.PollerError, "poller", fmt.Errorf("platform not supported"))

func errAlreadyRegistered(fd int) error {
	return rterr.Wrap(rterr.PollerError, fmt.Sprintf("poller.Add(fd=%d)", fd), fmt.Errorf("fd already registered"))
}

func errNotRegistered(op string, fd int) error {
	return rterr.Wrap(rterr.PollerError, fmt.Sprintf("%s(fd=%d)", op, fd), fmt.Errorf("fd not registered"))
}
