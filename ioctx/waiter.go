// File: ioctx/waiter.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ioctx

import "github.com/momentics/reactorcore/api"

// waiter is the Go realization of spec.md's Waiter: a resumable handle
// (here, a closure) plus the interest mask it requested. At most one
// waiter is stored per fd in the WaiterTable at any instant.
type waiter struct {
	// resume is invoked with the raw ready-events mask the poller
	// reported. It must already be wrapped to run on a worker (see
	// IoContext.Run's dispatch loop) — waiter itself does not submit.
	resume func(ready api.Mask)
	mask   api.Mask
}
