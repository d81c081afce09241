// File: pool/errors.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import "errors"

// ErrClosed is returned by Submit once Stop or StopHard has been called.
var ErrClosed = errors.New("pool: closed")
