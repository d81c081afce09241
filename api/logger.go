// File: api/logger.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Logging façade contract. Components take a Logger by injection instead
// of writing to stdout directly.

package api

// Logger is a leveled, format-string logging façade.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}
