// File: internal/xlog/xlog.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package xlog is a small leveled logging façade over the standard
// library's log.Logger. It exists so reactorcore's components can depend
// on api.Logger rather than fmt.Printf directly; nothing here is a wire
// format or persisted artifact.

package xlog

import (
	"log"
	"os"

	"github.com/momentics/reactorcore/api"
)

// Level gates which severities are written.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	// LevelSilent discards everything; useful in tests.
	LevelSilent
)

// Logger implements api.Logger atop a single *log.Logger, gated by Level.
type Logger struct {
	out   *log.Logger
	level Level
}

var _ api.Logger = (*Logger)(nil)

// New builds a Logger writing to os.Stderr with a fixed prefix, at the
// given minimum level.
func New(prefix string, level Level) *Logger {
	return &Logger{
		out:   log.New(os.Stderr, prefix, log.LstdFlags|log.Lmicroseconds),
		level: level,
	}
}

// Discard returns a Logger that writes nothing; convenient for tests that
// don't want reactor diagnostics on stderr.
func Discard() *Logger {
	return New("", LevelSilent)
}

func (l *Logger) log(level Level, tag, format string, args ...any) {
	if l == nil || level < l.level {
		return
	}
	l.out.Printf(tag+" "+format, args...)
}

func (l *Logger) Debugf(format string, args ...any) { l.log(LevelDebug, "DEBUG", format, args...) }
func (l *Logger) Infof(format string, args ...any)  { l.log(LevelInfo, "INFO", format, args...) }
func (l *Logger) Warnf(format string, args ...any)  { l.log(LevelWarn, "WARN", format, args...) }
func (l *Logger) Errorf(format string, args ...any) { l.log(LevelError, "ERROR", format, args...) }
