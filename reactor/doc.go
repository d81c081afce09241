// Copyright (c) 2025
// Author: momentics <momentics@gmail.com>

// Package reactor provides the EventPoller: a thin wrapper over an
// edge/level-triggered readiness facility. It owns a polling handle and
// exposes add/modify/remove of interest on a file descriptor, plus a
// blocking wait that returns up to K ready events. Linux is backed by
// epoll(7); other platforms get a stub that reports ErrUnsupportedPlatform.
package reactor
