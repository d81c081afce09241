// Copyright (c) 2025
// Author: momentics <momentics@gmail.com>

// Package netio provides Acceptor and Socket: thin adapters over an
// ioctx.IoContext. Both own a raw fd, attempt the non-blocking syscall
// first, and on EAGAIN/EWOULDBLOCK suspend via IoContext.AwaitFd — the
// pattern spec.md §4.5 names as "contracts only, not the hard part".
// Grounded on the teacher's transport/tcp/listener.go non-blocking
// listen/accept loop and examples/reactor_echo's raw-fd read/write/close.
package netio
