// Copyright (c) 2025
// Author: momentics <momentics@gmail.com>

// Package buffer implements the growable byte buffer external collaborator
// named in spec.md §6: an 8-byte cheap prepend region, a scatter read
// into the buffer's writable tail plus a 64 KiB stack extra, and a
// writeFd that performs one write over the readable slice. The reactor
// core (package ioctx) never imports this package; netio.Socket does.
package buffer
