// Copyright (c) 2025
// Author: momentics <momentics@gmail.com>

// Package genseq implements a finite lazy sequence generator, the Go
// realization of spec.md's "generator of finite lazy sequences" library
// leaf (S5). Grounded on original_source/Generator.hpp's pull-model
// iteration (next()/value()/bool()), translated to a closure-driven pull
// iterator rather than a goroutine-backed channel — a channel port would
// leak a goroutine for any Sequence that is constructed but never fully
// drained, which a pure closure cannot do.
package genseq
