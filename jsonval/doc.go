// Copyright (c) 2025
// Author: momentics <momentics@gmail.com>

// Package jsonval implements a JSON value model and a hand-rolled
// recursive-descent parser and serializer — spec.md's library-leaf
// component exercised by S6 (round-trip). Deliberately does not use
// encoding/json: the spec calls out the parser as a component to build,
// matching the rest of the pack's convention for wire-format leaves
// (manual scanning, not a stdlib/third-party call).
package jsonval
