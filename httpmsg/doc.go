// Copyright (c) 2025
// Author: momentics <momentics@gmail.com>

// Package httpmsg implements a hand-rolled HTTP/1 request/response
// parser and serializer, spec.md's HTTP/1 message library leaf. Grounded
// on transport/tcp/listener.go's bufio.Reader request-line/header scan
// loop (ReadString('\n') until a blank line), generalized to also
// recognize responses and to serialize a message back to wire bytes.
// net/http is available in the corpus but is not used here: the spec
// calls out the parser as a component to build, not a dependency to
// wrap.
package httpmsg
