// File: httpmsg/serialize.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package httpmsg

import (
	"fmt"
	"strconv"
	"strings"
)

// Serialize renders m back to wire bytes, adding Content-Length if the
// message has a body and one wasn't already set.
func Serialize(m *Message) []byte {
	var sb strings.Builder

	if m.IsRequest {
		fmt.Fprintf(&sb, "%s %s %s\r\n", m.Method, m.Target, m.Version)
	} else {
		fmt.Fprintf(&sb, "%s %d %s\r\n", m.Version, m.StatusCode, m.Reason)
	}

	wroteLength := false
	for i, name := range m.Header.names {
		fmt.Fprintf(&sb, "%s: %s\r\n", name, m.Header.values[i])
		if strings.EqualFold(name, "Content-Length") {
			wroteLength = true
		}
	}
	if !wroteLength && len(m.Body) > 0 {
		fmt.Fprintf(&sb, "Content-Length: %s\r\n", strconv.Itoa(len(m.Body)))
	}
	sb.WriteString("\r\n")

	out := []byte(sb.String())
	out = append(out, m.Body...)
	return out
}
