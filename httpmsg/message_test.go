// File: httpmsg/message_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package httpmsg

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse_RequestWithBody(t *testing.T) {
	raw := "POST /echo HTTP/1.1\r\nHost: localhost\r\nContent-Length: 5\r\n\r\nhello"
	msg, err := Parse(bytes.NewBufferString(raw))
	require.NoError(t, err)
	require.True(t, msg.IsRequest)
	require.Equal(t, "POST", msg.Method)
	require.Equal(t, "/echo", msg.Target)
	require.Equal(t, "localhost", msg.Header.Get("Host"))
	require.Equal(t, []byte("hello"), msg.Body)
}

func TestParse_ResponseNoBody(t *testing.T) {
	raw := "HTTP/1.1 204 No Content\r\nX-Trace: abc\r\n\r\n"
	msg, err := Parse(bytes.NewBufferString(raw))
	require.NoError(t, err)
	require.False(t, msg.IsRequest)
	require.Equal(t, 204, msg.StatusCode)
	require.Equal(t, "No Content", msg.Reason)
	require.Equal(t, "abc", msg.Header.Get("X-Trace"))
	require.Empty(t, msg.Body)
}

func TestSerialize_RoundTrip(t *testing.T) {
	msg := NewRequest("GET", "/status")
	msg.Header.Set("Host", "example.com")

	wire := Serialize(msg)
	parsed, err := Parse(bytes.NewReader(wire))
	require.NoError(t, err)
	require.Equal(t, "GET", parsed.Method)
	require.Equal(t, "/status", parsed.Target)
	require.Equal(t, "example.com", parsed.Header.Get("Host"))
}

func TestSerialize_AddsContentLength(t *testing.T) {
	msg := NewResponse(200, "OK")
	msg.Body = []byte("payload")

	wire := Serialize(msg)
	parsed, err := Parse(bytes.NewReader(wire))
	require.NoError(t, err)
	require.Equal(t, "7", parsed.Header.Get("Content-Length"))
	require.Equal(t, []byte("payload"), parsed.Body)
}
