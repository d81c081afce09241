//go:build linux
// +build linux

// File: netio/echo_linux_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package netio_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/momentics/reactorcore/buffer"
	"github.com/momentics/reactorcore/ioctx"
	"github.com/momentics/reactorcore/netio"
	"github.com/momentics/reactorcore/pool"
	"github.com/momentics/reactorcore/reactor"
	"github.com/momentics/reactorcore/task"
)

// newHarness wires a fresh reactor + pool + IoContext, the way
// cmd/echosrv does, and returns it along with a teardown func.
func newHarness(t *testing.T) (*ioctx.IoContext, func()) {
	t.Helper()
	p, err := reactor.New()
	require.NoError(t, err)

	wp := pool.New(pool.WithWorkers(4))
	ic, err := ioctx.New(wp, p)
	require.NoError(t, err)

	go ic.Run()
	return ic, func() {
		ic.Stop()
		ic.Close()
	}
}

// TestEcho_RoundTrip drives scenario S1: a single client connects, writes
// a line, and the server echoes it back byte for byte.
func TestEcho_RoundTrip(t *testing.T) {
	ic, teardown := newHarness(t)
	defer teardown()

	acc, err := netio.Listen(ic, "127.0.0.1:0")
	require.NoError(t, err)
	defer acc.Close()

	addr, err := acc.Addr()
	require.NoError(t, err)

	serverDone := make(chan error, 1)
	srv := task.New(func(tc *task.Context) (struct{}, error) {
		sock, err := acc.AsyncAccept(tc)
		if err != nil {
			serverDone <- err
			return struct{}{}, err
		}
		defer sock.Close()

		buf := buffer.New()
		n, err := sock.AsyncRead(tc, buf)
		if err != nil {
			serverDone <- err
			return struct{}{}, err
		}
		if n == 0 {
			serverDone <- fmt.Errorf("unexpected EOF before any bytes")
			return struct{}{}, nil
		}
		if _, err := sock.AsyncWrite(tc, buf); err != nil {
			serverDone <- err
			return struct{}{}, err
		}
		serverDone <- nil
		return struct{}{}, nil
	})
	ioctx.Spawn(ic, srv)

	clientDone := make(chan string, 1)
	clientErr := make(chan error, 1)
	cli := task.New(func(tc *task.Context) (struct{}, error) {
		conn, err := netio.Dial(ic, tc, addr)
		if err != nil {
			clientErr <- err
			return struct{}{}, err
		}
		defer conn.Close()

		out := buffer.New()
		out.Append([]byte("hello reactor\n"))
		if _, err := conn.AsyncWrite(tc, out); err != nil {
			clientErr <- err
			return struct{}{}, err
		}

		in := buffer.New()
		if _, err := conn.AsyncRead(tc, in); err != nil {
			clientErr <- err
			return struct{}{}, err
		}
		clientDone <- in.RetrieveAllString()
		return struct{}{}, nil
	})
	ioctx.Spawn(ic, cli)

	select {
	case got := <-clientDone:
		require.Equal(t, "hello reactor\n", got)
	case err := <-clientErr:
		t.Fatalf("client failed: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for echo round-trip")
	}

	require.NoError(t, <-serverDone)
}

// TestEcho_ConcurrentClients drives scenario S2: N clients dial
// concurrently, each gets its own line echoed back correctly.
func TestEcho_ConcurrentClients(t *testing.T) {
	const clients = 8

	ic, teardown := newHarness(t)
	defer teardown()

	acc, err := netio.Listen(ic, "127.0.0.1:0")
	require.NoError(t, err)
	defer acc.Close()

	addr, err := acc.Addr()
	require.NoError(t, err)

	// One accept loop serves every client: the IoContext keeps a single
	// waiter per fd, so concurrent AsyncAccept calls on the same listener
	// would overwrite each other's waiter.
	srv := task.New(func(tc *task.Context) (struct{}, error) {
		for i := 0; i < clients; i++ {
			sock, err := acc.AsyncAccept(tc)
			if err != nil {
				return struct{}{}, err
			}
			conn := task.New(func(tc *task.Context) (struct{}, error) {
				defer sock.Close()
				buf := buffer.New()
				if _, err := sock.AsyncRead(tc, buf); err != nil {
					return struct{}{}, err
				}
				_, err := sock.AsyncWrite(tc, buf)
				return struct{}{}, err
			})
			ioctx.Spawn(ic, conn)
		}
		return struct{}{}, nil
	})
	ioctx.Spawn(ic, srv)

	results := make(chan string, clients)
	errs := make(chan error, clients)
	for i := 0; i < clients; i++ {
		i := i
		cli := task.New(func(tc *task.Context) (struct{}, error) {
			conn, err := netio.Dial(ic, tc, addr)
			if err != nil {
				errs <- err
				return struct{}{}, err
			}
			defer conn.Close()
			msg := fmt.Sprintf("client-%d\n", i)
			out := buffer.New()
			out.Append([]byte(msg))
			if _, err := conn.AsyncWrite(tc, out); err != nil {
				errs <- err
				return struct{}{}, err
			}
			in := buffer.New()
			if _, err := conn.AsyncRead(tc, in); err != nil {
				errs <- err
				return struct{}{}, err
			}
			results <- in.RetrieveAllString()
			return struct{}{}, nil
		})
		ioctx.Spawn(ic, cli)
	}

	seen := make(map[string]bool, clients)
	for i := 0; i < clients; i++ {
		select {
		case got := <-results:
			require.False(t, seen[got], "duplicate echo: %q", got)
			seen[got] = true
		case err := <-errs:
			t.Fatalf("client failed: %v", err)
		case <-time.After(5 * time.Second):
			t.Fatalf("timed out after %d/%d clients", len(seen), clients)
		}
	}
	require.Len(t, seen, clients)
}
