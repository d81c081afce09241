//go:build linux
// +build linux

// File: reactor/epoll_linux_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package reactor

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/momentics/reactorcore/api"
)

func TestEpollPoller_PipeReadiness(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	p, err := New()
	require.NoError(t, err)
	defer p.Close()

	rfd := int(r.Fd())
	require.NoError(t, p.Add(rfd, api.Read))

	// Not readable yet.
	events := make([]ReadyEvent, 8)
	n, err := p.Wait(events, 50)
	require.NoError(t, err)
	require.Equal(t, 0, n)

	_, err = w.Write([]byte("x"))
	require.NoError(t, err)

	n, err = p.Wait(events, 1000)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, rfd, events[0].Fd)
	require.True(t, events[0].Events.Has(api.Read))

	require.NoError(t, p.Remove(rfd))
}

func TestEpollPoller_DuplicateAddFails(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	p, err := New()
	require.NoError(t, err)
	defer p.Close()

	fd := int(r.Fd())
	require.NoError(t, p.Add(fd, api.Read))
	require.Error(t, p.Add(fd, api.Read))
	require.Error(t, p.Modify(fd+999999, api.Write))
	require.NoError(t, p.Remove(fd))
	require.Error(t, p.Remove(fd))
}
