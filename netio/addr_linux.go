//go:build linux
// +build linux

// File: netio/addr_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package netio

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"
)

// resolveIPv4 parses a "host:port" address into an IPv4 sockaddr.
// spec.md §6: "IPv4 address+port... No IPv6, no Unix sockets."
func resolveIPv4(addr string) (*unix.SockaddrInet4, error) {
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return nil, fmt.Errorf("netio: bad address %q: %w", addr, err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("netio: bad port in %q: %w", addr, err)
	}

	var ip net.IP
	if host == "" || host == "0.0.0.0" {
		ip = net.IPv4zero
	} else {
		resolved := net.ParseIP(host)
		if resolved == nil {
			// Best-effort resolution for hostnames like "localhost";
			// spec.md explicitly excludes DNS as a reactor concern, so
			// this uses the standard resolver rather than anything
			// readiness-driven.
			ips, lookupErr := net.LookupIP(host)
			if lookupErr != nil || len(ips) == 0 {
				return nil, fmt.Errorf("netio: cannot resolve host %q", host)
			}
			resolved = ips[0]
		}
		ip = resolved
	}
	v4 := ip.To4()
	if v4 == nil {
		return nil, fmt.Errorf("netio: %q is not an IPv4 address", host)
	}
	if strings.Contains(addr, "[") {
		return nil, fmt.Errorf("netio: IPv6 literals are not supported")
	}

	sa := &unix.SockaddrInet4{Port: port}
	copy(sa.Addr[:], v4)
	return sa, nil
}
