// Copyright (c) 2025
// Author: momentics <momentics@gmail.com>

// Command echoclient dials an echo server, writes a line, prints what
// comes back, and exits. Grounded on the same reactor_echo example as
// echosrv, providing the client half of the S1/S2 exercise scenarios.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/momentics/reactorcore/buffer"
	"github.com/momentics/reactorcore/internal/xlog"
	"github.com/momentics/reactorcore/ioctx"
	"github.com/momentics/reactorcore/netio"
	"github.com/momentics/reactorcore/pool"
	"github.com/momentics/reactorcore/reactor"
	"github.com/momentics/reactorcore/task"
)

func main() {
	addr := flag.String("addr", "127.0.0.1:9002", "address to dial")
	message := flag.String("message", "hello reactor\n", "line to send")
	flag.Parse()

	log := xlog.New("[echoclient] ", xlog.LevelInfo)

	poller, err := reactor.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "reactor.New: %v\n", err)
		os.Exit(1)
	}
	wp := pool.New(pool.WithWorkers(1), pool.WithLogger(log))
	ic, err := ioctx.New(wp, poller, ioctx.WithLogger(log))
	if err != nil {
		fmt.Fprintf(os.Stderr, "ioctx.New: %v\n", err)
		os.Exit(1)
	}

	result := make(chan string, 1)
	failure := make(chan error, 1)

	client := task.New(func(tc *task.Context) (struct{}, error) {
		conn, err := netio.Dial(ic, tc, *addr)
		if err != nil {
			failure <- err
			return struct{}{}, err
		}
		defer conn.Close()

		out := buffer.New()
		out.Append([]byte(*message))
		if _, err := conn.AsyncWrite(tc, out); err != nil {
			failure <- err
			return struct{}{}, err
		}

		in := buffer.New()
		if _, err := conn.AsyncRead(tc, in); err != nil {
			failure <- err
			return struct{}{}, err
		}
		result <- in.RetrieveAllString()
		ic.Stop()
		return struct{}{}, nil
	})
	ioctx.Spawn(ic, client)

	go ic.Run()

	select {
	case got := <-result:
		fmt.Print(got)
	case err := <-failure:
		fmt.Fprintf(os.Stderr, "echoclient: %v\n", err)
		os.Exit(1)
	}
	ic.Close()
}
