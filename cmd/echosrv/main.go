// Copyright (c) 2025
// Author: momentics <momentics@gmail.com>

// Command echosrv listens on a TCP address and echoes back every line a
// client sends, one connection per SuspendingTask. Grounded on
// examples/reactor_echo/main.go's listen-then-loop shape, rewritten
// against ioctx/netio instead of the teacher's raw callback reactor.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/momentics/reactorcore/buffer"
	"github.com/momentics/reactorcore/internal/xlog"
	"github.com/momentics/reactorcore/ioctx"
	"github.com/momentics/reactorcore/netio"
	"github.com/momentics/reactorcore/pool"
	"github.com/momentics/reactorcore/reactor"
	"github.com/momentics/reactorcore/task"
)

func main() {
	addr := flag.String("addr", "127.0.0.1:9002", "address to listen on")
	workers := flag.Int("workers", 4, "worker pool size")
	flag.Parse()

	log := xlog.New("[echosrv] ", xlog.LevelInfo)

	poller, err := reactor.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "reactor.New: %v\n", err)
		os.Exit(1)
	}
	wp := pool.New(pool.WithWorkers(*workers), pool.WithLogger(log))
	ic, err := ioctx.New(wp, poller, ioctx.WithLogger(log))
	if err != nil {
		fmt.Fprintf(os.Stderr, "ioctx.New: %v\n", err)
		os.Exit(1)
	}

	acc, err := netio.Listen(ic, *addr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "netio.Listen: %v\n", err)
		os.Exit(1)
	}
	log.Infof("listening on %s", *addr)

	acceptLoop := task.New(func(tc *task.Context) (struct{}, error) {
		for {
			sock, err := acc.AsyncAccept(tc)
			if err != nil {
				log.Errorf("accept: %v", err)
				return struct{}{}, err
			}
			conn := task.New(func(tc *task.Context) (struct{}, error) {
				return struct{}{}, serveConn(tc, sock, log)
			})
			ioctx.Spawn(ic, conn)
		}
	})
	ioctx.Spawn(ic, acceptLoop)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		log.Infof("shutting down")
		ic.Stop()
	}()

	ic.Run()
	acc.Close()
	ic.Close()
}

func serveConn(tc *task.Context, sock *netio.Socket, log *xlog.Logger) error {
	defer sock.Close()
	for {
		buf := buffer.New()
		n, err := sock.AsyncRead(tc, buf)
		if err != nil {
			return err
		}
		if n == 0 {
			log.Infof("fd=%d closed by peer", sock.Fd())
			return nil
		}
		if _, err := sock.AsyncWrite(tc, buf); err != nil {
			return err
		}
	}
}
