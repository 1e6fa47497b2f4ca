package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"foodnetwork/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rt := cli.DefaultRuntime()

	// prompts block on stdin, so an interrupt ends the process here
	go func() {
		<-ctx.Done()
		if r, ok := rt.Prompter.(interface{ Restore() error }); ok {
			_ = r.Restore()
		}
		fmt.Fprintln(rt.Out)
		os.Exit(130)
	}()

	os.Exit(cli.Run(ctx, rt, os.Args[1:]))
}
