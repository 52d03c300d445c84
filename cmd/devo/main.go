package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/andyle182810/devohub/internal/cli"
)

const exitInterrupted = 130

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := cli.New(os.Stdout, os.Stderr).RootCommand().ExecuteContext(ctx)

	cancel()

	if err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(exitInterrupted)
		}

		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
