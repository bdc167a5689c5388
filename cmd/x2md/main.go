package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"x-to-markdown/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.Execute(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, "x2md:", err)
		os.Exit(1)
	}
}
