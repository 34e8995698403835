package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), shutdownSignals...)

	if err := execute(ctx, os.Args[1:]); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	stop()
}

func execute(ctx context.Context, args []string) error {
	args, err := normalizeArgs(args)
	if err != nil {
		return err
	}

	cmd := newRootCmd()
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}
