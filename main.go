package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"distboard/internal/flag"
)

func main() {
	b := time.Now()

	flags := flag.Parse()

	logger := newLogger(flags)
	defer logger.Sync()
	zlog = logger.Sugar()

	if flags.Solve {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := runSolve(ctx, flags, os.Stdout); err != nil {
			zlog.Fatalf("Failed to solve positions: %v", err)
		}
	} else {
		zlog.Debug("input: ", flags.Input)

		if err := runView(flags, os.Stdout); err != nil {
			zlog.Fatalf("Failed to view boards: %v", err)
		}
	}

	zlog.Debugf("🍉🍉 name: %s. Cost: %s.", "app", time.Since(b))
}
