package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"distboard/internal/flag"
	"distboard/internal/solver"
)

func runSolve(ctx context.Context, flags *flag.Flags, w io.Writer) error {
	ts := time.Now()
	positions := solver.Generate(flags.Pieces)
	zlog.Infof("Generated %d positions with up to %d player0 pieces", len(positions), flags.Pieces)

	tbl, err := solver.Solve(ctx, positions, solver.Options{
		Workers: flags.Workers,
		Logger:  zlog.Desugar(),
	})
	if err != nil {
		return err
	}
	zlog.Infof("🍉 name: %s. Cost: %s.", "solving", time.Since(ts))

	switch {
	case flags.Path:
		start, dist, ok := tbl.Deepest()
		if !ok {
			return errors.New("no position is solved")
		}
		zlog.Infof("Deepest position %d %d, dist0: %d", start.White, start.Black, dist)
		return tbl.Path(start, w)

	case flags.Unreachable:
		n, err := tbl.Unreachable(w)
		if err != nil {
			return err
		}
		zlog.Infof("Unreachable positions: %d", n)
		return nil

	default:
		if err := tbl.Dump(w); err != nil {
			return fmt.Errorf("failed to dump distances: %w", err)
		}
		return nil
	}
}
