package main

import (
	"fmt"
	"io"
	"time"

	"distboard/internal/board"
	"distboard/internal/flag"
	"distboard/internal/record"

	"github.com/samber/lo"
)

const (
	selectDist0  = record.Unsolved
	selectWhites = 4
)

// selectBoard renders the record when white to move has no distance and
// the board holds exactly four white pieces.
func selectBoard(rec record.Record) (string, bool) {
	if rec.Dist0 != selectDist0 {
		return "", false
	}

	field := board.Render(rec.Player0, rec.Player1)
	if lo.Count([]byte(field), board.White.Byte()) != selectWhites {
		return "", false
	}

	return field, true
}

func view(r *record.Reader, w io.Writer) (int, error) {
	var printed int
	for r.Next() {
		field, ok := selectBoard(r.Record())
		if !ok {
			continue
		}

		if _, err := fmt.Fprintln(w, field); err != nil {
			return printed, fmt.Errorf("failed to print board of line %d: %w", r.Line(), err)
		}
		printed++
	}

	if err := r.Err(); err != nil {
		return printed, fmt.Errorf("failed to read records: %w", err)
	}

	return printed, nil
}

func runView(flags *flag.Flags, w io.Writer) error {
	ts := time.Now()

	r, err := record.Open(flags.Input)
	if err != nil {
		return err
	}
	defer r.Close()

	printed, err := view(r, w)
	if err != nil {
		return err
	}

	zlog.Debugf("🍉 name: %s. lines: %d, skipped: %d, printed: %d. Cost: %s.",
		flags.Input, r.Line(), r.Skipped(), printed, time.Since(ts))

	return nil
}
