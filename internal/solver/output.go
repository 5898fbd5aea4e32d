package solver

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"distboard/internal/record"

	"github.com/samber/lo"
)

var ErrNoPath = errors.New("can't build path")

// Dump writes the table in the distance table format: the position count on
// the first line, then one "<white> <black> <dist0> <dist1>" line per
// position.
func (t *Table) Dump(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, t.Len())
	for i, pos := range t.Positions {
		rec := record.Record{
			Player0: uint64(pos.White),
			Player1: uint64(pos.Black),
			Dist0:   int64(t.Dist0[i]),
			Dist1:   int64(t.Dist1[i]),
		}
		if _, err := fmt.Fprintln(bw, rec); err != nil {
			return fmt.Errorf("failed to dump position %d: %w", i, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush dump: %w", err)
	}

	return nil
}

// Unreachable prints the boards of the positions white cannot win from,
// each followed by an empty line.
func (t *Table) Unreachable(w io.Writer) (int, error) {
	unsolved := lo.Filter(t.Positions, func(_ State, i int) bool {
		return t.Dist0[i] == Unsolved
	})

	bw := bufio.NewWriter(w)
	for _, pos := range unsolved {
		fmt.Fprintln(bw, pos)
	}

	if err := bw.Flush(); err != nil {
		return 0, fmt.Errorf("failed to print unreachable positions: %w", err)
	}

	return len(unsolved), nil
}

// Path prints the line of play from start, white to move, until white can
// capture. Each board is followed by an empty line, alternating the position
// before the white move and the one before the black reply. Boards printed
// before an ErrNoPath are still flushed.
func (t *Table) Path(start State, w io.Writer) error {
	bw := bufio.NewWriter(w)
	pathErr := t.writePath(start, bw)

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to print path: %w", err)
	}

	return pathErr
}

func (t *Table) writePath(pos State, w io.Writer) error {
	for {
		fmt.Fprintln(w, pos)

		length, ok := t.dist(t.Dist0, pos)
		if !ok {
			return fmt.Errorf("%w: position %d %d is unsolved", ErrNoPath, pos.White, pos.Black)
		}
		if length == 0 {
			return nil
		}

		next, ok := t.findMove(pos, White, t.Dist1, length)
		if !ok {
			return fmt.Errorf("%w: no white move keeps distance %d", ErrNoPath, length)
		}
		pos = next
		fmt.Fprintln(w, pos)

		next, ok = t.findMove(pos, Black, t.Dist0, length-1)
		if !ok {
			return fmt.Errorf("%w: no black reply reaches distance %d", ErrNoPath, length-1)
		}
		pos = next
	}
}

func (t *Table) findMove(pos State, player int, dists []int, want int) (State, bool) {
	for _, move := range pos.Moves(player) {
		if d, ok := t.dist(dists, move); ok && d == want {
			return move, true
		}
	}
	return State{}, false
}
