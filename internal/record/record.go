package record

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

const (
	fieldCount = 4

	// Unsolved marks a side without a computed distance.
	Unsolved = -1
)

var fieldNames = [fieldCount]string{"player0", "player1", "dist0", "dist1"}

type Record struct {
	Player0 uint64
	Player1 uint64
	Dist0   int64
	Dist1   int64
}

func (r Record) String() string {
	return fmt.Sprintf("%d %d %d %d", r.Player0, r.Player1, r.Dist0, r.Dist1)
}

type ParseError struct {
	Line  int
	Field string
	Text  string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: invalid %s %q: %v", e.Line, e.Field, e.Text, e.Err)
	}
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

var (
	two64      = new(big.Int).Lsh(big.NewInt(1), 64)
	minInt64   = big.NewInt(math.MinInt64)
	maxInt64   = big.NewInt(math.MaxInt64)
	errInteger = fmt.Errorf("not a base-10 integer: %w", strconv.ErrSyntax)
)

// parseMask keeps the low 64 bits of the two's complement value, which is
// what repeated floor division by two would observe for any integer.
func parseMask(s string) (uint64, error) {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return 0, errInteger
	}

	return n.Mod(n, two64).Uint64(), nil
}

// parseDist saturates values outside the int64 range. Only the Unsolved
// sentinel is ever compared, and saturation never produces it.
func parseDist(s string) (int64, error) {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return 0, errInteger
	}

	switch {
	case n.Cmp(minInt64) < 0:
		return math.MinInt64, nil
	case n.Cmp(maxInt64) > 0:
		return math.MaxInt64, nil
	}
	return n.Int64(), nil
}

// ParseLine parses a single line without its trailing newline. It returns
// ok == false when the line does not have exactly four fields.
func ParseLine(line string) (Record, bool, error) {
	cols := strings.Split(line, " ")
	if len(cols) != fieldCount {
		return Record{}, false, nil
	}

	for i := range cols {
		cols[i] = strings.TrimSpace(cols[i])
	}

	var (
		rec Record
		err error
	)
	masks := [...]*uint64{&rec.Player0, &rec.Player1}
	for i, p := range masks {
		if *p, err = parseMask(cols[i]); err != nil {
			return Record{}, true, &ParseError{Field: fieldNames[i], Text: cols[i], Err: err}
		}
	}

	dists := [...]*int64{&rec.Dist0, &rec.Dist1}
	for i, p := range dists {
		idx := len(masks) + i
		if *p, err = parseDist(cols[idx]); err != nil {
			return Record{}, true, &ParseError{Field: fieldNames[idx], Text: cols[idx], Err: err}
		}
	}

	return rec, true, nil
}
