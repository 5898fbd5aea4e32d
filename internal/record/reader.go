package record

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Reader yields the records of a distance table one line at a time. Lines
// without exactly four fields are skipped; a malformed integer stops the
// sequence with a *ParseError.
type Reader struct {
	r      *bufio.Reader
	closer io.Closer

	line    int
	skipped int
	rec     Record
	err     error
	done    bool
}

func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

func Open(fpath string) (*Reader, error) {
	fd, err := os.Open(fpath)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", fpath, err)
	}

	r := NewReader(fd)
	r.closer = fd
	return r, nil
}

func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}

	err := r.closer.Close()
	r.closer = nil
	return err
}

// Next advances to the next well-formed record.
func (r *Reader) Next() bool {
	for !r.done {
		line, err := r.r.ReadString('\n')
		if err != nil {
			r.done = true
			if !errors.Is(err, io.EOF) {
				r.err = fmt.Errorf("failed to read line %d: %w", r.line+1, err)
				return false
			}
			if line == "" {
				return false
			}
		}
		r.line++

		rec, ok, err := ParseLine(strings.TrimSuffix(line, "\n"))
		if err != nil {
			var perr *ParseError
			if errors.As(err, &perr) {
				perr.Line = r.line
			}
			r.err, r.done = err, true
			return false
		}
		if !ok {
			r.skipped++
			continue
		}

		r.rec = rec
		return true
	}

	return false
}

func (r *Reader) Record() Record { return r.rec }

func (r *Reader) Err() error { return r.err }

// Line is the number of physical lines consumed so far.
func (r *Reader) Line() int { return r.line }

// Skipped is the number of lines ignored for having the wrong field count.
func (r *Reader) Skipped() int { return r.skipped }
