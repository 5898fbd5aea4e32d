package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"distboard/internal/flag"
	"distboard/internal/record"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fourWhites = "wwww....\n........\n........\n........\n........\n........\n........\n........\n"

func viewString(t *testing.T, input string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	_, err := view(record.NewReader(strings.NewReader(input)), &out)
	return out.String(), err
}

func TestSelectBoard(t *testing.T) {
	for _, c := range []struct {
		rec   record.Record
		field string
		ok    bool
	}{
		{record.Record{Player0: 1, Player1: 0, Dist0: -1, Dist1: 5}, "", false},
		{record.Record{Player0: 15, Player1: 0, Dist0: -1, Dist1: 0}, fourWhites, true},
		{record.Record{Player0: 15, Player1: 0, Dist0: 0, Dist1: 0}, "", false},
		// square 0 is taken by player1, leaving three white cells
		{record.Record{Player0: 15, Player1: 1, Dist0: -1, Dist1: 0}, "", false},
		{record.Record{Player0: 0xF000000000000000, Player1: 1 << 20, Dist0: -1, Dist1: 3}, "", true},
	} {
		field, ok := selectBoard(c.rec)
		assert.Equal(t, c.ok, ok, "record: %v", c.rec)
		if c.field != "" {
			assert.Equal(t, c.field, field)
		}
	}
}

func TestViewScenarios(t *testing.T) {
	out, err := viewString(t, "1 0 -1 5\n")
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = viewString(t, "15 0 -1 0\n")
	require.NoError(t, err)
	assert.Equal(t, fourWhites+"\n", out)

	out, err = viewString(t, "15 0 0 0\n")
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = viewString(t, "1 2 3\n15 0 -1 0 7\n15 0 -1 0\n")
	require.NoError(t, err)
	assert.Equal(t, fourWhites+"\n", out)
}

func TestViewOrder(t *testing.T) {
	input := "2679296\n15 0 -1 0\n240 0 -1 3\n15 0 2 -1\n"
	out, err := viewString(t, input)
	require.NoError(t, err)

	second := "....wwww\n" + fourWhites[9:]
	assert.Equal(t, fourWhites+"\n"+second+"\n", out)
}

func TestViewWideDistance(t *testing.T) {
	out, err := viewString(t, "99999999999999999999 0 99999999999999999999 0\n15 0 -1 0\n")
	require.NoError(t, err)
	assert.Equal(t, fourWhites+"\n", out)
}

func TestViewParseError(t *testing.T) {
	out, err := viewString(t, "15 0 -1 0\n15 zero -1 0\n")
	assert.Equal(t, fourWhites+"\n", out)

	var perr *record.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 2, perr.Line)
}

func TestRunView(t *testing.T) {
	fpath := filepath.Join(t.TempDir(), flag.DefaultInput)
	require.NoError(t, os.WriteFile(fpath, []byte("3\n15 0 -1 0\n1 0 -1 5\n15 0 0 0\n"), 0o644))

	flags := &flag.Flags{Input: fpath}

	var first, second bytes.Buffer
	require.NoError(t, runView(flags, &first))
	require.NoError(t, runView(flags, &second))

	assert.Equal(t, fourWhites+"\n", first.String())
	assert.Equal(t, first.Bytes(), second.Bytes())
}

func TestRunViewMissingInput(t *testing.T) {
	flags := &flag.Flags{Input: filepath.Join(t.TempDir(), flag.DefaultInput)}
	err := runView(flags, &bytes.Buffer{})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunSolveFeedsView(t *testing.T) {
	var table bytes.Buffer
	flags := &flag.Flags{Solve: true, Pieces: 1, Workers: 2}
	require.NoError(t, runSolve(context.Background(), flags, &table))

	r := record.NewReader(bytes.NewReader(table.Bytes()))
	printed, err := view(r, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Zero(t, printed)
	assert.Equal(t, 64*64, r.Line()-r.Skipped())
}
