package board

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const emptyBoard = "........\n........\n........\n........\n........\n........\n........\n........\n"

func TestRenderEmpty(t *testing.T) {
	assert.Equal(t, emptyBoard, Render(0, 0))
}

func TestRenderShape(t *testing.T) {
	for _, p := range [][2]uint64{
		{0, 0},
		{1, 0},
		{15, 0},
		{math.MaxUint64, 0},
		{0, math.MaxUint64},
		{math.MaxUint64, math.MaxUint64},
		{0xAAAAAAAAAAAAAAAA, 0x5555555555555555},
	} {
		s := Render(p[0], p[1])
		require.True(t, strings.HasSuffix(s, "\n"))

		lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
		require.Len(t, lines, Size)
		for _, line := range lines {
			assert.Len(t, line, Size)
		}
	}
}

func TestRenderFirstRow(t *testing.T) {
	want := "wwww....\n" + emptyBoard[Size+1:]
	assert.Equal(t, want, Render(15, 0))
}

func TestRenderSquareOrder(t *testing.T) {
	// square 9 is row 1, column 1; square 63 is the last cell
	s := Render(1<<9, 1<<63)
	lines := strings.Split(s, "\n")
	assert.Equal(t, ".w......", lines[1])
	assert.Equal(t, ".......b", lines[7])
}

func TestRenderBlackWinsTies(t *testing.T) {
	s := Render(0b101, 0b001)
	assert.Equal(t, "b.w.....", s[:Size])
	assert.Equal(t, 1, strings.Count(s, "w"))
	assert.Equal(t, 1, strings.Count(s, "b"))
}

func TestBoardCount(t *testing.T) {
	b := FromMasks(0xF0, 0x0F00)
	assert.Equal(t, 4, b.Count(White))
	assert.Equal(t, 4, b.Count(Black))
	assert.Equal(t, Squares-8, b.Count(Empty))
	assert.Equal(t, strings.Count(b.String(), "w"), b.Count(White))
}

func TestBitboard(t *testing.T) {
	bb := Bitboard(0).Set(Square(2, 3)).Set(0).Set(63)

	assert.True(t, bb.Occupied(19))
	assert.False(t, bb.Occupied(20))
	assert.Equal(t, uint8(1), bb.Get(63))
	assert.Equal(t, 3, bb.PopCount())
	assert.Equal(t, []int{0, 19, 63}, bb.Squares())

	bb = bb.Clear(19)
	assert.Equal(t, []int{0, 63}, bb.Squares())
	assert.True(t, bb.Clear(0).Clear(63).IsEmpty())

	row, col := RowCol(19)
	assert.Equal(t, 2, row)
	assert.Equal(t, 3, col)
}
