package board

import (
	"math/bits"
	"strings"
)

const (
	Size    = 8
	Squares = Size * Size

	bitboardMask = Squares - 1
)

type Cell uint8

const (
	Empty Cell = iota
	White      // player0
	Black      // player1
)

var cellChars = [...]byte{
	Empty: '.',
	White: 'w',
	Black: 'b',
}

func (c Cell) Byte() byte { return cellChars[c] }

func (c Cell) String() string { return string(cellChars[c]) }

// Bitboard has bit i set when square i is occupied. Square i is row i/8,
// column i%8.
type Bitboard uint64

func SquareBB(sq int) Bitboard { return 1 << (uint(sq) & bitboardMask) }

func (b Bitboard) Set(sq int) Bitboard { return b | SquareBB(sq) }

func (b Bitboard) Clear(sq int) Bitboard { return b &^ SquareBB(sq) }

func (b Bitboard) Occupied(sq int) bool { return b&SquareBB(sq) != 0 }

func (b Bitboard) Get(sq int) uint8 {
	return uint8((b >> (uint(sq) & bitboardMask)) & 0x1)
}

func (b Bitboard) IsEmpty() bool { return b == 0 }

func (b Bitboard) PopCount() int { return bits.OnesCount64(uint64(b)) }

// Squares lists the occupied squares in ascending order.
func (b Bitboard) Squares() []int {
	squares := make([]int, 0, b.PopCount())
	for b != 0 {
		sq := bits.TrailingZeros64(uint64(b))
		squares = append(squares, sq)
		b &= b - 1
	}
	return squares
}

func Square(row, col int) int { return row*Size + col }

func RowCol(sq int) (int, int) { return sq / Size, sq % Size }

type Board [Size][Size]Cell

// FromMasks scans both masks low bit first. A square set in both masks
// ends up Black.
func FromMasks(player0, player1 uint64) Board {
	var b Board
	for i := 0; i < Squares; i++ {
		t0, t1 := (player0>>i)&1, (player1>>i)&1
		row, col := RowCol(i)
		if t0 != 0 {
			b[row][col] = White
		}
		if t1 != 0 {
			b[row][col] = Black
		}
	}
	return b
}

// String renders 8 rows of 8 characters, each row terminated by '\n'.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(Squares + Size)
	for row := range b {
		for _, c := range b[row] {
			sb.WriteByte(c.Byte())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (b *Board) Count(c Cell) int {
	var n int
	for row := range b {
		for _, cell := range b[row] {
			if cell == c {
				n++
			}
		}
	}
	return n
}

func Render(player0, player1 uint64) string {
	b := FromMasks(player0, player1)
	return b.String()
}
