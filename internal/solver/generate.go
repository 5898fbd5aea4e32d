package solver

import (
	"distboard/internal/board"
)

// Generate builds every position with one black piece and 0..maxWhite white
// pieces on distinct squares. Positions are ordered by black square, then by
// white piece count, then lexicographically by white squares.
func Generate(maxWhite int) []State {
	var positions []State
	for black := 0; black < board.Squares; black++ {
		for n := 0; n <= maxWhite; n++ {
			positions = generateWhite(positions, nil, black, 0, n)
		}
	}
	return positions
}

func generateWhite(dst []State, white []int, black, start, count int) []State {
	if count == 0 {
		return append(dst, NewState(white, black))
	}

	for sq := start; sq < board.Squares; sq++ {
		if sq == black {
			continue
		}
		dst = generateWhite(dst, append(white, sq), black, sq+1, count-1)
	}
	return dst
}
