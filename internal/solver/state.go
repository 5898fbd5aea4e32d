package solver

import (
	"distboard/internal/board"
)

const (
	White = 0 // player0, the side with several pieces
	Black = 1 // player1, the lone piece
)

// directions in (row, col) steps, same order the moves are generated in
var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// State is a position: the pieces of both players. The side to move is
// implied by which distance table the state is looked up in.
type State struct {
	White board.Bitboard
	Black board.Bitboard
}

func NewState(white []int, black ...int) State {
	var s State
	for _, sq := range white {
		s.White = s.White.Set(sq)
	}
	for _, sq := range black {
		s.Black = s.Black.Set(sq)
	}
	return s
}

func (s State) pieces(player int) board.Bitboard {
	if player == White {
		return s.White
	}
	return s.Black
}

func (s *State) side(player int) (own, opp *board.Bitboard) {
	if player == White {
		return &s.White, &s.Black
	}
	return &s.Black, &s.White
}

func (s State) IsEmpty(player int) bool { return s.pieces(player).IsEmpty() }

func (s State) String() string { return board.Render(uint64(s.White), uint64(s.Black)) }

// Moves lists every position reachable by one move of player.
func (s State) Moves(player int) []State {
	return s.AppendMoves(nil, player)
}

// AppendMoves appends the moves of player to dst. Pieces slide any number
// of squares in the eight queen directions, stop before an own piece and
// capture an enemy piece by landing on it.
func (s State) AppendMoves(dst []State, player int) []State {
	for _, from := range s.pieces(player).Squares() {
		base := s
		own, _ := base.side(player)
		*own = own.Clear(from)

		row, col := board.RowCol(from)
		for _, d := range directions {
			dst = base.appendRay(dst, player, row, col, d[0], d[1])
		}
	}
	return dst
}

func (s State) appendRay(dst []State, player, row, col, dr, dc int) []State {
	own, _ := s.side(player)
	for i := 1; ; i++ {
		r, c := row+i*dr, col+i*dc
		if r < 0 || r >= board.Size || c < 0 || c >= board.Size {
			break // off board
		}

		sq := board.Square(r, c)
		if own.Occupied(sq) {
			break
		}

		next := s
		nOwn, nOpp := next.side(player)
		*nOwn = nOwn.Set(sq)
		capture := nOpp.Occupied(sq)
		if capture {
			*nOpp = nOpp.Clear(sq)
		}
		dst = append(dst, next)

		if capture {
			break
		}
	}
	return dst
}
