package tables

import (
	"github.com/hailam/rotboard/internal/board"
	"github.com/hailam/rotboard/internal/rotation"
)

// PawnMovable returns the forward destinations of a side's pawn on sq.
// pattern is the FyleMajor row pattern of the pawn's fyle, the same index
// the attack table uses on that axis. Promotion is left to the caller.
func PawnMovable(side board.Side, sq board.Square, pattern uint8) board.Bitboard {
	var step, home, last int
	switch side {
	case board.White:
		step, home, last = 8, 1, 7
	case board.Black:
		step, home, last = -8, 6, 0
	default:
		return board.Empty
	}

	rank := sq.Rank()
	if rank == last {
		return board.Empty
	}

	one := board.Square(int(sq) + step)
	if !fyleFree(one, pattern) {
		return board.Empty
	}
	moves := board.SquareBB(one)
	if rank == home {
		two := board.Square(int(sq) + 2*step)
		if fyleFree(two, pattern) {
			moves |= board.SquareBB(two)
		}
	}
	return moves
}

func fyleFree(sq board.Square, pattern uint8) bool {
	return rotation.GetPoint(sq, rotation.FyleMajor)&pattern == 0
}
