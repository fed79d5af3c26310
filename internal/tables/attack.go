package tables

import (
	"github.com/hailam/rotboard/internal/board"
	"github.com/hailam/rotboard/internal/rotation"
)

// SlidingAttack returns, per axis, the squares a slider on sq reaches when
// pattern is the occupancy of the row through sq. The first blocker in
// each direction is attacked; nothing beyond it is.
func SlidingAttack(sq board.Square, pattern uint8) [rotation.NumAxes]board.Bitboard {
	var out [rotation.NumAxes]board.Bitboard
	for a := rotation.Axis(0); a < rotation.NumAxes; a++ {
		out[a] = slide(newRow(sq, a), pattern)
	}
	return out
}

func slide(r row, pattern uint8) board.Bitboard {
	var attacks board.Bitboard
	for _, dir := range rowDirs {
		for bit := r.next(r.start, dir); bit != 0; bit = r.next(bit, dir) {
			attacks |= r.square(bit)
			if bit&pattern != 0 {
				break
			}
		}
	}
	return attacks
}
