// Package tables generates the sliding-attack, pin-back and pawn-push
// lookup tables from the rotated addressings, and checks them.
package tables

import (
	"github.com/hailam/rotboard/internal/board"
	"github.com/hailam/rotboard/internal/rotation"
)

// NumPatterns is the size of the 8-bit occupancy pattern domain.
const NumPatterns = 256

// rowDir is a walking direction inside an axis row.
type rowDir uint8

const (
	rowUp   rowDir = iota // toward higher row bits
	rowDown               // toward lower row bits
)

var rowDirs = [2]rowDir{rowUp, rowDown}

// row is the row through one square on one axis.
type row struct {
	sq    board.Square
	axis  rotation.Axis
	mask  uint8
	start uint8
}

func newRow(sq board.Square, a rotation.Axis) row {
	return row{
		sq:    sq,
		axis:  a,
		mask:  uint8(rotation.Ray(sq, a).Mask),
		start: rotation.GetPoint(sq, a),
	}
}

// next moves bit one place along the row; zero means it fell off.
func (r row) next(bit uint8, dir rowDir) uint8 {
	if dir == rowUp {
		return (bit << 1) & r.mask
	}
	return (bit >> 1) & r.mask
}

// square converts a row bit back to a standard bitboard.
func (r row) square(bit uint8) board.Bitboard {
	return rotation.ToBitboard(bit, r.sq, r.axis)
}
