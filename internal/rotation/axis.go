// Package rotation implements the four rotated addressing frames used to
// index sliding-attack tables by a single 8-bit row pattern.
//
// Each axis relabels the 64 squares so that every rank, fyle or diagonal of
// one ray family occupies a contiguous run of bits. A rotated occupancy
// shifted right by the row's Shift and masked with its Mask yields the
// occupancy pattern of that row.
package rotation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hailam/rotboard/internal/board"
)

// Axis is one of the four rotated addressings.
type Axis uint8

const (
	Identity  Axis = iota // 0 degrees, rank rows
	Diag45                // a1-h8 diagonals
	FyleMajor             // 90 degrees, fyle rows
	Diag135               // a8-h1 diagonals
)

// NumAxes is the number of rotation axes.
const NumAxes = 4

// ErrUnknownAxis is returned by ParseAxis.
var ErrUnknownAxis = errors.New("unknown axis")

var axisNames = [NumAxes]string{"0", "45", "90", "135"}

// String returns the rotation angle of the axis.
func (a Axis) String() string {
	if a >= NumAxes {
		return fmt.Sprintf("Axis(%d)", uint8(a))
	}
	return axisNames[a]
}

// ParseAxis accepts an angle ("0", "45", "90", "135") or a name
// ("identity", "diag45", "fylemajor", "diag135").
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(s) {
	case "0", "identity", "rank":
		return Identity, nil
	case "45", "diag45":
		return Diag45, nil
	case "90", "fylemajor", "file", "fyle":
		return FyleMajor, nil
	case "135", "diag135":
		return Diag135, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAxis, s)
}

// Directions returns the two board directions an axis row runs along.
func (a Axis) Directions() []board.Direction {
	switch a {
	case Identity:
		return []board.Direction{board.East, board.West}
	case Diag45:
		return []board.Direction{board.NorthEast, board.SouthWest}
	case FyleMajor:
		return []board.Direction{board.North, board.South}
	default:
		return []board.Direction{board.NorthWest, board.SouthEast}
	}
}

// Rook and Bishop list the axes each slider moves along.
var (
	RookAxes   = [2]Axis{Identity, FyleMajor}
	BishopAxes = [2]Axis{Diag45, Diag135}
)
