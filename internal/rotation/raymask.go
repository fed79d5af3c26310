package rotation

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/hailam/rotboard/internal/board"
)

// RayMask locates the row through a square inside a rotated addressing.
// (rotated >> Shift) & Mask isolates the row's occupancy pattern.
type RayMask struct {
	Shift uint8
	Mask  uint64
}

// Width returns the number of squares in the row.
func (m RayMask) Width() int {
	return bits.OnesCount64(m.Mask)
}

// diagonal row starts for the 15 diagonals of length 1..8..1
var diagStarts = [15]uint8{0, 1, 3, 6, 10, 15, 21, 28, 36, 43, 49, 54, 58, 61, 63}

var (
	straightRows [board.NumSquares]RayMask // indexed by rotated square
	diagonalRows [board.NumSquares]RayMask // indexed by rotated square
	rays         [board.NumSquares][NumAxes]RayMask
)

func init() {
	for r := 0; r < board.NumSquares; r++ {
		straightRows[r] = RayMask{Shift: uint8(r &^ 7), Mask: 0xff}
	}
	for d, start := range diagStarts {
		width := 8 - abs(7-d)
		for i := 0; i < width; i++ {
			diagonalRows[int(start)+i] = RayMask{Shift: start, Mask: 1<<width - 1}
		}
	}
	for sq := board.A1; sq <= board.H8; sq++ {
		for a := Axis(0); a < NumAxes; a++ {
			r := rot[a][sq]
			if a == Identity || a == FyleMajor {
				rays[sq][a] = straightRows[r]
			} else {
				rays[sq][a] = diagonalRows[r]
			}
		}
	}

	if err := Check(); err != nil {
		panic(err)
	}
}

// Ray returns the row mask of sq on axis a.
func Ray(sq board.Square, a Axis) RayMask {
	return rays[sq][a]
}

// GetPoint returns the single bit of sq inside its own row on axis a.
func GetPoint(sq board.Square, a Axis) uint8 {
	m := rays[sq][a]
	return uint8((uint64(1) << rot[a][sq] >> m.Shift) & m.Mask)
}

// ToBitboard converts a single row bit of the row through sq on axis a back
// to a standard bitboard.
func ToBitboard(bit uint8, sq board.Square, a Axis) board.Bitboard {
	r := bits.TrailingZeros64(uint64(bit) << rays[sq][a].Shift)
	return board.SquareBB(invRot[a][r])
}

// RowSquares returns the standard squares of the row through sq on axis a.
func RowSquares(sq board.Square, a Axis) board.Bitboard {
	var out board.Bitboard
	m := rays[sq][a]
	for i := 0; i < m.Width(); i++ {
		out |= ToBitboard(1<<i, sq, a)
	}
	return out
}

// Expand converts a row pattern of the row through sq on axis a into the
// standard squares it denotes. Bits beyond the row width are ignored.
func Expand(sq board.Square, a Axis, pattern uint8) board.Bitboard {
	var out board.Bitboard
	p := pattern & uint8(rays[sq][a].Mask)
	for p != 0 {
		bit := p & -p
		out |= ToBitboard(bit, sq, a)
		p &^= bit
	}
	return out
}

// ErrBadRotation marks an inconsistency in the rotation constants.
var ErrBadRotation = errors.New("rotation tables inconsistent")

// Check verifies the permutations, their inverses and the row masks. Any
// error means every table derived from this package is corrupt.
func Check() error {
	var errs []error
	for a := Axis(0); a < NumAxes; a++ {
		var seen uint64
		for sq := board.A1; sq <= board.H8; sq++ {
			r := rot[a][sq]
			if r >= board.NumSquares {
				errs = append(errs, fmt.Errorf("axis %s: %s rotates out of range to %d", a, sq, r))
				continue
			}
			seen |= 1 << r
			if got := invRot[a][r]; got != sq {
				errs = append(errs, fmt.Errorf("axis %s: inverse of %s is %s", a, sq, got))
			}
		}
		if seen != ^uint64(0) {
			errs = append(errs, fmt.Errorf("axis %s: not a permutation (%#x)", a, seen))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrBadRotation, errors.Join(errs...))
	}

	for sq := board.A1; sq <= board.H8; sq++ {
		for a := Axis(0); a < NumAxes; a++ {
			m := rays[sq][a]
			want := board.SquareBB(sq)
			for _, d := range a.Directions() {
				for _, s := range board.Walk(sq, d) {
					want |= board.SquareBB(s)
				}
			}
			if m.Width() != want.PopCount() || m.Mask != 1<<m.Width()-1 {
				errs = append(errs, fmt.Errorf("axis %s: %s mask %#x, want %d bits", a, sq, m.Mask, want.PopCount()))
				continue
			}
			if got := RowSquares(sq, a); got != want {
				errs = append(errs, fmt.Errorf("axis %s: %s row %#x, want %#x", a, sq, uint64(got), uint64(want)))
				continue
			}
			// Neighbouring row bits must be neighbouring squares.
			for i := 0; i+1 < m.Width(); i++ {
				s1 := ToBitboard(1<<i, sq, a).LSB()
				s2 := ToBitboard(1<<(i+1), sq, a).LSB()
				if board.Distance(s1, s2) != 1 {
					errs = append(errs, fmt.Errorf("axis %s: %s row bits %d,%d not adjacent", a, sq, i, i+1))
				}
			}
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrBadRotation, errors.Join(errs...))
	}
	return nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
