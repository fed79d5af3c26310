package tables

import (
	"errors"
	"fmt"

	"github.com/hailam/rotboard/internal/board"
	"github.com/hailam/rotboard/internal/rotation"
)

// ErrInconsistent wraps every violation found by Verify.
var ErrInconsistent = errors.New("tables inconsistent")

// maxReported caps the violations collected per check.
const maxReported = 16

// Verify cross-checks a Set against the rotation constants and against
// plain ray casting. A non-nil result must be treated as fatal.
func Verify(s *Set) error {
	if err := rotation.Check(); err != nil {
		return fmt.Errorf("%w: %w", ErrInconsistent, err)
	}

	checks := []func(*Set) []error{
		checkEmptyBoard,
		checkSliding,
		checkPawns,
		checkGeometry,
	}
	var errs []error
	for _, check := range checks {
		errs = append(errs, check(s)...)
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInconsistent, errors.Join(errs...))
	}
	return nil
}

// checkEmptyBoard compares the empty-pattern rook and bishop unions with
// the unobstructed rays to the board edge.
func checkEmptyBoard(s *Set) []error {
	var errs []error
	for sq := board.A1; sq <= board.H8; sq++ {
		e := s.Attack[sq][0]
		rook := e[rotation.Identity] | e[rotation.FyleMajor]
		if want := board.RayAttacks(sq, board.Empty, board.RookDirections...); rook != want {
			errs = append(errs, fmt.Errorf("empty rook %s: got %#x, want %#x", sq, uint64(rook), uint64(want)))
		}
		bishop := e[rotation.Diag45] | e[rotation.Diag135]
		if want := board.RayAttacks(sq, board.Empty, board.BishopDirections...); bishop != want {
			errs = append(errs, fmt.Errorf("empty bishop %s: got %#x, want %#x", sq, uint64(bishop), uint64(want)))
		}
		if len(errs) >= maxReported {
			break
		}
	}
	return errs
}

// checkSliding ray-casts every square, pattern and axis without the
// rotation trick and compares with the attack and pin-back tables.
func checkSliding(s *Set) []error {
	var errs []error
	for sq := board.A1; sq <= board.H8; sq++ {
		for p := 0; p < NumPatterns; p++ {
			for a := rotation.Axis(0); a < rotation.NumAxes; a++ {
				occ := rotation.Expand(sq, a, uint8(p))
				dirs := a.Directions()
				if want := board.RayAttacks(sq, occ, dirs...); s.Attack[sq][p][a] != want {
					errs = append(errs, fmt.Errorf("attack %s pattern %#02x axis %s: got %#x, want %#x",
						sq, p, a, uint64(s.Attack[sq][p][a]), uint64(want)))
				}
				if want := board.RayBehind(sq, occ, dirs...); s.PinBack[sq][p][a] != want {
					errs = append(errs, fmt.Errorf("pin back %s pattern %#02x axis %s: got %#x, want %#x",
						sq, p, a, uint64(s.PinBack[sq][p][a]), uint64(want)))
				}
				if len(errs) >= maxReported {
					return errs
				}
			}
		}
	}
	return errs
}

// checkPawns recomputes pushes from the fyle occupancy in board coordinates.
func checkPawns(s *Set) []error {
	var errs []error
	for sq := board.A1; sq <= board.H8; sq++ {
		for p := 0; p < NumPatterns; p++ {
			occ := rotation.Expand(sq, rotation.FyleMajor, uint8(p))
			if got := s.PawnMovable[board.NoSide][sq][p]; got != board.Empty {
				errs = append(errs, fmt.Errorf("pawn NoSide %s: got %#x", sq, uint64(got)))
			}
			for _, side := range []board.Side{board.White, board.Black} {
				want := slowPawnPushes(side, sq, occ)
				if got := s.PawnMovable[side][sq][p]; got != want {
					errs = append(errs, fmt.Errorf("pawn %s %s pattern %#02x: got %#x, want %#x",
						side, sq, p, uint64(got), uint64(want)))
				}
			}
			if len(errs) >= maxReported {
				return errs
			}
		}
	}
	return errs
}

func slowPawnPushes(side board.Side, sq board.Square, occupied board.Bitboard) board.Bitboard {
	dir, home := board.North, 1
	if side == board.Black {
		dir, home = board.South, 6
	}
	var moves board.Bitboard
	for i, s := range board.Walk(sq, dir) {
		if occupied.IsSet(s) || i > 1 || (i == 1 && sq.Rank() != home) {
			break
		}
		moves |= board.SquareBB(s)
	}
	// the last rank keeps no pushes; promotion belongs to the engine
	if (side == board.White && sq.Rank() == 7) || (side == board.Black && sq.Rank() == 0) {
		return board.Empty
	}
	return moves
}

func checkGeometry(s *Set) []error {
	var errs []error
	g := s.Geometry
	for sq1 := board.A1; sq1 <= board.H8; sq1++ {
		for sq2 := board.A1; sq2 <= board.H8; sq2++ {
			if g.Line[sq1][sq2] != g.Line[sq2][sq1] || g.Distance[sq1][sq2] != g.Distance[sq2][sq1] {
				errs = append(errs, fmt.Errorf("geometry %s-%s not symmetric", sq1, sq2))
			}
			if g.Between[sq1][sq2]&(board.SquareBB(sq1)|board.SquareBB(sq2)) != 0 {
				errs = append(errs, fmt.Errorf("between %s-%s contains an endpoint", sq1, sq2))
			}
			if len(errs) >= maxReported {
				return errs
			}
		}
	}
	for i := 0; i < len(s.NumBit16); i += 257 {
		if want := board.Bitboard(i).PopCount(); int(s.NumBit16[i]) != want {
			errs = append(errs, fmt.Errorf("popcount %#x: got %d, want %d", i, s.NumBit16[i], want))
		}
	}
	return errs
}
