package tables

import (
	"github.com/hailam/rotboard/internal/board"
	"github.com/hailam/rotboard/internal/rotation"
)

// AttackOn looks up the attack of a slider on sq along axis a.
func (s *Set) AttackOn(sq board.Square, a rotation.Axis, occ *rotation.Occupancy) board.Bitboard {
	return s.Attack[sq][occ.Pattern(sq, a)][a]
}

// RookAttacks is the union of the Identity and FyleMajor attacks.
func (s *Set) RookAttacks(sq board.Square, occ *rotation.Occupancy) board.Bitboard {
	return s.AttackOn(sq, rotation.Identity, occ) | s.AttackOn(sq, rotation.FyleMajor, occ)
}

// BishopAttacks is the union of the two diagonal attacks.
func (s *Set) BishopAttacks(sq board.Square, occ *rotation.Occupancy) board.Bitboard {
	return s.AttackOn(sq, rotation.Diag45, occ) | s.AttackOn(sq, rotation.Diag135, occ)
}

// QueenAttacks is the union over all four axes.
func (s *Set) QueenAttacks(sq board.Square, occ *rotation.Occupancy) board.Bitboard {
	return s.RookAttacks(sq, occ) | s.BishopAttacks(sq, occ)
}

// PinBackOn looks up the squares behind the first blocker on every axis.
func (s *Set) PinBackOn(sq board.Square, occ *rotation.Occupancy) board.Bitboard {
	var out board.Bitboard
	for a := rotation.Axis(0); a < rotation.NumAxes; a++ {
		out |= s.PinBack[sq][occ.Pattern(sq, a)][a]
	}
	return out
}

// PawnPushes looks up the forward moves of a pawn on sq.
func (s *Set) PawnPushes(side board.Side, sq board.Square, occ *rotation.Occupancy) board.Bitboard {
	return s.PawnMovable[side][sq][occ.Pattern(sq, rotation.FyleMajor)]
}
