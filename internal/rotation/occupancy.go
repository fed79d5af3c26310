package rotation

import "github.com/hailam/rotboard/internal/board"

// Occupancy keeps a blocker board in all four addressings, the way the
// consuming engine maintains it incrementally.
type Occupancy [NumAxes]uint64

// NewOccupancy rotates a standard blocker board into every axis.
func NewOccupancy(b board.Bitboard) Occupancy {
	var o Occupancy
	for a := Axis(0); a < NumAxes; a++ {
		o[a] = RotateBB(a, b)
	}
	return o
}

// Put adds sq to every rotated board.
func (o *Occupancy) Put(sq board.Square) {
	for a := Axis(0); a < NumAxes; a++ {
		o[a] |= 1 << rot[a][sq]
	}
}

// Remove clears sq from every rotated board.
func (o *Occupancy) Remove(sq board.Square) {
	for a := Axis(0); a < NumAxes; a++ {
		o[a] &^= 1 << rot[a][sq]
	}
}

// Pattern returns the 8-bit occupancy of the row through sq on axis a,
// the index into the precomputed tables.
func (o *Occupancy) Pattern(sq board.Square, a Axis) uint8 {
	m := rays[sq][a]
	return uint8((o[a] >> m.Shift) & m.Mask)
}
