package board

import "math/bits"

// PopCount16 is the population count of every 16-bit value.
type PopCount16 [1 << 16]uint8

// NewPopCount16 fills the byte-pair population count table.
func NewPopCount16() *PopCount16 {
	var t PopCount16
	for i := range t {
		t[i] = uint8(bits.OnesCount16(uint16(i)))
	}
	return &t
}

// Count counts the bits of b four 16-bit chunks at a time.
func (t *PopCount16) Count(b Bitboard) int {
	return int(t[b&0xffff]) + int(t[(b>>16)&0xffff]) +
		int(t[(b>>32)&0xffff]) + int(t[b>>48])
}
