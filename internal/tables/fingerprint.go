package tables

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"

	"github.com/hailam/rotboard/internal/board"
)

// Fingerprint summarises one table family.
type Fingerprint struct {
	Name    string
	Entries int
	Bytes   int    // size of the family as emitted values
	Sum     uint64 // xxhash64 of the little-endian values
}

type hasher struct {
	d       *xxhash.Digest
	buf     [8]byte
	entries int
	bytes   int
}

func newHasher() *hasher {
	return &hasher{d: xxhash.New()}
}

func (h *hasher) u64(v uint64) {
	binary.LittleEndian.PutUint64(h.buf[:], v)
	h.d.Write(h.buf[:])
	h.entries++
	h.bytes += 8
}

func (h *hasher) u8(v uint8) {
	h.d.Write([]byte{v})
	h.entries++
	h.bytes++
}

func (h *hasher) flag(v bool) {
	if v {
		h.u8(1)
	} else {
		h.u8(0)
	}
}

func (h *hasher) done(name string) Fingerprint {
	return Fingerprint{Name: name, Entries: h.entries, Bytes: h.bytes, Sum: h.d.Sum64()}
}

// Fingerprints hashes every table family in emission order. Two sets are
// bit-identical iff all sums match.
func (s *Set) Fingerprints() []Fingerprint {
	var out []Fingerprint

	h := newHasher()
	for _, n := range s.NumBit16 {
		h.u8(n)
	}
	out = append(out, h.done("NUM_BIT16_TABLE"))

	g := s.Geometry
	pairs := []struct {
		name string
		add  func(h *hasher, sq1, sq2 board.Square)
	}{
		{"LINE", func(h *hasher, a, b board.Square) { h.u64(uint64(g.Line[a][b])) }},
		{"BETWEEN", func(h *hasher, a, b board.Square) { h.u64(uint64(g.Between[a][b])) }},
		{"DISTANCE", func(h *hasher, a, b board.Square) { h.u8(uint8(g.Distance[a][b])) }},
		{"IS_EN_PASSANT", func(h *hasher, a, b board.Square) { h.flag(g.IsEnPassant[a][b]) }},
		{"IS_2STEP_MOVE", func(h *hasher, a, b board.Square) { h.flag(g.Is2StepMove[a][b]) }},
	}
	for _, p := range pairs {
		h := newHasher()
		for sq1 := board.A1; sq1 <= board.H8; sq1++ {
			for sq2 := board.A1; sq2 <= board.H8; sq2++ {
				p.add(h, sq1, sq2)
			}
		}
		out = append(out, h.done(p.name))
	}

	attack, pin := newHasher(), newHasher()
	for sq := range s.Attack {
		for p := range s.Attack[sq] {
			for a := range s.Attack[sq][p] {
				attack.u64(uint64(s.Attack[sq][p][a]))
				pin.u64(uint64(s.PinBack[sq][p][a]))
			}
		}
	}
	out = append(out, attack.done("ATTACK_TABLE"), pin.done("PIN_BACK_TABLE"))

	h = newHasher()
	for side := range s.PawnMovable {
		for sq := range s.PawnMovable[side] {
			for _, bb := range s.PawnMovable[side][sq] {
				h.u64(uint64(bb))
			}
		}
	}
	out = append(out, h.done("PAWN_MOVABLE_TABLE"))
	return out
}
