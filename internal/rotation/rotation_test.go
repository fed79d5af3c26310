package rotation

import (
	"errors"
	"testing"

	"github.com/hailam/rotboard/internal/board"
)

func TestInverseRotation(t *testing.T) {
	for a := Axis(0); a < NumAxes; a++ {
		for sq := board.A1; sq <= board.H8; sq++ {
			if got := Unrotate(a, Rotate(a, sq)); got != sq {
				t.Errorf("axis %s: Unrotate(Rotate(%s)) = %s", a, sq, got)
			}
		}
	}
	if err := Check(); err != nil {
		t.Fatalf("Check() = %v", err)
	}
}

func TestRayWidths(t *testing.T) {
	tests := []struct {
		sq    board.Square
		axis  Axis
		width int
	}{
		{board.A1, Identity, 8},
		{board.E4, FyleMajor, 8},
		{board.A1, Diag45, 8},
		{board.H8, Diag45, 8},
		{board.H1, Diag45, 1},
		{board.A8, Diag45, 1},
		{board.A1, Diag135, 1},
		{board.H8, Diag135, 1},
		{board.H1, Diag135, 8},
		{board.B1, Diag45, 7},
		{board.B1, Diag135, 2},
		{board.D4, Diag45, 8},
		{board.D4, Diag135, 7},
	}
	for _, tc := range tests {
		m := Ray(tc.sq, tc.axis)
		if m.Width() != tc.width {
			t.Errorf("Ray(%s, %s).Width() = %d, want %d", tc.sq, tc.axis, m.Width(), tc.width)
		}
		if m.Mask != 1<<tc.width-1 {
			t.Errorf("Ray(%s, %s).Mask = %#x, not a run of %d bits", tc.sq, tc.axis, m.Mask, tc.width)
		}
	}

	// popcount of every mask equals the geometric length of its ray
	for sq := board.A1; sq <= board.H8; sq++ {
		for a := Axis(0); a < NumAxes; a++ {
			want := 1
			for _, d := range a.Directions() {
				want += len(board.Walk(sq, d))
			}
			if got := Ray(sq, a).Width(); got != want {
				t.Errorf("Ray(%s, %s).Width() = %d, want %d", sq, a, got, want)
			}
		}
	}
}

func TestPointRoundTrip(t *testing.T) {
	for sq := board.A1; sq <= board.H8; sq++ {
		for a := Axis(0); a < NumAxes; a++ {
			bit := GetPoint(sq, a)
			if bit == 0 || bit&(bit-1) != 0 {
				t.Fatalf("GetPoint(%s, %s) = %#x, want a single bit", sq, a, bit)
			}
			if got := ToBitboard(bit, sq, a); got != board.SquareBB(sq) {
				t.Errorf("ToBitboard(GetPoint(%s, %s)) = %v", sq, a, got.Squares())
			}
		}
	}

	// a-file is stored rank 8 first on the 90 degree axis
	if got := GetPoint(board.A1, FyleMajor); got != 0x80 {
		t.Errorf("GetPoint(a1, 90) = %#x, want 0x80", got)
	}
	if got := GetPoint(board.A8, FyleMajor); got != 0x01 {
		t.Errorf("GetPoint(a8, 90) = %#x, want 0x01", got)
	}
	if got := GetPoint(board.C1, Identity); got != 0x04 {
		t.Errorf("GetPoint(c1, 0) = %#x, want 0x04", got)
	}
}

func TestRowSquares(t *testing.T) {
	if got := RowSquares(board.E4, Identity); got != board.RankMask(3) {
		t.Errorf("RowSquares(e4, 0) = %v", got.Squares())
	}
	if got := RowSquares(board.E4, FyleMajor); got != board.FileMask(4) {
		t.Errorf("RowSquares(e4, 90) = %v", got.Squares())
	}
	if got := RowSquares(board.C1, Diag45); got != board.Line(board.C1, board.H6) {
		t.Errorf("RowSquares(c1, 45) = %v", got.Squares())
	}
	if got := RowSquares(board.C1, Diag135); got != board.Line(board.C1, board.A3) {
		t.Errorf("RowSquares(c1, 135) = %v", got.Squares())
	}
}

func TestOccupancyPattern(t *testing.T) {
	occ := NewOccupancy(board.Rank1 | board.SquareBB(board.E4) | board.SquareBB(board.E7))

	if got := occ.Pattern(board.A1, Identity); got != 0xff {
		t.Errorf("Pattern(a1, 0) = %#x, want 0xff", got)
	}
	// e-file: e1, e4, e7 set; rank r sits at bit 7-r
	if got := occ.Pattern(board.E2, FyleMajor); got != 0x80|0x10|0x02 {
		t.Errorf("Pattern(e2, 90) = %#x, want 0x92", got)
	}
	if got := occ.Pattern(board.H1, Diag45); got != 0x01 {
		t.Errorf("Pattern(h1, 45) = %#x, want 0x01", got)
	}

	occ.Remove(board.E4)
	occ.Put(board.E5)
	if got := occ.Pattern(board.E2, FyleMajor); got != 0x80|0x08|0x02 {
		t.Errorf("after move Pattern(e2, 90) = %#x, want 0x8a", got)
	}
	if occ != NewOccupancy(board.Rank1|board.SquareBB(board.E5)|board.SquareBB(board.E7)) {
		t.Error("incremental occupancy differs from rebuilt occupancy")
	}
}

func TestExpand(t *testing.T) {
	if got := Expand(board.D4, Identity, 0x81); got != board.SquareBB(board.A4)|board.SquareBB(board.H4) {
		t.Errorf("Expand(d4, 0, 0x81) = %v", got.Squares())
	}
	// bits beyond a short diagonal are ignored
	if got := Expand(board.B1, Diag135, 0xff); got != board.SquareBB(board.B1)|board.SquareBB(board.A2) {
		t.Errorf("Expand(b1, 135, 0xff) = %v", got.Squares())
	}
	for sq := board.A1; sq <= board.H8; sq++ {
		for a := Axis(0); a < NumAxes; a++ {
			occ := NewOccupancy(Expand(sq, a, 0xff))
			if got := occ.Pattern(sq, a); got != uint8(Ray(sq, a).Mask) {
				t.Fatalf("Pattern(Expand(%s, %s, 0xff)) = %#x", sq, a, got)
			}
		}
	}
}

func TestParseAxis(t *testing.T) {
	tests := []struct {
		in   string
		want Axis
	}{
		{"0", Identity}, {"45", Diag45}, {"90", FyleMajor}, {"135", Diag135},
		{"FyleMajor", FyleMajor}, {"diag135", Diag135},
	}
	for _, tc := range tests {
		got, err := ParseAxis(tc.in)
		if err != nil || got != tc.want {
			t.Errorf("ParseAxis(%q) = %s, %v; want %s", tc.in, got, err, tc.want)
		}
	}
	if _, err := ParseAxis("30"); !errors.Is(err, ErrUnknownAxis) {
		t.Errorf("ParseAxis(30) error = %v, want ErrUnknownAxis", err)
	}
}
