package board

// Line returns the squares from sq1 to sq2 inclusive when both lie on the
// same rank, fyle or diagonal, and Empty otherwise. Line(sq, sq) is the
// single bit of sq.
func Line(sq1, sq2 Square) Bitboard {
	f1, r1 := sq1.File(), sq1.Rank()
	f2, r2 := sq2.File(), sq2.Rank()

	df, dr := f2-f1, r2-r1
	if df != 0 && dr != 0 && abs(df) != abs(dr) {
		return Empty
	}

	stepF, stepR := sign(df), sign(dr)
	line := SquareBB(sq2)
	for f, r := f1, r1; f != f2 || r != r2; f, r = f+stepF, r+stepR {
		line |= SquareBB(NewSquare(f, r))
	}
	return line
}

// Between returns Line(sq1, sq2) without its two endpoints.
func Between(sq1, sq2 Square) Bitboard {
	return Line(sq1, sq2) &^ (SquareBB(sq1) | SquareBB(sq2))
}

// Distance returns the Chebyshev (king-move) distance between two squares.
func Distance(sq1, sq2 Square) int {
	return max(abs(sq1.File()-sq2.File()), abs(sq1.Rank()-sq2.Rank()))
}

// IsEnPassant reports whether a move to `to` captures en passant on the
// en passant square ep. Only ranks 3 and 6 can hold an en passant target.
func IsEnPassant(ep, to Square) bool {
	if ep != to {
		return false
	}
	rank := ep.Rank()
	return rank == 2 || rank == 5
}

// Is2StepMove reports whether src->dst is a pawn double push from its home rank.
func Is2StepMove(src, dst Square) bool {
	switch src.Rank() {
	case 1:
		return int(dst)-int(src) == 16
	case 6:
		return int(src)-int(dst) == 16
	}
	return false
}

// Geometry holds the dense square-pair tables.
type Geometry struct {
	Line        [NumSquares][NumSquares]Bitboard
	Between     [NumSquares][NumSquares]Bitboard
	Distance    [NumSquares][NumSquares]int
	IsEnPassant [NumSquares][NumSquares]bool
	Is2StepMove [NumSquares][NumSquares]bool
}

// NewGeometry enumerates all 4096 square pairs.
func NewGeometry() *Geometry {
	g := &Geometry{}
	for sq1 := A1; sq1 <= H8; sq1++ {
		for sq2 := A1; sq2 <= H8; sq2++ {
			g.Line[sq1][sq2] = Line(sq1, sq2)
			g.Between[sq1][sq2] = Between(sq1, sq2)
			g.Distance[sq1][sq2] = Distance(sq1, sq2)
			g.IsEnPassant[sq1][sq2] = IsEnPassant(sq1, sq2)
			g.Is2StepMove[sq1][sq2] = Is2StepMove(sq1, sq2)
		}
	}
	return g
}

func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
