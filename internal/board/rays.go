package board

// Direction is a unit step on the board.
type Direction struct {
	DF, DR int
}

// The eight ray directions.
var (
	North     = Direction{0, 1}
	South     = Direction{0, -1}
	East      = Direction{1, 0}
	West      = Direction{-1, 0}
	NorthEast = Direction{1, 1}
	SouthWest = Direction{-1, -1}
	NorthWest = Direction{-1, 1}
	SouthEast = Direction{1, -1}
)

// RookDirections and BishopDirections group the rays by slider.
var (
	RookDirections   = []Direction{North, South, East, West}
	BishopDirections = []Direction{NorthEast, SouthWest, NorthWest, SouthEast}
)

// Walk returns the squares visited from sq (exclusive) toward the board
// edge in direction d, nearest first.
func Walk(sq Square, d Direction) []Square {
	var out []Square
	for f, r := sq.File()+d.DF, sq.Rank()+d.DR; onBoard(f, r); f, r = f+d.DF, r+d.DR {
		out = append(out, NewSquare(f, r))
	}
	return out
}

// RayAttacks computes slider attacks by ray casting, stopping on and
// including the first occupied square. Used to cross-check the generated
// tables.
func RayAttacks(sq Square, occupied Bitboard, dirs ...Direction) Bitboard {
	var attacks Bitboard
	for _, d := range dirs {
		for _, s := range Walk(sq, d) {
			attacks |= SquareBB(s)
			if occupied.IsSet(s) {
				break
			}
		}
	}
	return attacks
}

// RayBehind returns, per direction, the second occupied square met when
// walking from sq, or nothing when fewer than two blockers exist.
func RayBehind(sq Square, occupied Bitboard, dirs ...Direction) Bitboard {
	var behind Bitboard
	for _, d := range dirs {
		seen := 0
		for _, s := range Walk(sq, d) {
			if !occupied.IsSet(s) {
				continue
			}
			seen++
			if seen == 2 {
				behind |= SquareBB(s)
				break
			}
		}
	}
	return behind
}
