package rotation

import "github.com/hailam/rotboard/internal/board"

// rot maps a standard square to its index in each rotated addressing.
var rot = [NumAxes][board.NumSquares]uint8{
	Identity: {
		0, 1, 2, 3, 4, 5, 6, 7,
		8, 9, 10, 11, 12, 13, 14, 15,
		16, 17, 18, 19, 20, 21, 22, 23,
		24, 25, 26, 27, 28, 29, 30, 31,
		32, 33, 34, 35, 36, 37, 38, 39,
		40, 41, 42, 43, 44, 45, 46, 47,
		48, 49, 50, 51, 52, 53, 54, 55,
		56, 57, 58, 59, 60, 61, 62, 63,
	},
	Diag45: {
		28, 21, 15, 10, 6, 3, 1, 0,
		36, 29, 22, 16, 11, 7, 4, 2,
		43, 37, 30, 23, 17, 12, 8, 5,
		49, 44, 38, 31, 24, 18, 13, 9,
		54, 50, 45, 39, 32, 25, 19, 14,
		58, 55, 51, 46, 40, 33, 26, 20,
		61, 59, 56, 52, 47, 41, 34, 27,
		63, 62, 60, 57, 53, 48, 42, 35,
	},
	FyleMajor: {
		7, 15, 23, 31, 39, 47, 55, 63,
		6, 14, 22, 30, 38, 46, 54, 62,
		5, 13, 21, 29, 37, 45, 53, 61,
		4, 12, 20, 28, 36, 44, 52, 60,
		3, 11, 19, 27, 35, 43, 51, 59,
		2, 10, 18, 26, 34, 42, 50, 58,
		1, 9, 17, 25, 33, 41, 49, 57,
		0, 8, 16, 24, 32, 40, 48, 56,
	},
	Diag135: {
		0, 2, 5, 9, 14, 20, 27, 35,
		1, 4, 8, 13, 19, 26, 34, 42,
		3, 7, 12, 18, 25, 33, 41, 48,
		6, 11, 17, 24, 32, 40, 47, 53,
		10, 16, 23, 31, 39, 46, 52, 57,
		15, 22, 30, 38, 45, 51, 56, 60,
		21, 29, 37, 44, 50, 55, 59, 62,
		28, 36, 43, 49, 54, 58, 61, 63,
	},
}

// invRot maps a rotated index back to the standard square. Diagonal
// frames are laid out one diagonal per line.
var invRot = [NumAxes][board.NumSquares]board.Square{
	Identity: {
		0, 1, 2, 3, 4, 5, 6, 7,
		8, 9, 10, 11, 12, 13, 14, 15,
		16, 17, 18, 19, 20, 21, 22, 23,
		24, 25, 26, 27, 28, 29, 30, 31,
		32, 33, 34, 35, 36, 37, 38, 39,
		40, 41, 42, 43, 44, 45, 46, 47,
		48, 49, 50, 51, 52, 53, 54, 55,
		56, 57, 58, 59, 60, 61, 62, 63,
	},
	Diag45: {
		7,
		6, 15,
		5, 14, 23,
		4, 13, 22, 31,
		3, 12, 21, 30, 39,
		2, 11, 20, 29, 38, 47,
		1, 10, 19, 28, 37, 46, 55,
		0, 9, 18, 27, 36, 45, 54, 63,
		8, 17, 26, 35, 44, 53, 62,
		16, 25, 34, 43, 52, 61,
		24, 33, 42, 51, 60,
		32, 41, 50, 59,
		40, 49, 58,
		48, 57,
		56,
	},
	FyleMajor: {
		56, 48, 40, 32, 24, 16, 8, 0,
		57, 49, 41, 33, 25, 17, 9, 1,
		58, 50, 42, 34, 26, 18, 10, 2,
		59, 51, 43, 35, 27, 19, 11, 3,
		60, 52, 44, 36, 28, 20, 12, 4,
		61, 53, 45, 37, 29, 21, 13, 5,
		62, 54, 46, 38, 30, 22, 14, 6,
		63, 55, 47, 39, 31, 23, 15, 7,
	},
	Diag135: {
		0,
		8, 1,
		16, 9, 2,
		24, 17, 10, 3,
		32, 25, 18, 11, 4,
		40, 33, 26, 19, 12, 5,
		48, 41, 34, 27, 20, 13, 6,
		56, 49, 42, 35, 28, 21, 14, 7,
		57, 50, 43, 36, 29, 22, 15,
		58, 51, 44, 37, 30, 23,
		59, 52, 45, 38, 31,
		60, 53, 46, 39,
		61, 54, 47,
		62, 55,
		63,
	},
}

// Rotate returns the index of sq in the rotated addressing of axis a.
func Rotate(a Axis, sq board.Square) uint8 {
	return rot[a][sq]
}

// Unrotate returns the standard square at rotated index r of axis a.
func Unrotate(a Axis, r uint8) board.Square {
	return invRot[a][r]
}

// RotateBB relabels every square of b into the addressing of axis a.
func RotateBB(a Axis, b board.Bitboard) uint64 {
	var out uint64
	for b != 0 {
		out |= 1 << rot[a][b.PopLSB()]
	}
	return out
}
