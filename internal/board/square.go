// Package board holds the square, bitboard and board-geometry primitives
// shared by the table generators.
package board

import "fmt"

// Square represents a square on the chess board (0-63).
// Rank-major: A1=0, H1=7, A8=56, H8=63.
type Square uint8

// NumSquares is the number of squares on the board.
const NumSquares = 64

// Square constants for all 64 squares.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	NoSquare Square = 64
)

// File returns the fyle (column) of the square (0-7, where 0=a, 7=h).
func (sq Square) File() int {
	return int(sq) & 7
}

// Rank returns the rank (row) of the square (0-7, where 0=1, 7=8).
func (sq Square) Rank() int {
	return int(sq) >> 3
}

// String returns the algebraic notation for the square (e.g., "e4").
func (sq Square) String() string {
	if sq >= NoSquare {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+sq.File(), '1'+sq.Rank())
}

// NewSquare creates a square from fyle and rank (0-indexed).
func NewSquare(file, rank int) Square {
	return Square(rank<<3 | file)
}

// onBoard reports whether a fyle/rank pair lies on the board.
func onBoard(file, rank int) bool {
	return file >= 0 && file <= 7 && rank >= 0 && rank <= 7
}

// ParseSquare parses algebraic notation (e.g., "e4") into a Square.
// A plain decimal index ("28") is accepted as well.
func ParseSquare(s string) (Square, error) {
	if len(s) == 2 && s[0] >= 'a' && s[0] <= 'h' {
		file := int(s[0] - 'a')
		rank := int(s[1] - '1')
		if !onBoard(file, rank) {
			return NoSquare, fmt.Errorf("invalid square: %s", s)
		}
		return NewSquare(file, rank), nil
	}

	var idx int
	if _, err := fmt.Sscanf(s, "%d", &idx); err != nil || idx < 0 || idx >= NumSquares {
		return NoSquare, fmt.Errorf("invalid square: %s", s)
	}
	return Square(idx), nil
}

// IsValid returns true if the square is a valid board square (0-63).
func (sq Square) IsValid() bool {
	return sq < NoSquare
}
