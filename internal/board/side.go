package board

// Side is the side a pawn table is generated for. NoSide keeps the index
// space aligned with the consuming engine, where slot 0 means "no side".
type Side uint8

const (
	NoSide Side = iota
	White
	Black
)

// NumSides is the size of the side dimension of the pawn table.
const NumSides = 3

// String returns the side name.
func (s Side) String() string {
	switch s {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "NoSide"
	}
}
