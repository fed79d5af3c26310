package tables

import (
	"github.com/hailam/rotboard/internal/board"
	"github.com/hailam/rotboard/internal/rotation"
)

// scanState tracks one direction of a pin-back walk.
type scanState uint8

const (
	scanFirst  scanState = iota // looking for the pinned piece
	scanSecond                  // pinned piece found, looking behind it
	scanDone                    // square behind the pin recorded
)

// PinBack returns, per axis, the square of the second blocker met in each
// direction from sq: the piece standing behind a pinned piece.
func PinBack(sq board.Square, pattern uint8) [rotation.NumAxes]board.Bitboard {
	var out [rotation.NumAxes]board.Bitboard
	for a := rotation.Axis(0); a < rotation.NumAxes; a++ {
		out[a] = pinBack(newRow(sq, a), pattern)
	}
	return out
}

func pinBack(r row, pattern uint8) board.Bitboard {
	var behind board.Bitboard
	for _, dir := range rowDirs {
		state := scanFirst
		for bit := r.next(r.start, dir); bit != 0 && state != scanDone; bit = r.next(bit, dir) {
			if bit&pattern == 0 {
				continue
			}
			switch state {
			case scanFirst:
				state = scanSecond
			case scanSecond:
				behind |= r.square(bit)
				state = scanDone
			}
		}
	}
	return behind
}
