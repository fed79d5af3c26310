// Package render draws a single table entry as a board diagram, for
// eyeballing generated tables.
package render

import (
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/hailam/rotboard/internal/board"
)

// Cell is the side of one square in SVG user units.
const Cell = 40

const boardSize = 8 * Cell

// Diagram is what gets drawn: the origin square, the squares marked by a
// table entry, and the blockers that produced it.
type Diagram struct {
	Origin   board.Square // NoSquare draws no origin
	Marked   board.Bitboard
	Blockers board.Bitboard
}

const (
	lightFill  = `fill="#f0d9b5"`
	darkFill   = `fill="#b58863"`
	markFill   = `fill="#6a9f58"`
	originFill = `fill="#2f5d8a"`
	blockFill  = `fill="#c0392b"`
)

// cellOrigin returns the top-left corner of sq with rank 8 on top.
func cellOrigin(sq board.Square) (int, int) {
	return sq.File() * Cell, (7 - sq.Rank()) * Cell
}

// SVG writes the diagram as a standalone SVG document.
func SVG(w io.Writer, d Diagram) {
	canvas := svg.New(w)
	canvas.Startview(boardSize, boardSize, 0, 0, boardSize, boardSize)
	for sq := board.A1; sq <= board.H8; sq++ {
		x, y := cellOrigin(sq)
		fill := lightFill
		if (sq.File()+sq.Rank())%2 == 0 {
			fill = darkFill
		}
		switch {
		case sq == d.Origin:
			fill = originFill
		case d.Marked.IsSet(sq):
			fill = markFill
		}
		canvas.Rect(x, y, Cell, Cell, fill)
		if d.Blockers.IsSet(sq) {
			canvas.Circle(x+Cell/2, y+Cell/2, Cell/4, blockFill)
		}
	}
	canvas.End()
}
