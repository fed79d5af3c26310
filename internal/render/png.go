package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/hailam/rotboard/internal/board"
)

// Raster rasterizes the diagram at size x size pixels and labels the
// fyles and ranks.
func Raster(d Diagram, size int) (*image.RGBA, error) {
	if size < 8*basicfont.Face7x13.Height {
		return nil, fmt.Errorf("render: size %d too small", size)
	}

	var buf bytes.Buffer
	SVG(&buf, d)

	icon, err := oksvg.ReadIconStream(&buf)
	if err != nil {
		return nil, fmt.Errorf("render: parse svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)

	label(rgba, size)
	return rgba, nil
}

// label writes the fyle letters along rank 1 and rank digits along fyle a.
func label(dst *image.RGBA, size int) {
	cell := size / 8
	face := basicfont.Face7x13
	drawer := &font.Drawer{Dst: dst, Src: image.NewUniform(color.Black), Face: face}
	for i := 0; i < 8; i++ {
		drawer.Dot = fixed.P(i*cell+cell-face.Width-2, size-3)
		drawer.DrawString(string(rune('a' + i)))

		sq := board.NewSquare(0, i)
		_, y := cellOrigin(sq)
		drawer.Dot = fixed.P(2, y*size/boardSize+face.Ascent+2)
		drawer.DrawString(string(rune('1' + i)))
	}
}

// PNG rasterizes the diagram and encodes it as PNG.
func PNG(w io.Writer, d Diagram, size int) error {
	img, err := Raster(d, size)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}
