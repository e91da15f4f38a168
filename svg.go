package chess

import (
	"io"

	svg "github.com/ajstarks/svgo"
)

const (
	svgSquareSize = 45
	svgLightFill  = "#f0d9b5"
	svgDarkFill   = "#b58863"
)

// RenderSVG writes an SVG rendering of the position to w, from
// white's perspective with A1 in the lower left.
func RenderSVG(w io.Writer, pos *Position) {
	canvas := svg.New(w)
	boardSize := svgSquareSize * numOfSquaresInRow
	canvas.Start(boardSize, boardSize)
	for r := 7; r >= 0; r-- {
		for f := 0; f < numOfSquaresInRow; f++ {
			x := f * svgSquareSize
			y := (7 - r) * svgSquareSize
			fill := svgDarkFill
			if (r+f)%2 == 1 {
				fill = svgLightFill
			}
			canvas.Rect(x, y, svgSquareSize, svgSquareSize, "fill:"+fill)
			p := pos.Piece(NewSquare(File(f), Rank(r)))
			if p == NoPiece {
				continue
			}
			canvas.Text(x+svgSquareSize/2, y+svgSquareSize*2/3, p.String(),
				"font-size:32px;text-anchor:middle;dominant-baseline:middle")
		}
	}
	canvas.End()
}
