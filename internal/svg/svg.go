// Package svg renders a position as an SVG board diagram.
package svg

import (
	"io"

	svg "github.com/ajstarks/svgo"
	"github.com/lgbarn/chesskit-go/internal/chess"
)

// Default board colours.
const (
	lightColour         = "#ffce9e"
	darkColour          = "#d18b47"
	lightLastMoveColour = "#cdd16a"
	darkLastMoveColour  = "#aaa23b"
	marginColour        = "#212121"
	coordColour         = "#e5e5e5"
	checkColour         = "#e70000"
)

const squareSize = 45
const margin = 20

// Unicode figurines by piece symbol.
var glyphs = map[byte]string{
	'P': "♙", 'N': "♘", 'B': "♗", 'R': "♖", 'Q': "♕", 'K': "♔",
	'p': "♟", 'n': "♞", 'b': "♝", 'r': "♜", 'q': "♛", 'k': "♚",
}

// Options control the rendered diagram.
type Options struct {
	// Flipped draws the board from black's point of view.
	Flipped bool

	// Coordinates adds a margin with file letters and rank digits.
	Coordinates bool

	// LastMove highlights the move's source and target squares. The
	// zero Move highlights nothing.
	LastMove chess.Move

	// Check highlights the given square. The null square highlights
	// nothing.
	Check chess.Square
}

// Write renders the position to w as an SVG document.
func Write(w io.Writer, p *chess.Position, opts Options) {
	offset := 0
	size := 8 * squareSize
	if opts.Coordinates {
		offset = margin
		size += 2 * margin
	}

	canvas := svg.New(w)
	canvas.Start(size, size)

	if opts.Coordinates {
		canvas.Rect(0, 0, size, size, "fill:"+marginColour)
		writeCoordinates(canvas, size, opts.Flipped)
	}

	for _, square := range chess.AllSquares() {
		x, y := squareOrigin(square, opts.Flipped)
		x += offset
		y += offset

		canvas.Rect(x, y, squareSize, squareSize, "fill:"+squareColour(square, opts))

		if opts.Check.Valid() && square == opts.Check {
			canvas.Circle(x+squareSize/2, y+squareSize/2, squareSize/2,
				"fill:"+checkColour+";fill-opacity:0.55")
		}

		piece := p.Get(square)
		if !piece.Valid() {
			continue
		}
		canvas.Text(x+squareSize/2, y+squareSize*3/4, glyphs[piece.Symbol()],
			"font-size:36px;text-anchor:middle")
	}

	canvas.End()
}

// squareOrigin returns the pixel origin of a square on the unflipped or
// flipped board, white's first rank at the bottom by default.
func squareOrigin(square chess.Square, flipped bool) (x, y int) {
	file := square.File()
	rank := square.Rank()
	if flipped {
		file = 7 - file
		rank = 7 - rank
	}
	return file * squareSize, (7 - rank) * squareSize
}

// squareColour picks the fill for a square, honouring the last-move
// highlight.
func squareColour(square chess.Square, opts Options) string {
	last := opts.LastMove != (chess.Move{}) &&
		(square == opts.LastMove.Source() || square == opts.LastMove.Target())
	if square.IsLight() {
		if last {
			return lightLastMoveColour
		}
		return lightColour
	}
	if last {
		return darkLastMoveColour
	}
	return darkColour
}

// writeCoordinates draws file letters along the bottom and rank digits
// along the left margin.
func writeCoordinates(canvas *svg.SVG, size int, flipped bool) {
	style := "font-size:12px;text-anchor:middle;fill:" + coordColour
	for i := 0; i < 8; i++ {
		file := byte('a' + i)
		rank := byte('1' + 7 - i)
		if flipped {
			file = byte('a' + 7 - i)
			rank = byte('1' + i)
		}
		x := margin + i*squareSize + squareSize/2
		canvas.Text(x, size-margin/3, string(file), style)
		canvas.Text(margin/2, margin+i*squareSize+squareSize/2+4, string(rank), style)
	}
}
