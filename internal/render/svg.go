package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
)

// Board colours for SVG output.
const (
	svgLight     = "fill:#f0d9b5"
	svgDark      = "fill:#b58863"
	svgLastMove  = "fill:#cdd26a"
	svgHighlight = "fill:#646f40;fill-opacity:0.5"
)

// SVGOptions controls how SVG draws a board.
type SVGOptions struct {
	SquareSize  int
	FromBlack   bool
	Coordinates bool
	// Highlights are marked with a dot on empty squares and a ring on
	// occupied ones, e.g. the legal destinations of a selected piece.
	Highlights []chess.Square
	// LastMove squares get a tinted background.
	LastMove []chess.Square
}

// SVGOptionsFrom builds options from the display settings.
func SVGOptionsFrom(d *config.DisplayConfig) SVGOptions {
	return SVGOptions{
		SquareSize:  d.SquareSize,
		FromBlack:   d.FromBlack,
		Coordinates: d.Coordinates,
	}
}

// SVG writes b as a standalone SVG document of 8x8 squares.
func SVG(w io.Writer, b *chess.Board, opts SVGOptions) {
	size := opts.SquareSize
	if size <= 0 {
		size = config.NewDisplayConfig().SquareSize
	}

	lastMove := make(map[chess.Square]bool, len(opts.LastMove))
	for _, sq := range opts.LastMove {
		lastMove[sq] = true
	}

	canvas := svg.New(w)
	canvas.Start(size*chess.BoardSize, size*chess.BoardSize)
	canvas.Title("chess board")

	for _, sq := range chess.AllSquares() {
		x, y := squareOrigin(sq, size, opts.FromBlack)
		style := svgDark
		switch {
		case lastMove[sq]:
			style = svgLastMove
		case isLight(sq):
			style = svgLight
		}
		canvas.Rect(x, y, size, size, style)
	}

	if opts.Coordinates {
		drawCoordinates(canvas, size, opts.FromBlack)
	}

	for _, sq := range opts.Highlights {
		if !sq.Valid() {
			continue
		}
		x, y := squareOrigin(sq, size, opts.FromBlack)
		cx, cy := x+size/2, y+size/2
		if b.IsEmpty(sq) {
			canvas.Circle(cx, cy, size/6, svgHighlight)
		} else {
			canvas.Circle(cx, cy, size/2-size/16, fmt.Sprintf("fill:none;stroke:#646f40;stroke-opacity:0.5;stroke-width:%d", size/8))
		}
	}

	fontStyle := fmt.Sprintf("font-size:%dpx;text-anchor:middle;dominant-baseline:central", size*3/4)
	for _, sq := range chess.AllSquares() {
		piece, ok := b.PieceAt(sq)
		if !ok {
			continue
		}
		x, y := squareOrigin(sq, size, opts.FromBlack)
		canvas.Text(x+size/2, y+size/2, unicodePieces[piece], fontStyle)
	}

	canvas.End()
}

// squareOrigin returns the top-left pixel of sq.
func squareOrigin(sq chess.Square, size int, fromBlack bool) (int, int) {
	col := sq.File()
	row := chess.BoardSize - 1 - sq.Rank()
	if fromBlack {
		col = chess.BoardSize - 1 - col
		row = chess.BoardSize - 1 - row
	}
	return col * size, row * size
}

// drawCoordinates labels the bottom row with files and the left column
// with ranks, in the corner of each square.
func drawCoordinates(canvas *svg.SVG, size int, fromBlack bool) {
	style := fmt.Sprintf("font-size:%dpx;font-family:sans-serif;fill:#404040", size/5)
	pad := size / 16
	bottom := size*chess.BoardSize - pad

	for i, file := range fileOrder(fromBlack) {
		canvas.Text(i*size+size-size/5, bottom, string(chess.FileLetter(file)), style)
	}
	for i, rank := range rankOrder(fromBlack) {
		canvas.Text(pad, i*size+size/5+pad, string(chess.RankDigit(rank)), style)
	}
}
