// Package render draws boards as terminal text or SVG.
package render

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
)

// ANSI sequences for the coloured text board.
const (
	ansiReset     = "\x1b[0m"
	ansiLight     = "\x1b[48;5;180m"
	ansiDark      = "\x1b[48;5;137m"
	ansiHighlight = "\x1b[48;5;108m"
	ansiWhite     = "\x1b[1;97m"
	ansiBlack     = "\x1b[1;30m"
)

// Plain-mode markers for highlighted squares.
const (
	markEmpty   = '*'
	markCapture = 'x'
)

var unicodePieces = map[chess.PlacedPiece]string{
	{Side: chess.White, Kind: chess.King}:   "♔",
	{Side: chess.White, Kind: chess.Queen}:  "♕",
	{Side: chess.White, Kind: chess.Rook}:   "♖",
	{Side: chess.White, Kind: chess.Bishop}: "♗",
	{Side: chess.White, Kind: chess.Knight}: "♘",
	{Side: chess.White, Kind: chess.Pawn}:   "♙",
	{Side: chess.Black, Kind: chess.King}:   "♚",
	{Side: chess.Black, Kind: chess.Queen}:  "♛",
	{Side: chess.Black, Kind: chess.Rook}:   "♜",
	{Side: chess.Black, Kind: chess.Bishop}: "♝",
	{Side: chess.Black, Kind: chess.Knight}: "♞",
	{Side: chess.Black, Kind: chess.Pawn}:   "♟",
}

// TextOptions controls how Text draws a board.
type TextOptions struct {
	Colour      bool // Emit ANSI background and foreground colours
	Unicode     bool // Chess symbols instead of FEN letters
	Coordinates bool // File letters and rank digits on the edges
	FromBlack   bool // Rank 1 at the top
	Highlights  []chess.Square
}

// TextOptionsFrom builds options from the display settings. colour is the
// already resolved colour decision, since ColourAuto depends on the output.
func TextOptionsFrom(d *config.DisplayConfig, colour bool) TextOptions {
	return TextOptions{
		Colour:      colour,
		Unicode:     d.Unicode,
		Coordinates: d.Coordinates,
		FromBlack:   d.FromBlack,
	}
}

// Text draws b one rank per line.
//
// In plain mode an empty highlighted square shows '*' and an occupied one
// shows 'x'. In colour mode highlights change the square background.
func Text(b *chess.Board, opts TextOptions) string {
	highlighted := make(map[chess.Square]bool, len(opts.Highlights))
	for _, sq := range opts.Highlights {
		highlighted[sq] = true
	}

	var sb strings.Builder
	for _, rank := range rankOrder(opts.FromBlack) {
		if opts.Coordinates {
			sb.WriteByte(chess.RankDigit(rank))
			sb.WriteByte(' ')
		}
		for i, file := range fileOrder(opts.FromBlack) {
			sq, _ := chess.NewSquare(file, rank)
			if opts.Colour {
				writeColourCell(&sb, b, sq, highlighted[sq], opts.Unicode)
				continue
			}
			if i > 0 {
				sb.WriteByte(' ')
			}
			writePlainCell(&sb, b, sq, highlighted[sq], opts.Unicode)
		}
		if opts.Colour {
			sb.WriteString(ansiReset)
		}
		sb.WriteByte('\n')
	}

	if opts.Coordinates {
		sb.WriteString("  ")
		for i, file := range fileOrder(opts.FromBlack) {
			if opts.Colour {
				sb.WriteByte(' ')
				sb.WriteByte(chess.FileLetter(file))
				sb.WriteByte(' ')
				continue
			}
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(chess.FileLetter(file))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func writePlainCell(sb *strings.Builder, b *chess.Board, sq chess.Square, highlight, unicode bool) {
	piece, occupied := b.PieceAt(sq)
	switch {
	case highlight && occupied:
		sb.WriteByte(markCapture)
	case highlight:
		sb.WriteByte(markEmpty)
	case !occupied:
		sb.WriteByte('.')
	case unicode:
		sb.WriteString(unicodePieces[piece])
	default:
		sb.WriteByte(piece.FENLetter())
	}
}

func writeColourCell(sb *strings.Builder, b *chess.Board, sq chess.Square, highlight, unicode bool) {
	switch {
	case highlight:
		sb.WriteString(ansiHighlight)
	case isLight(sq):
		sb.WriteString(ansiLight)
	default:
		sb.WriteString(ansiDark)
	}

	piece, occupied := b.PieceAt(sq)
	if !occupied {
		sb.WriteString("   ")
		return
	}
	if piece.Side == chess.White {
		sb.WriteString(ansiWhite)
	} else {
		sb.WriteString(ansiBlack)
	}
	sb.WriteByte(' ')
	if unicode {
		// Filled glyphs read better on coloured squares; the foreground
		// colour carries the side.
		sb.WriteString(unicodePieces[chess.PlacedPiece{Side: chess.Black, Kind: piece.Kind}])
	} else {
		sb.WriteByte(piece.Kind.Letter())
	}
	sb.WriteByte(' ')
}

// isLight reports whether sq is a light square (h1 is light).
func isLight(sq chess.Square) bool {
	return (sq.File()+sq.Rank())%2 == 1
}

func rankOrder(fromBlack bool) []int {
	ranks := make([]int, chess.BoardSize)
	for i := range ranks {
		if fromBlack {
			ranks[i] = i
		} else {
			ranks[i] = chess.BoardSize - 1 - i
		}
	}
	return ranks
}

func fileOrder(fromBlack bool) []int {
	files := make([]int, chess.BoardSize)
	for i := range files {
		if fromBlack {
			files[i] = chess.BoardSize - 1 - i
		} else {
			files[i] = i
		}
	}
	return files
}
