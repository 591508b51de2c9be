// Package parser turns typed move text into moves. Parse produces every
// reading of the text that the notation allows; Resolve picks the piece
// each reading refers to on a given board.
package parser

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Shape identifies which notation form a candidate was read as.
type Shape int

const (
	// ShapePawnPush is a pawn advance such as "e4" or "e8=Q".
	ShapePawnPush Shape = iota
	// ShapePawnCapture is a pawn capture such as "exd5" or "ed".
	ShapePawnCapture
	// ShapePiece is a piece move such as "Nbd2" or "Qxe4".
	ShapePiece
	ShapeCastleKingside
	ShapeCastleQueenside
)

// String returns the name of the shape.
func (s Shape) String() string {
	switch s {
	case ShapePawnPush:
		return "PawnPush"
	case ShapePawnCapture:
		return "PawnCapture"
	case ShapePiece:
		return "Piece"
	case ShapeCastleKingside:
		return "CastleKingside"
	case ShapeCastleQueenside:
		return "CastleQueenside"
	}
	return "Unknown"
}

// None marks an absent file or rank in a Candidate.
const None = -1

// Candidate is one reading of a move text.
//
// Files and ranks are 0-based indices or None. ToRank may be None only for
// ShapePawnCapture. The flags record what the text claimed; the engine
// decides check, mate and en passant for itself.
type Candidate struct {
	Shape     Shape
	Piece     chess.PieceKind
	FromFile  int
	FromRank  int
	ToFile    int
	ToRank    int
	Promotion chess.PieceKind

	Capture   bool
	Check     bool
	Checkmate bool
	EnPassant bool
}

// newCandidate returns a candidate with no squares filled in.
func newCandidate(shape Shape, piece chess.PieceKind) Candidate {
	return Candidate{
		Shape:    shape,
		Piece:    piece,
		FromFile: None,
		FromRank: None,
		ToFile:   None,
		ToRank:   None,
	}
}

// Destination returns the full destination square, if the text gave one.
func (c Candidate) Destination() (chess.Square, bool) {
	if c.ToFile == None || c.ToRank == None {
		return chess.NoSquare, false
	}
	return chess.NewSquare(c.ToFile, c.ToRank)
}

// String renders the candidate for debugging, e.g. "Piece N b- -> d2".
func (c Candidate) String() string {
	switch c.Shape {
	case ShapeCastleKingside, ShapeCastleQueenside:
		return c.Shape.String()
	}
	s := fmt.Sprintf("%s %c %s%s -> %s%s", c.Shape, c.Piece.Letter(),
		fileString(c.FromFile), rankString(c.FromRank),
		fileString(c.ToFile), rankString(c.ToRank))
	if c.Promotion != chess.NoPiece {
		s += "=" + string(c.Promotion.Letter())
	}
	return s
}

func fileString(f int) string {
	if f == None {
		return "-"
	}
	return string(chess.FileLetter(f))
}

func rankString(r int) string {
	if r == None {
		return "-"
	}
	return string(chess.RankDigit(r))
}
