package chess

import "fmt"

// MoveKind discriminates the variants of a Move.
type MoveKind int

const (
	// PieceMove relocates one piece; en passant captures are piece moves.
	PieceMove MoveKind = iota
	// Promotion moves a pawn to the farthest rank and replaces it.
	Promotion
	CastleKingside
	CastleQueenside
)

// String returns the name of the move kind.
func (k MoveKind) String() string {
	switch k {
	case PieceMove:
		return "PieceMove"
	case Promotion:
		return "Promotion"
	case CastleKingside:
		return "CastleKingside"
	case CastleQueenside:
		return "CastleQueenside"
	}
	return "Unknown"
}

// Move is an immutable move value. Which fields are meaningful depends on
// Kind:
//
//	PieceMove:       Piece, From, To, EnPassant
//	Promotion:       From, To, PromoteTo
//	CastleKingside:  none
//	CastleQueenside: none
//
// EnPassant is derived during validation; callers may leave it false.
type Move struct {
	Kind      MoveKind
	Piece     PieceKind
	From      Square
	To        Square
	EnPassant bool
	PromoteTo PieceKind
}

// NewPieceMove returns a piece move of kind from one square to another.
func NewPieceMove(kind PieceKind, from, to Square) Move {
	return Move{Kind: PieceMove, Piece: kind, From: from, To: to}
}

// NewPromotion returns a pawn move that promotes to the given kind.
func NewPromotion(from, to Square, promoteTo PieceKind) Move {
	return Move{Kind: Promotion, Piece: Pawn, From: from, To: to, PromoteTo: promoteTo}
}

// KingsideCastle returns the short castle move.
func KingsideCastle() Move {
	return Move{Kind: CastleKingside, From: NoSquare, To: NoSquare}
}

// QueensideCastle returns the long castle move.
func QueensideCastle() Move {
	return Move{Kind: CastleQueenside, From: NoSquare, To: NoSquare}
}

// IsCastle reports whether m is either castle.
func (m Move) IsCastle() bool {
	return m.Kind == CastleKingside || m.Kind == CastleQueenside
}

// String describes the move in words, for logs and console output.
func (m Move) String() string {
	switch m.Kind {
	case PieceMove:
		s := fmt.Sprintf("%s in %s to %s", m.Piece, m.From, m.To)
		if m.EnPassant {
			s += ", takes en passant"
		}
		return s
	case Promotion:
		return fmt.Sprintf("Pawn in %s to %s, promoted to %s", m.From, m.To, m.PromoteTo)
	case CastleKingside:
		return "Short castle"
	case CastleQueenside:
		return "Long castle"
	}
	return "Unknown move"
}

// Castle describes the fixed squares involved in one castle for one side.
type Castle struct {
	KingFrom Square
	KingTo   Square
	RookFrom Square
	RookTo   Square
	// Between lists the squares strictly between king and rook.
	Between []Square
	// KingPath lists the king's current, transit and destination squares.
	KingPath []Square
}

var castles = map[Side]map[MoveKind]Castle{
	White: {
		CastleKingside: {
			KingFrom: E1, KingTo: G1, RookFrom: H1, RookTo: F1,
			Between:  []Square{F1, G1},
			KingPath: []Square{E1, F1, G1},
		},
		CastleQueenside: {
			KingFrom: E1, KingTo: C1, RookFrom: A1, RookTo: D1,
			Between:  []Square{B1, C1, D1},
			KingPath: []Square{C1, D1, E1},
		},
	},
	Black: {
		CastleKingside: {
			KingFrom: E8, KingTo: G8, RookFrom: H8, RookTo: F8,
			Between:  []Square{F8, G8},
			KingPath: []Square{E8, F8, G8},
		},
		CastleQueenside: {
			KingFrom: E8, KingTo: C8, RookFrom: A8, RookTo: D8,
			Between:  []Square{B8, C8, D8},
			KingPath: []Square{C8, D8, E8},
		},
	},
}

// CastleSquares returns the castle geometry for side. kind must be
// CastleKingside or CastleQueenside; ok is false for any other kind.
func CastleSquares(side Side, kind MoveKind) (Castle, bool) {
	c, ok := castles[side][kind]
	return c, ok
}
