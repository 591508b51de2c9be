package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsSquareAttackedBy returns true if some piece of side could move onto sq,
// ignoring whether that move would expose side's own king.
//
// Pawns attack only their two forward diagonals, whether or not sq is
// occupied, so an empty square a king wants to cross counts as attacked.
func IsSquareAttackedBy(b *chess.Board, side chess.Side, sq, ep chess.Square) bool {
	if !sq.Valid() {
		return false
	}
	for _, loc := range b.PiecesOf(side) {
		if attacks(b, loc, sq, ep) {
			return true
		}
	}
	return false
}

// attacks checks a single piece against the target square.
func attacks(b *chess.Board, loc chess.Located, target, ep chess.Square) bool {
	if loc.Square == target {
		return false
	}
	if loc.Piece.Kind == chess.Pawn {
		d := target.Coord().Sub(loc.Square.Coord())
		return abs(d.File) == 1 && d.Rank == loc.Piece.Side.Forward()
	}
	legal, _ := IsPieceMoveLegal(loc.Piece, loc.Square, target, ep, b)
	return legal
}

// IsInCheck returns true if side's king is attacked. A board without a king
// for side is never in check.
func IsInCheck(b *chess.Board, side chess.Side, ep chess.Square) bool {
	king, ok := b.KingSquare(side)
	if !ok {
		return false
	}
	return IsSquareAttackedBy(b, side.Opposite(), king, ep)
}
