// Package engine implements the chess rules: move legality, board updates,
// check detection, the game state machine and the FEN and notation codecs.
package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsPieceMoveLegal reports whether piece may move from one square to another
// on b according to how that piece moves. It does not consider whether the
// move leaves the mover's own king in check. ep is the current en passant
// target square, or chess.NoSquare.
//
// enPassant is true when the move is a pawn capturing onto ep.
func IsPieceMoveLegal(piece chess.PlacedPiece, from, to, ep chess.Square, b *chess.Board) (legal, enPassant bool) {
	if !from.Valid() || !to.Valid() || from == to {
		return false, false
	}
	delta := to.Coord().Sub(from.Coord())

	switch piece.Kind {
	case chess.Pawn:
		return isPawnMoveLegal(piece.Side, from, to, ep, b)

	case chess.Knight:
		f, r := abs(delta.File), abs(delta.Rank)
		if !(f == 1 && r == 2) && !(f == 2 && r == 1) {
			return false, false
		}
		return !hasFriendlyPiece(b, piece.Side, to), false

	case chess.King:
		if n, ok := delta.Magnitude(); !ok || n != 1 {
			return false, false
		}
		return IsPathClear(b, piece, from, to), false

	case chess.Rook:
		if delta.File != 0 && delta.Rank != 0 {
			return false, false
		}
		return IsPathClear(b, piece, from, to), false

	case chess.Bishop:
		if abs(delta.File) != abs(delta.Rank) {
			return false, false
		}
		return IsPathClear(b, piece, from, to), false

	case chess.Queen:
		if _, ok := delta.Magnitude(); !ok {
			return false, false
		}
		return IsPathClear(b, piece, from, to), false
	}

	return false, false
}

// isPawnMoveLegal checks single and double advances and diagonal captures.
func isPawnMoveLegal(side chess.Side, from, to, ep chess.Square, b *chess.Board) (bool, bool) {
	delta := to.Coord().Sub(from.Coord())
	forward := side.Forward()

	switch {
	case delta.File == 0 && delta.Rank == forward:
		return b.IsEmpty(to), false

	case delta.File == 0 && delta.Rank == 2*forward:
		if from.Rank() != side.PawnRank() {
			return false, false
		}
		mid, ok := chess.SquareFromCoord(from.Coord().Add(chess.Coord{Rank: forward}))
		return ok && b.IsEmpty(mid) && b.IsEmpty(to), false

	case abs(delta.File) == 1 && delta.Rank == forward:
		if target, ok := b.PieceAt(to); ok {
			return target.Side != side, false
		}
		if ep.Valid() && to == ep {
			// The pawn being taken sits beside the capturer, behind ep.
			behind, _ := chess.NewSquare(to.File(), from.Rank())
			victim, ok := b.PieceAt(behind)
			if ok && victim.Side != side && victim.Kind == chess.Pawn {
				return true, true
			}
		}
	}

	return false, false
}

// IsPathClear reports whether piece can travel in a straight line from one
// square to another: every square strictly between them must be empty and
// the destination must not hold a piece of piece's side.
//
// The displacement must be horizontal, vertical or diagonal. Any other
// displacement, or an invalid square, reports false.
func IsPathClear(b *chess.Board, piece chess.PlacedPiece, from, to chess.Square) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}
	delta := to.Coord().Sub(from.Coord())
	n, ok := delta.Magnitude()
	if !ok {
		return false
	}

	step := delta.Unit()
	pos := from.Coord()
	for i := 1; i < n; i++ {
		pos = pos.Add(step)
		sq, _ := chess.SquareFromCoord(pos)
		if !b.IsEmpty(sq) {
			return false
		}
	}

	return !hasFriendlyPiece(b, piece.Side, to)
}

func hasFriendlyPiece(b *chess.Board, side chess.Side, sq chess.Square) bool {
	p, ok := b.PieceAt(sq)
	return ok && p.Side == side
}
