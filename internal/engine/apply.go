package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// ApplyMove plays m on b for the side to move, updates castling rights,
// flips the side to move and reports whether a piece was captured
// (en passant included). m is expected to have been validated already.
func ApplyMove(b *chess.Board, m chess.Move) bool {
	side := b.ToMove
	captured := false

	switch m.Kind {
	case chess.PieceMove, chess.Promotion:
		captured = applyPieceMove(b, m)

	case chess.CastleKingside, chess.CastleQueenside:
		applyCastle(b, side, m.Kind)
	}

	b.ToMove = side.Opposite()
	return captured
}

// applyPieceMove relocates the moving piece, removing any capture.
func applyPieceMove(b *chess.Board, m chess.Move) bool {
	piece, ok := b.Remove(m.From)
	if !ok {
		return false
	}

	captured := false
	if victim, ok := b.Remove(m.To); ok {
		captured = true
		revokeRookRights(b, victim, m.To)
	}

	if m.Kind == chess.PieceMove && m.EnPassant {
		behind, _ := chess.NewSquare(m.To.File(), m.From.Rank())
		if _, ok := b.Remove(behind); ok {
			captured = true
		}
	}

	switch piece.Kind {
	case chess.King:
		b.Castling.RevokeAll(piece.Side)
	case chess.Rook:
		revokeRookRights(b, piece, m.From)
	}

	if m.Kind == chess.Promotion {
		piece.Kind = m.PromoteTo
	}
	b.Place(m.To, piece)

	return captured
}

// applyCastle moves king and rook to their castled squares.
func applyCastle(b *chess.Board, side chess.Side, kind chess.MoveKind) {
	c, ok := chess.CastleSquares(side, kind)
	if !ok {
		return
	}

	if king, ok := b.Remove(c.KingFrom); ok {
		b.Place(c.KingTo, king)
	}
	if rook, ok := b.Remove(c.RookFrom); ok {
		b.Place(c.RookTo, rook)
	}

	b.Castling.RevokeAll(side)
}

// revokeRookRights removes a castling right when a rook leaves, or is
// captured on, its home square.
func revokeRookRights(b *chess.Board, piece chess.PlacedPiece, sq chess.Square) {
	if piece.Kind != chess.Rook {
		return
	}
	for _, kind := range []chess.MoveKind{chess.CastleKingside, chess.CastleQueenside} {
		if c, ok := chess.CastleSquares(piece.Side, kind); ok && c.RookFrom == sq {
			b.Castling.Revoke(piece.Side, kind)
		}
	}
}
