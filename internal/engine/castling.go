package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// CheckCastle validates castling of the given kind for the side to move.
// It returns nil or one of CastlingNoRights, CastlingTilesInBetweenNotFree
// and CastlingThroughCheck. Whether the castled king would be left in
// check is not examined here.
func CheckCastle(b *chess.Board, kind chess.MoveKind, ep chess.Square) error {
	side := b.ToMove
	c, ok := chess.CastleSquares(side, kind)
	if !ok || !b.Castling.Has(side, kind) {
		return CastlingNoRights
	}

	// Rights loaded from FEN may not match the placement.
	if p, ok := b.PieceAt(c.KingFrom); !ok || p != (chess.PlacedPiece{Side: side, Kind: chess.King}) {
		return CastlingNoRights
	}
	if p, ok := b.PieceAt(c.RookFrom); !ok || p != (chess.PlacedPiece{Side: side, Kind: chess.Rook}) {
		return CastlingNoRights
	}

	for _, sq := range c.Between {
		if !b.IsEmpty(sq) {
			return CastlingTilesInBetweenNotFree
		}
	}

	for _, sq := range c.KingPath {
		if IsSquareAttackedBy(b, side.Opposite(), sq, ep) {
			return CastlingThroughCheck
		}
	}

	return nil
}

// LegalCastles returns the castle moves the side to move can make.
func LegalCastles(b *chess.Board, ep chess.Square) []chess.Move {
	var result []chess.Move
	for _, m := range []chess.Move{chess.KingsideCastle(), chess.QueensideCastle()} {
		if CheckCastle(b, m.Kind, ep) != nil {
			continue
		}
		king := chess.PlacedPiece{Side: b.ToMove, Kind: chess.King}
		if tryMove(b, king, m) {
			result = append(result, m)
		}
	}
	return result
}
