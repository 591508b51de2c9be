package engine

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// MoveNotation renders m, played from position b with en passant target ep,
// in short algebraic notation: "Nbd2", "exd6 e.p.", "e8=Q+", "O-O-O#".
// m is expected to be legal on b.
func MoveNotation(b *chess.Board, m chess.Move, ep chess.Square) string {
	var sb strings.Builder

	after := b.Copy()
	captured := ApplyMove(after, m)

	switch m.Kind {
	case chess.CastleKingside:
		sb.WriteString("O-O")
	case chess.CastleQueenside:
		sb.WriteString("O-O-O")
	default:
		piece, _ := b.PieceAt(m.From)
		if piece.Kind == chess.Pawn {
			if captured {
				sb.WriteByte(chess.FileLetter(m.From.File()))
			}
		} else {
			sb.WriteByte(piece.Kind.Letter())
			sb.WriteString(disambiguation(b, piece, m.From, m.To, ep))
		}
		if captured {
			sb.WriteByte('x')
		}
		sb.WriteString(m.To.String())
		if m.Kind == chess.Promotion {
			sb.WriteByte('=')
			sb.WriteByte(m.PromoteTo.Letter())
		}
		if m.EnPassant {
			sb.WriteString(" e.p.")
		}
	}

	nextEP := enPassantTarget(m)
	if IsInCheck(after, after.ToMove, nextEP) {
		if HasLegalMoves(after, nextEP) {
			sb.WriteByte('+')
		} else {
			sb.WriteByte('#')
		}
	}

	return sb.String()
}

// disambiguation returns the origin file, rank or square needed to tell the
// moving piece apart from other pieces of the same kind that could also
// legally reach to. File is preferred, then rank, then both.
func disambiguation(b *chess.Board, piece chess.PlacedPiece, from, to, ep chess.Square) string {
	var others []chess.Square
	for _, sq := range b.PiecesOfKind(piece.Side, piece.Kind) {
		if sq == from {
			continue
		}
		legal, enPassant := IsPieceMoveLegal(piece, sq, to, ep, b)
		if legal && tryMove(b, piece, moveFor(piece, sq, to, enPassant)) {
			others = append(others, sq)
		}
	}
	if len(others) == 0 {
		return ""
	}

	sameFile, sameRank := false, false
	for _, sq := range others {
		if sq.File() == from.File() {
			sameFile = true
		}
		if sq.Rank() == from.Rank() {
			sameRank = true
		}
	}

	switch {
	case !sameFile:
		return string(chess.FileLetter(from.File()))
	case !sameRank:
		return string(chess.RankDigit(from.Rank()))
	}
	return from.String()
}
