package parser

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// Resolve turns one candidate into a concrete move for the side to move on
// b, with ep the current en passant target. It finds the piece the text
// refers to but does not check that the move is fully legal; submit the
// result to GameState.PerformMove.
func Resolve(c Candidate, b *chess.Board, ep chess.Square) (chess.Move, error) {
	switch c.Shape {
	case ShapeCastleKingside:
		return chess.KingsideCastle(), nil
	case ShapeCastleQueenside:
		return chess.QueensideCastle(), nil
	case ShapePawnPush:
		return resolvePawnPush(c, b)
	case ShapePawnCapture:
		return resolvePawnCapture(c, b, ep)
	case ShapePiece:
		return resolvePieceMove(c, b, ep)
	}
	return chess.Move{}, CantParse
}

// resolvePawnPush walks back from the destination, at most two ranks,
// looking for the side's pawn.
func resolvePawnPush(c Candidate, b *chess.Board) (chess.Move, error) {
	to, ok := c.Destination()
	if !ok {
		return chess.Move{}, NoDestination
	}

	side := b.ToMove
	back := chess.Coord{Rank: -side.Forward()}
	pos := to.Coord()
	for i := 0; i < 2; i++ {
		pos = pos.Add(back)
		from, ok := chess.SquareFromCoord(pos)
		if !ok {
			break
		}
		piece, ok := b.PieceAt(from)
		if !ok {
			continue
		}
		if piece != (chess.PlacedPiece{Side: side, Kind: chess.Pawn}) {
			break
		}
		return pawnMove(from, to, c.Promotion, false), nil
	}

	return chess.Move{}, NoPiece
}

// resolvePawnCapture finds the side's pawns on the origin file that can
// capture diagonally onto the destination file.
func resolvePawnCapture(c Candidate, b *chess.Board, ep chess.Square) (chess.Move, error) {
	if c.FromFile == None || c.ToFile == None {
		return chess.Move{}, NoDestination
	}

	side := b.ToMove
	pawn := chess.PlacedPiece{Side: side, Kind: chess.Pawn}

	var found []chess.Move
	for _, from := range b.PiecesInFile(side, chess.Pawn, c.FromFile) {
		targetRank := from.Rank() + side.Forward()
		if c.ToRank != None && c.ToRank != targetRank {
			continue
		}
		to, ok := chess.NewSquare(c.ToFile, targetRank)
		if !ok {
			continue
		}
		legal, enPassant := engine.IsPieceMoveLegal(pawn, from, to, ep, b)
		if !legal || !isCapture(b, to, enPassant) {
			continue
		}
		found = append(found, pawnMove(from, to, c.Promotion, enPassant))
	}

	return pickOne(found)
}

// resolvePieceMove finds the side's pieces of the given kind, narrowed by
// the origin file and rank, that can reach the destination.
func resolvePieceMove(c Candidate, b *chess.Board, ep chess.Square) (chess.Move, error) {
	to, ok := c.Destination()
	if !ok {
		return chess.Move{}, NoDestination
	}

	piece := chess.PlacedPiece{Side: b.ToMove, Kind: c.Piece}

	var found []chess.Move
	for _, from := range b.PiecesOfKind(piece.Side, piece.Kind) {
		if c.FromFile != None && from.File() != c.FromFile {
			continue
		}
		if c.FromRank != None && from.Rank() != c.FromRank {
			continue
		}
		if legal, _ := engine.IsPieceMoveLegal(piece, from, to, ep, b); legal {
			found = append(found, chess.NewPieceMove(piece.Kind, from, to))
		}
	}

	return pickOne(found)
}

func pickOne(found []chess.Move) (chess.Move, error) {
	switch len(found) {
	case 0:
		return chess.Move{}, NoPiece
	case 1:
		return found[0], nil
	}
	return chess.Move{}, Ambiguous
}

func pawnMove(from, to chess.Square, promotion chess.PieceKind, enPassant bool) chess.Move {
	if promotion != chess.NoPiece {
		return chess.NewPromotion(from, to, promotion)
	}
	m := chess.NewPieceMove(chess.Pawn, from, to)
	m.EnPassant = enPassant
	return m
}

// isCapture reports whether a diagonal pawn move onto to takes something.
func isCapture(b *chess.Board, to chess.Square, enPassant bool) bool {
	return enPassant || !b.IsEmpty(to)
}

// ParseMove parses text and resolves it against the current position of g.
// Candidates are tried in order and the first that resolves wins. When all
// fail, the error from the last candidate tried is returned.
func ParseMove(text string, g *engine.GameState) (chess.Move, error) {
	candidates, err := Parse(text)
	if err != nil {
		return chess.Move{}, err
	}

	b := g.Board()
	ep := g.EnPassantSquare()

	var lastErr error = CantParse
	for _, c := range candidates {
		m, err := Resolve(c, b, ep)
		if err == nil {
			return m, nil
		}
		lastErr = err
	}
	return chess.Move{}, lastErr
}

// Play parses text, resolves it and performs it on g. The error is a
// MoveParseError or an engine.MoveError.
func Play(g *engine.GameState, text string) (chess.Move, error) {
	m, err := ParseMove(text, g)
	if err != nil {
		return chess.Move{}, err
	}
	if err := g.PerformMove(m); err != nil {
		return chess.Move{}, err
	}
	moves := g.Moves()
	return moves[len(moves)-1], nil
}
