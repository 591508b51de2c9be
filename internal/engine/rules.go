package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// HasInsufficientMaterial returns true if neither side has enough material
// left to deliver mate:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (bishops on the same colour)
func HasInsufficientMaterial(board *chess.Board) bool {
	minor := map[chess.Side][]chess.Located{}

	for _, side := range []chess.Side{chess.White, chess.Black} {
		for _, loc := range board.PiecesOf(side) {
			switch loc.Piece.Kind {
			case chess.King:
				continue
			case chess.Bishop, chess.Knight:
				minor[side] = append(minor[side], loc)
			default:
				// Any pawn, rook or queen can still mate.
				return false
			}
		}
	}

	white, black := minor[chess.White], minor[chess.Black]
	switch {
	case len(white)+len(black) <= 1:
		return true
	case len(white) == 1 && len(black) == 1:
		w, b := white[0], black[0]
		return w.Piece.Kind == chess.Bishop && b.Piece.Kind == chess.Bishop &&
			isLightSquare(w.Square) == isLightSquare(b.Square)
	}
	return false
}

// isLightSquare returns true if sq is a light square (a1 is dark).
func isLightSquare(sq chess.Square) bool {
	return (sq.File()+sq.Rank())%2 == 1
}
