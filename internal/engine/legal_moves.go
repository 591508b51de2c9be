package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

var (
	knightOffsets = []chess.Coord{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = []chess.Coord{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs  = []chess.Coord{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs  = []chess.Coord{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// FindLegalDestinations returns the squares the piece on sq can legally move
// to, as coordinates. Castling is not included; see LegalCastles.
// ok is false when sq is empty.
func FindLegalDestinations(b *chess.Board, sq, ep chess.Square) ([]chess.Coord, bool) {
	piece, ok := b.PieceAt(sq)
	if !ok {
		return nil, false
	}

	result := []chess.Coord{}
	for _, target := range candidateTargets(piece, sq) {
		to, ok := chess.SquareFromCoord(target)
		if !ok {
			continue
		}
		legal, enPassant := IsPieceMoveLegal(piece, sq, to, ep, b)
		if !legal {
			continue
		}
		if tryMove(b, piece, moveFor(piece, sq, to, enPassant)) {
			result = append(result, target)
		}
	}
	return result, true
}

// HasLegalMoves returns true if the side to move has at least one legal
// move, castling included.
func HasLegalMoves(b *chess.Board, ep chess.Square) bool {
	for _, loc := range b.PiecesOf(b.ToMove) {
		if dests, _ := FindLegalDestinations(b, loc.Square, ep); len(dests) > 0 {
			return true
		}
	}
	return len(LegalCastles(b, ep)) > 0
}

// candidateTargets generates the geometric destinations of a piece,
// clipped at the board edge, before any legality filtering.
func candidateTargets(piece chess.PlacedPiece, sq chess.Square) []chess.Coord {
	from := sq.Coord()
	var targets []chess.Coord

	switch piece.Kind {
	case chess.Pawn:
		fwd := piece.Side.Forward()
		targets = append(targets,
			from.Add(chess.Coord{Rank: fwd}),
			from.Add(chess.Coord{Rank: 2 * fwd}),
			from.Add(chess.Coord{File: -1, Rank: fwd}),
			from.Add(chess.Coord{File: 1, Rank: fwd}),
		)
	case chess.Knight:
		targets = offsetsFrom(from, knightOffsets)
	case chess.King:
		targets = offsetsFrom(from, kingOffsets)
	case chess.Bishop:
		targets = raysFrom(from, diagonalDirs)
	case chess.Rook:
		targets = raysFrom(from, straightDirs)
	case chess.Queen:
		targets = append(raysFrom(from, diagonalDirs), raysFrom(from, straightDirs)...)
	}
	return targets
}

func offsetsFrom(from chess.Coord, offsets []chess.Coord) []chess.Coord {
	targets := make([]chess.Coord, 0, len(offsets))
	for _, o := range offsets {
		if t := from.Add(o); t.OnBoard() {
			targets = append(targets, t)
		}
	}
	return targets
}

func raysFrom(from chess.Coord, dirs []chess.Coord) []chess.Coord {
	var targets []chess.Coord
	for _, dir := range dirs {
		for t := from.Add(dir); t.OnBoard(); t = t.Add(dir) {
			targets = append(targets, t)
		}
	}
	return targets
}

// moveFor builds the move a piece would make between two squares. A pawn
// reaching the far rank is simulated as a queen promotion.
func moveFor(piece chess.PlacedPiece, from, to chess.Square, enPassant bool) chess.Move {
	if piece.Kind == chess.Pawn && to.Rank() == piece.Side.PromotionRank() {
		return chess.NewPromotion(from, to, chess.Queen)
	}
	m := chess.NewPieceMove(piece.Kind, from, to)
	m.EnPassant = enPassant
	return m
}

// tryMove makes a move on a copied board and checks that it does not leave
// the mover's king in check.
func tryMove(b *chess.Board, mover chess.PlacedPiece, m chess.Move) bool {
	testBoard := b.Copy()
	testBoard.ToMove = mover.Side
	ApplyMove(testBoard, m)
	return !IsInCheck(testBoard, mover.Side, chess.NoSquare)
}
