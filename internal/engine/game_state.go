package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// FiftyMoveLimit is the half-move clock value at which the game is drawn.
const FiftyMoveLimit = 50

// EndState reports whether a game is over and how.
type EndState int

const (
	Running EndState = iota
	Checkmate
	Draw
)

// String returns the name of the end state.
func (s EndState) String() string {
	switch s {
	case Running:
		return "Running"
	case Checkmate:
		return "Checkmate"
	case Draw:
		return "Draw"
	}
	return "Unknown"
}

// boardCache memoizes the board reached by replaying every move.
type boardCache struct {
	board *chess.Board
	valid bool
}

// GameState is a game in progress: the starting position, the moves played
// since, and the counters FEN needs. The current board is always derived
// by replaying the moves; the cache only avoids repeating that work.
//
// A GameState is not safe for concurrent use.
type GameState struct {
	start   *chess.Board
	startEP chess.Square
	moves   []chess.Move
	cache   boardCache

	halfMoveClock  int
	fullMoveNumber int
	epSquare       chess.Square
}

// NewGame creates a game from the standard starting position.
func NewGame() *GameState {
	return NewGameFromBoard(chess.NewStartingBoard())
}

// NewGameFromBoard creates a game starting from a copy of b, with clean
// counters and no en passant target.
func NewGameFromBoard(b *chess.Board) *GameState {
	return newGameState(b.Copy(), chess.NoSquare, 0, 1)
}

func newGameState(start *chess.Board, ep chess.Square, halfMove, fullMove int) *GameState {
	return &GameState{
		start:          start,
		startEP:        ep,
		halfMoveClock:  halfMove,
		fullMoveNumber: fullMove,
		epSquare:       ep,
	}
}

// current returns the cached board, replaying the history if needed.
// Callers inside the package must not modify the result.
func (g *GameState) current() *chess.Board {
	if !g.cache.valid {
		g.cache.board, _ = g.replay(len(g.moves))
		g.cache.valid = true
	}
	return g.cache.board
}

func (g *GameState) invalidate() {
	g.cache = boardCache{}
}

// replay applies the first n moves to a copy of the starting board and
// returns it with the en passant target in force after those moves.
func (g *GameState) replay(n int) (*chess.Board, chess.Square) {
	b := g.start.Copy()
	ep := g.startEP
	for _, m := range g.moves[:n] {
		ApplyMove(b, m)
		ep = enPassantTarget(m)
	}
	return b, ep
}

// enPassantTarget returns the square a two-step pawn advance passed over.
func enPassantTarget(m chess.Move) chess.Square {
	if m.Kind != chess.PieceMove || m.Piece != chess.Pawn {
		return chess.NoSquare
	}
	if abs(m.To.Rank()-m.From.Rank()) != 2 {
		return chess.NoSquare
	}
	sq, _ := chess.NewSquare(m.From.File(), (m.From.Rank()+m.To.Rank())/2)
	return sq
}

// Board returns a copy of the current position.
func (g *GameState) Board() *chess.Board {
	return g.current().Copy()
}

// BoardAt returns the position after the first ply moves, without touching
// the cached current board. ok is false if ply is out of range.
func (g *GameState) BoardAt(ply int) (*chess.Board, bool) {
	if ply < 0 || ply > len(g.moves) {
		return nil, false
	}
	b, _ := g.replay(ply)
	return b, true
}

// StartingBoard returns a copy of the position the game started from.
func (g *GameState) StartingBoard() *chess.Board {
	return g.start.Copy()
}

// SideToMove returns whose turn it is.
func (g *GameState) SideToMove() chess.Side {
	return g.current().ToMove
}

// EnPassantSquare returns the current en passant target, or chess.NoSquare.
func (g *GameState) EnPassantSquare() chess.Square {
	return g.epSquare
}

// HalfMoveClock returns the number of half-moves since the last capture or
// pawn move.
func (g *GameState) HalfMoveClock() int {
	return g.halfMoveClock
}

// FullMoveNumber returns the FEN full-move counter.
func (g *GameState) FullMoveNumber() int {
	return g.fullMoveNumber
}

// Moves returns a copy of the moves played so far.
func (g *GameState) Moves() []chess.Move {
	return append([]chess.Move(nil), g.moves...)
}

// MoveCount returns the number of moves played so far.
func (g *GameState) MoveCount() int {
	return len(g.moves)
}

// LastMove returns the most recent move.
func (g *GameState) LastMove() (chess.Move, bool) {
	if len(g.moves) == 0 {
		return chess.Move{}, false
	}
	return g.moves[len(g.moves)-1], true
}

// PerformMove validates m against the current position and, if it is legal,
// appends it to the game. On failure the game is unchanged and the returned
// error is a MoveError.
//
// The en passant flag of a piece move is recomputed; the caller's value is
// ignored.
func (g *GameState) PerformMove(m chess.Move) error {
	board := g.current()
	side := board.ToMove
	ep := g.epSquare

	switch m.Kind {
	case chess.PieceMove, chess.Promotion:
		piece, ok := board.PieceAt(m.From)
		if !ok {
			return TileFromIsEmpty
		}
		if piece.Side != side {
			return TileFromIsEnemyPiece
		}
		legal, enPassant := IsPieceMoveLegal(piece, m.From, m.To, ep, board)
		if !legal {
			return PieceDoesNotMoveLikeThat
		}

		if m.Kind == chess.PieceMove {
			if piece.Kind == chess.Pawn && m.To.Rank() == side.PromotionRank() {
				return PromotionPieceNotSpecified
			}
			m = chess.NewPieceMove(piece.Kind, m.From, m.To)
			m.EnPassant = enPassant
			break
		}

		if piece.Kind != chess.Pawn || m.To.Rank() != side.PromotionRank() {
			return PromotionNotLegal
		}
		if !m.PromoteTo.CanPromoteTo() {
			return PromotionWrongPiece
		}
		m = chess.NewPromotion(m.From, m.To, m.PromoteTo)

	case chess.CastleKingside, chess.CastleQueenside:
		if err := CheckCastle(board, m.Kind, ep); err != nil {
			return err
		}
		m = chess.Move{Kind: m.Kind, From: chess.NoSquare, To: chess.NoSquare}

	default:
		return PieceDoesNotMoveLikeThat
	}

	future := board.Copy()
	captured := ApplyMove(future, m)
	if IsInCheck(future, side, chess.NoSquare) {
		return InCheck
	}

	g.moves = append(g.moves, m)
	g.invalidate()
	g.epSquare = enPassantTarget(m)

	if captured || m.Piece == chess.Pawn {
		g.halfMoveClock = 0
	} else {
		g.halfMoveClock++
	}
	if side == chess.Black {
		g.fullMoveNumber++
	}

	return nil
}

// EndState reports whether the game is still running. A half-move clock at
// FiftyMoveLimit is a draw; otherwise a side to move with no legal move is
// checkmated if in check and stalemated if not.
func (g *GameState) EndState() EndState {
	if g.halfMoveClock >= FiftyMoveLimit {
		return Draw
	}
	return endStateOf(g.current(), g.epSquare)
}

func endStateOf(b *chess.Board, ep chess.Square) EndState {
	if HasLegalMoves(b, ep) {
		return Running
	}
	if IsInCheck(b, b.ToMove, ep) {
		return Checkmate
	}
	return Draw
}

// InCheck reports whether the side to move is in check.
func (g *GameState) InCheck() bool {
	b := g.current()
	return IsInCheck(b, b.ToMove, g.epSquare)
}

// LegalDestinations returns every square the piece on sq may move to,
// including the king's destination for each available castle. It is empty
// for an empty square or a piece of the side not to move.
func (g *GameState) LegalDestinations(sq chess.Square) []chess.Square {
	b := g.current()
	piece, ok := b.PieceAt(sq)
	if !ok || piece.Side != b.ToMove {
		return nil
	}

	coords, _ := FindLegalDestinations(b, sq, g.epSquare)
	result := make([]chess.Square, 0, len(coords)+2)
	for _, c := range coords {
		if to, ok := chess.SquareFromCoord(c); ok {
			result = append(result, to)
		}
	}

	if piece.Kind == chess.King {
		for _, m := range LegalCastles(b, g.epSquare) {
			if c, ok := chess.CastleSquares(piece.Side, m.Kind); ok && c.KingFrom == sq {
				result = append(result, c.KingTo)
			}
		}
	}
	return result
}

// MoveFromSquares builds the move a player means by dragging a piece from
// one square to another. A king moving two files from its home square is a
// castle. promoteTo is used only for a pawn reaching the far rank; when it
// is chess.NoPiece the resulting plain piece move will be rejected with
// PromotionPieceNotSpecified.
func (g *GameState) MoveFromSquares(from, to chess.Square, promoteTo chess.PieceKind) chess.Move {
	b := g.current()
	piece, ok := b.PieceAt(from)
	if !ok {
		return chess.NewPieceMove(chess.NoPiece, from, to)
	}

	if piece.Kind == chess.King {
		for _, kind := range []chess.MoveKind{chess.CastleKingside, chess.CastleQueenside} {
			c, _ := chess.CastleSquares(piece.Side, kind)
			if from == c.KingFrom && to == c.KingTo {
				return chess.Move{Kind: kind, From: chess.NoSquare, To: chess.NoSquare}
			}
		}
	}

	if piece.Kind == chess.Pawn && promoteTo != chess.NoPiece {
		return chess.NewPromotion(from, to, promoteTo)
	}
	return chess.NewPieceMove(piece.Kind, from, to)
}

// Notation returns the display notation of the ply-th move (0-based).
func (g *GameState) Notation(ply int) (string, bool) {
	if ply < 0 || ply >= len(g.moves) {
		return "", false
	}
	b, ep := g.replay(ply)
	return MoveNotation(b, g.moves[ply], ep), true
}

// InsufficientMaterial reports whether neither side can ever mate from the
// current position. It does not change EndState.
func (g *GameState) InsufficientMaterial() bool {
	return HasInsufficientMaterial(g.current())
}
