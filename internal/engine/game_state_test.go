package engine_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestNewGame(t *testing.T) {
	g := engine.NewGame()

	testutil.AssertEqual(t, g.FEN(), engine.InitialFEN)
	testutil.AssertEqual(t, g.SideToMove(), chess.White)
	testutil.AssertEqual(t, g.MoveCount(), 0)
	testutil.AssertEqual(t, g.EndState(), engine.Running)
	testutil.AssertFalse(t, g.InCheck())

	_, ok := g.LastMove()
	testutil.AssertFalse(t, ok, "LastMove on a new game")
}

func TestNewGameFromBoard_CopiesBoard(t *testing.T) {
	b := chess.NewStartingBoard()
	g := engine.NewGameFromBoard(b)

	b.Remove(chess.E1)
	if _, ok := g.Board().PieceAt(chess.E1); !ok {
		t.Error("changing the source board changed the game")
	}

	g.Board().Remove(chess.D1)
	if _, ok := g.Board().PieceAt(chess.D1); !ok {
		t.Error("changing a returned board changed the game")
	}
}

func TestPerformMove_Errors(t *testing.T) {
	const promoFEN = "k7/4P3/8/8/8/8/8/4K3 w - - 0 1"

	tests := []struct {
		name string
		fen  string
		move chess.Move
		want engine.MoveError
	}{
		{"empty origin", "", chess.NewPieceMove(chess.Pawn, chess.E3, chess.E4), engine.TileFromIsEmpty},
		{"enemy piece", "", chess.NewPieceMove(chess.Pawn, chess.E7, chess.E5), engine.TileFromIsEnemyPiece},
		{"bad knight move", "", chess.NewPieceMove(chess.Knight, chess.G1, chess.G3), engine.PieceDoesNotMoveLikeThat},
		{"promotion piece missing", promoFEN, chess.NewPieceMove(chess.Pawn, chess.E7, chess.E8), engine.PromotionPieceNotSpecified},
		{"promotion too early", "", chess.NewPromotion(chess.E2, chess.E4, chess.Queen), engine.PromotionNotLegal},
		{"promotion to king", promoFEN, chess.NewPromotion(chess.E7, chess.E8, chess.King), engine.PromotionWrongPiece},
		{"promotion to pawn", promoFEN, chess.NewPromotion(chess.E7, chess.E8, chess.Pawn), engine.PromotionWrongPiece},
		{"castle without rights", "4k3/8/8/8/8/8/8/4K2R w - - 0 1", chess.KingsideCastle(), engine.CastlingNoRights},
		{"castle through pieces", "", chess.KingsideCastle(), engine.CastlingTilesInBetweenNotFree},
		{"castle through check", "4kr2/8/8/8/8/8/8/4K2R w K - 0 1", chess.KingsideCastle(), engine.CastlingThroughCheck},
		{"pinned bishop", "4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1", chess.NewPieceMove(chess.Bishop, chess.E2, chess.D3), engine.InCheck},
		{"king into check", "4k3/8/8/8/8/8/8/r3K3 w - - 0 1", chess.NewPieceMove(chess.King, chess.E1, chess.D1), engine.InCheck},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := testutil.MustGame(t, tt.fen)
			before := g.FEN()

			err := g.PerformMove(tt.move)
			if err != tt.want {
				t.Fatalf("PerformMove(%v) = %v; want %v", tt.move, err, tt.want)
			}
			testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)
			testutil.AssertEqual(t, g.FEN(), before, "game changed after a rejected move")
			testutil.AssertEqual(t, g.MoveCount(), 0)
		})
	}
}

func TestPerformMove_Counters(t *testing.T) {
	g := testutil.PlayFrom(t, "", "e4")
	testutil.AssertEqual(t, g.FEN(), "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")

	testutil.MustPlay(t, g, "Nf6", "Nc3")
	testutil.AssertEqual(t, g.HalfMoveClock(), 2)
	testutil.AssertEqual(t, g.FullMoveNumber(), 2)
	testutil.AssertEqual(t, g.EnPassantSquare(), chess.NoSquare)

	testutil.MustPlay(t, g, "Nxe4")
	testutil.AssertEqual(t, g.HalfMoveClock(), 0, "capture resets the clock")
	testutil.AssertEqual(t, g.FullMoveNumber(), 3)
}

func TestPerformMove_StoresActualPiece(t *testing.T) {
	g := engine.NewGame()
	// The caller names the wrong kind; the game records what really moved.
	if err := g.PerformMove(chess.NewPieceMove(chess.Queen, chess.G1, chess.F3)); err != nil {
		t.Fatalf("PerformMove() error = %v", err)
	}
	last, _ := g.LastMove()
	testutil.AssertEqual(t, last, chess.NewPieceMove(chess.Knight, chess.G1, chess.F3))
}

func TestEnPassantWindow(t *testing.T) {
	g := testutil.PlayFrom(t, "", "e4", "a6", "e5", "d5")
	testutil.AssertEqual(t, g.FEN(), "rnbqkbnr/1pp1pppp/p7/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	testutil.AssertEqual(t, squareNames(g.LegalDestinations(chess.E5)), []string{"d6", "e6"})

	t.Run("capture immediately", func(t *testing.T) {
		g := testutil.PlayFrom(t, "", "e4", "a6", "e5", "d5", "exd6")
		last, _ := g.LastMove()
		testutil.AssertTrue(t, last.EnPassant, "stored move should be en passant")
		testutil.AssertEqual(t, g.FEN(), "rnbqkbnr/1pp1pppp/p2P4/8/8/8/PPPP1PPP/RNBQKBNR b KQkq - 0 3")
		n, _ := g.Notation(4)
		testutil.AssertEqual(t, n, "exd6 e.p.")
	})

	t.Run("window closed", func(t *testing.T) {
		g := testutil.PlayFrom(t, "", "e4", "a6", "e5", "d5", "Nf3", "Nc6")
		err := g.PerformMove(chess.NewPieceMove(chess.Pawn, chess.E5, chess.D6))
		if err != engine.PieceDoesNotMoveLikeThat {
			t.Errorf("late en passant = %v; want %v", err, engine.PieceDoesNotMoveLikeThat)
		}
	})
}

func TestEndState(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		moves     []string
		want      engine.EndState
		wantCheck bool
	}{
		{"opening", "", []string{"e4", "e5"}, engine.Running, false},
		{"back rank mate", "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1", []string{"Ra8"}, engine.Checkmate, true},
		{"fool's mate", "", []string{"f3", "e5", "g4", "Qh4"}, engine.Checkmate, true},
		{"stalemate", "7k/8/6K1/8/8/8/5Q2/8 w - - 0 1", []string{"Qf7"}, engine.Draw, false},
		{"check is not mate", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", []string{"Ra8"}, engine.Running, true},
		{"fifty moves", "4k3/8/8/8/8/8/8/R3K3 w - - 49 40", []string{"Ra2"}, engine.Draw, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := testutil.PlayFrom(t, tt.fen, tt.moves...)
			testutil.AssertEqual(t, g.EndState(), tt.want)
			testutil.AssertEqual(t, g.InCheck(), tt.wantCheck)
		})
	}
}

func TestEndState_FiftyMoveShuffle(t *testing.T) {
	g := testutil.MustGame(t, "4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	shuffle := []string{"Ra2", "Kd8", "Ra1", "Ke8"}

	for i := 0; i < engine.FiftyMoveLimit; i++ {
		if g.EndState() != engine.Running {
			t.Fatalf("game ended after %d half-moves", i)
		}
		testutil.MustPlay(t, g, shuffle[i%len(shuffle)])
	}
	testutil.AssertEqual(t, g.HalfMoveClock(), engine.FiftyMoveLimit)
	testutil.AssertEqual(t, g.EndState(), engine.Draw)
}

func TestCastling_Game(t *testing.T) {
	g := testutil.PlayFrom(t, "4k3/8/8/8/8/8/8/4K2R w K - 0 1", "O-O")
	testutil.AssertEqual(t, g.FEN(), "4k3/8/8/8/8/8/8/5RK1 b - - 1 1")
	n, _ := g.Notation(0)
	testutil.AssertEqual(t, n, "O-O")
}

func TestLegalDestinations(t *testing.T) {
	g := testutil.MustGame(t, "4k3/8/8/8/8/8/8/4K2R w K - 0 1")

	testutil.AssertEqual(t, squareNames(g.LegalDestinations(chess.E1)),
		[]string{"d1", "d2", "e2", "f1", "f2", "g1"})
	testutil.AssertNil(t, g.LegalDestinations(chess.E8), "piece of the side not to move")
	testutil.AssertNil(t, g.LegalDestinations(chess.A4), "empty square")
}

func TestMoveFromSquares(t *testing.T) {
	g := testutil.MustGame(t, "r3k3/4P3/8/8/8/8/8/4K2R w K - 0 1")

	tests := []struct {
		name      string
		from      chess.Square
		to        chess.Square
		promoteTo chess.PieceKind
		want      chess.Move
	}{
		{"king to castle square", chess.E1, chess.G1, chess.NoPiece, chess.KingsideCastle()},
		{"king step", chess.E1, chess.F1, chess.NoPiece, chess.NewPieceMove(chess.King, chess.E1, chess.F1)},
		{"rook", chess.H1, chess.H5, chess.NoPiece, chess.NewPieceMove(chess.Rook, chess.H1, chess.H5)},
		{"promotion", chess.E7, chess.E8, chess.Rook, chess.NewPromotion(chess.E7, chess.E8, chess.Rook)},
		{"promotion not chosen", chess.E7, chess.E8, chess.NoPiece, chess.NewPieceMove(chess.Pawn, chess.E7, chess.E8)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, g.MoveFromSquares(tt.from, tt.to, tt.promoteTo), tt.want)
		})
	}
}

func TestBoardAt(t *testing.T) {
	g := testutil.PlayFrom(t, "", "e4", "e5", "Nf3")

	b0, ok := g.BoardAt(0)
	testutil.AssertTrue(t, ok)
	if !b0.Equal(chess.NewStartingBoard()) {
		t.Error("BoardAt(0) is not the starting board")
	}

	b2, _ := g.BoardAt(2)
	testutil.AssertEqual(t, engine.PlacementFEN(b2), "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR")

	b3, _ := g.BoardAt(3)
	if !b3.Equal(g.Board()) {
		t.Error("BoardAt(MoveCount()) differs from Board()")
	}

	for _, ply := range []int{-1, 4} {
		if _, ok := g.BoardAt(ply); ok {
			t.Errorf("BoardAt(%d) should fail", ply)
		}
	}
}

func TestMovesIsCopy(t *testing.T) {
	g := testutil.PlayFrom(t, "", "d4")
	moves := g.Moves()
	moves[0] = chess.KingsideCastle()

	want := []chess.Move{chess.NewPieceMove(chess.Pawn, chess.D2, chess.D4)}
	if diff := cmp.Diff(want, g.Moves()); diff != "" {
		t.Errorf("Moves() mismatch (-want +got):\n%s", diff)
	}
}
