package engine_test

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestMoveNotation(t *testing.T) {
	const notationFEN = "3r3r/1K1k4/8/R7/4Q2Q/8/8/R6Q w - - 0 54"

	tests := []struct {
		name string
		fen  string
		move chess.Move
		want string
	}{
		{"pawn push", "", chess.NewPieceMove(chess.Pawn, chess.E2, chess.E4), "e4"},
		{"knight", "", chess.NewPieceMove(chess.Knight, chess.G1, chess.F3), "Nf3"},
		{"knight by file", "4k3/8/8/8/8/8/8/1N2KN2 w - - 0 1", chess.NewPieceMove(chess.Knight, chess.B1, chess.D2), "Nbd2"},
		{"rook by rank", "4k3/8/8/R7/8/8/8/R3K3 w - - 0 1", chess.NewPieceMove(chess.Rook, chess.A1, chess.A3), "R1a3"},
		{"queen by square", notationFEN, chess.NewPieceMove(chess.Queen, chess.H4, chess.E1), "Qh4e1"},
		{"queen by file", notationFEN, chess.NewPieceMove(chess.Queen, chess.E4, chess.E1), "Qee1"},
		{"pawn capture", "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1", chess.NewPieceMove(chess.Pawn, chess.E4, chess.D5), "exd5"},
		{"piece capture with check", "n3k3/8/8/8/8/8/8/R3K3 w - - 0 1", chess.NewPieceMove(chess.Rook, chess.A1, chess.A8), "Rxa8+"},
		{"promotion with check", "k7/4P3/8/8/8/8/8/4K3 w - - 0 1", chess.NewPromotion(chess.E7, chess.E8, chess.Queen), "e8=Q+"},
		{"underpromotion", "k7/4P3/8/8/8/8/8/4K3 w - - 0 1", chess.NewPromotion(chess.E7, chess.E8, chess.Knight), "e8=N"},
		{"mate", "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1", chess.NewPieceMove(chess.Rook, chess.A1, chess.A8), "Ra8#"},
		{"short castle", "4k3/8/8/8/8/8/8/4K2R w K - 0 1", chess.KingsideCastle(), "O-O"},
		{"long castle with check", "3k4/8/8/8/8/8/8/R3K3 w Q - 0 1", chess.QueensideCastle(), "O-O-O+"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := testutil.MustGame(t, tt.fen)
			got := engine.MoveNotation(g.Board(), tt.move, g.EnPassantSquare())
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestNotation_FromGame(t *testing.T) {
	g := testutil.PlayFrom(t, "", "e4", "e5", "Nf3", "Nc6", "Bb5", "a6", "Bxc6", "dxc6", "O-O")

	want := []string{"e4", "e5", "Nf3", "Nc6", "Bb5", "a6", "Bxc6", "dxc6", "O-O"}
	for i, w := range want {
		got, ok := g.Notation(i)
		testutil.AssertTrue(t, ok)
		testutil.AssertEqual(t, got, w, "ply %d", i)
	}

	if _, ok := g.Notation(len(want)); ok {
		t.Error("Notation past the last move should fail")
	}
}
