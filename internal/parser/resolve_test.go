package parser_test

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/parser"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestParseMove(t *testing.T) {
	enPassant := chess.NewPieceMove(chess.Pawn, chess.E5, chess.D6)
	enPassant.EnPassant = true

	tests := []struct {
		name  string
		fen   string
		input string
		want  chess.Move
	}{
		{"pawn single push", "", "e3", chess.NewPieceMove(chess.Pawn, chess.E2, chess.E3)},
		{"pawn double push", "", "e4", chess.NewPieceMove(chess.Pawn, chess.E2, chess.E4)},
		{"black pawn push", "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1", "c5", chess.NewPieceMove(chess.Pawn, chess.C7, chess.C5)},
		{"knight", "", "Nf3", chess.NewPieceMove(chess.Knight, chess.G1, chess.F3)},
		{"knight by file", "4k3/8/8/8/8/8/8/1N2KN2 w - - 0 1", "Nbd2", chess.NewPieceMove(chess.Knight, chess.B1, chess.D2)},
		{"knight by full square", "4k3/8/8/8/8/8/8/1N2KN2 w - - 0 1", "Nf1d2", chess.NewPieceMove(chess.Knight, chess.F1, chess.D2)},
		{"rook by rank", "4k3/8/8/R7/8/8/8/R3K3 w - - 0 1", "R1a3", chess.NewPieceMove(chess.Rook, chess.A1, chess.A3)},
		{"pawn capture", "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1", "exd5", chess.NewPieceMove(chess.Pawn, chess.E4, chess.D5)},
		{"pawn capture without rank", "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1", "ed", chess.NewPieceMove(chess.Pawn, chess.E4, chess.D5)},
		{"en passant", "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1", "exd6", enPassant},
		{"en passant written out", "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1", "ed e.p.", enPassant},
		{"promotion", "k7/4P3/8/8/8/8/8/4K3 w - - 0 1", "e8=Q", chess.NewPromotion(chess.E7, chess.E8, chess.Queen)},
		{"capture promotion", "k2r4/4P3/8/8/8/8/8/4K3 w - - 0 1", "exd8=N", chess.NewPromotion(chess.E7, chess.D8, chess.Knight)},
		{"castle", "4k3/8/8/8/8/8/8/4K2R w K - 0 1", "O-O", chess.KingsideCastle()},
		{"long castle", "4k3/8/8/8/8/8/8/R3K3 w Q - 0 1", "O-O-O", chess.QueensideCastle()},
		{"b is a pawn", "4k3/8/8/8/2p5/1P6/8/4K3 w - - 0 1", "bc4", chess.NewPieceMove(chess.Pawn, chess.B3, chess.C4)},
		{"b is a bishop", "4k3/8/8/8/8/8/8/4KB2 w - - 0 1", "bc4", chess.NewPieceMove(chess.Bishop, chess.F1, chess.C4)},
		{"bishop capture", "4k3/8/8/8/8/3p4/8/4KB2 w - - 0 1", "Bxd3", chess.NewPieceMove(chess.Bishop, chess.F1, chess.D3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := testutil.MustGame(t, tt.fen)
			got, err := parser.ParseMove(tt.input, g)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestParseMove_Errors(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		input string
		want  parser.MoveParseError
	}{
		{"ambiguous knights", "4k3/8/8/8/8/8/8/1N2KN2 w - - 0 1", "Nd2", parser.Ambiguous},
		{"ambiguous rooks", "4k3/8/8/R7/8/8/8/R3K3 w - - 0 1", "Ra3", parser.Ambiguous},
		{"no such knight", "", "Ne4", parser.NoPiece},
		{"no pawn behind", "", "e5", parser.NoPiece},
		{"pawn blocked by piece", "4k3/8/8/8/8/4n3/4P3/4K3 w - - 0 1", "e4", parser.NoPiece},
		{"pawn capture onto empty square", "", "exd3", parser.NoPiece},
		{"no piece letter match", "", "Qh5", parser.NoPiece},
		{"incomplete", "", "Nf", parser.NoDestination},
		{"garbage", "", "!!", parser.CantParse},
		{"neither pawn nor bishop", "", "bc4", parser.NoPiece},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := testutil.MustGame(t, tt.fen)
			_, err := parser.ParseMove(tt.input, g)
			if err != tt.want {
				t.Fatalf("ParseMove(%q) error = %v; want %v", tt.input, err, tt.want)
			}
			testutil.AssertErrorIs(t, err, errors.ErrParseFailure)
		})
	}
}

func TestPlay(t *testing.T) {
	t.Run("records the corrected move", func(t *testing.T) {
		g := testutil.MustGame(t, "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
		m, err := parser.Play(g, "exd6")
		testutil.AssertNoError(t, err)
		testutil.AssertTrue(t, m.EnPassant)
		testutil.AssertEqual(t, g.FEN(), "4k3/8/3P4/8/8/8/8/4K3 b - - 0 1")
	})

	t.Run("engine rejection", func(t *testing.T) {
		g := testutil.MustGame(t, "4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1")
		_, err := parser.Play(g, "Bd3")
		if err != engine.InCheck {
			t.Fatalf("Play(Bd3) error = %v; want %v", err, engine.InCheck)
		}
		testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)
		testutil.AssertEqual(t, g.MoveCount(), 0)
	})

	t.Run("promotion required", func(t *testing.T) {
		g := testutil.MustGame(t, "k7/4P3/8/8/8/8/8/4K3 w - - 0 1")
		_, err := parser.Play(g, "e8")
		if err != engine.PromotionPieceNotSpecified {
			t.Fatalf("Play(e8) error = %v; want %v", err, engine.PromotionPieceNotSpecified)
		}
	})
}

func BenchmarkParseMove(b *testing.B) {
	inputs := []string{"e4", "Nf3", "exd5", "Nbd2", "O-O-O", "e8=Q+", "bc4"}
	g := engine.NewGame()
	for i := 0; i < b.N; i++ {
		for _, in := range inputs {
			parser.ParseMove(in, g)
		}
	}
}
