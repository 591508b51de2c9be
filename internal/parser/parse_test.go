package parser_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/parser"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

const none = parser.None

// cand builds an expected candidate; files and ranks are 0-based.
func cand(shape parser.Shape, piece chess.PieceKind, fromFile, fromRank, toFile, toRank int) parser.Candidate {
	return parser.Candidate{
		Shape:    shape,
		Piece:    piece,
		FromFile: fromFile,
		FromRank: fromRank,
		ToFile:   toFile,
		ToRank:   toRank,
	}
}

func with(c parser.Candidate, f func(*parser.Candidate)) parser.Candidate {
	f(&c)
	return c
}

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  []parser.Candidate
	}{
		{"e4", []parser.Candidate{cand(parser.ShapePawnPush, chess.Pawn, none, none, 4, 3)}},
		{" e 4 ", []parser.Candidate{cand(parser.ShapePawnPush, chess.Pawn, none, none, 4, 3)}},
		{"b4", []parser.Candidate{cand(parser.ShapePawnPush, chess.Pawn, none, none, 1, 3)}},
		{"Nf3", []parser.Candidate{cand(parser.ShapePiece, chess.Knight, none, none, 5, 2)}},
		{"nf3", []parser.Candidate{cand(parser.ShapePiece, chess.Knight, none, none, 5, 2)}},
		{"Nbd2", []parser.Candidate{cand(parser.ShapePiece, chess.Knight, 1, none, 3, 1)}},
		{"N2d4", []parser.Candidate{cand(parser.ShapePiece, chess.Knight, none, 1, 3, 3)}},
		{"Ng1f3", []parser.Candidate{cand(parser.ShapePiece, chess.Knight, 6, 0, 5, 2)}},
		{"Kxe2+", []parser.Candidate{with(cand(parser.ShapePiece, chess.King, none, none, 4, 1), func(c *parser.Candidate) {
			c.Capture, c.Check = true, true
		})}},
		{"Bbxb4 e.p.#", []parser.Candidate{with(cand(parser.ShapePiece, chess.Bishop, 1, none, 1, 3), func(c *parser.Candidate) {
			c.Capture, c.EnPassant, c.Checkmate = true, true, true
		})}},
		{"exd5", []parser.Candidate{with(cand(parser.ShapePawnCapture, chess.Pawn, 4, none, 3, 4), func(c *parser.Candidate) {
			c.Capture = true
		})}},
		{"ed#", []parser.Candidate{with(cand(parser.ShapePawnCapture, chess.Pawn, 4, none, 3, none), func(c *parser.Candidate) {
			c.Checkmate = true
		})}},
		{"exd6e.p.", []parser.Candidate{with(cand(parser.ShapePawnCapture, chess.Pawn, 4, none, 3, 5), func(c *parser.Candidate) {
			c.Capture, c.EnPassant = true, true
		})}},
		{"bc4", []parser.Candidate{
			cand(parser.ShapePawnCapture, chess.Pawn, 1, none, 2, 3),
			cand(parser.ShapePiece, chess.Bishop, none, none, 2, 3),
		}},
		{"e8=Q", []parser.Candidate{with(cand(parser.ShapePawnPush, chess.Pawn, none, none, 4, 7), func(c *parser.Candidate) {
			c.Promotion = chess.Queen
		})}},
		{"e8n", []parser.Candidate{with(cand(parser.ShapePawnPush, chess.Pawn, none, none, 4, 7), func(c *parser.Candidate) {
			c.Promotion = chess.Knight
		})}},
		{"dxe8=R+", []parser.Candidate{with(cand(parser.ShapePawnCapture, chess.Pawn, 3, none, 4, 7), func(c *parser.Candidate) {
			c.Capture, c.Promotion, c.Check = true, chess.Rook, true
		})}},
		{"O-O", []parser.Candidate{cand(parser.ShapeCastleKingside, chess.King, none, none, none, none)}},
		{"0-0-0", []parser.Candidate{cand(parser.ShapeCastleQueenside, chess.King, none, none, none, none)}},
		{"o-o#", []parser.Candidate{with(cand(parser.ShapeCastleKingside, chess.King, none, none, none, none), func(c *parser.Candidate) {
			c.Checkmate = true
		})}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parser.Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.input, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		input string
		want  parser.MoveParseError
	}{
		{"", parser.CantParse},
		{"   ", parser.CantParse},
		{"zz", parser.CantParse},
		{"123", parser.CantParse},
		{"e4x", parser.CantParse},
		{"O-O++", parser.CantParse},
		{"N", parser.NoDestination},
		{"Nf", parser.NoDestination},
		{"e9", parser.NoDestination},
		{"Qx", parser.NoDestination},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parser.Parse(tt.input)
			if err != tt.want {
				t.Fatalf("Parse(%q) = %v, %v; want error %v", tt.input, got, err, tt.want)
			}
			testutil.AssertErrorIs(t, err, errors.ErrParseFailure)
		})
	}
}

func TestCandidateString(t *testing.T) {
	c := cand(parser.ShapePiece, chess.Knight, 1, none, 3, 1)
	testutil.AssertEqual(t, c.String(), "Piece N b- -> d2")

	sq, ok := c.Destination()
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, sq, chess.D2)

	_, ok = cand(parser.ShapePawnCapture, chess.Pawn, 4, none, 3, none).Destination()
	testutil.AssertFalse(t, ok)
}
