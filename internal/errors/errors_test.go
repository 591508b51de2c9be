package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrInvalidFEN", ErrInvalidFEN, ErrInvalidFEN},
		{"ErrIllegalMove", ErrIllegalMove, ErrIllegalMove},
		{"ErrParseFailure", ErrParseFailure, ErrParseFailure},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
		{"ErrGameNotFound", ErrGameNotFound, ErrGameNotFound},
		{"ErrNotYourTurn", ErrNotYourTurn, ErrNotYourTurn},
		{"ErrTooManyGames", ErrTooManyGames, ErrTooManyGames},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

func TestSentinelErrors_Distinct(t *testing.T) {
	if errors.Is(ErrIllegalMove, ErrParseFailure) {
		t.Error("ErrIllegalMove matches ErrParseFailure")
	}
}

func TestGameError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *GameError
		contains []string
		exact    string
	}{
		{
			name: "full context",
			err: &GameError{
				Err:      ErrIllegalMove,
				GameID:   "abc",
				PlyNum:   12,
				MoveText: "Nxe5",
				Source:   "games.txt",
				Line:     42,
			},
			contains: []string{"game abc", "ply 12", "Nxe5", "games.txt:42", "illegal move"},
		},
		{
			name:  "no context",
			err:   &GameError{Err: ErrParseFailure},
			exact: "parse failure",
		},
		{
			name:  "no error",
			err:   &GameError{GameID: "g1"},
			exact: "game g1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			if tt.exact != "" && msg != tt.exact {
				t.Errorf("GameError.Error() = %q, want %q", msg, tt.exact)
			}
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("GameError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

func TestGameError_As(t *testing.T) {
	gameErr := &GameError{
		Err:      ErrIllegalMove,
		GameID:   "g3",
		PlyNum:   24,
		MoveText: "O-O-O",
	}

	wrapped := fmt.Errorf("processing failed: %w", gameErr)

	var extractedErr *GameError
	if !errors.As(wrapped, &extractedErr) {
		t.Fatal("errors.As() could not extract GameError")
	}
	if extractedErr.PlyNum != 24 {
		t.Errorf("extractedErr.PlyNum = %d, want 24", extractedErr.PlyNum)
	}
	if !errors.Is(wrapped, ErrIllegalMove) {
		t.Error("errors.Is(wrapped, ErrIllegalMove) = false, want true")
	}
}

func TestParseError_Error(t *testing.T) {
	err := &ParseError{
		Err:      ErrInvalidFEN,
		Input:    "8/8 w",
		Field:    1,
		Expected: "8 ranks",
		Got:      "2",
	}

	msg := err.Error()
	for _, s := range []string{`"8/8 w"`, "field 1", "expected 8 ranks, got 2", "invalid FEN"} {
		if !containsIgnoreCase(msg, s) {
			t.Errorf("ParseError.Error() = %q, should contain %q", msg, s)
		}
	}
	if !errors.Is(err, ErrInvalidFEN) {
		t.Error("errors.Is(parseErr, ErrInvalidFEN) = false, want true")
	}
}

func TestParseError_Empty(t *testing.T) {
	if got := (&ParseError{}).Error(); got != "parse error" {
		t.Errorf("Error() = %q, want %q", got, "parse error")
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "ctx") != nil {
		t.Error("Wrap(nil) should be nil")
	}

	wrapped := Wrapf(ErrIllegalMove, "move %d in game %s", 15, "x")
	if !errors.Is(wrapped, ErrIllegalMove) {
		t.Error("Wrapf should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "move 15 in game x") {
		t.Errorf("Wrapf should include formatted context, got %q", wrapped.Error())
	}
}

func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
