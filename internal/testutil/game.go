package testutil

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/parser"
)

// MustGame returns a game starting from fen, or from the standard position
// when fen is empty. It calls t.Fatal if the FEN does not parse.
func MustGame(t *testing.T, fen string) *engine.GameState {
	t.Helper()
	if fen == "" {
		return engine.NewGame()
	}
	g, err := engine.ParseFEN(fen)
	if err != nil {
		t.Fatalf("failed to parse FEN %q: %v", fen, err)
	}
	return g
}

// MustPlay plays each move text on g in order. It calls t.Fatal on the
// first move that fails to parse, resolve or perform.
func MustPlay(t *testing.T, g *engine.GameState, moves ...string) *engine.GameState {
	t.Helper()
	for i, text := range moves {
		if _, err := parser.Play(g, text); err != nil {
			t.Fatalf("move %d %q failed: %v", i+1, text, err)
		}
	}
	return g
}

// PlayFrom is MustGame followed by MustPlay.
func PlayFrom(t *testing.T, fen string, moves ...string) *engine.GameState {
	t.Helper()
	return MustPlay(t, MustGame(t, fen), moves...)
}
