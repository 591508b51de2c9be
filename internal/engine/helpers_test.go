package engine_test

import (
	"sort"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

// boardFrom returns the position described by fen.
func boardFrom(t *testing.T, fen string) *chess.Board {
	t.Helper()
	return testutil.MustGame(t, fen).Board()
}

// coordNames returns the sorted square names of coords.
func coordNames(coords []chess.Coord) []string {
	names := make([]string, 0, len(coords))
	for _, c := range coords {
		sq, _ := chess.SquareFromCoord(c)
		names = append(names, sq.String())
	}
	sort.Strings(names)
	return names
}

// squareNames returns the sorted names of squares.
func squareNames(squares []chess.Square) []string {
	names := make([]string, 0, len(squares))
	for _, sq := range squares {
		names = append(names, sq.String())
	}
	sort.Strings(names)
	return names
}
