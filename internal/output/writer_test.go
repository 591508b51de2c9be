package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

func sampleResults() []worker.Result {
	return []worker.Result{
		{Index: 0, Line: 1, FEN: "8/8/8/8/8/8/8/K6k w - - 0 1", SAN: []string{"Kb1"}, End: "Draw"},
		{Index: 1, Line: 3, Err: &errors.GameError{Err: errors.ErrIllegalMove, Source: "games.txt", Line: 3, PlyNum: 2}},
	}
}

// TestWriters_Interface verifies that writers implement the interface.
func TestWriters_Interface(t *testing.T) {
	var buf bytes.Buffer
	var _ ResultWriter = NewTextWriter(&buf)
	var _ ResultWriter = NewJSONWriter(&buf)
	var _ ResultWriter = NewJSONWriterSingle(&buf)
}

func TestTextWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewTextWriter(&buf)
	for _, res := range sampleResults() {
		testutil.AssertNoError(t, w.WriteResult(res))
	}
	testutil.AssertNoError(t, w.Close())

	want := "1\tDraw\t8/8/8/8/8/8/8/K6k w - - 0 1\n" +
		"3\terror\tgames.txt:3, ply 2: illegal move\n"
	testutil.AssertEqual(t, buf.String(), want)
}

func TestJSONWriter_Batch(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONWriter(&buf)
	for _, res := range sampleResults() {
		testutil.AssertNoError(t, w.WriteResult(res))
	}
	if buf.Len() != 0 {
		t.Fatalf("batch writer wrote before Close: %q", buf.String())
	}
	testutil.AssertNoError(t, w.Close())

	var got JSONOutput
	testutil.AssertNoError(t, json.Unmarshal(buf.Bytes(), &got))
	want := JSONOutput{Results: []JSONResult{
		{Line: 1, FEN: "8/8/8/8/8/8/8/K6k w - - 0 1", Moves: []string{"Kb1"}, EndState: "Draw"},
		{Line: 3, Error: "games.txt:3, ply 2: illegal move"},
	}}
	testutil.AssertEqual(t, got, want)

	// A second Close has nothing left to write.
	buf.Reset()
	testutil.AssertNoError(t, w.Close())
	testutil.AssertEqual(t, buf.Len(), 0)
}

func TestJSONWriter_Single(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONWriterSingle(&buf)
	for _, res := range sampleResults() {
		testutil.AssertNoError(t, w.WriteResult(res))
	}
	testutil.AssertNoError(t, w.Close())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	testutil.AssertEqual(t, len(lines), 2)
	testutil.AssertContains(t, lines[0], `"endState":"Draw"`)
	testutil.AssertContains(t, lines[1], `"error":"games.txt:3, ply 2: illegal move"`)
}
