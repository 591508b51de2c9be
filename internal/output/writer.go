// Package output formats games and batch replay results as text or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// ResultWriter is the interface for writing batch replay results.
// Different implementations handle different output formats.
type ResultWriter interface {
	// WriteResult writes a single result to the output.
	WriteResult(res worker.Result) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// TextWriter writes one line per result: the input line number, then the
// final FEN and end state, or the error.
type TextWriter struct {
	w io.Writer
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// WriteResult writes a result line.
func (tw *TextWriter) WriteResult(res worker.Result) error {
	if res.Err != nil {
		_, err := fmt.Fprintf(tw.w, "%d\terror\t%v\n", res.Line, res.Err)
		return err
	}
	_, err := fmt.Fprintf(tw.w, "%d\t%s\t%s\n", res.Line, res.End, res.FEN)
	return err
}

// Flush is a no-op; text lines are written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONResult is a batch result in JSON format.
type JSONResult struct {
	Line     int      `json:"line"`
	FEN      string   `json:"fen,omitempty"`
	Moves    []string `json:"moves,omitempty"`
	EndState string   `json:"endState,omitempty"`
	Error    string   `json:"error,omitempty"`
}

// JSONOutput holds multiple results for array output.
type JSONOutput struct {
	Results []JSONResult `json:"results"`
}

// ResultToJSON converts a replay result to JSON format.
func ResultToJSON(res worker.Result) JSONResult {
	jr := JSONResult{
		Line:     res.Line,
		FEN:      res.FEN,
		Moves:    res.SAN,
		EndState: res.End,
	}
	if res.Err != nil {
		jr.Error = res.Err.Error()
	}
	return jr
}

// JSONWriter writes results in JSON format.
// It buffers results and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w       io.Writer
	results []JSONResult
	single  bool // If true, write each result immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches results and writes them as an array on Close().
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// NewJSONWriterSingle creates a JSON writer that writes each result immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w, single: true}
}

// WriteResult buffers a result for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteResult(res worker.Result) error {
	jr := ResultToJSON(res)
	if jw.single {
		return json.NewEncoder(jw.w).Encode(jr)
	}
	jw.results = append(jw.results, jr)
	return nil
}

// Flush writes all buffered results as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.results) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONOutput{Results: jw.results})

	// Clear buffer after writing
	jw.results = jw.results[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
