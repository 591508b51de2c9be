package worker

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"github.com/lgbarn/chess-rules-go/internal/parser"
)

// StartPos may be written instead of a FEN in batch input.
const StartPos = "startpos"

// ParseJob reads one batch line of the form "FEN|move move ...". The FEN
// may be StartPos. ok is false for blank lines and lines starting with '#'.
func ParseJob(text string) (job Job, ok bool, err error) {
	text = strings.TrimSpace(text)
	if text == "" || strings.HasPrefix(text, "#") {
		return Job{}, false, nil
	}

	fen, moves, found := strings.Cut(text, "|")
	if !found {
		return Job{}, false, &errors.ParseError{
			Err:      errors.ErrParseFailure,
			Input:    text,
			Expected: "FEN|moves",
			Got:      "no separator",
		}
	}

	fen = strings.TrimSpace(fen)
	if fen == StartPos {
		fen = ""
	}
	job = Job{StartFEN: fen}
	if fields := strings.Fields(moves); len(fields) > 0 {
		job.Moves = fields
	}
	return job, true, nil
}

// Replay plays job's moves from its starting position and stops at the
// first move that fails to parse or is illegal.
func Replay(job Job) Result {
	res := Result{Index: job.Index, Line: job.Line}

	var g *engine.GameState
	if job.StartFEN == "" {
		g = engine.NewGame()
	} else {
		var err error
		g, err = engine.ParseFEN(job.StartFEN)
		if err != nil {
			res.Err = &errors.GameError{Err: err, Line: job.Line}
			return res
		}
	}

	for i, text := range job.Moves {
		if _, err := parser.Play(g, text); err != nil {
			res.Err = &errors.GameError{Err: err, Line: job.Line, PlyNum: i + 1, MoveText: text}
			break
		}
		san, _ := g.Notation(g.MoveCount() - 1)
		res.SAN = append(res.SAN, san)
	}

	res.FEN = g.FEN()
	res.End = g.EndState().String()
	res.Final = hashing.NewSignature(g.Board(), g.EnPassantSquare(), g.MoveCount())
	return res
}

// RunBatch replays every line of r on a pool of numWorkers workers and
// returns the results in input order. Malformed lines produce a Result
// carrying the parse error. source names the input in errors.
func RunBatch(r io.Reader, source string, numWorkers, bufferSize int) ([]Result, error) {
	pool := NewPool(numWorkers, bufferSize, Replay)
	pool.Start()

	var (
		immediate []Result
		readErr   error
	)
	go func() {
		defer pool.Close()
		scanner := bufio.NewScanner(r)
		lineNum, index := 0, 0
		for scanner.Scan() {
			lineNum++
			job, ok, err := ParseJob(scanner.Text())
			if err != nil {
				immediate = append(immediate, Result{
					Index: index,
					Line:  lineNum,
					Err:   &errors.GameError{Err: err, Source: source, Line: lineNum},
				})
				index++
				continue
			}
			if !ok {
				continue
			}
			job.Index, job.Line = index, lineNum
			index++
			pool.Submit(job)
		}
		if err := scanner.Err(); err != nil {
			readErr = fmt.Errorf("reading %s: %w", source, err)
		}
	}()

	var results []Result
	for res := range pool.Results() {
		if ge, ok := res.Err.(*errors.GameError); ok {
			ge.Source = source
		}
		results = append(results, res)
	}
	// The submitting goroutine closed the pool, so immediate and readErr
	// are no longer written.
	results = append(results, immediate...)

	sort.Slice(results, func(i, j int) bool {
		return results[i].Index < results[j].Index
	})
	return results, readErr
}
