package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// runBatch replays every game in path and writes one result per game to
// cfg.OutputFile. It returns the number of games that failed.
func runBatch(cfg *config.Config, path string, asJSON bool) (int, error) {
	file, err := os.Open(path) //nolint:gosec // G304: path comes from the command line
	if err != nil {
		return 0, errors.Wrap(err, "opening batch file")
	}
	defer file.Close()

	numWorkers := cfg.Batch.Workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	results, err := worker.RunBatch(file, path, numWorkers, cfg.Batch.BufferSize)
	if err != nil {
		return 0, err
	}

	return writeResults(cfg, results, asJSON)
}

// writeResults writes results in the chosen format and reports a summary
// to the log when verbose.
func writeResults(cfg *config.Config, results []worker.Result, asJSON bool) (int, error) {
	var w output.ResultWriter
	if asJSON {
		w = output.NewJSONWriter(cfg.OutputFile)
	} else {
		w = output.NewTextWriter(cfg.OutputFile)
	}

	var detector *hashing.DuplicateDetector
	if cfg.Batch.SuppressDuplicates {
		detector = hashing.NewDuplicateDetector(false, 0)
	}

	failed := 0
	for _, res := range results {
		// Input order decides which of two duplicates is kept.
		if detector != nil && res.Err == nil && detector.CheckAndAdd(res.Final) {
			continue
		}
		if res.Err != nil {
			failed++
			if cfg.Verbosity > 1 {
				fmt.Fprintf(cfg.LogFile, "%v\n", res.Err)
			}
		}
		if err := w.WriteResult(res); err != nil {
			return failed, err
		}
	}
	if err := w.Close(); err != nil {
		return failed, err
	}

	if cfg.Verbosity > 0 {
		fmt.Fprintf(cfg.LogFile, "%d games replayed, %d failed\n", len(results), failed)
		if detector != nil {
			fmt.Fprintf(cfg.LogFile, "%d duplicates suppressed\n", detector.DuplicateCount())
		}
	}
	return failed, nil
}
