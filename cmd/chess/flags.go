// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

var (
	// Starting position
	startFEN    = flag.String("fen", "", "Start from this FEN position")
	preset      = flag.String("preset", "", "Start from a named preset position (see -presets)")
	listPresets = flag.Bool("presets", false, "List the preset positions and exit")

	// Display options
	colourMode = flag.String("colour", "auto", "Colour the board: auto, always, never")
	unicode    = flag.Bool("unicode", false, "Draw pieces as chess symbols")
	fromBlack  = flag.Bool("flip", false, "Draw the board from Black's side")
	noCoords   = flag.Bool("nocoords", false, "Don't print file and rank labels")

	// Batch replay
	batchFile  = flag.String("batch", "", "Replay every 'FEN|moves' line of this file and exit")
	jsonOutput = flag.Bool("J", false, "Batch results in JSON format")
	workers    = flag.Int("workers", 0, "Number of batch workers (0 = one per CPU core)")
	noDupes    = flag.Bool("D", false, "Suppress games whose final position duplicates an earlier one")

	// Output and logging
	outputFile = flag.String("o", "", "Batch output file (default: stdout)")
	logFile    = flag.String("l", "", "Write diagnostics to log file")
	appendLog  = flag.String("L", "", "Append diagnostics to log file")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (no summary)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	cfg.Game.StartFEN = *startFEN
	cfg.Game.Preset = *preset

	mode, err := config.ParseColourMode(*colourMode)
	if err != nil {
		return err
	}
	cfg.Display.Colour = mode
	cfg.Display.Unicode = *unicode
	cfg.Display.FromBlack = *fromBlack
	cfg.Display.Coordinates = !*noCoords

	cfg.Batch.Workers = *workers
	cfg.Batch.SuppressDuplicates = *noDupes

	if *quiet {
		cfg.Verbosity = 0
	}
	return nil
}

// printPresets lists the preset positions.
func printPresets(cfg *config.Config) {
	for _, name := range config.PresetNames() {
		fmt.Fprintf(cfg.OutputFile, "%-16s %s\n", name, config.Presets[name])
	}
}
