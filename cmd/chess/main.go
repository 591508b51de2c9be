// chess is a console chess game: two players take turns typing moves in
// algebraic notation. With -batch it replays games from a file instead.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	setupLogFile(cfg)

	if *listPresets {
		printPresets(cfg)
		os.Exit(0)
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if *batchFile != "" {
		setupOutputFile(cfg)
		failed, err := runBatch(cfg, *batchFile, *jsonOutput)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if failed > 0 {
			os.Exit(1)
		}
		return
	}

	game, err := cfg.Game.NewGame()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	colour := resolveColour(cfg.Display.Colour, os.Stdout)
	console := NewConsole(game, cfg, os.Stdin, consoleWriter(os.Stdout, colour), colour)
	if err := console.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}
}

// setupOutputFile configures the batch output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess [options]\n\n")
	fmt.Fprintf(os.Stderr, "Play chess on the console, or replay games with -batch.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nBatch file lines:\n")
	fmt.Fprintf(os.Stderr, "  startpos|e4 e5 Nf3\n")
	fmt.Fprintf(os.Stderr, "  <FEN>|<moves>\n")
	fmt.Fprintf(os.Stderr, "  # comments and blank lines are skipped\n")
}
