// chess-relay pairs players who connect over websockets into matches and
// relays their moves, checking each one against the rules.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/relay"
)

const programVersion = "0.1.0"

var (
	listenAddr = flag.String("addr", "", "Address to listen on (default 0.0.0.0:$PORT, or port 3333)")
	path       = flag.String("path", "/play", "Websocket endpoint players connect to")
	origins    = flag.String("origins", "*", "Comma-separated origins allowed to connect")

	startFEN = flag.String("fen", "", "Start matches from this FEN position")
	preset   = flag.String("preset", "", "Start matches from a preset position")

	logFile = flag.String("l", "", "Append log to file")
	verbose = flag.Bool("v", false, "Log every request")

	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}
	if *version {
		fmt.Printf("chess-relay version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := buildConfig()
	if *logFile != "" {
		file, err := os.OpenFile(*logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		defer file.Close()
		cfg.LogFile = file
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if err := relay.New(cfg).ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// buildConfig turns the command-line flags into a configuration.
func buildConfig() *config.Config {
	b := config.NewConfigBuilder().
		WithStartFEN(*startFEN).
		WithPreset(*preset).
		WithAllowedOrigins(strings.Split(*origins, ",")...)
	if *listenAddr != "" {
		b = b.WithRelayAddr(*listenAddr)
	}
	if *verbose {
		b = b.WithVerbosity(2)
	}
	cfg := b.Build()
	cfg.Relay.Path = *path
	return cfg
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-relay [options]\n\n")
	fmt.Fprintf(os.Stderr, "Players connect to ws://<addr><path>; every two players form a match.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
