// chess-server serves games over HTTP: a JSON API for creating games and
// playing moves, SVG board images, and websocket updates for watchers.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/server"
)

const programVersion = "0.1.0"

var (
	// Listening
	listenAddr = flag.String("addr", ":8080", "Address to listen on")
	origins    = flag.String("origins", "*", "Comma-separated origins allowed for CORS and websockets")
	maxGames   = flag.Int("maxgames", 1000, "Maximum number of live games (0 = no limit)")
	idle       = flag.Duration("idle", 0, "Close idle connections after this long (0 = default)")

	// Default start position for new games
	startFEN = flag.String("fen", "", "Default start position for new games")
	preset   = flag.String("preset", "", "Default preset position for new games")

	// Logging
	logFile = flag.String("l", "", "Append request and error log to file")
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
		fmt.Printf("chess-server version %s\n", programVersion)
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

	srv := server.New(cfg)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigs
		_ = srv.Shutdown()
	}()

	if err := srv.Listen(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// buildConfig turns the command-line flags into a configuration.
func buildConfig() *config.Config {
	b := config.NewConfigBuilder().
		WithStartFEN(*startFEN).
		WithPreset(*preset).
		WithListenAddr(*listenAddr).
		WithAllowedOrigins(splitList(*origins)...).
		WithMaxGames(*maxGames)
	if *idle > 0 {
		b = b.WithIdleTimeout(*idle)
	}
	if *verbose {
		b = b.WithVerbosity(2)
	}
	return b.Build()
}

// splitList splits a comma-separated flag value, dropping empty entries.
func splitList(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-server [options]\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nEndpoints:\n")
	fmt.Fprintf(os.Stderr, "  POST   /api/game                    create a game {\"fen\", \"preset\"}\n")
	fmt.Fprintf(os.Stderr, "  GET    /api/game/:id                game snapshot\n")
	fmt.Fprintf(os.Stderr, "  DELETE /api/game/:id                end a game\n")
	fmt.Fprintf(os.Stderr, "  POST   /api/game/:id/move           play {\"move\"} or {\"from\", \"to\"}\n")
	fmt.Fprintf(os.Stderr, "  GET    /api/game/:id/legal/:square  legal destinations\n")
	fmt.Fprintf(os.Stderr, "  GET    /api/game/:id/board.svg      board image\n")
	fmt.Fprintf(os.Stderr, "  GET    /ws/game/:id                 websocket updates\n")
}
