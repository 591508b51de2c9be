package main

import (
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

// resolveColour decides whether to emit ANSI colours on f.
func resolveColour(mode config.ColourMode, f *os.File) bool {
	switch mode {
	case config.ColourAlways:
		return true
	case config.ColourNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// consoleWriter wraps f so that ANSI sequences work on every platform, or
// strips them when colour is off.
func consoleWriter(f *os.File, colour bool) io.Writer {
	if colour {
		return colorable.NewColorable(f)
	}
	return colorable.NewNonColorable(f)
}
