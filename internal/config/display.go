package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// ColourMode controls ANSI colouring of the text board.
type ColourMode int

const (
	ColourAuto   ColourMode = iota // Colour when writing to a terminal
	ColourAlways                   // Always emit ANSI sequences
	ColourNever                    // Plain text
)

// ParseColourMode converts "auto", "always" or "never".
func ParseColourMode(s string) (ColourMode, error) {
	switch s {
	case "auto", "":
		return ColourAuto, nil
	case "always":
		return ColourAlways, nil
	case "never":
		return ColourNever, nil
	}
	return ColourAuto, fmt.Errorf("colour mode %q: %w", s, errors.ErrInvalidConfig)
}

// DisplayConfig holds settings for drawing boards.
type DisplayConfig struct {
	// Colour selects ANSI colouring of the text board
	Colour ColourMode

	// Unicode draws pieces with chess symbols instead of FEN letters
	Unicode bool

	// Coordinates prints file letters and rank digits around the board
	Coordinates bool

	// FromBlack draws the board with rank 1 at the top
	FromBlack bool

	// SquareSize is the edge of one square in SVG output, in pixels
	SquareSize int
}

// NewDisplayConfig creates a DisplayConfig with default values.
func NewDisplayConfig() *DisplayConfig {
	return &DisplayConfig{
		Colour:      ColourAuto,
		Coordinates: true,
		SquareSize:  60,
	}
}

// Validate checks the display settings.
func (d *DisplayConfig) Validate() error {
	if d.SquareSize < 8 || d.SquareSize > 512 {
		return fmt.Errorf("square size %d out of range 8-512: %w", d.SquareSize, errors.ErrInvalidConfig)
	}
	return nil
}
