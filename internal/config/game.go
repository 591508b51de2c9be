package config

import (
	"fmt"
	"sort"

	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Presets are named starting positions for trying out particular rules.
var Presets = map[string]string{
	"promotion-test": "k4r2/3PP3/8/8/2p3p1/7P/1P1pp3/K7 w - - 0 1",
	"notation-test":  "3r3r/1K1k4/8/R7/4Q2Q/8/8/R6Q w - - 0 54",
	"castle-test":    "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
}

// PresetNames returns the preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GameConfig selects the position new games start from.
type GameConfig struct {
	// StartFEN overrides the standard starting position.
	StartFEN string

	// Preset names an entry of Presets. StartFEN wins when both are set.
	Preset string
}

// NewGameConfig creates a GameConfig that starts from the standard position.
func NewGameConfig() *GameConfig {
	return &GameConfig{}
}

// StartPosition returns the FEN new games start from.
func (g *GameConfig) StartPosition() string {
	if g.StartFEN != "" {
		return g.StartFEN
	}
	if fen, ok := Presets[g.Preset]; ok {
		return fen
	}
	return engine.InitialFEN
}

// NewGame creates a game from the configured starting position.
func (g *GameConfig) NewGame() (*engine.GameState, error) {
	return engine.ParseFEN(g.StartPosition())
}

// Validate checks that the preset exists and the start position parses.
func (g *GameConfig) Validate() error {
	if g.Preset != "" {
		if _, ok := Presets[g.Preset]; !ok {
			return fmt.Errorf("unknown preset %q: %w", g.Preset, errors.ErrInvalidConfig)
		}
	}
	if _, err := g.NewGame(); err != nil {
		return fmt.Errorf("start position: %v: %w", err, errors.ErrInvalidConfig)
	}
	return nil
}
