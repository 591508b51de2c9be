// Package config provides configuration for the chess binaries: the
// starting position, display, batch replay and the network services.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Game    *GameConfig
	Display *DisplayConfig
	Batch   *BatchConfig
	Server  *ServerConfig
	Relay   *RelayConfig

	// Verbosity: 0=nothing, 1=summary, 2=running commentary
	Verbosity int

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Game:       NewGameConfig(),
		Display:    NewDisplayConfig(),
		Batch:      NewBatchConfig(),
		Server:     NewServerConfig(),
		Relay:      NewRelayConfig(),
		Verbosity:  1,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate checks every section and returns the first problem found,
// wrapping errors.ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.Verbosity < 0 || c.Verbosity > 2 {
		return fmt.Errorf("verbosity %d out of range 0-2: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if c.OutputFile == nil || c.LogFile == nil {
		return fmt.Errorf("output and log streams must be set: %w", errors.ErrInvalidConfig)
	}

	validators := []interface{ Validate() error }{c.Game, c.Display, c.Batch, c.Server, c.Relay}
	for _, v := range validators {
		if err := v.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// BatchConfig holds settings for replaying many games at once.
type BatchConfig struct {
	// Workers is the number of concurrent replays; 0 means one per CPU.
	Workers int

	// BufferSize bounds the job and result queues.
	BufferSize int

	// SuppressDuplicates drops games whose final position was already seen.
	SuppressDuplicates bool
}

// NewBatchConfig creates a BatchConfig with default values.
func NewBatchConfig() *BatchConfig {
	return &BatchConfig{BufferSize: 100}
}

// Validate checks the batch settings.
func (b *BatchConfig) Validate() error {
	if b.Workers < 0 {
		return fmt.Errorf("workers (%d) must not be negative: %w", b.Workers, errors.ErrInvalidConfig)
	}
	if b.BufferSize < 1 {
		return fmt.Errorf("buffer size (%d) must be positive: %w", b.BufferSize, errors.ErrInvalidConfig)
	}
	return nil
}
