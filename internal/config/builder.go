package config

import (
	"io"
	"time"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithStartFEN sets the position new games start from.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.Game.StartFEN = fen
	return b
}

// WithPreset selects a named starting position.
func (b *ConfigBuilder) WithPreset(name string) *ConfigBuilder {
	b.cfg.Game.Preset = name
	return b
}

// WithColour sets the text board colour mode.
func (b *ConfigBuilder) WithColour(mode ColourMode) *ConfigBuilder {
	b.cfg.Display.Colour = mode
	return b
}

// WithUnicode draws pieces as chess symbols.
func (b *ConfigBuilder) WithUnicode(enabled bool) *ConfigBuilder {
	b.cfg.Display.Unicode = enabled
	return b
}

// WithFromBlack flips the board.
func (b *ConfigBuilder) WithFromBlack(enabled bool) *ConfigBuilder {
	b.cfg.Display.FromBlack = enabled
	return b
}

// WithSquareSize sets the SVG square size.
func (b *ConfigBuilder) WithSquareSize(px int) *ConfigBuilder {
	b.cfg.Display.SquareSize = px
	return b
}

// WithWorkers sets the number of batch workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Batch.Workers = n
	return b
}

// WithListenAddr sets the game service address.
func (b *ConfigBuilder) WithListenAddr(addr string) *ConfigBuilder {
	b.cfg.Server.ListenAddr = addr
	return b
}

// WithAllowedOrigins sets the origins both services accept.
func (b *ConfigBuilder) WithAllowedOrigins(origins ...string) *ConfigBuilder {
	b.cfg.Server.AllowedOrigins = origins
	b.cfg.Relay.AllowedOrigins = origins
	return b
}

// WithMaxGames caps the number of live games in the game service.
func (b *ConfigBuilder) WithMaxGames(n int) *ConfigBuilder {
	b.cfg.Server.MaxGames = n
	return b
}

// WithIdleTimeout sets the game service idle timeout.
func (b *ConfigBuilder) WithIdleTimeout(d time.Duration) *ConfigBuilder {
	b.cfg.Server.IdleTimeout = d
	return b
}

// WithRelayAddr sets the match relay address.
func (b *ConfigBuilder) WithRelayAddr(addr string) *ConfigBuilder {
	b.cfg.Relay.ListenAddr = addr
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLogOutput sets the log writer.
func (b *ConfigBuilder) WithLogOutput(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
