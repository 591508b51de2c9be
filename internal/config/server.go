package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// ServerConfig holds settings for the HTTP game service.
type ServerConfig struct {
	// ListenAddr is the address the service binds, e.g. ":8080"
	ListenAddr string

	// AllowedOrigins lists origins permitted for CORS and websockets;
	// "*" allows any.
	AllowedOrigins []string

	// MaxGames caps the number of live games; 0 means no limit
	MaxGames int

	// IdleTimeout closes connections with no traffic
	IdleTimeout time.Duration
}

// NewServerConfig creates a ServerConfig with default values.
func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		ListenAddr:     ":8080",
		AllowedOrigins: []string{"*"},
		MaxGames:       1000,
		IdleTimeout:    2 * time.Minute,
	}
}

// OriginAllowed reports whether origin may connect.
func (s *ServerConfig) OriginAllowed(origin string) bool {
	for _, o := range s.AllowedOrigins {
		if o == "*" || strings.EqualFold(o, origin) {
			return true
		}
	}
	return false
}

// Validate checks the service settings.
func (s *ServerConfig) Validate() error {
	if s.ListenAddr == "" {
		return fmt.Errorf("server listen address is empty: %w", errors.ErrInvalidConfig)
	}
	if s.MaxGames < 0 {
		return fmt.Errorf("max games (%d) must not be negative: %w", s.MaxGames, errors.ErrInvalidConfig)
	}
	if s.IdleTimeout < 0 {
		return fmt.Errorf("idle timeout (%v) must not be negative: %w", s.IdleTimeout, errors.ErrInvalidConfig)
	}
	return nil
}
