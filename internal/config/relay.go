package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// DefaultRelayPort is used when neither a flag nor $PORT names one.
const DefaultRelayPort = "3333"

// RelayConfig holds settings for the two-player match relay.
type RelayConfig struct {
	// ListenAddr is the address the relay binds
	ListenAddr string

	// Path is the websocket endpoint players connect to
	Path string

	// AllowedOrigins lists origins permitted to open a websocket
	AllowedOrigins []string
}

// NewRelayConfig creates a RelayConfig listening on $PORT, or on
// DefaultRelayPort when it is unset.
func NewRelayConfig() *RelayConfig {
	port := os.Getenv("PORT")
	if port == "" {
		port = DefaultRelayPort
	}
	return &RelayConfig{
		ListenAddr:     "0.0.0.0:" + port,
		Path:           "/play",
		AllowedOrigins: []string{"*"},
	}
}

// OriginAllowed reports whether origin may connect.
func (r *RelayConfig) OriginAllowed(origin string) bool {
	for _, o := range r.AllowedOrigins {
		if o == "*" || strings.EqualFold(o, origin) {
			return true
		}
	}
	return false
}

// Validate checks the relay settings.
func (r *RelayConfig) Validate() error {
	if r.ListenAddr == "" {
		return fmt.Errorf("relay listen address is empty: %w", errors.ErrInvalidConfig)
	}
	if !strings.HasPrefix(r.Path, "/") {
		return fmt.Errorf("relay path %q must start with /: %w", r.Path, errors.ErrInvalidConfig)
	}
	return nil
}
