package config

import (
	"fmt"
	"time"

	"github.com/lgbarn/gochess/internal/errors"
)

// ServerConfig holds HTTP API settings.
type ServerConfig struct {
	Addr         string
	MaxGames     int           // Live sessions kept at once; 0 means unlimited
	ReadTimeout  time.Duration // Per-request read timeout
	AllowOrigins string        // CORS allowed origins
}

// NewServerConfig creates a ServerConfig with default values.
func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		Addr:         ":3000",
		MaxGames:     1000,
		ReadTimeout:  30 * time.Second,
		AllowOrigins: "*",
	}
}

// Validate checks the server settings.
func (c *ServerConfig) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("empty listen address: %w", errors.ErrInvalidConfig)
	}
	if c.MaxGames < 0 {
		return fmt.Errorf("max games %d is negative: %w", c.MaxGames, errors.ErrInvalidConfig)
	}
	return nil
}
