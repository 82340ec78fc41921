// Package config provides configuration for the gochess binaries.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/gochess/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=errors only, 1=results, 2=running commentary

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer

	// Sub-configurations
	Engine *EngineConfig
	Game   *GameConfig
	Server *ServerConfig
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
		Engine:     NewEngineConfig(),
		Game:       NewGameConfig(),
		Server:     NewServerConfig(),
	}
}

// Logf writes a diagnostic line to LogFile when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.Verbosity < level || c.LogFile == nil {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}

// Validate checks every sub-configuration.
func (c *Config) Validate() error {
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity %d is negative: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if err := c.Engine.Validate(); err != nil {
		return err
	}
	if err := c.Game.Validate(); err != nil {
		return err
	}
	return c.Server.Validate()
}

// SetOutput sets the writer for game output.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the writer for diagnostics.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}
