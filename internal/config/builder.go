package config

import (
	"io"

	"github.com/lgbarn/gochess/internal/search"
	"github.com/lgbarn/gochess/internal/session"
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

// WithDifficulty sets the computer opponent's level.
func (b *ConfigBuilder) WithDifficulty(d search.Difficulty) *ConfigBuilder {
	b.cfg.Engine.Difficulty = d
	return b
}

// WithWorkers sets how many root moves are searched in parallel.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Engine.Workers = n
	return b
}

// WithSeed sets the random seed for the easy level.
func (b *ConfigBuilder) WithSeed(seed uint64) *ConfigBuilder {
	b.cfg.Engine.Seed = seed
	return b
}

// WithMode sets the play mode.
func (b *ConfigBuilder) WithMode(mode session.Mode) *ConfigBuilder {
	b.cfg.Game.Mode = mode
	return b
}

// WithStartFEN sets the starting position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.Game.StartFEN = fen
	return b
}

// WithLoadPath sets a snapshot to resume from.
func (b *ConfigBuilder) WithLoadPath(path string) *ConfigBuilder {
	b.cfg.Game.LoadPath = path
	return b
}

// WithSavePath sets the default save target.
func (b *ConfigBuilder) WithSavePath(path string) *ConfigBuilder {
	b.cfg.Game.SavePath = path
	return b
}

// WithAddr sets the HTTP listen address.
func (b *ConfigBuilder) WithAddr(addr string) *ConfigBuilder {
	b.cfg.Server.Addr = addr
	return b
}

// WithMaxGames caps the number of live sessions on the server.
func (b *ConfigBuilder) WithMaxGames(n int) *ConfigBuilder {
	b.cfg.Server.MaxGames = n
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the diagnostics writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
