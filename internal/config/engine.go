package config

import (
	"fmt"

	"github.com/lgbarn/gochess/internal/errors"
	"github.com/lgbarn/gochess/internal/search"
)

// MaxWorkers bounds the root-search worker count.
const MaxWorkers = 64

// EngineConfig holds computer opponent settings.
type EngineConfig struct {
	Difficulty search.Difficulty
	Workers    int    // Root moves searched in parallel; 1 searches serially
	Seed       uint64 // Seed for the easy level's random choice; 0 uses the clock
}

// NewEngineConfig creates an EngineConfig with default values.
func NewEngineConfig() *EngineConfig {
	return &EngineConfig{
		Difficulty: search.Easy,
		Workers:    1,
	}
}

// Validate checks the engine settings.
func (c *EngineConfig) Validate() error {
	if !c.Difficulty.Valid() {
		return fmt.Errorf("difficulty %d: %w", int(c.Difficulty), errors.ErrInvalidConfig)
	}
	if c.Workers < 1 || c.Workers > MaxWorkers {
		return fmt.Errorf("workers %d not in 1..%d: %w", c.Workers, MaxWorkers, errors.ErrInvalidConfig)
	}
	return nil
}

// PlayerOptions returns the options for search.NewAIPlayer.
func (c *EngineConfig) PlayerOptions() []search.PlayerOption {
	opts := []search.PlayerOption{search.WithWorkers(c.Workers)}
	if c.Seed != 0 {
		opts = append(opts, search.WithSeed(c.Seed))
	}
	return opts
}

// NewPlayer creates the computer opponent described by the settings.
func (c *EngineConfig) NewPlayer() *search.AIPlayer {
	return search.NewAIPlayer(c.Difficulty, c.PlayerOptions()...)
}
