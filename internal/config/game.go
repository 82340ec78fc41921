package config

import (
	"fmt"

	"github.com/lgbarn/gochess/internal/engine"
	"github.com/lgbarn/gochess/internal/errors"
	"github.com/lgbarn/gochess/internal/search"
	"github.com/lgbarn/gochess/internal/session"
	"github.com/lgbarn/gochess/internal/snapshot"
)

// GameConfig holds settings for a terminal game.
type GameConfig struct {
	Mode     session.Mode
	StartFEN string // Empty means the initial position
	LoadPath string // Snapshot to resume from; overrides StartFEN
	SavePath string // Default target of the save command
}

// NewGameConfig creates a GameConfig with default values.
func NewGameConfig() *GameConfig {
	return &GameConfig{
		Mode:     session.VersusAI,
		SavePath: snapshot.DefaultPath,
	}
}

// Validate checks the game settings.
func (c *GameConfig) Validate() error {
	if c.Mode != session.TwoPlayer && c.Mode != session.VersusAI {
		return fmt.Errorf("mode %d: %w", int(c.Mode), errors.ErrInvalidConfig)
	}
	if c.StartFEN != "" {
		if _, err := engine.NewBoardFromFEN(c.StartFEN); err != nil {
			return fmt.Errorf("start position: %v: %w", err, errors.ErrInvalidConfig)
		}
	}
	if c.SavePath == "" {
		return fmt.Errorf("empty save path: %w", errors.ErrInvalidConfig)
	}
	return nil
}

// NewSession creates a session from the game settings, using player as the
// computer opponent.
func (c *GameConfig) NewSession(player *search.AIPlayer) (*session.Session, error) {
	opts := []session.Option{session.WithMode(c.Mode), session.WithAIPlayer(player)}
	if c.StartFEN != "" {
		board, err := engine.NewBoardFromFEN(c.StartFEN)
		if err != nil {
			return nil, err
		}
		opts = append(opts, session.WithBoard(board))
	}
	s := session.New(opts...)
	if c.LoadPath != "" {
		if err := s.LoadFile(c.LoadPath); err != nil {
			return nil, err
		}
	}
	return s, nil
}
