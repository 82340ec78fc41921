// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/gochess/internal/config"
	"github.com/lgbarn/gochess/internal/search"
	"github.com/lgbarn/gochess/internal/session"
	"github.com/lgbarn/gochess/internal/snapshot"
)

var (
	// Game options
	mode       = flag.String("mode", "ai", "Play mode: ai (computer plays black) or 2p")
	difficulty = flag.String("difficulty", "easy", "Computer level: easy, medium, hard")
	startFEN   = flag.String("fen", "", "Start from this FEN position")
	loadFile   = flag.String("load", "", "Resume the game saved in this file")
	saveFile   = flag.String("save", snapshot.DefaultPath, "Default file for the save command")

	// Engine options
	seed    = flag.Uint64("seed", 0, "Random seed for the easy level (0 = clock)")
	workers = flag.Int("workers", 1, "Root moves searched in parallel")

	// Analysis
	perftDepth = flag.Int("perft", 0, "Count move-tree leaves to depth N and exit")
	divide     = flag.Bool("divide", false, "With -perft, print the count below each root move")

	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	logFile    = flag.String("l", "", "Write diagnostics to log file")
	verbosity  = flag.Int("v", 1, "Verbosity: 0 errors only, 1 results, 2 search details")
	quiet      = flag.Bool("s", false, "Silent mode (same as -v 0)")
	help       = flag.Bool("h", false, "Show help")
	version    = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	if err := applyGameFlags(cfg); err != nil {
		return err
	}
	if err := applyEngineFlags(cfg); err != nil {
		return err
	}

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
	return nil
}

// applyGameFlags configures the mode and starting position.
func applyGameFlags(cfg *config.Config) error {
	m, err := session.ParseMode(*mode)
	if err != nil {
		return err
	}
	cfg.Game.Mode = m
	cfg.Game.StartFEN = *startFEN
	cfg.Game.LoadPath = *loadFile
	cfg.Game.SavePath = *saveFile
	return nil
}

// applyEngineFlags configures the computer opponent.
func applyEngineFlags(cfg *config.Config) error {
	d, err := search.ParseDifficulty(*difficulty)
	if err != nil {
		return err
	}
	cfg.Engine.Difficulty = d
	cfg.Engine.Seed = *seed
	cfg.Engine.Workers = *workers
	return nil
}
