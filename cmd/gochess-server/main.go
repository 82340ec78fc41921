// gochess-server serves chess games over a JSON HTTP API.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lgbarn/gochess/internal/config"
	"github.com/lgbarn/gochess/internal/search"
	"github.com/lgbarn/gochess/internal/server"
)

const programVersion = "0.1.0"

var (
	addr       = flag.String("addr", ":3000", "Listen address")
	difficulty = flag.String("difficulty", "easy", "Default computer level: easy, medium, hard")
	workers    = flag.Int("workers", 1, "Root moves searched in parallel per game")
	seed       = flag.Uint64("seed", 0, "Random seed for the easy level (0 = clock)")
	maxGames   = flag.Int("max-games", 1000, "Maximum open games (0 = unlimited)")
	origins    = flag.String("origins", "*", "CORS allowed origins")
	logFile    = flag.String("l", "", "Write the request log to this file")
	verbosity  = flag.Int("v", 1, "Verbosity: 0 errors only, 1 request log, 2 game events")
	version    = flag.Bool("version", false, "Show version")
)

func main() {
	flag.Parse()

	if *version {
		fmt.Printf("gochess-server version %s\n", programVersion)
		os.Exit(0)
	}

	cfg, err := buildConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	srv := server.New(cfg)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-stop
		cfg.Logf(1, "shutting down")
		if err := srv.Shutdown(); err != nil {
			fmt.Fprintf(os.Stderr, "Error during shutdown: %v\n", err)
		}
	}()

	if err := srv.Listen(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// buildConfig maps the flags onto a validated Config.
func buildConfig() (*config.Config, error) {
	d, err := search.ParseDifficulty(*difficulty)
	if err != nil {
		return nil, err
	}

	builder := config.NewConfigBuilder().
		WithAddr(*addr).
		WithDifficulty(d).
		WithWorkers(*workers).
		WithSeed(*seed).
		WithMaxGames(*maxGames).
		WithVerbosity(*verbosity)

	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			return nil, fmt.Errorf("creating log file %s: %w", *logFile, err)
		}
		builder.WithLog(file)
	}

	cfg := builder.Build()
	cfg.Server.AllowOrigins = *origins
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
