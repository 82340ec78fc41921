package main

import (
	"fmt"
	"time"

	"github.com/lgbarn/gochess/internal/chess"
	"github.com/lgbarn/gochess/internal/config"
	"github.com/lgbarn/gochess/internal/engine"
)

// runPerft prints the perft count of board at depth, and with divide the
// count below each root move first.
func runPerft(cfg *config.Config, board *chess.Board, depth int, divide bool) uint64 {
	start := time.Now()
	var nodes uint64
	if divide {
		for _, entry := range engine.Divide(board, depth) {
			fmt.Fprintf(cfg.OutputFile, "%s: %d\n", entry.Move, entry.Nodes)
			nodes += entry.Nodes
		}
		fmt.Fprintln(cfg.OutputFile)
	} else {
		nodes = engine.Perft(board, depth)
	}
	fmt.Fprintf(cfg.OutputFile, "Nodes searched: %d\n", nodes)
	cfg.Logf(2, "perft %d of %s took %v", depth, engine.BoardToFEN(board), time.Since(start))
	return nodes
}
