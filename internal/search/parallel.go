package search

import (
	"fmt"

	"github.com/lgbarn/gochess/internal/chess"
	"github.com/lgbarn/gochess/internal/engine"
	"github.com/lgbarn/gochess/internal/errors"
	"github.com/lgbarn/gochess/internal/worker"
)

// ParallelBestMove splits the root move list over a worker pool. Each root
// child is searched with the full window and the results are reduced in
// generation order, so the chosen move and score match BestMove.
// With workers < 2 it is BestMove.
func ParallelBestMove(board *chess.Board, depth, workers int) (Line, error) {
	if workers < 2 {
		return BestMove(board, depth)
	}
	if depth < 1 {
		return Line{}, fmt.Errorf("search depth %d: %w", depth, errors.ErrInvalidConfig)
	}
	if engine.Result(board) != engine.NoOutcome {
		return Line{}, fmt.Errorf("%s: %w", engine.BoardToFEN(board), errors.ErrNoMoveFound)
	}

	moves := engine.LegalMoves(board)
	maximizing := board.ToMove == chess.White
	items := make([]worker.WorkItem, len(moves))
	for i, m := range moves {
		items[i] = worker.WorkItem{
			Board: engine.ApplyMove(board, m),
			Move:  m,
			Depth: depth - 1,
			Index: i,
		}
	}

	pool := worker.NewPool(scoreRootMove(!maximizing),
		worker.WithWorkers(workers),
		worker.WithBufferSize(len(items)))
	results, err := pool.Run(items)
	if err != nil {
		return Line{}, err
	}

	line := Line{Depth: depth, Nodes: 1}
	for i, r := range results {
		line.Nodes += r.Nodes
		better := r.Score > line.Score
		if !maximizing {
			better = r.Score < line.Score
		}
		if i == 0 || better {
			line.Move, line.Score = r.Move, r.Score
		}
	}
	return line, nil
}

// scoreRootMove returns a worker function that searches the position after a
// root move. childMaximizing is the role of the side to move in that position.
func scoreRootMove(childMaximizing bool) worker.ProcessFunc {
	return func(item worker.WorkItem) worker.ProcessResult {
		var s Searcher
		score, _, _ := s.AlphaBeta(item.Board, item.Depth, -Infinity, Infinity, childMaximizing)
		return worker.ProcessResult{
			Move:  item.Move,
			Index: item.Index,
			Score: score,
			Nodes: s.Nodes,
		}
	}
}
