package search

import (
	"fmt"

	"github.com/lgbarn/gochess/internal/chess"
	"github.com/lgbarn/gochess/internal/engine"
	"github.com/lgbarn/gochess/internal/errors"
)

// Line is the result of a root search.
type Line struct {
	Move  chess.Move
	Score int
	Depth int
	Nodes uint64
}

// String returns the move and score of the line.
func (l Line) String() string {
	return fmt.Sprintf("%s (%s, depth %d, %d nodes)", l.Move, FormatScore(l.Score), l.Depth, l.Nodes)
}

// Searcher runs alpha-beta searches and counts the positions it visits.
// A Searcher is not safe for concurrent use; give each goroutine its own.
type Searcher struct {
	Nodes uint64
}

// AlphaBeta searches board to the given depth within the window
// [alpha, beta]. It returns the score from White's point of view and the
// best move; ok is false when the position is terminal or depth is zero.
// Among moves with equal scores the first in generation order is kept.
func (s *Searcher) AlphaBeta(board *chess.Board, depth, alpha, beta int, maximizing bool) (score int, move chess.Move, ok bool) {
	s.Nodes++

	switch engine.Result(board) {
	case engine.WhiteWins:
		return Infinity, chess.Move{}, false
	case engine.BlackWins:
		return -Infinity, chess.Move{}, false
	case engine.Draw:
		return Evaluate(board), chess.Move{}, false
	}
	if depth <= 0 {
		return Evaluate(board), chess.Move{}, false
	}

	moves := engine.LegalMoves(board)
	for i, m := range moves {
		child, _, _ := s.AlphaBeta(engine.ApplyMove(board, m), depth-1, alpha, beta, !maximizing)
		if maximizing {
			if i == 0 || child > score {
				score, move = child, m
			}
			if score > alpha {
				alpha = score
			}
		} else {
			if i == 0 || child < score {
				score, move = child, m
			}
			if score < beta {
				beta = score
			}
		}
		if beta <= alpha {
			break
		}
	}
	return score, move, len(moves) > 0
}

// AlphaBeta runs a single search with a fresh Searcher.
func AlphaBeta(board *chess.Board, depth, alpha, beta int, maximizing bool) (int, chess.Move, bool) {
	var s Searcher
	return s.AlphaBeta(board, depth, alpha, beta, maximizing)
}

// BestMove searches board to depth with the full window for the side to move.
// It returns ErrNoMoveFound when the position is already decided.
func BestMove(board *chess.Board, depth int) (Line, error) {
	if depth < 1 {
		return Line{}, fmt.Errorf("search depth %d: %w", depth, errors.ErrInvalidConfig)
	}
	var s Searcher
	score, move, ok := s.AlphaBeta(board, depth, -Infinity, Infinity, board.ToMove == chess.White)
	if !ok {
		return Line{}, fmt.Errorf("%s: %w", engine.BoardToFEN(board), errors.ErrNoMoveFound)
	}
	return Line{Move: move, Score: score, Depth: depth, Nodes: s.Nodes}, nil
}
