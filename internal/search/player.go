package search

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"

	"github.com/lgbarn/gochess/internal/chess"
	"github.com/lgbarn/gochess/internal/engine"
	"github.com/lgbarn/gochess/internal/errors"
)

// AIPlayer chooses moves for the computer side at a fixed difficulty.
// It is not safe for concurrent use.
type AIPlayer struct {
	difficulty Difficulty
	workers    int
	rng        *rand.Rand
	last       Line
}

// PlayerOption configures an AIPlayer.
type PlayerOption func(*AIPlayer)

// WithRand sets the random source used at Easy difficulty.
func WithRand(rng *rand.Rand) PlayerOption {
	return func(p *AIPlayer) {
		if rng != nil {
			p.rng = rng
		}
	}
}

// WithSeed seeds the random source used at Easy difficulty.
func WithSeed(seed uint64) PlayerOption {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// WithWorkers sets how many goroutines split the root move list.
func WithWorkers(n int) PlayerOption {
	return func(p *AIPlayer) {
		if n >= 1 {
			p.workers = n
		}
	}
}

// NewAIPlayer creates a computer opponent. Without WithRand the random
// source is seeded from the clock.
func NewAIPlayer(difficulty Difficulty, opts ...PlayerOption) *AIPlayer {
	p := &AIPlayer{difficulty: difficulty, workers: 1}
	for _, opt := range opts {
		opt(p)
	}
	if p.rng == nil {
		p.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return p
}

// Difficulty returns the player's difficulty.
func (p *AIPlayer) Difficulty() Difficulty {
	return p.difficulty
}

// SetDifficulty changes the difficulty for subsequent moves.
func (p *AIPlayer) SetDifficulty(d Difficulty) {
	p.difficulty = d
}

// LastLine returns the search result behind the previous ChooseMove call.
// It is the zero Line after a random Easy move.
func (p *AIPlayer) LastLine() Line {
	return p.last
}

// ChooseMove picks a move for the side to move. Easy picks uniformly among the
// legal moves without searching; harder levels run alpha-beta at their depth.
// A position with no legal moves yields ErrNoLegalMoves, and a search that
// finds no move, or a position already drawn, yields ErrNoMoveFound; neither
// falls back to a random move.
func (p *AIPlayer) ChooseMove(board *chess.Board) (chess.Move, error) {
	p.last = Line{}
	moves := engine.LegalMoves(board)
	if len(moves) == 0 {
		return chess.Move{}, fmt.Errorf("%s to move: %w", board.ToMove, errors.ErrNoLegalMoves)
	}

	if p.difficulty == Easy {
		if engine.Result(board) != engine.NoOutcome {
			return chess.Move{}, fmt.Errorf("%s: %w", engine.BoardToFEN(board), errors.ErrNoMoveFound)
		}
		return moves[p.rng.Intn(len(moves))], nil
	}

	line, err := ParallelBestMove(board, p.difficulty.Depth(), p.workers)
	if err != nil {
		return chess.Move{}, err
	}
	p.last = line
	return line.Move, nil
}
