package engine

import "github.com/lgbarn/gochess/internal/chess"

// FiftyMoveLimit is the halfmove clock value at which a draw is forced.
const FiftyMoveLimit = 100

// Outcome is the result of a game as seen from a single position.
type Outcome int

const (
	NoOutcome Outcome = iota // Game continues
	WhiteWins
	BlackWins
	Draw
)

// String returns the PGN result form of the outcome.
func (o Outcome) String() string {
	switch o {
	case WhiteWins:
		return "1-0"
	case BlackWins:
		return "0-1"
	case Draw:
		return "1/2-1/2"
	default:
		return "*"
	}
}

// Winner returns the winning colour, if any.
func (o Outcome) Winner() (chess.Colour, bool) {
	switch o {
	case WhiteWins:
		return chess.White, true
	case BlackWins:
		return chess.Black, true
	default:
		return chess.Black, false
	}
}

// Reason explains why a game ended.
type Reason int

const (
	NotOver Reason = iota
	Checkmate
	Stalemate
	FiftyMoveRule
)

// String returns the string representation of the reason.
func (r Reason) String() string {
	switch r {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case FiftyMoveRule:
		return "fifty-move rule"
	default:
		return "in progress"
	}
}

// Status is an outcome together with its reason.
type Status struct {
	Outcome Outcome
	Reason  Reason
	InCheck bool
}

// IsOver reports whether the game has ended.
func (s Status) IsOver() bool {
	return s.Outcome != NoOutcome
}

// Result classifies the position for the side to move.
func Result(board *chess.Board) Outcome {
	return Classify(board).Outcome
}

// Classify returns the outcome of the position with the rule that decided it.
// With legal moves available the game continues unless the halfmove clock
// has reached the fifty-move limit. Without legal moves the side to move is
// checkmated when in check and stalemated otherwise.
func Classify(board *chess.Board) Status {
	inCheck := IsInCheck(board, board.ToMove)
	if HasLegalMoves(board) {
		if board.HalfmoveClock >= FiftyMoveLimit {
			return Status{Outcome: Draw, Reason: FiftyMoveRule, InCheck: inCheck}
		}
		return Status{Outcome: NoOutcome, Reason: NotOver, InCheck: inCheck}
	}
	if inCheck {
		winner := WhiteWins
		if board.ToMove == chess.White {
			winner = BlackWins
		}
		return Status{Outcome: winner, Reason: Checkmate, InCheck: true}
	}
	return Status{Outcome: Draw, Reason: Stalemate}
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(board *chess.Board) bool {
	return IsInCheck(board, board.ToMove) && !HasLegalMoves(board)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(board *chess.Board) bool {
	return !IsInCheck(board, board.ToMove) && !HasLegalMoves(board)
}
