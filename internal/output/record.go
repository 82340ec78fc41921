// Package output writes finished or in-progress games as records: a text
// move list in the PGN layout and a JSON document.
package output

import (
	"github.com/lgbarn/gochess/internal/chess"
	"github.com/lgbarn/gochess/internal/engine"
)

// Record is a game from its start position through the moves played.
type Record struct {
	Start  *chess.Board
	Moves  []chess.Move
	Final  *chess.Board
	Status engine.Status
}

// NewRecord replays moves from start. The moves must be legal in sequence.
func NewRecord(start *chess.Board, moves []chess.Move) *Record {
	board := start.Copy()
	for _, m := range moves {
		board = engine.ApplyMove(board, m)
	}
	return &Record{
		Start:  start.Copy(),
		Moves:  moves,
		Final:  board,
		Status: engine.Classify(board),
	}
}

// Result returns the PGN result token, "*" while the game continues.
func (r *Record) Result() string {
	return r.Status.Outcome.String()
}

// StartFEN returns the start position, or "" for the standard one.
func (r *Record) StartFEN() string {
	fen := engine.BoardToFEN(r.Start)
	if fen == engine.InitialFEN {
		return ""
	}
	return fen
}

// ply is one move with the position it was played in.
type ply struct {
	move   chess.Move
	board  *chess.Board
	number uint
	colour chess.Colour
}

// plies walks the record, yielding each move with its position.
func (r *Record) plies() []ply {
	out := make([]ply, 0, len(r.Moves))
	board := r.Start
	for _, m := range r.Moves {
		out = append(out, ply{move: m, board: board, number: board.MoveNumber, colour: board.ToMove})
		board = engine.ApplyMove(board, m)
	}
	return out
}
