package server

import (
	"encoding/json"
	"strings"

	"github.com/lgbarn/gochess/internal/chess"
	"github.com/lgbarn/gochess/internal/engine"
	"github.com/lgbarn/gochess/internal/session"
	"github.com/lgbarn/gochess/internal/snapshot"
)

// CreateRequest is the body of POST /api/games. Every field is optional.
type CreateRequest struct {
	Mode       string          `json:"mode"`
	Difficulty string          `json:"difficulty"`
	FEN        string          `json:"fen"`
	Snapshot   json.RawMessage `json:"snapshot"`
	Seed       uint64          `json:"seed"`
}

// MoveRequest is the body of POST /api/games/:id/moves.
type MoveRequest struct {
	Move string `json:"move"`
}

// StatusView describes the outcome of the current position.
type StatusView struct {
	Over    bool   `json:"over"`
	Result  string `json:"result"`
	Reason  string `json:"reason"`
	InCheck bool   `json:"in_check"`
	Winner  string `json:"winner,omitempty"`
}

// GameView is the state of a game returned by most endpoints.
type GameView struct {
	ID         string                                  `json:"id"`
	FEN        string                                  `json:"fen"`
	Board      [chess.BoardSize][chess.BoardSize]string `json:"board"`
	ToMove     string                                  `json:"to_move"`
	Mode       string                                  `json:"mode"`
	Difficulty string                                  `json:"difficulty"`
	Ply        int                                     `json:"ply"`
	Status     StatusView                              `json:"status"`
	LegalMoves []string                                `json:"legal_moves"`
	History    []string                                `json:"history"`
	AIMove     string                                  `json:"ai_move,omitempty"`
}

// MovesView lists the legal moves, optionally from a single square.
type MovesView struct {
	From  string   `json:"from,omitempty"`
	Moves []string `json:"moves"`
}

// newStatusView converts a classified position.
func newStatusView(status engine.Status) StatusView {
	view := StatusView{
		Over:    status.IsOver(),
		Result:  status.Outcome.String(),
		Reason:  status.Reason.String(),
		InCheck: status.InCheck,
	}
	if winner, ok := status.Outcome.Winner(); ok {
		view.Winner = strings.ToLower(winner.String())
	}
	return view
}

// newGameView renders a session.
func newGameView(id string, s *session.Session) GameView {
	board := s.Board()
	return GameView{
		ID:         id,
		FEN:        engine.BoardToFEN(board),
		Board:      snapshot.FromBoard(board).Board,
		ToMove:     strings.ToLower(board.ToMove.String()),
		Mode:       s.Mode().String(),
		Difficulty: s.AI().Difficulty().String(),
		Ply:        s.Ply(),
		Status:     newStatusView(s.Status()),
		LegalMoves: moveStrings(s.LegalMoves()),
		History:    moveStrings(s.Moves()),
	}
}

// moveStrings converts moves to long algebraic text in their given order.
func moveStrings(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out
}
