// Package session holds the state of one game in progress: the position,
// the positions before it for undo, the play mode and the computer opponent.
package session

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/gochess/internal/chess"
	"github.com/lgbarn/gochess/internal/engine"
	"github.com/lgbarn/gochess/internal/errors"
	"github.com/lgbarn/gochess/internal/output"
	"github.com/lgbarn/gochess/internal/search"
	"github.com/lgbarn/gochess/internal/snapshot"
)

// Mode selects who plays the black pieces.
type Mode int

const (
	TwoPlayer Mode = iota // Both sides are human
	VersusAI              // The computer plays AIColour
)

// AIColour is the side the computer plays in VersusAI mode.
const AIColour = chess.Black

// String returns the flag form of the mode.
func (m Mode) String() string {
	if m == VersusAI {
		return "ai"
	}
	return "2p"
}

// ParseMode parses "ai" or "2p".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ai":
		return VersusAI, nil
	case "2p":
		return TwoPlayer, nil
	default:
		return TwoPlayer, fmt.Errorf("unknown mode %q, want ai or 2p: %w", s, errors.ErrInvalidConfig)
	}
}

// ply is one played move and the position it was played from.
type ply struct {
	before *chess.Board
	move   chess.Move
}

// Session is a game in progress. It is not safe for concurrent use.
type Session struct {
	board    *chess.Board
	history  []ply
	mode     Mode
	ai       *search.AIPlayer
	selected *chess.Square
}

// Option configures a Session.
type Option func(*Session)

// WithMode sets the play mode.
func WithMode(mode Mode) Option {
	return func(s *Session) {
		s.mode = mode
	}
}

// WithAIPlayer sets the computer opponent used in VersusAI mode.
func WithAIPlayer(p *search.AIPlayer) Option {
	return func(s *Session) {
		if p != nil {
			s.ai = p
		}
	}
}

// WithBoard starts the session from a copy of board instead of the
// initial position.
func WithBoard(board *chess.Board) Option {
	return func(s *Session) {
		if board != nil {
			s.board = board.Copy()
		}
	}
}

// New creates a session. By default it is a two-player game from the
// initial position; VersusAI without WithAIPlayer gets an easy opponent.
func New(opts ...Option) *Session {
	s := &Session{}
	for _, opt := range opts {
		opt(s)
	}
	if s.board == nil {
		s.board = chess.NewInitialBoard()
	}
	if s.ai == nil {
		s.ai = search.NewAIPlayer(search.Easy)
	}
	return s
}

// Board returns a copy of the current position.
func (s *Session) Board() *chess.Board {
	return s.board.Copy()
}

// FEN returns the current position in FEN.
func (s *Session) FEN() string {
	return engine.BoardToFEN(s.board)
}

// Mode returns the play mode.
func (s *Session) Mode() Mode {
	return s.mode
}

// AI returns the computer opponent.
func (s *Session) AI() *search.AIPlayer {
	return s.ai
}

// Ply returns how many moves have been played in this session.
func (s *Session) Ply() int {
	return len(s.history)
}

// Moves returns the moves played so far, oldest first.
func (s *Session) Moves() []chess.Move {
	moves := make([]chess.Move, len(s.history))
	for i, p := range s.history {
		moves[i] = p.move
	}
	return moves
}

// Record returns the game so far, from the position the session started in
// or was last loaded from.
func (s *Session) Record() *output.Record {
	start := s.board
	if len(s.history) > 0 {
		start = s.history[0].before
	}
	return output.NewRecord(start, s.Moves())
}

// LegalMoves returns the legal moves in the current position.
func (s *Session) LegalMoves() []chess.Move {
	return engine.LegalMoves(s.board)
}

// Status classifies the current position.
func (s *Session) Status() engine.Status {
	return engine.Classify(s.board)
}

// IsAITurn reports whether the computer is to move.
func (s *Session) IsAITurn() bool {
	return s.mode == VersusAI && s.board.ToMove == AIColour
}

// Select marks sq as the selected square and returns the legal moves of the
// piece on it. Only pieces of the side to move can be selected; any other
// square clears the selection and returns ok == false.
func (s *Session) Select(sq chess.Square) (moves []chess.Move, ok bool) {
	piece := s.board.Get(sq)
	if piece.IsEmpty() || piece.Colour() != s.board.ToMove || s.IsAITurn() {
		s.selected = nil
		return nil, false
	}
	s.selected = &sq
	return engine.LegalMovesFrom(s.board, sq), true
}

// Selected returns the selected square, if any.
func (s *Session) Selected() (chess.Square, bool) {
	if s.selected == nil {
		return chess.Square{}, false
	}
	return *s.selected, true
}

// ClearSelection drops the selected square.
func (s *Session) ClearSelection() {
	s.selected = nil
}

// Play validates move against the legal moves and plays it. A promotion
// submitted without a piece promotes to a queen. Errors are *errors.MoveError
// values wrapping ErrIllegalMove, ErrGameOver or ErrNotYourTurn.
func (s *Session) Play(move chess.Move) (engine.Status, error) {
	if err := s.checkCanMove(move.String(), false); err != nil {
		return s.Status(), err
	}
	legal, ok := s.resolve(move)
	if !ok {
		return s.Status(), s.moveError(errors.ErrIllegalMove, move.String())
	}
	return s.apply(legal), nil
}

// PlayText parses a long algebraic move such as "e2e4" and plays it.
func (s *Session) PlayText(text string) (engine.Status, error) {
	move, err := chess.ParseMove(strings.TrimSpace(text))
	if err != nil {
		return s.Status(), s.moveError(errors.Wrap(errors.ErrInvalidMoveText, err.Error()), text)
	}
	return s.Play(move)
}

// AIMove lets the computer choose and play a move. It fails with
// ErrNotYourTurn unless IsAITurn.
func (s *Session) AIMove() (chess.Move, engine.Status, error) {
	if err := s.checkCanMove("", true); err != nil {
		return chess.Move{}, s.Status(), err
	}
	move, err := s.ai.ChooseMove(s.board)
	if err != nil {
		return chess.Move{}, s.Status(), s.moveError(err, "")
	}
	return move, s.apply(move), nil
}

// AITurn plays the computer's move if it is the computer's turn and the game
// is not over. played is false when nothing was done.
func (s *Session) AITurn() (move chess.Move, played bool, err error) {
	if !s.IsAITurn() || s.Status().IsOver() {
		return chess.Move{}, false, nil
	}
	move, _, err = s.AIMove()
	if err != nil {
		return chess.Move{}, false, err
	}
	return move, true, nil
}

// Undo takes back the last move. Against the computer it takes back moves
// until a human is to move again, so the computer does not simply replay.
// It returns false when there is nothing to undo.
func (s *Session) Undo() bool {
	if len(s.history) == 0 {
		return false
	}
	s.pop()
	for s.IsAITurn() && len(s.history) > 0 {
		s.pop()
	}
	s.selected = nil
	return true
}

// Save writes the current position as a snapshot document.
func (s *Session) Save(w io.Writer) error {
	return snapshot.Encode(w, s.board)
}

// Load replaces the position with the snapshot read from r. History and
// selection are cleared. On error the session is unchanged.
func (s *Session) Load(r io.Reader) error {
	board, err := snapshot.Decode(r)
	if err != nil {
		return err
	}
	s.reset(board)
	return nil
}

// SaveFile writes the current position to path.
func (s *Session) SaveFile(path string) error {
	return snapshot.SaveFile(path, s.board)
}

// LoadFile replaces the position with the snapshot stored at path.
func (s *Session) LoadFile(path string) error {
	board, err := snapshot.LoadFile(path)
	if err != nil {
		return err
	}
	s.reset(board)
	return nil
}

// checkCanMove rejects moves after the game ended or out of turn.
func (s *Session) checkCanMove(text string, ai bool) error {
	if s.Status().IsOver() {
		return s.moveError(errors.ErrGameOver, text)
	}
	if s.IsAITurn() != ai {
		return s.moveError(errors.ErrNotYourTurn, text)
	}
	return nil
}

// resolve finds the legal move matching the request, applying auto-queen.
func (s *Session) resolve(move chess.Move) (chess.Move, bool) {
	legal := engine.LegalMoves(s.board)
	if slices.Contains(legal, move) {
		return move, true
	}
	if move.IsPromotion() {
		return chess.Move{}, false
	}
	queen := move.WithPromotion(chess.Queen)
	if slices.Contains(legal, queen) {
		return queen, true
	}
	return chess.Move{}, false
}

// apply plays a legal move and records it.
func (s *Session) apply(move chess.Move) engine.Status {
	s.history = append(s.history, ply{before: s.board, move: move})
	s.board = engine.ApplyMove(s.board, move)
	s.selected = nil
	return s.Status()
}

// pop restores the position before the last move.
func (s *Session) pop() {
	last := s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]
	s.board = last.before
}

// reset starts over from board.
func (s *Session) reset(board *chess.Board) {
	s.board = board
	s.history = nil
	s.selected = nil
}

// moveError wraps err with the current ply and position.
func (s *Session) moveError(err error, text string) error {
	return &errors.MoveError{
		Err:      err,
		PlyNum:   len(s.history) + 1,
		MoveText: text,
		FEN:      engine.BoardToFEN(s.board),
	}
}
