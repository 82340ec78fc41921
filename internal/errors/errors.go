// Package errors provides sentinel errors and error types for gochess.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrIllegalMove indicates a move that is not among the legal moves.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidMoveText indicates move text that cannot be parsed.
	ErrInvalidMoveText = errors.New("invalid move text")

	// ErrInvalidSnapshot indicates a saved game that is missing or has invalid fields.
	ErrInvalidSnapshot = errors.New("invalid snapshot")

	// ErrNoLegalMoves indicates a move was requested in a position without legal moves.
	ErrNoLegalMoves = errors.New("no legal moves")

	// ErrNoMoveFound indicates the search finished without choosing a move.
	// This is a logic error: search was invoked on a terminal position.
	ErrNoMoveFound = errors.New("search returned no move")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrGameOver indicates a move was attempted after the game ended.
	ErrGameOver = errors.New("game is over")

	// ErrNotYourTurn indicates a human move during the engine's turn or vice versa.
	ErrNotYourTurn = errors.New("not your turn")

	// ErrGameNotFound indicates an unknown game session.
	ErrGameNotFound = errors.New("game not found")
)

// MoveError wraps errors with move context, including the ply at which the
// move was attempted, the move text and the position it was played in.
// It implements the error interface and supports unwrapping via errors.Is()
// and errors.As().
type MoveError struct {
	Err      error  // The underlying error
	PlyNum   int    // Ply number where error occurred (0 if not applicable)
	MoveText string // The move text that caused the error (if applicable)
	FEN      string // Position the move was attempted in (if known)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	// Add ply number if available
	if e.PlyNum > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.PlyNum))
	}

	// Add move text if available
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	// Add position if available
	if e.FEN != "" {
		parts = append(parts, fmt.Sprintf("position %q", e.FEN))
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	if context == "" {
		return "move error"
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// SnapshotError represents a failure to decode a saved game, naming the
// offending field.
type SnapshotError struct {
	Err    error  // The underlying error
	File   string // Source file name (if known)
	Field  string // JSON field that is missing or invalid
	Detail string // What was wrong with the field
}

// Error returns a formatted error message with location and context.
func (e *SnapshotError) Error() string {
	var parts []string

	if e.File != "" {
		parts = append(parts, e.File)
	}
	if e.Field != "" {
		parts = append(parts, fmt.Sprintf("field %q", e.Field))
	}
	if e.Detail != "" {
		parts = append(parts, e.Detail)
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "snapshot error"
}

// Unwrap returns the underlying error.
func (e *SnapshotError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
