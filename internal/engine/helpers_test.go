package engine

import (
	"testing"

	"github.com/lgbarn/gochess/internal/chess"
)

// mustBoard parses fen or fails the test.
func mustBoard(t testing.TB, fen string) *chess.Board {
	t.Helper()
	board, err := NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) failed: %v", fen, err)
	}
	return board
}

// mustMove parses a long algebraic move or fails the test.
func mustMove(t testing.TB, text string) chess.Move {
	t.Helper()
	move, err := chess.ParseMove(text)
	if err != nil {
		t.Fatalf("ParseMove(%q) failed: %v", text, err)
	}
	return move
}

// sq is shorthand for chess.MustParseSquare.
func sq(name string) chess.Square {
	return chess.MustParseSquare(name)
}
