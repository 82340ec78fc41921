package testutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lgbarn/gochess/internal/chess"
)

func TestAssertEqual_Success(t *testing.T) {
	AssertEqual(t, 42, 42)
	AssertEqual(t, "e2e4", "e2e4")
	AssertEqual(t, []string{"a", "b"}, []string{"a", "b"})
	AssertEqual(t, chess.MustParseSquare("e4"), chess.NewSquare(3, 4))
}

func TestAssertEqual_WithMessage(t *testing.T) {
	AssertEqual(t, 1, 1, "perft depth %d", 1)
}

func TestAssertErrorIs_Success(t *testing.T) {
	sentinel := errors.New("sentinel")
	AssertErrorIs(t, fmt.Errorf("wrapped: %w", sentinel), sentinel)
	AssertNoError(t, nil)
}

func TestAssertContains_Success(t *testing.T) {
	AssertContains(t, "illegal move e2e5", "e2e5")
	AssertTrue(t, true)
	AssertFalse(t, false)
}

func TestMoveStrings(t *testing.T) {
	moves := []chess.Move{
		chess.NewMove(chess.MustParseSquare("g1"), chess.MustParseSquare("f3")),
		chess.NewMove(chess.MustParseSquare("e2"), chess.MustParseSquare("e4")),
		chess.NewMove(chess.MustParseSquare("a7"), chess.MustParseSquare("a8")).WithPromotion(chess.Knight),
	}
	got := MoveStrings(moves)
	want := []string{"a7a8n", "e2e4", "g1f3"}
	AssertEqual(t, got, want)
}

func TestAssertMoveSet_OrderIndependent(t *testing.T) {
	moves := []chess.Move{
		chess.NewMove(chess.MustParseSquare("b1"), chess.MustParseSquare("c3")),
		chess.NewMove(chess.MustParseSquare("b1"), chess.MustParseSquare("a3")),
	}
	AssertMoveSet(t, moves, []string{"b1a3", "b1c3"})
	AssertMoveSet(t, nil, []string{})
}

func TestContainsMove(t *testing.T) {
	moves := []chess.Move{chess.NewMove(chess.MustParseSquare("e1"), chess.MustParseSquare("g1"))}
	if !ContainsMove(moves, "e1g1") {
		t.Error("ContainsMove(e1g1) = false, want true")
	}
	if ContainsMove(moves, "e1c1") {
		t.Error("ContainsMove(e1c1) = true, want false")
	}
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"single string", []interface{}{"hello"}, "hello"},
		{"single int", []interface{}{42}, "42"},
		{"format string", []interface{}{"depth %d from %s", 3, "e2"}, "depth 3 from e2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatMessage(tt.args...)
			if got != tt.want {
				t.Errorf("formatMessage(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}
