package testutil

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lgbarn/gochess/internal/chess"
)

// MoveStrings returns the long algebraic form of each move, sorted.
func MoveStrings(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	sort.Strings(out)
	return out
}

// AssertMoveSet compares two move lists as sets of long algebraic strings.
func AssertMoveSet(t testing.TB, got []chess.Move, want []string, msgAndArgs ...interface{}) {
	t.Helper()
	gotStrs := make([]string, len(got))
	for i, m := range got {
		gotStrs[i] = m.String()
	}
	opt := cmpopts.SortSlices(func(a, b string) bool { return a < b })
	if diff := cmp.Diff(want, gotStrs, opt, cmpopts.EquateEmpty()); diff != "" {
		fail(t, "move set mismatch (-want +got):\n"+diff, msgAndArgs...)
	}
}

// ContainsMove reports whether the move list holds the move given in long
// algebraic notation.
func ContainsMove(moves []chess.Move, text string) bool {
	for _, m := range moves {
		if m.String() == text {
			return true
		}
	}
	return false
}
