package main

import (
	"bytes"
	"testing"

	"github.com/lgbarn/gochess/internal/chess"
	"github.com/lgbarn/gochess/internal/engine"
)

func TestRenderBoard(t *testing.T) {
	var buf bytes.Buffer
	renderBoard(&buf, chess.NewInitialBoard())

	want := `8 r n b q k b n r
7 p p p p p p p p
6 . . . . . . . .
5 . . . . . . . .
4 . . . . . . . .
3 . . . . . . . .
2 P P P P P P P P
1 R N B Q K B N R
  a b c d e f g h
`
	if buf.String() != want {
		t.Errorf("renderBoard() =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestResultText(t *testing.T) {
	tests := []struct {
		name   string
		status engine.Status
		want   string
	}{
		{"white mates", engine.Status{Outcome: engine.WhiteWins, Reason: engine.Checkmate}, "white (checkmate)"},
		{"black mates", engine.Status{Outcome: engine.BlackWins, Reason: engine.Checkmate}, "black (checkmate)"},
		{"stalemate", engine.Status{Outcome: engine.Draw, Reason: engine.Stalemate}, "draw (stalemate)"},
		{"fifty moves", engine.Status{Outcome: engine.Draw, Reason: engine.FiftyMoveRule}, "draw (fifty-move rule)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resultText(tt.status); got != tt.want {
				t.Errorf("resultText(%+v) = %q, want %q", tt.status, got, tt.want)
			}
		})
	}
}
