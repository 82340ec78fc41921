package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/gochess/internal/chess"
	"github.com/lgbarn/gochess/internal/engine"
)

// renderBoard draws the board from White's side with rank 8 at the top.
// Pieces use their FEN letters and empty squares a dot.
func renderBoard(w io.Writer, board *chess.Board) {
	for rank := int8(chess.BoardSize - 1); rank >= 0; rank-- {
		var sb strings.Builder
		fmt.Fprintf(&sb, "%d", rank+1)
		for file := int8(0); file < chess.BoardSize; file++ {
			piece := board.Get(chess.NewSquare(rank, file))
			if piece.IsEmpty() {
				sb.WriteString(" .")
				continue
			}
			sb.WriteByte(' ')
			sb.WriteByte(engine.ColouredPieceToFENLetter(piece))
		}
		fmt.Fprintln(w, sb.String())
	}
	fmt.Fprintln(w, "  a b c d e f g h")
}

// resultText describes a finished game the way the result line prints it.
func resultText(status engine.Status) string {
	if winner, ok := status.Outcome.Winner(); ok {
		return fmt.Sprintf("%s (%s)", strings.ToLower(winner.String()), status.Reason)
	}
	return fmt.Sprintf("draw (%s)", status.Reason)
}
