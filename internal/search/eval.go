// Package search implements material evaluation, alpha-beta minimax and the
// computer opponent built on top of it.
package search

import (
	"fmt"

	"github.com/lgbarn/gochess/internal/chess"
)

// Infinity is the score of a decided game. It is larger than any material
// balance Evaluate can return.
const Infinity = 1_000_000

// PieceValues holds the material value of each piece kind in centipawns.
var PieceValues = [chess.NumPieceValues]int{
	chess.Empty:  0,
	chess.Pawn:   100,
	chess.Knight: 320,
	chess.Bishop: 330,
	chess.Rook:   500,
	chess.Queen:  900,
	chess.King:   0,
}

// Evaluate returns the material balance of the position: positive when White
// is ahead. No positional terms are considered.
func Evaluate(board *chess.Board) int {
	score := 0
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.Squares[rank][file]
			if piece.IsEmpty() {
				continue
			}
			value := PieceValues[piece.Kind()]
			if piece.Colour() == chess.White {
				score += value
			} else {
				score -= value
			}
		}
	}
	return score
}

// FormatScore renders a score in pawns from White's point of view, e.g.
// "+1.20", or "+mate"/"-mate" for decided games.
func FormatScore(score int) string {
	switch {
	case score >= Infinity:
		return "+mate"
	case score <= -Infinity:
		return "-mate"
	default:
		return fmt.Sprintf("%+.2f", float64(score)/100)
	}
}
