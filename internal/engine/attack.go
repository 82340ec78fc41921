package engine

import "github.com/lgbarn/gochess/internal/chess"

// offset is a (rank, file) step.
type offset struct {
	dRank, dFile int8
}

var (
	knightOffsets = []offset{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = []offset{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs  = []offset{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	straightDirs  = []offset{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
)

// IsInCheck returns true if the given colour's king is in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	kingSq, ok := board.FindKing(colour)
	if !ok {
		return false // No king found
	}
	return IsSquareAttacked(board, kingSq, colour.Opposite())
}

// IsSquareAttacked returns true if the square is attacked by the given colour.
// It reads the board only and never generates moves.
func IsSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	// Check pawn attacks: an attacking pawn sits one rank behind the square
	// from the attacker's point of view.
	pawn := chess.MakeColouredPiece(byColour, chess.Pawn)
	pawnRank := -byColour.PawnDirection()
	for _, dFile := range []int8{-1, 1} {
		from := sq.Offset(pawnRank, dFile)
		if from.InBounds() && board.Get(from) == pawn {
			return true
		}
	}

	// Check knight attacks
	knight := chess.MakeColouredPiece(byColour, chess.Knight)
	for _, o := range knightOffsets {
		from := sq.Offset(o.dRank, o.dFile)
		if from.InBounds() && board.Get(from) == knight {
			return true
		}
	}

	// Check king attacks
	king := chess.MakeColouredPiece(byColour, chess.King)
	for _, o := range kingOffsets {
		from := sq.Offset(o.dRank, o.dFile)
		if from.InBounds() && board.Get(from) == king {
			return true
		}
	}

	queen := chess.MakeColouredPiece(byColour, chess.Queen)

	// Check sliding pieces (bishop, queen) along diagonals
	bishop := chess.MakeColouredPiece(byColour, chess.Bishop)
	if slidingAttack(board, sq, diagonalDirs, bishop, queen) {
		return true
	}

	// Check sliding pieces (rook, queen) along straight lines
	rook := chess.MakeColouredPiece(byColour, chess.Rook)
	return slidingAttack(board, sq, straightDirs, rook, queen)
}

// slidingAttack walks each direction from sq and reports whether the first
// occupied square holds one of the two attacker pieces.
func slidingAttack(board *chess.Board, sq chess.Square, dirs []offset, attacker, queen chess.ColouredPiece) bool {
	for _, dir := range dirs {
		for cur := sq.Offset(dir.dRank, dir.dFile); cur.InBounds(); cur = cur.Offset(dir.dRank, dir.dFile) {
			piece := board.Get(cur)
			if piece.IsEmpty() {
				continue
			}
			if piece == attacker || piece == queen {
				return true
			}
			break // Blocked
		}
	}
	return false
}
