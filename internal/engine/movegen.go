package engine

import "github.com/lgbarn/gochess/internal/chess"

// castlingPath describes the squares involved in one castling option.
// Files are indices; the rank is the colour's home rank.
type castlingPath struct {
	kingside  bool
	kingTo    int8   // king destination file
	transit   int8   // file the king passes over
	mustEmpty []int8 // files between king and rook
}

const kingHomeFile = 4

var castlingPaths = []castlingPath{
	{kingside: true, kingTo: 6, transit: 5, mustEmpty: []int8{5, 6}},
	{kingside: false, kingTo: 2, transit: 3, mustEmpty: []int8{1, 2, 3}},
}

// LegalMoves returns all legal moves for the side to move.
// The order is stable: origin squares from rank 1 to rank 8, file a to h,
// and a fixed per-piece order within each square.
func LegalMoves(board *chess.Board) []chess.Move {
	pseudo := PseudoLegalMoves(board)
	legal := pseudo[:0]
	for _, move := range pseudo {
		if leavesKingSafe(board, move) {
			legal = append(legal, move)
		}
	}
	return legal
}

// LegalMovesFrom returns the legal moves of the piece on sq.
func LegalMovesFrom(board *chess.Board, sq chess.Square) []chess.Move {
	var moves []chess.Move
	for _, move := range LegalMoves(board) {
		if move.From == sq {
			moves = append(moves, move)
		}
	}
	return moves
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func HasLegalMoves(board *chess.Board) bool {
	for _, move := range PseudoLegalMoves(board) {
		if leavesKingSafe(board, move) {
			return true
		}
	}
	return false
}

// leavesKingSafe plays the move on a copy and checks whether the mover's
// king is attacked afterwards.
func leavesKingSafe(board *chess.Board, move chess.Move) bool {
	next := ApplyMove(board, move)
	return !IsInCheck(next, board.ToMove)
}

// PseudoLegalMoves returns the moves that obey piece movement rules for the
// side to move, including those that leave its own king in check.
func PseudoLegalMoves(board *chess.Board) []chess.Move {
	colour := board.ToMove
	moves := make([]chess.Move, 0, 64)

	for rank := int8(0); rank < chess.BoardSize; rank++ {
		for file := int8(0); file < chess.BoardSize; file++ {
			from := chess.NewSquare(rank, file)
			piece := board.Get(from)
			if piece.IsEmpty() || piece.Colour() != colour {
				continue
			}

			switch piece.Kind() {
			case chess.Pawn:
				moves = appendPawnMoves(moves, board, from, colour)
			case chess.Knight:
				moves = appendStepMoves(moves, board, from, colour, knightOffsets)
			case chess.Bishop:
				moves = appendSlidingMoves(moves, board, from, colour, diagonalDirs)
			case chess.Rook:
				moves = appendSlidingMoves(moves, board, from, colour, straightDirs)
			case chess.Queen:
				moves = appendSlidingMoves(moves, board, from, colour, diagonalDirs)
				moves = appendSlidingMoves(moves, board, from, colour, straightDirs)
			case chess.King:
				moves = appendStepMoves(moves, board, from, colour, kingOffsets)
				moves = appendCastlingMoves(moves, board, from, colour)
			}
		}
	}
	return moves
}

// appendPawnMoves adds pushes, double pushes, captures and en passant.
// A move onto the last rank is added once per promotion piece.
func appendPawnMoves(moves []chess.Move, board *chess.Board, from chess.Square, colour chess.Colour) []chess.Move {
	dir := colour.PawnDirection()
	lastRank := colour.Opposite().HomeRank()
	startRank := colour.HomeRank() + dir

	// Forward move
	to := from.Offset(dir, 0)
	if to.InBounds() && board.Get(to).IsEmpty() {
		moves = appendPawnMove(moves, chess.NewMove(from, to), lastRank)

		// Double push from starting rank
		if from.Rank == startRank {
			to2 := from.Offset(2*dir, 0)
			if board.Get(to2).IsEmpty() {
				moves = append(moves, chess.NewMove(from, to2))
			}
		}
	}

	// Captures
	for _, dFile := range []int8{-1, 1} {
		to := from.Offset(dir, dFile)
		if !to.InBounds() {
			continue
		}
		target := board.Get(to)
		if !target.IsEmpty() && target.Colour() != colour {
			moves = appendPawnMove(moves, chess.NewMove(from, to), lastRank)
		} else if target.IsEmpty() && board.EnPassant && to == board.EPSquare {
			moves = append(moves, chess.NewMove(from, to))
		}
	}
	return moves
}

// appendPawnMove adds the move, expanded into promotions on the last rank.
func appendPawnMove(moves []chess.Move, move chess.Move, lastRank int8) []chess.Move {
	if move.To.Rank != lastRank {
		return append(moves, move)
	}
	for _, piece := range chess.PromotionPieces {
		moves = append(moves, move.WithPromotion(piece))
	}
	return moves
}

// appendStepMoves adds single-step moves for knights and kings.
func appendStepMoves(moves []chess.Move, board *chess.Board, from chess.Square, colour chess.Colour, offsets []offset) []chess.Move {
	for _, o := range offsets {
		to := from.Offset(o.dRank, o.dFile)
		if !to.InBounds() {
			continue
		}
		target := board.Get(to)
		if target.IsEmpty() || target.Colour() != colour {
			moves = append(moves, chess.NewMove(from, to))
		}
	}
	return moves
}

// appendSlidingMoves adds moves along each direction until blocked.
// The blocking square is included only if it holds an enemy piece.
func appendSlidingMoves(moves []chess.Move, board *chess.Board, from chess.Square, colour chess.Colour, dirs []offset) []chess.Move {
	for _, dir := range dirs {
		for to := from.Offset(dir.dRank, dir.dFile); to.InBounds(); to = to.Offset(dir.dRank, dir.dFile) {
			target := board.Get(to)
			if target.IsEmpty() {
				moves = append(moves, chess.NewMove(from, to))
				continue
			}
			if target.Colour() != colour {
				moves = append(moves, chess.NewMove(from, to))
			}
			break // Blocked
		}
	}
	return moves
}

// appendCastlingMoves adds the king's two-square castling shifts that are
// still permitted. The king's start, transit and destination squares must
// not be attacked; the rook's square is not checked.
func appendCastlingMoves(moves []chess.Move, board *chess.Board, from chess.Square, colour chess.Colour) []chess.Move {
	home := colour.HomeRank()
	if from != chess.NewSquare(home, kingHomeFile) {
		return moves
	}
	enemy := colour.Opposite()

	for _, path := range castlingPaths {
		right := chess.QueensideRight(colour)
		if path.kingside {
			right = chess.KingsideRight(colour)
		}
		if !board.Castling.Has(right) {
			continue
		}

		rookFile := int8(chess.BoardSize - 1)
		if !path.kingside {
			rookFile = 0
		}
		if !board.Get(chess.NewSquare(home, rookFile)).Is(colour, chess.Rook) {
			continue
		}

		empty := true
		for _, file := range path.mustEmpty {
			if !board.Get(chess.NewSquare(home, file)).IsEmpty() {
				empty = false
				break
			}
		}
		if !empty {
			continue
		}

		if IsSquareAttacked(board, from, enemy) ||
			IsSquareAttacked(board, chess.NewSquare(home, path.transit), enemy) ||
			IsSquareAttacked(board, chess.NewSquare(home, path.kingTo), enemy) {
			continue
		}
		moves = append(moves, chess.NewMove(from, chess.NewSquare(home, path.kingTo)))
	}
	return moves
}
