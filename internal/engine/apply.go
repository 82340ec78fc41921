// Package engine provides chess move generation, application and game
// outcome rules over chess.Board values.
package engine

import (
	"github.com/lgbarn/gochess/internal/chess"
)

// ApplyMove returns the position reached by playing move on board.
// The input board is never modified. The move must come from LegalMoves;
// no validation is performed here.
func ApplyMove(board *chess.Board, move chess.Move) *chess.Board {
	next := board.Copy()
	colour := board.ToMove
	piece := board.Get(move.From)
	captured := board.Get(move.To)
	kind := piece.Kind()

	next.Set(move.From, chess.NoPiece)

	// Handle en passant capture: the captured pawn sits beside the origin,
	// behind the target square.
	enPassant := kind == chess.Pawn && move.From.File != move.To.File &&
		captured.IsEmpty() && board.EnPassant && move.To == board.EPSquare
	if enPassant {
		next.Set(chess.NewSquare(move.From.Rank, move.To.File), chess.NoPiece)
	}

	// Handle castling: the rook follows the king's two-file shift.
	if kind == chess.King && abs8(move.To.File-move.From.File) == 2 {
		rookFrom := chess.NewSquare(move.From.Rank, chess.BoardSize-1)
		rookTo := chess.NewSquare(move.From.Rank, 5)
		if move.To.File < move.From.File {
			rookFrom = chess.NewSquare(move.From.Rank, 0)
			rookTo = chess.NewSquare(move.From.Rank, 3)
		}
		rook := next.Get(rookFrom)
		next.Set(rookFrom, chess.NoPiece)
		next.Set(rookTo, rook)
	}

	// Move the piece, handling promotion
	if move.IsPromotion() {
		next.Set(move.To, chess.MakeColouredPiece(colour, move.Promotion))
	} else {
		next.Set(move.To, piece)
	}

	// Set en passant square if double pawn push
	next.EnPassant = false
	next.EPSquare = chess.Square{}
	if kind == chess.Pawn && abs8(move.To.Rank-move.From.Rank) == 2 {
		next.EnPassant = true
		next.EPSquare = chess.NewSquare((move.From.Rank+move.To.Rank)/2, move.From.File)
	}

	// Update castling rights if king or rook moved, or a rook was captured
	if kind == chess.King {
		next.Castling = next.Castling.Without(chess.KingsideRight(colour) | chess.QueensideRight(colour))
	}
	next.Castling = revokeRookRight(next.Castling, move.From)
	next.Castling = revokeRookRight(next.Castling, move.To)

	// Update halfmove clock
	if kind == chess.Pawn || !captured.IsEmpty() || enPassant {
		next.HalfmoveClock = 0
	} else {
		next.HalfmoveClock++
	}

	if colour == chess.Black {
		next.MoveNumber++
	}
	next.ToMove = colour.Opposite()

	return next
}

// rookHomes maps each corner square to the castling right it anchors.
var rookHomes = map[chess.Square]chess.CastlingRights{
	chess.NewSquare(0, 0): chess.WhiteQueenside,
	chess.NewSquare(0, 7): chess.WhiteKingside,
	chess.NewSquare(7, 0): chess.BlackQueenside,
	chess.NewSquare(7, 7): chess.BlackKingside,
}

// revokeRookRight removes the right anchored on sq, if any. A rook leaving
// or being captured on its home corner loses that right for good.
func revokeRookRight(rights chess.CastlingRights, sq chess.Square) chess.CastlingRights {
	if right, ok := rookHomes[sq]; ok {
		return rights.Without(right)
	}
	return rights
}

// IsCapture reports whether the legal move captures a piece on board,
// counting en passant.
func IsCapture(board *chess.Board, move chess.Move) bool {
	if !board.Get(move.To).IsEmpty() {
		return true
	}
	piece := board.Get(move.From)
	return piece.Kind() == chess.Pawn && move.From.File != move.To.File
}

// abs8 returns the absolute value of x.
func abs8(x int8) int8 {
	if x < 0 {
		return -x
	}
	return x
}
