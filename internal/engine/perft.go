package engine

import "github.com/lgbarn/gochess/internal/chess"

// Perft counts the leaf nodes of the legal move tree to the given depth.
func Perft(board *chess.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := LegalMoves(board)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, move := range moves {
		nodes += Perft(ApplyMove(board, move), depth-1)
	}
	return nodes
}

// DivideEntry is the perft count below a single root move.
type DivideEntry struct {
	Move  chess.Move
	Nodes uint64
}

// Divide returns the perft count below each root move, in generation order.
func Divide(board *chess.Board, depth int) []DivideEntry {
	moves := LegalMoves(board)
	entries := make([]DivideEntry, 0, len(moves))
	for _, move := range moves {
		entries = append(entries, DivideEntry{
			Move:  move,
			Nodes: Perft(ApplyMove(board, move), depth-1),
		})
	}
	return entries
}
