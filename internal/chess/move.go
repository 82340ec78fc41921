package chess

import "fmt"

// Move represents a single chess move by its squares and optional promotion.
// Castling is encoded as the king's two-file shift.
type Move struct {
	// Source square.
	From Square

	// Destination square.
	To Square

	// The piece promoted to (Empty if not a promotion).
	Promotion Piece
}

// NewMove creates a move without promotion.
func NewMove(from, to Square) Move {
	return Move{From: from, To: to}
}

// IsPromotion returns true if this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Promotion != Empty
}

// WithPromotion returns the move promoting to the given piece.
func (m Move) WithPromotion(piece Piece) Move {
	m.Promotion = piece
	return m
}

// String returns the move in long algebraic notation, e.g. "e2e4" or "e7e8n".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += string(m.Promotion.Letter() + ('a' - 'A'))
	}
	return s
}

// ParseMove parses a move in long algebraic notation ("e2e4", "e7e8q").
// The promotion letter may be in either case.
func ParseMove(text string) (Move, error) {
	if len(text) != 4 && len(text) != 5 {
		return Move{}, fmt.Errorf("move %q: want 4 or 5 characters", text)
	}
	from, err := ParseSquare(text[0:2])
	if err != nil {
		return Move{}, fmt.Errorf("move %q: %w", text, err)
	}
	to, err := ParseSquare(text[2:4])
	if err != nil {
		return Move{}, fmt.Errorf("move %q: %w", text, err)
	}
	move := NewMove(from, to)
	if len(text) == 5 {
		piece := PieceFromLetter(text[4])
		if !piece.IsPromotionPiece() {
			return Move{}, fmt.Errorf("move %q: invalid promotion %q", text, text[4])
		}
		move.Promotion = piece
	}
	return move, nil
}
