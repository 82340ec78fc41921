package chess

// Board represents a chess position with all state needed for the game.
// It holds no references, so assigning or copying a Board yields an
// independently owned position.
type Board struct {
	// The board squares indexed [rank][file].
	Squares [BoardSize][BoardSize]ColouredPiece

	// Who has the next move.
	ToMove Colour

	// Castling rights still held by each side.
	Castling CastlingRights

	// Is EnPassant capture possible? If so then EPSquare is the square
	// the last double-pushed pawn passed over.
	EnPassant bool
	EPSquare  Square

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint

	// The current move number.
	MoveNumber uint
}

// NewBoard creates a new empty board with White to move.
func NewBoard() *Board {
	return &Board{
		ToMove:     White,
		MoveNumber: 1,
	}
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Squares = [BoardSize][BoardSize]ColouredPiece{}

	backRank := []Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.Squares[0][file] = W(backRank[file])
		b.Squares[1][file] = W(Pawn)
		b.Squares[6][file] = B(Pawn)
		b.Squares[7][file] = B(backRank[file])
	}

	b.ToMove = White
	b.Castling = AllCastling
	b.EnPassant = false
	b.EPSquare = Square{}
	b.HalfmoveClock = 0
	b.MoveNumber = 1
}

// Get returns the piece on the square. Off-board squares read as empty.
func (b *Board) Get(sq Square) ColouredPiece {
	if !sq.InBounds() {
		return NoPiece
	}
	return b.Squares[sq.Rank][sq.File]
}

// Set places a piece on the square. Off-board squares are ignored.
func (b *Board) Set(sq Square, piece ColouredPiece) {
	if sq.InBounds() {
		b.Squares[sq.Rank][sq.File] = piece
	}
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// FindKing returns the square of the king of the given colour.
func (b *Board) FindKing(colour Colour) (Square, bool) {
	king := MakeColouredPiece(colour, King)
	for rank := int8(0); rank < BoardSize; rank++ {
		for file := int8(0); file < BoardSize; file++ {
			if b.Squares[rank][file] == king {
				return NewSquare(rank, file), true
			}
		}
	}
	return Square{}, false
}

// CountPieces returns how many pieces of the given colour and kind are on the board.
func (b *Board) CountPieces(colour Colour, piece Piece) int {
	target := MakeColouredPiece(colour, piece)
	n := 0
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			if b.Squares[rank][file] == target {
				n++
			}
		}
	}
	return n
}
