// Package chess provides core chess types and operations.
package chess

import "fmt"

// Colour represents the colour of a piece or player.
type Colour uint8

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// PawnDirection returns +1 for White, -1 for Black (rank delta of a pawn push).
func (c Colour) PawnDirection() int8 {
	if c == White {
		return 1
	}
	return -1
}

// HomeRank returns the back rank index of the colour.
func (c Colour) HomeRank() int8 {
	if c == White {
		return 0
	}
	return BoardSize - 1
}

// Piece represents a chess piece type.
type Piece uint8

const (
	Empty Piece = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceValues
)

// PromotionPieces lists the kinds a pawn may promote to, in generation order.
var PromotionPieces = [4]Piece{Queen, Rook, Bishop, Knight}

// String returns the string representation of a piece.
func (p Piece) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece (uppercase).
func (p Piece) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// PieceFromLetter converts a piece letter in either case to a piece type.
func PieceFromLetter(c byte) Piece {
	switch c {
	case 'K', 'k':
		return King
	case 'Q', 'q':
		return Queen
	case 'R', 'r':
		return Rook
	case 'B', 'b':
		return Bishop
	case 'N', 'n':
		return Knight
	case 'P', 'p':
		return Pawn
	default:
		return Empty
	}
}

// IsPromotionPiece reports whether a pawn may promote to p.
func (p Piece) IsPromotionPiece() bool {
	return p == Queen || p == Rook || p == Bishop || p == Knight
}

// PieceShift is used for encoding coloured pieces.
const PieceShift = 1

// ColouredPiece is a (colour, kind) pair packed into a byte.
// The zero value is an empty square.
type ColouredPiece uint8

// NoPiece is the content of an empty square.
const NoPiece ColouredPiece = 0

// MakeColouredPiece creates a coloured piece value.
func MakeColouredPiece(colour Colour, piece Piece) ColouredPiece {
	if piece == Empty {
		return NoPiece
	}
	return ColouredPiece(uint8(piece)<<PieceShift | uint8(colour))
}

// W creates a white piece.
func W(piece Piece) ColouredPiece {
	return MakeColouredPiece(White, piece)
}

// B creates a black piece.
func B(piece Piece) ColouredPiece {
	return MakeColouredPiece(Black, piece)
}

// Colour extracts the colour from a coloured piece.
func (cp ColouredPiece) Colour() Colour {
	return Colour(cp & 0x01)
}

// Kind extracts the piece type from a coloured piece.
func (cp ColouredPiece) Kind() Piece {
	return Piece(cp >> PieceShift)
}

// IsEmpty reports whether the square content is empty.
func (cp ColouredPiece) IsEmpty() bool {
	return cp == NoPiece
}

// Is reports whether cp is a piece of the given colour and kind.
func (cp ColouredPiece) Is(colour Colour, piece Piece) bool {
	return cp == MakeColouredPiece(colour, piece)
}

// Code returns the two-character "colour+kind" code ("wK", "bP") or "" for empty.
func (cp ColouredPiece) Code() string {
	if cp.IsEmpty() {
		return ""
	}
	c := byte('b')
	if cp.Colour() == White {
		c = 'w'
	}
	return string([]byte{c, cp.Kind().Letter()})
}

// String returns the code of the piece, or "--" for an empty square.
func (cp ColouredPiece) String() string {
	if cp.IsEmpty() {
		return "--"
	}
	return cp.Code()
}

// ParseCode parses a two-character piece code; "" is an empty square.
func ParseCode(code string) (ColouredPiece, error) {
	if code == "" {
		return NoPiece, nil
	}
	if len(code) != 2 {
		return NoPiece, fmt.Errorf("piece code %q: want 2 characters", code)
	}
	var colour Colour
	switch code[0] {
	case 'w':
		colour = White
	case 'b':
		colour = Black
	default:
		return NoPiece, fmt.Errorf("piece code %q: unknown colour %q", code, code[0])
	}
	if code[1] < 'A' || code[1] > 'Z' {
		return NoPiece, fmt.Errorf("piece code %q: unknown kind %q", code, code[1])
	}
	piece := PieceFromLetter(code[1])
	if piece == Empty {
		return NoPiece, fmt.Errorf("piece code %q: unknown kind %q", code, code[1])
	}
	return MakeColouredPiece(colour, piece), nil
}

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	RankBase = '1'
	ColBase  = 'a'
)

// Square is a (rank, file) pair; rank 0 is rank '1' and file 0 is file 'a'.
type Square struct {
	Rank int8
	File int8
}

// NewSquare returns the square at the given rank and file indices.
func NewSquare(rank, file int8) Square {
	return Square{Rank: rank, File: file}
}

// InBounds reports whether the square lies on the board.
func (s Square) InBounds() bool {
	return s.Rank >= 0 && s.Rank < BoardSize && s.File >= 0 && s.File < BoardSize
}

// Offset returns the square shifted by the given rank and file deltas.
// The result may be off the board; check with InBounds.
func (s Square) Offset(dRank, dFile int8) Square {
	return Square{Rank: s.Rank + dRank, File: s.File + dFile}
}

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	if !s.InBounds() {
		return "??"
	}
	return string([]byte{byte(ColBase + s.File), byte(RankBase + s.Rank)})
}

// ParseSquare parses an algebraic square name such as "e4".
func ParseSquare(name string) (Square, error) {
	if len(name) != 2 {
		return Square{}, fmt.Errorf("square %q: want file and rank", name)
	}
	file := int8(name[0]) - ColBase
	rank := int8(name[1]) - RankBase
	sq := NewSquare(rank, file)
	if name[0] < 'a' || name[0] > 'h' || name[1] < '1' || name[1] > '8' || !sq.InBounds() {
		return Square{}, fmt.Errorf("square %q: off the board", name)
	}
	return sq, nil
}

// MustParseSquare is like ParseSquare but panics on error.
// It is intended for fixed tables and tests.
func MustParseSquare(name string) Square {
	sq, err := ParseSquare(name)
	if err != nil {
		panic(err)
	}
	return sq
}
