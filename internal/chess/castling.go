package chess

import (
	"fmt"
	"strings"
)

// CastlingRights is a set of the four independent castling rights.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	NoCastling  CastlingRights = 0
	AllCastling                = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// castlingLetters is in FEN order.
var castlingLetters = []struct {
	right  CastlingRights
	letter byte
}{
	{WhiteKingside, 'K'},
	{WhiteQueenside, 'Q'},
	{BlackKingside, 'k'},
	{BlackQueenside, 'q'},
}

// KingsideRight returns the kingside right of the colour.
func KingsideRight(colour Colour) CastlingRights {
	if colour == White {
		return WhiteKingside
	}
	return BlackKingside
}

// QueensideRight returns the queenside right of the colour.
func QueensideRight(colour Colour) CastlingRights {
	if colour == White {
		return WhiteQueenside
	}
	return BlackQueenside
}

// Has reports whether every right in r is held.
func (c CastlingRights) Has(r CastlingRights) bool {
	return c&r == r
}

// Without returns the rights with r revoked.
func (c CastlingRights) Without(r CastlingRights) CastlingRights {
	return c &^ r
}

// String returns the FEN form of the rights: a subset of "KQkq", or "-".
func (c CastlingRights) String() string {
	var sb strings.Builder
	for _, cl := range castlingLetters {
		if c.Has(cl.right) {
			sb.WriteByte(cl.letter)
		}
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

// ParseCastlingRights parses a FEN castling field. Both "" and "-" mean no rights.
func ParseCastlingRights(s string) (CastlingRights, error) {
	rights := NoCastling
	if s == "-" {
		return rights, nil
	}
	for i := 0; i < len(s); i++ {
		found := false
		for _, cl := range castlingLetters {
			if s[i] != cl.letter {
				continue
			}
			if rights.Has(cl.right) {
				return NoCastling, fmt.Errorf("castling rights %q: duplicate %q", s, s[i])
			}
			rights |= cl.right
			found = true
		}
		if !found {
			return NoCastling, fmt.Errorf("castling rights %q: unknown right %q", s, s[i])
		}
	}
	return rights, nil
}
