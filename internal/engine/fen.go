package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/gochess/internal/chess"
	"github.com/lgbarn/gochess/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ColouredPieceToFENLetter returns the FEN letter for a coloured piece.
func ColouredPieceToFENLetter(piece chess.ColouredPiece) byte {
	letter := piece.Kind().Letter()
	if piece.Colour() == chess.Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// NewBoardFromFEN creates a board from a FEN string.
// The halfmove clock and fullmove number may be omitted.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}
	if len(parts) < 4 {
		return nil, fmt.Errorf("FEN %q: want at least 4 fields: %w", fen, errors.ErrInvalidFEN)
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(board, parts[1]); err != nil {
		return nil, err
	}

	rights, err := chess.ParseCastlingRights(parts[2])
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, errors.ErrInvalidFEN)
	}
	board.Castling = rights

	if err := parseEnPassant(board, parts[3]); err != nil {
		return nil, err
	}
	if err := parseClocks(board, parts[4:]); err != nil {
		return nil, err
	}
	if err := ValidateKings(board); err != nil {
		return nil, fmt.Errorf("%v: %w", err, errors.ErrInvalidFEN)
	}

	return board, nil
}

// MustBoardFromFEN is like NewBoardFromFEN but panics on error.
func MustBoardFromFEN(fen string) *chess.Board {
	board, err := NewBoardFromFEN(fen)
	if err != nil {
		panic(err)
	}
	return board
}

// ValidateKings checks that each side has exactly one king.
func ValidateKings(board *chess.Board) error {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if n := board.CountPieces(colour, chess.King); n != 1 {
			return fmt.Errorf("%s has %d kings, want 1", colour, n)
		}
	}
	return nil
}

// ValidateEnPassant checks that the en passant target, if set, could follow
// an opponent's double pawn push: the square sits on the side to move's
// sixth rank, it is empty, and the opponent's pawn stands just beyond it.
func ValidateEnPassant(board *chess.Board) error {
	if !board.EnPassant {
		return nil
	}
	sq := board.EPSquare
	want := int8(5)
	if board.ToMove == chess.Black {
		want = 2
	}
	if !sq.InBounds() || sq.Rank != want {
		return fmt.Errorf("en passant square %s not on rank %d for %s to move", sq, want+1, board.ToMove)
	}
	if !board.Get(sq).IsEmpty() {
		return fmt.Errorf("en passant square %s is occupied", sq)
	}
	pushed := sq.Offset(-board.ToMove.PawnDirection(), 0)
	if !board.Get(pushed).Is(board.ToMove.Opposite(), chess.Pawn) {
		return fmt.Errorf("en passant square %s has no %s pawn on %s", sq, board.ToMove.Opposite(), pushed)
	}
	return nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fmt.Errorf("piece placement %q: want %d ranks: %w", positions, chess.BoardSize, errors.ErrInvalidFEN)
	}

	for i, row := range ranks {
		rank := int8(chess.BoardSize - 1 - i)
		file := int8(0)
		for _, c := range row {
			switch {
			case c >= '1' && c <= '8':
				file += int8(c - '0')
			default:
				piece := chess.PieceFromLetter(byte(c))
				if piece == chess.Empty || c > unicode.MaxASCII {
					return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
				}
				if file >= chess.BoardSize {
					return fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
				}

				colour := chess.White
				if unicode.IsLower(c) {
					colour = chess.Black
				}
				board.Set(chess.NewSquare(rank, file), chess.MakeColouredPiece(colour, piece))
				file++
			}
		}
		if file != chess.BoardSize {
			return fmt.Errorf("rank %d has %d files, want %d: %w", rank+1, file, chess.BoardSize, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(board *chess.Board, side string) error {
	switch side {
	case "w":
		board.ToMove = chess.White
	case "b":
		board.ToMove = chess.Black
	default:
		return fmt.Errorf("invalid side to move: %s: %w", side, errors.ErrInvalidFEN)
	}
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(board *chess.Board, field string) error {
	board.EnPassant = false
	if field == "-" {
		return nil
	}
	sq, err := chess.ParseSquare(field)
	if err != nil {
		return fmt.Errorf("en passant %v: %w", err, errors.ErrInvalidFEN)
	}
	board.EnPassant = true
	board.EPSquare = sq
	if err := ValidateEnPassant(board); err != nil {
		return fmt.Errorf("%v: %w", err, errors.ErrInvalidFEN)
	}
	return nil
}

// parseClocks parses the optional halfmove clock and fullmove number fields.
func parseClocks(board *chess.Board, fields []string) error {
	if len(fields) >= 1 {
		n, err := strconv.ParseUint(fields[0], 10, 32)
		if err != nil {
			return fmt.Errorf("halfmove clock %q: %w", fields[0], errors.ErrInvalidFEN)
		}
		board.HalfmoveClock = uint(n)
	}
	if len(fields) >= 2 {
		n, err := strconv.ParseUint(fields[1], 10, 32)
		if err != nil || n == 0 {
			return fmt.Errorf("fullmove number %q: %w", fields[1], errors.ErrInvalidFEN)
		}
		board.MoveNumber = uint(n)
	}
	return nil
}

// BoardToFEN converts a board to a FEN string.
func BoardToFEN(board *chess.Board) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, board)
	sb.WriteByte(' ')
	sb.WriteString(board.Castling.String())
	sb.WriteByte(' ')
	writeEnPassant(&sb, board)
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", board.HalfmoveClock, board.MoveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := int8(chess.BoardSize - 1); rank >= 0; rank-- {
		emptyCount := 0
		for file := int8(0); file < chess.BoardSize; file++ {
			piece := board.Get(chess.NewSquare(rank, file))
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(ColouredPieceToFENLetter(piece))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, board *chess.Board) {
	if board.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, board *chess.Board) {
	if board.EnPassant {
		sb.WriteString(board.EPSquare.String())
	} else {
		sb.WriteByte('-')
	}
}
