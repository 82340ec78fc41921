// Package snapshot reads and writes saved games as JSON documents.
//
// A document holds the 8x8 grid with row 0 as rank 8, the side to move,
// the castling rights, the en passant square as [row, col] or null, and both
// move clocks. Every field is required when loading.
package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/gochess/internal/chess"
	"github.com/lgbarn/gochess/internal/engine"
	"github.com/lgbarn/gochess/internal/errors"
)

// DefaultPath is the file used when no save path is configured.
const DefaultPath = "saved_game.json"

// Field names of the document.
const (
	FieldBoard          = "board"
	FieldWhiteToMove    = "white_to_move"
	FieldCastling       = "castling"
	FieldEnPassant      = "en_passant"
	FieldHalfmoveClock  = "halfmove_clock"
	FieldFullmoveNumber = "fullmove_number"
)

var requiredFields = []string{
	FieldBoard, FieldWhiteToMove, FieldCastling,
	FieldEnPassant, FieldHalfmoveClock, FieldFullmoveNumber,
}

// Document is the JSON form of a position.
type Document struct {
	Board          [chess.BoardSize][chess.BoardSize]string `json:"board"`
	WhiteToMove    bool                                     `json:"white_to_move"`
	Castling       string                                   `json:"castling"`
	EnPassant      *[2]int                                  `json:"en_passant"`
	HalfmoveClock  uint                                     `json:"halfmove_clock"`
	FullmoveNumber uint                                     `json:"fullmove_number"`
}

// FromBoard converts a board to its document form.
func FromBoard(board *chess.Board) Document {
	var doc Document
	for rank := int8(0); rank < chess.BoardSize; rank++ {
		row := chess.BoardSize - 1 - rank
		for file := int8(0); file < chess.BoardSize; file++ {
			doc.Board[row][file] = board.Get(chess.NewSquare(rank, file)).Code()
		}
	}
	doc.WhiteToMove = board.ToMove == chess.White
	if board.Castling != chess.NoCastling {
		doc.Castling = board.Castling.String()
	}
	if board.EnPassant {
		doc.EnPassant = &[2]int{chess.BoardSize - 1 - int(board.EPSquare.Rank), int(board.EPSquare.File)}
	}
	doc.HalfmoveClock = board.HalfmoveClock
	doc.FullmoveNumber = board.MoveNumber
	return doc
}

// Marshal encodes the board as an indented JSON document.
func Marshal(board *chess.Board) ([]byte, error) {
	return json.MarshalIndent(FromBoard(board), "", "  ")
}

// Encode writes the board as a JSON document to w.
func Encode(w io.Writer, board *chess.Board) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(FromBoard(board))
}

// Unmarshal decodes a JSON document into a new board.
// Missing or invalid fields yield a *errors.SnapshotError wrapping
// ErrInvalidSnapshot; no partially filled board is ever returned.
func Unmarshal(data []byte) (*chess.Board, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, invalid("", fmt.Sprintf("malformed JSON: %v", err))
	}
	for _, name := range requiredFields {
		if _, ok := fields[name]; !ok {
			return nil, invalid(name, "missing")
		}
	}

	board := chess.NewBoard()
	if err := decodeGrid(board, fields[FieldBoard]); err != nil {
		return nil, err
	}

	var whiteToMove bool
	if err := unmarshalField(fields[FieldWhiteToMove], &whiteToMove); err != nil {
		return nil, invalid(FieldWhiteToMove, "want true or false")
	}
	board.ToMove = chess.Black
	if whiteToMove {
		board.ToMove = chess.White
	}

	if err := decodeCastling(board, fields[FieldCastling]); err != nil {
		return nil, err
	}
	if err := decodeEnPassant(board, fields[FieldEnPassant]); err != nil {
		return nil, err
	}

	halfmove, err := decodeCount(fields[FieldHalfmoveClock], FieldHalfmoveClock, 0)
	if err != nil {
		return nil, err
	}
	board.HalfmoveClock = halfmove

	fullmove, err := decodeCount(fields[FieldFullmoveNumber], FieldFullmoveNumber, 1)
	if err != nil {
		return nil, err
	}
	board.MoveNumber = fullmove

	if err := engine.ValidateKings(board); err != nil {
		return nil, invalid(FieldBoard, err.Error())
	}
	if err := engine.ValidateEnPassant(board); err != nil {
		return nil, invalid(FieldEnPassant, err.Error())
	}
	return board, nil
}

// Decode reads a JSON document from r.
func Decode(r io.Reader) (*chess.Board, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}
	return Unmarshal(data)
}

// SaveFile writes the board to path, replacing any existing file.
func SaveFile(path string, board *chess.Board) error {
	data, err := Marshal(board)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // G306: save files are user documents
		return fmt.Errorf("saving game: %w", err)
	}
	return nil
}

// LoadFile reads a board from the document at path.
func LoadFile(path string) (*chess.Board, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is user-specified
	if err != nil {
		return nil, fmt.Errorf("loading game: %w", err)
	}
	board, err := Unmarshal(bytes.TrimSpace(data))
	if err != nil {
		if snapErr, ok := err.(*errors.SnapshotError); ok {
			snapErr.File = path
		}
		return nil, err
	}
	return board, nil
}

// decodeGrid fills the board squares from the 8x8 grid.
func decodeGrid(board *chess.Board, raw json.RawMessage) error {
	var grid [][]*string
	if err := json.Unmarshal(raw, &grid); err != nil {
		return invalid(FieldBoard, "want an 8x8 array of piece codes")
	}
	if len(grid) != chess.BoardSize {
		return invalid(FieldBoard, fmt.Sprintf("%d rows, want %d", len(grid), chess.BoardSize))
	}
	for row, cells := range grid {
		if len(cells) != chess.BoardSize {
			return invalid(FieldBoard, fmt.Sprintf("row %d has %d cells, want %d", row, len(cells), chess.BoardSize))
		}
		rank := int8(chess.BoardSize - 1 - row)
		for file, code := range cells {
			if code == nil {
				return invalid(FieldBoard, fmt.Sprintf("row %d col %d is null", row, file))
			}
			piece, err := chess.ParseCode(*code)
			if err != nil {
				return invalid(FieldBoard, fmt.Sprintf("row %d col %d: %v", row, file, err))
			}
			board.Set(chess.NewSquare(rank, int8(file)), piece)
		}
	}
	return nil
}

// decodeCastling parses the rights string. Both "" and "-" mean none.
func decodeCastling(board *chess.Board, raw json.RawMessage) error {
	var s string
	if err := unmarshalField(raw, &s); err != nil {
		return invalid(FieldCastling, "want a string")
	}
	if s == "" {
		board.Castling = chess.NoCastling
		return nil
	}
	rights, err := chess.ParseCastlingRights(s)
	if err != nil {
		return invalid(FieldCastling, err.Error())
	}
	board.Castling = rights
	return nil
}

// decodeEnPassant parses null or a [row, col] pair on the board.
func decodeEnPassant(board *chess.Board, raw json.RawMessage) error {
	if isNull(raw) {
		board.EnPassant = false
		return nil
	}
	var pair []int
	if err := json.Unmarshal(raw, &pair); err != nil || len(pair) != 2 {
		return invalid(FieldEnPassant, "want null or [row, col]")
	}
	row, col := pair[0], pair[1]
	if row < 0 || row >= chess.BoardSize || col < 0 || col >= chess.BoardSize {
		return invalid(FieldEnPassant, fmt.Sprintf("[%d, %d] is off the board", row, col))
	}
	board.EnPassant = true
	board.EPSquare = chess.NewSquare(int8(chess.BoardSize-1-row), int8(col))
	return nil
}

// decodeCount parses an integer no smaller than least.
func decodeCount(raw json.RawMessage, field string, least int64) (uint, error) {
	var n int64
	if err := unmarshalField(raw, &n); err != nil {
		return 0, invalid(field, "want an integer")
	}
	if n < least {
		return 0, invalid(field, fmt.Sprintf("%d is below %d", n, least))
	}
	return uint(n), nil
}

// isNull reports whether the raw value is JSON null.
func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// unmarshalField decodes a required non-null value.
func unmarshalField(raw json.RawMessage, v interface{}) error {
	if isNull(raw) {
		return fmt.Errorf("null value")
	}
	return json.Unmarshal(raw, v)
}

// invalid builds a SnapshotError for field.
func invalid(field, detail string) error {
	return &errors.SnapshotError{Err: errors.ErrInvalidSnapshot, Field: field, Detail: detail}
}
