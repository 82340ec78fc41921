package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/gochess/internal/chess"
	"github.com/lgbarn/gochess/internal/engine"
)

// RecordWriter is the interface for writing game records.
type RecordWriter interface {
	// WriteRecord writes a single record.
	WriteRecord(r *Record) error

	// Flush writes any buffered data to the underlying writer.
	Flush() error
}

// TextWriter writes records as PGN-style tag pairs and numbered move text
// in long algebraic notation.
type TextWriter struct {
	w             io.Writer
	maxLineLength int
	written       bool
}

// NewTextWriter creates a text writer wrapping lines at DefaultLineLength.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w, maxLineLength: DefaultLineLength}
}

// WithLineLength sets the line limit for move text.
func (tw *TextWriter) WithLineLength(n int) *TextWriter {
	tw.maxLineLength = n
	return tw
}

// WriteRecord writes the tags, a blank line, then the move text and result.
// Successive records are separated by a blank line.
func (tw *TextWriter) WriteRecord(r *Record) error {
	var sb strings.Builder
	if tw.written {
		sb.WriteByte('\n')
	}
	tw.written = true
	if fen := r.StartFEN(); fen != "" {
		fmt.Fprintf(&sb, "[SetUp \"1\"]\n[FEN \"%s\"]\n", fen)
	}
	fmt.Fprintf(&sb, "[Result \"%s\"]\n", r.Result())
	if r.Status.IsOver() {
		fmt.Fprintf(&sb, "[Termination \"%s\"]\n", r.Status.Reason)
	}
	sb.WriteByte('\n')
	if _, err := io.WriteString(tw.w, sb.String()); err != nil {
		return err
	}

	lw := newLineWriter(tw.w, tw.maxLineLength)
	for i, p := range r.plies() {
		switch {
		case p.colour == chess.White:
			lw.Write(fmt.Sprintf("%d.", p.number))
		case i == 0:
			lw.Write(fmt.Sprintf("%d...", p.number))
		}
		lw.Write(p.move.String())
	}
	lw.Write(r.Result())
	lw.NewLine()
	return lw.err
}

// Flush is a no-op; TextWriter writes immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// JSONRecord is the JSON form of a record.
type JSONRecord struct {
	InitialFEN string     `json:"initialFEN,omitempty"`
	Moves      []JSONMove `json:"moves"`
	PlyCount   int        `json:"plyCount"`
	Result     string     `json:"result"`
	Reason     string     `json:"reason,omitempty"`
	FinalFEN   string     `json:"finalFEN"`
}

// JSONMove is one move of a JSONRecord.
type JSONMove struct {
	MoveNumber int    `json:"moveNumber"`
	Color      string `json:"color"` // "white" or "black"
	UCI        string `json:"uci"`
	From       string `json:"from"`
	To         string `json:"to"`
	Piece      string `json:"piece"`
	Captured   string `json:"captured,omitempty"`
	Promotion  string `json:"promotion,omitempty"`
	FEN        string `json:"fen"`
}

// ToJSON converts a record.
func ToJSON(r *Record) *JSONRecord {
	jr := &JSONRecord{
		InitialFEN: r.StartFEN(),
		Moves:      make([]JSONMove, 0, len(r.Moves)),
		PlyCount:   len(r.Moves),
		Result:     r.Result(),
		FinalFEN:   engine.BoardToFEN(r.Final),
	}
	if r.Status.IsOver() {
		jr.Reason = r.Status.Reason.String()
	}
	for _, p := range r.plies() {
		jr.Moves = append(jr.Moves, convertMove(p))
	}
	return jr
}

// convertMove describes one ply, including the position after it.
func convertMove(p ply) JSONMove {
	jm := JSONMove{
		MoveNumber: int(p.number),
		Color:      strings.ToLower(p.colour.String()),
		UCI:        p.move.String(),
		From:       p.move.From.String(),
		To:         p.move.To.String(),
		Piece:      pieceTypeName(p.board.Get(p.move.From).Kind()),
		FEN:        engine.BoardToFEN(engine.ApplyMove(p.board, p.move)),
	}
	if engine.IsCapture(p.board, p.move) {
		captured := p.board.Get(p.move.To).Kind()
		if captured == chess.Empty {
			captured = chess.Pawn // en passant
		}
		jm.Captured = pieceTypeName(captured)
	}
	if p.move.IsPromotion() {
		jm.Promotion = pieceTypeName(p.move.Promotion)
	}
	return jm
}

// pieceTypeName returns the lower-case name of a piece kind.
func pieceTypeName(p chess.Piece) string {
	return strings.ToLower(p.String())
}

// JSONWriter writes records as JSON.
// It buffers records and writes them as an array on Flush, or writes each
// one immediately in single mode.
type JSONWriter struct {
	w       io.Writer
	records []*JSONRecord
	single  bool
}

// NewJSONWriter creates a batching JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// NewJSONWriterSingle creates a JSON writer that writes each record immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w, single: true}
}

// WriteRecord buffers a record (or writes it in single mode).
func (jw *JSONWriter) WriteRecord(r *Record) error {
	if jw.single {
		return jw.encode(ToJSON(r))
	}
	jw.records = append(jw.records, ToJSON(r))
	return nil
}

// Flush writes all buffered records as {"games": [...]}.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.records) == 0 {
		return nil
	}
	err := jw.encode(struct {
		Games []*JSONRecord `json:"games"`
	}{jw.records})
	jw.records = jw.records[:0]
	return err
}

func (jw *JSONWriter) encode(v interface{}) error {
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
