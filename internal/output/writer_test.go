package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lgbarn/gochess/internal/chess"
	"github.com/lgbarn/gochess/internal/engine"
	"github.com/lgbarn/gochess/internal/testutil"
)

func parseMoves(t *testing.T, texts ...string) []chess.Move {
	t.Helper()
	moves := make([]chess.Move, len(texts))
	for i, text := range texts {
		m, err := chess.ParseMove(text)
		if err != nil {
			t.Fatalf("ParseMove(%q) error = %v", text, err)
		}
		moves[i] = m
	}
	return moves
}

func foolsMate(t *testing.T) *Record {
	t.Helper()
	return NewRecord(chess.NewInitialBoard(), parseMoves(t, "f2f3", "e7e5", "g2g4", "d8h4"))
}

// TestTextWriter_WriteRecord verifies the text writer outputs tags and moves
func TestTextWriter_WriteRecord(t *testing.T) {
	var buf bytes.Buffer
	testutil.AssertNoError(t, NewTextWriter(&buf).WriteRecord(foolsMate(t)))

	want := `[Result "0-1"]
[Termination "checkmate"]

1. f2f3 e7e5 2. g2g4 d8h4 0-1
`
	if buf.String() != want {
		t.Errorf("WriteRecord() =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestTextWriter_FromFEN(t *testing.T) {
	fen := "4k3/8/8/8/8/8/4P3/4K3 b - - 0 7"
	rec := NewRecord(engine.MustBoardFromFEN(fen), parseMoves(t, "e8d7", "e2e4"))

	var buf bytes.Buffer
	testutil.AssertNoError(t, NewTextWriter(&buf).WriteRecord(rec))

	out := buf.String()
	testutil.AssertContains(t, out, `[SetUp "1"]`)
	testutil.AssertContains(t, out, `[FEN "`+fen+`"]`)
	testutil.AssertContains(t, out, "7... e8d7 8. e2e4 *\n")
	if strings.Contains(out, "Termination") {
		t.Error("unfinished game should have no Termination tag")
	}
}

func TestTextWriter_LineWrap(t *testing.T) {
	texts := []string{"g1f3", "g8f6", "f3g1", "f6g8"}
	var moves []string
	for i := 0; i < 5; i++ {
		moves = append(moves, texts...)
	}
	rec := NewRecord(chess.NewInitialBoard(), parseMoves(t, moves...))

	var buf bytes.Buffer
	testutil.AssertNoError(t, NewTextWriter(&buf).WithLineLength(30).WriteRecord(rec))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	for _, line := range lines[2:] {
		if len(line) > 30 {
			t.Errorf("line %q longer than 30", line)
		}
	}
	joined := strings.Join(lines[2:], " ")
	testutil.AssertContains(t, joined, "1. g1f3 g8f6")
	testutil.AssertContains(t, joined, "10. f3g1 f6g8 *")
}

func TestLineWriter(t *testing.T) {
	tests := []struct {
		name   string
		max    int
		tokens []string
		want   string
	}{
		{"fits", 20, []string{"1.", "e2e4", "e7e5"}, "1. e2e4 e7e5\n"},
		{"wraps", 9, []string{"1.", "e2e4", "e7e5"}, "1. e2e4\ne7e5\n"},
		{"default length", 0, []string{"a", "b"}, "a b\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			lw := newLineWriter(&buf, tt.max)
			for _, tok := range tt.tokens {
				lw.Write(tok)
			}
			lw.NewLine()
			if buf.String() != tt.want {
				t.Errorf("lineWriter output = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestToJSON(t *testing.T) {
	board := engine.MustBoardFromFEN("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	rec := NewRecord(board, parseMoves(t, "e5d6"))
	jr := ToJSON(rec)

	if jr.InitialFEN != engine.BoardToFEN(board) {
		t.Errorf("InitialFEN = %q, want %q", jr.InitialFEN, engine.BoardToFEN(board))
	}
	if jr.PlyCount != 1 || len(jr.Moves) != 1 {
		t.Fatalf("PlyCount/len(Moves) = %d/%d, want 1/1", jr.PlyCount, len(jr.Moves))
	}
	want := JSONMove{
		MoveNumber: 1,
		Color:      "white",
		UCI:        "e5d6",
		From:       "e5",
		To:         "d6",
		Piece:      "pawn",
		Captured:   "pawn",
		FEN:        "4k3/8/3P4/8/8/8/8/4K3 b - - 0 1",
	}
	testutil.AssertEqual(t, jr.Moves[0], want)
	if jr.Result != "*" || jr.Reason != "" {
		t.Errorf("Result/Reason = %q/%q, want */empty", jr.Result, jr.Reason)
	}
}

func TestToJSON_Promotion(t *testing.T) {
	rec := NewRecord(engine.MustBoardFromFEN("3r4/4P3/8/8/8/8/k7/4K3 w - - 0 1"), parseMoves(t, "e7d8n"))
	jm := ToJSON(rec).Moves[0]
	if jm.Promotion != "knight" || jm.Captured != "rook" {
		t.Errorf("Promotion/Captured = %q/%q, want knight/rook", jm.Promotion, jm.Captured)
	}
}

func TestTextWriter_SeparatesRecords(t *testing.T) {
	var buf bytes.Buffer
	w := NewTextWriter(&buf)
	testutil.AssertNoError(t, w.WriteRecord(foolsMate(t)))
	testutil.AssertNoError(t, w.WriteRecord(NewRecord(chess.NewInitialBoard(), nil)))

	got := buf.String()
	want := "[Result \"0-1\"]\n[Termination \"checkmate\"]\n\n1. f2f3 e7e5 2. g2g4 d8h4 0-1\n" +
		"\n[Result \"*\"]\n\n*\n"
	if got != want {
		t.Errorf("two records =\n%s\nwant\n%s", got, want)
	}
}

// TestJSONWriter_Batch verifies batched records are written as one array
func TestJSONWriter_Batch(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONWriter(&buf)
	testutil.AssertNoError(t, w.WriteRecord(foolsMate(t)))
	testutil.AssertNoError(t, w.WriteRecord(NewRecord(chess.NewInitialBoard(), nil)))
	if buf.Len() != 0 {
		t.Error("batch writer wrote before Flush")
	}
	testutil.AssertNoError(t, w.Flush())

	var out struct {
		Games []JSONRecord `json:"games"`
	}
	testutil.AssertNoError(t, json.Unmarshal(buf.Bytes(), &out))
	if len(out.Games) != 2 {
		t.Fatalf("len(Games) = %d, want 2", len(out.Games))
	}
	if out.Games[0].Result != "0-1" || out.Games[0].Reason != "checkmate" {
		t.Errorf("first game Result/Reason = %q/%q, want 0-1/checkmate", out.Games[0].Result, out.Games[0].Reason)
	}
	if out.Games[1].PlyCount != 0 || out.Games[1].FinalFEN != engine.InitialFEN {
		t.Errorf("second game = %+v, want empty record from the initial position", out.Games[1])
	}

	buf.Reset()
	testutil.AssertNoError(t, w.Flush())
	if buf.Len() != 0 {
		t.Error("second Flush wrote again")
	}
}

// TestJSONWriter_Single verifies single mode writes each record immediately
func TestJSONWriter_Single(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONWriterSingle(&buf)
	testutil.AssertNoError(t, w.WriteRecord(foolsMate(t)))

	var jr JSONRecord
	testutil.AssertNoError(t, json.Unmarshal(buf.Bytes(), &jr))
	if jr.PlyCount != 4 {
		t.Errorf("PlyCount = %d, want 4", jr.PlyCount)
	}
	testutil.AssertNoError(t, w.Flush())
}

func TestRecordWriter_Interface(t *testing.T) {
	var buf bytes.Buffer
	writers := []RecordWriter{NewTextWriter(&buf), NewJSONWriter(&buf), NewJSONWriterSingle(&buf)}
	for _, w := range writers {
		testutil.AssertNoError(t, w.WriteRecord(foolsMate(t)))
		testutil.AssertNoError(t, w.Flush())
	}
	if buf.Len() == 0 {
		t.Error("writers produced no output")
	}
}
