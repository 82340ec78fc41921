package session

import (
	"bytes"
	stderrors "errors"
	"path/filepath"
	"testing"

	"github.com/lgbarn/gochess/internal/chess"
	"github.com/lgbarn/gochess/internal/engine"
	"github.com/lgbarn/gochess/internal/errors"
	"github.com/lgbarn/gochess/internal/search"
	"github.com/lgbarn/gochess/internal/testutil"
)

func newFromFEN(t *testing.T, fen string, opts ...Option) *Session {
	t.Helper()
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) error = %v", fen, err)
	}
	return New(append([]Option{WithBoard(board)}, opts...)...)
}

func newAISession(t *testing.T, fen string) *Session {
	t.Helper()
	ai := search.NewAIPlayer(search.Easy, search.WithSeed(7))
	if fen == "" {
		return New(WithMode(VersusAI), WithAIPlayer(ai))
	}
	return newFromFEN(t, fen, WithMode(VersusAI), WithAIPlayer(ai))
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		input   string
		want    Mode
		wantErr bool
	}{
		{"ai", VersusAI, false},
		{" AI ", VersusAI, false},
		{"2p", TwoPlayer, false},
		{"hotseat", TwoPlayer, true},
		{"", TwoPlayer, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMode(tt.input)
			if tt.wantErr {
				testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
				return
			}
			testutil.AssertNoError(t, err)
			if got != tt.want {
				t.Errorf("ParseMode(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if got.String() != tt.want.String() {
				t.Errorf("String() = %q, want %q", got.String(), tt.want.String())
			}
		})
	}
}

func TestNew_Defaults(t *testing.T) {
	s := New()
	if s.FEN() != engine.InitialFEN {
		t.Errorf("FEN() = %q, want %q", s.FEN(), engine.InitialFEN)
	}
	if s.Mode() != TwoPlayer {
		t.Errorf("Mode() = %v, want %v", s.Mode(), TwoPlayer)
	}
	if s.AI() == nil || s.AI().Difficulty() != search.Easy {
		t.Errorf("AI() difficulty = %v, want %v", s.AI().Difficulty(), search.Easy)
	}
	if s.Ply() != 0 {
		t.Errorf("Ply() = %d, want 0", s.Ply())
	}
	if len(s.LegalMoves()) != 20 {
		t.Errorf("len(LegalMoves()) = %d, want 20", len(s.LegalMoves()))
	}
}

func TestBoard_ReturnsCopy(t *testing.T) {
	s := New()
	b := s.Board()
	b.Set(chess.MustParseSquare("e2"), chess.NoPiece)
	if s.FEN() != engine.InitialFEN {
		t.Errorf("session board changed through Board() copy: %s", s.FEN())
	}
}

func TestPlay(t *testing.T) {
	s := New()
	status, err := s.PlayText("e2e4")
	testutil.AssertNoError(t, err)
	if status.IsOver() {
		t.Errorf("status after e2e4 = %v, want in progress", status.Outcome)
	}
	want := "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"
	if s.FEN() != want {
		t.Errorf("FEN() = %q, want %q", s.FEN(), want)
	}
	testutil.AssertEqual(t, testutil.MoveStrings(s.Moves()), []string{"e2e4"})
}

func TestPlay_Errors(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		mode Mode
		move string
		want error
	}{
		{"illegal", engine.InitialFEN, TwoPlayer, "e2e5", errors.ErrIllegalMove},
		{"wrong colour", engine.InitialFEN, TwoPlayer, "e7e5", errors.ErrIllegalMove},
		{"unparsable", engine.InitialFEN, TwoPlayer, "castle", errors.ErrInvalidMoveText},
		{"game over", "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", TwoPlayer, "e2e4", errors.ErrGameOver},
		{"ai to move", "4k3/8/8/8/8/8/4P3/4K3 b - - 0 1", VersusAI, "e8d8", errors.ErrNotYourTurn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newFromFEN(t, tt.fen, WithMode(tt.mode))
			before := s.FEN()
			_, err := s.PlayText(tt.move)
			testutil.AssertErrorIs(t, err, tt.want)

			var moveErr *errors.MoveError
			if !stderrors.As(err, &moveErr) {
				t.Fatalf("error %v is not a *MoveError", err)
			}
			if moveErr.PlyNum != 1 {
				t.Errorf("PlyNum = %d, want 1", moveErr.PlyNum)
			}
			if moveErr.FEN != before {
				t.Errorf("MoveError.FEN = %q, want %q", moveErr.FEN, before)
			}
			if s.FEN() != before {
				t.Errorf("position changed after rejected move: %q", s.FEN())
			}
		})
	}
}

func TestPlay_AutoQueen(t *testing.T) {
	s := newFromFEN(t, "8/4P3/8/8/8/8/k7/4K3 w - - 0 1")
	_, err := s.PlayText("e7e8")
	testutil.AssertNoError(t, err)
	if got := s.Board().Get(chess.MustParseSquare("e8")); got != chess.W(chess.Queen) {
		t.Errorf("e8 = %v, want white queen", got)
	}
}

func TestPlay_UnderPromotion(t *testing.T) {
	s := newFromFEN(t, "8/4P3/8/8/8/8/k7/4K3 w - - 0 1")
	_, err := s.PlayText("e7e8n")
	testutil.AssertNoError(t, err)
	if got := s.Board().Get(chess.MustParseSquare("e8")); got != chess.W(chess.Knight) {
		t.Errorf("e8 = %v, want white knight", got)
	}
}

func TestPlay_PromotionOnNonPromotingMove(t *testing.T) {
	s := New()
	_, err := s.PlayText("e2e4q")
	testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)
}

func TestPlay_Checkmate(t *testing.T) {
	s := New()
	var status engine.Status
	for _, text := range []string{"f2f3", "e7e5", "g2g4", "d8h4"} {
		var err error
		status, err = s.PlayText(text)
		testutil.AssertNoError(t, err, "playing %s", text)
	}
	if status.Outcome != engine.BlackWins || status.Reason != engine.Checkmate {
		t.Errorf("status = %v/%v, want %v/%v", status.Outcome, status.Reason, engine.BlackWins, engine.Checkmate)
	}
	if s.Status() != status {
		t.Errorf("Status() = %+v, want %+v", s.Status(), status)
	}
}

func TestSelect(t *testing.T) {
	s := New()

	moves, ok := s.Select(chess.MustParseSquare("g1"))
	testutil.AssertTrue(t, ok, "Select(g1)")
	testutil.AssertMoveSet(t, moves, []string{"g1f3", "g1h3"})
	if sq, ok := s.Selected(); !ok || sq != chess.MustParseSquare("g1") {
		t.Errorf("Selected() = %v, %v, want g1, true", sq, ok)
	}

	for _, name := range []string{"e4", "e7"} {
		moves, ok = s.Select(chess.MustParseSquare(name))
		if ok || moves != nil {
			t.Errorf("Select(%s) = %v, %v, want nil, false", name, moves, ok)
		}
		if _, ok := s.Selected(); ok {
			t.Errorf("Selected() after Select(%s) still set", name)
		}
	}

	s.Select(chess.MustParseSquare("e2"))
	s.ClearSelection()
	if _, ok := s.Selected(); ok {
		t.Error("Selected() after ClearSelection still set")
	}
}

func TestSelect_ClearedByMove(t *testing.T) {
	s := New()
	s.Select(chess.MustParseSquare("e2"))
	_, err := s.PlayText("e2e4")
	testutil.AssertNoError(t, err)
	if _, ok := s.Selected(); ok {
		t.Error("Selected() after move still set")
	}
}

func TestUndo_TwoPlayer(t *testing.T) {
	s := New()
	testutil.AssertFalse(t, s.Undo(), "Undo on fresh session")

	for _, text := range []string{"e2e4", "e7e5"} {
		_, err := s.PlayText(text)
		testutil.AssertNoError(t, err)
	}
	afterWhite := "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"

	testutil.AssertTrue(t, s.Undo())
	if s.FEN() != afterWhite {
		t.Errorf("FEN() after one undo = %q, want %q", s.FEN(), afterWhite)
	}
	testutil.AssertTrue(t, s.Undo())
	if s.FEN() != engine.InitialFEN {
		t.Errorf("FEN() after two undos = %q, want initial", s.FEN())
	}
	if s.Ply() != 0 {
		t.Errorf("Ply() = %d, want 0", s.Ply())
	}
}

func TestAITurn(t *testing.T) {
	s := newAISession(t, "")

	move, played, err := s.AITurn()
	testutil.AssertNoError(t, err)
	if played {
		t.Errorf("AITurn() on white's turn played %s", move)
	}

	_, err = s.PlayText("e2e4")
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, s.IsAITurn(), "IsAITurn after white move")

	before := s.Board()
	move, played, err = s.AITurn()
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, played, "AITurn on black's turn")
	if !testutil.ContainsMove(engine.LegalMoves(before), move.String()) {
		t.Errorf("AITurn() played %s, not legal in %s", move, engine.BoardToFEN(before))
	}
	if s.Ply() != 2 {
		t.Errorf("Ply() = %d, want 2", s.Ply())
	}
	testutil.AssertFalse(t, s.IsAITurn(), "IsAITurn after AI move")
}

func TestAIMove_NotAITurn(t *testing.T) {
	tests := []struct {
		name string
		mode Mode
	}{
		{"two player", TwoPlayer},
		{"white to move", VersusAI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(WithMode(tt.mode))
			_, _, err := s.AIMove()
			testutil.AssertErrorIs(t, err, errors.ErrNotYourTurn)
		})
	}
}

func TestAIMove_GameOver(t *testing.T) {
	// Black is checkmated on the back rank.
	s := newAISession(t, "R5k1/5ppp/8/8/8/8/8/6K1 b - - 0 1")
	_, _, err := s.AIMove()
	testutil.AssertErrorIs(t, err, errors.ErrGameOver)

	_, played, err := s.AITurn()
	testutil.AssertNoError(t, err)
	testutil.AssertFalse(t, played, "AITurn after mate")
}

func TestSelect_DuringAITurn(t *testing.T) {
	s := newAISession(t, "4k3/8/8/8/8/8/4P3/4K3 b - - 0 1")
	if _, ok := s.Select(chess.MustParseSquare("e8")); ok {
		t.Error("Select(e8) on the AI's turn = true, want false")
	}
}

func TestUndo_VersusAI(t *testing.T) {
	s := newAISession(t, "")
	_, err := s.PlayText("e2e4")
	testutil.AssertNoError(t, err)
	_, played, err := s.AITurn()
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, played)

	testutil.AssertTrue(t, s.Undo())
	if s.FEN() != engine.InitialFEN {
		t.Errorf("FEN() after undo = %q, want initial", s.FEN())
	}
	testutil.AssertFalse(t, s.IsAITurn(), "IsAITurn after undo")
}

func TestUndo_VersusAI_PendingReply(t *testing.T) {
	s := newAISession(t, "")
	_, err := s.PlayText("d2d4")
	testutil.AssertNoError(t, err)

	testutil.AssertTrue(t, s.Undo())
	if s.FEN() != engine.InitialFEN {
		t.Errorf("FEN() after undo = %q, want initial", s.FEN())
	}
}

func TestSaveLoad(t *testing.T) {
	s := New()
	for _, text := range []string{"e2e4", "c7c5", "g1f3"} {
		_, err := s.PlayText(text)
		testutil.AssertNoError(t, err)
	}
	want := s.FEN()

	var buf bytes.Buffer
	testutil.AssertNoError(t, s.Save(&buf))

	loaded := New()
	testutil.AssertNoError(t, loaded.Load(&buf))
	if loaded.FEN() != want {
		t.Errorf("FEN() after Load = %q, want %q", loaded.FEN(), want)
	}
	if loaded.Ply() != 0 {
		t.Errorf("Ply() after Load = %d, want 0", loaded.Ply())
	}
}

func TestLoad_InvalidKeepsPosition(t *testing.T) {
	s := New()
	_, err := s.PlayText("e2e4")
	testutil.AssertNoError(t, err)
	want := s.FEN()

	err = s.Load(bytes.NewBufferString(`{"board": []}`))
	testutil.AssertErrorIs(t, err, errors.ErrInvalidSnapshot)
	if s.FEN() != want {
		t.Errorf("FEN() after failed Load = %q, want %q", s.FEN(), want)
	}
	if s.Ply() != 1 {
		t.Errorf("Ply() after failed Load = %d, want 1", s.Ply())
	}
}

func TestSaveFile_LoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.json")
	s := newFromFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 4 12")
	testutil.AssertNoError(t, s.SaveFile(path))

	loaded := New()
	testutil.AssertNoError(t, loaded.LoadFile(path))
	if loaded.FEN() != s.FEN() {
		t.Errorf("FEN() after LoadFile = %q, want %q", loaded.FEN(), s.FEN())
	}

	err := loaded.LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Error("LoadFile(missing) error = nil, want error")
	}
}

func TestRecord(t *testing.T) {
	s := New()
	for _, text := range []string{"f2f3", "e7e5", "g2g4", "d8h4"} {
		_, err := s.PlayText(text)
		testutil.AssertNoError(t, err)
	}
	rec := s.Record()
	if engine.BoardToFEN(rec.Start) != engine.InitialFEN {
		t.Errorf("Record().Start = %q, want initial", engine.BoardToFEN(rec.Start))
	}
	if rec.Result() != "0-1" {
		t.Errorf("Record().Result() = %q, want 0-1", rec.Result())
	}
	testutil.AssertEqual(t, len(rec.Moves), 4)

	s.Undo()
	if got := s.Record().Result(); got != "*" {
		t.Errorf("Result() after undo = %q, want *", got)
	}
}
