package server

import (
	"bytes"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/lgbarn/gochess/internal/chess"
	"github.com/lgbarn/gochess/internal/engine"
	"github.com/lgbarn/gochess/internal/errors"
	"github.com/lgbarn/gochess/internal/output"
	"github.com/lgbarn/gochess/internal/search"
	"github.com/lgbarn/gochess/internal/session"
	"github.com/lgbarn/gochess/internal/snapshot"
)

func (s *Server) createGame(c *fiber.Ctx) error {
	var req CreateRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body: "+err.Error())
		}
	}

	sess, err := s.newSession(req)
	if err != nil {
		return err
	}
	id, err := s.store.Create(sess)
	if err != nil {
		return err
	}
	s.cfg.Logf(2, "created game %s (%s, %s)", id, sess.Mode(), sess.AI().Difficulty())

	return s.store.With(id, func(sess *session.Session) error {
		return c.Status(fiber.StatusCreated).JSON(newGameView(id, sess))
	})
}

// newSession builds a session from a create request, falling back to the
// configured defaults for omitted fields.
func (s *Server) newSession(req CreateRequest) (*session.Session, error) {
	mode := s.cfg.Game.Mode
	if req.Mode != "" {
		m, err := session.ParseMode(req.Mode)
		if err != nil {
			return nil, err
		}
		mode = m
	}

	difficulty := s.cfg.Engine.Difficulty
	if req.Difficulty != "" {
		d, err := search.ParseDifficulty(req.Difficulty)
		if err != nil {
			return nil, err
		}
		difficulty = d
	}
	opts := s.cfg.Engine.PlayerOptions()
	if req.Seed != 0 {
		opts = append(opts, search.WithSeed(req.Seed))
	}
	player := search.NewAIPlayer(difficulty, opts...)

	hasSnapshot := len(req.Snapshot) > 0 && string(req.Snapshot) != "null"
	if hasSnapshot && req.FEN != "" {
		return nil, fmt.Errorf("fen and snapshot are exclusive: %w", errors.ErrInvalidConfig)
	}

	sessOpts := []session.Option{session.WithMode(mode), session.WithAIPlayer(player)}
	switch {
	case hasSnapshot:
		board, err := snapshot.Unmarshal(req.Snapshot)
		if err != nil {
			return nil, err
		}
		sessOpts = append(sessOpts, session.WithBoard(board))
	case req.FEN != "":
		board, err := engine.NewBoardFromFEN(req.FEN)
		if err != nil {
			return nil, err
		}
		sessOpts = append(sessOpts, session.WithBoard(board))
	}
	return session.New(sessOpts...), nil
}

func (s *Server) getGame(c *fiber.Ctx) error {
	id := c.Params("id")
	return s.store.With(id, func(sess *session.Session) error {
		return c.JSON(newGameView(id, sess))
	})
}

func (s *Server) deleteGame(c *fiber.Ctx) error {
	if err := s.store.Delete(c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) listMoves(c *fiber.Ctx) error {
	from := c.Query("from")
	return s.store.With(c.Params("id"), func(sess *session.Session) error {
		if from == "" {
			return c.JSON(MovesView{Moves: moveStrings(sess.LegalMoves())})
		}
		sq, err := chess.ParseSquare(from)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		moves := engine.LegalMovesFrom(sess.Board(), sq)
		return c.JSON(MovesView{From: sq.String(), Moves: moveStrings(moves)})
	})
}

func (s *Server) playMove(c *fiber.Ctx) error {
	var req MoveRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body: "+err.Error())
	}
	id := c.Params("id")
	return s.store.With(id, func(sess *session.Session) error {
		status, err := sess.PlayText(req.Move)
		if err != nil {
			return err
		}
		if status.IsOver() {
			s.cfg.Logf(2, "game %s over: %s by %s", id, status.Outcome, status.Reason)
		}
		return c.JSON(newGameView(id, sess))
	})
}

func (s *Server) aiMove(c *fiber.Ctx) error {
	id := c.Params("id")
	return s.store.With(id, func(sess *session.Session) error {
		move, _, err := sess.AIMove()
		if err != nil {
			return err
		}
		s.cfg.Logf(2, "game %s: computer played %s (%s)", id, move, sess.AI().LastLine())
		view := newGameView(id, sess)
		view.AIMove = move.String()
		return c.JSON(view)
	})
}

func (s *Server) undo(c *fiber.Ctx) error {
	id := c.Params("id")
	return s.store.With(id, func(sess *session.Session) error {
		if !sess.Undo() {
			return fiber.NewError(fiber.StatusConflict, "nothing to undo")
		}
		return c.JSON(newGameView(id, sess))
	})
}

func (s *Server) getSnapshot(c *fiber.Ctx) error {
	return s.store.With(c.Params("id"), func(sess *session.Session) error {
		data, err := snapshot.Marshal(sess.Board())
		if err != nil {
			return err
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Send(data)
	})
}

func (s *Server) putSnapshot(c *fiber.Ctx) error {
	id := c.Params("id")
	return s.store.With(id, func(sess *session.Session) error {
		if err := sess.Load(bytes.NewReader(c.Body())); err != nil {
			return err
		}
		return c.JSON(newGameView(id, sess))
	})
}

// getRecord writes the game so far as JSON, or as PGN-style text with
// ?format=text.
func (s *Server) getRecord(c *fiber.Ctx) error {
	w, err := recordWriter(c, false)
	if err != nil {
		return err
	}
	return s.store.With(c.Params("id"), func(sess *session.Session) error {
		if err := w.WriteRecord(sess.Record()); err != nil {
			return err
		}
		return w.Flush()
	})
}

// listRecords exports every stored game. JSON output is one
// {"games": [...]} document; text output separates records by a blank line.
func (s *Server) listRecords(c *fiber.Ctx) error {
	w, err := recordWriter(c, true)
	if err != nil {
		return err
	}
	if s.store.Len() == 0 && c.Query("format", "json") == "json" {
		return c.JSON(fiber.Map{"games": []interface{}{}})
	}
	err = s.store.Each(func(_ string, sess *session.Session) error {
		return w.WriteRecord(sess.Record())
	})
	if err != nil {
		return err
	}
	return w.Flush()
}

// recordWriter picks the writer for the ?format query and sets the content
// type. batch selects the JSON writer that collects records until Flush.
func recordWriter(c *fiber.Ctx, batch bool) (output.RecordWriter, error) {
	switch format := c.Query("format", "json"); format {
	case "json":
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		if batch {
			return output.NewJSONWriter(c), nil
		}
		return output.NewJSONWriterSingle(c), nil
	case "text":
		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return output.NewTextWriter(c), nil
	default:
		return nil, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("unknown record format %q", format))
	}
}
