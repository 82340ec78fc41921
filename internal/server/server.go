// Package server exposes game sessions over a JSON HTTP API built on fiber.
package server

import (
	stderrors "errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/lgbarn/gochess/internal/config"
	"github.com/lgbarn/gochess/internal/errors"
)

// ErrTooManyGames indicates the store is at its configured capacity.
var ErrTooManyGames = stderrors.New("too many open games")

// Server is the HTTP front end over a Store.
type Server struct {
	app   *fiber.App
	store *Store
	cfg   *config.Config
}

// New creates a server with its middleware and routes mounted.
func New(cfg *config.Config) *Server {
	app := fiber.New(fiber.Config{
		AppName:               "gochess",
		ReadTimeout:           cfg.Server.ReadTimeout,
		ErrorHandler:          errorHandler,
		DisableStartupMessage: cfg.Verbosity < 2,
	})

	app.Use(recover.New())
	if cfg.Verbosity > 0 {
		app.Use(logger.New(logger.Config{Output: cfg.LogFile}))
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))

	s := &Server{
		app:   app,
		store: NewStore(cfg.Server.MaxGames),
		cfg:   cfg,
	}
	s.routes()
	return s
}

// routes registers the game endpoints.
func (s *Server) routes() {
	games := s.app.Group("/api/games")
	games.Post("/", s.createGame)
	games.Get("/records", s.listRecords)
	games.Get("/:id", s.getGame)
	games.Delete("/:id", s.deleteGame)
	games.Get("/:id/moves", s.listMoves)
	games.Post("/:id/moves", s.playMove)
	games.Post("/:id/ai", s.aiMove)
	games.Post("/:id/undo", s.undo)
	games.Get("/:id/snapshot", s.getSnapshot)
	games.Put("/:id/snapshot", s.putSnapshot)
	games.Get("/:id/record", s.getRecord)
}

// App returns the underlying fiber app, mainly for app.Test.
func (s *Server) App() *fiber.App {
	return s.app
}

// Store returns the session store.
func (s *Server) Store() *Store {
	return s.store
}

// Listen serves on the configured address until Shutdown.
func (s *Server) Listen() error {
	s.cfg.Logf(1, "gochess server listening on %s", s.cfg.Server.Addr)
	return s.app.Listen(s.cfg.Server.Addr)
}

// Shutdown stops the server, waiting for running requests.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// statusFor maps an error to its HTTP status code.
func statusFor(err error) int {
	var fiberErr *fiber.Error
	switch {
	case stderrors.As(err, &fiberErr):
		return fiberErr.Code
	case stderrors.Is(err, errors.ErrGameNotFound):
		return fiber.StatusNotFound
	case stderrors.Is(err, errors.ErrGameOver), stderrors.Is(err, errors.ErrNotYourTurn):
		return fiber.StatusConflict
	case stderrors.Is(err, errors.ErrIllegalMove):
		return fiber.StatusUnprocessableEntity
	case stderrors.Is(err, errors.ErrInvalidMoveText),
		stderrors.Is(err, errors.ErrInvalidFEN),
		stderrors.Is(err, errors.ErrInvalidSnapshot),
		stderrors.Is(err, errors.ErrInvalidConfig):
		return fiber.StatusBadRequest
	case stderrors.Is(err, ErrTooManyGames):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

// errorHandler writes every handler error as {"error": "..."}.
func errorHandler(c *fiber.Ctx, err error) error {
	return c.Status(statusFor(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}
