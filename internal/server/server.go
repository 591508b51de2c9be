// Package server provides the HTTP game service: games created and played
// over a JSON API, with a websocket stream per game.
package server

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

// Server is the game service.
type Server struct {
	app    *fiber.App
	store  *GameStore
	cfg    *config.Config
	logger *log.Logger
}

// New builds the service and its routes from cfg.
func New(cfg *config.Config) *Server {
	s := &Server{
		store:  NewGameStore(cfg.Server.MaxGames),
		cfg:    cfg,
		logger: log.New(cfg.LogFile, "chess-server: ", log.LstdFlags),
	}

	s.app = fiber.New(fiber.Config{
		AppName:               "chess-server",
		DisableStartupMessage: true,
		IdleTimeout:           cfg.Server.IdleTimeout,
		ErrorHandler:          s.errorHandler,
	})

	s.app.Use(recover.New())
	if cfg.Verbosity > 0 {
		s.app.Use(logger.New(logger.Config{Output: cfg.LogFile}))
	}
	s.app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.Server.AllowedOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, DELETE, OPTIONS",
	}))

	api := s.app.Group("/api")
	api.Post("/game", s.createGame)
	api.Get("/game/:id", s.getGame)
	api.Delete("/game/:id", s.deleteGame)
	api.Post("/game/:id/move", s.playMove)
	api.Get("/game/:id/legal/:square", s.legalDestinations)
	api.Get("/game/:id/board.svg", s.boardSVG)

	s.app.Get("/ws/game/:id", s.upgrade, websocket.New(s.handleSocket, websocket.Config{
		Origins:         cfg.Server.AllowedOrigins,
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}))

	return s
}

// App returns the fiber application, for tests and embedding.
func (s *Server) App() *fiber.App {
	return s.app
}

// Store returns the game store.
func (s *Server) Store() *GameStore {
	return s.store
}

// Listen serves on the configured address until Shutdown.
func (s *Server) Listen() error {
	s.logger.Printf("listening on %s", s.cfg.Server.ListenAddr)
	return s.app.Listen(s.cfg.Server.ListenAddr)
}

// Shutdown stops the service, closing open connections.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
