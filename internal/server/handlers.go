package server

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/parser"
	"github.com/lgbarn/chess-rules-go/internal/render"
)

// createRequest is the optional body of POST /api/game.
type createRequest struct {
	FEN    string `json:"fen,omitempty"`
	Preset string `json:"preset,omitempty"`
}

// createResponse flattens the snapshot next to the new id.
type createResponse struct {
	GameID string `json:"gameId"`
	*output.GameSnapshot
}

func (s *Server) createGame(c *fiber.Ctx) error {
	var req createRequest
	if err := decodeBody(c, &req); err != nil {
		return err
	}

	gc := *s.cfg.Game
	if req.FEN != "" || req.Preset != "" {
		gc.StartFEN, gc.Preset = req.FEN, req.Preset
	}
	if gc.Preset != "" && gc.StartFEN == "" {
		if _, ok := config.Presets[gc.Preset]; !ok {
			return &errors.ParseError{Err: errors.ErrInvalidConfig, Input: gc.Preset, Expected: "preset name"}
		}
	}

	state, err := gc.NewGame()
	if err != nil {
		return err
	}
	g, err := s.store.Create(state)
	if err != nil {
		return err
	}
	if s.cfg.Verbosity > 1 {
		s.logger.Printf("game %s created from %s", g.ID, state.FEN())
	}

	return c.Status(fiber.StatusCreated).JSON(createResponse{GameID: g.ID, GameSnapshot: g.Snapshot()})
}

func (s *Server) getGame(c *fiber.Ctx) error {
	g, err := s.store.Get(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(g.Snapshot())
}

func (s *Server) deleteGame(c *fiber.Ctx) error {
	if !s.store.Delete(c.Params("id")) {
		return &errors.GameError{Err: errors.ErrGameNotFound, GameID: c.Params("id")}
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) playMove(c *fiber.Ctx) error {
	g, err := s.store.Get(c.Params("id"))
	if err != nil {
		return err
	}

	var req MoveRequest
	if err := decodeBody(c, &req); err != nil {
		return err
	}

	snap, err := g.Play(req)
	if err != nil {
		return err
	}
	return c.JSON(snap)
}

func (s *Server) legalDestinations(c *fiber.Ctx) error {
	g, err := s.store.Get(c.Params("id"))
	if err != nil {
		return err
	}

	name := c.Params("square")
	sq, ok := chess.ParseSquare(name)
	if !ok {
		return &errors.ParseError{Err: errors.ErrParseFailure, Expected: "square", Got: name}
	}

	return c.JSON(fiber.Map{
		"square":       sq.String(),
		"destinations": g.LegalDestinations(sq),
	})
}

// boardSVG draws the current position. ?highlight=e2 marks the legal
// destinations of the piece on e2; ?flip=true draws Black at the bottom.
func (s *Server) boardSVG(c *fiber.Ctx) error {
	g, err := s.store.Get(c.Params("id"))
	if err != nil {
		return err
	}

	opts := render.SVGOptionsFrom(s.cfg.Display)
	if c.QueryBool("flip", false) {
		opts.FromBlack = !opts.FromBlack
	}

	highlight := chess.NoSquare
	if name := c.Query("highlight"); name != "" {
		sq, ok := chess.ParseSquare(name)
		if !ok {
			return &errors.ParseError{Err: errors.ErrParseFailure, Expected: "square", Got: name}
		}
		highlight = sq
	}

	var buf bytes.Buffer
	g.view(func(state *engine.GameState) {
		if highlight != chess.NoSquare {
			opts.Highlights = state.LegalDestinations(highlight)
		}
		opts.LastMove = lastMoveSquares(state)
		render.SVG(&buf, state.Board(), opts)
	})

	c.Set(fiber.HeaderContentType, "image/svg+xml")
	return c.Send(buf.Bytes())
}

// lastMoveSquares returns the origin and destination of the last move,
// using the king's squares for a castle.
func lastMoveSquares(state *engine.GameState) []chess.Square {
	m, ok := state.LastMove()
	if !ok {
		return nil
	}
	if m.IsCastle() {
		castle, _ := chess.CastleSquares(state.SideToMove().Opposite(), m.Kind)
		return []chess.Square{castle.KingFrom, castle.KingTo}
	}
	return []chess.Square{m.From, m.To}
}

// decodeBody decodes a JSON body into v; an empty body leaves v unchanged.
func decodeBody(c *fiber.Ctx, v interface{}) error {
	body := c.Body()
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid JSON body: "+err.Error())
	}
	return nil
}

// errorHandler maps errors to a status and an ErrorBody.
func (s *Server) errorHandler(c *fiber.Ctx, err error) error {
	status, body := errorResponse(err)
	if status >= fiber.StatusInternalServerError {
		s.logger.Printf("%s %s: %v", c.Method(), c.Path(), err)
	}
	return c.Status(status).JSON(body)
}

func errorResponse(err error) (int, ErrorBody) {
	body := ErrorBody{Error: err.Error(), Code: errorCode(err)}

	var fe *fiber.Error
	switch {
	case stderrors.As(err, &fe):
		return fe.Code, ErrorBody{Error: fe.Message, Code: strings.ReplaceAll(http.StatusText(fe.Code), " ", "")}
	case stderrors.Is(err, errors.ErrGameNotFound):
		return fiber.StatusNotFound, body
	case stderrors.Is(err, errors.ErrTooManyGames):
		return fiber.StatusServiceUnavailable, body
	case stderrors.Is(err, errors.ErrInvalidFEN), stderrors.Is(err, errors.ErrInvalidConfig):
		return fiber.StatusBadRequest, body
	case stderrors.Is(err, errors.ErrIllegalMove), stderrors.Is(err, errors.ErrParseFailure):
		return fiber.StatusUnprocessableEntity, body
	}
	return fiber.StatusInternalServerError, body
}

// errorCode names the error for clients: the MoveError or MoveParseError
// name when there is one, otherwise a name for the sentinel.
func errorCode(err error) string {
	var me engine.MoveError
	if stderrors.As(err, &me) {
		return me.Name()
	}
	var pe parser.MoveParseError
	if stderrors.As(err, &pe) {
		return pe.Name()
	}

	codes := []struct {
		sentinel error
		code     string
	}{
		{errors.ErrGameNotFound, "GameNotFound"},
		{errors.ErrTooManyGames, "TooManyGames"},
		{errors.ErrInvalidFEN, "InvalidFEN"},
		{errors.ErrInvalidConfig, "InvalidConfig"},
		{errors.ErrParseFailure, "CantParse"},
	}
	for _, c := range codes {
		if stderrors.Is(err, c.sentinel) {
			return c.code
		}
	}
	return "Internal"
}
