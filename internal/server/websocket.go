package server

import (
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// upgrade rejects non-websocket requests and unknown games before the
// handshake, and hands the game to the connection through Locals.
func (s *Server) upgrade(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}
	g, err := s.store.Get(c.Params("id"))
	if err != nil {
		return err
	}
	c.Locals("game", g)
	return c.Next()
}

// handleSocket streams snapshots to one client and plays the moves it sends.
func (s *Server) handleSocket(conn *websocket.Conn) {
	g := conn.Locals("game").(*Game)
	defer conn.Close()

	if err := g.watch(conn); err != nil {
		s.logger.Printf("game %s: watch: %v", g.ID, err)
		return
	}
	defer g.unwatch(conn)

	for {
		messageType, data, err := conn.ReadMessage()
		if err != nil {
			if s.cfg.Verbosity > 1 {
				s.logger.Printf("game %s: read: %v", g.ID, err)
			}
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}

		if err := s.handleMessage(g, data); err != nil {
			_, body := errorResponse(err)
			if err := g.send(conn, Message{Type: MessageTypeError, Payload: body}); err != nil {
				return
			}
		}
	}
}

// handleMessage plays a move message. Accepted moves reach every watcher,
// this client included, through the game's broadcast.
func (s *Server) handleMessage(g *Game, data []byte) error {
	var msg incomingMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid message: "+err.Error())
	}

	switch msg.Type {
	case MessageTypeMove:
		var req MoveRequest
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid move payload: "+err.Error())
		}
		_, err := g.Play(req)
		return err
	}
	return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("unknown message type %q", msg.Type))
}
