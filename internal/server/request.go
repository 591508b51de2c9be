package server

import (
	"encoding/json"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/parser"
)

// MoveRequest is a move in one of three forms: notation text, a pair of
// squares with an optional promotion letter, or a castle wing.
type MoveRequest struct {
	Move      string `json:"move,omitempty"`
	From      string `json:"from,omitempty"`
	To        string `json:"to,omitempty"`
	Promotion string `json:"promotion,omitempty"`
	Castle    string `json:"castle,omitempty"`
}

// Resolve turns the request into a move for the position of g. It does not
// check full legality.
func (r MoveRequest) Resolve(g *engine.GameState) (chess.Move, error) {
	switch {
	case r.Move != "":
		return parser.ParseMove(r.Move, g)

	case r.Castle != "":
		switch strings.ToLower(r.Castle) {
		case "kingside", "short", "o-o":
			return chess.KingsideCastle(), nil
		case "queenside", "long", "o-o-o":
			return chess.QueensideCastle(), nil
		}
		return chess.Move{}, requestError(r.Castle, "kingside or queenside")

	case r.From != "" || r.To != "":
		from, ok := chess.ParseSquare(r.From)
		if !ok {
			return chess.Move{}, requestError(r.From, "from square")
		}
		to, ok := chess.ParseSquare(r.To)
		if !ok {
			return chess.Move{}, requestError(r.To, "to square")
		}
		promoteTo := chess.NoPiece
		if r.Promotion != "" {
			kind, ok := chess.PieceKindFromLetter(r.Promotion[0])
			if !ok || len(r.Promotion) != 1 {
				return chess.Move{}, requestError(r.Promotion, "promotion piece letter")
			}
			promoteTo = kind
		}
		return g.MoveFromSquares(from, to, promoteTo), nil
	}

	return chess.Move{}, requestError("", "move, from/to or castle")
}

func requestError(got, expected string) error {
	return &errors.ParseError{Err: errors.ErrParseFailure, Expected: expected, Got: got}
}

// Message types exchanged on the game websocket.
const (
	MessageTypeMove     = "move"
	MessageTypeSnapshot = "snapshot"
	MessageTypeError    = "error"
)

// Message is the websocket envelope. Incoming payloads are decoded by type.
type Message struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}

// incomingMessage is a Message whose payload is decoded after the type.
type incomingMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// ErrorBody is the JSON error response.
type ErrorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}
