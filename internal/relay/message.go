package relay

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Message types sent over the relay websocket.
const (
	TypeGameStart    = "gameStart"
	TypeMove         = "move"
	TypeError        = "error"
	TypeGameOver     = "gameOver"
	TypeOpponentLeft = "opponentLeft"
)

// Message is the single envelope for both directions. Which fields are set
// depends on Type.
type Message struct {
	Type     string    `json:"type"`
	MatchID  string    `json:"matchId,omitempty"`
	Side     string    `json:"side,omitempty"` // gameStart: "white" or "black"
	Move     *WireMove `json:"move,omitempty"`
	EndState string    `json:"endState,omitempty"`
	Error    string    `json:"error,omitempty"`
	Code     string    `json:"code,omitempty"`
}

// Move kinds on the wire.
const (
	KindPiece     = "piece"
	KindPromotion = "promotion"
	KindKingside  = "kingside"
	KindQueenside = "queenside"
)

// WireMove is a move as JSON. A client may send Text instead of the
// structured fields; the relay always forwards the structured form with
// the display notation in Text.
type WireMove struct {
	Text      string `json:"text,omitempty"`
	Kind      string `json:"kind,omitempty"`
	Piece     string `json:"piece,omitempty"` // Piece letter, e.g. "N"
	From      string `json:"from,omitempty"`
	To        string `json:"to,omitempty"`
	PromoteTo string `json:"promoteTo,omitempty"`
	EnPassant bool   `json:"enPassant,omitempty"`
}

// EncodeMove converts m to its wire form.
func EncodeMove(m chess.Move, text string) *WireMove {
	wm := &WireMove{Text: text}
	switch m.Kind {
	case chess.PieceMove:
		wm.Kind = KindPiece
		wm.Piece = string(m.Piece.Letter())
		wm.From, wm.To = m.From.String(), m.To.String()
		wm.EnPassant = m.EnPassant
	case chess.Promotion:
		wm.Kind = KindPromotion
		wm.Piece = string(chess.Pawn.Letter())
		wm.From, wm.To = m.From.String(), m.To.String()
		wm.PromoteTo = string(m.PromoteTo.Letter())
	case chess.CastleKingside:
		wm.Kind = KindKingside
	case chess.CastleQueenside:
		wm.Kind = KindQueenside
	}
	return wm
}

// Decode converts the structured fields back to a move. Text is ignored.
func (wm *WireMove) Decode() (chess.Move, error) {
	switch wm.Kind {
	case KindKingside:
		return chess.KingsideCastle(), nil
	case KindQueenside:
		return chess.QueensideCastle(), nil
	case KindPiece, KindPromotion:
	default:
		return chess.Move{}, wireError("kind", wm.Kind)
	}

	from, ok := chess.ParseSquare(wm.From)
	if !ok {
		return chess.Move{}, wireError("from square", wm.From)
	}
	to, ok := chess.ParseSquare(wm.To)
	if !ok {
		return chess.Move{}, wireError("to square", wm.To)
	}

	if wm.Kind == KindPromotion {
		kind, ok := pieceLetter(wm.PromoteTo)
		if !ok {
			return chess.Move{}, wireError("promotion piece", wm.PromoteTo)
		}
		return chess.NewPromotion(from, to, kind), nil
	}

	kind, ok := pieceLetter(wm.Piece)
	if !ok {
		return chess.Move{}, wireError("piece", wm.Piece)
	}
	return chess.NewPieceMove(kind, from, to), nil
}

func pieceLetter(s string) (chess.PieceKind, bool) {
	if len(s) != 1 {
		return chess.NoPiece, false
	}
	return chess.PieceKindFromLetter(s[0])
}

func wireError(expected, got string) error {
	return &errors.ParseError{Err: errors.ErrParseFailure, Expected: expected, Got: got}
}
