package output

import (
	"encoding/json"
	"io"
	"sort"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// GameSnapshot is the JSON view of a game at one moment.
type GameSnapshot struct {
	FEN                  string              `json:"fen"`
	SideToMove           string              `json:"sideToMove"` // "white" or "black"
	MoveNumber           int                 `json:"moveNumber"`
	HalfMoveClock        int                 `json:"halfMoveClock"`
	PlyCount             int                 `json:"plyCount"`
	Moves                []JSONMove          `json:"moves"`
	LastMove             *JSONMove           `json:"lastMove,omitempty"`
	InCheck              bool                `json:"inCheck"`
	EndState             string              `json:"endState"`
	InsufficientMaterial bool                `json:"insufficientMaterial,omitempty"`
	Legal                map[string][]string `json:"legal,omitempty"`
}

// JSONMove represents one played move.
type JSONMove struct {
	Ply         int    `json:"ply"`
	Color       string `json:"color"`
	SAN         string `json:"san"`
	UCI         string `json:"uci"`
	From        string `json:"from"`
	To          string `json:"to"`
	Piece       string `json:"piece"`
	Promotion   string `json:"promotion,omitempty"`
	EnPassant   bool   `json:"enPassant,omitempty"`
	Description string `json:"description"`
}

// Snapshot captures the current state of g. The legal destinations are
// keyed by origin square and only present while the game is running.
func Snapshot(g *engine.GameState) *GameSnapshot {
	snap := &GameSnapshot{
		FEN:           g.FEN(),
		SideToMove:    colorName(g.SideToMove()),
		MoveNumber:    g.FullMoveNumber(),
		HalfMoveClock: g.HalfMoveClock(),
		PlyCount:      g.MoveCount(),
		Moves:         convertMoves(g),
		InCheck:       g.InCheck(),
	}

	end := g.EndState()
	snap.EndState = end.String()
	snap.InsufficientMaterial = g.InsufficientMaterial()

	if n := len(snap.Moves); n > 0 {
		last := snap.Moves[n-1]
		snap.LastMove = &last
	}

	if end == engine.Running {
		snap.Legal = LegalMap(g)
	}
	return snap
}

// LegalMap returns the legal destinations of every piece of the side to
// move that has at least one, in square name order.
func LegalMap(g *engine.GameState) map[string][]string {
	b := g.Board()
	result := make(map[string][]string)
	for _, loc := range b.PiecesOf(b.ToMove) {
		dests := g.LegalDestinations(loc.Square)
		if len(dests) == 0 {
			continue
		}
		result[loc.Square.String()] = SquareNames(dests)
	}
	return result
}

// SquareNames converts squares to sorted algebraic names.
func SquareNames(squares []chess.Square) []string {
	names := make([]string, len(squares))
	for i, sq := range squares {
		names[i] = sq.String()
	}
	sort.Strings(names)
	return names
}

// convertMoves describes every move of g, replaying from the start.
func convertMoves(g *engine.GameState) []JSONMove {
	moves := g.Moves()
	result := make([]JSONMove, 0, len(moves))

	board := g.StartingBoard()
	for i, m := range moves {
		side := board.ToMove
		san, _ := g.Notation(i)
		result = append(result, convertSingleMove(m, side, san, i+1))
		engine.ApplyMove(board, m)
	}
	return result
}

func convertSingleMove(m chess.Move, side chess.Side, san string, ply int) JSONMove {
	from, to := m.From, m.To
	piece := m.Piece
	if m.IsCastle() {
		c, _ := chess.CastleSquares(side, m.Kind)
		from, to = c.KingFrom, c.KingTo
		piece = chess.King
	}

	jm := JSONMove{
		Ply:         ply,
		Color:       colorName(side),
		SAN:         san,
		UCI:         FormatUCI(m, side),
		From:        from.String(),
		To:          to.String(),
		Piece:       pieceTypeName(piece),
		EnPassant:   m.EnPassant,
		Description: m.String(),
	}
	if m.Kind == chess.Promotion {
		jm.Promotion = pieceTypeName(m.PromoteTo)
	}
	return jm
}

// FormatUCI formats a move in UCI notation (e.g. e2e4, e7e8q, e1g1).
func FormatUCI(m chess.Move, side chess.Side) string {
	from, to := m.From, m.To
	if m.IsCastle() {
		c, _ := chess.CastleSquares(side, m.Kind)
		from, to = c.KingFrom, c.KingTo
	}
	uci := from.String() + to.String()
	if m.Kind == chess.Promotion {
		uci += string(m.PromoteTo.Letter() + 'a' - 'A')
	}
	return uci
}

func colorName(side chess.Side) string {
	if side == chess.White {
		return "white"
	}
	return "black"
}

func pieceTypeName(kind chess.PieceKind) string {
	switch kind {
	case chess.Pawn:
		return "pawn"
	case chess.Knight:
		return "knight"
	case chess.Bishop:
		return "bishop"
	case chess.Rook:
		return "rook"
	case chess.Queen:
		return "queen"
	case chess.King:
		return "king"
	}
	return ""
}

// WriteSnapshot encodes snap as indented JSON.
func WriteSnapshot(w io.Writer, snap *GameSnapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(snap)
}
