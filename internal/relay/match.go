package relay

import (
	stderrors "errors"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/parser"
)

// player is one connected client. Writes go through writeMu because a
// gorilla connection allows a single concurrent writer.
type player struct {
	conn    *websocket.Conn
	writeMu sync.Mutex

	// Set once paired; guarded by the relay's mutex.
	match *Match
	side  chess.Side
}

func (p *player) send(msg Message) error {
	p.writeMu.Lock()
	defer p.writeMu.Unlock()
	return p.conn.WriteJSON(msg)
}

// Match is a game between two players. The relay keeps its own GameState
// so that every move is validated before the opponent sees it.
type Match struct {
	ID string

	mu      sync.Mutex
	game    *engine.GameState
	players [2]*player // White, then Black
	over    bool
}

func newMatch(white, black *player, game *engine.GameState) *Match {
	m := &Match{
		ID:      uuid.New().String(),
		game:    game,
		players: [2]*player{white, black},
	}
	white.match, white.side = m, chess.White
	black.match, black.side = m, chess.Black
	return m
}

// start tells both players their side.
func (m *Match) start() {
	for _, p := range m.players {
		_ = p.send(Message{Type: TypeGameStart, MatchID: m.ID, Side: sideName(p.side)})
	}
}

func (m *Match) opponent(p *player) *player {
	if m.players[0] == p {
		return m.players[1]
	}
	return m.players[0]
}

// play validates and performs a move from p. Accepted moves go to the
// opponent; rejections go back to p only. A finished game is announced to
// both players.
func (m *Match) play(p *player, wm *WireMove) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.perform(p, wm); err != nil {
		_ = p.send(errorMessage(err))
		return
	}

	last, _ := m.game.LastMove()
	text, _ := m.game.Notation(m.game.MoveCount() - 1)
	_ = m.opponent(p).send(Message{Type: TypeMove, MatchID: m.ID, Move: EncodeMove(last, text)})

	if end := m.game.EndState(); end != engine.Running {
		m.over = true
		for _, q := range m.players {
			_ = q.send(Message{Type: TypeGameOver, MatchID: m.ID, EndState: end.String()})
		}
	}
}

func (m *Match) perform(p *player, wm *WireMove) error {
	switch {
	case m.over:
		return &errors.GameError{Err: errors.ErrIllegalMove, GameID: m.ID, MoveText: "game is over"}
	case wm == nil:
		return wireError("move", "nothing")
	case p.side != m.game.SideToMove():
		return errors.ErrNotYourTurn
	}

	var (
		mv  chess.Move
		err error
	)
	if wm.Kind == "" && wm.Text != "" {
		mv, err = parser.ParseMove(wm.Text, m.game)
	} else {
		mv, err = wm.Decode()
	}
	if err != nil {
		return err
	}
	return m.game.PerformMove(mv)
}

// leave ends the match for p and tells the opponent.
func (m *Match) leave(p *player) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.over {
		return
	}
	m.over = true
	_ = m.opponent(p).send(Message{Type: TypeOpponentLeft, MatchID: m.ID})
}

func errorMessage(err error) Message {
	return Message{Type: TypeError, Error: err.Error(), Code: errorCode(err)}
}

func errorCode(err error) string {
	var me engine.MoveError
	if stderrors.As(err, &me) {
		return me.Name()
	}
	var pe parser.MoveParseError
	if stderrors.As(err, &pe) {
		return pe.Name()
	}
	switch {
	case stderrors.Is(err, errors.ErrNotYourTurn):
		return "NotYourTurn"
	case stderrors.Is(err, errors.ErrGameNotFound):
		return "NoMatch"
	case stderrors.Is(err, errors.ErrIllegalMove):
		return "GameOver"
	case stderrors.Is(err, errors.ErrParseFailure):
		return "CantParse"
	}
	return "Internal"
}

func sideName(s chess.Side) string {
	if s == chess.White {
		return "white"
	}
	return "black"
}
