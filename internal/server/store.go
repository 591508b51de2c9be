package server

import (
	"sync"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/output"
)

// Game is one live game and the websocket clients watching it.
// Every access to the state and every write to a watcher happens under mu.
type Game struct {
	ID string

	mu       sync.Mutex
	state    *engine.GameState
	watchers map[*websocket.Conn]struct{}
}

// Snapshot returns the current JSON view of the game.
func (g *Game) Snapshot() *output.GameSnapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return output.Snapshot(g.state)
}

// Play resolves req against the current position and performs it. On
// success every watcher receives the new snapshot.
func (g *Game) Play(req MoveRequest) (*output.GameSnapshot, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	m, err := req.Resolve(g.state)
	if err != nil {
		return nil, err
	}
	if err := g.state.PerformMove(m); err != nil {
		return nil, err
	}

	snap := output.Snapshot(g.state)
	g.broadcast(Message{Type: MessageTypeSnapshot, Payload: snap})
	return snap, nil
}

// LegalDestinations returns the sorted destinations of the piece on sq.
func (g *Game) LegalDestinations(sq chess.Square) []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return output.SquareNames(g.state.LegalDestinations(sq))
}

// view calls fn with the game state held locked. fn must not keep state.
func (g *Game) view(fn func(state *engine.GameState)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	fn(g.state)
}

// watch registers conn and sends it the current snapshot.
func (g *Game) watch(conn *websocket.Conn) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := conn.WriteJSON(Message{Type: MessageTypeSnapshot, Payload: output.Snapshot(g.state)}); err != nil {
		return err
	}
	g.watchers[conn] = struct{}{}
	return nil
}

func (g *Game) unwatch(conn *websocket.Conn) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.watchers, conn)
}

// send writes one message to a single watcher.
func (g *Game) send(conn *websocket.Conn, msg Message) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return conn.WriteJSON(msg)
}

// broadcast must be called with mu held. Watchers that fail to receive are
// dropped; their read loop ends on its own.
func (g *Game) broadcast(msg Message) {
	for conn := range g.watchers {
		if err := conn.WriteJSON(msg); err != nil {
			delete(g.watchers, conn)
		}
	}
}

// GameStore holds the live games by id.
type GameStore struct {
	mu       sync.RWMutex
	games    map[string]*Game
	maxGames int
}

// NewGameStore creates a store holding at most maxGames games; 0 means no
// limit.
func NewGameStore(maxGames int) *GameStore {
	return &GameStore{
		games:    make(map[string]*Game),
		maxGames: maxGames,
	}
}

// Create adds state under a fresh id.
func (s *GameStore) Create(state *engine.GameState) (*Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.maxGames > 0 && len(s.games) >= s.maxGames {
		return nil, errors.ErrTooManyGames
	}

	g := &Game{
		ID:       uuid.New().String(),
		state:    state,
		watchers: make(map[*websocket.Conn]struct{}),
	}
	s.games[g.ID] = g
	return g, nil
}

// Get returns the game with the given id.
func (s *GameStore) Get(id string) (*Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[id]
	if !ok {
		return nil, &errors.GameError{Err: errors.ErrGameNotFound, GameID: id}
	}
	return g, nil
}

// Delete removes a game. It reports whether the game existed.
func (s *GameStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.games[id]
	delete(s.games, id)
	return ok
}

// Len returns the number of live games.
func (s *GameStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.games)
}
