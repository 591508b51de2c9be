// Package relay pairs players into two-player matches over websockets and
// relays their moves, checking each one against the rules first.
package relay

import (
	"encoding/json"
	stderrors "errors"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Relay accepts players on one websocket endpoint. The first waiting player
// is paired with the next to arrive; the earlier one plays White.
type Relay struct {
	cfg      *config.Config
	router   *mux.Router
	upgrader websocket.Upgrader
	logger   *log.Logger

	mu      sync.Mutex
	waiting *player
	matches map[string]*Match
}

// New builds a relay from cfg.
func New(cfg *config.Config) *Relay {
	r := &Relay{
		cfg:     cfg,
		router:  mux.NewRouter(),
		logger:  log.New(cfg.LogFile, "chess-relay: ", log.LstdFlags),
		matches: make(map[string]*Match),
	}
	r.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(req *http.Request) bool {
			origin := req.Header.Get("Origin")
			return origin == "" || cfg.Relay.OriginAllowed(origin)
		},
	}

	r.router.HandleFunc(cfg.Relay.Path, r.playHandler)
	r.router.HandleFunc("/status", r.statusHandler).Methods(http.MethodGet)
	r.router.NotFoundHandler = http.HandlerFunc(notFoundHandler)
	return r
}

// Handler returns the relay's routes wrapped with recovery, CORS and, when
// verbose, access logging.
func (r *Relay) Handler() http.Handler {
	var h http.Handler = r.router
	h = handlers.CORS(handlers.AllowedOrigins(r.cfg.Relay.AllowedOrigins))(h)
	if r.cfg.Verbosity > 0 {
		h = handlers.LoggingHandler(r.cfg.LogFile, h)
	}
	return handlers.RecoveryHandler(handlers.RecoveryLogger(r.logger))(h)
}

// ListenAndServe serves the relay on the configured address.
func (r *Relay) ListenAndServe() error {
	r.logger.Printf("listening on %s%s", r.cfg.Relay.ListenAddr, r.cfg.Relay.Path)
	return http.ListenAndServe(r.cfg.Relay.ListenAddr, r.Handler())
}

// Status reports whether a player is waiting and how many matches are live.
type Status struct {
	Waiting bool `json:"waiting"`
	Matches int  `json:"matches"`
}

// Status returns the current relay status.
func (r *Relay) Status() Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Status{Waiting: r.waiting != nil, Matches: len(r.matches)}
}

func (r *Relay) statusHandler(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(r.Status())
}

func notFoundHandler(w http.ResponseWriter, req *http.Request) {
	http.Error(w, "Not Found", http.StatusNotFound)
}

func (r *Relay) playHandler(w http.ResponseWriter, req *http.Request) {
	conn, err := r.upgrader.Upgrade(w, req, nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		r.logger.Printf("upgrade from %s: %v", req.RemoteAddr, err)
		return
	}
	if r.cfg.Verbosity > 1 {
		r.logger.Printf("new connection from %s", conn.RemoteAddr())
	}

	p := &player{conn: conn}
	if err := r.join(p); err != nil {
		r.logger.Printf("start match: %v", err)
		_ = p.send(errorMessage(err))
		conn.Close()
		return
	}
	r.readLoop(p)
}

// join queues p or pairs it with the waiting player.
func (r *Relay) join(p *player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.waiting == nil {
		r.waiting = p
		return nil
	}

	game, err := r.cfg.Game.NewGame()
	if err != nil {
		return err
	}
	m := newMatch(r.waiting, p, game)
	r.waiting = nil
	r.matches[m.ID] = m
	if r.cfg.Verbosity > 1 {
		r.logger.Printf("match %s started", m.ID)
	}
	m.start()
	return nil
}

// readLoop handles p's messages until the connection fails.
func (r *Relay) readLoop(p *player) {
	defer r.disconnect(p)

	for {
		var msg Message
		if err := p.conn.ReadJSON(&msg); err != nil {
			var syntaxErr *json.SyntaxError
			var typeErr *json.UnmarshalTypeError
			if stderrors.As(err, &syntaxErr) || stderrors.As(err, &typeErr) {
				_ = p.send(errorMessage(wireError("JSON message", err.Error())))
				continue
			}
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				r.logger.Printf("read: %v", err)
			}
			return
		}

		if msg.Type != TypeMove {
			_ = p.send(errorMessage(wireError("move message", msg.Type)))
			continue
		}

		m := r.matchOf(p)
		if m == nil {
			_ = p.send(errorMessage(&errors.GameError{Err: errors.ErrGameNotFound, MoveText: "waiting for an opponent"}))
			continue
		}
		m.play(p, msg.Move)
	}
}

func (r *Relay) matchOf(p *player) *Match {
	r.mu.Lock()
	defer r.mu.Unlock()
	return p.match
}

// disconnect drops p from the queue or from its match.
func (r *Relay) disconnect(p *player) {
	p.conn.Close()

	r.mu.Lock()
	m := p.match
	if r.waiting == p {
		r.waiting = nil
	}
	if m != nil {
		delete(r.matches, m.ID)
	}
	r.mu.Unlock()

	if m != nil {
		m.leave(p)
	}
}
