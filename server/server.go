// Package server exposes Othello game sessions over HTTP and websockets:
// JSON endpoints to create, play and export games, and a per-session
// websocket stream with live state updates.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"

	"othello-engine/engine"
	"othello-engine/othello"
)

// Server owns the live sessions.
type Server struct {
	mu       sync.Mutex
	sessions map[string]*Session
	log      *zap.SugaredLogger
	upgrader websocket.Upgrader
}

// New returns a server with no sessions.
func New(log *zap.SugaredLogger) *Server {
	return &Server{
		sessions: make(map[string]*Session),
		log:      log,
		upgrader: websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }},
	}
}

// Router builds the HTTP surface.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Route("/games", func(r chi.Router) {
		r.Post("/", s.handleCreate)
		r.Post("/import", s.handleImport)
		r.Get("/", s.handleList)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.handleState)
			r.Post("/moves", s.handleMove)
			r.Post("/restart", s.handleRestart)
			r.Get("/export", s.handleExport)
			r.Get("/ws", s.handleWs)
		})
	})
	return r
}

type createRequest struct {
	Size      int    `json:"size"`
	AIColor   string `json:"ai_color,omitempty"`
	Depth     int    `json:"depth,omitempty"`
	Algorithm string `json:"algorithm,omitempty"`
	Heuristic string `json:"heuristic,omitempty"`
}

type importRequest struct {
	Save string `json:"save"`
}

type moveRequest struct {
	Move string `json:"move"`
}

type moveResponse struct {
	Applied []MoveDTO `json:"applied"`
	State   StateDTO  `json:"state"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Errorw("encoding response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (s *Server) addSession(sess *Session) {
	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
}

func (s *Server) session(id string) (*Session, bool) {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	s.mu.Unlock()
	return sess, ok
}

// buildAI turns creation parameters into an AI player, or nil when no AI
// color was requested.
func buildAI(req createRequest) (*engine.AIPlayer, error) {
	if req.AIColor == "" {
		return nil, nil
	}
	color, ok := othello.Black, true
	if req.AIColor != "X" {
		color, ok = othello.White, req.AIColor == "O"
	}
	if !ok {
		return nil, errors.New("ai_color must be X or O")
	}
	depth := req.Depth
	if depth <= 0 {
		depth = 3
	}
	algorithm := req.Algorithm
	if algorithm == "" {
		algorithm = "minimax"
	}
	heuristic := req.Heuristic
	if heuristic == "" {
		heuristic = "default"
	}
	return engine.NewAIPlayer(color, depth, algorithm, heuristic)
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	size, err := othello.NewBoardSize(req.Size)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	ai, err := buildAI(req)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	sess := newSession(othello.NewBoard(size), ai)
	s.addSession(sess)
	s.log.Infow("session created", "id", sess.ID, "size", req.Size, "ai", req.AIColor)

	sess.mu.Lock()
	defer sess.mu.Unlock()
	s.writeJSON(w, http.StatusCreated, sess.state())
}

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	var req importRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	board, err := othello.Parse(req.Save)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	sess := newSession(board, nil)
	s.addSession(sess)
	s.log.Infow("session imported", "id", sess.ID, "size", board.Size())

	sess.mu.Lock()
	defer sess.mu.Unlock()
	s.writeJSON(w, http.StatusCreated, sess.state())
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	all := make([]*Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		all = append(all, sess)
	}
	s.mu.Unlock()
	slices.SortFunc(all, func(a, b *Session) int {
		return a.Created.Compare(b.Created)
	})

	states := make([]StateDTO, len(all))
	for i, sess := range all {
		sess.mu.Lock()
		states[i] = sess.state()
		sess.mu.Unlock()
	}
	s.writeJSON(w, http.StatusOK, states)
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(chi.URLParam(r, "id"))
	if !ok {
		s.writeError(w, http.StatusNotFound, errors.New("unknown session"))
		return
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	s.writeJSON(w, http.StatusOK, sess.state())
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(chi.URLParam(r, "id"))
	if !ok {
		s.writeError(w, http.StatusNotFound, errors.New("unknown session"))
		return
	}
	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	move, err := othello.ParseMove(req.Move)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	applied, err := sess.play(move.X, move.Y)
	if err != nil {
		var illegal *othello.IllegalMoveError
		if errors.As(err, &illegal) {
			s.writeError(w, http.StatusUnprocessableEntity, err)
			return
		}
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.writeJSON(w, http.StatusOK, moveResponse{Applied: applied, State: sess.state()})
}

func (s *Server) handleRestart(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(chi.URLParam(r, "id"))
	if !ok {
		s.writeError(w, http.StatusNotFound, errors.New("unknown session"))
		return
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.ctrl.Restart()
	sess.hub.Broadcast("state", sess.state())
	s.writeJSON(w, http.StatusOK, sess.state())
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(chi.URLParam(r, "id"))
	if !ok {
		s.writeError(w, http.StatusNotFound, errors.New("unknown session"))
		return
	}
	sess.mu.Lock()
	save := sess.ctrl.Export()
	sess.mu.Unlock()
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte(save)); err != nil {
		s.log.Errorw("writing export", "error", err)
	}
}

func (s *Server) handleWs(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(chi.URLParam(r, "id"))
	if !ok {
		s.writeError(w, http.StatusNotFound, errors.New("unknown session"))
		return
	}
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Errorw("websocket upgrade", "error", err)
		return
	}
	client := &Client{hub: sess.hub, conn: conn, send: make(chan []byte, 16)}
	sess.hub.Register(client)
	go client.writeLoop()
	go client.readLoop()

	sess.mu.Lock()
	state := sess.state()
	sess.mu.Unlock()
	sess.hub.Broadcast("state", state)
}
