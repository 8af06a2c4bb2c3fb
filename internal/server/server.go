// Package server exposes games over HTTP and websockets.
package server

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/hailam/hexplay/internal/board"
	"github.com/hailam/hexplay/internal/bootstrap"
	"github.com/hailam/hexplay/internal/hex"
	"github.com/hailam/hexplay/internal/httpresponse"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handler owns the live game registry and the HTTP surface.
type Handler struct {
	cfg bootstrap.Config
	log *zap.SugaredLogger

	mu    sync.RWMutex
	games map[string]*Game
}

func NewHandler(cfg bootstrap.Config, log *zap.SugaredLogger) *Handler {
	return &Handler{
		cfg:   cfg,
		log:   log,
		games: make(map[string]*Game),
	}
}

// Router mounts all routes on r.
func (h *Handler) Router(r *chi.Mux) {
	if h.cfg.IsLocalCors {
		r.Use(corsMiddleware)
	}
	r.Use(middleware.Logger)

	r.Post("/games", h.HandleNewGame)
	r.Get("/games", h.HandleListGames)
	r.Get("/games/{gameID}", h.HandleGetGame)
	r.Delete("/games/{gameID}", h.HandleDeleteGame)
	r.Post("/games/{gameID}/moves", h.HandleMove)
	r.Get("/games/{gameID}/moves", h.HandleLegalMoves)
	r.Get("/games/{gameID}/watch", h.HandleWatchGame)
}

// GameCreateResponse carries the key of a freshly created game.
type GameCreateResponse struct {
	UniqueKey string `json:"unique_key"`
}

func (h *Handler) HandleNewGame(w http.ResponseWriter, r *http.Request) {
	id := uuid.NewString()
	g := newGame(id)

	h.mu.Lock()
	h.games[id] = g
	h.mu.Unlock()

	h.log.Infof("New game created with key: %s", id)
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, GameCreateResponse{UniqueKey: id})
}

func (h *Handler) HandleListGames(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	ids := make([]string, 0, len(h.games))
	for id := range h.games {
		ids = append(ids, id)
	}
	h.mu.RUnlock()

	httpresponse.WriteResponseWithStatus(w, http.StatusOK, ids)
}

func (h *Handler) HandleGetGame(w http.ResponseWriter, r *http.Request) {
	g, ok := h.lookup(r)
	if !ok {
		httpresponse.WriteError(w, http.StatusNotFound, "game not found")
		return
	}
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, g.State())
}

func (h *Handler) HandleDeleteGame(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "gameID")

	h.mu.Lock()
	g, ok := h.games[id]
	delete(h.games, id)
	h.mu.Unlock()

	if !ok {
		httpresponse.WriteError(w, http.StatusNotFound, "game not found")
		return
	}
	g.closeWatchers()

	h.log.Infof("Game deleted: %s", id)
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, "deleted")
}

func (h *Handler) HandleMove(w http.ResponseWriter, r *http.Request) {
	g, ok := h.lookup(r)
	if !ok {
		httpresponse.WriteError(w, http.StatusNotFound, "game not found")
		return
	}

	var req MoveRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		h.log.Error("JSON decode error:", err)
		httpresponse.WriteError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	defer r.Body.Close()

	from, err := hex.New(req.From[0], req.From[1], req.From[2])
	if err != nil {
		httpresponse.WriteError(w, http.StatusBadRequest, "bad source cell: "+err.Error())
		return
	}
	to, err := hex.New(req.To[0], req.To[1], req.To[2])
	if err != nil {
		httpresponse.WriteError(w, http.StatusBadRequest, "bad target cell: "+err.Error())
		return
	}

	st, err := g.ApplyMove(from, to)
	if err != nil {
		httpresponse.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.log.Infof("Game %s: %s", g.ID, st.Moves[len(st.Moves)-1])
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, st)
}

// LegalMovesResponse lists destinations reachable from one cell.
type LegalMovesResponse struct {
	From  string   `json:"from"`
	Moves []string `json:"moves"`
}

func (h *Handler) HandleLegalMoves(w http.ResponseWriter, r *http.Request) {
	g, ok := h.lookup(r)
	if !ok {
		httpresponse.WriteError(w, http.StatusNotFound, "game not found")
		return
	}

	var pos [3]int
	if err := json.Unmarshal([]byte(r.URL.Query().Get("cell")), &pos); err != nil {
		httpresponse.WriteError(w, http.StatusBadRequest, "cell must be a [q,r,s] array")
		return
	}
	from, err := hex.New(pos[0], pos[1], pos[2])
	if err != nil {
		httpresponse.WriteError(w, http.StatusBadRequest, "bad cell: "+err.Error())
		return
	}

	resp := LegalMovesResponse{
		From:  board.CellLabel(from),
		Moves: g.LegalMoves(from),
	}
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, resp)
}

// HandleWatchGame upgrades to a websocket and pushes a state snapshot
// after every move until the client disconnects.
func (h *Handler) HandleWatchGame(w http.ResponseWriter, r *http.Request) {
	g, ok := h.lookup(r)
	if !ok {
		httpresponse.WriteError(w, http.StatusNotFound, "game not found")
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Error("upgrade error:", err)
		return
	}

	st := g.addWatcher(conn)
	if err := conn.WriteJSON(st); err != nil {
		g.removeWatcher(conn)
		conn.Close()
		return
	}

	// Drain reads to notice the disconnect.
	go func() {
		defer func() {
			g.removeWatcher(conn)
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (h *Handler) lookup(r *http.Request) (*Game, bool) {
	id := chi.URLParam(r, "gameID")
	h.mu.RLock()
	g, ok := h.games[id]
	h.mu.RUnlock()
	return g, ok
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
