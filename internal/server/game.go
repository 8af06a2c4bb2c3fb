package server

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/hailam/hexplay/internal/board"
	"github.com/hailam/hexplay/internal/hex"
)

// Game is one live game session. All access goes through the mutex,
// moves and websocket broadcasts included.
type Game struct {
	ID        string
	CreatedAt time.Time

	mu       sync.Mutex
	board    *board.Board
	watchers map[*websocket.Conn]struct{}
}

func newGame(id string) *Game {
	return &Game{
		ID:        id,
		CreatedAt: time.Now(),
		board:     board.New(),
		watchers:  make(map[*websocket.Conn]struct{}),
	}
}

// PieceState is one piece in a state snapshot.
type PieceState struct {
	Cell  string `json:"cell"`
	Pos   [3]int `json:"pos"`
	Type  string `json:"type"`
	Color string `json:"color"`
}

// GameState is the full game snapshot sent to clients.
type GameState struct {
	ID         string       `json:"id"`
	SideToMove string       `json:"side_to_move"`
	MoveNumber int          `json:"move_number"`
	Status     string       `json:"status"`
	Winner     string       `json:"winner,omitempty"`
	Pieces     []PieceState `json:"pieces"`
	Moves      []string     `json:"moves"`
}

// MoveRequest is the body of a move submission.
type MoveRequest struct {
	From [3]int `json:"from"`
	To   [3]int `json:"to"`
}

// State snapshots the game under the lock.
func (g *Game) State() GameState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.stateLocked()
}

func (g *Game) stateLocked() GameState {
	b := g.board
	st := GameState{
		ID:         g.ID,
		SideToMove: b.SideToMove().String(),
		MoveNumber: b.MoveNumber(),
		Status:     "ongoing",
	}

	side := b.SideToMove()
	switch {
	case b.IsCheckmate(side):
		st.Status = "checkmate"
		st.Winner = side.Other().String()
	case b.IsStalemate(side):
		st.Status = "stalemate"
	case b.IsCheck(side):
		st.Status = "check"
	}

	b.Pieces(func(p board.Piece) bool {
		st.Pieces = append(st.Pieces, PieceState{
			Cell:  board.CellLabel(p.Pos),
			Pos:   [3]int{p.Pos.Q, p.Pos.R, p.Pos.S},
			Type:  p.Type.String(),
			Color: p.Color.String(),
		})
		return true
	})

	for _, rec := range b.History() {
		st.Moves = append(st.Moves, rec.Notation)
	}
	return st
}

// ApplyMove validates and executes a move, then broadcasts the new
// state to all watchers.
func (g *Game) ApplyMove(from, to hex.Hex) (GameState, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.board.MovePiece(from, to); err != nil {
		return GameState{}, err
	}

	st := g.stateLocked()
	for conn := range g.watchers {
		if err := conn.WriteJSON(st); err != nil {
			conn.Close()
			delete(g.watchers, conn)
		}
	}
	return st, nil
}

// LegalMoves lists the destinations reachable from a cell.
func (g *Game) LegalMoves(from hex.Hex) []string {
	g.mu.Lock()
	defer g.mu.Unlock()

	moves := g.board.PossibleMoves(from)
	labels := make([]string, 0, moves.Len())
	for _, m := range moves.Slice() {
		labels = append(labels, board.CellLabel(m))
	}
	return labels
}

func (g *Game) addWatcher(conn *websocket.Conn) GameState {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.watchers[conn] = struct{}{}
	return g.stateLocked()
}

func (g *Game) removeWatcher(conn *websocket.Conn) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.watchers, conn)
}

// closeWatchers disconnects all watchers, used on game deletion.
func (g *Game) closeWatchers() {
	g.mu.Lock()
	defer g.mu.Unlock()
	for conn := range g.watchers {
		conn.Close()
	}
	g.watchers = make(map[*websocket.Conn]struct{})
}
