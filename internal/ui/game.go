package ui

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hailam/hexplay/internal/board"
	"github.com/hailam/hexplay/internal/hex"
	"github.com/hailam/hexplay/internal/storage"
)

// UI Constants
const (
	HexSide      = 34
	BoardWidth   = 620
	PanelWidth   = 300
	ScreenWidth  = BoardWidth + PanelWidth
	ScreenHeight = 680
)

// Game implements ebiten.Game.
type Game struct {
	board *board.Board

	// UI state
	selected  *hex.Hex
	legal     hex.Set
	statusMsg string

	// Storage
	storage *storage.Storage
	prefs   *storage.UserPreferences
	started time.Time

	// Components
	renderer *Renderer
	input    *InputHandler
	panel    *Panel

	gameOver   bool
	gameResult string
}

// NewGame creates a new game with a fresh board.
func NewGame() *Game {
	g := &Game{
		board:    board.New(),
		renderer: NewRenderer(HexSide, BoardWidth/2, ScreenHeight/2),
		input:    NewInputHandler(),
		started:  time.Now(),
	}
	g.panel = NewPanel(g)

	store, err := storage.NewStorage()
	if err != nil {
		log.Printf("Storage unavailable: %v", err)
	} else {
		g.storage = store
		g.prefs, err = store.LoadPreferences()
		if err != nil {
			log.Printf("Failed to load preferences: %v", err)
			g.prefs = storage.DefaultPreferences()
		}
	}
	return g
}

// Update advances the game state by one tick.
func (g *Game) Update() error {
	g.input.Update()
	g.panel.Update(g.input)

	if IsKeyJustPressed(ebiten.KeyN) {
		g.NewGameAction()
	}

	if !g.gameOver && g.input.IsLeftJustPressed() {
		mx, my := g.input.MousePosition()
		if mx < BoardWidth {
			if cell, ok := g.renderer.PixelToHex(mx, my); ok {
				g.handleCellClick(cell)
			} else {
				g.clearSelection()
			}
		}
	}

	return nil
}

// handleCellClick implements click-to-select, click-to-move.
func (g *Game) handleCellClick(cell hex.Hex) {
	if g.selected != nil {
		if g.legal.Contains(cell) {
			g.makeMove(*g.selected, cell)
			g.clearSelection()
			return
		}
		if *g.selected == cell {
			g.clearSelection()
			return
		}
	}

	p, ok := g.board.PieceAt(cell)
	if !ok || p.Color != g.board.SideToMove() {
		g.clearSelection()
		return
	}

	sel := cell
	g.selected = &sel
	g.legal = g.board.PossibleMoves(cell)
}

func (g *Game) clearSelection() {
	g.selected = nil
	g.legal = nil
}

func (g *Game) makeMove(from, to hex.Hex) {
	if err := g.board.MovePiece(from, to); err != nil {
		g.statusMsg = err.Error()
		return
	}
	g.statusMsg = ""
	g.checkGameEnd()
}

func (g *Game) checkGameEnd() {
	side := g.board.SideToMove()
	switch {
	case g.board.IsCheckmate(side):
		winner := side.Other()
		g.gameOver = true
		g.gameResult = fmt.Sprintf("Checkmate! %s wins", winner)
		g.recordResult(winner, false)
	case g.board.IsStalemate(side):
		g.gameOver = true
		g.gameResult = "Stalemate, game drawn"
		g.recordResult(side, true)
	}
}

func (g *Game) recordResult(winner board.Color, draw bool) {
	if g.storage == nil {
		return
	}
	result := storage.GameResult{
		Won:      !draw,
		Draw:     draw,
		Color:    winner,
		Duration: time.Since(g.started),
	}
	if err := g.storage.RecordGame(result); err != nil {
		log.Printf("Failed to record game: %v", err)
	}
}

// NewGameAction starts a fresh game.
func (g *Game) NewGameAction() {
	g.board = board.New()
	g.clearSelection()
	g.statusMsg = ""
	g.gameOver = false
	g.gameResult = ""
	g.started = time.Now()
}

// StatusMessage returns the current status line and its color.
func (g *Game) StatusMessage() (string, color.RGBA) {
	if g.gameOver {
		return g.gameResult, statusGameEnd
	}
	if g.statusMsg != "" {
		return g.statusMsg, statusCheck
	}
	if g.board.IsCheck(g.board.SideToMove()) {
		return "Check!", statusCheck
	}
	return "Click a piece to move", textMuted
}

// Board returns the current board.
func (g *Game) Board() *board.Board {
	return g.board
}

// Draw renders one frame.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.renderer.Theme().Background)

	g.renderer.DrawBoard(screen, g.board)

	var last *board.MoveRecord
	if hist := g.board.History(); len(hist) > 0 {
		last = &hist[len(hist)-1]
	}
	g.renderer.DrawHighlights(screen, g.selected, g.legal, last)

	side := g.board.SideToMove()
	if g.board.IsCheck(side) {
		if ksq, ok := g.board.KingPosition(side); ok {
			g.renderer.DrawCheck(screen, ksq)
		}
	}

	g.renderer.DrawPieces(screen, g.board)
	g.panel.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

// Close releases resources on shutdown.
func (g *Game) Close() {
	if g.storage != nil {
		if g.prefs != nil {
			if err := g.storage.SavePreferences(g.prefs); err != nil {
				log.Printf("Failed to save preferences: %v", err)
			}
		}
		g.storage.Close()
	}
}
