// Package cli implements the interactive terminal game loop.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/hailam/hexplay/internal/board"
	"github.com/hailam/hexplay/internal/hex"
	"github.com/hailam/hexplay/internal/render"
	"github.com/hailam/hexplay/internal/storage"
)

// CLI drives a game of hexagonal chess over a line-based console.
type CLI struct {
	board   *board.Board
	store   *storage.Storage
	opts    render.Options
	out     io.Writer
	started time.Time
	over    bool
}

// New creates a CLI session with a fresh game. The storage handle may
// be nil, in which case save, load and stats commands are disabled.
func New(store *storage.Storage, out io.Writer) *CLI {
	return &CLI{
		board:   board.New(),
		store:   store,
		opts:    render.TerminalOptions(),
		out:     out,
		started: time.Now(),
	}
}

// Run reads commands until EOF or quit.
func (c *CLI) Run(in io.Reader) {
	c.showBoard()

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "move", "m":
			c.handleMove(args)
		case "moves":
			c.handleMoves(args)
		case "hint":
			c.handleHint()
		case "show", "d":
			c.showBoard()
		case "history":
			fmt.Fprintln(c.out, render.MoveList(c.board))
		case "new":
			c.board = board.New()
			c.started = time.Now()
			c.over = false
			c.showBoard()
		case "save":
			c.handleSave(args)
		case "load":
			c.handleLoad(args)
		case "games":
			c.handleGames()
		case "stats":
			c.handleStats()
		case "coords":
			c.opts.Coords = !c.opts.Coords
			c.showBoard()
		case "help":
			c.printHelp()
		case "quit", "exit":
			return
		default:
			fmt.Fprintf(c.out, "unknown command %q, try help\n", cmd)
		}
	}
}

func (c *CLI) showBoard() {
	fmt.Fprintln(c.out, render.Board(c.board, c.opts))
	fmt.Fprintln(c.out, c.board.TurnInfo())
}

func (c *CLI) handleMove(args []string) {
	if c.over {
		fmt.Fprintln(c.out, "game is over, start another with new")
		return
	}
	if len(args) != 2 {
		fmt.Fprintln(c.out, "usage: move q,r,s q,r,s  (e.g. move 0,-1,1 0,0,0)")
		return
	}

	from, err := parseHex(args[0])
	if err != nil {
		fmt.Fprintln(c.out, "bad source cell:", err)
		return
	}
	to, err := parseHex(args[1])
	if err != nil {
		fmt.Fprintln(c.out, "bad target cell:", err)
		return
	}

	if err := c.board.MovePiece(from, to); err != nil {
		fmt.Fprintln(c.out, "illegal move:", err)
		return
	}

	c.showBoard()

	next := c.board.SideToMove()
	switch {
	case c.board.IsCheckmate(next):
		winner := next.Other()
		fmt.Fprintf(c.out, "Checkmate! %s wins!\n", winner)
		c.finishGame(winner, false)
	case c.board.IsStalemate(next):
		fmt.Fprintln(c.out, "Stalemate, game drawn.")
		c.finishGame(next, true)
	case c.board.IsCheck(next):
		fmt.Fprintln(c.out, "Check!")
	}
}

func (c *CLI) finishGame(winner board.Color, draw bool) {
	c.over = true
	if c.store == nil {
		return
	}
	result := storage.GameResult{
		Won:      !draw,
		Draw:     draw,
		Color:    winner,
		Duration: time.Since(c.started),
	}
	if err := c.store.RecordGame(result); err != nil {
		fmt.Fprintln(c.out, "could not record result:", err)
	}
}

func (c *CLI) handleMoves(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "usage: moves q,r,s")
		return
	}
	h, err := parseHex(args[0])
	if err != nil {
		fmt.Fprintln(c.out, "bad cell:", err)
		return
	}

	moves := c.board.PossibleMoves(h)
	if moves.Len() == 0 {
		fmt.Fprintln(c.out, "no moves from", board.CellLabel(h))
		return
	}
	labels := make([]string, 0, moves.Len())
	for _, m := range moves.Slice() {
		labels = append(labels, board.CellLabel(m))
	}
	fmt.Fprintf(c.out, "%s: %s\n", board.CellLabel(h), strings.Join(labels, " "))
}

// handleHint prints a few random legal moves for the side to move.
func (c *CLI) handleHint() {
	type candidate struct {
		piece board.Piece
		to    hex.Hex
	}
	var all []candidate

	side := c.board.SideToMove()
	c.board.Pieces(func(p board.Piece) bool {
		if p.Color != side {
			return true
		}
		for _, to := range c.board.PossibleMoves(p.Pos).Slice() {
			all = append(all, candidate{p, to})
		}
		return true
	})

	if len(all) == 0 {
		fmt.Fprintln(c.out, "no legal moves")
		return
	}

	rand.Shuffle(len(all), func(i, j int) { all[i], all[j] = all[j], all[i] })
	n := 5
	if len(all) < n {
		n = len(all)
	}
	for _, cand := range all[:n] {
		fmt.Fprintf(c.out, "%s %d,%d,%d %d,%d,%d\n", cand.piece,
			cand.piece.Pos.Q, cand.piece.Pos.R, cand.piece.Pos.S,
			cand.to.Q, cand.to.R, cand.to.S)
	}
}

func (c *CLI) handleSave(args []string) {
	if c.store == nil {
		fmt.Fprintln(c.out, "storage unavailable")
		return
	}
	if len(args) != 1 {
		fmt.Fprintln(c.out, "usage: save <name>")
		return
	}
	if err := c.store.SaveGame(storage.Snapshot(args[0], c.board)); err != nil {
		fmt.Fprintln(c.out, "save failed:", err)
		return
	}
	fmt.Fprintln(c.out, "saved", args[0])
}

func (c *CLI) handleLoad(args []string) {
	if c.store == nil {
		fmt.Fprintln(c.out, "storage unavailable")
		return
	}
	if len(args) != 1 {
		fmt.Fprintln(c.out, "usage: load <name>")
		return
	}
	sg, err := c.store.LoadGame(args[0])
	if err != nil {
		fmt.Fprintln(c.out, "load failed:", err)
		return
	}
	b, err := sg.Restore()
	if err != nil {
		fmt.Fprintln(c.out, "load failed:", err)
		return
	}
	c.board = b
	c.started = time.Now()
	c.over = false
	c.showBoard()
}

func (c *CLI) handleGames() {
	if c.store == nil {
		fmt.Fprintln(c.out, "storage unavailable")
		return
	}
	names, err := c.store.ListGames()
	if err != nil {
		fmt.Fprintln(c.out, "list failed:", err)
		return
	}
	if len(names) == 0 {
		fmt.Fprintln(c.out, "no saved games")
		return
	}
	for _, name := range names {
		fmt.Fprintln(c.out, name)
	}
}

func (c *CLI) handleStats() {
	if c.store == nil {
		fmt.Fprintln(c.out, "storage unavailable")
		return
	}
	stats, err := c.store.LoadStats()
	if err != nil {
		fmt.Fprintln(c.out, "stats failed:", err)
		return
	}
	fmt.Fprintf(c.out, "games: %d  wins: %d  losses: %d  draws: %d  win rate: %.1f%%\n",
		stats.GamesPlayed, stats.Wins, stats.Losses, stats.Draws, stats.GetWinRate())
}

func (c *CLI) printHelp() {
	fmt.Fprint(c.out, `commands:
  move <q,r,s> <q,r,s>  make a move (aliases: m)
  moves <q,r,s>         list legal moves from a cell
  hint                  show a few random legal moves
  show                  redraw the board (aliases: d)
  history               show the move list
  new                   start a fresh game
  save/load <name>      store or restore a game
  games                 list saved games
  stats                 show play statistics
  coords                toggle row coordinates
  quit                  leave
`)
}

// parseHex reads a "q,r,s" triple.
func parseHex(s string) (hex.Hex, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 3 {
		return hex.Hex{}, fmt.Errorf("want q,r,s, got %q", s)
	}
	vals := make([]int, 3)
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return hex.Hex{}, fmt.Errorf("bad coordinate %q", f)
		}
		vals[i] = v
	}
	return hex.New(vals[0], vals[1], vals[2])
}
