// Package render produces terminal representations of a hexagonal board.
package render

import (
	"fmt"
	"os"
	"strings"

	"github.com/hailam/hexplay/internal/board"
	"github.com/hailam/hexplay/internal/hex"
)

// Options controls the board rendering.
type Options struct {
	Unicode bool // chess figurines instead of letter pairs
	Colors  bool // ANSI color codes around pieces
	Coords  bool // r coordinate suffix on each row
}

// TerminalOptions inspects the environment and enables what the current
// terminal can display.
func TerminalOptions() Options {
	return Options{
		Unicode: strings.Contains(strings.ToUpper(os.Getenv("LANG")), "UTF-8"),
		Colors:  os.Getenv("TERM") != "",
	}
}

var unicodePieces = map[string]string{
	"wP": "♙", "wR": "♖", "wN": "♘", "wB": "♗", "wQ": "♕", "wK": "♔",
	"bP": "♟", "bR": "♜", "bN": "♞", "bB": "♝", "bQ": "♛", "bK": "♚",
}

const (
	ansiWhite = "\033[97m"
	ansiBlack = "\033[30m"
	ansiReset = "\033[0m"
)

// Board returns a multi-line picture of the board. White's back rank is
// the bottom row, rows are offset to suggest the hexagonal shape, and
// empty cells show as dots.
func Board(b *board.Board, opts Options) string {
	var sb strings.Builder

	for r := board.Radius; r >= -board.Radius; r-- {
		row := renderRow(b, r, opts)
		sb.WriteString(strings.Repeat(" ", absInt(r)))
		sb.WriteString(row)
		if opts.Coords {
			fmt.Fprintf(&sb, "  r=%d", r)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func renderRow(b *board.Board, r int, opts Options) string {
	cells := make([]string, 0, 2*board.Radius+1)
	for q := -board.Radius; q <= board.Radius; q++ {
		h := hex.Hex{Q: q, R: r, S: -q - r}
		if !b.IsValidHex(h) {
			continue
		}
		if p, ok := b.PieceAt(h); ok {
			cells = append(cells, formatPiece(p, opts))
		} else {
			cells = append(cells, "·")
		}
	}
	return strings.Join(cells, " ")
}

func formatPiece(p board.Piece, opts Options) string {
	s := p.String()
	if opts.Unicode {
		if sym, ok := unicodePieces[s]; ok {
			s = sym
		}
	}
	if opts.Colors {
		code := ansiWhite
		if p.Color == board.Black {
			code = ansiBlack
		}
		s = code + s + ansiReset
	}
	return s
}

// MoveList formats the game history as numbered move pairs, one full
// move per line.
func MoveList(b *board.Board) string {
	hist := b.History()
	if len(hist) == 0 {
		return "(no moves)"
	}
	var sb strings.Builder
	for i, rec := range hist {
		if i%2 == 0 {
			fmt.Fprintf(&sb, "%d. %s", i/2+1, rec.Notation)
		} else {
			fmt.Fprintf(&sb, " %s\n", rec.Notation)
		}
	}
	if len(hist)%2 == 1 {
		sb.WriteByte('\n')
	}
	return sb.String()
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
