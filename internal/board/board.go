// Package board implements the Gliński hexagonal chess engine: the 91-cell
// board state, move generation and check detection.
package board

import (
	"errors"
	"fmt"

	"github.com/hailam/hexplay/internal/hex"
)

// Radius is the playable hex distance from the center cell. The standard
// Gliński board has radius 5, for 91 cells.
const Radius = 5

// Errors returned by Board mutations.
var (
	ErrEmptyCell   = errors.New("no piece on that cell")
	ErrWrongTurn   = errors.New("piece belongs to the other player")
	ErrIllegalMove = errors.New("move is not legal")
	ErrOffBoard    = errors.New("cell is outside the board")
	ErrOccupied    = errors.New("cell is already occupied")
)

// MoveRecord is one executed move.
type MoveRecord struct {
	From, To hex.Hex
	Notation string
}

// Board owns the position: a sparse mapping of occupied cells to pieces,
// the side to move and the move history. It is mutated exclusively through
// MovePiece (and Place/Remove for scripted positions); every mutation is a
// whole transition from one valid position to the next.
type Board struct {
	pieces     map[hex.Hex]Piece
	sideToMove Color
	moveNumber int
	history    []MoveRecord

	// King positions, cached for check detection.
	kings    [2]hex.Hex
	hasKings [2]bool
}

// New creates a board populated with the Gliński starting layout, white to
// move.
func New() *Board {
	b := NewEmpty()
	b.setup()
	return b
}

// NewEmpty creates a board with no pieces, white to move. Use Place to
// script a position.
func NewEmpty() *Board {
	return &Board{
		pieces:     make(map[hex.Hex]Piece),
		sideToMove: White,
		moveNumber: 1,
	}
}

// setup bulk-inserts the standard starting position: nine pawns on two
// staggered arcs, rooks and knights on the flanks, three bishops down the
// center file, queen and king beside them, black mirrored from white by
// swapping the r and s axes. Any failure here is a programming error.
func (b *Board) setup() {
	place := func(pt PieceType, c Color, q, r, s int) {
		h, err := hex.New(q, r, s)
		if err != nil {
			panic(fmt.Sprintf("board setup: %v", err))
		}
		if err := b.Place(NewPiece(pt, c, h)); err != nil {
			panic(fmt.Sprintf("board setup at %v: %v", h, err))
		}
	}

	// White center bishops.
	place(Bishop, White, 0, -5, 5)
	place(Bishop, White, 0, -4, 4)
	place(Bishop, White, 0, -3, 3)

	// White left wing.
	place(Queen, White, -1, -4, 5)
	place(Knight, White, -2, -3, 5)
	place(Rook, White, -3, -2, 5)

	// White right wing.
	place(King, White, 1, -5, 4)
	place(Knight, White, 2, -5, 3)
	place(Rook, White, 3, -5, 2)

	// White pawn arcs.
	place(Pawn, White, -4, -1, 5)
	place(Pawn, White, -3, -1, 4)
	place(Pawn, White, -2, -1, 3)
	place(Pawn, White, -1, -1, 2)
	place(Pawn, White, 0, -1, 1)
	place(Pawn, White, 1, -2, 1)
	place(Pawn, White, 2, -3, 1)
	place(Pawn, White, 3, -4, 1)
	place(Pawn, White, 4, -5, 1)

	// Black, mirrored.
	place(Bishop, Black, 0, 5, -5)
	place(Bishop, Black, 0, 4, -4)
	place(Bishop, Black, 0, 3, -3)

	place(Queen, Black, -1, 5, -4)
	place(Knight, Black, -2, 5, -3)
	place(Rook, Black, -3, 5, -2)

	place(King, Black, 1, 4, -5)
	place(Knight, Black, 2, 3, -5)
	place(Rook, Black, 3, 2, -5)

	place(Pawn, Black, -4, 5, -1)
	place(Pawn, Black, -3, 4, -1)
	place(Pawn, Black, -2, 3, -1)
	place(Pawn, Black, -1, 2, -1)
	place(Pawn, Black, 0, 1, -1)
	place(Pawn, Black, 1, 1, -2)
	place(Pawn, Black, 2, 1, -3)
	place(Pawn, Black, 3, 1, -4)
	place(Pawn, Black, 4, 1, -5)
}

// IsValidHex reports whether the cell lies on the board: the coordinates
// must sum to zero and fall within the board radius. Hex has exported
// fields, so literals can carry non-zero-sum coordinates that never pass
// through hex.New.
func (b *Board) IsValidHex(h hex.Hex) bool {
	return h.Q+h.R+h.S == 0 && h.Abs() <= Radius
}

// IsOccupied reports whether a piece stands on the cell.
func (b *Board) IsOccupied(h hex.Hex) bool {
	_, ok := b.pieces[h]
	return ok
}

// PieceAt returns the piece on the cell, if any.
func (b *Board) PieceAt(h hex.Hex) (Piece, bool) {
	p, ok := b.pieces[h]
	return p, ok
}

// SideToMove returns the color whose turn it is.
func (b *Board) SideToMove() Color {
	return b.sideToMove
}

// SetSideToMove overrides the side to move. Intended for scripted positions.
func (b *Board) SetSideToMove(c Color) {
	b.sideToMove = c
}

// MoveNumber returns the current full-move number, starting at 1.
func (b *Board) MoveNumber() int {
	return b.moveNumber
}

// KingPosition returns the cached cell of the given color's king.
func (b *Board) KingPosition(c Color) (hex.Hex, bool) {
	if c >= NoColor || !b.hasKings[c] {
		return hex.Hex{}, false
	}
	return b.kings[c], true
}

// History returns the executed moves in order.
func (b *Board) History() []MoveRecord {
	return b.history
}

// TurnInfo returns a one-line description of the game state.
func (b *Board) TurnInfo() string {
	return fmt.Sprintf("Move %d, %s to play", b.moveNumber, b.sideToMove)
}

// Place puts a piece on the board. It fails if the cell is off the board or
// occupied, or if the piece is a second king of its color.
func (b *Board) Place(p Piece) error {
	if !b.IsValidHex(p.Pos) {
		return fmt.Errorf("place %v at %v: %w", p, p.Pos, ErrOffBoard)
	}
	if b.IsOccupied(p.Pos) {
		return fmt.Errorf("place %v at %v: %w", p, p.Pos, ErrOccupied)
	}
	if p.Type == King {
		if b.hasKings[p.Color] {
			return fmt.Errorf("place %v at %v: color already has a king", p, p.Pos)
		}
		b.kings[p.Color] = p.Pos
		b.hasKings[p.Color] = true
	}
	b.pieces[p.Pos] = p
	return nil
}

// Remove takes the piece off the given cell and returns it.
func (b *Board) Remove(h hex.Hex) (Piece, bool) {
	p, ok := b.pieces[h]
	if !ok {
		return Piece{}, false
	}
	delete(b.pieces, h)
	if p.Type == King {
		b.hasKings[p.Color] = false
	}
	return p, true
}

// MovePiece executes a move for the side to move. It fails without mutating
// the board when the start cell is empty, holds an opposing piece, or the
// destination is not among the piece's legal moves. On success the capture
// and relocation are applied together, the move is recorded, and the turn
// passes to the other player. A pawn reaching the far edge is promoted to a
// queen.
func (b *Board) MovePiece(from, to hex.Hex) error {
	p, ok := b.pieces[from]
	if !ok {
		return fmt.Errorf("move from %v: %w", from, ErrEmptyCell)
	}
	if p.Color != b.sideToMove {
		return fmt.Errorf("move from %v: %w (it is %s's turn)", from, ErrWrongTurn, b.sideToMove)
	}
	if !b.PossibleMoves(from).Contains(to) {
		return fmt.Errorf("move %v -> %v: %w", from, to, ErrIllegalMove)
	}

	notation := b.formatMove(p, to)
	b.applyMove(from, to)

	if p.Type == Pawn && b.isPromotionCell(to, p.Color) {
		moved := b.pieces[to]
		moved.Type = Queen
		b.pieces[to] = moved
	}

	b.history = append(b.history, MoveRecord{From: from, To: to, Notation: notation})
	if b.sideToMove == Black {
		b.moveNumber++
	}
	b.sideToMove = b.sideToMove.Other()
	return nil
}

// PromotePawn replaces the pawn on the given cell with the given type.
// Queens, rooks, bishops and knights are valid promotion targets.
func (b *Board) PromotePawn(h hex.Hex, pt PieceType) error {
	p, ok := b.pieces[h]
	if !ok {
		return fmt.Errorf("promote at %v: %w", h, ErrEmptyCell)
	}
	if p.Type != Pawn {
		return fmt.Errorf("promote at %v: %s is not a pawn", h, p.Type)
	}
	if pt != Queen && pt != Rook && pt != Bishop && pt != Knight {
		return fmt.Errorf("promote at %v: invalid promotion type %s", h, pt)
	}
	p.Type = pt
	b.pieces[h] = p
	return nil
}

// applyMove performs the raw occupancy update: any piece on the destination
// is captured, the moving piece is relocated with its moved flag set, and
// the king cache follows. No turn handling; MovePiece and the self-check
// filter both build on this.
func (b *Board) applyMove(from, to hex.Hex) {
	p := b.pieces[from]
	if captured, ok := b.pieces[to]; ok && captured.Type == King {
		b.hasKings[captured.Color] = false
	}
	delete(b.pieces, from)
	b.pieces[to] = p.MoveTo(to)
	if p.Type == King {
		b.kings[p.Color] = to
	}
}

// isPromotionCell reports whether a pawn of the given color promotes on the
// cell: the far edge arc in its forward direction.
func (b *Board) isPromotionCell(h hex.Hex, c Color) bool {
	if c == White {
		return h.R == Radius || h.S == -Radius
	}
	return h.R == -Radius || h.S == Radius
}

// clone copies the occupancy map and caches for speculative move testing.
// History is not carried; clones exist only to answer check queries.
func (b *Board) clone() *Board {
	c := &Board{
		pieces:     make(map[hex.Hex]Piece, len(b.pieces)),
		sideToMove: b.sideToMove,
		moveNumber: b.moveNumber,
		kings:      b.kings,
		hasKings:   b.hasKings,
	}
	for h, p := range b.pieces {
		c.pieces[h] = p
	}
	return c
}

// Validate checks the board invariants: every occupied cell is on the
// board, every piece knows its own cell, and each color has exactly one
// king. A violation indicates a bug in setup or move execution.
func (b *Board) Validate() error {
	kingCount := [2]int{}
	for h, p := range b.pieces {
		if !b.IsValidHex(h) {
			return fmt.Errorf("piece %v on invalid cell %v", p, h)
		}
		if p.Pos != h {
			return fmt.Errorf("piece %v keyed at %v but positioned at %v", p, h, p.Pos)
		}
		if p.Type == King {
			kingCount[p.Color]++
		}
	}
	for _, c := range []Color{White, Black} {
		if kingCount[c] != 1 {
			return fmt.Errorf("%s must have exactly one king, has %d", c, kingCount[c])
		}
	}
	return nil
}

// Pieces calls fn for every piece on the board, stopping early if fn
// returns false.
func (b *Board) Pieces(fn func(Piece) bool) {
	for _, p := range b.pieces {
		if !fn(p) {
			return
		}
	}
}
