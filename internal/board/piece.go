package board

import (
	"github.com/hailam/hexplay/internal/hex"
)

// Color represents the color of a piece or player.
type Color uint8

const (
	White Color = iota
	Black
	NoColor Color = 2
)

// Other returns the opposite player color. NoColor has no opposite and is
// returned unchanged.
func (c Color) Other() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	default:
		return c
	}
}

// String returns the color name.
func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return "none"
	}
}

// PieceType represents the type of a chess piece.
type PieceType uint8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NoPieceType PieceType = 6
)

// String returns the piece type name.
func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

// Char returns the letter for the piece type (uppercase).
func (pt PieceType) Char() byte {
	chars := []byte{'P', 'N', 'B', 'R', 'Q', 'K', ' '}
	if pt > NoPieceType {
		return ' '
	}
	return chars[pt]
}

// Piece is an immutable chess piece: its type, color, position and whether
// it has moved. Pieces are plain values with structural equality; "moving"
// one produces a new value via MoveTo.
type Piece struct {
	Type     PieceType
	Color    Color
	Pos      hex.Hex
	HasMoved bool
}

// NewPiece creates a piece of the given type and color at the given cell.
func NewPiece(pt PieceType, c Color, pos hex.Hex) Piece {
	return Piece{Type: pt, Color: c, Pos: pos}
}

// MoveTo returns a copy of the piece relocated to the given cell with its
// moved flag set. The receiver is untouched; board bookkeeping is the
// Board's job.
func (p Piece) MoveTo(to hex.Hex) Piece {
	p.Pos = to
	p.HasMoved = true
	return p
}

// String returns the piece as a two-character tag, e.g. "wP" or "bK".
func (p Piece) String() string {
	side := byte('w')
	if p.Color == Black {
		side = 'b'
	}
	return string([]byte{side, p.Type.Char()})
}
