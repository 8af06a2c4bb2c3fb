package board

import (
	"fmt"

	"github.com/hailam/hexplay/internal/hex"
)

// Cell labels for move notation: files A-K along the q axis, ranks 1-11
// along the r axis.
const fileLetters = "ABCDEFGHIJK"

// CellLabel returns the algebraic label of a cell, e.g. "F6" for the
// center.
func CellLabel(h hex.Hex) string {
	if h.Q < -Radius || h.Q > Radius || h.R < -Radius || h.R > Radius {
		return h.String()
	}
	return fmt.Sprintf("%c%d", fileLetters[h.Q+Radius], h.R+Radius+1)
}

// formatMove renders a move in algebraic notation. Must be called before
// the move is applied so the capture marker reflects the destination's
// occupancy.
func (b *Board) formatMove(p Piece, to hex.Hex) string {
	pieceStr := ""
	if p.Type != Pawn {
		pieceStr = string(p.Type.Char())
	}
	captureStr := ""
	if b.IsOccupied(to) {
		captureStr = "x"
	}
	return pieceStr + captureStr + CellLabel(to)
}
