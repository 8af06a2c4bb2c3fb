package board

import (
	"github.com/hailam/hexplay/internal/hex"
)

// IsCheck reports whether the given color's king is attacked. Detection
// ray-traces outward from the king using the same direction constants as
// move generation, with fixed-offset probes for knights, pawns and the
// enemy king. No legal-move filtering is involved, so there is no
// recursion back into PossibleMoves.
func (b *Board) IsCheck(c Color) bool {
	ksq, ok := b.KingPosition(c)
	if !ok {
		return false
	}
	them := c.Other()

	// Knight jumps.
	for _, j := range hex.KnightJumps {
		if b.holds(ksq.Add(j), them, Knight) {
			return true
		}
	}

	// Pawn captures: an enemy pawn attacks the king cell if the king sits
	// on one of its capture cells.
	for _, d := range pawnCaptures[them] {
		if b.holds(ksq.Sub(d), them, Pawn) {
			return true
		}
	}

	// Enemy king adjacency, orthogonal and diagonal.
	for _, d := range hex.Directions {
		if b.holds(ksq.Add(d), them, King) {
			return true
		}
	}
	for _, d := range hex.Diagonals {
		if b.holds(ksq.Add(d), them, King) {
			return true
		}
	}

	// Sliders: trace each ray to its first occupier.
	if b.rayHits(ksq, hex.Directions, them, Rook) {
		return true
	}
	if b.rayHits(ksq, hex.Diagonals, them, Bishop) {
		return true
	}
	return false
}

// holds reports whether the cell carries a piece of the given color and
// type.
func (b *Board) holds(h hex.Hex, c Color, pt PieceType) bool {
	p, ok := b.pieces[h]
	return ok && p.Color == c && p.Type == pt
}

// rayHits traces from the cell along each direction and reports whether
// the first occupied cell on any ray holds an enemy slider of the given
// type or an enemy queen. Any other occupier blocks the ray.
func (b *Board) rayHits(from hex.Hex, dirs [6]hex.Hex, them Color, slider PieceType) bool {
	for _, d := range dirs {
		current := from
		for {
			current = current.Add(d)
			if !b.IsValidHex(current) {
				break
			}
			p, occupied := b.pieces[current]
			if !occupied {
				continue
			}
			if p.Color == them && (p.Type == slider || p.Type == Queen) {
				return true
			}
			break
		}
	}
	return false
}

// HasLegalMoves reports whether any piece of the given color has at least
// one legal move.
func (b *Board) HasLegalMoves(c Color) bool {
	for _, p := range b.pieces {
		if p.Color != c {
			continue
		}
		if b.legalMoves(p).Len() > 0 {
			return true
		}
	}
	return false
}

// IsCheckmate reports whether the given color is in check with no legal
// move that escapes it.
func (b *Board) IsCheckmate(c Color) bool {
	return b.IsCheck(c) && !b.HasLegalMoves(c)
}

// IsStalemate reports whether the given color is not in check but has no
// legal move.
func (b *Board) IsStalemate(c Color) bool {
	return !b.IsCheck(c) && !b.HasLegalMoves(c)
}
