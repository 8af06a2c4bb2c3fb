package board

import (
	"github.com/hailam/hexplay/internal/hex"
)

// Pawn movement directions by color. Forward runs along the r axis toward
// the opposing side; captures land on the two cells orthogonally adjacent
// to the forward cell.
var (
	pawnForward = [2]hex.Hex{
		White: hex.Directions[1], // N
		Black: hex.Directions[4], // S
	}
	pawnCaptures = [2][2]hex.Hex{
		White: {hex.Directions[0], hex.Directions[2]}, // NE, NW
		Black: {hex.Directions[5], hex.Directions[3]}, // SE, SW
	}
)

// PossibleMoves returns the legal destinations for the piece on the cell.
// The set is empty when the cell is empty or holds a piece of the side not
// to move. Every returned destination is on the board and leaves the moving
// side's own king out of check.
func (b *Board) PossibleMoves(h hex.Hex) hex.Set {
	p, ok := b.pieces[h]
	if !ok || p.Color != b.sideToMove {
		return hex.NewSet()
	}
	return b.legalMoves(p)
}

// legalMoves generates the piece's destinations and filters out any that
// would leave its own king in check. Filtering works on a cloned board per
// candidate rather than mutate-and-undo, so a partially applied move is
// never observable.
func (b *Board) legalMoves(p Piece) hex.Set {
	legal := hex.NewSet()
	for m := range b.pseudoMoves(p) {
		t := b.clone()
		t.applyMove(p.Pos, m)
		if !t.IsCheck(p.Color) {
			legal.Add(m)
		}
	}
	return legal
}

// pseudoMoves generates destinations by piece type, ignoring king safety.
// The piece types are a closed set, so this is a plain switch rather than
// an interface hierarchy.
func (b *Board) pseudoMoves(p Piece) hex.Set {
	switch p.Type {
	case Pawn:
		return b.pawnMoves(p)
	case Knight:
		return b.knightMoves(p)
	case Bishop:
		return b.slide(p, hex.Diagonals)
	case Rook:
		return b.slide(p, hex.Directions)
	case Queen:
		return b.slide(p, hex.Directions).Union(b.slide(p, hex.Diagonals))
	case King:
		return b.kingMoves(p)
	default:
		return hex.NewSet()
	}
}

// slide is the shared ray-tracing primitive: from the piece's cell, step
// repeatedly along each direction, accumulating empty cells and stopping at
// the first occupied one, which is included only as a capture. A diagonal
// direction spans two cells per step, skipping the cell between, which is
// what keeps bishops on one color class permanently.
func (b *Board) slide(p Piece, dirs [6]hex.Hex) hex.Set {
	moves := hex.NewSet()
	for _, d := range dirs {
		current := p.Pos
		for {
			current = current.Add(d)
			if !b.IsValidHex(current) {
				break
			}
			target, occupied := b.pieces[current]
			if occupied {
				if target.Color != p.Color {
					moves.Add(current)
				}
				break
			}
			moves.Add(current)
		}
	}
	return moves
}

// knightMoves returns the twelve jump destinations. Knights jump, so no
// blocking check applies; the target just has to be on the board and not
// hold a friendly piece.
func (b *Board) knightMoves(p Piece) hex.Set {
	moves := hex.NewSet()
	for _, j := range hex.KnightJumps {
		to := p.Pos.Add(j)
		if !b.IsValidHex(to) {
			continue
		}
		if target, occupied := b.pieces[to]; occupied && target.Color == p.Color {
			continue
		}
		moves.Add(to)
	}
	return moves
}

// kingMoves returns the twelve single-step neighbors: six orthogonal and
// six diagonal.
func (b *Board) kingMoves(p Piece) hex.Set {
	moves := hex.NewSet()
	step := func(d hex.Hex) {
		to := p.Pos.Add(d)
		if !b.IsValidHex(to) {
			return
		}
		if target, occupied := b.pieces[to]; occupied && target.Color == p.Color {
			return
		}
		moves.Add(to)
	}
	for _, d := range hex.Directions {
		step(d)
	}
	for _, d := range hex.Diagonals {
		step(d)
	}
	return moves
}

// pawnMoves returns forward pushes and diagonal-forward captures. The
// double step is available only from the pawn's starting cell and only
// through an empty intermediate cell.
func (b *Board) pawnMoves(p Piece) hex.Set {
	moves := hex.NewSet()
	forward := pawnForward[p.Color]

	oneStep := p.Pos.Add(forward)
	if b.IsValidHex(oneStep) && !b.IsOccupied(oneStep) {
		moves.Add(oneStep)

		if !p.HasMoved {
			twoStep := oneStep.Add(forward)
			if b.IsValidHex(twoStep) && !b.IsOccupied(twoStep) {
				moves.Add(twoStep)
			}
		}
	}

	for _, d := range pawnCaptures[p.Color] {
		capture := p.Pos.Add(d)
		if !b.IsValidHex(capture) {
			continue
		}
		if target, occupied := b.pieces[capture]; occupied && target.Color != p.Color {
			moves.Add(capture)
		}
	}
	return moves
}
