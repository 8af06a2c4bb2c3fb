package hex

// The six orthogonal unit directions, in counterclockwise order starting
// from NE. Rook, king and queen straight moves, and pawn pushes, step along
// these. Each covers a hex distance of 1.
var Directions = [6]Hex{
	{1, 0, -1},  // NE
	{0, 1, -1},  // N
	{-1, 1, 0},  // NW
	{-1, 0, 1},  // SW
	{0, -1, 1},  // S
	{1, -1, 0},  // SE
}

// The six diagonal directions, each the sum of two adjacent orthogonals.
// A diagonal step spans a hex distance of 2 and skips the cell between its
// endpoints, so repeated diagonal steps never change the cell color.
var Diagonals = [6]Hex{
	{1, 1, -2},  // NE + N
	{-1, 2, -1}, // N + NW
	{-2, 1, 1},  // NW + SW
	{-1, -1, 2}, // SW + S
	{1, -2, 1},  // S + SE
	{2, -1, -1}, // SE + NE
}

// The twelve knight jump vectors: two steps along one orthogonal followed by
// one step along an adjacent orthogonal. Every jump covers a hex distance of
// 3 and is not a multiple of any unit direction, so knights are never
// blocked.
var KnightJumps = [12]Hex{
	{2, 1, -3},
	{3, -1, -2},
	{1, 2, -3},
	{-1, 3, -2},
	{-2, 3, -1},
	{-3, 2, 1},
	{-3, 1, 2},
	{-2, -1, 3},
	{-1, -2, 3},
	{1, -3, 2},
	{2, -3, 1},
	{3, -2, -1},
}
