package board

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hailam/hexplay/internal/hex"
)

func TestStartingPawnMoves(t *testing.T) {
	b := New()

	// Every white pawn except the center one has a free single and double
	// step. The center pawns face each other across the center cell, so the
	// double step is blocked.
	total := 0
	for _, cell := range []hex.Hex{
		{Q: -4, R: -1, S: 5}, {Q: -3, R: -1, S: 4}, {Q: -2, R: -1, S: 3}, {Q: -1, R: -1, S: 2},
		{Q: 1, R: -2, S: 1}, {Q: 2, R: -3, S: 1}, {Q: 3, R: -4, S: 1}, {Q: 4, R: -5, S: 1},
	} {
		moves := b.PossibleMoves(cell)
		if moves.Len() != 2 {
			t.Errorf("pawn at %v has %d moves (%v), want 2", cell, moves.Len(), moves)
		}
		total += moves.Len()
	}

	center := hex.Hex{Q: 0, R: -1, S: 1}
	moves := b.PossibleMoves(center)
	if moves.Len() != 1 {
		t.Errorf("center pawn has %d moves (%v), want 1", moves.Len(), moves)
	}
	if !moves.Contains(hex.Hex{Q: 0, R: 0, S: 0}) {
		t.Errorf("center pawn cannot reach the center cell: %v", moves)
	}
	total += moves.Len()

	if total != 17 {
		t.Errorf("white has %d pawn moves from the start, want 17", total)
	}
}

func TestStartingPieceMoves(t *testing.T) {
	b := New()

	cases := []struct {
		cell hex.Hex
		want int
	}{
		{hex.Hex{Q: -2, R: -3, S: 5}, 4}, // knight
		{hex.Hex{Q: 2, R: -5, S: 3}, 4},  // knight
		{hex.Hex{Q: -3, R: -2, S: 5}, 3}, // rook
		{hex.Hex{Q: 3, R: -5, S: 2}, 3},  // rook
		{hex.Hex{Q: 0, R: -5, S: 5}, 2},  // bishop
		{hex.Hex{Q: 0, R: -4, S: 4}, 8},  // bishop
		{hex.Hex{Q: 0, R: -3, S: 3}, 2},  // bishop
		{hex.Hex{Q: -1, R: -4, S: 5}, 6}, // queen
		{hex.Hex{Q: 1, R: -5, S: 4}, 2},  // king
	}
	for _, c := range cases {
		p, ok := b.PieceAt(c.cell)
		if !ok {
			t.Fatalf("no piece at %v", c.cell)
		}
		moves := b.PossibleMoves(c.cell)
		if moves.Len() != c.want {
			t.Errorf("%s at %v has %d moves (%v), want %d",
				p.Type, c.cell, moves.Len(), moves, c.want)
		}
	}
}

func TestStartingMoveTotalsMirror(t *testing.T) {
	b := New()

	countAll := func(c Color) int {
		total := 0
		b.Pieces(func(p Piece) bool {
			if p.Color == c {
				total += b.PossibleMoves(p.Pos).Len()
			}
			return true
		})
		return total
	}

	// 17 pawn moves (the center pawn's double step is blocked by the black
	// center pawn), 8 knight, 6 rook, 12 bishop, 6 queen, 2 king.
	white := countAll(White)
	if white != 51 {
		t.Errorf("white has %d legal first moves, want 51", white)
	}

	// The starting layout mirrors black from white by swapping the r and s
	// axes, so black has the same number of replies.
	b.SetSideToMove(Black)
	if black := countAll(Black); black != white {
		t.Errorf("black has %d legal first moves, white has %d", black, white)
	}
}

func TestPossibleMovesEmptyCases(t *testing.T) {
	b := New()

	if moves := b.PossibleMoves(hex.Hex{Q: 0, R: 0, S: 0}); moves.Len() != 0 {
		t.Errorf("empty cell yields moves: %v", moves)
	}
	// Black piece while white to move.
	if moves := b.PossibleMoves(hex.Hex{Q: 0, R: 1, S: -1}); moves.Len() != 0 {
		t.Errorf("opposing piece yields moves: %v", moves)
	}
}

func TestPossibleMovesStayOnBoard(t *testing.T) {
	b := New()
	b.Pieces(func(p Piece) bool {
		b.SetSideToMove(p.Color)
		for m := range b.PossibleMoves(p.Pos) {
			if !b.IsValidHex(m) {
				t.Errorf("%s at %v generates off-board move %v", p.Type, p.Pos, m)
			}
			if target, ok := b.PieceAt(m); ok && target.Color == p.Color {
				t.Errorf("%s at %v captures own %s at %v", p.Type, p.Pos, target.Type, m)
			}
		}
		return true
	})
}

func TestPinnedRookMoves(t *testing.T) {
	// The white rook shields its king from a black rook along the NE ray.
	// Moving off the ray would expose the king, so only on-ray moves remain,
	// including the capture of the attacker.
	b := NewEmpty()
	for _, p := range []Piece{
		NewPiece(King, White, hex.Hex{Q: 0, R: 0, S: 0}),
		NewPiece(Rook, White, hex.Hex{Q: 2, R: 0, S: -2}),
		NewPiece(Rook, Black, hex.Hex{Q: 4, R: 0, S: -4}),
		NewPiece(King, Black, hex.Hex{Q: -4, R: 1, S: 3}),
	} {
		if err := b.Place(p); err != nil {
			t.Fatal(err)
		}
	}

	got := b.PossibleMoves(hex.Hex{Q: 2, R: 0, S: -2}).Slice()
	want := []hex.Hex{{Q: 1, R: 0, S: -1}, {Q: 3, R: 0, S: -3}, {Q: 4, R: 0, S: -4}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("pinned rook moves mismatch (-want +got):\n%s", diff)
	}
}

func TestBishopStaysOnColor(t *testing.T) {
	b := NewEmpty()
	start := hex.Hex{Q: 0, R: -3, S: 3}
	if err := b.Place(NewPiece(Bishop, White, start)); err != nil {
		t.Fatal(err)
	}

	if start.Color() != hex.Green {
		t.Fatalf("expected a green starting cell, got %v", start.Color())
	}
	for m := range b.PossibleMoves(start) {
		if m.Color() != hex.Green {
			t.Errorf("bishop move %v lands on %v, want green", m, m.Color())
		}
	}

	// Walk the bishop greedily for a few moves; it must never leave its
	// color class.
	pos := start
	for i := 0; i < 6; i++ {
		moves := b.PossibleMoves(pos).Slice()
		if len(moves) == 0 {
			break
		}
		next := moves[i%len(moves)]
		if err := b.MovePiece(pos, next); err != nil {
			t.Fatalf("bishop walk step %d: %v", i, err)
		}
		if next.Color() != hex.Green {
			t.Fatalf("bishop reached %v with color %v", next, next.Color())
		}
		b.SetSideToMove(White)
		pos = next
	}
}

func TestKnightJumpsOverPieces(t *testing.T) {
	// Ring the knight with pawns; jumps ignore the blockade entirely.
	b := NewEmpty()
	center := hex.Hex{Q: 0, R: 0, S: 0}
	if err := b.Place(NewPiece(Knight, White, center)); err != nil {
		t.Fatal(err)
	}
	for _, d := range hex.Directions {
		if err := b.Place(NewPiece(Pawn, White, center.Add(d))); err != nil {
			t.Fatal(err)
		}
	}

	moves := b.PossibleMoves(center)
	if moves.Len() != 12 {
		t.Errorf("ringed knight has %d moves (%v), want 12", moves.Len(), moves)
	}
	for m := range moves {
		if hex.Distance(center, m) != 3 {
			t.Errorf("knight move %v is at distance %d, want 3", m, hex.Distance(center, m))
		}
	}
}

func TestPawnCaptures(t *testing.T) {
	b := NewEmpty()
	pawn := NewPiece(Pawn, White, hex.Hex{Q: 0, R: 0, S: 0})
	pawn.HasMoved = true
	if err := b.Place(pawn); err != nil {
		t.Fatal(err)
	}
	// Enemy pieces on both forward-capture cells, a friendly piece ahead.
	for _, p := range []Piece{
		NewPiece(Pawn, Black, hex.Hex{Q: 1, R: 0, S: -1}),
		NewPiece(Pawn, Black, hex.Hex{Q: -1, R: 1, S: 0}),
		NewPiece(Pawn, White, hex.Hex{Q: 0, R: 1, S: -1}),
	} {
		if err := b.Place(p); err != nil {
			t.Fatal(err)
		}
	}

	got := b.PossibleMoves(hex.Hex{Q: 0, R: 0, S: 0}).Slice()
	want := []hex.Hex{{Q: -1, R: 1, S: 0}, {Q: 1, R: 0, S: -1}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("pawn capture moves mismatch (-want +got):\n%s", diff)
	}
}
