package hex

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewRejectsNonZeroSum(t *testing.T) {
	cases := [][3]int{
		{1, 0, 0},
		{1, 1, 1},
		{-5, 5, 1},
		{2, -1, 0},
	}
	for _, c := range cases {
		if _, err := New(c[0], c[1], c[2]); err == nil {
			t.Errorf("New(%d, %d, %d): expected error, got none", c[0], c[1], c[2])
		}
	}

	if _, err := New(3, -5, 2); err != nil {
		t.Errorf("New(3, -5, 2): unexpected error: %v", err)
	}
}

func TestAddSubRoundTrip(t *testing.T) {
	pairs := []struct{ a, b Hex }{
		{Hex{0, 0, 0}, Hex{1, 0, -1}},
		{Hex{3, -5, 2}, Hex{-2, 1, 1}},
		{Hex{-4, 5, -1}, Hex{2, -3, 1}},
	}
	for _, p := range pairs {
		got := p.a.Add(p.b).Sub(p.b)
		if got != p.a {
			t.Errorf("(%v + %v) - %v = %v, want %v", p.a, p.b, p.b, got, p.a)
		}
	}
}

func TestAddCoords(t *testing.T) {
	h := Hex{1, -2, 1}

	got, err := h.AddCoords(0, 1, -1)
	if err != nil {
		t.Fatalf("AddCoords(0, 1, -1): %v", err)
	}
	if want := (Hex{1, -1, 0}); got != want {
		t.Errorf("AddCoords(0, 1, -1) = %v, want %v", got, want)
	}

	if _, err := h.AddCoords(1, -1); err == nil {
		t.Error("AddCoords with 2 coordinates: expected error")
	}
	if _, err := h.AddCoords(1, -1, 0, 0); err == nil {
		t.Error("AddCoords with 4 coordinates: expected error")
	}
	if _, err := h.AddCoords(1, 1, 1); err == nil {
		t.Error("AddCoords breaking the zero-sum invariant: expected error")
	}
}

func TestAbs(t *testing.T) {
	cases := []struct {
		h    Hex
		want int
	}{
		{Hex{0, 0, 0}, 0},
		{Hex{1, 0, -1}, 1},
		{Hex{1, 1, -2}, 2},
		{Hex{2, 1, -3}, 3},
		{Hex{5, -5, 0}, 5},
	}
	for _, c := range cases {
		if got := c.h.Abs(); got != c.want {
			t.Errorf("%v.Abs() = %d, want %d", c.h, got, c.want)
		}
		// Max-norm and halved L1-norm agree on zero-sum triples.
		l1 := (abs(c.h.Q) + abs(c.h.R) + abs(c.h.S)) / 2
		if l1 != c.want {
			t.Errorf("%v: L1/2 norm %d disagrees with max norm %d", c.h, l1, c.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	if got := (Hex{0, 0, 0}).Normalize(); got != Origin {
		t.Errorf("zero vector normalized to %v", got)
	}

	// Scaling a unit step and normalizing it back is the identity, and the
	// scale factor is exactly the distance of the scaled vector.
	for _, d := range Directions {
		for k := 1; k <= 5; k++ {
			v := d.Scale(k)
			if got := v.Normalize(); got != d {
				t.Errorf("%v.Normalize() = %v, want %v", v, got, d)
			}
			if v.Abs() != k*d.Abs() {
				t.Errorf("%v.Abs() = %d, want %d", v, v.Abs(), k*d.Abs())
			}
		}
	}
	for _, d := range Diagonals {
		v := d.Scale(3)
		if got := v.Normalize(); got != d.Normalize() {
			t.Errorf("%v.Normalize() = %v, want %v", v, got, d.Normalize())
		}
	}
}

func TestColorPartition(t *testing.T) {
	// The radius-5 board has 91 cells split 31/30/30, with the center in the
	// Green class.
	counts := map[CellColor]int{}
	total := 0
	for q := -5; q <= 5; q++ {
		for r := -5; r <= 5; r++ {
			h := Hex{q, r, -q - r}
			if h.Abs() > 5 {
				continue
			}
			counts[h.Color()]++
			total++
		}
	}

	if total != 91 {
		t.Fatalf("radius-5 board has %d cells, want 91", total)
	}
	want := map[CellColor]int{Green: 31, Blue: 30, Red: 30}
	if diff := cmp.Diff(want, counts); diff != "" {
		t.Errorf("color class sizes mismatch (-want +got):\n%s", diff)
	}
	if Origin.Color() != Green {
		t.Errorf("center cell color = %v, want green", Origin.Color())
	}
}

func TestDiagonalsPreserveColor(t *testing.T) {
	start := Hex{0, -3, 3}
	for _, d := range Diagonals {
		if got := start.Add(d).Color(); got != start.Color() {
			t.Errorf("diagonal %v changes color from %v to %v", d, start.Color(), got)
		}
	}
}

func TestKnightJumps(t *testing.T) {
	if len(KnightJumps) != 12 {
		t.Fatalf("expected 12 knight jumps, got %d", len(KnightJumps))
	}
	seen := NewSet()
	for _, j := range KnightJumps {
		if j.Q+j.R+j.S != 0 {
			t.Errorf("jump %v is not a valid coordinate offset", j)
		}
		if j.Abs() != 3 {
			t.Errorf("jump %v has distance %d, want 3", j, j.Abs())
		}
		// A jump with a common factor would be a disguised slide.
		if got := j.Normalize(); got != j {
			t.Errorf("jump %v reduces to %v", j, got)
		}
		seen.Add(j)
	}
	if seen.Len() != 12 {
		t.Errorf("knight jumps contain duplicates: %d distinct", seen.Len())
	}
}

func TestSet(t *testing.T) {
	s := NewSet(Hex{1, 0, -1}, Hex{0, 1, -1})
	s.Add(Hex{1, 0, -1})

	if s.Len() != 2 {
		t.Errorf("Len = %d, want 2", s.Len())
	}
	if !s.Contains(Hex{0, 1, -1}) {
		t.Error("Contains(0,1,-1) = false, want true")
	}
	if s.Contains(Hex{0, 0, 0}) {
		t.Error("Contains(0,0,0) = true, want false")
	}

	want := []Hex{{0, 1, -1}, {1, 0, -1}}
	if diff := cmp.Diff(want, s.Slice()); diff != "" {
		t.Errorf("Slice mismatch (-want +got):\n%s", diff)
	}
}
