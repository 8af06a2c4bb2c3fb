// Package hex implements cubic hexagonal coordinates for the Gliński board.
package hex

import "fmt"

// Hex is a cubic hexagonal coordinate. The three axes are redundant by one
// degree of freedom: Q + R + S == 0 for every valid coordinate. Hex is a
// comparable value type, so it hashes structurally and works as a map key.
type Hex struct {
	Q, R, S int
}

// Origin is the center cell (0, 0, 0).
var Origin = Hex{0, 0, 0}

// New creates a Hex, failing if the coordinates do not sum to zero.
func New(q, r, s int) (Hex, error) {
	if q+r+s != 0 {
		return Hex{}, fmt.Errorf("invalid cubic coordinates (%d, %d, %d): sum must be zero", q, r, s)
	}
	return Hex{Q: q, R: r, S: s}, nil
}

// Add returns the component-wise sum of two coordinates. The sum of two
// zero-sum triples is itself zero-sum, so the result is always valid.
func (h Hex) Add(o Hex) Hex {
	return Hex{h.Q + o.Q, h.R + o.R, h.S + o.S}
}

// AddCoords offsets h by a raw coordinate triple. It fails unless exactly
// three integers are given, or if the resulting coordinate is invalid.
func (h Hex) AddCoords(vals ...int) (Hex, error) {
	if len(vals) != 3 {
		return Hex{}, fmt.Errorf("direction needs exactly 3 coordinates, got %d", len(vals))
	}
	return New(h.Q+vals[0], h.R+vals[1], h.S+vals[2])
}

// Sub returns the component-wise difference of two coordinates.
func (h Hex) Sub(o Hex) Hex {
	return Hex{h.Q - o.Q, h.R - o.R, h.S - o.S}
}

// Scale multiplies every component by k.
func (h Hex) Scale(k int) Hex {
	return Hex{h.Q * k, h.R * k, h.S * k}
}

// Abs returns the hex-grid distance from the origin: the number of
// single-step moves needed to reach h. Equivalent to (|q|+|r|+|s|)/2.
func (h Hex) Abs() int {
	return max(abs(h.Q), abs(h.R), abs(h.S))
}

// Distance returns the number of single-step moves between two cells.
func Distance(a, b Hex) int {
	return a.Sub(b).Abs()
}

// Normalize reduces a direction vector to its minimal integer step by
// dividing out the gcd of the components. The zero vector normalizes to
// itself.
func (h Hex) Normalize() Hex {
	g := gcd(gcd(abs(h.Q), abs(h.R)), abs(h.S))
	if g == 0 {
		return Hex{}
	}
	return Hex{h.Q / g, h.R / g, h.S / g}
}

// String returns the coordinate as "(q,r,s)".
func (h Hex) String() string {
	return fmt.Sprintf("(%d,%d,%d)", h.Q, h.R, h.S)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
