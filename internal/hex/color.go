package hex

// CellColor is the three-way coloring of the hexagonal grid. It is a pure
// function of the coordinate, never stored. Diagonal (bishop) moves preserve
// it, which is why each bishop is confined to one class for the whole game.
type CellColor uint8

const (
	Green CellColor = iota
	Blue
	Red
)

// Color classifies the cell by the residue of (q - r) mod 3. The Green class
// contains the center cell.
func (h Hex) Color() CellColor {
	return CellColor(((h.Q-h.R)%3 + 3) % 3)
}

// String returns the color name.
func (c CellColor) String() string {
	switch c {
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Red:
		return "red"
	default:
		return "unknown"
	}
}
