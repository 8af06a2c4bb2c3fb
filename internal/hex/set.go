package hex

import (
	"sort"
	"strings"
)

// Set is an unordered set of hex coordinates, the result type of move
// generation.
type Set map[Hex]struct{}

// NewSet creates a Set holding the given cells.
func NewSet(cells ...Hex) Set {
	s := make(Set, len(cells))
	for _, h := range cells {
		s.Add(h)
	}
	return s
}

// Add inserts a cell into the set.
func (s Set) Add(h Hex) {
	s[h] = struct{}{}
}

// Contains reports whether the set holds the cell.
func (s Set) Contains(h Hex) bool {
	_, ok := s[h]
	return ok
}

// Len returns the number of cells in the set.
func (s Set) Len() int {
	return len(s)
}

// Union merges another set into s and returns s.
func (s Set) Union(o Set) Set {
	for h := range o {
		s.Add(h)
	}
	return s
}

// Slice returns the cells in deterministic (q, r) order.
func (s Set) Slice() []Hex {
	cells := make([]Hex, 0, len(s))
	for h := range s {
		cells = append(cells, h)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Q != cells[j].Q {
			return cells[i].Q < cells[j].Q
		}
		return cells[i].R < cells[j].R
	})
	return cells
}

// String returns the sorted cells as a space-separated list.
func (s Set) String() string {
	var sb strings.Builder
	for i, h := range s.Slice() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(h.String())
	}
	return sb.String()
}
