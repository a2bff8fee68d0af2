package sand

import "github.com/zyedidia/generic/mapset"

// Census counts cells per kind.
type Census [kindCount]int

// Census tallies the current grid contents.
func (g *Grid) Census() Census {
	var c Census
	for _, cell := range g.cells {
		if cell.Kind.Valid() {
			c[cell.Kind]++
		}
	}
	return c
}

// Count returns the number of cells holding k.
func (c Census) Count(k Kind) int {
	if !k.Valid() {
		return 0
	}
	return c[k]
}

// Total returns the number of non-empty cells.
func (c Census) Total() int {
	total := 0
	for k := Sand; k < kindCount; k++ {
		total += c[k]
	}
	return total
}

// Kinds returns the set of non-empty kinds present at least once.
func (c Census) Kinds() mapset.Set[Kind] {
	set := mapset.New[Kind]()
	for k := Sand; k < kindCount; k++ {
		if c[k] > 0 {
			set.Put(k)
		}
	}
	return set
}
