// Package bookshelf provides an in-memory implementation of the workbench's
// external inventory and discovery collaborators: Shelf is a plain slot
// store at a world position, Finder tracks shelves and answers anchor-radius
// discovery queries.
package bookshelf

import (
	"sort"

	"github.com/go-mclib/workbench/pkg/workbench"
)

// Shelf is an in-memory inventory at a fixed world position. The zero value
// is not usable; create shelves with New.
type Shelf struct {
	pos     workbench.Pos
	slots   []workbench.Stack
	accepts func(i int, s workbench.Stack) bool
	removed bool
}

// New creates a shelf with the given number of slots at pos. By default
// every slot accepts every item; use SetAccepts to restrict.
func New(pos workbench.Pos, size int) *Shelf {
	return &Shelf{pos: pos, slots: make([]workbench.Stack, size)}
}

// Pos returns the shelf's world position.
func (s *Shelf) Pos() workbench.Pos { return s.pos }

// SetAccepts installs a per-slot item predicate. Nil restores accept-all.
func (s *Shelf) SetAccepts(fn func(i int, st workbench.Stack) bool) { s.accepts = fn }

// Remove marks the shelf as gone from the world. Virtual slots referring to
// it report invalid from then on.
func (s *Shelf) Remove() { s.removed = true }

// Size implements workbench.Inventory.
func (s *Shelf) Size() int { return len(s.slots) }

// Stack implements workbench.Inventory.
func (s *Shelf) Stack(i int) workbench.Stack {
	if i < 0 || i >= len(s.slots) {
		return workbench.Stack{}
	}
	return s.slots[i]
}

// SetStack implements workbench.Inventory. Out-of-range writes are dropped.
func (s *Shelf) SetStack(i int, st workbench.Stack) {
	if i < 0 || i >= len(s.slots) {
		return
	}
	s.slots[i] = st
}

// Accepts implements workbench.Inventory.
func (s *Shelf) Accepts(i int, st workbench.Stack) bool {
	if i < 0 || i >= len(s.slots) {
		return false
	}
	if s.accepts == nil {
		return true
	}
	return s.accepts(i, st)
}

// Reachable implements workbench.Inventory.
func (s *Shelf) Reachable() bool { return !s.removed }

// Finder tracks the shelves placed in the world and implements
// workbench.Discoverer: shelves within the search radius of the anchor,
// nearest first, insertion order breaking ties. Removed shelves are never
// returned.
type Finder struct {
	radius  int
	shelves []*Shelf
}

// NewFinder creates a finder with the given search radius in blocks.
func NewFinder(radius int) *Finder {
	return &Finder{radius: radius}
}

// Add registers a shelf with the finder.
func (f *Finder) Add(s *Shelf) {
	f.shelves = append(f.shelves, s)
}

// Remove marks the shelf as gone and drops it from future discovery.
func (f *Finder) Remove(s *Shelf) {
	s.Remove()
	for i, sh := range f.shelves {
		if sh == s {
			f.shelves = append(f.shelves[:i], f.shelves[i+1:]...)
			return
		}
	}
}

// Discover implements workbench.Discoverer.
func (f *Finder) Discover(anchor workbench.Pos) []workbench.Inventory {
	type candidate struct {
		shelf *Shelf
		dist  int
	}
	var found []candidate
	r2 := f.radius * f.radius
	for _, s := range f.shelves {
		if !s.Reachable() {
			continue
		}
		d := distSq(s.pos, anchor)
		if d > r2 {
			continue
		}
		found = append(found, candidate{shelf: s, dist: d})
	}
	sort.SliceStable(found, func(i, j int) bool { return found[i].dist < found[j].dist })

	result := make([]workbench.Inventory, len(found))
	for i, c := range found {
		result[i] = c.shelf
	}
	return result
}

func distSq(a, b workbench.Pos) int {
	dx, dy, dz := a.X-b.X, a.Y-b.Y, a.Z-b.Z
	return dx*dx + dy*dy + dz*dz
}
