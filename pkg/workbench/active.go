package workbench

import "slices"

// UpdateActiveBookshelfSlots recomputes the filtered and sorted projection of
// the virtual slots. It runs eagerly on refresh and on every search or sort
// change, never lazily at render time, so resolution stays consistent within
// a single user action.
//
// The sort is stable on purpose: equal keys keep discovery order, which makes
// the listing deterministic under repeated equal-key items.
func (c *Container) UpdateActiveBookshelfSlots() {
	c.active = c.active[:0]
	for _, v := range c.virtual {
		if !v.Valid() {
			continue
		}
		s := v.Stack()
		if s.IsEmpty() || !c.caps.IsSpellBook(s) || !c.caps.Matches(s, c.searchText) {
			continue
		}
		c.active = append(c.active, v)
	}
	slices.SortStableFunc(c.active, func(a, b *VirtualSlot) int {
		r := c.caps.Compare(a.Stack(), b.Stack(), c.sortType)
		if c.sortDescending {
			return -r
		}
		return r
	})
}

// BookshelfSlots returns all valid virtual slots in discovery order,
// including empty ones. Slots whose backing inventory has become unreachable
// are omitted.
func (c *Container) BookshelfSlots() []*VirtualSlot {
	valid := make([]*VirtualSlot, 0, len(c.virtual))
	for _, v := range c.virtual {
		if v.Valid() {
			valid = append(valid, v)
		}
	}
	return valid
}

// ActiveBookshelfSlots returns the virtual slots that are non-empty, hold a
// search-matching spell book and are valid, sorted under the current sort
// key.
func (c *Container) ActiveBookshelfSlots() []*VirtualSlot {
	return slices.Clone(c.active)
}

// VisibleBookshelfSlots returns the active slots from the current scroll row
// onwards; the first BookshelfSlotsX*BookshelfSlotsY of them fill the grid.
func (c *Container) VisibleBookshelfSlots() []*VirtualSlot {
	start := c.scroll * BookshelfSlotsX
	if start >= len(c.active) {
		return nil
	}
	return slices.Clone(c.active[start:])
}
