package workbench

// BookListSlot is one fixed display position in the bookshelf grid. It owns
// no items, only a resolution rule: display index plus the current scroll
// offset select an entry of the active list. Resolution happens fresh on
// every call, never cached, because the active list may change between a
// render and the click that follows it.
type BookListSlot struct {
	c     *Container
	index int
}

// BookList returns the display slot for the given grid index
// (0..BookshelfSlotsX*BookshelfSlotsY-1).
func (c *Container) BookList(index int) BookListSlot {
	return BookListSlot{c: c, index: index}
}

// Index returns the display index within the grid.
func (s BookListSlot) Index() int { return s.index }

// Position returns the on-screen position of this grid cell.
func (s BookListSlot) Position() (x, y int) {
	return -114 + (s.index%BookshelfSlotsX)*18, 34 + (s.index/BookshelfSlotsX)*18
}

// Resolve returns the virtual slot this display position currently delegates
// to. ok is false when the position is past the end of the active list, in
// which case the slot behaves as empty and non-interactive.
func (s BookListSlot) Resolve() (*VirtualSlot, bool) {
	i := s.c.scroll*BookshelfSlotsX + s.index
	if i < 0 || i >= len(s.c.active) {
		return nil, false
	}
	return s.c.active[i], true
}

// Stack returns the stack this display position currently shows.
func (s BookListSlot) Stack() Stack {
	v, ok := s.Resolve()
	if !ok {
		return Stack{}
	}
	return v.Stack()
}

// Take removes and returns the whole stack from the resolved virtual slot.
// Unresolvable positions return the empty stack and change nothing.
func (s BookListSlot) Take() Stack {
	v, ok := s.Resolve()
	if !ok {
		return Stack{}
	}
	st := v.Stack()
	if st.IsEmpty() {
		return Stack{}
	}
	v.SetStack(Stack{})
	s.c.slotChanged(v.id)
	return st
}

// Put inserts a stack through this display position. Insertion does not
// target the resolved slot: a stack dropped on the book list merges into
// whichever bookshelf slots are free or compatible. The remainder that did
// not fit is returned.
func (s BookListSlot) Put(st Stack) Stack {
	if st.IsEmpty() {
		return Stack{}
	}
	s.c.mergeIntoBookshelves(&st)
	return st
}
