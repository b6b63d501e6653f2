// Package workbench models the arcane workbench container: a fixed set of
// station slots (spell, crystal, centre, upgrade), the player inventory, and
// a virtual slot index over nearby externally owned bookshelves that is
// searched, sorted and scrolled as one list.
//
// The virtual slot system works as follows: each VirtualSlot refers to one
// slot of a nearby Inventory but is never displayed directly. BookListSlots
// are the fixed grid positions that do get displayed; they delegate every
// access to whichever VirtualSlot the current search, sort and scroll state
// resolves them to. Resolution is re-done on every call because another open
// container may have mutated a bookshelf in between; at worst an action lands
// on a different compatible item, never on a duplicated or lost one.
//
// The container is driven by discrete user actions from a single goroutine;
// every call runs to completion before the next one, and nothing here locks.
package workbench

// Container aggregates the station slots, the player inventory and the
// discovered bookshelf slots into a single slot id space, and carries the
// per-session search, sort and scroll state.
type Container struct {
	// Actor receives stacks the container cannot place anywhere, e.g. the
	// contents of a spell slot that just got hidden. Nil discards them.
	Actor Actor

	station Inventory // the workbench's own 11 slots
	player  Inventory // the 36 player inventory slots
	caps    ItemCaps
	disc    Discoverer
	anchor  Pos

	virtual []*VirtualSlot
	active  []*VirtualSlot

	scroll         int
	sortType       SortType
	sortDescending bool
	searchText     string

	visibleSpellSlots int
	spellSlotPos      [MaxSpellSlots][2]int

	onSlotChanged  []func(id int)
	onApplySuccess []func(actor Actor, centre Stack)
}

// New creates a container anchored at the given position. Discovery runs
// immediately to populate the virtual slots, then the centre slot reaction
// runs once so a pre-loaded wand shows its spell slots.
func New(station, player Inventory, caps ItemCaps, disc Discoverer, anchor Pos) *Container {
	c := &Container{
		station: station,
		player:  player,
		caps:    caps,
		disc:    disc,
		anchor:  anchor,
	}
	for i := range c.spellSlotPos {
		c.spellSlotPos[i] = [2]int{hiddenPos, hiddenPos}
	}
	c.Refresh()
	c.centreChanged()
	return c
}

// OnSlotChanged registers a callback fired synchronously after any slot
// mutation, with the container slot id that changed.
func (c *Container) OnSlotChanged(cb func(id int)) {
	c.onSlotChanged = append(c.onSlotChanged, cb)
}

// OnApplySuccess registers a callback fired after a successful apply action
// with the acting player and the resulting centre stack.
func (c *Container) OnApplySuccess(cb func(actor Actor, centre Stack)) {
	c.onApplySuccess = append(c.onApplySuccess, cb)
}

// Slot returns the stack in the given container slot. Unknown ids and
// unreachable virtual slots read as empty.
func (c *Container) Slot(id int) Stack { return c.stackAt(id) }

// SetSlot replaces the stack in the given container slot and runs the slot
// change reaction (centre slot changes show or hide spell slots).
func (c *Container) SetSlot(id int, s Stack) {
	c.setStackAt(id, s)
	c.slotChanged(id)
}

// VisibleSpellSlots returns how many spell slots the current centre item
// declares, i.e. how many of slots 0..7 are interactive right now.
func (c *Container) VisibleSpellSlots() int { return c.visibleSpellSlots }

// ScrollTo scrolls the bookshelf grid to the given row. Negative rows clamp
// to the top.
func (c *Container) ScrollTo(row int) {
	if row < 0 {
		row = 0
	}
	c.scroll = row
}

// Scroll returns the current scroll row.
func (c *Container) Scroll() int { return c.scroll }

// SetSortType sets the sort key, or toggles the sort direction if the key is
// unchanged. Switching to a different key resets the direction to ascending.
func (c *Container) SetSortType(t SortType) {
	if c.sortType == t {
		c.sortDescending = !c.sortDescending
	} else {
		c.sortType = t
		c.sortDescending = false
	}
	c.UpdateActiveBookshelfSlots()
}

// SortType returns the current sort key.
func (c *Container) SortType() SortType { return c.sortType }

// SortDescending returns true if the current sort direction is descending.
func (c *Container) SortDescending() bool { return c.sortDescending }

// SetSearchText sets the bookshelf search query, resets the scroll to the
// top and recomputes the active list. The empty query matches everything.
func (c *Container) SetSearchText(text string) {
	c.searchText = text
	c.ScrollTo(0)
	c.UpdateActiveBookshelfSlots()
}

// SearchText returns the current search query.
func (c *Container) SearchText() string { return c.searchText }

// OnApplyButtonPressed runs the apply action for the acting player. If the
// centre slot is empty or holds an item without workbench behaviour the call
// is a silent no-op.
func (c *Container) OnApplyButtonPressed(actor Actor) {
	centre := c.stackAt(CentreSlot)
	if centre.IsEmpty() || !c.caps.IsWand(centre) {
		return
	}

	spells := make([]SlotRef, MaxSpellSlots)
	for i := range spells {
		spells[i] = SlotRef{c: c, id: i}
	}

	if c.caps.Apply(SlotRef{c: c, id: CentreSlot}, SlotRef{c: c, id: CrystalSlot}, SlotRef{c: c, id: UpgradeSlot}, spells) {
		for _, cb := range c.onApplySuccess {
			cb(actor, c.stackAt(CentreSlot))
		}
	}
}

// stackAt reads a slot by container id across the three backing stores.
func (c *Container) stackAt(id int) Stack {
	switch {
	case id >= 0 && id < StationSlots:
		return c.station.Stack(id)
	case id < PlayerInvEnd:
		return c.player.Stack(id - PlayerInvStart)
	default:
		if v := c.virtualByID(id); v != nil {
			return v.Stack()
		}
	}
	return Stack{}
}

// setStackAt writes a slot by container id. Writes to unknown ids or
// unreachable virtual slots are dropped.
func (c *Container) setStackAt(id int, s Stack) {
	switch {
	case id >= 0 && id < StationSlots:
		c.station.SetStack(id, s)
	case id < PlayerInvEnd:
		c.player.SetStack(id-PlayerInvStart, s)
	default:
		if v := c.virtualByID(id); v != nil {
			v.SetStack(s)
		}
	}
}

// slotChanged runs per-slot reactions and notifies observers.
func (c *Container) slotChanged(id int) {
	if id == CentreSlot {
		c.centreChanged()
	}
	for _, cb := range c.onSlotChanged {
		cb(id)
	}
}

// centreChanged reacts to the centre slot contents: the item's declared
// spell slot count decides how many spell slots are visible, visible ones
// are placed radially around the centre position, and newly hidden ones are
// emptied back to the bookshelves or player.
func (c *Container) centreChanged() {
	centre := c.stackAt(CentreSlot)

	n := 0
	if !centre.IsEmpty() && c.caps.IsWand(centre) {
		n = c.caps.SpellSlotCount(centre)
		if n > MaxSpellSlots {
			n = MaxSpellSlots
		}
	}

	for i, p := range RadialPositions(n, centrePos[0], centrePos[1], SlotRadius) {
		c.spellSlotPos[i] = p
	}
	c.visibleSpellSlots = n

	for i := n; i < MaxSpellSlots; i++ {
		c.hideSpellSlot(i)
	}
}

// hideSpellSlot parks a spell slot off screen and returns its contents via
// quick-move; whatever still does not fit goes to the Actor.
func (c *Container) hideSpellSlot(i int) {
	c.spellSlotPos[i] = [2]int{hiddenPos, hiddenPos}

	if c.stackAt(i).IsEmpty() {
		return
	}
	c.QuickMove(i)

	if rem := c.stackAt(i); !rem.IsEmpty() {
		c.setStackAt(i, Stack{})
		if c.Actor != nil {
			c.Actor.Drop(rem)
		}
		for _, cb := range c.onSlotChanged {
			cb(i)
		}
	}
}
