package workbench

// Stack is a quantity of a single item kind, identified by its numeric item
// registry ID. The zero value is the empty stack.
type Stack struct {
	ID    int32
	Count int
}

// IsEmpty returns true if the stack holds no items.
func (s Stack) IsEmpty() bool { return s.Count <= 0 }

// Pos is a block position in the world, used to anchor bookshelf discovery.
type Pos struct {
	X, Y, Z int
}

// Inventory is an externally owned slot store, such as a bookshelf near the
// workbench. The container never copies its contents; every read and write
// goes through this interface so the view cannot diverge from ground truth.
type Inventory interface {
	// Size returns the number of slots.
	Size() int
	// Stack returns the stack in slot i.
	Stack(i int) Stack
	// SetStack replaces the stack in slot i.
	SetStack(i int, s Stack)
	// Accepts reports whether slot i may hold the given stack.
	Accepts(i int, s Stack) bool
	// Reachable returns false once the inventory has been removed from the
	// world. Unreachable inventories read as empty and reject writes.
	Reachable() bool
}

// Discoverer locates the external inventories linked to a workbench.
// Implementations return them in a deterministic order; that order is the
// canonical virtual slot order until the next refresh.
type Discoverer interface {
	Discover(anchor Pos) []Inventory
}

// SortType selects the key the active bookshelf list is sorted by.
type SortType int

const (
	SortTier SortType = iota
	SortElement
	SortAlphabetical
)

// ItemCaps answers the item capability queries the container needs: which
// fixed slots an item belongs in, how many spell slots a centre item
// declares, stacking limits, sorting and search matching, and the
// apply-button action.
type ItemCaps interface {
	IsSpellBook(s Stack) bool
	IsCrystal(s Stack) bool
	IsWand(s Stack) bool
	IsUpgrade(s Stack) bool

	// SpellSlotCount returns the number of spell slots the given centre-slot
	// item declares. Zero means none.
	SpellSlotCount(s Stack) int
	// MaxStackSize returns the maximum count a single slot may hold of this
	// item.
	MaxStackSize(s Stack) int

	// Compare orders a before b (negative), equal (zero) or after (positive)
	// under the given sort key.
	Compare(a, b Stack, by SortType) int
	// Matches reports whether the item's descriptor matches the search
	// query. The empty query matches everything.
	Matches(s Stack, query string) bool

	// Apply performs the apply-button action over live slot handles and
	// returns true if anything changed.
	Apply(centre, crystal, upgrade SlotRef, spells []SlotRef) bool
}

// Actor receives stacks the container has nowhere to put, e.g. when a spell
// slot is hidden and neither the bookshelves nor the player inventory have
// room. Hosts typically drop these at the player's feet.
type Actor interface {
	Drop(s Stack)
}

// SlotRef is a live handle to one container slot. Reads and writes go
// through the container so slot-change reactions still fire.
type SlotRef struct {
	c  *Container
	id int
}

// ID returns the container slot id this handle refers to.
func (r SlotRef) ID() int { return r.id }

// Stack returns the current contents of the slot.
func (r SlotRef) Stack() Stack { return r.c.stackAt(r.id) }

// SetStack replaces the contents of the slot.
func (r SlotRef) SetStack(s Stack) {
	r.c.setStackAt(r.id, s)
	r.c.slotChanged(r.id)
}
