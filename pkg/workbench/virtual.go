package workbench

// VirtualSlot maps a container slot id to a position inside an externally
// owned inventory. It holds no item data of its own: every read and write is
// forwarded to the backing inventory, so the container view can never diverge
// from ground truth. Ids are assigned in discovery order on refresh and are
// stable only until the next refresh.
type VirtualSlot struct {
	id    int
	inv   Inventory
	index int
}

// ID returns the container slot id.
func (v *VirtualSlot) ID() int { return v.id }

// Valid reports whether the backing inventory is still reachable. Invalid
// slots stay enumerable so ids remain stable between refreshes, but they read
// as empty, reject writes and are excluded from every listing.
func (v *VirtualSlot) Valid() bool {
	return v.inv != nil && v.inv.Reachable()
}

// Stack returns the stack in the backing inventory slot, or the empty stack
// if the inventory is no longer reachable.
func (v *VirtualSlot) Stack() Stack {
	if !v.Valid() {
		return Stack{}
	}
	return v.inv.Stack(v.index)
}

// SetStack writes through to the backing inventory. Writes to unreachable
// inventories are dropped silently.
func (v *VirtualSlot) SetStack(s Stack) {
	if !v.Valid() {
		return
	}
	v.inv.SetStack(v.index, s)
}

// accepts reports whether the backing inventory slot may hold the stack.
func (v *VirtualSlot) accepts(s Stack) bool {
	return v.Valid() && v.inv.Accepts(v.index, s)
}

// Refresh discards all virtual slots and rebuilds them from a fresh
// discovery pass: one slot per inventory slot, in discovery order. There is
// no incremental update; discovery dominates the cost, so a full rebuild is
// the simple and correct option. Call it whenever a bookshelf is added or
// removed.
func (c *Container) Refresh() {
	c.virtual = c.virtual[:0]
	for _, inv := range c.disc.Discover(c.anchor) {
		for i := 0; i < inv.Size(); i++ {
			c.virtual = append(c.virtual, &VirtualSlot{
				id:    PlayerInvEnd + len(c.virtual),
				inv:   inv,
				index: i,
			})
		}
	}
	c.UpdateActiveBookshelfSlots()
}

// virtualByID returns the virtual slot with the given container id, or nil.
func (c *Container) virtualByID(id int) *VirtualSlot {
	i := id - PlayerInvEnd
	if i < 0 || i >= len(c.virtual) {
		return nil
	}
	return c.virtual[i]
}

// VirtualSlotByID returns the virtual slot with the given container id.
func (c *Container) VirtualSlotByID(id int) (*VirtualSlot, bool) {
	v := c.virtualByID(id)
	return v, v != nil
}
