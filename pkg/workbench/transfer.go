package workbench

// QuickMove attempts to relocate the entire stack in the given slot to the
// best compatible destination, the way a shift-click does. Destination
// priority depends on the origin:
//
//   - station slot (spell/crystal/centre/upgrade): bookshelves, then player
//     inventory
//   - bookshelf slot: the matching station range, then player inventory
//   - player inventory slot: the matching station range, then bookshelves
//
// It returns a copy of the origin stack if any quantity moved, or the empty
// stack if nothing moved. A failed attempt has no side effects at all, and
// the total item count across all slots is unchanged either way.
func (c *Container) QuickMove(id int) Stack {
	stack := c.stackAt(id)
	if stack.IsEmpty() {
		return Stack{}
	}
	original := stack

	var moved bool
	switch {
	case id >= 0 && id <= UpgradeSlot:
		// Station -> bookshelves, then player inventory.
		moved = c.mergeIntoBookshelves(&stack) || c.mergeIntoPlayerInv(&stack)

	case id >= PlayerInvEnd:
		// Bookshelves -> station, then player inventory.
		if min, max, ok := c.findSlotRangeForItem(stack); ok && c.mergeStack(&stack, min, max, false) {
			moved = true
		} else {
			moved = c.mergeIntoPlayerInv(&stack)
		}

	case id >= PlayerInvStart:
		// Player inventory -> station, then bookshelves.
		if min, max, ok := c.findSlotRangeForItem(stack); ok && c.mergeStack(&stack, min, max, false) {
			moved = true
		} else {
			moved = c.mergeIntoBookshelves(&stack)
		}

	default:
		return Stack{}
	}

	if !moved || stack.Count == original.Count {
		return Stack{}
	}

	if stack.Count == 0 {
		c.setStackAt(id, Stack{})
	} else {
		c.setStackAt(id, stack)
	}
	c.slotChanged(id)
	return original
}

// findSlotRangeForItem returns the inclusive id range of the station slots
// the stack belongs in, first match wins: spell slots (limited to the centre
// item's declared count), then crystal, centre and upgrade. ok is false when
// no station slot is appropriate. A range only means the item is valid
// there, not that there is room.
func (c *Container) findSlotRangeForItem(s Stack) (min, max int, ok bool) {
	switch {
	case c.caps.IsSpellBook(s):
		centre := c.stackAt(CentreSlot)
		if !centre.IsEmpty() && c.caps.IsWand(centre) {
			if n := c.caps.SpellSlotCount(centre); n > 0 {
				if n > MaxSpellSlots {
					n = MaxSpellSlots
				}
				return 0, n - 1, true
			}
		}
	case c.caps.IsCrystal(s):
		return CrystalSlot, CrystalSlot, true
	case c.caps.IsWand(s):
		return CentreSlot, CentreSlot, true
	case c.caps.IsUpgrade(s):
		return UpgradeSlot, UpgradeSlot, true
	}
	return 0, 0, false
}

// mergeIntoBookshelves merges the stack into the full valid bookshelf range.
func (c *Container) mergeIntoBookshelves(stack *Stack) bool {
	valid := c.BookshelfSlots()
	if len(valid) == 0 {
		return false
	}
	return c.mergeStack(stack, valid[0].id, valid[len(valid)-1].id, false)
}

// mergeIntoPlayerInv merges the stack into the player inventory, hotbar
// first (descending ids).
func (c *Container) mergeIntoPlayerInv(stack *Stack) bool {
	return c.mergeStack(stack, PlayerInvStart, PlayerInvEnd-1, true)
}

// mergeStack moves as much of stack as possible into the slots [min, max]
// (inclusive): first it tops up compatible non-full stacks, then it fills
// empty slots, stopping as soon as the stack is fully placed. Slots that are
// hidden, invalid or reject the item are skipped. stack.Count is mutated in
// place; the return value is true if any quantity moved.
func (c *Container) mergeStack(stack *Stack, min, max int, reverse bool) bool {
	moved := false

	for pass := 0; pass < 2 && stack.Count > 0; pass++ {
		for i := 0; i <= max-min && stack.Count > 0; i++ {
			id := min + i
			if reverse {
				id = max - i
			}

			dst := c.stackAt(id)
			if pass == 0 {
				if dst.IsEmpty() || dst.ID != stack.ID {
					continue
				}
			} else if !dst.IsEmpty() {
				continue
			}
			if !c.slotAccepts(id, *stack) {
				continue
			}

			room := c.slotLimit(id, *stack) - dst.Count
			if room <= 0 {
				continue
			}
			n := stack.Count
			if n > room {
				n = room
			}

			c.setStackAt(id, Stack{ID: stack.ID, Count: dst.Count + n})
			stack.Count -= n
			moved = true
			c.slotChanged(id)
		}
	}
	return moved
}

// slotAccepts reports whether the slot may hold the stack at all. Hidden
// spell slots and unreachable virtual slots accept nothing.
func (c *Container) slotAccepts(id int, s Stack) bool {
	switch {
	case id >= 0 && id < CrystalSlot:
		return id < c.visibleSpellSlots && c.caps.IsSpellBook(s)
	case id == CrystalSlot:
		return c.caps.IsCrystal(s)
	case id == CentreSlot:
		return c.caps.IsWand(s)
	case id == UpgradeSlot:
		return c.caps.IsUpgrade(s)
	case id < PlayerInvEnd:
		return true
	default:
		v := c.virtualByID(id)
		return v != nil && v.accepts(s)
	}
}

// slotLimit returns the slot's stack count cap for the given item. Spell,
// centre and upgrade slots hold a single item; the crystal slot holds a
// stack; everything else is capped by the item's own stack size.
func (c *Container) slotLimit(id int, s Stack) int {
	max := c.caps.MaxStackSize(s)
	switch {
	case id >= 0 && id < CrystalSlot, id == CentreSlot, id == UpgradeSlot:
		return 1
	case id == CrystalSlot:
		if max > crystalSlotLimit {
			return crystalSlotLimit
		}
		return max
	default:
		return max
	}
}
