package workbench

import "math"

// Container slot ids: eight spell slots, then crystal/centre/upgrade, then
// the 36 player inventory slots, then however many virtual bookshelf slots
// the last refresh produced.
const (
	MaxSpellSlots = 8

	CrystalSlot = 8
	CentreSlot  = 9
	UpgradeSlot = 10

	StationSlots = 11

	PlayerInvStart = 11
	PlayerInvSize  = 36
	PlayerInvEnd   = PlayerInvStart + PlayerInvSize

	// The bookshelf grid shown on screen: 5 columns, 10 rows.
	BookshelfSlotsX = 5
	BookshelfSlotsY = 10

	// SlotRadius is the distance of the spell slots from the centre slot.
	SlotRadius = 42

	crystalSlotLimit = 64

	// hiddenPos parks a slot off screen.
	hiddenPos = -999
)

// Fixed GUI anchors for the three single-purpose station slots.
var (
	crystalPos = [2]int{13, 101}
	centrePos  = [2]int{80, 64}
	upgradePos = [2]int{147, 17}
)

// Role classifies a fixed slot.
type Role int

const (
	RoleSpell Role = iota
	RoleCrystal
	RoleCentre
	RoleUpgrade
	RolePlayer
)

// RoleOf returns the role of a fixed slot id. ok is false for virtual
// bookshelf slot ids, which have no fixed role.
func RoleOf(id int) (role Role, ok bool) {
	switch {
	case id >= 0 && id < CrystalSlot:
		return RoleSpell, true
	case id == CrystalSlot:
		return RoleCrystal, true
	case id == CentreSlot:
		return RoleCentre, true
	case id == UpgradeSlot:
		return RoleUpgrade, true
	case id >= PlayerInvStart && id < PlayerInvEnd:
		return RolePlayer, true
	}
	return 0, false
}

// RadialPositions returns count positions evenly spaced on a circle of the
// given radius around (cx, cy), starting at the top and going clockwise.
// Screen +y is downwards, hence -cos.
func RadialPositions(count, cx, cy, radius int) [][2]int {
	if count <= 0 {
		return nil
	}
	positions := make([][2]int, count)
	for i := range positions {
		angle := float64(i) * 2 * math.Pi / float64(count)
		x := cx + int(math.Round(float64(radius)*math.Sin(angle)))
		y := cy + int(math.Round(float64(radius)*-math.Cos(angle)))
		positions[i] = [2]int{x, y}
	}
	return positions
}

// SlotPosition returns the GUI position of a fixed station slot and whether
// it is currently visible. Spell slots beyond the centre item's declared
// count are hidden; the three single-purpose slots are always visible.
func (c *Container) SlotPosition(id int) (x, y int, visible bool) {
	switch {
	case id >= 0 && id < CrystalSlot:
		if id >= c.visibleSpellSlots {
			return hiddenPos, hiddenPos, false
		}
		p := c.spellSlotPos[id]
		return p[0], p[1], true
	case id == CrystalSlot:
		return crystalPos[0], crystalPos[1], true
	case id == CentreSlot:
		return centrePos[0], centrePos[1], true
	case id == UpgradeSlot:
		return upgradePos[0], upgradePos[1], true
	case id >= PlayerInvStart && id < PlayerInvEnd:
		i := id - PlayerInvStart
		if i < 9 { // hotbar row
			return 8 + i*18, 196, true
		}
		i -= 9
		return 8 + (i%9)*18, 138 + (i/9)*18, true
	}
	return hiddenPos, hiddenPos, false
}
