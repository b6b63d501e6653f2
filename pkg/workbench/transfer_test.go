package workbench

import (
	"testing"
)

func TestQuickMoveBookToSpellSlots(t *testing.T) {
	shelf := newTestInv(4)
	shelf.slots[0] = Stack{ID: bookFire, Count: 1}
	c, station, player, _ := newTestContainer(shelf)
	c.SetSlot(CentreSlot, Stack{ID: wand, Count: 1})

	before := totalCount(station, player, shelf)

	moved := c.QuickMove(PlayerInvEnd) // the shelf's first slot
	if moved.IsEmpty() {
		t.Fatal("QuickMove reported nothing moved")
	}
	if got := c.Slot(0); got.ID != bookFire || got.Count != 1 {
		t.Errorf("spell slot 0 = %+v, want the book", got)
	}
	if !shelf.slots[0].IsEmpty() {
		t.Error("origin shelf slot not cleared")
	}
	if got := totalCount(station, player, shelf); got != before {
		t.Errorf("total count = %d, want %d", got, before)
	}
}

func TestQuickMoveBookWithoutWandGoesToPlayer(t *testing.T) {
	shelf := newTestInv(2)
	shelf.slots[0] = Stack{ID: bookFire, Count: 1}
	c, _, player, _ := newTestContainer(shelf)

	if c.QuickMove(PlayerInvEnd).IsEmpty() {
		t.Fatal("QuickMove reported nothing moved")
	}
	// reverse merge: the highest player slot fills first
	if got := player.slots[PlayerInvSize-1]; got.ID != bookFire {
		t.Errorf("player slot %d = %+v, want the book (reverse fill)", PlayerInvSize-1, got)
	}
}

func TestQuickMoveSpellRangeRespectsDeclaredCount(t *testing.T) {
	shelf := newTestInv(1)
	shelf.slots[0] = Stack{ID: bookIce, Count: 1}
	c, station, player, _ := newTestContainer(shelf)
	c.SetSlot(CentreSlot, Stack{ID: wand, Count: 1}) // 3 slots

	for i := 0; i < 3; i++ {
		station.SetStack(i, Stack{ID: bookFire, Count: 1})
	}

	if c.QuickMove(PlayerInvEnd).IsEmpty() {
		t.Fatal("QuickMove reported nothing moved")
	}
	for i := 3; i < MaxSpellSlots; i++ {
		if !c.Slot(i).IsEmpty() {
			t.Errorf("spell slot %d = %+v, want empty (beyond declared range)", i, c.Slot(i))
		}
	}
	// full spell range: the book falls through to the player inventory
	if got := player.slots[PlayerInvSize-1]; got.ID != bookIce {
		t.Errorf("player slot %d = %+v, want the ice book", PlayerInvSize-1, got)
	}
}

func TestQuickMoveCrystalFromPlayerTopsUp(t *testing.T) {
	c, station, player, _ := newTestContainer()
	station.SetStack(CrystalSlot, Stack{ID: crystal, Count: 60})
	player.SetStack(4, Stack{ID: crystal, Count: 10})

	if c.QuickMove(PlayerInvStart + 4).IsEmpty() {
		t.Fatal("QuickMove reported nothing moved")
	}
	if got := c.Slot(CrystalSlot); got.Count != 64 {
		t.Errorf("crystal slot count = %d, want 64 (slot cap)", got.Count)
	}
	// the remainder stays in the origin slot
	if got := player.slots[4]; got.ID != crystal || got.Count != 6 {
		t.Errorf("origin slot = %+v, want 6 crystals left", got)
	}
}

func TestQuickMoveUpgradeSlotHoldsOne(t *testing.T) {
	c, _, player, _ := newTestContainer()
	player.SetStack(0, Stack{ID: tome, Count: 2})

	if c.QuickMove(PlayerInvStart).IsEmpty() {
		t.Fatal("QuickMove reported nothing moved")
	}
	if got := c.Slot(UpgradeSlot); got.ID != tome || got.Count != 1 {
		t.Errorf("upgrade slot = %+v, want a single tome", got)
	}
	if got := player.slots[0]; got.Count != 1 {
		t.Errorf("origin slot = %+v, want 1 tome left", got)
	}
}

func TestQuickMoveWandIntoCentreShowsSlots(t *testing.T) {
	c, _, player, _ := newTestContainer()
	player.SetStack(7, Stack{ID: wand, Count: 1})

	if c.QuickMove(PlayerInvStart + 7).IsEmpty() {
		t.Fatal("QuickMove reported nothing moved")
	}
	if got := c.Slot(CentreSlot); got.ID != wand {
		t.Fatalf("centre slot = %+v, want the wand", got)
	}
	if c.VisibleSpellSlots() != 3 {
		t.Errorf("visible spell slots = %d after the wand arrived, want 3", c.VisibleSpellSlots())
	}
}

func TestQuickMoveStationToBookshelves(t *testing.T) {
	shelf := newTestInv(2)
	c, station, _, _ := newTestContainer(shelf)
	station.SetStack(CrystalSlot, Stack{ID: crystal, Count: 5})

	if c.QuickMove(CrystalSlot).IsEmpty() {
		t.Fatal("QuickMove reported nothing moved")
	}
	if got := shelf.slots[0]; got.ID != crystal || got.Count != 5 {
		t.Errorf("shelf slot 0 = %+v, want the crystals", got)
	}
	if !c.Slot(CrystalSlot).IsEmpty() {
		t.Error("origin crystal slot not cleared")
	}
}

func TestQuickMoveStationFallsBackToPlayer(t *testing.T) {
	// bookshelf rejects everything, so the stack must land in the player
	// inventory instead
	shelf := newTestInv(2)
	shelf.accepts = func(int, Stack) bool { return false }
	c, station, player, _ := newTestContainer(shelf)
	station.SetStack(UpgradeSlot, Stack{ID: tome, Count: 1})

	if c.QuickMove(UpgradeSlot).IsEmpty() {
		t.Fatal("QuickMove reported nothing moved")
	}
	if got := player.slots[PlayerInvSize-1]; got.ID != tome {
		t.Errorf("player slot %d = %+v, want the tome", PlayerInvSize-1, got)
	}
}

func TestQuickMoveNothingMovesIsNoOp(t *testing.T) {
	// a stack matching no predicate, with a full player inventory and a
	// bookshelf that rejects it: the engine must report nothing moved and
	// leave every slot untouched
	shelf := newTestInv(3)
	shelf.accepts = func(int, Stack) bool { return false }
	shelf.slots[0] = Stack{ID: junk, Count: 7}

	c, station, player, _ := newTestContainer(shelf)
	for i := range player.slots {
		player.slots[i] = Stack{ID: junk, Count: 16} // at max stack size
	}

	stationBefore := append([]Stack(nil), station.slots...)
	playerBefore := append([]Stack(nil), player.slots...)
	shelfBefore := append([]Stack(nil), shelf.slots...)

	for attempt := 0; attempt < 3; attempt++ {
		if moved := c.QuickMove(PlayerInvEnd); !moved.IsEmpty() {
			t.Fatalf("attempt %d: QuickMove = %+v, want nothing moved", attempt, moved)
		}
	}

	for i, s := range station.slots {
		if s != stationBefore[i] {
			t.Errorf("station slot %d changed: %+v -> %+v", i, stationBefore[i], s)
		}
	}
	for i, s := range player.slots {
		if s != playerBefore[i] {
			t.Errorf("player slot %d changed: %+v -> %+v", i, playerBefore[i], s)
		}
	}
	for i, s := range shelf.slots {
		if s != shelfBefore[i] {
			t.Errorf("shelf slot %d changed: %+v -> %+v", i, shelfBefore[i], s)
		}
	}
}

func TestQuickMoveEmptySlot(t *testing.T) {
	c, _, _, _ := newTestContainer()
	if moved := c.QuickMove(CentreSlot); !moved.IsEmpty() {
		t.Errorf("QuickMove on an empty slot = %+v, want empty", moved)
	}
	if moved := c.QuickMove(PlayerInvEnd + 99); !moved.IsEmpty() {
		t.Errorf("QuickMove on an unknown id = %+v, want empty", moved)
	}
}

func TestMergeTopsUpBeforeFillingEmpties(t *testing.T) {
	shelf := newTestInv(3)
	shelf.slots[2] = Stack{ID: bookFire, Count: 2} // partial stack, max 16

	c, _, player, _ := newTestContainer(shelf)
	player.SetStack(0, Stack{ID: bookFire, Count: 3})

	if c.QuickMove(PlayerInvStart).IsEmpty() {
		t.Fatal("QuickMove reported nothing moved")
	}
	if got := shelf.slots[2]; got.Count != 5 {
		t.Errorf("partial stack count = %d, want 5 (topped up first)", got.Count)
	}
	if !shelf.slots[0].IsEmpty() {
		t.Errorf("empty slot filled although the partial stack had room")
	}
}

func TestConservationAcrossMixedMoves(t *testing.T) {
	shelf := newTestInv(6)
	shelf.slots[1] = Stack{ID: bookFire, Count: 1}
	shelf.slots[4] = Stack{ID: bookIce, Count: 1}

	c, station, player, _ := newTestContainer(shelf)
	station.SetStack(CrystalSlot, Stack{ID: crystal, Count: 30})
	player.SetStack(3, Stack{ID: crystal, Count: 50})
	c.SetSlot(CentreSlot, Stack{ID: wand, Count: 1})

	before := totalCount(station, player, shelf)

	c.QuickMove(PlayerInvEnd + 1)   // book -> spell slot
	c.QuickMove(PlayerInvStart + 3) // crystals -> crystal slot, partial
	c.QuickMove(CrystalSlot)        // crystals -> bookshelf
	c.QuickMove(0)                  // spell book back out
	c.QuickMove(CentreSlot)         // wand -> bookshelf
	c.QuickMove(PlayerInvEnd + 999) // unknown id, no-op

	if got := totalCount(station, player, shelf); got != before {
		t.Errorf("total count = %d after mixed moves, want %d", got, before)
	}
}
