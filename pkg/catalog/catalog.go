// Package catalog implements the workbench's item capability collaborator: a
// registry of item definitions keyed by numeric item ID. Items are registered
// by registry name; names known to the vanilla item registry keep their
// registry ID (via go-mclib/data), modded names get synthetic IDs above the
// vanilla range.
package catalog

import (
	"cmp"
	"strings"

	"github.com/go-mclib/data/pkg/data/items"
	"github.com/sahilm/fuzzy"

	"github.com/go-mclib/workbench/pkg/workbench"
)

// Kind classifies an item for the workbench's slot predicates.
type Kind int

const (
	KindOther Kind = iota
	KindSpellBook
	KindCrystal
	KindWand
	KindUpgrade
)

// Item is one catalog definition.
type Item struct {
	// Name is the registry name, e.g. "ebwizardry:spell_book".
	Name string
	Kind Kind
	// Tier and Element order spell books under the corresponding sort keys.
	Tier    int
	Element string
	// Spell is the display and search descriptor; empty falls back to Name.
	Spell string
	// SpellSlots is the slot count a wand declares. Wands only.
	SpellSlots int
	// MaxStack caps a single slot; zero means the default of 64.
	MaxStack int
}

const syntheticIDBase = 1 << 20 // well above the vanilla item registry

// Catalog maps item IDs to definitions and implements workbench.ItemCaps.
type Catalog struct {
	byID   map[int32]Item
	nextID int32
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{byID: make(map[int32]Item), nextID: syntheticIDBase}
}

// Register adds an item definition and returns the numeric ID assigned to it.
func (c *Catalog) Register(it Item) int32 {
	id := items.ItemID(it.Name)
	if id < 0 {
		id = c.nextID
		c.nextID++
	}
	c.byID[id] = it
	return id
}

func (c *Catalog) lookup(s workbench.Stack) (Item, bool) {
	it, ok := c.byID[s.ID]
	return it, ok
}

func (c *Catalog) isKind(s workbench.Stack, k Kind) bool {
	it, ok := c.lookup(s)
	return ok && it.Kind == k
}

// IsSpellBook implements workbench.ItemCaps.
func (c *Catalog) IsSpellBook(s workbench.Stack) bool { return c.isKind(s, KindSpellBook) }

// IsCrystal implements workbench.ItemCaps.
func (c *Catalog) IsCrystal(s workbench.Stack) bool { return c.isKind(s, KindCrystal) }

// IsWand implements workbench.ItemCaps.
func (c *Catalog) IsWand(s workbench.Stack) bool { return c.isKind(s, KindWand) }

// IsUpgrade implements workbench.ItemCaps.
func (c *Catalog) IsUpgrade(s workbench.Stack) bool { return c.isKind(s, KindUpgrade) }

// SpellSlotCount implements workbench.ItemCaps.
func (c *Catalog) SpellSlotCount(s workbench.Stack) int {
	it, ok := c.lookup(s)
	if !ok || it.Kind != KindWand {
		return 0
	}
	return it.SpellSlots
}

// MaxStackSize implements workbench.ItemCaps.
func (c *Catalog) MaxStackSize(s workbench.Stack) int {
	if it, ok := c.lookup(s); ok && it.MaxStack > 0 {
		return it.MaxStack
	}
	return 64
}

// DisplayName returns the descriptor shown in the GUI and matched by search:
// the spell name for spell books, the registry name otherwise, falling back
// to the vanilla item name for stacks the catalog does not know.
func (c *Catalog) DisplayName(s workbench.Stack) string {
	if it, ok := c.lookup(s); ok {
		if it.Spell != "" {
			return it.Spell
		}
		return it.Name
	}
	if name := items.ItemName(s.ID); name != "" {
		return name
	}
	return "unknown"
}

// Compare implements workbench.ItemCaps. Ties are not broken here; the
// container's stable sort keeps discovery order for equal keys.
func (c *Catalog) Compare(a, b workbench.Stack, by workbench.SortType) int {
	ia, _ := c.lookup(a)
	ib, _ := c.lookup(b)
	switch by {
	case workbench.SortTier:
		return cmp.Compare(ia.Tier, ib.Tier)
	case workbench.SortElement:
		return strings.Compare(ia.Element, ib.Element)
	default:
		return strings.Compare(c.DisplayName(a), c.DisplayName(b))
	}
}

// Matches implements workbench.ItemCaps using fuzzy matching against the
// display name. The empty query matches everything.
func (c *Catalog) Matches(s workbench.Stack, query string) bool {
	query = strings.TrimSpace(query)
	if query == "" {
		return true
	}
	return len(fuzzy.Find(query, []string{c.DisplayName(s)})) > 0
}

// Apply implements workbench.ItemCaps: the spell-binding action. Each spell
// book in a declared spell slot is bound onto the wand at the cost of one
// crystal; an upgrade in the upgrade slot is consumed. Returns true if
// anything changed. A non-wand centre item is a no-op.
func (c *Catalog) Apply(centre, crystal, upgrade workbench.SlotRef, spells []workbench.SlotRef) bool {
	wand := centre.Stack()
	it, ok := c.lookup(wand)
	if !ok || it.Kind != KindWand {
		return false
	}

	changed := false

	n := it.SpellSlots
	if n > len(spells) {
		n = len(spells)
	}
	cost := crystal.Stack()
	for _, slot := range spells[:n] {
		book := slot.Stack()
		if book.IsEmpty() || !c.IsSpellBook(book) {
			continue
		}
		if cost.IsEmpty() || !c.IsCrystal(cost) {
			break
		}
		cost.Count--
		slot.SetStack(workbench.Stack{})
		changed = true
	}
	if changed {
		if cost.Count <= 0 {
			cost = workbench.Stack{}
		}
		crystal.SetStack(cost)
	}

	if up := upgrade.Stack(); !up.IsEmpty() && c.IsUpgrade(up) {
		up.Count--
		if up.Count <= 0 {
			up = workbench.Stack{}
		}
		upgrade.SetStack(up)
		changed = true
	}

	return changed
}
