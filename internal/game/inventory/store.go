// Package inventory owns the paper-doll collections of a single character:
// equipped, inventory and wardrobe. Store is the only writer; every mutating
// operation is all-or-nothing and reports which collections changed to its
// subscribers.
package inventory

import (
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/cory-johannsen/paperdoll/internal/game/catalog"
)

// Change reports what a successful mutation touched.
type Change struct {
	Areas  []Area
	Sets   bool
	Filter bool
}

// Has reports whether area was modified.
func (c Change) Has(area Area) bool {
	return slices.Contains(c.Areas, area)
}

// Equipped reports whether the equipped collection was modified.
func (c Change) Equipped() bool {
	return c.Has(AreaEquipped)
}

// Empty reports whether nothing changed.
func (c Change) Empty() bool {
	return len(c.Areas) == 0 && !c.Sets && !c.Filter
}

// Store applies the slot constraints to a State and is its single writer.
//
// Store is not safe for concurrent use; callers serialize access.
type Store struct {
	state     *State
	layout    Layout
	catalog   catalog.Getter
	wardrobe  *Wardrobe
	logger    *zap.Logger
	listeners map[int]func(Change)
	nextID    int
}

// NewStore wraps state. The state is normalized to layout first; items it
// can no longer hold are moved to the wardrobe.
//
// Precondition: state and logger non-nil; layout valid.
// Postcondition: the returned Store is the owner of state's mutations and
// no two equipped items share a body slot.
func NewStore(state *State, layout Layout, cat catalog.Getter, logger *zap.Logger) *Store {
	overflow := state.Normalize(layout)
	s := &Store{
		state:     state,
		layout:    layout,
		catalog:   cat,
		wardrobe:  NewWardrobe(&state.Wardrobe, layout.RowWidth, layout.WardrobeMinRows),
		logger:    logger,
		listeners: make(map[int]func(Change)),
	}
	s.rehome(overflow)
	return s
}

// rehome sends overflow, plus every equipped item whose body slot is already
// taken by an earlier equipped item, to the wardrobe.
func (s *Store) rehome(overflow []string) {
	moved := overflow
	taken := make(map[catalog.BodySlot]bool)
	for i, id := range s.state.Equipped {
		slot := catalog.SlotOf(s.catalog, id)
		if slot == "" {
			continue
		}
		if taken[slot] {
			moved = append(moved, id)
			s.state.Equipped[i] = ""
			continue
		}
		taken[slot] = true
	}
	if len(moved) == 0 {
		return
	}
	for _, id := range moved {
		s.wardrobe.Place(id)
	}
	s.logger.Warn("inventory: loaded state did not fit, items moved to wardrobe",
		zap.Strings("items", moved),
		zap.Int("overflow", len(overflow)),
	)
}

// State returns the underlying aggregate. Callers must not mutate it directly.
func (s *Store) State() *State { return s.state }

// Layout returns the collection dimensions.
func (s *Store) Layout() Layout { return s.layout }

// Catalog returns the item lookup the store validates against.
func (s *Store) Catalog() catalog.Getter { return s.catalog }

// Wardrobe returns the wardrobe capacitor. Direct calls on it bypass change
// notification and are intended for tests and seeding.
func (s *Store) Wardrobe() *Wardrobe { return s.wardrobe }

// Get returns the item at loc or "".
func (s *Store) Get(loc Location) string { return s.state.Get(loc) }

// Subscribe registers fn to receive every non-empty Change.
//
// Postcondition: the returned func removes the subscription.
func (s *Store) Subscribe(fn func(Change)) func() {
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	return func() { delete(s.listeners, id) }
}

// mutate runs fn against the live state. On error every collection is
// restored; on success subscribers receive the computed Change.
func (s *Store) mutate(op string, fn func() error) error {
	before := s.state.Clone()
	if err := fn(); err != nil {
		s.state.Equipped = before.Equipped
		s.state.Inventory = before.Inventory
		s.state.Wardrobe = before.Wardrobe
		s.state.Sets = before.Sets
		s.state.Filter = before.Filter
		s.logger.Debug("inventory: rejected",
			zap.String("op", op),
			zap.Error(err),
		)
		return err
	}
	change := diff(before, s.state)
	if change.Empty() {
		return nil
	}
	s.logger.Debug("inventory: mutated",
		zap.String("op", op),
		zap.Any("areas", change.Areas),
		zap.Bool("sets", change.Sets),
		zap.Bool("filter", change.Filter),
	)
	for _, id := range sortedKeys(s.listeners) {
		s.listeners[id](change)
	}
	return nil
}

func diff(before, after *State) Change {
	var c Change
	if !slices.Equal(before.Equipped, after.Equipped) {
		c.Areas = append(c.Areas, AreaEquipped)
	}
	if !slices.Equal(before.Inventory, after.Inventory) {
		c.Areas = append(c.Areas, AreaInventory)
	}
	if !slices.Equal(before.Wardrobe, after.Wardrobe) {
		c.Areas = append(c.Areas, AreaWardrobe)
	}
	c.Sets = !slices.EqualFunc(before.Sets, after.Sets, func(a, b ItemSet) bool { return a.equal(b) })
	c.Filter = !before.Filter.equal(after.Filter)
	return c
}

func sortedKeys(m map[int]func(Change)) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// checkLocation validates loc. When grow is true a wardrobe index may reach
// into the one row a drop is allowed to add, and no further.
func (s *Store) checkLocation(loc Location, grow bool) error {
	slots := s.state.Slots(loc.Area)
	if slots == nil || loc.Index < 0 {
		return fmt.Errorf("%w: %s", ErrInvalidLocation, loc)
	}
	limit := len(*slots)
	if grow && loc.Area == AreaWardrobe {
		limit += s.layout.RowWidth
	}
	if loc.Index >= limit {
		return fmt.Errorf("%w: %s", ErrInvalidLocation, loc)
	}
	return nil
}

func (s *Store) set(loc Location, id string) {
	if loc.Area == AreaWardrobe {
		s.wardrobe.fit(loc.Index)
	}
	(*s.state.Slots(loc.Area))[loc.Index] = id
}

// Place writes id at loc, overwriting whatever was there. Placement into
// Equipped is checked against the body-slot constraint, excluding loc itself.
//
// Postcondition: on success returns the overwritten ID ("" if none).
func (s *Store) Place(loc Location, id string) (string, error) {
	if err := s.checkLocation(loc, true); err != nil {
		return "", err
	}
	if _, ok := s.lookup(id); !ok {
		return "", fmt.Errorf("%w: %q", ErrItemMissing, id)
	}
	displaced := s.state.Get(loc)
	err := s.mutate("Place", func() error {
		if loc.Area == AreaEquipped {
			if err := verdictErr(s.Check(id, loc.Index), id, Location{}); err != nil {
				return withoutReplacement(err)
			}
		}
		s.set(loc, id)
		if loc.Area == AreaWardrobe {
			s.wardrobe.EnsureHasEmptyRow()
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return displaced, nil
}

// Place has no source location, so a conflict cannot be resolved by swapping.
func withoutReplacement(err error) error {
	if ce, ok := err.(*ConflictError); ok {
		ce.Replacement = nil
	}
	return err
}

// Remove takes the item at loc out of its collection. An equipped item is
// relocated to the first empty inventory slot; if none is free ErrInventoryFull
// is returned and the caller may offer RemoveToWardrobe instead. Items removed
// from inventory or wardrobe leave the collections; the wardrobe is compacted.
//
// Postcondition: returns the removed item ID.
func (s *Store) Remove(loc Location) (string, error) {
	if err := s.checkLocation(loc, false); err != nil {
		return "", err
	}
	id := s.state.Get(loc)
	if id == "" {
		return "", fmt.Errorf("%w: %s is empty", ErrItemMissing, loc)
	}
	err := s.mutate("Remove", func() error {
		switch loc.Area {
		case AreaEquipped:
			dst := s.state.Inventory.FirstEmpty()
			if dst < 0 {
				return ErrInventoryFull
			}
			s.state.Inventory[dst] = id
			s.state.Equipped[loc.Index] = ""
		case AreaInventory:
			s.state.Inventory[loc.Index] = ""
		case AreaWardrobe:
			s.state.Wardrobe[loc.Index] = ""
			s.wardrobe.Compact()
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// RemoveToWardrobe unequips the item at Equipped index into the wardrobe.
func (s *Store) RemoveToWardrobe(index int) error {
	loc := Location{Area: AreaEquipped, Index: index}
	if err := s.checkLocation(loc, false); err != nil {
		return err
	}
	id := s.state.Equipped[index]
	if id == "" {
		return fmt.Errorf("%w: %s is empty", ErrItemMissing, loc)
	}
	return s.mutate("RemoveToWardrobe", func() error {
		s.state.Equipped[index] = ""
		s.wardrobe.Place(id)
		return nil
	})
}

// MoveBetween commits a drag from one location to another.
//
// Moves within Equipped are plain swaps. Moves into Equipped are checked
// against the body-slot constraint; a conflict is returned as a
// *ConflictError carrying a Replacement. Moving an equipped item onto a
// non-wearable item first evicts that item to an empty slot of the
// destination collection so nothing unwearable ever lands in Equipped.
//
// Postcondition: on error the State is unchanged.
func (s *Store) MoveBetween(from, to Location) error {
	if err := s.checkLocation(from, false); err != nil {
		return err
	}
	if err := s.checkLocation(to, true); err != nil {
		return err
	}
	if from == to {
		return nil
	}
	item := s.state.Get(from)
	if item == "" {
		return fmt.Errorf("%w: %s is empty", ErrItemMissing, from)
	}
	dest := s.state.Get(to)

	return s.mutate("MoveBetween", func() error {
		switch {
		case from.Area == AreaEquipped && to.Area == AreaEquipped:
			s.state.Equipped[from.Index], s.state.Equipped[to.Index] = dest, item
			return nil
		case to.Area == AreaEquipped:
			return s.moveIntoEquipped(from, to.Index, item, dest)
		case from.Area == AreaEquipped:
			return s.moveOutOfEquipped(from.Index, to, item, dest)
		default:
			s.set(to, item)
			s.set(from, dest)
			s.settleWardrobe(from, to)
			return nil
		}
	})
}

func (s *Store) moveIntoEquipped(from Location, index int, item, displaced string) error {
	if err := verdictErr(s.Check(item, index), item, from); err != nil {
		return err
	}
	s.state.Equipped[index] = item
	s.set(from, displaced)
	s.settleWardrobe(from, Location{Area: AreaEquipped, Index: index})
	return nil
}

func (s *Store) moveOutOfEquipped(index int, to Location, item, dest string) error {
	src := Location{Area: AreaEquipped, Index: index}
	switch {
	case dest == "":
		s.set(to, item)
		s.state.Equipped[index] = ""
	case !s.wearable(dest):
		if err := s.evict(to, dest); err != nil {
			return err
		}
		s.set(to, item)
		s.state.Equipped[index] = ""
	default:
		v := s.Check(dest, index)
		switch v.Kind {
		case VerdictSameItem:
			return ErrSameItem
		case VerdictSlotOccupied:
			return &ConflictError{
				ItemID:        dest,
				Slot:          v.Slot,
				ConflictIndex: v.ConflictIndex,
				ConflictItem:  v.ConflictItem,
				Replacement: &Replacement{
					Kind:          ReplaceViaSwap,
					Source:        src,
					SourceItem:    item,
					Target:        to,
					TargetItem:    dest,
					ConflictIndex: v.ConflictIndex,
					ConflictItem:  v.ConflictItem,
				},
			}
		}
		s.state.Equipped[index] = dest
		s.set(to, item)
	}
	s.settleWardrobe(src, to)
	return nil
}

// evict moves the item at loc to another empty slot of the same collection.
// A full wardrobe grows by a row; a full inventory is an error.
func (s *Store) evict(loc Location, id string) error {
	slots := s.state.Slots(loc.Area)
	dst := slots.FirstEmptyExcept(loc.Index)
	if dst < 0 {
		if loc.Area != AreaWardrobe {
			return ErrInventoryFull
		}
		s.wardrobe.ExpandOneRow()
		dst = s.state.Wardrobe.FirstEmptyExcept(loc.Index)
	}
	(*slots)[dst] = id
	(*slots)[loc.Index] = ""
	return nil
}

// settleWardrobe compacts the wardrobe after an item leaves it for another
// collection and keeps a spare row after an item arrives from elsewhere.
func (s *Store) settleWardrobe(from, to Location) {
	switch {
	case from.Area == AreaWardrobe && to.Area != AreaWardrobe:
		s.wardrobe.Compact()
	case to.Area == AreaWardrobe && from.Area != AreaWardrobe:
		s.wardrobe.EnsureHasEmptyRow()
	}
}

// ApplyReplace resolves a conflict previously reported by a *ConflictError.
// Every position captured in r must still hold the captured item and the
// live constraint check must still report the captured conflict; otherwise
// ErrStaleReplacement is returned and nothing changes.
func (s *Store) ApplyReplace(r Replacement) error {
	return s.mutate("ApplyReplace", func() error {
		if err := s.checkLocation(r.Source, false); err != nil {
			return fmt.Errorf("%w: %v", ErrStaleReplacement, err)
		}
		if s.state.Get(Location{Area: AreaEquipped, Index: r.ConflictIndex}) != r.ConflictItem || r.ConflictItem == "" {
			return ErrStaleReplacement
		}
		if s.state.Get(r.Source) != r.SourceItem || r.SourceItem == "" {
			return ErrStaleReplacement
		}
		switch r.Kind {
		case ReplaceEquip:
			return s.replaceEquip(r)
		case ReplaceViaSwap:
			return s.replaceViaSwap(r)
		}
		return fmt.Errorf("%w: unknown kind %q", ErrStaleReplacement, r.Kind)
	})
}

// conflictsAt reports whether the live check for id, ignoring position
// ignore, is a slot conflict with exactly the captured index and item.
func (s *Store) conflictsAt(id string, ignore int, r Replacement) bool {
	v := s.Check(id, ignore)
	return v.Kind == VerdictSlotOccupied && v.ConflictIndex == r.ConflictIndex && v.ConflictItem == r.ConflictItem
}

func (s *Store) replaceEquip(r Replacement) error {
	if r.Source.Area == AreaEquipped {
		return ErrStaleReplacement
	}
	if !s.conflictsAt(r.SourceItem, -1, r) {
		return ErrStaleReplacement
	}
	if v := s.Check(r.SourceItem, r.ConflictIndex); v.Kind != VerdictOK {
		return ErrStaleReplacement
	}
	s.state.Equipped[r.ConflictIndex] = r.SourceItem
	s.set(r.Source, r.ConflictItem)
	s.settleWardrobe(r.Source, Location{Area: AreaEquipped})
	return nil
}

func (s *Store) replaceViaSwap(r Replacement) error {
	if r.Source.Area != AreaEquipped || r.Target.Area == AreaEquipped || r.ConflictIndex == r.Source.Index {
		return ErrStaleReplacement
	}
	if err := s.checkLocation(r.Target, false); err != nil {
		return fmt.Errorf("%w: %v", ErrStaleReplacement, err)
	}
	if s.state.Get(r.Target) != r.TargetItem || r.TargetItem == "" {
		return ErrStaleReplacement
	}
	if !s.conflictsAt(r.TargetItem, r.Source.Index, r) {
		return ErrStaleReplacement
	}
	s.state.Equipped[r.ConflictIndex] = ""
	if v := s.Check(r.TargetItem, r.Source.Index); v.Kind != VerdictOK {
		return ErrStaleReplacement
	}
	s.state.Equipped[r.Source.Index] = r.TargetItem
	s.set(r.Target, r.SourceItem)

	if r.Target.Area == AreaInventory {
		if dst := s.state.Inventory.FirstEmpty(); dst >= 0 {
			s.state.Inventory[dst] = r.ConflictItem
			return nil
		}
	}
	s.wardrobe.Place(r.ConflictItem)
	return nil
}
