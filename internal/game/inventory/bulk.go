package inventory

import (
	"sort"

	"github.com/cory-johannsen/paperdoll/internal/game/catalog"
)

// HeadToFeet is the body-slot order used when cleaning up Equipped. Slots not
// listed sort after every listed slot.
var HeadToFeet = []catalog.BodySlot{
	catalog.SlotOverHead,
	catalog.SlotHead,
	catalog.SlotFace,
	catalog.SlotNeck,
	catalog.SlotOverUpper,
	catalog.SlotUpper,
	catalog.SlotUnderUpper,
	catalog.SlotHands,
	catalog.SlotLower,
	catalog.SlotUnderLower,
	catalog.SlotLegs,
	catalog.SlotFeet,
}

// SlotRank returns the position of slot in HeadToFeet, or len(HeadToFeet).
func SlotRank(slot catalog.BodySlot) int {
	for i, s := range HeadToFeet {
		if s == slot {
			return i
		}
	}
	return len(HeadToFeet)
}

// SortHeadToFeet stably orders ids by the body slot each resolves to.
func SortHeadToFeet(cat catalog.Getter, ids []string) {
	sort.SliceStable(ids, func(i, j int) bool {
		return SlotRank(catalog.SlotOf(cat, ids[i])) < SlotRank(catalog.SlotOf(cat, ids[j]))
	})
}

// CleanUpEquipped sorts the worn items head to feet and packs them at the front.
func (s *Store) CleanUpEquipped() error {
	return s.mutate("CleanUpEquipped", func() error {
		items := s.state.Equipped.Items()
		SortHeadToFeet(s.catalog, items)
		s.state.Equipped = packed(items, len(s.state.Equipped))
		return nil
	})
}

// CleanUpInventory packs inventory items at the front, keeping their order.
func (s *Store) CleanUpInventory() error {
	return s.mutate("CleanUpInventory", func() error {
		s.state.Inventory = packed(s.state.Inventory.Items(), len(s.state.Inventory))
		return nil
	})
}

// CleanUpWardrobe compacts the wardrobe.
func (s *Store) CleanUpWardrobe() error {
	return s.mutate("CleanUpWardrobe", func() error {
		s.wardrobe.Compact()
		return nil
	})
}

func packed(items []string, size int) Slots {
	out := make(Slots, size)
	copy(out, items)
	return out
}

// UnequipAll moves every worn item into the inventory. When the inventory
// cannot take all of them nothing moves and a *CapacityError is returned; the
// caller may offer UnequipAllToWardrobe instead.
func (s *Store) UnequipAll() error {
	return s.mutate("UnequipAll", func() error {
		worn := s.state.Equipped.Occupied()
		if free := s.state.Inventory.Empty(); worn > free {
			return &CapacityError{Area: AreaInventory, Needed: worn, Available: free}
		}
		for i, id := range s.state.Equipped {
			if id == "" {
				continue
			}
			s.state.Inventory[s.state.Inventory.FirstEmpty()] = id
			s.state.Equipped[i] = ""
		}
		return nil
	})
}

// UnequipAllToWardrobe moves every worn item into the wardrobe.
func (s *Store) UnequipAllToWardrobe() error {
	return s.mutate("UnequipAllToWardrobe", func() error {
		for i, id := range s.state.Equipped {
			if id == "" {
				continue
			}
			s.wardrobe.Place(id)
			s.state.Equipped[i] = ""
		}
		return nil
	})
}

// SendInventoryToWardrobe moves every inventory item matching the active
// filter into the wardrobe and packs what remains.
//
// Postcondition: returns the number of items moved.
func (s *Store) SendInventoryToWardrobe() (int, error) {
	moved := 0
	err := s.mutate("SendInventoryToWardrobe", func() error {
		for i, id := range s.state.Inventory {
			if id == "" || !s.state.Filter.Matches(s.catalog, id) {
				continue
			}
			s.wardrobe.Place(id)
			s.state.Inventory[i] = ""
			moved++
		}
		s.state.Inventory = packed(s.state.Inventory.Items(), len(s.state.Inventory))
		return nil
	})
	return moved, err
}

// SendWardrobeToInventory moves wardrobe items matching the active filter
// into empty inventory slots until the inventory is full, then compacts the
// wardrobe.
//
// Postcondition: returns the number of items moved.
func (s *Store) SendWardrobeToInventory() (int, error) {
	moved := 0
	err := s.mutate("SendWardrobeToInventory", func() error {
		for i, id := range s.state.Wardrobe {
			if id == "" || !s.state.Filter.Matches(s.catalog, id) {
				continue
			}
			dst := s.state.Inventory.FirstEmpty()
			if dst < 0 {
				break
			}
			s.state.Inventory[dst] = id
			s.state.Wardrobe[i] = ""
			moved++
		}
		s.wardrobe.Compact()
		return nil
	})
	return moved, err
}

// SetFilter replaces the active filter.
func (s *Store) SetFilter(f Filter) error {
	return s.mutate("SetFilter", func() error {
		s.state.Filter = f.Clone()
		return nil
	})
}

// ToggleFilter flips one filter value.
func (s *Store) ToggleFilter(field FilterField, value string) error {
	return s.mutate("ToggleFilter", func() error {
		s.state.Filter.Toggle(field, value)
		return nil
	})
}

// ClearFilter deactivates the filter and packs inventory and wardrobe, which
// may have gaps left by filtered bulk moves.
func (s *Store) ClearFilter() error {
	return s.mutate("ClearFilter", func() error {
		s.state.Filter.Clear()
		s.state.Inventory = packed(s.state.Inventory.Items(), len(s.state.Inventory))
		s.wardrobe.Compact()
		return nil
	})
}

// Hidden reports whether loc is excluded from drag targeting by the active
// filter. Equipped is never hidden.
func (s *Store) Hidden(loc Location) bool {
	if loc.Area == AreaEquipped {
		return false
	}
	return !s.state.Filter.Matches(s.catalog, s.state.Get(loc))
}
