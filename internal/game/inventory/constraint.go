package inventory

import (
	"fmt"

	"github.com/cory-johannsen/paperdoll/internal/game/catalog"
)

// VerdictKind classifies an attempted placement into Equipped.
type VerdictKind int

// Verdicts.
const (
	VerdictOK VerdictKind = iota
	VerdictNotWearable
	VerdictSameItem
	VerdictSlotOccupied
)

func (k VerdictKind) String() string {
	switch k {
	case VerdictOK:
		return "ok"
	case VerdictNotWearable:
		return "not_wearable"
	case VerdictSameItem:
		return "same_item"
	case VerdictSlotOccupied:
		return "slot_occupied"
	}
	return "unknown"
}

// Verdict is the result of checking one item against the equipped collection.
type Verdict struct {
	Kind          VerdictKind
	Slot          catalog.BodySlot
	ConflictIndex int
	ConflictItem  string
}

// Check classifies placing id into Equipped without mutating anything. The
// equipped position ignore (or -1) is excluded from the body-slot search
// because it is the position being overwritten or vacated.
//
// Postcondition: ConflictIndex is -1 unless Kind is VerdictSameItem or VerdictSlotOccupied.
func (s *Store) Check(id string, ignore int) Verdict {
	item, ok := s.lookup(id)
	if !ok {
		return Verdict{Kind: VerdictNotWearable, ConflictIndex: -1}
	}
	c, ok := catalog.Wearable(item)
	if !ok {
		return Verdict{Kind: VerdictNotWearable, ConflictIndex: -1}
	}
	for i, worn := range s.state.Equipped {
		if i == ignore || worn == "" {
			continue
		}
		if catalog.SlotOf(s.catalog, worn) != c.Slot {
			continue
		}
		kind := VerdictSlotOccupied
		if worn == id {
			kind = VerdictSameItem
		}
		return Verdict{Kind: kind, Slot: c.Slot, ConflictIndex: i, ConflictItem: worn}
	}
	return Verdict{Kind: VerdictOK, Slot: c.Slot, ConflictIndex: -1}
}

func (s *Store) lookup(id string) (catalog.Item, bool) {
	if s.catalog == nil || id == "" {
		return nil, false
	}
	return s.catalog.Get(id)
}

func (s *Store) wearable(id string) bool {
	item, ok := s.lookup(id)
	if !ok {
		return false
	}
	_, ok = catalog.Wearable(item)
	return ok
}

// verdictErr converts a rejecting verdict for id into its error. source is
// the location id would come from; it is used to build the replacement.
func verdictErr(v Verdict, id string, source Location) error {
	switch v.Kind {
	case VerdictNotWearable:
		return fmt.Errorf("%w: %q", ErrNotWearable, id)
	case VerdictSameItem:
		return fmt.Errorf("%w: %q", ErrSameItem, id)
	case VerdictSlotOccupied:
		return &ConflictError{
			ItemID:        id,
			Slot:          v.Slot,
			ConflictIndex: v.ConflictIndex,
			ConflictItem:  v.ConflictItem,
			Replacement: &Replacement{
				Kind:          ReplaceEquip,
				Source:        source,
				SourceItem:    id,
				ConflictIndex: v.ConflictIndex,
				ConflictItem:  v.ConflictItem,
			},
		}
	}
	return nil
}
