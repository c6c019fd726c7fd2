package inventory

import (
	"errors"
	"fmt"

	"github.com/cory-johannsen/paperdoll/internal/game/catalog"
)

// Rejection outcomes. Every operation that returns one of these leaves the
// State untouched.
var (
	// ErrNotWearable is returned when a non-clothing or slotless item targets Equipped.
	ErrNotWearable = errors.New("item is not wearable")
	// ErrSlotOccupied is returned when the target body slot is held by a different item.
	ErrSlotOccupied = errors.New("body slot already occupied")
	// ErrSameItem is returned when the body slot is held by the identical item.
	ErrSameItem = errors.New("already wearing that item")
	// ErrEquipmentFull is returned when no equipped slot is empty.
	ErrEquipmentFull = errors.New("equipment is full")
	// ErrInventoryFull is returned when no inventory slot is empty.
	ErrInventoryFull = errors.New("inventory is full")
	// ErrItemMissing is returned when the source location holds nothing or the item is unknown.
	ErrItemMissing = errors.New("item missing")
	// ErrInvalidLocation is returned for an unknown area or out-of-range index.
	ErrInvalidLocation = errors.New("invalid location")
	// ErrStaleReplacement is returned when a captured replacement no longer matches live state.
	ErrStaleReplacement = errors.New("replacement no longer applies")
	// ErrNotUsable is returned when using an item that is not usable from its location.
	ErrNotUsable = errors.New("item cannot be used")
	// ErrNoItems is returned when creating a set with nothing equipped.
	ErrNoItems = errors.New("nothing equipped")
	// ErrSetNotFound is returned for an unknown set ID.
	ErrSetNotFound = errors.New("item set not found")
)

// ConflictError reports that placing ItemID into Equipped collides with the
// item already worn at ConflictIndex. Replacement is non-nil when the
// collision can be resolved by swapping; it is an immutable snapshot.
type ConflictError struct {
	ItemID        string
	Slot          catalog.BodySlot
	ConflictIndex int
	ConflictItem  string
	Replacement   *Replacement
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: %q conflicts with %q at eq[%d] on %s",
		ErrSlotOccupied, e.ItemID, e.ConflictItem, e.ConflictIndex, e.Slot)
}

// Unwrap allows errors.Is(err, ErrSlotOccupied).
func (e *ConflictError) Unwrap() error { return ErrSlotOccupied }

// CapacityError reports a bulk move that needs more empty slots than exist.
type CapacityError struct {
	Area      Area
	Needed    int
	Available int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%s: %d item(s) need room but %s has %d empty slot(s)",
		e.Unwrap(), e.Needed, e.Area, e.Available)
}

// Unwrap maps the capacity failure onto the matching sentinel.
func (e *CapacityError) Unwrap() error {
	if e.Area == AreaEquipped {
		return ErrEquipmentFull
	}
	return ErrInventoryFull
}
