package inventory

import (
	"encoding/json"
	"fmt"
)

// Area names one of the three collections.
type Area string

// Collections.
const (
	AreaEquipped  Area = "eq"
	AreaInventory Area = "inv"
	AreaWardrobe  Area = "wardrobe"
)

// Valid reports whether a is a known collection.
func (a Area) Valid() bool {
	switch a {
	case AreaEquipped, AreaInventory, AreaWardrobe:
		return true
	}
	return false
}

// Location addresses one slot of one collection.
type Location struct {
	Area  Area `json:"area"`
	Index int  `json:"index"`
}

func (l Location) String() string {
	return fmt.Sprintf("%s[%d]", l.Area, l.Index)
}

// Slots is an ordered sequence of item IDs where "" marks an empty slot.
// It encodes to JSON with null for empty slots.
type Slots []string

// FirstEmpty returns the index of the first empty slot, or -1.
func (s Slots) FirstEmpty() int {
	return s.FirstEmptyExcept(-1)
}

// FirstEmptyExcept returns the first empty index other than skip, or -1.
func (s Slots) FirstEmptyExcept(skip int) int {
	for i, id := range s {
		if id == "" && i != skip {
			return i
		}
	}
	return -1
}

// IndexOf returns the first index holding id, or -1.
func (s Slots) IndexOf(id string) int {
	for i, v := range s {
		if v == id {
			return i
		}
	}
	return -1
}

// Occupied returns the number of non-empty slots.
func (s Slots) Occupied() int {
	n := 0
	for _, id := range s {
		if id != "" {
			n++
		}
	}
	return n
}

// Empty returns the number of empty slots.
func (s Slots) Empty() int {
	return len(s) - s.Occupied()
}

// Items returns the non-empty IDs in order.
func (s Slots) Items() []string {
	out := make([]string, 0, len(s))
	for _, id := range s {
		if id != "" {
			out = append(out, id)
		}
	}
	return out
}

// MarshalJSON encodes empty slots as null.
func (s Slots) MarshalJSON() ([]byte, error) {
	raw := make([]*string, len(s))
	for i := range s {
		if s[i] != "" {
			id := s[i]
			raw[i] = &id
		}
	}
	return json.Marshal(raw)
}

// UnmarshalJSON decodes null entries as empty slots.
func (s *Slots) UnmarshalJSON(data []byte) error {
	var raw []*string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(Slots, len(raw))
	for i, p := range raw {
		if p != nil {
			out[i] = *p
		}
	}
	*s = out
	return nil
}

// State is the durable inventory aggregate for one character. Only raw item
// IDs, saved sets and the active filter live here; nothing derived.
type State struct {
	Equipped  Slots     `json:"equipped"`
	Inventory Slots     `json:"inventory"`
	Wardrobe  Slots     `json:"wardrobe"`
	Sets      []ItemSet `json:"sets"`
	Filter    Filter    `json:"filter"`
}

// NewState returns an empty State sized to layout.
func NewState(layout Layout) *State {
	return &State{
		Equipped:  make(Slots, layout.EquippedSize),
		Inventory: make(Slots, layout.InventorySize),
		Wardrobe:  make(Slots, layout.WardrobeMinSize()),
		Sets:      []ItemSet{},
	}
}

// Normalize repairs a loaded State so its collections match layout: fixed
// collections are padded or truncated and the wardrobe is padded to a whole
// row of at least the minimum size. Items cut off by a truncation are
// returned, equipped first, so the caller can rehome them.
//
// Postcondition: len(Equipped) == EquippedSize, len(Inventory) == InventorySize,
// len(Wardrobe) is a positive multiple of RowWidth.
func (s *State) Normalize(layout Layout) (overflow []string) {
	var lost []string
	s.Equipped, lost = resize(s.Equipped, layout.EquippedSize)
	overflow = append(overflow, lost...)
	s.Inventory, lost = resize(s.Inventory, layout.InventorySize)
	overflow = append(overflow, lost...)
	want := roundUpToRow(len(s.Wardrobe), layout.RowWidth)
	if want < layout.WardrobeMinSize() {
		want = layout.WardrobeMinSize()
	}
	s.Wardrobe, _ = resize(s.Wardrobe, want)
	if s.Sets == nil {
		s.Sets = []ItemSet{}
	}
	return overflow
}

func resize(s Slots, n int) (Slots, []string) {
	if len(s) == n {
		return s, nil
	}
	out := make(Slots, n)
	copy(out, s)
	if len(s) > n {
		return out, s[n:].Items()
	}
	return out, nil
}

// Slots returns a pointer to the collection for area, or nil.
func (s *State) Slots(area Area) *Slots {
	switch area {
	case AreaEquipped:
		return &s.Equipped
	case AreaInventory:
		return &s.Inventory
	case AreaWardrobe:
		return &s.Wardrobe
	}
	return nil
}

// Get returns the ID at loc, or "" when loc is empty or out of range.
func (s *State) Get(loc Location) string {
	slots := s.Slots(loc.Area)
	if slots == nil || loc.Index < 0 || loc.Index >= len(*slots) {
		return ""
	}
	return (*slots)[loc.Index]
}

// Clone returns a deep copy of s.
func (s *State) Clone() *State {
	out := &State{
		Equipped:  append(Slots(nil), s.Equipped...),
		Inventory: append(Slots(nil), s.Inventory...),
		Wardrobe:  append(Slots(nil), s.Wardrobe...),
		Sets:      make([]ItemSet, len(s.Sets)),
		Filter:    s.Filter.Clone(),
	}
	for i, set := range s.Sets {
		out.Sets[i] = set.Clone()
	}
	return out
}
