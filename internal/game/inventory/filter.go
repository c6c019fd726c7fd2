package inventory

import (
	"slices"

	"github.com/cory-johannsen/paperdoll/internal/game/catalog"
)

// FilterField names one of the three filter dimensions.
type FilterField string

// Filter fields.
const (
	FilterCategory FilterField = "category"
	FilterSubtype  FilterField = "subtype"
	FilterBodySlot FilterField = "bodySlot"
)

// Filter restricts bulk actions and drag targets to matching items. Each
// field is an OR set; the fields are OR'ed together. Empty means inactive.
type Filter struct {
	Category []string `json:"category"`
	Subtype  []string `json:"subtype"`
	BodySlot []string `json:"bodySlot"`
}

// Active reports whether any field has a selection.
func (f Filter) Active() bool {
	return len(f.Category) > 0 || len(f.Subtype) > 0 || len(f.BodySlot) > 0
}

// Matches reports whether id passes the filter. Empty slots and unknown IDs
// always match so they never become unreachable.
func (f Filter) Matches(cat catalog.Getter, id string) bool {
	if !f.Active() || id == "" || cat == nil {
		return true
	}
	item, ok := cat.Get(id)
	if !ok {
		return true
	}
	info := item.Info()
	if slices.Contains(f.Category, string(item.Category())) {
		return true
	}
	if slices.Contains(f.Subtype, info.Subtype) {
		return true
	}
	if c, ok := catalog.Wearable(item); ok && slices.Contains(f.BodySlot, string(c.Slot)) {
		return true
	}
	return false
}

// Toggle adds value to field when absent and removes it otherwise.
func (f *Filter) Toggle(field FilterField, value string) {
	var set *[]string
	switch field {
	case FilterCategory:
		set = &f.Category
	case FilterSubtype:
		set = &f.Subtype
	case FilterBodySlot:
		set = &f.BodySlot
	default:
		return
	}
	if i := slices.Index(*set, value); i >= 0 {
		*set = slices.Delete(*set, i, i+1)
		return
	}
	*set = append(*set, value)
}

// Clear deactivates every field.
func (f *Filter) Clear() {
	*f = Filter{}
}

// Clone returns a deep copy of f.
func (f Filter) Clone() Filter {
	return Filter{
		Category: slices.Clone(f.Category),
		Subtype:  slices.Clone(f.Subtype),
		BodySlot: slices.Clone(f.BodySlot),
	}
}

func (f Filter) equal(o Filter) bool {
	return slices.Equal(f.Category, o.Category) &&
		slices.Equal(f.Subtype, o.Subtype) &&
		slices.Equal(f.BodySlot, o.BodySlot)
}
