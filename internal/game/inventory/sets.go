package inventory

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/cory-johannsen/paperdoll/internal/game/catalog"
)

// DefaultSetName names sets created without a name.
const DefaultSetName = "Untitled Set"

// ItemSet is a named outfit captured from the equipped collection.
type ItemSet struct {
	ID    string   `json:"id" yaml:"id"`
	Name  string   `json:"name" yaml:"name"`
	Items []string `json:"items" yaml:"items"`
}

// Clone returns a deep copy of set.
func (set ItemSet) Clone() ItemSet {
	set.Items = slices.Clone(set.Items)
	return set
}

func (set ItemSet) equal(o ItemSet) bool {
	return set.ID == o.ID && set.Name == o.Name && slices.Equal(set.Items, o.Items)
}

// ApplyReport lists what applying a set did with each member.
type ApplyReport struct {
	Equipped []string `json:"equipped"`
	Skipped  []string `json:"skipped"`
}

// Set returns the saved set with id.
func (s *Store) Set(id string) (ItemSet, bool) {
	for _, set := range s.state.Sets {
		if set.ID == id {
			return set.Clone(), true
		}
	}
	return ItemSet{}, false
}

// CreateSet snapshots the worn items as a new set named name.
//
// Postcondition: the new set has a unique "set:" ID and is appended to State.Sets.
func (s *Store) CreateSet(name string) (ItemSet, error) {
	items := s.state.Equipped.Items()
	if len(items) == 0 {
		return ItemSet{}, ErrNoItems
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultSetName
	}
	set := ItemSet{ID: "set:" + uuid.NewString(), Name: name, Items: items}
	err := s.mutate("CreateSet", func() error {
		s.state.Sets = append(s.state.Sets, set.Clone())
		return nil
	})
	return set, err
}

// AddSet stores a predefined set unless a set with the same ID or name exists.
func (s *Store) AddSet(set ItemSet) error {
	return s.mutate("AddSet", func() error {
		for _, existing := range s.state.Sets {
			if existing.ID == set.ID || existing.Name == set.Name {
				return nil
			}
		}
		s.state.Sets = append(s.state.Sets, set.Clone())
		return nil
	})
}

// RenameSet changes the name of set id.
func (s *Store) RenameSet(id, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultSetName
	}
	return s.mutate("RenameSet", func() error {
		for i := range s.state.Sets {
			if s.state.Sets[i].ID == id {
				s.state.Sets[i].Name = name
				return nil
			}
		}
		return fmt.Errorf("%w: %q", ErrSetNotFound, id)
	})
}

// RemoveSet deletes set id.
func (s *Store) RemoveSet(id string) error {
	return s.mutate("RemoveSet", func() error {
		for i := range s.state.Sets {
			if s.state.Sets[i].ID == id {
				s.state.Sets = slices.Delete(s.state.Sets, i, i+1)
				return nil
			}
		}
		return fmt.Errorf("%w: %q", ErrSetNotFound, id)
	})
}

// ApplySet dresses the character in set id. Everything worn is first moved to
// the inventory, overflowing into the wardrobe. Each member is then looked up
// in the inventory and then the wardrobe and equipped; a member whose body
// slot is already taken by another member replaces it. Members that are
// unknown, unwearable, absent or have no free slot are skipped.
func (s *Store) ApplySet(id string) (ApplyReport, error) {
	set, ok := s.Set(id)
	if !ok {
		return ApplyReport{}, fmt.Errorf("%w: %q", ErrSetNotFound, id)
	}
	var report ApplyReport
	err := s.mutate("ApplySet", func() error {
		report = ApplyReport{}
		for i, worn := range s.state.Equipped {
			if worn == "" {
				continue
			}
			if dst := s.state.Inventory.FirstEmpty(); dst >= 0 {
				s.state.Inventory[dst] = worn
			} else {
				s.wardrobe.Place(worn)
			}
			s.state.Equipped[i] = ""
		}

		wardrobeTouched := false
		for _, member := range set.Items {
			if catalog.SlotOf(s.catalog, member) == "" {
				report.Skipped = append(report.Skipped, member)
				continue
			}
			src := Location{Area: AreaInventory, Index: s.state.Inventory.IndexOf(member)}
			if src.Index < 0 {
				src = Location{Area: AreaWardrobe, Index: s.state.Wardrobe.IndexOf(member)}
			}
			if src.Index < 0 {
				report.Skipped = append(report.Skipped, member)
				continue
			}
			v := s.Check(member, -1)
			switch v.Kind {
			case VerdictSameItem:
				report.Skipped = append(report.Skipped, member)
				continue
			case VerdictSlotOccupied:
				s.state.Equipped[v.ConflictIndex] = member
				s.set(src, v.ConflictItem)
			default:
				dst := s.state.Equipped.FirstEmpty()
				if dst < 0 {
					report.Skipped = append(report.Skipped, member)
					continue
				}
				s.state.Equipped[dst] = member
				s.set(src, "")
			}
			report.Equipped = append(report.Equipped, member)
			wardrobeTouched = wardrobeTouched || src.Area == AreaWardrobe
		}
		if wardrobeTouched {
			s.wardrobe.Compact()
		}
		return nil
	})
	return report, err
}
