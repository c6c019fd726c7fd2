package inventory

import (
	"fmt"
	"os"
	"slices"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/paperdoll/internal/game/catalog"
)

// StartingLoadout is the initial contents of a fresh save.
//
// Postcondition: All string fields are item IDs referencing content/items/.
type StartingLoadout struct {
	Equipped     []string  `yaml:"equipped"`
	Inventory    []string  `yaml:"inventory"`
	WardrobeTags []string  `yaml:"wardrobe_tags"`
	Wardrobe     []string  `yaml:"wardrobe"`
	Sets         []ItemSet `yaml:"sets"`
}

// LoadStartingLoadout reads the loadout file at path.
//
// Precondition: path must be a readable YAML file.
// Postcondition: Returns the parsed loadout or an error.
func LoadStartingLoadout(path string) (*StartingLoadout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading starting loadout %q: %w", path, err)
	}
	var sl StartingLoadout
	if err := yaml.Unmarshal(data, &sl); err != nil {
		return nil, fmt.Errorf("parsing starting loadout %q: %w", path, err)
	}
	for i, set := range sl.Sets {
		if set.ID == "" || set.Name == "" {
			return nil, fmt.Errorf("parsing starting loadout %q: sets[%d] requires id and name", path, i)
		}
	}
	return &sl, nil
}

// Seed fills an empty Store from the loadout. Equipped items are placed head
// to feet; the wardrobe receives every catalog item carrying one of
// WardrobeTags followed by the explicit Wardrobe list. Unknown IDs and items
// that would break the equipped constraint are skipped and returned.
func (s *Store) Seed(sl *StartingLoadout, reg *catalog.Registry) ([]string, error) {
	var skipped []string
	err := s.mutate("Seed", func() error {
		equipped := slices.Clone(sl.Equipped)
		SortHeadToFeet(s.catalog, equipped)
		for _, id := range equipped {
			v := s.Check(id, -1)
			dst := s.state.Equipped.FirstEmpty()
			if v.Kind != VerdictOK || dst < 0 {
				skipped = append(skipped, id)
				continue
			}
			s.state.Equipped[dst] = id
		}

		for _, id := range sl.Inventory {
			dst := s.state.Inventory.FirstEmpty()
			if _, ok := s.lookup(id); !ok || dst < 0 {
				skipped = append(skipped, id)
				continue
			}
			s.state.Inventory[dst] = id
		}

		var wardrobe []string
		if reg != nil {
			for _, tag := range sl.WardrobeTags {
				wardrobe = append(wardrobe, reg.WithTag(tag)...)
			}
		}
		wardrobe = append(wardrobe, sl.Wardrobe...)
		seen := make(map[string]bool, len(wardrobe))
		for _, id := range wardrobe {
			if seen[id] {
				continue
			}
			seen[id] = true
			if _, ok := s.lookup(id); !ok {
				skipped = append(skipped, id)
				continue
			}
			s.wardrobe.Place(id)
		}
		s.wardrobe.Compact()

		for _, set := range sl.Sets {
			if _, exists := s.Set(set.ID); !exists {
				s.state.Sets = append(s.state.Sets, set.Clone())
			}
		}
		return nil
	})
	if len(skipped) > 0 {
		s.logger.Info("inventory: seed skipped items", zap.Strings("items", skipped))
	}
	return skipped, err
}
