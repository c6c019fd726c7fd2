package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// file is the on-disk shape of a catalog content file.
type file struct {
	Items []record `yaml:"items"`
}

type presentationRecord struct {
	Intent  string `yaml:"intent"`
	Modesty int    `yaml:"modesty"`
}

// record is the untyped YAML entry. build converts it into exactly one of the
// concrete item schemas, rejecting fields that do not belong to its category.
type record struct {
	ID                  string              `yaml:"id"`
	Category            string              `yaml:"category"`
	Name                string              `yaml:"name"`
	Icon                string              `yaml:"icon"`
	Subtype             string              `yaml:"subtype"`
	Description         string              `yaml:"description"`
	DescriptionAfterUse string              `yaml:"description_after_use"`
	Slot                string              `yaml:"slot"`
	Covers              []string            `yaml:"covers"`
	Presentation        *presentationRecord `yaml:"presentation"`
	Tags                []string            `yaml:"tags"`
	Requirements        []Requirement       `yaml:"requirements"`
	Effects             []Effect            `yaml:"effects"`
	BaseAdjustment      float64             `yaml:"base_adjustment"`
}

func (r record) base() Base {
	return Base{
		ID:             r.ID,
		Name:           r.Name,
		Icon:           r.Icon,
		Subtype:        r.Subtype,
		Description:    r.Description,
		Tags:           r.Tags,
		Requirements:   r.Requirements,
		BaseAdjustment: r.BaseAdjustment,
	}
}

func (r record) build() (Item, error) {
	var item Item
	switch Category(r.Category) {
	case CategoryClothes:
		if len(r.Effects) > 0 || r.DescriptionAfterUse != "" {
			return nil, fmt.Errorf("item %q: clothes must not declare effects or description_after_use", r.ID)
		}
		c := &ClothingItem{Base: r.base(), Slot: BodySlot(r.Slot)}
		for _, s := range r.Covers {
			c.Covers = append(c.Covers, BodySlot(s))
		}
		if r.Presentation == nil {
			return nil, fmt.Errorf("item %q: clothes require presentation", r.ID)
		}
		c.Presentation = Presentation{Intent: Intent(r.Presentation.Intent), Modesty: r.Presentation.Modesty}
		item = c
	case CategoryUsable:
		if r.Slot != "" || len(r.Covers) > 0 {
			return nil, fmt.Errorf("item %q: usable items must not declare slot or covers", r.ID)
		}
		u := &UsableItem{Base: r.base(), DescriptionAfterUse: r.DescriptionAfterUse, Effects: r.Effects}
		if r.Presentation != nil {
			u.Presentation = &Presentation{Intent: Intent(r.Presentation.Intent), Modesty: r.Presentation.Modesty}
		}
		item = u
	case CategoryMisc:
		if r.Slot != "" || len(r.Covers) > 0 || len(r.Effects) > 0 || r.Presentation != nil {
			return nil, fmt.Errorf("item %q: misc items must not declare slot, covers, effects or presentation", r.ID)
		}
		item = &MiscItem{Base: r.base()}
	default:
		return nil, fmt.Errorf("item %q: category must be one of clothes, usable, misc; got %q", r.ID, r.Category)
	}
	if err := item.Validate(); err != nil {
		return nil, err
	}
	return item, nil
}

// Parse decodes a catalog content document.
//
// Postcondition: returns every item in document order, or the first invalid entry's error.
func Parse(data []byte) ([]Item, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("catalog: parsing items: %w", err)
	}
	items := make([]Item, 0, len(f.Items))
	for _, r := range f.Items {
		item, err := r.build()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// LoadDir reads all *.yaml and *.yml files from dir in lexical order and
// registers every item into a new Registry.
//
// Precondition: dir is a readable directory path.
// Postcondition: returns a Registry holding every valid item, or the first error encountered.
func LoadDir(dir string) (*Registry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("catalog: LoadDir: cannot read directory %q: %w", dir, err)
	}
	var paths []string
	for _, entry := range entries {
		ext := filepath.Ext(entry.Name())
		if entry.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)

	reg := NewRegistry()
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("catalog: LoadDir: cannot read file %q: %w", path, err)
		}
		items, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("catalog: LoadDir: invalid content in %q: %w", path, err)
		}
		for _, item := range items {
			if err := reg.Register(item); err != nil {
				return nil, fmt.Errorf("catalog: LoadDir: %q: %w", path, err)
			}
		}
	}
	return reg, nil
}
