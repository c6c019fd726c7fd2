// Package catalog defines the immutable item catalog: one tagged schema per
// item category, validated once when content is loaded.
package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// Item is implemented by *ClothingItem, *UsableItem and *MiscItem.
type Item interface {
	// Info returns the fields shared by every category.
	Info() *Base
	// Category reports which concrete schema the item uses.
	Category() Category
	// Validate checks the item's invariants.
	Validate() error
}

// Requirement is a minimum stat value the character should meet to use an item.
type Requirement struct {
	Stat string `yaml:"stat" json:"stat"`
	Min  int    `yaml:"min" json:"min"`
}

// Base holds the fields shared by every item category.
type Base struct {
	ID             string
	Name           string
	Icon           string
	Subtype        string
	Description    string
	Tags           []string
	Requirements   []Requirement
	BaseAdjustment float64
}

// Info returns b.
func (b *Base) Info() *Base { return b }

// HasTag reports whether the item carries tag.
func (b *Base) HasTag(tag string) bool {
	for _, t := range b.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (b *Base) validate() []error {
	var errs []error
	if b.ID == "" {
		errs = append(errs, errors.New("id must not be empty"))
	}
	if b.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if b.Subtype == "" {
		errs = append(errs, errors.New("subtype must not be empty"))
	}
	for i, r := range b.Requirements {
		if r.Stat == "" {
			errs = append(errs, fmt.Errorf("requirements[%d].stat must not be empty", i))
		}
	}
	return errs
}

// Presentation describes how a garment reads socially.
type Presentation struct {
	Intent  Intent
	Modesty int
}

// ClothingItem is a wearable item. Items without a Slot cannot be equipped.
type ClothingItem struct {
	Base
	Slot         BodySlot
	Covers       []BodySlot
	Presentation Presentation
}

// Category returns CategoryClothes.
func (c *ClothingItem) Category() Category { return CategoryClothes }

// Validate checks that the clothing item satisfies its invariants.
//
// Postcondition: returns nil iff all fields are valid.
func (c *ClothingItem) Validate() error {
	errs := c.validate()
	if !c.Slot.Valid() {
		errs = append(errs, fmt.Errorf("slot must be a known body slot; got %q", c.Slot))
	}
	for _, s := range c.Covers {
		if !s.Valid() {
			errs = append(errs, fmt.Errorf("covers contains unknown body slot %q", s))
		}
		if s == c.Slot {
			errs = append(errs, fmt.Errorf("covers must not include the item's own slot %q", s))
		}
	}
	if !validIntents[c.Presentation.Intent] {
		errs = append(errs, fmt.Errorf("presentation.intent must be one of masculine, feminine, unisex; got %q", c.Presentation.Intent))
	}
	if c.Presentation.Modesty < MinModesty || c.Presentation.Modesty > MaxModesty {
		errs = append(errs, fmt.Errorf("presentation.modesty must be %d-%d; got %d", MinModesty, MaxModesty, c.Presentation.Modesty))
	}
	return joinItemErrors(c.ID, errs)
}

// UsableItem is consumed when used and applies its Effects.
type UsableItem struct {
	Base
	DescriptionAfterUse string
	Effects             []Effect
	// Presentation is optional for cosmetics; nil when absent.
	Presentation *Presentation
}

// Category returns CategoryUsable.
func (u *UsableItem) Category() Category { return CategoryUsable }

// Validate checks that the usable item satisfies its invariants.
//
// Postcondition: returns nil iff all fields are valid.
func (u *UsableItem) Validate() error {
	errs := u.validate()
	for i, e := range u.Effects {
		if err := e.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("effects[%d]: %w", i, err))
		}
	}
	if u.Presentation != nil && !validIntents[u.Presentation.Intent] {
		errs = append(errs, fmt.Errorf("presentation.intent must be one of masculine, feminine, unisex; got %q", u.Presentation.Intent))
	}
	return joinItemErrors(u.ID, errs)
}

// MiscItem is inert: key items, materials, collectibles.
type MiscItem struct {
	Base
}

// Category returns CategoryMisc.
func (m *MiscItem) Category() Category { return CategoryMisc }

// Validate checks that the misc item satisfies its invariants.
func (m *MiscItem) Validate() error {
	return joinItemErrors(m.ID, m.validate())
}

func joinItemErrors(id string, errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return fmt.Errorf("item %q validation failed: %s", id, strings.Join(msgs, "; "))
}

// Wearable returns the clothing item and true iff item may enter the
// equipped collection.
func Wearable(item Item) (*ClothingItem, bool) {
	c, ok := item.(*ClothingItem)
	if !ok || c.Slot == "" {
		return nil, false
	}
	return c, true
}

// Getter is the read-only lookup every consumer of the catalog depends on.
type Getter interface {
	Get(id string) (Item, bool)
}

// SlotOf returns the body slot of the wearable item id, or "" when id is
// unknown or not wearable.
func SlotOf(cat Getter, id string) BodySlot {
	if cat == nil || id == "" {
		return ""
	}
	item, ok := cat.Get(id)
	if !ok {
		return ""
	}
	c, ok := Wearable(item)
	if !ok {
		return ""
	}
	return c.Slot
}
