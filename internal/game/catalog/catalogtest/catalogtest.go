// Package catalogtest provides small item builders for tests of packages that
// consume the catalog.
package catalogtest

import (
	"github.com/cory-johannsen/paperdoll/internal/game/catalog"
)

// Option mutates a clothing item under construction.
type Option func(*catalog.ClothingItem)

// Covers sets the slots hidden by the item.
func Covers(slots ...catalog.BodySlot) Option {
	return func(c *catalog.ClothingItem) { c.Covers = slots }
}

// Tags sets the item's tags.
func Tags(tags ...string) Option {
	return func(c *catalog.ClothingItem) { c.Tags = tags }
}

// Subtype sets the item's subtype.
func Subtype(s string) Option {
	return func(c *catalog.ClothingItem) { c.Subtype = s }
}

// Adjust sets the item's base adjustment.
func Adjust(v float64) Option {
	return func(c *catalog.ClothingItem) { c.BaseAdjustment = v }
}

// Clothing builds a valid clothing item.
func Clothing(id string, slot catalog.BodySlot, intent catalog.Intent, opts ...Option) *catalog.ClothingItem {
	c := &catalog.ClothingItem{
		Base: catalog.Base{
			ID:      id,
			Name:    id,
			Subtype: "tops",
		},
		Slot:         slot,
		Presentation: catalog.Presentation{Intent: intent, Modesty: 3},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Usable builds a usable item with the given effects.
func Usable(id string, effects ...catalog.Effect) *catalog.UsableItem {
	return &catalog.UsableItem{
		Base:    catalog.Base{ID: id, Name: id, Subtype: "food"},
		Effects: effects,
	}
}

// Misc builds an inert item.
func Misc(id string) *catalog.MiscItem {
	return &catalog.MiscItem{Base: catalog.Base{ID: id, Name: id, Subtype: "material"}}
}

// Registry registers items into a new registry, panicking on duplicates.
func Registry(items ...catalog.Item) *catalog.Registry {
	reg := catalog.NewRegistry()
	for _, item := range items {
		if err := reg.Register(item); err != nil {
			panic(err)
		}
	}
	return reg
}

// Wardrobe returns a registry covering every body slot with one masculine and
// one feminine garment ("m:<slot>" and "f:<slot>"), plus "use:snack" and "misc:coin".
func Wardrobe() *catalog.Registry {
	var items []catalog.Item
	for _, s := range catalog.BodySlots {
		items = append(items,
			Clothing("m:"+string(s), s, catalog.IntentMasculine),
			Clothing("f:"+string(s), s, catalog.IntentFeminine),
		)
	}
	items = append(items,
		Usable("use:snack", catalog.Effect{Kind: catalog.EffectStatAdd, Stat: "confidence", Add: 1}),
		Misc("misc:coin"),
	)
	return Registry(items...)
}
