package inventory

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/paperdoll/internal/game/catalog"
)

// EffectApplier receives the on-use effects of a consumed item.
type EffectApplier interface {
	ApplyEffects(effects []catalog.Effect)
}

// UseResult describes a consumed item.
type UseResult struct {
	ItemID  string           `json:"itemId"`
	Effects []catalog.Effect `json:"effects"`
	// Message is the after-use description followed by an effects list.
	Message string `json:"message"`
}

// Wear equips the item at loc into the first empty equipped slot. Wear on an
// equipped location takes the item off instead, as Remove does.
//
// Postcondition: on ErrSlotOccupied the *ConflictError carries a ReplaceEquip
// replacement sourced at loc.
func (s *Store) Wear(loc Location) error {
	if err := s.checkLocation(loc, false); err != nil {
		return err
	}
	if loc.Area == AreaEquipped {
		_, err := s.Remove(loc)
		return err
	}
	id := s.state.Get(loc)
	if id == "" {
		return fmt.Errorf("%w: %s is empty", ErrItemMissing, loc)
	}
	return s.mutate("Wear", func() error {
		if err := verdictErr(s.Check(id, -1), id, loc); err != nil {
			return err
		}
		dst := s.state.Equipped.FirstEmpty()
		if dst < 0 {
			return ErrEquipmentFull
		}
		s.state.Equipped[dst] = id
		s.set(loc, "")
		s.settleWardrobe(loc, Location{Area: AreaEquipped, Index: dst})
		return nil
	})
}

// Use consumes the usable item at loc and hands its effects to applier.
// Only inventory and wardrobe items can be used.
func (s *Store) Use(loc Location, applier EffectApplier) (UseResult, error) {
	if err := s.checkLocation(loc, false); err != nil {
		return UseResult{}, err
	}
	id := s.state.Get(loc)
	if id == "" {
		return UseResult{}, fmt.Errorf("%w: %s is empty", ErrItemMissing, loc)
	}
	if loc.Area == AreaEquipped {
		return UseResult{}, fmt.Errorf("%w: %q is equipped", ErrNotUsable, id)
	}
	item, ok := s.lookup(id)
	if !ok {
		return UseResult{}, fmt.Errorf("%w: %q", ErrItemMissing, id)
	}
	usable, ok := item.(*catalog.UsableItem)
	if !ok {
		return UseResult{}, fmt.Errorf("%w: %q", ErrNotUsable, id)
	}
	if _, err := s.Remove(loc); err != nil {
		return UseResult{}, err
	}
	if applier != nil {
		applier.ApplyEffects(usable.Effects)
	}
	return UseResult{ItemID: id, Effects: usable.Effects, Message: AfterUseMessage(usable)}, nil
}

// AfterUseMessage renders the text shown once item has been used.
func AfterUseMessage(item *catalog.UsableItem) string {
	var b strings.Builder
	base := strings.TrimSpace(item.DescriptionAfterUse)
	if base == "" {
		base = "You use the item."
	}
	b.WriteString(base)
	if len(item.Effects) > 0 {
		b.WriteString("\n\nEffects:")
		for _, e := range item.Effects {
			b.WriteString("\n- ")
			b.WriteString(e.String())
		}
	}
	return b.String()
}

// SendToWardrobe moves the item at loc into the wardrobe. From Equipped this
// unequips it. Items already in the wardrobe are left alone.
func (s *Store) SendToWardrobe(loc Location) error {
	if err := s.checkLocation(loc, false); err != nil {
		return err
	}
	if loc.Area == AreaWardrobe {
		return nil
	}
	id := s.state.Get(loc)
	if id == "" {
		return fmt.Errorf("%w: %s is empty", ErrItemMissing, loc)
	}
	return s.mutate("SendToWardrobe", func() error {
		s.set(loc, "")
		s.wardrobe.Place(id)
		return nil
	})
}

// SendToInventory moves the item at loc into the first empty inventory slot.
func (s *Store) SendToInventory(loc Location) error {
	if err := s.checkLocation(loc, false); err != nil {
		return err
	}
	if loc.Area == AreaInventory {
		return nil
	}
	id := s.state.Get(loc)
	if id == "" {
		return fmt.Errorf("%w: %s is empty", ErrItemMissing, loc)
	}
	return s.mutate("SendToInventory", func() error {
		dst := s.state.Inventory.FirstEmpty()
		if dst < 0 {
			return ErrInventoryFull
		}
		s.state.Inventory[dst] = id
		s.set(loc, "")
		s.settleWardrobe(loc, Location{Area: AreaInventory, Index: dst})
		return nil
	})
}
