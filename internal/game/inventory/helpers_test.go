package inventory_test

import (
	"testing"

	"go.uber.org/zap"

	"github.com/cory-johannsen/paperdoll/internal/game/catalog"
	"github.com/cory-johannsen/paperdoll/internal/game/catalog/catalogtest"
	"github.com/cory-johannsen/paperdoll/internal/game/inventory"
)

func eq(i int) inventory.Location { return inventory.Location{Area: inventory.AreaEquipped, Index: i} }
func inv(i int) inventory.Location {
	return inventory.Location{Area: inventory.AreaInventory, Index: i}
}
func wr(i int) inventory.Location { return inventory.Location{Area: inventory.AreaWardrobe, Index: i} }

func newStore(t testing.TB) *inventory.Store {
	t.Helper()
	return newStoreWith(t, catalogtest.Wardrobe())
}

func newStoreWith(t testing.TB, cat catalog.Getter) *inventory.Store {
	t.Helper()
	layout := inventory.DefaultLayout()
	return inventory.NewStore(inventory.NewState(layout), layout, cat, zap.NewNop())
}

// put writes directly into the state, bypassing the constraint engine.
func put(s *inventory.Store, loc inventory.Location, id string) {
	(*s.State().Slots(loc.Area))[loc.Index] = id
}

func m(slot catalog.BodySlot) string { return "m:" + string(slot) }
func f(slot catalog.BodySlot) string { return "f:" + string(slot) }
