package inventory_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/paperdoll/internal/game/catalog"
	"github.com/cory-johannsen/paperdoll/internal/game/catalog/catalogtest"
	"github.com/cory-johannsen/paperdoll/internal/game/inventory"
)

func writeLoadout(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "loadout.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadStartingLoadout(t *testing.T) {
	path := writeLoadout(t, `
equipped: [shoes, shirt]
inventory: [snack]
wardrobe_tags: [feminine]
wardrobe: [jeans]
sets:
  - id: "set:test"
    name: "Test"
    items: [shirt]
`)
	sl, err := inventory.LoadStartingLoadout(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"shoes", "shirt"}, sl.Equipped)
	assert.Equal(t, []string{"feminine"}, sl.WardrobeTags)
	require.Len(t, sl.Sets, 1)
	assert.Equal(t, inventory.ItemSet{ID: "set:test", Name: "Test", Items: []string{"shirt"}}, sl.Sets[0])
}

func TestLoadStartingLoadout_Errors(t *testing.T) {
	_, err := inventory.LoadStartingLoadout(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = inventory.LoadStartingLoadout(writeLoadout(t, "equipped: {"))
	assert.Error(t, err)

	_, err = inventory.LoadStartingLoadout(writeLoadout(t, "sets:\n  - items: [a]\n"))
	assert.ErrorContains(t, err, "sets[0]")
}

func TestStore_Seed(t *testing.T) {
	reg := catalogtest.Registry(
		catalogtest.Clothing("shirt", catalog.SlotUpper, catalog.IntentMasculine),
		catalogtest.Clothing("shoes", catalog.SlotFeet, catalog.IntentMasculine),
		catalogtest.Clothing("tee", catalog.SlotUpper, catalog.IntentMasculine),
		catalogtest.Clothing("dress", catalog.SlotUpper, catalog.IntentFeminine, catalogtest.Tags("feminine")),
		catalogtest.Clothing("heels", catalog.SlotFeet, catalog.IntentFeminine, catalogtest.Tags("feminine")),
		catalogtest.Clothing("jeans", catalog.SlotLower, catalog.IntentMasculine),
		catalogtest.Usable("snack"),
	)
	s := newStoreWith(t, reg)
	sl := &inventory.StartingLoadout{
		Equipped:     []string{"shoes", "shirt", "tee", "ghost"},
		Inventory:    []string{"snack"},
		WardrobeTags: []string{"feminine"},
		Wardrobe:     []string{"jeans", "dress"},
		Sets:         []inventory.ItemSet{{ID: "set:test", Name: "Test", Items: []string{"dress"}}},
	}

	skipped, err := s.Seed(sl, reg)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"tee", "ghost"}, skipped)
	assert.Equal(t, inventory.Slots{"shirt", "shoes", ""}, s.State().Equipped[:3])
	assert.Equal(t, "snack", s.Get(inv(0)))
	assert.Equal(t, inventory.Slots{"dress", "heels", "jeans", ""}, s.State().Wardrobe[:4])
	assert.Len(t, s.State().Wardrobe, 12)
	_, ok := s.Set("set:test")
	assert.True(t, ok)
}

func TestStore_SeedReferenceContent(t *testing.T) {
	reg, err := catalog.LoadDir("../../../content/items")
	require.NoError(t, err)
	sl, err := inventory.LoadStartingLoadout("../../../content/loadout.yaml")
	require.NoError(t, err)

	s := newStoreWith(t, reg)
	skipped, err := s.Seed(sl, reg)
	require.NoError(t, err)
	assert.Empty(t, skipped)
	assert.Equal(t, inventory.Slots{"it:basic-tshirt", "it:basic-jeans", "it:basic-sneakers"}, s.State().Equipped[:3])
	assert.Equal(t, "it:01a", s.Get(inv(0)))
	assert.Equal(t, len(reg.WithTag("feminine"))+6, s.State().Wardrobe.Occupied())
	assert.Len(t, s.State().Sets, 4)
	for _, id := range []string{"set:test_masc", "set:test_mixed", "set:test_fem", "set:test_passing"} {
		_, ok := s.Set(id)
		assert.True(t, ok, id)
	}
}
