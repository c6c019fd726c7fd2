package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/paperdoll/internal/game/catalog"
	"github.com/cory-johannsen/paperdoll/internal/game/catalog/catalogtest"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestParse_BuildsTaggedSchemas(t *testing.T) {
	items, err := catalog.Parse([]byte(`
items:
  - id: "it:dress"
    category: clothes
    name: Dress
    subtype: dresses
    slot: upper
    covers: [underUpper, underLower]
    presentation: {intent: feminine, modesty: 4}
    tags: [feminine, elegant]
  - id: "it:snack"
    category: usable
    name: Snack
    subtype: food
    description_after_use: Crunchy.
    effects:
      - {kind: statAdd, stat: confidence, add: 1}
  - id: "it:key"
    category: misc
    name: Key
    subtype: keyItem
`))
	require.NoError(t, err)
	require.Len(t, items, 3)

	dress, ok := items[0].(*catalog.ClothingItem)
	require.True(t, ok)
	assert.Equal(t, catalog.SlotUpper, dress.Slot)
	assert.Equal(t, []catalog.BodySlot{catalog.SlotUnderUpper, catalog.SlotUnderLower}, dress.Covers)
	assert.Equal(t, catalog.IntentFeminine, dress.Presentation.Intent)
	assert.True(t, dress.HasTag("elegant"))

	snack, ok := items[1].(*catalog.UsableItem)
	require.True(t, ok)
	assert.Equal(t, "Crunchy.", snack.DescriptionAfterUse)
	require.Len(t, snack.Effects, 1)
	assert.Nil(t, snack.Presentation)

	_, ok = items[2].(*catalog.MiscItem)
	assert.True(t, ok)
}

func TestParse_RejectsCrossCategoryFields(t *testing.T) {
	cases := map[string]string{
		"usable with slot": `
items:
  - {id: a, category: usable, name: A, subtype: food, slot: head}`,
		"misc with effects": `
items:
  - id: a
    category: misc
    name: A
    subtype: material
    effects: [{kind: statAdd, stat: luck, add: 1}]`,
		"clothes without presentation": `
items:
  - {id: a, category: clothes, name: A, subtype: tops, slot: upper}`,
		"unknown category": `
items:
  - {id: a, category: weapon, name: A, subtype: x}`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := catalog.Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestClothingItem_Validate_CollectsAllErrors(t *testing.T) {
	c := &catalog.ClothingItem{
		Base:         catalog.Base{ID: "x"},
		Slot:         "tail",
		Covers:       []catalog.BodySlot{"wing"},
		Presentation: catalog.Presentation{Intent: "neutral", Modesty: 9},
	}
	err := c.Validate()
	require.Error(t, err)
	for _, frag := range []string{"name", "subtype", "slot", "wing", "intent", "modesty"} {
		assert.Contains(t, err.Error(), frag)
	}
}

func TestClothingItem_Validate_RejectsSelfCover(t *testing.T) {
	c := catalogtest.Clothing("x", catalog.SlotUpper, catalog.IntentUnisex, catalogtest.Covers(catalog.SlotUpper))
	assert.Error(t, c.Validate())
}

func TestEffect_String(t *testing.T) {
	assert.Equal(t, "Confidence +1", catalog.Effect{Kind: catalog.EffectStatAdd, Stat: "confidence", Add: 1}.String())
	assert.Equal(t, "Luck -2", catalog.Effect{Kind: catalog.EffectStatAdd, Stat: "luck", Add: -2}.String())
	assert.Equal(t, "Status: glam (5 turns)", catalog.Effect{Kind: catalog.EffectAddStatus, Status: "glam", Turns: 5}.String())
	assert.Equal(t, "Remove status: glam", catalog.Effect{Kind: catalog.EffectRemoveStatus, Status: "glam"}.String())
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "", catalog.Capitalize(""))
	assert.Equal(t, "Glam", catalog.Capitalize("glam"))
	assert.Equal(t, "Élégant", catalog.Capitalize("élégant"))
	assert.Equal(t, "ßtraße", catalog.Capitalize("ßtraße"), "runes without a single-rune upper form are kept")
	assert.Equal(t, "\xffx", catalog.Capitalize("\xffx"), "invalid leading bytes are kept")
}

func TestRegistry_RegisterDuplicate(t *testing.T) {
	reg := catalog.NewRegistry()
	require.NoError(t, reg.Register(catalogtest.Misc("a")))
	assert.Error(t, reg.Register(catalogtest.Misc("a")))
	assert.Equal(t, 1, reg.Len())
}

func TestSlotOf(t *testing.T) {
	reg := catalogtest.Registry(
		catalogtest.Clothing("shirt", catalog.SlotUpper, catalog.IntentMasculine),
		catalogtest.Misc("coin"),
	)
	assert.Equal(t, catalog.SlotUpper, catalog.SlotOf(reg, "shirt"))
	assert.Equal(t, catalog.BodySlot(""), catalog.SlotOf(reg, "coin"))
	assert.Equal(t, catalog.BodySlot(""), catalog.SlotOf(reg, "ghost"))
	assert.Equal(t, catalog.BodySlot(""), catalog.SlotOf(nil, "shirt"))
}

func TestLoadDir_DuplicateAcrossFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.yaml", "items:\n  - {id: k, category: misc, name: K, subtype: keyItem}\n")
	writeFile(t, dir, "b.yml", "items:\n  - {id: k, category: misc, name: K, subtype: keyItem}\n")
	writeFile(t, dir, "notes.txt", "ignored")
	_, err := catalog.LoadDir(dir)
	assert.Error(t, err)
}

func TestLoadDir_ReferenceContent(t *testing.T) {
	reg, err := catalog.LoadDir("../../../content/items")
	require.NoError(t, err)
	assert.Equal(t, 45, reg.Len())

	dress, ok := reg.Get("it:00d")
	require.True(t, ok)
	c, ok := catalog.Wearable(dress)
	require.True(t, ok)
	assert.Equal(t, "dresses", c.Subtype)

	choc, ok := reg.Get("it:01a")
	require.True(t, ok)
	assert.Equal(t, catalog.CategoryUsable, choc.Category())
	_, wearable := catalog.Wearable(choc)
	assert.False(t, wearable)
}

func TestProperty_ParseBodySlot_RoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		s := rapid.SampledFrom(catalog.BodySlots).Draw(rt, "slot")
		got, err := catalog.ParseBodySlot(string(s))
		if err != nil || got != s {
			rt.Fatalf("ParseBodySlot(%q) = %q, %v", s, got, err)
		}
	})
}

func TestProperty_ParseBodySlot_RejectsUnknown(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		raw := rapid.StringMatching(`[a-z]{1,12}`).Draw(rt, "raw")
		if catalog.BodySlot(raw).Valid() {
			rt.Skip()
		}
		if _, err := catalog.ParseBodySlot(raw); err == nil {
			rt.Fatalf("expected error for %q", raw)
		}
	})
}
