package inventory_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/paperdoll/internal/game/catalog"
	"github.com/cory-johannsen/paperdoll/internal/game/inventory"
)

type recordingApplier struct {
	applied []catalog.Effect
}

func (r *recordingApplier) ApplyEffects(effects []catalog.Effect) {
	r.applied = append(r.applied, effects...)
}

func TestStore_Wear_FromInventory(t *testing.T) {
	s := newStore(t)
	put(s, eq(0), f(catalog.SlotHead))
	put(s, inv(2), f(catalog.SlotFeet))

	require.NoError(t, s.Wear(inv(2)))
	assert.Equal(t, f(catalog.SlotFeet), s.Get(eq(1)))
	assert.Empty(t, s.Get(inv(2)))
}

func TestStore_Wear_FromWardrobeCompacts(t *testing.T) {
	s := newStore(t)
	put(s, wr(0), "misc:coin")
	put(s, wr(1), f(catalog.SlotFeet))
	put(s, wr(2), "use:snack")

	require.NoError(t, s.Wear(wr(1)))
	assert.Equal(t, inventory.Slots{"misc:coin", "use:snack", ""}, s.State().Wardrobe[:3])
}

func TestStore_Wear_OnEquippedTakesOff(t *testing.T) {
	s := newStore(t)
	put(s, eq(4), f(catalog.SlotHead))
	require.NoError(t, s.Wear(eq(4)))
	assert.Empty(t, s.Get(eq(4)))
	assert.Equal(t, f(catalog.SlotHead), s.Get(inv(0)))
}

func TestStore_Wear_Conflict(t *testing.T) {
	s := newStore(t)
	put(s, eq(0), m(catalog.SlotFeet))
	put(s, wr(0), f(catalog.SlotFeet))

	err := s.Wear(wr(0))
	var ce *inventory.ConflictError
	require.True(t, errors.As(err, &ce))
	require.NotNil(t, ce.Replacement)
	assert.Equal(t, wr(0), ce.Replacement.Source)

	require.NoError(t, s.ApplyReplace(*ce.Replacement))
	assert.Equal(t, f(catalog.SlotFeet), s.Get(eq(0)))
	assert.Equal(t, m(catalog.SlotFeet), s.Get(wr(0)))
}

func TestStore_Wear_Rejections(t *testing.T) {
	s := newStore(t)
	put(s, inv(0), "misc:coin")
	assert.ErrorIs(t, s.Wear(inv(0)), inventory.ErrNotWearable)

	for i, slot := range catalog.BodySlots[:10] {
		put(s, eq(i), m(slot))
	}
	put(s, inv(1), f(catalog.SlotFeet))
	assert.ErrorIs(t, s.Wear(inv(1)), inventory.ErrEquipmentFull)

	put(s, inv(2), m(catalog.SlotHead))
	assert.ErrorIs(t, s.Wear(inv(2)), inventory.ErrSameItem)
}

func TestStore_Use(t *testing.T) {
	s := newStore(t)
	put(s, inv(0), "use:snack")
	applier := &recordingApplier{}

	res, err := s.Use(inv(0), applier)
	require.NoError(t, err)
	assert.Equal(t, "use:snack", res.ItemID)
	assert.Equal(t, "You use the item.\n\nEffects:\n- Confidence +1", res.Message)
	require.Len(t, applier.applied, 1)
	assert.Equal(t, "confidence", applier.applied[0].Stat)
	assert.Empty(t, s.Get(inv(0)))
}

func TestStore_Use_Rejections(t *testing.T) {
	s := newStore(t)
	put(s, inv(0), "misc:coin")
	put(s, eq(0), f(catalog.SlotHead))
	applier := &recordingApplier{}

	_, err := s.Use(inv(0), applier)
	assert.ErrorIs(t, err, inventory.ErrNotUsable)
	_, err = s.Use(eq(0), applier)
	assert.ErrorIs(t, err, inventory.ErrNotUsable)
	_, err = s.Use(inv(5), applier)
	assert.ErrorIs(t, err, inventory.ErrItemMissing)
	assert.Empty(t, applier.applied)
}

func TestAfterUseMessage(t *testing.T) {
	item := &catalog.UsableItem{
		Base:                catalog.Base{ID: "it:x", Name: "Lipstick"},
		DescriptionAfterUse: "You feel glamorous.",
		Effects: []catalog.Effect{
			{Kind: catalog.EffectAddStatus, Status: "glam", Turns: 5},
			{Kind: catalog.EffectRemoveStatus, Status: "tired"},
		},
	}
	assert.Equal(t,
		"You feel glamorous.\n\nEffects:\n- Status: glam (5 turns)\n- Remove status: tired",
		inventory.AfterUseMessage(item))
}

func TestStore_SendToWardrobeAndInventory(t *testing.T) {
	s := newStore(t)
	put(s, eq(0), f(catalog.SlotHead))

	require.NoError(t, s.SendToWardrobe(eq(0)))
	assert.Empty(t, s.Get(eq(0)))
	assert.Equal(t, f(catalog.SlotHead), s.Get(wr(0)))

	require.NoError(t, s.SendToInventory(wr(0)))
	assert.Equal(t, f(catalog.SlotHead), s.Get(inv(0)))
	assert.Empty(t, s.Get(wr(0)))

	require.NoError(t, s.SendToInventory(inv(0)), "already there")
}

func TestStore_SendToInventory_Full(t *testing.T) {
	s := newStore(t)
	for i := 0; i < 20; i++ {
		put(s, inv(i), "misc:coin")
	}
	put(s, wr(0), f(catalog.SlotHead))
	assert.ErrorIs(t, s.SendToInventory(wr(0)), inventory.ErrInventoryFull)
	assert.Equal(t, f(catalog.SlotHead), s.Get(wr(0)))
}
