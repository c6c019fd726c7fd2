package interaction_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/cory-johannsen/paperdoll/internal/game/catalog/catalogtest"
	"github.com/cory-johannsen/paperdoll/internal/game/interaction"
	interactionmocks "github.com/cory-johannsen/paperdoll/internal/game/interaction/mocks"
	"github.com/cory-johannsen/paperdoll/internal/game/inventory"
)

func newNotifier(t *testing.T) (*interaction.Notifier, *interactionmocks.MockDialogs, *inventory.Store) {
	t.Helper()
	ctrl := gomock.NewController(t)
	dialogs := interactionmocks.NewMockDialogs(ctrl)
	layout := inventory.DefaultLayout()
	store := inventory.NewStore(inventory.NewState(layout), layout, catalogtest.Wardrobe(), zap.NewNop())
	return interaction.NewNotifier(dialogs, store, store.Catalog(), zap.NewNop()), dialogs, store
}

func TestNotifier_NilErrorsAreSilent(t *testing.T) {
	n, _, _ := newNotifier(t)
	n.Move(nil)
	n.Unequip(0, nil)
	n.UnequipAll(nil)
	n.Wear(nil)
	n.Use(nil)
	n.Report(nil)
}

func TestNotifier_RoutesSentinelsToAlerts(t *testing.T) {
	cases := []struct {
		err   error
		title string
	}{
		{fmt.Errorf("%w: x", inventory.ErrSameItem), "Already wearing it"},
		{inventory.ErrNotWearable, "Can't equip"},
		{inventory.ErrEquipmentFull, "Equipment is full"},
		{inventory.ErrNoItems, "No items equipped"},
		{inventory.ErrStaleReplacement, "Can't do that"},
		{errors.New("boom"), "Can't do that"},
	}
	for _, tc := range cases {
		t.Run(tc.title, func(t *testing.T) {
			n, dialogs, _ := newNotifier(t)
			dialogs.EXPECT().Alert(gomock.Any()).Do(func(a interaction.Alert) {
				assert.Equal(t, tc.title, a.Title)
				assert.NotEmpty(t, a.Message)
			})
			n.Report(tc.err)
		})
	}
}

func TestNotifier_MoveWithFullInventoryExplainsDrop(t *testing.T) {
	n, dialogs, _ := newNotifier(t)
	dialogs.EXPECT().Alert(interaction.Alert{
		Title:   "Inventory is full",
		Message: "You can't drop onto an occupied slot unless there is an empty inventory space.",
	})
	n.Move(inventory.ErrInventoryFull)
}

func TestNotifier_ConflictWithoutReplacementIsAnAlert(t *testing.T) {
	n, dialogs, _ := newNotifier(t)
	dialogs.EXPECT().Alert(interaction.Alert{
		Title:   "Body slot occupied",
		Message: `You're already wearing "m:feet" in slot "feet".`,
	})
	n.Move(&inventory.ConflictError{ItemID: "f:feet", Slot: "feet", ConflictItem: "m:feet"})
}

func TestNotifier_StaleReplacementReportsFailure(t *testing.T) {
	n, dialogs, _ := newNotifier(t)
	var prompt interaction.Confirm
	gomock.InOrder(
		dialogs.EXPECT().Confirm(gomock.Any()).Do(func(c interaction.Confirm) { prompt = c }),
		dialogs.EXPECT().Alert(gomock.Any()).Do(func(a interaction.Alert) {
			assert.Equal(t, "Can't do that", a.Title)
		}),
	)
	n.Move(&inventory.ConflictError{
		ItemID:       "f:feet",
		Slot:         "feet",
		ConflictItem: "m:feet",
		Replacement: &inventory.Replacement{
			Kind:         inventory.ReplaceEquip,
			Source:       inv(0),
			SourceItem:   "f:feet",
			ConflictItem: "m:feet",
		},
	})
	require.NotNil(t, prompt.OnAction)
	prompt.OnAction()
}

func TestNotifier_UnequipFullOffersWardrobe(t *testing.T) {
	n, dialogs, store := newNotifier(t)
	for i := range store.State().Inventory {
		store.State().Inventory[i] = "misc:coin"
	}
	store.State().Equipped[2] = "m:head"
	_, err := store.Remove(eq(2))
	require.ErrorIs(t, err, inventory.ErrInventoryFull)

	var prompt interaction.Confirm
	dialogs.EXPECT().Confirm(gomock.Any()).Do(func(c interaction.Confirm) { prompt = c })
	n.Unequip(2, err)

	assert.Equal(t, "Inventory is full", prompt.Title)
	assert.Equal(t, "SEND TO WARDROBE INSTEAD", prompt.ActionLabel)
	prompt.OnAction()
	assert.Empty(t, store.Get(eq(2)))
	assert.Contains(t, store.State().Wardrobe.Items(), "m:head")
}

func TestNotifier_UnequipAllCapacityShowsCounts(t *testing.T) {
	n, dialogs, store := newNotifier(t)
	for i := 0; i < 19; i++ {
		store.State().Inventory[i] = "misc:coin"
	}
	store.State().Equipped[0] = "m:head"
	store.State().Equipped[1] = "m:feet"
	err := store.UnequipAll()
	require.Error(t, err)

	var prompt interaction.Confirm
	dialogs.EXPECT().Confirm(gomock.Any()).Do(func(c interaction.Confirm) { prompt = c })
	n.UnequipAll(err)

	assert.Equal(t, "Not enough space", prompt.Title)
	assert.Contains(t, prompt.Message, "Equipped items: 2\nEmpty inventory slots: 1")
	prompt.OnAction()
	assert.Empty(t, store.State().Equipped.Items())
	assert.ElementsMatch(t, []string{"m:head", "m:feet"}, store.State().Wardrobe.Items())
}

func TestNotifier_WearNotWearable(t *testing.T) {
	n, dialogs, _ := newNotifier(t)
	dialogs.EXPECT().Alert(interaction.Alert{Title: "Can't wear", Message: "This item isn't wearable equipment."})
	n.Wear(inventory.ErrNotWearable)
}

func TestNotifier_SetCreated(t *testing.T) {
	n, dialogs, _ := newNotifier(t)
	dialogs.EXPECT().Alert(interaction.Alert{
		Title:   "Set created",
		Message: `"Gym" has been saved with 2 item(s).`,
	})
	n.SetCreated(inventory.ItemSet{ID: "set:1", Name: "Gym", Items: []string{"m:feet", "m:upper"}}, nil)
}
