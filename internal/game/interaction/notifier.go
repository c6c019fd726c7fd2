package interaction

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/paperdoll/internal/game/catalog"
	"github.com/cory-johannsen/paperdoll/internal/game/inventory"
)

// Actions are the follow-up mutations a prompt may offer.
type Actions interface {
	ApplyReplace(r inventory.Replacement) error
	RemoveToWardrobe(index int) error
	UnequipAllToWardrobe() error
}

// Notifier turns rejected inventory operations into user-facing prompts.
// Successful operations (nil errors) produce nothing.
type Notifier struct {
	dialogs Dialogs
	actions Actions
	catalog catalog.Getter
	logger  *zap.Logger
}

// NewNotifier creates a Notifier.
//
// Precondition: dialogs, actions and logger non-nil.
func NewNotifier(dialogs Dialogs, actions Actions, cat catalog.Getter, logger *zap.Logger) *Notifier {
	return &Notifier{dialogs: dialogs, actions: actions, catalog: cat, logger: logger}
}

var (
	alertSameItem = Alert{
		Title:   "Already wearing it",
		Message: "You're currently wearing the same item already.",
	}
	alertNotWearable = Alert{
		Title:   "Can't equip",
		Message: "Only clothing can go into Equipped.",
	}
	alertEquipmentFull = Alert{
		Title:   "Equipment is full",
		Message: "You can't wear more items right now.\n\nUnequip something first (or use UNEQUIP ALL).",
	}
	alertDropNoRoom = Alert{
		Title:   "Inventory is full",
		Message: "You can't drop onto an occupied slot unless there is an empty inventory space.",
	}
	alertNoItems = Alert{
		Title:   "No items equipped",
		Message: "You need to equip at least one item to create a set.",
	}
	alertUnknown = Alert{
		Title:   "Can't do that",
		Message: "That action isn't possible right now.",
	}
)

func (n *Notifier) name(id string) string {
	if n.catalog != nil {
		if item, ok := n.catalog.Get(id); ok {
			return item.Info().Name
		}
	}
	return id
}

// Move reports the outcome of a drag commit or other placement. A conflict
// carrying a Replacement becomes a confirm whose action applies it.
func (n *Notifier) Move(err error) {
	if err == nil {
		return
	}
	var ce *inventory.ConflictError
	switch {
	case errors.As(err, &ce):
		n.conflict(ce)
	case errors.Is(err, inventory.ErrInventoryFull):
		n.dialogs.Alert(alertDropNoRoom)
	default:
		n.Report(err)
	}
}

func (n *Notifier) conflict(ce *inventory.ConflictError) {
	msg := fmt.Sprintf("You're already wearing %q in slot %q.", n.name(ce.ConflictItem), ce.Slot)
	if ce.Replacement == nil {
		n.dialogs.Alert(Alert{Title: "Body slot occupied", Message: msg})
		return
	}
	r := *ce.Replacement
	n.dialogs.Confirm(Confirm{
		Title:       "Body slot occupied",
		Message:     fmt.Sprintf("%s\n\nReplace it with %q?", msg, n.name(ce.ItemID)),
		ActionLabel: "REPLACE",
		CloseLabel:  "CLOSE",
		OnAction: func() {
			if err := n.actions.ApplyReplace(r); err != nil {
				n.logger.Info("replacement rejected", zap.String("kind", string(r.Kind)), zap.Error(err))
				n.Report(err)
			}
		},
	})
}

// Unequip reports the outcome of removing the equipped item at index. When
// the inventory is full the prompt offers the wardrobe instead.
func (n *Notifier) Unequip(index int, err error) {
	if err == nil {
		return
	}
	if !errors.Is(err, inventory.ErrInventoryFull) {
		n.Report(err)
		return
	}
	n.dialogs.Confirm(Confirm{
		Title:       "Inventory is full",
		Message:     "You don't have space to unequip this item.\n\nMake some space in your inventory, or send it to wardrobe instead.",
		ActionLabel: "SEND TO WARDROBE INSTEAD",
		CloseLabel:  "CLOSE",
		OnAction: func() {
			n.Report(n.actions.RemoveToWardrobe(index))
		},
	})
}

// UnequipAll reports the outcome of a bulk unequip. A capacity failure
// offers sending everything to the wardrobe instead.
func (n *Notifier) UnequipAll(err error) {
	if err == nil {
		return
	}
	var capErr *inventory.CapacityError
	if !errors.As(err, &capErr) {
		n.Report(err)
		return
	}
	n.dialogs.Confirm(Confirm{
		Title: "Not enough space",
		Message: fmt.Sprintf("Your inventory doesn't have enough empty slots to unequip everything.\n\n"+
			"Equipped items: %d\nEmpty inventory slots: %d\n\nWhat would you like to do?", capErr.Needed, capErr.Available),
		ActionLabel: "SEND TO WARDROBE INSTEAD",
		CloseLabel:  "CLOSE",
		OnAction: func() {
			n.Report(n.actions.UnequipAllToWardrobe())
		},
	})
}

// Wear reports the outcome of the detail view's wear action.
func (n *Notifier) Wear(err error) {
	if errors.Is(err, inventory.ErrNotWearable) {
		n.dialogs.Alert(Alert{Title: "Can't wear", Message: "This item isn't wearable equipment."})
		return
	}
	n.Move(err)
}

// Use reports a failed use.
func (n *Notifier) Use(err error) {
	if err == nil {
		return
	}
	n.logger.Debug("use rejected", zap.Error(err))
	n.dialogs.Alert(Alert{Title: "Can't use", Message: "That item can't be used right now."})
}

// SetCreated confirms a new set or explains why none was created.
func (n *Notifier) SetCreated(set inventory.ItemSet, err error) {
	if err != nil {
		n.Report(err)
		return
	}
	n.dialogs.Alert(Alert{
		Title:   "Set created",
		Message: fmt.Sprintf("%q has been saved with %d item(s).", set.Name, len(set.Items)),
	})
}

// Report shows the generic prompt for err.
func (n *Notifier) Report(err error) {
	if err == nil {
		return
	}
	switch {
	case errors.Is(err, inventory.ErrSameItem):
		n.dialogs.Alert(alertSameItem)
	case errors.Is(err, inventory.ErrNotWearable):
		n.dialogs.Alert(alertNotWearable)
	case errors.Is(err, inventory.ErrEquipmentFull):
		n.dialogs.Alert(alertEquipmentFull)
	case errors.Is(err, inventory.ErrNoItems):
		n.dialogs.Alert(alertNoItems)
	default:
		n.logger.Info("operation rejected", zap.Error(err))
		n.dialogs.Alert(alertUnknown)
	}
}
