package interaction

import "github.com/cory-johannsen/paperdoll/internal/game/inventory"

//go:generate mockgen -destination=mocks/mock_ui.go -package=interactionmocks github.com/cory-johannsen/paperdoll/internal/game/interaction Dialogs,Details,Feedback,TargetResolver,Board

// Confirm is a two-button prompt. OnAction runs when the user accepts and
// OnClose when they dismiss; either may be nil.
type Confirm struct {
	Title       string
	Message     string
	ActionLabel string
	CloseLabel  string
	OnAction    func()
	OnClose     func()
}

// Alert is a one-button notice.
type Alert struct {
	Title   string
	Message string
}

// Dialogs shows modal prompts.
type Dialogs interface {
	Confirm(c Confirm)
	Alert(a Alert)
}

// DetailRequest asks for the detail view of the item at Location.
type DetailRequest struct {
	Location inventory.Location
	ItemID   string
}

// Details opens the item detail view.
type Details interface {
	Open(req DetailRequest)
}

// Feedback draws drag affordances and owns pointer capture.
type Feedback interface {
	Capture(pointerID int)
	Release(pointerID int)
	ShowProxy(itemID string, at Point)
	MoveProxy(at Point)
	HideProxy()
	Highlight(loc inventory.Location)
	ClearHighlight()
}

// TargetResolver maps a screen position onto the slot drawn there.
type TargetResolver interface {
	SlotAt(p Point) (inventory.Location, bool)
}

// Board is the part of the inventory store a gesture reads and commits to.
type Board interface {
	Get(loc inventory.Location) string
	Hidden(loc inventory.Location) bool
	MoveBetween(from, to inventory.Location) error
}
