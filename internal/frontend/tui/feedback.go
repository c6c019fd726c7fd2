package tui

import (
	"github.com/cory-johannsen/paperdoll/internal/game/interaction"
	"github.com/cory-johannsen/paperdoll/internal/game/inventory"
)

// feedback records drag affordances for the next frame. The terminal owns
// the mouse already, so capture is bookkeeping only.
type feedback struct {
	captured  bool
	proxy     string
	proxyAt   interaction.Point
	showProxy bool
	highlight inventory.Location
	lit       bool
}

func (f *feedback) Capture(int) { f.captured = true }
func (f *feedback) Release(int) { f.captured = false }

func (f *feedback) ShowProxy(itemID string, at interaction.Point) {
	f.proxy, f.proxyAt, f.showProxy = itemID, at, true
}

func (f *feedback) MoveProxy(at interaction.Point) { f.proxyAt = at }

func (f *feedback) HideProxy() {
	f.proxy, f.showProxy = "", false
}

func (f *feedback) Highlight(loc inventory.Location) {
	f.highlight, f.lit = loc, true
}

func (f *feedback) ClearHighlight() { f.lit = false }

func (f *feedback) highlighted(loc inventory.Location) bool {
	return f.lit && f.highlight == loc
}
