package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/cory-johannsen/paperdoll/internal/game/interaction"
)

// modal is a queued confirm or alert. Alerts have no action.
type modal struct {
	title, message string
	action, close  string
	onAction       func()
	onClose        func()
}

// dialogs queues modals; only the head is shown and receives keys.
type dialogs struct {
	queue []modal
}

func (d *dialogs) Confirm(c interaction.Confirm) {
	d.queue = append(d.queue, modal{
		title: c.Title, message: c.Message,
		action: c.ActionLabel, close: c.CloseLabel,
		onAction: c.OnAction, onClose: c.OnClose,
	})
}

func (d *dialogs) Alert(a interaction.Alert) {
	d.queue = append(d.queue, modal{title: a.Title, message: a.Message, close: "OK"})
}

func (d *dialogs) open() bool { return len(d.queue) > 0 }

// handleKey resolves the head modal. y or Enter accepts a confirm (and
// dismisses an alert); n or Esc dismisses. The modal is popped before its
// callback runs so the callback may queue another.
func (d *dialogs) handleKey(ev *tcell.EventKey) {
	if !d.open() {
		return
	}
	head := d.queue[0]
	var fn func()
	switch {
	case ev.Key() == tcell.KeyEnter || ev.Rune() == 'y' || ev.Rune() == 'Y':
		fn = head.onAction
		if head.action == "" {
			fn = head.onClose
		}
	case ev.Key() == tcell.KeyEscape || ev.Rune() == 'n' || ev.Rune() == 'N':
		fn = head.onClose
	default:
		return
	}
	d.queue = d.queue[1:]
	if fn != nil {
		fn()
	}
}

func (d *dialogs) draw(s tcell.Screen) {
	if !d.open() {
		return
	}
	m := d.queue[0]
	sw, sh := s.Size()
	w := min(56, sw-4)
	lines := wrap(m.message, w-4)
	h := len(lines) + 5
	x, y := (sw-w)/2, max(0, (sh-h)/2)

	fill(s, x, y, w, h, styleModal)
	drawText(s, x+2, y+1, w-4, m.title, styleModalKey)
	for i, line := range lines {
		drawText(s, x+2, y+2+i, w-4, line, styleModal)
	}
	buttons := "[Esc] " + m.close
	if m.action != "" {
		buttons = "[y] " + m.action + "   [n] " + m.close
	}
	drawText(s, x+2, y+h-2, w-4, buttons, styleModalKey)
}
