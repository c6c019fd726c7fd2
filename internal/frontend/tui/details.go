package tui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/cory-johannsen/paperdoll/internal/game/catalog"
	"github.com/cory-johannsen/paperdoll/internal/game/interaction"
)

// details holds the item whose detail panel is open, if any.
type details struct {
	req  interaction.DetailRequest
	open bool
}

func (d *details) Open(req interaction.DetailRequest) {
	d.req, d.open = req, true
}

func (d *details) close() { d.open = false }

func describe(cat catalog.Getter, id string) (title string, body []string) {
	item, ok := cat.Get(id)
	if !ok {
		return id, []string{"Unknown item."}
	}
	info := item.Info()
	title = info.Name
	if info.Icon != "" {
		title = info.Icon + " " + title
	}
	kind := string(item.Category())
	if c, ok := catalog.Wearable(item); ok {
		kind = fmt.Sprintf("%s, %s (%s)", info.Subtype, c.Slot, c.Presentation.Intent)
	} else if info.Subtype != "" {
		kind = fmt.Sprintf("%s, %s", kind, info.Subtype)
	}
	body = append(body, kind)
	if info.Description != "" {
		body = append(body, info.Description)
	}
	if len(info.Tags) > 0 {
		body = append(body, "Tags: "+strings.Join(info.Tags, ", "))
	}
	return title, body
}

func (d *details) draw(s tcell.Screen, cat catalog.Getter) {
	if !d.open {
		return
	}
	sw, sh := s.Size()
	w := min(48, sw-2)
	title, body := describe(cat, d.req.ItemID)
	var lines []string
	for _, b := range body {
		lines = append(lines, wrap(b, w-4)...)
	}
	h := len(lines) + 5
	x, y := sw-w-1, max(0, (sh-h)/2)

	fill(s, x, y, w, h, styleModal)
	drawText(s, x+2, y+1, w-4, title, styleModalKey)
	for i, line := range lines {
		drawText(s, x+2, y+2+i, w-4, line, styleModal)
	}
	drawText(s, x+2, y+h-2, w-4, "[e] wear  [u] use  [w] wardrobe  [i] inventory  [Esc]", styleModalKey)
}
