package tui

import (
	"github.com/cory-johannsen/paperdoll/internal/game/interaction"
	"github.com/cory-johannsen/paperdoll/internal/game/inventory"
)

// Terminal cells are mapped onto a pixel plane so the pointer thresholds
// keep their meaning: moving one column is 8px, one row 16px.
const (
	colPx = 8
	rowPx = 16

	cellW = 10

	equippedCols = 2
	gridTop      = 2
	equippedX    = 1
	storageX     = 24
	// footerRows are reserved at the bottom for the presentation bar and status.
	footerRows = 4
)

// ToPoint returns the pixel-plane centre of terminal cell (x, y).
func ToPoint(x, y int) interaction.Point {
	return interaction.Point{X: float64(x*colPx + colPx/2), Y: float64(y*rowPx + rowPx/2)}
}

// FromPoint returns the terminal cell containing p.
func FromPoint(p interaction.Point) (x, y int) {
	return int(p.X) / colPx, int(p.Y) / rowPx
}

// region is one collection's grid on screen.
type region struct {
	area       inventory.Area
	x, y       int
	cols, rows int
	// first is the index drawn in the top-left cell.
	first int
}

func (r region) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.cols*cellW && y >= r.y && y < r.y+r.rows
}

// origin returns the top-left terminal cell of index i, or false when i is
// scrolled out of view.
func (r region) origin(i int) (x, y int, ok bool) {
	rel := i - r.first
	if rel < 0 || rel >= r.cols*r.rows {
		return 0, 0, false
	}
	return r.x + (rel%r.cols)*cellW, r.y + rel/r.cols, true
}

// Grid lays out the three collections and resolves screen positions back to
// locations. It reads collection sizes from the store on every call.
type Grid struct {
	store  *inventory.Store
	width  int
	height int
	scroll int
}

// NewGrid creates a Grid for a screen of the given size.
func NewGrid(store *inventory.Store, width, height int) *Grid {
	return &Grid{store: store, width: width, height: height}
}

// Resize records a new screen size.
func (g *Grid) Resize(width, height int) {
	g.width, g.height = width, height
	g.Scroll(0)
}

func (g *Grid) rowWidth() int {
	return g.store.Layout().RowWidth
}

func (g *Grid) equipped() region {
	n := len(g.store.State().Equipped)
	return region{
		area: inventory.AreaEquipped,
		x:    equippedX, y: gridTop,
		cols: equippedCols, rows: (n + equippedCols - 1) / equippedCols,
	}
}

func (g *Grid) inventory() region {
	w := g.rowWidth()
	n := len(g.store.State().Inventory)
	return region{
		area: inventory.AreaInventory,
		x:    storageX, y: gridTop,
		cols: w, rows: (n + w - 1) / w,
	}
}

// WardrobeTop returns the header row of the wardrobe grid.
func (g *Grid) WardrobeTop() int {
	return gridTop + g.inventory().rows + 1
}

func (g *Grid) visibleWardrobeRows() int {
	return max(1, g.height-footerRows-g.WardrobeTop()-2)
}

func (g *Grid) wardrobe() region {
	return region{
		area: inventory.AreaWardrobe,
		x:    storageX, y: g.WardrobeTop() + 1,
		cols: g.rowWidth(), rows: g.visibleWardrobeRows(),
		first: g.scroll * g.rowWidth(),
	}
}

func (g *Grid) regions() []region {
	return []region{g.equipped(), g.inventory(), g.wardrobe()}
}

// Scroll moves the wardrobe view by delta rows, clamped to its contents.
func (g *Grid) Scroll(delta int) {
	total := len(g.store.State().Wardrobe) / max(1, g.rowWidth())
	limit := max(0, total-g.visibleWardrobeRows())
	g.scroll = min(max(0, g.scroll+delta), limit)
}

// ScrollOffset returns the first visible wardrobe row.
func (g *Grid) ScrollOffset() int { return g.scroll }

// CellAt returns the location drawn at terminal cell (x, y).
func (g *Grid) CellAt(x, y int) (inventory.Location, bool) {
	for _, r := range g.regions() {
		if !r.contains(x, y) {
			continue
		}
		i := r.first + (y-r.y)*r.cols + (x-r.x)/cellW
		if i >= len(*g.store.State().Slots(r.area)) {
			return inventory.Location{}, false
		}
		return inventory.Location{Area: r.area, Index: i}, true
	}
	return inventory.Location{}, false
}

// SlotAt implements interaction.TargetResolver.
func (g *Grid) SlotAt(p interaction.Point) (inventory.Location, bool) {
	return g.CellAt(FromPoint(p))
}

// Origin returns the top-left terminal cell of loc, or false when it is not
// on screen.
func (g *Grid) Origin(loc inventory.Location) (x, y int, ok bool) {
	for _, r := range g.regions() {
		if r.area == loc.Area {
			if loc.Index >= len(*g.store.State().Slots(r.area)) {
				return 0, 0, false
			}
			return r.origin(loc.Index)
		}
	}
	return 0, 0, false
}
