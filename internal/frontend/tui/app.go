// Package tui is a terminal front end for one save slot: the three item
// grids, a presentation bar and mouse drag and drop through the gesture
// machine.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/cory-johannsen/paperdoll/internal/game/catalog"
	"github.com/cory-johannsen/paperdoll/internal/game/interaction"
	"github.com/cory-johannsen/paperdoll/internal/game/inventory"
	"github.com/cory-johannsen/paperdoll/internal/game/presentation"
	"github.com/cory-johannsen/paperdoll/internal/game/session"
)

// mousePointer is the pointer ID of the terminal mouse.
const mousePointer = 1

// Saver persists a slot.
type Saver interface {
	Save(ctx context.Context, slot string) error
}

// App drives one session on a tcell screen. It is single-threaded: all
// events must come from Run or be passed to HandleEvent in order.
type App struct {
	screen tcell.Screen
	sess   *session.Session
	saver  Saver
	logger *zap.Logger

	grid     *Grid
	feedback *feedback
	dialogs  *dialogs
	details  *details
	notifier *interaction.Notifier
	machine  *interaction.Machine

	pressed  bool
	status   string
	reaction string
	readText string
	lastRead presentation.Label
}

// New builds an App over an initialised screen.
//
// Precondition: screen has been initialised; sess, saver and logger non-nil.
func New(screen tcell.Screen, sess *session.Session, saver Saver, thresholds interaction.Thresholds, logger *zap.Logger) *App {
	w, h := screen.Size()
	store := sess.Store()
	a := &App{
		screen:   screen,
		sess:     sess,
		saver:    saver,
		logger:   logger,
		grid:     NewGrid(store, w, h),
		feedback: &feedback{},
		dialogs:  &dialogs{},
		details:  &details{},
	}
	a.notifier = interaction.NewNotifier(a.dialogs, store, store.Catalog(), logger)
	a.machine = interaction.NewMachine(interaction.Deps{
		Board:      store,
		Targets:    a.grid,
		Feedback:   a.feedback,
		Details:    a.details,
		Notifier:   a.notifier,
		Thresholds: thresholds,
		Logger:     logger,
	})
	a.refresh()
	return a
}

// Run polls events until the user quits.
func (a *App) Run() {
	a.screen.EnableMouse(tcell.MouseMotionEvents)
	a.screen.EnableFocus()
	a.Draw()
	for {
		ev := a.screen.PollEvent()
		if ev == nil || a.HandleEvent(ev) {
			return
		}
		a.Draw()
	}
}

// Gesture returns the state of the drag machine.
func (a *App) Gesture() interaction.State { return a.machine.State() }

// Status returns the status line text.
func (a *App) Status() string { return a.status }

// HandleEvent applies one event and reports whether the app should quit.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
		a.cancelGesture()
		a.grid.Resize(a.screen.Size())
	case *tcell.EventFocus:
		if !ev.Focused {
			a.cancelGesture()
		}
	case *tcell.EventMouse:
		a.handleMouse(ev)
	case *tcell.EventKey:
		return a.handleKey(ev)
	}
	return false
}

func (a *App) cancelGesture() {
	a.machine.Cancel()
	a.pressed = false
}

func (a *App) modalOpen() bool {
	return a.dialogs.open() || a.details.open
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	if a.modalOpen() {
		return
	}
	x, y := ev.Position()
	pe := interaction.PointerEvent{
		ID:     mousePointer,
		Kind:   interaction.PointerMouse,
		Pos:    ToPoint(x, y),
		Button: 1,
	}
	buttons := ev.Buttons()
	switch {
	case buttons&tcell.WheelUp != 0:
		a.grid.Scroll(-1)
	case buttons&tcell.WheelDown != 0:
		a.grid.Scroll(1)
	case buttons&tcell.Button1 != 0:
		if !a.pressed {
			a.pressed = true
			a.machine.Press(pe)
			return
		}
		a.machine.Move(pe)
	case a.pressed:
		a.pressed = false
		// Rejections are already routed to a dialog by the notifier.
		_ = a.machine.Release(pe)
		a.refresh()
	}
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	if a.dialogs.open() {
		a.dialogs.handleKey(ev)
		a.refresh()
		return false
	}
	if a.details.open {
		a.handleDetailKey(ev)
		a.refresh()
		return false
	}

	store := a.sess.Store()
	switch ev.Key() {
	case tcell.KeyEscape:
		return true
	case tcell.KeyPgUp:
		a.grid.Scroll(-a.grid.visibleWardrobeRows())
		return false
	case tcell.KeyPgDn:
		a.grid.Scroll(a.grid.visibleWardrobeRows())
		return false
	case tcell.KeyRune:
	default:
		return false
	}

	r := ev.Rune()
	switch {
	case r == 'q':
		return true
	case r == 'c':
		a.notifier.Report(store.CleanUpEquipped())
	case r == 'i':
		a.notifier.Report(store.CleanUpInventory())
	case r == 'w':
		a.notifier.Report(store.CleanUpWardrobe())
	case r == 'u':
		a.notifier.UnequipAll(store.UnequipAll())
	case r == 'p':
		a.sess.SetPublic(!a.sess.Public())
		a.status = map[bool]string{true: "You step outside.", false: "You head back in."}[a.sess.Public()]
	case r == 's':
		if err := a.saver.Save(context.Background(), a.sess.Slot()); err != nil {
			a.logger.Error("saving from terminal", zap.Error(err))
			a.dialogs.Alert(interaction.Alert{Title: "Save failed", Message: "Your progress could not be saved."})
		} else {
			a.status = "Saved."
		}
	case r == 'n':
		set, err := store.CreateSet("")
		a.notifier.SetCreated(set, err)
	case r >= '1' && r <= '9':
		a.applySet(int(r - '1'))
	}
	a.refresh()
	return false
}

func (a *App) applySet(n int) {
	sets := a.sess.Store().State().Sets
	if n >= len(sets) {
		a.status = fmt.Sprintf("No set in position %d.", n+1)
		return
	}
	report, err := a.sess.Store().ApplySet(sets[n].ID)
	if err != nil {
		a.notifier.Report(err)
		return
	}
	a.status = fmt.Sprintf("Put on %q: %d worn, %d skipped.", sets[n].Name, len(report.Equipped), len(report.Skipped))
}

func (a *App) handleDetailKey(ev *tcell.EventKey) {
	store := a.sess.Store()
	loc := a.details.req.Location
	switch {
	case ev.Key() == tcell.KeyEscape || ev.Rune() == 'q':
	case ev.Rune() == 'e':
		a.notifier.Wear(store.Wear(loc))
	case ev.Rune() == 'u':
		res, err := a.sess.Use(loc)
		a.notifier.Use(err)
		if err == nil {
			a.status = strings.ReplaceAll(res.Message, "\n", " ")
		}
	case ev.Rune() == 'w':
		a.notifier.Report(store.SendToWardrobe(loc))
	case ev.Rune() == 'i':
		a.notifier.Report(store.SendToInventory(loc))
	default:
		return
	}
	a.details.close()
}

// refresh picks up a changed read: a new read text line and any scripted
// reaction.
func (a *App) refresh() {
	r := a.sess.Presentation()
	if r.ReadLabel != a.lastRead || a.readText == "" {
		a.readText = presentation.ResultText(r, nil)
		a.lastRead = r.ReadLabel
	}
	if line := a.sess.Reaction(); line != "" {
		a.reaction = line
	}
	a.grid.Scroll(0)
}

// Draw renders a full frame.
func (a *App) Draw() {
	s := a.screen
	s.Clear()
	w, h := s.Size()
	store := a.sess.Store()
	st := store.State()

	title := fmt.Sprintf("paperdoll: %s", a.sess.Slot())
	if a.sess.Public() {
		title += "  [public]"
	}
	if st.Filter.Active() {
		title += "  [filtered]"
	}
	drawText(s, 1, 0, w-2, title, styleHeader)
	drawText(s, equippedX, gridTop-1, storageX-equippedX, "EQUIPPED", styleHeader)
	drawText(s, storageX, gridTop-1, w-storageX, "INVENTORY", styleHeader)
	drawText(s, storageX, a.grid.WardrobeTop(), w-storageX,
		fmt.Sprintf("WARDROBE (%d)  rows %d+", len(st.Wardrobe.Items()), a.grid.ScrollOffset()+1), styleHeader)

	for _, r := range a.grid.regions() {
		for i := range *st.Slots(r.area) {
			a.drawCell(inventory.Location{Area: r.area, Index: i})
		}
	}

	a.drawFooter(w, h)

	if a.feedback.showProxy {
		x, y := FromPoint(a.feedback.proxyAt)
		putGlyph(s, x, y, a.glyph(a.feedback.proxy), styleHighlight)
	}
	a.details.draw(s, store.Catalog())
	a.dialogs.draw(s)
	s.Show()
}

func (a *App) drawCell(loc inventory.Location) {
	x, y, ok := a.grid.Origin(loc)
	if !ok {
		return
	}
	store := a.sess.Store()
	id := store.Get(loc)
	style := styleText
	switch {
	case a.feedback.highlighted(loc):
		style = styleHighlight
	case a.machine.State() == interaction.StateDragging && a.feedback.proxy == id && id != "":
		style = styleSource
	case store.Hidden(loc):
		style = styleHidden
	case id == "":
		style = styleEmpty
	}
	if id == "" {
		drawText(a.screen, x, y, cellW-1, "·", style)
		return
	}
	used := putGlyph(a.screen, x, y, a.glyph(id), style)
	name := id
	if item, ok := store.Catalog().Get(id); ok {
		name = item.Info().Name
	}
	drawText(a.screen, x+used+1, y, cellW-used-2, name, style)
}

func (a *App) glyph(id string) string {
	item, ok := a.sess.Store().Catalog().Get(id)
	if !ok {
		return "?"
	}
	if icon := item.Info().Icon; icon != "" {
		return icon
	}
	switch item.Category() {
	case catalog.CategoryClothes:
		return "#"
	case catalog.CategoryUsable:
		return "*"
	}
	return "o"
}

func (a *App) drawFooter(w, h int) {
	r := a.sess.Presentation()
	equipped := []string(a.sess.Store().State().Equipped)
	outfit := a.sess.Engine().Outfit(equipped)
	vibes := presentation.VibesText(a.sess.Engine().Vibes(equipped))

	top := h - footerRows
	bar := fmt.Sprintf("Score %d/100  %s  pass %.0f%%  %s", r.DisplayScore, r.ReadLabel, r.PassChance*100, a.readText)
	drawText(a.screen, 1, top, w-2, bar, styleText)
	drawText(a.screen, 1, top+1, w-2, outfit.Comment+"  Vibes: "+vibes, styleText)
	drawText(a.screen, 1, top+2, w-2, a.reaction, styleStatus)
	status := a.status
	if status == "" {
		status = "drag to move  c/i/w clean up  u unequip all  p public  n new set  1-9 wear set  s save  q quit"
	}
	drawText(a.screen, 1, top+3, w-2, status, styleStatus)
}
