// Package interaction turns raw pointer events into inventory gestures: a
// press that never travels past the device threshold is a tap and opens the
// item's details; anything further is a drag that commits one MoveBetween on
// release. Rejections are routed through a Notifier.
package interaction

import (
	"go.uber.org/zap"

	"github.com/cory-johannsen/paperdoll/internal/game/inventory"
)

// State is the gesture state.
type State int

// Gesture states.
const (
	StateIdle State = iota
	StateArmed
	StateDragging
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateArmed:
		return "armed"
	case StateDragging:
		return "dragging"
	}
	return "unknown"
}

// Deps wires a Machine to its board and presentation capabilities.
type Deps struct {
	Board      Board
	Targets    TargetResolver
	Feedback   Feedback
	Details    Details
	Notifier   *Notifier
	Thresholds Thresholds
	Logger     *zap.Logger
}

// Machine tracks at most one gesture at a time.
//
// Machine is not safe for concurrent use; events must arrive in order from a
// single input loop.
type Machine struct {
	deps Deps

	state     State
	pointer   int
	kind      PointerKind
	origin    Point
	source    inventory.Location
	item      string
	target    inventory.Location
	hasTarget bool
	captured  bool
}

// NewMachine creates an idle Machine. Zero thresholds take the defaults.
//
// Precondition: every field of deps except Thresholds is non-nil.
func NewMachine(deps Deps) *Machine {
	if deps.Thresholds == (Thresholds{}) {
		deps.Thresholds = DefaultThresholds()
	}
	return &Machine{deps: deps}
}

// State returns the current gesture state.
func (m *Machine) State() State { return m.state }

// Press arms a gesture on the occupied, visible slot under ev. Presses on an
// empty or filter-hidden slot, or while another gesture is live, are ignored.
//
// Postcondition: returns true iff the machine moved to StateArmed.
func (m *Machine) Press(ev PointerEvent) bool {
	if m.state != StateIdle {
		return false
	}
	loc, ok := m.deps.Targets.SlotAt(ev.Pos)
	if !ok {
		return false
	}
	item := m.deps.Board.Get(loc)
	if item == "" || m.deps.Board.Hidden(loc) {
		return false
	}
	m.state = StateArmed
	m.pointer = ev.ID
	m.kind = ev.Kind
	m.origin = ev.Pos
	m.source = loc
	m.item = item
	// Touch must own the pointer from the start or scrolling steals it.
	if ev.Kind == PointerTouch {
		m.deps.Feedback.Capture(ev.ID)
		m.captured = true
	}
	return true
}

// Move advances an armed gesture into a drag once the pointer travels past
// its threshold, and tracks the drop target while dragging.
func (m *Machine) Move(ev PointerEvent) {
	if m.state == StateIdle {
		return
	}
	if ev.ID != m.pointer {
		m.Cancel()
		return
	}
	if m.state == StateArmed {
		if !exceeded(m.origin, ev.Pos, m.deps.Thresholds.For(m.kind)) {
			return
		}
		m.state = StateDragging
		if !m.captured {
			m.deps.Feedback.Capture(ev.ID)
			m.captured = true
		}
		m.deps.Feedback.ShowProxy(m.item, ev.Pos)
		m.deps.Logger.Debug("drag started", zap.Stringer("from", m.source), zap.String("item", m.item))
	} else {
		m.deps.Feedback.MoveProxy(ev.Pos)
	}
	m.track(ev.Pos)
}

func (m *Machine) track(p Point) {
	loc, ok := m.resolve(p)
	if ok == m.hasTarget && loc == m.target {
		return
	}
	m.target, m.hasTarget = loc, ok
	if ok {
		m.deps.Feedback.Highlight(loc)
	} else {
		m.deps.Feedback.ClearHighlight()
	}
}

// resolve returns the drop target under p. Filter-hidden slots are not
// targets; equipped slots never are hidden.
func (m *Machine) resolve(p Point) (inventory.Location, bool) {
	loc, ok := m.deps.Targets.SlotAt(p)
	if !ok {
		return inventory.Location{}, false
	}
	if loc.Area != inventory.AreaEquipped && m.deps.Board.Hidden(loc) {
		return inventory.Location{}, false
	}
	return loc, true
}

// Release ends the gesture. An armed release is a tap and opens the item's
// details. A drag released over a valid target other than its source commits
// exactly one MoveBetween, whose result is reported and returned.
func (m *Machine) Release(ev PointerEvent) error {
	switch {
	case m.state == StateIdle:
		return nil
	case ev.ID != m.pointer:
		m.Cancel()
		return nil
	}
	if m.state == StateArmed {
		req := DetailRequest{Location: m.source, ItemID: m.item}
		m.reset()
		m.deps.Details.Open(req)
		return nil
	}

	m.track(ev.Pos)
	from, to, ok := m.source, m.target, m.hasTarget
	m.reset()
	if !ok || from == to {
		return nil
	}
	err := m.deps.Board.MoveBetween(from, to)
	if err != nil {
		m.deps.Logger.Debug("drop rejected", zap.Stringer("from", from), zap.Stringer("to", to), zap.Error(err))
		m.deps.Notifier.Move(err)
	}
	return err
}

// Cancel abandons the gesture without touching the board.
func (m *Machine) Cancel() {
	if m.state == StateIdle {
		return
	}
	m.reset()
}

func (m *Machine) reset() {
	if m.state == StateDragging {
		m.deps.Feedback.HideProxy()
	}
	if m.hasTarget {
		m.deps.Feedback.ClearHighlight()
	}
	if m.captured {
		m.deps.Feedback.Release(m.pointer)
	}
	*m = Machine{deps: m.deps}
}
