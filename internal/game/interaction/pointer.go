package interaction

// PointerKind identifies the input device behind a pointer event.
type PointerKind string

// Pointer kinds.
const (
	PointerMouse PointerKind = "mouse"
	PointerTouch PointerKind = "touch"
	PointerPen   PointerKind = "pen"
)

// Point is a position in screen pixels.
type Point struct {
	X, Y float64
}

// PointerEvent is one press, move or release from a single pointer.
type PointerEvent struct {
	ID     int
	Kind   PointerKind
	Pos    Point
	Button int
}

// Thresholds are the drag start distances in pixels per device class.
type Thresholds struct {
	Mouse float64
	Touch float64
}

// DefaultThresholds returns 3px for mouse and pen and 10px for touch.
func DefaultThresholds() Thresholds {
	return Thresholds{Mouse: 3, Touch: 10}
}

// For returns the threshold that applies to kind. Pen uses the mouse value.
func (t Thresholds) For(kind PointerKind) float64 {
	if kind == PointerTouch {
		return t.Touch
	}
	return t.Mouse
}

// exceeded reports whether the displacement from a to b is strictly greater
// than limit. Distances are compared squared.
func exceeded(a, b Point, limit float64) bool {
	dx, dy := b.X-a.X, b.Y-a.Y
	return dx*dx+dy*dy > limit*limit
}
