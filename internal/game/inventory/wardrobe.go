package inventory

// Wardrobe manages the growth and compaction of the unbounded wardrobe
// collection. It operates on the Slots it was built over; the length of those
// Slots is always a positive multiple of the row width.
type Wardrobe struct {
	slots   *Slots
	width   int
	minSize int
}

// NewWardrobe wraps slots with the given row width and minimum row count.
//
// Precondition: slots non-nil; width >= 1; minRows >= 1.
// Postcondition: *slots is padded to a whole number of rows, at least minRows.
func NewWardrobe(slots *Slots, width, minRows int) *Wardrobe {
	w := &Wardrobe{slots: slots, width: width, minSize: width * minRows}
	w.EnsureCapacity(len(*slots))
	return w
}

// Len returns the current wardrobe length.
func (w *Wardrobe) Len() int { return len(*w.slots) }

// EnsureCapacity grows the wardrobe to at least min slots, rounded up to a
// whole row and never below the minimum size. It never shrinks.
func (w *Wardrobe) EnsureCapacity(min int) {
	want := min
	if want < w.minSize {
		want = w.minSize
	}
	want = roundUpToRow(want, w.width)
	if len(*w.slots) < want {
		*w.slots = append(*w.slots, make(Slots, want-len(*w.slots))...)
	}
}

// ExpandOneRow appends exactly one row of empty slots.
func (w *Wardrobe) ExpandOneRow() {
	*w.slots = append(*w.slots, make(Slots, w.width)...)
}

// EnsureHasEmptyRow grows by one row when fewer than a row's worth of slots
// are empty.
func (w *Wardrobe) EnsureHasEmptyRow() {
	if w.slots.Empty() < w.width {
		w.ExpandOneRow()
	}
}

// Compact moves all items to the front in their original order and sizes the
// wardrobe to the smallest whole-row length holding every item plus one
// spare row, and at least the minimum size.
//
// Postcondition: occupied slots are contiguous from 0; Compact is idempotent.
func (w *Wardrobe) Compact() {
	items := w.slots.Items()
	size := roundUpToRow(len(items)+w.width, w.width)
	if size < w.minSize {
		size = w.minSize
	}
	out := make(Slots, size)
	copy(out, items)
	*w.slots = out
}

// Place stores id in the first empty slot, growing by a row when none exists,
// and grows once more if that write consumed the last empty slot so a drop
// target always remains.
//
// Postcondition: returns the index id was written to.
func (w *Wardrobe) Place(id string) int {
	idx := w.slots.FirstEmpty()
	if idx < 0 {
		w.ExpandOneRow()
		idx = w.slots.FirstEmpty()
	}
	(*w.slots)[idx] = id
	if w.slots.FirstEmpty() < 0 {
		w.ExpandOneRow()
	}
	return idx
}

// fit grows the wardrobe so index is addressable.
func (w *Wardrobe) fit(index int) {
	if index >= len(*w.slots) {
		w.EnsureCapacity(index + 1)
	}
}
