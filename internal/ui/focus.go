package ui

// FieldID names a focusable control within a step.
type FieldID string

// FocusRing tracks and rotates focus across a step's controls.
type FocusRing struct {
	Current FieldID   // ID of the currently focused control
	Order   []FieldID // Tab order for focus rotation
}

// NewFocusRing returns a ring focused on the first control in order.
func NewFocusRing(order ...FieldID) *FocusRing {
	r := &FocusRing{Order: order}
	if len(order) > 0 {
		r.Current = order[0]
	}
	return r
}

// Next moves focus to the following control, wrapping at the end.
func (r *FocusRing) Next() FieldID {
	return r.step(1)
}

// Prev moves focus to the preceding control, wrapping at the start.
func (r *FocusRing) Prev() FieldID {
	return r.step(-1)
}

func (r *FocusRing) step(delta int) FieldID {
	n := len(r.Order)
	if n == 0 {
		return ""
	}
	idx := r.index()
	if idx < 0 {
		// Unknown current: forward lands on the first control, back on the last.
		if delta > 0 {
			idx = -1
		} else {
			idx = 0
		}
	}
	r.Current = r.Order[((idx+delta)%n+n)%n]
	return r.Current
}

// Is reports whether id has focus.
func (r *FocusRing) Is(id FieldID) bool {
	return r.Current == id
}

func (r *FocusRing) index() int {
	for i, id := range r.Order {
		if id == r.Current {
			return i
		}
	}
	return -1
}
