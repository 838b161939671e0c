package battle

// Keys is the input snapshot for one frame. A key is down if it was pressed
// at any point since the previous frame.
type Keys struct {
	Confirm bool // space
	Cancel  bool // enter
	Up      bool
	Down    bool
}

// latch gates a pair of keys so that holding them produces one action.
// It opens only on a frame where neither key is down, and closes after the
// first frame it was open.
type latch struct {
	open bool
}

// check reports whether input may be acted on this frame, then updates the
// latch from the keys' state.
func (l *latch) check(a, b bool) bool {
	allowed := l.open
	if allowed {
		l.open = false
	}
	if !a && !b {
		l.open = true
	}
	return allowed
}
