package domain

// InputBuffer holds the direction requested for the next tick. Reversal
// checks compare against the direction committed on the previous tick, not
// against the pending request, so any number of key presses between two
// ticks cannot turn the head back into the neck.
type InputBuffer struct {
	pending   Direction
	committed Direction
}

func NewInputBuffer(dir Direction) *InputBuffer {
	b := &InputBuffer{}
	b.Reset(dir)
	return b
}

func (b *InputBuffer) Reset(dir Direction) {
	b.pending = dir
	b.committed = dir
}

// Accept records dir as the pending direction unless it reverses the
// committed one. Returns whether the request was taken.
func (b *InputBuffer) Accept(dir Direction) bool {
	if !dir.Valid() {
		return false
	}
	if dir.IsOpposite(b.committed) {
		return false
	}
	b.pending = dir
	return true
}

func (b *InputBuffer) Pending() Direction {
	return b.pending
}

func (b *InputBuffer) Committed() Direction {
	return b.committed
}

// Commit marks the pending direction as applied.
func (b *InputBuffer) Commit() {
	b.committed = b.pending
}
