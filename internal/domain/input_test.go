package domain

import "testing"

func TestInputBufferReversal(t *testing.T) {
	tests := []struct {
		name      string
		committed Direction
		request   Direction
		accepted  bool
		pending   Direction
	}{
		{"reverse right", DirectionRight, DirectionLeft, false, DirectionRight},
		{"reverse left", DirectionLeft, DirectionRight, false, DirectionLeft},
		{"reverse up", DirectionUp, DirectionDown, false, DirectionUp},
		{"reverse down", DirectionDown, DirectionUp, false, DirectionDown},
		{"same direction", DirectionRight, DirectionRight, true, DirectionRight},
		{"turn up", DirectionRight, DirectionUp, true, DirectionUp},
		{"turn down", DirectionRight, DirectionDown, true, DirectionDown},
		{"turn left from up", DirectionUp, DirectionLeft, true, DirectionLeft},
		{"none is ignored", DirectionUp, DirectionNone, false, DirectionUp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewInputBuffer(tt.committed)

			if got := b.Accept(tt.request); got != tt.accepted {
				t.Errorf("Accept(%v): expected %v, got %v", tt.request, tt.accepted, got)
			}
			if b.Pending() != tt.pending {
				t.Errorf("Expected pending %v, got %v", tt.pending, b.Pending())
			}
			if b.Committed() != tt.committed {
				t.Errorf("Accept changed committed direction to %v", b.Committed())
			}
		})
	}
}

func TestInputBufferComparesAgainstCommitted(t *testing.T) {
	b := NewInputBuffer(DirectionRight)

	// Up is a legal turn; Left would be legal relative to Up but reverses
	// the direction actually travelled.
	if !b.Accept(DirectionUp) {
		t.Fatal("Expected Up to be accepted")
	}
	if b.Accept(DirectionLeft) {
		t.Error("Expected Left to be rejected while Right is committed")
	}
	if b.Pending() != DirectionUp {
		t.Errorf("Expected pending Up, got %v", b.Pending())
	}

	b.Commit()
	if !b.Accept(DirectionLeft) {
		t.Error("Expected Left to be accepted once Up is committed")
	}
}

func TestInputBufferLastWriteWins(t *testing.T) {
	b := NewInputBuffer(DirectionUp)

	for _, dir := range []Direction{DirectionLeft, DirectionRight, DirectionLeft, DirectionUp, DirectionRight} {
		b.Accept(dir)
	}
	if b.Pending() != DirectionRight {
		t.Errorf("Expected pending Right, got %v", b.Pending())
	}
}
