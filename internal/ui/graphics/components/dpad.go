package components

import (
	"gridsnake/internal/domain"

	"github.com/hajimehoshi/ebiten/v2"
)

const dpadKey = 50

// DPad is the on-screen arrow pad for touch and mouse play, laid out as
// one key on top and three underneath.
type DPad struct {
	up    *Button
	down  *Button
	left  *Button
	right *Button
}

func NewDPad() *DPad {
	return &DPad{
		up:    NewButton(0, 0, dpadKey, dpadKey, "^"),
		down:  NewButton(0, 0, dpadKey, dpadKey, "v"),
		left:  NewButton(0, 0, dpadKey, dpadKey, "<"),
		right: NewButton(0, 0, dpadKey, dpadKey, ">"),
	}
}

// Size is the pad's bounding box.
func (d *DPad) Size() (int, int) {
	gap := dpadKey / 5
	return 3*dpadKey + 2*gap, 2*dpadKey + gap
}

// SetPosition places the pad with its top-left corner at (x, y).
func (d *DPad) SetPosition(x, y int) {
	gap := dpadKey / 5
	step := dpadKey + gap

	d.up.SetPosition(x+step, y)
	d.left.SetPosition(x, y+step)
	d.down.SetPosition(x+step, y+step)
	d.right.SetPosition(x+2*step, y+step)
}

// Update returns the direction pressed this frame, or DirectionNone.
func (d *DPad) Update() domain.Direction {
	pressed := domain.DirectionNone
	for _, k := range []struct {
		btn *Button
		dir domain.Direction
	}{
		{d.up, domain.DirectionUp},
		{d.down, domain.DirectionDown},
		{d.left, domain.DirectionLeft},
		{d.right, domain.DirectionRight},
	} {
		if k.btn.Update() && pressed == domain.DirectionNone {
			pressed = k.dir
		}
	}
	return pressed
}

func (d *DPad) Draw(screen *ebiten.Image) {
	d.up.Draw(screen)
	d.down.Draw(screen)
	d.left.Draw(screen)
	d.right.Draw(screen)
}
