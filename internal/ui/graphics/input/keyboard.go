package input

import (
	"gridsnake/internal/domain"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var directionKeys = []struct {
	keys []ebiten.Key
	dir  domain.Direction
}{
	{[]ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}, domain.DirectionUp},
	{[]ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}, domain.DirectionDown},
	{[]ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, domain.DirectionLeft},
	{[]ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, domain.DirectionRight},
}

type KeyboardHandler struct{}

func NewKeyboardHandler() *KeyboardHandler {
	return &KeyboardHandler{}
}

// Update returns every direction key pressed this frame, in table order.
// Each one has to reach the input buffer on its own: a reversal in the
// batch is rejected there without dropping the turns around it.
func (kh *KeyboardHandler) Update() []domain.Direction {
	var dirs []domain.Direction
	for _, entry := range directionKeys {
		for _, key := range entry.keys {
			if inpututil.IsKeyJustPressed(key) {
				dirs = append(dirs, entry.dir)
				break
			}
		}
	}
	return dirs
}

func IsEscapePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

func IsEnterPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter)
}

func IsRestartPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyR)
}

func IsTabPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyTab)
}
