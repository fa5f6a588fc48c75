package components

import (
	"image"
	"image/color"

	"gridsnake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type Button struct {
	X, Y          int
	Width, Height int
	Text          string
	Enabled       bool
	Accent        bool
	hovered       bool
	pressed       bool
	touches       []ebiten.TouchID
}

func NewButton(x, y, width, height int, buttonText string) *Button {
	return &Button{
		X:       x,
		Y:       y,
		Width:   width,
		Height:  height,
		Text:    buttonText,
		Enabled: true,
	}
}

func (b *Button) contains(x, y int) bool {
	return image.Pt(x, y).In(image.Rect(b.X, b.Y, b.X+b.Width, b.Y+b.Height))
}

// Update reports a click: mouse press and release inside the button.
func (b *Button) Update() bool {
	if !b.Enabled {
		return false
	}

	mx, my := ebiten.CursorPosition()
	b.hovered = b.contains(mx, my)

	wasPressed := b.pressed
	b.pressed = b.hovered && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	return (wasPressed && !b.pressed && b.hovered) || b.Touched()
}

// Touched reports a touch that started inside the button this frame.
// Touch controls fire on press rather than release so steering stays
// responsive.
func (b *Button) Touched() bool {
	if !b.Enabled {
		return false
	}

	b.touches = inpututil.AppendJustPressedTouchIDs(b.touches[:0])
	for _, id := range b.touches {
		if b.contains(ebiten.TouchPosition(id)) {
			return true
		}
	}
	return false
}

func (b *Button) Draw(screen *ebiten.Image) {
	var bgColor color.RGBA
	switch {
	case !b.Enabled:
		bgColor = types.Darken(types.ColorButton, 0.5)
	case b.Accent && b.pressed:
		bgColor = types.Darken(types.ColorButtonAccent, 0.8)
	case b.Accent && b.hovered:
		bgColor = types.Lighten(types.Darken(types.ColorButtonAccent, 0.85), 1.1)
	case b.Accent:
		bgColor = types.ColorButtonAccent
	case b.pressed:
		bgColor = types.ColorButtonAccent
	case b.hovered:
		bgColor = types.ColorButtonHover
	default:
		bgColor = types.ColorButton
	}

	vector.DrawFilledRect(screen,
		float32(b.X), float32(b.Y),
		float32(b.Width), float32(b.Height),
		bgColor, false)

	vector.StrokeRect(screen,
		float32(b.X), float32(b.Y),
		float32(b.Width), float32(b.Height),
		1, types.ColorInputBorder, false)

	fonts := types.GetFonts()
	textColor := color.Color(types.ColorButtonText)
	if b.Accent || b.pressed {
		textColor = color.Black
	}
	if !b.Enabled {
		textColor = types.ColorTextDim
	}

	bounds := text.BoundString(fonts.Normal, b.Text)
	textX := b.X + (b.Width-bounds.Dx())/2
	textY := b.Y + (b.Height+bounds.Dy())/2

	text.Draw(screen, b.Text, fonts.Normal, textX, textY, textColor)
}

func (b *Button) SetPosition(x, y int) {
	b.X = x
	b.Y = y
}
