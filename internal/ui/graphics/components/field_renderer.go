package components

import (
	"gridsnake/internal/domain"
	"gridsnake/internal/engine"
	"gridsnake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// FieldRenderer draws the board. The configured cell size is used when it
// fits the window and shrunk otherwise, so a resize never clips the board.
type FieldRenderer struct {
	CellSize int
	OffsetX  int
	OffsetY  int
	Size     int
}

func NewFieldRenderer() *FieldRenderer {
	return &FieldRenderer{
		CellSize: 20,
		OffsetX:  30,
		OffsetY:  60,
	}
}

// CalculateLayout fits the board into the area of the given size whose
// top-left corner is (x, y), centred horizontally.
func (fr *FieldRenderer) CalculateLayout(x, y, width, height int, layout engine.Layout) {
	if layout.TileCount <= 0 {
		return
	}
	tiles := int(layout.TileCount)

	fr.CellSize = int(layout.CellSize)
	if fit := width / tiles; fit < fr.CellSize {
		fr.CellSize = fit
	}
	if fit := height / tiles; fit < fr.CellSize {
		fr.CellSize = fit
	}
	if fr.CellSize < 3 {
		fr.CellSize = 3
	}

	fr.Size = fr.CellSize * tiles
	fr.OffsetX = x + (width-fr.Size)/2
	fr.OffsetY = y
}

func (fr *FieldRenderer) DrawField(screen *ebiten.Image) {
	size := float32(fr.Size)

	vector.DrawFilledRect(screen,
		float32(fr.OffsetX-10), float32(fr.OffsetY-10),
		size+20, size+20,
		types.ColorFrame, false)

	vector.DrawFilledRect(screen,
		float32(fr.OffsetX), float32(fr.OffsetY),
		size, size,
		types.ColorFieldBg, false)

	vector.StrokeRect(screen,
		float32(fr.OffsetX-1), float32(fr.OffsetY-1),
		size+2, size+2,
		2, types.ColorFieldBorder, false)
}

func (fr *FieldRenderer) DrawFood(screen *ebiten.Image, food domain.Coord) {
	half := float32(fr.CellSize) / 2
	cx := float32(fr.OffsetX+int(food.X)*fr.CellSize) + half
	cy := float32(fr.OffsetY+int(food.Y)*fr.CellSize) + half

	radius := half - 2
	if radius < 1 {
		radius = 1
	}
	vector.DrawFilledCircle(screen, cx, cy, radius, types.ColorFood, true)
}

// DrawSnake draws segments head first; the head gets its own colour.
func (fr *FieldRenderer) DrawSnake(screen *ebiten.Image, segments []domain.Coord, dead bool) {
	size := float32(fr.CellSize - 2)

	for i, cell := range segments {
		x := float32(fr.OffsetX + int(cell.X)*fr.CellSize + 1)
		y := float32(fr.OffsetY + int(cell.Y)*fr.CellSize + 1)

		cellColor := types.ColorSnakeBody
		if i == 0 {
			cellColor = types.ColorSnakeHead
		}
		if dead {
			cellColor = types.Darken(cellColor, 0.5)
		}

		vector.DrawFilledRect(screen, x, y, size, size, cellColor, false)
	}
}
