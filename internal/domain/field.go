package domain

// Field is the square play area. Cells outside [0, TileCount) on either
// axis are walls; there is no wrap-around.
type Field struct {
	TileCount int32
}

func NewField(tileCount int32) *Field {
	return &Field{
		TileCount: tileCount,
	}
}

func (f *Field) Contains(c Coord) bool {
	return c.X >= 0 && c.X < f.TileCount && c.Y >= 0 && c.Y < f.TileCount
}

// OccupiedBy reports whether c is any segment of snake, tail included.
func (f *Field) OccupiedBy(snake *Snake, c Coord) bool {
	if snake == nil {
		return false
	}
	for _, cell := range snake.Body {
		if cell.Equals(c) {
			return true
		}
	}
	return false
}

func (f *Field) Cells() int {
	return int(f.TileCount) * int(f.TileCount)
}

// Spawn returns the initial body for a new session: a vertical line of
// SpawnLength cells starting at the centre and extending downwards, so the
// actor starts heading up with its body behind it.
func (f *Field) Spawn() []Coord {
	center := f.TileCount / 2
	cells := make([]Coord, 0, SpawnLength)
	for i := int32(0); i < SpawnLength; i++ {
		cells = append(cells, Coord{X: center, Y: center + i})
	}
	return cells
}
