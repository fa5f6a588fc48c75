package domain

// Rand is the randomness source for food placement. *math/rand.Rand
// satisfies it.
type Rand interface {
	Intn(n int) int
}

// MaxPlacementAttempts bounds the rejection-sampling phase of PlaceFood.
const MaxPlacementAttempts = 100

// PlaceFood picks a uniformly random cell not occupied by snake. It draws
// random cells first and, once MaxPlacementAttempts draws have all landed on
// the body, samples from the list of free cells instead. ErrStarvedPlacement
// is returned when the snake covers the whole field.
func PlaceFood(field *Field, snake *Snake, rng Rand) (Coord, error) {
	n := int(field.TileCount)

	for attempts := 0; attempts < MaxPlacementAttempts; attempts++ {
		pos := Coord{
			X: int32(rng.Intn(n)),
			Y: int32(rng.Intn(n)),
		}
		if !field.OccupiedBy(snake, pos) {
			return pos, nil
		}
	}

	free := freeCells(field, snake)
	if len(free) == 0 {
		return Coord{}, ErrStarvedPlacement
	}
	return free[rng.Intn(len(free))], nil
}

func freeCells(field *Field, snake *Snake) []Coord {
	occupied := make(map[Coord]bool, snake.Length())
	for _, cell := range snake.Body {
		occupied[cell] = true
	}

	free := make([]Coord, 0, field.Cells()-len(occupied))
	for y := int32(0); y < field.TileCount; y++ {
		for x := int32(0); x < field.TileCount; x++ {
			pos := Coord{x, y}
			if !occupied[pos] {
				free = append(free, pos)
			}
		}
	}
	return free
}
