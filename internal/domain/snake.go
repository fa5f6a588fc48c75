package domain

// Snake is the player-controlled actor. Body is ordered head first.
type Snake struct {
	Body          []Coord
	HeadDirection Direction
}

func NewSnake(spawn []Coord, dir Direction) *Snake {
	s := &Snake{}
	s.Reset(spawn, dir)
	return s
}

// Reset replaces the body with a copy of spawn and points the actor at dir.
func (s *Snake) Reset(spawn []Coord, dir Direction) {
	body := make([]Coord, len(spawn), len(spawn)+8)
	copy(body, spawn)
	s.Body = body
	s.HeadDirection = dir
}

func (s *Snake) Head() Coord {
	if len(s.Body) == 0 {
		return Coord{}
	}
	return s.Body[0]
}

func (s *Snake) Tail() Coord {
	if len(s.Body) == 0 {
		return Coord{}
	}
	return s.Body[len(s.Body)-1]
}

func (s *Snake) Length() int {
	return len(s.Body)
}

// Step returns the cell the head would enter moving in dir. The body is
// left untouched; the caller decides whether the move happens.
func (s *Snake) Step(dir Direction) Coord {
	return s.Head().Add(dir.Delta())
}

// Advance moves the head to newHead. The tail is dropped unless grew is
// set, in which case the length goes up by one.
func (s *Snake) Advance(newHead Coord, grew bool) {
	s.Body = append(s.Body, Coord{})
	copy(s.Body[1:], s.Body[:len(s.Body)-1])
	s.Body[0] = newHead

	if !grew {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

// Segments returns a copy of the body safe to hand to another goroutine.
func (s *Snake) Segments() []Coord {
	out := make([]Coord, len(s.Body))
	copy(out, s.Body)
	return out
}

func (s *Snake) Copy() *Snake {
	return &Snake{
		Body:          s.Segments(),
		HeadDirection: s.HeadDirection,
	}
}
