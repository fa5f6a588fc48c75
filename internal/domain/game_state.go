package domain

import (
	"fmt"

	"github.com/google/uuid"
)

type Status int

const (
	StatusIdle Status = iota
	StatusRunning
	StatusGameOver
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusGameOver:
		return "game over"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// GameOverCause says why the last session ended.
type GameOverCause int

const (
	CauseNone GameOverCause = iota
	CauseWall
	CauseSelf
	CauseBoardFull
)

func (c GameOverCause) String() string {
	switch c {
	case CauseWall:
		return "wall"
	case CauseSelf:
		return "self"
	case CauseBoardFull:
		return "board full"
	}
	return "none"
}

// GameState is one engine's worth of game data: the current session plus
// the high score carried across sessions. It is not safe for concurrent
// use; the engine serialises access.
type GameState struct {
	Session   uuid.UUID
	TickCount uint64
	Field     *Field
	Config    *GameConfig
	Snake     *Snake
	Food      Coord
	Score     int
	HighScore int
	Status    Status
	Cause     GameOverCause

	input *InputBuffer
	rng   Rand
}

func NewGameState(config *GameConfig, rng Rand, highScore int) (*GameState, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if highScore < 0 {
		highScore = 0
	}

	field := NewField(config.TileCount)
	return &GameState{
		Field:     field,
		Config:    config.Copy(),
		Snake:     NewSnake(field.Spawn(), DirectionNone),
		HighScore: highScore,
		Status:    StatusIdle,
		input:     NewInputBuffer(DirectionNone),
		rng:       rng,
	}, nil
}

// Start begins a new session from any status. Everything except the high
// score is reset.
func (gs *GameState) Start() error {
	gs.Snake.Reset(gs.Field.Spawn(), DirectionUp)
	gs.input.Reset(DirectionUp)
	gs.Score = 0
	gs.TickCount = 0
	gs.Cause = CauseNone

	food, err := PlaceFood(gs.Field, gs.Snake, gs.rng)
	if err != nil {
		gs.Status = StatusIdle
		return fmt.Errorf("start session: %w", err)
	}
	gs.Food = food
	gs.Session = uuid.New()
	gs.Status = StatusRunning
	return nil
}

// Steer queues a direction for the next tick. Requests outside a running
// session and reversals of the committed direction are ignored.
func (gs *GameState) Steer(dir Direction) bool {
	if gs.Status != StatusRunning {
		return false
	}
	return gs.input.Accept(dir)
}

func (gs *GameState) PendingDirection() Direction {
	return gs.input.Pending()
}

func (gs *GameState) IsRunning() bool {
	return gs.Status == StatusRunning
}

// Snapshot is a read-only copy of what a renderer needs for one frame.
type Snapshot struct {
	Session   uuid.UUID
	Tick      uint64
	TileCount int32
	Segments  []Coord
	Food      Coord
	Direction Direction
	Score     int
	HighScore int
	Status    Status
	Cause     GameOverCause
}

func (s Snapshot) Head() Coord {
	if len(s.Segments) == 0 {
		return Coord{}
	}
	return s.Segments[0]
}

func (gs *GameState) Snapshot() Snapshot {
	return Snapshot{
		Session:   gs.Session,
		Tick:      gs.TickCount,
		TileCount: gs.Field.TileCount,
		Segments:  gs.Snake.Segments(),
		Food:      gs.Food,
		Direction: gs.Snake.HeadDirection,
		Score:     gs.Score,
		HighScore: gs.HighScore,
		Status:    gs.Status,
		Cause:     gs.Cause,
	}
}
