package engine

import (
	"github.com/google/uuid"

	"gridsnake/internal/domain"
)

// Events are the coarse, low-frequency notifications meant for score
// displays. Per-tick state goes through RenderSink instead.
type EventType int

const (
	EventStarted EventType = iota
	EventScoreChanged
	EventGameOver
)

type Event struct {
	Type    EventType
	Payload interface{}
}

type StartedPayload struct {
	Session   uuid.UUID
	HighScore int
}

type ScorePayload struct {
	Score int
}

type GameOverPayload struct {
	Session      uuid.UUID
	Score        int
	HighScore    int
	NewHighScore bool
	Cause        domain.GameOverCause
}
