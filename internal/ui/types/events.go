package types

import (
	"gridsnake/internal/domain"
)

type UIEvent struct {
	Type    UIEventType
	Payload interface{}
}

type UIEventType int

const (
	UIEventNone UIEventType = iota
	UIEventStartGame
	UIEventSteer
	UIEventExitGame
	UIEventApplyConfig
	UIEventQuit
	UIEventShowConfig
	UIEventShowMenu
)

// SteerData holds every direction pressed in one frame, in the order they
// should be fed to the engine.
type SteerData struct {
	Directions []domain.Direction
}

type ConfigData struct {
	Config *domain.GameConfig
}
