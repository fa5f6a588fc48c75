package domain

import (
	"fmt"
	"time"
)

const (
	// SpawnLength is the body length of a freshly started actor.
	SpawnLength = 3

	// FoodReward is added to the score for every food eaten.
	FoodReward = 10

	MaxTileCount = 100
)

type GameConfig struct {
	TileCount   int32
	CellSize    int32
	TickDelayMs int32
}

func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		TileCount:   20,
		CellSize:    20,
		TickDelayMs: 100,
	}
}

func (c *GameConfig) Validate() error {
	if c.TileCount <= SpawnLength*SpawnLength || c.TileCount > MaxTileCount {
		return fmt.Errorf("%w: tile count %d outside (%d, %d]",
			ErrInvalidConfiguration, c.TileCount, SpawnLength*SpawnLength, MaxTileCount)
	}
	if c.CellSize < 4 || c.CellSize > 64 {
		return fmt.Errorf("%w: cell size %d outside [4, 64]", ErrInvalidConfiguration, c.CellSize)
	}
	if c.TickDelayMs < 10 || c.TickDelayMs > 3000 {
		return fmt.Errorf("%w: tick delay %dms outside [10, 3000]", ErrInvalidConfiguration, c.TickDelayMs)
	}
	return nil
}

func (c *GameConfig) TickInterval() time.Duration {
	return time.Duration(c.TickDelayMs) * time.Millisecond
}

func (c *GameConfig) Copy() *GameConfig {
	return &GameConfig{
		TileCount:   c.TileCount,
		CellSize:    c.CellSize,
		TickDelayMs: c.TickDelayMs,
	}
}
