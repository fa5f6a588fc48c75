package domain

import "errors"

var (
	// ErrInvalidConfiguration is returned when a GameConfig cannot host a game.
	ErrInvalidConfiguration = errors.New("invalid game configuration")

	// ErrStarvedPlacement means there is no free cell left for food.
	ErrStarvedPlacement = errors.New("no free cell for food")
)
