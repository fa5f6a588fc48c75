package domain

type TickResult struct {
	Moved            bool
	Ate              bool
	GameOver         bool
	Cause            GameOverCause
	Score            int
	HighScoreUpdated bool
}

// Tick advances a running session by one step. It is a no-op in any other
// status.
//
// The self-collision test runs against the body before it moves, so
// entering the cell the tail is about to leave still ends the game.
func (gs *GameState) Tick() *TickResult {
	result := &TickResult{Score: gs.Score}
	if gs.Status != StatusRunning {
		return result
	}

	gs.TickCount++

	dir := gs.input.Pending()
	newHead := gs.Snake.Step(dir)

	if !gs.Field.Contains(newHead) {
		gs.finish(CauseWall, result)
		return result
	}
	if gs.Field.OccupiedBy(gs.Snake, newHead) {
		gs.finish(CauseSelf, result)
		return result
	}

	grew := newHead.Equals(gs.Food)
	gs.Snake.Advance(newHead, grew)
	gs.Snake.HeadDirection = dir
	gs.input.Commit()
	result.Moved = true

	if grew {
		gs.Score += FoodReward
		result.Ate = true
		result.Score = gs.Score

		food, err := PlaceFood(gs.Field, gs.Snake, gs.rng)
		if err != nil {
			gs.finish(CauseBoardFull, result)
			return result
		}
		gs.Food = food
	}

	return result
}

func (gs *GameState) finish(cause GameOverCause, result *TickResult) {
	gs.Status = StatusGameOver
	gs.Cause = cause

	result.GameOver = true
	result.Cause = cause
	result.Score = gs.Score

	if gs.Score > gs.HighScore {
		gs.HighScore = gs.Score
		result.HighScoreUpdated = true
	}
}
