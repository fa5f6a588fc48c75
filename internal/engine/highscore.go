package engine

import (
	"log"

	"gridsnake/internal/store"
)

func loadHighScore(s store.Store) int {
	v, ok, err := s.Get(store.HighScoreKey)
	if err != nil {
		log.Printf("ENGINE: high score unavailable, starting from 0: %v", err)
		return 0
	}
	if !ok || v < 0 {
		return 0
	}
	return int(v)
}

// persistHighScore writes score and returns the best value known, which
// may be higher when another process shares the store. Failures leave the
// score in memory for this session only.
func persistHighScore(s store.Store, score int) int {
	stored, err := store.Raise(s, store.HighScoreKey, int64(score))
	if err != nil {
		log.Printf("ENGINE: high score %d kept for this session only: %v", score, err)
		return score
	}
	if int(stored) > score {
		return int(stored)
	}
	log.Printf("ENGINE: new high score %d saved", score)
	return score
}
