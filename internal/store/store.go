// Package store persists the high score. A Store holds named integer
// values; the engine only ever uses HighScoreKey.
package store

import (
	"errors"
	"fmt"
)

// HighScoreKey is the key the engine stores its high score under.
const HighScoreKey = "snakeHighScore"

// ErrPersistenceUnavailable wraps every failure to reach the backing
// storage. Callers are expected to degrade to an in-memory value.
var ErrPersistenceUnavailable = errors.New("persistent store unavailable")

type Store interface {
	// Get returns the stored value. ok is false when nothing was stored
	// under key, which is not an error.
	Get(key string) (value int64, ok bool, err error)
	Set(key string, value int64) error
}

// Raiser is implemented by stores that can do a compare-and-raise as one
// step.
type Raiser interface {
	Raise(key string, value int64) (int64, error)
}

// Raise stores value under key unless the stored value is already at least
// as large, and returns whichever is now stored.
func Raise(s Store, key string, value int64) (int64, error) {
	if r, ok := s.(Raiser); ok {
		return r.Raise(key, value)
	}

	current, ok, err := s.Get(key)
	if err != nil {
		return value, err
	}
	if ok && current >= value {
		return current, nil
	}
	if err := s.Set(key, value); err != nil {
		return value, err
	}
	return value, nil
}

func unavailable(op, key string, err error) error {
	return fmt.Errorf("%w: %s %q: %v", ErrPersistenceUnavailable, op, key, err)
}
