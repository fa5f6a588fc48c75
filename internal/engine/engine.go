package engine

import (
	"context"
	"log"
	"math/rand"
	"sync"
	"time"

	"gridsnake/internal/domain"
	"gridsnake/internal/store"
)

type Config struct {
	Game  *domain.GameConfig
	Store store.Store
	Rand  domain.Rand
	Sinks []RenderSink
}

// Engine owns one game and the clock that drives it. Start, Stop and Steer
// may be called from any goroutine.
type Engine struct {
	config *domain.GameConfig
	store  store.Store

	// lifecycleMu serialises Start and Stop so at most one clock exists.
	lifecycleMu sync.Mutex
	cancel      context.CancelFunc
	done        chan struct{}

	mu         sync.Mutex
	state      *domain.GameState
	active     bool
	generation uint64

	sinksMu sync.RWMutex
	sinks   []RenderSink

	eventCh chan Event
}

func New(cfg Config) (*Engine, error) {
	gameConfig := cfg.Game
	if gameConfig == nil {
		gameConfig = domain.DefaultGameConfig()
	}
	if err := gameConfig.Validate(); err != nil {
		return nil, err
	}

	st := cfg.Store
	if st == nil {
		st = store.NewMemoryStore()
	}

	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	state, err := domain.NewGameState(gameConfig, rng, loadHighScore(st))
	if err != nil {
		return nil, err
	}

	return &Engine{
		config:  gameConfig.Copy(),
		store:   st,
		state:   state,
		sinks:   append([]RenderSink(nil), cfg.Sinks...),
		eventCh: make(chan Event, 100),
	}, nil
}

func (e *Engine) AddSink(sink RenderSink) {
	e.sinksMu.Lock()
	e.sinks = append(e.sinks, sink)
	e.sinksMu.Unlock()
}

func (e *Engine) Events() <-chan Event {
	return e.eventCh
}

func (e *Engine) Config() *domain.GameConfig {
	return e.config.Copy()
}

func (e *Engine) Layout() Layout {
	return Layout{
		TileCount: e.config.TileCount,
		CellSize:  e.config.CellSize,
	}
}

// Start begins a new session, from any status. A clock left over from a
// previous session is stopped and joined before the new one starts.
func (e *Engine) Start(ctx context.Context) error {
	e.lifecycleMu.Lock()
	defer e.lifecycleMu.Unlock()

	e.stopClock()

	e.mu.Lock()
	if err := e.state.Start(); err != nil {
		e.mu.Unlock()
		return err
	}
	e.active = true
	e.generation++
	gen := e.generation
	frame := e.frameLocked()
	e.mu.Unlock()

	clockCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	e.cancel = cancel
	e.done = done

	e.publish(frame)
	e.emit(Event{
		Type: EventStarted,
		Payload: StartedPayload{
			Session:   frame.Snapshot.Session,
			HighScore: frame.Snapshot.HighScore,
		},
	})

	go e.tickLoop(clockCtx, gen, done)

	log.Printf("ENGINE: session %s started (tiles=%d, tick=%s, high=%d)",
		frame.Snapshot.Session, e.config.TileCount, e.config.TickInterval(), frame.Snapshot.HighScore)

	return nil
}

// Stop halts the clock. No tick mutates the game after Stop returns.
func (e *Engine) Stop() {
	e.lifecycleMu.Lock()
	defer e.lifecycleMu.Unlock()

	e.stopClock()
}

func (e *Engine) stopClock() {
	if e.cancel != nil {
		e.cancel()
		<-e.done
		e.cancel = nil
		e.done = nil
	}

	e.mu.Lock()
	e.active = false
	e.mu.Unlock()
}

// Steer forwards a direction request to the input buffer. It returns false
// when no session is running or the request reverses the committed
// direction.
func (e *Engine) Steer(dir domain.Direction) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.active {
		return false
	}
	return e.state.Steer(dir)
}

func (e *Engine) Snapshot() domain.Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Snapshot()
}

// Frame returns the current frame, for sinks that need to redraw outside
// the tick cadence (mount, resize).
func (e *Engine) Frame() Frame {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.frameLocked()
}

func (e *Engine) Status() domain.Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Status
}

func (e *Engine) HighScore() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.HighScore
}

func (e *Engine) tickLoop(ctx context.Context, gen uint64, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(e.config.TickInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !e.doTick(ctx, gen) {
				return
			}
		}
	}
}

// doTick runs one step and reports whether the clock should keep going.
func (e *Engine) doTick(ctx context.Context, gen uint64) bool {
	e.mu.Lock()
	if !e.active || e.generation != gen || ctx.Err() != nil {
		e.mu.Unlock()
		return false
	}

	result := e.state.Tick()
	if result.GameOver {
		e.active = false
	}
	frame := e.frameLocked()
	e.mu.Unlock()

	// The store can block on another process's lock, so e.mu is not held.
	// Start joins this goroutine before it touches the state again.
	if result.HighScoreUpdated {
		best := persistHighScore(e.store, result.Score)

		e.mu.Lock()
		if best > e.state.HighScore {
			e.state.HighScore = best
		}
		frame = e.frameLocked()
		e.mu.Unlock()
	}

	e.publish(frame)

	if result.Ate {
		e.emit(Event{Type: EventScoreChanged, Payload: ScorePayload{Score: result.Score}})
	}

	if result.GameOver {
		log.Printf("ENGINE: session %s over (cause=%s, score=%d, high=%d)",
			frame.Snapshot.Session, result.Cause, result.Score, frame.Snapshot.HighScore)

		e.emit(Event{
			Type: EventGameOver,
			Payload: GameOverPayload{
				Session:      frame.Snapshot.Session,
				Score:        result.Score,
				HighScore:    frame.Snapshot.HighScore,
				NewHighScore: result.HighScoreUpdated,
				Cause:        result.Cause,
			},
		})
		return false
	}

	return true
}

func (e *Engine) frameLocked() Frame {
	return Frame{
		Snapshot: e.state.Snapshot(),
		Layout:   e.Layout(),
	}
}

func (e *Engine) publish(frame Frame) {
	e.sinksMu.RLock()
	sinks := e.sinks
	e.sinksMu.RUnlock()

	for _, sink := range sinks {
		sink.Render(frame)
	}
}

func (e *Engine) emit(event Event) {
	select {
	case e.eventCh <- event:
	default:
		log.Println("ENGINE: event channel full, dropping event")
	}
}
