package app

import (
	"context"
	"fmt"
	"log"
	"sync"

	"golang.org/x/sync/errgroup"

	"gridsnake/internal/domain"
	"gridsnake/internal/engine"
	"gridsnake/internal/store"
)

// App wires one engine to a front-end. Engine events are relayed as
// AppEvents; input arrives either through the methods below or through the
// Input channel.
type App struct {
	store store.Store
	rng   domain.Rand

	mu     sync.RWMutex
	engine *engine.Engine
	sinks  []engine.RenderSink

	swapCh  chan *engine.Engine
	eventCh chan AppEvent
	inputCh chan InputEvent

	ctx    context.Context
	cancel context.CancelFunc
	group  *errgroup.Group
}

type AppEvent struct {
	Type    AppEventType
	Payload interface{}
}

type AppEventType int

const (
	AppEventStarted AppEventType = iota
	AppEventScoreChanged
	AppEventGameOver
	AppEventReconfigured
	AppEventError
)

type InputEvent struct {
	Type    InputEventType
	Payload interface{}
}

type InputEventType int

const (
	InputStartGame InputEventType = iota
	InputSteer
	InputStopGame
	InputReconfigure
	InputQuit
)

type ErrorPayload struct {
	Message string
}

// ReconfiguredPayload carries the settings the new engine runs with.
type ReconfiguredPayload struct {
	Config *domain.GameConfig
	Layout engine.Layout
}

func NewApp(opts *Options) (*App, error) {
	st := opts.OpenStore()
	rng := opts.Rand()

	eng, err := engine.New(engine.Config{
		Game:  opts.Game,
		Store: st,
		Rand:  rng,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}

	return &App{
		store:   st,
		rng:     rng,
		engine:  eng,
		swapCh:  make(chan *engine.Engine, 1),
		eventCh: make(chan AppEvent, 100),
		inputCh: make(chan InputEvent, 100),
	}, nil
}

func (a *App) Start(ctx context.Context) error {
	a.ctx, a.cancel = context.WithCancel(ctx)
	a.group, a.ctx = errgroup.WithContext(a.ctx)

	a.group.Go(a.eventLoop)
	a.group.Go(a.inputLoop)

	log.Printf("App started (tiles=%d, tick=%s)", a.GameConfig().TileCount, a.GameConfig().TickInterval())

	return nil
}

func (a *App) Stop() {
	if a.cancel != nil {
		a.cancel()
	}

	a.Engine().Stop()

	if a.group != nil {
		if err := a.group.Wait(); err != nil {
			log.Printf("App loops stopped with error: %v", err)
		}
	}
}

func (a *App) Events() <-chan AppEvent {
	return a.eventCh
}

func (a *App) Input() chan<- InputEvent {
	return a.inputCh
}

func (a *App) Engine() *engine.Engine {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.engine
}

func (a *App) GameConfig() *domain.GameConfig {
	return a.Engine().Config()
}

// AddSink attaches a renderer. It survives Reconfigure.
func (a *App) AddSink(sink engine.RenderSink) {
	a.mu.Lock()
	a.sinks = append(a.sinks, sink)
	eng := a.engine
	a.mu.Unlock()

	eng.AddSink(sink)
}

func (a *App) StartGame() error {
	ctx := a.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	return a.Engine().Start(ctx)
}

func (a *App) StopGame() {
	a.Engine().Stop()
}

func (a *App) Steer(dir domain.Direction) bool {
	return a.Engine().Steer(dir)
}

// SteerAll feeds the presses of one input frame to the engine one by one,
// in order, so a rejected reversal never hides a valid turn next to it.
func (a *App) SteerAll(dirs []domain.Direction) {
	eng := a.Engine()
	for _, dir := range dirs {
		eng.Steer(dir)
	}
}

func (a *App) Frame() engine.Frame {
	return a.Engine().Frame()
}

// Reconfigure replaces the engine with one built from cfg. The high score
// and the attached sinks carry over; the running session, if any, ends.
func (a *App) Reconfigure(cfg *domain.GameConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.engine.Stop()

	eng, err := engine.New(engine.Config{
		Game:  cfg,
		Store: a.store,
		Rand:  a.rng,
		Sinks: a.sinks,
	})
	if err != nil {
		return fmt.Errorf("failed to reconfigure: %w", err)
	}
	a.engine = eng

	select {
	case <-a.swapCh:
	default:
	}
	a.swapCh <- eng

	log.Printf("Reconfigured: tiles=%d, cell=%d, tick=%dms", cfg.TileCount, cfg.CellSize, cfg.TickDelayMs)
	return nil
}

func (a *App) eventLoop() error {
	events := a.Engine().Events()

	for {
		select {
		case <-a.ctx.Done():
			return nil

		case eng := <-a.swapCh:
			events = eng.Events()

		case event := <-events:
			a.handleEngineEvent(event)
		}
	}
}

func (a *App) handleEngineEvent(event engine.Event) {
	switch event.Type {
	case engine.EventStarted:
		a.send(AppEvent{Type: AppEventStarted, Payload: event.Payload})

	case engine.EventScoreChanged:
		a.send(AppEvent{Type: AppEventScoreChanged, Payload: event.Payload})

	case engine.EventGameOver:
		if payload, ok := event.Payload.(engine.GameOverPayload); ok {
			log.Printf("Game over: score=%d high=%d cause=%s", payload.Score, payload.HighScore, payload.Cause)
		}
		a.send(AppEvent{Type: AppEventGameOver, Payload: event.Payload})
	}
}

func (a *App) send(event AppEvent) {
	select {
	case a.eventCh <- event:
	default:
		log.Println("App event channel full, dropping event")
	}
}

func (a *App) inputLoop() error {
	for {
		select {
		case <-a.ctx.Done():
			return nil

		case input := <-a.inputCh:
			if quit := a.handleInput(input); quit {
				return nil
			}
		}
	}
}

func (a *App) handleInput(input InputEvent) bool {
	switch input.Type {
	case InputStartGame:
		if err := a.StartGame(); err != nil {
			log.Printf("Failed to start game: %v", err)
			a.send(AppEvent{
				Type:    AppEventError,
				Payload: ErrorPayload{Message: err.Error()},
			})
		}

	case InputSteer:
		switch payload := input.Payload.(type) {
		case domain.Direction:
			a.Steer(payload)
		case []domain.Direction:
			a.SteerAll(payload)
		}

	case InputStopGame:
		a.StopGame()

	case InputReconfigure:
		cfg, ok := input.Payload.(*domain.GameConfig)
		if !ok {
			return false
		}
		if err := a.Reconfigure(cfg); err != nil {
			log.Printf("Failed to apply settings: %v", err)
			a.send(AppEvent{
				Type:    AppEventError,
				Payload: ErrorPayload{Message: err.Error()},
			})
			return false
		}
		a.send(AppEvent{
			Type: AppEventReconfigured,
			Payload: ReconfiguredPayload{
				Config: a.GameConfig(),
				Layout: a.Engine().Layout(),
			},
		})

	case InputQuit:
		a.cancel()
		return true
	}
	return false
}
