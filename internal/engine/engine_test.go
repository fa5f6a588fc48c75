package engine

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"gridsnake/internal/domain"
	"gridsnake/internal/store"
)

// seqRand replays values in a loop.
type seqRand struct {
	values []int
	next   int
}

func (r *seqRand) Intn(n int) int {
	v := r.values[r.next%len(r.values)]
	r.next++
	return v % n
}

type recordingSink struct {
	mu     sync.Mutex
	frames []Frame
}

func (r *recordingSink) Render(frame Frame) {
	r.mu.Lock()
	r.frames = append(r.frames, frame)
	r.mu.Unlock()
}

func (r *recordingSink) Frames() []Frame {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Frame(nil), r.frames...)
}

type brokenStore struct{}

var errDiskGone = errors.New("disk gone")

func (brokenStore) Get(key string) (int64, bool, error) {
	return 0, false, errDiskGone
}

func (brokenStore) Set(key string, value int64) error {
	return errDiskGone
}

func fastConfig() *domain.GameConfig {
	cfg := domain.DefaultGameConfig()
	cfg.TickDelayMs = 10
	return cfg
}

func newTestEngine(t *testing.T, st store.Store, rng domain.Rand) (*Engine, *recordingSink) {
	t.Helper()
	sink := &recordingSink{}
	e, err := New(Config{
		Game:  fastConfig(),
		Store: st,
		Rand:  rng,
		Sinks: []RenderSink{sink},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(e.Stop)
	return e, sink
}

func waitForEvent(t *testing.T, e *Engine, typ EventType) Event {
	t.Helper()
	timeout := time.After(3 * time.Second)
	for {
		select {
		case ev := <-e.Events():
			if ev.Type == typ {
				return ev
			}
		case <-timeout:
			t.Fatalf("Timed out waiting for event %d", typ)
		}
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := domain.DefaultGameConfig()
	cfg.TileCount = 9

	if _, err := New(Config{Game: cfg}); !errors.Is(err, domain.ErrInvalidConfiguration) {
		t.Errorf("Expected ErrInvalidConfiguration, got %v", err)
	}
}

func TestEngineRunsIntoWall(t *testing.T) {
	e, sink := newTestEngine(t, store.NewMemoryStore(), &seqRand{values: []int{0, 19}})

	if err := e.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}

	ev := waitForEvent(t, e, EventGameOver)
	payload := ev.Payload.(GameOverPayload)
	if payload.Cause != domain.CauseWall {
		t.Errorf("Expected wall collision, got %v", payload.Cause)
	}
	if payload.Score != 0 || payload.NewHighScore {
		t.Errorf("Expected score 0 without a new high score, got %+v", payload)
	}
	if e.Status() != domain.StatusGameOver {
		t.Errorf("Expected game over status, got %v", e.Status())
	}

	frames := sink.Frames()
	// Mount frame, ten moves from y=10 to y=0, and the game over frame.
	if len(frames) != 12 {
		t.Fatalf("Expected 12 frames, got %d", len(frames))
	}
	first := frames[0].Snapshot
	if first.Head() != (domain.Coord{X: 10, Y: 10}) || len(first.Segments) != 3 {
		t.Errorf("Unexpected mount frame %+v", first)
	}
	second := frames[1].Snapshot
	if second.Head() != (domain.Coord{X: 10, Y: 9}) || len(second.Segments) != 3 {
		t.Errorf("Unexpected first tick frame %+v", second)
	}
	if frames[0].Layout.TileCount != 20 || frames[0].Layout.CellSize != 20 {
		t.Errorf("Unexpected layout %+v", frames[0].Layout)
	}

	// The clock is stopped: nothing more is rendered.
	time.Sleep(50 * time.Millisecond)
	if got := len(sink.Frames()); got != 12 {
		t.Errorf("Expected no frames after game over, got %d more", got-12)
	}
	if e.Steer(domain.DirectionLeft) {
		t.Error("Steer accepted after game over")
	}
}

func TestEngineEatsAndPersistsHighScore(t *testing.T) {
	st := store.NewMemoryStore()
	// First food lands on the actor's path at (10,5); the next at (0,0).
	e, _ := newTestEngine(t, st, &seqRand{values: []int{10, 5, 0, 0}})

	if err := e.Start(context.Background()); err != nil {
		t.Fatal(err)
	}

	scored := waitForEvent(t, e, EventScoreChanged)
	if got := scored.Payload.(ScorePayload).Score; got != domain.FoodReward {
		t.Errorf("Expected score %d, got %d", domain.FoodReward, got)
	}

	over := waitForEvent(t, e, EventGameOver).Payload.(GameOverPayload)
	if !over.NewHighScore || over.HighScore != domain.FoodReward {
		t.Errorf("Expected new high score %d, got %+v", domain.FoodReward, over)
	}

	if v, ok, _ := st.Get(store.HighScoreKey); !ok || v != domain.FoodReward {
		t.Errorf("Expected stored high score %d, got %d (ok=%v)", domain.FoodReward, v, ok)
	}
}

func TestEngineLoadsHighScore(t *testing.T) {
	st := store.NewMemoryStore()
	st.Set(store.HighScoreKey, 90)

	e, _ := newTestEngine(t, st, &seqRand{values: []int{0, 19}})
	if e.HighScore() != 90 {
		t.Fatalf("Expected high score 90, got %d", e.HighScore())
	}

	if err := e.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	waitForEvent(t, e, EventGameOver)

	if e.HighScore() != 90 {
		t.Errorf("Expected high score to stay 90, got %d", e.HighScore())
	}
	if v, _, _ := st.Get(store.HighScoreKey); v != 90 {
		t.Errorf("Expected stored 90, got %d", v)
	}
}

func TestEngineSurvivesBrokenStore(t *testing.T) {
	e, _ := newTestEngine(t, brokenStore{}, &seqRand{values: []int{10, 5, 0, 0}})

	if e.HighScore() != 0 {
		t.Fatalf("Expected high score 0, got %d", e.HighScore())
	}
	if err := e.Start(context.Background()); err != nil {
		t.Fatal(err)
	}

	over := waitForEvent(t, e, EventGameOver).Payload.(GameOverPayload)
	if over.HighScore != domain.FoodReward {
		t.Errorf("Expected session high score %d, got %d", domain.FoodReward, over.HighScore)
	}
	if e.HighScore() != domain.FoodReward {
		t.Errorf("Expected in-memory high score %d, got %d", domain.FoodReward, e.HighScore())
	}
}

func TestEngineStopHaltsClock(t *testing.T) {
	cfg := domain.DefaultGameConfig()
	cfg.TickDelayMs = 20
	sink := &recordingSink{}
	e, err := New(Config{Game: cfg, Rand: &seqRand{values: []int{0, 19}}, Sinks: []RenderSink{sink}})
	if err != nil {
		t.Fatal(err)
	}

	if err := e.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	time.Sleep(50 * time.Millisecond)
	e.Stop()

	before := e.Snapshot()
	count := len(sink.Frames())
	time.Sleep(60 * time.Millisecond)

	if got := len(sink.Frames()); got != count {
		t.Errorf("Expected %d frames after Stop, got %d", count, got)
	}
	if after := e.Snapshot(); after.Tick != before.Tick || after.Head() != before.Head() {
		t.Errorf("State changed after Stop: %+v -> %+v", before, after)
	}
	if e.Steer(domain.DirectionLeft) {
		t.Error("Steer accepted after Stop")
	}
}

func TestEngineRestartReplacesClock(t *testing.T) {
	e, sink := newTestEngine(t, nil, &seqRand{values: []int{0, 19}})

	if err := e.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	time.Sleep(35 * time.Millisecond)
	if err := e.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	second := e.Snapshot().Session
	waitForEvent(t, e, EventGameOver)

	var ticks []uint64
	for _, f := range sink.Frames() {
		if f.Snapshot.Session == second {
			ticks = append(ticks, f.Snapshot.Tick)
		}
	}
	for i, tick := range ticks {
		if tick != uint64(i) {
			t.Fatalf("Expected one clock per session, got ticks %v", ticks)
		}
	}
}

func TestEngineSteerTurnsActor(t *testing.T) {
	sink := &recordingSink{}
	e, err := New(Config{
		Game:  domain.DefaultGameConfig(),
		Rand:  &seqRand{values: []int{0, 19}},
		Sinks: []RenderSink{sink},
	})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(e.Stop)

	if err := e.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	if e.Steer(domain.DirectionDown) {
		t.Error("Expected reversal to be rejected")
	}
	if !e.Steer(domain.DirectionLeft) {
		t.Error("Expected Left to be accepted")
	}

	waitForEvent(t, e, EventGameOver)

	frames := sink.Frames()
	if len(frames) < 2 {
		t.Fatalf("Expected at least two frames, got %d", len(frames))
	}
	if head := frames[1].Snapshot.Head(); head != (domain.Coord{X: 9, Y: 10}) {
		t.Errorf("Expected first move to {9 10}, got %v", head)
	}
}

func TestEngineAddSink(t *testing.T) {
	e, _ := newTestEngine(t, nil, &seqRand{values: []int{0, 19}})

	var mu sync.Mutex
	var ticks []uint64
	e.AddSink(RenderFunc(func(frame Frame) {
		mu.Lock()
		ticks = append(ticks, frame.Snapshot.Tick)
		mu.Unlock()
	}))

	if err := e.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	waitForEvent(t, e, EventGameOver)

	mu.Lock()
	defer mu.Unlock()
	if len(ticks) != 12 || ticks[0] != 0 || ticks[11] != 11 {
		t.Errorf("Expected ticks 0..11, got %v", ticks)
	}
}

// blockingStore holds Set until released.
type blockingStore struct {
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

func newBlockingStore() *blockingStore {
	return &blockingStore{
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
}

func (s *blockingStore) Get(key string) (int64, bool, error) {
	return 0, false, nil
}

func (s *blockingStore) Set(key string, value int64) error {
	close(s.entered)
	<-s.release
	return nil
}

func (s *blockingStore) unblock() {
	s.once.Do(func() { close(s.release) })
}

func TestEngineSavesHighScoreOutsideLock(t *testing.T) {
	st := newBlockingStore()
	e, _ := newTestEngine(t, st, &seqRand{values: []int{10, 5, 0, 0}})
	t.Cleanup(st.unblock)

	if err := e.Start(context.Background()); err != nil {
		t.Fatal(err)
	}

	select {
	case <-st.entered:
	case <-time.After(3 * time.Second):
		t.Fatal("Timed out waiting for the high score to be saved")
	}

	snapCh := make(chan domain.Snapshot, 1)
	go func() {
		e.Steer(domain.DirectionLeft)
		snapCh <- e.Snapshot()
	}()

	select {
	case snap := <-snapCh:
		if snap.Status != domain.StatusGameOver {
			t.Errorf("Expected game over while saving, got %v", snap.Status)
		}
		if snap.HighScore != domain.FoodReward {
			t.Errorf("Expected high score %d, got %d", domain.FoodReward, snap.HighScore)
		}
	case <-time.After(time.Second):
		t.Fatal("Snapshot blocked while the high score was being saved")
	}

	st.unblock()
	over := waitForEvent(t, e, EventGameOver).Payload.(GameOverPayload)
	if !over.NewHighScore || over.HighScore != domain.FoodReward {
		t.Errorf("Expected new high score %d, got %+v", domain.FoodReward, over)
	}
}

// risingStore reports nothing on the first read and a higher value written
// by someone else afterwards.
type risingStore struct {
	mu    sync.Mutex
	reads int
}

func (s *risingStore) Get(key string) (int64, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reads++
	if s.reads == 1 {
		return 0, false, nil
	}
	return 500, true, nil
}

func (s *risingStore) Set(key string, value int64) error {
	return nil
}

func TestEngineAdoptsHigherStoredScore(t *testing.T) {
	e, sink := newTestEngine(t, &risingStore{}, &seqRand{values: []int{10, 5, 0, 0}})

	if err := e.Start(context.Background()); err != nil {
		t.Fatal(err)
	}

	over := waitForEvent(t, e, EventGameOver).Payload.(GameOverPayload)
	if over.HighScore != 500 {
		t.Errorf("Expected stored high score 500, got %d", over.HighScore)
	}
	if e.HighScore() != 500 {
		t.Errorf("Expected engine high score 500, got %d", e.HighScore())
	}

	frames := sink.Frames()
	if last := frames[len(frames)-1].Snapshot; last.HighScore != 500 {
		t.Errorf("Expected final frame to show 500, got %d", last.HighScore)
	}
}
