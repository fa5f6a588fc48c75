package graphics

import (
	"log"
	"sync"

	"gridsnake/internal/engine"
	"gridsnake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	windowPadding = 30
	headerHeight  = 60
	controlsSpace = 170
	minWidth      = 360
)

// Engine is the ebiten front-end. It is an engine.RenderSink: frames arrive
// from the simulation clock and are drawn on the next ebiten Draw.
type Engine struct {
	width  int
	height int

	currentScreen types.ScreenType
	screenMap     map[types.ScreenType]types.Screen

	frame    engine.Frame
	hasFrame bool
	dataMu   sync.RWMutex

	eventCh chan types.UIEvent
}

func NewEngine(layout engine.Layout) *Engine {
	types.GetFonts()

	w, h := WindowSize(layout)
	return &Engine{
		width:         w,
		height:        h,
		currentScreen: types.ScreenMenu,
		screenMap:     make(map[types.ScreenType]types.Screen),
		eventCh:       make(chan types.UIEvent, 100),
	}
}

// WindowSize is the initial window size for a board of the given layout.
func WindowSize(layout engine.Layout) (int, int) {
	board := int(layout.TileCount * layout.CellSize)
	w := board + 2*windowPadding
	if w < minWidth {
		w = minWidth
	}
	return w, headerHeight + board + controlsSpace
}

func (e *Engine) RegisterScreens(
	menu types.Screen,
	config types.Screen,
	game types.Screen,
) {
	e.screenMap[types.ScreenMenu] = menu
	e.screenMap[types.ScreenConfig] = config
	e.screenMap[types.ScreenGame] = game
}

func (e *Engine) Run() error {
	ebiten.SetWindowSize(e.width, e.height)
	ebiten.SetWindowTitle("Snake")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	return ebiten.RunGame(e)
}

// Render implements engine.RenderSink.
func (e *Engine) Render(frame engine.Frame) {
	e.dataMu.Lock()
	e.frame = frame
	e.hasFrame = true
	e.dataMu.Unlock()
}

// Resize sets the window for a new board layout.
func (e *Engine) Resize(layout engine.Layout) {
	w, h := WindowSize(layout)
	ebiten.SetWindowSize(w, h)
}

func (e *Engine) Update() error {
	e.width, e.height = ebiten.WindowSize()

	screen := e.screenMap[e.currentScreen]
	if screen == nil {
		return nil
	}
	event := screen.Update()

	e.handleEvent(event)

	return nil
}

func (e *Engine) Draw(screen *ebiten.Image) {
	currentScreen := e.screenMap[e.currentScreen]
	if currentScreen == nil {
		return
	}

	if updater, ok := currentScreen.(FrameUpdater); ok {
		e.dataMu.RLock()
		updater.SetFrame(e.frame, e.hasFrame)
		e.dataMu.RUnlock()
	}

	currentScreen.Draw(screen)
}

func (e *Engine) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func (e *Engine) Size() (int, int) {
	return e.width, e.height
}

func (e *Engine) Events() <-chan types.UIEvent {
	return e.eventCh
}

func (e *Engine) SetScreen(screen types.ScreenType) {
	if e.currentScreen != screen {
		if s := e.screenMap[e.currentScreen]; s != nil {
			s.OnExit()
		}
		e.currentScreen = screen
		if s := e.screenMap[e.currentScreen]; s != nil {
			s.OnEnter()
		}
	}
}

func (e *Engine) SetError(err string) {
	if s, ok := e.screenMap[e.currentScreen].(ErrorSetter); ok {
		s.SetError(err)
	}
}

func (e *Engine) SetMessage(msg string) {
	if s, ok := e.screenMap[e.currentScreen].(MessageSetter); ok {
		s.SetMessage(msg)
	}
}

func (e *Engine) handleEvent(event types.UIEvent) {
	switch event.Type {
	case types.UIEventNone:
		return

	case types.UIEventShowMenu:
		e.SetScreen(types.ScreenMenu)

	case types.UIEventShowConfig:
		e.SetScreen(types.ScreenConfig)

	case types.UIEventStartGame:
		e.SetScreen(types.ScreenGame)
		e.forward(event)

	case types.UIEventExitGame:
		e.SetScreen(types.ScreenMenu)
		e.forward(event)

	default:
		e.forward(event)
	}
}

func (e *Engine) forward(event types.UIEvent) {
	select {
	case e.eventCh <- event:
	default:
		log.Println("Event channel full, dropping event")
	}
}

type FrameUpdater interface {
	SetFrame(frame engine.Frame, ok bool)
}

type ErrorSetter interface {
	SetError(err string)
}

type MessageSetter interface {
	SetMessage(msg string)
}
