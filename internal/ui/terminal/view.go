// Package terminal is a tcell front-end. It draws frames as text and maps
// keys onto the same controller calls the graphical front-end makes.
package terminal

import (
	"fmt"
	"log"
	"sync"

	"gridsnake/internal/domain"
	"gridsnake/internal/engine"

	"github.com/gdamore/tcell/v2"
)

// Controller is the part of the app the view drives.
type Controller interface {
	StartGame() error
	StopGame()
	Steer(dir domain.Direction) bool
}

var (
	styleDefault = tcell.StyleDefault
	styleBorder  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(85, 85, 85))
	styleHead    = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0, 204, 106))
	styleBody    = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0, 255, 136))
	styleDead    = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0, 102, 53))
	styleFood    = tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 51, 51))
	styleDim     = tcell.StyleDefault.Foreground(tcell.NewRGBColor(150, 150, 150))
	styleAccent  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0, 255, 136)).Bold(true)
)

const (
	cellWidth = 2 // terminal cells are about twice as tall as wide
	boardTop  = 1
)

// View is an engine.RenderSink. Render only posts the frame into the tcell
// event queue; all drawing happens on the goroutine running Run.
type View struct {
	screen tcell.Screen
	ctrl   Controller

	mu       sync.Mutex
	frame    engine.Frame
	hasFrame bool
	message  string
}

func NewView(screen tcell.Screen, ctrl Controller) *View {
	return &View{
		screen: screen,
		ctrl:   ctrl,
	}
}

// Render implements engine.RenderSink.
func (v *View) Render(frame engine.Frame) {
	if err := v.screen.PostEvent(tcell.NewEventInterrupt(frame)); err != nil {
		log.Printf("TERMINAL: dropping frame %d: %v", frame.Snapshot.Tick, err)
	}
}

func (v *View) SetMessage(msg string) {
	v.mu.Lock()
	v.message = msg
	v.mu.Unlock()
	v.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

// Run polls terminal events until the user quits or quit is closed.
func (v *View) Run(quit <-chan struct{}) {
	eventCh := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				close(eventCh)
				return
			}
			eventCh <- ev
		}
	}()

	v.draw()

	for {
		select {
		case <-quit:
			return
		case ev, ok := <-eventCh:
			if !ok || !v.handleEvent(ev) {
				return
			}
		}
	}
}

// handleEvent reports whether the view should keep running.
func (v *View) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventInterrupt:
		if frame, ok := ev.Data().(engine.Frame); ok {
			v.mu.Lock()
			v.frame = frame
			v.hasFrame = true
			v.mu.Unlock()
		}
		v.draw()

	case *tcell.EventResize:
		v.screen.Sync()
		v.draw()

	case *tcell.EventKey:
		return v.handleKey(ev)
	}
	return true
}

func (v *View) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		v.ctrl.StopGame()
		return false
	case tcell.KeyEnter:
		v.restart()
		return true
	case tcell.KeyUp:
		v.ctrl.Steer(domain.DirectionUp)
	case tcell.KeyDown:
		v.ctrl.Steer(domain.DirectionDown)
	case tcell.KeyLeft:
		v.ctrl.Steer(domain.DirectionLeft)
	case tcell.KeyRight:
		v.ctrl.Steer(domain.DirectionRight)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			v.ctrl.StopGame()
			return false
		case 'r', 'R', ' ':
			v.restart()
		case 'w', 'W':
			v.ctrl.Steer(domain.DirectionUp)
		case 's', 'S':
			v.ctrl.Steer(domain.DirectionDown)
		case 'a', 'A':
			v.ctrl.Steer(domain.DirectionLeft)
		case 'd', 'D':
			v.ctrl.Steer(domain.DirectionRight)
		}
	}
	return true
}

// restart starts a session unless one is already running.
func (v *View) restart() {
	v.mu.Lock()
	running := v.hasFrame && v.frame.Snapshot.Status == domain.StatusRunning
	v.mu.Unlock()

	if running {
		return
	}
	if err := v.ctrl.StartGame(); err != nil {
		log.Printf("TERMINAL: start failed: %v", err)
		v.SetMessage(err.Error())
	}
}

func (v *View) draw() {
	v.mu.Lock()
	frame, hasFrame, message := v.frame, v.hasFrame, v.message
	v.mu.Unlock()

	v.screen.Clear()

	if !hasFrame {
		v.drawText(0, 0, "Press ENTER to start, q to quit", styleDim)
		v.screen.Show()
		return
	}

	snap := frame.Snapshot
	tiles := int(frame.Layout.TileCount)
	width := tiles*cellWidth + 2

	v.drawText(0, 0, fmt.Sprintf("Score: %d", snap.Score), styleDefault)
	high := fmt.Sprintf("High score: %d", snap.HighScore)
	v.drawText(width-len(high), 0, high, styleDefault)

	v.drawBorder(width, tiles+2)

	v.setCell(snap.Food, '●', styleFood)

	dead := snap.Status == domain.StatusGameOver
	for i := len(snap.Segments) - 1; i >= 0; i-- {
		style := styleBody
		if i == 0 {
			style = styleHead
		}
		if dead {
			style = styleDead
		}
		v.setCell(snap.Segments[i], '█', style)
	}

	footer := boardTop + tiles + 2
	switch snap.Status {
	case domain.StatusGameOver:
		v.drawText(0, footer, gameOverText(snap), styleAccent)
		v.drawText(0, footer+1, "r or ENTER to play again, q to quit", styleDim)
	case domain.StatusIdle:
		v.drawText(0, footer, "Press ENTER to start, q to quit", styleDim)
	default:
		v.drawText(0, footer, "arrows or WASD to move, q to quit", styleDim)
	}
	if message != "" {
		v.drawText(0, footer+2, message, styleAccent)
	}

	v.screen.Show()
}

func gameOverText(snap domain.Snapshot) string {
	if snap.Cause == domain.CauseBoardFull {
		return fmt.Sprintf("Board full! Score: %d", snap.Score)
	}
	return fmt.Sprintf("Game over. Score: %d", snap.Score)
}

func (v *View) drawBorder(w, h int) {
	for x := 1; x < w-1; x++ {
		v.screen.SetContent(x, boardTop, '─', nil, styleBorder)
		v.screen.SetContent(x, boardTop+h-1, '─', nil, styleBorder)
	}
	for y := boardTop + 1; y < boardTop+h-1; y++ {
		v.screen.SetContent(0, y, '│', nil, styleBorder)
		v.screen.SetContent(w-1, y, '│', nil, styleBorder)
	}
	v.screen.SetContent(0, boardTop, '┌', nil, styleBorder)
	v.screen.SetContent(w-1, boardTop, '┐', nil, styleBorder)
	v.screen.SetContent(0, boardTop+h-1, '└', nil, styleBorder)
	v.screen.SetContent(w-1, boardTop+h-1, '┘', nil, styleBorder)
}

// setCell fills both terminal columns of a board cell.
func (v *View) setCell(c domain.Coord, r rune, style tcell.Style) {
	x, y := screenPos(c)
	v.screen.SetContent(x, y, r, nil, style)
	if r == '●' {
		r = ' '
	}
	v.screen.SetContent(x+1, y, r, nil, style)
}

// screenPos maps a board cell to its left terminal column.
func screenPos(c domain.Coord) (int, int) {
	return 1 + int(c.X)*cellWidth, boardTop + 1 + int(c.Y)
}

func (v *View) drawText(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
