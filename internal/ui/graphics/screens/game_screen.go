package screens

import (
	"fmt"
	"sync"

	"gridsnake/internal/domain"
	"gridsnake/internal/engine"
	"gridsnake/internal/ui/graphics/components"
	"gridsnake/internal/ui/graphics/input"
	"gridsnake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	headerHeight = 60
	sidePadding  = 30
)

type GameScreen struct {
	ctx types.ScreenContext

	fieldRenderer *components.FieldRenderer
	scoreboard    *components.Scoreboard
	dpad          *components.DPad
	keyboard      *input.KeyboardHandler
	btnRestart    *components.Button

	frame    engine.Frame
	hasFrame bool

	msgMu    sync.Mutex
	message  string
	errorMsg string
}

func NewGameScreen(ctx types.ScreenContext) *GameScreen {
	restart := components.NewButton(0, 0, 160, 45, "Play again")
	restart.Accent = true

	return &GameScreen{
		ctx:           ctx,
		fieldRenderer: components.NewFieldRenderer(),
		scoreboard:    components.NewScoreboard(),
		dpad:          components.NewDPad(),
		keyboard:      input.NewKeyboardHandler(),
		btnRestart:    restart,
	}
}

// SetFrame is called by the graphics engine before every Draw.
func (s *GameScreen) SetFrame(frame engine.Frame, ok bool) {
	s.frame = frame
	s.hasFrame = ok
}

func (s *GameScreen) status() domain.Status {
	if !s.hasFrame {
		return domain.StatusIdle
	}
	return s.frame.Snapshot.Status
}

func (s *GameScreen) Update() types.UIEvent {
	s.layout()

	if input.IsEscapePressed() {
		return types.UIEvent{Type: types.UIEventExitGame}
	}

	if s.status() != domain.StatusRunning {
		s.btnRestart.Enabled = true
		if s.btnRestart.Update() || input.IsEnterPressed() || input.IsRestartPressed() {
			return types.UIEvent{Type: types.UIEventStartGame}
		}
		return types.UIEvent{Type: types.UIEventNone}
	}
	s.btnRestart.Enabled = false

	dirs := s.keyboard.Update()
	if dir := s.dpad.Update(); dir != domain.DirectionNone {
		dirs = append(dirs, dir)
	}
	if len(dirs) > 0 {
		return types.UIEvent{
			Type:    types.UIEventSteer,
			Payload: types.SteerData{Directions: dirs},
		}
	}

	return types.UIEvent{Type: types.UIEventNone}
}

func (s *GameScreen) layout() {
	w, h := s.ctx.Size()
	padW, padH := s.dpad.Size()

	boardH := h - headerHeight - padH - 40
	s.fieldRenderer.CalculateLayout(sidePadding, headerHeight, w-2*sidePadding, boardH, s.frame.Layout)

	s.scoreboard.X = s.fieldRenderer.OffsetX
	s.scoreboard.Y = headerHeight - 20
	s.scoreboard.Width = s.fieldRenderer.Size

	s.dpad.SetPosition((w-padW)/2, s.fieldRenderer.OffsetY+s.fieldRenderer.Size+20)

	s.btnRestart.SetPosition(
		s.fieldRenderer.OffsetX+(s.fieldRenderer.Size-s.btnRestart.Width)/2,
		s.fieldRenderer.OffsetY+s.fieldRenderer.Size/2+10,
	)
}

func (s *GameScreen) Draw(screen *ebiten.Image) {
	screen.Fill(types.ColorBackground)

	w, h := s.ctx.Size()
	fonts := types.GetFonts()

	if !s.hasFrame {
		msg := "Starting..."
		text.Draw(screen, msg, fonts.Normal, types.CenteredX(fonts.Normal, msg, 0, w), h/2, types.ColorTextDim)
		return
	}

	s.layout()
	snap := s.frame.Snapshot
	over := snap.Status == domain.StatusGameOver

	s.scoreboard.Draw(screen, snap.Score, snap.HighScore)

	s.fieldRenderer.DrawField(screen)
	s.fieldRenderer.DrawFood(screen, snap.Food)
	s.fieldRenderer.DrawSnake(screen, snap.Segments, over)

	s.dpad.Draw(screen)

	if snap.Status != domain.StatusRunning {
		s.drawOverlay(screen, snap)
	}

	s.drawFooter(screen, w, h)
}

func (s *GameScreen) drawOverlay(screen *ebiten.Image, snap domain.Snapshot) {
	fonts := types.GetFonts()
	fr := s.fieldRenderer

	vector.DrawFilledRect(screen,
		float32(fr.OffsetX), float32(fr.OffsetY),
		float32(fr.Size), float32(fr.Size),
		types.ColorOverlay, false)

	title := "Game over"
	detail := fmt.Sprintf("Score: %d", snap.Score)
	if snap.Status == domain.StatusIdle {
		title = "Ready"
		detail = "Press ENTER to start"
	} else if snap.Cause == domain.CauseBoardFull {
		title = "Board full!"
	}

	midY := fr.OffsetY + fr.Size/2
	text.Draw(screen, title, fonts.Title, types.CenteredX(fonts.Title, title, fr.OffsetX, fr.Size), midY-40, types.ColorTextHighlight)
	text.Draw(screen, detail, fonts.Normal, types.CenteredX(fonts.Normal, detail, fr.OffsetX, fr.Size), midY-15, types.ColorText)

	s.btnRestart.Draw(screen)
}

func (s *GameScreen) drawFooter(screen *ebiten.Image, w, h int) {
	fonts := types.GetFonts()

	hint := "W/A/S/D or Arrows to move  |  ESC for menu"
	text.Draw(screen, hint, fonts.Normal, 20, h-15, types.ColorTextDim)

	s.msgMu.Lock()
	errorMsg, message := s.errorMsg, s.message
	s.msgMu.Unlock()

	if errorMsg != "" {
		text.Draw(screen, errorMsg, fonts.Normal, w-types.TextWidth(fonts.Normal, errorMsg)-20, h-35, types.ColorError)
	} else if message != "" {
		text.Draw(screen, message, fonts.Normal, w-types.TextWidth(fonts.Normal, message)-20, h-35, types.ColorSuccess)
	}
}

func (s *GameScreen) OnEnter() {
	s.msgMu.Lock()
	s.errorMsg = ""
	s.message = ""
	s.msgMu.Unlock()
}

func (s *GameScreen) OnExit() {}

func (s *GameScreen) SetError(err string) {
	s.msgMu.Lock()
	s.errorMsg = err
	s.msgMu.Unlock()
}

func (s *GameScreen) SetMessage(msg string) {
	s.msgMu.Lock()
	s.message = msg
	s.msgMu.Unlock()
}
