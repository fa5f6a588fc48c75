package screens

import (
	"gridsnake/internal/ui/graphics/components"
	"gridsnake/internal/ui/graphics/input"
	"gridsnake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

type MenuScreen struct {
	ctx types.ScreenContext

	btnPlay     *components.Button
	btnSettings *components.Button
	btnQuit     *components.Button
}

func NewMenuScreen(ctx types.ScreenContext) *MenuScreen {
	play := components.NewButton(0, 0, 250, 50, "Play")
	play.Accent = true

	return &MenuScreen{
		ctx:         ctx,
		btnPlay:     play,
		btnSettings: components.NewButton(0, 0, 250, 50, "Settings"),
		btnQuit:     components.NewButton(0, 0, 250, 50, "Quit"),
	}
}

func (s *MenuScreen) Update() types.UIEvent {
	w, h := s.ctx.Size()
	centerX := w / 2
	centerY := h / 2

	s.btnPlay.SetPosition(centerX-125, centerY-80)
	s.btnSettings.SetPosition(centerX-125, centerY-20)
	s.btnQuit.SetPosition(centerX-125, centerY+40)

	if s.btnPlay.Update() || input.IsEnterPressed() {
		return types.UIEvent{Type: types.UIEventStartGame}
	}

	if s.btnSettings.Update() {
		return types.UIEvent{Type: types.UIEventShowConfig}
	}

	if s.btnQuit.Update() || input.IsEscapePressed() {
		return types.UIEvent{Type: types.UIEventQuit}
	}

	return types.UIEvent{Type: types.UIEventNone}
}

func (s *MenuScreen) Draw(screen *ebiten.Image) {
	screen.Fill(types.ColorBackground)

	fonts := types.GetFonts()
	w, h := s.ctx.Size()

	title := "SNAKE"
	x := types.CenteredX(fonts.Title, title, 0, w)

	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			text.Draw(screen, title, fonts.Title, x+dx, 100+dy, types.Darken(types.ColorTextHighlight, 0.4))
		}
	}
	text.Draw(screen, title, fonts.Title, x, 100, types.ColorTextHighlight)

	subtitle := "Eat, grow, don't bite yourself"
	text.Draw(screen, subtitle, fonts.Normal, types.CenteredX(fonts.Normal, subtitle, 0, w), 130, types.ColorTextDim)

	s.btnPlay.Draw(screen)
	s.btnSettings.Draw(screen)
	s.btnQuit.Draw(screen)

	hint := "ENTER to play, ESC to quit"
	text.Draw(screen, hint, fonts.Normal, types.CenteredX(fonts.Normal, hint, 0, w), h-30, types.ColorTextDim)
}

func (s *MenuScreen) OnEnter() {}

func (s *MenuScreen) OnExit() {}
