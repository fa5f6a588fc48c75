package screens

import (
	"fmt"
	"sync"

	"gridsnake/internal/domain"
	"gridsnake/internal/ui/graphics/components"
	"gridsnake/internal/ui/graphics/input"
	"gridsnake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// ConfigScreen edits the board size, cell size and tick delay. Applying
// emits UIEventApplyConfig; the caller rebuilds the engine and reports the
// settings it adopted through SetConfig.
type ConfigScreen struct {
	ctx types.ScreenContext

	currentMu sync.Mutex
	current   *domain.GameConfig

	inputTiles *components.NumberInput
	inputCell  *components.NumberInput
	inputTick  *components.NumberInput

	btnApply *components.Button
	btnBack  *components.Button

	errorMsg string
}

func NewConfigScreen(ctx types.ScreenContext, current *domain.GameConfig) *ConfigScreen {
	apply := components.NewButton(0, 0, 140, 45, "Apply")
	apply.Accent = true

	return &ConfigScreen{
		ctx:        ctx,
		current:    current.Copy(),
		inputTiles: components.NewNumberInput(0, 0, 300, 35, fmt.Sprintf("Tiles per side (10-%d):", domain.MaxTileCount)),
		inputCell:  components.NewNumberInput(0, 0, 140, 35, "Cell px (4-64):"),
		inputTick:  components.NewNumberInput(0, 0, 140, 35, "Tick ms (10-3000):"),
		btnApply:   apply,
		btnBack:    components.NewButton(0, 0, 140, 45, "Back"),
	}
}

func (s *ConfigScreen) layout() (centerX, startY int) {
	w, _ := s.ctx.Size()
	return w / 2, 120
}

func (s *ConfigScreen) Update() types.UIEvent {
	centerX, startY := s.layout()

	s.inputTiles.SetPosition(centerX-150, startY)
	s.inputCell.SetPosition(centerX-150, startY+70)
	s.inputTick.SetPosition(centerX+10, startY+70)
	s.btnBack.SetPosition(centerX-150, startY+140)
	s.btnApply.SetPosition(centerX+10, startY+140)

	for _, in := range s.inputs() {
		in.Update()
	}

	if input.IsTabPressed() {
		s.cycleFocus()
	}

	if s.btnBack.Update() || input.IsEscapePressed() {
		return types.UIEvent{Type: types.UIEventShowMenu}
	}

	if s.btnApply.Update() || input.IsEnterPressed() {
		return s.apply()
	}

	return types.UIEvent{Type: types.UIEventNone}
}

func (s *ConfigScreen) inputs() []*components.NumberInput {
	return []*components.NumberInput{s.inputTiles, s.inputCell, s.inputTick}
}

func (s *ConfigScreen) cycleFocus() {
	inputs := s.inputs()

	currentIdx := -1
	for i, inp := range inputs {
		if inp.Focused {
			currentIdx = i
			inp.Focused = false
			break
		}
	}

	nextIdx := (currentIdx + 1) % len(inputs)
	inputs[nextIdx].Focused = true
}

func (s *ConfigScreen) apply() types.UIEvent {
	tiles, err := s.inputTiles.Value()
	if err != nil {
		s.errorMsg = "Tiles must be a number"
		return types.UIEvent{Type: types.UIEventNone}
	}
	cell, err := s.inputCell.Value()
	if err != nil {
		s.errorMsg = "Cell size must be a number"
		return types.UIEvent{Type: types.UIEventNone}
	}
	tick, err := s.inputTick.Value()
	if err != nil {
		s.errorMsg = "Tick delay must be a number"
		return types.UIEvent{Type: types.UIEventNone}
	}

	config := &domain.GameConfig{
		TileCount:   tiles,
		CellSize:    cell,
		TickDelayMs: tick,
	}
	if err := config.Validate(); err != nil {
		s.errorMsg = err.Error()
		return types.UIEvent{Type: types.UIEventNone}
	}

	s.errorMsg = ""

	return types.UIEvent{
		Type:    types.UIEventApplyConfig,
		Payload: types.ConfigData{Config: config},
	}
}

func (s *ConfigScreen) Draw(screen *ebiten.Image) {
	screen.Fill(types.ColorBackground)

	fonts := types.GetFonts()
	w, h := s.ctx.Size()
	_, startY := s.layout()

	title := "SETTINGS"
	text.Draw(screen, title, fonts.Title, types.CenteredX(fonts.Title, title, 0, w), 60, types.ColorTextHighlight)

	for _, in := range s.inputs() {
		in.Draw(screen)
	}

	s.btnBack.Draw(screen)
	s.btnApply.Draw(screen)

	if s.errorMsg != "" {
		text.Draw(screen, s.errorMsg, fonts.Normal, types.CenteredX(fonts.Normal, s.errorMsg, 0, w), startY+220, types.ColorError)
	}

	hint := "TAB to switch fields, ENTER to apply"
	text.Draw(screen, hint, fonts.Normal, types.CenteredX(fonts.Normal, hint, 0, w), h-30, types.ColorTextDim)
}

func (s *ConfigScreen) OnEnter() {
	s.currentMu.Lock()
	current := s.current.Copy()
	s.currentMu.Unlock()

	s.errorMsg = ""
	s.inputTiles.SetValue(current.TileCount)
	s.inputCell.SetValue(current.CellSize)
	s.inputTick.SetValue(current.TickDelayMs)
	s.inputTiles.Focused = true
	s.inputCell.Focused = false
	s.inputTick.Focused = false
}

func (s *ConfigScreen) OnExit() {}

// SetConfig records the settings the engine actually runs with. The
// fields show them the next time the screen opens.
func (s *ConfigScreen) SetConfig(cfg *domain.GameConfig) {
	s.currentMu.Lock()
	s.current = cfg.Copy()
	s.currentMu.Unlock()
}

func (s *ConfigScreen) SetError(err string) {
	s.errorMsg = err
}
