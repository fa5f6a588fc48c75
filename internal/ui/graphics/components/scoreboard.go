package components

import (
	"fmt"

	"gridsnake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// Scoreboard is the line above the board: score on the left, high score on
// the right.
type Scoreboard struct {
	X, Y  int
	Width int
}

func NewScoreboard() *Scoreboard {
	return &Scoreboard{}
}

func (sb *Scoreboard) Draw(screen *ebiten.Image, score, highScore int) {
	fonts := types.GetFonts()

	left := fmt.Sprintf("Score: %d", score)
	text.Draw(screen, left, fonts.Normal, sb.X, sb.Y, types.ColorText)

	right := fmt.Sprintf("High score: %d", highScore)
	rightColor := types.ColorText
	if score > 0 && score >= highScore {
		rightColor = types.ColorTextHighlight
	}
	text.Draw(screen, right, fonts.Normal, sb.X+sb.Width-types.TextWidth(fonts.Normal, right), sb.Y, rightColor)
}
