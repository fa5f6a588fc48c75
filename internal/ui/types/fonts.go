package types

import (
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Fonts are the faces used for HUD text. basicfont is a fixed 7x13 bitmap,
// so Title is the same face drawn with a shadow by the screens.
type Fonts struct {
	Normal font.Face
	Title  font.Face
}

var (
	defaultFonts *Fonts
	fontsOnce    sync.Once
)

func GetFonts() *Fonts {
	fontsOnce.Do(func() {
		defaultFonts = &Fonts{
			Normal: basicfont.Face7x13,
			Title:  basicfont.Face7x13,
		}
	})
	return defaultFonts
}

// TextWidth returns the advance of s in pixels.
func TextWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}

// CenteredX returns the x at which s is centred in a span of width w
// starting at x0.
func CenteredX(face font.Face, s string, x0, w int) int {
	return x0 + (w-TextWidth(face, s))/2
}
