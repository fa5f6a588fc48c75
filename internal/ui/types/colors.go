package types

import "image/color"

var (
	ColorBackground    = color.RGBA{26, 26, 26, 255}
	ColorFieldBg       = color.RGBA{0, 0, 0, 255}
	ColorFieldBorder   = color.RGBA{51, 51, 51, 255}
	ColorFrame         = color.RGBA{42, 42, 42, 255}
	ColorSnakeHead     = color.RGBA{0, 204, 106, 255}
	ColorSnakeBody     = color.RGBA{0, 255, 136, 255}
	ColorFood          = color.RGBA{255, 51, 51, 255}
	ColorText          = color.RGBA{255, 255, 255, 255}
	ColorTextDim       = color.RGBA{150, 150, 150, 255}
	ColorTextHighlight = color.RGBA{0, 255, 136, 255}
	ColorOverlay       = color.RGBA{0, 0, 0, 217}
	ColorButton        = color.RGBA{51, 51, 51, 255}
	ColorButtonHover   = color.RGBA{70, 70, 70, 255}
	ColorButtonText    = color.RGBA{255, 255, 255, 255}
	ColorButtonAccent  = color.RGBA{0, 255, 136, 255}
	ColorInputBg       = color.RGBA{50, 50, 55, 255}
	ColorInputBorder   = color.RGBA{85, 85, 85, 255}
	ColorInputFocused  = color.RGBA{0, 255, 136, 255}
	ColorError         = color.RGBA{255, 51, 51, 255}
	ColorSuccess       = color.RGBA{0, 255, 136, 255}
)

func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

func Lighten(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(min(255, float64(c.R)*factor)),
		G: uint8(min(255, float64(c.G)*factor)),
		B: uint8(min(255, float64(c.B)*factor)),
		A: c.A,
	}
}
