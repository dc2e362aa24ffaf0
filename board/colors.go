package board

import "image/color"

var (
	colorRed   = color.RGBA{255, 0, 0, 255}
	colorBlue  = color.RGBA{0, 0, 255, 255}
	colorGrey  = color.RGBA{128, 128, 128, 255}
	colorWhite = color.RGBA{255, 255, 255, 255}
	colorBlack = color.RGBA{0, 0, 0, 255}
)

// Palette holds every color used while drawing a board.
type Palette struct {
	Player       color.RGBA
	Opponent     color.RGBA
	Stroke       color.RGBA
	PointFill    color.RGBA
	DieDot       color.RGBA
	Text         color.RGBA
	CheckerText  color.RGBA
	OverflowText color.RGBA
	Background   color.RGBA
}

// DefaultPalette returns the classic red versus blue palette.
func DefaultPalette() Palette {
	return Palette{
		Player:       colorRed,
		Opponent:     colorBlue,
		Stroke:       colorBlack,
		PointFill:    colorGrey,
		DieDot:       colorWhite,
		Text:         colorBlack,
		CheckerText:  colorWhite,
		OverflowText: colorBlack,
		Background:   colorWhite,
	}
}

func (p Palette) side(positive bool) color.RGBA {
	if positive {
		return p.Player
	}
	return p.Opponent
}
