package game

import "image/color"

var (
	tableColor      = color.RGBA{0, 102, 51, 255}
	frameColor      = color.RGBA{65, 40, 14, 255}
	textColor       = color.RGBA{225, 188, 125, 255}
	buttonColor     = color.RGBA{120, 63, 25, 255}
	buttonTextColor = color.RGBA{255, 218, 155, 255}
)
