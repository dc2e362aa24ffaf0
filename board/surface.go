package board

import "image/color"

type Point struct {
	X, Y float64
}

type Rect struct {
	X, Y, W, H float64
}

// Surface is a 2D drawing target. Every primitive carries its own style so
// no color or line width leaks from one primitive into the next.
type Surface interface {
	FillRect(r Rect, c color.Color)
	StrokeRect(r Rect, c color.Color, width float64)
	FillPolygon(points []Point, c color.Color)
	StrokePolygon(points []Point, c color.Color, width float64)
	Line(from Point, to Point, c color.Color, width float64)
	FillCircle(center Point, radius float64, c color.Color)

	// MeasureText returns the advance width of s at the given font size.
	MeasureText(s string, size float64) float64
	// FillText draws s with its baseline starting at the given point.
	FillText(s string, at Point, size float64, c color.Color)
}

const lineWidth = 1.0

// drawCenteredText centers s horizontally on x and vertically around y.
func drawCenteredText(s Surface, text string, x, y, size float64, c color.Color) {
	w := s.MeasureText(text, size)
	s.FillText(text, Point{x - w/2, y + size*0.3}, size, c)
}
