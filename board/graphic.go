package board

import (
	"fmt"
	"image/color"
	"log"
	"sync"

	"github.com/golang/freetype/truetype"
	"github.com/llgcode/draw2d"
	"github.com/llgcode/draw2d/draw2dkit"
	"golang.org/x/image/font/gofont/goregular"
)

var boardFont = draw2d.FontData{
	Name:   "goregular",
	Family: draw2d.FontFamilySans,
	Style:  draw2d.FontStyleNormal,
}

var registerFontOnce sync.Once

func registerFont() {
	registerFontOnce.Do(func() {
		f, err := truetype.Parse(goregular.TTF)
		if err != nil {
			log.Fatal(fmt.Errorf("failed to parse font: %w", err))
		}
		draw2d.RegisterFont(boardFont, f)
	})
}

// GraphicSurface draws onto a draw2d graphic context. Each primitive saves
// the context before applying its style and restores it afterwards.
type GraphicSurface struct {
	gc draw2d.GraphicContext
}

func NewGraphicSurface(gc draw2d.GraphicContext) *GraphicSurface {
	registerFont()
	gc.SetFontData(boardFont)
	return &GraphicSurface{gc: gc}
}

func (s *GraphicSurface) FillRect(r Rect, c color.Color) {
	s.gc.Save()
	defer s.gc.Restore()

	s.gc.BeginPath()
	draw2dkit.Rectangle(s.gc, r.X, r.Y, r.X+r.W, r.Y+r.H)
	s.gc.SetFillColor(c)
	s.gc.Fill()
}

func (s *GraphicSurface) StrokeRect(r Rect, c color.Color, width float64) {
	s.gc.Save()
	defer s.gc.Restore()

	s.gc.BeginPath()
	draw2dkit.Rectangle(s.gc, r.X, r.Y, r.X+r.W, r.Y+r.H)
	s.gc.SetStrokeColor(c)
	s.gc.SetLineWidth(width)
	s.gc.Stroke()
}

func (s *GraphicSurface) polygon(points []Point) {
	s.gc.BeginPath()
	for i, p := range points {
		if i == 0 {
			s.gc.MoveTo(p.X, p.Y)
			continue
		}
		s.gc.LineTo(p.X, p.Y)
	}
	s.gc.Close()
}

func (s *GraphicSurface) FillPolygon(points []Point, c color.Color) {
	if len(points) < 3 {
		return
	}
	s.gc.Save()
	defer s.gc.Restore()

	s.polygon(points)
	s.gc.SetFillColor(c)
	s.gc.Fill()
}

func (s *GraphicSurface) StrokePolygon(points []Point, c color.Color, width float64) {
	if len(points) < 2 {
		return
	}
	s.gc.Save()
	defer s.gc.Restore()

	s.polygon(points)
	s.gc.SetStrokeColor(c)
	s.gc.SetLineWidth(width)
	s.gc.Stroke()
}

func (s *GraphicSurface) Line(from Point, to Point, c color.Color, width float64) {
	s.gc.Save()
	defer s.gc.Restore()

	s.gc.BeginPath()
	s.gc.MoveTo(from.X, from.Y)
	s.gc.LineTo(to.X, to.Y)
	s.gc.SetStrokeColor(c)
	s.gc.SetLineWidth(width)
	s.gc.Stroke()
}

func (s *GraphicSurface) FillCircle(center Point, radius float64, c color.Color) {
	s.gc.Save()
	defer s.gc.Restore()

	s.gc.BeginPath()
	draw2dkit.Circle(s.gc, center.X, center.Y, radius)
	s.gc.SetFillColor(c)
	s.gc.Fill()
}

func (s *GraphicSurface) MeasureText(text string, size float64) float64 {
	s.gc.Save()
	defer s.gc.Restore()

	s.gc.SetFontSize(size)
	left, _, right, _ := s.gc.GetStringBounds(text)
	return right - left
}

func (s *GraphicSurface) FillText(text string, at Point, size float64, c color.Color) {
	s.gc.Save()
	defer s.gc.Restore()

	s.gc.SetFontSize(size)
	s.gc.SetFillColor(c)
	s.gc.FillStringAt(text, at.X, at.Y)
}
