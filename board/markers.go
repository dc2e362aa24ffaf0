package board

import (
	"image/color"
	"strconv"
)

// drawBorneOff draws one checker per side in the cube margin, labeled with
// the number of checkers that side has borne off.
func (r *Renderer) drawBorneOff(s Surface, off BorneOff) {
	l := &r.layout
	if off.Player > 0 {
		r.drawMarker(s, Point{l.BorneOffX, l.BorneOffPlayerY}, off.Player, r.config.Colors.Player)
	}
	if off.Opponent > 0 {
		r.drawMarker(s, Point{l.BorneOffX, l.BorneOffOpponentY}, off.Opponent, r.config.Colors.Opponent)
	}
}

func (r *Renderer) drawMarker(s Surface, at Point, count int, c color.RGBA) {
	s.FillCircle(at, r.config.CheckerDiameter/2, c)
	drawCenteredText(s, strconv.Itoa(count), at.X, at.Y, r.config.FontSize, r.config.Colors.CheckerText)
}

// drawResignation draws a flag holding the offered value on the offering
// side's half of the board.
func (r *Renderer) drawResignation(s Surface, res Resignation, turn Side) {
	if !res.Offered {
		return
	}

	l, size := &r.layout, r.config.FlagSize
	x := l.FlagPlayerX
	if res.offeredBy(turn) == SideOpponent {
		x = l.FlagOpponentX
	}

	stroke := r.config.Colors.Stroke
	s.Line(Point{x, l.FlagTopY}, Point{x, l.FlagBottomY}, stroke, lineWidth)
	s.StrokeRect(Rect{x, l.FlagTopY, size, size}, stroke, lineWidth)
	drawCenteredText(s, strconv.Itoa(res.Value), x+size/2, l.FlagTopY+size/2, r.config.FontSize, r.config.Colors.Text)
}
