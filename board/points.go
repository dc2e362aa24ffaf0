package board

// drawFrame draws the outer boundary of the board and both edges of the bar.
func (r *Renderer) drawFrame(s Surface) {
	l, stroke := &r.layout, r.config.Colors.Stroke
	s.StrokeRect(Rect{0, 0, l.Width, l.Height}, stroke, lineWidth)
	s.Line(Point{l.BarLeft, 0}, Point{l.BarLeft, l.Height}, stroke, lineWidth)
	s.Line(Point{l.BarRight, 0}, Point{l.BarRight, l.Height}, stroke, lineWidth)
}

// drawPoints draws the 24 point wedges group by group. When b is non-nil,
// each point's checkers are drawn right after its wedge. When wedges is
// false only the checkers are drawn.
func (r *Renderer) drawPoints(s Surface, b *Board, wedges bool) {
	for group, order := range pointOrder {
		upper := group < 2
		for i, index := range order {
			if wedges {
				// Facing points alternate so adjacent and opposite points differ.
				outline := i%2 == 0
				if !upper {
					outline = !outline
				}
				r.drawWedge(s, index, upper, outline)
			}
			if b != nil {
				r.drawPointCheckers(s, index, b[index])
			}
		}
	}
}

func (r *Renderer) drawWedge(s Surface, index int, upper bool, outline bool) {
	x, d := r.layout.PointX[index], r.config.CheckerDiameter
	base, tip := 0.0, r.layout.PointHeight
	if !upper {
		base, tip = r.layout.Height, r.layout.Height-r.layout.PointHeight
	}
	wedge := []Point{{x, base}, {x + d/2, tip}, {x + d, base}}
	if outline {
		s.StrokePolygon(wedge, r.config.Colors.Stroke, lineWidth)
		return
	}
	s.FillPolygon(wedge, r.config.Colors.PointFill)
}
