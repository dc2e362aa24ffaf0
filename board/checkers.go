package board

import "strconv"

// drawStack draws a column of checkers. The first checker is centered at
// (x, y) and each following checker is one diameter further in direction
// (+1 down, -1 up). When the stack is taller than limit, the last visible
// slot shows the stack size instead of a checker.
func (r *Renderer) drawStack(s Surface, count int, x, y float64, direction float64, limit int) {
	if count == 0 {
		return
	}

	color := r.config.Colors.side(count > 0)
	n := abs(count)
	overflow := n > limit
	shown := n
	if overflow {
		shown = limit - 1
	}

	radius := r.config.CheckerDiameter / 2
	for i := 0; i < shown; i++ {
		s.FillCircle(Point{x, y + direction*float64(i)*r.config.CheckerDiameter}, radius, color)
	}

	if overflow {
		labelY := y + direction*float64(limit-1)*r.config.CheckerDiameter
		drawCenteredText(s, strconv.Itoa(n), x, labelY, r.config.FontSize, r.config.Colors.OverflowText)
	}
}

// drawPointCheckers draws the checkers resting on a board point (1-24).
func (r *Renderer) drawPointCheckers(s Surface, index int, count int) {
	x := r.layout.PointX[index] + r.config.CheckerDiameter/2
	y, direction := r.config.CheckerDiameter/2, 1.0
	if index <= 12 {
		y, direction = r.layout.Height-r.config.CheckerDiameter/2, -1.0
	}
	r.drawStack(s, count, x, y, direction, r.config.MaxCheckersShown)
}

// drawBarCheckers draws both bars. The player's checkers rise from just
// above the center of the bar, the opponent's descend from just below it.
func (r *Renderer) drawBarCheckers(s Surface, b *Board) {
	offset := r.config.CheckerGap + r.config.CheckerDiameter/2
	center := r.layout.Height / 2
	r.drawStack(s, b[SpaceBarPlayer], r.layout.BarCenter, center-offset, -1, r.config.MaxBarCheckersShown)
	r.drawStack(s, b[SpaceBarOpponent], r.layout.BarCenter, center+offset, 1, r.config.MaxBarCheckersShown)
}
