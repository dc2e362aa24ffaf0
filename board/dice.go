package board

import "image/color"

// dotPrimitive is a group of die dots given as fractions of the die square.
type dotPrimitive [][2]float64

var (
	dotsCenter       = dotPrimitive{{0.5, 0.5}}
	dotsMainDiagonal = dotPrimitive{{0.25, 0.25}, {0.75, 0.75}}
	dotsAntiDiagonal = dotPrimitive{{0.75, 0.25}, {0.25, 0.75}}
	dotsMiddlePair   = dotPrimitive{{0.25, 0.5}, {0.75, 0.5}}
)

// facePatterns maps each face value to the primitives composing it. Every
// face above 2 is the face two below it plus one more primitive.
var facePatterns = [7][]dotPrimitive{
	1: {dotsCenter},
	2: {dotsMainDiagonal},
	3: {dotsMainDiagonal, dotsCenter},
	4: {dotsMainDiagonal, dotsAntiDiagonal},
	5: {dotsMainDiagonal, dotsAntiDiagonal, dotsCenter},
	6: {dotsMainDiagonal, dotsAntiDiagonal, dotsMiddlePair},
}

// DieDots returns the dot centers of a face as fractions of the die square.
// Values outside 1-6 have no dots.
func DieDots(face int) []Point {
	if face < 1 || face > 6 {
		return nil
	}
	var dots []Point
	for _, primitive := range facePatterns[face] {
		for _, d := range primitive {
			dots = append(dots, Point{d[0], d[1]})
		}
	}
	return dots
}

func lerp(a, b, t float64) float64 {
	return (1-t)*a + b*t
}

func (r *Renderer) drawDice(s Surface, d Dice) {
	if !d.Rolled() {
		return
	}

	c, xs := r.config.Colors.Opponent, r.layout.OpponentDiceX
	if d.Owner == SidePlayer {
		c, xs = r.config.Colors.Player, r.layout.PlayerDiceX
	}
	for i, face := range d.Values {
		r.drawDie(s, xs[i], face, c)
	}
}

func (r *Renderer) drawDie(s Surface, x float64, face int, c color.RGBA) {
	size, y := r.config.DieSize, r.layout.DiceY
	s.FillRect(Rect{x, y, size, size}, c)
	for _, dot := range DieDots(face) {
		center := Point{lerp(x, x+size, dot.X), lerp(y, y+size, dot.Y)}
		s.FillCircle(center, r.config.DieDotRadius, r.config.Colors.DieDot)
	}
}
