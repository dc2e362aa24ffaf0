package board

import (
	"log"
	"strconv"
)

type CubePosition int

const (
	CubeOfferedByOpponent CubePosition = iota + 1
	CubeOfferedByPlayer
	CubeCentered
	CubePlayerOwned
	CubeOpponentOwned
)

func (p CubePosition) String() string {
	switch p {
	case CubeOfferedByOpponent:
		return "offered-by-opponent"
	case CubeOfferedByPlayer:
		return "offered-by-player"
	case CubeCentered:
		return "centered"
	case CubePlayerOwned:
		return "player"
	case CubeOpponentOwned:
		return "opponent"
	default:
		return "none"
	}
}

// CubePlacement is where the doubling cube is drawn and the value on its face.
type CubePlacement struct {
	Position CubePosition
	X, Y     float64
	Value    int
}

// PlaceCube picks the cube position for c. It returns false when the cube
// is not drawn: during the Crawford game, and when neither side may double
// and no double is pending.
func (l *Layout) PlaceCube(c Cube, crawford bool) (CubePlacement, bool) {
	if crawford {
		return CubePlacement{}, false
	}

	if c.offered() {
		if c.DoubledBy == SideOpponent {
			return CubePlacement{CubeOfferedByOpponent, l.CubeOfferByOpponentX, l.CubeOfferY, c.value() * 2}, true
		}
		return CubePlacement{CubeOfferedByPlayer, l.CubeOfferByPlayerX, l.CubeOfferY, c.value() * 2}, true
	}

	p := CubePlacement{X: l.CubeX, Value: c.value()}
	switch {
	case c.PlayerMayDouble && c.OpponentMayDouble:
		p.Position, p.Y = CubeCentered, l.CubeCenterY
	case c.PlayerMayDouble:
		p.Position, p.Y = CubePlayerOwned, l.CubeBottomY
	case c.OpponentMayDouble:
		p.Position, p.Y = CubeOpponentOwned, l.CubeTopY
	default:
		return CubePlacement{}, false
	}
	return p, true
}

func (r *Renderer) drawCube(s Surface, snap *Snapshot) {
	p, ok := r.layout.PlaceCube(snap.Cube, snap.Match.Crawford)
	if !ok {
		if r.debug > 0 && !snap.Match.Crawford {
			log.Printf("cube has no position: value %d, neither side may double", snap.Cube.Value)
		}
		return
	}

	size := r.config.CubeSize
	s.StrokeRect(Rect{p.X, p.Y, size, size}, r.config.Colors.Stroke, lineWidth)
	drawCenteredText(s, strconv.Itoa(p.Value), p.X+size/2, p.Y+size/2, r.config.FontSize, r.config.Colors.Text)
}
