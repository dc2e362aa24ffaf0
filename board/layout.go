package board

// Layout is the absolute geometry derived from a Config. Every renderer
// reads it; nothing writes to it after NewLayout returns.
type Layout struct {
	Width, Height float64

	// Surface size including the cube margin right of the board.
	SurfaceWidth, SurfaceHeight float64

	PointHeight float64

	BarLeft, BarRight, BarCenter float64

	// Left edge of each point, indexed by board index 1-24.
	PointX [26]float64

	DiceY         float64
	PlayerDiceX   [2]float64
	OpponentDiceX [2]float64

	// Cube position while a double is pending, on the doubling side's half.
	CubeOfferY           float64
	CubeOfferByPlayerX   float64
	CubeOfferByOpponentX float64

	// Cube position while resting in the right-hand margin.
	CubeX       float64
	CubeCenterY float64
	CubeBottomY float64
	CubeTopY    float64

	BorneOffX         float64
	BorneOffPlayerY   float64
	BorneOffOpponentY float64

	FlagPlayerX   float64
	FlagOpponentX float64
	FlagTopY      float64
	FlagBottomY   float64
}

// pointOrder lists board indices left to right for each of the four groups.
var pointOrder = [4][6]int{
	{24, 23, 22, 21, 20, 19}, // upper left
	{18, 17, 16, 15, 14, 13}, // upper right
	{1, 2, 3, 4, 5, 6},       // lower left
	{7, 8, 9, 10, 11, 12},    // lower right
}

func NewLayout(c Config) Layout {
	d, gap := c.CheckerDiameter, c.CheckerGap
	section := d*6 + gap*7

	l := Layout{
		PointHeight: float64(c.MaxCheckersShown) * d,
		BarLeft:     section,
		BarRight:    section + c.BarWidth,
	}
	l.BarCenter = (l.BarLeft + l.BarRight) / 2
	l.Width = l.BarRight + section
	l.Height = l.PointHeight*2 + c.VerticalGap
	l.SurfaceWidth = l.Width + c.CubeOffset*2 + c.CubeSize
	l.SurfaceHeight = l.Height

	for group, order := range pointOrder {
		start := gap
		if group%2 == 1 {
			start = l.BarRight + gap
		}
		for i, index := range order {
			l.PointX[index] = start + float64(i)*(d+gap)
		}
	}

	l.DiceY = (l.Height - c.DieSize) / 2
	l.PlayerDiceX = [2]float64{
		(l.BarRight+l.Width-c.DiceGap)/2 - c.DieSize,
		(l.BarRight + l.Width + c.DiceGap) / 2,
	}
	l.OpponentDiceX = [2]float64{
		(l.BarLeft-c.DiceGap)/2 - c.DieSize,
		(l.BarLeft + c.DiceGap) / 2,
	}

	l.CubeOfferY = (l.Height - c.CubeSize) / 2
	l.CubeOfferByPlayerX = (l.BarRight + l.Width - c.CubeSize) / 2
	l.CubeOfferByOpponentX = (l.BarLeft - c.CubeSize) / 2

	l.CubeX = l.Width + c.CubeOffset
	l.CubeCenterY = (l.Height - c.CubeSize) / 2
	l.CubeBottomY = l.Height - c.CubeSize
	l.CubeTopY = 2

	l.BorneOffX = l.CubeX + c.CubeSize/2
	l.BorneOffPlayerY = l.Height - c.CubeSize - gap - d/2
	l.BorneOffOpponentY = l.CubeTopY + c.CubeSize + gap + d/2

	l.FlagPlayerX = (l.BarRight + l.Width) / 2
	l.FlagOpponentX = l.BarLeft / 2
	l.FlagTopY = (l.Height - c.FlagPoleLength) / 2
	l.FlagBottomY = (l.Height + c.FlagPoleLength) / 2
	return l
}
