package board

import "fmt"

// Config describes the static geometry and colors of a board. It is
// established once at startup and never changes during a match.
type Config struct {
	CheckerDiameter float64
	CheckerGap      float64
	BarWidth        float64

	DieSize      float64
	DieDotRadius float64
	DiceGap      float64

	CubeSize   float64
	CubeOffset float64

	// Stacks taller than these limits collapse their last slot into a count.
	MaxCheckersShown    int
	MaxBarCheckersShown int

	// Space between the upper and lower point rows, reserved for dice.
	VerticalGap float64

	FlagPoleLength float64
	FlagSize       float64

	FontSize float64

	Colors Palette
}

func DefaultConfig() Config {
	return Config{
		CheckerDiameter:     30,
		CheckerGap:          5,
		BarWidth:            40,
		DieSize:             30,
		DieDotRadius:        3,
		DiceGap:             4,
		CubeSize:            30,
		CubeOffset:          5,
		MaxCheckersShown:    5,
		MaxBarCheckersShown: 4,
		VerticalGap:         50,
		FlagPoleLength:      36,
		FlagSize:            20,
		FontSize:            14,
		Colors:              DefaultPalette(),
	}
}

// Validate reports the first setting that cannot produce a drawable board.
func (c Config) Validate() error {
	sizes := []struct {
		name  string
		value float64
	}{
		{"checker diameter", c.CheckerDiameter},
		{"bar width", c.BarWidth},
		{"die size", c.DieSize},
		{"die dot radius", c.DieDotRadius},
		{"cube size", c.CubeSize},
		{"flag pole length", c.FlagPoleLength},
		{"flag size", c.FlagSize},
		{"font size", c.FontSize},
	}
	for _, s := range sizes {
		if s.value <= 0 {
			return fmt.Errorf("invalid %s: %g", s.name, s.value)
		}
	}
	gaps := []struct {
		name  string
		value float64
	}{
		{"checker gap", c.CheckerGap},
		{"dice gap", c.DiceGap},
		{"cube offset", c.CubeOffset},
		{"vertical gap", c.VerticalGap},
	}
	for _, g := range gaps {
		if g.value < 0 {
			return fmt.Errorf("invalid %s: %g", g.name, g.value)
		}
	}
	if c.MaxCheckersShown < 1 {
		return fmt.Errorf("invalid max checkers shown: %d", c.MaxCheckersShown)
	} else if c.MaxBarCheckersShown < 1 {
		return fmt.Errorf("invalid max bar checkers shown: %d", c.MaxBarCheckersShown)
	}
	if c.DieDotRadius*4 > c.DieSize {
		return fmt.Errorf("die dot radius %g too large for die size %g", c.DieDotRadius, c.DieSize)
	}

	// Borne-off markers share the margin with the centered cube.
	l, r := NewLayout(c), c.CheckerDiameter/2
	if l.BorneOffOpponentY+r > l.CubeCenterY || l.BorneOffPlayerY-r < l.CubeCenterY+c.CubeSize {
		return fmt.Errorf("board height %g too small for borne-off markers beside the cube", l.Height)
	}
	return nil
}
