package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDieDotsCount(t *testing.T) {
	for face := 1; face <= 6; face++ {
		assert.Len(t, DieDots(face), face, "face %d", face)
	}
	for _, face := range []int{-1, 0, 7, 100} {
		assert.Empty(t, DieDots(face), "face %d", face)
	}
}

func TestDieDotsComposition(t *testing.T) {
	for face := 3; face <= 6; face++ {
		dots, smaller := DieDots(face), DieDots(face-2)
		require.Len(t, dots, face)
		assert.Subset(t, dots, smaller, "face %d extends face %d", face, face-2)
	}
}

func TestDieDotsInsideDie(t *testing.T) {
	for face := 1; face <= 6; face++ {
		seen := make(map[Point]bool)
		for _, dot := range DieDots(face) {
			assert.False(t, seen[dot], "face %d repeats dot %v", face, dot)
			seen[dot] = true
			assert.Contains(t, []float64{0.25, 0.5, 0.75}, dot.X)
			assert.Contains(t, []float64{0.25, 0.5, 0.75}, dot.Y)
		}
	}
}

func TestDieDotsPatterns(t *testing.T) {
	assert.Equal(t, []Point{{0.5, 0.5}}, DieDots(1))
	assert.Equal(t, []Point{{0.25, 0.25}, {0.75, 0.75}}, DieDots(2))
	assert.Equal(t, []Point{{0.25, 0.25}, {0.75, 0.75}, {0.75, 0.25}, {0.25, 0.75}}, DieDots(4))
	assert.Equal(t, []Point{{0.25, 0.25}, {0.75, 0.75}, {0.75, 0.25}, {0.25, 0.75}, {0.25, 0.5}, {0.75, 0.5}}, DieDots(6))
}

func TestDrawDiceOpponentDoubles(t *testing.T) {
	r := NewRenderer(DefaultConfig())
	c := r.config

	rec := NewRecorder(nil)
	r.drawDice(rec, Dice{Values: [2]int{4, 4}, Owner: SideOpponent})

	squares := rec.Filter(OpFillRect)
	require.Len(t, squares, 2)
	for i, op := range squares {
		assert.Equal(t, c.Colors.Opponent, op.Color)
		assert.Equal(t, Rect{r.layout.OpponentDiceX[i], r.layout.DiceY, c.DieSize, c.DieSize}, op.Rect)
	}

	dots := rec.Circles(c.Colors.DieDot, c.DieDotRadius)
	require.Len(t, dots, 8)

	x, y := r.layout.OpponentDiceX[0], r.layout.DiceY
	assert.Equal(t, Point{x + 7.5, y + 7.5}, dots[0].Points[0])
	assert.Equal(t, Point{x + 22.5, y + 22.5}, dots[1].Points[0])
	assert.Equal(t, Point{x + 22.5, y + 7.5}, dots[2].Points[0])
	assert.Equal(t, Point{x + 7.5, y + 22.5}, dots[3].Points[0])
}

func TestDrawDicePlayer(t *testing.T) {
	r := NewRenderer(DefaultConfig())
	c := r.config

	rec := NewRecorder(nil)
	r.drawDice(rec, Dice{Values: [2]int{6, 1}, Owner: SidePlayer})

	squares := rec.Filter(OpFillRect)
	require.Len(t, squares, 2)
	assert.Equal(t, c.Colors.Player, squares[0].Color)
	assert.Equal(t, r.layout.PlayerDiceX[0], squares[0].Rect.X)
	assert.Equal(t, r.layout.PlayerDiceX[1], squares[1].Rect.X)
	assert.Len(t, rec.Circles(c.Colors.DieDot, c.DieDotRadius), 7)
}

func TestDrawDiceNotRolled(t *testing.T) {
	r := NewRenderer(DefaultConfig())
	rec := NewRecorder(nil)
	r.drawDice(rec, Dice{Owner: SidePlayer})
	assert.Empty(t, rec.Ops)
}

func TestDrawDiceInvalidFace(t *testing.T) {
	r := NewRenderer(DefaultConfig())
	rec := NewRecorder(nil)
	r.drawDice(rec, Dice{Values: [2]int{9, 0}, Owner: SidePlayer})

	assert.Len(t, rec.Filter(OpFillRect), 2)
	assert.Empty(t, rec.Filter(OpFillCircle))
}
