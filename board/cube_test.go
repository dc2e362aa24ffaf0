package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceCube(t *testing.T) {
	l := NewLayout(DefaultConfig())

	tests := []struct {
		name     string
		cube     Cube
		crawford bool
		ok       bool
		want     CubePlacement
	}{
		{
			name: "offered by opponent",
			cube: Cube{Value: 2, DoubledBy: SideOpponent},
			ok:   true,
			want: CubePlacement{CubeOfferedByOpponent, l.CubeOfferByOpponentX, l.CubeOfferY, 4},
		},
		{
			name: "offered by player",
			cube: Cube{Value: 4, PlayerMayDouble: true, DoubledBy: SidePlayer},
			ok:   true,
			want: CubePlacement{CubeOfferedByPlayer, l.CubeOfferByPlayerX, l.CubeOfferY, 8},
		},
		{
			name: "centered",
			cube: Cube{Value: 1, PlayerMayDouble: true, OpponentMayDouble: true},
			ok:   true,
			want: CubePlacement{CubeCentered, l.CubeX, l.CubeCenterY, 1},
		},
		{
			name: "player owned",
			cube: Cube{Value: 2, PlayerMayDouble: true},
			ok:   true,
			want: CubePlacement{CubePlayerOwned, l.CubeX, l.CubeBottomY, 2},
		},
		{
			name: "opponent owned",
			cube: Cube{Value: 8, OpponentMayDouble: true},
			ok:   true,
			want: CubePlacement{CubeOpponentOwned, l.CubeX, l.CubeTopY, 8},
		},
		{
			name: "dead cube",
			cube: Cube{Value: 64},
			ok:   false,
		},
		{
			name:     "crawford",
			cube:     Cube{Value: 1, PlayerMayDouble: true, OpponentMayDouble: true},
			crawford: true,
			ok:       false,
		},
		{
			name:     "crawford with offer",
			cube:     Cube{Value: 1, DoubledBy: SideOpponent},
			crawford: true,
			ok:       false,
		},
		{
			name: "unknown doubler",
			cube: Cube{Value: 2, PlayerMayDouble: true, DoubledBy: Side(9)},
			ok:   true,
			want: CubePlacement{CubePlayerOwned, l.CubeX, l.CubeBottomY, 2},
		},
		{
			name: "missing value",
			cube: Cube{PlayerMayDouble: true, OpponentMayDouble: true},
			ok:   true,
			want: CubePlacement{CubeCentered, l.CubeX, l.CubeCenterY, 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := l.PlaceCube(tt.cube, tt.crawford)
			require.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

// A double is drawn as offered exactly when the controls ask for an answer.
func TestPlaceCubeMatchesResolve(t *testing.T) {
	l := NewLayout(DefaultConfig())
	for _, doubledBy := range []Side{SideNone, SidePlayer, SideOpponent, Side(-1), Side(9)} {
		snap := &Snapshot{Turn: SidePlayer, Cube: Cube{Value: 2, PlayerMayDouble: true, DoubledBy: doubledBy}}

		p, ok := l.PlaceCube(snap.Cube, false)
		require.True(t, ok)
		offered := p.Position == CubeOfferedByPlayer || p.Position == CubeOfferedByOpponent
		assert.Equal(t, offered, Resolve(snap).Phase == PhaseDoubleOffered, "doubled by %d", doubledBy)
	}
}

func TestPlaceCubeDisplayedValue(t *testing.T) {
	l := NewLayout(DefaultConfig())
	for _, value := range []int{1, 2, 4, 8, 16, 32, 64} {
		for _, by := range []Side{SidePlayer, SideOpponent} {
			p, ok := l.PlaceCube(Cube{Value: value, DoubledBy: by}, false)
			require.True(t, ok)
			assert.Equal(t, value*2, p.Value)
		}
		p, ok := l.PlaceCube(Cube{Value: value, PlayerMayDouble: true}, false)
		require.True(t, ok)
		assert.Equal(t, value, p.Value)
	}
}

func TestDrawCubeOfferedByOpponent(t *testing.T) {
	r := NewRenderer(DefaultConfig())
	snap := &Snapshot{Cube: Cube{Value: 2, DoubledBy: SideOpponent}}

	rec := NewRecorder(nil)
	r.drawCube(rec, snap)

	rects := rec.Filter(OpStrokeRect)
	require.Len(t, rects, 1)
	assert.Equal(t, Rect{r.layout.CubeOfferByOpponentX, r.layout.CubeOfferY, 30, 30}, rects[0].Rect)
	assert.Less(t, rects[0].Rect.X+rects[0].Rect.W, r.layout.BarLeft)
	assert.Equal(t, []string{"4"}, rec.Texts())
}

func TestDrawCubeSuppressed(t *testing.T) {
	r := NewRenderer(DefaultConfig())
	r.SetDebug(1)

	rec := NewRecorder(nil)
	r.drawCube(rec, &Snapshot{Cube: Cube{Value: 2}})
	assert.Empty(t, rec.Ops)

	r.drawCube(rec, &Snapshot{
		Cube:  Cube{Value: 1, PlayerMayDouble: true, OpponentMayDouble: true},
		Match: Match{Length: 7, Crawford: true},
	})
	assert.Empty(t, rec.Ops)
}
