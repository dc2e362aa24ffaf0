package position

import (
	"testing"

	"codeberg.org/tslocum/bgammon"
	"codeberg.org/tslocum/bgboard/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGameState(playerNumber int8) *bgammon.GameState {
	gs := &bgammon.GameState{
		Game:         bgammon.NewGame(bgammon.VariantBackgammon),
		PlayerNumber: playerNumber,
	}
	gs.Board = make([]int8, bgammon.BoardSpaces)
	gs.Board[6] = 4
	gs.Board[20] = -3
	gs.Board[bgammon.SpaceBarPlayer] = 1
	gs.Board[bgammon.SpaceBarOpponent] = -2
	gs.Board[bgammon.SpaceHomePlayer] = 10
	gs.Board[bgammon.SpaceHomeOpponent] = -10
	gs.Points = 5
	gs.Player1.Points = 1
	gs.Player2.Points = 3
	gs.DoubleValue = 2
	gs.DoublePlayer = 1
	gs.DoubleOffered = false
	gs.Turn = 1
	gs.Roll1, gs.Roll2 = 6, 2
	return gs
}

func TestFromGameStatePlayerOne(t *testing.T) {
	snap, err := FromGameState(newGameState(1))
	require.NoError(t, err)

	assert.Equal(t, 4, snap.Board[6])
	assert.Equal(t, -3, snap.Board[20])
	assert.Equal(t, 1, snap.Board[board.SpaceBarPlayer])
	assert.Equal(t, -2, snap.Board[board.SpaceBarOpponent])
	assert.Equal(t, board.BorneOff{Player: 10, Opponent: 10}, snap.BorneOff)

	assert.Equal(t, board.SidePlayer, snap.Turn)
	assert.Equal(t, board.Dice{Values: [2]int{6, 2}, Owner: board.SidePlayer}, snap.Dice)
	assert.Equal(t, board.Match{Length: 5, PlayerScore: 1, OpponentScore: 3}, snap.Match)
	assert.Equal(t, board.Cube{Value: 2, PlayerMayDouble: true}, snap.Cube)
}

func TestFromGameStatePlayerTwo(t *testing.T) {
	gs := newGameState(2)
	gs.Board[bgammon.SpaceHomePlayer] = 12

	snap, err := FromGameState(gs)
	require.NoError(t, err)

	// Player 2 sees the board mirrored with its own checkers positive.
	assert.Equal(t, -4, snap.Board[19])
	assert.Equal(t, 3, snap.Board[5])
	assert.Equal(t, 2, snap.Board[board.SpaceBarPlayer])
	assert.Equal(t, -1, snap.Board[board.SpaceBarOpponent])
	assert.Equal(t, board.BorneOff{Player: 10, Opponent: 12}, snap.BorneOff)

	assert.Equal(t, board.SideOpponent, snap.Turn)
	assert.Equal(t, board.SideOpponent, snap.Dice.Owner)
	assert.Equal(t, board.Match{Length: 5, PlayerScore: 3, OpponentScore: 1}, snap.Match)
	assert.Equal(t, board.Cube{Value: 2, OpponentMayDouble: true}, snap.Cube)
}

func TestFromGameStateStartingPosition(t *testing.T) {
	for _, number := range []int8{0, 1, 2} {
		gs := &bgammon.GameState{
			Game:         bgammon.NewGame(bgammon.VariantBackgammon),
			PlayerNumber: number,
		}
		snap, err := FromGameState(gs)
		require.NoError(t, err)
		assert.Equal(t, board.StartingBoard(), snap.Board, "player %d", number)
	}
}

func TestFromGameStateCube(t *testing.T) {
	gs := newGameState(1)
	gs.DoublePlayer = 0
	snap, err := FromGameState(gs)
	require.NoError(t, err)
	assert.True(t, snap.Cube.PlayerMayDouble)
	assert.True(t, snap.Cube.OpponentMayDouble)

	gs.Points = 1
	snap, err = FromGameState(gs)
	require.NoError(t, err)
	_, ok := board.NewLayout(board.DefaultConfig()).PlaceCube(snap.Cube, false)
	assert.False(t, ok)
}

func TestFromGameStateDoubleOffered(t *testing.T) {
	gs := newGameState(2)
	gs.Turn = 1
	gs.Roll1, gs.Roll2 = 0, 0
	gs.DoubleOffered = true

	snap, err := FromGameState(gs)
	require.NoError(t, err)
	assert.Equal(t, board.SideOpponent, snap.Cube.DoubledBy)
	assert.Equal(t, board.SidePlayer, snap.Turn)

	a := board.Resolve(snap)
	assert.Equal(t, board.PhaseDoubleOffered, a.Phase)
	assert.False(t, a.Enabled(board.ControlBeaver))
}

func TestFromGameStateInvalid(t *testing.T) {
	_, err := FromGameState(nil)
	assert.Error(t, err)

	_, err = FromGameState(&bgammon.GameState{})
	assert.Error(t, err)

	gs := newGameState(1)
	gs.Board = gs.Board[:10]
	_, err = FromGameState(gs)
	assert.Error(t, err)
}
