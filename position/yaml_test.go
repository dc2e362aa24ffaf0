package position

import (
	"os"
	"path/filepath"
	"testing"

	"codeberg.org/tslocum/bgboard/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullDocument = `
board: [0, -2, 0, 0, 0, 0, 5, 0, 3, 0, 0, 0, -5, 5, 0, 0, 0, -3, 0, -5, 0, 0, 0, 0, 2, 0]
turn: opponent
dice:
  values: [4, 4]
cube:
  value: 2
  player_may_double: true
  doubled_by: opponent
match:
  length: 7
  player_score: 2
  opponent_score: 5
  crawford: true
borne_off:
  player: 1
  opponent: 3
resignation:
  offered: true
  value: 3
  by: player
`

func TestParse(t *testing.T) {
	snap, err := Parse([]byte(fullDocument))
	require.NoError(t, err)

	assert.Equal(t, board.StartingBoard(), snap.Board)
	assert.Equal(t, board.SideOpponent, snap.Turn)
	assert.Equal(t, board.Dice{Values: [2]int{4, 4}, Owner: board.SideOpponent}, snap.Dice)
	assert.Equal(t, board.Cube{Value: 2, PlayerMayDouble: true, DoubledBy: board.SideOpponent}, snap.Cube)
	assert.Equal(t, board.Match{Length: 7, PlayerScore: 2, OpponentScore: 5, Crawford: true}, snap.Match)
	assert.Equal(t, board.BorneOff{Player: 1, Opponent: 3}, snap.BorneOff)
	assert.Equal(t, board.Resignation{Offered: true, Value: 3, By: board.SidePlayer}, snap.Resignation)
}

func TestParseDefaults(t *testing.T) {
	snap, err := Parse([]byte("turn: player\n"))
	require.NoError(t, err)
	assert.Equal(t, board.StartingBoard(), snap.Board)
	assert.Equal(t, board.SidePlayer, snap.Turn)
	assert.False(t, snap.Dice.Rolled())

	snap, err = Parse([]byte("dice:\n  values: [6, 5]\n  owner: Opponent\nturn: player\n"))
	require.NoError(t, err)
	assert.Equal(t, board.SideOpponent, snap.Dice.Owner)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"malformed", "board: [1, 2"},
		{"short board", "board: [1, 2, 3]"},
		{"unknown turn", "turn: white"},
		{"unknown cube side", "cube:\n  doubled_by: both"},
		{"unknown resignation side", "resignation:\n  by: someone"},
		{"invalid face", "dice:\n  values: [7, 1]"},
		{"too many dice", "dice:\n  values: [1, 2, 3]"},
		{"unknown dice owner", "dice:\n  owner: nobody"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fullDocument), 0o644))

	snap, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, snap.Match.Length)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("turn: sideways"), 0o644))
	_, err = Load(bad)
	assert.ErrorContains(t, err, bad)
}

func TestParseSide(t *testing.T) {
	for s, want := range map[string]board.Side{
		"":         board.SideNone,
		"none":     board.SideNone,
		"player":   board.SidePlayer,
		" PLAYER ": board.SidePlayer,
		"opponent": board.SideOpponent,
	} {
		got, err := ParseSide(s)
		require.NoError(t, err, s)
		assert.Equal(t, want, got, s)
	}
}
