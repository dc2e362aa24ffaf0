package position

import (
	"fmt"

	"codeberg.org/tslocum/bgammon"
	"codeberg.org/tslocum/bgboard/board"
)

// FromGameState converts a bgammon game state into a snapshot seen from the
// state's player. Spectators see the game from player 1's side.
//
// bgammon keeps the board from player 1's perspective with player 1's
// checkers positive. For player 2 the points are mirrored and the signs
// swapped so the viewer always moves from 24 towards 1.
func FromGameState(gs *bgammon.GameState) (*board.Snapshot, error) {
	if gs == nil || gs.Game == nil {
		return nil, fmt.Errorf("no game")
	}
	if len(gs.Board) < bgammon.BoardSpaces {
		return nil, fmt.Errorf("board has %d spaces, expected %d", len(gs.Board), bgammon.BoardSpaces)
	}

	viewer := int(gs.PlayerNumber)
	if viewer != 2 {
		viewer = 1
	}
	side := func(number int) board.Side {
		switch {
		case number == 0:
			return board.SideNone
		case number == viewer:
			return board.SidePlayer
		default:
			return board.SideOpponent
		}
	}

	snap := &board.Snapshot{
		Turn: side(int(gs.Turn)),
	}

	space := func(i int) int { return int(gs.Board[i]) }
	if viewer == 1 {
		for i := 1; i <= 24; i++ {
			snap.Board[i] = space(i)
		}
		snap.Board[board.SpaceBarPlayer] = space(bgammon.SpaceBarPlayer)
		snap.Board[board.SpaceBarOpponent] = space(bgammon.SpaceBarOpponent)
		snap.BorneOff.Player = abs(space(bgammon.SpaceHomePlayer))
		snap.BorneOff.Opponent = abs(space(bgammon.SpaceHomeOpponent))
	} else {
		for i := 1; i <= 24; i++ {
			snap.Board[i] = -space(25 - i)
		}
		snap.Board[board.SpaceBarPlayer] = -space(bgammon.SpaceBarOpponent)
		snap.Board[board.SpaceBarOpponent] = -space(bgammon.SpaceBarPlayer)
		snap.BorneOff.Player = abs(space(bgammon.SpaceHomeOpponent))
		snap.BorneOff.Opponent = abs(space(bgammon.SpaceHomePlayer))
	}

	if gs.Roll1 != 0 || gs.Roll2 != 0 {
		snap.Dice = board.Dice{
			Values: [2]int{int(gs.Roll1), int(gs.Roll2)},
			Owner:  snap.Turn,
		}
	}

	snap.Match = board.Match{Length: int(gs.Points)}
	if viewer == 1 {
		snap.Match.PlayerScore, snap.Match.OpponentScore = int(gs.Player1.Points), int(gs.Player2.Points)
	} else {
		snap.Match.PlayerScore, snap.Match.OpponentScore = int(gs.Player2.Points), int(gs.Player1.Points)
	}

	// Single games are played without the cube.
	snap.Cube.Value = int(gs.DoubleValue)
	if gs.Points > 1 {
		switch side(int(gs.DoublePlayer)) {
		case board.SidePlayer:
			snap.Cube.PlayerMayDouble = true
		case board.SideOpponent:
			snap.Cube.OpponentMayDouble = true
		default:
			snap.Cube.PlayerMayDouble, snap.Cube.OpponentMayDouble = true, true
		}
	}

	// The doubling side keeps the turn while its offer is pending. The
	// snapshot hands the turn to the side that has to answer.
	if gs.DoubleOffered && snap.Turn != board.SideNone {
		snap.Cube.DoubledBy = snap.Turn
		snap.Turn = snap.Turn.Other()
		snap.Dice = board.Dice{}
	}
	return snap, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
