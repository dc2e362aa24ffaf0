package board

import (
	"strings"

	"codeberg.org/tslocum/gotext"
)

// MatchInfo returns the score line shown beside the board.
func MatchInfo(snap *Snapshot) string {
	if snap == nil {
		snap = &Snapshot{}
	}
	m := snap.Match

	var b strings.Builder
	b.WriteString(gotext.Get("Score: %d-%d", m.PlayerScore, m.OpponentScore))
	if m.Length > 0 {
		b.WriteString(" ")
		b.WriteString(gotext.Get("Match to: %d", m.Length))
	}
	if m.Crawford {
		b.WriteString(" ")
		b.WriteString(gotext.Get("Crawford"))
	}
	return b.String()
}

// PipCounts returns the number of pips each side must move to bear off.
func PipCounts(b Board) (player int, opponent int) {
	for space, count := range b {
		switch {
		case count > 0:
			player += count * pipDistance(space, true)
		case count < 0:
			opponent += -count * pipDistance(space, false)
		}
	}
	return player, opponent
}

func pipDistance(space int, player bool) int {
	switch {
	case space == SpaceBarPlayer || space == SpaceBarOpponent:
		return 25
	case player:
		return space
	default:
		return 25 - space
	}
}
