package board

// Side identifies one of the two players from the viewer's perspective.
type Side int

const (
	SideNone Side = iota
	SidePlayer
	SideOpponent
)

func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "player"
	case SideOpponent:
		return "opponent"
	default:
		return "none"
	}
}

// Other returns the opposing side. SideNone has no opponent.
func (s Side) Other() Side {
	switch s {
	case SidePlayer:
		return SideOpponent
	case SideOpponent:
		return SidePlayer
	default:
		return SideNone
	}
}

const (
	SpaceBarOpponent = 0
	SpaceBarPlayer   = 25
	BoardSpaces      = 26
)

// Board holds signed checker counts. Index 0 is the opponent's bar, 25 the
// player's bar and 1-24 are points with the player's home on 1-6. Positive
// counts belong to the player, negative counts to the opponent.
type Board [BoardSpaces]int

// StartingBoard returns the standard opening position.
func StartingBoard() Board {
	var b Board
	b[24], b[13], b[8], b[6] = 2, 5, 3, 5
	b[1], b[12], b[17], b[19] = -2, -5, -3, -5
	return b
}

// Dice holds two face values, 0 meaning not rolled, and whose roll it is.
type Dice struct {
	Values [2]int
	Owner  Side
}

func (d Dice) Rolled() bool {
	return d.Values[0] != 0 || d.Values[1] != 0
}

type Cube struct {
	Value             int
	PlayerMayDouble   bool
	OpponentMayDouble bool

	// DoubledBy is set while a double is offered and not yet answered.
	DoubledBy Side
}

// offered reports whether a double is pending. Values other than the two
// sides count as no double.
func (c Cube) offered() bool {
	return c.DoubledBy == SidePlayer || c.DoubledBy == SideOpponent
}

func (c Cube) value() int {
	if c.Value < 1 {
		return 1
	}
	return c.Value
}

// Match describes scores and match length. A zero length is a money game.
type Match struct {
	Length        int
	PlayerScore   int
	OpponentScore int
	Crawford      bool
}

type BorneOff struct {
	Player   int
	Opponent int
}

type Resignation struct {
	Offered bool
	Value   int

	// By may be left as SideNone, in which case the side not on turn is
	// assumed to have offered.
	By Side
}

func (r Resignation) offeredBy(turn Side) Side {
	if r.By != SideNone {
		return r.By
	}
	if turn == SidePlayer {
		return SideOpponent
	}
	return SidePlayer
}

// Snapshot is the complete state rendered by a single call. The renderer
// never modifies or keeps it.
type Snapshot struct {
	Board       Board
	Turn        Side
	Dice        Dice
	Cube        Cube
	Match       Match
	BorneOff    BorneOff
	Resignation Resignation
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
