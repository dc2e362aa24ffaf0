package board

import "codeberg.org/tslocum/gotext"

// Control is a user action offered by the interface around the board.
type Control int

const (
	ControlRoll Control = iota
	ControlDouble
	ControlAccept
	ControlReject
	ControlBeaver
	ControlResign
	numControls
)

// Controls lists every control in display order.
var Controls = []Control{ControlRoll, ControlDouble, ControlAccept, ControlReject, ControlBeaver, ControlResign}

func (c Control) String() string {
	switch c {
	case ControlRoll:
		return "roll"
	case ControlDouble:
		return "double"
	case ControlAccept:
		return "accept"
	case ControlReject:
		return "reject"
	case ControlBeaver:
		return "beaver"
	case ControlResign:
		return "resign"
	default:
		return "unknown"
	}
}

// Label returns the localized button label of the control.
func (c Control) Label() string {
	switch c {
	case ControlRoll:
		return gotext.Get("Roll")
	case ControlDouble:
		return gotext.Get("Double")
	case ControlAccept:
		return gotext.Get("Accept")
	case ControlReject:
		return gotext.Get("Reject")
	case ControlBeaver:
		return gotext.Get("Beaver")
	case ControlResign:
		return gotext.Get("Resign")
	default:
		return ""
	}
}

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseMove
	PhaseDoubleOffered
	PhaseResignationOffered
	PhaseRollOrDouble
)

func (p Phase) String() string {
	switch p {
	case PhaseMove:
		return "move"
	case PhaseDoubleOffered:
		return "double-offered"
	case PhaseResignationOffered:
		return "resignation-offered"
	case PhaseRollOrDouble:
		return "roll-or-double"
	default:
		return "idle"
	}
}

// Affordances describes what the user may do in the current state.
type Affordances struct {
	Phase       Phase
	Instruction string
	enabled     [numControls]bool
}

// Idle reports whether no turn is active. Controls should be left as they are.
func (a Affordances) Idle() bool {
	return a.Phase == PhaseIdle
}

func (a Affordances) Enabled(c Control) bool {
	if c < 0 || c >= numControls {
		return false
	}
	return a.enabled[c]
}

// EnabledControls returns the enabled controls in display order.
func (a Affordances) EnabledControls() []Control {
	var controls []Control
	for _, c := range Controls {
		if a.enabled[c] {
			controls = append(controls, c)
		}
	}
	return controls
}

func (a *Affordances) enable(controls ...Control) {
	for _, c := range controls {
		a.enabled[c] = true
	}
}

// Resolve derives the affordances of snap. The checks run in priority
// order: a pending move beats a pending double, which beats a pending
// resignation.
func Resolve(snap *Snapshot) Affordances {
	var a Affordances
	if snap == nil || snap.Turn == SideNone {
		return a
	}

	switch {
	case snap.Dice.Rolled():
		a.Phase, a.Instruction = PhaseMove, gotext.Get("Move checkers")
		a.enable(ControlResign)
	case snap.Cube.offered():
		a.Phase, a.Instruction = PhaseDoubleOffered, gotext.Get("Accept or reject the double")
		a.enable(ControlAccept, ControlReject)
		if snap.Match.Length == 0 {
			a.enable(ControlBeaver)
		}
	case snap.Resignation.Offered:
		a.Phase, a.Instruction = PhaseResignationOffered, gotext.Get("Accept or reject the resignation")
		a.enable(ControlAccept, ControlReject)
	default:
		a.Phase, a.Instruction = PhaseRollOrDouble, gotext.Get("Roll or double")
		a.enable(ControlRoll, ControlDouble, ControlResign)
	}
	return a
}
