package board

// Report is the non-drawing output of a render call.
type Report struct {
	Affordances

	Info         string
	PlayerPips   int
	OpponentPips int
}

// Renderer draws snapshots with a fixed configuration. It holds no state
// besides its configuration and the derived layout, so one Renderer may be
// used for any number of render calls.
type Renderer struct {
	config Config
	layout Layout

	debug int
}

func NewRenderer(c Config) *Renderer {
	return &Renderer{
		config: c,
		layout: NewLayout(c),
	}
}

func (r *Renderer) Config() Config {
	return r.config
}

func (r *Renderer) Layout() Layout {
	return r.layout
}

// SetDebug sets the debug level. Levels above zero log unusual states.
func (r *Renderer) SetDebug(level int) {
	r.debug = level
}

// Render draws snap onto s. With backgroundOnly set, only the static board
// (frame, bar and points) is drawn and an empty report is returned.
func (r *Renderer) Render(s Surface, snap *Snapshot, backgroundOnly bool) Report {
	l := &r.layout
	s.FillRect(Rect{0, 0, l.SurfaceWidth, l.SurfaceHeight}, r.config.Colors.Background)
	r.drawFrame(s)

	if backgroundOnly {
		r.drawPoints(s, nil, true)
		return Report{}
	}

	if snap == nil {
		snap = &Snapshot{}
	}
	r.drawPoints(s, &snap.Board, true)
	return r.drawState(s, snap)
}

// RenderOverlay draws only the state of snap, for compositing over a
// background produced by Render with backgroundOnly set.
func (r *Renderer) RenderOverlay(s Surface, snap *Snapshot) Report {
	if snap == nil {
		snap = &Snapshot{}
	}
	r.drawPoints(s, &snap.Board, false)
	return r.drawState(s, snap)
}

func (r *Renderer) drawState(s Surface, snap *Snapshot) Report {
	r.drawBarCheckers(s, &snap.Board)
	r.drawDice(s, snap.Dice)
	r.drawCube(s, snap)
	r.drawBorneOff(s, snap.BorneOff)
	r.drawResignation(s, snap.Resignation, snap.Turn)

	player, opponent := PipCounts(snap.Board)
	return Report{
		Affordances:  Resolve(snap),
		Info:         MatchInfo(snap),
		PlayerPips:   player,
		OpponentPips: opponent,
	}
}
