// Package game is a board viewer for the desktop, driven by snapshots or by
// a bgammon server connection.
package game

import (
	"context"
	"fmt"
	"image"
	"log"
	"sync"
	"time"

	"codeberg.org/tslocum/bgammon"
	"codeberg.org/tslocum/bgboard/board"
	"codeberg.org/tslocum/bgboard/position"
	"codeberg.org/tslocum/etk"
	"codeberg.org/tslocum/gotext"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/llgcode/draw2d/draw2dimg"
)

const (
	boardMargin = 10
	panelWidth  = 220
	rowHeight   = 40
)

// controlCommands maps each control to the bgammon command it sends.
var controlCommands = map[board.Control]string{
	board.ControlRoll:   "roll",
	board.ControlDouble: "double",
	board.ControlAccept: "ok",
	board.ControlReject: "reject",
	board.ControlBeaver: "beaver",
	board.ControlResign: "resign",
}

// buttonStates returns the visibility of every control button, or nil when
// the buttons should be left as they are.
func buttonStates(a board.Affordances) map[board.Control]bool {
	if a.Idle() {
		return nil
	}
	states := make(map[board.Control]bool, len(board.Controls))
	for _, c := range board.Controls {
		states[c] = a.Enabled(c)
	}
	return states
}

func pipsText(r board.Report) string {
	return gotext.Get("Pips: %d / %d", r.PlayerPips, r.OpponentPips)
}

// Game implements ebiten.Game. The static board is rendered once and kept
// as an image. The state is drawn onto a separate overlay which is only
// rendered again after the snapshot changes.
type Game struct {
	sync.Mutex

	Client *Client
	Watch  bool

	renderer *board.Renderer
	layout   board.Layout
	debug    int

	background     *ebiten.Image
	overlay        *ebiten.Image
	overlayPixels  *image.RGBA
	overlaySurface *board.GraphicSurface

	snap   *board.Snapshot
	dirty  bool
	report board.Report

	buttons          map[board.Control]*etk.Button
	instructionLabel *etk.Text
	infoLabel        *etk.Text
	pipsLabel        *etk.Text
	statusBuffer     *etk.Text
	statusQueue      []string
	statusLogged     bool

	screenW, screenH int
}

func NewGame(r *board.Renderer, debug int) *Game {
	l := r.Layout()
	w, h := int(l.SurfaceWidth), int(l.SurfaceHeight)

	g := &Game{
		renderer: r,
		layout:   l,
		debug:    debug,
		buttons:  make(map[board.Control]*etk.Button),
	}

	bg := image.NewRGBA(image.Rect(0, 0, w, h))
	r.Render(board.NewGraphicSurface(draw2dimg.NewGraphicContext(bg)), nil, true)
	g.background = ebiten.NewImageFromImage(bg)

	g.overlayPixels = image.NewRGBA(image.Rect(0, 0, w, h))
	g.overlaySurface = board.NewGraphicSurface(draw2dimg.NewGraphicContext(g.overlayPixels))
	g.overlay = ebiten.NewImage(w, h)

	etk.Style.TextColorLight = textColor
	etk.Style.TextColorDark = textColor
	etk.Style.ButtonBgColor = buttonColor
	etk.Style.ButtonTextColor = buttonTextColor

	g.instructionLabel = etk.NewText("")
	g.infoLabel = etk.NewText("")
	g.pipsLabel = etk.NewText("")

	panel := etk.NewGrid()
	rows := []int{rowHeight * 2, rowHeight, rowHeight}
	panel.AddChildAt(g.instructionLabel, 0, 0, 1, 1)
	panel.AddChildAt(g.infoLabel, 0, 1, 1, 1)
	panel.AddChildAt(g.pipsLabel, 0, 2, 1, 1)
	for i, c := range board.Controls {
		button := etk.NewButton(c.Label(), g.selectControl(c))
		button.SetVisible(false)
		g.buttons[c] = button
		panel.AddChildAt(button, 0, 3+i, 1, 1)
		rows = append(rows, rowHeight)
	}
	g.statusBuffer = etk.NewText("")
	panel.AddChildAt(g.statusBuffer, 0, 3+len(board.Controls), 1, 1)
	rows = append(rows, -1)
	panel.SetRowSizes(rows...)

	grid := etk.NewGrid()
	grid.SetColumnSizes(w+boardMargin*2, panelWidth)
	grid.AddChildAt(etk.NewBox(), 0, 0, 1, 1)
	grid.AddChildAt(panel, 1, 0, 1, 1)
	etk.SetRoot(grid)

	return g
}

// SetSnapshot replaces the displayed state. The overlay is rendered on the
// next update.
func (g *Game) SetSnapshot(snap *board.Snapshot) {
	g.Lock()
	defer g.Unlock()

	copied := *snap
	g.snap = &copied
	g.dirty = true
}

// Report returns the report of the last rendered snapshot.
func (g *Game) Report() board.Report {
	g.Lock()
	defer g.Unlock()
	return g.report
}

// l logs s and queues it for the status buffer, which is only written
// from Update.
func (g *Game) l(s string) {
	log.Print(s)
	g.Lock()
	g.statusQueue = append(g.statusQueue, time.Now().Format("15:04")+" "+s)
	g.Unlock()
}

// flushStatus moves queued lines into the status buffer. The caller holds
// the lock.
func (g *Game) flushStatus() {
	if g.statusBuffer == nil || len(g.statusQueue) == 0 {
		return
	}
	for _, m := range g.statusQueue {
		if g.statusLogged {
			m = "\n" + m
		}
		_, _ = g.statusBuffer.Write([]byte(m))
		g.statusLogged = true
	}
	g.statusQueue = g.statusQueue[:0]
}

func (g *Game) selectControl(c board.Control) func() error {
	return func() error {
		if g.Client == nil || !g.Client.Connected() {
			g.l(gotext.Get("Not connected"))
			return nil
		}
		g.Client.Send(controlCommands[c])
		return nil
	}
}

func (g *Game) renderOverlay() {
	clear(g.overlayPixels.Pix)
	g.report = g.renderer.RenderOverlay(g.overlaySurface, g.snap)
	g.overlay.WritePixels(g.overlayPixels.Pix)

	if states := buttonStates(g.report.Affordances); states != nil {
		for c, visible := range states {
			g.buttons[c].SetVisible(visible)
		}
		g.instructionLabel.SetText(g.report.Instruction)
	}
	g.infoLabel.SetText(g.report.Info)
	g.pipsLabel.SetText(pipsText(g.report))

	if g.debug > 0 {
		log.Printf("Rendered %s: %v", g.report.Phase, g.report.EnabledControls())
	}
}

// Connect logs in to the server and starts handling its events.
func (g *Game) Connect(ctx context.Context, c *Client) {
	g.Client = c
	go g.handleEvents()
	go func() {
		if err := c.Connect(ctx); err != nil {
			log.Printf("warning: %s", err)
		}
	}()
}

func (g *Game) handleEvents() {
	for e := range g.Client.Events {
		switch ev := e.(type) {
		case *bgammon.EventWelcome:
			g.Client.Username = ev.PlayerName
			g.l(gotext.Get("Welcome, %s. There are %d clients playing %d matches.", ev.PlayerName, ev.Clients, ev.Games))
			if g.Watch {
				g.Client.Send("watch")
			}
		case *bgammon.EventNotice:
			g.l(fmt.Sprintf("*** %s", ev.Message))
		case *bgammon.EventBoard:
			snap, err := position.FromGameState(&ev.GameState)
			if err != nil {
				log.Printf("warning: failed to read board: %s", err)
				continue
			}
			g.SetSnapshot(snap)
		case *bgammon.EventFailedOk:
			g.Client.Send("board")
			g.l("*** " + gotext.Get("Failed to submit moves: %s", ev.Reason))
		case *bgammon.EventWin:
			g.l(gotext.Get("%s wins!", ev.Player))
		case *bgammon.EventPing:
			g.Client.Send(fmt.Sprintf("pong %s", ev.Message))
		default:
			if g.debug > 0 {
				log.Printf("Unhandled event: %+v", ev)
			}
		}
	}
}

// Update is called by Ebitengine once per tick.
func (g *Game) Update() error {
	g.Lock()
	if g.dirty {
		g.renderOverlay()
		g.dirty = false
	}
	g.flushStatus()
	g.Unlock()
	return etk.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(tableColor)
	panel := image.Rect(int(g.layout.SurfaceWidth)+boardMargin*2, 0, g.screenW, g.screenH)
	if !panel.Empty() {
		screen.SubImage(panel).(*ebiten.Image).Fill(frameColor)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(boardMargin, boardMargin)
	screen.DrawImage(g.background, op)

	g.Lock()
	if g.snap != nil {
		screen.DrawImage(g.overlay, op)
	}
	g.Unlock()

	if err := etk.Draw(screen); err != nil {
		log.Fatal(err)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	minWidth, minHeight := g.WindowSize()
	if outsideWidth < minWidth {
		outsideWidth = minWidth
	}
	if outsideHeight < minHeight {
		outsideHeight = minHeight
	}
	if g.screenW != outsideWidth || g.screenH != outsideHeight {
		g.screenW, g.screenH = outsideWidth, outsideHeight
		etk.Layout(g.screenW, g.screenH)
	}
	return outsideWidth, outsideHeight
}

// WindowSize returns the smallest window holding the board and the panel.
func (g *Game) WindowSize() (int, int) {
	return int(g.layout.SurfaceWidth) + boardMargin*2 + panelWidth, int(g.layout.SurfaceHeight) + boardMargin*2
}
