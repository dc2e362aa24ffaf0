package main

import (
	"context"
	"fmt"
	"image"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"codeberg.org/tslocum/bgboard/board"
	"codeberg.org/tslocum/bgboard/game"
	"codeberg.org/tslocum/bgboard/position"
	"codeberg.org/tslocum/bgboard/settings"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

var (
	configFile string

	// config is loaded before any command runs.
	config *settings.Settings
)

var rootCmd = &cobra.Command{
	Use:           "bgboard",
	Short:         "Backgammon board renderer",
	SilenceUsage:  true,
	SilenceErrors: true,

	PersistentPreRunE: loadSettings,
}

var renderCmd = &cobra.Command{
	Use:   "render [snapshot.yaml]",
	Short: "Render a snapshot to a PNG image",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRender,
}

var affordancesCmd = &cobra.Command{
	Use:   "affordances [snapshot.yaml]",
	Short: "Print the controls available in a snapshot",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := loadSnapshot(args)
		if err != nil {
			return err
		}
		player, opponent := board.PipCounts(snap.Board)
		printReport(cmd.OutOrStdout(), board.Report{
			Affordances:  board.Resolve(snap),
			Info:         board.MatchInfo(snap),
			PlayerPips:   player,
			OpponentPips: opponent,
		})
		return nil
	},
}

var viewCmd = &cobra.Command{
	Use:   "view [snapshot.yaml]",
	Short: "Show a snapshot or a bgammon match in a window",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runView,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default: bgboard.yaml in the user config directory)")
	rootCmd.PersistentFlags().Int(settings.KeyDebug, 0, "print debug information")

	renderCmd.Flags().StringP("out", "o", "board.png", "output file")
	renderCmd.Flags().Bool("background-only", false, "render only the static board")
	renderCmd.Flags().Bool("trace", false, "log every drawing primitive")

	viewCmd.Flags().String(settings.KeyAddress, settings.DefaultServerAddress, "server address")
	viewCmd.Flags().String(settings.KeyUsername, "", "username")
	viewCmd.Flags().String(settings.KeyPassword, "", "password")
	viewCmd.Flags().Bool("watch", false, "watch a random match")
	viewCmd.Flags().String("profile", "", "serve runtime profiles on this address")

	rootCmd.AddCommand(renderCmd, affordancesCmd, viewCmd)
}

func loadSettings(cmd *cobra.Command, args []string) error {
	v, err := settings.New(configFile)
	if err != nil {
		return err
	}
	for _, key := range []string{settings.KeyDebug, settings.KeyAddress, settings.KeyUsername, settings.KeyPassword} {
		if f := cmd.Flags().Lookup(key); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("bind flag %s: %w", key, err)
			}
		}
	}

	config, err = settings.Decode(v)
	if err != nil {
		return err
	}

	if config.LocalesDir == "" {
		return nil
	}
	var forceLanguage *language.Tag
	if config.Locale != "" {
		tag, err := game.ParseLocale(config.Locale)
		if err != nil {
			return fmt.Errorf("locale: %w", err)
		}
		forceLanguage = &tag
	}
	game.LoadLocale(config.LocalesDir, forceLanguage)
	return nil
}

// defaultSnapshot is the opening position with the player to roll.
func defaultSnapshot() *board.Snapshot {
	return &board.Snapshot{
		Board: board.StartingBoard(),
		Turn:  board.SidePlayer,
		Cube:  board.Cube{Value: 1, PlayerMayDouble: true, OpponentMayDouble: true},
	}
}

func loadSnapshot(args []string) (*board.Snapshot, error) {
	if len(args) == 0 {
		return defaultSnapshot(), nil
	}
	return position.Load(args[0])
}

func newRenderer() *board.Renderer {
	r := board.NewRenderer(config.Board)
	r.SetDebug(config.Debug)
	return r
}

func runRender(cmd *cobra.Command, args []string) error {
	out, _ := cmd.Flags().GetString("out")
	backgroundOnly, _ := cmd.Flags().GetBool("background-only")
	trace, _ := cmd.Flags().GetBool("trace")

	snap, err := loadSnapshot(args)
	if err != nil {
		return err
	}

	r := newRenderer()
	l := r.Layout()
	img := image.NewRGBA(image.Rect(0, 0, int(l.SurfaceWidth), int(l.SurfaceHeight)))

	var s board.Surface = board.NewGraphicSurface(draw2dimg.NewGraphicContext(img))
	var rec *board.Recorder
	if trace {
		rec = board.NewRecorder(s)
		s = rec
	}

	report := r.Render(s, snap, backgroundOnly)
	if rec != nil {
		for _, op := range rec.Ops {
			log.Print(op)
		}
	}

	if err := draw2dimg.SaveToPngFile(out, img); err != nil {
		return fmt.Errorf("failed to save %s: %w", out, err)
	}
	if !backgroundOnly {
		printReport(cmd.OutOrStdout(), report)
	}
	return nil
}

func printReport(w io.Writer, r board.Report) {
	controls := make([]string, 0, len(board.Controls))
	for _, c := range r.EnabledControls() {
		controls = append(controls, c.String())
	}
	fmt.Fprintf(w, "phase: %s\n", r.Phase)
	if r.Instruction != "" {
		fmt.Fprintf(w, "instruction: %s\n", r.Instruction)
	}
	fmt.Fprintf(w, "controls: %s\n", strings.Join(controls, " "))
	fmt.Fprintf(w, "info: %s\n", r.Info)
	fmt.Fprintf(w, "pips: %d %d\n", r.PlayerPips, r.OpponentPips)
}

func runView(cmd *cobra.Command, args []string) error {
	watch, _ := cmd.Flags().GetBool("watch")
	if profile, _ := cmd.Flags().GetString("profile"); profile != "" {
		game.ServeProfile(profile)
	}

	g := game.NewGame(newRenderer(), config.Debug)
	g.Watch = watch

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	switch {
	case len(args) == 1:
		snap, err := position.Load(args[0])
		if err != nil {
			return err
		}
		g.SetSnapshot(snap)
	case watch || config.Username != "":
		g.Connect(ctx, game.NewClient(config.Address, config.Username, config.Password, config.Debug))
	default:
		g.SetSnapshot(defaultSnapshot())
	}

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigc
		cancel()
		os.Exit(0)
	}()

	ebiten.SetWindowTitle("bgboard")
	ebiten.SetWindowSize(g.WindowSize())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	op := &ebiten.RunGameOptions{
		X11ClassName:    "bgboard",
		X11InstanceName: "bgboard",
	}
	if err := ebiten.RunGameWithOptions(g, op); err != nil {
		return fmt.Errorf("failed to run viewer: %w", err)
	}
	return nil
}
