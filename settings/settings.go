// Package settings loads board configuration and viewer options.
package settings

import (
	"encoding/hex"
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"codeberg.org/tslocum/bgboard/board"
	"github.com/spf13/viper"
)

const (
	configName = "bgboard"
	configType = "yaml"
	envPrefix  = "BGBOARD"

	DefaultServerAddress = "wss://ws.bgammon.org"
	MaxDebug             = 2
)

const (
	KeyCheckerDiameter     = "checker_diameter"
	KeyCheckerGap          = "checker_gap"
	KeyBarWidth            = "bar_width"
	KeyDieSize             = "die_size"
	KeyDieDotRadius        = "die_dot_radius"
	KeyDiceGap             = "dice_gap"
	KeyCubeSize            = "cube_size"
	KeyCubeOffset          = "cube_offset"
	KeyMaxCheckersShown    = "max_checkers_shown"
	KeyMaxBarCheckersShown = "max_bar_checkers_shown"
	KeyVerticalGap         = "vertical_gap"
	KeyFlagPoleLength      = "flag_pole_length"
	KeyFlagSize            = "flag_size"
	KeyFontSize            = "font_size"

	KeyDebug      = "debug"
	KeyLocale     = "locale"
	KeyLocalesDir = "locales_dir"
	KeyAddress    = "address"
	KeyUsername   = "username"
	KeyPassword   = "password"
)

// Settings holds everything read from the configuration file, the
// environment and command line flags.
type Settings struct {
	Board board.Config

	Debug      int
	Locale     string
	LocalesDir string

	Address  string
	Username string
	Password string
}

// New returns a viper instance with defaults and environment overrides set.
// When path is empty, bgboard.yaml is looked up in the user config
// directory and a missing file is not an error.
func New(path string) (*viper.Viper, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		return v, nil
	}

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, configName))
	}
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return v, nil
}

// Load reads settings from path, or from the default locations when path
// is empty.
func Load(path string) (*Settings, error) {
	v, err := New(path)
	if err != nil {
		return nil, err
	}
	return Decode(v)
}

func setDefaults(v *viper.Viper) {
	c := board.DefaultConfig()
	v.SetDefault(KeyCheckerDiameter, c.CheckerDiameter)
	v.SetDefault(KeyCheckerGap, c.CheckerGap)
	v.SetDefault(KeyBarWidth, c.BarWidth)
	v.SetDefault(KeyDieSize, c.DieSize)
	v.SetDefault(KeyDieDotRadius, c.DieDotRadius)
	v.SetDefault(KeyDiceGap, c.DiceGap)
	v.SetDefault(KeyCubeSize, c.CubeSize)
	v.SetDefault(KeyCubeOffset, c.CubeOffset)
	v.SetDefault(KeyMaxCheckersShown, c.MaxCheckersShown)
	v.SetDefault(KeyMaxBarCheckersShown, c.MaxBarCheckersShown)
	v.SetDefault(KeyVerticalGap, c.VerticalGap)
	v.SetDefault(KeyFlagPoleLength, c.FlagPoleLength)
	v.SetDefault(KeyFlagSize, c.FlagSize)
	v.SetDefault(KeyFontSize, c.FontSize)

	for _, pc := range paletteColors(&c.Colors) {
		v.SetDefault(colorKey(pc.name), FormatColor(*pc.color))
	}

	v.SetDefault(KeyDebug, 0)
	v.SetDefault(KeyLocale, "")
	v.SetDefault(KeyLocalesDir, "")
	v.SetDefault(KeyAddress, DefaultServerAddress)
	v.SetDefault(KeyUsername, "")
	v.SetDefault(KeyPassword, "")
}

// Decode builds validated settings from v.
func Decode(v *viper.Viper) (*Settings, error) {
	c := board.Config{
		CheckerDiameter:     v.GetFloat64(KeyCheckerDiameter),
		CheckerGap:          v.GetFloat64(KeyCheckerGap),
		BarWidth:            v.GetFloat64(KeyBarWidth),
		DieSize:             v.GetFloat64(KeyDieSize),
		DieDotRadius:        v.GetFloat64(KeyDieDotRadius),
		DiceGap:             v.GetFloat64(KeyDiceGap),
		CubeSize:            v.GetFloat64(KeyCubeSize),
		CubeOffset:          v.GetFloat64(KeyCubeOffset),
		MaxCheckersShown:    v.GetInt(KeyMaxCheckersShown),
		MaxBarCheckersShown: v.GetInt(KeyMaxBarCheckersShown),
		VerticalGap:         v.GetFloat64(KeyVerticalGap),
		FlagPoleLength:      v.GetFloat64(KeyFlagPoleLength),
		FlagSize:            v.GetFloat64(KeyFlagSize),
		FontSize:            v.GetFloat64(KeyFontSize),
	}
	for _, pc := range paletteColors(&c.Colors) {
		key := colorKey(pc.name)
		parsed, err := ParseColor(v.GetString(key))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		*pc.color = parsed
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid board config: %w", err)
	}

	s := &Settings{
		Board:      c,
		Debug:      v.GetInt(KeyDebug),
		Locale:     v.GetString(KeyLocale),
		LocalesDir: v.GetString(KeyLocalesDir),
		Address:    v.GetString(KeyAddress),
		Username:   v.GetString(KeyUsername),
		Password:   v.GetString(KeyPassword),
	}
	if s.Debug < 0 {
		s.Debug = 0
	} else if s.Debug > MaxDebug {
		s.Debug = MaxDebug
	}
	return s, nil
}

type paletteColor struct {
	name  string
	color *color.RGBA
}

func paletteColors(p *board.Palette) []paletteColor {
	return []paletteColor{
		{"player", &p.Player},
		{"opponent", &p.Opponent},
		{"stroke", &p.Stroke},
		{"point_fill", &p.PointFill},
		{"die_dot", &p.DieDot},
		{"text", &p.Text},
		{"checker_text", &p.CheckerText},
		{"overflow_text", &p.OverflowText},
		{"background", &p.Background},
	}
}

func colorKey(name string) string {
	return "colors." + name
}

// ParseColor parses #rrggbb or #rrggbbaa.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 && len(s) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	buf, err := hex.DecodeString(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	c := color.RGBA{buf[0], buf[1], buf[2], 255}
	if len(buf) == 4 {
		c.A = buf[3]
	}
	return c, nil
}

// FormatColor formats c as #rrggbb, adding the alpha channel when c is not
// opaque.
func FormatColor(c color.RGBA) string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
