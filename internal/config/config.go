package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/dataslider/internal/geometry"
	"github.com/llehouerou/dataslider/internal/interaction"
	"github.com/llehouerou/dataslider/internal/logging"
	"github.com/llehouerou/dataslider/internal/steps"
	"github.com/llehouerou/dataslider/internal/ticks"
)

const appName = "dataslider"

// ErrNoRange is returned when the configuration has no [range] table.
var ErrNoRange = errors.New("no [range] section in configuration")

type Config struct {
	Orientation  string   `koanf:"orientation"` // "horizontal" or "vertical"
	Direction    string   `koanf:"direction"`   // "right", "left", "up" or "down"
	DefaultValue *float64 `koanf:"default_value"`
	Responsive   *bool    `koanf:"responsive"` // hide colliding ticks (default: true)
	ArrowKeys    *bool    `koanf:"arrow_keys"` // default: true
	Length       int      `koanf:"length"`     // track length in cells, 0 fits the window

	Range *RangeConfig `koanf:"range"`
	Ticks TicksConfig  `koanf:"ticks"`
	Theme ThemeConfig  `koanf:"theme"`
}

// RangeConfig holds the slider domain.
type RangeConfig struct {
	Min      *float64 `koanf:"min"`      // default: 0
	Max      *float64 `koanf:"max"`      // default: 100
	Step     *float64 `koanf:"step"`     // default: 1
	Decimals *int     `koanf:"decimals"` // default: inferred from step
}

// TicksConfig holds tick labels and tick-mark series.
type TicksConfig struct {
	Snap      *bool         `koanf:"snap"`      // snap to label values (default: true)
	Clickable *bool         `koanf:"clickable"` // default: true
	Labels    []LabelConfig `koanf:"labels"`
	Marks     []MarkConfig  `koanf:"marks"`
}

// LabelConfig is one tick label.
type LabelConfig struct {
	Value    float64 `koanf:"value"`
	Label    string  `koanf:"label"`    // defaults to the formatted value
	Position int     `koanf:"position"` // extra cells away from the track
}

// MarkConfig is one tick-mark series.
type MarkConfig struct {
	Min  float64 `koanf:"min"`
	Max  float64 `koanf:"max"`
	Step float64 `koanf:"step"`
}

// ThemeConfig holds the ribbon gradient colors as #rrggbb.
type ThemeConfig struct {
	From string `koanf:"from"`
	To   string `koanf:"to"`
}

// Default returns the configuration used when no file sets a value.
func Default() *Config {
	return &Config{Range: &RangeConfig{}}
}

// Load reads configuration files in priority order (last wins).
func Load() (*Config, error) {
	return load(getConfigPaths())
}

// LoadFile reads a single configuration file.
func LoadFile(path string) (*Config, error) {
	return load([]string{expandPath(path)})
}

func load(paths []string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
				return nil, err
			}
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. $XDG_CONFIG_HOME/dataslider/config.toml
	paths = append(paths, filepath.Join(xdg.ConfigHome, appName, "config.toml"))

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

// ExistingPaths returns the configuration files that exist, for watching.
func ExistingPaths() []string {
	var out []string
	for _, p := range getConfigPaths() {
		if _, err := os.Stat(p); err == nil {
			out = append(out, p)
		}
	}
	return out
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// Options validates the configuration, applies defaults and returns the
// immutable slider options. Only a missing range is an error; other
// problems are logged and replaced by defaults.
func (c *Config) Options(logger *slog.Logger) (*interaction.Options, error) {
	logger = logging.OrNop(logger)
	if c.Range == nil {
		return nil, ErrNoRange
	}

	opts := interaction.DefaultOptions()
	opts.Range = c.Range.toRange()

	orientation, err := geometry.ParseOrientation(c.Orientation)
	if err != nil {
		logger.Warn("invalid orientation, using horizontal", "error", err)
	}
	direction, err := geometry.ParseDirection(c.Direction, orientation)
	if err != nil {
		logger.Warn("invalid direction, using default", "error", err, "direction", direction)
	}
	opts.Axis = geometry.NewAxis(orientation, direction)

	opts.DefaultValue = opts.Range.Min
	if c.DefaultValue != nil {
		opts.DefaultValue = *c.DefaultValue
	}
	if c.Responsive != nil {
		opts.Responsive = *c.Responsive
	}
	if c.ArrowKeys != nil {
		opts.ArrowKeys = *c.ArrowKeys
	}
	if c.Ticks.Clickable != nil {
		opts.LabelsClickable = *c.Ticks.Clickable
	}
	if c.Ticks.Snap != nil {
		opts.SnapToTicks = *c.Ticks.Snap
	}

	for _, l := range c.Ticks.Labels {
		opts.Labels = append(opts.Labels, ticks.Tick{Value: l.Value, Label: l.Label, Position: l.Position})
	}
	for _, m := range c.Ticks.Marks {
		opts.Marks = append(opts.Marks, ticks.MarkSet{Min: m.Min, Max: m.Max, Step: m.Step})
	}
	return &opts, nil
}

func (r RangeConfig) toRange() steps.Range {
	out := steps.Range{Min: 0, Max: 100, Step: 1, Decimals: -1}
	if r.Min != nil {
		out.Min = *r.Min
	}
	if r.Max != nil {
		out.Max = *r.Max
	}
	if r.Step != nil {
		out.Step = *r.Step
	}
	if r.Decimals != nil {
		out.Decimals = *r.Decimals
	}
	return out
}

// GetThemeConfig returns the theme colors with defaults applied.
func (c *Config) GetThemeConfig() ThemeConfig {
	t := c.Theme
	if !isHexColor(t.From) {
		t.From = "#a78bfa"
	}
	if !isHexColor(t.To) {
		t.To = "#f1a208"
	}
	return t
}

func isHexColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for _, r := range s[1:] {
		if !(r >= '0' && r <= '9' || r >= 'a' && r <= 'f' || r >= 'A' && r <= 'F') {
			return false
		}
	}
	return true
}
