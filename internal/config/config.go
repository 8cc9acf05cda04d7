package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/keyscreen/internal/config/loader"
	"github.com/dshills/keyscreen/internal/input/keymap"
	"github.com/dshills/keyscreen/internal/renderer"
	"github.com/dshills/keyscreen/internal/renderer/core"
)

// EnvPrefix is the prefix of environment overrides.
const EnvPrefix = "KEYSCREEN_"

// Input sources.
const (
	SourceEvdev    = "evdev"
	SourceTerminal = "terminal"
	SourceReplay   = "replay"
)

// Sources lists the valid input sources.
var Sources = []string{SourceEvdev, SourceTerminal, SourceReplay}

// LogLevels lists the valid log levels.
var LogLevels = []string{"debug", "info", "warn", "error"}

// FPS bounds.
const (
	MinFPS = 1
	MaxFPS = 240
)

// Config holds all keyscreen settings.
type Config struct {
	Profile string        `toml:"profile"`
	Input   InputConfig   `toml:"input"`
	Display DisplayConfig `toml:"display"`
	Theme   ThemeConfig   `toml:"theme"`
	Log     LogConfig     `toml:"log"`
}

// InputConfig selects the key source.
type InputConfig struct {
	// Source is evdev, terminal or replay.
	Source string `toml:"source"`
	// Device is the evdev node. Empty means auto-detect.
	Device string `toml:"device"`
	// ReplayFile is the script for the replay source.
	ReplayFile string `toml:"replay_file"`
	// Loop restarts the replay script when it ends.
	Loop bool `toml:"loop"`
}

// DisplayConfig configures rendering.
type DisplayConfig struct {
	FPS           int  `toml:"fps"`
	LetterSpacing int  `toml:"letter_spacing"`
	Headless      bool `toml:"headless"`
}

// ThemeConfig holds hex colors. An empty Inactive is derived.
type ThemeConfig struct {
	Text       string `toml:"text"`
	Inactive   string `toml:"inactive"`
	Background string `toml:"background"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Profile: keymap.DefaultProfile,
		Input: InputConfig{
			Source: SourceEvdev,
		},
		Display: DisplayConfig{
			FPS:           60,
			LetterSpacing: 1,
		},
		Theme: ThemeConfig{
			Text:       renderer.DefaultTextColor,
			Inactive:   renderer.DefaultInactiveColor,
			Background: renderer.DefaultBackgroundColor,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/keyscreen/config.toml, or "" when no
// config directory is known.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "keyscreen", "config.toml")
}

// LoadOptions controls Load.
type LoadOptions struct {
	// Path is the config file. Empty means DefaultPath.
	Path string

	// FS reads the config file. Nil means the OS file system.
	FS loader.FileSystem

	// Env loads environment overrides. Nil means the process environment
	// with EnvPrefix.
	Env loader.Loader

	// Overrides are flag values keyed by dotted path, e.g. "display.fps".
	Overrides map[string]any
}

// Load resolves defaults, the config file, the environment and overrides,
// in that order. It does not validate.
func Load(opts LoadOptions) (*Config, error) {
	merged, err := toMap(Default())
	if err != nil {
		return nil, err
	}

	path := opts.Path
	if path == "" {
		path = DefaultPath()
	}
	fsys := opts.FS
	if fsys == nil {
		fsys = loader.DefaultFS()
	}
	env := opts.Env
	if env == nil {
		env = loader.NewEnvLoader(EnvPrefix)
	}

	for _, src := range []loader.Loader{loader.NewTOMLLoaderWithFS(fsys, path), env} {
		layer, err := src.Load()
		if err != nil {
			return nil, err
		}
		merged = loader.DeepMerge(merged, layer)
	}

	for p, v := range opts.Overrides {
		loader.SetByPath(merged, p, v)
	}

	return fromMap(merged)
}

// toMap converts cfg into the generic map shape the loaders produce.
func toMap(cfg *Config) (map[string]any, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return loader.Parse("<defaults>", data)
}

// fromMap decodes a merged map into a Config.
func fromMap(m map[string]any) (*Config, error) {
	data, err := toml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encoding merged config: %w", err)
	}
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	return &cfg, nil
}

// Validate checks every setting and returns all problems joined. Each one
// is a *ValidationError wrapping ErrInvalidValue.
func (c *Config) Validate() error {
	var errs []error
	invalid := func(path string, value any, format string, args ...any) {
		errs = append(errs, &ValidationError{Path: path, Value: value, Message: fmt.Sprintf(format, args...)})
	}

	if !slices.Contains(keymap.Profiles(), strings.ToLower(c.Profile)) {
		invalid("profile", c.Profile, "unknown profile (available: %s)", strings.Join(keymap.Profiles(), ", "))
	}
	if !slices.Contains(Sources, c.Input.Source) {
		invalid("input.source", c.Input.Source, "unknown source (available: %s)", strings.Join(Sources, ", "))
	}
	if c.Input.Source == SourceReplay && c.Input.ReplayFile == "" {
		invalid("input.replay_file", c.Input.ReplayFile, "required for the replay source")
	}
	if c.Input.Source == SourceTerminal && c.Display.Headless {
		invalid("display.headless", c.Display.Headless, "the terminal source needs the overlay renderer")
	}
	if c.Display.FPS < MinFPS || c.Display.FPS > MaxFPS {
		invalid("display.fps", c.Display.FPS, "must be between %d and %d", MinFPS, MaxFPS)
	}
	if c.Display.LetterSpacing < 0 {
		invalid("display.letter_spacing", c.Display.LetterSpacing, "must not be negative")
	}

	colors := []struct {
		path, value string
		optional    bool
	}{
		{"theme.text", c.Theme.Text, false},
		{"theme.inactive", c.Theme.Inactive, true},
		{"theme.background", c.Theme.Background, false},
	}
	for _, col := range colors {
		if col.optional && col.value == "" {
			continue
		}
		if _, err := core.ColorFromHex(col.value); err != nil {
			invalid(col.path, col.value, "malformed hex color")
		}
	}

	if !slices.Contains(LogLevels, strings.ToLower(c.Log.Level)) {
		invalid("log.level", c.Log.Level, "unknown level (available: %s)", strings.Join(LogLevels, ", "))
	}

	return errors.Join(errs...)
}
