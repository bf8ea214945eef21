// Package config loads widget settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"
	"unicode/utf8"

	"github.com/BurntSushi/toml"

	"github.com/iw2rmb/inkwell/editor"
	"github.com/iw2rmb/inkwell/input"
	"github.com/iw2rmb/inkwell/widget"
)

// Config is the root configuration structure.
type Config struct {
	Widget WidgetConfig `toml:"widget"`
	Keys   KeysConfig   `toml:"keys"`
	Log    LogConfig    `toml:"log"`
}

// WidgetConfig holds the settings of one text widget.
type WidgetConfig struct {
	MaxLines      int    `toml:"max_lines"`
	MaxChars      int    `toml:"max_chars"`
	ScrollEnabled bool   `toml:"scroll_enabled"`
	ReadOnly      bool   `toml:"read_only"`
	Password      bool   `toml:"password"`
	PasswordGlyph string `toml:"password_glyph"`

	PlaceholderText string `toml:"placeholder_text"`

	// Wrap is one of "none", "word", "glyph". Align is one of "left",
	// "center", "right", "justified", "end". VerticalAlign is one of "top",
	// "middle", "bottom".
	Wrap          string `toml:"wrap"`
	Align         string `toml:"align"`
	VerticalAlign string `toml:"vertical_align"`

	Width  int `toml:"width"`
	Height int `toml:"height"`

	HistoryLimit   int `toml:"history_limit"`
	DebounceMS     int `toml:"debounce_ms"`
	ClickTimeoutMS int `toml:"click_timeout_ms"`
}

// KeysConfig holds key binding settings.
type KeysConfig struct {
	// Command is the platform command modifier: "ctrl" or "super".
	Command string `toml:"command"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

var (
	wrapModes = map[string]editor.WrapMode{
		"none":  editor.WrapNone,
		"word":  editor.WrapWord,
		"glyph": editor.WrapGlyph,
	}
	aligns = map[string]editor.Align{
		"left":      editor.AlignLeft,
		"center":    editor.AlignCenter,
		"right":     editor.AlignRight,
		"justified": editor.AlignJustified,
		"end":       editor.AlignEnd,
	}
	verticalAligns = map[string]input.VerticalAlign{
		"top":    input.AlignTop,
		"middle": input.AlignMiddle,
		"bottom": input.AlignBottom,
	}
	commands = map[string]input.CommandModifier{
		"ctrl":  input.CommandCtrl,
		"super": input.CommandSuper,
	}
	logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true, "disabled": true}
)

// Load reads configuration from a TOML file and applies environment variable
// overrides.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is required")
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Decode parses configuration from TOML text.
func Decode(data string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.Decode(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate returns an error if the configuration is invalid.
func (c *Config) Validate() error {
	var errs []error
	w := c.Widget

	if w.MaxLines < 0 {
		errs = append(errs, fmt.Errorf("widget.max_lines=%d must not be negative", w.MaxLines))
	}
	if w.MaxChars < 0 {
		errs = append(errs, fmt.Errorf("widget.max_chars=%d must not be negative", w.MaxChars))
	}
	if w.PasswordGlyph != "" && utf8.RuneCountInString(w.PasswordGlyph) != 1 {
		errs = append(errs, fmt.Errorf("widget.password_glyph=%q must be a single character", w.PasswordGlyph))
	}
	if w.Wrap != "" && !has(wrapModes, w.Wrap) {
		errs = append(errs, fmt.Errorf("widget.wrap=%q must be none, word or glyph", w.Wrap))
	}
	if w.Align != "" && !has(aligns, w.Align) {
		errs = append(errs, fmt.Errorf("widget.align=%q is not a known alignment", w.Align))
	}
	if w.VerticalAlign != "" && !has(verticalAligns, w.VerticalAlign) {
		errs = append(errs, fmt.Errorf("widget.vertical_align=%q must be top, middle or bottom", w.VerticalAlign))
	}
	if w.Width < 0 || w.Height < 0 {
		errs = append(errs, fmt.Errorf("widget size %dx%d must not be negative", w.Width, w.Height))
	}
	if w.HistoryLimit < 0 {
		errs = append(errs, fmt.Errorf("widget.history_limit=%d must not be negative", w.HistoryLimit))
	}
	if w.DebounceMS < 0 {
		errs = append(errs, fmt.Errorf("widget.debounce_ms=%d must not be negative", w.DebounceMS))
	}
	if w.ClickTimeoutMS < 0 {
		errs = append(errs, fmt.Errorf("widget.click_timeout_ms=%d must not be negative", w.ClickTimeoutMS))
	}
	if c.Keys.Command != "" && !has(commands, c.Keys.Command) {
		errs = append(errs, fmt.Errorf("keys.command=%q must be ctrl or super", c.Keys.Command))
	}
	if c.Log.Level != "" && !logLevels[c.Log.Level] {
		errs = append(errs, fmt.Errorf("log.level=%q is not a known level", c.Log.Level))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

func has[V any](m map[string]V, k string) bool {
	_, ok := m[k]
	return ok
}

func applyEnvOverrides(cfg *Config) {
	for _, setter := range []struct {
		env   string
		apply func(string)
	}{
		{"INKWELL_LOG_FILE", func(v string) {
			if v != "" {
				cfg.Log.File = v
			}
		}},
		{"INKWELL_LOG_LEVEL", func(v string) {
			if v != "" {
				cfg.Log.Level = v
			}
		}},
	} {
		setter.apply(os.Getenv(setter.env))
	}
}

// PasswordGlyphOrDefault returns the configured glyph, or 0 for the default.
func (w WidgetConfig) PasswordGlyphOrDefault() rune {
	r, _ := utf8.DecodeRuneInString(w.PasswordGlyph)
	if r == utf8.RuneError {
		return 0
	}
	return r
}

// DebounceOrDefault returns the history debounce window.
func (w WidgetConfig) DebounceOrDefault() time.Duration {
	if w.DebounceMS <= 0 {
		return input.DefaultDebounce
	}
	return time.Duration(w.DebounceMS) * time.Millisecond
}

// ClickTimeoutOrDefault returns the multi-click timeout.
func (w WidgetConfig) ClickTimeoutOrDefault() time.Duration {
	if w.ClickTimeoutMS <= 0 {
		return input.DefaultClickTimeout
	}
	return time.Duration(w.ClickTimeoutMS) * time.Millisecond
}

// WrapOrDefault returns the wrap mode, word wrapping when unset.
func (w WidgetConfig) WrapOrDefault() editor.WrapMode {
	if m, ok := wrapModes[w.Wrap]; ok {
		return m
	}
	return editor.WrapWord
}

func (w WidgetConfig) AlignOrDefault() editor.Align { return aligns[w.Align] }

func (w WidgetConfig) VerticalAlignOrDefault() input.VerticalAlign {
	return verticalAligns[w.VerticalAlign]
}

// SizeOrDefault returns the widget size in cells, 40x1 when unset.
func (w WidgetConfig) SizeOrDefault() (width, height int) {
	width, height = w.Width, w.Height
	if width <= 0 {
		width = 40
	}
	if height <= 0 {
		height = 1
	}
	return width, height
}

func (k KeysConfig) CommandOrDefault() input.CommandModifier { return commands[k.Command] }

// LevelOrDefault returns the log level, "info" when unset.
func (l LogConfig) LevelOrDefault() string {
	if l.Level == "" {
		return "info"
	}
	return l.Level
}

// WidgetConfig builds the configuration of widget id drawn on a terminal
// panel at origin.
func (c *Config) WidgetConfig(id uint64, origin input.Point) widget.Config {
	w := c.Widget
	width, height := w.SizeOrDefault()
	return widget.Config{
		ID: id,
		Surface: input.SurfaceOptions{
			Panel: &input.Panel{Origin: origin},
			Size:  input.Point{X: float32(width), Y: float32(height)},
		},
		VerticalAlign: w.VerticalAlignOrDefault(),
		Editor: editor.Options{
			MaxLines:      w.MaxLines,
			MaxChars:      w.MaxChars,
			ReadOnly:      w.ReadOnly,
			ScrollEnabled: w.ScrollEnabled,
			Wrap:          w.WrapOrDefault(),
			Align:         w.AlignOrDefault(),
		},
		Password:      w.Password,
		PasswordGlyph: w.PasswordGlyphOrDefault(),
		Placeholder:   w.PlaceholderText,
		HistoryLimit:  w.HistoryLimit,
		Debounce:      w.DebounceOrDefault(),
		ClickTimeout:  w.ClickTimeoutOrDefault(),
		Command:       c.Keys.CommandOrDefault(),
	}
}
