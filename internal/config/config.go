// Package config loads the winevents configuration file.
package config

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/1broseidon/winlayer/internal/window"
)

// Defaults for a fresh configuration.
const (
	DefaultTitle        = "winlayer"
	DefaultWidth        = 800
	DefaultHeight       = 600
	DefaultBitsPerPixel = 32
	DefaultIconSize     = 32
	DefaultLogLevel     = "info"
)

// Config describes the window winevents creates or adopts.
type Config struct {
	Title        string   `yaml:"title"`
	Width        uint     `yaml:"width"`
	Height       uint     `yaml:"height"`
	BitsPerPixel uint     `yaml:"bits_per_pixel"`
	Style        []string `yaml:"style"`
	// Icon is an image file; it is scaled to IconSize square.
	Icon     string `yaml:"icon,omitempty"`
	IconSize int    `yaml:"icon_size"`
	// Display is the X server name; empty means $DISPLAY.
	Display  string `yaml:"display,omitempty"`
	LogLevel string `yaml:"log_level"`
	// Adopt is an external native handle, hex (0x...) or decimal. When set,
	// no window is created.
	Adopt string `yaml:"adopt,omitempty"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Title:        DefaultTitle,
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		BitsPerPixel: DefaultBitsPerPixel,
		Style:        []string{"titlebar", "resize", "close"},
		IconSize:     DefaultIconSize,
		LogLevel:     DefaultLogLevel,
	}
}

// ValidationError reports an invalid value at a YAML path.
type ValidationError struct {
	Path   string
	Source Source
	Err    error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Source.File != "" && e.Source.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s: %v", e.Source.File, e.Source.Line, e.Source.Column, e.Path, e.Err)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Validate checks every field and returns the first problem found.
func (c *Config) Validate() error {
	if c.Width == 0 {
		return &ValidationError{Path: "width", Err: fmt.Errorf("width must be > 0")}
	}
	if c.Height == 0 {
		return &ValidationError{Path: "height", Err: fmt.Errorf("height must be > 0")}
	}
	switch c.BitsPerPixel {
	case 8, 16, 24, 32:
	default:
		return &ValidationError{Path: "bits_per_pixel", Err: fmt.Errorf("bits_per_pixel must be one of: 8, 16, 24, 32")}
	}
	if _, err := c.WindowStyle(); err != nil {
		return &ValidationError{Path: "style", Err: err}
	}
	if c.IconSize <= 0 || c.IconSize > 512 {
		return &ValidationError{Path: "icon_size", Err: fmt.Errorf("icon_size must be between 1 and 512")}
	}
	if !isValidLogLevel(c.LogLevel) {
		return &ValidationError{Path: "log_level", Err: fmt.Errorf("log_level must be one of: debug, info, warning, error")}
	}
	if _, err := c.AdoptHandle(); err != nil {
		return &ValidationError{Path: "adopt", Err: err}
	}
	return nil
}

// WindowStyle parses the style list. An empty list is the default style.
func (c *Config) WindowStyle() (window.Style, error) {
	if len(c.Style) == 0 {
		return window.StyleDefault, nil
	}
	return window.ParseStyle(c.Style)
}

// VideoMode returns the requested drawable mode.
func (c *Config) VideoMode() window.VideoMode {
	return window.VideoMode{Width: c.Width, Height: c.Height, BitsPerPixel: c.BitsPerPixel}
}

// AdoptHandle parses Adopt. Zero means create a window instead.
func (c *Config) AdoptHandle() (window.Handle, error) {
	return ParseHandle(c.Adopt)
}

// ParseHandle reads a native handle written as 0x-prefixed hex or decimal.
func ParseHandle(s string) (window.Handle, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid window handle %q", s)
	}
	return window.Handle(v), nil
}

// ParseLogLevel converts a level name to a slog level. Unknown names mean
// info.
func ParseLogLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func isValidLogLevel(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug", "info", "warn", "warning", "error":
		return true
	}
	return false
}
