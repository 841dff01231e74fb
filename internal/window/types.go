package window

import (
	"fmt"
	"strings"
)

// Handle is an opaque native window identity: an X11 window ID, a Win32
// HWND or an NSWindow pointer. Zero is never a valid window.
type Handle uintptr

// Point is a position in screen coordinates, top-left origin.
type Point struct {
	X int
	Y int
}

// Size is a client area extent in pixels.
type Size struct {
	Width  uint
	Height uint
}

// Empty reports whether either extent is zero.
func (s Size) Empty() bool {
	return s.Width == 0 || s.Height == 0
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// VideoMode describes a requested drawable mode.
type VideoMode struct {
	Width        uint
	Height       uint
	BitsPerPixel uint
}

// Size returns the mode's extents.
func (m VideoMode) Size() Size {
	return Size{Width: m.Width, Height: m.Height}
}

// Style is the construction-time decoration bitset.
type Style uint32

const (
	// StyleNone is exclusive and means a borderless, undecorated window.
	StyleNone     Style = 0
	StyleTitlebar Style = 1 << (iota - 1)
	StyleResize
	StyleClose
	StyleFullscreen

	StyleDefault = StyleTitlebar | StyleResize | StyleClose
)

// Has reports whether every bit of f is set.
func (s Style) Has(f Style) bool {
	return f != 0 && s&f == f
}

// Fullscreen reports whether a fullscreen window was requested.
func (s Style) Fullscreen() bool {
	return s.Has(StyleFullscreen)
}

func (s Style) String() string {
	if s == StyleNone {
		return "none"
	}
	var parts []string
	for _, f := range styleNames {
		if s.Has(f.style) {
			parts = append(parts, f.name)
		}
	}
	return strings.Join(parts, "|")
}

var styleNames = []struct {
	name  string
	style Style
}{
	{"titlebar", StyleTitlebar},
	{"resize", StyleResize},
	{"close", StyleClose},
	{"fullscreen", StyleFullscreen},
}

// ParseStyle combines style names into a bitset. "none" must appear alone.
func ParseStyle(names []string) (Style, error) {
	var style Style
	sawNone := false
	for _, raw := range names {
		name := strings.ToLower(strings.TrimSpace(raw))
		if name == "none" {
			sawNone = true
			continue
		}
		found := false
		for _, f := range styleNames {
			if f.name == name {
				style |= f.style
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("unknown style %q", raw)
		}
	}
	if sawNone && style != StyleNone {
		return 0, fmt.Errorf("style \"none\" cannot be combined with other styles")
	}
	return style, nil
}
