// Package cocoa implements the window driver on AppKit through the
// Objective-C runtime, without cgo. Style and geometry helpers are plain
// functions; everything touching AppKit is darwin-only.
package cocoa

import "github.com/1broseidon/winlayer/internal/window"

// Name is the backend identifier used in logs and configuration.
const Name = "cocoa"

// NSWindowStyleMask bits.
const (
	styleMaskBorderless     = 0
	styleMaskTitled         = 1 << 0
	styleMaskClosable       = 1 << 1
	styleMaskMiniaturizable = 1 << 2
	styleMaskResizable      = 1 << 3
)

// NSBitmapFormat bits for a BGRA buffer read as little-endian ARGB words.
const (
	bitmapFormatAlphaFirst        = 1 << 0
	bitmapFormatAlphaNonpremult   = 1 << 1
	bitmapFormat32BitLittleEndian = 1 << 9
)

// iconBitmapFormat describes window.Icon.BGRA to NSBitmapImageRep.
const iconBitmapFormat = bitmapFormatAlphaFirst | bitmapFormatAlphaNonpremult | bitmapFormat32BitLittleEndian

// fullscreenWindowLevel sits above the menu bar (NSMainMenuWindowLevel + 1).
const fullscreenWindowLevel = 25

// styleMask maps a style to an NSWindowStyleMask. Fullscreen windows are
// borderless and raised above the menu bar.
func styleMask(style window.Style, fullscreen bool) uint {
	if fullscreen || style == window.StyleNone {
		return styleMaskBorderless
	}
	var mask uint
	if style.Has(window.StyleTitlebar) {
		mask |= styleMaskTitled | styleMaskMiniaturizable
	}
	if style.Has(window.StyleResize) {
		mask |= styleMaskResizable
	}
	if style.Has(window.StyleClose) {
		mask |= styleMaskClosable
	}
	return mask
}

// flipY converts between top-left and AppKit's bottom-left screen origin
// for a span of length extent. The conversion is its own inverse.
func flipY(screenHeight, y, extent float64) float64 {
	return screenHeight - y - extent
}

// Delegate selectors and the notifications they produce. windowShouldClose:
// is handled separately because it returns a value.
var delegateNotifications = []struct {
	selector string
	kind     window.NotificationKind
	sized    bool
}{
	{"windowDidBecomeKey:", window.NotifyFocusIn, false},
	{"windowDidResignKey:", window.NotifyFocusOut, false},
	{"windowDidResize:", window.NotifyGeometry, true},
	{"windowWillStartLiveResize:", window.NotifyDragBegin, false},
	{"windowDidEndLiveResize:", window.NotifyDragEnd, true},
	{"windowWillClose:", window.NotifyDestroy, false},
}
