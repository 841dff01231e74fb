package win32

import "github.com/1broseidon/winlayer/internal/window"

// Window styles.
const (
	wsPopup        = 0x80000000
	wsClipSiblings = 0x04000000
	wsClipChildren = 0x02000000
	wsCaption      = 0x00C00000
	wsSysMenu      = 0x00080000
	wsThickFrame   = 0x00040000
	wsMinimizeBox  = 0x00020000
	wsMaximizeBox  = 0x00010000

	wsExAppWindow = 0x00040000
)

// windowStyle computes the WS_ and WS_EX_ bits for a window. Fullscreen
// windows are bare popups that stay on the taskbar.
func windowStyle(style window.Style, fullscreen bool) (ws, ex uint32) {
	if fullscreen {
		return wsPopup | wsClipChildren | wsClipSiblings, wsExAppWindow
	}
	if style == window.StyleNone {
		return wsPopup, 0
	}
	if style.Has(window.StyleTitlebar) {
		ws |= wsCaption | wsMinimizeBox
	}
	if style.Has(window.StyleResize) {
		ws |= wsThickFrame | wsMaximizeBox
	}
	if style.Has(window.StyleClose) {
		ws |= wsSysMenu
	}
	return ws, 0
}
