// Package win32 implements the window driver on the Win32 API. Message
// classification and style computation are plain functions so they can be
// tested on any host; the native calls live in the windows-only files.
package win32

import "github.com/1broseidon/winlayer/internal/window"

// Name is the backend identifier used in logs and configuration.
const Name = "win32"

// ClassName is the window class registered for owned windows.
const ClassName = "winlayer_window"

// Window messages the driver reacts to.
const (
	wmDestroy       = 0x0002
	wmSize          = 0x0005
	wmSetFocus      = 0x0007
	wmKillFocus     = 0x0008
	wmClose         = 0x0010
	wmSetIcon       = 0x0080
	wmEnterSizeMove = 0x0231
	wmExitSizeMove  = 0x0232
)

// WM_SIZE wParam values.
const (
	sizeRestored  = 0
	sizeMinimized = 1
)

func loword(v uintptr) uint { return uint(v & 0xffff) }
func hiword(v uintptr) uint { return uint((v >> 16) & 0xffff) }

// classifyMessage maps a window message to a notification. clientSize is
// consulted only when the message does not carry the size itself.
func classifyMessage(msg uint32, wParam, lParam uintptr, clientSize func() window.Size) (window.Notification, bool) {
	switch msg {
	case wmDestroy:
		return window.Notification{Kind: window.NotifyDestroy}, true
	case wmClose:
		return window.Notification{Kind: window.NotifyCloseRequest}, true
	case wmSetFocus:
		return window.Notification{Kind: window.NotifyFocusIn}, true
	case wmKillFocus:
		return window.Notification{Kind: window.NotifyFocusOut}, true
	case wmSize:
		return window.Notification{
			Kind:      window.NotifyGeometry,
			Size:      window.Size{Width: loword(lParam), Height: hiword(lParam)},
			Minimized: wParam == sizeMinimized,
		}, true
	case wmEnterSizeMove:
		return window.Notification{Kind: window.NotifyDragBegin}, true
	case wmExitSizeMove:
		return window.Notification{Kind: window.NotifyDragEnd, Size: clientSize()}, true
	}
	return window.Notification{}, false
}

// https://learn.microsoft.com/en-us/windows/win32/api/winuser/ns-winuser-msg
type msg struct {
	hwnd     uintptr
	message  uint32
	wParam   uintptr
	lParam   uintptr
	time     uint32
	pt       point
	lPrivate uint32
}

type point struct {
	x int32
	y int32
}
