package win32

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"

	"github.com/1broseidon/winlayer/internal/window"
)

func TestClassifyMessage(t *testing.T) {
	calls := 0
	size := func() window.Size {
		calls++
		return window.Size{Width: 1024, Height: 768}
	}

	tests := []struct {
		name   string
		msg    uint32
		wParam uintptr
		lParam uintptr
		want   window.Notification
		ok     bool
	}{
		{"destroy", wmDestroy, 0, 0, window.Notification{Kind: window.NotifyDestroy}, true},
		{"close", wmClose, 0, 0, window.Notification{Kind: window.NotifyCloseRequest}, true},
		{"set focus", wmSetFocus, 0, 0, window.Notification{Kind: window.NotifyFocusIn}, true},
		{"kill focus", wmKillFocus, 0, 0, window.Notification{Kind: window.NotifyFocusOut}, true},
		{"size", wmSize, sizeRestored, 480<<16 | 640, window.Notification{
			Kind: window.NotifyGeometry, Size: window.Size{Width: 640, Height: 480},
		}, true},
		{"minimize", wmSize, sizeMinimized, 0, window.Notification{Kind: window.NotifyGeometry, Minimized: true}, true},
		{"enter size move", wmEnterSizeMove, 0, 0, window.Notification{Kind: window.NotifyDragBegin}, true},
		{"exit size move", wmExitSizeMove, 0, 0, window.Notification{
			Kind: window.NotifyDragEnd, Size: window.Size{Width: 1024, Height: 768},
		}, true},
		{"paint is ignored", 0x000F, 0, 0, window.Notification{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := classifyMessage(tt.msg, tt.wParam, tt.lParam, size)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
	assert.Equal(t, 1, calls, "only WM_EXITSIZEMOVE queries the client area")
}

func TestWindowStyle(t *testing.T) {
	tests := []struct {
		name       string
		style      window.Style
		fullscreen bool
		ws, ex     uint32
	}{
		{"none", window.StyleNone, false, wsPopup, 0},
		{"titlebar", window.StyleTitlebar, false, wsCaption | wsMinimizeBox, 0},
		{"default", window.StyleDefault, false, wsCaption | wsMinimizeBox | wsThickFrame | wsMaximizeBox | wsSysMenu, 0},
		{"titlebar close", window.StyleTitlebar | window.StyleClose, false, wsCaption | wsMinimizeBox | wsSysMenu, 0},
		{"fullscreen", window.StyleDefault | window.StyleFullscreen, true, wsPopup | wsClipChildren | wsClipSiblings, wsExAppWindow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ws, ex := windowStyle(tt.style, tt.fullscreen)
			assert.Equal(t, tt.ws, ws)
			assert.Equal(t, tt.ex, ex)
		})
	}
}

func TestDevModeLayout(t *testing.T) {
	var dm devModeW
	assert.Equal(t, uintptr(devModeSize), unsafe.Sizeof(dm))
	assert.Equal(t, uintptr(72), unsafe.Offsetof(dm.Fields))
	assert.Equal(t, uintptr(168), unsafe.Offsetof(dm.BitsPerPel))
	assert.Equal(t, uintptr(172), unsafe.Offsetof(dm.PelsWidth))
	assert.Equal(t, uintptr(184), unsafe.Offsetof(dm.DisplayFrequency))
}

func TestMsgLayout(t *testing.T) {
	var m msg
	if unsafe.Sizeof(uintptr(0)) == 8 {
		assert.Equal(t, uintptr(48), unsafe.Sizeof(m))
		assert.Equal(t, uintptr(36), unsafe.Offsetof(m.pt))
		assert.Equal(t, uintptr(44), unsafe.Offsetof(m.lPrivate))
	} else {
		assert.Equal(t, uintptr(32), unsafe.Sizeof(m))
		assert.Equal(t, uintptr(20), unsafe.Offsetof(m.pt))
		assert.Equal(t, uintptr(28), unsafe.Offsetof(m.lPrivate))
	}
}

func TestNewDevMode(t *testing.T) {
	dm := newDevMode(window.VideoMode{Width: 1280, Height: 720, BitsPerPixel: 32})
	assert.Equal(t, uint16(devModeSize), dm.Size)
	assert.Equal(t, uint32(dmPelsWidth|dmPelsHeight|dmBitsPerPel), dm.Fields)
	assert.Equal(t, window.VideoMode{Width: 1280, Height: 720, BitsPerPixel: 32}, dm.videoMode())

	dm = newDevMode(window.VideoMode{Width: 800, Height: 600})
	assert.Equal(t, uint32(dmPelsWidth|dmPelsHeight), dm.Fields)
}

func TestAppendMode(t *testing.T) {
	var modes []window.VideoMode
	modes = appendMode(modes, window.VideoMode{Width: 800, Height: 600, BitsPerPixel: 32})
	modes = appendMode(modes, window.VideoMode{Width: 800, Height: 600, BitsPerPixel: 32})
	modes = appendMode(modes, window.VideoMode{Width: 800, Height: 600, BitsPerPixel: 16})
	assert.Len(t, modes, 2)
}

func TestAndMask(t *testing.T) {
	// 3x1, middle pixel transparent.
	icon := window.Icon{Width: 3, Height: 1, Mask: []byte{0x05}}
	assert.Equal(t, []byte{0x40, 0x00}, andMask(icon))
}
