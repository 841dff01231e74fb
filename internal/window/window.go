package window

import (
	"github.com/1broseidon/winlayer/internal/event"
)

// Window is one native window, owned or adopted, behind the uniform control
// surface. A window whose handle is zero (failed creation, null adoption) is
// inert: operations are no-ops and queries return zero values.
type Window struct {
	mgr  *Manager
	sink event.Sink

	handle Handle
	owned  bool
	closed bool

	lastSize Size
	resizing bool
	visible  bool

	savedMode ModeToken
}

// SystemHandle returns the native identity.
func (w *Window) SystemHandle() Handle {
	return w.handle
}

// Owned reports whether this window was created by the layer.
func (w *Window) Owned() bool {
	return w.owned
}

// Valid reports whether the window has a live native handle.
func (w *Window) Valid() bool {
	return w.handle != 0 && !w.closed
}

// Position returns the window's top-left corner in screen coordinates.
func (w *Window) Position() Point {
	if !w.Valid() {
		return Point{}
	}
	p, err := w.mgr.driver.Position(w.handle)
	if err != nil {
		w.mgr.log.Debug("failed to query window position", "error", err)
		return Point{}
	}
	return p
}

// Size returns the client area size.
func (w *Window) Size() Size {
	if !w.Valid() {
		return Size{}
	}
	s, err := w.mgr.driver.Size(w.handle)
	if err != nil {
		w.mgr.log.Debug("failed to query window size", "error", err)
		return Size{}
	}
	return s
}

// SetPosition requests a move. It does not wait for the window manager.
func (w *Window) SetPosition(p Point) {
	if !w.Valid() {
		return
	}
	if err := w.mgr.driver.Move(w.handle, p); err != nil {
		w.mgr.log.Warn("failed to move window", "error", err)
	}
	w.mgr.driver.Flush()
}

// SetSize requests a client area resize. The resulting geometry is reported
// later through ProcessEvents.
func (w *Window) SetSize(s Size) {
	if !w.Valid() {
		return
	}
	if err := w.mgr.driver.Resize(w.handle, s); err != nil {
		w.mgr.log.Warn("failed to resize window", "error", err)
	}
	w.mgr.driver.Flush()
}

// SetTitle sets the native window name.
func (w *Window) SetTitle(title string) {
	if !w.Valid() {
		return
	}
	if err := w.mgr.driver.SetTitle(w.handle, title); err != nil {
		w.mgr.log.Warn("failed to set window title", "error", err)
	}
}

// SetIcon installs an icon from row-major RGBA pixels.
func (w *Window) SetIcon(width, height uint, pixels []byte) {
	if !w.Valid() {
		return
	}
	icon, err := NewIcon(width, height, pixels)
	if err != nil {
		w.mgr.log.Error("failed to set the window's icon", "error", err)
		return
	}
	if err := w.mgr.driver.SetIcon(w.handle, icon); err != nil {
		w.mgr.log.Error("failed to set the window's icon", "error", err)
		return
	}
	w.mgr.driver.Flush()
}

// SetVisible shows or hides the window. Repeating the current state does
// nothing.
func (w *Window) SetVisible(visible bool) {
	if !w.Valid() || w.visible == visible {
		return
	}
	if err := w.mgr.driver.SetVisible(w.handle, visible); err != nil {
		w.mgr.log.Warn("failed to change window visibility", "visible", visible, "error", err)
		return
	}
	w.visible = visible
	w.mgr.driver.Flush()
}

// Visible reports the last visibility requested through SetVisible.
func (w *Window) Visible() bool {
	return w.visible
}

// ProcessEvents delivers pending notifications for this window to its sink.
func (w *Window) ProcessEvents() {
	if !w.Valid() {
		return
	}
	w.mgr.driver.Pump(w.handle)
}

// Close tears the window down: hooks are removed, an altered display mode
// is restored, an owned native window is destroyed and the last owned
// window releases the class registration. Close is idempotent.
func (w *Window) Close() {
	if w.closed {
		return
	}
	w.closed = true
	d := w.mgr.driver

	if w.handle != 0 {
		d.Detach(w.handle)
	}
	w.restoreFullscreen()

	if !w.owned {
		return
	}
	if w.handle != 0 {
		if err := d.Destroy(w.handle); err != nil {
			w.mgr.log.Warn("failed to destroy window", "error", err)
		}
		d.Flush()
	}
	w.mgr.releaseClass()
}

// initialize is shared by both construction modes.
func (w *Window) initialize() {
	d := w.mgr.driver
	if err := d.SubscribeClose(w.handle); err != nil {
		w.mgr.log.Warn("failed to subscribe to close requests", "error", err)
	}
	w.SetVisible(true)
	d.Flush()
}

func (w *Window) push(ev event.Event) {
	if w.sink != nil {
		w.sink.Push(ev)
	}
}
