package cocoa

import "github.com/1broseidon/winlayer/internal/window"

// routes binds the handle a caller holds, an NSWindow or an adopted NSView,
// to the NSWindow AppKit names in delegate callbacks. State is keyed by the
// NSWindow.
type routes[T any] struct {
	windows *window.Registry[window.Handle]
	state   *window.Registry[T]
}

func newRoutes[T any]() *routes[T] {
	return &routes[T]{
		windows: window.NewRegistry[window.Handle](),
		state:   window.NewRegistry[T](),
	}
}

// bind routes h, and callbacks for win, to v.
func (r *routes[T]) bind(h, win window.Handle, v T) {
	if h == 0 || win == 0 {
		return
	}
	r.windows.Register(h, win)
	r.state.Register(win, v)
}

// window returns the NSWindow bound to h.
func (r *routes[T]) window(h window.Handle) (window.Handle, bool) {
	return r.windows.Lookup(h)
}

// byHandle looks state up by the caller's handle.
func (r *routes[T]) byHandle(h window.Handle) (T, bool) {
	win, ok := r.windows.Lookup(h)
	if !ok {
		var zero T
		return zero, false
	}
	return r.state.Lookup(win)
}

// byWindow looks state up by the NSWindow a callback reports.
func (r *routes[T]) byWindow(win window.Handle) (T, bool) {
	return r.state.Lookup(win)
}

// unbind removes h and returns its state and NSWindow.
func (r *routes[T]) unbind(h window.Handle) (T, window.Handle, bool) {
	win, ok := r.windows.Unregister(h)
	if !ok {
		var zero T
		return zero, 0, false
	}
	v, ok := r.state.Unregister(win)
	return v, win, ok
}
