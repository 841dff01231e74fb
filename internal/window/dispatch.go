package window

import "github.com/1broseidon/winlayer/internal/event"

// Notify normalizes one classified notification and pushes at most one event
// to the sink. Notifications for an inert or closed window are dropped.
func (w *Window) Notify(n Notification) {
	if !w.Valid() {
		return
	}
	switch n.Kind {
	case NotifyDestroy:
		w.restoreFullscreen()
	case NotifyCloseRequest:
		w.push(event.Closed{})
	case NotifyFocusIn:
		w.push(event.GainedFocus{})
	case NotifyFocusOut:
		w.push(event.LostFocus{})
	case NotifyGeometry:
		if n.Minimized {
			return
		}
		if w.resizing && w.mgr.driver.SuppressDuringDrag() {
			return
		}
		w.resized(n.Size)
	case NotifyDragBegin:
		w.resizing = true
	case NotifyDragEnd:
		w.resizing = false
		w.resized(n.Size)
	}
}

// resized emits Resized when s differs from the last reported size. A moved
// window reports an unchanged size and emits nothing.
func (w *Window) resized(s Size) {
	if s.Empty() || s == w.lastSize {
		return
	}
	w.lastSize = s
	w.push(event.Resized{Width: s.Width, Height: s.Height})
}

// Resizing reports whether an interactive move/resize is in progress.
func (w *Window) Resizing() bool {
	return w.resizing
}
