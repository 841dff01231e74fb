package x11

import (
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"

	"github.com/1broseidon/winlayer/internal/window"
)

// eventWindow returns the window an event is reported for. Structure events
// are matched on the window they describe, not on the window selecting them.
func eventWindow(ev xgb.Event) (xproto.Window, bool) {
	switch e := ev.(type) {
	case xproto.DestroyNotifyEvent:
		return e.Window, true
	case xproto.ConfigureNotifyEvent:
		return e.Window, true
	case xproto.MapNotifyEvent:
		return e.Window, true
	case xproto.UnmapNotifyEvent:
		return e.Window, true
	case xproto.ReparentNotifyEvent:
		return e.Window, true
	case xproto.GravityNotifyEvent:
		return e.Window, true
	case xproto.CirculateNotifyEvent:
		return e.Window, true
	case xproto.FocusInEvent:
		return e.Event, true
	case xproto.FocusOutEvent:
		return e.Event, true
	case xproto.ClientMessageEvent:
		return e.Window, true
	case xproto.PropertyNotifyEvent:
		return e.Window, true
	case xproto.ExposeEvent:
		return e.Window, true
	}
	return 0, false
}

// entryWindow identifies the window a queued entry belongs to. Errors are
// keyed on the resource that failed.
func entryWindow(entry xgbutil.EventOrError) (xproto.Window, bool) {
	if entry.Err != nil {
		return xproto.Window(entry.Err.BadId()), true
	}
	if entry.Event == nil {
		return 0, false
	}
	return eventWindow(entry.Event)
}

// classify turns an X event into a notification. Events with no meaning for
// the event stream report false.
func classify(ev xgb.Event, closeAtom xproto.Atom) (window.Notification, bool) {
	switch e := ev.(type) {
	case xproto.DestroyNotifyEvent:
		return window.Notification{Kind: window.NotifyDestroy}, true
	case xproto.FocusInEvent:
		return window.Notification{Kind: window.NotifyFocusIn}, true
	case xproto.FocusOutEvent:
		return window.Notification{Kind: window.NotifyFocusOut}, true
	case xproto.ConfigureNotifyEvent:
		return window.Notification{
			Kind: window.NotifyGeometry,
			Size: window.Size{Width: uint(e.Width), Height: uint(e.Height)},
		}, true
	case xproto.ClientMessageEvent:
		if isCloseRequest(e, closeAtom) {
			return window.Notification{Kind: window.NotifyCloseRequest}, true
		}
	}
	return window.Notification{}, false
}

func isCloseRequest(e xproto.ClientMessageEvent, closeAtom xproto.Atom) bool {
	if e.Format != 32 || closeAtom == 0 {
		return false
	}
	data := e.Data.Data32
	return len(data) > 0 && xproto.Atom(data[0]) == closeAtom
}
