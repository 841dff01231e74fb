package x11

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/xevent"
)

// sharedQueue is the connection-wide event queue every window pump reads.
type sharedQueue interface {
	// Fill moves whatever the server has sent into the queue without
	// blocking.
	Fill()
	Peek() []xgbutil.EventOrError
	DequeueAt(i int)
}

type xeventQueue struct {
	xu *xgbutil.XUtil
}

func (q xeventQueue) Fill()                        { xevent.Read(q.xu, false) }
func (q xeventQueue) Peek() []xgbutil.EventOrError { return xevent.Peek(q.xu) }
func (q xeventQueue) DequeueAt(i int)              { xevent.DequeueAt(q.xu, i) }

// nextFor removes and returns the first queued entry addressed to win.
// Everything else, including entries for windows this driver does not know
// and entries with no window, stays queued in order for other readers of
// the connection.
func nextFor(q sharedQueue, win xproto.Window) (xgbutil.EventOrError, bool) {
	for i, entry := range q.Peek() {
		if target, ok := entryWindow(entry); !ok || target != win {
			continue
		}
		q.DequeueAt(i)
		return entry, true
	}
	return xgbutil.EventOrError{}, false
}
