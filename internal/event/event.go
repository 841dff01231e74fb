package event

import "fmt"

// Kind identifies the type of a normalized window event.
type Kind int

const (
	KindClosed Kind = iota
	KindResized
	KindLostFocus
	KindGainedFocus
)

func (k Kind) String() string {
	switch k {
	case KindClosed:
		return "closed"
	case KindResized:
		return "resized"
	case KindLostFocus:
		return "lost-focus"
	case KindGainedFocus:
		return "gained-focus"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Event is a backend-independent window notification. The set of
// implementations is closed: Closed, Resized, LostFocus and GainedFocus.
type Event interface {
	Kind() Kind
	isEvent()
}

// Closed is emitted when the window manager asks the window to close.
type Closed struct{}

// Resized carries the new client area size in pixels.
type Resized struct {
	Width  uint
	Height uint
}

// LostFocus is emitted when the window stops receiving input focus.
type LostFocus struct{}

// GainedFocus is emitted when the window receives input focus.
type GainedFocus struct{}

func (Closed) Kind() Kind      { return KindClosed }
func (Resized) Kind() Kind     { return KindResized }
func (LostFocus) Kind() Kind   { return KindLostFocus }
func (GainedFocus) Kind() Kind { return KindGainedFocus }

func (Closed) isEvent()      {}
func (Resized) isEvent()     {}
func (LostFocus) isEvent()   {}
func (GainedFocus) isEvent() {}

func (r Resized) String() string {
	return fmt.Sprintf("resized %dx%d", r.Width, r.Height)
}

// Sink receives normalized events in delivery order. Implementations must
// not fail and must not block indefinitely.
type Sink interface {
	Push(ev Event)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(ev Event)

// Push calls f(ev).
func (f SinkFunc) Push(ev Event) {
	f(ev)
}
