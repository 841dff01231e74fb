package window

// NotificationKind classifies a raw native notification after a backend has
// recognized it.
type NotificationKind int

const (
	// NotifyDestroy means the native window is being torn down.
	NotifyDestroy NotificationKind = iota
	// NotifyCloseRequest is the window manager's polite close request.
	NotifyCloseRequest
	NotifyFocusIn
	NotifyFocusOut
	// NotifyGeometry reports the client size after a geometry change.
	NotifyGeometry
	// NotifyDragBegin marks the start of an interactive move/resize.
	NotifyDragBegin
	// NotifyDragEnd marks the end of an interactive move/resize and carries
	// the final client size.
	NotifyDragEnd
)

func (k NotificationKind) String() string {
	switch k {
	case NotifyDestroy:
		return "destroy"
	case NotifyCloseRequest:
		return "close-request"
	case NotifyFocusIn:
		return "focus-in"
	case NotifyFocusOut:
		return "focus-out"
	case NotifyGeometry:
		return "geometry"
	case NotifyDragBegin:
		return "drag-begin"
	case NotifyDragEnd:
		return "drag-end"
	default:
		return "unknown"
	}
}

// Notification is the backend-neutral form of a native notification.
type Notification struct {
	Kind NotificationKind
	// Size is set for NotifyGeometry and NotifyDragEnd.
	Size Size
	// Minimized is set when a geometry change is an iconification.
	Minimized bool
}

// Receiver accepts classified notifications for one window. Drivers call it
// from their pump or from a host callback.
type Receiver interface {
	Notify(n Notification)
}

// CreateParams describes an owned native window.
type CreateParams struct {
	Title    string
	Position Point
	Size     Size
	Depth    uint
	Style    Style
	// Fullscreen is set when the style requested fullscreen. The window is
	// then created undecorated at the origin with the mode size.
	Fullscreen bool
}

// Policy holds the backend-specific behavior the shared state machine defers
// to.
type Policy interface {
	// ApplyDecorationPolicy translates style into native decoration hints.
	// It is only called for windowed (non-fullscreen) owned windows.
	ApplyDecorationPolicy(h Handle, style Style, size Size) error
	// EnumerateDisplayModes lists the sizes the primary display can switch to.
	EnumerateDisplayModes() ([]VideoMode, error)
	// SuppressDuringDrag reports whether geometry notifications received
	// between drag-begin and drag-end are coalesced.
	SuppressDuringDrag() bool
}

// ModeToken is an opaque saved display configuration.
type ModeToken struct {
	Index    int
	Rotation uint16
	Ref      uintptr
}

// ModeSwitcher changes the primary display mode.
type ModeSwitcher interface {
	// ModeSwitchAvailable reports whether display-mode switching works.
	ModeSwitchAvailable() bool
	// CurrentMode captures the configuration to restore later.
	CurrentMode() (ModeToken, error)
	// SwitchMode applies the enumerated mode at index.
	SwitchMode(index int, mode VideoMode) error
	// RestoreMode reapplies a configuration captured by CurrentMode.
	RestoreMode(tok ModeToken) error
	// ReleaseMode frees any native resource held by tok.
	ReleaseMode(tok ModeToken)
}

// ClassRegistrar is implemented by drivers with a process-wide window class
// that must exist while any owned window does.
type ClassRegistrar interface {
	RegisterClass() error
	UnregisterClass() error
}

// ScreenPlacer is implemented by drivers whose primary display does not
// start at the desktop origin.
type ScreenPlacer interface {
	ScreenOrigin() Point
}

// Driver is the native side of a window implementation. Every method that
// takes a Handle is only called with a non-zero handle.
type Driver interface {
	Policy
	ModeSwitcher

	// Name identifies the backend in logs.
	Name() string
	// ScreenSize returns the primary display extents.
	ScreenSize() Size

	// Create makes an owned window and routes its notifications to r.
	Create(p CreateParams, r Receiver) (Handle, error)
	// Adopt installs notification hooks on an external window.
	Adopt(h Handle, r Receiver) error
	// Detach removes the hooks installed by Create or Adopt and frees
	// auxiliary resources such as icons. It never destroys the window.
	Detach(h Handle)
	// Destroy releases an owned native window.
	Destroy(h Handle) error

	// SubscribeClose registers for the window manager's close request.
	SubscribeClose(h Handle) error
	// Flush commits pending native requests.
	Flush()
	// Pump delivers every pending notification for h to its receiver.
	Pump(h Handle)

	Position(h Handle) (Point, error)
	Size(h Handle) (Size, error)
	Move(h Handle, p Point) error
	Resize(h Handle, s Size) error
	SetTitle(h Handle, title string) error
	// SetIcon releases the previous icon, if any, and installs icon.
	SetIcon(h Handle, icon Icon) error
	SetVisible(h Handle, visible bool) error
}
