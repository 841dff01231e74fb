package window

import (
	"log/slog"

	"github.com/1broseidon/winlayer/internal/event"
)

// Options configures a Manager.
type Options struct {
	// Logger receives non-fatal diagnostics. Nil means slog.Default().
	Logger *slog.Logger
}

// Manager is the process-wide window-manager context shared by every window
// of one backend. It holds the fullscreen owner slot and the count of owned
// windows backing the driver's class registration.
//
// A Manager and its windows must be used from a single goroutine.
type Manager struct {
	driver Driver
	log    *slog.Logger

	fullscreenOwner *Window
	ownedWindows    int
}

// NewManager binds a Manager to a driver.
func NewManager(d Driver, opts Options) *Manager {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		driver: d,
		log:    logger.With("backend", d.Name()),
	}
}

// Driver returns the native driver.
func (m *Manager) Driver() Driver {
	return m.driver
}

// FullscreenOwner returns the window currently holding an altered display
// mode, or nil.
func (m *Manager) FullscreenOwner() *Window {
	return m.fullscreenOwner
}

// OwnedWindows reports how many owned windows are alive.
func (m *Manager) OwnedWindows() int {
	return m.ownedWindows
}

// Adopt wraps an externally owned native window. A zero handle yields an
// inert window.
func (m *Manager) Adopt(h Handle, sink event.Sink) *Window {
	w := &Window{mgr: m, sink: sink}
	if h == 0 {
		m.log.Debug("adopting null window handle, window is inert")
		return w
	}
	if err := m.driver.Adopt(h, w); err != nil {
		m.log.Error("failed to adopt window", "handle", uint64(h), "error", err)
		return w
	}
	w.handle = h
	if size, err := m.driver.Size(h); err == nil {
		w.lastSize = size
	}
	w.initialize()
	return w
}

// Create makes a new owned native window. On failure the error is logged and
// the returned window is inert.
func (m *Manager) Create(mode VideoMode, title string, style Style, sink event.Sink) *Window {
	w := &Window{
		mgr:      m,
		sink:     sink,
		owned:    true,
		lastSize: mode.Size(),
	}
	m.retainClass()

	fullscreen := style.Fullscreen()
	pos := Point{}
	if !fullscreen {
		pos = centered(m.driver.ScreenSize(), mode.Size())
		if sp, ok := m.driver.(ScreenPlacer); ok {
			o := sp.ScreenOrigin()
			pos.X += o.X
			pos.Y += o.Y
		}
	}

	// The display is switched first so the window is created already sized
	// for the target mode.
	if fullscreen {
		w.enterFullscreen(mode)
	}

	h, err := m.driver.Create(CreateParams{
		Title:      title,
		Position:   pos,
		Size:       mode.Size(),
		Depth:      mode.BitsPerPixel,
		Style:      style,
		Fullscreen: fullscreen,
	}, w)
	if err != nil || h == 0 {
		m.log.Error("failed to create window", "error", err)
		return w
	}
	w.handle = h

	if !fullscreen {
		if err := m.driver.ApplyDecorationPolicy(h, style, mode.Size()); err != nil {
			m.log.Warn("failed to apply window decorations", "style", style.String(), "error", err)
		}
	}

	w.initialize()
	return w
}

func (m *Manager) retainClass() {
	if m.ownedWindows == 0 {
		if reg, ok := m.driver.(ClassRegistrar); ok {
			if err := reg.RegisterClass(); err != nil {
				m.log.Error("failed to register window class", "error", err)
			}
		}
	}
	m.ownedWindows++
}

func (m *Manager) releaseClass() {
	if m.ownedWindows == 0 {
		return
	}
	m.ownedWindows--
	if m.ownedWindows == 0 {
		if reg, ok := m.driver.(ClassRegistrar); ok {
			if err := reg.UnregisterClass(); err != nil {
				m.log.Warn("failed to unregister window class", "error", err)
			}
		}
	}
}

func (m *Manager) acquireFullscreen(w *Window) {
	if m.fullscreenOwner != nil && m.fullscreenOwner != w {
		m.log.Warn("fullscreen display mode already held by another window, taking over")
	}
	m.fullscreenOwner = w
}

// centered returns the origin that centers a window of size s on a screen.
func centered(screen, s Size) Point {
	return Point{
		X: (int(screen.Width) - int(s.Width)) / 2,
		Y: (int(screen.Height) - int(s.Height)) / 2,
	}
}
