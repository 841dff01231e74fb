package x11

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/xprop"

	"github.com/1broseidon/winlayer/internal/window"
)

// Name is the backend identifier used in logs and configuration.
const Name = "x11"

type windowState struct {
	recv  window.Receiver
	owned bool
	icon  iconPixmaps
}

// Driver implements window.Driver on an X11 connection. Every window shares
// the connection's event queue; each pump takes only its own entries.
type Driver struct {
	conn      *Connection
	log       *slog.Logger
	queue     sharedQueue
	windows   *window.Registry[*windowState]
	atomClose xproto.Atom
	randrErr  error
}

var _ window.Driver = (*Driver)(nil)

// NewDriver connects to display and prepares the atoms and extensions the
// driver needs.
func NewDriver(display string, logger *slog.Logger) (*Driver, error) {
	if logger == nil {
		logger = slog.Default()
	}
	conn, err := NewConnection(display)
	if err != nil {
		return nil, err
	}
	return newDriver(conn, logger), nil
}

func newDriver(conn *Connection, logger *slog.Logger) *Driver {
	d := &Driver{
		conn:    conn,
		log:     logger,
		queue:   xeventQueue{xu: conn.XUtil},
		windows: window.NewRegistry[*windowState](),
	}
	atom, err := xprop.Atm(conn.XUtil, "WM_DELETE_WINDOW")
	if err != nil {
		d.log.Warn("failed to intern WM_DELETE_WINDOW, close requests will not be reported", "error", err)
	}
	d.atomClose = atom
	d.randrErr = randr.Init(conn.XUtil.Conn())
	return d
}

// Connection exposes the underlying connection.
func (d *Driver) Connection() *Connection {
	return d.conn
}

// Close disconnects from the server.
func (d *Driver) Close() {
	d.conn.Close()
}

func (d *Driver) Name() string { return Name }

func (d *Driver) ScreenSize() window.Size {
	area := d.conn.ScreenArea()
	return window.Size{Width: uint(area.Width), Height: uint(area.Height)}
}

// ScreenOrigin is the primary monitor's position on the root window.
func (d *Driver) ScreenOrigin() window.Point {
	area := d.conn.ScreenArea()
	return window.Point{X: area.X, Y: area.Y}
}

func (d *Driver) Create(p window.CreateParams, r window.Receiver) (window.Handle, error) {
	id, err := d.conn.CreateWindow(p.Position.X, p.Position.Y, int(p.Size.Width), int(p.Size.Height), p.Fullscreen)
	if err != nil {
		return 0, err
	}
	d.windows.Register(window.Handle(id), &windowState{recv: r, owned: true})
	if err := d.conn.SetWindowTitle(id, p.Title); err != nil {
		d.log.Warn("failed to set window title", "error", err)
	}
	return window.Handle(id), nil
}

func (d *Driver) Adopt(h window.Handle, r window.Receiver) error {
	id := xproto.Window(h)
	if err := d.conn.SelectEvents(id, eventMask); err != nil {
		return fmt.Errorf("failed to select events on window 0x%x: %w", uint32(id), err)
	}
	d.windows.Register(h, &windowState{recv: r})
	return nil
}

func (d *Driver) Detach(h window.Handle) {
	st, ok := d.windows.Unregister(h)
	if !ok {
		return
	}
	d.conn.freeIcon(st.icon)
	if !st.owned {
		if err := d.conn.SelectEvents(xproto.Window(h), 0); err != nil {
			d.log.Debug("failed to clear event mask on adopted window", "error", err)
		}
	}
}

func (d *Driver) Destroy(h window.Handle) error {
	return d.conn.DestroyWindow(xproto.Window(h))
}

func (d *Driver) SubscribeClose(h window.Handle) error {
	return d.conn.SubscribeDelete(xproto.Window(h))
}

func (d *Driver) Flush() {
	d.conn.Sync()
}

// Pump reads the connection without blocking and delivers every queued
// entry for h. Entries for other windows are left in the shared queue.
func (d *Driver) Pump(h window.Handle) {
	win := xproto.Window(h)
	d.queue.Fill()
	for {
		entry, ok := nextFor(d.queue, win)
		if !ok {
			return
		}
		if entry.Err != nil {
			d.log.Debug("x11 error for window", "window", uint32(win), "error", entry.Err)
			continue
		}
		n, ok := classify(entry.Event, d.atomClose)
		if !ok {
			continue
		}
		// Verified per entry: a notification may detach the window.
		st, ok := d.windows.Lookup(h)
		if !ok {
			return
		}
		st.recv.Notify(n)
	}
}

func (d *Driver) Position(h window.Handle) (window.Point, error) {
	x, y, err := d.conn.WindowPosition(xproto.Window(h))
	if err != nil {
		return window.Point{}, err
	}
	return window.Point{X: x, Y: y}, nil
}

func (d *Driver) Size(h window.Handle) (window.Size, error) {
	w, ht, err := d.conn.WindowSize(xproto.Window(h))
	if err != nil {
		return window.Size{}, err
	}
	return window.Size{Width: uint(w), Height: uint(ht)}, nil
}

func (d *Driver) Move(h window.Handle, p window.Point) error {
	d.conn.MoveWindow(xproto.Window(h), p.X, p.Y)
	return nil
}

func (d *Driver) Resize(h window.Handle, s window.Size) error {
	d.conn.ResizeWindow(xproto.Window(h), int(s.Width), int(s.Height))
	return nil
}

func (d *Driver) SetTitle(h window.Handle, title string) error {
	return d.conn.SetWindowTitle(xproto.Window(h), title)
}

func (d *Driver) SetIcon(h window.Handle, icon window.Icon) error {
	st, ok := d.windows.Lookup(h)
	if ok {
		d.conn.freeIcon(st.icon)
		st.icon = iconPixmaps{}
	}
	pix, err := d.conn.SetWindowIcon(xproto.Window(h), icon)
	if errors.Is(err, errIconTooLarge) {
		d.log.Warn("skipping _NET_WM_ICON", "window", uint32(h), "width", icon.Width, "height", icon.Height, "error", err)
		err = nil
	}
	if ok {
		st.icon = pix
	} else {
		d.conn.freeIcon(pix)
	}
	return err
}

func (d *Driver) SetVisible(h window.Handle, visible bool) error {
	d.conn.SetMapped(xproto.Window(h), visible)
	return nil
}

func (d *Driver) ApplyDecorationPolicy(h window.Handle, style window.Style, size window.Size) error {
	return applyDecorations(d.conn.XUtil, xproto.Window(h), style, size)
}

func (d *Driver) EnumerateDisplayModes() ([]window.VideoMode, error) {
	cfg, err := d.conn.screenConfig()
	if err != nil {
		return nil, err
	}
	return videoModes(cfg.sizes, uint(d.conn.Depth())), nil
}

// SuppressDuringDrag is false: X11 has no drag bracket, so every configure
// notification is reported and only unchanged sizes are dropped.
func (d *Driver) SuppressDuringDrag() bool { return false }

func (d *Driver) ModeSwitchAvailable() bool {
	return d.randrErr == nil
}

func (d *Driver) CurrentMode() (window.ModeToken, error) {
	cfg, err := d.conn.screenConfig()
	if err != nil {
		return window.ModeToken{}, err
	}
	return window.ModeToken{Index: int(cfg.sizeID), Rotation: cfg.rotation}, nil
}

func (d *Driver) SwitchMode(index int, _ window.VideoMode) error {
	return d.conn.setScreenSize(uint16(index))
}

func (d *Driver) RestoreMode(tok window.ModeToken) error {
	return d.conn.setScreenSize(uint16(tok.Index))
}

func (d *Driver) ReleaseMode(window.ModeToken) {}
