package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/xwindow"
)

// eventMask is selected on every window the driver tracks.
const eventMask = xproto.EventMaskFocusChange | xproto.EventMaskStructureNotify

// CreateWindow makes a top-level InputOutput window at the root depth.
// Override-redirect windows bypass the window manager, which fullscreen
// windows need to cover panels.
func (c *Connection) CreateWindow(x, y, width, height int, overrideRedirect bool) (xproto.Window, error) {
	win, err := xwindow.Generate(c.XUtil)
	if err != nil {
		return 0, fmt.Errorf("failed to allocate window id: %w", err)
	}

	redirect := uint32(0)
	if overrideRedirect {
		redirect = 1
	}
	err = win.CreateChecked(c.Root, x, y, width, height,
		xproto.CwOverrideRedirect|xproto.CwEventMask,
		redirect, eventMask)
	if err != nil {
		return 0, fmt.Errorf("failed to create window: %w", err)
	}
	return win.Id, nil
}

// SelectEvents replaces this client's event mask on windowID.
func (c *Connection) SelectEvents(windowID xproto.Window, mask uint32) error {
	return xproto.ChangeWindowAttributesChecked(c.XUtil.Conn(), windowID,
		xproto.CwEventMask, []uint32{mask}).Check()
}

// SubscribeDelete asks the window manager to send WM_DELETE_WINDOW instead
// of killing the client.
func (c *Connection) SubscribeDelete(windowID xproto.Window) error {
	return icccm.WmProtocolsSet(c.XUtil, windowID, []string{"WM_DELETE_WINDOW"})
}

// SetWindowTitle sets both the ICCCM and the UTF-8 EWMH name.
func (c *Connection) SetWindowTitle(windowID xproto.Window, title string) error {
	if err := icccm.WmNameSet(c.XUtil, windowID, title); err != nil {
		return fmt.Errorf("failed to set WM_NAME: %w", err)
	}
	if err := ewmh.WmNameSet(c.XUtil, windowID, title); err != nil {
		return fmt.Errorf("failed to set _NET_WM_NAME: %w", err)
	}
	return nil
}

// WindowPosition returns the root-relative origin of windowID.
func (c *Connection) WindowPosition(windowID xproto.Window) (int, int, error) {
	return c.translate(windowID)
}

// WindowSize returns the inner size of windowID.
func (c *Connection) WindowSize(windowID xproto.Window) (int, int, error) {
	geom, err := xproto.GetGeometry(c.XUtil.Conn(), xproto.Drawable(windowID)).Reply()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get window geometry: %w", err)
	}
	return int(geom.Width), int(geom.Height), nil
}

// MoveWindow moves windowID without changing its size.
func (c *Connection) MoveWindow(windowID xproto.Window, x, y int) {
	xwindow.New(c.XUtil, windowID).Move(x, y)
}

// ResizeWindow resizes windowID without moving it.
func (c *Connection) ResizeWindow(windowID xproto.Window, width, height int) {
	xwindow.New(c.XUtil, windowID).Resize(width, height)
}

// SetMapped maps or unmaps windowID.
func (c *Connection) SetMapped(windowID xproto.Window, mapped bool) {
	win := xwindow.New(c.XUtil, windowID)
	if mapped {
		win.Map()
	} else {
		win.Unmap()
	}
}

// DestroyWindow destroys windowID.
func (c *Connection) DestroyWindow(windowID xproto.Window) error {
	return xproto.DestroyWindowChecked(c.XUtil.Conn(), windowID).Check()
}
