//go:build darwin

package cocoa

import (
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/ebitengine/purego/objc"

	"github.com/1broseidon/winlayer/internal/window"
)

type windowState struct {
	recv  window.Receiver
	owned bool
	// delegate is installed by SubscribeClose; prevDelegate is what an
	// adopted window had before.
	delegate     objc.ID
	prevDelegate objc.ID
	icon         objc.ID
}

// Driver implements window.Driver on AppKit. It must be used from the main
// thread, which the caller locks before creating it.
type Driver struct {
	log *slog.Logger
	app objc.ID
}

var _ window.Driver = (*Driver)(nil)

// NewDriver initializes NSApp as a regular application.
func NewDriver(logger *slog.Logger) (*Driver, error) {
	if logger == nil {
		logger = slog.Default()
	}
	app := sharedApplication()
	if app == 0 {
		return nil, fmt.Errorf("NSApplication is unavailable")
	}
	return &Driver{log: logger, app: app}, nil
}

func (d *Driver) Name() string { return Name }

func (d *Driver) ScreenSize() window.Size {
	screen := class("NSScreen").Send(selMainScreen)
	if screen != 0 {
		frame := objc.Send[NSRect](screen, selFrame)
		return window.Size{Width: uint(frame.Size.Width), Height: uint(frame.Size.Height)}
	}
	if loadCoreGraphics() != nil {
		return window.Size{}
	}
	id := cgMainDisplayID()
	return window.Size{Width: uint(cgDisplayPixelsWide(id)), Height: uint(cgDisplayPixelsHigh(id))}
}

func (d *Driver) screenHeight() float64 {
	return float64(d.ScreenSize().Height)
}

func (d *Driver) Create(p window.CreateParams, r window.Receiver) (window.Handle, error) {
	y := flipY(d.screenHeight(), float64(p.Position.Y), float64(p.Size.Height))
	rect := NSRect{
		Origin: NSPoint{X: float64(p.Position.X), Y: y},
		Size:   NSSize{Width: float64(p.Size.Width), Height: float64(p.Size.Height)},
	}
	win := class("NSWindow").Send(selAlloc).Send(selInitWithContentRect,
		rect, styleMask(p.Style, p.Fullscreen), uint(backingStoreBuffered), false)
	if win == 0 {
		return 0, fmt.Errorf("failed to create NSWindow")
	}
	win.Send(selSetReleasedWhenClosed, false)
	win.Send(selSetTitle, nsString(p.Title))
	if p.Fullscreen {
		win.Send(selSetLevel, fullscreenWindowLevel)
	}
	targets.bind(window.Handle(win), window.Handle(win), &windowState{recv: r, owned: true})
	return window.Handle(win), nil
}

// Adopt accepts an NSWindow or an NSView already placed in a window.
func (d *Driver) Adopt(h window.Handle, r window.Receiver) error {
	win, err := d.resolveWindow(objc.ID(h))
	if err != nil {
		return err
	}
	targets.bind(h, window.Handle(win), &windowState{recv: r, prevDelegate: win.Send(selDelegate)})
	return nil
}

func (d *Driver) resolveWindow(obj objc.ID) (objc.ID, error) {
	if obj == 0 {
		return 0, fmt.Errorf("nil window handle")
	}
	if objc.Send[bool](obj, selIsKindOfClass, class("NSWindow")) {
		return obj, nil
	}
	if objc.Send[bool](obj, selIsKindOfClass, class("NSView")) {
		if win := obj.Send(selWindow); win != 0 {
			return win, nil
		}
		return 0, fmt.Errorf("view 0x%x is not in a window", uintptr(obj))
	}
	return 0, fmt.Errorf("handle 0x%x is neither an NSWindow nor an NSView", uintptr(obj))
}

// nsWindow maps a handle, which may be an adopted view, to its window.
func (d *Driver) nsWindow(h window.Handle) objc.ID {
	if win, ok := targets.window(h); ok {
		return objc.ID(win)
	}
	win, err := d.resolveWindow(objc.ID(h))
	if err != nil {
		return 0
	}
	return win
}

func (d *Driver) Detach(h window.Handle) {
	st, win, ok := targets.unbind(h)
	if !ok {
		return
	}
	if st.delegate != 0 {
		objc.ID(win).Send(selSetDelegate, st.prevDelegate)
		st.delegate.Send(selRelease)
	}
	if st.icon != 0 {
		st.icon.Send(selRelease)
	}
}

func (d *Driver) Destroy(h window.Handle) error {
	win := objc.ID(h)
	win.Send(selClose)
	win.Send(selRelease)
	return nil
}

// SubscribeClose installs the delegate that reports close requests and the
// other window notifications.
func (d *Driver) SubscribeClose(h window.Handle) error {
	st, ok := targets.byHandle(h)
	if !ok {
		return fmt.Errorf("window 0x%x is not tracked", uintptr(h))
	}
	if st.delegate != 0 {
		return nil
	}
	del, err := newDelegate()
	if err != nil {
		return err
	}
	win := d.nsWindow(h)
	if win == 0 {
		del.Send(selRelease)
		return fmt.Errorf("window 0x%x has no NSWindow", uintptr(h))
	}
	st.delegate = del
	win.Send(selSetDelegate, del)
	return nil
}

func (d *Driver) Flush() {
	d.app.Send(selUpdateWindows)
}

// Pump drains the application event queue. AppKit dispatches to every
// window at once, so the handle only gates the call.
func (d *Driver) Pump(h window.Handle) {
	if _, ok := targets.byHandle(h); !ok {
		return
	}
	pool := class("NSAutoreleasePool").Send(selNew)
	defer pool.Send(selDrain)

	past := class("NSDate").Send(selDistantPast)
	mode := nsString("kCFRunLoopDefaultMode")
	for {
		ev := d.app.Send(selNextEvent, eventMaskAny, past, mode, true)
		if ev == 0 {
			return
		}
		d.app.Send(selSendEvent, ev)
	}
}

func (d *Driver) frame(h window.Handle) (NSRect, error) {
	win := d.nsWindow(h)
	if win == 0 {
		return NSRect{}, fmt.Errorf("window 0x%x has no NSWindow", uintptr(h))
	}
	return objc.Send[NSRect](win, selFrame), nil
}

// Position returns the top-left corner of the frame.
func (d *Driver) Position(h window.Handle) (window.Point, error) {
	f, err := d.frame(h)
	if err != nil {
		return window.Point{}, err
	}
	y := flipY(d.screenHeight(), f.Origin.Y, f.Size.Height)
	return window.Point{X: int(f.Origin.X), Y: int(y)}, nil
}

func (d *Driver) Size(h window.Handle) (window.Size, error) {
	win := d.nsWindow(h)
	if win == 0 {
		return window.Size{}, fmt.Errorf("window 0x%x has no NSWindow", uintptr(h))
	}
	return contentSize(win), nil
}

func (d *Driver) Move(h window.Handle, p window.Point) error {
	win := d.nsWindow(h)
	if win == 0 {
		return fmt.Errorf("window 0x%x has no NSWindow", uintptr(h))
	}
	// setFrameTopLeftPoint: takes the top edge in AppKit coordinates.
	top := flipY(d.screenHeight(), float64(p.Y), 0)
	win.Send(selSetFrameTopLeftPoint, NSPoint{X: float64(p.X), Y: top})
	return nil
}

func (d *Driver) Resize(h window.Handle, s window.Size) error {
	win := d.nsWindow(h)
	if win == 0 {
		return fmt.Errorf("window 0x%x has no NSWindow", uintptr(h))
	}
	win.Send(selSetContentSize, NSSize{Width: float64(s.Width), Height: float64(s.Height)})
	return nil
}

func (d *Driver) SetTitle(h window.Handle, title string) error {
	win := d.nsWindow(h)
	if win == 0 {
		return fmt.Errorf("window 0x%x has no NSWindow", uintptr(h))
	}
	win.Send(selSetTitle, nsString(title))
	return nil
}

// SetIcon sets the application icon; AppKit has no per-window icon.
func (d *Driver) SetIcon(h window.Handle, icon window.Icon) error {
	rep := class("NSBitmapImageRep").Send(selAlloc).Send(selInitWithBitmapDataPlanes,
		uintptr(0),
		int(icon.Width), int(icon.Height),
		8, 4, true, false,
		nsString("NSDeviceRGBColorSpace"),
		uint(iconBitmapFormat),
		int(icon.Width*4), 32)
	if rep == 0 {
		return fmt.Errorf("failed to create bitmap for %dx%d icon", icon.Width, icon.Height)
	}
	data := objc.Send[unsafe.Pointer](rep, selBitmapData)
	copy(unsafe.Slice((*byte)(data), len(icon.BGRA)), icon.BGRA)

	img := class("NSImage").Send(selAlloc).Send(selInitWithSize,
		NSSize{Width: float64(icon.Width), Height: float64(icon.Height)})
	img.Send(selAddRepresentation, rep)
	rep.Send(selRelease)
	d.app.Send(selSetApplicationIconImage, img)

	if st, ok := targets.byHandle(h); ok {
		if st.icon != 0 {
			st.icon.Send(selRelease)
		}
		st.icon = img
	} else {
		img.Send(selRelease)
	}
	return nil
}

func (d *Driver) SetVisible(h window.Handle, visible bool) error {
	win := d.nsWindow(h)
	if win == 0 {
		return fmt.Errorf("window 0x%x has no NSWindow", uintptr(h))
	}
	if visible {
		win.Send(selMakeKeyAndOrderFront, objc.ID(0))
	} else {
		win.Send(selOrderOut, objc.ID(0))
	}
	return nil
}

// ApplyDecorationPolicy pins the content size of windows that may not be
// resized. The style mask itself was set at creation.
func (d *Driver) ApplyDecorationPolicy(h window.Handle, style window.Style, size window.Size) error {
	if style.Has(window.StyleResize) || style == window.StyleNone {
		return nil
	}
	win := objc.ID(h)
	fixed := NSSize{Width: float64(size.Width), Height: float64(size.Height)}
	win.Send(selSetContentMinSize, fixed)
	win.Send(selSetContentMaxSize, fixed)
	return nil
}

// SuppressDuringDrag is true: live resize is bracketed by
// windowWillStartLiveResize: and windowDidEndLiveResize:.
func (d *Driver) SuppressDuringDrag() bool { return true }
