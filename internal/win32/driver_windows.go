//go:build windows

package win32

import (
	"log/slog"
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sys/windows"

	"github.com/1broseidon/winlayer/internal/window"
)

type windowState struct {
	recv  window.Receiver
	owned bool
	// prevProc is the subclassed window procedure of an adopted window.
	prevProc uintptr
	icon     uintptr
}

// Driver implements window.Driver on Win32. A single window procedure serves
// both owned windows and subclassed adopted windows; it routes by HWND.
type Driver struct {
	log       *slog.Logger
	instance  windows.Handle
	className *uint16
	wndProc   uintptr
	windows   *window.Registry[*windowState]
}

var (
	_ window.Driver         = (*Driver)(nil)
	_ window.ClassRegistrar = (*Driver)(nil)
)

// NewDriver prepares the window procedure trampoline. The class itself is
// registered when the first owned window is created.
func NewDriver(logger *slog.Logger) (*Driver, error) {
	if logger == nil {
		logger = slog.Default()
	}
	inst, err := moduleHandle()
	if err != nil {
		return nil, err
	}
	name, err := utf16Ptr(ClassName)
	if err != nil {
		return nil, err
	}
	d := &Driver{
		log:       logger,
		instance:  inst,
		className: name,
		windows:   window.NewRegistry[*windowState](),
	}
	d.wndProc = windows.NewCallback(d.process)
	return d, nil
}

func (d *Driver) process(hwnd uintptr, message uint32, wParam, lParam uintptr) uintptr {
	// Messages sent before CreateWindowEx returns find no binding and take
	// the default path.
	if st, ok := d.windows.Lookup(window.Handle(hwnd)); ok {
		size := func() window.Size { return d.clientSize(hwnd) }
		if n, ok := classifyMessage(message, wParam, lParam, size); ok {
			st.recv.Notify(n)
		}
		if st.prevProc != 0 {
			return callWindowProc(st.prevProc, hwnd, message, wParam, lParam)
		}
	}
	// WM_CLOSE must not reach DefWindowProc, which would destroy the window.
	if message == wmClose {
		return 0
	}
	return defWindowProc(hwnd, message, wParam, lParam)
}

func (d *Driver) Name() string { return Name }

func (d *Driver) RegisterClass() error {
	cursor, _ := call(procLoadCursor, 0, idcArrow)
	wc := wndClassEx{
		wndProc:   d.wndProc,
		instance:  d.instance,
		cursor:    windows.Handle(cursor),
		className: d.className,
	}
	wc.size = uint32(unsafe.Sizeof(wc))
	_, err := call(procRegisterClassEx, uintptr(unsafe.Pointer(&wc)))
	return err
}

func (d *Driver) UnregisterClass() error {
	_, err := call(procUnregisterClass, uintptr(unsafe.Pointer(d.className)), uintptr(d.instance))
	return err
}

func (d *Driver) ScreenSize() window.Size {
	w, _, _ := procGetSystemMetrics.Call(smCxScreen)
	h, _, _ := procGetSystemMetrics.Call(smCyScreen)
	return window.Size{Width: uint(w), Height: uint(h)}
}

func (d *Driver) Create(p window.CreateParams, r window.Receiver) (window.Handle, error) {
	style, exStyle := windowStyle(p.Style, p.Fullscreen)
	x, y := int32(p.Position.X), int32(p.Position.Y)
	w, h := int32(p.Size.Width), int32(p.Size.Height)
	if !p.Fullscreen {
		frame := rect{right: w, bottom: h}
		if err := adjustWindowRect(&frame, style); err == nil {
			w, h = frame.right-frame.left, frame.bottom-frame.top
		}
	}

	title, err := utf16Ptr(p.Title)
	if err != nil {
		return 0, err
	}
	hwnd, err := call(procCreateWindowEx,
		uintptr(exStyle),
		uintptr(unsafe.Pointer(d.className)),
		uintptr(unsafe.Pointer(title)),
		uintptr(style),
		uintptr(x), uintptr(y), uintptr(w), uintptr(h),
		0, 0, uintptr(d.instance), 0)
	if err != nil {
		return 0, errors.Wrap(err, "failed to create window")
	}
	d.windows.Register(window.Handle(hwnd), &windowState{recv: r, owned: true})

	if p.Fullscreen {
		if err := setWindowPos(hwnd, hwndTop, 0, 0, w, h, swpFrameChanged); err != nil {
			d.log.Warn("failed to cover the screen with the fullscreen window", "error", err)
		}
	}
	return window.Handle(hwnd), nil
}

func (d *Driver) Adopt(h window.Handle, r window.Receiver) error {
	hwnd := uintptr(h)
	if !isWindow(hwnd) {
		return errors.Errorf("handle 0x%x is not a window", hwnd)
	}
	prev, err := setWindowProc(hwnd, d.wndProc)
	if err != nil {
		return errors.Wrap(err, "failed to subclass window")
	}
	d.windows.Register(h, &windowState{recv: r, prevProc: prev})
	return nil
}

func (d *Driver) Detach(h window.Handle) {
	st, ok := d.windows.Unregister(h)
	if !ok {
		return
	}
	if st.prevProc != 0 {
		if _, err := setWindowProc(uintptr(h), st.prevProc); err != nil {
			d.log.Warn("failed to restore the window procedure", "error", err)
		}
	}
	if st.icon != 0 {
		procDestroyIcon.Call(st.icon)
	}
}

func (d *Driver) Destroy(h window.Handle) error {
	_, err := call(procDestroyWindow, uintptr(h))
	return err
}

// SubscribeClose is a no-op: WM_CLOSE is always delivered.
func (d *Driver) SubscribeClose(window.Handle) error { return nil }

func (d *Driver) Flush() {}

// Pump dispatches queued messages for owned windows. Adopted windows are
// pumped by their owner and reach the driver through the subclass.
func (d *Driver) Pump(h window.Handle) {
	st, ok := d.windows.Lookup(h)
	if !ok || !st.owned {
		return
	}
	var m msg
	for {
		r, _, _ := procPeekMessage.Call(uintptr(unsafe.Pointer(&m)), uintptr(h), 0, 0, pmRemove)
		if r == 0 {
			return
		}
		procTranslateMessage.Call(uintptr(unsafe.Pointer(&m)))
		procDispatchMessage.Call(uintptr(unsafe.Pointer(&m)))
	}
}

func (d *Driver) clientSize(hwnd uintptr) window.Size {
	r, err := clientRect(hwnd)
	if err != nil {
		return window.Size{}
	}
	return window.Size{Width: uint(r.right - r.left), Height: uint(r.bottom - r.top)}
}

func (d *Driver) Position(h window.Handle) (window.Point, error) {
	r, err := windowRect(uintptr(h))
	if err != nil {
		return window.Point{}, err
	}
	return window.Point{X: int(r.left), Y: int(r.top)}, nil
}

func (d *Driver) Size(h window.Handle) (window.Size, error) {
	r, err := clientRect(uintptr(h))
	if err != nil {
		return window.Size{}, err
	}
	return window.Size{Width: uint(r.right - r.left), Height: uint(r.bottom - r.top)}, nil
}

func (d *Driver) Move(h window.Handle, p window.Point) error {
	return setWindowPos(uintptr(h), 0, int32(p.X), int32(p.Y), 0, 0, swpNoSize|swpNoZOrder)
}

// Resize grows the outer frame so the client area matches s.
func (d *Driver) Resize(h window.Handle, s window.Size) error {
	frame := rect{right: int32(s.Width), bottom: int32(s.Height)}
	if err := adjustWindowRect(&frame, windowStyleOf(uintptr(h))); err != nil {
		return err
	}
	return setWindowPos(uintptr(h), 0, 0, 0, frame.right-frame.left, frame.bottom-frame.top, swpNoMove|swpNoZOrder)
}

func (d *Driver) SetTitle(h window.Handle, title string) error {
	p, err := utf16Ptr(title)
	if err != nil {
		return err
	}
	_, err = call(procSetWindowTextW, uintptr(h), uintptr(unsafe.Pointer(p)))
	return err
}

func (d *Driver) SetIcon(h window.Handle, icon window.Icon) error {
	st, ok := d.windows.Lookup(h)
	if ok && st.icon != 0 {
		procDestroyIcon.Call(st.icon)
		st.icon = 0
	}
	mask := andMask(icon)
	hicon, err := call(procCreateIcon,
		uintptr(d.instance),
		uintptr(icon.Width), uintptr(icon.Height),
		1, 32,
		uintptr(unsafe.Pointer(&mask[0])),
		uintptr(unsafe.Pointer(&icon.BGRA[0])))
	if err != nil {
		return errors.Wrap(err, "failed to create icon")
	}
	procSendMessage.Call(uintptr(h), wmSetIcon, iconBig, hicon)
	procSendMessage.Call(uintptr(h), wmSetIcon, iconSmall, hicon)
	if ok {
		st.icon = hicon
	}
	return nil
}

func (d *Driver) SetVisible(h window.Handle, visible bool) error {
	cmd := uintptr(swHide)
	if visible {
		cmd = swShow
	}
	procShowWindow.Call(uintptr(h), cmd)
	return nil
}

// ApplyDecorationPolicy has nothing left to do: the style bits were passed
// to CreateWindowEx.
func (d *Driver) ApplyDecorationPolicy(window.Handle, window.Style, window.Size) error {
	return nil
}

func (d *Driver) EnumerateDisplayModes() ([]window.VideoMode, error) {
	var modes []window.VideoMode
	for i := uintptr(0); ; i++ {
		dm := devModeW{Size: devModeSize}
		r, _, _ := procEnumDisplaySettings.Call(0, i, uintptr(unsafe.Pointer(&dm)))
		if r == 0 {
			break
		}
		modes = appendMode(modes, dm.videoMode())
	}
	if len(modes) == 0 {
		return nil, errors.New("no display modes reported")
	}
	return modes, nil
}

// SuppressDuringDrag is true: WM_ENTERSIZEMOVE/WM_EXITSIZEMOVE bracket
// interactive resizing and the final size is reported once.
func (d *Driver) SuppressDuringDrag() bool { return true }

func (d *Driver) ModeSwitchAvailable() bool { return true }

// CurrentMode returns the mode in effect. Restoring always reverts to the
// registry settings, so the token is informational.
func (d *Driver) CurrentMode() (window.ModeToken, error) {
	dm := devModeW{Size: devModeSize}
	if _, err := call(procEnumDisplaySettings, 0, enumCurrentSettings, uintptr(unsafe.Pointer(&dm))); err != nil {
		return window.ModeToken{}, err
	}
	return window.ModeToken{Index: -1}, nil
}

func (d *Driver) SwitchMode(_ int, mode window.VideoMode) error {
	dm := newDevMode(mode)
	r, _, _ := procChangeDisplaySettings.Call(uintptr(unsafe.Pointer(&dm)), cdsFullscreen)
	if int32(r) != dispChangeSuccessful {
		return errors.Errorf("ChangeDisplaySettingsW returned %d", int32(r))
	}
	return nil
}

func (d *Driver) RestoreMode(window.ModeToken) error {
	r, _, _ := procChangeDisplaySettings.Call(0, 0)
	if int32(r) != dispChangeSuccessful {
		return errors.Errorf("ChangeDisplaySettingsW returned %d", int32(r))
	}
	return nil
}

func (d *Driver) ReleaseMode(window.ModeToken) {}
