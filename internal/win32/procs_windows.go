//go:build windows

package win32

import (
	"syscall"
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

var (
	moduser32   = windows.NewLazySystemDLL("user32.dll")
	modkernel32 = windows.NewLazySystemDLL("kernel32.dll")
)

var (
	procSetLastError          = modkernel32.NewProc("SetLastError")
	procGetModuleHandle       = modkernel32.NewProc("GetModuleHandleW")
	procRegisterClassEx       = moduser32.NewProc("RegisterClassExW")
	procUnregisterClass       = moduser32.NewProc("UnregisterClassW")
	procCreateWindowEx        = moduser32.NewProc("CreateWindowExW")
	procDestroyWindow         = moduser32.NewProc("DestroyWindow")
	procDefWindowProc         = moduser32.NewProc("DefWindowProcW")
	procCallWindowProc        = moduser32.NewProc("CallWindowProcW")
	procIsWindow              = moduser32.NewProc("IsWindow")
	procPeekMessage           = moduser32.NewProc("PeekMessageW")
	procTranslateMessage      = moduser32.NewProc("TranslateMessage")
	procDispatchMessage       = moduser32.NewProc("DispatchMessageW")
	procGetWindowRect         = moduser32.NewProc("GetWindowRect")
	procGetClientRect         = moduser32.NewProc("GetClientRect")
	procSetWindowPos          = moduser32.NewProc("SetWindowPos")
	procAdjustWindowRect      = moduser32.NewProc("AdjustWindowRect")
	procGetWindowLong         = moduser32.NewProc("GetWindowLongW")
	procSetWindowTextW        = moduser32.NewProc("SetWindowTextW")
	procShowWindow            = moduser32.NewProc("ShowWindow")
	procSendMessage           = moduser32.NewProc("SendMessageW")
	procCreateIcon            = moduser32.NewProc("CreateIcon")
	procDestroyIcon           = moduser32.NewProc("DestroyIcon")
	procLoadCursor            = moduser32.NewProc("LoadCursorW")
	procGetSystemMetrics      = moduser32.NewProc("GetSystemMetrics")
	procEnumDisplaySettings   = moduser32.NewProc("EnumDisplaySettingsW")
	procChangeDisplaySettings = moduser32.NewProc("ChangeDisplaySettingsW")
	procSetWindowLongPtr      = moduser32.NewProc(setWindowLongPtrName())
)

// SetWindowLongPtrW is a macro over SetWindowLongW on 32-bit Windows.
func setWindowLongPtrName() string {
	if unsafe.Sizeof(uintptr(0)) == 8 {
		return "SetWindowLongPtrW"
	}
	return "SetWindowLongW"
}

const (
	gwlStyle    = -16
	gwlpWndProc = -4

	swHide = 0
	swShow = 5

	swpNoSize       = 0x0001
	swpNoMove       = 0x0002
	swpNoZOrder     = 0x0004
	swpFrameChanged = 0x0020

	pmRemove = 0x0001

	hwndTop = 0

	smCxScreen = 0
	smCyScreen = 1

	idcArrow = 32512

	cdsFullscreen        = 0x00000004
	dispChangeSuccessful = 0
	enumCurrentSettings  = 0xFFFFFFFF
)

type rect struct {
	left   int32
	top    int32
	right  int32
	bottom int32
}

// https://learn.microsoft.com/en-us/windows/win32/api/winuser/ns-winuser-wndclassexw
type wndClassEx struct {
	size       uint32
	style      uint32
	wndProc    uintptr
	clsExtra   int32
	wndExtra   int32
	instance   windows.Handle
	icon       windows.Handle
	cursor     windows.Handle
	background windows.Handle
	menuName   *uint16
	className  *uint16
	iconSm     windows.Handle
}

// check turns a zero result into an error naming the procedure.
func check(p *windows.LazyProc, r uintptr, err error) (uintptr, error) {
	if r != 0 {
		return r, nil
	}
	if errno, ok := err.(syscall.Errno); ok && errno != 0 {
		return 0, errors.Wrap(err, p.Name)
	}
	return 0, errors.Errorf("%s failed", p.Name)
}

func call(p *windows.LazyProc, args ...uintptr) (uintptr, error) {
	r, _, err := p.Call(args...)
	return check(p, r, err)
}

func moduleHandle() (windows.Handle, error) {
	r, err := call(procGetModuleHandle, 0)
	return windows.Handle(r), err
}

func isWindow(hwnd uintptr) bool {
	r, _, _ := procIsWindow.Call(hwnd)
	return r != 0
}

func defWindowProc(hwnd uintptr, message uint32, wParam, lParam uintptr) uintptr {
	r, _, _ := procDefWindowProc.Call(hwnd, uintptr(message), wParam, lParam)
	return r
}

func callWindowProc(prev, hwnd uintptr, message uint32, wParam, lParam uintptr) uintptr {
	r, _, _ := procCallWindowProc.Call(prev, hwnd, uintptr(message), wParam, lParam)
	return r
}

// setWindowProc installs proc and returns the previous one. The last error
// is cleared first because zero is a valid previous value.
func setWindowProc(hwnd, proc uintptr) (uintptr, error) {
	procSetLastError.Call(0)
	index := int32(gwlpWndProc)
	r, _, err := procSetWindowLongPtr.Call(hwnd, uintptr(index), proc)
	if r == 0 {
		if errno, ok := err.(syscall.Errno); ok && errno != 0 {
			return 0, errors.Wrap(err, "SetWindowLongPtrW")
		}
	}
	return r, nil
}

func windowStyleOf(hwnd uintptr) uint32 {
	index := int32(gwlStyle)
	r, _, _ := procGetWindowLong.Call(hwnd, uintptr(index))
	return uint32(r)
}

func adjustWindowRect(r *rect, style uint32) error {
	_, err := call(procAdjustWindowRect, uintptr(unsafe.Pointer(r)), uintptr(style), 0)
	return err
}

func clientRect(hwnd uintptr) (rect, error) {
	var r rect
	_, err := call(procGetClientRect, hwnd, uintptr(unsafe.Pointer(&r)))
	return r, err
}

func windowRect(hwnd uintptr) (rect, error) {
	var r rect
	_, err := call(procGetWindowRect, hwnd, uintptr(unsafe.Pointer(&r)))
	return r, err
}

func setWindowPos(hwnd, after uintptr, x, y, w, h int32, flags uint32) error {
	_, err := call(procSetWindowPos, hwnd, after,
		uintptr(x), uintptr(y), uintptr(w), uintptr(h), uintptr(flags))
	return err
}

func utf16Ptr(s string) (*uint16, error) {
	p, err := windows.UTF16PtrFromString(s)
	if err != nil {
		return nil, errors.Wrap(err, "invalid string")
	}
	return p, nil
}
