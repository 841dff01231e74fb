//go:build darwin

package cocoa

import (
	"fmt"
	"sync"

	"github.com/ebitengine/purego"

	"github.com/1broseidon/winlayer/internal/window"
)

const coreGraphicsPath = "/System/Library/Frameworks/CoreGraphics.framework/CoreGraphics"

var (
	cgMainDisplayID              func() uint32
	cgDisplayCopyAllDisplayModes func(display uint32, options uintptr) uintptr
	cgDisplayCopyDisplayMode     func(display uint32) uintptr
	cgDisplaySetDisplayMode      func(display uint32, mode, options uintptr) int32
	cgDisplayModeGetWidth        func(mode uintptr) uintptr
	cgDisplayModeGetHeight       func(mode uintptr) uintptr
	cgDisplayModeRelease         func(mode uintptr)
	cgDisplayModeRetain          func(mode uintptr) uintptr
	cgDisplayPixelsWide          func(display uint32) uintptr
	cgDisplayPixelsHigh          func(display uint32) uintptr
	cfArrayGetCount              func(array uintptr) int
	cfArrayGetValueAtIndex       func(array uintptr, index int) uintptr
	cfRelease                    func(ref uintptr)
)

var (
	cgOnce sync.Once
	cgErr  error
)

func loadCoreGraphics() error {
	cgOnce.Do(func() {
		lib, err := purego.Dlopen(coreGraphicsPath, purego.RTLD_LAZY|purego.RTLD_GLOBAL)
		if err != nil {
			cgErr = fmt.Errorf("failed to load CoreGraphics: %w", err)
			return
		}
		purego.RegisterLibFunc(&cgMainDisplayID, lib, "CGMainDisplayID")
		purego.RegisterLibFunc(&cgDisplayCopyAllDisplayModes, lib, "CGDisplayCopyAllDisplayModes")
		purego.RegisterLibFunc(&cgDisplayCopyDisplayMode, lib, "CGDisplayCopyDisplayMode")
		purego.RegisterLibFunc(&cgDisplaySetDisplayMode, lib, "CGDisplaySetDisplayMode")
		purego.RegisterLibFunc(&cgDisplayModeGetWidth, lib, "CGDisplayModeGetWidth")
		purego.RegisterLibFunc(&cgDisplayModeGetHeight, lib, "CGDisplayModeGetHeight")
		purego.RegisterLibFunc(&cgDisplayModeRelease, lib, "CGDisplayModeRelease")
		purego.RegisterLibFunc(&cgDisplayModeRetain, lib, "CGDisplayModeRetain")
		purego.RegisterLibFunc(&cgDisplayPixelsWide, lib, "CGDisplayPixelsWide")
		purego.RegisterLibFunc(&cgDisplayPixelsHigh, lib, "CGDisplayPixelsHigh")
		// CoreGraphics links CoreFoundation, so its symbols resolve here too.
		purego.RegisterLibFunc(&cfArrayGetCount, lib, "CFArrayGetCount")
		purego.RegisterLibFunc(&cfArrayGetValueAtIndex, lib, "CFArrayGetValueAtIndex")
		purego.RegisterLibFunc(&cfRelease, lib, "CFRelease")
	})
	return cgErr
}

// displayModes copies the main display's modes, retaining each one so the
// list outlives the CFArray.
func displayModes() ([]uintptr, error) {
	if err := loadCoreGraphics(); err != nil {
		return nil, err
	}
	all := cgDisplayCopyAllDisplayModes(cgMainDisplayID(), 0)
	if all == 0 {
		return nil, fmt.Errorf("CGDisplayCopyAllDisplayModes returned no modes")
	}
	defer cfRelease(all)
	n := cfArrayGetCount(all)
	refs := make([]uintptr, 0, n)
	for i := 0; i < n; i++ {
		refs = append(refs, cgDisplayModeRetain(cfArrayGetValueAtIndex(all, i)))
	}
	return refs, nil
}

func releaseModes(refs []uintptr) {
	for _, r := range refs {
		cgDisplayModeRelease(r)
	}
}

// EnumerateDisplayModes lists the distinct sizes of the main display.
// CoreGraphics reports 32-bit modes.
func (d *Driver) EnumerateDisplayModes() ([]window.VideoMode, error) {
	refs, err := displayModes()
	if err != nil {
		return nil, err
	}
	defer releaseModes(refs)

	var modes []window.VideoMode
	seen := make(map[window.Size]bool)
	for _, r := range refs {
		m := window.VideoMode{
			Width:        uint(cgDisplayModeGetWidth(r)),
			Height:       uint(cgDisplayModeGetHeight(r)),
			BitsPerPixel: 32,
		}
		if seen[m.Size()] {
			continue
		}
		seen[m.Size()] = true
		modes = append(modes, m)
	}
	return modes, nil
}

func (d *Driver) ModeSwitchAvailable() bool {
	return loadCoreGraphics() == nil
}

// CurrentMode retains the active CGDisplayModeRef in the token.
func (d *Driver) CurrentMode() (window.ModeToken, error) {
	if err := loadCoreGraphics(); err != nil {
		return window.ModeToken{}, err
	}
	ref := cgDisplayCopyDisplayMode(cgMainDisplayID())
	if ref == 0 {
		return window.ModeToken{}, fmt.Errorf("CGDisplayCopyDisplayMode failed")
	}
	return window.ModeToken{Index: -1, Ref: ref}, nil
}

// SwitchMode applies the first native mode with the requested size.
func (d *Driver) SwitchMode(_ int, mode window.VideoMode) error {
	refs, err := displayModes()
	if err != nil {
		return err
	}
	defer releaseModes(refs)
	for _, r := range refs {
		if uint(cgDisplayModeGetWidth(r)) == mode.Width && uint(cgDisplayModeGetHeight(r)) == mode.Height {
			return setDisplayMode(r)
		}
	}
	return fmt.Errorf("no display mode of size %dx%d", mode.Width, mode.Height)
}

func (d *Driver) RestoreMode(tok window.ModeToken) error {
	if tok.Ref == 0 {
		return fmt.Errorf("mode token holds no display mode")
	}
	return setDisplayMode(tok.Ref)
}

func (d *Driver) ReleaseMode(tok window.ModeToken) {
	if tok.Ref != 0 && loadCoreGraphics() == nil {
		cgDisplayModeRelease(tok.Ref)
	}
}

func setDisplayMode(ref uintptr) error {
	if rc := cgDisplaySetDisplayMode(cgMainDisplayID(), ref, 0); rc != 0 {
		return fmt.Errorf("CGDisplaySetDisplayMode returned %d", rc)
	}
	return nil
}
