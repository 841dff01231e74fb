//go:build darwin

package cocoa

import (
	"fmt"
	"sync"

	"github.com/ebitengine/purego/objc"

	"github.com/1broseidon/winlayer/internal/window"
)

// NSPoint, NSSize and NSRect match the CGFloat-based Foundation structs.
type NSPoint struct {
	X, Y float64
}

type NSSize struct {
	Width, Height float64
}

type NSRect struct {
	Origin NSPoint
	Size   NSSize
}

const (
	backingStoreBuffered    = 2
	activationPolicyRegular = 0
	eventMaskAny            = ^uint(0)
)

var (
	selAlloc                    = objc.RegisterName("alloc")
	selNew                      = objc.RegisterName("new")
	selInit                     = objc.RegisterName("init")
	selRelease                  = objc.RegisterName("release")
	selDrain                    = objc.RegisterName("drain")
	selObject                   = objc.RegisterName("object")
	selRespondsToSelector       = objc.RegisterName("respondsToSelector:")
	selIsKindOfClass            = objc.RegisterName("isKindOfClass:")
	selStringWithUTF8String     = objc.RegisterName("stringWithUTF8String:")
	selSharedApplication        = objc.RegisterName("sharedApplication")
	selSetActivationPolicy      = objc.RegisterName("setActivationPolicy:")
	selFinishLaunching          = objc.RegisterName("finishLaunching")
	selActivateIgnoringOthers   = objc.RegisterName("activateIgnoringOtherApps:")
	selNextEvent                = objc.RegisterName("nextEventMatchingMask:untilDate:inMode:dequeue:")
	selSendEvent                = objc.RegisterName("sendEvent:")
	selUpdateWindows            = objc.RegisterName("updateWindows")
	selDistantPast              = objc.RegisterName("distantPast")
	selInitWithContentRect      = objc.RegisterName("initWithContentRect:styleMask:backing:defer:")
	selSetReleasedWhenClosed    = objc.RegisterName("setReleasedWhenClosed:")
	selSetDelegate              = objc.RegisterName("setDelegate:")
	selDelegate                 = objc.RegisterName("delegate")
	selSetTitle                 = objc.RegisterName("setTitle:")
	selSetLevel                 = objc.RegisterName("setLevel:")
	selFrame                    = objc.RegisterName("frame")
	selContentView              = objc.RegisterName("contentView")
	selWindow                   = objc.RegisterName("window")
	selSetFrameTopLeftPoint     = objc.RegisterName("setFrameTopLeftPoint:")
	selSetContentSize           = objc.RegisterName("setContentSize:")
	selSetContentMinSize        = objc.RegisterName("setContentMinSize:")
	selSetContentMaxSize        = objc.RegisterName("setContentMaxSize:")
	selMakeKeyAndOrderFront     = objc.RegisterName("makeKeyAndOrderFront:")
	selOrderOut                 = objc.RegisterName("orderOut:")
	selClose                    = objc.RegisterName("close")
	selMainScreen               = objc.RegisterName("mainScreen")
	selInitWithBitmapDataPlanes = objc.RegisterName("initWithBitmapDataPlanes:pixelsWide:pixelsHigh:bitsPerSample:samplesPerPixel:hasAlpha:isPlanar:colorSpaceName:bitmapFormat:bytesPerRow:bitsPerPixel:")
	selBitmapData               = objc.RegisterName("bitmapData")
	selInitWithSize             = objc.RegisterName("initWithSize:")
	selAddRepresentation        = objc.RegisterName("addRepresentation:")
	selSetApplicationIconImage  = objc.RegisterName("setApplicationIconImage:")
	selWindowShouldClose        = objc.RegisterName("windowShouldClose:")
)

func class(name string) objc.ID {
	return objc.ID(objc.GetClass(name))
}

func nsString(s string) objc.ID {
	return class("NSString").Send(selStringWithUTF8String, s)
}

func respondsTo(obj objc.ID, sel objc.SEL) bool {
	return obj != 0 && objc.Send[bool](obj, selRespondsToSelector, sel)
}

func contentSize(win objc.ID) window.Size {
	view := win.Send(selContentView)
	if view == 0 {
		return window.Size{}
	}
	frame := objc.Send[NSRect](view, selFrame)
	return window.Size{Width: uint(frame.Size.Width), Height: uint(frame.Size.Height)}
}

// targets routes delegate callbacks back to the window state. AppKit has one
// application per process, so one table serves every driver.
var targets = newRoutes[*windowState]()

var (
	delegateOnce  sync.Once
	delegateClass objc.Class
	delegateErr   error
)

// newDelegate returns a new instance of the runtime-registered delegate class.
func newDelegate() (objc.ID, error) {
	delegateOnce.Do(func() {
		delegateClass, delegateErr = registerDelegateClass()
	})
	if delegateErr != nil {
		return 0, delegateErr
	}
	return objc.ID(delegateClass).Send(selAlloc).Send(selInit), nil
}

func registerDelegateClass() (objc.Class, error) {
	methods := make([]objc.MethodDef, 0, len(delegateNotifications)+1)
	for _, d := range delegateNotifications {
		methods = append(methods, objc.MethodDef{
			Cmd: objc.RegisterName(d.selector),
			Fn:  notificationHandler(d.kind, d.sized),
		})
	}
	methods = append(methods, objc.MethodDef{Cmd: selWindowShouldClose, Fn: shouldClose})

	cls, err := objc.RegisterClass("WinlayerWindowDelegate", objc.GetClass("NSObject"), nil, nil, methods)
	if err != nil {
		return 0, fmt.Errorf("failed to register window delegate class: %w", err)
	}
	return cls, nil
}

func notificationHandler(kind window.NotificationKind, sized bool) func(objc.ID, objc.SEL, objc.ID) {
	return func(_ objc.ID, cmd objc.SEL, note objc.ID) {
		win := note.Send(selObject)
		st, ok := targets.byWindow(window.Handle(win))
		if !ok {
			return
		}
		n := window.Notification{Kind: kind}
		if sized {
			n.Size = contentSize(win)
		}
		st.recv.Notify(n)
		if respondsTo(st.prevDelegate, cmd) {
			st.prevDelegate.Send(cmd, note)
		}
	}
}

// shouldClose reports the close request and keeps owned windows open. An
// adopted window's previous delegate still decides for its own window.
func shouldClose(_ objc.ID, cmd objc.SEL, sender objc.ID) bool {
	st, ok := targets.byWindow(window.Handle(sender))
	if !ok {
		return true
	}
	st.recv.Notify(window.Notification{Kind: window.NotifyCloseRequest})
	if st.owned {
		return false
	}
	if respondsTo(st.prevDelegate, cmd) {
		return objc.Send[bool](st.prevDelegate, cmd, sender)
	}
	return true
}

var appOnce sync.Once

// sharedApplication returns NSApp, finishing launch on first use.
func sharedApplication() objc.ID {
	app := class("NSApplication").Send(selSharedApplication)
	appOnce.Do(func() {
		app.Send(selSetActivationPolicy, activationPolicyRegular)
		app.Send(selFinishLaunching)
		app.Send(selActivateIgnoringOthers, true)
	})
	return app
}
