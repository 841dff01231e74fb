package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"
)

// Monitor represents a physical display
type Monitor struct {
	ID      int
	Name    string
	X       int
	Y       int
	Width   int
	Height  int
	Primary bool
}

// GetMonitors retrieves all active monitors using XRandR
func (c *Connection) GetMonitors() ([]Monitor, error) {
	if err := randr.Init(c.XUtil.Conn()); err != nil {
		return nil, fmt.Errorf("randr init failed: %w", err)
	}

	resources, err := randr.GetScreenResources(c.XUtil.Conn(), c.Root).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get screen resources: %w", err)
	}

	var primary randr.Output
	if reply, err := randr.GetOutputPrimary(c.XUtil.Conn(), c.Root).Reply(); err == nil {
		primary = reply.Output
	}

	var monitors []Monitor
	for i, crtc := range resources.Crtcs {
		crtcInfo, err := randr.GetCrtcInfo(c.XUtil.Conn(), crtc, resources.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}
		// Skip disabled CRTCs
		if crtcInfo.Width == 0 || crtcInfo.Height == 0 || len(crtcInfo.Outputs) == 0 {
			continue
		}

		outputName := fmt.Sprintf("Monitor%d", i)
		outputInfo, err := randr.GetOutputInfo(c.XUtil.Conn(), crtcInfo.Outputs[0], resources.ConfigTimestamp).Reply()
		if err == nil {
			outputName = string(outputInfo.Name)
		}

		isPrimary := false
		for _, out := range crtcInfo.Outputs {
			if primary != 0 && out == primary {
				isPrimary = true
			}
		}

		monitors = append(monitors, Monitor{
			ID:      i,
			Name:    outputName,
			X:       int(crtcInfo.X),
			Y:       int(crtcInfo.Y),
			Width:   int(crtcInfo.Width),
			Height:  int(crtcInfo.Height),
			Primary: isPrimary,
		})
	}

	return monitors, nil
}

// PrimaryMonitor picks the monitor flagged primary, else the one at the
// root origin, else the first. It returns nil for an empty list.
func PrimaryMonitor(monitors []Monitor) *Monitor {
	if len(monitors) == 0 {
		return nil
	}
	for i := range monitors {
		if monitors[i].Primary {
			return &monitors[i]
		}
	}
	for i := range monitors {
		if monitors[i].X == 0 && monitors[i].Y == 0 {
			return &monitors[i]
		}
	}
	return &monitors[0]
}

// ScreenArea returns the primary monitor's root-relative origin and extents,
// falling back to the whole core protocol screen when RandR 1.2 is
// unavailable.
func (c *Connection) ScreenArea() Monitor {
	screen := c.XUtil.Screen()
	monitors, err := c.GetMonitors()
	if err != nil {
		monitors = nil
	}
	return screenArea(monitors, int(screen.WidthInPixels), int(screen.HeightInPixels))
}

func screenArea(monitors []Monitor, coreWidth, coreHeight int) Monitor {
	if mon := PrimaryMonitor(monitors); mon != nil {
		return *mon
	}
	return Monitor{Width: coreWidth, Height: coreHeight, Primary: true}
}

// translate returns the root-relative origin of win.
func (c *Connection) translate(win xproto.Window) (int, int, error) {
	reply, err := xproto.TranslateCoordinates(c.XUtil.Conn(), win, c.Root, 0, 0).Reply()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to translate window coordinates: %w", err)
	}
	return int(reply.DstX), int(reply.DstY), nil
}
