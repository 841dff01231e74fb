package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"

	"github.com/1broseidon/winlayer/internal/window"
)

// screenConfig is the RandR 1.0 size configuration of the root window.
type screenConfig struct {
	sizes           []randr.ScreenSize
	sizeID          uint16
	rotation        uint16
	configTimestamp xproto.Timestamp
}

func (c *Connection) screenConfig() (screenConfig, error) {
	info, err := randr.GetScreenInfo(c.XUtil.Conn(), c.Root).Reply()
	if err != nil {
		return screenConfig{}, fmt.Errorf("failed to get screen info: %w", err)
	}
	return screenConfig{
		sizes:           info.Sizes,
		sizeID:          info.SizeID,
		rotation:        info.Rotation,
		configTimestamp: info.ConfigTimestamp,
	}, nil
}

// setScreenSize applies size index sizeID, keeping the current rotation.
func (c *Connection) setScreenSize(sizeID uint16) error {
	cfg, err := c.screenConfig()
	if err != nil {
		return err
	}
	if int(sizeID) >= len(cfg.sizes) {
		return fmt.Errorf("screen size %d out of range (%d sizes)", sizeID, len(cfg.sizes))
	}
	reply, err := randr.SetScreenConfig(c.XUtil.Conn(), c.Root,
		xproto.TimeCurrentTime, cfg.configTimestamp, sizeID, cfg.rotation, 0).Reply()
	if err != nil {
		return fmt.Errorf("failed to set screen config: %w", err)
	}
	if reply.Status != randr.SetConfigSuccess {
		return fmt.Errorf("set screen config rejected with status %d", reply.Status)
	}
	return nil
}

// videoModes lists the RandR sizes as modes at depth bpp.
func videoModes(sizes []randr.ScreenSize, bpp uint) []window.VideoMode {
	modes := make([]window.VideoMode, 0, len(sizes))
	for _, s := range sizes {
		modes = append(modes, window.VideoMode{
			Width:        uint(s.Width),
			Height:       uint(s.Height),
			BitsPerPixel: bpp,
		})
	}
	return modes
}
