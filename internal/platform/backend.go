// Package platform selects the window driver for the host operating system.
package platform

import (
	"log/slog"

	"github.com/1broseidon/winlayer/internal/window"
)

// Options configure driver construction. Fields a backend does not use are
// ignored.
type Options struct {
	// Display names the X server to connect to. Empty means $DISPLAY.
	Display string
	Logger  *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// NewDriver opens the native driver for this platform.
func NewDriver(opts Options) (window.Driver, error) {
	log := opts.logger()
	d, err := openDriver(opts, log)
	if err != nil {
		return nil, err
	}
	log.Debug("window driver ready", "backend", d.Name())
	return d, nil
}

// NewManager opens the native driver and wraps it in a window manager.
func NewManager(opts Options) (*window.Manager, error) {
	d, err := NewDriver(opts)
	if err != nil {
		return nil, err
	}
	return window.NewManager(d, window.Options{Logger: opts.logger()}), nil
}
