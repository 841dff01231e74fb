//go:build linux || freebsd || openbsd || netbsd || dragonfly

package platform

import (
	"log/slog"

	"github.com/1broseidon/winlayer/internal/window"
	"github.com/1broseidon/winlayer/internal/x11"
)

// Backend is the driver name this build selects.
const Backend = x11.Name

func openDriver(opts Options, log *slog.Logger) (window.Driver, error) {
	d, err := x11.NewDriver(opts.Display, log)
	if err != nil {
		return nil, err
	}
	return d, nil
}
