//go:build windows

package platform

import (
	"log/slog"

	"github.com/1broseidon/winlayer/internal/win32"
	"github.com/1broseidon/winlayer/internal/window"
)

// Backend is the driver name this build selects.
const Backend = win32.Name

func openDriver(_ Options, log *slog.Logger) (window.Driver, error) {
	d, err := win32.NewDriver(log)
	if err != nil {
		return nil, err
	}
	return d, nil
}
