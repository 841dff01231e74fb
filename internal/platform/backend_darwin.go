//go:build darwin

package platform

import (
	"log/slog"

	"github.com/1broseidon/winlayer/internal/cocoa"
	"github.com/1broseidon/winlayer/internal/window"
)

// Backend is the driver name this build selects.
const Backend = cocoa.Name

func openDriver(_ Options, log *slog.Logger) (window.Driver, error) {
	d, err := cocoa.NewDriver(log)
	if err != nil {
		return nil, err
	}
	return d, nil
}
