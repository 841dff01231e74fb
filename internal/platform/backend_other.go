//go:build !linux && !freebsd && !openbsd && !netbsd && !dragonfly && !windows && !darwin

package platform

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/1broseidon/winlayer/internal/window"
)

// Backend is empty when no driver exists for this platform.
const Backend = ""

func openDriver(Options, *slog.Logger) (window.Driver, error) {
	return nil, fmt.Errorf("no window driver for %s", runtime.GOOS)
}
