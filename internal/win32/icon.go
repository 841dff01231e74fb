package win32

import "github.com/1broseidon/winlayer/internal/window"

// WM_SETICON wParam values.
const (
	iconSmall = 0
	iconBig   = 1
)

// andMask lays the opacity mask out as CreateIcon's AND bitmap: set bits are
// transparent, MSB-first, rows padded to 16 bits.
func andMask(icon window.Icon) []byte {
	return window.PackMask(icon.Mask, icon.Width, icon.Height, 2, true, true)
}
