package win32

import "github.com/1broseidon/winlayer/internal/window"

// devModeW mirrors DEVMODEW. Position covers the printer/display union.
type devModeW struct {
	DeviceName       [32]uint16
	SpecVersion      uint16
	DriverVersion    uint16
	Size             uint16
	DriverExtra      uint16
	Fields           uint32
	Position         [16]byte
	Color            int16
	Duplex           int16
	YResolution      int16
	TTOption         int16
	Collate          int16
	FormName         [32]uint16
	LogPixels        uint16
	BitsPerPel       uint32
	PelsWidth        uint32
	PelsHeight       uint32
	DisplayFlags     uint32
	DisplayFrequency uint32
	ICMMethod        uint32
	ICMIntent        uint32
	MediaType        uint32
	DitherType       uint32
	Reserved1        uint32
	Reserved2        uint32
	PanningWidth     uint32
	PanningHeight    uint32
}

const devModeSize = 220

const (
	dmBitsPerPel = 0x00040000
	dmPelsWidth  = 0x00080000
	dmPelsHeight = 0x00100000
)

// newDevMode returns a DEVMODEW requesting mode.
func newDevMode(mode window.VideoMode) devModeW {
	var dm devModeW
	dm.Size = devModeSize
	dm.PelsWidth = uint32(mode.Width)
	dm.PelsHeight = uint32(mode.Height)
	dm.Fields = dmPelsWidth | dmPelsHeight
	if mode.BitsPerPixel != 0 {
		dm.BitsPerPel = uint32(mode.BitsPerPixel)
		dm.Fields |= dmBitsPerPel
	}
	return dm
}

func (dm *devModeW) videoMode() window.VideoMode {
	return window.VideoMode{
		Width:        uint(dm.PelsWidth),
		Height:       uint(dm.PelsHeight),
		BitsPerPixel: uint(dm.BitsPerPel),
	}
}

// appendMode adds m unless an identical mode is already listed. Drivers
// report one entry per refresh rate.
func appendMode(modes []window.VideoMode, m window.VideoMode) []window.VideoMode {
	for _, have := range modes {
		if have == m {
			return modes
		}
	}
	return append(modes, m)
}
