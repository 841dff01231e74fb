package window

import "fmt"

// Icon is an icon image already converted to the layout backends consume:
// BGRA pixels, row-major, plus an opacity bitmask.
type Icon struct {
	Width  uint
	Height uint
	// BGRA holds 4 bytes per pixel in B, G, R, A order.
	BGRA []byte
	// Mask holds one bit per pixel, set when alpha > 0. Bits are packed
	// LSB-first and each row is rounded up to a whole byte.
	Mask []byte
}

// MaskStride returns the byte length of one mask row.
func (i Icon) MaskStride() int {
	return maskStride(i.Width)
}

func maskStride(width uint) int {
	return int((width + 7) / 8)
}

// NewIcon validates RGBA pixels and converts them for backend use.
func NewIcon(width, height uint, rgba []byte) (Icon, error) {
	if width == 0 || height == 0 {
		return Icon{}, fmt.Errorf("icon size %dx%d is empty", width, height)
	}
	if want := int(width * height * 4); len(rgba) != want {
		return Icon{}, fmt.Errorf("icon has %d bytes of pixels, want %d for %dx%d", len(rgba), want, width, height)
	}
	return Icon{
		Width:  width,
		Height: height,
		BGRA:   ToBGRA(rgba),
		Mask:   AlphaMask(width, height, rgba),
	}, nil
}

// ToBGRA swaps the red and blue channels of RGBA pixels into a new buffer.
func ToBGRA(rgba []byte) []byte {
	out := make([]byte, len(rgba)/4*4)
	for i := 0; i+3 < len(rgba); i += 4 {
		out[i+0] = rgba[i+2]
		out[i+1] = rgba[i+1]
		out[i+2] = rgba[i+0]
		out[i+3] = rgba[i+3]
	}
	return out
}

// AlphaMask derives a 1-bit opacity mask from RGBA pixels: a pixel is opaque
// when its alpha is non-zero. Bit k of byte i in row j covers pixel
// i*8+k of that row.
func AlphaMask(width, height uint, rgba []byte) []byte {
	stride := maskStride(width)
	mask := make([]byte, stride*int(height))
	for y := 0; y < int(height); y++ {
		for x := 0; x < int(width); x++ {
			off := (y*int(width) + x) * 4
			if off+3 >= len(rgba) {
				return mask
			}
			if rgba[off+3] > 0 {
				mask[y*stride+x/8] |= 1 << (x % 8)
			}
		}
	}
	return mask
}

// PackMask re-lays an LSB-first, byte-rounded mask for a native consumer:
// rows are padded to padBytes, bits are optionally inverted (set meaning
// transparent) and optionally MSB-first within each byte.
func PackMask(mask []byte, width, height uint, padBytes int, invert, msbFirst bool) []byte {
	if padBytes < 1 {
		padBytes = 1
	}
	src := maskStride(width)
	dst := (src + padBytes - 1) / padBytes * padBytes
	out := make([]byte, dst*int(height))
	for y := 0; y < int(height); y++ {
		for x := 0; x < int(width); x++ {
			si := y*src + x/8
			if si >= len(mask) {
				return out
			}
			bit := mask[si]>>(x%8)&1 == 1
			if invert {
				bit = !bit
			}
			if !bit {
				continue
			}
			shift := x % 8
			if msbFirst {
				shift = 7 - shift
			}
			out[y*dst+x/8] |= 1 << shift
		}
	}
	return out
}
