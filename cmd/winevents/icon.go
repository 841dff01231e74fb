package main

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/disintegration/imaging"
)

// iconSetter is the part of a window that takes an icon.
type iconSetter interface {
	SetIcon(width, height uint, pixels []byte)
}

// loadIcon decodes an image file and scales it to a size-by-size RGBA
// buffer.
func loadIcon(path string, size int) (*image.RGBA, error) {
	src, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open icon: %w", err)
	}
	return iconImage(src, size), nil
}

func iconImage(src image.Image, size int) *image.RGBA {
	scaled := imaging.Resize(src, size, size, imaging.Lanczos)
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(dst, dst.Bounds(), scaled, scaled.Bounds().Min, draw.Src)
	return dst
}

func applyIcon(w iconSetter, path string, size int) error {
	img, err := loadIcon(path, size)
	if err != nil {
		return err
	}
	w.SetIcon(uint(size), uint(size), img.Pix)
	return nil
}
