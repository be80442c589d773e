// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package display

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"tinygo.org/x/drivers"
)

var (
	// ErrNotFramebuffer is returned by Display.Save for hardware devices.
	ErrNotFramebuffer = errors.New("display: device is not a framebuffer")

	// ErrInvalidSize is returned by NewFramebuffer for sizes a Displayer
	// cannot address.
	ErrInvalidSize = errors.New("display: invalid framebuffer size")
)

// Framebuffer is an in-memory drivers.Displayer.
type Framebuffer struct {
	img      *image.RGBA
	presents int
}

var _ drivers.Displayer = (*Framebuffer)(nil)

// NewFramebuffer creates a width x height framebuffer filled with white.
func NewFramebuffer(width, height int) (*Framebuffer, error) {
	if width <= 0 || height <= 0 || width > math.MaxInt16 || height > math.MaxInt16 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	return &Framebuffer{img: img}, nil
}

// Size implements drivers.Displayer.
func (f *Framebuffer) Size() (x, y int16) {
	b := f.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

// SetPixel implements drivers.Displayer. Pixels outside are ignored.
func (f *Framebuffer) SetPixel(x, y int16, c color.RGBA) {
	f.img.SetRGBA(int(x), int(y), c)
}

// Display implements drivers.Displayer. It counts presents.
func (f *Framebuffer) Display() error {
	f.presents++
	return nil
}

// Presents returns how many times Display was called.
func (f *Framebuffer) Presents() int {
	return f.presents
}

// Image returns the framebuffer contents. The image is live.
func (f *Framebuffer) Image() *image.RGBA {
	return f.img
}

// Save writes the framebuffer as a PNG file.
func (f *Framebuffer) Save(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("display: save %s: %w", path, err)
	}
	if err := png.Encode(file, f.img); err != nil {
		_ = file.Close()
		return fmt.Errorf("display: encode %s: %w", path, err)
	}
	return file.Close()
}
