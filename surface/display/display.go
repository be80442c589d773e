// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package display draws phasor diagrams on small pixel displays through the
// TinyGo drivers.Displayer interface, such as the SPI LCDs found on panel
// meters. Lines and circles are rasterized with integer algorithms and
// labels use a tinyfont bitmap font.
//
// Framebuffer is an in-memory Displayer for hosts without a panel. The
// package registers the "display" target backed by a Framebuffer.
package display

import (
	"fmt"
	"image/color"
	"math"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"

	"github.com/gogpu/gg"
	"github.com/gogpu/phasor"
	"github.com/gogpu/phasor/target"
)

func init() {
	target.Register("display", 2, func(opts target.Options) (target.Target, error) {
		fb, err := NewFramebuffer(opts.Width, opts.Height)
		if err != nil {
			return nil, err
		}
		return New(fb), nil
	}, nil)
}

// Display is a phasor.Surface drawing to a drivers.Displayer.
type Display struct {
	dev  drivers.Displayer
	font tinyfont.Fonter
}

// Ensure Display implements the target interfaces.
var (
	_ target.Target = (*Display)(nil)
	_ target.Saver  = (*Display)(nil)
)

// Option configures a Display.
type Option func(*Display)

// WithFont sets the label font. Bitmap fonts have a fixed size, so
// Style.TextSize is ignored.
func WithFont(f tinyfont.Fonter) Option {
	return func(d *Display) {
		d.font = f
	}
}

// New wraps a display device. Labels default to the TomThumb font.
func New(dev drivers.Displayer, opts ...Option) *Display {
	d := &Display{dev: dev, font: &tinyfont.TomThumb}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Device returns the wrapped display device.
func (d *Display) Device() drivers.Displayer {
	return d.dev
}

// Size implements phasor.Surface.
func (d *Display) Size() (int, int) {
	w, h := d.dev.Size()
	return int(w), int(h)
}

// DrawLine implements phasor.Surface using Bresenham's algorithm.
func (d *Display) DrawLine(p1, p2 gg.Point, style phasor.Style) error {
	c := rgba(style.Color)
	pen := penSize(style.StrokeWidth)
	x0, y0 := round(p1.X), round(p1.Y)
	x1, y1 := round(p2.X), round(p2.Y)

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := step(x0, x1), step(y0, y1)
	e := dx + dy
	for {
		d.plot(x0, y0, pen, c)
		if x0 == x1 && y0 == y1 {
			return nil
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// DrawCircle implements phasor.Surface using the midpoint circle algorithm.
func (d *Display) DrawCircle(center gg.Point, radius float64, style phasor.Style) error {
	c := rgba(style.Color)
	pen := penSize(style.StrokeWidth)
	cx, cy := round(center.X), round(center.Y)
	r := round(radius)
	if r <= 0 {
		d.plot(cx, cy, pen, c)
		return nil
	}

	x, y := r, 0
	e := 1 - r
	for x >= y {
		for _, p := range [...][2]int{
			{x, y}, {y, x}, {-y, x}, {-x, y},
			{-x, -y}, {-y, -x}, {y, -x}, {x, -y},
		} {
			d.plot(cx+p[0], cy+p[1], pen, c)
		}
		y++
		if e < 0 {
			e += 2*y + 1
		} else {
			x--
			e += 2*(y-x) + 1
		}
	}
	return nil
}

// DrawText implements phasor.Surface. at is the baseline origin.
func (d *Display) DrawText(s string, at gg.Point, style phasor.Style) error {
	x, y := round(at.X), round(at.Y)
	if !fitsInt16(x) || !fitsInt16(y) {
		return nil
	}
	tinyfont.WriteLine(d.dev, d.font, int16(x), int16(y), s, rgba(style.Color))
	return nil
}

// Flush pushes the drawn pixels to the device.
func (d *Display) Flush() error {
	if err := d.dev.Display(); err != nil {
		return fmt.Errorf("display: %w", err)
	}
	return nil
}

// Close implements target.Target. The device is not released.
func (d *Display) Close() error {
	return nil
}

// Save writes the framebuffer as PNG. It fails for devices other than
// Framebuffer.
func (d *Display) Save(path string) error {
	fb, ok := d.dev.(*Framebuffer)
	if !ok {
		return fmt.Errorf("display: save %s: %w", path, ErrNotFramebuffer)
	}
	return fb.Save(path)
}

// plot sets a pen x pen square of pixels centered on (x, y), skipping
// anything off the device.
func (d *Display) plot(x, y, pen int, c color.RGBA) {
	w, h := d.dev.Size()
	off := (pen - 1) / 2
	for py := y - off; py < y-off+pen; py++ {
		for px := x - off; px < x-off+pen; px++ {
			if px < 0 || py < 0 || px >= int(w) || py >= int(h) {
				continue
			}
			d.dev.SetPixel(int16(px), int16(py), c)
		}
	}
}

func rgba(c gg.RGBA) color.RGBA {
	return color.RGBAModel.Convert(c.Color()).(color.RGBA)
}

func penSize(w float64) int {
	if p := round(w); p > 1 {
		return p
	}
	return 1
}

func round(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	return int(math.Round(v))
}

func fitsInt16(v int) bool {
	return v >= math.MinInt16 && v <= math.MaxInt16
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func step(from, to int) int {
	if from < to {
		return 1
	}
	return -1
}
