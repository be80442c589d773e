// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package canvas draws phasor diagrams into a raster image with gg.
//
// Labels use the Go Regular font unless another font source is supplied
// with WithFontSource. The canvas registers itself as the "png" target.
//
//	c, err := canvas.New(800, 600)
//	if err != nil {
//	    return err
//	}
//	defer c.Close()
//
//	_ = phasor.Replay(phasor.Render(800, 600, v, i), c)
//	_ = c.Save("diagram.png")
package canvas

import (
	"errors"
	"fmt"
	"image"
	"io"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/phasor"
	"github.com/gogpu/phasor/target"
)

func init() {
	target.Register("png", 10, func(opts target.Options) (target.Target, error) {
		return New(opts.Width, opts.Height)
	}, nil)
}

// ErrInvalidSize is returned by New for non-positive dimensions.
var ErrInvalidSize = errors.New("canvas: width and height must be positive")

var (
	defaultSourceOnce sync.Once
	defaultSource     *text.FontSource
	defaultSourceErr  error
)

// DefaultFontSource returns the shared Go Regular font source.
func DefaultFontSource() (*text.FontSource, error) {
	defaultSourceOnce.Do(func() {
		defaultSource, defaultSourceErr = text.NewFontSource(goregular.TTF)
	})
	return defaultSource, defaultSourceErr
}

// Canvas is a phasor.Surface backed by a gg.Context.
type Canvas struct {
	dc         *gg.Context
	source     *text.FontSource
	faces      map[float64]text.Face
	background gg.RGBA
	closed     bool
}

// Ensure Canvas implements the target interfaces.
var (
	_ target.Target = (*Canvas)(nil)
	_ target.Saver  = (*Canvas)(nil)
)

// Option configures a Canvas during creation.
type Option func(*Canvas)

// WithFontSource sets the font used for labels.
func WithFontSource(src *text.FontSource) Option {
	return func(c *Canvas) {
		c.source = src
	}
}

// WithBackground sets the color the canvas is cleared to.
func WithBackground(col gg.RGBA) Option {
	return func(c *Canvas) {
		c.background = col
	}
}

// New creates a width x height canvas cleared to white.
func New(width, height int, opts ...Option) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	c := &Canvas{
		faces:      make(map[float64]text.Face),
		background: gg.White,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.source == nil {
		src, err := DefaultFontSource()
		if err != nil {
			return nil, fmt.Errorf("canvas: load default font: %w", err)
		}
		c.source = src
	}

	c.dc = gg.NewContext(width, height)
	c.dc.ClearWithColor(c.background)
	return c, nil
}

// Size implements phasor.Surface.
func (c *Canvas) Size() (int, int) {
	return c.dc.Width(), c.dc.Height()
}

// DrawLine implements phasor.Surface.
func (c *Canvas) DrawLine(p1, p2 gg.Point, style phasor.Style) error {
	c.applyStroke(style)
	c.dc.DrawLine(p1.X, p1.Y, p2.X, p2.Y)
	return c.dc.Stroke()
}

// DrawCircle implements phasor.Surface.
func (c *Canvas) DrawCircle(center gg.Point, radius float64, style phasor.Style) error {
	c.applyStroke(style)
	c.dc.DrawCircle(center.X, center.Y, radius)
	return c.dc.Stroke()
}

// DrawText implements phasor.Surface.
func (c *Canvas) DrawText(s string, at gg.Point, style phasor.Style) error {
	col := style.Color
	c.dc.SetRGBA(col.R, col.G, col.B, col.A)
	c.dc.SetFont(c.face(style.TextSize))
	c.dc.DrawString(s, at.X, at.Y)
	return nil
}

// Clear resets the canvas to its background color.
func (c *Canvas) Clear() {
	c.dc.ClearWithColor(c.background)
}

// Flush implements target.Target. Drawing is immediate; nothing to flush.
func (c *Canvas) Flush() error {
	return nil
}

// Image returns the rendered image.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// Save writes the canvas as a PNG file.
func (c *Canvas) Save(path string) error {
	if err := c.dc.SavePNG(path); err != nil {
		return fmt.Errorf("canvas: save %s: %w", path, err)
	}
	phasor.Logger().Debug("canvas: saved", "path", path)
	return nil
}

// EncodePNG writes the canvas as PNG to w.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return c.dc.EncodePNG(w)
}

// Close releases the underlying context. The font source is shared and
// stays open.
func (c *Canvas) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	return c.dc.Close()
}

func (c *Canvas) applyStroke(style phasor.Style) {
	col := style.Color
	c.dc.SetRGBA(col.R, col.G, col.B, col.A)
	c.dc.SetLineWidth(style.StrokeWidth)
}

func (c *Canvas) face(size float64) text.Face {
	f, ok := c.faces[size]
	if !ok {
		f = c.source.Face(size)
		c.faces[size] = f
	}
	return f
}
