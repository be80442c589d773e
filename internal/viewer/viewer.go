// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package viewer keeps a window-sized phasor diagram up to date. It
// re-renders only after the view is invalidated or the window size changes,
// so a host can ask for a frame on every tick.
package viewer

import (
	"image"
	"image/draw"

	"github.com/gogpu/phasor"
	"github.com/gogpu/phasor/surface/canvas"
)

// Viewer renders a phasor.View into a reusable canvas.
type Viewer struct {
	view    *phasor.View
	canvas  *canvas.Canvas
	frame   *image.RGBA
	dirty   bool
	renders int
}

// New creates a Viewer. opts are passed to every render.
func New(opts ...phasor.Option) *Viewer {
	v := &Viewer{dirty: true}
	v.view = phasor.NewView(
		phasor.WithInvalidate(v.invalidate),
		phasor.WithRenderOptions(opts...),
	)
	return v
}

func (v *Viewer) invalidate() {
	v.dirty = true
}

// View returns the view whose setters trigger a redraw.
func (v *Viewer) View() *phasor.View {
	return v.view
}

// Scale multiplies the magnitudes of one kind by factor.
func (v *Viewer) Scale(k phasor.Kind, factor float64) {
	t := v.view.Magnitudes().Get(k)
	switch k {
	case phasor.Voltage:
		v.view.SetVoltageMagnitudes(t.R*factor, t.Y*factor, t.B*factor)
	case phasor.Current:
		v.view.SetCurrentMagnitudes(t.R*factor, t.Y*factor, t.B*factor)
	}
}

// Dirty reports whether the next Frame will re-render.
func (v *Viewer) Dirty() bool {
	return v.dirty
}

// Renders returns how many times the diagram has been drawn.
func (v *Viewer) Renders() int {
	return v.renders
}

// Frame returns the diagram at width x height. The bool result is true
// when the image changed since the previous call. The returned image is
// reused by later calls.
func (v *Viewer) Frame(width, height int) (*image.RGBA, bool, error) {
	if v.canvas != nil {
		if w, h := v.canvas.Size(); w != width || h != height {
			_ = v.canvas.Close()
			v.canvas = nil
		}
	}
	if v.canvas == nil {
		c, err := canvas.New(width, height)
		if err != nil {
			return nil, false, err
		}
		v.canvas = c
		v.frame = image.NewRGBA(image.Rect(0, 0, width, height))
		v.dirty = true
	}
	if !v.dirty {
		return v.frame, false, nil
	}

	v.canvas.Clear()
	if err := v.view.Draw(v.canvas); err != nil {
		return nil, false, err
	}
	draw.Draw(v.frame, v.frame.Bounds(), v.canvas.Image(), image.Point{}, draw.Src)
	v.dirty = false
	v.renders++
	phasor.Logger().Debug("viewer: redraw", "width", width, "height", height, "renders", v.renders)
	return v.frame, true, nil
}

// Close releases the canvas.
func (v *Viewer) Close() error {
	if v.canvas == nil {
		return nil
	}
	err := v.canvas.Close()
	v.canvas = nil
	return err
}
