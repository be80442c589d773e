// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package record captures phasor diagrams as gg recordings.
//
// A recording is an immutable command list that can be played back to any
// gg recording backend: the built-in raster backend, or vector backends such
// as gg-pdf and gg-svg when they are linked in.
//
//	r := record.New(800, 600)
//	_ = phasor.Replay(phasor.Render(800, 600, v, i), r)
//	rec := r.Finish()
//
//	svg, _ := recording.NewBackend("svg")
//	_ = rec.Playback(svg)
//
// The package registers the "recording" target, which saves PNG files.
package record

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
	"github.com/gogpu/gg/recording/backends/raster"
	"github.com/gogpu/gg/text"

	"github.com/gogpu/phasor"
	"github.com/gogpu/phasor/surface/canvas"
	"github.com/gogpu/phasor/target"
)

func init() {
	target.Register("recording", 5, func(opts target.Options) (target.Target, error) {
		return New(opts.Width, opts.Height), nil
	}, nil)
}

// ErrFinished is returned when drawing on a Recorder after Finish.
var ErrFinished = errors.New("record: recording already finished")

// Recorder is a phasor.Surface that records into a gg recording.
type Recorder struct {
	rec      *recording.Recorder
	finished *recording.Recording
}

// Ensure Recorder implements the target interfaces.
var (
	_ target.Target = (*Recorder)(nil)
	_ target.Saver  = (*Recorder)(nil)
)

// New creates a Recorder for a width x height surface.
func New(width, height int) *Recorder {
	return &Recorder{rec: recording.NewRecorder(width, height)}
}

// Size implements phasor.Surface.
func (r *Recorder) Size() (int, int) {
	return r.rec.Width(), r.rec.Height()
}

// DrawLine implements phasor.Surface.
func (r *Recorder) DrawLine(p1, p2 gg.Point, style phasor.Style) error {
	if r.finished != nil {
		return ErrFinished
	}
	r.applyStroke(style)
	r.rec.DrawLine(p1.X, p1.Y, p2.X, p2.Y)
	r.rec.Stroke()
	return nil
}

// DrawCircle implements phasor.Surface.
func (r *Recorder) DrawCircle(center gg.Point, radius float64, style phasor.Style) error {
	if r.finished != nil {
		return ErrFinished
	}
	r.applyStroke(style)
	r.rec.DrawCircle(center.X, center.Y, radius)
	r.rec.Stroke()
	return nil
}

// DrawText implements phasor.Surface.
func (r *Recorder) DrawText(s string, at gg.Point, style phasor.Style) error {
	if r.finished != nil {
		return ErrFinished
	}
	col := style.Color
	r.rec.SetFillRGBA(col.R, col.G, col.B, col.A)
	r.rec.SetFontSize(style.TextSize)
	r.rec.DrawString(s, at.X, at.Y)
	return nil
}

// Flush implements target.Target. Recording is complete after each call.
func (r *Recorder) Flush() error {
	return nil
}

// Close finishes the recording.
func (r *Recorder) Close() error {
	r.Finish()
	return nil
}

// Finish returns the immutable recording. Later calls return the same
// recording; drawing after Finish fails with ErrFinished.
func (r *Recorder) Finish() *recording.Recording {
	if r.finished == nil {
		r.finished = r.rec.FinishRecording()
		phasor.Logger().Debug("record: finished", "commands", len(r.finished.Commands()))
	}
	return r.finished
}

// Save rasterizes the recording and writes it as a PNG file.
func (r *Recorder) Save(path string) error {
	dc, err := rasterize(r.Finish(), nil)
	if err != nil {
		return err
	}
	defer dc.Close()

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("record: save %s: %w", path, err)
	}
	phasor.Logger().Debug("record: saved", "path", path)
	return nil
}

// Rasterize plays rec back to gg's raster backend and draws its text
// commands on top, since the raster backend does not render text. A nil
// source uses the Go Regular font.
func Rasterize(rec *recording.Recording, source *text.FontSource) (image.Image, error) {
	dc, err := rasterize(rec, source)
	if err != nil {
		return nil, err
	}
	defer dc.Close()
	return dc.Image(), nil
}

// rasterize returns a context holding the rendered recording. The caller
// closes it.
func rasterize(rec *recording.Recording, source *text.FontSource) (*gg.Context, error) {
	if source == nil {
		src, err := canvas.DefaultFontSource()
		if err != nil {
			return nil, fmt.Errorf("record: load default font: %w", err)
		}
		source = src
	}

	b := raster.NewBackend()
	if err := rec.Playback(b); err != nil {
		return nil, fmt.Errorf("record: playback: %w", err)
	}

	dc := gg.NewContextForImage(b.Image())

	faces := make(map[float64]text.Face)
	for _, cmd := range rec.Commands() {
		t, ok := cmd.(recording.DrawTextCommand)
		if !ok {
			continue
		}
		if sb, ok := rec.Resources().GetBrush(t.Brush).(recording.SolidBrush); ok {
			dc.SetRGBA(sb.Color.R, sb.Color.G, sb.Color.B, sb.Color.A)
		}
		face, ok := faces[t.FontSize]
		if !ok {
			face = source.Face(t.FontSize)
			faces[t.FontSize] = face
		}
		dc.SetFont(face)
		dc.DrawString(t.Text, t.X, t.Y)
	}
	return dc, nil
}

func (r *Recorder) applyStroke(style phasor.Style) {
	col := style.Color
	r.rec.SetStrokeRGBA(col.R, col.G, col.B, col.A)
	r.rec.SetLineWidth(style.StrokeWidth)
}
