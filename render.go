// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package phasor

import (
	"context"
	"log/slog"

	"github.com/gogpu/gg"
)

// commandCount is the fixed length of a rendered diagram: two axes, a line
// and a label per phasor, and the neutral marker.
const commandCount = 2 + 6*2 + 1

// Render produces the drawing commands for a diagram on a width x height
// surface with voltage magnitudes v and current magnitudes i.
//
// The list always has the same shape and order: horizontal axis, vertical
// axis, then line and label for VR, VY, VB, IR, IY, IB, and finally the
// neutral-point circle. Every input is accepted, including negative, zero
// and non-finite magnitudes and a zero-size surface.
func Render(width, height int, v, i Triple, opts ...Option) []Command {
	o := applyOptions(opts)
	g := NewGeometry(width, height)

	if l := Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("phasor: render",
			"width", width,
			"height", height,
			"center", g.Center,
			"radius", g.Radius)
	}

	return g.Commands(Set{Voltage: v, Current: i}, o.style)
}

// Commands produces the drawing commands for s laid out on g.
func (g Geometry) Commands(s Set, style Style) []Command {
	cmds := make([]Command, 0, commandCount)

	w, h := float64(g.Width), float64(g.Height)
	cmds = append(cmds,
		LineCommand{From: gg.Pt(0, g.Center.Y), To: gg.Pt(w, g.Center.Y), Style: style, Tag: TagAxisX},
		LineCommand{From: gg.Pt(g.Center.X, 0), To: gg.Pt(g.Center.X, h), Style: style, Tag: TagAxisY},
	)

	for _, p := range g.Phasors(s, style) {
		name := p.Name()
		cmds = append(cmds,
			LineCommand{From: p.Origin, To: p.End, Style: style, Tag: name},
			TextCommand{Text: p.Text, At: p.TextAt, Style: style, Tag: name},
		)
	}

	return append(cmds, CircleCommand{
		Center: g.Center,
		Radius: style.MarkerRadius,
		Style:  style,
		Tag:    TagNeutral,
	})
}
