// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package phasor

import (
	"math"

	"github.com/gogpu/gg"
)

// voltageRadiusScale is the share of the smaller half-dimension covered by
// voltage phasors.
const voltageRadiusScale = 0.75

// Geometry holds the layout derived from a surface size.
type Geometry struct {
	Width, Height int

	// Center is the neutral point. Its coordinates are whole numbers:
	// each dimension is halved with integer division.
	Center gg.Point

	// Radius is the length of voltage phasors.
	// Current phasors are drawn at Radius/2.
	Radius float64
}

// NewGeometry computes the layout for a width x height surface.
// A 0x0 surface yields a center at the origin and a zero radius.
func NewGeometry(width, height int) Geometry {
	cx, cy := width/2, height/2
	return Geometry{
		Width:  width,
		Height: height,
		Center: gg.Pt(float64(cx), float64(cy)),
		Radius: float64(min(cx, cy)) * voltageRadiusScale,
	}
}

// RadiusFor returns the drawn length of phasors of kind k.
func (g Geometry) RadiusFor(k Kind) float64 {
	if k == Current {
		return g.Radius / 2
	}
	return g.Radius
}

// Phasor is a single drawn phasor, derived fresh on every render.
type Phasor struct {
	Kind      Kind
	Phase     Phase
	Magnitude float64

	// Angle is the phase angle in degrees.
	Angle float64

	Origin gg.Point
	End    gg.Point

	// Text and TextAt describe the label. TextAt is the baseline origin.
	Text   string
	TextAt gg.Point
}

// Name returns the phasor name, e.g. "VY".
func (p Phasor) Name() string {
	return Label(p.Kind, p.Phase)
}

// Phasor derives the drawn phasor for one kind and phase.
//
// Voltage endpoints sit at Center + Radius·(cos θ, −sin θ). Current endpoints
// keep the cosine projection at Radius/2 but stay on the horizontal axis.
// The magnitude only reaches the label.
func (g Geometry) Phasor(k Kind, p Phase, magnitude float64, style Style) Phasor {
	angle := p.Angle()
	r := g.RadiusFor(k)
	rad := angle * math.Pi / 180
	dx := r * math.Cos(rad)
	dy := r * math.Sin(rad)

	end := gg.Pt(g.Center.X+dx, g.Center.Y-dy)
	if k == Current {
		end.Y = g.Center.Y
	}

	return Phasor{
		Kind:      k,
		Phase:     p,
		Magnitude: magnitude,
		Angle:     angle,
		Origin:    g.Center,
		End:       end,
		Text:      FormatLabel(Label(k, p), magnitude, angle),
		TextAt:    labelAt(k, end, dx, style),
	}
}

// labelAt places a label next to the endpoint. Right-pointing voltage
// labels are pulled back by LabelInset; all others are pushed right.
func labelAt(k Kind, end gg.Point, dx float64, style Style) gg.Point {
	var nudge float64
	switch {
	case k == Current:
		nudge = style.LabelInset
	case dx > 0:
		nudge = -style.LabelInset
	default:
		nudge = style.LabelOutset
	}
	return gg.Pt(end.X+nudge, end.Y-style.LabelLift)
}

// Phasors derives all six phasors for a magnitude set, voltages first.
func (g Geometry) Phasors(s Set, style Style) [6]Phasor {
	var out [6]Phasor
	i := 0
	for _, k := range [...]Kind{Voltage, Current} {
		t := s.Get(k)
		for _, p := range Phases {
			out[i] = g.Phasor(k, p, t.Get(p), style)
			i++
		}
	}
	return out
}
