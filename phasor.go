// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package phasor

import (
	"errors"
	"math"
)

// Kind distinguishes voltage phasors from current phasors.
type Kind uint8

const (
	// Voltage phasors are drawn at the full diagram radius.
	Voltage Kind = iota
	// Current phasors are drawn at half the diagram radius, horizontally.
	Current
)

// String returns "V" or "I", the label prefix for the kind.
func (k Kind) String() string {
	switch k {
	case Voltage:
		return "V"
	case Current:
		return "I"
	default:
		return "?"
	}
}

// Phase identifies one of the three lines of a three-phase system.
type Phase uint8

const (
	// R is the reference phase at 0°.
	R Phase = iota
	// Y lags R by 120°.
	Y
	// B leads R by 120°.
	B
)

// Phases lists the phases in drawing order.
var Phases = [...]Phase{R, Y, B}

var phaseAngles = [...]float64{R: 0, Y: -120, B: 120}

// Angle returns the fixed phase angle in degrees.
func (p Phase) Angle() float64 {
	if int(p) < len(phaseAngles) {
		return phaseAngles[p]
	}
	return 0
}

// String returns the phase letter.
func (p Phase) String() string {
	switch p {
	case R:
		return "R"
	case Y:
		return "Y"
	case B:
		return "B"
	default:
		return "?"
	}
}

// Label returns the phasor name for a kind and phase, e.g. "VR" or "IB".
func Label(k Kind, p Phase) string {
	return k.String() + p.String()
}

// Triple holds the magnitudes of the three phases.
type Triple struct {
	R, Y, B float64
}

// T is a convenience function to create a Triple.
func T(r, y, b float64) Triple {
	return Triple{R: r, Y: y, B: b}
}

// Get returns the magnitude for a phase.
func (t Triple) Get(p Phase) float64 {
	switch p {
	case Y:
		return t.Y
	case B:
		return t.B
	default:
		return t.R
	}
}

// Set is the full set of magnitudes shown on a diagram.
// The zero value has every magnitude at zero.
type Set struct {
	Voltage Triple
	Current Triple
}

// Get returns the triple for a kind.
func (s Set) Get(k Kind) Triple {
	if k == Current {
		return s.Current
	}
	return s.Voltage
}

// ErrNonFinite is returned by CheckFinite for NaN or infinite magnitudes.
var ErrNonFinite = errors.New("phasor: non-finite magnitude")

// CheckFinite reports whether every magnitude in t is finite.
// Render itself accepts any value; callers that take magnitudes from
// untrusted input use CheckFinite to reject them up front.
func CheckFinite(t Triple) error {
	for _, v := range [...]float64{t.R, t.Y, t.B} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNonFinite
		}
	}
	return nil
}
