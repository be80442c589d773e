// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package phasor renders three-phase electrical phasor diagrams.
//
// # Overview
//
// A diagram shows three voltage phasors and three current phasors drawn
// from a common neutral point at fixed angles (0°, −120°, +120°), with a
// text label per phasor reporting its magnitude and angle. The package turns
// a surface size and six magnitudes into a fixed list of drawing commands;
// the commands are then replayed onto any [Surface].
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/phasor"
//	    "github.com/gogpu/phasor/surface/canvas"
//	)
//
//	c, _ := canvas.New(400, 300)
//	defer c.Close()
//
//	v := phasor.NewView()
//	v.SetVoltageMagnitudes(230, 231, 229)
//	v.SetCurrentMagnitudes(5, 4.8, 5.1)
//	_ = v.Draw(c)
//	_ = c.Save("diagram.png")
//
// # Rendering
//
// [Render] is a pure function: identical inputs always produce an identical
// command list. The list always has the same shape: two axis lines, a
// line and a label for each of the six phasors, and the neutral-point
// circle.
//
// Magnitudes only change label text. Voltage phasors always reach the
// voltage radius (0.75 of the smaller half-dimension) and current phasors
// always reach half of it. Current phasors are drawn horizontally through
// the neutral point.
//
// # Coordinate System
//
// Surface coordinates, as in gg:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Phasor angles in degrees, 0 is right, increases counter-clockwise
//
// # Threading
//
// Nothing in this package locks. A [View] must be confined to the goroutine
// that owns the host's drawing loop.
package phasor

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
