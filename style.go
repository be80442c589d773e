// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package phasor

import "github.com/gogpu/gg"

// Style is the single shared paint used for every command of a diagram.
type Style struct {
	// Color is used for lines, the neutral marker and labels.
	Color gg.RGBA

	// StrokeWidth is the width of lines and the neutral marker outline.
	StrokeWidth float64

	// TextSize is the label font size in surface units.
	TextSize float64

	// MarkerRadius is the radius of the neutral-point circle.
	MarkerRadius float64

	// LabelInset pulls right-pointing voltage labels back toward the
	// neutral point, and pushes current labels right.
	LabelInset float64

	// LabelOutset pushes all other voltage labels right.
	LabelOutset float64

	// LabelLift raises label baselines above the phasor endpoint.
	LabelLift float64
}

// DefaultStyle returns the default diagram style: solid black, 2-unit
// strokes, 20-unit text.
func DefaultStyle() Style {
	return Style{
		Color:        gg.Black,
		StrokeWidth:  2,
		TextSize:     20,
		MarkerRadius: 5,
		LabelInset:   10,
		LabelOutset:  20,
		LabelLift:    5,
	}
}
