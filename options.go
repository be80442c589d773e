// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package phasor

import "github.com/gogpu/gg"

// Option configures a render.
//
// Example:
//
//	cmds := phasor.Render(800, 600, v, i,
//	    phasor.WithStrokeWidth(3),
//	    phasor.WithColor(gg.Hex("#1f4e79")),
//	)
type Option func(*options)

// options holds optional render configuration.
type options struct {
	style Style
}

func defaultOptions() options {
	return options{style: DefaultStyle()}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithStyle replaces the whole style.
func WithStyle(s Style) Option {
	return func(o *options) {
		o.style = s
	}
}

// WithColor sets the color of every line, marker and label.
func WithColor(c gg.RGBA) Option {
	return func(o *options) {
		o.style.Color = c
	}
}

// WithStrokeWidth sets the line width.
func WithStrokeWidth(w float64) Option {
	return func(o *options) {
		o.style.StrokeWidth = w
	}
}

// WithTextSize sets the label font size.
func WithTextSize(size float64) Option {
	return func(o *options) {
		o.style.TextSize = size
	}
}

// WithMarkerRadius sets the radius of the neutral-point circle.
func WithMarkerRadius(r float64) Option {
	return func(o *options) {
		o.style.MarkerRadius = r
	}
}
