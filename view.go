// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package phasor

// View owns the magnitudes of one diagram and redraws it on request.
//
// Setters replace a whole group of three magnitudes and then call the
// invalidation hook, which is how a host learns that it should schedule a
// redraw. Draw is the redraw itself: render now, given the current state.
//
// A View is not safe for concurrent use. Confine it to the goroutine that
// runs the host's drawing loop.
type View struct {
	set        Set
	invalidate func()
	opts       []Option
}

// ViewOption configures a View during creation.
type ViewOption func(*View)

// WithInvalidate sets the hook called after every setter.
func WithInvalidate(fn func()) ViewOption {
	return func(v *View) {
		v.invalidate = fn
	}
}

// WithRenderOptions sets the options passed to Render on every draw.
func WithRenderOptions(opts ...Option) ViewOption {
	return func(v *View) {
		v.opts = append(v.opts[:0:0], opts...)
	}
}

// NewView creates a View with every magnitude at zero.
func NewView(opts ...ViewOption) *View {
	v := &View{}
	for _, opt := range opts {
		if opt != nil {
			opt(v)
		}
	}
	return v
}

// SetVoltageMagnitudes replaces the three voltage magnitudes and requests a
// redraw.
func (v *View) SetVoltageMagnitudes(r, y, b float64) {
	v.set.Voltage = T(r, y, b)
	v.invalidated()
}

// SetCurrentMagnitudes replaces the three current magnitudes and requests a
// redraw.
func (v *View) SetCurrentMagnitudes(r, y, b float64) {
	v.set.Current = T(r, y, b)
	v.invalidated()
}

// Magnitudes returns the current magnitudes.
func (v *View) Magnitudes() Set {
	return v.set
}

// Commands renders the current state for a width x height surface.
func (v *View) Commands(width, height int) []Command {
	return Render(width, height, v.set.Voltage, v.set.Current, v.opts...)
}

// Draw renders the current state at the surface's size and replays it onto
// s. Surfaces implementing Flusher are flushed afterwards.
func (v *View) Draw(s Surface) error {
	w, h := s.Size()
	if err := Replay(v.Commands(w, h), s); err != nil {
		return err
	}
	if f, ok := s.(Flusher); ok {
		return f.Flush()
	}
	return nil
}

func (v *View) invalidated() {
	if v.invalidate != nil {
		v.invalidate()
	}
}
