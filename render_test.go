// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package phasor

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/gogpu/gg"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

// findLine returns the line command tagged tag.
func findLine(t *testing.T, cmds []Command, tag string) LineCommand {
	t.Helper()
	for _, c := range cmds {
		if l, ok := c.(LineCommand); ok && l.Tag == tag {
			return l
		}
	}
	t.Fatalf("no line tagged %q", tag)
	return LineCommand{}
}

// findText returns the text command tagged tag.
func findText(t *testing.T, cmds []Command, tag string) TextCommand {
	t.Helper()
	for _, c := range cmds {
		if tc, ok := c.(TextCommand); ok && tc.Tag == tag {
			return tc
		}
	}
	t.Fatalf("no text tagged %q", tag)
	return TextCommand{}
}

func TestRenderShape(t *testing.T) {
	cmds := Render(400, 300, T(230, 231, 229), T(5, 4.8, 5.1))
	if len(cmds) != commandCount {
		t.Fatalf("len(Render()) = %d, want %d", len(cmds), commandCount)
	}

	want := []struct {
		typ CommandType
		tag string
	}{
		{CmdLine, TagAxisX},
		{CmdLine, TagAxisY},
		{CmdLine, "VR"}, {CmdText, "VR"},
		{CmdLine, "VY"}, {CmdText, "VY"},
		{CmdLine, "VB"}, {CmdText, "VB"},
		{CmdLine, "IR"}, {CmdText, "IR"},
		{CmdLine, "IY"}, {CmdText, "IY"},
		{CmdLine, "IB"}, {CmdText, "IB"},
		{CmdCircle, TagNeutral},
	}
	for i, w := range want {
		if got := cmds[i].Type(); got != w.typ {
			t.Errorf("cmds[%d].Type() = %v, want %v", i, got, w.typ)
		}
		var tag string
		switch c := cmds[i].(type) {
		case LineCommand:
			tag = c.Tag
		case TextCommand:
			tag = c.Tag
		case CircleCommand:
			tag = c.Tag
		}
		if tag != w.tag {
			t.Errorf("cmds[%d] tag = %q, want %q", i, tag, w.tag)
		}
	}
}

func TestRenderAxesAndNeutral(t *testing.T) {
	cmds := Render(400, 300, Triple{}, Triple{})

	x := findLine(t, cmds, TagAxisX)
	if x.From != gg.Pt(0, 150) || x.To != gg.Pt(400, 150) {
		t.Errorf("x axis = %v -> %v, want (0,150) -> (400,150)", x.From, x.To)
	}
	y := findLine(t, cmds, TagAxisY)
	if y.From != gg.Pt(200, 0) || y.To != gg.Pt(200, 300) {
		t.Errorf("y axis = %v -> %v, want (200,0) -> (200,300)", y.From, y.To)
	}

	c, ok := cmds[len(cmds)-1].(CircleCommand)
	if !ok {
		t.Fatalf("last command = %T, want CircleCommand", cmds[len(cmds)-1])
	}
	if c.Center != gg.Pt(200, 150) || c.Radius != 5 {
		t.Errorf("neutral = %v r=%v, want (200,150) r=5", c.Center, c.Radius)
	}
}

func TestRenderConcreteScenario(t *testing.T) {
	cmds := Render(400, 300, T(230, 0, 0), T(5, 0, 0))

	vr := findLine(t, cmds, "VR")
	if vr.From != gg.Pt(200, 150) {
		t.Errorf("VR origin = %v, want (200,150)", vr.From)
	}
	if vr.To != gg.Pt(312.5, 150) {
		t.Errorf("VR end = %v, want (312.5,150)", vr.To)
	}
	if got := findText(t, cmds, "VR").Text; got != "VR (230.0∠0.0°)" {
		t.Errorf("VR label = %q, want %q", got, "VR (230.0∠0.0°)")
	}

	ir := findLine(t, cmds, "IR")
	if ir.To != gg.Pt(256.25, 150) {
		t.Errorf("IR end = %v, want (256.25,150)", ir.To)
	}
	if got := findText(t, cmds, "IR").Text; got != "IR (5.0∠0.0°)" {
		t.Errorf("IR label = %q, want %q", got, "IR (5.0∠0.0°)")
	}
}

func TestRenderMagnitudeOnlyAffectsLabels(t *testing.T) {
	a := Render(640, 480, T(1, 2, 3), T(4, 5, 6))
	b := Render(640, 480, T(-100, 1e9, 0), T(0.5, -7, 42))

	for _, tag := range []string{"VR", "VY", "VB", "IR", "IY", "IB"} {
		la, lb := findLine(t, a, tag), findLine(t, b, tag)
		if la.To != lb.To {
			t.Errorf("%s end moved with magnitude: %v vs %v", tag, la.To, lb.To)
		}
		if findText(t, a, tag).Text == findText(t, b, tag).Text {
			t.Errorf("%s label did not change with magnitude", tag)
		}
	}
}

func TestRenderVoltageAngles(t *testing.T) {
	tests := []struct {
		width, height int
	}{
		{400, 300},
		{300, 400},
		{1920, 1080},
		{7, 5},
	}
	for _, tt := range tests {
		cmds := Render(tt.width, tt.height, T(1, 1, 1), T(1, 1, 1))
		g := NewGeometry(tt.width, tt.height)

		vr := findLine(t, cmds, "VR").To
		if !near(vr.X, g.Center.X+g.Radius) || !near(vr.Y, g.Center.Y) {
			t.Errorf("%dx%d: VR end = %v, want (%v,%v)", tt.width, tt.height, vr, g.Center.X+g.Radius, g.Center.Y)
		}
		vy := findLine(t, cmds, "VY").To
		if vy.Y <= g.Center.Y {
			t.Errorf("%dx%d: VY end y = %v, want below center %v", tt.width, tt.height, vy.Y, g.Center.Y)
		}
		vb := findLine(t, cmds, "VB").To
		if vb.Y >= g.Center.Y {
			t.Errorf("%dx%d: VB end y = %v, want above center %v", tt.width, tt.height, vb.Y, g.Center.Y)
		}
		for _, p := range []gg.Point{vy, vb} {
			if !near(p.Distance(g.Center), g.Radius) {
				t.Errorf("%dx%d: voltage end %v not on radius %v", tt.width, tt.height, p, g.Radius)
			}
		}
	}
}

func TestRenderCurrentsHorizontal(t *testing.T) {
	for _, size := range [][2]int{{400, 300}, {0, 0}, {1, 1}, {333, 777}} {
		for _, m := range []Triple{{}, T(1, 2, 3), T(-5, 1e12, -1e-9)} {
			cmds := Render(size[0], size[1], T(1, 1, 1), m)
			g := NewGeometry(size[0], size[1])
			for _, tag := range []string{"IR", "IY", "IB"} {
				l := findLine(t, cmds, tag)
				if l.To.Y != g.Center.Y {
					t.Errorf("%v %v: %s end y = %v, want %v", size, m, tag, l.To.Y, g.Center.Y)
				}
			}
		}
	}
}

func TestRenderCurrentCosineSign(t *testing.T) {
	cmds := Render(400, 300, Triple{}, Triple{})
	ir := findLine(t, cmds, "IR").To
	iy := findLine(t, cmds, "IY").To
	ib := findLine(t, cmds, "IB").To

	if ir.X <= 200 {
		t.Errorf("IR end x = %v, want right of center", ir.X)
	}
	// cos(±120°) = -0.5 at radius 56.25.
	for name, p := range map[string]gg.Point{"IY": iy, "IB": ib} {
		if !near(p.X, 200-28.125) {
			t.Errorf("%s end x = %v, want %v", name, p.X, 200-28.125)
		}
	}
}

func TestRenderZeroSurface(t *testing.T) {
	cmds := Render(0, 0, T(230, 231, 229), T(5, 5, 5))
	for _, tag := range []string{"VR", "VY", "VB", "IR", "IY", "IB"} {
		l := findLine(t, cmds, tag)
		if l.From != (gg.Point{}) || !near(l.To.X, 0) || !near(l.To.Y, 0) {
			t.Errorf("%s = %v -> %v, want collapsed at origin", tag, l.From, l.To)
		}
	}
}

func TestRenderZeroMagnitudes(t *testing.T) {
	cmds := Render(400, 300, Triple{}, Triple{})
	for _, tag := range []string{"VR", "VY", "VB", "IR", "IY", "IB"} {
		got := findText(t, cmds, tag).Text
		if !strings.HasPrefix(got, tag+" (0.0∠") {
			t.Errorf("%s label = %q, want zero magnitude", tag, got)
		}
	}
}

func TestRenderLabelPlacement(t *testing.T) {
	cmds := Render(400, 300, Triple{}, Triple{})

	tests := []struct {
		tag string
		dx  float64
	}{
		{"VR", -10}, // right-pointing: pulled back
		{"VY", 20},
		{"VB", 20},
		{"IR", 10},
		{"IY", 10},
		{"IB", 10},
	}
	for _, tt := range tests {
		end := findLine(t, cmds, tt.tag).To
		at := findText(t, cmds, tt.tag).At
		if !near(at.X-end.X, tt.dx) {
			t.Errorf("%s label dx = %v, want %v", tt.tag, at.X-end.X, tt.dx)
		}
		if !near(end.Y-at.Y, 5) {
			t.Errorf("%s label lift = %v, want 5", tt.tag, end.Y-at.Y)
		}
	}
}

func TestRenderDegenerateLabelBiasRight(t *testing.T) {
	cmds := Render(0, 0, Triple{}, Triple{})
	at := findText(t, cmds, "VR").At
	if at.X != 20 {
		t.Errorf("VR label x on zero radius = %v, want 20", at.X)
	}
}

func TestRenderDeterministic(t *testing.T) {
	a := Render(800, 600, T(1.5, 2.5, 3.5), T(0.1, 0.2, 0.3))
	b := Render(800, 600, T(1.5, 2.5, 3.5), T(0.1, 0.2, 0.3))
	if !reflect.DeepEqual(a, b) {
		t.Error("Render() is not deterministic")
	}
}

func TestRenderNonFinitePassesThrough(t *testing.T) {
	cmds := Render(400, 300, T(math.NaN(), math.Inf(1), math.Inf(-1)), Triple{})
	if len(cmds) != commandCount {
		t.Fatalf("len(Render()) = %d, want %d", len(cmds), commandCount)
	}
	if got := findText(t, cmds, "VY").Text; got != "VY (Infinity∠-120.0°)" {
		t.Errorf("VY label = %q", got)
	}
}

func TestRenderOptions(t *testing.T) {
	red := gg.RGB(1, 0, 0)
	cmds := Render(400, 300, Triple{}, Triple{},
		WithColor(red),
		WithStrokeWidth(4),
		WithTextSize(12),
		WithMarkerRadius(8),
		nil,
	)

	l := findLine(t, cmds, "VR")
	if l.Style.Color != red || l.Style.StrokeWidth != 4 || l.Style.TextSize != 12 {
		t.Errorf("style = %+v, want red/4/12", l.Style)
	}
	c := cmds[len(cmds)-1].(CircleCommand)
	if c.Radius != 8 {
		t.Errorf("marker radius = %v, want 8", c.Radius)
	}

	s := DefaultStyle()
	s.LabelLift = 0
	cmds = Render(400, 300, Triple{}, Triple{}, WithStyle(s))
	if at, end := findText(t, cmds, "IR").At, findLine(t, cmds, "IR").To; at.Y != end.Y {
		t.Errorf("IR label y = %v, want %v with zero lift", at.Y, end.Y)
	}
}

func TestCommandTypeString(t *testing.T) {
	tests := []struct {
		c    CommandType
		want string
	}{
		{CmdLine, "Line"},
		{CmdCircle, "Circle"},
		{CmdText, "Text"},
		{CommandType(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("CommandType(%d).String() = %q, want %q", tt.c, got, tt.want)
		}
	}
}
