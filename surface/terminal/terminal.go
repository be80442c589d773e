// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package terminal draws phasor diagrams on a character terminal with tcell.
//
// One surface unit is one column wide. Terminal cells are roughly twice as
// tall as they are wide, so by default one row spans two surface units; the
// diagram then keeps its proportions. Lines are plotted with slope glyphs,
// labels are written cell by cell.
//
// The package registers the "terminal" target, available when standard
// output is a terminal.
package terminal

import (
	"fmt"
	"math"
	"os"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"
	"golang.org/x/text/width"

	"github.com/gogpu/gg"
	"github.com/gogpu/phasor"
	"github.com/gogpu/phasor/target"
)

func init() {
	target.Register("terminal", 1, func(target.Options) (target.Target, error) {
		s, err := tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("terminal: %w", err)
		}
		if err := s.Init(); err != nil {
			return nil, fmt.Errorf("terminal: init: %w", err)
		}
		return New(s, Owned()), nil
	}, func() bool {
		return term.IsTerminal(int(os.Stdout.Fd()))
	})
}

// DefaultCellAspect is the height of a terminal cell in surface units.
const DefaultCellAspect = 2

// Terminal is a phasor.Surface backed by a tcell.Screen.
type Terminal struct {
	screen tcell.Screen
	aspect float64
	owned  bool
	closed bool
}

// Ensure Terminal implements the target interfaces.
var (
	_ target.Target = (*Terminal)(nil)
	_ target.Waiter = (*Terminal)(nil)
)

// Option configures a Terminal.
type Option func(*Terminal)

// WithCellAspect sets how many surface units one row spans.
func WithCellAspect(a float64) Option {
	return func(t *Terminal) {
		if a > 0 {
			t.aspect = a
		}
	}
}

// Owned hands the screen to the Terminal: Close finalizes it.
func Owned() Option {
	return func(t *Terminal) {
		t.owned = true
	}
}

// New wraps an initialized screen. Unless Owned is given the caller keeps
// ownership of the screen and Close does not finalize it.
func New(s tcell.Screen, opts ...Option) *Terminal {
	t := &Terminal{screen: s, aspect: DefaultCellAspect}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Screen returns the wrapped screen.
func (t *Terminal) Screen() tcell.Screen {
	return t.screen
}

// Size implements phasor.Surface. The height is in surface units, not rows.
func (t *Terminal) Size() (int, int) {
	cols, rows := t.screen.Size()
	return cols, int(float64(rows) * t.aspect)
}

// DrawLine implements phasor.Surface.
func (t *Terminal) DrawLine(p1, p2 gg.Point, style phasor.Style) error {
	x0, y0 := t.cell(p1)
	x1, y1 := t.cell(p2)
	glyph := lineGlyph(x1-x0, y1-y0)
	st := cellStyle(style)

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := sign(x1-x0), sign(y1-y0)
	e := dx + dy
	for {
		t.screen.SetContent(x0, y0, glyph, nil, st)
		if x0 == x1 && y0 == y1 {
			return nil
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// DrawCircle implements phasor.Surface.
func (t *Terminal) DrawCircle(center gg.Point, radius float64, style phasor.Style) error {
	st := cellStyle(style)
	cx, cy := t.cell(center)
	if radius < 1 {
		t.screen.SetContent(cx, cy, '+', nil, st)
		return nil
	}
	steps := int(math.Ceil(2 * math.Pi * radius))
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		x, y := t.cell(gg.Pt(center.X+radius*math.Cos(a), center.Y+radius*math.Sin(a)))
		t.screen.SetContent(x, y, 'o', nil, st)
	}
	return nil
}

// DrawText implements phasor.Surface. Wide runes take two columns.
func (t *Terminal) DrawText(s string, at gg.Point, style phasor.Style) error {
	st := cellStyle(style)
	x, y := t.cell(at)
	for _, r := range s {
		t.screen.SetContent(x, y, r, nil, st)
		x += runeColumns(r)
	}
	return nil
}

// Flush shows the drawn cells.
func (t *Terminal) Flush() error {
	t.screen.Show()
	return nil
}

// Wait keeps the diagram on screen until a key is pressed. A resize clears
// the screen and calls redraw, which typically draws the view again at the
// new size.
func (t *Terminal) Wait(redraw func() error) error {
	for {
		switch t.screen.PollEvent().(type) {
		case nil:
			// Screen finalized.
			return nil
		case *tcell.EventKey:
			return nil
		case *tcell.EventResize:
			t.screen.Clear()
			t.screen.Sync()
			if redraw != nil {
				if err := redraw(); err != nil {
					return err
				}
			}
		}
	}
}

// Close finalizes the screen if the Terminal owns it.
func (t *Terminal) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true
	if t.owned {
		t.screen.Fini()
	}
	return nil
}

// cell maps a surface point to a column and row.
func (t *Terminal) cell(p gg.Point) (int, int) {
	return int(math.Round(p.X)), int(math.Round(p.Y / t.aspect))
}

// cellStyle maps the diagram color to a foreground. Opaque black becomes
// the terminal's default foreground so diagrams stay visible on dark
// backgrounds.
func cellStyle(style phasor.Style) tcell.Style {
	c := style.Color
	if c == gg.Black {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(
		int32(math.Round(c.R*255)),
		int32(math.Round(c.G*255)),
		int32(math.Round(c.B*255)),
	))
}

// lineGlyph picks a character for a line with the given cell deltas.
// Rows grow downward, so a positive dy with a positive dx is '\'.
func lineGlyph(dx, dy int) rune {
	adx, ady := abs(dx), abs(dy)
	switch {
	case ady*2 <= adx:
		return '-'
	case adx*2 <= ady:
		return '|'
	case (dx > 0) == (dy > 0):
		return '\\'
	default:
		return '/'
	}
}

func runeColumns(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		return 1
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
