// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package phasor

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"
)

// Surface is a drawing target a diagram can be replayed onto.
//
// Implementations live under surface/: a gg raster canvas, a gg recording,
// a terminal and a small embedded display. Surfaces are not safe for
// concurrent use.
type Surface interface {
	// Size returns the current surface size in surface units.
	Size() (width, height int)

	// DrawLine strokes a straight line from p1 to p2.
	DrawLine(p1, p2 gg.Point, style Style) error

	// DrawText draws s with its baseline origin at at.
	DrawText(s string, at gg.Point, style Style) error

	// DrawCircle strokes a circle outline.
	DrawCircle(center gg.Point, radius float64, style Style) error
}

// Flusher is implemented by surfaces that buffer drawing and need an
// explicit step to present it.
type Flusher interface {
	Flush() error
}

// ErrUnknownCommand is returned by Replay for command types it cannot issue.
var ErrUnknownCommand = errors.New("phasor: unknown command")

// Replay issues cmds on s in order. It stops at the first surface error and
// returns it wrapped with the failing command's index and type.
func Replay(cmds []Command, s Surface) error {
	for i, cmd := range cmds {
		var err error
		switch c := cmd.(type) {
		case LineCommand:
			err = s.DrawLine(c.From, c.To, c.Style)
		case CircleCommand:
			err = s.DrawCircle(c.Center, c.Radius, c.Style)
		case TextCommand:
			err = s.DrawText(c.Text, c.At, c.Style)
		default:
			err = ErrUnknownCommand
		}
		if err != nil {
			Logger().Warn("phasor: replay failed", "index", i, "err", err)
			return fmt.Errorf("phasor: replay command %d (%s): %w", i, typeName(cmd), err)
		}
	}
	Logger().Debug("phasor: replayed", "commands", len(cmds))
	return nil
}

func typeName(cmd Command) string {
	if cmd == nil {
		return "nil"
	}
	return cmd.Type().String()
}
