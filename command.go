// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package phasor

import "github.com/gogpu/gg"

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdLine   CommandType = iota // Stroke a straight line
	CmdCircle                    // Stroke a circle outline
	CmdText                      // Draw a text label
)

var commandTypeNames = [...]string{
	CmdLine:   "Line",
	CmdCircle: "Circle",
	CmdText:   "Text",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is a single drawing operation of a diagram.
// Commands are plain values; a list can be replayed any number of times.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// Tags name the element a command draws. Phasor commands are tagged with
// the phasor name ("VR", "IB", ...).
const (
	TagAxisX   = "axis-x"
	TagAxisY   = "axis-y"
	TagNeutral = "neutral"
)

// LineCommand strokes a line from From to To.
type LineCommand struct {
	From, To gg.Point
	Style    Style
	Tag      string
}

// Type implements Command.
func (LineCommand) Type() CommandType { return CmdLine }

// CircleCommand strokes a circle outline.
type CircleCommand struct {
	Center gg.Point
	Radius float64
	Style  Style
	Tag    string
}

// Type implements Command.
func (CircleCommand) Type() CommandType { return CmdCircle }

// TextCommand draws Text with its baseline origin at At.
type TextCommand struct {
	Text  string
	At    gg.Point
	Style Style
	Tag   string
}

// Type implements Command.
func (TextCommand) Type() CommandType { return CmdText }
