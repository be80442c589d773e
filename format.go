// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package phasor

import (
	"math"
	"strconv"
	"strings"
)

// FormatLabel returns the label text for a phasor: "<name> (<m>∠<a>°)".
// Both numbers are formatted with FormatMagnitude, so angles read
// "0.0", "-120.0" and "120.0".
func FormatLabel(name string, magnitude, angle float64) string {
	var b strings.Builder
	b.Grow(len(name) + 24)
	b.WriteString(name)
	b.WriteString(" (")
	b.WriteString(FormatMagnitude(magnitude))
	b.WriteString("∠")
	b.WriteString(FormatMagnitude(angle))
	b.WriteString("°)")
	return b.String()
}

// FormatMagnitude formats v with the shortest digits that round-trip and
// always at least one fractional digit. Values with absolute value in
// [1e-3, 1e7), and zero, use plain decimal notation ("0.0", "230.5").
// Everything else uses an exponent: "1.0E7", "2.5E-4".
func FormatMagnitude(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}

	if a := math.Abs(v); v == 0 || (a >= 1e-3 && a < 1e7) {
		s := strconv.FormatFloat(v, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}

	s := strconv.FormatFloat(v, 'e', -1, 64)
	mant, exp, _ := strings.Cut(s, "e")
	if !strings.Contains(mant, ".") {
		mant += ".0"
	}
	n, _ := strconv.Atoi(exp)
	return mant + "E" + strconv.Itoa(n)
}
