// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package viewer

import (
	"errors"
	"image/color"
	"testing"

	"github.com/gogpu/phasor"
	"github.com/gogpu/phasor/surface/canvas"
)

func TestFrameRendersOnce(t *testing.T) {
	v := New()
	t.Cleanup(func() { _ = v.Close() })

	img, changed, err := v.Frame(200, 100)
	if err != nil {
		t.Fatalf("Frame() = %v", err)
	}
	if !changed || v.Renders() != 1 {
		t.Fatalf("first Frame() changed=%v renders=%d, want true 1", changed, v.Renders())
	}
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 100 {
		t.Errorf("Frame() bounds = %v, want 200x100", b)
	}

	if _, changed, _ := v.Frame(200, 100); changed {
		t.Error("Frame() without invalidation should not re-render")
	}
	if v.Renders() != 1 {
		t.Errorf("Renders() = %d, want 1", v.Renders())
	}
}

func TestFrameAfterSetter(t *testing.T) {
	v := New()
	t.Cleanup(func() { _ = v.Close() })
	if _, _, err := v.Frame(200, 100); err != nil {
		t.Fatal(err)
	}

	v.View().SetCurrentMagnitudes(1, 2, 3)
	if !v.Dirty() {
		t.Fatal("setter did not invalidate the viewer")
	}
	if _, changed, _ := v.Frame(200, 100); !changed {
		t.Error("Frame() after a setter should re-render")
	}
	if v.Dirty() {
		t.Error("Frame() should clear the dirty flag")
	}
}

func TestFrameResize(t *testing.T) {
	v := New()
	t.Cleanup(func() { _ = v.Close() })
	if _, _, err := v.Frame(200, 100); err != nil {
		t.Fatal(err)
	}

	img, changed, err := v.Frame(300, 300)
	if err != nil || !changed {
		t.Fatalf("Frame() after resize = %v, changed %v", err, changed)
	}
	if b := img.Bounds(); b.Dx() != 300 || b.Dy() != 300 {
		t.Errorf("bounds = %v, want 300x300", b)
	}
	// Axes cross at the new center.
	if c := img.RGBAAt(150, 150); c == (color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}) {
		t.Error("center pixel is blank after resize")
	}
}

func TestFrameInvalidSize(t *testing.T) {
	v := New()
	if _, _, err := v.Frame(0, 10); !errors.Is(err, canvas.ErrInvalidSize) {
		t.Errorf("Frame(0, 10) = %v, want ErrInvalidSize", err)
	}
	if err := v.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
}

func TestScale(t *testing.T) {
	v := New()
	v.View().SetVoltageMagnitudes(100, 200, 300)
	v.View().SetCurrentMagnitudes(1, 2, 3)

	v.Scale(phasor.Voltage, 2)
	v.Scale(phasor.Current, 0.5)

	got := v.View().Magnitudes()
	if got.Voltage != phasor.T(200, 400, 600) {
		t.Errorf("Voltage = %v, want {200 400 600}", got.Voltage)
	}
	if got.Current != phasor.T(0.5, 1, 1.5) {
		t.Errorf("Current = %v, want {0.5 1 1.5}", got.Current)
	}
}
