// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command phasorview shows a live phasor diagram in a desktop window.
//
// Keys: Up/Down scale voltages, Right/Left scale currents, Q quits.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gogpu/phasor"
	"github.com/gogpu/phasor/internal/config"
	"github.com/gogpu/phasor/internal/viewer"
)

const scaleStep = 1.05

type game struct {
	v   *viewer.Viewer
	img *ebiten.Image
}

func (g *game) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyQ), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		g.v.Scale(phasor.Voltage, scaleStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		g.v.Scale(phasor.Voltage, 1/scaleStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		g.v.Scale(phasor.Current, scaleStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		g.v.Scale(phasor.Current, 1/scaleStep)
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	frame, changed, err := g.v.Frame(b.Dx(), b.Dy())
	if err != nil {
		log.Printf("phasorview: %v", err)
		return
	}
	if g.img == nil || g.img.Bounds() != frame.Bounds() {
		if g.img != nil {
			g.img.Deallocate()
		}
		g.img = ebiten.NewImage(b.Dx(), b.Dy())
		changed = true
	}
	if changed {
		g.img.WritePixels(frame.Pix)
	}
	screen.DrawImage(g.img, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func main() {
	flag.Int("width", 800, "initial window width")
	flag.Int("height", 600, "initial window height")
	flag.String("v", "230,230,230", "voltage magnitudes r,y,b")
	flag.String("i", "0,0,0", "current magnitudes r,y,b")
	var (
		cfgPath = flag.String("config", "", "JSON config file")
		debug   = flag.Bool("debug", false, "enable debug logging")
	)
	flag.Parse()

	if *debug {
		phasor.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			log.Fatal(err)
		}
	}
	// Explicit flags win over the config file.
	cfg, err := config.Merge(flag.CommandLine, cfg, *cfgPath == "")
	if err != nil {
		log.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	v := viewer.New(cfg.RenderOptions()...)
	defer v.Close()
	v.View().SetVoltageMagnitudes(cfg.Voltage[0], cfg.Voltage[1], cfg.Voltage[2])
	v.View().SetCurrentMagnitudes(cfg.Current[0], cfg.Current[1], cfg.Current[2])

	ebiten.SetWindowTitle("Phasor diagram (" + phasor.Version + ")")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(30)
	if err := ebiten.RunGame(&game{v: v}); err != nil {
		log.Fatal(err)
	}
}
