// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command phasordemo renders a three-phase phasor diagram.
//
// Usage:
//
//	phasordemo -v 230,230,230 -i 5,5,5 -output diagram.png
//	phasordemo -config diagram.json -target recording
//	phasordemo -v 230,231,229 -list
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/phasor"
	"github.com/gogpu/phasor/internal/config"
	"github.com/gogpu/phasor/target"

	_ "github.com/gogpu/phasor/surface/canvas"
	_ "github.com/gogpu/phasor/surface/display"
	_ "github.com/gogpu/phasor/surface/record"
	_ "github.com/gogpu/phasor/surface/terminal"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("phasordemo", flag.ContinueOnError)
	fs.Int("width", 800, "image width")
	fs.Int("height", 600, "image height")
	fs.String("output", "phasor.png", "output file")
	fs.String("target", "png", "render target (see -targets)")
	fs.String("v", "", "voltage magnitudes r,y,b")
	fs.String("i", "", "current magnitudes r,y,b")
	var (
		cfgPath = fs.String("config", "", "JSON config file")
		list    = fs.Bool("list", false, "print draw commands instead of rendering")
		targets = fs.Bool("targets", false, "print registered targets")
		debug   = fs.Bool("debug", false, "enable debug logging")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *debug {
		phasor.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if *targets {
		available := map[string]bool{}
		for _, n := range target.Available() {
			available[n] = true
		}
		for _, n := range target.List() {
			state := "unavailable"
			if available[n] {
				state = "available"
			}
			fmt.Fprintf(stdout, "%-10s %s\n", n, state)
		}
		return nil
	}

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			return err
		}
	}
	// Explicit flags win over the config file.
	cfg, err := config.Merge(fs, cfg, *cfgPath == "")
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	view := phasor.NewView(phasor.WithRenderOptions(cfg.RenderOptions()...))
	view.SetVoltageMagnitudes(cfg.Voltage[0], cfg.Voltage[1], cfg.Voltage[2])
	view.SetCurrentMagnitudes(cfg.Current[0], cfg.Current[1], cfg.Current[2])

	if *list {
		for _, cmd := range view.Commands(cfg.Width, cfg.Height) {
			fmt.Fprintln(stdout, describe(cmd))
		}
		return nil
	}

	t, err := target.OpenByName(cfg.Target, target.Options{Width: cfg.Width, Height: cfg.Height})
	if err != nil {
		return err
	}
	return show(view, t, cfg.Output)
}

// show draws view on t, then saves file targets to output or keeps
// interactive targets up until dismissed. t is closed on return.
func show(view *phasor.View, t target.Target, output string) (err error) {
	defer func() {
		if cerr := t.Close(); err == nil {
			err = cerr
		}
	}()

	if err := view.Draw(t); err != nil {
		return err
	}

	if s, ok := t.(target.Saver); ok {
		if err := s.Save(output); err != nil {
			return err
		}
		log.Printf("Diagram saved to %s\n", output)
		return nil
	}
	if w, ok := t.(target.Waiter); ok {
		return w.Wait(func() error { return view.Draw(t) })
	}
	return nil
}

// describe formats a command as one line of -list output.
func describe(cmd phasor.Command) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-6s", cmd.Type())
	switch c := cmd.(type) {
	case phasor.LineCommand:
		fmt.Fprintf(&b, " %-7s (%g,%g) -> (%g,%g)", c.Tag, c.From.X, c.From.Y, c.To.X, c.To.Y)
	case phasor.CircleCommand:
		fmt.Fprintf(&b, " %-7s (%g,%g) r=%g", c.Tag, c.Center.X, c.Center.Y, c.Radius)
	case phasor.TextCommand:
		fmt.Fprintf(&b, " %-7s (%g,%g) %q", c.Tag, c.At.X, c.At.Y, c.Text)
	}
	return b.String()
}
