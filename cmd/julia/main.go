// Command julia renders the Julia set for c = -0.8+0.156i into two bitmaps.
//
// Usage:
//
//	julia [flags] [width height zoom]
//
// Positional arguments, when given, override -width, -height and -zoom.
// The command writes julia1.bmp (flat base) and julia2.bmp (gradient base)
// into -out.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"

	"github.com/pkg/profile"

	"github.com/gogpu/julia"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("julia", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		width      = fs.Int("width", julia.DefaultSize, "image width in pixels")
		height     = fs.Int("height", julia.DefaultSize, "image height in pixels")
		zoom       = fs.Float64("zoom", julia.DefaultMagnification, "magnification")
		iterations = fs.Int("iter", julia.DefaultMaxIterations, "maximum escape iterations")
		workers    = fs.Int("workers", 1, "mask goroutines (0 = all cores)")
		base       = fs.String("color", julia.Teal.String(), "flat base color for julia1.bmp")
		outDir     = fs.String("out", ".", "output directory")
		lang       = fs.String("lang", os.Getenv("LANG"), "message language (en, ja)")
		verbose    = fs.Bool("v", false, "debug logging")
		cpuProfile = fs.String("cpuprofile", "", "write a CPU profile into this directory")
	)
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	p := newPrinter(*lang)

	if rest := fs.Args(); len(rest) > 0 {
		if err := parsePositional(rest, width, height, zoom); err != nil {
			p.Fprintf(stderr, msgInputErr, err)
			return exitUsage
		}
	}

	flat, err := julia.Hex(*base)
	if err != nil {
		p.Fprintf(stderr, msgInputErr, err)
		return exitUsage
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	julia.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
	defer julia.SetLogger(nil)

	if *cpuProfile != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(*cpuProfile), profile.Quiet).Stop()
	}

	cfg := julia.NewConfig(
		julia.WithSize(*width, *height),
		julia.WithMagnification(*zoom),
		julia.WithMaxIterations(*iterations),
		julia.WithWorkers(*workers),
	)
	if err := cfg.Validate(); err != nil {
		p.Fprintf(stderr, msgInputErr, err)
		return exitUsage
	}

	outputs := julia.DefaultOutputs(*outDir)
	outputs[0].Base = julia.Flat{Color: flat}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	p.Fprintf(stdout, msgRendering, cfg.Width, cfg.Height, cfg.Magnification, cfg.MaxIterations)
	if err := julia.Render(ctx, cfg, outputs); err != nil {
		if errors.Is(err, julia.ErrAllocation) {
			p.Fprintf(stderr, msgAllocErr, err)
		} else {
			p.Fprintf(stderr, msgFailed, err)
		}
		return exitError
	}
	for _, out := range outputs {
		p.Fprintf(stdout, msgWrote, out.Path)
	}
	return exitOK
}

// parsePositional reads "width height zoom" in that order; trailing values
// may be omitted.
func parsePositional(args []string, width, height *int, zoom *float64) error {
	if len(args) > 3 {
		return fmt.Errorf("expected at most 3 arguments, got %d", len(args))
	}
	for i, a := range args {
		switch i {
		case 0, 1:
			v, err := strconv.Atoi(a)
			if err != nil {
				return fmt.Errorf("argument %d: %w", i+1, err)
			}
			if i == 0 {
				*width = v
			} else {
				*height = v
			}
		case 2:
			v, err := strconv.ParseFloat(a, 64)
			if err != nil {
				return fmt.Errorf("argument 3: %w", err)
			}
			*zoom = v
		}
	}
	return nil
}
