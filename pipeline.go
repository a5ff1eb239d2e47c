package julia

import (
	"context"
	"fmt"
	"path/filepath"
	"time"
)

// Output names one bitmap produced by Render and the base field the mask is
// composited onto.
type Output struct {
	Path string
	Base Field
}

// Default output file names.
const (
	FlatOutputName     = "julia1.bmp"
	GradientOutputName = "julia2.bmp"
)

// DefaultOutputs returns the two standard outputs in dir: julia1.bmp over a
// flat Teal base and julia2.bmp over a DiagonalGradient.
func DefaultOutputs(dir string) []Output {
	return []Output{
		{Path: filepath.Join(dir, FlatOutputName), Base: Flat{Color: Teal}},
		{Path: filepath.Join(dir, GradientOutputName), Base: DiagonalGradient{}},
	}
}

// Render computes the mask once and writes one bitmap per output.
//
// The stages run strictly in order: validate, allocate mask and color
// image, fill the mask, then for each output fill the base, composite and
// encode. Any error aborts the remaining stages. Validation and allocation
// failures happen before any file is created. ctx is checked between
// stages; a running stage is never interrupted.
//
// If outputs is empty, DefaultOutputs(".") is used.
func Render(ctx context.Context, cfg Config, outputs []Output) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if len(outputs) == 0 {
		outputs = DefaultOutputs(".")
	}
	log := Logger()

	img, err := newColorImage(cfg.Width, cfg.Height, cfg.maxPixels())
	if err != nil {
		return fmt.Errorf("color image: %w", err)
	}
	defer img.Release()

	mask, err := newImage(cfg.Width, cfg.Height, cfg.maxPixels())
	if err != nil {
		return fmt.Errorf("mask: %w", err)
	}
	defer mask.Release()

	log.Debug("julia: allocated", "width", cfg.Width, "height", cfg.Height, "bytes", 4*cfg.Width*cfg.Height)

	if err := ctx.Err(); err != nil {
		return err
	}
	start := time.Now()
	FillMask(mask, cfg)
	log.Debug("julia: mask", "elapsed", time.Since(start), "iterations", cfg.MaxIterations)

	for _, out := range outputs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := renderOutput(mask, img, out); err != nil {
			return err
		}
		log.Info("julia: wrote", "path", out.Path, "width", cfg.Width, "height", cfg.Height)
	}
	return nil
}

// renderOutput fills img with out.Base, applies mask and encodes the result.
func renderOutput(mask *Image, img *ColorImage, out Output) error {
	base := out.Base
	if base == nil {
		base = Flat{Color: Teal}
	}
	start := time.Now()
	base.Apply(img)
	CompositeMask(mask, img)
	if err := img.SaveBMP(out.Path); err != nil {
		return err
	}
	Logger().Debug("julia: output", "path", out.Path, "elapsed", time.Since(start))
	return nil
}
