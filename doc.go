// Package julia renders quadratic Julia-set escape-time images.
//
// # Overview
//
// The package evaluates the map z = z² + c over a pixel grid, turns each
// pixel's escape time into an 8-bit brightness mask, multiplies that mask
// into a planar RGB base field and writes the result as a 24-bit bitmap.
//
// # Quick Start
//
//	import "github.com/gogpu/julia"
//
//	cfg := julia.NewConfig(julia.WithSize(800, 600), julia.WithMagnification(2))
//	err := julia.Render(context.Background(), cfg, julia.DefaultOutputs("out"))
//
// Render writes julia1.bmp (flat teal base) and julia2.bmp (diagonal
// red-to-blue gradient base), both sharing one computed mask.
//
// # Images
//
// Image is a single 8-bit plane and ColorImage holds three planes that are
// allocated and released as a unit. Allocation failure is reported as an
// error wrapping ErrAllocation; no partially allocated image is ever
// returned. Release hands buffers back to an internal pool for reuse.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right, Y increases down
//   - Samples are stored row-major: index = y*width + x
//
// # Logging
//
// The package is silent by default. Call SetLogger to receive stage timings
// (Debug) and written outputs (Info).
package julia

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
