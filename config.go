package julia

import (
	"fmt"
	"math"
)

// Defaults used by DefaultConfig.
const (
	DefaultSize          = 1000
	DefaultMagnification = 2.0
	DefaultMaxIterations = 1000
	DefaultEscapeRadius  = 2.0
	DefaultLevels        = 256
	DefaultGamma         = 0.6
)

// DefaultConstant is the Julia parameter c used unless overridden.
var DefaultConstant = Complex{Re: -0.8, Im: 0.156}

// Config describes one render.
//
// MaxIterations bounds the escape loop and Levels is the number of output
// brightness steps; they are independent. Workers > 1 evaluates the mask
// in row bands on that many goroutines.
type Config struct {
	Width         int
	Height        int
	Magnification float64

	C             Complex
	MaxIterations int
	EscapeRadius  float64

	Levels int
	Gamma  float64

	Workers   int
	MaxPixels int
}

// DefaultConfig returns the reference settings: a 1000x1000 grid at
// magnification 2, c = -0.8+0.156i, 1000 iterations, escape radius 2,
// 256 levels and gamma 0.6, evaluated sequentially.
func DefaultConfig() Config {
	return Config{
		Width:         DefaultSize,
		Height:        DefaultSize,
		Magnification: DefaultMagnification,
		C:             DefaultConstant,
		MaxIterations: DefaultMaxIterations,
		EscapeRadius:  DefaultEscapeRadius,
		Levels:        DefaultLevels,
		Gamma:         DefaultGamma,
		Workers:       1,
		MaxPixels:     DefaultMaxPixels,
	}
}

// NewConfig returns DefaultConfig with opts applied in order.
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Validate checks the configuration.
//
// Non-positive (or non-finite) width, height or magnification return an
// error wrapping ErrInvalidDimensions; other out-of-range settings wrap
// ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0:
		return fmt.Errorf("%w: width %d", ErrInvalidDimensions, c.Width)
	case c.Height <= 0:
		return fmt.Errorf("%w: height %d", ErrInvalidDimensions, c.Height)
	case !(c.Magnification > 0) || math.IsInf(c.Magnification, 0):
		return fmt.Errorf("%w: magnification %v", ErrInvalidDimensions, c.Magnification)
	case c.MaxIterations < 1:
		return fmt.Errorf("%w: max iterations %d", ErrInvalidConfig, c.MaxIterations)
	case !(c.EscapeRadius > 0):
		return fmt.Errorf("%w: escape radius %v", ErrInvalidConfig, c.EscapeRadius)
	case c.Levels < 2 || c.Levels > DefaultLevels:
		return fmt.Errorf("%w: levels %d not in [2, %d]", ErrInvalidConfig, c.Levels, DefaultLevels)
	case !(c.Gamma > 0) || math.IsInf(c.Gamma, 0):
		return fmt.Errorf("%w: gamma %v", ErrInvalidConfig, c.Gamma)
	case c.Workers < 0:
		return fmt.Errorf("%w: workers %d", ErrInvalidConfig, c.Workers)
	}
	return nil
}

// maxPixels returns the effective allocation limit.
func (c Config) maxPixels() int {
	if c.MaxPixels <= 0 {
		return DefaultMaxPixels
	}
	return c.MaxPixels
}
