package julia

// Option configures a Config.
// Use functional options to override the reference settings.
//
// Example:
//
//	// Reference render
//	cfg := julia.NewConfig()
//
//	// Small, deeper, parallel render
//	cfg := julia.NewConfig(
//	    julia.WithSize(320, 240),
//	    julia.WithMaxIterations(5000),
//	    julia.WithWorkers(0),
//	)
type Option func(*Config)

// WithSize sets the grid width and height in pixels.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithMagnification sets the zoom factor. Larger values show a smaller
// region of the complex plane.
func WithMagnification(mag float64) Option {
	return func(c *Config) {
		c.Magnification = mag
	}
}

// WithConstant sets the Julia parameter c.
func WithConstant(re, im float64) Option {
	return func(c *Config) {
		c.C = Complex{Re: re, Im: im}
	}
}

// WithMaxIterations sets the escape loop bound.
func WithMaxIterations(n int) Option {
	return func(c *Config) {
		c.MaxIterations = n
	}
}

// WithEscapeRadius sets the bailout radius.
func WithEscapeRadius(r float64) Option {
	return func(c *Config) {
		c.EscapeRadius = r
	}
}

// WithLevels sets the number of output brightness steps (2..256).
func WithLevels(n int) Option {
	return func(c *Config) {
		c.Levels = n
	}
}

// WithGamma sets the brightness curve exponent applied to the normalized
// escape time.
func WithGamma(g float64) Option {
	return func(c *Config) {
		c.Gamma = g
	}
}

// WithWorkers sets how many goroutines evaluate the mask.
// 1 is sequential; 0 uses GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(c *Config) {
		c.Workers = n
	}
}

// WithMaxPixels caps the size of a single allocated plane.
func WithMaxPixels(n int) Option {
	return func(c *Config) {
		c.MaxPixels = n
	}
}
