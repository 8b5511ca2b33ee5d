package curvefit

import "math"

// Config holds the runtime-toggleable switches controlling the refit and
// corner-detection passes, plus the corner-detection width factor.
type Config struct {
	cornerAngle       float64
	useCorner         bool
	useRefit          bool
	useRefitRemove    bool
	cornerWidthFactor float64
}

func defaultConfig() Config {
	return Config{
		cornerAngle:       math.Pi, // >= pi disables corner detection
		useCorner:         false,
		useRefit:          true,
		useRefitRemove:    true,
		cornerWidthFactor: 2, // (2*errorThreshold)^2 == 4*errorThreshold^2
	}
}

// Option configures a Fit/FitFloat32 call.
type Option func(*Config)

// WithCornerAngle enables corner detection with the given threshold angle
// in radians. An angle >= math.Pi disables corner detection entirely.
// Tangents diverging by more than this angle become candidates for a
// preserved sharp knot.
func WithCornerAngle(angle float64) Option {
	return func(c *Config) {
		c.cornerAngle = angle
		c.useCorner = angle < math.Pi
	}
}

// WithRefit toggles the knot-refit pass. Enabled by default.
func WithRefit(enabled bool) Option {
	return func(c *Config) { c.useRefit = enabled }
}

// WithRefitRemove toggles whether the refit pass first tries an outright
// removal before relocating a knot. Enabled by default; only meaningful
// when refit itself is enabled.
func WithRefitRemove(enabled bool) Option {
	return func(c *Config) { c.useRefitRemove = enabled }
}

// WithCornerWidthFactor controls the multiplier on errorThreshold used to
// bound corner-candidate spatial closeness: a candidate's squared distance
// from the line through each neighbor along that neighbor's tangent must
// stay under (factor * errorThreshold)². Default 2, so errSq2xMax ==
// 4*errorThreshold².
func WithCornerWidthFactor(factor float64) Option {
	return func(c *Config) { c.cornerWidthFactor = factor }
}
