package curvefit

import "errors"

// Sentinel errors for invalid arguments: an empty point sequence, a zero
// dimensionality, a negative error tolerance, or a points/dims length
// mismatch. Distinguishable via errors.Is so callers don't need to match
// on error strings.
var (
	// ErrEmptyPoints is returned when the points slice has length zero.
	ErrEmptyPoints = errors.New("curvefit: points must not be empty")

	// ErrZeroDims is returned when dims is zero.
	ErrZeroDims = errors.New("curvefit: dims must be greater than zero")

	// ErrNegativeTolerance is returned when errorThreshold is negative.
	ErrNegativeTolerance = errors.New("curvefit: error threshold must not be negative")

	// ErrLengthMismatch is returned when len(points) is not a multiple of dims.
	ErrLengthMismatch = errors.New("curvefit: len(points) is not a multiple of dims")
)
