package curvefit

import (
	"github.com/ideasman42/curvefit-go/knot"
	"github.com/ideasman42/curvefit-go/vecn"
)

// Fit simplifies an N-dimensional open point sequence into a piecewise
// cubic Bézier curve, composing the remove, corner, and refit passes in
// a fixed order. points holds points_len*dims values in row-major order.
// errorThreshold is linear, not squared.
func Fit(points []float64, dims int, errorThreshold float64, opts ...Option) (Result, error) {
	switch {
	case len(points) == 0:
		return Result{}, ErrEmptyPoints
	case dims == 0:
		return Result{}, ErrZeroDims
	case errorThreshold < 0:
		return Result{}, ErrNegativeTolerance
	case len(points)%dims != 0:
		return Result{}, ErrLengthMismatch
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := len(points) / dims
	if n == 1 {
		return Result{
			Cubics:      nil,
			OrigIndex:   []int{0},
			CornerIndex: []int{0},
			dims:        dims,
			errorSq:     nil,
		}, nil
	}

	ring := knot.NewRing(points, dims)
	liveCount := n

	errSqFull := errorThreshold * errorThreshold

	// Seeding the first remove pass with a quartered tolerance compensates
	// for the widening the corner pass applies later.
	seedErrSq := errSqFull
	if cfg.useCorner {
		seedErrSq = errSqFull / 4
	}
	liveCount = removePass(points, dims, ring, liveCount, seedErrSq)

	if cfg.useCorner {
		errSq2xMax := (cfg.cornerWidthFactor * errorThreshold) * (cfg.cornerWidthFactor * errorThreshold)
		liveCount = cornerPass(points, dims, ring, liveCount, errSqFull, errSq2xMax, cfg.cornerAngle)
		liveCount = removePass(points, dims, ring, liveCount, errSqFull)
	}

	if cfg.useRefit {
		liveCount = refitPass(points, dims, ring, liveCount, errSqFull, cfg.useRefitRemove)
	}

	return assembleResult(points, dims, ring, liveCount), nil
}

// FitFloat32 is the single-precision counterpart of Fit: it widens
// samples and tolerance to float64, runs the primary engine, then narrows
// the result back to float32.
func FitFloat32(points []float32, dims int, errorThreshold float32, opts ...Option) (Result32, error) {
	wide := make([]float64, len(points))
	for i, v := range points {
		wide[i] = float64(v)
	}
	r, err := Fit(wide, dims, float64(errorThreshold), opts...)
	if err != nil {
		return Result32{}, err
	}
	return narrowResult(r), nil
}

// assembleResult walks the final live ring and materializes the cubic
// array, the original-index mapping, and the corner-index array
// (endpoint-inclusive).
func assembleResult(points []float64, dims int, ring *knot.Ring, liveCount int) Result {
	cubics := make([]float64, 0, liveCount*3*dims)
	origIndex := make([]int, 0, liveCount)
	cornerIndex := make([]int, 0)
	errorSq := make([][2]float64, 0, liveCount-1)

	pos := 0
	hIn := make([]float64, dims)
	hOut := make([]float64, dims)

	ring.Walk(func(ki int) bool {
		k := &ring.Knots[ki]
		anchor := ring.Point(points, ki)

		vecn.FMA(hIn, anchor, k.Tan[0], k.Handles[0])
		vecn.FMA(hOut, anchor, k.Tan[1], k.Handles[1])

		cubics = append(cubics, hIn...)
		cubics = append(cubics, anchor...)
		cubics = append(cubics, hOut...)

		origIndex = append(origIndex, k.PointIndex)

		if pos == 0 || k.Next == knot.None || k.IsCorner {
			cornerIndex = append(cornerIndex, pos)
		}
		if k.Next != knot.None {
			errorSq = append(errorSq, [2]float64{k.ErrorSq[1], ring.Knots[k.Next].ErrorSq[0]})
		}

		pos++
		return true
	})

	return Result{
		Cubics:      cubics,
		OrigIndex:   origIndex,
		CornerIndex: cornerIndex,
		dims:        dims,
		errorSq:     errorSq,
	}
}
