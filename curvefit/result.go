package curvefit

// Result is the output of Fit: a simplified cubic Bézier chain over the
// original N-dimensional samples.
type Result struct {
	// Cubics holds, for each output knot i, three consecutive dims-vectors:
	// incoming handle point, anchor point, outgoing handle point. Anchor
	// points are samples drawn from OrigIndex[i]. len(Cubics) == OutLen()*3*dims.
	Cubics []float64

	// OrigIndex maps each output knot to the original sample index
	// supplying its anchor.
	OrigIndex []int

	// CornerIndex lists positions within the output knot sequence that are
	// corners. The first and last output knots are always included (open
	// curves treat their endpoints as corners for consumer purposes).
	CornerIndex []int

	dims    int
	errorSq [][2]float64
}

// OutLen returns the number of output knots.
func (r Result) OutLen() int {
	return len(r.OrigIndex)
}

// Dims returns the dimensionality the result was fit in.
func (r Result) Dims() int {
	return r.dims
}

// SegmentErrorSq returns the squared fit error of the cubic segment
// between output knots i and i+1. i must satisfy 0 <= i < OutLen()-1.
func (r Result) SegmentErrorSq(i int) float64 {
	return r.errorSq[i][1]
}

// Result32 is the single-precision counterpart produced by FitFloat32; it
// narrows a Result's f64 fields after the core engine runs in f64
// throughout.
type Result32 struct {
	Cubics      []float32
	OrigIndex   []int
	CornerIndex []int

	dims    int
	errorSq [][2]float64
}

func (r Result32) OutLen() int { return len(r.OrigIndex) }
func (r Result32) Dims() int   { return r.dims }

func (r Result32) SegmentErrorSq(i int) float64 {
	return r.errorSq[i][1]
}

func narrowResult(r Result) Result32 {
	cubics := make([]float32, len(r.Cubics))
	for i, v := range r.Cubics {
		cubics[i] = float32(v)
	}
	return Result32{
		Cubics:      cubics,
		OrigIndex:   r.OrigIndex,
		CornerIndex: r.CornerIndex,
		dims:        r.dims,
		errorSq:     r.errorSq,
	}
}
