package cubicfit

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/ideasman42/curvefit-go/vecn"
)

// degenerateErrorSq is the finite stand-in for "no fit possible" returned
// for a zero-length tangent, which signals a knot whose neighbors cancel
// out. A large finite error excludes the knot from removal without ever
// aborting the pass.
const degenerateErrorSq = math.MaxFloat64 / 4

// bezierBasis evaluates the four cubic Bernstein polynomials at u.
func bezierBasis(u float64) [4]float64 {
	v := 1 - u
	return [4]float64{
		v * v * v,
		3 * v * v * u,
		3 * v * u * u,
		u * u * u,
	}
}

// chordLengthParameterize assigns each interior/end sample a parameter in
// [0, 1] proportional to its cumulative chord distance from the first
// sample. This is a single pass, not an iterative Newton-Raphson
// re-parameterization — FitSingle is a one-shot linear solve.
func chordLengthParameterize(points []float64, dims int) []float64 {
	n := len(points) / dims
	u := make([]float64, n)
	total := 0.0
	for i := 1; i < n; i++ {
		total += math.Sqrt(vecn.SquaredLenBetween(points[(i-1)*dims:i*dims], points[i*dims:(i+1)*dims]))
		u[i] = total
	}
	if total > 0 {
		for i := range u {
			u[i] /= total
		}
	}
	return u
}

// FitSingle fits one cubic Bézier segment through points (a flat array of
// n >= 2 samples, dims each), with fixed tangent directions tanL (pointing
// from the first sample into the span) and tanR (pointing from the last
// sample back into the span). It returns the
// two control points h_l, h_r (not scalar lengths — callers recover a
// length via vecn.Dot(tan, h - anchor)) and the summed squared residual
// across all samples.
//
// A span of exactly two samples has no interior information to fit and is
// returned verbatim with zero error. A zero-length tangent is a degenerate
// knot and is reported with a large, finite error rather than attempting a
// solve against an undefined direction.
func FitSingle(points []float64, dims int, tanL, tanR []float64) (hL, hR []float64, errSq float64) {
	n := len(points) / dims
	start := points[0:dims]
	end := points[(n-1)*dims : n*dims]

	if n == 2 {
		return append([]float64(nil), start...), append([]float64(nil), end...), 0.0
	}

	if vecn.SquaredLen(tanL) <= 0 || vecn.SquaredLen(tanR) <= 0 {
		hL = append([]float64(nil), start...)
		hR = append([]float64(nil), end...)
		return hL, hR, degenerateErrorSq
	}

	u := chordLengthParameterize(points, dims)

	var c00, c01, c11, x0, x1 float64
	tmp := make([]float64, dims)
	endTerm := make([]float64, dims)
	a1 := make([]float64, dims)
	a2 := make([]float64, dims)

	for i := 0; i < n; i++ {
		b := bezierBasis(u[i])

		for d := 0; d < dims; d++ {
			a1[d] = tanL[d] * b[1]
			a2[d] = tanR[d] * b[2]
			endTerm[d] = start[d]*(b[0]+b[1]) + end[d]*(b[2]+b[3])
			tmp[d] = points[i*dims+d] - endTerm[d]
		}

		c00 += vecn.Dot(a1, a1)
		c01 += vecn.Dot(a1, a2)
		c11 += vecn.Dot(a2, a2)
		x0 += vecn.Dot(a1, tmp)
		x1 += vecn.Dot(a2, tmp)
	}

	alphaL, alphaR, ok := solve2x2(c00, c01, c01, c11, x0, x1)

	segLen := math.Sqrt(vecn.SquaredLenBetween(start, end))
	fallback := segLen / 3.0
	if !ok || alphaL < 1e-6 || alphaR < 1e-6 {
		alphaL, alphaR = fallback, fallback
	}

	hL = make([]float64, dims)
	hR = make([]float64, dims)
	vecn.FMA(hL, start, tanL, alphaL)
	vecn.FMA(hR, end, tanR, alphaR)

	errSq = 0
	fitPoint := make([]float64, dims)
	for i := 0; i < n; i++ {
		b := bezierBasis(u[i])
		for d := 0; d < dims; d++ {
			fitPoint[d] = start[d]*b[0] + hL[d]*b[1] + hR[d]*b[2] + end[d]*b[3]
		}
		errSq += vecn.SquaredLenBetween(fitPoint, points[i*dims:(i+1)*dims])
	}

	return hL, hR, errSq
}

// solve2x2 solves [[a, b], [c, d]] * [x, y]^T = [bx, by]^T via gonum/mat,
// reporting false for a singular (or near-singular) system so the caller
// can fall back to the standard one-third-chord-length heuristic.
func solve2x2(a, b, c, d, bx, by float64) (x, y float64, ok bool) {
	A := mat.NewDense(2, 2, []float64{a, b, c, d})
	B := mat.NewVecDense(2, []float64{bx, by})

	if math.Abs(mat.Det(A)) < 1e-12 {
		return 0, 0, false
	}

	var X mat.VecDense
	if err := X.SolveVec(A, B); err != nil {
		return 0, 0, false
	}
	return X.AtVec(0), X.AtVec(1), true
}
