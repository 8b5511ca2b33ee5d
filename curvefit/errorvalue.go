package curvefit

import (
	"github.com/ideasman42/curvefit-go/cubicfit"
	"github.com/ideasman42/curvefit-go/knot"
	"github.com/ideasman42/curvefit-go/vecn"
)

// calcCurveErrorValue fits a single cubic between leftIdx and rightIdx and
// returns the two flanking handle *lengths* (recovered via a dot-product
// projection of the fitted handle point back onto the tangent) plus the
// segment's squared fit error.
//
// Knot tangents point back toward lower sample indices, while FitSingle
// takes tangents that point into the span from each end, so tanL is
// reversed for the solve; the returned lengths are still measured along
// tanL and tanR as given.
//
// A span covering exactly two samples (no interior points) is fit-free:
// the chord is already exact, so it returns zero error and zero handles
// without invoking the solver at all.
func calcCurveErrorValue(points []float64, dims int, ring *knot.Ring, leftIdx, rightIdx int, tanL, tanR []float64) (handles [2]float64, errSq float64) {
	leftPt := ring.Knots[leftIdx].PointIndex
	rightPt := ring.Knots[rightIdx].PointIndex

	n := rightPt - leftPt + 1
	if n == 2 {
		return [2]float64{0, 0}, 0.0
	}

	segment := points[leftPt*dims : (rightPt+1)*dims]
	tanLIn := make([]float64, dims)
	vecn.Sub(tanLIn, tanLIn, tanL)
	hL, hR, errSq := cubicfit.FitSingle(segment, dims, tanLIn, tanR)

	start := segment[0:dims]
	end := segment[len(segment)-dims:]

	diff := make([]float64, dims)
	vecn.Sub(diff, hL, start)
	handles[0] = vecn.Dot(tanL, diff)

	vecn.Sub(diff, hR, end)
	handles[1] = vecn.Dot(tanR, diff)

	return handles, errSq
}
