package curvefit

import (
	"math"

	"github.com/ideasman42/curvefit-go/knot"
	"github.com/ideasman42/curvefit-go/pqueue"
	"github.com/ideasman42/curvefit-go/vecn"
)

// refitNone marks a refit-pass entry with no relocation target: the
// segment from k.prev to k.next already fits, so k should simply be
// removed outright rather than relocated.
const refitNone = knot.None

// refitState is a refit-pass heap payload.
type refitState struct {
	knotIndex   int
	refitIndex  int // refitNone when this entry is a plain removal
	handlesPrev [2]float64
	handlesNext [2]float64
	errSq       [2]float64
}

// findSplitPoint finds the sample strictly between leftIdx and rightIdx
// whose perpendicular distance from the chord between them is greatest.
// Returns -1 when no interior sample exists.
func findSplitPoint(points []float64, dims int, ring *knot.Ring, leftIdx, rightIdx int) int {
	leftPt := ring.Knots[leftIdx].PointIndex
	rightPt := ring.Knots[rightIdx].PointIndex
	if rightPt-leftPt < 2 {
		return -1
	}

	chordDir := make([]float64, dims)
	vecn.Sub(chordDir, points[leftPt*dims:leftPt*dims+dims], points[rightPt*dims:rightPt*dims+dims])
	vecn.Normalize(chordDir)

	leftPoint := points[leftPt*dims : leftPt*dims+dims]
	offset := make([]float64, dims)
	proj := make([]float64, dims)

	best := -1
	bestVal := -1.0
	for idx := leftPt + 1; idx < rightPt; idx++ {
		vecn.Sub(offset, points[idx*dims:idx*dims+dims], leftPoint)
		vecn.ProjectOntoPlaneNormalized(proj, offset, chordDir)
		d := vecn.SquaredLen(proj)
		if d > bestVal {
			bestVal = d
			best = idx
		}
	}
	return best
}

// refitRecalculate decides whether k should be queued for outright
// removal, relocation to a better sample, or dropped from consideration,
// and (re)populates its heap entry accordingly.
func refitRecalculate(q *pqueue.Queue[*refitState], points []float64, dims int, ring *knot.Ring, ki int, errSqMax float64, useRefitRemove bool) {
	k := &ring.Knots[ki]

	if h, ok := k.HeapEntry.(pqueue.Handle[*refitState]); ok {
		q.Remove(h)
		k.HeapEntry = nil
	}

	if useRefitRemove {
		handles, costSq := calcCurveErrorValue(points, dims, ring, k.Prev, k.Next, ring.Knots[k.Prev].Tan[1], ring.Knots[k.Next].Tan[0])
		if costSq < errSqMax {
			r := &refitState{
				knotIndex:   ki,
				refitIndex:  refitNone,
				handlesPrev: [2]float64{handles[0], 0},
				handlesNext: [2]float64{0, handles[1]},
				errSq:       [2]float64{costSq, costSq},
			}
			// Always remove before relocate: a negative priority sorts
			// ahead of every relocation's (always positive) priority.
			priority := math.Inf(-1)
			if costSq != 0 {
				priority = -1.0 / costSq
			}
			k.HeapEntry = q.Insert(priority, r)
			return
		}
	}

	refitIdx := findSplitPoint(points, dims, ring, k.Prev, k.Next)
	if refitIdx < 0 || refitIdx == k.PointIndex {
		return
	}

	kRefit := &ring.Knots[refitIdx]
	costSqSrcMax := math.Max(k.ErrorSq[0], k.ErrorSq[1])

	handlesPrev, errPrev := calcCurveErrorValue(points, dims, ring, k.Prev, refitIdx, ring.Knots[k.Prev].Tan[1], kRefit.Tan[0])
	if errPrev >= costSqSrcMax {
		return
	}
	handlesNext, errNext := calcCurveErrorValue(points, dims, ring, refitIdx, k.Next, kRefit.Tan[1], ring.Knots[k.Next].Tan[0])
	if errNext >= costSqSrcMax {
		return
	}

	r := &refitState{
		knotIndex:   ki,
		refitIndex:  refitIdx,
		handlesPrev: handlesPrev,
		handlesNext: handlesNext,
		errSq:       [2]float64{errPrev, errNext},
	}
	costSqDstMax := math.Max(errPrev, errNext)
	// The queue pops its smallest key first; keying on the reciprocal of
	// the (strictly positive) improvement pops the largest improvement first.
	k.HeapEntry = q.Insert(1.0/(costSqSrcMax-costSqDstMax), r)
}

// refitPass repeatedly applies the best-available removal or relocation,
// preferring removals, then greatest error improvement. Returns the
// updated live-knot count.
func refitPass(points []float64, dims int, ring *knot.Ring, liveCount int, errSqMax float64, useRefitRemove bool) int {
	q := pqueue.New[*refitState](len(ring.Knots))

	ring.Walk(func(ki int) bool {
		k := &ring.Knots[ki]
		if k.CanRemove && !k.IsRemoved && !k.IsCorner && k.Prev != knot.None && k.Next != knot.None {
			refitRecalculate(q, points, dims, ring, ki, errSqMax, useRefitRemove)
		}
		return true
	})

	for !q.IsEmpty() {
		r := q.PopMin()

		kOld := &ring.Knots[r.knotIndex]
		kOld.HeapEntry = nil

		prevI, nextI := kOld.Prev, kOld.Next
		kPrev := &ring.Knots[prevI]
		kNext := &ring.Knots[nextI]

		kPrev.Handles[1] = r.handlesPrev[0]
		kNext.Handles[0] = r.handlesNext[1]
		kPrev.ErrorSq[1] = r.errSq[0]
		kNext.ErrorSq[0] = r.errSq[1]

		ring.Unlink(r.knotIndex)

		if r.refitIndex == refitNone {
			liveCount--
		} else {
			kRefit := &ring.Knots[r.refitIndex]
			kRefit.Handles[0] = r.handlesPrev[1]
			kRefit.Handles[1] = r.handlesNext[0]
			kRefit.ErrorSq[0] = r.errSq[0]
			kRefit.ErrorSq[1] = r.errSq[1]
			ring.InsertBetween(r.refitIndex, prevI, nextI)
		}

		if kPrev.CanRemove && !kPrev.IsCorner && kPrev.Prev != knot.None && kPrev.Next != knot.None {
			refitRecalculate(q, points, dims, ring, prevI, errSqMax, useRefitRemove)
		}
		if kNext.CanRemove && !kNext.IsCorner && kNext.Prev != knot.None && kNext.Next != knot.None {
			refitRecalculate(q, points, dims, ring, nextI, errSqMax, useRefitRemove)
		}
	}

	return liveCount
}
