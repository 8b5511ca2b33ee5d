package curvefit

import (
	"math"

	"github.com/ideasman42/curvefit-go/knot"
	"github.com/ideasman42/curvefit-go/pqueue"
	"github.com/ideasman42/curvefit-go/vecn"
)

// cornerState is a corner-pass heap payload.
type cornerState struct {
	knotIndex        int
	adjPrev, adjNext int
	handlesPrev      [2]float64
	handlesNext      [2]float64
	errSq            [2]float64
}

// findSplitPointOnAxis finds the sample strictly between knotL and knotR
// that maximizes dot(planeNo, P[idx]). Returns -1 if the two knots are
// already adjacent samples (no interior candidate exists).
func findSplitPointOnAxis(points []float64, dims int, ring *knot.Ring, knotL, knotR int, planeNo []float64) int {
	leftPt := ring.Knots[knotL].PointIndex
	rightPt := ring.Knots[knotR].PointIndex

	best := -1
	bestVal := math.Inf(-1)
	for idx := leftPt + 1; idx < rightPt; idx++ {
		v := vecn.Dot(planeNo, points[idx*dims:idx*dims+dims])
		if v > bestVal {
			bestVal = v
			best = idx
		}
	}
	return best
}

// evaluateCornerCandidate is the per-knot body shared by the corner
// pass's seed loop and its neighbor re-evaluation after an apply. It
// always re-derives k's current ring successor rather than trusting any
// previously cached adjacency, so a later re-evaluation can never act on
// a neighbor pairing that a prior splice has already invalidated.
func evaluateCornerCandidate(q *pqueue.Queue[*cornerState], points []float64, dims int, ring *knot.Ring, ki int, errSqMax, errSq2xMax, cosThresh float64) {
	k := &ring.Knots[ki]

	clearCornerEntry := func(kk *knot.Knot) {
		if h, ok := kk.HeapEntry.(pqueue.Handle[*cornerState]); ok {
			q.Remove(h)
			kk.HeapEntry = nil
		}
	}

	if k.IsRemoved || !k.CanRemove || k.Next == knot.None {
		return
	}
	nextI := k.Next
	kNext := &ring.Knots[nextI]
	if !kNext.CanRemove {
		return
	}

	if vecn.Dot(k.Tan[0], kNext.Tan[1]) >= cosThresh {
		return
	}

	planeNo := make([]float64, dims)
	vecn.Sub(planeNo, kNext.Tan[0], k.Tan[1])

	splitIdx := findSplitPointOnAxis(points, dims, ring, ki, nextI, planeNo)
	if splitIdx < 0 {
		return
	}

	projRef := make([]float64, dims)
	projSplit := make([]float64, dims)
	splitPoint := points[splitIdx*dims : splitIdx*dims+dims]

	vecn.ProjectOntoPlaneNormalized(projRef, ring.Point(points, ki), k.Tan[1])
	vecn.ProjectOntoPlaneNormalized(projSplit, splitPoint, k.Tan[1])
	if vecn.SquaredLenBetween(projRef, projSplit) >= errSq2xMax {
		return
	}

	vecn.ProjectOntoPlaneNormalized(projRef, ring.Point(points, nextI), kNext.Tan[0])
	vecn.ProjectOntoPlaneNormalized(projSplit, splitPoint, kNext.Tan[0])
	if vecn.SquaredLenBetween(projRef, projSplit) >= errSq2xMax {
		return
	}

	kSplit := &ring.Knots[splitIdx]
	clearCornerEntry(kSplit)

	handlesPrev, errPrev := calcCurveErrorValue(points, dims, ring, ki, splitIdx, k.Tan[1], k.Tan[1])
	handlesNext, errNext := calcCurveErrorValue(points, dims, ring, splitIdx, nextI, kNext.Tan[0], kNext.Tan[0])

	if errPrev < errSqMax && errNext < errSqMax {
		c := &cornerState{
			knotIndex:   splitIdx,
			adjPrev:     ki,
			adjNext:     nextI,
			handlesPrev: handlesPrev,
			handlesNext: handlesNext,
			errSq:       [2]float64{errPrev, errNext},
		}
		kSplit.HeapEntry = q.Insert(math.Max(errPrev, errNext), c)
	}
}

// cornerPass inserts a preserved sharp knot between adjacent knots whose
// tangents diverge by more than the angle threshold, so long as the two
// resulting segments both fit within errSqMax and the split sample lies
// within errSq2xMax (squared) of the line through each neighbor along that
// neighbor's tangent. Returns the updated live-knot count.
func cornerPass(points []float64, dims int, ring *knot.Ring, liveCount int, errSqMax, errSq2xMax, cornerAngle float64) int {
	q := pqueue.New[*cornerState](0)
	cosThresh := math.Cos(cornerAngle)

	ring.Walk(func(ki int) bool {
		evaluateCornerCandidate(q, points, dims, ring, ki, errSqMax, errSq2xMax, cosThresh)
		return true
	})

	for !q.IsEmpty() {
		c := q.PopMin()

		kSplit := &ring.Knots[c.knotIndex]
		kSplit.HeapEntry = nil

		kPrev := &ring.Knots[c.adjPrev]
		kNext := &ring.Knots[c.adjNext]

		// The two knots this candidate was computed against may no
		// longer be adjacent (a prior pop in this same loop may have
		// spliced something else between them); skip stale candidates
		// rather than acting on them.
		if kPrev.Next != c.adjNext || kNext.Prev != c.adjPrev {
			continue
		}

		ring.InsertBetween(c.knotIndex, c.adjPrev, c.adjNext)
		kSplit.IsCorner = true
		vecn.Copy(kSplit.Tan[0], kPrev.Tan[1])
		vecn.Copy(kSplit.Tan[1], kNext.Tan[0])

		kPrev.Handles[1] = c.handlesPrev[0]
		kSplit.Handles[0] = c.handlesPrev[1]
		kSplit.Handles[1] = c.handlesNext[0]
		kNext.Handles[0] = c.handlesNext[1]

		kSplit.ErrorSq[0] = c.errSq[0]
		kPrev.ErrorSq[1] = c.errSq[0]
		kSplit.ErrorSq[1] = c.errSq[1]
		kNext.ErrorSq[0] = c.errSq[1]

		liveCount++

		// Re-evaluate the four affected pairs: (k_prev.prev, k_prev),
		// (k_prev, k_split), (k_split, k_next), (k_next, k_next.next).
		// Each is expressed as the left-hand knot of an "i, i.next"
		// check, reading i.next live off the ring rather than any
		// cached adjacency.
		prevPrev := kPrev.Prev
		if prevPrev != knot.None {
			evaluateCornerCandidate(q, points, dims, ring, prevPrev, errSqMax, errSq2xMax, cosThresh)
		}
		evaluateCornerCandidate(q, points, dims, ring, c.adjPrev, errSqMax, errSq2xMax, cosThresh)
		evaluateCornerCandidate(q, points, dims, ring, c.knotIndex, errSqMax, errSq2xMax, cosThresh)
		evaluateCornerCandidate(q, points, dims, ring, c.adjNext, errSqMax, errSq2xMax, cosThresh)
	}

	return liveCount
}
