package curvefit

import (
	"github.com/ideasman42/curvefit-go/knot"
	"github.com/ideasman42/curvefit-go/pqueue"
)

// removeState is a remove-pass heap payload: the two handle lengths for
// the flanking knots that replace the removed knot.
type removeState struct {
	knotIndex int
	handles   [2]float64
}

// removeRecalculate fits the segment that would replace k if it were
// removed, and either (re)inserts or drops k's heap entry accordingly.
// Any previous entry is always cleared first — this reinserts a fresh
// payload on every update rather than mutating a pooled one in place;
// under Go's GC there's no allocation-avoidance benefit to pooling, so
// this keeps the simpler one-entry-per-update shape.
func removeRecalculate(q *pqueue.Queue[*removeState], points []float64, dims int, ring *knot.Ring, ki int, errSqMax float64) {
	k := &ring.Knots[ki]

	if h, ok := k.HeapEntry.(pqueue.Handle[*removeState]); ok {
		q.Remove(h)
		k.HeapEntry = nil
	}

	tanL := ring.Knots[k.Prev].Tan[1]
	tanR := ring.Knots[k.Next].Tan[0]
	handles, costSq := calcCurveErrorValue(points, dims, ring, k.Prev, k.Next, tanL, tanR)

	if costSq < errSqMax {
		r := &removeState{knotIndex: ki, handles: handles}
		k.HeapEntry = q.Insert(costSq, r)
	}
}

// removePass repeatedly removes the interior, non-corner knot whose
// elimination introduces the smallest squared fit error, so long as that
// error stays below errSqMax. Returns the updated live-knot count.
func removePass(points []float64, dims int, ring *knot.Ring, liveCount int, errSqMax float64) int {
	q := pqueue.New[*removeState](len(ring.Knots))

	ring.Walk(func(ki int) bool {
		k := &ring.Knots[ki]
		if k.CanRemove && !k.IsRemoved && !k.IsCorner {
			removeRecalculate(q, points, dims, ring, ki, errSqMax)
		}
		return true
	})

	for !q.IsEmpty() {
		errSq := q.PeekValue()
		r := q.PopMin()

		k := &ring.Knots[r.knotIndex]
		k.HeapEntry = nil

		prevI, nextI := k.Prev, k.Next
		kPrev := &ring.Knots[prevI]
		kNext := &ring.Knots[nextI]

		kPrev.Handles[1] = r.handles[0]
		kNext.Handles[0] = r.handles[1]
		kPrev.ErrorSq[1] = errSq
		kNext.ErrorSq[0] = errSq

		ring.Unlink(r.knotIndex)
		liveCount--

		if kPrev.CanRemove && !kPrev.IsCorner {
			removeRecalculate(q, points, dims, ring, prevI, errSqMax)
		}
		if kNext.CanRemove && !kNext.IsCorner {
			removeRecalculate(q, points, dims, ring, nextI, errSqMax)
		}
	}

	return liveCount
}
