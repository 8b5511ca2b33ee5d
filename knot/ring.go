package knot

import "github.com/ideasman42/curvefit-go/vecn"

// Knot is one anchor-plus-handles control point of the fitted curve.
// See the data model: PointIndex names the sample supplying its position,
// Prev/Next are ring links (None at open-curve endpoints), Handles are
// signed scalar lengths along Tan, and HeapEntry is the knot's current
// back-pointer into whichever pass's heap it is a candidate in (nil when
// it is not currently queued).
type Knot struct {
	PointIndex int
	Prev, Next int

	Handles [2]float64
	Tan     [2][]float64

	CanRemove bool
	IsRemoved bool
	IsCorner  bool

	ErrorSq [2]float64

	// HeapEntry is an opaque back-pointer to this knot's pending heap
	// entry for whichever pass currently owns it. Typed as any because
	// the three passes use three distinct payload types (curvefit's
	// removeState, refitState, cornerState) and a knot outlives all three passes, so
	// it cannot be generic over one of them.
	HeapEntry any
}

// Ring is a pooled array of knots linked into a single open chain; there
// is no cyclic-curve mode. Head and Tail name the two pinned, unremovable
// endpoints; they never move.
type Ring struct {
	Knots []Knot
	Dims  int
	Head  int
	Tail  int
}

// NewRing allocates one knot per sample and seeds each with the initial
// smooth tangent: the sum of the unit directions to the previous and next
// sample, renormalized. Both in/out tangents start equal (a smooth knot).
// A knot whose neighbors' directions cancel is left with a zero tangent;
// downstream fits tolerate that by reporting a large error rather than
// failing outright.
func NewRing(points []float64, dims int) *Ring {
	n := len(points) / dims
	r := &Ring{
		Knots: make([]Knot, n),
		Dims:  dims,
		Head:  0,
		Tail:  n - 1,
	}

	for i := range r.Knots {
		k := &r.Knots[i]
		k.PointIndex = i
		k.Prev = i - 1
		k.Next = i + 1
		k.CanRemove = true
		k.Tan[0] = make([]float64, dims)
		k.Tan[1] = make([]float64, dims)
	}
	r.Knots[0].Prev = None
	r.Knots[0].CanRemove = false
	r.Knots[n-1].Next = None
	r.Knots[n-1].CanRemove = false

	a := make([]float64, dims)
	b := make([]float64, dims)
	for i := range r.Knots {
		k := &r.Knots[i]
		here := points[k.PointIndex*dims : k.PointIndex*dims+dims]

		if k.Prev != None {
			prevPt := points[r.Knots[k.Prev].PointIndex*dims : r.Knots[k.Prev].PointIndex*dims+dims]
			vecn.Sub(a, prevPt, here)
			vecn.Normalize(a)
		} else {
			vecn.Zero(a)
		}

		if k.Next != None {
			nextPt := points[r.Knots[k.Next].PointIndex*dims : r.Knots[k.Next].PointIndex*dims+dims]
			vecn.Sub(b, here, nextPt)
			vecn.Normalize(b)
		} else {
			vecn.Zero(b)
		}

		vecn.Add(k.Tan[0], a, b)
		vecn.Normalize(k.Tan[0])
		vecn.Copy(k.Tan[1], k.Tan[0])
	}

	return r
}

// Point returns the sample backing knot i's current position.
func (r *Ring) Point(points []float64, i int) []float64 {
	p := r.Knots[i].PointIndex * r.Dims
	return points[p : p+r.Dims]
}

// Unlink removes knot i from the ring, splicing its neighbors together.
// It does not touch i's handles or tangents, only its liveness and links.
func (r *Ring) Unlink(i int) {
	k := &r.Knots[i]
	prevI, nextI := k.Prev, k.Next
	if prevI != None {
		r.Knots[prevI].Next = nextI
	}
	if nextI != None {
		r.Knots[nextI].Prev = prevI
	}
	k.Prev = None
	k.Next = None
	k.IsRemoved = true
}

// InsertBetween splices previously-removed knot i back into the ring
// between prevI and nextI, marking it live again.
func (r *Ring) InsertBetween(i, prevI, nextI int) {
	r.Knots[i].Prev = prevI
	r.Knots[i].Next = nextI
	r.Knots[i].IsRemoved = false
	if prevI != None {
		r.Knots[prevI].Next = i
	}
	if nextI != None {
		r.Knots[nextI].Prev = i
	}
}

// LiveCount walks the ring from Head and counts live knots.
func (r *Ring) LiveCount() int {
	n := 0
	for i := r.Head; i != None; i = r.Knots[i].Next {
		n++
	}
	return n
}

// Walk calls fn once per live knot from Head to Tail, in ring order,
// stopping early if fn returns false.
func (r *Ring) Walk(fn func(i int) bool) {
	for i := r.Head; i != None; i = r.Knots[i].Next {
		if !fn(i) {
			return
		}
	}
}
