package curvefit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ideasman42/curvefit-go/knot"
)

func TestCornerPass_LShapePreservesCorner(t *testing.T) {
	pts := lShape()
	ring := knot.NewRing(pts, 2)
	liveCount := ring.LiveCount()

	errSq := 0.01 * 0.01
	liveCount = removePass(pts, 2, ring, liveCount, errSq/4)
	liveCount = cornerPass(pts, 2, ring, liveCount, errSq, (2*0.01)*(2*0.01), math.Pi/2)
	liveCount = removePass(pts, 2, ring, liveCount, errSq)

	require.Equal(t, 3, liveCount)

	cornerSeen := false
	ring.Walk(func(i int) bool {
		if ring.Knots[i].IsCorner {
			cornerSeen = true
			assert.Equal(t, 10, ring.Knots[i].PointIndex)
		}
		return true
	})
	assert.True(t, cornerSeen)
}

func TestCornerPass_StraightLineFindsNoCorners(t *testing.T) {
	pts := straightLine(20)
	ring := knot.NewRing(pts, 2)
	liveCount := ring.LiveCount()

	cornerPass(pts, 2, ring, liveCount, 1e-6, 1e-6*4, math.Pi/8)

	ring.Walk(func(i int) bool {
		assert.False(t, ring.Knots[i].IsCorner)
		return true
	})
}

func TestCornerPass_NoDanglingHeapEntries(t *testing.T) {
	pts := lShape()
	ring := knot.NewRing(pts, 2)
	cornerPass(pts, 2, ring, ring.LiveCount(), 0.01*0.01, (2*0.01)*(2*0.01), math.Pi/2)

	for i := range ring.Knots {
		assert.Nil(t, ring.Knots[i].HeapEntry)
	}
}
