package curvefit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ideasman42/curvefit-go/knot"
)

func TestFindSplitPoint_PicksMostDistantSample(t *testing.T) {
	pts := []float64{0, 0, 1, 0, 2, 5, 3, 0, 4, 0}
	ring := knot.NewRing(pts, 2)

	idx := findSplitPoint(pts, 2, ring, 0, 4)
	assert.Equal(t, 2, idx)
}

func TestFindSplitPoint_NoInteriorSamplesReturnsNegative(t *testing.T) {
	pts := []float64{0, 0, 1, 0}
	ring := knot.NewRing(pts, 2)

	idx := findSplitPoint(pts, 2, ring, 0, 1)
	assert.Equal(t, -1, idx)
}

func TestRefitPass_IdempotentOnAlreadySimplifiedLine(t *testing.T) {
	pts := straightLine(20)
	ring := knot.NewRing(pts, 2)
	liveCount := ring.LiveCount()

	errSq := 1e-6
	liveCount = removePass(pts, 2, ring, liveCount, errSq)
	liveCount = refitPass(pts, 2, ring, liveCount, errSq, true)
	require.Equal(t, 2, liveCount)

	liveCountAgain := refitPass(pts, 2, ring, liveCount, errSq, true)
	assert.Equal(t, liveCount, liveCountAgain)
}

func TestRefitPass_NoDanglingHeapEntries(t *testing.T) {
	pts := straightLine(20)
	ring := knot.NewRing(pts, 2)
	liveCount := removePass(pts, 2, ring, ring.LiveCount(), 1e-6)
	refitPass(pts, 2, ring, liveCount, 1e-6, true)

	for i := range ring.Knots {
		assert.Nil(t, ring.Knots[i].HeapEntry)
	}
}
