package curvefit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ideasman42/curvefit-go/knot"
)

func straightLine(n int) []float64 {
	pts := make([]float64, n*2)
	for i := 0; i < n; i++ {
		pts[i*2+0] = float64(i)
		pts[i*2+1] = 0
	}
	return pts
}

func unitCircle(n int) []float64 {
	pts := make([]float64, n*2)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		pts[i*2+0] = math.Cos(theta)
		pts[i*2+1] = math.Sin(theta)
	}
	return pts
}

func lShape() []float64 {
	pts := make([]float64, 0, 21*2)
	for i := 0; i <= 10; i++ {
		pts = append(pts, float64(i), 0)
	}
	for i := 1; i <= 10; i++ {
		pts = append(pts, 10, float64(i))
	}
	return pts
}

func twoQuarterSines() []float64 {
	const n = 40
	pts := make([]float64, 0, (n+1)*2)
	for i := 0; i <= n; i++ {
		x := float64(i) / float64(n) * 2
		var y float64
		if x <= 1 {
			y = math.Sin(x * math.Pi / 2)
		} else {
			y = 1 - math.Sin((x-1)*math.Pi/2)
		}
		pts = append(pts, x, y)
	}
	return pts
}

func TestFit_StraightLineCollapsesToEndpoints(t *testing.T) {
	r, err := Fit(straightLine(100), 2, 1e-6)
	require.NoError(t, err)
	assert.Equal(t, 2, r.OutLen())
	assert.Equal(t, 0, r.OrigIndex[0])
	assert.Equal(t, 99, r.OrigIndex[1])
	assert.InDelta(t, 0, r.SegmentErrorSq(0), 1e-6)
}

func TestFit_UnitCircleWithinSegmentBudget(t *testing.T) {
	r, err := Fit(unitCircle(64), 2, 1e-3)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, r.OutLen(), 4)
	assert.LessOrEqual(t, r.OutLen(), 10)
}

func TestFit_LShapeCorner(t *testing.T) {
	r, err := Fit(lShape(), 2, 0.01, WithCornerAngle(math.Pi/2))
	require.NoError(t, err)
	require.Equal(t, 3, r.OutLen())
	assert.Equal(t, 10, r.OrigIndex[1])
	assert.Contains(t, r.CornerIndex, 1)
}

func TestFit_CornerDetectionDisabled(t *testing.T) {
	r, err := Fit(twoQuarterSines(), 2, 1e-2)
	require.NoError(t, err)
	assert.Equal(t, 2, len(r.CornerIndex))
	assert.Equal(t, 0, r.CornerIndex[0])
	assert.Equal(t, r.OutLen()-1, r.CornerIndex[len(r.CornerIndex)-1])
}

func TestFit_CornerDetectionEnabled(t *testing.T) {
	r, err := Fit(twoQuarterSines(), 2, 1e-2, WithCornerAngle(math.Pi/4))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(r.CornerIndex), 2)
}

func TestFit_SinglePoint(t *testing.T) {
	r, err := Fit([]float64{3, 4}, 2, 1e-3)
	require.NoError(t, err)
	assert.Equal(t, 1, r.OutLen())
	assert.Nil(t, r.Cubics)
}

func TestFit_EndpointsAreCornersAndMatchOriginalSamples(t *testing.T) {
	r, err := Fit(unitCircle(64), 2, 1e-3)
	require.NoError(t, err)
	assert.Equal(t, 0, r.OrigIndex[0])
	assert.Equal(t, 63, r.OrigIndex[r.OutLen()-1])
	assert.Contains(t, r.CornerIndex, 0)
	assert.Contains(t, r.CornerIndex, r.OutLen()-1)
}

func TestFit_InvalidArguments(t *testing.T) {
	_, err := Fit(nil, 2, 1e-3)
	assert.ErrorIs(t, err, ErrEmptyPoints)

	_, err = Fit([]float64{1, 2}, 0, 1e-3)
	assert.ErrorIs(t, err, ErrZeroDims)

	_, err = Fit([]float64{1, 2}, 2, -1)
	assert.ErrorIs(t, err, ErrNegativeTolerance)

	_, err = Fit([]float64{1, 2, 3}, 2, 1e-3)
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestFit_Deterministic(t *testing.T) {
	pts := unitCircle(64)
	r1, err := Fit(pts, 2, 1e-3)
	require.NoError(t, err)
	r2, err := Fit(pts, 2, 1e-3)
	require.NoError(t, err)
	assert.Equal(t, r1.OrigIndex, r2.OrigIndex)
	assert.Equal(t, r1.Cubics, r2.Cubics)
}

func TestFitFloat32_NarrowsResult(t *testing.T) {
	pts32 := make([]float32, 100*2)
	for i, v := range straightLine(100) {
		pts32[i] = float32(v)
	}
	r, err := FitFloat32(pts32, 2, 1e-6)
	require.NoError(t, err)
	assert.Equal(t, 2, r.OutLen())
}

func TestFit_NoDanglingHeapEntriesAfterPasses(t *testing.T) {
	pts := unitCircle(64)
	dims := 2
	ring := knot.NewRing(pts, dims)
	liveCount := len(pts) / dims

	errSq := 1e-3 * 1e-3
	liveCount = removePass(pts, dims, ring, liveCount, errSq/4)
	liveCount = cornerPass(pts, dims, ring, liveCount, errSq, (2*1e-3)*(2*1e-3), math.Pi/4)
	liveCount = removePass(pts, dims, ring, liveCount, errSq)
	liveCount = refitPass(pts, dims, ring, liveCount, errSq, true)
	assert.Greater(t, liveCount, 0)

	for i := range ring.Knots {
		assert.Nil(t, ring.Knots[i].HeapEntry)
	}
}
