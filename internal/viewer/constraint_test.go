package viewer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testContainer = Size{Width: 800, Height: 600}
	testRendered  = Size{Width: 800, Height: 500}
)

func TestClampZoom(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, MinZoom},
		{-3, MinZoom},
		{1, 1},
		{1.75, 1.75},
		{2.5, 2.5},
		{9, MaxZoom},
		{math.NaN(), MinZoom},
		{math.Inf(1), MinZoom},
		{math.Inf(-1), MinZoom},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClampZoom(tt.in), "ClampZoom(%v)", tt.in)
	}
}

func TestClampZoom_AlwaysInRange(t *testing.T) {
	for z := -5.0; z <= 5.0; z += 0.037 {
		got := ClampZoom(z)
		assert.GreaterOrEqual(t, got, MinZoom)
		assert.LessOrEqual(t, got, MaxZoom)
	}
}

func TestConstrain_MinZoomSnapsPanToZero(t *testing.T) {
	cur := Transform{Zoom: 2, Pan: Point{X: 120, Y: -40}}
	focal := Point{X: 10, Y: 10}

	got, ok := Constrain(cur, 0.4, &focal, testContainer, testRendered)

	require.True(t, ok)
	assert.Equal(t, Identity(), got)
}

func TestConstrain_InvalidMeasurementIsNoOp(t *testing.T) {
	cur := Transform{Zoom: 1.5, Pan: Point{X: 5, Y: 5}}

	got, ok := Constrain(cur, 2, nil, Size{}, testRendered)
	assert.False(t, ok)
	assert.Equal(t, cur, got)

	got, ok = Constrain(cur, 2, nil, testContainer, Size{Width: math.NaN(), Height: 10})
	assert.False(t, ok)
	assert.Equal(t, cur, got)
}

func TestConstrain_CenterFocalKeepsPanZero(t *testing.T) {
	center := testContainer.Center()

	got, ok := Constrain(Identity(), 2, &center, testContainer, testRendered)

	require.True(t, ok)
	assert.Equal(t, 2.0, got.Zoom)
	assert.Equal(t, Point{}, got.Pan)
}

func TestConstrain_FocalPointStaysFixed(t *testing.T) {
	// Large image so the pan bound does not interfere.
	container := Size{Width: 400, Height: 400}
	rendered := Size{Width: 400, Height: 400}
	focal := Point{X: 300, Y: 250}
	cur := Identity()

	got, ok := Constrain(cur, 2, &focal, container, rendered)
	require.True(t, ok)

	// Image point under the focal before and after the change.
	f := focal.Sub(container.Center())
	before := Point{X: (f.X - cur.Pan.X) / cur.Zoom, Y: (f.Y - cur.Pan.Y) / cur.Zoom}
	after := Point{X: (f.X - got.Pan.X) / got.Zoom, Y: (f.Y - got.Pan.Y) / got.Zoom}
	assert.InDelta(t, before.X, after.X, 1e-9)
	assert.InDelta(t, before.Y, after.Y, 1e-9)
	assert.Equal(t, Point{X: -100, Y: -50}, got.Pan)
}

func TestConstrain_PanWithinBounds(t *testing.T) {
	focals := []Point{{0, 0}, {800, 600}, {0, 600}, {799, 1}, {400, 300}, {-500, 9000}}
	zooms := []float64{1.1, 1.3, 1.5, 2, 2.5, 4}
	for _, z := range zooms {
		for _, f := range focals {
			focal := f
			got, ok := Constrain(Transform{Zoom: 1.2, Pan: Point{X: 30, Y: -20}}, z, &focal, testContainer, testRendered)
			require.True(t, ok)
			limit := PanLimit(got.Zoom, testContainer, testRendered)
			assert.LessOrEqual(t, math.Abs(got.Pan.X), limit.X, "zoom=%v focal=%v", z, f)
			assert.LessOrEqual(t, math.Abs(got.Pan.Y), limit.Y, "zoom=%v focal=%v", z, f)
		}
	}
}

func TestConstrain_NoFocalKeepsPanButRebounds(t *testing.T) {
	cur := Transform{Zoom: 2.5, Pan: Point{X: 600, Y: 0}}

	got, ok := Constrain(cur, 1.5, nil, testContainer, testRendered)

	require.True(t, ok)
	assert.Equal(t, 1.5, got.Zoom)
	// (800*1.5 - 800)/2 = 200
	assert.Equal(t, 200.0, got.Pan.X)
	// (500*1.5 - 600)/2 = 75, pan was 0
	assert.Equal(t, 0.0, got.Pan.Y)
}

func TestPanLimit_SmallImageHasNoSlack(t *testing.T) {
	limit := PanLimit(1.1, Size{Width: 1000, Height: 1000}, Size{Width: 400, Height: 300})
	assert.Equal(t, Point{}, limit)
}

func TestClampPan_ZeroAtMinZoom(t *testing.T) {
	assert.Equal(t, Point{}, ClampPan(Point{X: 50, Y: 50}, MinZoom, testContainer, testRendered))
}

func TestFitContain(t *testing.T) {
	got := FitContain(Size{Width: 4000, Height: 3000}, Size{Width: 800, Height: 800})
	assert.Equal(t, Size{Width: 800, Height: 600}, got)

	assert.Equal(t, Size{}, FitContain(Size{}, Size{Width: 10, Height: 10}))
}
