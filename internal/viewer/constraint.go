// Package viewer implements the interaction engine behind the gallery
// lightbox: which image is shown, how far it is zoomed and panned, and how
// raw pointer, touch, wheel and key input maps onto those changes.
//
// The package has no UI dependency. The Fyne widget in internal/ui/widgets
// translates toolkit events into calls on a Viewer.
package viewer

import "math"

// Zoom limits and gesture constants.
const (
	MinZoom          = 1.0
	MaxZoom          = 2.5
	DoubleTapZoom    = 2.0  // target of a double click / double tap at MinZoom
	WheelZoomStep    = 0.1  // zoom change per modified wheel event
	MinSwipeDistance = 50.0 // px of horizontal travel needed to navigate
)

// Point is a position or offset in pixels.
type Point struct {
	X float64
	Y float64
}

// Add returns p + q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Size is a width/height pair in pixels.
type Size struct {
	Width  float64
	Height float64
}

// Valid reports whether both dimensions are finite and positive.
func (s Size) Valid() bool {
	return finite(s.Width) && finite(s.Height) && s.Width > 0 && s.Height > 0
}

// Center returns the midpoint of a box of this size anchored at the origin.
func (s Size) Center() Point { return Point{X: s.Width / 2, Y: s.Height / 2} }

// Transform is the zoom factor and pan offset applied to the displayed image.
// Pan is measured from the centered position.
type Transform struct {
	Zoom float64
	Pan  Point
}

// Identity is the unzoomed, centered transform.
func Identity() Transform { return Transform{Zoom: MinZoom} }

// IsIdentity reports whether t is the unzoomed, centered transform.
func (t Transform) IsIdentity() bool {
	return t.Zoom == MinZoom && t.Pan == Point{}
}

// ClampZoom limits z to [MinZoom, MaxZoom]. Non-finite values map to MinZoom.
func ClampZoom(z float64) float64 {
	if !finite(z) {
		return MinZoom
	}
	return math.Max(MinZoom, math.Min(MaxZoom, z))
}

// PanLimit returns the largest pan magnitude on each axis that keeps the
// scaled image covering the container.
func PanLimit(zoom float64, container, rendered Size) Point {
	return Point{
		X: math.Max(0, (rendered.Width*zoom-container.Width)/2),
		Y: math.Max(0, (rendered.Height*zoom-container.Height)/2),
	}
}

// ClampPan bounds pan for the given zoom. At MinZoom the pan is always zero.
func ClampPan(pan Point, zoom float64, container, rendered Size) Point {
	if zoom <= MinZoom {
		return Point{}
	}
	limit := PanLimit(zoom, container, rendered)
	return Point{
		X: math.Max(-limit.X, math.Min(limit.X, pan.X)),
		Y: math.Max(-limit.Y, math.Min(limit.Y, pan.Y)),
	}
}

// Constrain computes the transform that results from requesting zoom
// level requested while current is applied. focal, when non-nil, is in
// container coordinates (origin top-left) and stays visually fixed.
// rendered is the image's fitted size at zoom 1.
//
// The second result is false when the measurements are unusable; current
// is returned unchanged in that case.
func Constrain(current Transform, requested float64, focal *Point, container, rendered Size) (Transform, bool) {
	if !container.Valid() || !rendered.Valid() {
		return current, false
	}
	zoom := ClampZoom(requested)
	if zoom == MinZoom {
		return Identity(), true
	}

	oldZoom := current.Zoom
	if !finite(oldZoom) || oldZoom < MinZoom {
		oldZoom = MinZoom
	}
	pan := current.Pan
	if focal != nil && finite(focal.X) && finite(focal.Y) {
		f := focal.Sub(container.Center())
		ratio := zoom / oldZoom
		pan = pan.Add(Point{
			X: (f.X - pan.X) * (1 - ratio),
			Y: (f.Y - pan.Y) * (1 - ratio),
		})
	}
	return Transform{Zoom: zoom, Pan: ClampPan(pan, zoom, container, rendered)}, true
}

// FitContain returns the size of an image of natural size img scaled to fit
// inside box while preserving its aspect ratio.
func FitContain(img, box Size) Size {
	if !img.Valid() || !box.Valid() {
		return Size{}
	}
	scale := math.Min(box.Width/img.Width, box.Height/img.Height)
	return Size{Width: img.Width * scale, Height: img.Height * scale}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
