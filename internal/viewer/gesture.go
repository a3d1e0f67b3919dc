package viewer

import (
	"math"
)

// Modifier is a bit set of keyboard modifiers held during a pointer event.
type Modifier uint8

const (
	ModShift Modifier = 1 << iota
	ModControl
	ModAlt
	ModSuper // Cmd on macOS
)

// zoomModifiers must include at least one held key for wheel zoom.
const zoomModifiers = ModControl | ModSuper

// gesture is the in-flight interaction. Exactly one variant is active;
// idle carries no state so stale pinch or drag data cannot leak between
// interactions.
type gesture interface {
	isGesture()
}

// idle: no pointer or touch is down.
type idle struct{}

// touching: one finger is down. It becomes a swipe or a pan depending on
// the zoom level when it moves or lifts.
type touching struct {
	origin Point
	last   Point
	// afterPinch marks the finger left over from a pinch; it pans but
	// never navigates.
	afterPinch bool
}

// panning: the mouse button is held over a zoomed image.
type panning struct {
	last Point
}

// pinching: two fingers are down.
type pinching struct {
	initialDistance float64
	initialZoom     float64
}

func (idle) isGesture()     {}
func (touching) isGesture() {}
func (panning) isGesture()  {}
func (pinching) isGesture() {}

// Swipe is the navigation outcome of a completed single-finger gesture.
type Swipe int

const (
	SwipeNone Swipe = iota
	SwipePrev
	SwipeNext
)

// ClassifySwipe maps the travel of a finger from touch start to touch end
// onto a navigation. Only horizontal-dominant travel longer than
// MinSwipeDistance navigates; dragging right goes to the previous image.
func ClassifySwipe(delta Point) Swipe {
	ax, ay := math.Abs(delta.X), math.Abs(delta.Y)
	if ax <= ay || ax <= MinSwipeDistance {
		return SwipeNone
	}
	if delta.X > 0 {
		return SwipePrev
	}
	return SwipeNext
}

// PinchZoom returns the zoom requested by a pinch that started at
// initialDistance with zoom initialZoom and is now at distance. The result
// is unclamped. It reports false when the start distance cannot be divided
// by.
func PinchZoom(initialZoom, initialDistance, distance float64) (float64, bool) {
	if !(initialDistance > 0) || !finite(initialDistance) || !finite(distance) || !finite(initialZoom) {
		return 0, false
	}
	return initialZoom * (distance / initialDistance), true
}

// Distance is the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Midpoint is the point halfway between a and b.
func Midpoint(a, b Point) Point {
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// TouchResult tells the caller how to treat the platform's default
// handling of a touch move.
type TouchResult struct {
	// PreventScroll is set when the move belongs to the viewer and must
	// not scroll the page.
	PreventScroll bool
}

// ─── Touch ────────────────────────────────────────────────

// TouchStart is called when a finger goes down. touches lists every finger
// currently down, in container coordinates.
func (v *Viewer) TouchStart(touches []Point) {
	switch len(touches) {
	case 1:
		v.active = touching{origin: touches[0], last: touches[0]}
	case 2:
		v.active = pinching{
			initialDistance: Distance(touches[0], touches[1]),
			initialZoom:     v.xf.Zoom,
		}
	default:
		v.active = idle{}
	}
}

// TouchMove is called when fingers move. touches lists every finger down.
func (v *Viewer) TouchMove(touches []Point) TouchResult {
	switch g := v.active.(type) {
	case pinching:
		if len(touches) != 2 {
			return TouchResult{}
		}
		z, ok := PinchZoom(g.initialZoom, g.initialDistance, Distance(touches[0], touches[1]))
		if ok {
			mid := Midpoint(touches[0], touches[1])
			v.ZoomTo(z, &mid)
		}
		return TouchResult{PreventScroll: true}

	case touching:
		if len(touches) != 1 {
			return TouchResult{}
		}
		at := touches[0]
		delta := at.Sub(g.last)
		v.active = touching{origin: g.origin, last: at, afterPinch: g.afterPinch}
		if v.Zoomed() {
			v.panBy(delta)
			return TouchResult{PreventScroll: true}
		}
		travel := at.Sub(g.origin)
		return TouchResult{PreventScroll: math.Abs(travel.X) > math.Abs(travel.Y)}
	}
	return TouchResult{}
}

// TouchEnd is called when a finger lifts at position at. remaining lists
// the fingers still down. When none remain the gesture ends and, on an
// unzoomed image, a swipe may navigate.
func (v *Viewer) TouchEnd(remaining []Point, at Point) Swipe {
	if len(remaining) == 0 {
		g, ok := v.active.(touching)
		v.active = idle{}
		if !ok || g.afterPinch || v.Zoomed() {
			return SwipeNone
		}
		swipe := ClassifySwipe(at.Sub(g.origin))
		switch swipe {
		case SwipePrev:
			v.Prev()
		case SwipeNext:
			v.Next()
		}
		return swipe
	}
	// Dropping from a pinch to one finger continues as a pan from where
	// that finger is now.
	if len(remaining) == 1 {
		v.active = touching{origin: remaining[0], last: remaining[0], afterPinch: true}
	} else {
		v.active = idle{}
	}
	return SwipeNone
}

// TouchCancel abandons the current touch gesture.
func (v *Viewer) TouchCancel() {
	v.active = idle{}
}

// ─── Mouse ────────────────────────────────────────────────

// PointerDown is called when the primary button is pressed at at. A drag
// only pans when the image is zoomed.
func (v *Viewer) PointerDown(at Point) {
	if v.Zoomed() {
		v.active = panning{last: at}
		return
	}
	v.active = idle{}
}

// PointerMove is called while the primary button is held.
func (v *Viewer) PointerMove(at Point) bool {
	g, ok := v.active.(panning)
	if !ok {
		return false
	}
	v.active = panning{last: at}
	return v.panBy(at.Sub(g.last))
}

// PointerUp ends a mouse drag.
func (v *Viewer) PointerUp() {
	if _, ok := v.active.(panning); ok {
		v.active = idle{}
	}
}

// Dragging reports whether a mouse pan, touch or pinch is in progress.
func (v *Viewer) Dragging() bool {
	_, isIdle := v.active.(idle)
	return !isIdle
}

// Wheel handles a wheel event at the cursor position. deltaY follows the
// browser convention: negative scrolls up and zooms in. The event is only
// consumed when Ctrl or Cmd is held.
func (v *Viewer) Wheel(deltaY float64, at Point, mods Modifier) bool {
	if mods&zoomModifiers == 0 || deltaY == 0 || !finite(deltaY) {
		return false
	}
	step := WheelZoomStep
	if deltaY > 0 {
		step = -step
	}
	// Round to the step grid so repeated steps land exactly on MinZoom.
	z := math.Round((v.xf.Zoom+step)*100) / 100
	return v.ZoomTo(z, &at)
}

// DoubleTap toggles zoom around at.
func (v *Viewer) DoubleTap(at Point) bool {
	return v.ToggleZoom(at)
}
