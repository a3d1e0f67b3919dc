package viewer

import (
	"errors"
	"fmt"
	"math"
)

// ErrEmptyGallery is returned by New when the gallery has no images.
var ErrEmptyGallery = errors.New("viewer: gallery has no images")

// Gallery is the ordered list of image references a Viewer pages through.
type Gallery struct {
	Name   string
	Images []string
}

// Resource is something held for as long as the viewer is open, such as a
// page scroll lock or a global key listener. Acquire returns the function
// that gives it back.
type Resource interface {
	Acquire() (release func())
}

// ResourceFunc adapts a plain function to Resource.
type ResourceFunc func() func()

// Acquire calls f.
func (f ResourceFunc) Acquire() func() { return f() }

// Key is a navigation key understood by the viewer.
type Key int

const (
	KeyOther Key = iota
	KeyEscape
	KeyLeft
	KeyRight
)

// Hint texts shown while the image is unzoomed.
const (
	HintTouch   = "Pinch to zoom"
	HintPointer = "Double-click or Ctrl+scroll to zoom"
)

// Viewer owns the lightbox state: whether it is open, which image is
// selected, the current zoom/pan and the in-flight gesture. It is not safe
// for concurrent use; all calls are expected on the UI event goroutine.
type Viewer struct {
	gallery Gallery

	open       bool
	index      int
	xf         Transform
	zoomedOnce bool // set on the first zoom of an open session

	container Size
	rendered  Size

	active gesture

	resources []Resource
	releases  []func()

	onChange func()
}

// New creates a closed viewer over g. The given resources are acquired on
// every Open and released on Close.
func New(g Gallery, resources ...Resource) (*Viewer, error) {
	if len(g.Images) == 0 {
		return nil, ErrEmptyGallery
	}
	images := make([]string, len(g.Images))
	copy(images, g.Images)
	return &Viewer{
		gallery:   Gallery{Name: g.Name, Images: images},
		xf:        Identity(),
		active:    idle{},
		resources: resources,
	}, nil
}

// OnChange registers fn to be called synchronously after every state change.
func (v *Viewer) OnChange(fn func()) {
	v.onChange = fn
}

func (v *Viewer) changed() {
	if v.onChange != nil {
		v.onChange()
	}
}

// Gallery returns the gallery being viewed.
func (v *Viewer) Gallery() Gallery { return v.gallery }

// Len returns the number of images.
func (v *Viewer) Len() int { return len(v.gallery.Images) }

// IsOpen reports whether the lightbox is showing.
func (v *Viewer) IsOpen() bool { return v.open }

// Index returns the selected image index.
func (v *Viewer) Index() int { return v.index }

// Current returns the selected image reference.
func (v *Viewer) Current() string { return v.gallery.Images[v.index] }

// Transform returns the live zoom and pan.
func (v *Viewer) Transform() Transform { return v.xf }

// Zoomed reports whether the image is zoomed past MinZoom.
func (v *Viewer) Zoomed() bool { return v.xf.Zoom > MinZoom }

// SetLayout records the container size and the image's fitted size at zoom
// 1. A valid layout re-bounds the current pan; an invalid one makes every
// zoom and pan request a no-op until the next valid layout.
func (v *Viewer) SetLayout(container, rendered Size) {
	v.container = container
	v.rendered = rendered
	if !v.measured() || !v.Zoomed() {
		return
	}
	pan := ClampPan(v.xf.Pan, v.xf.Zoom, container, rendered)
	if pan != v.xf.Pan {
		v.xf.Pan = pan
		v.changed()
	}
}

// Layout returns the last recorded container and rendered sizes.
func (v *Viewer) Layout() (container, rendered Size) {
	return v.container, v.rendered
}

func (v *Viewer) measured() bool {
	return v.container.Valid() && v.rendered.Valid()
}

// ─── Lifecycle ────────────────────────────────────────────

// Open shows image i with the default transform and acquires the viewer's
// resources if it was closed. An out-of-range index is ignored.
func (v *Viewer) Open(i int) bool {
	if i < 0 || i >= v.Len() {
		return false
	}
	if !v.open {
		v.open = true
		v.zoomedOnce = false
		v.releases = v.releases[:0]
		for _, r := range v.resources {
			v.releases = append(v.releases, r.Acquire())
		}
	}
	v.show(i)
	return true
}

// Close hides the viewer and releases its resources. Calling Close on a
// closed viewer does nothing.
func (v *Viewer) Close() {
	if !v.open {
		return
	}
	v.open = false
	for i := len(v.releases) - 1; i >= 0; i-- {
		if release := v.releases[i]; release != nil {
			release()
		}
	}
	v.releases = v.releases[:0]
	v.active = idle{}
	v.xf = Identity()
	v.changed()
}

// Next selects the following image, wrapping to the first.
func (v *Viewer) Next() {
	v.show((v.index + 1) % v.Len())
}

// Prev selects the preceding image, wrapping to the last.
func (v *Viewer) Prev() {
	v.show((v.index - 1 + v.Len()) % v.Len())
}

// GoTo selects image i. An out-of-range index is ignored.
func (v *Viewer) GoTo(i int) bool {
	if i < 0 || i >= v.Len() {
		return false
	}
	v.show(i)
	return true
}

func (v *Viewer) show(i int) {
	v.index = i
	v.xf = Identity()
	v.active = idle{}
	v.changed()
}

// HandleKey applies the lightbox key bindings. It reports whether the key
// was consumed; nothing is consumed while the viewer is closed.
func (v *Viewer) HandleKey(k Key) bool {
	if !v.open {
		return false
	}
	switch k {
	case KeyEscape:
		v.Close()
	case KeyLeft:
		v.Prev()
	case KeyRight:
		v.Next()
	default:
		return false
	}
	return true
}

// ─── Zoom ─────────────────────────────────────────────────

// ZoomTo requests zoom level z, keeping focal (container coordinates)
// fixed when given. It reports whether the request was applied.
func (v *Viewer) ZoomTo(z float64, focal *Point) bool {
	next, ok := Constrain(v.xf, z, focal, v.container, v.rendered)
	if !ok {
		return false
	}
	v.setTransform(next)
	return true
}

// ResetZoom returns to zoom 1 with no pan.
func (v *Viewer) ResetZoom() {
	v.setTransform(Identity())
}

// ToggleZoom is the double click / double tap action: zoom to DoubleTapZoom
// around at when unzoomed, otherwise reset.
func (v *Viewer) ToggleZoom(at Point) bool {
	if v.Zoomed() {
		v.ResetZoom()
		return true
	}
	return v.ZoomTo(DoubleTapZoom, &at)
}

func (v *Viewer) setTransform(t Transform) {
	if t == v.xf {
		return
	}
	v.xf = t
	if v.Zoomed() {
		v.zoomedOnce = true
	}
	v.changed()
}

func (v *Viewer) panBy(delta Point) bool {
	if !v.Zoomed() || !v.measured() {
		return false
	}
	pan := ClampPan(v.xf.Pan.Add(delta), v.xf.Zoom, v.container, v.rendered)
	v.setTransform(Transform{Zoom: v.xf.Zoom, Pan: pan})
	return true
}

// ─── HUD ──────────────────────────────────────────────────

// Counter formats the position as "03 / 09".
func (v *Viewer) Counter() string {
	return fmt.Sprintf("%02d / %02d", v.index+1, v.Len())
}

// ZoomPercent formats the zoom level as a whole percentage.
func (v *Viewer) ZoomPercent() string {
	return fmt.Sprintf("%d%%", int(math.Round(v.xf.Zoom*100)))
}

// Hint returns the zoom hint for the input type, or "" once the user has
// zoomed during this session or while zoomed.
func (v *Viewer) Hint(touch bool) string {
	if v.Zoomed() || v.zoomedOnce {
		return ""
	}
	if touch {
		return HintTouch
	}
	return HintPointer
}
