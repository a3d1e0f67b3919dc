package widgets

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/StudioFolio/internal/viewer"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestImageLoader(t *testing.T) {
	root := t.TempDir()
	writePNG(t, filepath.Join(root, "projects", "a", "a-1.png"), 40, 20)
	l := NewImageLoader(root)

	pic := l.Load("/projects/a/a-1.png")
	require.True(t, pic.Available())
	assert.Equal(t, viewer.Size{Width: 40, Height: 20}, pic.Natural)

	missing := l.Load("/projects/a/a-2.avif")
	assert.False(t, missing.Available())
	assert.Equal(t, placeholderSize, missing.Natural)

	// Cached results survive the file going away.
	require.NoError(t, os.RemoveAll(filepath.Join(root, "projects")))
	assert.True(t, l.Load("/projects/a/a-1.png").Available())
}

func TestImageLoaderNil(t *testing.T) {
	var l *ImageLoader
	pic := l.Load("/x.png")
	assert.False(t, pic.Available())
	assert.Equal(t, "/x.png", pic.Ref)
}

func TestLockableScrollAcquire(t *testing.T) {
	test.NewTempApp(t)
	ls := NewLockableScroll(widget.NewLabel("content"))

	release1 := ls.Acquire()
	release2 := ls.Acquire()
	assert.True(t, ls.Locked())

	release1()
	release1() // releasing twice is harmless
	assert.True(t, ls.Locked(), "second lock still held")

	release2()
	assert.False(t, ls.Locked())
	assert.Equal(t, container.ScrollVerticalOnly, ls.scroll.Direction)
}

func TestLockableScrollLockKeepsLayout(t *testing.T) {
	test.NewTempApp(t)
	tall := canvas.NewRectangle(color.Black)
	tall.SetMinSize(fyne.NewSize(200, 3000))
	ls := NewLockableScroll(tall)
	ls.Resize(fyne.NewSize(200, 400))
	before := ls.MinSize()

	release := ls.Acquire()
	assert.Equal(t, before, ls.MinSize(), "locking must not grow the page")
	assert.Equal(t, container.ScrollVerticalOnly, ls.scroll.Direction)

	wheel := &fyne.ScrollEvent{Scrolled: fyne.NewDelta(0, -100)}
	ls.scroll.Scrolled(wheel)
	ls.Scrolled(wheel)
	assert.Zero(t, ls.scroll.Offset.Y, "wheel is ignored while locked")

	release()
	assert.Equal(t, before, ls.MinSize())
	ls.scroll.Scrolled(wheel)
	assert.InDelta(t, 100, ls.scroll.Offset.Y, 0.001)
}

func TestModifiersFromFyne(t *testing.T) {
	assert.Equal(t, viewer.Modifier(0), ModifiersFromFyne(0))
	assert.Equal(t, viewer.ModControl, ModifiersFromFyne(fyne.KeyModifierControl))
	assert.Equal(t, viewer.ModSuper|viewer.ModShift,
		ModifiersFromFyne(fyne.KeyModifierSuper|fyne.KeyModifierShift))
	assert.Equal(t, viewer.ModAlt, ModifiersFromFyne(fyne.KeyModifierAlt))
}

func TestKeyFromFyne(t *testing.T) {
	assert.Equal(t, viewer.KeyEscape, KeyFromFyne(fyne.KeyEscape))
	assert.Equal(t, viewer.KeyLeft, KeyFromFyne(fyne.KeyLeft))
	assert.Equal(t, viewer.KeyRight, KeyFromFyne(fyne.KeyRight))
	assert.Equal(t, viewer.KeyOther, KeyFromFyne(fyne.KeySpace))
}

func newTestLightbox(t *testing.T) (*Lightbox, *viewer.Viewer) {
	t.Helper()
	test.NewTempApp(t)
	v, err := viewer.New(viewer.Gallery{Name: "Test", Images: []string{"/a.avif", "/b.avif", "/c.avif"}})
	require.NoError(t, err)
	lb := NewLightbox(v, NewImageLoader(""))
	test.WidgetRenderer(lb)
	require.True(t, v.Open(0))
	lb.Resize(fyne.NewSize(800, 600))
	return lb, v
}

func TestLightboxLayoutMeasuresViewer(t *testing.T) {
	_, v := newTestLightbox(t)

	box, rendered := v.Layout()
	assert.Equal(t, viewer.Size{Width: 800, Height: float64(600 - lightboxBarHeight - lightboxStripHeight)}, box)
	// The 3:2 placeholder is height bound in this area.
	assert.InDelta(t, box.Height, rendered.Height, 0.001)
	assert.InDelta(t, box.Height*1.5, rendered.Width, 0.001)
}

func TestLightboxBackdropTapCloses(t *testing.T) {
	lb, v := newTestLightbox(t)
	closed := false
	lb.OnClosed = func() { closed = true }

	// On the image: stays open.
	lb.Tapped(&fyne.PointEvent{Position: fyne.NewPos(400, 300)})
	assert.True(t, v.IsOpen())

	// In the thumbnail strip: stays open.
	lb.Tapped(&fyne.PointEvent{Position: fyne.NewPos(10, 590)})
	assert.True(t, v.IsOpen())

	// Backdrop beside the image.
	lb.Tapped(&fyne.PointEvent{Position: fyne.NewPos(10, 300)})
	assert.False(t, v.IsOpen())
	assert.True(t, closed)
}

func TestLightboxDoubleTapZooms(t *testing.T) {
	lb, v := newTestLightbox(t)

	lb.DoubleTapped(&fyne.PointEvent{Position: fyne.NewPos(400, 300)})
	assert.True(t, v.Zoomed())
	assert.Equal(t, "200%", v.ZoomPercent())

	lb.DoubleTapped(&fyne.PointEvent{Position: fyne.NewPos(400, 300)})
	assert.False(t, v.Zoomed())
}

func TestLightboxDragPansWhenZoomed(t *testing.T) {
	lb, v := newTestLightbox(t)
	require.True(t, v.ZoomTo(2, nil))

	lb.Dragged(&fyne.DragEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(420, 310)},
		Dragged:    fyne.NewDelta(20, 10),
	})
	lb.DragEnd()

	assert.InDelta(t, 20, v.Transform().Pan.X, 0.001)
	assert.InDelta(t, 10, v.Transform().Pan.Y, 0.001)
	assert.False(t, v.Dragging())
}

func TestThumbnailTap(t *testing.T) {
	test.NewTempApp(t)
	tapped := false
	th := NewThumbnail(Picture{}, fyne.NewSize(50, 40), func() { tapped = true })

	test.Tap(th)
	assert.True(t, tapped)
	assert.Equal(t, fyne.NewSize(50, 40), th.MinSize())
}
