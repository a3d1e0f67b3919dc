package widgets

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	ttwidget "github.com/dweymouth/fyne-tooltip/widget"

	"github.com/piwi3910/StudioFolio/internal/viewer"
)

// Lightbox colors.
var (
	colorBackdrop    = color.NRGBA{R: 12, G: 12, B: 12, A: 245}
	colorPlaceholder = color.NRGBA{R: 46, G: 44, B: 41, A: 255}
	colorHUDText     = color.NRGBA{R: 235, G: 232, B: 226, A: 255}
	colorHUDDim      = color.NRGBA{R: 160, G: 156, B: 150, A: 255}
	colorThumbActive = color.NRGBA{R: 235, G: 232, B: 226, A: 255}
)

const (
	lightboxBarHeight   = float32(48)
	lightboxStripHeight = float32(86)
	lightboxSideInset   = float32(12)
	thumbWidth          = float32(96)
	thumbHeight         = float32(64)
)

// Lightbox is a full-window image viewer. It turns Fyne pointer, touch,
// wheel and tap events into viewer.Viewer calls and draws the viewer's
// current image and transform.
type Lightbox struct {
	widget.BaseWidget
	v      *viewer.Viewer
	images *ImageLoader

	// OnClosed runs when the viewer closes, from any of its close paths.
	OnClosed func()

	touchDown bool
	mouseDown bool
}

// NewLightbox creates a lightbox for v. The widget refreshes itself on every
// viewer change.
func NewLightbox(v *viewer.Viewer, images *ImageLoader) *Lightbox {
	lb := &Lightbox{v: v, images: images}
	lb.ExtendBaseWidget(lb)
	v.OnChange(lb.changed)
	return lb
}

func (lb *Lightbox) changed() {
	if !lb.v.IsOpen() {
		lb.touchDown, lb.mouseDown = false, false
		if lb.OnClosed != nil {
			lb.OnClosed()
		}
		return
	}
	lb.Refresh()
}

// Viewer returns the engine driving the lightbox.
func (lb *Lightbox) Viewer() *viewer.Viewer { return lb.v }

// CreateRenderer implements fyne.Widget.
func (lb *Lightbox) CreateRenderer() fyne.WidgetRenderer {
	return newLightboxRenderer(lb)
}

// imageArea is the region the image is fitted into, in widget coordinates.
func (lb *Lightbox) imageArea() (fyne.Position, fyne.Size) {
	size := lb.Size()
	h := size.Height - lightboxBarHeight - lightboxStripHeight
	if h < 0 {
		h = 0
	}
	return fyne.NewPos(0, lightboxBarHeight), fyne.NewSize(size.Width, h)
}

// toViewer converts a widget position to image-area coordinates.
func (lb *Lightbox) toViewer(p fyne.Position) viewer.Point {
	origin, _ := lb.imageArea()
	return viewer.Point{X: float64(p.X - origin.X), Y: float64(p.Y - origin.Y)}
}

// imageRect is where the image is drawn for the current transform.
func (lb *Lightbox) imageRect() (fyne.Position, fyne.Size) {
	origin, _ := lb.imageArea()
	box, rendered := lb.v.Layout()
	xf := lb.v.Transform()
	w := rendered.Width * xf.Zoom
	h := rendered.Height * xf.Zoom
	c := box.Center()
	x := c.X + xf.Pan.X - w/2
	y := c.Y + xf.Pan.Y - h/2
	return fyne.NewPos(origin.X+float32(x), origin.Y+float32(y)), fyne.NewSize(float32(w), float32(h))
}

func (lb *Lightbox) onImage(p fyne.Position) bool {
	pos, size := lb.imageRect()
	return p.X >= pos.X && p.X <= pos.X+size.Width && p.Y >= pos.Y && p.Y <= pos.Y+size.Height
}

func (lb *Lightbox) inStrip(p fyne.Position) bool {
	return p.Y >= lb.Size().Height-lightboxStripHeight
}

// Tapped closes the viewer when the backdrop is tapped.
func (lb *Lightbox) Tapped(ev *fyne.PointEvent) {
	if lb.inStrip(ev.Position) || lb.onImage(ev.Position) {
		return
	}
	lb.v.Close()
}

// DoubleTapped toggles zoom around the tap.
func (lb *Lightbox) DoubleTapped(ev *fyne.PointEvent) {
	if !lb.onImage(ev.Position) {
		return
	}
	lb.v.DoubleTap(lb.toViewer(ev.Position))
}

// MouseDown starts a potential pan.
func (lb *Lightbox) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	lb.mouseDown = true
	lb.v.PointerDown(lb.toViewer(ev.Position))
}

// MouseUp ends a pan.
func (lb *Lightbox) MouseUp(*desktop.MouseEvent) {
	lb.mouseDown = false
	lb.v.PointerUp()
}

// Dragged feeds pointer or touch moves to the engine.
func (lb *Lightbox) Dragged(ev *fyne.DragEvent) {
	at := lb.toViewer(ev.Position)
	if lb.touchDown {
		// PreventScroll needs no action: the lightbox sits in a modal popup,
		// so moves never reach the page beneath.
		_ = lb.v.TouchMove([]viewer.Point{at})
		return
	}
	if !lb.mouseDown {
		// Some drivers deliver drags without a preceding MouseDown.
		lb.mouseDown = true
		lb.v.PointerDown(lb.toViewer(ev.Position.Subtract(ev.Dragged)))
	}
	lb.v.PointerMove(at)
}

// DragEnd implements fyne.Draggable.
func (lb *Lightbox) DragEnd() {
	if lb.touchDown {
		return
	}
	lb.mouseDown = false
	lb.v.PointerUp()
}

// TouchDown implements mobile.Touchable. Fyne reports one touch point per
// event, so multi-finger pinch is only reachable through the engine API.
func (lb *Lightbox) TouchDown(ev *mobile.TouchEvent) {
	lb.touchDown = true
	lb.v.TouchStart([]viewer.Point{lb.toViewer(ev.Position)})
}

// TouchUp implements mobile.Touchable.
func (lb *Lightbox) TouchUp(ev *mobile.TouchEvent) {
	lb.touchDown = false
	lb.v.TouchEnd(nil, lb.toViewer(ev.Position))
}

// TouchCancel implements mobile.Touchable.
func (lb *Lightbox) TouchCancel(*mobile.TouchEvent) {
	lb.touchDown = false
	lb.v.TouchCancel()
}

// Scrolled zooms on Ctrl/Cmd + wheel. Fyne's positive DY scrolls up, the
// engine expects negative for up.
func (lb *Lightbox) Scrolled(ev *fyne.ScrollEvent) {
	lb.v.Wheel(-float64(ev.Scrolled.DY), lb.toViewer(ev.Position), currentModifiers())
}

func currentModifiers() viewer.Modifier {
	app := fyne.CurrentApp()
	if app == nil {
		return 0
	}
	drv, ok := app.Driver().(desktop.Driver)
	if !ok {
		return 0
	}
	return ModifiersFromFyne(drv.CurrentKeyModifiers())
}

func isMobile() bool {
	if fyne.CurrentApp() == nil {
		return false
	}
	return fyne.CurrentDevice().IsMobile()
}

// ModifiersFromFyne maps Fyne key modifiers to engine modifiers.
func ModifiersFromFyne(m fyne.KeyModifier) viewer.Modifier {
	var out viewer.Modifier
	if m&fyne.KeyModifierShift != 0 {
		out |= viewer.ModShift
	}
	if m&fyne.KeyModifierControl != 0 {
		out |= viewer.ModControl
	}
	if m&fyne.KeyModifierAlt != 0 {
		out |= viewer.ModAlt
	}
	if m&fyne.KeyModifierSuper != 0 {
		out |= viewer.ModSuper
	}
	return out
}

// KeyFromFyne maps the keys the viewer reacts to.
func KeyFromFyne(k fyne.KeyName) viewer.Key {
	switch k {
	case fyne.KeyEscape:
		return viewer.KeyEscape
	case fyne.KeyLeft:
		return viewer.KeyLeft
	case fyne.KeyRight:
		return viewer.KeyRight
	}
	return viewer.KeyOther
}

// ─── Renderer ─────────────────────────────────────────────

type lightboxRenderer struct {
	lb *Lightbox

	backdrop    *canvas.Rectangle
	image       *canvas.Image
	placeholder *canvas.Rectangle
	missing     *canvas.Text
	title       *canvas.Text
	counter     *canvas.Text
	zoom        *canvas.Text
	hint        *canvas.Text
	closeBtn    *ttwidget.Button
	resetBtn    *ttwidget.Button
	prevBtn     *ttwidget.Button
	nextBtn     *ttwidget.Button
	thumbs      []*Thumbnail
	strip       *container.Scroll

	loaded  string
	natural viewer.Size
}

func newLightboxRenderer(lb *Lightbox) *lightboxRenderer {
	r := &lightboxRenderer{lb: lb}
	v := lb.v

	r.backdrop = canvas.NewRectangle(colorBackdrop)
	r.image = canvas.NewImageFromResource(nil)
	r.image.FillMode = canvas.ImageFillStretch
	r.image.ScaleMode = canvas.ImageScaleSmooth
	r.placeholder = canvas.NewRectangle(colorPlaceholder)
	r.missing = canvas.NewText("Image unavailable", colorHUDDim)
	r.missing.Alignment = fyne.TextAlignCenter

	r.title = canvas.NewText(v.Gallery().Name, colorHUDText)
	r.title.TextStyle = fyne.TextStyle{Bold: true}
	r.counter = canvas.NewText("", colorHUDText)
	r.counter.TextStyle = fyne.TextStyle{Monospace: true}
	r.zoom = canvas.NewText("", colorHUDDim)
	r.zoom.TextStyle = fyne.TextStyle{Monospace: true}
	r.hint = canvas.NewText("", colorHUDDim)
	r.hint.TextSize = theme.CaptionTextSize()

	r.closeBtn = newHUDButton(theme.CancelIcon(), "Close (Esc)", v.Close)
	r.resetBtn = newHUDButton(theme.ZoomFitIcon(), "Reset zoom", v.ResetZoom)
	r.prevBtn = newHUDButton(theme.NavigateBackIcon(), "Previous image", v.Prev)
	r.nextBtn = newHUDButton(theme.NavigateNextIcon(), "Next image", v.Next)

	row := container.NewHBox()
	for i, ref := range v.Gallery().Images {
		idx := i
		t := NewThumbnail(lb.images.Load(ref), fyne.NewSize(thumbWidth, thumbHeight), func() { v.GoTo(idx) })
		r.thumbs = append(r.thumbs, t)
		row.Add(t)
	}
	r.strip = container.NewHScroll(container.NewCenter(row))

	r.update()
	return r
}

func newHUDButton(icon fyne.Resource, tip string, tapped func()) *ttwidget.Button {
	btn := ttwidget.NewButtonWithIcon("", icon, tapped)
	btn.Importance = widget.LowImportance
	btn.SetToolTip(tip)
	return btn
}

// update syncs text, visibility and the loaded image with the viewer.
func (r *lightboxRenderer) update() {
	v := r.lb.v
	if v.Len() == 0 {
		return
	}

	if ref := v.Current(); ref != r.loaded {
		r.loaded = ref
		pic := r.lb.images.Load(ref)
		r.image.Resource = pic.Resource
		r.image.Refresh()
		if pic.Available() {
			r.image.Show()
			r.placeholder.Hide()
			r.missing.Hide()
		} else {
			r.image.Hide()
			r.placeholder.Show()
			r.missing.Show()
		}
		r.natural = pic.Natural
	}

	r.counter.Text = v.Counter()
	r.zoom.Text = v.ZoomPercent()
	r.hint.Text = v.Hint(isMobile())
	if v.Zoomed() {
		r.resetBtn.Show()
	} else {
		r.resetBtn.Hide()
	}
	if v.Len() < 2 {
		r.prevBtn.Hide()
		r.nextBtn.Hide()
	}
	for i, t := range r.thumbs {
		t.setActive(i == v.Index())
	}
	canvas.Refresh(r.counter)
	canvas.Refresh(r.zoom)
	canvas.Refresh(r.hint)
}

func (r *lightboxRenderer) Layout(size fyne.Size) {
	lb := r.lb
	r.backdrop.Resize(size)
	r.backdrop.Move(fyne.NewPos(0, 0))

	// Image area, fitted image, then the engine's transform.
	origin, area := lb.imageArea()
	box := viewer.Size{Width: float64(area.Width), Height: float64(area.Height)}
	lb.v.SetLayout(box, viewer.FitContain(r.natural, box))

	pos, imgSize := lb.imageRect()
	for _, o := range []fyne.CanvasObject{r.image, r.placeholder} {
		o.Move(pos)
		o.Resize(imgSize)
	}
	r.missing.Move(fyne.NewPos(pos.X, pos.Y+imgSize.Height/2-r.missing.MinSize().Height/2))
	r.missing.Resize(fyne.NewSize(imgSize.Width, r.missing.MinSize().Height))

	// Top bar.
	pad := theme.Padding() * 2
	btn := r.closeBtn.MinSize()
	textY := (lightboxBarHeight - r.title.MinSize().Height) / 2
	r.title.Move(fyne.NewPos(pad, textY))
	r.counter.Move(fyne.NewPos(pad+r.title.MinSize().Width+pad*2, textY))
	r.zoom.Move(fyne.NewPos(r.counter.Position().X+r.counter.MinSize().Width+pad*2, textY))
	r.hint.Move(fyne.NewPos(r.zoom.Position().X+r.zoom.MinSize().Width+pad*2, (lightboxBarHeight-r.hint.MinSize().Height)/2))
	r.closeBtn.Resize(btn)
	r.closeBtn.Move(fyne.NewPos(size.Width-btn.Width-pad, (lightboxBarHeight-btn.Height)/2))
	r.resetBtn.Resize(btn)
	r.resetBtn.Move(fyne.NewPos(r.closeBtn.Position().X-btn.Width-pad, r.closeBtn.Position().Y))

	// Side navigation.
	midY := origin.Y + area.Height/2 - btn.Height/2
	r.prevBtn.Resize(btn)
	r.prevBtn.Move(fyne.NewPos(lightboxSideInset, midY))
	r.nextBtn.Resize(btn)
	r.nextBtn.Move(fyne.NewPos(size.Width-btn.Width-lightboxSideInset, midY))

	// Thumbnail strip.
	r.strip.Move(fyne.NewPos(0, size.Height-lightboxStripHeight))
	r.strip.Resize(fyne.NewSize(size.Width, lightboxStripHeight))
}

func (r *lightboxRenderer) MinSize() fyne.Size {
	return fyne.NewSize(320, lightboxBarHeight+lightboxStripHeight+120)
}

func (r *lightboxRenderer) Refresh() {
	r.update()
	r.Layout(r.lb.Size())
	canvas.Refresh(r.lb)
}

func (r *lightboxRenderer) Destroy() {}

func (r *lightboxRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{
		r.backdrop, r.placeholder, r.image, r.missing,
		r.title, r.counter, r.zoom, r.hint,
		r.prevBtn, r.nextBtn, r.resetBtn, r.closeBtn,
		r.strip,
	}
}

// ─── Thumbnails ───────────────────────────────────────────

// Thumbnail is a tappable fixed-size preview of a gallery image.
type Thumbnail struct {
	widget.BaseWidget
	pic    Picture
	size   fyne.Size
	onTap  func()
	active bool
}

// NewThumbnail creates a preview of pic with minimum size size.
func NewThumbnail(pic Picture, size fyne.Size, onTap func()) *Thumbnail {
	t := &Thumbnail{pic: pic, size: size, onTap: onTap}
	t.ExtendBaseWidget(t)
	return t
}

func (t *Thumbnail) setActive(active bool) {
	if t.active == active {
		return
	}
	t.active = active
	t.Refresh()
}

// Tapped implements fyne.Tappable.
func (t *Thumbnail) Tapped(*fyne.PointEvent) {
	if t.onTap != nil {
		t.onTap()
	}
}

func (t *Thumbnail) CreateRenderer() fyne.WidgetRenderer {
	var img fyne.CanvasObject
	if t.pic.Available() {
		ci := canvas.NewImageFromResource(t.pic.Resource)
		ci.FillMode = canvas.ImageFillContain
		img = ci
	} else {
		img = canvas.NewRectangle(colorPlaceholder)
	}
	border := canvas.NewRectangle(color.Transparent)
	border.StrokeWidth = 2
	r := &thumbnailRenderer{t: t, img: img, border: border}
	r.Refresh()
	return r
}

type thumbnailRenderer struct {
	t      *Thumbnail
	img    fyne.CanvasObject
	border *canvas.Rectangle
}

func (r *thumbnailRenderer) Layout(size fyne.Size) {
	r.img.Resize(size)
	r.border.Resize(size)
}

func (r *thumbnailRenderer) MinSize() fyne.Size { return r.t.size }

func (r *thumbnailRenderer) Refresh() {
	if r.t.active {
		r.border.StrokeColor = colorThumbActive
	} else {
		r.border.StrokeColor = color.Transparent
	}
	r.border.Refresh()
}

func (r *thumbnailRenderer) Destroy() {}

func (r *thumbnailRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.img, r.border}
}
