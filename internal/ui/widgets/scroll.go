package widgets

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// LockableScroll is a vertical scroll container whose scrolling can be
// suspended while an overlay owns the wheel. Locking leaves the scroll
// direction alone so the page keeps its size.
type LockableScroll struct {
	widget.BaseWidget
	scroll *pageScroll
	locks  int
}

// pageScroll is the inner scroll. The driver delivers wheel and touch
// scrolling to it directly, so the lock is checked here.
type pageScroll struct {
	container.Scroll
	owner *LockableScroll
}

func (s *pageScroll) Scrolled(ev *fyne.ScrollEvent) {
	if s.owner.Locked() {
		return
	}
	s.Scroll.Scrolled(ev)
}

// NewLockableScroll wraps content in a vertical scroll.
func NewLockableScroll(content fyne.CanvasObject) *LockableScroll {
	ls := &LockableScroll{}
	ls.scroll = &pageScroll{owner: ls}
	ls.scroll.Direction = container.ScrollVerticalOnly
	ls.scroll.Content = content
	ls.scroll.ExtendBaseWidget(ls.scroll)
	ls.ExtendBaseWidget(ls)
	return ls
}

// Acquire locks scrolling and returns the matching unlock. Locks nest; the
// returned func is safe to call more than once.
func (ls *LockableScroll) Acquire() func() {
	ls.locks++
	released := false
	return func() {
		if released {
			return
		}
		released = true
		ls.locks--
	}
}

// Locked reports whether scrolling is suspended.
func (ls *LockableScroll) Locked() bool { return ls.locks > 0 }

// SetContent replaces the scrolled content and returns to the top.
func (ls *LockableScroll) SetContent(content fyne.CanvasObject) {
	ls.scroll.Content = content
	ls.scroll.Offset = fyne.Position{}
	ls.scroll.Refresh()
}

// ScrollToTop resets the offset.
func (ls *LockableScroll) ScrollToTop() {
	ls.scroll.ScrollToTop()
}

// Scrolled forwards wheel events unless locked.
func (ls *LockableScroll) Scrolled(ev *fyne.ScrollEvent) {
	ls.scroll.Scrolled(ev)
}

func (ls *LockableScroll) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(ls.scroll)
}

func (ls *LockableScroll) MinSize() fyne.Size {
	return ls.scroll.MinSize()
}
