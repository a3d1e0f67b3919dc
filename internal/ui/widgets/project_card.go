package widgets

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/StudioFolio/internal/model"
)

// Card colors.
var (
	colorCardBorder = color.NRGBA{R: 210, G: 205, B: 196, A: 255}
	colorCardHover  = color.NRGBA{R: 120, G: 112, B: 100, A: 255}
	colorCardMeta   = color.NRGBA{R: 128, G: 122, B: 114, A: 255}
)

const (
	cardWidth       = float32(300)
	cardImageHeight = float32(200)
	cardTextHeight  = float32(64)
)

// ProjectCard shows a project's cover, name and facets in the project grid.
type ProjectCard struct {
	widget.BaseWidget
	project model.Project
	cover   Picture
	hovered bool

	OnTapped func(model.Project)
}

// NewProjectCard creates a card for p, loading its cover through images.
func NewProjectCard(p model.Project, images *ImageLoader, tapped func(model.Project)) *ProjectCard {
	c := &ProjectCard{project: p, OnTapped: tapped}
	if p.HasImages() {
		c.cover = images.Load(p.Cover())
	}
	c.ExtendBaseWidget(c)
	return c
}

// Project returns the card's project.
func (c *ProjectCard) Project() model.Project { return c.project }

// Tapped implements fyne.Tappable.
func (c *ProjectCard) Tapped(*fyne.PointEvent) {
	if c.OnTapped != nil {
		c.OnTapped(c.project)
	}
}

// MouseIn implements desktop.Hoverable.
func (c *ProjectCard) MouseIn(*desktop.MouseEvent) {
	c.hovered = true
	c.Refresh()
}

// MouseMoved implements desktop.Hoverable.
func (c *ProjectCard) MouseMoved(*desktop.MouseEvent) {}

// MouseOut implements desktop.Hoverable.
func (c *ProjectCard) MouseOut() {
	c.hovered = false
	c.Refresh()
}

func (c *ProjectCard) CreateRenderer() fyne.WidgetRenderer {
	return newProjectCardRenderer(c)
}

type projectCardRenderer struct {
	c       *ProjectCard
	objects []fyne.CanvasObject
}

func newProjectCardRenderer(c *ProjectCard) *projectCardRenderer {
	r := &projectCardRenderer{c: c}
	r.rebuild()
	return r
}

func (r *projectCardRenderer) rebuild() {
	r.objects = nil
	p := r.c.project

	// Cover image, or a flat panel for projects without pictures
	if r.c.cover.Available() {
		img := canvas.NewImageFromResource(r.c.cover.Resource)
		img.FillMode = canvas.ImageFillContain
		img.Resize(fyne.NewSize(cardWidth, cardImageHeight))
		r.objects = append(r.objects, img)
	} else {
		panel := canvas.NewRectangle(colorPlaceholder)
		panel.Resize(fyne.NewSize(cardWidth, cardImageHeight))
		r.objects = append(r.objects, panel)

		msg := "Images coming soon"
		if p.HasImages() {
			msg = "Image unavailable"
		}
		txt := canvas.NewText(msg, colorHUDDim)
		txt.Alignment = fyne.TextAlignCenter
		txt.Move(fyne.NewPos(0, cardImageHeight/2-txt.MinSize().Height/2))
		txt.Resize(fyne.NewSize(cardWidth, txt.MinSize().Height))
		r.objects = append(r.objects, txt)
	}

	// Name and facets
	name := canvas.NewText(truncateLabel(p.Name, 34), theme.Color(theme.ColorNameForeground))
	name.TextStyle = fyne.TextStyle{Bold: true}
	name.Move(fyne.NewPos(8, cardImageHeight+8))
	r.objects = append(r.objects, name)

	meta := canvas.NewText(fmt.Sprintf("%s · %s", p.Location, p.Type), colorCardMeta)
	meta.TextSize = 12
	meta.Move(fyne.NewPos(8, cardImageHeight+32))
	r.objects = append(r.objects, meta)

	if n := len(p.Images); n > 0 {
		count := canvas.NewText(fmt.Sprintf("%d images", n), colorCardMeta)
		count.TextSize = 12
		count.Alignment = fyne.TextAlignTrailing
		count.Move(fyne.NewPos(0, cardImageHeight+32))
		count.Resize(fyne.NewSize(cardWidth-8, count.MinSize().Height))
		r.objects = append(r.objects, count)
	}

	// Border, darker while hovered
	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = colorCardBorder
	if r.c.hovered {
		border.StrokeColor = colorCardHover
	}
	border.StrokeWidth = 1
	border.Resize(fyne.NewSize(cardWidth, cardImageHeight+cardTextHeight))
	r.objects = append(r.objects, border)
}

func (r *projectCardRenderer) Layout(size fyne.Size) {}

func (r *projectCardRenderer) MinSize() fyne.Size {
	return fyne.NewSize(cardWidth, cardImageHeight+cardTextHeight)
}

func (r *projectCardRenderer) Refresh() {
	r.rebuild()
	canvas.Refresh(r.c)
}

func (r *projectCardRenderer) Destroy() {}

func (r *projectCardRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func truncateLabel(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
