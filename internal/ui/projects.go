package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	fynetooltip "github.com/dweymouth/fyne-tooltip"

	"github.com/piwi3910/StudioFolio/internal/model"
	"github.com/piwi3910/StudioFolio/internal/ui/widgets"
	"github.com/piwi3910/StudioFolio/internal/viewer"
)

const (
	allLocations = "All Locations"
	allTypes     = "All Types"
)

// ─── Project List ──────────────────────────────────────────

func (a *App) buildProjectList() fyne.CanvasObject {
	matches := a.catalog.Filter(a.filter)

	locOptions := []string{allLocations}
	for _, l := range model.Locations {
		locOptions = append(locOptions, string(l))
	}
	locSelect := widget.NewSelect(locOptions, nil)
	locSelect.SetSelected(orAll(string(a.filter.Location), allLocations))
	locSelect.OnChanged = func(s string) {
		a.filter.Location = ""
		if l, ok := model.ParseLocation(s); ok {
			a.filter.Location = l
		}
		a.refreshProjectList()
	}

	typeOptions := []string{allTypes}
	for _, t := range model.ProjectTypes {
		typeOptions = append(typeOptions, string(t))
	}
	typeSelect := widget.NewSelect(typeOptions, nil)
	typeSelect.SetSelected(orAll(string(a.filter.Type), allTypes))
	typeSelect.OnChanged = func(s string) {
		a.filter.Type = ""
		if t, ok := model.ParseProjectType(s); ok {
			a.filter.Type = t
		}
		a.refreshProjectList()
	}

	clearBtn := newIconButtonWithTooltip(theme.ContentClearIcon(), "Clear filters", a.clearFilters)
	if !a.filter.Active() {
		clearBtn.Disable()
	}

	count := widget.NewLabel(a.showingLabel(len(matches), a.catalog.Len()))
	toolbar := container.NewHBox(
		widget.NewLabelWithStyle("Location", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}), locSelect,
		widget.NewLabelWithStyle("Type", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}), typeSelect,
		clearBtn,
		layout.NewSpacer(),
		count,
	)

	var body fyne.CanvasObject
	if len(matches) == 0 {
		clearAll := widget.NewButtonWithIcon("Clear Filters", theme.ContentClearIcon(), a.clearFilters)
		body = container.NewVBox(
			widget.NewLabelWithStyle("No projects match the selected filters.", fyne.TextAlignCenter, fyne.TextStyle{Italic: true}),
			container.NewCenter(clearAll),
		)
	} else {
		grid := container.NewGridWrap(fyne.NewSize(300, 264))
		for _, p := range matches {
			grid.Add(widgets.NewProjectCard(p, a.images, a.openProject))
		}
		body = grid
	}

	return container.NewVBox(
		section(eyebrow("Portfolio"), heading("Our Projects")),
		container.NewPadded(toolbar),
		widget.NewSeparator(),
		container.NewPadded(body),
	)
}

// showingLabel formats the result count with locale-aware numbers.
func (a *App) showingLabel(n, total int) string {
	return a.printer.Sprintf("Showing %d of %d projects", n, total)
}

func orAll(v, all string) string {
	if v == "" {
		return all
	}
	return v
}

func (a *App) refreshProjectList() {
	if a.route.Page == PageProjects {
		a.pages[PageProjects].SetContent(a.buildProjectList())
	}
}

func (a *App) clearFilters() {
	a.filter = model.Filter{}
	a.refreshProjectList()
}

func (a *App) openProject(p model.Project) {
	a.navigate(Route{Page: PageProject, Slug: p.Slug})
}

// ─── Project Detail ────────────────────────────────────────

func (a *App) buildProjectDetail(p model.Project) fyne.CanvasObject {
	back := newIconButtonWithTooltip(theme.NavigateBackIcon(), "Back", a.goBack)
	if !a.history.CanBack() {
		back.Disable()
	}
	prev := newIconButtonWithTooltip(theme.MediaSkipPreviousIcon(), "Previous project", func() {
		if q, ok := a.catalog.Previous(p.Slug); ok {
			a.openProject(q)
		}
	})
	next := newIconButtonWithTooltip(theme.MediaSkipNextIcon(), "Next project", func() {
		if q, ok := a.catalog.Next(p.Slug); ok {
			a.openProject(q)
		}
	})
	brochure := widget.NewButtonWithIcon("Export Brochure", theme.DocumentPrintIcon(), func() {
		a.exportBrochure(p)
	})
	toolbar := container.NewHBox(back, layout.NewSpacer(), prev, next, brochure)

	facets := []string{string(p.Location), string(p.Type)}
	if p.Address != "" {
		facets = append(facets, p.Address)
	}
	header := section(
		eyebrow(strings.Join(facets, " · ")),
		heading(p.Name),
	)
	if p.Description != "" {
		header = section(eyebrow(strings.Join(facets, " · ")), heading(p.Name), paragraph(p.Description))
	}

	return container.NewVBox(
		container.NewPadded(toolbar),
		header,
		widget.NewSeparator(),
		container.NewPadded(a.buildGallery(p)),
	)
}

func (a *App) buildGallery(p model.Project) fyne.CanvasObject {
	if !p.HasImages() {
		panel := canvas.NewRectangle(colorPanel)
		panel.SetMinSize(fyne.NewSize(0, 320))
		msg := canvas.NewText("Images for this project are coming soon.", theme.Color(theme.ColorNamePlaceHolder))
		msg.Alignment = fyne.TextAlignCenter
		return container.NewStack(panel, container.NewCenter(msg))
	}

	grid := container.NewGridWrap(fyne.NewSize(280, 187))
	for i, ref := range p.Images {
		idx := i
		grid.Add(widgets.NewThumbnail(a.images.Load(ref), fyne.NewSize(280, 187), func() {
			a.openLightbox(p, idx)
		}))
	}
	return container.NewVBox(
		eyebrow(fmt.Sprintf("%d images", len(p.Images))),
		grid,
	)
}

// ─── Lightbox ──────────────────────────────────────────────

// openLightbox shows p's gallery at index in a full-window modal. The page
// scroll is locked and arrow/Escape keys go to the viewer until it closes.
func (a *App) openLightbox(p model.Project, index int) {
	if a.viewer != nil {
		return
	}
	v, err := viewer.New(
		viewer.Gallery{Name: p.Name, Images: p.Images},
		viewer.ResourceFunc(a.pages[PageProjects].Acquire),
		viewer.ResourceFunc(a.acquireKeys),
	)
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}

	c := a.window.Canvas()
	lb := widgets.NewLightbox(v, a.images)
	pop := widget.NewModalPopUp(lb, c)
	fynetooltip.AddPopUpToolTipLayer(pop)
	lb.OnClosed = func() {
		fynetooltip.DestroyPopUpToolTipLayer(pop)
		pop.Hide()
		a.viewer = nil
	}

	a.viewer = v
	v.Open(index)
	pop.Resize(c.Size())
	pop.Show()
}

// acquireKeys routes canvas key events to the open viewer and restores the
// previous handler on release.
func (a *App) acquireKeys() func() {
	c := a.window.Canvas()
	prev := c.OnTypedKey()
	c.SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if a.viewer != nil && a.viewer.HandleKey(widgets.KeyFromFyne(ev.Name)) {
			return
		}
		if prev != nil {
			prev(ev)
		}
	})
	return func() { c.SetOnTypedKey(prev) }
}
