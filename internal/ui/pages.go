package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/StudioFolio/internal/model"
	"github.com/piwi3910/StudioFolio/internal/ui/widgets"
)

var colorPanel = color.NRGBA{R: 46, G: 44, B: 41, A: 255}

// ─── Helpers ───────────────────────────────────────────────

func heading(text string) *widget.Label {
	l := widget.NewLabelWithStyle(text, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	l.SizeName = theme.SizeNameHeadingText
	return l
}

func subheading(text string) *widget.Label {
	l := widget.NewLabelWithStyle(text, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	l.SizeName = theme.SizeNameSubHeadingText
	return l
}

func paragraph(text string) *widget.Label {
	l := widget.NewLabel(text)
	l.Wrapping = fyne.TextWrapWord
	return l
}

func eyebrow(text string) *widget.Label {
	l := widget.NewLabel(text)
	l.Importance = widget.LowImportance
	l.SizeName = theme.SizeNameCaptionText
	return l
}

// picture shows ref from the image root, or a flat panel when it is not on
// disk, at the given minimum size.
func (a *App) picture(ref string, min fyne.Size) fyne.CanvasObject {
	if pic := a.images.Load(ref); pic.Available() {
		img := canvas.NewImageFromResource(pic.Resource)
		img.FillMode = canvas.ImageFillContain
		img.SetMinSize(min)
		return img
	}
	panel := canvas.NewRectangle(colorPanel)
	panel.SetMinSize(min)
	return panel
}

func section(objects ...fyne.CanvasObject) fyne.CanvasObject {
	return container.NewPadded(container.NewVBox(objects...))
}

// ─── Home ──────────────────────────────────────────────────

func (a *App) buildHomePage() fyne.CanvasObject {
	hero := container.NewVBox(
		a.picture(heroImage, fyne.NewSize(0, 360)),
		heading(heroTitle),
		paragraph(heroSubline),
	)

	storyBtn := widget.NewButtonWithIcon("Read Our Story", theme.NavigateNextIcon(), func() {
		a.navigate(Route{Page: PageAbout})
	})
	intro := section(eyebrow(introHeading), subheading("Architectural Harmony"), paragraph(introBody),
		container.NewHBox(storyBtn))

	// Stats
	stats := container.NewGridWithColumns(4,
		statCard(fmt.Sprintf("%d", a.catalog.Len()), "Projects in Portfolio"),
		statCard(fmt.Sprintf("%d", a.catalog.ImageCount()), "Photographs"),
	)
	for _, s := range studioStats {
		stats.Add(statCard(s.value, s.label))
	}
	impact := section(eyebrow("The Impact"), subheading(impactHeading), paragraph(impactBody), stats)

	// Featured projects
	featured := container.NewGridWrap(fyne.NewSize(300, 264))
	for _, p := range a.catalog.Featured() {
		featured.Add(widgets.NewProjectCard(p, a.images, a.openProject))
	}

	// Categories
	types := container.NewGridWithColumns(3)
	for i, tc := range a.catalog.TypeCounts() {
		t := tc.Value
		btn := widget.NewButton(fmt.Sprintf("Collection / %02d   %s (%d)", i+1, t, tc.N), func() {
			a.filter = model.Filter{Type: t}
			a.navigate(Route{Page: PageProjects})
		})
		types.Add(btn)
	}
	locations := container.NewGridWithColumns(4)
	for _, lc := range a.catalog.LocationCounts() {
		l := lc.Value
		btn := widget.NewButton(fmt.Sprintf("%s (%d)", l, lc.N), func() {
			a.filter = model.Filter{Location: l}
			a.navigate(Route{Page: PageProjects})
		})
		btn.Importance = widget.LowImportance
		locations.Add(btn)
	}

	contactBtn := widget.NewButtonWithIcon("Start a Project", theme.MailComposeIcon(), func() {
		a.navigate(Route{Page: PageContact})
	})
	contactBtn.Importance = widget.HighImportance

	return container.NewVBox(
		hero,
		intro,
		widget.NewSeparator(),
		impact,
		widget.NewSeparator(),
		section(eyebrow("Selected Work"), subheading("Featured Projects"), featured),
		section(eyebrow("Collections"), subheading("Explore by Type"), types,
			subheading("Explore by Location"), locations),
		widget.NewSeparator(),
		section(subheading(contactHeading), paragraph(contactBody), container.NewHBox(contactBtn)),
	)
}

func statCard(value, label string) fyne.CanvasObject {
	v := widget.NewLabelWithStyle(value, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	v.SizeName = theme.SizeNameHeadingText
	return widget.NewCard("", "", container.NewVBox(v,
		widget.NewLabelWithStyle(label, fyne.TextAlignCenter, fyne.TextStyle{})))
}

// ─── About ─────────────────────────────────────────────────

func (a *App) buildAboutPage() fyne.CanvasObject {
	hero := section(
		eyebrow("The Philosophy"),
		heading("Designing with Intention"),
		paragraph("A luxury residential design studio focused on the intersection of architecture, interiors and landscape."),
	)

	quote := widget.NewLabelWithStyle(narrativeQuote, fyne.TextAlignLeading, fyne.TextStyle{Italic: true})
	quote.Wrapping = fyne.TextWrapWord
	narrative := container.NewGridWithColumns(2,
		section(eyebrow("The Narrative"), subheading(narrativeHeading), quote, paragraph(narrativeBody),
			eyebrow("Principal Designer")),
		a.picture(narrativeImage, fyne.NewSize(0, 320)),
	)

	cards := container.NewGridWithColumns(len(pillars))
	for _, p := range pillars {
		body := paragraph(p.description)
		cards.Add(widget.NewCard(p.number, p.title, body))
	}

	return container.NewVBox(
		hero,
		narrative,
		widget.NewSeparator(),
		section(eyebrow("Core Principles"), subheading("Our Pillars"), cards),
		widget.NewSeparator(),
		section(eyebrow("Detailing"), subheading(detailingHeading), paragraph(detailingBody)),
		container.NewHBox(layout.NewSpacer(), widget.NewButtonWithIcon("View the Portfolio", theme.GridIcon(), func() {
			a.navigate(Route{Page: PageProjects})
		})),
	)
}
