package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/piwi3910/StudioFolio/internal/catalog"
	"github.com/piwi3910/StudioFolio/internal/inquiry"
	"github.com/piwi3910/StudioFolio/internal/model"
	"github.com/piwi3910/StudioFolio/internal/project"
	"github.com/piwi3910/StudioFolio/internal/ui/widgets"
	"github.com/piwi3910/StudioFolio/internal/viewer"
)

// App holds all application state and UI references.
type App struct {
	app        fyne.App
	window     fyne.Window
	config     model.AppConfig
	configPath string
	catalog    *catalog.Catalog
	inquiries  *inquiry.Store // nil when the outbox could not be opened
	images     *widgets.ImageLoader
	logger     *log.Logger
	printer    *message.Printer

	tabs    *container.AppTabs
	pages   map[Page]*widgets.LockableScroll
	history *History
	route   Route
	routing bool // set while show drives the tab selection

	filter model.Filter
	viewer *viewer.Viewer // the open lightbox, nil when closed
}

// NewApp creates the UI over the given catalog and inquiry outbox. Either
// may be replaced later through the File menu.
func NewApp(app fyne.App, window fyne.Window, config model.AppConfig, configPath string, cat *catalog.Catalog, store *inquiry.Store) *App {
	return &App{
		app:        app,
		window:     window,
		config:     config,
		configPath: configPath,
		catalog:    cat,
		inquiries:  store,
		images:     widgets.NewImageLoader(config.ImageRoot),
		logger:     log.New(log.Writer(), "ui: ", log.LstdFlags),
		printer:    message.NewPrinter(language.English),
		history:    NewHistory(),
		route:      Route{Page: PageHome},
	}
}

// SetupMenus creates the native menu bar for the application. It is called
// again whenever navigation or the recent list changes.
func (a *App) SetupMenus() {
	// File Menu
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Import Catalog from CSV...", a.importCSV),
		fyne.NewMenuItem("Import Catalog from Excel...", a.importExcel),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export Brochure...", func() {
			if p, ok := a.currentProject(); ok {
				a.exportBrochure(p)
				return
			}
			dialog.ShowInformation("No project open", "Open a project to export its brochure.", a.window)
		}),
		fyne.NewMenuItem("Export QR Labels...", a.exportLabels),
		fyne.NewMenuItem("Export Inquiries...", a.exportInquiries),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Import / Export Data...", a.showImportExportDialog),
		fyne.NewMenuItem("Settings...", a.showSettingsDialog),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			a.window.Close()
		}),
	)

	// View Menu
	var themeItems []*fyne.MenuItem
	for _, name := range ThemeNames {
		n := name
		item := fyne.NewMenuItem(themeLabel(n), func() { a.setTheme(n) })
		item.Checked = a.config.Theme == n
		themeItems = append(themeItems, item)
	}
	themeItem := fyne.NewMenuItem("Theme", nil)
	themeItem.ChildMenu = fyne.NewMenu("", themeItems...)
	viewMenu := fyne.NewMenu("View", themeItem)

	// Go Menu
	backItem := fyne.NewMenuItem("Back", a.goBack)
	backItem.Disabled = !a.history.CanBack()
	forwardItem := fyne.NewMenuItem("Forward", a.goForward)
	forwardItem.Disabled = !a.history.CanForward()
	goItems := []*fyne.MenuItem{backItem, forwardItem, fyne.NewMenuItemSeparator()}
	for _, page := range []Page{PageHome, PageAbout, PageProjects, PageContact} {
		pg := page
		goItems = append(goItems, fyne.NewMenuItem(pageTitle(pg), func() { a.navigate(Route{Page: pg}) }))
	}
	if recent := a.recentItems(); len(recent) > 0 {
		recentItem := fyne.NewMenuItem("Recent Projects", nil)
		recentItem.ChildMenu = fyne.NewMenu("", recent...)
		goItems = append(goItems, fyne.NewMenuItemSeparator(), recentItem)
	}
	goMenu := fyne.NewMenu("Go", goItems...)

	// Help Menu
	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			a.showAboutDialog()
		}),
	)

	// Set the main menu
	mainMenu := fyne.NewMainMenu(
		fileMenu,
		viewMenu,
		goMenu,
		helpMenu,
	)
	a.window.SetMainMenu(mainMenu)
}

func (a *App) recentItems() []*fyne.MenuItem {
	var items []*fyne.MenuItem
	for _, slug := range a.config.RecentProjects {
		p, ok := a.catalog.BySlug(slug)
		if !ok {
			continue
		}
		s := p.Slug
		items = append(items, fyne.NewMenuItem(p.Name, func() {
			a.navigate(Route{Page: PageProject, Slug: s})
		}))
	}
	return items
}

func (a *App) showAboutDialog() {
	dialog.ShowInformation(
		"About "+studioName,
		studioName+": "+studioTagline+"\n\n"+
			fmt.Sprintf("%d projects, %d photographs.\n\n", a.catalog.Len(), a.catalog.ImageCount())+
			"Version 1.0.0",
		a.window,
	)
}

func themeLabel(name string) string {
	switch name {
	case ThemeLight:
		return "Light"
	case ThemeDark:
		return "Dark"
	}
	return "System Default"
}

func (a *App) setTheme(name string) {
	cfg := a.config
	cfg.Theme = name
	a.applyConfig(cfg)
}

// Build constructs the full UI and returns the root container.
func (a *App) Build() fyne.CanvasObject {
	a.pages = map[Page]*widgets.LockableScroll{}
	var items []*container.TabItem
	for _, page := range []Page{PageHome, PageAbout, PageProjects, PageContact} {
		a.pages[page] = widgets.NewLockableScroll(widget.NewLabel(""))
		items = append(items, container.NewTabItemWithIcon(pageTitle(page), pageIcon(page), a.pages[page]))
	}
	a.pages[PageAbout].SetContent(a.buildAboutPage())
	a.pages[PageContact].SetContent(a.buildContactPage())
	a.pages[PageProjects].SetContent(a.buildProjectList())

	a.tabs = container.NewAppTabs(items...)
	a.tabs.SetTabLocation(container.TabLocationTop)
	a.tabs.OnSelected = func(*container.TabItem) {
		if a.routing {
			return
		}
		a.navigate(Route{Page: Page(a.tabs.SelectedIndex())})
	}

	a.window.SetOnClosed(a.Shutdown)
	a.show(a.route)
	return a.tabs
}

func pageTitle(p Page) string {
	switch p {
	case PageAbout:
		return "About"
	case PageProjects, PageProject:
		return "Projects"
	case PageContact:
		return "Contact"
	}
	return "Home"
}

func pageIcon(p Page) fyne.Resource {
	switch p {
	case PageAbout:
		return theme.InfoIcon()
	case PageProjects, PageProject:
		return theme.GridIcon()
	case PageContact:
		return theme.MailComposeIcon()
	}
	return theme.HomeIcon()
}

// ─── Navigation ────────────────────────────────────────────

// navigate records the current route and shows r.
func (a *App) navigate(r Route) {
	if r == a.route {
		return
	}
	a.history.Push(a.route)
	a.show(r)
}

func (a *App) goBack() {
	if r, ok := a.history.Back(a.route); ok {
		a.show(r)
	}
}

func (a *App) goForward() {
	if r, ok := a.history.Forward(a.route); ok {
		a.show(r)
	}
}

// show renders r without touching the history.
func (a *App) show(r Route) {
	if r.Page == PageProject {
		if _, ok := a.catalog.BySlug(r.Slug); !ok {
			r = Route{Page: PageProjects}
		}
	}
	a.route = r

	tab := r.Page
	if tab == PageProject {
		tab = PageProjects
	}
	a.routing = true
	a.tabs.SelectIndex(int(tab))
	a.routing = false

	switch r.Page {
	case PageHome:
		a.pages[PageHome].SetContent(a.buildHomePage())
	case PageProjects:
		a.pages[PageProjects].SetContent(a.buildProjectList())
	case PageProject:
		p, _ := a.catalog.BySlug(r.Slug)
		a.pages[PageProjects].SetContent(a.buildProjectDetail(p))
		a.config.AddRecent(p.Slug)
		a.saveConfig()
	}
	a.SetupMenus()
}

func (a *App) currentProject() (model.Project, bool) {
	if a.route.Page != PageProject {
		return model.Project{}, false
	}
	return a.catalog.BySlug(a.route.Slug)
}

// ─── Lifecycle ─────────────────────────────────────────────

func (a *App) saveConfig() {
	if a.configPath == "" {
		return
	}
	if err := project.SaveAppConfig(a.configPath, a.config); err != nil {
		a.logger.Printf("save config: %v", err)
	}
}

// Shutdown closes an open lightbox, remembers the window size and closes
// the inquiry outbox. It is safe to call more than once.
func (a *App) Shutdown() {
	if a.viewer != nil {
		a.viewer.Close()
	}
	if size := a.window.Canvas().Size(); size.Width > 0 && size.Height > 0 {
		a.config.WindowWidth = size.Width
		a.config.WindowHeight = size.Height
	}
	a.saveConfig()
	if a.inquiries != nil {
		if err := a.inquiries.Close(); err != nil {
			a.logger.Printf("close inquiry store: %v", err)
		}
		a.inquiries = nil
	}
}
