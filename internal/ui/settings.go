package ui

import (
	"fmt"
	"net/url"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/StudioFolio/internal/model"
	"github.com/piwi3910/StudioFolio/internal/ui/widgets"
)

// showSettingsDialog displays the application settings editor.
func (a *App) showSettingsDialog() {
	cfg := a.config

	imageRootEntry := widget.NewEntry()
	imageRootEntry.SetText(cfg.ImageRoot)
	imageRootEntry.SetPlaceHolder("Folder containing projects/")
	browseBtn := widget.NewButton("Browse...", func() {
		dialog.ShowFolderOpen(func(dir fyne.ListableURI, err error) {
			if err != nil || dir == nil {
				return
			}
			imageRootEntry.SetText(dir.Path())
		}, a.window)
	})

	baseURLEntry := widget.NewEntry()
	baseURLEntry.SetText(cfg.BaseURL)
	baseURLEntry.Validator = validateBaseURL

	// Theme selector
	themeSelect := widget.NewSelect(ThemeNames, func(selected string) {
		cfg.Theme = selected
	})
	themeSelect.SetSelected(cfg.Theme)

	dbLabel := widget.NewLabel(cfg.InquiryDB)
	dbLabel.Truncation = fyne.TextTruncateEllipsis

	formItems := []*widget.FormItem{
		widget.NewFormItem("Theme", themeSelect),
		widget.NewFormItem("Image Folder", container.NewBorder(nil, nil, nil, browseBtn, imageRootEntry)),
		widget.NewFormItem("Site Address", baseURLEntry),
		widget.NewFormItem("", widget.NewSeparator()),
		widget.NewFormItem("Inquiry Database", dbLabel),
	}

	d := dialog.NewForm("Settings", "Save", "Cancel", formItems,
		func(ok bool) {
			if !ok {
				return
			}
			cfg.ImageRoot = strings.TrimSpace(imageRootEntry.Text)
			cfg.BaseURL = strings.TrimSpace(baseURLEntry.Text)
			a.applyConfig(cfg)
			dialog.ShowInformation("Settings Saved", "Application settings have been saved.", a.window)
		},
		a.window,
	)
	d.Resize(fyne.NewSize(560, 320))
	d.Show()
}

// applyConfig replaces the live config, reloading whatever depends on it.
func (a *App) applyConfig(cfg model.AppConfig) {
	imagesChanged := cfg.ImageRoot != a.config.ImageRoot
	themeChanged := cfg.Theme != a.config.Theme
	a.config = cfg
	if imagesChanged {
		a.images = widgets.NewImageLoader(a.config.ImageRoot)
		a.pages[PageAbout].SetContent(a.buildAboutPage())
	}
	if themeChanged {
		a.app.Settings().SetTheme(NewStudioThemeNamed(a.config.Theme))
	}
	a.saveConfig()
	a.show(a.route)
}

func validateBaseURL(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	u, err := url.Parse(s)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("enter an http or https address")
	}
	return nil
}

// showImportExportDialog displays the import/export data dialog.
func (a *App) showImportExportDialog() {
	exportBtn := widget.NewButton("Export All Data...", a.exportBackup)

	importBtn := widget.NewButton("Import All Data...", func() {
		dialog.ShowConfirm("Import Data",
			"Importing data will replace your current application settings and add the backed up inquiries.\n\nAre you sure you want to continue?",
			func(ok bool) {
				if ok {
					a.importBackup()
				}
			},
			a.window,
		)
	})

	content := container.NewVBox(
		widget.NewLabel("Export settings and received inquiries to a backup file,\nor import from a previously exported backup."),
		widget.NewSeparator(),
		exportBtn,
		widget.NewSeparator(),
		importBtn,
	)

	d := dialog.NewCustom("Import / Export Data", "Close", content, a.window)
	d.Resize(fyne.NewSize(450, 250))
	d.Show()
}
