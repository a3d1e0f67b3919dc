// StudioFolio: residential design studio portfolio
//
// A cross-platform desktop application presenting the studio's project
// portfolio with a zoomable image lightbox and a contact inquiry outbox.
//
// Build:
//   go build -o studiofolio ./cmd/studiofolio
//
// Cross-compile:
//   GOOS=windows GOARCH=amd64 go build -o studiofolio.exe ./cmd/studiofolio
//   GOOS=darwin  GOARCH=amd64 go build -o studiofolio-darwin ./cmd/studiofolio
//
// Using fyne-cross (recommended for proper packaging):
//   go install github.com/fyne-io/fyne-cross@latest
//   fyne-cross windows -arch=amd64
//   fyne-cross darwin  -arch=amd64,arm64
//
// Environment overrides: STUDIOFOLIO_IMAGE_ROOT, STUDIOFOLIO_BASE_URL,
// STUDIOFOLIO_INQUIRY_DB, STUDIOFOLIO_THEME.

package main

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	fynetooltip "github.com/dweymouth/fyne-tooltip"

	"github.com/piwi3910/StudioFolio/internal/catalog"
	"github.com/piwi3910/StudioFolio/internal/inquiry"
	"github.com/piwi3910/StudioFolio/internal/model"
	"github.com/piwi3910/StudioFolio/internal/project"
	"github.com/piwi3910/StudioFolio/internal/ui"
)

func main() {
	log.SetPrefix("studiofolio: ")

	configPath := project.DefaultConfigPath()
	config, err := project.LoadEffectiveConfig(configPath)
	if err != nil {
		log.Printf("%v; using defaults", err)
		config = model.DefaultAppConfig()
		config.InquiryDB = project.DefaultInquiryDBPath()
	}

	cat, err := catalog.Default()
	if err != nil {
		log.Fatalf("load catalog: %v", err)
	}

	// The app still runs without an outbox; the contact form reports
	// delivery failures instead.
	store, err := inquiry.Open(config.InquiryDB)
	if err != nil {
		log.Printf("open inquiry outbox: %v", err)
		store = nil
	}

	application := app.NewWithID("com.piwi3910.studiofolio")
	application.Settings().SetTheme(ui.NewStudioThemeNamed(config.Theme))

	window := application.NewWindow("StudioFolio")

	appUI := ui.NewApp(application, window, config, configPath, cat, store)
	appUI.SetupMenus()
	window.SetContent(fynetooltip.AddWindowToolTipLayer(appUI.Build(), window.Canvas()))
	window.Resize(fyne.NewSize(config.WindowWidth, config.WindowHeight))
	window.CenterOnScreen()
	window.ShowAndRun()
}
