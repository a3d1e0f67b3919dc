package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"github.com/piwi3910/StudioFolio/internal/catalog"
	"github.com/piwi3910/StudioFolio/internal/export"
	catimporter "github.com/piwi3910/StudioFolio/internal/importer"
	"github.com/piwi3910/StudioFolio/internal/inquiry"
	"github.com/piwi3910/StudioFolio/internal/model"
	"github.com/piwi3910/StudioFolio/internal/project"
)

// ─── Export Functions ──────────────────────────────────────

func (a *App) exportBrochure(p model.Project) {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()
		opts := export.BrochureOptions{
			Studio:    studioName,
			BaseURL:   a.config.BaseURL,
			ImageRoot: a.config.ImageRoot,
		}
		if err := export.ExportBrochure(path, p, opts); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		dialog.ShowInformation("Export Complete", fmt.Sprintf("Brochure saved to %s", path), a.window)
	}, a.window)
	d.SetFileName(p.Slug + "-brochure.pdf")
	d.Show()
}

func (a *App) exportLabels() {
	projects := a.catalog.Filter(a.filter)
	if len(projects) == 0 {
		dialog.ShowInformation("No projects", "No projects match the current filters.", a.window)
		return
	}
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()
		if err := export.ExportLabels(path, projects, a.config.BaseURL); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		dialog.ShowInformation("Export Complete",
			fmt.Sprintf("%d project labels saved to %s", len(projects), path), a.window)
	}, a.window)
	d.SetFileName("project-labels.pdf")
	d.Show()
}

func (a *App) exportInquiries() {
	inquiries, err := a.listInquiries()
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()
		if err := export.ExportInquiries(path, inquiries); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		dialog.ShowInformation("Export Complete",
			fmt.Sprintf("%d inquiries saved to %s", len(inquiries), path), a.window)
	}, a.window)
	d.SetFileName("inquiries.xlsx")
	d.Show()
}

func (a *App) listInquiries() ([]model.Inquiry, error) {
	if a.inquiries == nil {
		return nil, errNoOutbox
	}
	ctx, cancel := context.WithTimeout(context.Background(), submitTimeout)
	defer cancel()
	return a.inquiries.List(ctx, 0)
}

// ─── Backup ────────────────────────────────────────────────

func (a *App) exportBackup() {
	inquiries, err := a.listInquiries()
	if err != nil && !errors.Is(err, errNoOutbox) {
		dialog.ShowError(err, a.window)
		return
	}
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()
		if err := project.ExportAllData(path, a.config, inquiries); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		dialog.ShowInformation("Export Complete", fmt.Sprintf("Data saved to %s", path), a.window)
	}, a.window)
	d.SetFileName("studiofolio-backup.json")
	d.Show()
}

func (a *App) importBackup() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()

		backup, err := project.ImportAllData(path)
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}

		// The outbox location is machine specific and stays as configured.
		cfg := backup.Config
		cfg.InquiryDB = a.config.InquiryDB
		a.applyConfig(cfg)

		restored, skipped := 0, 0
		for _, q := range backup.Inquiries {
			switch err := a.submitInquiry(q); {
			case err == nil:
				restored++
			case errors.Is(err, inquiry.ErrDuplicate):
				skipped++
			default:
				dialog.ShowError(fmt.Errorf("restore inquiry %s: %w", q.ID, err), a.window)
				return
			}
		}

		dialog.ShowInformation("Import Complete",
			fmt.Sprintf("Settings restored.\n%d inquiries restored, %d already present.", restored, skipped), a.window)
	}, a.window)
}

// ─── Import Functions ──────────────────────────────────────

func (a *App) importCSV() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		result := catimporter.ImportCSV(reader.URI().Path())
		a.handleImportResult(result)
	}, a.window)
}

func (a *App) importExcel() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		result := catimporter.ImportExcel(reader.URI().Path())
		a.handleImportResult(result)
	}, a.window)
}

// handleImportResult replaces the catalog when every row imported cleanly.
func (a *App) handleImportResult(result catimporter.ImportResult) {
	// Show errors if any
	if len(result.Errors) > 0 {
		errorMsg := "Errors encountered during import:\n\n" + strings.Join(result.Errors, "\n") +
			"\n\nThe catalog was not changed."
		dialog.ShowError(fmt.Errorf("%s", errorMsg), a.window)
		return
	}

	// Warnings never block the import
	for _, w := range result.Warnings {
		a.logger.Printf("import warning: %s", w)
	}

	cat, err := catalog.FromImport(result)
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	a.catalog = cat
	a.filter = model.Filter{}
	a.history.Clear()
	a.show(Route{Page: PageProjects})

	msg := fmt.Sprintf("Successfully imported %d projects.", cat.Len())
	if len(result.Warnings) > 0 {
		msg += fmt.Sprintf("\n\n%d rows imported with warnings.", len(result.Warnings))
	}
	dialog.ShowInformation("Import Complete", msg, a.window)
}
