package export

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/piwi3910/StudioFolio/internal/model"
	"github.com/xuri/excelize/v2"
)

func TestExportInquiries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inquiries.xlsx")
	at := time.Date(2026, 5, 4, 10, 30, 0, 0, time.UTC)
	inquiries := []model.Inquiry{
		{ID: "i-2", Name: "Jane", Email: "jane@example.com", Scope: model.ScopeInterior, Message: "Condo staging", CreatedAt: at},
		{ID: "i-1", Name: "Raj", Email: "raj@example.com", CreatedAt: at.Add(-time.Hour)},
	}

	if err := ExportInquiries(path, inquiries); err != nil {
		t.Fatalf("ExportInquiries returned error: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Inquiries")
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(rows))
	}
	if rows[0][1] != "Name" {
		t.Errorf("unexpected header %v", rows[0])
	}
	if rows[1][0] != "2026-05-04 10:30" || rows[1][3] != "Interior" || rows[1][5] != "i-2" {
		t.Errorf("unexpected first row %v", rows[1])
	}
	if rows[2][1] != "Raj" {
		t.Errorf("unexpected second row %v", rows[2])
	}
}

func TestExportInquiries_EmptyWritesHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inquiries.xlsx")

	if err := ExportInquiries(path, nil); err != nil {
		t.Fatalf("ExportInquiries returned error: %v", err)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()
	rows, _ := f.GetRows("Inquiries")
	if len(rows) != 1 {
		t.Errorf("expected only the header row, got %d", len(rows))
	}
}
