package export

import (
	"fmt"

	"github.com/piwi3910/StudioFolio/internal/model"
	"github.com/xuri/excelize/v2"
)

var inquiryHeader = []interface{}{"Received", "Name", "Email", "Scope", "Message", "ID"}

// ExportInquiries writes submitted inquiries to an Excel workbook, one row
// each, newest first as given.
func ExportInquiries(path string, inquiries []model.Inquiry) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Inquiries"
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	if err := f.SetSheetRow(sheet, "A1", &inquiryHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create style: %w", err)
	}
	if err := f.SetRowStyle(sheet, 1, 1, bold); err != nil {
		return fmt.Errorf("style header: %w", err)
	}

	for i, q := range inquiries {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			q.CreatedAt.Format("2006-01-02 15:04"),
			q.Name,
			q.Email,
			string(q.Scope),
			q.Message,
			q.ID,
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write inquiry %s: %w", q.ID, err)
		}
	}

	widths := map[string]float64{"A": 18, "B": 24, "C": 30, "D": 14, "E": 60, "F": 38}
	for col, w := range widths {
		if err := f.SetColWidth(sheet, col, col, w); err != nil {
			return fmt.Errorf("set column width: %w", err)
		}
	}

	return f.SaveAs(path)
}
