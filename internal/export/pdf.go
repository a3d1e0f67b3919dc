// Package export writes portfolio material to printable and spreadsheet
// formats.
package export

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/StudioFolio/internal/model"
	qrcode "github.com/skip2/go-qrcode"
)

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	contentWidth = pageWidth - marginLeft - marginRight
	coverQRSize  = 45.0
)

// Image index grid.
const (
	gridCols    = 4
	gridRows    = 3
	gridGap     = 5.0
	captionH    = 5.0
	gridPerPage = gridCols * gridRows
)

// BrochureOptions controls brochure content.
type BrochureOptions struct {
	Studio    string // printed in the page header
	BaseURL   string // QR target is BaseURL/projects/<slug>; no QR when empty
	ImageRoot string // where gallery references resolve on disk
}

// ExportBrochure writes a project brochure: a cover page with the project
// facts and a QR code, a description page and an image index.
func ExportBrochure(path string, p model.Project, opts BrochureOptions) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("project has no name")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	if err := renderCoverPage(pdf, tr, p, opts); err != nil {
		return err
	}

	if p.Description != "" {
		pdf.AddPage()
		renderDescriptionPage(pdf, tr, p, opts)
	}

	for start := 0; start < len(p.Images); start += gridPerPage {
		end := min(start+gridPerPage, len(p.Images))
		pdf.AddPage()
		renderImagePage(pdf, tr, p, opts, start, end)
	}

	return pdf.OutputFileAndClose(path)
}

func renderHeader(pdf *fpdf.Fpdf, tr func(string) string, opts BrochureOptions, title string) {
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(contentWidth/2, 5, tr(strings.ToUpper(opts.Studio)), "", 0, "L", false, 0, "")
	pdf.CellFormat(contentWidth/2, 5, tr(title), "", 0, "R", false, 0, "")
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.2)
	pdf.Line(marginLeft, marginTop+7, pageWidth-marginRight, marginTop+7)
	pdf.SetTextColor(0, 0, 0)
}

func renderCoverPage(pdf *fpdf.Fpdf, tr func(string) string, p model.Project, opts BrochureOptions) error {
	renderHeader(pdf, tr, opts, "Project Brochure")

	pdf.SetFont("Helvetica", "B", 28)
	pdf.SetXY(marginLeft, 60)
	pdf.MultiCell(contentWidth-coverQRSize-10, 12, tr(p.Name), "", "L", false)

	pdf.SetFont("Helvetica", "", 12)
	pdf.SetTextColor(90, 90, 90)
	facts := []string{
		fmt.Sprintf("%s  |  %s", p.Location, p.Type),
	}
	if p.Address != "" {
		facts = append(facts, p.Address)
	}
	facts = append(facts, fmt.Sprintf("%d images", len(p.Images)))
	for _, f := range facts {
		pdf.SetX(marginLeft)
		pdf.CellFormat(contentWidth-coverQRSize-10, 7, tr(f), "", 1, "L", false, 0, "")
	}
	pdf.SetTextColor(0, 0, 0)

	if opts.BaseURL == "" {
		return nil
	}
	url := model.ProjectURL(opts.BaseURL, p.Slug)
	qrPNG, err := qrcode.Encode(url, qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}
	name := "qr_" + p.Slug
	pdf.RegisterImageOptionsReader(name, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))
	qrX := pageWidth - marginRight - coverQRSize
	pdf.ImageOptions(name, qrX, 60, coverQRSize, coverQRSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(qrX-10, 60+coverQRSize+2)
	pdf.CellFormat(coverQRSize+10, 4, url, "", 0, "C", false, 0, "")
	return nil
}

func renderDescriptionPage(pdf *fpdf.Fpdf, tr func(string) string, p model.Project, opts BrochureOptions) {
	renderHeader(pdf, tr, opts, p.Name)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	pdf.CellFormat(contentWidth, 8, "About this project", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.SetX(marginLeft)
	pdf.MultiCell(contentWidth*0.7, 6, tr(p.Description), "", "L", false)
}

func renderImagePage(pdf *fpdf.Fpdf, tr func(string) string, p model.Project, opts BrochureOptions, start, end int) {
	renderHeader(pdf, tr, opts, fmt.Sprintf("%s  |  Images %d-%d of %d", p.Name, start+1, end, len(p.Images)))

	top := marginTop + headerHeight
	cellW := (contentWidth - gridGap*(gridCols-1)) / gridCols
	cellH := (pageHeight-top-marginBottom-gridGap*(gridRows-1))/gridRows - captionH

	for i := start; i < end; i++ {
		slot := i - start
		x := marginLeft + float64(slot%gridCols)*(cellW+gridGap)
		y := top + float64(slot/gridCols)*(cellH+captionH+gridGap)

		file := model.ImageFile(opts.ImageRoot, p.Images[i])
		if kind, w, h, ok := embeddable(file); ok {
			scale := math.Min(cellW/float64(w), cellH/float64(h))
			iw, ih := float64(w)*scale, float64(h)*scale
			pdf.ImageOptions(file, x+(cellW-iw)/2, y+(cellH-ih)/2, iw, ih, false, fpdf.ImageOptions{ImageType: kind}, 0, "")
		} else {
			drawPlaceholder(pdf, x, y, cellW, cellH)
		}

		pdf.SetFont("Helvetica", "", 7)
		pdf.SetTextColor(90, 90, 90)
		pdf.SetXY(x, y+cellH+0.5)
		pdf.CellFormat(cellW, captionH-1, fmt.Sprintf("%02d  %s", i+1, truncate(pdf, p.Images[i], cellW-8)), "", 0, "L", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	}
}

func drawPlaceholder(pdf *fpdf.Fpdf, x, y, w, h float64) {
	pdf.SetFillColor(238, 236, 232)
	pdf.SetDrawColor(210, 206, 200)
	pdf.SetLineWidth(0.2)
	pdf.Rect(x, y, w, h, "FD")
	pdf.Line(x, y, x+w, y+h)
	pdf.Line(x+w, y, x, y+h)
}

// embeddable reports whether file is a PNG or JPEG fpdf can place, with its
// pixel size.
func embeddable(file string) (string, int, int, bool) {
	if file == "" {
		return "", 0, 0, false
	}
	f, err := os.Open(file)
	if err != nil {
		return "", 0, 0, false
	}
	defer f.Close()
	cfg, format, err := image.DecodeConfig(f)
	if err != nil || cfg.Width == 0 || cfg.Height == 0 {
		return "", 0, 0, false
	}
	switch format {
	case "png":
		return "PNG", cfg.Width, cfg.Height, true
	case "jpeg":
		return "JPG", cfg.Width, cfg.Height, true
	}
	return "", 0, 0, false
}

// truncate shortens s from the left so it fits in w.
func truncate(pdf *fpdf.Fpdf, s string, w float64) string {
	if pdf.GetStringWidth(s) <= w {
		return s
	}
	for len(s) > 0 && pdf.GetStringWidth("..."+s) > w {
		s = s[1:]
	}
	return "..." + s
}
