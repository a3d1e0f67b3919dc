// Package importer provides CSV and Excel import for the project catalog.
// It supports automatic delimiter detection, flexible column mapping, and
// case-insensitive header recognition.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/piwi3910/StudioFolio/internal/model"
	"github.com/xuri/excelize/v2"
)

// ImportResult holds the results of an import operation.
type ImportResult struct {
	Projects []model.Project
	Errors   []string
	Warnings []string
}

// ColumnMapping maps semantic column roles to their indices in the data.
// A value of -1 means the column is absent.
type ColumnMapping struct {
	ID          int
	Name        int
	Slug        int
	Address     int
	Location    int
	Type        int
	Folder      int
	BaseName    int
	Images      int
	Thumbnail   int
	Featured    int
	Description int
}

// headerAliases maps canonical column names to their accepted aliases (all lowercase).
var headerAliases = map[string][]string{
	"id":          {"id", "project id", "key"},
	"name":        {"name", "project", "project name", "title"},
	"slug":        {"slug", "url", "path"},
	"address":     {"address", "street", "street address"},
	"location":    {"location", "city", "municipality", "area"},
	"type":        {"type", "project type", "category", "kind"},
	"folder":      {"folder", "directory", "dir"},
	"base":        {"base name", "base", "basename", "prefix", "file prefix"},
	"images":      {"images", "image count", "photos", "gallery"},
	"thumbnail":   {"thumbnail", "thumb", "cover"},
	"featured":    {"featured", "feature", "highlight"},
	"description": {"description", "desc", "summary", "notes"},
}

// DetectCSVDelimiter reads the file content and determines the most likely CSV delimiter.
// It tries comma, semicolon, tab, and pipe. The delimiter that produces the most
// consistent (non-one) column count across lines wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// DetectColumns examines a header row and returns a ColumnMapping.
// Matching is case-insensitive and the first column for a role wins.
// The boolean is false when the row does not look like a header at all.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{
		ID: -1, Name: -1, Slug: -1, Address: -1, Location: -1, Type: -1,
		Folder: -1, BaseName: -1, Images: -1, Thumbnail: -1, Featured: -1, Description: -1,
	}
	slots := map[string]*int{
		"id":          &mapping.ID,
		"name":        &mapping.Name,
		"slug":        &mapping.Slug,
		"address":     &mapping.Address,
		"location":    &mapping.Location,
		"type":        &mapping.Type,
		"folder":      &mapping.Folder,
		"base":        &mapping.BaseName,
		"images":      &mapping.Images,
		"thumbnail":   &mapping.Thumbnail,
		"featured":    &mapping.Featured,
		"description": &mapping.Description,
	}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized != alias {
					continue
				}
				isHeader = true
				if slot := slots[role]; *slot == -1 {
					*slot = i
				}
			}
		}
	}

	return mapping, isHeader
}

// parseBool accepts the usual spreadsheet spellings of yes/no.
func parseBool(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "y", "1", "x":
		return true, true
	case "false", "no", "n", "0", "", "-":
		return false, true
	default:
		return false, false
	}
}

// getCell safely retrieves a cell value from a row by column index.
// Returns empty string if the index is out of range or negative.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseImages reads the images cell. It holds either a count, used with the
// folder and base name columns, or an explicit list of references separated
// by ';' or whitespace.
func parseImages(row []string, mapping ColumnMapping, rowLabel string) ([]string, string, string) {
	cell := getCell(row, mapping.Images)
	if cell == "" {
		return nil, "", ""
	}
	if n, err := strconv.Atoi(cell); err == nil {
		if n < 0 {
			return nil, fmt.Sprintf("%s: Image count must not be negative", rowLabel), ""
		}
		if n == 0 {
			return nil, "", ""
		}
		folder := getCell(row, mapping.Folder)
		base := getCell(row, mapping.BaseName)
		if folder == "" || base == "" {
			return nil, "", fmt.Sprintf("%s: Image count given without folder and base name, gallery left empty", rowLabel)
		}
		return model.ImagePaths(folder, base, n, ""), "", ""
	}
	fields := strings.FieldsFunc(cell, func(r rune) bool {
		return r == ';' || r == ' ' || r == '\n' || r == '\t'
	})
	return fields, "", ""
}

// parseRow extracts a Project from a row using the given column mapping.
// Returns the project, any error message, and any warning messages.
func parseRow(row []string, mapping ColumnMapping, rowLabel string) (model.Project, string, []string) {
	var warnings []string

	name := getCell(row, mapping.Name)
	if name == "" {
		return model.Project{}, fmt.Sprintf("%s: Missing project name", rowLabel), nil
	}

	locStr := getCell(row, mapping.Location)
	if locStr == "" {
		return model.Project{}, fmt.Sprintf("%s: Missing location", rowLabel), nil
	}
	loc, ok := model.ParseLocation(locStr)
	if !ok {
		return model.Project{}, fmt.Sprintf("%s: Unknown location '%s'", rowLabel, locStr), nil
	}

	typeStr := getCell(row, mapping.Type)
	if typeStr == "" {
		return model.Project{}, fmt.Sprintf("%s: Missing project type", rowLabel), nil
	}
	ptype, ok := model.ParseProjectType(typeStr)
	if !ok {
		return model.Project{}, fmt.Sprintf("%s: Unknown project type '%s'", rowLabel, typeStr), nil
	}

	images, errMsg, warning := parseImages(row, mapping, rowLabel)
	if errMsg != "" {
		return model.Project{}, errMsg, nil
	}
	if warning != "" {
		warnings = append(warnings, warning)
	}

	p := model.Project{
		ID:          getCell(row, mapping.ID),
		Name:        name,
		Slug:        getCell(row, mapping.Slug),
		Address:     getCell(row, mapping.Address),
		Location:    loc,
		Type:        ptype,
		Images:      images,
		Thumbnail:   getCell(row, mapping.Thumbnail),
		Description: getCell(row, mapping.Description),
	}
	if p.Slug == "" {
		p.Slug = model.Slugify(name)
	}
	if p.ID == "" {
		p.ID = p.Slug
	}

	featStr := getCell(row, mapping.Featured)
	featured, ok := parseBool(featStr)
	if !ok {
		warnings = append(warnings, fmt.Sprintf("%s: Unknown featured value '%s', defaulting to false", rowLabel, featStr))
	}
	p.Featured = featured

	return p, "", warnings
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ImportCSV imports projects from a CSV file.
// It automatically detects the delimiter and maps columns by header names.
func ImportCSV(path string) ImportResult {
	data, err := os.ReadFile(path)
	if err != nil {
		return ImportResult{Errors: []string{fmt.Sprintf("Cannot open file: %v", err)}}
	}
	return ImportCSVData(data)
}

// ImportCSVData imports projects from CSV bytes, detecting the delimiter.
func ImportCSVData(data []byte) ImportResult {
	result := ImportResult{}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		result.Warnings = append(result.Warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	return importFromRows(records, "Line", result.Warnings)
}

// ImportCSVFromReader imports projects from a CSV reader with a specific delimiter.
func ImportCSVFromReader(reader io.Reader, delimiter rune) ImportResult {
	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		return ImportResult{Errors: []string{fmt.Sprintf("Cannot read CSV: %v", err)}}
	}

	return importFromRows(records, "Line", nil)
}

// ImportExcel imports projects from the first sheet of an Excel workbook.
func ImportExcel(path string) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}

	return importFromRows(rows, "Row", nil)
}

// importFromRows is the shared import logic for both CSV and Excel data.
// The first row must be a header naming at least Name, Location and Type.
func importFromRows(rows [][]string, rowPrefix string, initialWarnings []string) ImportResult {
	result := ImportResult{
		Warnings: initialWarnings,
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	mapping, hasHeader := DetectColumns(rows[0])
	if !hasHeader {
		result.Errors = append(result.Errors, "No header row found")
		return result
	}

	missing := []string{}
	if mapping.Name == -1 {
		missing = append(missing, "Name")
	}
	if mapping.Location == -1 {
		missing = append(missing, "Location")
	}
	if mapping.Type == -1 {
		missing = append(missing, "Type")
	}
	if len(missing) > 0 {
		result.Errors = append(result.Errors, fmt.Sprintf("Required columns not found in header: %s", strings.Join(missing, ", ")))
		return result
	}

	seen := map[string]string{}
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, i+1)
		p, errMsg, warnings := parseRow(row, mapping, rowLabel)
		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		result.Warnings = append(result.Warnings, warnings...)

		if prev, dup := seen[p.Slug]; dup {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: Duplicate slug '%s' (first seen at %s)", rowLabel, p.Slug, prev))
			continue
		}
		seen[p.Slug] = rowLabel

		result.Projects = append(result.Projects, p)
	}

	if len(result.Projects) == 0 && len(result.Errors) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
	}

	return result
}
