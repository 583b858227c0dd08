package services

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/xuri/excelize/v2"
)

// catalogueColumns defines the import spreadsheet layout. Grade columns
// are read in order so the sheet's left-to-right order becomes the
// PriceList order.
var catalogueColumns = []struct {
	Header   string
	Required bool
}{
	{"Category", true},
	{"Subcategory", false},
	{"Item", true},
	{"Calculation Type", false},
	{"Price A", false},
	{"Price B", false},
	{"Price C", false},
	{"Price D", false},
	{"Price E", false},
	{"Default Price", false},
	{"Requires Dimensions", false},
}

// CatalogueImportRow is one parsed and validated catalogue row.
type CatalogueImportRow struct {
	Category           string    `json:"category"`
	Subcategory        string    `json:"subcategory"`
	Item               string    `json:"item"`
	CalculationType    string    `json:"calculation_type"`
	Prices             PriceList `json:"prices"`
	RequiresDimensions bool      `json:"requires_dimensions"`
}

// CatalogueRowError reports a problem with one spreadsheet row.
type CatalogueRowError struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// CatalogueImportResult is the outcome of a commit.
type CatalogueImportResult struct {
	TotalRows int                 `json:"total_rows"`
	Imported  int                 `json:"imported"`
	Skipped   int                 `json:"skipped"`
	Failed    int                 `json:"failed"`
	Errors    []CatalogueRowError `json:"errors,omitempty"`
}

// GenerateCatalogueTemplate creates the downloadable .xlsx template for
// price catalogue imports.
func GenerateCatalogueTemplate() ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Price Catalogue"
	defaultSheet := f.GetSheetName(0)
	f.SetSheetName(defaultSheet, sheetName)

	requiredHeaderStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#1D4ED8"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Border:    quoteThinBorders(),
	})
	optionalHeaderStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#6B7280"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Border:    quoteThinBorders(),
	})

	for i, col := range catalogueColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("template cell name: %w", err)
		}
		header := col.Header
		style := optionalHeaderStyle
		if col.Required {
			header += " *"
			style = requiredHeaderStyle
		}
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, style)

		colName, _ := excelize.ColumnNumberToName(i + 1)
		width := float64(len(col.Header)) * 1.3
		if width < 14 {
			width = 14
		}
		f.SetColWidth(sheetName, colName, colName, width)
	}

	// Example row to show the expected shapes.
	example := []any{"Ventilation Grease Extract", "Ducting", "Grease Extract Duct", "linear", 12.5, 10.0, 8.0, "", "", "", "yes"}
	for i, v := range example {
		cell, _ := excelize.CoordinatesToCellName(i+1, 2)
		f.SetCellValue(sheetName, cell, v)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write template: %w", err)
	}
	return buf.Bytes(), nil
}

// ParseCatalogueUpload reads an uploaded .xlsx and returns the parsed
// rows plus any validation errors. Rows with errors are excluded from
// the parsed result.
func ParseCatalogueUpload(r io.Reader) ([]CatalogueImportRow, []CatalogueRowError, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) < 2 {
		return nil, nil, nil
	}

	var parsed []CatalogueImportRow
	var errors []CatalogueRowError

	for i, raw := range rows[1:] {
		rowNum := i + 2 // 1-based, after the header
		if rowIsEmpty(raw) {
			continue
		}

		row, rowErrs := parseCatalogueRow(raw, rowNum)
		if len(rowErrs) > 0 {
			errors = append(errors, rowErrs...)
			continue
		}
		parsed = append(parsed, row)
	}

	return parsed, errors, nil
}

func parseCatalogueRow(raw []string, rowNum int) (CatalogueImportRow, []CatalogueRowError) {
	cell := func(i int) string {
		if i < len(raw) {
			return strings.TrimSpace(raw[i])
		}
		return ""
	}

	var errors []CatalogueRowError
	row := CatalogueImportRow{
		Category:        cell(0),
		Subcategory:     cell(1),
		Item:            cell(2),
		CalculationType: strings.ToLower(cell(3)),
	}

	if row.Category == "" {
		errors = append(errors, CatalogueRowError{Row: rowNum, Field: "Category", Message: "category is required"})
	}
	if row.Item == "" {
		errors = append(errors, CatalogueRowError{Row: rowNum, Field: "Item", Message: "item is required"})
	}

	if row.CalculationType != "" && !validCalculationType(row.CalculationType) {
		errors = append(errors, CatalogueRowError{
			Row:     rowNum,
			Field:   "Calculation Type",
			Message: fmt.Sprintf("unknown calculation type %q", row.CalculationType),
		})
	}

	grades := []struct {
		label string
		col   int
	}{
		{"A", 4}, {"B", 5}, {"C", 6}, {"D", 7}, {"E", 8}, {"default", 9},
	}
	for _, g := range grades {
		v := cell(g.col)
		if v == "" {
			continue
		}
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			errors = append(errors, CatalogueRowError{
				Row:     rowNum,
				Field:   "Price " + g.label,
				Message: fmt.Sprintf("%q is not a number", v),
			})
			continue
		}
		if price < 0 {
			errors = append(errors, CatalogueRowError{
				Row:     rowNum,
				Field:   "Price " + g.label,
				Message: "price must not be negative",
			})
			continue
		}
		row.Prices = append(row.Prices, GradePrice{Grade: g.label, Price: price})
	}

	if len(row.Prices) == 0 {
		errors = append(errors, CatalogueRowError{Row: rowNum, Field: "Prices", Message: "at least one price is required"})
	}

	switch strings.ToLower(cell(10)) {
	case "yes", "y", "true", "1":
		row.RequiresDimensions = true
	}

	return row, errors
}

// CommitCatalogueImport inserts parsed rows into the price table. Rows
// matching an existing category+item pair (case-insensitive) are
// skipped rather than duplicated.
func CommitCatalogueImport(app *pocketbase.PocketBase, rows []CatalogueImportRow) (*CatalogueImportResult, error) {
	col, err := app.FindCollectionByNameOrId("price_table_items")
	if err != nil {
		return nil, fmt.Errorf("price_table_items collection not found: %w", err)
	}

	existing, err := LoadCatalogue(app)
	if err != nil {
		return nil, err
	}
	type catalogueKey struct{ category, item string }
	seen := map[catalogueKey]bool{}
	for _, item := range existing {
		seen[catalogueKey{category: normalizeKey(item.Category), item: normalizeKey(item.Item)}] = true
	}

	result := &CatalogueImportResult{TotalRows: len(rows)}

	for i, row := range rows {
		key := catalogueKey{category: normalizeKey(row.Category), item: normalizeKey(row.Item)}
		if seen[key] {
			result.Skipped++
			continue
		}

		rec := core.NewRecord(col)
		rec.Set("category", row.Category)
		rec.Set("subcategory", row.Subcategory)
		rec.Set("item", row.Item)
		rec.Set("calculation_type", row.CalculationType)
		rec.Set("prices", row.Prices)
		rec.Set("requires_dimensions", row.RequiresDimensions)

		if err := app.Save(rec); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, CatalogueRowError{
				Row:     i + 2,
				Field:   "",
				Message: err.Error(),
			})
			continue
		}
		seen[key] = true
		result.Imported++
	}

	return result, nil
}

// GenerateCatalogueErrorReport renders validation errors back as a
// spreadsheet the user can download and fix.
func GenerateCatalogueErrorReport(errors []CatalogueRowError) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Errors"
	defaultSheet := f.GetSheetName(0)
	f.SetSheetName(defaultSheet, sheetName)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#B91C1C"}, Pattern: 1},
	})

	headers := []string{"Row", "Field", "Problem"}
	widths := []float64{8, 22, 50}
	for i, h := range headers {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		cell := colName + "1"
		f.SetCellValue(sheetName, cell, h)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
		f.SetColWidth(sheetName, colName, colName, widths[i])
	}

	for i, e := range errors {
		rowStr := fmt.Sprintf("%d", i+2)
		f.SetCellValue(sheetName, "A"+rowStr, e.Row)
		f.SetCellValue(sheetName, "B"+rowStr, sanitizeExcelCell(e.Field))
		f.SetCellValue(sheetName, "C"+rowStr, sanitizeExcelCell(e.Message))
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write error report: %w", err)
	}
	return buf.Bytes(), nil
}

func validCalculationType(t string) bool {
	for _, ct := range CalculationTypes {
		if ct != "" && ct == t {
			return true
		}
	}
	return false
}

func rowIsEmpty(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
