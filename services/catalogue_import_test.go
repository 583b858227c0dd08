package services

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/xuri/excelize/v2"
)

// buildUploadWorkbook creates an in-memory .xlsx with the template
// header row followed by the given data rows.
func buildUploadWorkbook(t *testing.T, dataRows [][]any) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	for i, col := range catalogueColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, col.Header)
	}
	for r, row := range dataRows {
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("build workbook: %v", err)
	}
	return buf.Bytes()
}

func TestParseCatalogueUpload(t *testing.T) {
	raw := buildUploadWorkbook(t, [][]any{
		{"Ventilation", "Ducting", "Grease Extract Duct", "linear", 12.5, 10, 8, "", "", "", "yes"},
		{"Canopy", "", "Standard Canopy", "", "", 22, "", "", "", "", ""},
		{"Equipment", "Cooking", "Fryer", "fixed", "", "", "", "", "", 45, ""},
	})

	rows, rowErrs, err := ParseCatalogueUpload(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("ParseCatalogueUpload() error: %v", err)
	}
	if len(rowErrs) != 0 {
		t.Fatalf("unexpected validation errors: %+v", rowErrs)
	}
	if len(rows) != 3 {
		t.Fatalf("parsed %d rows, want 3", len(rows))
	}

	duct := rows[0]
	if duct.Category != "Ventilation" || duct.Item != "Grease Extract Duct" {
		t.Errorf("unexpected first row: %+v", duct)
	}
	if !duct.RequiresDimensions {
		t.Error("yes in Requires Dimensions should parse as true")
	}
	if len(duct.Prices) != 3 || duct.Prices[0].Grade != "A" || duct.Prices[0].Price != 12.5 {
		t.Errorf("unexpected duct prices: %+v", duct.Prices)
	}

	fryer := rows[2]
	if len(fryer.Prices) != 1 || fryer.Prices[0].Grade != "default" || fryer.Prices[0].Price != 45 {
		t.Errorf("default-price column should land in the list: %+v", fryer.Prices)
	}
}

func TestParseCatalogueUpload_SkipsEmptyRows(t *testing.T) {
	raw := buildUploadWorkbook(t, [][]any{
		{"", "", "", "", "", "", "", "", "", "", ""},
		{"Canopy", "", "Standard Canopy", "", "", 22, "", "", "", "", ""},
		{" ", "", " ", "", "", "", "", "", "", "", ""},
	})

	rows, rowErrs, err := ParseCatalogueUpload(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("ParseCatalogueUpload() error: %v", err)
	}
	if len(rowErrs) != 0 {
		t.Fatalf("unexpected errors: %+v", rowErrs)
	}
	if len(rows) != 1 {
		t.Errorf("parsed %d rows, want 1 (blank rows skipped)", len(rows))
	}
}

func TestParseCatalogueUpload_Validation(t *testing.T) {
	raw := buildUploadWorkbook(t, [][]any{
		// Missing category and item.
		{"", "", "", "", "", 10, "", "", "", "", ""},
		// Bad calculation type.
		{"Canopy", "", "Standard", "cubic", "", 22, "", "", "", "", ""},
		// Non-numeric and negative prices, and no usable price at all.
		{"Canopy", "", "Other", "", "abc", -5, "", "", "", "", ""},
	})

	rows, rowErrs, err := ParseCatalogueUpload(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("ParseCatalogueUpload() error: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("invalid rows must not parse, got %d", len(rows))
	}

	wantFields := map[string]bool{}
	for _, e := range rowErrs {
		wantFields[fmt.Sprintf("%d/%s", e.Row, e.Field)] = true
	}
	for _, key := range []string{
		"2/Category", "2/Item",
		"3/Calculation Type",
		"4/Price A", "4/Price B", "4/Prices",
	} {
		if !wantFields[key] {
			t.Errorf("missing expected error %s in %+v", key, rowErrs)
		}
	}
}

func TestParseCatalogueUpload_ZeroPriceIsValid(t *testing.T) {
	raw := buildUploadWorkbook(t, [][]any{
		{"Canopy", "", "Freebie", "", "0.0", "", "", "", "", "", ""},
	})

	rows, rowErrs, err := ParseCatalogueUpload(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("ParseCatalogueUpload() error: %v", err)
	}
	if len(rowErrs) != 0 {
		t.Fatalf("a zero price must validate, got %+v", rowErrs)
	}
	if len(rows) != 1 || rows[0].Prices[0].Price != 0 {
		t.Errorf("unexpected rows: %+v", rows)
	}
}

func TestGenerateCatalogueTemplate(t *testing.T) {
	raw, err := GenerateCatalogueTemplate()
	if err != nil {
		t.Fatalf("GenerateCatalogueTemplate() error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("template is not a readable workbook: %v", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	first, _ := f.GetCellValue(sheet, "A1")
	if first != "Category *" {
		t.Errorf("A1 = %q, want required Category header", first)
	}
	item, _ := f.GetCellValue(sheet, "C1")
	if item != "Item *" {
		t.Errorf("C1 = %q, want required Item header", item)
	}
	sub, _ := f.GetCellValue(sheet, "B1")
	if sub != "Subcategory" {
		t.Errorf("B1 = %q, want optional Subcategory header", sub)
	}

	// The template round-trips through the parser.
	rows, rowErrs, err := ParseCatalogueUpload(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("parsing own template: %v", err)
	}
	if len(rowErrs) != 0 {
		t.Errorf("template example row must validate, got %+v", rowErrs)
	}
	if len(rows) != 1 {
		t.Errorf("expected the single example row, got %d", len(rows))
	}
}

func TestGenerateCatalogueErrorReport(t *testing.T) {
	raw, err := GenerateCatalogueErrorReport([]CatalogueRowError{
		{Row: 4, Field: "Price B", Message: "\"abc\" is not a number"},
		{Row: 7, Field: "Category", Message: "category is required"},
	})
	if err != nil {
		t.Fatalf("GenerateCatalogueErrorReport() error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("report is not a readable workbook: %v", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet != "Errors" {
		t.Errorf("sheet = %q, want Errors", sheet)
	}
	rowCell, _ := f.GetCellValue(sheet, "A2")
	if rowCell != "4" {
		t.Errorf("A2 = %q, want 4", rowCell)
	}
	msg, _ := f.GetCellValue(sheet, "C3")
	if msg != "category is required" {
		t.Errorf("C3 = %q", msg)
	}
}

func TestValidCalculationType(t *testing.T) {
	for _, ct := range []string{"area", "volume", "linear", "fixed"} {
		if !validCalculationType(ct) {
			t.Errorf("validCalculationType(%q) = false", ct)
		}
	}
	for _, ct := range []string{"", "cubic", "AREA"} {
		if validCalculationType(ct) {
			t.Errorf("validCalculationType(%q) = true", ct)
		}
	}
}
