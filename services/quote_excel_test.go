package services

import (
	"bytes"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestGenerateQuoteExcel(t *testing.T) {
	data := testQuoteData()

	raw, err := GenerateQuoteExcel(data)
	if err != nil {
		t.Fatalf("GenerateQuoteExcel() error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("output is not a readable workbook: %v", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet != "Riverside Hotel" {
		t.Errorf("sheet name = %q, want site name", sheet)
	}

	title, _ := f.GetCellValue(sheet, "A1")
	if !strings.Contains(title, "KSC-Q-1042-26-27-001") {
		t.Errorf("title %q missing quote number", title)
	}

	header, _ := f.GetCellValue(sheet, "A5")
	if header != "Category" {
		t.Errorf("A5 = %q, want Category", header)
	}

	firstLine, _ := f.GetCellValue(sheet, "A6")
	if firstLine != "Structure" {
		t.Errorf("A6 = %q, want Structure", firstLine)
	}
	firstAmount, _ := f.GetCellValue(sheet, "C6")
	if firstAmount != "£198.00" {
		t.Errorf("C6 = %q, want £198.00", firstAmount)
	}

	// Three lines end at row 8; subtotal sits one blank row below, then
	// the adjustment row, then the grand total.
	subtotal, _ := f.GetCellValue(sheet, "C10")
	if subtotal != "£340.00" {
		t.Errorf("C10 = %q, want £340.00", subtotal)
	}
	grand, _ := f.GetCellValue(sheet, "C12")
	if grand != "£374.00" {
		t.Errorf("C12 = %q, want £374.00", grand)
	}
}

func TestGenerateQuoteExcel_SheetNameFallbacks(t *testing.T) {
	data := QuoteData{QuoteNumber: "KSC-Q-x-26-27-001"}
	raw, err := GenerateQuoteExcel(data)
	if err != nil {
		t.Fatalf("GenerateQuoteExcel() error: %v", err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	if got := f.GetSheetName(0); got != "Quote" {
		t.Errorf("empty site name sheet = %q, want Quote", got)
	}

	data.SiteName = strings.Repeat("Long Site Name ", 5)
	raw, err = GenerateQuoteExcel(data)
	if err != nil {
		t.Fatalf("GenerateQuoteExcel() error: %v", err)
	}
	f2, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f2.Close()
	if got := f2.GetSheetName(0); len(got) > 31 {
		t.Errorf("sheet name %q exceeds 31 chars", got)
	}
}

func TestSanitizeExcelCell(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Canopy", "Canopy"},
		{"=SUM(A1:A9)", "'=SUM(A1:A9)"},
		{"+44 113 000", "'+44 113 000"},
		{"-discount", "'-discount"},
		{"@mention", "'@mention"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := sanitizeExcelCell(tt.in); got != tt.want {
			t.Errorf("sanitizeExcelCell(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
