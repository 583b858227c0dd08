package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// GenerateQuoteExcel creates a spreadsheet of the quote breakdown and
// returns the file contents as a byte slice.
func GenerateQuoteExcel(data QuoteData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	// Sheet names cap at 31 chars.
	sheetName := data.SiteName
	if len(sheetName) > 31 {
		sheetName = sheetName[:31]
	}
	if sheetName == "" {
		sheetName = "Quote"
	}

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	columns := []string{"A", "B", "C"}
	lastCol := columns[len(columns)-1]

	widths := []float64{34, 22, 18}
	for i, col := range columns {
		if err := f.SetColWidth(sheetName, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	// ── Styles ──────────────────────────────────────────────────────────

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	subtitleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create subtitle style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#333333"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    quoteThinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	lineStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: quoteThinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create line style: %w", err)
	}

	totalLabelStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return nil, fmt.Errorf("create total label style: %w", err)
	}

	totalValueStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create total value style: %w", err)
	}

	// ── Header rows ─────────────────────────────────────────────────────

	if err := f.MergeCell(sheetName, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheetName, "A1", sanitizeExcelCell(data.SiteName)+" - Quote "+data.QuoteNumber)
	f.SetCellStyle(sheetName, "A1", lastCol+"1", titleStyle)

	if data.ReferenceNumber != "" {
		if err := f.MergeCell(sheetName, "A2", lastCol+"2"); err != nil {
			return nil, fmt.Errorf("merge ref: %w", err)
		}
		f.SetCellValue(sheetName, "A2", "Ref: "+sanitizeExcelCell(data.ReferenceNumber))
		f.SetCellStyle(sheetName, "A2", lastCol+"2", subtitleStyle)
	}

	if err := f.MergeCell(sheetName, "A3", lastCol+"3"); err != nil {
		return nil, fmt.Errorf("merge date: %w", err)
	}
	f.SetCellValue(sheetName, "A3", "Date: "+data.GeneratedDate)
	f.SetCellStyle(sheetName, "A3", lastCol+"3", subtitleStyle)

	// ── Column headers (row 5) ──────────────────────────────────────────

	headers := []string{"Category", "Details", "Amount"}
	for i, h := range headers {
		f.SetCellValue(sheetName, fmt.Sprintf("%s5", columns[i]), h)
	}
	f.SetCellStyle(sheetName, "A5", lastCol+"5", headerStyle)

	// ── Breakdown lines (from row 6) ────────────────────────────────────

	row := 6
	for _, line := range data.Lines {
		rowStr := fmt.Sprintf("%d", row)
		f.SetCellValue(sheetName, "A"+rowStr, sanitizeExcelCell(line.Category))
		f.SetCellValue(sheetName, "B"+rowStr, sanitizeExcelCell(line.Details))
		f.SetCellValue(sheetName, "C"+rowStr, FormatGBP(line.Amount))
		f.SetCellStyle(sheetName, "A"+rowStr, lastCol+rowStr, lineStyle)
		row++
	}

	// ── Totals ──────────────────────────────────────────────────────────

	row++
	totalRow := fmt.Sprintf("%d", row)
	f.SetCellValue(sheetName, "B"+totalRow, "Subtotal:")
	f.SetCellStyle(sheetName, "B"+totalRow, "B"+totalRow, totalLabelStyle)
	f.SetCellValue(sheetName, "C"+totalRow, FormatGBP(data.Subtotal))
	f.SetCellStyle(sheetName, "C"+totalRow, "C"+totalRow, totalValueStyle)
	row++

	if data.ModifierPercent != 0 {
		totalRow = fmt.Sprintf("%d", row)
		f.SetCellValue(sheetName, "B"+totalRow, fmt.Sprintf("Adjustment (%.1f%%):", data.ModifierPercent))
		f.SetCellStyle(sheetName, "B"+totalRow, "B"+totalRow, totalLabelStyle)
		f.SetCellValue(sheetName, "C"+totalRow, FormatGBP(data.GrandTotal-data.Subtotal))
		f.SetCellStyle(sheetName, "C"+totalRow, "C"+totalRow, totalValueStyle)
		row++
	}

	totalRow = fmt.Sprintf("%d", row)
	f.SetCellValue(sheetName, "B"+totalRow, "Grand Total:")
	f.SetCellStyle(sheetName, "B"+totalRow, "B"+totalRow, totalLabelStyle)
	f.SetCellValue(sheetName, "C"+totalRow, FormatGBP(data.GrandTotal))
	f.SetCellStyle(sheetName, "C"+totalRow, "C"+totalRow, totalValueStyle)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous
// leading characters with a single quote. Excel treats cells starting
// with =, +, -, @, \t or \r as formulas.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// quoteThinBorders returns thin borders for all four cell sides.
func quoteThinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1,
		}
	}
	return borders
}
