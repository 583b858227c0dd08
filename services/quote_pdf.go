package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateQuotePDF renders a survey quote document using maroto/v2 and
// returns the raw PDF bytes.
func GenerateQuotePDF(data QuoteData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).
		WithTopMargin(12).
		WithRightMargin(12).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addQuoteHeader(m, data)
	addBreakdownHeader(m)
	for _, line := range data.Lines {
		addBreakdownRow(m, line)
	}
	addQuoteTotals(m, data)
	if len(data.Regions) > 0 {
		addSchematicAppendix(m, data)
	}
	addQuoteFooter(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate quote PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

// addQuoteHeader adds the company letterhead and survey identifiers.
func addQuoteHeader(m core.Maroto, data QuoteData) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New(data.Company.Name, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	if data.Company.Address != "" || data.Company.Email != "" {
		m.AddRows(
			row.New(6).Add(
				col.New(12).Add(
					text.New(joinNonEmpty(data.Company.Address, data.Company.Email, data.Company.Phone), props.Text{
						Size:  8,
						Align: align.Center,
						Color: &props.Color{Red: 100, Green: 100, Blue: 100},
					}),
				),
			),
		)
	}

	m.AddRows(
		row.New(10).Add(
			col.New(12).Add(
				text.New("Kitchen Deep Clean Quotation", props.Text{
					Size:  12,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	m.AddRows(
		row.New(7).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("Quote: %s", data.QuoteNumber), props.Text{
					Size:  9,
					Align: align.Left,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Date: %s", data.GeneratedDate), props.Text{
					Size:  9,
					Align: align.Right,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
		),
	)

	site := data.SiteName
	if data.ClientName != "" {
		site = data.ClientName + " - " + site
	}
	m.AddRows(
		row.New(7).Add(
			col.New(8).Add(
				text.New(fmt.Sprintf("Site: %s", site), props.Text{
					Size:  9,
					Align: align.Left,
				}),
			),
			col.New(4).Add(
				text.New(fmt.Sprintf("Ref: %s", data.ReferenceNumber), props.Text{
					Size:  9,
					Align: align.Right,
				}),
			),
		),
	)

	m.AddRows(row.New(4))
}

// addBreakdownHeader adds the column header row for the price table.
func addBreakdownHeader(m core.Maroto) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextRight := headerText
	headerTextRight.Align = align.Right

	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New("Category", headerText),
			).WithStyle(&headerCell),
			col.New(3).Add(
				text.New("Details", headerText),
			).WithStyle(&headerCell),
			col.New(3).Add(
				text.New("Amount", headerTextRight),
			).WithStyle(&headerCell),
		),
	)
}

// addBreakdownRow adds a single category line to the price table.
func addBreakdownRow(m core.Maroto, line QuoteRow) {
	baseText := props.Text{Size: 8, Align: align.Left}
	rightText := baseText
	rightText.Align = align.Right

	m.AddRows(
		row.New(7).Add(
			col.New(6).Add(text.New(line.Category, baseText)),
			col.New(3).Add(text.New(line.Details, baseText)),
			col.New(3).Add(text.New(FormatGBP(line.Amount), rightText)),
		),
	)
}

// addQuoteTotals adds the subtotal, modifier and grand total block.
func addQuoteTotals(m core.Maroto, data QuoteData) {
	m.AddRows(row.New(4))

	totalsBg := &props.Color{Red: 240, Green: 240, Blue: 240}
	totalsCell := &props.Cell{BackgroundColor: totalsBg}

	labelStyle := props.Text{Size: 9, Align: align.Right}
	valueStyle := props.Text{Size: 9, Align: align.Right}
	boldLabel := labelStyle
	boldLabel.Style = fontstyle.Bold
	boldValue := valueStyle
	boldValue.Style = fontstyle.Bold

	m.AddRows(
		row.New(7).Add(
			col.New(9).Add(text.New("Subtotal", labelStyle)).WithStyle(totalsCell),
			col.New(3).Add(text.New(FormatGBP(data.Subtotal), valueStyle)).WithStyle(totalsCell),
		),
	)

	if data.ModifierPercent != 0 {
		m.AddRows(
			row.New(7).Add(
				col.New(9).Add(
					text.New(fmt.Sprintf("Adjustment (%.1f%%)", data.ModifierPercent), labelStyle),
				).WithStyle(totalsCell),
				col.New(3).Add(
					text.New(FormatGBP(data.GrandTotal-data.Subtotal), valueStyle),
				).WithStyle(totalsCell),
			),
		)
	}

	m.AddRows(
		row.New(8).Add(
			col.New(9).Add(text.New("Grand Total", boldLabel)).WithStyle(totalsCell),
			col.New(3).Add(text.New(FormatGBP(data.GrandTotal), boldValue)).WithStyle(totalsCell),
		),
	)

	if data.AmountInWords != "" {
		m.AddRows(
			row.New(6).Add(
				col.New(12).Add(
					text.New(data.AmountInWords, props.Text{
						Size:  8,
						Style: fontstyle.Italic,
						Align: align.Right,
					}),
				),
			),
		)
	}
}

// addSchematicAppendix lists the schematic render regions so the site
// drawings can be cross-referenced against the quote.
func addSchematicAppendix(m core.Maroto, data QuoteData) {
	m.AddRows(row.New(6))
	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New("Schematic Areas", props.Text{
					Size:  10,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
		),
	)

	for _, region := range data.Regions {
		m.AddRows(
			row.New(6).Add(
				col.New(12).Add(
					text.New(
						fmt.Sprintf("%s - %d item(s), %d×%d cells at (%d, %d)",
							region.Label, region.ItemCount, region.Side, region.Side, region.MinX, region.MinY),
						props.Text{Size: 8, Align: align.Left},
					),
				),
			),
		)
	}
}

// addQuoteFooter adds the generated-date line at the bottom.
func addQuoteFooter(m core.Maroto, data QuoteData) {
	m.AddRows(row.New(6))
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New(
					fmt.Sprintf("Generated on %s", data.GeneratedDate),
					props.Text{
						Size:  7,
						Align: align.Left,
						Color: &props.Color{Red: 140, Green: 140, Blue: 140},
					},
				),
			),
		),
	)
}

func joinNonEmpty(parts ...string) string {
	out := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if out != "" {
			out += "  ·  "
		}
		out += p
	}
	return out
}
