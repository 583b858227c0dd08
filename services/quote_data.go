package services

import (
	"fmt"
	"log"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// CompanyInfo is the letterhead block printed on quote documents.
type CompanyInfo struct {
	Name    string
	Address string
	Email   string
	Phone   string
}

// QuoteRow is one priced line of the quote breakdown table.
type QuoteRow struct {
	Category string
	Details  string
	Amount   float64
}

// RegionSummary describes one schematic render region for the quote's
// schematic appendix.
type RegionSummary struct {
	Label      string
	MinX, MinY int
	Side       int
	ItemCount  int
}

// QuoteData holds everything needed to generate a quote document.
type QuoteData struct {
	Company CompanyInfo

	QuoteNumber     string
	SiteName        string
	ReferenceNumber string
	ClientName      string
	SurveyDate      string
	GeneratedDate   string

	Lines           []QuoteRow
	Subtotal        float64
	ModifierPercent float64
	GrandTotal      float64
	AmountInWords   string

	Regions []RegionSummary
}

// LoadCatalogue reads the full price table. The catalogue is fetched
// once per operation and treated as immutable.
func LoadCatalogue(app *pocketbase.PocketBase) ([]PriceTableItem, error) {
	records, err := app.FindAllRecords("price_table_items")
	if err != nil {
		return nil, fmt.Errorf("load catalogue: %w", err)
	}

	items := make([]PriceTableItem, 0, len(records))
	for _, rec := range records {
		item := PriceTableItem{
			ID:                 rec.Id,
			Category:           rec.GetString("category"),
			Subcategory:        rec.GetString("subcategory"),
			Item:               rec.GetString("item"),
			CalculationType:    rec.GetString("calculation_type"),
			RequiresDimensions: rec.GetBool("requires_dimensions"),
		}
		if err := rec.UnmarshalJSONField("prices", &item.Prices); err != nil {
			log.Printf("catalogue: item %s has unreadable prices: %v", rec.Id, err)
		}
		items = append(items, item)
	}
	return items, nil
}

// BuildSurveyCosts assembles the aggregator input from everything
// persisted against a survey.
func BuildSurveyCosts(app *pocketbase.PocketBase, survey *core.Record, catalogue []PriceTableItem) SurveyCosts {
	costs := SurveyCosts{
		Catalogue:              catalogue,
		StructureTotal:         survey.GetFloat("structure_total"),
		StructureTotalSet:      survey.GetBool("structure_total_set"),
		FanPartsPrice:          survey.GetFloat("fan_parts_price"),
		AirPrice:               survey.GetFloat("air_price"),
		AirInExTotal:           survey.GetFloat("air_in_ex_total"),
		GreaseTotal:            survey.GetFloat("grease_total"),
		ParkingCost:            survey.GetFloat("parking_cost"),
		PostServiceReport:      survey.GetString("post_service_report"),
		PostServiceReportPrice: survey.GetFloat("post_service_report_price"),
	}

	costs.StructureEntries = loadStructureEntries(app, survey.Id)
	costs.EquipmentEntries = loadEquipmentEntries(app, survey.Id)
	costs.CanopyTotal = canopyTotal(app, survey.Id, catalogue)
	costs.AccessDoors = loadAccessDoorSelections(app, survey.Id)

	flexiDucts := LoadFlexiDuctSelections(app, survey.Id)
	costs.VentilationPrice = FlexiDuctTotal(flexiDucts)

	placed := LoadSchematicItems(app, survey.Id)
	costs.Schematic = SchematicBreakdown(filterSelectionPriced(placed, costs.AccessDoors, flexiDucts), catalogue)

	costs.SpecialistEntries = loadSpecialistEntries(app, survey.Id)

	return costs
}

// BuildQuoteData loads a survey and produces the full document model
// for PDF and spreadsheet generation.
func BuildQuoteData(app *pocketbase.PocketBase, surveyID string, company CompanyInfo, now time.Time) (QuoteData, error) {
	survey, err := app.FindRecordById("surveys", surveyID)
	if err != nil {
		return QuoteData{}, fmt.Errorf("quote data: survey not found: %w", err)
	}

	catalogue, err := LoadCatalogue(app)
	if err != nil {
		return QuoteData{}, err
	}

	costs := BuildSurveyCosts(app, survey, catalogue)
	totals := Aggregate(costs, survey.GetFloat("modifier_percent"))

	quoteNumber, err := GenerateQuoteNumber(app, surveyID, now)
	if err != nil {
		return QuoteData{}, err
	}

	data := QuoteData{
		Company:         company,
		QuoteNumber:     quoteNumber,
		SiteName:        survey.GetString("site_name"),
		ReferenceNumber: survey.GetString("reference_number"),
		ClientName:      survey.GetString("client_name"),
		GeneratedDate:   now.Format("02 Jan 2006"),
		Subtotal:        totals.Subtotal,
		ModifierPercent: totals.ModifierPercent,
		GrandTotal:      totals.GrandTotal,
		AmountInWords:   AmountToWords(totals.GrandTotal),
	}
	if dt := survey.GetDateTime("created"); !dt.IsZero() {
		data.SurveyDate = dt.Time().Format("02 Jan 2006")
	}

	for _, line := range totals.Lines {
		data.Lines = append(data.Lines, QuoteRow{
			Category: line.Category,
			Details:  line.Details,
			Amount:   line.Amount,
		})
	}

	placed := LoadSchematicItems(app, surveyID)
	specials := LoadSpecialItems(app, surveyID)
	for i, g := range GroupConnectedItems(placed, specials, DefaultGroupingThreshold) {
		r := BoundingRegion(g)
		data.Regions = append(data.Regions, RegionSummary{
			Label:     fmt.Sprintf("Area %d", i+1),
			MinX:      r.MinX,
			MinY:      r.MinY,
			Side:      r.Side(),
			ItemCount: len(g.Placed),
		})
	}

	return data, nil
}

// LoadSchematicItems reads a survey's placed schematic items.
func LoadSchematicItems(app *pocketbase.PocketBase, surveyID string) []SchematicItem {
	records := findSurveyRecords(app, "schematic_items", surveyID)
	items := make([]SchematicItem, 0, len(records))
	for _, rec := range records {
		items = append(items, SchematicItem{
			ID:                 rec.Id,
			CellX:              rec.GetInt("cell_x"),
			CellY:              rec.GetInt("cell_y"),
			Category:           rec.GetString("category"),
			Name:               rec.GetString("name"),
			OriginalID:         rec.GetString("original_id"),
			RequiresDimensions: rec.GetBool("requires_dimensions"),
			AggregateEntry:     rec.GetBool("aggregate_entry"),
			Length:             rec.GetFloat("length"),
			Width:              rec.GetFloat("width"),
			Height:             rec.GetFloat("height"),
			ItemType:           rec.GetString("item_type"),
			PairID:             rec.GetString("pair_id"),
		})
	}
	return items
}

// LoadSpecialItems reads a survey's labels and measurements.
func LoadSpecialItems(app *pocketbase.PocketBase, surveyID string) []SpecialItem {
	records := findSurveyRecords(app, "special_items", surveyID)
	items := make([]SpecialItem, 0, len(records))
	for _, rec := range records {
		items = append(items, SpecialItem{
			ID:       rec.Id,
			Kind:     rec.GetString("kind"),
			CellX:    rec.GetInt("cell_x"),
			CellY:    rec.GetInt("cell_y"),
			EndX:     rec.GetInt("end_x"),
			EndY:     rec.GetInt("end_y"),
			Value:    rec.GetFloat("value"),
			Rotation: rec.GetFloat("rotation"),
			Text:     rec.GetString("text"),
		})
	}
	return items
}

// LoadFlexiDuctSelections reads the ventilation products attached to a
// survey's duct items, keyed by schematic item id.
func LoadFlexiDuctSelections(app *pocketbase.PocketBase, surveyID string) map[string][]FlexiDuctEntry {
	records := findSurveyRecords(app, "flexi_duct_selections", surveyID)
	selections := map[string][]FlexiDuctEntry{}
	for _, rec := range records {
		var entries []FlexiDuctEntry
		if err := rec.UnmarshalJSONField("entries", &entries); err != nil {
			log.Printf("quote data: flexi duct selection %s has unreadable entries: %v", rec.Id, err)
			continue
		}
		selections[rec.GetString("schematic_item")] = entries
	}
	return selections
}

func loadStructureEntries(app *pocketbase.PocketBase, surveyID string) []StructureEntry {
	records := findSurveyRecords(app, "structure_entries", surveyID)
	entries := make([]StructureEntry, 0, len(records))
	for _, rec := range records {
		entry := StructureEntry{
			Dimensions: DimensionSet{
				Length: rec.GetFloat("length"),
				Width:  rec.GetFloat("width"),
				Height: rec.GetFloat("height"),
			},
		}
		if err := rec.UnmarshalJSONField("rows", &entry.Rows); err != nil {
			log.Printf("quote data: structure entry %s has unreadable rows: %v", rec.Id, err)
		}
		entries = append(entries, entry)
	}
	return entries
}

func loadEquipmentEntries(app *pocketbase.PocketBase, surveyID string) []EquipmentEntry {
	records := findSurveyRecords(app, "equipment_entries", surveyID)
	entries := make([]EquipmentEntry, 0, len(records))
	for _, rec := range records {
		entries = append(entries, EquipmentEntry{
			Subcategory: rec.GetString("subcategory"),
			Item:        rec.GetString("item"),
			Grade:       rec.GetString("grade"),
			Quantity:    rec.GetFloat("quantity"),
		})
	}
	return entries
}

func canopyTotal(app *pocketbase.PocketBase, surveyID string, catalogue []PriceTableItem) float64 {
	var total float64
	for _, rec := range findSurveyRecords(app, "canopy_entries", surveyID) {
		canopyUnit := LookupUnitPrice(catalogue, "Canopy", rec.GetString("canopy_item"), rec.GetString("canopy_grade"))
		dims := DimensionSet{
			Length: rec.GetFloat("length"),
			Width:  rec.GetFloat("width"),
			Height: rec.GetFloat("height"),
		}
		total += CanopyRowPrice(canopyUnit, dims)

		filterUnit := LookupUnitPrice(catalogue, "Filters", rec.GetString("filter_item"), rec.GetString("filter_grade"))
		total += FilterRowPrice(filterUnit, rec.GetFloat("filter_number"))
	}
	return total
}

func loadAccessDoorSelections(app *pocketbase.PocketBase, surveyID string) []AccessDoorSelection {
	records := findSurveyRecords(app, "access_door_selections", surveyID)
	selections := make([]AccessDoorSelection, 0, len(records))
	for _, rec := range records {
		selections = append(selections, AccessDoorSelection{
			ItemID:     rec.GetString("schematic_item"),
			ProductID:  rec.GetString("product_id"),
			Name:       rec.GetString("name"),
			DoorType:   rec.GetString("door_type"),
			Dimensions: rec.GetString("dimensions"),
			Price:      rec.GetFloat("price"),
		})
	}
	return selections
}

func loadSpecialistEntries(app *pocketbase.PocketBase, surveyID string) []SpecialistEntry {
	records := findSurveyRecords(app, "specialist_entries", surveyID)
	entries := make([]SpecialistEntry, 0, len(records))
	for _, rec := range records {
		entry := SpecialistEntry{
			Name:     rec.GetString("name"),
			Category: rec.GetString("category"),
			Number:   rec.GetFloat("number"),
		}
		if price := rec.GetFloat("price"); price != 0 {
			entry.Price = &price
		}
		if err := rec.UnmarshalJSONField("custom_data", &entry.CustomData); err != nil {
			log.Printf("quote data: specialist entry %s has unreadable custom data: %v", rec.Id, err)
		}
		entries = append(entries, entry)
	}
	return entries
}

// filterSelectionPriced drops schematic items whose price comes from an
// access door or flexi duct selection, so the schematic breakdown does
// not double-charge them.
func filterSelectionPriced(items []SchematicItem, doors []AccessDoorSelection, ducts map[string][]FlexiDuctEntry) []SchematicItem {
	selected := map[string]bool{}
	for _, d := range doors {
		selected[d.ItemID] = true
	}
	for id := range ducts {
		selected[id] = true
	}

	kept := items[:0:0]
	for _, it := range items {
		if !selected[it.ID] {
			kept = append(kept, it)
		}
	}
	return kept
}

func findSurveyRecords(app *pocketbase.PocketBase, collection, surveyID string) []*core.Record {
	records, err := app.FindRecordsByFilter(
		collection,
		"survey = {:surveyId}",
		"",
		0,
		0,
		map[string]any{"surveyId": surveyID},
	)
	if err != nil {
		return nil
	}
	return records
}
