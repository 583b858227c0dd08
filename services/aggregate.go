package services

import "sort"

// CostLine is one display row of the quote breakdown. Amount already
// includes the global modifier.
type CostLine struct {
	Category string
	Amount   float64
	Details  string
}

// QuoteTotals is the aggregator output: the pre-modifier subtotal, the
// post-modifier grand total and the post-modifier display lines. Lines
// are recomputed from survey state on every request and never persisted
// on their own.
type QuoteTotals struct {
	Subtotal        float64
	ModifierPercent float64
	GrandTotal      float64
	Lines           []CostLine
}

// StructureRow is one surface row of a structure entry.
type StructureRow struct {
	Type  string `json:"type"`
	Item  string `json:"item"`
	Grade string `json:"grade"`
}

// StructureEntry is one surveyed structure area: a set of surface rows
// priced against the catalogue, scaled by the area's dimensions.
type StructureEntry struct {
	Rows       []StructureRow
	Dimensions DimensionSet
}

// EquipmentEntry is one surveyed appliance line.
type EquipmentEntry struct {
	Subcategory string
	Item        string
	Grade       string
	Quantity    float64
}

// AccessDoorSelection is the door product chosen for one access-door
// schematic item.
type AccessDoorSelection struct {
	ItemID     string  `json:"item_id"`
	ProductID  string  `json:"product_id"`
	Name       string  `json:"name"`
	DoorType   string  `json:"door_type"`
	Dimensions string  `json:"dimensions"`
	Price      float64 `json:"price"`
}

// FlexiDuctEntry is one ventilation product attached to a duct
// schematic item. A single duct may carry several, each priced
// independently.
type FlexiDuctEntry struct {
	ID        string  `json:"id"`
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Diameter  string  `json:"diameter"`
	Price     float64 `json:"price"`
	Quantity  float64 `json:"quantity"`
}

// SpecialistEntry is one specialist equipment line. Its unit price
// comes from an explicit price or a custom-data "price" field.
type SpecialistEntry struct {
	Name       string
	Category   string
	Number     float64
	Price      *float64
	CustomData []CustomField
}

// SchematicTotal is the schematic component's contribution: either a
// flat overall number, or a per-category breakdown that expands into
// one quote line per category.
type SchematicTotal struct {
	Overall   float64            `json:"overall"`
	Breakdown map[string]float64 `json:"breakdown,omitempty"`
}

// SurveyCosts gathers every category feeding the grand total. Each
// input is independently optional and contributes 0 when absent.
type SurveyCosts struct {
	// StructureTotal is used only when StructureTotalSet is true;
	// otherwise the total is recomputed from StructureEntries. The
	// explicit flag distinguishes "legitimately zero" from "never
	// entered", which a bare zero cannot.
	StructureTotal    float64
	StructureTotalSet bool
	StructureEntries  []StructureEntry

	Catalogue []PriceTableItem

	EquipmentEntries []EquipmentEntry

	CanopyTotal float64

	AccessDoors []AccessDoorSelection

	VentilationPrice float64
	FanPartsPrice    float64

	AirPrice     float64
	AirInExTotal float64

	Schematic SchematicTotal

	GreaseTotal float64

	SpecialistEntries []SpecialistEntry

	ParkingCost float64

	PostServiceReport      string // included only when the literal "Yes"
	PostServiceReportPrice float64
}

// StructureEntryTotal prices one structure entry: the sum of the grade
// prices of its surface rows, scaled by the entry's volume. Dimensions
// left empty count as 1 so a part-measured area still prices its rows.
func StructureEntryTotal(entry StructureEntry, catalogue []PriceTableItem) float64 {
	var rowSum float64
	for _, row := range entry.Rows {
		rowSum += LookupUnitPrice(catalogue, row.Type, row.Item, row.Grade)
	}
	size := dimOr1(entry.Dimensions.Length) * dimOr1(entry.Dimensions.Width) * dimOr1(entry.Dimensions.Height)
	return rowSum * size
}

// EquipmentTotal sums the surveyed appliance lines against the
// catalogue.
func EquipmentTotal(entries []EquipmentEntry, catalogue []PriceTableItem) float64 {
	var total float64
	for _, e := range entries {
		total += LookupUnitPrice(catalogue, e.Subcategory, e.Item, e.Grade) * finite(e.Quantity)
	}
	return total
}

// SpecialistTotal sums the specialist equipment lines. An empty count
// bills as 1.
func SpecialistTotal(entries []SpecialistEntry) float64 {
	var total float64
	for _, e := range entries {
		total += specialistUnitPrice(e) * numberOr1(e.Number)
	}
	return total
}

// FlexiDuctTotal sums every attached ventilation product across all
// duct selections.
func FlexiDuctTotal(selections map[string][]FlexiDuctEntry) float64 {
	var total float64
	for _, entries := range selections {
		for _, e := range entries {
			total += finite(e.Price) * numberOr1(e.Quantity)
		}
	}
	return total
}

// AccessDoorTotal sums the chosen door prices.
func AccessDoorTotal(selections []AccessDoorSelection) float64 {
	var total float64
	for _, s := range selections {
		total += finite(s.Price)
	}
	return total
}

func specialistUnitPrice(e SpecialistEntry) float64 {
	if e.Price != nil {
		return finite(*e.Price)
	}
	if p, ok := customPrice(e.CustomData); ok {
		return p
	}
	return 0
}

// Aggregate rolls every cost category into the grand total. The
// percentage modifier is applied exactly once, to the sum of all
// category subtotals, never per category. Display line amounts carry
// the modifier too, so the lines re-sum to the grand total.
func Aggregate(costs SurveyCosts, modifierPercent float64) QuoteTotals {
	type category struct {
		name    string
		amount  float64
		details string
	}
	var categories []category
	add := func(name string, amount float64, details string) {
		amount = finite(amount)
		if amount == 0 {
			return
		}
		categories = append(categories, category{name: name, amount: amount, details: details})
	}

	structure := costs.StructureTotal
	if !costs.StructureTotalSet {
		structure = 0
		for _, entry := range costs.StructureEntries {
			structure += StructureEntryTotal(entry, costs.Catalogue)
		}
	}
	add("Structure", structure, "")

	add("Equipment", EquipmentTotal(costs.EquipmentEntries, costs.Catalogue), "")
	add("Canopy", finite(costs.CanopyTotal), "")
	add("Access Doors", AccessDoorTotal(costs.AccessDoors), "")
	add("Ventilation", finite(costs.VentilationPrice)+finite(costs.FanPartsPrice), "")
	add("Air Systems", finite(costs.AirPrice)+finite(costs.AirInExTotal), "")

	if len(costs.Schematic.Breakdown) > 0 {
		names := make([]string, 0, len(costs.Schematic.Breakdown))
		for name := range costs.Schematic.Breakdown {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			add(name, costs.Schematic.Breakdown[name], "Schematic")
		}
	} else {
		add("Schematic", finite(costs.Schematic.Overall), "")
	}

	add("Grease", finite(costs.GreaseTotal), "")
	add("Specialist Equipment", SpecialistTotal(costs.SpecialistEntries), "")
	add("Parking", finite(costs.ParkingCost), "")

	if costs.PostServiceReport == "Yes" && costs.PostServiceReportPrice > 0 {
		add("Post-Service Report", costs.PostServiceReportPrice, "")
	}

	modifier := finite(modifierPercent)
	factor := 1 + modifier/100

	totals := QuoteTotals{ModifierPercent: modifier}
	for _, c := range categories {
		totals.Subtotal += c.amount
		totals.Lines = append(totals.Lines, CostLine{
			Category: c.name,
			Amount:   c.amount * factor,
			Details:  c.details,
		})
	}
	// Single pass over the pre-modifier sum, not a re-sum of modified
	// lines.
	totals.GrandTotal = totals.Subtotal * factor

	return totals
}

func dimOr1(v float64) float64 {
	if finite(v) <= 0 {
		return 1
	}
	return v
}

func numberOr1(v float64) float64 {
	if finite(v) <= 0 {
		return 1
	}
	return v
}
