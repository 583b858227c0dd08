package services

// SchematicBreakdown prices the placed schematic items against the
// catalogue and buckets the result by catalogue category. Aggregate
// entries and connector pairs are merged first so each displayed unit
// is priced once. Callers should exclude items priced elsewhere (access
// door and flexi duct selections) before calling.
func SchematicBreakdown(items []SchematicItem, catalogue []PriceTableItem) SchematicTotal {
	merged := MergeAggregateItems(items)

	breakdown := map[string]float64{}
	var overall float64

	for _, m := range merged {
		row, ok := findCatalogueItem(catalogue, m.OriginalID)
		if !ok {
			continue
		}
		// A placed item can demand dimensioned pricing even when its
		// catalogue row does not.
		row.RequiresDimensions = row.RequiresDimensions || m.RequiresDimensions

		dims := DimensionSet{Length: m.Length, Width: m.Width, Height: m.Height}
		var price float64
		if NeedsVentilationPricing(row) {
			price = VentilationPrice(row, dims)
		} else {
			price = PriceForItem(row, dims)
		}
		price *= float64(m.Count)

		category := row.Category
		if category == "" {
			category = m.Category
		}
		if category == "" {
			category = "Schematic"
		}
		breakdown[category] += price
		overall += price
	}

	if len(breakdown) == 0 {
		breakdown = nil
	}
	return SchematicTotal{Overall: overall, Breakdown: breakdown}
}

func findCatalogueItem(catalogue []PriceTableItem, id string) (PriceTableItem, bool) {
	for _, row := range catalogue {
		if row.ID != "" && row.ID == id {
			return row, true
		}
	}
	return PriceTableItem{}, false
}
