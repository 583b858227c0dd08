package services

import "strings"

// DimensionSet carries the measurements entered against an item, in
// metres. Zero means the surveyor left the field empty.
type DimensionSet struct {
	Length float64
	Width  float64
	Height float64
}

// PriceForItem resolves the price of a catalogue item against the
// entered dimensions. Resolution order, first match wins:
//
//  1. an explicit per-item price override
//  2. a custom-data field named "price"
//  3. the grade price table, dispatched through the item's calculation
//     type when it has one, otherwise the default/first listed price
//
// Items with none of the above price at 0.
func PriceForItem(item PriceTableItem, dims DimensionSet) float64 {
	if item.Price != nil {
		return finite(*item.Price)
	}
	if p, ok := customPrice(item.CustomData); ok {
		return p
	}
	if len(item.Prices) > 0 {
		base := item.Prices.Default()
		if strings.TrimSpace(item.CalculationType) != "" {
			return calculateByType(item.CalculationType, base, dims)
		}
		return base
	}
	return 0
}

// calculateByType applies the formula family for a calculation type.
// When the required dimensions are missing the formula degrades to the
// flat base price rather than pricing at zero, so an item stays billable
// while the surveyor is mid-entry.
func calculateByType(calcType string, base float64, d DimensionSet) float64 {
	switch strings.ToLower(strings.TrimSpace(calcType)) {
	case "area":
		if d.Length > 0 && d.Width > 0 {
			return d.Length * d.Width * base
		}
	case "volume":
		if d.Length > 0 && d.Width > 0 && d.Height > 0 {
			return d.Length * d.Width * d.Height * base
		}
	case "linear":
		if d.Length > 0 {
			return d.Length * base
		}
	}
	// "fixed" and unrecognized types price flat.
	return base
}

// customPrice scans custom-data fields for one named "price"
// (case-insensitive) with a defined value.
func customPrice(fields []CustomField) (float64, bool) {
	for _, f := range fields {
		if strings.EqualFold(strings.TrimSpace(f.FieldName), "price") && f.Value != nil {
			return toNumber(f.Value), true
		}
	}
	return 0, false
}

// CanopyRowPrice prices the canopy half of a canopy/filter entry:
// unit price times effective length, width and height. Each dimension
// counts as at least 1; empty fields default to a full unit and
// sub-unit measurements are billed as a full unit (business rule).
func CanopyRowPrice(unitPrice float64, dims DimensionSet) float64 {
	return unitPrice * canopyDim(dims.Length) * canopyDim(dims.Width) * canopyDim(dims.Height)
}

// FilterRowPrice prices the filter half of a canopy/filter entry:
// unit price times quantity, with an empty quantity counting as 1.
func FilterRowPrice(unitPrice, quantity float64) float64 {
	if quantity <= 0 {
		quantity = 1
	}
	return unitPrice * quantity
}

func canopyDim(v float64) float64 {
	if finite(v) < 1 {
		return 1
	}
	return v
}
