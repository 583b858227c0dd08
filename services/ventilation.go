package services

import "strings"

// Keyword lists the ducting classifiers match against. Kept as data so
// the sets can be audited and extended without touching the price math.
var (
	greaseKeywords = []string{"grease"}

	ventilationKeywords = []string{
		"ventilation",
		"air intake",
		"extract",
		"duct",
		"flexi",
	}
)

// IsGreaseExtract reports whether an item is priced as grease extract
// ducting: its category, subcategory or name contains "grease"
// (case-insensitive substring match).
func IsGreaseExtract(item PriceTableItem) bool {
	return matchesAnyKeyword(item, greaseKeywords)
}

// NeedsVentilationPricing reports whether an item routes through the
// length-banded ventilation pricing instead of the generic formulas.
func NeedsVentilationPricing(item PriceTableItem) bool {
	return item.RequiresDimensions || matchesAnyKeyword(item, ventilationKeywords)
}

func matchesAnyKeyword(item PriceTableItem, keywords []string) bool {
	for _, field := range [...]string{item.Category, item.Subcategory, item.Item} {
		f := strings.ToLower(field)
		for _, kw := range keywords {
			if strings.Contains(f, kw) {
				return true
			}
		}
	}
	return false
}

// VentilationPrice prices ducting by run length with banded per-metre
// rates. The first 4 units bill at grade A. Air intake/extract runs bill
// the remainder at grade B. Grease extract runs bill units 4–20 at grade
// B and anything beyond 20 at grade C.
//
// Runs shorter than one unit bill as a full unit (business rule); a zero
// or missing length prices at 0. Missing grade prices count as 0.
func VentilationPrice(item PriceTableItem, dims DimensionSet) float64 {
	length := ventLength(finite(dims.Length))
	if length <= 0 {
		return 0
	}

	priceA, _ := item.Prices.Get("A")
	priceB, _ := item.Prices.Get("B")

	if IsGreaseExtract(item) {
		priceC, _ := item.Prices.Get("C")
		switch {
		case length <= 4:
			return length * priceA
		case length <= 20:
			return 4*priceA + (length-4)*priceB
		default:
			return 4*priceA + 16*priceB + (length-20)*priceC
		}
	}

	if length <= 4 {
		return length * priceA
	}
	return 4*priceA + (length-4)*priceB
}

func ventLength(v float64) float64 {
	if v > 0 && v < 1 {
		return 1
	}
	return v
}
