package services

import (
	"math"
	"testing"
)

func airItem() PriceTableItem {
	return PriceTableItem{
		Category: "Ventilation",
		Item:     "Air Intake Duct",
		Prices:   PriceList{{Grade: "A", Price: 10}, {Grade: "B", Price: 7}},
	}
}

func greaseItem() PriceTableItem {
	return PriceTableItem{
		Category: "Grease Extract",
		Item:     "Grease Extract Duct",
		Prices:   PriceList{{Grade: "A", Price: 12}, {Grade: "B", Price: 9}, {Grade: "C", Price: 6}},
	}
}

func TestVentilationPrice_AirBands(t *testing.T) {
	item := airItem()

	tests := []struct {
		name   string
		length float64
		expect float64
	}{
		{"zero length", 0, 0},
		{"negative length", -3, 0},
		{"within first band", 3, 30},
		{"exactly at breakpoint", 4, 40},
		{"one past breakpoint", 5, 4*10 + 1*7},
		{"deep into second band", 30, 4*10 + 26*7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VentilationPrice(item, DimensionSet{Length: tt.length})
			if got != tt.expect {
				t.Errorf("VentilationPrice(length=%v) = %v, want %v", tt.length, got, tt.expect)
			}
		})
	}
}

func TestVentilationPrice_GreaseBands(t *testing.T) {
	item := greaseItem()

	tests := []struct {
		name   string
		length float64
		expect float64
	}{
		{"within first band", 2, 24},
		{"exactly at first breakpoint", 4, 48},
		{"middle band", 10, 4*12 + 6*9},
		{"exactly at second breakpoint", 20, 4*12 + 16*9},
		{"one past second breakpoint", 21, 4*12 + 16*9 + 1*6},
		{"deep into third band", 50, 4*12 + 16*9 + 30*6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VentilationPrice(item, DimensionSet{Length: tt.length})
			if got != tt.expect {
				t.Errorf("VentilationPrice(length=%v) = %v, want %v", tt.length, got, tt.expect)
			}
		})
	}
}

// Runs shorter than one unit bill as a full unit, for both duct
// classifications.
func TestVentilationPrice_SubUnitFloor(t *testing.T) {
	for _, item := range []PriceTableItem{airItem(), greaseItem()} {
		short := VentilationPrice(item, DimensionSet{Length: 0.5})
		unit := VentilationPrice(item, DimensionSet{Length: 1})
		if short != unit {
			t.Errorf("%s: price at 0.5 = %v, at 1 = %v, want equal", item.Item, short, unit)
		}
	}
}

func TestVentilationPrice_MissingGrades(t *testing.T) {
	item := PriceTableItem{Category: "Grease Extract Duct", Item: "Unpriced"}
	if got := VentilationPrice(item, DimensionSet{Length: 25}); got != 0 {
		t.Errorf("missing grade prices should contribute 0, got %v", got)
	}

	// Only grade A priced: bands past 4 add nothing.
	item.Prices = PriceList{{Grade: "A", Price: 10}}
	if got := VentilationPrice(item, DimensionSet{Length: 25}); got != 40 {
		t.Errorf("expected 40 with only grade A priced, got %v", got)
	}
}

func TestVentilationPrice_NaNLength(t *testing.T) {
	if got := VentilationPrice(airItem(), DimensionSet{Length: math.NaN()}); got != 0 {
		t.Errorf("NaN length should price 0, got %v", got)
	}
}

func TestIsGreaseExtract(t *testing.T) {
	tests := []struct {
		name   string
		item   PriceTableItem
		expect bool
	}{
		{"category match", PriceTableItem{Category: "Grease Extract"}, true},
		{"subcategory match", PriceTableItem{Subcategory: "grease ducting"}, true},
		{"item name match", PriceTableItem{Item: "GREASE filter housing"}, true},
		{"no match", PriceTableItem{Category: "Ventilation", Item: "Air Intake"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsGreaseExtract(tt.item); got != tt.expect {
				t.Errorf("IsGreaseExtract() = %v, want %v", got, tt.expect)
			}
		})
	}
}

func TestNeedsVentilationPricing(t *testing.T) {
	tests := []struct {
		name   string
		item   PriceTableItem
		expect bool
	}{
		{"ventilation keyword", PriceTableItem{Category: "Ventilation"}, true},
		{"air intake keyword", PriceTableItem{Item: "Air Intake Terminal"}, true},
		{"extract keyword", PriceTableItem{Subcategory: "Extract Systems"}, true},
		{"duct keyword", PriceTableItem{Item: "Rigid Duct 300mm"}, true},
		{"flexi keyword", PriceTableItem{Item: "Flexi Hose"}, true},
		{"requires dimensions flag", PriceTableItem{Category: "Bespoke", RequiresDimensions: true}, true},
		{"plain equipment", PriceTableItem{Category: "Equipment", Item: "Fryer"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NeedsVentilationPricing(tt.item); got != tt.expect {
				t.Errorf("NeedsVentilationPricing() = %v, want %v", got, tt.expect)
			}
		})
	}
}
