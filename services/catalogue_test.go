package services

import "testing"

func testCatalogue() []PriceTableItem {
	return []PriceTableItem{
		{
			Category: "Structure",
			Item:     "Standard",
			Prices:   PriceList{{Grade: "A", Price: 15}, {Grade: "B", Price: 10}, {Grade: "C", Price: 8}},
		},
		{
			Category:    "Equipment",
			Subcategory: "Cooking",
			Item:        "Six Burner Range",
			Prices:      PriceList{{Grade: "B", Price: 45}},
		},
		{
			Category: "Canopy",
			Item:     "Wall Canopy",
			Prices:   PriceList{{Grade: "A", Price: 50}, {Grade: "B", Price: 40}},
		},
	}
}

func TestLookupUnitPrice(t *testing.T) {
	catalogue := testCatalogue()

	tests := []struct {
		name   string
		group  string
		item   string
		grade  string
		expect float64
	}{
		{"category match", "Structure", "Standard", "B", 10},
		{"subcategory match", "Cooking", "Six Burner Range", "B", 45},
		{"case insensitive group", "structure", "Standard", "A", 15},
		{"case insensitive item", "Structure", "standard", "C", 8},
		{"whitespace trimmed", "  Structure ", " Standard  ", "B", 10},
		{"unknown item", "Structure", "Deluxe", "B", 0},
		{"unknown group", "Plumbing", "Standard", "B", 0},
		{"missing grade", "Structure", "Standard", "Z", 0},
		{"empty grade", "Structure", "Standard", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LookupUnitPrice(catalogue, tt.group, tt.item, tt.grade)
			if got != tt.expect {
				t.Errorf("LookupUnitPrice(%q, %q, %q) = %v, want %v",
					tt.group, tt.item, tt.grade, got, tt.expect)
			}
		})
	}
}

func TestLookupUnitPrice_EmptyCatalogue(t *testing.T) {
	if got := LookupUnitPrice(nil, "Structure", "Standard", "B"); got != 0 {
		t.Errorf("expected 0 for nil catalogue, got %v", got)
	}
}

func TestPriceListGet(t *testing.T) {
	pl := PriceList{{Grade: "A", Price: 5}, {Grade: "B", Price: 3}}

	if p, ok := pl.Get(" b "); !ok || p != 3 {
		t.Errorf("Get(\" b \") = %v, %v, want 3, true", p, ok)
	}
	if _, ok := pl.Get("C"); ok {
		t.Error("expected Get(\"C\") to miss")
	}
}

func TestPriceListDefault(t *testing.T) {
	tests := []struct {
		name   string
		prices PriceList
		expect float64
	}{
		{"default grade present", PriceList{{Grade: "A", Price: 5}, {Grade: "default", Price: 7}}, 7},
		{"first price fallback", PriceList{{Grade: "C", Price: 9}, {Grade: "A", Price: 5}}, 9},
		{"empty list", PriceList{}, 0},
		{"nil list", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.prices.Default(); got != tt.expect {
				t.Errorf("Default() = %v, want %v", got, tt.expect)
			}
		})
	}
}

func TestDefaultGrade(t *testing.T) {
	tests := []struct {
		name   string
		prices PriceList
		expect string
	}{
		{"prefers B", PriceList{{Grade: "A"}, {Grade: "B"}, {Grade: "C"}}, "B"},
		{"first sorted without B", PriceList{{Grade: "D"}, {Grade: "C"}}, "C"},
		{"single grade", PriceList{{Grade: "A"}}, "A"},
		{"empty", PriceList{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DefaultGrade(tt.prices); got != tt.expect {
				t.Errorf("DefaultGrade() = %q, want %q", got, tt.expect)
			}
		})
	}
}

func TestCycleGrade(t *testing.T) {
	abc := PriceList{{Grade: "A"}, {Grade: "B"}, {Grade: "C"}}

	tests := []struct {
		name    string
		prices  PriceList
		current string
		expect  string
	}{
		{"advances", abc, "A", "B"},
		{"wraps from last", abc, "C", "A"},
		{"unknown restarts at B", abc, "X", "B"},
		{"unknown without B restarts at first", PriceList{{Grade: "C"}, {Grade: "D"}}, "X", "C"},
		{"empty current restarts at B", abc, "", "B"},
		{"unsorted input cycles sorted", PriceList{{Grade: "C"}, {Grade: "A"}, {Grade: "B"}}, "B", "C"},
		{"empty list", PriceList{}, "A", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CycleGrade(tt.prices, tt.current); got != tt.expect {
				t.Errorf("CycleGrade(%q) = %q, want %q", tt.current, got, tt.expect)
			}
		})
	}
}
