// Package services provides the pricing, grouping and quote assembly
// logic for kitchen cleaning surveys.
package services

import (
	"sort"
	"strings"
)

// GradePrice is one grade column of a catalogue item's price table.
type GradePrice struct {
	Grade string  `json:"grade"`
	Price float64 `json:"price"`
}

// PriceList holds an item's grade prices in catalogue order, so "the
// first price" is well-defined even when no "default" grade exists.
type PriceList []GradePrice

// Get returns the price for a grade. Grade matching ignores case and
// surrounding whitespace.
func (pl PriceList) Get(grade string) (float64, bool) {
	g := normalizeKey(grade)
	for _, gp := range pl {
		if normalizeKey(gp.Grade) == g {
			return gp.Price, true
		}
	}
	return 0, false
}

// Default returns the price under the "default" grade if present,
// otherwise the first listed price, otherwise 0.
func (pl PriceList) Default() float64 {
	if p, ok := pl.Get("default"); ok {
		return p
	}
	if len(pl) > 0 {
		return pl[0].Price
	}
	return 0
}

// Grades returns the grade labels in lexicographically sorted order.
func (pl PriceList) Grades() []string {
	grades := make([]string, 0, len(pl))
	for _, gp := range pl {
		grades = append(grades, gp.Grade)
	}
	sort.Strings(grades)
	return grades
}

// CustomField is one name/value pair of free-form data attached to an
// item (specialist equipment carries its price this way).
type CustomField struct {
	FieldName string `json:"field_name"`
	Value     any    `json:"value"`
}

// PriceTableItem is one sellable catalogue entry. Category, Subcategory
// and Item are the lookup keys; Prices holds the per-grade unit prices.
type PriceTableItem struct {
	ID                 string      `json:"id"`
	Category           string      `json:"category"`
	Subcategory        string      `json:"subcategory"`
	Item               string      `json:"item"`
	Prices             PriceList   `json:"prices"`
	CalculationType    string      `json:"calculation_type"`
	Price              *float64    `json:"price,omitempty"`
	CustomData         []CustomField `json:"custom_data,omitempty"`
	RequiresDimensions bool        `json:"requires_dimensions"`
}

// LookupUnitPrice resolves a (group, item, grade) triple against the
// catalogue. group matches either the category or the subcategory
// column; all key comparisons ignore case and surrounding whitespace.
// A missing row, price list or grade resolves to 0, never an error.
func LookupUnitPrice(catalogue []PriceTableItem, group, item, grade string) float64 {
	g := normalizeKey(group)
	it := normalizeKey(item)
	for _, row := range catalogue {
		if normalizeKey(row.Item) != it {
			continue
		}
		if normalizeKey(row.Category) != g && normalizeKey(row.Subcategory) != g {
			continue
		}
		if p, ok := row.Prices.Get(grade); ok {
			return p
		}
		return 0
	}
	return 0
}

// DefaultGrade picks the grade to preselect before the user has chosen
// one: "B" when available, otherwise the lexicographically first grade,
// otherwise the empty string.
func DefaultGrade(prices PriceList) string {
	grades := prices.Grades()
	if len(grades) == 0 {
		return ""
	}
	for _, g := range grades {
		if g == "B" {
			return "B"
		}
	}
	return grades[0]
}

// CycleGrade advances to the next grade in sorted order, wrapping after
// the last. An unknown current grade restarts at "B" when available,
// otherwise at the first grade.
func CycleGrade(prices PriceList, current string) string {
	grades := prices.Grades()
	if len(grades) == 0 {
		return ""
	}
	for i, g := range grades {
		if g == current {
			return grades[(i+1)%len(grades)]
		}
	}
	for _, g := range grades {
		if g == "B" {
			return "B"
		}
	}
	return grades[0]
}

func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
