package collections

import (
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// ── Definition structs ───────────────────────────────────────────────────

type gradePriceDef struct {
	grade string
	price float64
}

type priceItemDef struct {
	category           string
	subcategory        string
	item               string
	calculationType    string
	prices             []gradePriceDef
	requiresDimensions bool
}

// seedCatalogue is the demo price table loaded into a fresh database.
// Grade order matters: the first listed grade is the fallback when a
// requested grade is missing.
var seedCatalogue = []priceItemDef{
	// Structure surfaces, priced per square metre of the entry
	// dimensions.
	{category: "Ceiling", item: "Standard", prices: []gradePriceDef{{"A", 14}, {"B", 10}, {"C", 7}}},
	{category: "Ceiling", item: "Suspended Tile", prices: []gradePriceDef{{"A", 18}, {"B", 13}, {"C", 9}}},
	{category: "Wall", item: "Standard", prices: []gradePriceDef{{"A", 14}, {"B", 10}, {"C", 7}}},
	{category: "Wall", item: "Stainless Clad", prices: []gradePriceDef{{"A", 20}, {"B", 15}, {"C", 11}}},
	{category: "Floor", item: "Standard", prices: []gradePriceDef{{"A", 14}, {"B", 10}, {"C", 7}}},
	{category: "Floor", item: "Anti-Slip", prices: []gradePriceDef{{"A", 19}, {"B", 14}, {"C", 10}}},

	// Canopy and filters. Canopy bills per effective cubic unit, filters
	// per unit count.
	{category: "Canopy", item: "Standard Canopy", prices: []gradePriceDef{{"A", 28}, {"B", 22}, {"C", 17}}},
	{category: "Canopy", item: "Island Canopy", prices: []gradePriceDef{{"A", 34}, {"B", 27}, {"C", 21}}},
	{category: "Filters", item: "Baffle Filter", prices: []gradePriceDef{{"A", 9}, {"B", 7}, {"C", 5}}},
	{category: "Filters", item: "Mesh Filter", prices: []gradePriceDef{{"A", 7}, {"B", 5}, {"C", 4}}},

	// Kitchen equipment by subcategory.
	{category: "Equipment", subcategory: "Cooking", item: "Fryer", prices: []gradePriceDef{{"A", 32}, {"B", 25}, {"C", 19}}},
	{category: "Equipment", subcategory: "Cooking", item: "Six Burner Range", prices: []gradePriceDef{{"A", 40}, {"B", 31}, {"C", 24}}},
	{category: "Equipment", subcategory: "Cooking", item: "Salamander Grill", prices: []gradePriceDef{{"A", 24}, {"B", 18}, {"C", 14}}},
	{category: "Equipment", subcategory: "Refrigeration", item: "Upright Fridge", prices: []gradePriceDef{{"A", 22}, {"B", 17}, {"C", 13}}},

	// Ducting, priced by run length with banded grade rates.
	{
		category: "Ventilation Grease Extract", subcategory: "Ducting", item: "Grease Extract Duct",
		prices:             []gradePriceDef{{"A", 12}, {"B", 9}, {"C", 6}},
		requiresDimensions: true,
	},
	{
		category: "Ventilation Air", subcategory: "Ducting", item: "Air Intake Duct",
		prices:             []gradePriceDef{{"A", 10}, {"B", 7}},
		requiresDimensions: true,
	},
	{
		category: "Ventilation Air", subcategory: "Ducting", item: "Extract Duct",
		prices:             []gradePriceDef{{"A", 10}, {"B", 7}},
		requiresDimensions: true,
	},

	// Schematic piece items with flat default prices.
	{category: "Plant", item: "Fan Unit", calculationType: "fixed", prices: []gradePriceDef{{"default", 55}}},
	{category: "Plant", item: "Attenuator", calculationType: "fixed", prices: []gradePriceDef{{"default", 38}}},

	// Access doors and flexi ducts attachable to schematic items.
	{category: "Access Doors", item: "450x450 Hinged", prices: []gradePriceDef{{"default", 35}}},
	{category: "Access Doors", item: "600x600 Hinged", prices: []gradePriceDef{{"default", 55}}},
	{category: "Flexi Duct", item: "Flexi 200mm", prices: []gradePriceDef{{"default", 12}}},
	{category: "Flexi Duct", item: "Flexi 300mm", prices: []gradePriceDef{{"default", 18}}},
}

// Seed populates the price catalogue with demo data when the price
// table is empty. Existing data is never touched.
func Seed(app *pocketbase.PocketBase) {
	col, err := app.FindCollectionByNameOrId("price_table_items")
	if err != nil {
		log.Printf("seed: price_table_items collection not found: %v\n", err)
		return
	}

	existing, err := app.FindAllRecords("price_table_items")
	if err == nil && len(existing) > 0 {
		log.Printf("seed: price table already has %d item(s), skipping.\n", len(existing))
		return
	}

	created := 0
	for _, def := range seedCatalogue {
		prices := make([]map[string]any, 0, len(def.prices))
		for _, p := range def.prices {
			prices = append(prices, map[string]any{"grade": p.grade, "price": p.price})
		}

		rec := core.NewRecord(col)
		rec.Set("category", def.category)
		rec.Set("subcategory", def.subcategory)
		rec.Set("item", def.item)
		rec.Set("calculation_type", def.calculationType)
		rec.Set("prices", prices)
		rec.Set("requires_dimensions", def.requiresDimensions)

		if err := app.Save(rec); err != nil {
			log.Printf("seed: failed to create %s / %s: %v\n", def.category, def.item, err)
			continue
		}
		created++
	}

	log.Printf("seed: created %d price table item(s).\n", created)
}
