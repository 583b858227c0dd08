package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Setup programmatically creates/ensures all survey collections exist.
func Setup(app *pocketbase.PocketBase) {
	surveys := ensureCollection(app, "surveys", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "site_name", Required: true})
		c.Fields.Add(&core.TextField{Name: "reference_number", Required: false})
		c.Fields.Add(&core.TextField{Name: "client_name", Required: false})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Required:  false,
			Values:    []string{"draft", "surveyed", "quoted", "archived"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.NumberField{Name: "parking_cost", Required: false})
		c.Fields.Add(&core.SelectField{
			Name:      "post_service_report",
			Required:  false,
			Values:    []string{"Yes", "No"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.NumberField{Name: "post_service_report_price", Required: false})
		c.Fields.Add(&core.NumberField{Name: "modifier_percent", Required: false})
		c.Fields.Add(&core.NumberField{Name: "air_price", Required: false})
		c.Fields.Add(&core.NumberField{Name: "fan_parts_price", Required: false})
		c.Fields.Add(&core.NumberField{Name: "air_in_ex_total", Required: false})
		c.Fields.Add(&core.NumberField{Name: "grease_total", Required: false})
		c.Fields.Add(&core.NumberField{Name: "structure_total", Required: false})
		c.Fields.Add(&core.BoolField{Name: "structure_total_set", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "price_table_items", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "category", Required: true})
		c.Fields.Add(&core.TextField{Name: "subcategory", Required: false})
		c.Fields.Add(&core.TextField{Name: "item", Required: true})
		c.Fields.Add(&core.JSONField{Name: "prices", Required: false})
		c.Fields.Add(&core.SelectField{
			Name:      "calculation_type",
			Required:  false,
			Values:    []string{"area", "volume", "linear", "fixed"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.BoolField{Name: "requires_dimensions", Required: false})
	})

	ensureCollection(app, "structure_entries", func(c *core.Collection) {
		c.Fields.Add(surveyRelation(surveys))
		c.Fields.Add(&core.JSONField{Name: "rows", Required: false})
		c.Fields.Add(&core.NumberField{Name: "length", Required: false})
		c.Fields.Add(&core.NumberField{Name: "width", Required: false})
		c.Fields.Add(&core.NumberField{Name: "height", Required: false})
	})

	ensureCollection(app, "equipment_entries", func(c *core.Collection) {
		c.Fields.Add(surveyRelation(surveys))
		c.Fields.Add(&core.TextField{Name: "subcategory", Required: false})
		c.Fields.Add(&core.TextField{Name: "item", Required: true})
		c.Fields.Add(&core.TextField{Name: "grade", Required: false})
		c.Fields.Add(&core.NumberField{Name: "quantity", Required: false})
	})

	ensureCollection(app, "canopy_entries", func(c *core.Collection) {
		c.Fields.Add(surveyRelation(surveys))
		c.Fields.Add(&core.TextField{Name: "canopy_item", Required: false})
		c.Fields.Add(&core.TextField{Name: "canopy_grade", Required: false})
		c.Fields.Add(&core.NumberField{Name: "length", Required: false})
		c.Fields.Add(&core.NumberField{Name: "width", Required: false})
		c.Fields.Add(&core.NumberField{Name: "height", Required: false})
		c.Fields.Add(&core.TextField{Name: "filter_item", Required: false})
		c.Fields.Add(&core.TextField{Name: "filter_grade", Required: false})
		c.Fields.Add(&core.NumberField{Name: "filter_number", Required: false})
	})

	schematicItems := ensureCollection(app, "schematic_items", func(c *core.Collection) {
		c.Fields.Add(surveyRelation(surveys))
		c.Fields.Add(&core.NumberField{Name: "cell_x", Required: false})
		c.Fields.Add(&core.NumberField{Name: "cell_y", Required: false})
		c.Fields.Add(&core.TextField{Name: "category", Required: false})
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "original_id", Required: false})
		c.Fields.Add(&core.BoolField{Name: "requires_dimensions", Required: false})
		c.Fields.Add(&core.BoolField{Name: "aggregate_entry", Required: false})
		c.Fields.Add(&core.NumberField{Name: "length", Required: false})
		c.Fields.Add(&core.NumberField{Name: "width", Required: false})
		c.Fields.Add(&core.NumberField{Name: "height", Required: false})
		c.Fields.Add(&core.SelectField{
			Name:      "item_type",
			Required:  false,
			Values:    []string{"piece", "connectors", "panel"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.TextField{Name: "pair_id", Required: false})
	})

	ensureCollection(app, "special_items", func(c *core.Collection) {
		c.Fields.Add(surveyRelation(surveys))
		c.Fields.Add(&core.SelectField{
			Name:      "kind",
			Required:  true,
			Values:    []string{"label", "measurement"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.NumberField{Name: "cell_x", Required: false})
		c.Fields.Add(&core.NumberField{Name: "cell_y", Required: false})
		c.Fields.Add(&core.NumberField{Name: "end_x", Required: false})
		c.Fields.Add(&core.NumberField{Name: "end_y", Required: false})
		c.Fields.Add(&core.NumberField{Name: "value", Required: false})
		c.Fields.Add(&core.NumberField{Name: "rotation", Required: false})
		c.Fields.Add(&core.TextField{Name: "text", Required: false})
	})

	ensureCollection(app, "access_door_selections", func(c *core.Collection) {
		c.Fields.Add(surveyRelation(surveys))
		c.Fields.Add(&core.RelationField{
			Name:          "schematic_item",
			Required:      true,
			CollectionId:  schematicItems.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.TextField{Name: "product_id", Required: false})
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "door_type", Required: false})
		c.Fields.Add(&core.TextField{Name: "dimensions", Required: false})
		c.Fields.Add(&core.NumberField{Name: "price", Required: false})
	})

	ensureCollection(app, "flexi_duct_selections", func(c *core.Collection) {
		c.Fields.Add(surveyRelation(surveys))
		c.Fields.Add(&core.RelationField{
			Name:          "schematic_item",
			Required:      true,
			CollectionId:  schematicItems.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.JSONField{Name: "entries", Required: false})
	})

	ensureCollection(app, "specialist_entries", func(c *core.Collection) {
		c.Fields.Add(surveyRelation(surveys))
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "category", Required: false})
		c.Fields.Add(&core.NumberField{Name: "number", Required: false})
		c.Fields.Add(&core.NumberField{Name: "price", Required: false})
		c.Fields.Add(&core.JSONField{Name: "custom_data", Required: false})
	})

	ensureCollection(app, "quotes", func(c *core.Collection) {
		c.Fields.Add(surveyRelation(surveys))
		c.Fields.Add(&core.TextField{Name: "quote_number", Required: true})
		c.Fields.Add(&core.NumberField{Name: "grand_total", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
	})
}

// surveyRelation builds the standard cascade-deleting link back to the
// owning survey.
func surveyRelation(surveys *core.Collection) *core.RelationField {
	return &core.RelationField{
		Name:          "survey",
		Required:      true,
		CollectionId:  surveys.Id,
		CascadeDelete: true,
		MaxSelect:     1,
	}
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("Collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}
