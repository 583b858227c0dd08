package collections_test

import (
	"testing"

	"kitchensurvey/collections"
	"kitchensurvey/testhelpers"
)

func TestSetupCreatesCollections(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	names := []string{
		"surveys",
		"price_table_items",
		"structure_entries",
		"equipment_entries",
		"canopy_entries",
		"schematic_items",
		"special_items",
		"access_door_selections",
		"flexi_duct_selections",
		"specialist_entries",
		"quotes",
	}
	for _, name := range names {
		if _, err := app.FindCollectionByNameOrId(name); err != nil {
			t.Errorf("collection %q was not created: %v", name, err)
		}
	}
}

func TestSetupIsIdempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	survey := testhelpers.CreateTestSurvey(t, app, "Riverside Hotel")

	// Running setup again must keep existing collections and data.
	collections.Setup(app)

	found, err := app.FindRecordById("surveys", survey.Id)
	if err != nil {
		t.Fatalf("survey lost after repeated setup: %v", err)
	}
	if found.GetString("site_name") != "Riverside Hotel" {
		t.Errorf("site_name = %q", found.GetString("site_name"))
	}
}

func TestCascadeDeleteSurveyChildren(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	survey := testhelpers.CreateTestSurvey(t, app, "Cascade Site")
	item := testhelpers.CreateTestSchematicItem(t, app, survey.Id, "Fan Unit", 3, 3)

	if err := app.Delete(survey); err != nil {
		t.Fatalf("delete survey: %v", err)
	}

	if _, err := app.FindRecordById("schematic_items", item.Id); err == nil {
		t.Error("schematic item survived its survey's deletion")
	}
}
