package collections_test

import (
	"testing"

	"kitchensurvey/collections"
	"kitchensurvey/testhelpers"
)

func TestMigrateStructureTotalFlags(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	legacy := testhelpers.CreateTestSurvey(t, app, "Legacy Site")
	legacy.Set("structure_total", 420.0)
	if err := app.Save(legacy); err != nil {
		t.Fatalf("save legacy survey: %v", err)
	}

	zero := testhelpers.CreateTestSurvey(t, app, "Zero Site")

	flagged := testhelpers.CreateTestSurvey(t, app, "Flagged Site")
	flagged.Set("structure_total", 100.0)
	flagged.Set("structure_total_set", true)
	if err := app.Save(flagged); err != nil {
		t.Fatalf("save flagged survey: %v", err)
	}

	if err := collections.MigrateStructureTotalFlags(app); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	got, _ := app.FindRecordById("surveys", legacy.Id)
	if !got.GetBool("structure_total_set") {
		t.Error("legacy survey with non-zero total was not flagged")
	}

	got, _ = app.FindRecordById("surveys", zero.Id)
	if got.GetBool("structure_total_set") {
		t.Error("survey with zero total must stay unset")
	}

	// Second run has nothing to do and must not error.
	if err := collections.MigrateStructureTotalFlags(app); err != nil {
		t.Fatalf("repeat migrate: %v", err)
	}
}
