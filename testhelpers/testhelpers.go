// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"kitchensurvey/collections"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestSurvey creates a survey record with the given site name and returns it.
func CreateTestSurvey(t *testing.T, app *pocketbase.PocketBase, siteName string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("surveys")
	if err != nil {
		t.Fatalf("failed to find surveys collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("site_name", siteName)
	record.Set("status", "draft")
	record.Set("post_service_report", "No")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test survey: %v", err)
	}

	return record
}

// CreateTestPriceItem creates a price table record and returns it. The
// prices argument maps grade labels to unit prices in catalogue order.
func CreateTestPriceItem(t *testing.T, app *pocketbase.PocketBase, category, item string, prices []map[string]any) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("price_table_items")
	if err != nil {
		t.Fatalf("failed to find price_table_items collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("category", category)
	record.Set("item", item)
	record.Set("prices", prices)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test price item: %v", err)
	}

	return record
}

// CreateTestStructureEntry creates a structure entry linked to a survey.
func CreateTestStructureEntry(t *testing.T, app *pocketbase.PocketBase, surveyID string, rows []map[string]any, length, width, height float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("structure_entries")
	if err != nil {
		t.Fatalf("failed to find structure_entries collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("survey", surveyID)
	record.Set("rows", rows)
	record.Set("length", length)
	record.Set("width", width)
	record.Set("height", height)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test structure entry: %v", err)
	}

	return record
}

// CreateTestSchematicItem creates a placed schematic item at a grid cell.
func CreateTestSchematicItem(t *testing.T, app *pocketbase.PocketBase, surveyID, name string, cellX, cellY int) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("schematic_items")
	if err != nil {
		t.Fatalf("failed to find schematic_items collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("survey", surveyID)
	record.Set("name", name)
	record.Set("cell_x", cellX)
	record.Set("cell_y", cellY)
	record.Set("item_type", "piece")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test schematic item: %v", err)
	}

	return record
}

// CreateTestCanopyEntry creates a canopy/filter entry linked to a survey.
func CreateTestCanopyEntry(t *testing.T, app *pocketbase.PocketBase, surveyID string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("canopy_entries")
	if err != nil {
		t.Fatalf("failed to find canopy_entries collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("survey", surveyID)
	record.Set("canopy_item", "Standard Canopy")
	record.Set("canopy_grade", "B")
	record.Set("length", 2)
	record.Set("width", 1)
	record.Set("height", 1)
	record.Set("filter_item", "Baffle Filter")
	record.Set("filter_grade", "B")
	record.Set("filter_number", 3)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test canopy entry: %v", err)
	}

	return record
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected HTML to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

// AssertHXRedirect checks that the response has an HX-Redirect header with the expected URL.
func AssertHXRedirect(t *testing.T, headerVal, expectedURL string) {
	t.Helper()

	if headerVal != expectedURL {
		t.Errorf("expected HX-Redirect %q, got %q", expectedURL, headerVal)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
