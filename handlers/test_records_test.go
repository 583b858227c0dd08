package handlers

import (
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// testRecord saves a record with the given fields directly, bypassing
// the handlers, for tests that only exercise reads and deletes.
func testRecord(t *testing.T, app *pocketbase.PocketBase, col *core.Collection, fields map[string]any) *core.Record {
	t.Helper()
	record := core.NewRecord(col)
	for name, value := range fields {
		record.Set(name, value)
	}
	if err := app.Save(record); err != nil {
		t.Fatalf("could not save %s record: %v", col.Name, err)
	}
	return record
}
