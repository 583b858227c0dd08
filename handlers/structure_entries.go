package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleStructureEntryCreate adds a structure entry to a survey. The
// form carries parallel row_type / row_item / row_grade values, one per
// surface row, plus the shared dimensions.
func HandleStructureEntryCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		survey, err := app.FindRecordById("surveys", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Survey not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		types := e.Request.Form["row_type"]
		items := e.Request.Form["row_item"]
		grades := e.Request.Form["row_grade"]
		if len(types) == 0 || len(types) != len(items) || len(types) != len(grades) {
			return ErrorToast(e, http.StatusBadRequest, "Each surface row needs a type, item and grade")
		}

		rows := make([]map[string]any, 0, len(types))
		for i := range types {
			rows = append(rows, map[string]any{
				"type":  types[i],
				"item":  items[i],
				"grade": grades[i],
			})
		}

		col, err := app.FindCollectionByNameOrId("structure_entries")
		if err != nil {
			log.Printf("structure_entries: collection not found: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		record := core.NewRecord(col)
		record.Set("survey", survey.Id)
		record.Set("rows", rows)
		record.Set("length", formFloat(e.Request.FormValue("length")))
		record.Set("width", formFloat(e.Request.FormValue("width")))
		record.Set("height", formFloat(e.Request.FormValue("height")))

		if err := app.Save(record); err != nil {
			log.Printf("structure_entries: could not save entry: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Structure entry added")
		FireEvent(e, "totals-changed")
		return e.String(http.StatusOK, "")
	}
}

func HandleStructureEntryDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return deleteChildRecord(app, "structure_entries", "Structure entry removed")
}

// deleteChildRecord deletes one record of a survey child collection and
// fires a totals refresh. Shared by every per-entry delete endpoint.
func deleteChildRecord(app *pocketbase.PocketBase, collection, toast string) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, err := app.FindRecordById(collection, e.Request.PathValue("entryId"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Entry not found")
		}

		if err := app.Delete(record); err != nil {
			log.Printf("%s: could not delete %s: %v", collection, record.Id, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", toast)
		FireEvent(e, "totals-changed")
		return e.String(http.StatusOK, "")
	}
}
