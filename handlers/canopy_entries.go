package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleCanopyEntryCreate adds a canopy/filter entry. The canopy half
// bills per effective cubic unit and the filter half per filter count;
// both lookups go against the Canopy and Filters catalogue groups.
func HandleCanopyEntryCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		survey, err := app.FindRecordById("surveys", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Survey not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		canopyItem := strings.TrimSpace(e.Request.FormValue("canopy_item"))
		if canopyItem == "" {
			return ErrorToast(e, http.StatusBadRequest, "Canopy item is required")
		}

		col, err := app.FindCollectionByNameOrId("canopy_entries")
		if err != nil {
			log.Printf("canopy_entries: collection not found: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		record := core.NewRecord(col)
		record.Set("survey", survey.Id)
		record.Set("canopy_item", canopyItem)
		record.Set("canopy_grade", strings.TrimSpace(e.Request.FormValue("canopy_grade")))
		record.Set("length", formFloat(e.Request.FormValue("length")))
		record.Set("width", formFloat(e.Request.FormValue("width")))
		record.Set("height", formFloat(e.Request.FormValue("height")))
		record.Set("filter_item", strings.TrimSpace(e.Request.FormValue("filter_item")))
		record.Set("filter_grade", strings.TrimSpace(e.Request.FormValue("filter_grade")))
		record.Set("filter_number", formFloat(e.Request.FormValue("filter_number")))

		if err := app.Save(record); err != nil {
			log.Printf("canopy_entries: could not save entry: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Canopy entry added")
		FireEvent(e, "totals-changed")
		return e.String(http.StatusOK, "")
	}
}

func HandleCanopyEntryDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return deleteChildRecord(app, "canopy_entries", "Canopy entry removed")
}
