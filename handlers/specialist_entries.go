package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleSpecialistEntryCreate adds a specialist equipment line. The
// price can arrive directly or inside the custom_data JSON under a
// "Price" field; the aggregator checks both.
func HandleSpecialistEntryCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		survey, err := app.FindRecordById("surveys", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Survey not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		name := strings.TrimSpace(e.Request.FormValue("name"))
		if name == "" {
			return ErrorToast(e, http.StatusBadRequest, "Name is required")
		}

		var customData []map[string]any
		if raw := e.Request.FormValue("custom_data"); raw != "" {
			if err := json.Unmarshal([]byte(raw), &customData); err != nil {
				return ErrorToast(e, http.StatusBadRequest, "Custom data must be a JSON list")
			}
		}

		col, err := app.FindCollectionByNameOrId("specialist_entries")
		if err != nil {
			log.Printf("specialist_entries: collection not found: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		record := core.NewRecord(col)
		record.Set("survey", survey.Id)
		record.Set("name", name)
		record.Set("category", strings.TrimSpace(e.Request.FormValue("category")))
		record.Set("number", formFloat(e.Request.FormValue("number")))
		record.Set("price", formFloat(e.Request.FormValue("price")))
		record.Set("custom_data", customData)

		if err := app.Save(record); err != nil {
			log.Printf("specialist_entries: could not save entry: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Specialist entry added")
		FireEvent(e, "totals-changed")
		return e.String(http.StatusOK, "")
	}
}

func HandleSpecialistEntryDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return deleteChildRecord(app, "specialist_entries", "Specialist entry removed")
}
