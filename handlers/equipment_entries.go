package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleEquipmentEntryCreate adds a surveyed appliance line to a survey.
func HandleEquipmentEntryCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		survey, err := app.FindRecordById("surveys", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Survey not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		item := strings.TrimSpace(e.Request.FormValue("item"))
		if item == "" {
			return ErrorToast(e, http.StatusBadRequest, "Item is required")
		}

		col, err := app.FindCollectionByNameOrId("equipment_entries")
		if err != nil {
			log.Printf("equipment_entries: collection not found: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		record := core.NewRecord(col)
		record.Set("survey", survey.Id)
		record.Set("subcategory", strings.TrimSpace(e.Request.FormValue("subcategory")))
		record.Set("item", item)
		record.Set("grade", strings.TrimSpace(e.Request.FormValue("grade")))
		record.Set("quantity", formFloat(e.Request.FormValue("quantity")))

		if err := app.Save(record); err != nil {
			log.Printf("equipment_entries: could not save entry: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Equipment entry added")
		FireEvent(e, "totals-changed")
		return e.String(http.StatusOK, "")
	}
}

func HandleEquipmentEntryDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return deleteChildRecord(app, "equipment_entries", "Equipment entry removed")
}
