package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleAccessDoorSave attaches an access door product to a placed
// schematic item, replacing any previous selection for that item. The
// schematic breakdown excludes door-selected items so the door price is
// the only charge.
func HandleAccessDoorSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		survey, err := app.FindRecordById("surveys", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Survey not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		itemID := strings.TrimSpace(e.Request.FormValue("schematic_item"))
		name := strings.TrimSpace(e.Request.FormValue("name"))
		if itemID == "" || name == "" {
			return ErrorToast(e, http.StatusBadRequest, "A schematic item and door are required")
		}
		if _, err := app.FindRecordById("schematic_items", itemID); err != nil {
			return ErrorToast(e, http.StatusNotFound, "Schematic item not found")
		}

		// One selection per item.
		previous, _ := app.FindRecordsByFilter(
			"access_door_selections",
			"schematic_item = {:itemId}",
			"", 0, 0,
			map[string]any{"itemId": itemID},
		)
		for _, p := range previous {
			if err := app.Delete(p); err != nil {
				log.Printf("selections: could not replace door selection %s: %v", p.Id, err)
			}
		}

		col, err := app.FindCollectionByNameOrId("access_door_selections")
		if err != nil {
			log.Printf("selections: access_door_selections collection not found: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		record := core.NewRecord(col)
		record.Set("survey", survey.Id)
		record.Set("schematic_item", itemID)
		record.Set("product_id", strings.TrimSpace(e.Request.FormValue("product_id")))
		record.Set("name", name)
		record.Set("door_type", strings.TrimSpace(e.Request.FormValue("door_type")))
		record.Set("dimensions", strings.TrimSpace(e.Request.FormValue("dimensions")))
		record.Set("price", formFloat(e.Request.FormValue("price")))

		if err := app.Save(record); err != nil {
			log.Printf("selections: could not save door selection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Access door selected")
		FireEvent(e, "totals-changed")
		return e.String(http.StatusOK, "")
	}
}

func HandleAccessDoorDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return deleteChildRecord(app, "access_door_selections", "Access door removed")
}

// HandleFlexiDuctSave replaces the list of ventilation products attached
// to a duct schematic item. The entries arrive as a JSON array.
func HandleFlexiDuctSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		survey, err := app.FindRecordById("surveys", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Survey not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		itemID := strings.TrimSpace(e.Request.FormValue("schematic_item"))
		if itemID == "" {
			return ErrorToast(e, http.StatusBadRequest, "A schematic item is required")
		}
		if _, err := app.FindRecordById("schematic_items", itemID); err != nil {
			return ErrorToast(e, http.StatusNotFound, "Schematic item not found")
		}

		var entries []map[string]any
		if raw := e.Request.FormValue("entries"); raw != "" {
			if err := json.Unmarshal([]byte(raw), &entries); err != nil {
				return ErrorToast(e, http.StatusBadRequest, "Entries must be a JSON list")
			}
		}

		previous, _ := app.FindRecordsByFilter(
			"flexi_duct_selections",
			"schematic_item = {:itemId}",
			"", 0, 0,
			map[string]any{"itemId": itemID},
		)
		for _, p := range previous {
			if err := app.Delete(p); err != nil {
				log.Printf("selections: could not replace flexi duct selection %s: %v", p.Id, err)
			}
		}

		// An empty entries list just clears the selection.
		if len(entries) == 0 {
			SetToast(e, "success", "Flexi duct selection cleared")
			FireEvent(e, "totals-changed")
			return e.String(http.StatusOK, "")
		}

		col, err := app.FindCollectionByNameOrId("flexi_duct_selections")
		if err != nil {
			log.Printf("selections: flexi_duct_selections collection not found: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		record := core.NewRecord(col)
		record.Set("survey", survey.Id)
		record.Set("schematic_item", itemID)
		record.Set("entries", entries)

		if err := app.Save(record); err != nil {
			log.Printf("selections: could not save flexi duct selection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Flexi duct products saved")
		FireEvent(e, "totals-changed")
		return e.String(http.StatusOK, "")
	}
}

func HandleFlexiDuctDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return deleteChildRecord(app, "flexi_duct_selections", "Flexi duct selection removed")
}
