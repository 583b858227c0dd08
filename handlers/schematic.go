package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleSchematicPlace drops a catalogue item onto the schematic grid.
// Connector items are placed as a pair sharing a generated pair id; the
// second connector lands one cell to the right of the first.
func HandleSchematicPlace(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
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
			return ErrorToast(e, http.StatusBadRequest, "Item name is required")
		}
		itemType := e.Request.FormValue("item_type")
		switch itemType {
		case "piece", "connectors", "panel":
		default:
			itemType = "piece"
		}

		cellX := formInt(e.Request.FormValue("cell_x"))
		cellY := formInt(e.Request.FormValue("cell_y"))

		col, err := app.FindCollectionByNameOrId("schematic_items")
		if err != nil {
			log.Printf("schematic: collection not found: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		place := func(x, y int, pairID string) error {
			record := core.NewRecord(col)
			record.Set("survey", survey.Id)
			record.Set("name", name)
			record.Set("cell_x", x)
			record.Set("cell_y", y)
			record.Set("category", strings.TrimSpace(e.Request.FormValue("category")))
			record.Set("original_id", strings.TrimSpace(e.Request.FormValue("original_id")))
			record.Set("requires_dimensions", formCheckbox(e.Request.FormValue("requires_dimensions")))
			record.Set("aggregate_entry", formCheckbox(e.Request.FormValue("aggregate_entry")))
			record.Set("item_type", itemType)
			record.Set("pair_id", pairID)
			return app.Save(record)
		}

		if itemType == "connectors" {
			pairID := uuid.NewString()
			if err := place(cellX, cellY, pairID); err != nil {
				log.Printf("schematic: could not place connector: %v", err)
				return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
			}
			if err := place(cellX+1, cellY, pairID); err != nil {
				log.Printf("schematic: could not place connector twin: %v", err)
				return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
			}
		} else {
			if err := place(cellX, cellY, ""); err != nil {
				log.Printf("schematic: could not place item: %v", err)
				return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
			}
		}

		SetToast(e, "success", name+" placed")
		FireEvent(e, "totals-changed")
		return e.String(http.StatusOK, "")
	}
}

// HandleSchematicPatch updates a placed item's position or run
// dimensions.
func HandleSchematicPatch(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, err := app.FindRecordById("schematic_items", e.Request.PathValue("itemId"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Schematic item not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		for _, field := range []string{"cell_x", "cell_y"} {
			if v := e.Request.FormValue(field); v != "" {
				record.Set(field, formInt(v))
			}
		}
		for _, field := range []string{"length", "width", "height"} {
			if v := e.Request.FormValue(field); v != "" {
				record.Set(field, formFloat(v))
			}
		}

		if err := app.Save(record); err != nil {
			log.Printf("schematic: could not update item %s: %v", record.Id, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		FireEvent(e, "totals-changed")
		return e.String(http.StatusOK, "")
	}
}

// HandleSchematicDelete removes a placed item. Deleting one half of a
// connector pair removes its twin too.
func HandleSchematicDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, err := app.FindRecordById("schematic_items", e.Request.PathValue("itemId"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Schematic item not found")
		}

		if pairID := record.GetString("pair_id"); pairID != "" {
			twins, err := app.FindRecordsByFilter(
				"schematic_items",
				"pair_id = {:pairId} && id != {:id}",
				"", 0, 0,
				map[string]any{"pairId": pairID, "id": record.Id},
			)
			if err == nil {
				for _, twin := range twins {
					if err := app.Delete(twin); err != nil {
						log.Printf("schematic: could not delete connector twin %s: %v", twin.Id, err)
					}
				}
			}
		}

		if err := app.Delete(record); err != nil {
			log.Printf("schematic: could not delete item %s: %v", record.Id, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Item removed")
		FireEvent(e, "totals-changed")
		return e.String(http.StatusOK, "")
	}
}

// HandleSpecialItemCreate adds a label or measurement to the schematic.
// Measurements need both endpoints; labels only the anchor cell.
func HandleSpecialItemCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		survey, err := app.FindRecordById("surveys", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Survey not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		kind := e.Request.FormValue("kind")
		if kind != "label" && kind != "measurement" {
			return ErrorToast(e, http.StatusBadRequest, "Kind must be label or measurement")
		}

		col, err := app.FindCollectionByNameOrId("special_items")
		if err != nil {
			log.Printf("schematic: special_items collection not found: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		record := core.NewRecord(col)
		record.Set("survey", survey.Id)
		record.Set("kind", kind)
		record.Set("cell_x", formInt(e.Request.FormValue("cell_x")))
		record.Set("cell_y", formInt(e.Request.FormValue("cell_y")))
		if kind == "measurement" {
			record.Set("end_x", formInt(e.Request.FormValue("end_x")))
			record.Set("end_y", formInt(e.Request.FormValue("end_y")))
			record.Set("value", formFloat(e.Request.FormValue("value")))
			record.Set("rotation", formFloat(e.Request.FormValue("rotation")))
		} else {
			record.Set("text", strings.TrimSpace(e.Request.FormValue("text")))
		}

		if err := app.Save(record); err != nil {
			log.Printf("schematic: could not save special item: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		return e.String(http.StatusOK, "")
	}
}

func HandleSpecialItemDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return deleteChildRecord(app, "special_items", "Annotation removed")
}

func formInt(v string) int {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0
	}
	return n
}
