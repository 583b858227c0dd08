package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"kitchensurvey/services"
)

// HandleGradeCycle advances a grade button to the next available grade
// for a catalogue item and returns the new grade as the swap fragment.
// Unknown items cycle through the full A-E ladder.
func HandleGradeCycle(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		current := e.Request.FormValue("grade")

		available := services.PriceList{}
		for _, g := range services.GradeOptions {
			available = append(available, services.GradePrice{Grade: g})
		}
		if itemID := e.Request.FormValue("item_id"); itemID != "" {
			if rec, err := app.FindRecordById("price_table_items", itemID); err == nil {
				var prices services.PriceList
				if err := rec.UnmarshalJSONField("prices", &prices); err == nil && len(prices) > 0 {
					available = prices
				}
			}
		}

		next := services.CycleGrade(available, current)
		return e.String(http.StatusOK, next)
	}
}
