package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"kitchensurvey/services"
	"kitchensurvey/templates"
)

// HandleSurveyTotals renders the live totals fragment for the edit
// page. Every category is recomputed from the stored entries; nothing
// is cached between requests.
func HandleSurveyTotals(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		survey, err := app.FindRecordById("surveys", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Survey not found")
		}

		catalogue, err := services.LoadCatalogue(app)
		if err != nil {
			log.Printf("totals: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Could not load the price catalogue")
		}

		costs := services.BuildSurveyCosts(app, survey, catalogue)
		totals := services.Aggregate(costs, survey.GetFloat("modifier_percent"))

		data := templates.TotalsData{
			Subtotal:        services.FormatGBP(totals.Subtotal),
			ModifierPercent: fmt.Sprintf("%.1f", totals.ModifierPercent),
			Adjustment:      services.FormatGBP(totals.GrandTotal - totals.Subtotal),
			GrandTotal:      services.FormatGBP(totals.GrandTotal),
			HasModifier:     totals.ModifierPercent != 0,
		}
		for _, line := range totals.Lines {
			data.Lines = append(data.Lines, templates.TotalLine{
				Category: line.Category,
				Details:  line.Details,
				Amount:   services.FormatGBP(line.Amount),
			})
		}

		component := templates.TotalsFragment(data)
		return component.Render(e.Request.Context(), e.Response)
	}
}
