package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"kitchensurvey/services"
	"kitchensurvey/templates"
)

// HandleSurveyList renders the survey index with each survey's current
// grand total. Totals are recomputed on every request, never stored.
func HandleSurveyList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindAllRecords("surveys")
		if err != nil {
			log.Printf("survey_list: could not load surveys: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Could not load surveys")
		}

		catalogue, err := services.LoadCatalogue(app)
		if err != nil {
			log.Printf("survey_list: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Could not load the price catalogue")
		}

		data := templates.SurveyListData{}
		for _, rec := range records {
			costs := services.BuildSurveyCosts(app, rec, catalogue)
			totals := services.Aggregate(costs, rec.GetFloat("modifier_percent"))

			data.Surveys = append(data.Surveys, templates.SurveyListItem{
				ID:              rec.Id,
				SiteName:        rec.GetString("site_name"),
				ReferenceNumber: rec.GetString("reference_number"),
				ClientName:      rec.GetString("client_name"),
				Status:          rec.GetString("status"),
				GrandTotal:      services.FormatGBP(totals.GrandTotal),
			})
		}

		component := templates.SurveyListPage(data, GetHeaderData(e.Request))
		return component.Render(e.Request.Context(), e.Response)
	}
}
