package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"kitchensurvey/services"
	"kitchensurvey/templates"
)

var SurveyStatusOptions = []string{"draft", "surveyed", "quoted", "archived"}

func HandleSurveyCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := templates.SurveyFormData{
			Status:                   "draft",
			PostServiceReport:        "No",
			StatusOptions:            SurveyStatusOptions,
			PostServiceReportOptions: services.PostServiceReportOptions,
			Errors:                   make(map[string]string),
		}
		component := templates.SurveyCreatePage(data, GetHeaderData(e.Request))
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleSurveySave creates a survey from the submitted form. New surveys
// start with the configured default modifier percentage.
func HandleSurveySave(app *pocketbase.PocketBase, defaultModifier float64) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		siteName := strings.TrimSpace(e.Request.FormValue("site_name"))
		refNumber := strings.TrimSpace(e.Request.FormValue("reference_number"))
		clientName := strings.TrimSpace(e.Request.FormValue("client_name"))
		status := validSurveyStatus(e.Request.FormValue("status"))

		errors := make(map[string]string)
		if siteName == "" {
			errors["site_name"] = "Site name is required"
		}

		if len(errors) > 0 {
			SetToast(e, "warning", "Please fix the errors below")
			data := templates.SurveyFormData{
				SiteName:                 siteName,
				ReferenceNumber:          refNumber,
				ClientName:               clientName,
				Status:                   status,
				PostServiceReport:        "No",
				StatusOptions:            SurveyStatusOptions,
				PostServiceReportOptions: services.PostServiceReportOptions,
				Errors:                   errors,
			}
			component := templates.SurveyCreatePage(data, GetHeaderData(e.Request))
			return component.Render(e.Request.Context(), e.Response)
		}

		surveysCol, err := app.FindCollectionByNameOrId("surveys")
		if err != nil {
			log.Printf("survey_create: could not find surveys collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		record := core.NewRecord(surveysCol)
		record.Set("site_name", siteName)
		record.Set("reference_number", refNumber)
		record.Set("client_name", clientName)
		record.Set("status", status)
		record.Set("post_service_report", "No")
		record.Set("modifier_percent", defaultModifier)

		if err := app.Save(record); err != nil {
			log.Printf("survey_create: could not save survey: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		// The new survey becomes the active one.
		http.SetCookie(e.Response, &http.Cookie{
			Name:     "active_survey",
			Value:    record.Id,
			Path:     "/",
			SameSite: http.SameSiteLaxMode,
		})

		SetToast(e, "success", "Survey created successfully")

		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/surveys/edit/"+record.Id)
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/surveys/edit/"+record.Id)
	}
}

func validSurveyStatus(status string) string {
	status = strings.TrimSpace(status)
	for _, s := range SurveyStatusOptions {
		if status == s {
			return status
		}
	}
	return "draft"
}
