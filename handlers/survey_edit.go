package handlers

import (
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"kitchensurvey/services"
	"kitchensurvey/templates"
)

func HandleSurveyEdit(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, err := app.FindRecordById("surveys", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Survey not found")
		}

		data := templates.SurveyFormData{
			ID:              record.Id,
			SiteName:        record.GetString("site_name"),
			ReferenceNumber: record.GetString("reference_number"),
			ClientName:      record.GetString("client_name"),
			Status:          record.GetString("status"),

			ParkingCost:            formValueFromFloat(record.GetFloat("parking_cost")),
			PostServiceReport:      record.GetString("post_service_report"),
			PostServiceReportPrice: formValueFromFloat(record.GetFloat("post_service_report_price")),
			ModifierPercent:        formValueFromFloat(record.GetFloat("modifier_percent")),
			AirPrice:               formValueFromFloat(record.GetFloat("air_price")),
			FanPartsPrice:          formValueFromFloat(record.GetFloat("fan_parts_price")),
			AirInExTotal:           formValueFromFloat(record.GetFloat("air_in_ex_total")),
			GreaseTotal:            formValueFromFloat(record.GetFloat("grease_total")),
			StructureTotal:         formValueFromFloat(record.GetFloat("structure_total")),
			StructureTotalSet:      record.GetBool("structure_total_set"),

			StatusOptions:            SurveyStatusOptions,
			PostServiceReportOptions: services.PostServiceReportOptions,
			Errors:                   make(map[string]string),
		}

		component := templates.SurveyEditPage(data, GetHeaderData(e.Request))
		return component.Render(e.Request.Context(), e.Response)
	}
}

func HandleSurveyUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, err := app.FindRecordById("surveys", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Survey not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		siteName := strings.TrimSpace(e.Request.FormValue("site_name"))
		if siteName == "" {
			return ErrorToast(e, http.StatusBadRequest, "Site name is required")
		}

		record.Set("site_name", siteName)
		record.Set("reference_number", strings.TrimSpace(e.Request.FormValue("reference_number")))
		record.Set("client_name", strings.TrimSpace(e.Request.FormValue("client_name")))
		record.Set("status", validSurveyStatus(e.Request.FormValue("status")))

		record.Set("parking_cost", formFloat(e.Request.FormValue("parking_cost")))
		record.Set("post_service_report", validReportToggle(e.Request.FormValue("post_service_report")))
		record.Set("post_service_report_price", formFloat(e.Request.FormValue("post_service_report_price")))
		record.Set("modifier_percent", formFloat(e.Request.FormValue("modifier_percent")))
		record.Set("air_price", formFloat(e.Request.FormValue("air_price")))
		record.Set("fan_parts_price", formFloat(e.Request.FormValue("fan_parts_price")))
		record.Set("air_in_ex_total", formFloat(e.Request.FormValue("air_in_ex_total")))
		record.Set("grease_total", formFloat(e.Request.FormValue("grease_total")))
		record.Set("structure_total", formFloat(e.Request.FormValue("structure_total")))
		record.Set("structure_total_set", formCheckbox(e.Request.FormValue("structure_total_set")))

		if err := app.Save(record); err != nil {
			log.Printf("survey_edit: could not save survey %s: %v", record.Id, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Survey saved")
		FireEvent(e, "totals-changed")
		return e.String(http.StatusOK, "")
	}
}

func validReportToggle(v string) string {
	if strings.TrimSpace(v) == "Yes" {
		return "Yes"
	}
	return "No"
}

// formFloat parses a survey form number. Blank or malformed input is
// stored as 0 so every stored price stays finite.
func formFloat(v string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func formCheckbox(v string) bool {
	return v == "on" || v == "true"
}

// formValueFromFloat renders a stored number back into a form input,
// leaving zeroes blank.
func formValueFromFloat(f float64) string {
	if f == 0 {
		return ""
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
