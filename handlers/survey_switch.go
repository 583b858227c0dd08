package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleSurveySwitch sets the active-survey cookie and refreshes the
// page so the header and entry forms pick up the new context.
func HandleSurveySwitch(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, err := app.FindRecordById("surveys", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Survey not found")
		}

		http.SetCookie(e.Response, &http.Cookie{
			Name:     "active_survey",
			Value:    record.Id,
			Path:     "/",
			SameSite: http.SameSiteLaxMode,
		})

		SetToast(e, "success", "Switched to "+record.GetString("site_name"))

		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Refresh", "true")
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/surveys")
	}
}
