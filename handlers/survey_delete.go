package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleSurveyDelete removes a survey. Child entries cascade via the
// collection relations.
func HandleSurveyDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, err := app.FindRecordById("surveys", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Survey not found")
		}

		if err := app.Delete(record); err != nil {
			log.Printf("survey_delete: could not delete survey %s: %v", record.Id, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		// Clear the active-survey cookie if it pointed at the deleted survey.
		if cookie, err := e.Request.Cookie("active_survey"); err == nil && cookie.Value == record.Id {
			http.SetCookie(e.Response, &http.Cookie{
				Name:   "active_survey",
				Value:  "",
				Path:   "/",
				MaxAge: -1,
			})
		}

		SetToast(e, "success", "Survey deleted")
		return e.String(http.StatusOK, "")
	}
}
