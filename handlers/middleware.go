package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"kitchensurvey/templates"
)

type contextKey string

const ActiveSurveyKey contextKey = "activeSurvey"
const HeaderDataKey contextKey = "headerData"

// GetActiveSurvey extracts the active survey from the request context.
func GetActiveSurvey(r *http.Request) *templates.ActiveSurvey {
	if val, ok := r.Context().Value(ActiveSurveyKey).(*templates.ActiveSurvey); ok {
		return val
	}
	return nil
}

// GetHeaderData extracts the pre-built HeaderData from the request context.
func GetHeaderData(r *http.Request) templates.HeaderData {
	if val, ok := r.Context().Value(HeaderDataKey).(templates.HeaderData); ok {
		return val
	}
	return templates.HeaderData{}
}

// ActiveSurveyMiddleware reads the "active_survey" cookie, loads the
// survey record, builds HeaderData with the full survey list, and stores
// both in the request context so handlers and templates can use them.
func ActiveSurveyMiddleware(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var active *templates.ActiveSurvey

		cookie, err := e.Request.Cookie("active_survey")
		if err == nil && cookie.Value != "" {
			rec, err := app.FindRecordById("surveys", cookie.Value)
			if err == nil {
				active = &templates.ActiveSurvey{
					ID:       rec.Id,
					SiteName: rec.GetString("site_name"),
				}
			} else {
				log.Printf("middleware: active survey %s not found, clearing cookie", cookie.Value)
				http.SetCookie(e.Response, &http.Cookie{
					Name:   "active_survey",
					Value:  "",
					Path:   "/",
					MaxAge: -1,
				})
			}
		}

		// Survey switcher list for the header.
		var selectorItems []templates.SurveySelectorItem
		if records, err := app.FindAllRecords("surveys"); err == nil {
			for _, rec := range records {
				selectorItems = append(selectorItems, templates.SurveySelectorItem{
					ID:       rec.Id,
					SiteName: rec.GetString("site_name"),
					IsActive: active != nil && rec.Id == active.ID,
				})
			}
		}

		headerData := templates.HeaderData{
			ActiveSurvey: active,
			Surveys:      selectorItems,
		}

		ctx := context.WithValue(e.Request.Context(), ActiveSurveyKey, active)
		ctx = context.WithValue(ctx, HeaderDataKey, headerData)
		e.Request = e.Request.WithContext(ctx)

		return e.Next()
	}
}
