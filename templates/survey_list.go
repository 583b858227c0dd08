package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// SurveyListPage renders the survey index with per-survey actions.
func SurveyListPage(data SurveyListData, header HeaderData) templ.Component {
	return Layout("Surveys", header, surveyListBody(data))
}

func surveyListBody(data SurveyListData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w,
			`<div class="page-actions"><h1>Surveys</h1>`+
				`<a href="/surveys/create" class="btn btn-primary">New Survey</a></div>`); err != nil {
			return err
		}

		if len(data.Surveys) == 0 {
			_, err := io.WriteString(w, `<p class="empty-state">No surveys yet. Create one to get started.</p>`)
			return err
		}

		if _, err := io.WriteString(w,
			`<table class="data-table"><thead><tr>`+
				`<th>Site</th><th>Ref</th><th>Client</th><th>Status</th><th>Total</th><th></th>`+
				`</tr></thead><tbody>`); err != nil {
			return err
		}

		for _, s := range data.Surveys {
			if _, err := io.WriteString(w,
				`<tr id="survey-`+templ.EscapeString(s.ID)+`">`+
					`<td><a href="/surveys/edit/`+templ.EscapeString(s.ID)+`">`+templ.EscapeString(s.SiteName)+`</a></td>`+
					`<td>`+templ.EscapeString(s.ReferenceNumber)+`</td>`+
					`<td>`+templ.EscapeString(s.ClientName)+`</td>`+
					`<td>`+templ.EscapeString(s.Status)+`</td>`+
					`<td class="amount">`+templ.EscapeString(s.GrandTotal)+`</td>`+
					`<td class="row-actions">`+
					`<a href="/surveys/`+templ.EscapeString(s.ID)+`/quote.pdf" class="btn btn-sm">PDF</a> `+
					`<a href="/surveys/`+templ.EscapeString(s.ID)+`/quote.xlsx" class="btn btn-sm">Excel</a> `+
					`<button hx-delete="/surveys/`+templ.EscapeString(s.ID)+`"`+
					` hx-confirm="Delete this survey and everything recorded against it?"`+
					` hx-target="#survey-`+templ.EscapeString(s.ID)+`" hx-swap="outerHTML"`+
					` class="btn btn-sm btn-danger">Delete</button>`+
					`</td></tr>`); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, `</tbody></table>`)
		return err
	})
}
