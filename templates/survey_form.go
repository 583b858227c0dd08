package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// SurveyCreatePage renders the empty survey form.
func SurveyCreatePage(data SurveyFormData, header HeaderData) templ.Component {
	return Layout("New Survey", header, surveyForm(data, "/surveys", "Create Survey"))
}

// SurveyEditPage renders the form pre-filled with an existing survey,
// followed by the live totals target.
func SurveyEditPage(data SurveyFormData, header HeaderData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := surveyForm(data, "/surveys/edit/"+data.ID, "Save Survey").Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w,
			`<section id="totals" hx-get="/surveys/`+templ.EscapeString(data.ID)+`/totals"`+
				` hx-trigger="load, totals-changed from:body"></section>`)
		return err
	})
	return Layout("Edit Survey", header, body)
}

func surveyForm(data SurveyFormData, action, submitLabel string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w,
			`<form hx-post="`+templ.EscapeString(action)+`" hx-swap="none" class="survey-form">`); err != nil {
			return err
		}

		if err := textField("site_name", "Site Name", data.SiteName, data.Errors).Render(ctx, w); err != nil {
			return err
		}
		if err := textField("reference_number", "Reference Number", data.ReferenceNumber, data.Errors).Render(ctx, w); err != nil {
			return err
		}
		if err := textField("client_name", "Client Name", data.ClientName, data.Errors).Render(ctx, w); err != nil {
			return err
		}
		if err := selectField("status", "Status", data.Status, data.StatusOptions).Render(ctx, w); err != nil {
			return err
		}

		if _, err := io.WriteString(w, `<fieldset><legend>Pricing</legend>`); err != nil {
			return err
		}
		numberFields := []struct{ name, label, value string }{
			{"parking_cost", "Parking Cost", data.ParkingCost},
			{"modifier_percent", "Adjustment %", data.ModifierPercent},
			{"air_price", "Air Price", data.AirPrice},
			{"fan_parts_price", "Fan Parts Price", data.FanPartsPrice},
			{"air_in_ex_total", "Air In/Ex Total", data.AirInExTotal},
			{"grease_total", "Grease Total", data.GreaseTotal},
			{"structure_total", "Structure Total Override", data.StructureTotal},
			{"post_service_report_price", "Post-Service Report Price", data.PostServiceReportPrice},
		}
		for _, f := range numberFields {
			if err := numberField(f.name, f.label, f.value, data.Errors).Render(ctx, w); err != nil {
				return err
			}
		}
		if err := selectField("post_service_report", "Post-Service Report", data.PostServiceReport, data.PostServiceReportOptions).Render(ctx, w); err != nil {
			return err
		}

		checked := ""
		if data.StructureTotalSet {
			checked = ` checked`
		}
		if _, err := io.WriteString(w,
			`<label class="field-checkbox"><input type="checkbox" name="structure_total_set"`+checked+`>`+
				` Use structure total override</label>`); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `</fieldset>`); err != nil {
			return err
		}

		_, err := io.WriteString(w,
			`<button type="submit" class="btn btn-primary">`+templ.EscapeString(submitLabel)+`</button></form>`)
		return err
	})
}

func textField(name, label, value string, errors map[string]string) templ.Component {
	return fieldWithInput(name, label, errors,
		`<input type="text" id="`+templ.EscapeString(name)+`" name="`+templ.EscapeString(name)+
			`" value="`+templ.EscapeString(value)+`">`)
}

func numberField(name, label, value string, errors map[string]string) templ.Component {
	return fieldWithInput(name, label, errors,
		`<input type="number" step="any" id="`+templ.EscapeString(name)+`" name="`+templ.EscapeString(name)+
			`" value="`+templ.EscapeString(value)+`">`)
}

func fieldWithInput(name, label string, errors map[string]string, input string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w,
			`<div class="field"><label for="`+templ.EscapeString(name)+`">`+templ.EscapeString(label)+
				`</label>`+input); err != nil {
			return err
		}
		if msg, ok := errors[name]; ok {
			if _, err := io.WriteString(w, `<p class="field-error">`+templ.EscapeString(msg)+`</p>`); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

func selectField(name, label, value string, options []string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w,
			`<div class="field"><label for="`+templ.EscapeString(name)+`">`+templ.EscapeString(label)+
				`</label><select id="`+templ.EscapeString(name)+`" name="`+templ.EscapeString(name)+`">`); err != nil {
			return err
		}
		for _, opt := range options {
			selected := ""
			if opt == value {
				selected = ` selected`
			}
			if _, err := io.WriteString(w,
				`<option value="`+templ.EscapeString(opt)+`"`+selected+`>`+templ.EscapeString(opt)+`</option>`); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</select></div>`)
		return err
	})
}
