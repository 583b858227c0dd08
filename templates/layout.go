package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Layout wraps body in the shared HTML shell: head, htmx script, header
// with the survey switcher and the toast listener.
func Layout(title string, header HeaderData, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w,
			`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`+
				`<meta name="viewport" content="width=device-width, initial-scale=1">`+
				`<title>`+templ.EscapeString(title)+`</title>`+
				`<script src="/static/htmx.min.js"></script>`+
				`<link rel="stylesheet" href="/static/app.css">`+
				`</head><body>`); err != nil {
			return err
		}
		if err := pageHeader(header).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<main class="container">`); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w,
			`</main><div id="toast-container"></div>`+
				`<script src="/static/toast.js"></script></body></html>`)
		return err
	})
}

func pageHeader(header HeaderData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w,
			`<header class="app-header"><a href="/surveys" class="brand">Kitchen Survey</a>`); err != nil {
			return err
		}

		if header.ActiveSurvey != nil {
			if _, err := io.WriteString(w,
				`<span class="active-survey">`+templ.EscapeString(header.ActiveSurvey.SiteName)+`</span>`); err != nil {
				return err
			}
		}

		if len(header.Surveys) > 0 {
			if _, err := io.WriteString(w, `<nav class="survey-switcher"><ul>`); err != nil {
				return err
			}
			for _, s := range header.Surveys {
				class := ""
				if s.IsActive {
					class = ` class="active"`
				}
				if _, err := io.WriteString(w,
					`<li`+class+`><a href="#" hx-post="/surveys/switch/`+templ.EscapeString(s.ID)+
						`" hx-swap="none">`+templ.EscapeString(s.SiteName)+`</a></li>`); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, `</ul></nav>`); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, `</header>`)
		return err
	})
}
