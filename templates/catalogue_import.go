package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// CatalogueImportData feeds the price catalogue import page.
type CatalogueImportData struct {
	TotalRows int
	Imported  int
	Skipped   int
	Failed    int
	Errors    []CatalogueImportError
	HasResult bool
}

// CatalogueImportError is one rendered validation problem.
type CatalogueImportError struct {
	Row     int
	Field   string
	Message string
}

// CatalogueImportPage renders the upload form, the template download
// link and, after an upload, the import result summary.
func CatalogueImportPage(data CatalogueImportData, header HeaderData) templ.Component {
	return Layout("Import Price Catalogue", header, catalogueImportBody(data))
}

func catalogueImportBody(data CatalogueImportData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w,
			`<h1>Import Price Catalogue</h1>`+
				`<p><a href="/catalogue/import/template" class="btn">Download Template</a></p>`+
				`<form method="post" action="/catalogue/import" enctype="multipart/form-data" class="import-form">`+
				`<input type="file" name="file" accept=".xlsx" required>`+
				`<button type="submit" class="btn btn-primary">Upload</button></form>`); err != nil {
			return err
		}

		if !data.HasResult {
			return nil
		}

		if _, err := io.WriteString(w,
			`<div class="import-result"><p>`+
				strconv.Itoa(data.Imported)+` imported, `+
				strconv.Itoa(data.Skipped)+` skipped, `+
				strconv.Itoa(data.Failed)+` failed of `+
				strconv.Itoa(data.TotalRows)+` row(s).</p>`); err != nil {
			return err
		}

		if len(data.Errors) > 0 {
			if _, err := io.WriteString(w,
				`<p><a href="/catalogue/import/errors" class="btn">Download Error Report</a></p>`+
					`<table class="data-table"><thead><tr><th>Row</th><th>Field</th><th>Problem</th></tr></thead><tbody>`); err != nil {
				return err
			}
			for _, e := range data.Errors {
				if _, err := io.WriteString(w,
					`<tr><td>`+strconv.Itoa(e.Row)+`</td>`+
						`<td>`+templ.EscapeString(e.Field)+`</td>`+
						`<td>`+templ.EscapeString(e.Message)+`</td></tr>`); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, `</tbody></table>`); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, `</div>`)
		return err
	})
}
