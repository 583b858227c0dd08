package handlers

import (
	"encoding/base64"
	"encoding/json"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"kitchensurvey/services"
	"kitchensurvey/templates"
)

// HandleCatalogueImportPage renders the upload form.
func HandleCatalogueImportPage(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		component := templates.CatalogueImportPage(templates.CatalogueImportData{}, GetHeaderData(e.Request))
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleCatalogueTemplate serves the downloadable import template.
func HandleCatalogueTemplate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		sheet, err := services.GenerateCatalogueTemplate()
		if err != nil {
			log.Printf("catalogue_import: template generation failed: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Could not generate the template")
		}

		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", `attachment; filename="price_catalogue_template.xlsx"`)
		_, err = e.Response.Write(sheet)
		return err
	}
}

// HandleCatalogueUpload parses an uploaded spreadsheet, commits the
// valid rows and renders the result summary with any validation errors.
func HandleCatalogueUpload(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		file, _, err := e.Request.FormFile("file")
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Choose a .xlsx file to upload")
		}
		defer file.Close()

		rows, rowErrs, err := services.ParseCatalogueUpload(file)
		if err != nil {
			log.Printf("catalogue_import: unreadable upload: %v", err)
			return ErrorToast(e, http.StatusBadRequest, "The file could not be read as a spreadsheet")
		}

		result, err := services.CommitCatalogueImport(app, rows)
		if err != nil {
			log.Printf("catalogue_import: commit failed: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		allErrs := append(rowErrs, result.Errors...)
		data := templates.CatalogueImportData{
			HasResult: true,
			TotalRows: result.TotalRows + len(rowErrs),
			Imported:  result.Imported,
			Skipped:   result.Skipped,
			Failed:    result.Failed + len(rowErrs),
		}
		for _, rowErr := range allErrs {
			data.Errors = append(data.Errors, templates.CatalogueImportError{
				Row:     rowErr.Row,
				Field:   rowErr.Field,
				Message: rowErr.Message,
			})
		}

		storeImportErrors(e, allErrs)

		if result.Imported > 0 {
			SetToast(e, "success", "Catalogue import complete")
		} else if len(allErrs) > 0 {
			SetToast(e, "warning", "No rows imported; fix the reported problems and retry")
		}

		component := templates.CatalogueImportPage(data, GetHeaderData(e.Request))
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleCatalogueErrorReport serves the last upload's validation errors
// as a spreadsheet.
func HandleCatalogueErrorReport(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rowErrs := loadImportErrors(e)
		if len(rowErrs) == 0 {
			return ErrorToast(e, http.StatusNotFound, "No import errors to report")
		}

		sheet, err := services.GenerateCatalogueErrorReport(rowErrs)
		if err != nil {
			log.Printf("catalogue_import: error report generation failed: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Could not generate the report")
		}

		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", `attachment; filename="catalogue_import_errors.xlsx"`)
		_, err = e.Response.Write(sheet)
		return err
	}
}

// Import errors ride in a short-lived cookie between the upload response
// and the error report download.
const importErrorsCookie = "catalogue_import_errors"

func storeImportErrors(e *core.RequestEvent, rowErrs []services.CatalogueRowError) {
	if len(rowErrs) == 0 {
		http.SetCookie(e.Response, &http.Cookie{Name: importErrorsCookie, Value: "", Path: "/", MaxAge: -1})
		return
	}
	data, err := json.Marshal(rowErrs)
	if err != nil {
		return
	}
	http.SetCookie(e.Response, &http.Cookie{
		Name:     importErrorsCookie,
		Value:    encodeCookieValue(data),
		Path:     "/",
		MaxAge:   600,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func loadImportErrors(e *core.RequestEvent) []services.CatalogueRowError {
	cookie, err := e.Request.Cookie(importErrorsCookie)
	if err != nil || cookie.Value == "" {
		return nil
	}
	data, err := decodeCookieValue(cookie.Value)
	if err != nil {
		return nil
	}
	var rowErrs []services.CatalogueRowError
	if err := json.Unmarshal(data, &rowErrs); err != nil {
		return nil
	}
	return rowErrs
}

func encodeCookieValue(data []byte) string {
	return base64.URLEncoding.EncodeToString(data)
}

func decodeCookieValue(value string) ([]byte, error) {
	return base64.URLEncoding.DecodeString(value)
}
