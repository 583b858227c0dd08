package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"kitchensurvey/services"
)

// HandleQuotePDF generates the quote PDF for a survey and records the
// issued quote number.
func HandleQuotePDF(app *pocketbase.PocketBase, company services.CompanyInfo) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data, err := services.BuildQuoteData(app, e.Request.PathValue("id"), company, time.Now())
		if err != nil {
			log.Printf("quote_export: %v", err)
			return ErrorToast(e, http.StatusNotFound, "Could not build the quote")
		}

		pdf, err := services.GenerateQuotePDF(data)
		if err != nil {
			log.Printf("quote_export: pdf generation failed: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Could not generate the PDF")
		}

		recordIssuedQuote(app, e.Request.PathValue("id"), data)

		filename := fmt.Sprintf("%s.pdf", data.QuoteNumber)
		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		_, err = e.Response.Write(pdf)
		return err
	}
}

// HandleQuoteExcel generates the quote spreadsheet for a survey.
func HandleQuoteExcel(app *pocketbase.PocketBase, company services.CompanyInfo) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data, err := services.BuildQuoteData(app, e.Request.PathValue("id"), company, time.Now())
		if err != nil {
			log.Printf("quote_export: %v", err)
			return ErrorToast(e, http.StatusNotFound, "Could not build the quote")
		}

		sheet, err := services.GenerateQuoteExcel(data)
		if err != nil {
			log.Printf("quote_export: excel generation failed: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Could not generate the spreadsheet")
		}

		recordIssuedQuote(app, e.Request.PathValue("id"), data)

		filename := fmt.Sprintf("%s.xlsx", data.QuoteNumber)
		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		_, err = e.Response.Write(sheet)
		return err
	}
}

// recordIssuedQuote stores the issued quote so the per-survey sequence
// advances. Export still succeeds if the bookkeeping write fails.
func recordIssuedQuote(app *pocketbase.PocketBase, surveyID string, data services.QuoteData) {
	col, err := app.FindCollectionByNameOrId("quotes")
	if err != nil {
		log.Printf("quote_export: quotes collection not found: %v", err)
		return
	}

	record := core.NewRecord(col)
	record.Set("survey", surveyID)
	record.Set("quote_number", data.QuoteNumber)
	record.Set("grand_total", data.GrandTotal)

	if err := app.Save(record); err != nil {
		log.Printf("quote_export: could not record quote %s: %v", data.QuoteNumber, err)
	}
}
