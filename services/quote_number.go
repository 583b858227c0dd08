package services

import (
	"fmt"
	"time"

	"github.com/pocketbase/pocketbase"
)

// FiscalYear returns the UK fiscal year string for a date. The UK
// fiscal year runs April to March: Jan 2026 → "25-26", May 2026 →
// "26-27".
func FiscalYear(t time.Time) string {
	year := t.Year()
	if t.Month() < time.April {
		year--
	}
	return fmt.Sprintf("%02d-%02d", year%100, (year+1)%100)
}

// formatQuoteNumber constructs the quote number string from components.
func formatQuoteNumber(surveyRef, fiscalYear string, sequence int) string {
	return fmt.Sprintf("KSC-Q-%s-%s-%03d", surveyRef, fiscalYear, sequence)
}

// GenerateQuoteNumber creates the next quote number for a survey.
// Format: KSC-Q-{survey_ref}-{fiscal_year}-{sequence}, where the
// sequence counts quotes raised for the survey within the fiscal year.
// The survey's reference number falls back to its record id when empty.
func GenerateQuoteNumber(app *pocketbase.PocketBase, surveyID string, now time.Time) (string, error) {
	survey, err := app.FindRecordById("surveys", surveyID)
	if err != nil {
		return "", fmt.Errorf("survey not found: %w", err)
	}

	surveyRef := survey.GetString("reference_number")
	if surveyRef == "" {
		surveyRef = surveyID
	}

	fiscalYear := FiscalYear(now)
	prefix := fmt.Sprintf("KSC-Q-%s-%s-", surveyRef, fiscalYear)

	existing, err := app.FindRecordsByFilter(
		"quotes",
		"survey = {:surveyId} && quote_number ~ {:prefix}",
		"",
		0,
		0,
		map[string]any{
			"surveyId": surveyID,
			"prefix":   prefix + "%",
		},
	)
	if err != nil {
		existing = nil
	}

	return formatQuoteNumber(surveyRef, fiscalYear, len(existing)+1), nil
}
