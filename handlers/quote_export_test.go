package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"kitchensurvey/services"
	"kitchensurvey/testhelpers"
)

var testCompany = services.CompanyInfo{
	Name:    "Kitchen Survey Co",
	Address: "1 Example Street, London",
	Email:   "quotes@example.co.uk",
	Phone:   "020 7946 0000",
}

func TestHandleQuotePDF_DownloadsAndRecordsQuote(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	survey := testhelpers.CreateTestSurvey(t, app, "Riverside Hotel")
	survey.Set("reference_number", "1042")
	survey.Set("grease_total", 100)
	if err := app.Save(survey); err != nil {
		t.Fatalf("could not save survey: %v", err)
	}

	handler := HandleQuotePDF(app, testCompany)

	rec := httptest.NewRecorder()
	req := newFormRequest(http.MethodGet, "/surveys/"+survey.Id+"/quote.pdf", url.Values{},
		map[string]string{"id": survey.Id})

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("Content-Type = %q, want application/pdf", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "attachment") {
		t.Errorf("Content-Disposition = %q, want an attachment", cd)
	}
	if !strings.HasPrefix(rec.Body.String(), "%PDF-") {
		t.Error("response body is not a PDF document")
	}

	quotes, err := app.FindRecordsByFilter("quotes", "survey = {:survey}", "", 10, 0,
		map[string]any{"survey": survey.Id})
	if err != nil || len(quotes) != 1 {
		t.Fatalf("expected one issued quote record, got %d (err %v)", len(quotes), err)
	}
	number := quotes[0].GetString("quote_number")
	if !strings.HasPrefix(number, "KSC-Q-1042-") || !strings.HasSuffix(number, "-001") {
		t.Errorf("quote_number = %q, want KSC-Q-1042-<fy>-001", number)
	}
}

func TestHandleQuotePDF_SequenceAdvances(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	survey := testhelpers.CreateTestSurvey(t, app, "Riverside Hotel")
	survey.Set("reference_number", "1042")
	if err := app.Save(survey); err != nil {
		t.Fatalf("could not save survey: %v", err)
	}

	handler := HandleQuotePDF(app, testCompany)
	export := func() {
		rec := httptest.NewRecorder()
		req := newFormRequest(http.MethodGet, "/surveys/"+survey.Id+"/quote.pdf", url.Values{},
			map[string]string{"id": survey.Id})
		if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
			t.Fatalf("handler returned error: %v", err)
		}
	}

	export()
	export()

	quotes, err := app.FindRecordsByFilter("quotes", "survey = {:survey}", "created", 10, 0,
		map[string]any{"survey": survey.Id})
	if err != nil || len(quotes) != 2 {
		t.Fatalf("expected two issued quotes, got %d (err %v)", len(quotes), err)
	}

	first := quotes[0].GetString("quote_number")
	second := quotes[1].GetString("quote_number")
	if first == second {
		t.Fatalf("quote numbers should differ, both %q", first)
	}
	suffixes := map[string]bool{}
	for _, n := range []string{first, second} {
		suffixes[n[strings.LastIndex(n, "-")+1:]] = true
	}
	if !suffixes["001"] || !suffixes["002"] {
		t.Errorf("expected sequence 001 then 002, got %q and %q", first, second)
	}
}

func TestHandleQuoteExcel_Downloads(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	survey := testhelpers.CreateTestSurvey(t, app, "Riverside Hotel")
	survey.Set("grease_total", 100)
	if err := app.Save(survey); err != nil {
		t.Fatalf("could not save survey: %v", err)
	}

	handler := HandleQuoteExcel(app, testCompany)

	rec := httptest.NewRecorder()
	req := newFormRequest(http.MethodGet, "/surveys/"+survey.Id+"/quote.xlsx", url.Values{},
		map[string]string{"id": survey.Id})

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "spreadsheet") {
		t.Errorf("Content-Type = %q, want a spreadsheet type", ct)
	}
	// XLSX files are zip archives.
	if body := rec.Body.Bytes(); len(body) < 4 || body[0] != 'P' || body[1] != 'K' {
		t.Error("response body is not an xlsx archive")
	}
}

func TestHandleQuotePDF_SurveyNotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleQuotePDF(app, testCompany)

	rec := httptest.NewRecorder()
	req := newFormRequest(http.MethodGet, "/surveys/missing/quote.pdf", url.Values{},
		map[string]string{"id": "missing"})

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rec.Code)
	}
}
