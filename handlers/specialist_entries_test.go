package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"kitchensurvey/testhelpers"
)

func TestHandleSpecialistEntryCreate(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	survey := testhelpers.CreateTestSurvey(t, app, "Riverside Hotel")
	handler := HandleSpecialistEntryCreate(app)

	form := url.Values{}
	form.Set("name", "Deep Clean Rig")
	form.Set("category", "Specialist Equipment")
	form.Set("number", "2")
	form.Set("price", "120")
	form.Set("custom_data", `[{"name":"Access","value":"Rear"}]`)

	rec := httptest.NewRecorder()
	req := newFormRequest(http.MethodPost, "/surveys/"+survey.Id+"/specialist-entries", form,
		map[string]string{"id": survey.Id})

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	entries, err := app.FindRecordsByFilter("specialist_entries", "survey = {:survey}", "", 10, 0,
		map[string]any{"survey": survey.Id})
	if err != nil || len(entries) != 1 {
		t.Fatalf("expected one specialist entry, got %d (err %v)", len(entries), err)
	}
	if got := entries[0].GetFloat("price"); got != 120 {
		t.Errorf("price = %v, want 120", got)
	}

	var custom []map[string]any
	if err := entries[0].UnmarshalJSONField("custom_data", &custom); err != nil {
		t.Fatalf("could not unmarshal custom_data: %v", err)
	}
	if len(custom) != 1 || custom[0]["name"] != "Access" {
		t.Errorf("unexpected custom_data: %v", custom)
	}
}

func TestHandleSpecialistEntryCreate_BadCustomData(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	survey := testhelpers.CreateTestSurvey(t, app, "Riverside Hotel")
	handler := HandleSpecialistEntryCreate(app)

	form := url.Values{}
	form.Set("name", "Deep Clean Rig")
	form.Set("custom_data", `{"not":"a list"}`)

	rec := httptest.NewRecorder()
	req := newFormRequest(http.MethodPost, "/surveys/"+survey.Id+"/specialist-entries", form,
		map[string]string{"id": survey.Id})

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rec.Code)
	}
}

func TestHandleSpecialistEntryDelete(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	survey := testhelpers.CreateTestSurvey(t, app, "Riverside Hotel")

	col, err := app.FindCollectionByNameOrId("specialist_entries")
	if err != nil {
		t.Fatalf("collection not found: %v", err)
	}
	record := testRecord(t, app, col, map[string]any{
		"survey": survey.Id,
		"name":   "Deep Clean Rig",
		"price":  120.0,
	})

	handler := HandleSpecialistEntryDelete(app)

	rec := httptest.NewRecorder()
	req := newFormRequest(http.MethodDelete, "/specialist-entries/"+record.Id, url.Values{},
		map[string]string{"entryId": record.Id})

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if _, err := app.FindRecordById("specialist_entries", record.Id); err == nil {
		t.Error("expected entry to be deleted")
	}
}
