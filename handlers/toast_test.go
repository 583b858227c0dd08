package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"kitchensurvey/testhelpers"
)

func TestSetToast_SetsTriggerAndFlashCookie(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	e := newTestRequestEvent(app, req, rec)

	SetToast(e, "success", "Saved")

	var triggers map[string]map[string]string
	if err := json.Unmarshal([]byte(rec.Header().Get("HX-Trigger")), &triggers); err != nil {
		t.Fatalf("HX-Trigger is not valid JSON: %v", err)
	}
	toast, ok := triggers["showToast"]
	if !ok {
		t.Fatal("expected a showToast trigger")
	}
	if toast["message"] != "Saved" || toast["type"] != "success" {
		t.Errorf("unexpected toast payload: %v", toast)
	}

	found := false
	for _, c := range rec.Result().Cookies() {
		if c.Name == "flash_toast" {
			found = true
		}
	}
	if !found {
		t.Error("expected a flash_toast cookie for non-HTMX redirects")
	}
}

func TestFireEvent_CoexistsWithToast(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	e := newTestRequestEvent(app, req, rec)

	SetToast(e, "success", "Saved")
	FireEvent(e, "totals-changed")

	var triggers map[string]any
	if err := json.Unmarshal([]byte(rec.Header().Get("HX-Trigger")), &triggers); err != nil {
		t.Fatalf("HX-Trigger is not valid JSON: %v", err)
	}
	if _, ok := triggers["showToast"]; !ok {
		t.Error("toast trigger lost after FireEvent")
	}
	if _, ok := triggers["totals-changed"]; !ok {
		t.Error("expected a totals-changed trigger")
	}
}

func TestErrorToast_SetsReswapNone(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	e := newTestRequestEvent(app, req, rec)

	if err := ErrorToast(e, http.StatusBadRequest, "Bad input"); err != nil {
		t.Fatalf("ErrorToast returned error: %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if got := rec.Header().Get("HX-Reswap"); got != "none" {
		t.Errorf("HX-Reswap = %q, want none", got)
	}
}
