package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pocketbase/pocketbase/core"
)

func decodeToast(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()

	trigger := rec.Header().Get("HX-Trigger")
	if trigger == "" {
		t.Fatal("expected HX-Trigger header to be set")
	}
	var parsed map[string]json.RawMessage
	if err := json.Unmarshal([]byte(trigger), &parsed); err != nil {
		t.Fatalf("HX-Trigger is not valid JSON: %v", err)
	}
	raw, ok := parsed["showToast"]
	if !ok {
		t.Fatal("expected showToast key in HX-Trigger JSON")
	}
	var toast map[string]string
	if err := json.Unmarshal(raw, &toast); err != nil {
		t.Fatalf("showToast value is not valid JSON: %v", err)
	}
	return toast
}

func TestSetToast_Basic(t *testing.T) {
	rec := httptest.NewRecorder()
	e := &core.RequestEvent{}
	e.Response = rec

	SetToast(e, "success", "Variation recorded")

	toast := decodeToast(t, rec)
	if toast["message"] != "Variation recorded" {
		t.Errorf("message = %q, want %q", toast["message"], "Variation recorded")
	}
	if toast["type"] != "success" {
		t.Errorf("type = %q, want %q", toast["type"], "success")
	}
}

func TestSetToast_SetsFlashCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	e := &core.RequestEvent{}
	e.Response = rec

	SetToast(e, "info", "Document saved")

	res := rec.Result()
	var flash *http.Cookie
	for _, c := range res.Cookies() {
		if c.Name == "flash_toast" {
			flash = c
		}
	}
	if flash == nil {
		t.Fatal("expected flash_toast cookie for redirect survival")
	}
	if flash.MaxAge <= 0 {
		t.Errorf("flash cookie MaxAge = %d, want a short positive lifetime", flash.MaxAge)
	}
}

func TestSetToast_MergesWithExistingTrigger(t *testing.T) {
	rec := httptest.NewRecorder()
	e := &core.RequestEvent{}
	e.Response = rec

	rec.Header().Set("HX-Trigger", `{"reportRefreshed":{"document":"abc"}}`)

	SetToast(e, "success", "Group updated")

	var parsed map[string]json.RawMessage
	if err := json.Unmarshal([]byte(rec.Header().Get("HX-Trigger")), &parsed); err != nil {
		t.Fatalf("merged HX-Trigger is not valid JSON: %v", err)
	}
	if _, ok := parsed["reportRefreshed"]; !ok {
		t.Error("existing trigger event was lost in the merge")
	}
	if _, ok := parsed["showToast"]; !ok {
		t.Error("toast event missing after merge")
	}
}

func TestSetToast_ReplacesInvalidExisting(t *testing.T) {
	rec := httptest.NewRecorder()
	e := &core.RequestEvent{}
	e.Response = rec

	rec.Header().Set("HX-Trigger", "notValidJSON")

	SetToast(e, "error", "Replaced")

	toast := decodeToast(t, rec)
	if toast["message"] != "Replaced" {
		t.Errorf("message = %q, want %q", toast["message"], "Replaced")
	}
}

func TestSetToast_EscapesSpecialCharacters(t *testing.T) {
	tests := []struct {
		name    string
		message string
	}{
		{"quotes", `Item "ST.01" removed`},
		{"angle brackets", `<script>alert("xss")</script>`},
		{"newline", "line1\nline2"},
		{"unicode", "Salvato ✔"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			e := &core.RequestEvent{}
			e.Response = rec

			SetToast(e, "info", tt.message)

			toast := decodeToast(t, rec)
			if toast["message"] != tt.message {
				t.Errorf("message did not survive the JSON round trip: %q", toast["message"])
			}
		})
	}
}

func TestErrorToast_SetsHeadersAndStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	e := &core.RequestEvent{}
	e.Response = rec

	if err := ErrorToast(e, http.StatusNotFound, "Document not found"); err != nil {
		t.Fatalf("ErrorToast returned error: %v", err)
	}

	toast := decodeToast(t, rec)
	if toast["type"] != "error" {
		t.Errorf("type = %q, want %q", toast["type"], "error")
	}
	if rec.Header().Get("HX-Reswap") != "none" {
		t.Errorf("HX-Reswap = %q, want %q", rec.Header().Get("HX-Reswap"), "none")
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	if rec.Body.String() != "Document not found" {
		t.Errorf("body = %q, want the plain message", rec.Body.String())
	}
}
