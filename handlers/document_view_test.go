package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"computometrico/testhelpers"
)

func TestHandleDocumentView_Success(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	doc := testhelpers.CreateTestDocument(t, app, "Survey Revision A")
	group := testhelpers.CreateTestGroup(t, app, doc.Id, "Structural Works", false)
	item := testhelpers.CreateTestItem(t, app, group.Id, "ST.01", 100, 10, 20)
	testhelpers.CreateTestVariation(t, app, item.Id, "1", "increase", 15)
	testhelpers.CreateTestVariation(t, app, item.Id, "1", "decrease", 5)

	handler := HandleDocumentView(app)

	req := httptest.NewRequest(http.MethodGet, "/documents/"+doc.Id, nil)
	req.SetPathValue("id", doc.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"Survey Revision A", "Structural Works", "ST.01",
		"Variant no. 1", "+15", "-5", "1.100,00", "220,00")
}

func TestHandleDocumentView_AbsentCellRendersDash(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	doc := testhelpers.CreateTestDocument(t, app, "Dash Document")
	group := testhelpers.CreateTestGroup(t, app, doc.Id, "Works", false)
	withVar := testhelpers.CreateTestItem(t, app, group.Id, "A.01", 10, 1, 0)
	testhelpers.CreateTestVariation(t, app, withVar.Id, "1", "increase", 2)
	testhelpers.CreateTestItem(t, app, group.Id, "A.02", 20, 1, 0)

	handler := HandleDocumentView(app)

	req := httptest.NewRequest(http.MethodGet, "/documents/"+doc.Id, nil)
	req.SetPathValue("id", doc.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "&mdash;")
}

func TestHandleDocumentView_HTMXFragment(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	doc := testhelpers.CreateTestDocument(t, app, "HTMX Document")

	handler := HandleDocumentView(app)

	req := httptest.NewRequest(http.MethodGet, "/documents/"+doc.Id, nil)
	req.SetPathValue("id", doc.Id)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	body := rec.Body.String()
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	// Fragment only: no document shell.
	if want := "<!DOCTYPE html>"; len(body) > 0 && body[:15] == want[:15] {
		t.Error("HTMX request must not render the full page shell")
	}
}

func TestHandleDocumentView_NotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	handler := HandleDocumentView(app)

	req := httptest.NewRequest(http.MethodGet, "/documents/nonexistent", nil)
	req.SetPathValue("id", "nonexistent")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestHandleDocumentView_EmptyDocument(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	doc := testhelpers.CreateTestDocument(t, app, "Empty Document")

	handler := HandleDocumentView(app)

	req := httptest.NewRequest(http.MethodGet, "/documents/"+doc.Id, nil)
	req.SetPathValue("id", doc.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "Empty Document", "0,00")
}
