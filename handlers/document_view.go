package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"computometrico/services"
	"computometrico/templates"
)

// HandleDocumentView returns a handler that renders the updated-bill report
// for one document: the item-by-round matrix plus the rolled-up totals.
func HandleDocumentView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		documentID := e.Request.PathValue("id")
		if documentID == "" {
			return e.String(http.StatusBadRequest, "Missing document ID")
		}

		doc, err := loadDocument(app, documentID)
		if err != nil {
			log.Printf("document_view: %v", err)
			return e.String(http.StatusNotFound, "Document not found")
		}

		data := services.BuildReportData(doc, time.Now().Format("02 Jan 2006"))
		page := buildReportPage(doc, data)

		component := templates.DocumentReportPage(page)
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.ReportContent(page)
		}
		return renderComponent(e, component)
	}
}
