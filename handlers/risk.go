package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"computometrico/services"
)

// HandleRiskAnalysis returns a handler that forwards the current document
// snapshot to the risk analysis collaborator and relays its findings.
// Collaborator failures stay opaque and never touch the reconciled data.
func HandleRiskAnalysis(app *pocketbase.PocketBase, analyzer services.RiskAnalyzer) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if analyzer == nil {
			return e.String(http.StatusServiceUnavailable, "Risk analysis is not configured")
		}

		documentID := e.Request.PathValue("id")
		doc, err := loadDocument(app, documentID)
		if err != nil {
			return e.String(http.StatusNotFound, "Document not found")
		}

		records, err := analyzer.Analyze(e.Request.Context(), doc)
		if err != nil {
			log.Printf("risk: analyzer failed for document %s: %v", documentID, err)
			return e.String(http.StatusBadGateway, "Risk analysis failed")
		}
		if err := services.ValidateRiskRecords(records); err != nil {
			log.Printf("risk: analyzer returned malformed records for document %s: %v", documentID, err)
			return e.String(http.StatusBadGateway, "Risk analysis returned malformed records")
		}

		// An empty list is a real answer: no risks found.
		if records == nil {
			records = []services.RiskRecord{}
		}
		return e.JSON(http.StatusOK, records)
	}
}
