package main

import (
	"log"
	"net/http"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"computometrico/collections"
	"computometrico/handlers"
	"computometrico/services"
)

func main() {
	app := pocketbase.New()

	// Create collections and seed data on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		return se.Next()
	})

	// One exporter instance guards against concurrent snapshot exports.
	exporter := &services.BillExporter{}

	// Collaborators are optional; their handlers answer 503 until wired to a
	// real backend.
	var riskAnalyzer services.RiskAnalyzer
	var licenseIssuer services.LicenseIssuer

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		// ── Document CRUD ────────────────────────────────────────
		se.Router.GET("/documents", handlers.HandleDocumentList(app))
		se.Router.GET("/documents/create", handlers.HandleDocumentCreate(app))
		se.Router.POST("/documents", handlers.HandleDocumentSave(app))
		se.Router.DELETE("/documents/{id}", handlers.HandleDocumentDelete(app))

		// ── Document structure ───────────────────────────────────
		se.Router.POST("/documents/{id}/groups", handlers.HandleGroupAdd(app))
		se.Router.POST("/documents/{id}/groups/{groupId}/items", handlers.HandleItemAdd(app))
		se.Router.DELETE("/documents/{id}/items/{itemId}", handlers.HandleItemDelete(app))
		se.Router.DELETE("/documents/{id}/variations/{variationId}", handlers.HandleVariationDelete(app))

		// ── Updated-bill report ──────────────────────────────────
		se.Router.POST("/documents/{id}/groups/{groupId}/toggle-security", handlers.HandleGroupToggleSecurity(app))
		se.Router.POST("/documents/{id}/items/{itemId}/variations", handlers.HandleVariationAdd(app))

		// ── Export ───────────────────────────────────────────────
		se.Router.GET("/documents/{id}/export/excel", handlers.HandleDocumentExportExcel(app))
		se.Router.GET("/documents/{id}/export/pdf", handlers.HandleDocumentExportPDF(app))
		se.Router.POST("/documents/{id}/export/snapshot", handlers.HandleExportSnapshot(app, exporter))

		// ── Collaborators ────────────────────────────────────────
		se.Router.POST("/documents/{id}/risk", handlers.HandleRiskAnalysis(app, riskAnalyzer))
		se.Router.POST("/license", handlers.HandleLicenseIssue(app, licenseIssuer))

		// Report view (after specific /documents/{id}/* routes)
		se.Router.GET("/documents/{id}", handlers.HandleDocumentView(app))

		// Redirect home to documents list
		se.Router.GET("/", func(e *core.RequestEvent) error {
			return e.Redirect(http.StatusFound, "/documents")
		})

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
