package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"computometrico/templates"
)

// HandleDocumentCreate returns a handler that renders the new-document form.
func HandleDocumentCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return renderComponent(e, templates.DocumentCreatePage())
	}
}

// HandleDocumentSave returns a handler that creates a document from the form
// and redirects to its report page.
func HandleDocumentSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return e.String(http.StatusBadRequest, "Invalid form")
		}
		name := strings.TrimSpace(e.Request.FormValue("name"))
		if name == "" {
			return e.String(http.StatusBadRequest, "Missing document name")
		}

		documentsCol, err := app.FindCollectionByNameOrId("documents")
		if err != nil {
			log.Printf("document_save: could not find documents collection: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		record := core.NewRecord(documentsCol)
		record.Set("name", name)
		if err := app.Save(record); err != nil {
			log.Printf("document_save: could not save document: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to save document")
		}

		return e.Redirect(http.StatusFound, "/documents/"+record.Id)
	}
}

// HandleDocumentDelete returns a handler that removes a document and its
// whole tree (groups, items and variations cascade).
func HandleDocumentDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		documentID := e.Request.PathValue("id")
		record, err := app.FindRecordById("documents", documentID)
		if err != nil {
			return e.String(http.StatusNotFound, "Document not found")
		}
		if err := app.Delete(record); err != nil {
			log.Printf("document_delete: could not delete document %s: %v", documentID, err)
			return e.String(http.StatusInternalServerError, "Failed to delete document")
		}
		SetToast(e, "success", "Document deleted")
		return e.NoContent(http.StatusOK)
	}
}
