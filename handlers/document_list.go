package handlers

import (
	"log"
	"net/http"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"computometrico/services"
	"computometrico/templates"
)

// HandleDocumentList returns a handler that renders the documents overview
// with each document's reconciled total.
func HandleDocumentList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		documentsCol, err := app.FindCollectionByNameOrId("documents")
		if err != nil {
			log.Printf("document_list: could not find documents collection: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		records, err := app.FindRecordsByFilter(documentsCol, "id != ''", "-created", 0, 0, nil)
		if err != nil {
			log.Printf("document_list: could not query documents: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		var items []templates.DocumentListItem
		for _, rec := range records {
			doc, err := loadDocument(app, rec.Id)
			if err != nil {
				log.Printf("document_list: could not load document %s: %v", rec.Id, err)
				continue
			}
			totals := services.Aggregate(doc)

			created := ""
			if dt := rec.GetDateTime("created"); !dt.IsZero() {
				created = dt.Time().Format("02 Jan 2006")
			}

			items = append(items, templates.DocumentListItem{
				ID:          rec.Id,
				Name:        rec.GetString("name"),
				CreatedDate: created,
				NewTotal:    services.FormatEUR(totals.DocumentTotal),
			})
		}

		component := templates.DocumentListPage(templates.DocumentListData{Documents: items})
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.DocumentListContent(templates.DocumentListData{Documents: items})
		}
		return renderComponent(e, component)
	}
}

// renderComponent writes a templ component as an HTML response.
func renderComponent(e *core.RequestEvent, component templ.Component) error {
	e.Response.Header().Set("Content-Type", "text/html; charset=utf-8")
	return component.Render(e.Request.Context(), e.Response)
}
