package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"computometrico/services"
	"computometrico/templates"
)

// renderReportFragment reloads a document and re-renders the report fragment.
// Mutating handlers use it so the client always sees a fully recomputed view.
func renderReportFragment(e *core.RequestEvent, app *pocketbase.PocketBase, documentID string) error {
	doc, err := loadDocument(app, documentID)
	if err != nil {
		log.Printf("report_fragment: %v", err)
		return ErrorToast(e, http.StatusNotFound, "Document not found")
	}
	data := services.BuildReportData(doc, time.Now().Format("02 Jan 2006"))
	return renderComponent(e, templates.ReportContent(buildReportPage(doc, data)))
}

// HandleGroupAdd returns a handler that appends a work group to a document.
func HandleGroupAdd(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		documentID := e.Request.PathValue("id")
		if _, err := app.FindRecordById("documents", documentID); err != nil {
			return ErrorToast(e, http.StatusNotFound, "Document not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form")
		}
		name := strings.TrimSpace(e.Request.FormValue("name"))
		if name == "" {
			return ErrorToast(e, http.StatusBadRequest, "Missing group name")
		}

		groupsCol, err := app.FindCollectionByNameOrId("work_groups")
		if err != nil {
			log.Printf("group_add: could not find work_groups collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Internal error")
		}

		existing, err := app.FindRecordsByFilter(groupsCol, "document = {:docId}", "sort_order", 0, 0, map[string]any{"docId": documentID})
		if err != nil {
			existing = nil
		}

		record := core.NewRecord(groupsCol)
		record.Set("document", documentID)
		record.Set("sort_order", len(existing)+1)
		record.Set("name", name)
		record.Set("is_security_cost", e.Request.FormValue("is_security_cost") == "true")
		if err := app.Save(record); err != nil {
			log.Printf("group_add: could not save group: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to save group")
		}

		SetToast(e, "success", "Group added")
		return e.Redirect(http.StatusFound, "/documents/"+documentID)
	}
}

// HandleItemAdd returns a handler that appends a work item to a group.
// The stored quantity and prices are the contract baseline; later deltas go
// through variations, never through item edits.
func HandleItemAdd(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		documentID := e.Request.PathValue("id")
		groupID := e.Request.PathValue("groupId")

		group, err := app.FindRecordById("work_groups", groupID)
		if err != nil || group.GetString("document") != documentID {
			return ErrorToast(e, http.StatusNotFound, "Group not in this document")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form")
		}

		code := strings.TrimSpace(e.Request.FormValue("code"))
		if code == "" {
			return ErrorToast(e, http.StatusBadRequest, "Missing item code")
		}

		quantity, err := strconv.ParseFloat(e.Request.FormValue("quantity"), 64)
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid quantity")
		}
		unitPrice, err := strconv.ParseFloat(e.Request.FormValue("unit_price"), 64)
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid unit price")
		}
		laborRate := 0.0
		if raw := e.Request.FormValue("labor_rate"); raw != "" {
			laborRate, err = strconv.ParseFloat(raw, 64)
			if err != nil {
				return ErrorToast(e, http.StatusBadRequest, "Invalid labor rate")
			}
		}

		itemsCol, err := app.FindCollectionByNameOrId("work_items")
		if err != nil {
			log.Printf("item_add: could not find work_items collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Internal error")
		}

		existing, err := app.FindRecordsByFilter(itemsCol, "group = {:groupId}", "sort_order", 0, 0, map[string]any{"groupId": groupID})
		if err != nil {
			existing = nil
		}

		record := core.NewRecord(itemsCol)
		record.Set("group", groupID)
		record.Set("sort_order", len(existing)+1)
		record.Set("code", code)
		record.Set("description", strings.TrimSpace(e.Request.FormValue("description")))
		record.Set("uom", strings.TrimSpace(e.Request.FormValue("uom")))
		record.Set("quantity", quantity)
		record.Set("unit_price", unitPrice)
		record.Set("labor_rate", laborRate)
		if err := app.Save(record); err != nil {
			log.Printf("item_add: could not save item: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to save item")
		}

		SetToast(e, "success", "Item added")
		return e.Redirect(http.StatusFound, "/documents/"+documentID)
	}
}

// HandleItemDelete returns a handler that removes a work item (its variations
// cascade) and re-renders the report fragment.
func HandleItemDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		documentID := e.Request.PathValue("id")
		itemID := e.Request.PathValue("itemId")

		item, err := app.FindRecordById("work_items", itemID)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Item not found")
		}
		group, err := app.FindRecordById("work_groups", item.GetString("group"))
		if err != nil || group.GetString("document") != documentID {
			return ErrorToast(e, http.StatusNotFound, "Item not in this document")
		}

		if err := app.Delete(item); err != nil {
			log.Printf("item_delete: could not delete item %s: %v", itemID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to delete item")
		}

		SetToast(e, "success", "Item deleted")
		return renderReportFragment(e, app, documentID)
	}
}

// HandleVariationDelete returns a handler that removes a single variation and
// re-renders the report fragment. Removing the last variation of a round
// drops that round's column from the report entirely.
func HandleVariationDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		documentID := e.Request.PathValue("id")
		variationID := e.Request.PathValue("variationId")

		variation, err := app.FindRecordById("variations", variationID)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Variation not found")
		}
		item, err := app.FindRecordById("work_items", variation.GetString("item"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Variation not found")
		}
		group, err := app.FindRecordById("work_groups", item.GetString("group"))
		if err != nil || group.GetString("document") != documentID {
			return ErrorToast(e, http.StatusNotFound, "Variation not in this document")
		}

		if err := app.Delete(variation); err != nil {
			log.Printf("variation_delete: could not delete variation %s: %v", variationID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to delete variation")
		}

		SetToast(e, "success", "Variation deleted")
		return renderReportFragment(e, app, documentID)
	}
}
