package handlers

import (
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"computometrico/services"
)

// HandleVariationAdd returns a handler that records a new variation against a
// work item. Variations are append-only: corrections are new records, never
// edits, so the sort order is the next free slot.
func HandleVariationAdd(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		documentID := e.Request.PathValue("id")
		itemID := e.Request.PathValue("itemId")

		item, err := app.FindRecordById("work_items", itemID)
		if err != nil {
			return e.String(http.StatusNotFound, "Item not found")
		}
		group, err := app.FindRecordById("work_groups", item.GetString("group"))
		if err != nil || group.GetString("document") != documentID {
			return e.String(http.StatusNotFound, "Item not in this document")
		}

		if err := e.Request.ParseForm(); err != nil {
			return e.String(http.StatusBadRequest, "Invalid form")
		}

		round := strings.TrimSpace(e.Request.FormValue("round"))
		if round == "" {
			return e.String(http.StatusBadRequest, "Missing round identifier")
		}

		varType := services.VariationType(e.Request.FormValue("type"))
		if varType != services.VariationIncrease && varType != services.VariationDecrease {
			return e.String(http.StatusBadRequest, "Variation type must be increase or decrease")
		}

		quantity, err := strconv.ParseFloat(e.Request.FormValue("quantity"), 64)
		if err != nil || math.IsNaN(quantity) || math.IsInf(quantity, 0) {
			return e.String(http.StatusBadRequest, "Invalid quantity")
		}
		if quantity < 0 {
			return e.String(http.StatusBadRequest, "Quantity must be non-negative; the sign is carried by the type")
		}

		variationsCol, err := app.FindCollectionByNameOrId("variations")
		if err != nil {
			log.Printf("variation_add: could not find variations collection: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		existing, err := app.FindRecordsByFilter(variationsCol, "item = {:itemId}", "sort_order", 0, 0, map[string]any{"itemId": itemID})
		if err != nil {
			existing = nil
		}

		record := core.NewRecord(variationsCol)
		record.Set("item", itemID)
		record.Set("sort_order", len(existing)+1)
		record.Set("round", round)
		record.Set("type", string(varType))
		record.Set("quantity", quantity)
		if err := app.Save(record); err != nil {
			log.Printf("variation_add: could not save variation: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to save variation")
		}

		SetToast(e, "success", "Variation recorded")
		return e.Redirect(http.StatusFound, "/documents/"+documentID)
	}
}
