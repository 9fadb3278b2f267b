// Package handlers wires the HTTP surface of the updated-bill tracker.
package handlers

import (
	"fmt"

	"github.com/pocketbase/pocketbase"

	"computometrico/services"
)

// loadDocument reads one document and its full group/item/variation tree into
// an immutable snapshot. Every render pass recomputes derived values from
// this snapshot; nothing derived is ever persisted.
func loadDocument(app *pocketbase.PocketBase, documentID string) (services.Document, error) {
	docRecord, err := app.FindRecordById("documents", documentID)
	if err != nil {
		return services.Document{}, fmt.Errorf("document not found: %w", err)
	}

	groupsCol, err := app.FindCollectionByNameOrId("work_groups")
	if err != nil {
		return services.Document{}, fmt.Errorf("collection not found: %w", err)
	}
	itemsCol, err := app.FindCollectionByNameOrId("work_items")
	if err != nil {
		return services.Document{}, fmt.Errorf("collection not found: %w", err)
	}
	variationsCol, err := app.FindCollectionByNameOrId("variations")
	if err != nil {
		return services.Document{}, fmt.Errorf("collection not found: %w", err)
	}

	doc := services.Document{
		ID:   docRecord.Id,
		Name: docRecord.GetString("name"),
	}

	groupRecords, err := app.FindRecordsByFilter(groupsCol, "document = {:docId}", "sort_order", 0, 0, map[string]any{"docId": documentID})
	if err != nil {
		groupRecords = nil
	}

	for _, gr := range groupRecords {
		group := services.WorkGroup{
			ID:           gr.Id,
			Name:         gr.GetString("name"),
			SecurityCost: gr.GetBool("is_security_cost"),
		}

		itemRecords, err := app.FindRecordsByFilter(itemsCol, "group = {:groupId}", "sort_order", 0, 0, map[string]any{"groupId": gr.Id})
		if err != nil {
			itemRecords = nil
		}

		for _, ir := range itemRecords {
			item := services.WorkItem{
				ID:          ir.Id,
				Code:        ir.GetString("code"),
				Description: ir.GetString("description"),
				UOM:         ir.GetString("uom"),
				Quantity:    ir.GetFloat("quantity"),
				UnitPrice:   ir.GetFloat("unit_price"),
				LaborRate:   ir.GetFloat("labor_rate"),
			}

			variationRecords, err := app.FindRecordsByFilter(variationsCol, "item = {:itemId}", "sort_order", 0, 0, map[string]any{"itemId": ir.Id})
			if err != nil {
				variationRecords = nil
			}
			for _, vr := range variationRecords {
				item.Variations = append(item.Variations, services.Variation{
					Round:    vr.GetString("round"),
					Type:     services.VariationType(vr.GetString("type")),
					Quantity: vr.GetFloat("quantity"),
				})
			}

			group.Items = append(group.Items, item)
		}

		doc.Groups = append(doc.Groups, group)
	}

	return doc, nil
}
