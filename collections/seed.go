package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// ── Definition structs ───────────────────────────────────────────────────

type variationDef struct {
	sortOrder int
	round     string
	varType   string
	quantity  float64
}

type itemDef struct {
	sortOrder   int
	code        string
	description string
	uom         string
	quantity    float64
	unitPrice   float64
	laborRate   float64
	variations  []variationDef
}

type groupDef struct {
	sortOrder      int
	name           string
	isSecurityCost bool
	items          []itemDef
}

// demoDocument is the sample bill seeded on first start so the report page
// has something to show.
var demoDocument = struct {
	name   string
	groups []groupDef
}{
	name: "Computo Metrico - Edificio A",
	groups: []groupDef{
		{
			sortOrder: 1,
			name:      "Structural Works",
			items: []itemDef{
				{
					sortOrder: 1, code: "ST.01", description: "Reinforced concrete C25/30",
					uom: "m3", quantity: 100, unitPrice: 10, laborRate: 20,
					variations: []variationDef{
						{sortOrder: 1, round: "1", varType: "increase", quantity: 15},
						{sortOrder: 2, round: "1", varType: "decrease", quantity: 5},
					},
				},
				{
					sortOrder: 2, code: "ST.02", description: "Steel reinforcement B450C",
					uom: "kg", quantity: 4200, unitPrice: 1.45, laborRate: 12,
					variations: []variationDef{
						{sortOrder: 1, round: "2", varType: "increase", quantity: 350},
					},
				},
			},
		},
		{
			sortOrder: 2,
			name:      "Finishes",
			items: []itemDef{
				{
					sortOrder: 1, code: "FN.01", description: "Interior plaster, two coats",
					uom: "m2", quantity: 850, unitPrice: 14.2, laborRate: 45,
				},
			},
		},
		{
			sortOrder:      3,
			name:           "Site Safety",
			isSecurityCost: true,
			items: []itemDef{
				{
					sortOrder: 1, code: "SC.01", description: "Perimeter scaffolding",
					uom: "m2", quantity: 320, unitPrice: 8.5,
					variations: []variationDef{
						{sortOrder: 1, round: "Perizia 2", varType: "increase", quantity: 40},
					},
				},
			},
		},
	},
}

// Seed inserts the demo document on an empty database. It is idempotent:
// nothing happens when any document already exists.
func Seed(app *pocketbase.PocketBase) error {
	documentsCol, err := app.FindCollectionByNameOrId("documents")
	if err != nil {
		return fmt.Errorf("seed: could not find documents collection: %w", err)
	}
	existing, err := app.FindAllRecords(documentsCol)
	if err != nil {
		return fmt.Errorf("seed: could not query documents: %w", err)
	}
	if len(existing) > 0 {
		return nil // already seeded
	}

	log.Println("seed: documents collection is empty – inserting seed data …")

	groupsCol, err := app.FindCollectionByNameOrId("work_groups")
	if err != nil {
		return fmt.Errorf("seed: could not find work_groups collection: %w", err)
	}
	itemsCol, err := app.FindCollectionByNameOrId("work_items")
	if err != nil {
		return fmt.Errorf("seed: could not find work_items collection: %w", err)
	}
	variationsCol, err := app.FindCollectionByNameOrId("variations")
	if err != nil {
		return fmt.Errorf("seed: could not find variations collection: %w", err)
	}

	document := core.NewRecord(documentsCol)
	document.Set("name", demoDocument.name)
	if err := app.Save(document); err != nil {
		return fmt.Errorf("seed: could not save document: %w", err)
	}

	for _, g := range demoDocument.groups {
		group := core.NewRecord(groupsCol)
		group.Set("document", document.Id)
		group.Set("sort_order", g.sortOrder)
		group.Set("name", g.name)
		group.Set("is_security_cost", g.isSecurityCost)
		if err := app.Save(group); err != nil {
			return fmt.Errorf("seed: could not save group %q: %w", g.name, err)
		}

		for _, it := range g.items {
			item := core.NewRecord(itemsCol)
			item.Set("group", group.Id)
			item.Set("sort_order", it.sortOrder)
			item.Set("code", it.code)
			item.Set("description", it.description)
			item.Set("uom", it.uom)
			item.Set("quantity", it.quantity)
			item.Set("unit_price", it.unitPrice)
			item.Set("labor_rate", it.laborRate)
			if err := app.Save(item); err != nil {
				return fmt.Errorf("seed: could not save item %q: %w", it.code, err)
			}

			for _, v := range it.variations {
				variation := core.NewRecord(variationsCol)
				variation.Set("item", item.Id)
				variation.Set("sort_order", v.sortOrder)
				variation.Set("round", v.round)
				variation.Set("type", v.varType)
				variation.Set("quantity", v.quantity)
				if err := app.Save(variation); err != nil {
					return fmt.Errorf("seed: could not save variation for %q: %w", it.code, err)
				}
			}
		}
	}

	log.Printf("seed: inserted document %q", demoDocument.name)
	return nil
}
