// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"computometrico/collections"
	"computometrico/services"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestDocument creates a document record with the given name and returns it.
func CreateTestDocument(t *testing.T, app *pocketbase.PocketBase, name string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("documents")
	if err != nil {
		t.Fatalf("failed to find documents collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test document: %v", err)
	}

	return record
}

// CreateTestGroup creates a work group linked to a document and returns it.
func CreateTestGroup(t *testing.T, app *pocketbase.PocketBase, documentID, name string, securityCost bool) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("work_groups")
	if err != nil {
		t.Fatalf("failed to find work_groups collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("document", documentID)
	record.Set("sort_order", 1)
	record.Set("name", name)
	record.Set("is_security_cost", securityCost)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test group: %v", err)
	}

	return record
}

// CreateTestItem creates a work item linked to a group and returns it.
func CreateTestItem(t *testing.T, app *pocketbase.PocketBase, groupID, code string, quantity, unitPrice, laborRate float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("work_items")
	if err != nil {
		t.Fatalf("failed to find work_items collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("group", groupID)
	record.Set("sort_order", 1)
	record.Set("code", code)
	record.Set("description", "Test item "+code)
	record.Set("uom", "m3")
	record.Set("quantity", quantity)
	record.Set("unit_price", unitPrice)
	record.Set("labor_rate", laborRate)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test item: %v", err)
	}

	return record
}

// CreateTestVariation records a variation against an item and returns it.
func CreateTestVariation(t *testing.T, app *pocketbase.PocketBase, itemID, round string, varType services.VariationType, quantity float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("variations")
	if err != nil {
		t.Fatalf("failed to find variations collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("item", itemID)
	record.Set("sort_order", 1)
	record.Set("round", round)
	record.Set("type", string(varType))
	record.Set("quantity", quantity)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test variation: %v", err)
	}

	return record
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected body to contain %q", frag)
		}
	}
}
