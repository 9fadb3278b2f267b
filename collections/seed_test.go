package collections_test

import (
	"testing"

	"computometrico/collections"
	"computometrico/testhelpers"
)

func TestSeed_CreatesData(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}

	documentsCol, _ := app.FindCollectionByNameOrId("documents")
	documents, err := app.FindAllRecords(documentsCol)
	if err != nil {
		t.Fatalf("query documents error: %v", err)
	}
	if len(documents) != 1 {
		t.Fatalf("expected 1 document, got %d", len(documents))
	}
	if documents[0].GetString("name") != "Computo Metrico - Edificio A" {
		t.Errorf("document name = %q, want %q", documents[0].GetString("name"), "Computo Metrico - Edificio A")
	}

	groupsCol, _ := app.FindCollectionByNameOrId("work_groups")
	groups, _ := app.FindAllRecords(groupsCol)
	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(groups))
	}
	var securityGroups int
	for _, g := range groups {
		if g.GetString("document") != documents[0].Id {
			t.Errorf("group %q document = %q, want %q", g.GetString("name"), g.GetString("document"), documents[0].Id)
		}
		if g.GetBool("is_security_cost") {
			securityGroups++
		}
	}
	if securityGroups != 1 {
		t.Errorf("expected 1 security-cost group, got %d", securityGroups)
	}

	itemsCol, _ := app.FindCollectionByNameOrId("work_items")
	items, _ := app.FindAllRecords(itemsCol)
	if len(items) != 4 {
		t.Errorf("expected 4 work items, got %d", len(items))
	}

	variationsCol, _ := app.FindCollectionByNameOrId("variations")
	variations, _ := app.FindAllRecords(variationsCol)
	if len(variations) != 4 {
		t.Errorf("expected 4 variations, got %d", len(variations))
	}
}

func TestSeed_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("first Seed() error: %v", err)
	}
	if err := collections.Seed(app); err != nil {
		t.Fatalf("second Seed() error: %v", err)
	}

	documentsCol, _ := app.FindCollectionByNameOrId("documents")
	documents, _ := app.FindAllRecords(documentsCol)
	if len(documents) != 1 {
		t.Errorf("expected 1 document after double seed, got %d", len(documents))
	}
}
