package services

import (
	"testing"
)

func TestGeneratePDF_BasicReport(t *testing.T) {
	data := BuildReportData(sampleDocument(), "2026-09-01")

	result, err := GeneratePDF(data)
	if err != nil {
		t.Fatalf("GeneratePDF() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GeneratePDF() returned empty bytes")
	}
	// PDF files start with %PDF
	if len(result) > 4 && string(result[:5]) != "%PDF-" {
		t.Errorf("result does not start with PDF header, got %q", string(result[:5]))
	}
}

func TestGeneratePDF_EmptyDocument(t *testing.T) {
	data := BuildReportData(Document{Name: "Empty Computo"}, "2026-09-01")

	result, err := GeneratePDF(data)
	if err != nil {
		t.Fatalf("GeneratePDF() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GeneratePDF() returned empty bytes")
	}
}

func TestGeneratePDF_InvalidItemRowRendered(t *testing.T) {
	doc := sampleDocument()
	doc.Groups[0].Items = append(doc.Groups[0].Items, WorkItem{
		Code: "XX.99", Quantity: 1, UnitPrice: 1,
		Variations: []Variation{{Round: "1", Type: "bogus", Quantity: 1}},
	})
	data := BuildReportData(doc, "2026-09-01")
	if data.InvalidItems != 1 {
		t.Fatalf("expected 1 invalid item, got %d", data.InvalidItems)
	}

	result, err := GeneratePDF(data)
	if err != nil {
		t.Fatalf("GeneratePDF() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GeneratePDF() returned empty bytes")
	}
}

func TestSummarizeCells(t *testing.T) {
	labels := []string{"Variant no. 1", "Perizia 2"}
	cells := []RoundCell{
		{Present: true, Variations: []Variation{
			{Round: "1", Type: VariationIncrease, Quantity: 15},
			{Round: "1", Type: VariationDecrease, Quantity: 5},
		}},
		{Present: false},
	}

	got := summarizeCells(cells, labels)
	want := "Variant no. 1: +15 -5"
	if got != want {
		t.Errorf("summarizeCells() = %q, want %q", got, want)
	}
}
