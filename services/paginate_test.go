package services

import (
	"math"
	"testing"
)

func TestPaginate_ReferenceCase(t *testing.T) {
	// Surface already at page width: scaled height 930, page height 297.
	pages, err := Paginate(210, 930, 210, 297)
	if err != nil {
		t.Fatalf("Paginate() error = %v", err)
	}

	wantOffsets := []float64{0, -297, -594, -891}
	if len(pages) != len(wantOffsets) {
		t.Fatalf("expected %d pages, got %d", len(wantOffsets), len(pages))
	}
	for i, p := range pages {
		if p.OffsetY != wantOffsets[i] {
			t.Errorf("page %d offset = %v, want %v", i, p.OffsetY, wantOffsets[i])
		}
		if p.Width != 210 || p.Height != 297 {
			t.Errorf("page %d size = %gx%g, want 210x297", i, p.Width, p.Height)
		}
	}
}

func TestPaginate_CeilPageCount(t *testing.T) {
	tests := []struct {
		name          string
		surfaceW      float64
		surfaceH      float64
		pageW         float64
		pageH         float64
		wantPageCount int
	}{
		{"exact single page", 210, 297, 210, 297, 1},
		{"just over one page", 210, 298, 210, 297, 2},
		{"just under one page", 210, 296, 210, 297, 1},
		{"scaled down surface", 420, 1860, 210, 297, 4}, // scales to 930
		{"scaled up surface", 105, 465, 210, 297, 4},    // scales to 930
		{"tiny surface", 210, 1, 210, 297, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pages, err := Paginate(tt.surfaceW, tt.surfaceH, tt.pageW, tt.pageH)
			if err != nil {
				t.Fatalf("Paginate() error = %v", err)
			}
			if len(pages) != tt.wantPageCount {
				t.Errorf("page count = %d, want %d", len(pages), tt.wantPageCount)
			}

			scaled := tt.surfaceH * (tt.pageW / tt.surfaceW)
			if want := int(math.Ceil(scaled / tt.pageH)); len(pages) != want {
				t.Errorf("page count = %d, want ceil(%g/%g) = %d", len(pages), scaled, tt.pageH, want)
			}
		})
	}
}

func TestPaginate_NoGapsOrOverlaps(t *testing.T) {
	pages, err := Paginate(400, 3000, 210, 297)
	if err != nil {
		t.Fatalf("Paginate() error = %v", err)
	}
	for i, p := range pages {
		want := -float64(i) * 297
		if p.OffsetY != want {
			t.Errorf("page %d offset = %v, want %v (consecutive bands, no duplication)", i, p.OffsetY, want)
		}
	}
}

func TestPaginate_InvalidGeometry(t *testing.T) {
	tests := []struct {
		name     string
		args     [4]float64 // surfaceW, surfaceH, pageW, pageH
	}{
		{"zero surface width", [4]float64{0, 100, 210, 297}},
		{"negative surface height", [4]float64{210, -1, 210, 297}},
		{"zero page width", [4]float64{210, 100, 0, 297}},
		{"zero page height", [4]float64{210, 100, 210, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Paginate(tt.args[0], tt.args[1], tt.args[2], tt.args[3]); err == nil {
				t.Error("expected error for invalid geometry")
			}
		})
	}
}
