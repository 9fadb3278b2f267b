package services

import "testing"

func TestFormatEUR(t *testing.T) {
	tests := []struct {
		name   string
		input  float64
		expect string
	}{
		{"zero", 0, "0,00 €"},
		{"small", 5.5, "5,50 €"},
		{"hundreds", 950, "950,00 €"},
		{"thousands", 1100, "1.100,00 €"},
		{"millions", 1234567.89, "1.234.567,89 €"},
		{"negative", -4250.75, "-4.250,75 €"},
		{"rounding up", 0.995, "1,00 €"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatEUR(tt.input); got != tt.expect {
				t.Errorf("FormatEUR(%v) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}

func TestFormatQty(t *testing.T) {
	tests := []struct {
		name   string
		input  float64
		expect string
	}{
		{"whole", 100, "100"},
		{"fractional", 12.5, "12,50"},
		{"zero", 0, "0"},
		{"negative whole", -15, "-15"},
		{"negative fractional", -0.25, "-0,25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatQty(tt.input); got != tt.expect {
				t.Errorf("FormatQty(%v) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}

func TestFormatSignedQty(t *testing.T) {
	tests := []struct {
		name   string
		v      Variation
		expect string
	}{
		{"increase", Variation{Type: VariationIncrease, Quantity: 15}, "+15"},
		{"decrease", Variation{Type: VariationDecrease, Quantity: 5}, "-5"},
		{"zero increase", Variation{Type: VariationIncrease, Quantity: 0}, "+0"},
		{"fractional decrease", Variation{Type: VariationDecrease, Quantity: 2.5}, "-2,50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatSignedQty(tt.v); got != tt.expect {
				t.Errorf("FormatSignedQty(%+v) = %q, want %q", tt.v, got, tt.expect)
			}
		})
	}
}
