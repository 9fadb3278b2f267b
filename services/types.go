// Package services provides the reconciliation, aggregation, projection and
// export logic for updated bills of quantities.
package services

// VariationType tells whether a variation adds to or subtracts from an item's
// contracted quantity. The stored quantity is always non-negative; the sign
// lives here.
type VariationType string

const (
	VariationIncrease VariationType = "increase"
	VariationDecrease VariationType = "decrease"
)

// Variation is a single signed quantity adjustment recorded against a work
// item during a named variation round. Records are immutable once written;
// corrections are modeled as additional records.
type Variation struct {
	Round    string // round identifier: "1", "2", or a free-text label
	Type     VariationType
	Quantity float64 // always >= 0
}

// WorkItem is one priced line of the bill of quantities.
type WorkItem struct {
	ID          string
	Code        string // article code, not unique across groups
	Description string
	UOM         string
	Quantity    float64 // contracted base quantity
	UnitPrice   float64
	LaborRate   float64 // percentage 0-100; 0 means no labor cost
	Variations  []Variation
}

// WorkGroup is an ordered set of work items under one category heading.
// SecurityCost marks groups excluded from commercial rebate downstream; it
// never affects the reconciled totals themselves.
type WorkGroup struct {
	ID           string
	Name         string
	SecurityCost bool
	Items        []WorkItem
}

// Document is one bill-of-quantities file: an ordered list of work groups.
type Document struct {
	ID     string
	Name   string
	Groups []WorkGroup
}
