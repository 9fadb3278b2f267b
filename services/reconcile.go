package services

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidItemData marks a work item whose numeric fields are not finite
// reals. The error is scoped to the item: siblings still reconcile.
var ErrInvalidItemData = errors.New("invalid item data")

// Reconciled holds the derived values for one work item after applying its
// variation records. Values are never stored; every pass recomputes them.
type Reconciled struct {
	NetVariation float64
	NewQuantity  float64
	NewTotal     float64
	LaborCost    float64
}

// Reconcile computes the post-variation quantity and monetary values for one
// item. No rounding is applied; display formatting is the renderer's concern.
// A negative new quantity is reported as-is, physical plausibility is a human
// review concern.
func Reconcile(item WorkItem) (Reconciled, error) {
	if !isFinite(item.Quantity) || !isFinite(item.UnitPrice) || !isFinite(item.LaborRate) {
		return Reconciled{}, fmt.Errorf("item %q: %w", item.Code, ErrInvalidItemData)
	}

	var net float64
	for _, v := range item.Variations {
		if !isFinite(v.Quantity) || v.Quantity < 0 {
			return Reconciled{}, fmt.Errorf("item %q: variation round %q: %w", item.Code, v.Round, ErrInvalidItemData)
		}
		switch v.Type {
		case VariationIncrease:
			net += v.Quantity
		case VariationDecrease:
			net -= v.Quantity
		default:
			return Reconciled{}, fmt.Errorf("item %q: variation type %q: %w", item.Code, v.Type, ErrInvalidItemData)
		}
	}

	newQty := item.Quantity + net
	newTotal := newQty * item.UnitPrice

	var labor float64
	if item.LaborRate != 0 {
		labor = newTotal * (item.LaborRate / 100)
	}

	return Reconciled{
		NetVariation: net,
		NewQuantity:  newQty,
		NewTotal:     newTotal,
		LaborCost:    labor,
	}, nil
}

// ItemResult pairs a work item with its reconciliation outcome. Err is set
// when the item's data was invalid; Values is zero in that case.
type ItemResult struct {
	Item   WorkItem
	Values Reconciled
	Err    error
}

// ReconcileItems reconciles every item in order. One malformed item does not
// block its siblings; its result carries the error instead.
func ReconcileItems(items []WorkItem) []ItemResult {
	results := make([]ItemResult, 0, len(items))
	for _, item := range items {
		values, err := Reconcile(item)
		results = append(results, ItemResult{Item: item, Values: values, Err: err})
	}
	return results
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
