package services

// GroupTotals is the rolled-up value of one work group after reconciliation.
type GroupTotals struct {
	GroupID      string
	Name         string
	SecurityCost bool
	NewTotal     float64
	LaborCost    float64
}

// DocumentTotals is the rolled-up value of one document. SecurityTotal is the
// subtotal of groups flagged as security costs; it is part of DocumentTotal,
// never subtracted from it (the flag drives downstream discount computation,
// not the displayed total).
type DocumentTotals struct {
	DocumentID    string
	Name          string
	Groups        []GroupTotals
	DocumentTotal float64
	LaborTotal    float64
	SecurityTotal float64
}

// Aggregate folds reconciled item values upward: item to group, group to
// document. Items whose data is invalid contribute nothing to the totals;
// aggregation never aborts. Empty documents and empty groups fold to zero.
func Aggregate(doc Document) DocumentTotals {
	totals := DocumentTotals{
		DocumentID: doc.ID,
		Name:       doc.Name,
		Groups:     make([]GroupTotals, 0, len(doc.Groups)),
	}

	for _, group := range doc.Groups {
		gt := GroupTotals{
			GroupID:      group.ID,
			Name:         group.Name,
			SecurityCost: group.SecurityCost,
		}
		for _, res := range ReconcileItems(group.Items) {
			if res.Err != nil {
				continue
			}
			gt.NewTotal += res.Values.NewTotal
			gt.LaborCost += res.Values.LaborCost
		}
		totals.Groups = append(totals.Groups, gt)
		totals.DocumentTotal += gt.NewTotal
		totals.LaborTotal += gt.LaborCost
		if gt.SecurityCost {
			totals.SecurityTotal += gt.NewTotal
		}
	}

	return totals
}

// AggregateAll aggregates each document independently. Separate survey
// documents are never summed into one contract value here; a caller wanting a
// cross-document total must fold the results itself.
func AggregateAll(docs []Document) []DocumentTotals {
	all := make([]DocumentTotals, 0, len(docs))
	for _, doc := range docs {
		all = append(all, Aggregate(doc))
	}
	return all
}
