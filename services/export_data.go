package services

// ReportRow is one rendered line of the updated-bill report: either an item
// row with its per-round cells and derived values, or a group header row.
type ReportRow struct {
	GroupHeader  bool
	GroupID      string
	GroupName    string
	SecurityCost bool

	Index       int    // per-document running counter, 1-based, item rows only
	ItemID      string // source record id, item rows only
	Code        string
	Description string
	UOM         string
	Quantity    float64
	UnitPrice   float64
	Cells       []RoundCell
	Invalid     bool // item data was malformed; derived values are zero

	NetVariation float64
	NewQuantity  float64
	NewTotal     float64
	LaborCost    float64
}

// ReportData holds everything the PDF, Excel and HTML renderers need for one
// document: the round columns, the flattened rows and the rolled-up totals.
type ReportData struct {
	Title        string
	GeneratedOn  string
	Rounds       []string
	RoundLabels  []string
	Rows         []ReportRow
	Totals       DocumentTotals
	InvalidItems int
}

// BuildReportData projects a document into its report shape. The item counter
// is threaded through the fold and resets per document; it carries display
// order only, no semantic weight.
func BuildReportData(doc Document, generatedOn string) ReportData {
	rounds := ProjectRounds(doc)
	labels := make([]string, len(rounds))
	for i, r := range rounds {
		labels[i] = RoundLabel(r)
	}

	data := ReportData{
		Title:       doc.Name,
		GeneratedOn: generatedOn,
		Rounds:      rounds,
		RoundLabels: labels,
		Totals:      Aggregate(doc),
	}

	counter := 0
	for _, group := range doc.Groups {
		data.Rows = append(data.Rows, ReportRow{
			GroupHeader:  true,
			GroupID:      group.ID,
			GroupName:    group.Name,
			SecurityCost: group.SecurityCost,
		})
		for _, res := range ReconcileItems(group.Items) {
			counter++
			row := ReportRow{
				Index:       counter,
				ItemID:      res.Item.ID,
				Code:        res.Item.Code,
				Description: res.Item.Description,
				UOM:         res.Item.UOM,
				Quantity:    res.Item.Quantity,
				UnitPrice:   res.Item.UnitPrice,
				Cells:       ProjectRow(res.Item, rounds),
			}
			if res.Err != nil {
				row.Invalid = true
				data.InvalidItems++
			} else {
				row.NetVariation = res.Values.NetVariation
				row.NewQuantity = res.Values.NewQuantity
				row.NewTotal = res.Values.NewTotal
				row.LaborCost = res.Values.LaborCost
			}
			data.Rows = append(data.Rows, row)
		}
	}

	return data
}
