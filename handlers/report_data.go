package handlers

import (
	"fmt"

	"computometrico/services"
	"computometrico/templates"
)

// buildReportPage formats a report projection for the HTML renderer. All
// numbers are pre-formatted here so the view stays dumb.
func buildReportPage(doc services.Document, data services.ReportData) templates.ReportPageData {
	page := templates.ReportPageData{
		DocumentID:    doc.ID,
		Title:         data.Title,
		RoundLabels:   data.RoundLabels,
		DocumentTotal: services.FormatEUR(data.Totals.DocumentTotal),
		LaborTotal:    services.FormatEUR(data.Totals.LaborTotal),
		SecurityTotal: services.FormatEUR(data.Totals.SecurityTotal),
		InvalidItems:  data.InvalidItems,
	}

	for _, r := range data.Rows {
		if r.GroupHeader {
			page.Rows = append(page.Rows, templates.ReportRowView{
				GroupHeader:  true,
				GroupID:      r.GroupID,
				GroupName:    r.GroupName,
				SecurityCost: r.SecurityCost,
			})
			continue
		}

		row := templates.ReportRowView{
			Index:       fmt.Sprintf("%d", r.Index),
			ItemID:      r.ItemID,
			Code:        r.Code,
			Description: r.Description,
			UOM:         r.UOM,
			Quantity:    services.FormatQty(r.Quantity),
			UnitPrice:   services.FormatEUR(r.UnitPrice),
			Invalid:     r.Invalid,
		}
		if !r.Invalid {
			row.NetVariation = services.FormatQty(r.NetVariation)
			row.NewQuantity = services.FormatQty(r.NewQuantity)
			row.NewTotal = services.FormatEUR(r.NewTotal)
			row.LaborCost = services.FormatEUR(r.LaborCost)
		}
		for _, cell := range r.Cells {
			view := templates.ReportCellView{Present: cell.Present}
			for _, v := range cell.Variations {
				view.Entries = append(view.Entries, services.FormatSignedQty(v))
			}
			row.Cells = append(row.Cells, view)
		}
		page.Rows = append(page.Rows, row)
	}

	return page
}
