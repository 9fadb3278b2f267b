package services

import (
	"fmt"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GeneratePDF renders the updated-bill report as a landscape A4 PDF using
// maroto/v2. Round entries collapse into a single variations column here; the
// full item-by-round matrix is the HTML and Excel renderers' shape.
func GeneratePDF(data ReportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Horizontal).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addReportHeader(m, data)
	addReportTableHeader(m)
	for _, r := range data.Rows {
		if r.GroupHeader {
			addGroupHeaderRow(m, r)
			continue
		}
		addItemRow(m, r, data.RoundLabels)
	}
	addReportSummary(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

// addReportHeader adds the document title and generation date.
func addReportHeader(m core.Maroto, data ReportData) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New(data.Title, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New("Computo metrico aggiornato", props.Text{
					Size:  9,
					Align: align.Left,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Date: %s", data.GeneratedOn), props.Text{
					Size:  9,
					Align: align.Right,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
		),
	)

	m.AddRows(row.New(4))
}

// addReportTableHeader adds the column header row.
func addReportTableHeader(m core.Maroto) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left

	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(1).Add(text.New("#", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Code", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Description", headerTextLeft)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Qty", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Unit Price", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Variations", headerTextLeft)).WithStyle(&headerCell),
			col.New(1).Add(text.New("New Qty", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("New Total", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Labor", headerText)).WithStyle(&headerCell),
		),
	)
}

// addGroupHeaderRow adds a full-width band for a work group heading.
func addGroupHeaderRow(m core.Maroto, r ReportRow) {
	bg := &props.Color{Red: 225, Green: 230, Blue: 235}
	cell := props.Cell{BackgroundColor: bg}

	name := r.GroupName
	if r.SecurityCost {
		name += " (security costs)"
	}

	m.AddRows(
		row.New(7).Add(
			col.New(12).Add(
				text.New(name, props.Text{
					Size:  8,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			).WithStyle(&cell),
		),
	)
}

// addItemRow adds one reconciled work item row.
func addItemRow(m core.Maroto, r ReportRow, roundLabels []string) {
	baseText := props.Text{Size: 7, Align: align.Center}
	leftText := baseText
	leftText.Align = align.Left
	rightText := baseText
	rightText.Align = align.Right

	if r.Invalid {
		m.AddRows(
			row.New(7).Add(
				col.New(1).Add(text.New(fmt.Sprintf("%d", r.Index), baseText)),
				col.New(1).Add(text.New(r.Code, baseText)),
				col.New(2).Add(text.New(r.Description, leftText)),
				col.New(8).Add(text.New("invalid item data", props.Text{
					Size:  7,
					Style: fontstyle.Italic,
					Align: align.Left,
					Color: &props.Color{Red: 180, Green: 30, Blue: 30},
				})),
			),
		)
		return
	}

	m.AddRows(
		row.New(7).Add(
			col.New(1).Add(text.New(fmt.Sprintf("%d", r.Index), baseText)),
			col.New(1).Add(text.New(r.Code, baseText)),
			col.New(2).Add(text.New(r.Description, leftText)),
			col.New(1).Add(text.New(FormatQty(r.Quantity), rightText)),
			col.New(1).Add(text.New(FormatEUR(r.UnitPrice), rightText)),
			col.New(2).Add(text.New(summarizeCells(r.Cells, roundLabels), leftText)),
			col.New(1).Add(text.New(FormatQty(r.NewQuantity), rightText)),
			col.New(2).Add(text.New(FormatEUR(r.NewTotal), rightText)),
			col.New(1).Add(text.New(FormatEUR(r.LaborCost), rightText)),
		),
	)
}

// summarizeCells joins the present round cells of a row into one line, each
// round with its signed entries in stored order. Absent rounds are omitted.
func summarizeCells(cells []RoundCell, roundLabels []string) string {
	var parts []string
	for i, cell := range cells {
		if !cell.Present {
			continue
		}
		entries := make([]string, 0, len(cell.Variations))
		for _, v := range cell.Variations {
			entries = append(entries, FormatSignedQty(v))
		}
		parts = append(parts, fmt.Sprintf("%s: %s", roundLabels[i], strings.Join(entries, " ")))
	}
	return strings.Join(parts, "; ")
}

// addReportSummary adds the rolled-up totals at the bottom.
func addReportSummary(m core.Maroto, data ReportData) {
	m.AddRows(row.New(6))

	summaryBg := &props.Color{Red: 240, Green: 240, Blue: 240}
	summaryCell := &props.Cell{BackgroundColor: summaryBg}

	labelStyle := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Right,
	}
	valueStyle := labelStyle

	addSummaryLine := func(label string, value float64) {
		m.AddRows(
			row.New(8).Add(
				col.New(8).Add(text.New(label, labelStyle)).WithStyle(summaryCell),
				col.New(4).Add(text.New(FormatEUR(value), valueStyle)).WithStyle(summaryCell),
			),
		)
	}

	addSummaryLine("New Total Amount", data.Totals.DocumentTotal)
	addSummaryLine("Labor Cost", data.Totals.LaborTotal)
	addSummaryLine("Security Costs (not subject to rebate)", data.Totals.SecurityTotal)

	m.AddRows(row.New(6))
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New(
					fmt.Sprintf("Generated on %s", data.GeneratedOn),
					props.Text{
						Size:  7,
						Align: align.Left,
						Color: &props.Color{Red: 140, Green: 140, Blue: 140},
					},
				),
			),
		),
	)
}
