package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Fixed columns before the per-round matrix block.
var leadHeaders = []string{"#", "Code", "Description", "UOM", "Qty", "Unit Price"}

// Fixed columns after the per-round matrix block.
var tailHeaders = []string{"Net Variation", "New Qty", "New Total", "Labor Cost"}

// GenerateExcel renders the updated-bill report as an Excel workbook. Unlike
// the PDF, the sheet carries the full item-by-round matrix: one column per
// round, absent cells rendered as a dash.
func GenerateExcel(data ReportData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	// Sheet names cap at 31 chars.
	sheetName := data.Title
	if len(sheetName) > 31 {
		sheetName = sheetName[:31]
	}
	if sheetName == "" {
		sheetName = "Computo"
	}

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	totalCols := len(leadHeaders) + len(data.Rounds) + len(tailHeaders)
	lastCol, err := excelize.ColumnNumberToName(totalCols)
	if err != nil {
		return nil, fmt.Errorf("column name: %w", err)
	}

	// Column widths: narrow index, wide description, medium money columns.
	widths := []float64{6, 12, 40, 8, 10, 14}
	for range data.Rounds {
		widths = append(widths, 14)
	}
	widths = append(widths, 14, 10, 16, 14)
	for i, w := range widths {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, fmt.Errorf("column name: %w", err)
		}
		if err := f.SetColWidth(sheetName, name, name, w); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", name, err)
		}
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	subtitleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create subtitle style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
			WrapText:   true,
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	groupStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 11},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"#E1E6EB"}, Pattern: 1},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create group style: %w", err)
	}

	itemStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create item style: %w", err)
	}

	summaryLabelStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary label style: %w", err)
	}

	summaryValueStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary value style: %w", err)
	}

	// Row 1: title. Row 2: generation date.
	if err := f.MergeCell(sheetName, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheetName, "A1", sanitizeExcelCell(data.Title))
	f.SetCellStyle(sheetName, "A1", lastCol+"1", titleStyle)

	if err := f.MergeCell(sheetName, "A2", lastCol+"2"); err != nil {
		return nil, fmt.Errorf("merge date: %w", err)
	}
	f.SetCellValue(sheetName, "A2", "Date: "+data.GeneratedOn)
	f.SetCellStyle(sheetName, "A2", lastCol+"2", subtitleStyle)

	// Row 4: column headers.
	headers := append([]string{}, leadHeaders...)
	headers = append(headers, data.RoundLabels...)
	headers = append(headers, tailHeaders...)
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 4)
		if err != nil {
			return nil, fmt.Errorf("cell name: %w", err)
		}
		f.SetCellValue(sheetName, cell, h)
	}
	f.SetCellStyle(sheetName, "A4", lastCol+"4", headerStyle)

	// Data rows from row 5.
	rowNum := 5
	for _, r := range data.Rows {
		rowStr := fmt.Sprintf("%d", rowNum)

		if r.GroupHeader {
			if err := f.MergeCell(sheetName, "A"+rowStr, lastCol+rowStr); err != nil {
				return nil, fmt.Errorf("merge group row: %w", err)
			}
			name := r.GroupName
			if r.SecurityCost {
				name += " (security costs)"
			}
			f.SetCellValue(sheetName, "A"+rowStr, sanitizeExcelCell(name))
			f.SetCellStyle(sheetName, "A"+rowStr, lastCol+rowStr, groupStyle)
			rowNum++
			continue
		}

		f.SetCellValue(sheetName, "A"+rowStr, r.Index)
		f.SetCellValue(sheetName, "B"+rowStr, sanitizeExcelCell(r.Code))
		f.SetCellValue(sheetName, "C"+rowStr, sanitizeExcelCell(r.Description))
		f.SetCellValue(sheetName, "D"+rowStr, sanitizeExcelCell(r.UOM))
		f.SetCellValue(sheetName, "E"+rowStr, r.Quantity)
		f.SetCellValue(sheetName, "F"+rowStr, FormatEUR(r.UnitPrice))

		for i, cell := range r.Cells {
			name, err := excelize.CoordinatesToCellName(len(leadHeaders)+i+1, rowNum)
			if err != nil {
				return nil, fmt.Errorf("cell name: %w", err)
			}
			f.SetCellValue(sheetName, name, matrixCellValue(cell))
		}

		tailStart := len(leadHeaders) + len(data.Rounds)
		if r.Invalid {
			name, err := excelize.CoordinatesToCellName(tailStart+1, rowNum)
			if err != nil {
				return nil, fmt.Errorf("cell name: %w", err)
			}
			f.SetCellValue(sheetName, name, "invalid item data")
		} else {
			tail := []any{
				FormatQty(r.NetVariation),
				FormatQty(r.NewQuantity),
				FormatEUR(r.NewTotal),
				FormatEUR(r.LaborCost),
			}
			for i, v := range tail {
				name, err := excelize.CoordinatesToCellName(tailStart+i+1, rowNum)
				if err != nil {
					return nil, fmt.Errorf("cell name: %w", err)
				}
				f.SetCellValue(sheetName, name, v)
			}
		}

		f.SetCellStyle(sheetName, "A"+rowStr, lastCol+rowStr, itemStyle)
		rowNum++
	}

	// Summary block.
	rowNum++
	addSummary := func(label string, value float64) {
		rowStr := fmt.Sprintf("%d", rowNum)
		f.SetCellValue(sheetName, "C"+rowStr, label)
		f.SetCellStyle(sheetName, "C"+rowStr, "C"+rowStr, summaryLabelStyle)
		f.SetCellValue(sheetName, "D"+rowStr, FormatEUR(value))
		f.SetCellStyle(sheetName, "D"+rowStr, "D"+rowStr, summaryValueStyle)
		rowNum++
	}
	addSummary("New Total Amount:", data.Totals.DocumentTotal)
	addSummary("Labor Cost:", data.Totals.LaborTotal)
	addSummary("Security Costs:", data.Totals.SecurityTotal)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

// matrixCellValue renders one matrix cell: a dash for an absent cell, the
// signed entries in stored order otherwise. A present cell with quantity zero
// renders "+0", never the bare dash.
func matrixCellValue(cell RoundCell) string {
	if !cell.Present {
		return "—"
	}
	entries := make([]string, 0, len(cell.Variations))
	for _, v := range cell.Variations {
		entries = append(entries, FormatSignedQty(v))
	}
	return strings.Join(entries, " ")
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote. Excel interprets cells starting with =, +, -,
// @, \t or \r as formulas, which can be abused for code execution or data theft.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns a slice of excelize.Border for thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1, // thin
		}
	}
	return borders
}
