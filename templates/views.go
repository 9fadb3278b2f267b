// Package templates renders the HTML views for the updated-bill tracker.
package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// DocumentListItem is one row of the documents overview.
type DocumentListItem struct {
	ID          string
	Name        string
	CreatedDate string
	NewTotal    string // formatted
}

// DocumentListData feeds the documents overview page.
type DocumentListData struct {
	Documents []DocumentListItem
}

// ReportCellView is one matrix cell, pre-formatted. Entries holds the signed
// quantities in stored order; an absent cell renders as a dash.
type ReportCellView struct {
	Present bool
	Entries []string
}

// ReportRowView is one pre-formatted row of the report table.
type ReportRowView struct {
	GroupHeader  bool
	GroupID      string
	GroupName    string
	SecurityCost bool

	Index       string
	ItemID      string
	Code        string
	Description string
	UOM         string
	Quantity    string
	UnitPrice   string
	Cells       []ReportCellView
	Invalid     bool

	NetVariation string
	NewQuantity  string
	NewTotal     string
	LaborCost    string
}

// ReportPageData feeds the updated-bill report page.
type ReportPageData struct {
	DocumentID    string
	Title         string
	RoundLabels   []string
	Rows          []ReportRowView
	DocumentTotal string
	LaborTotal    string
	SecurityTotal string
	InvalidItems  int
}

// layout wraps a body component in the HTML shell.
func layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>%s</title>
<script src="https://unpkg.com/htmx.org@1.9.12" crossorigin="anonymous"></script>
<link rel="stylesheet" href="/static/style.css">
</head>
<body>
<main class="container">`, templ.EscapeString(title)); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</main>\n</body>\n</html>\n")
		return err
	})
}

// DocumentListPage renders the documents overview.
func DocumentListPage(data DocumentListData) templ.Component {
	return layout("Documents", DocumentListContent(data))
}

// DocumentListContent renders the overview table without the shell.
func DocumentListContent(data DocumentListData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<h1>Documents</h1>
<a class="button" href="/documents/create">New document</a>
<table class="documents">
<thead><tr><th>Name</th><th>Created</th><th class="num">New Total</th><th></th></tr></thead>
<tbody>`); err != nil {
			return err
		}
		for _, d := range data.Documents {
			if _, err := fmt.Fprintf(w, `
<tr>
<td><a href="/documents/%s">%s</a></td>
<td>%s</td>
<td class="num">%s</td>
<td><button hx-delete="/documents/%s" hx-confirm="Delete this document?" hx-target="closest tr" hx-swap="outerHTML">Delete</button></td>
</tr>`,
				templ.EscapeString(d.ID), templ.EscapeString(d.Name),
				templ.EscapeString(d.CreatedDate), templ.EscapeString(d.NewTotal),
				templ.EscapeString(d.ID)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "\n</tbody>\n</table>\n")
		return err
	})
}

// DocumentCreatePage renders the new-document form.
func DocumentCreatePage() templ.Component {
	return layout("New document", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<h1>New document</h1>
<form method="post" action="/documents">
<label>Name <input type="text" name="name" required></label>
<button type="submit">Create</button>
</form>
`)
		return err
	}))
}

// DocumentReportPage renders the full updated-bill report page.
func DocumentReportPage(data ReportPageData) templ.Component {
	return layout(data.Title, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<h1>%s</h1>
<div class="actions">
<a class="button" href="/documents/%s/export/pdf">Export PDF</a>
<a class="button" href="/documents/%s/export/excel">Export Excel</a>
</div>
<div id="report-content">`,
			templ.EscapeString(data.Title),
			templ.EscapeString(data.DocumentID),
			templ.EscapeString(data.DocumentID)); err != nil {
			return err
		}
		if err := ReportContent(data).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</div>\n")
		return err
	}))
}

// ReportContent renders the report table, totals and structure forms. The
// mutating endpoints swap this fragment in place.
func ReportContent(data ReportPageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := reportTable(data).Render(ctx, w); err != nil {
			return err
		}
		if err := reportTotals(data).Render(ctx, w); err != nil {
			return err
		}
		return groupAddForm(data.DocumentID).Render(ctx, w)
	})
}

func groupAddForm(documentID string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<details class="add-group">
<summary>Add group</summary>
<form method="post" action="/documents/%s/groups">
<label>Name <input type="text" name="name" required></label>
<label><input type="checkbox" name="is_security_cost" value="true"> Security costs</label>
<button type="submit">Add</button>
</form>
</details>
`, templ.EscapeString(documentID))
		return err
	})
}

func itemAddForm(documentID, groupID string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<details class="add-item">
<summary>Add item</summary>
<form method="post" action="/documents/%s/groups/%s/items">
<input type="text" name="code" placeholder="Code" required>
<input type="text" name="description" placeholder="Description">
<input type="text" name="uom" placeholder="UOM">
<input type="number" step="any" name="quantity" placeholder="Qty" required>
<input type="number" step="any" name="unit_price" placeholder="Unit price" required>
<input type="number" step="any" name="labor_rate" placeholder="Labor %%">
<button type="submit">Add</button>
</form>
</details>`, templ.EscapeString(documentID), templ.EscapeString(groupID))
		return err
	})
}

func variationAddForm(documentID, itemID string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<details class="add-variation">
<summary>Variation</summary>
<form method="post" action="/documents/%s/items/%s/variations">
<input type="text" name="round" placeholder="Round" required>
<select name="type"><option value="increase">Increase</option><option value="decrease">Decrease</option></select>
<input type="number" step="any" min="0" name="quantity" placeholder="Qty" required>
<button type="submit">Add</button>
</form>
</details>`, templ.EscapeString(documentID), templ.EscapeString(itemID))
		return err
	})
}

func reportTable(data ReportPageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<table class="report">
<thead><tr><th>#</th><th>Code</th><th>Description</th><th>UOM</th><th class="num">Qty</th><th class="num">Unit Price</th>`); err != nil {
			return err
		}
		for _, label := range data.RoundLabels {
			if _, err := fmt.Fprintf(w, `<th class="num">%s</th>`, templ.EscapeString(label)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `<th class="num">Net</th><th class="num">New Qty</th><th class="num">New Total</th><th class="num">Labor</th><th></th></tr></thead>
<tbody>`); err != nil {
			return err
		}

		// 11 fixed columns plus one per round.
		span := 11 + len(data.RoundLabels)

		for _, r := range data.Rows {
			if r.GroupHeader {
				name := r.GroupName
				if r.SecurityCost {
					name += " (security costs)"
				}
				if _, err := fmt.Fprintf(w, `
<tr class="group-header"><td colspan="%d">%s
<button hx-post="/documents/%s/groups/%s/toggle-security" hx-target="#report-content" hx-swap="innerHTML">Toggle security</button>
`,
					span, templ.EscapeString(name),
					templ.EscapeString(data.DocumentID), templ.EscapeString(r.GroupID)); err != nil {
					return err
				}
				if err := itemAddForm(data.DocumentID, r.GroupID).Render(ctx, w); err != nil {
					return err
				}
				if _, err := io.WriteString(w, `</td></tr>`); err != nil {
					return err
				}
				continue
			}

			if r.Invalid {
				if _, err := fmt.Fprintf(w, `
<tr class="invalid"><td>%s</td><td>%s</td><td>%s</td><td colspan="%d">invalid item data</td>
<td class="actions"><button hx-delete="/documents/%s/items/%s" hx-confirm="Delete this item?" hx-target="#report-content" hx-swap="innerHTML">Delete</button></td></tr>`,
					templ.EscapeString(r.Index), templ.EscapeString(r.Code),
					templ.EscapeString(r.Description), span-4,
					templ.EscapeString(data.DocumentID), templ.EscapeString(r.ItemID)); err != nil {
					return err
				}
				continue
			}

			if _, err := fmt.Fprintf(w, `
<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td class="num">%s</td><td class="num">%s</td>`,
				templ.EscapeString(r.Index), templ.EscapeString(r.Code),
				templ.EscapeString(r.Description), templ.EscapeString(r.UOM),
				templ.EscapeString(r.Quantity), templ.EscapeString(r.UnitPrice)); err != nil {
				return err
			}
			for _, cell := range r.Cells {
				if !cell.Present {
					if _, err := io.WriteString(w, `<td class="num absent">&mdash;</td>`); err != nil {
						return err
					}
					continue
				}
				if _, err := io.WriteString(w, `<td class="num">`); err != nil {
					return err
				}
				for i, entry := range cell.Entries {
					if i > 0 {
						if _, err := io.WriteString(w, "<br>"); err != nil {
							return err
						}
					}
					if _, err := io.WriteString(w, templ.EscapeString(entry)); err != nil {
						return err
					}
				}
				if _, err := io.WriteString(w, `</td>`); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w, `<td class="num">%s</td><td class="num">%s</td><td class="num">%s</td><td class="num">%s</td>`,
				templ.EscapeString(r.NetVariation), templ.EscapeString(r.NewQuantity),
				templ.EscapeString(r.NewTotal), templ.EscapeString(r.LaborCost)); err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, `<td class="actions">
<button hx-delete="/documents/%s/items/%s" hx-confirm="Delete this item?" hx-target="#report-content" hx-swap="innerHTML">Delete</button>
`, templ.EscapeString(data.DocumentID), templ.EscapeString(r.ItemID)); err != nil {
				return err
			}
			if err := variationAddForm(data.DocumentID, r.ItemID).Render(ctx, w); err != nil {
				return err
			}
			if _, err := io.WriteString(w, `</td></tr>`); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, "\n</tbody>\n</table>\n")
		return err
	})
}

func reportTotals(data ReportPageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if data.InvalidItems > 0 {
			if _, err := fmt.Fprintf(w, `<p class="warning">%d item(s) with invalid data were excluded from the totals.</p>
`, data.InvalidItems); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, `<dl class="totals">
<dt>New Total Amount</dt><dd>%s</dd>
<dt>Labor Cost</dt><dd>%s</dd>
<dt>Security Costs (not subject to rebate)</dt><dd>%s</dd>
</dl>
`,
			templ.EscapeString(data.DocumentTotal),
			templ.EscapeString(data.LaborTotal),
			templ.EscapeString(data.SecurityTotal))
		return err
	})
}
