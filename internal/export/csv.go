package export

import (
	"strconv"
	"strings"

	"listkeeper/internal/model"
)

// csvHeader is the fixed export column set. Importing one of our own exports
// maps every column back, so CSV round-trips cleanly.
var csvHeader = []string{
	"Item Name", "Quantity", "Priority", "Due Date",
	"Notes", "Completed", "Assignee", "Category", "Links",
}

// RenderCSV writes the list's items as CSV. Every value is double-quoted,
// with embedded quotes doubled; missing values become empty cells.
func (r *Renderer) RenderCSV(l model.List) []byte {
	var b strings.Builder
	writeCSVRow(&b, csvHeader)
	for _, it := range l.Items {
		writeCSVRow(&b, []string{
			it.Text,
			quantityCell(it.Quantity),
			string(it.Priority),
			dateCell(it),
			it.Notes,
			strconv.FormatBool(it.Completed),
			it.Assignee,
			categoryCell(it),
			strings.Join(it.Links, ";"),
		})
	}
	return []byte(b.String())
}

func writeCSVRow(b *strings.Builder, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(cell, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}

func quantityCell(q *int) string {
	if q == nil {
		return ""
	}
	return strconv.Itoa(*q)
}

func dateCell(it model.Item) string {
	if it.DueDate == nil {
		return ""
	}
	return it.DueDate.Format("2006-01-02")
}

// categoryCell surfaces the grocery aisle category when the item carries one.
func categoryCell(it model.Item) string {
	if it.Attrs.Grocery != nil {
		return it.Attrs.Grocery.Category
	}
	return ""
}
